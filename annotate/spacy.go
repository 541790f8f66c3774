package annotate

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/fractalqb/tokcmp"
)

//go:embed spacy_annotate.py
var spacyScript string

const (
	DefaultPython     = "python3"
	DefaultSpaCyModel = "en_core_web_sm"
)

// Exit status of the sidecar script when spaCy or the model cannot be loaded
const spacyExitUnavailable = 3

// SpaCy annotates texts by running a spaCy pipeline in a python process. Each
// call starts its own process, so a SpaCy can be used concurrently.
type SpaCy struct {
	Python  string
	Model   string
	Timeout time.Duration // zero means no timeout
	Log     *zap.Logger
}

type spacyToken struct {
	Text string `json:"text"`
	Pos  string `json:"pos"`
	Dep  string `json:"dep"`
	Head int    `json:"head"`
}

type spacyDoc struct {
	Tokens     []spacyToken `json:"tokens"`
	NounChunks [][2]int     `json:"noun_chunks"`
}

// NewSpaCy checks that python, spaCy and the model can be loaded. If not, it
// returns a tokcmp.AnnotatorError.
func NewSpaCy(ctx context.Context, python, model string, timeout time.Duration, log *zap.Logger) (*SpaCy, error) {
	if python == "" {
		python = DefaultPython
	}
	if model == "" {
		model = DefaultSpaCyModel
	}
	if log == nil {
		log = zap.NewNop()
	}
	sp := &SpaCy{Python: python, Model: model, Timeout: timeout, Log: log}
	out, err := sp.run(ctx, "", "--probe")
	if err != nil {
		var xerr *exec.ExitError
		if errors.As(err, &xerr) && xerr.ExitCode() == spacyExitUnavailable {
			err = fmt.Errorf("%w; install it with: %s -m spacy download %s", err, python, model)
		}
		return nil, tokcmp.NewAnnotatorError("spacy", err)
	}
	log.Debug("spacy sidecar ready", zap.ByteString("probe", bytes.TrimSpace(out)))
	return sp, nil
}

func (sp *SpaCy) Tag(ctx context.Context, text string) (tokcmp.Sequence, error) {
	doc, err := sp.annotate(ctx, Normalize(text))
	if err != nil {
		return nil, err
	}
	var seq tokcmp.Sequence
	for _, t := range doc.Tokens {
		if Keep(t.Text) {
			seq = append(seq, tokcmp.Token{Surface: t.Text, Tag: t.Pos})
		}
	}
	return seq, nil
}

func (sp *SpaCy) Parse(ctx context.Context, text string) (*tokcmp.Parse, error) {
	doc, err := sp.annotate(ctx, text)
	if err != nil {
		return nil, err
	}
	p := &tokcmp.Parse{Tokens: make([]tokcmp.ParseToken, len(doc.Tokens))}
	for i, t := range doc.Tokens {
		if t.Head < 0 || t.Head >= len(doc.Tokens) {
			return nil, fmt.Errorf("spacy: token %d '%s' has invalid head %d", i, t.Text, t.Head)
		}
		p.Tokens[i] = tokcmp.ParseToken{Text: t.Text, Tag: t.Pos, Dep: t.Dep, Head: t.Head}
	}
	for _, c := range doc.NounChunks {
		if c[0] < 0 || c[1] > len(doc.Tokens) || c[0] >= c[1] {
			return nil, fmt.Errorf("spacy: invalid noun chunk %v", c)
		}
		p.NounChunks = append(p.NounChunks, tokcmp.Span{Start: c[0], End: c[1]})
	}
	return p, nil
}

func (sp *SpaCy) annotate(ctx context.Context, text string) (*spacyDoc, error) {
	out, err := sp.run(ctx, text)
	if err != nil {
		return nil, err
	}
	doc := new(spacyDoc)
	if err = json.Unmarshal(out, doc); err != nil {
		return nil, fmt.Errorf("spacy: decode output: %w", err)
	}
	return doc, nil
}

func (sp *SpaCy) run(ctx context.Context, stdin string, args ...string) ([]byte, error) {
	if sp.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, sp.Timeout)
		defer cancel()
	}
	args = append([]string{"-c", spacyScript, "--model", sp.Model}, args...)
	cmd := exec.CommandContext(ctx, sp.Python, args...)
	cmd.Stdin = strings.NewReader(stdin)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	start := time.Now()
	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return nil, fmt.Errorf("%s: %w: %s", sp.Python, err, msg)
		}
		return nil, fmt.Errorf("%s: %w", sp.Python, err)
	}
	if sp.Log != nil {
		sp.Log.Debug("spacy call",
			zap.Int("input_bytes", len(stdin)),
			zap.Duration("took", time.Since(start)),
		)
	}
	return stdout.Bytes(), nil
}
