package tokcmp

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"unicode/utf8"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Annotator is the natural language pipeline the analysis depends on.
type Annotator interface {
	// Tag lower-cases text and returns its alphabetic and numeric tokens
	// with their part-of-speech tags.
	Tag(ctx context.Context, text string) (Sequence, error)
	// Parse returns the dependency parse of a short phrase.
	Parse(ctx context.Context, text string) (*Parse, error)
}

// Analyzer compares two texts. It must have an Annotator, the other fields
// have usable zero values.
type Analyzer struct {
	Annotator Annotator
	// Minimum number of tokens of a shared pattern, values < 1 mean 1.
	MinLength int
	// Tag both texts concurrently
	Parallel bool
	Log      *zap.Logger
}

func (a *Analyzer) log() *zap.Logger {
	if a.Log == nil {
		return zap.NewNop()
	}
	return a.Log
}

// ReadText reads a UTF-8 text file completely.
func ReadText(path string) (string, error) {
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return "", FileError{Kind: FileNotFound, Path: path, err: err}
	case err != nil:
		return "", FileError{Kind: FileReadError, Path: path, err: err}
	case !utf8.Valid(data):
		return "", FileError{Kind: FileReadError, Path: path, err: errors.New("invalid UTF-8")}
	}
	return string(data), nil
}

// RunFiles reads both inputs, analyzes them and writes the report to out.
// When an input cannot be read no report is written.
func (a *Analyzer) RunFiles(ctx context.Context, in1, in2, out string) (*Result, error) {
	log := a.log()
	log.Info("reading input", zap.String("path", in1))
	text1, err := ReadText(in1)
	if err != nil {
		return nil, err
	}
	log.Info("reading input", zap.String("path", in2))
	text2, err := ReadText(in2)
	if err != nil {
		return nil, err
	}
	res, err := a.Run(ctx, text1, text2)
	if err != nil {
		return nil, err
	}
	log.Info("writing results", zap.String("path", out))
	if err = WriteReportFile(out, res); err != nil {
		return nil, err
	}
	log.Info("done",
		zap.Int("patterns", len(res.Patterns)),
		zap.Int("discrepancies", len(res.Discrepancies)),
		zap.Int("phrases", len(res.Phrases)),
	)
	return res, nil
}

// Run analyzes two texts.
func (a *Analyzer) Run(ctx context.Context, text1, text2 string) (*Result, error) {
	if a.Annotator == nil {
		return nil, errors.New("analyzer without annotator")
	}
	log := a.log()
	seq1, seq2, err := a.tagBoth(ctx, text1, text2)
	if err != nil {
		return nil, err
	}
	res := new(Result)
	log.Info("finding common patterns", zap.Int("min_length", max(a.MinLength, 1)))
	res.Patterns = FindPatterns(seq1, seq2, a.MinLength)
	log.Info("finding POS discrepancies")
	res.Discrepancies = FindDiscrepancies(seq1, seq2)
	if longest := res.Longest(); longest != nil {
		log.Info("analyzing phrase patterns of the longest common pattern",
			zap.String("pattern", longest.Text))
		if res.Phrases, err = a.Phrases(ctx, longest.Text); err != nil {
			return nil, err
		}
	} else {
		log.Info("no common patterns found to analyze for phrase patterns")
	}
	return res, nil
}

// Phrases parses text with the annotator and classifies its phrases.
func (a *Analyzer) Phrases(ctx context.Context, text string) ([]PhraseInfo, error) {
	p, err := a.Annotator.Parse(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("parse phrase '%s': %w", text, err)
	}
	return ClassifyPhrases(p), nil
}

func (a *Analyzer) tagBoth(ctx context.Context, text1, text2 string) (seq1, seq2 Sequence, err error) {
	log := a.log()
	tag := func(ctx context.Context, name, text string, seq *Sequence) (err error) {
		log.Info("normalizing and POS tagging", zap.String("text", name))
		if *seq, err = a.Annotator.Tag(ctx, text); err != nil {
			return fmt.Errorf("tag %s: %w", name, err)
		}
		log.Debug("tagged", zap.String("text", name), zap.Int("tokens", len(*seq)))
		return nil
	}
	if !a.Parallel {
		if err = tag(ctx, "text1", text1, &seq1); err != nil {
			return nil, nil, err
		}
		if err = tag(ctx, "text2", text2, &seq2); err != nil {
			return nil, nil, err
		}
		return seq1, seq2, nil
	}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return tag(gctx, "text1", text1, &seq1) })
	g.Go(func() error { return tag(gctx, "text2", text2, &seq2) })
	if err = g.Wait(); err != nil {
		return nil, nil, err
	}
	return seq1, seq2, nil
}
