package annotate

import (
	"context"
	_ "embed"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/clipperhouse/uax29/v2/words"
	"gopkg.in/yaml.v3"

	"github.com/fractalqb/tokcmp"
)

//go:embed lexicon/en.yaml
var defaultLexicon []byte

// Lexicon is a dictionary based tagger. Words with more than one tag are
// disambiguated by their neighbours, unknown words are tagged by suffix
// rules. It is far less accurate than a statistical tagger but needs nothing
// outside the Go binary.
type Lexicon struct {
	words       map[string]tagList
	suffixes    []suffixRule
	possessives map[string]bool
	fallback    string
}

type suffixRule struct {
	Suffix string `yaml:"suffix"`
	Tag    string `yaml:"tag"`
	// Minimum word length for the rule to apply
	MinLen int `yaml:"min_len"`
}

// tagList is the tag or the list of tags of a lexicon word, the first one is
// the default.
type tagList []string

func (tl *tagList) UnmarshalYAML(n *yaml.Node) error {
	switch n.Kind {
	case yaml.ScalarNode:
		*tl = tagList{n.Value}
		return nil
	case yaml.SequenceNode:
		var tags []string
		if err := n.Decode(&tags); err != nil {
			return err
		}
		if len(tags) == 0 {
			return fmt.Errorf("line %d: empty tag list", n.Line)
		}
		*tl = tags
		return nil
	}
	return fmt.Errorf("line %d: tags must be a string or a list of strings", n.Line)
}

type lexiconFile struct {
	Default     string             `yaml:"default"`
	Possessives []string           `yaml:"possessives"`
	Suffixes    []suffixRule       `yaml:"suffixes"`
	Words       map[string]tagList `yaml:"words"`
}

// NewLexicon loads the lexicon file at path or the built-in English lexicon
// if path is empty. Failures are reported as tokcmp.AnnotatorError.
func NewLexicon(path string) (*Lexicon, error) {
	data := defaultLexicon
	if path != "" {
		var err error
		if data, err = os.ReadFile(path); err != nil {
			return nil, tokcmp.NewAnnotatorError("lexicon", err)
		}
	} else {
		path = "built-in"
	}
	lx, err := ParseLexicon(data)
	if err != nil {
		return nil, tokcmp.NewAnnotatorError("lexicon", fmt.Errorf("%s: %w", path, err))
	}
	return lx, nil
}

func ParseLexicon(data []byte) (*Lexicon, error) {
	var lf lexiconFile
	if err := yaml.Unmarshal(data, &lf); err != nil {
		return nil, err
	}
	if len(lf.Words) == 0 {
		return nil, fmt.Errorf("lexicon has no words")
	}
	lx := &Lexicon{
		words:       make(map[string]tagList, len(lf.Words)),
		suffixes:    lf.Suffixes,
		possessives: make(map[string]bool),
		fallback:    lf.Default,
	}
	if lx.fallback == "" {
		lx.fallback = tokcmp.TagNoun
	}
	for w, tags := range lf.Words {
		lx.words[Normalize(w)] = tags
	}
	for _, p := range lf.Possessives {
		lx.possessives[Normalize(p)] = true
	}
	slices.SortStableFunc(lx.suffixes, func(a, b suffixRule) int {
		return len(b.Suffix) - len(a.Suffix)
	})
	return lx, nil
}

func (lx *Lexicon) Tag(ctx context.Context, text string) (tokcmp.Sequence, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	ws := segment(Normalize(text))
	tags := lx.tagWords(ws)
	seq := make(tokcmp.Sequence, len(ws))
	for i, w := range ws {
		seq[i] = tokcmp.Token{Surface: w, Tag: tags[i]}
	}
	return seq, nil
}

// Parse tags text like Tag and attaches the words with a shallow rule based
// dependency analysis, see shallowParse.
func (lx *Lexicon) Parse(ctx context.Context, text string) (*tokcmp.Parse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	ws := segment(Normalize(text))
	return shallowParse(ws, lx.tagWords(ws), lx.possessives), nil
}

func segment(text string) (res []string) {
	iter := words.FromString(text)
	for iter.Next() {
		if w := iter.Value(); Keep(w) {
			res = append(res, w)
		}
	}
	return res
}

func (lx *Lexicon) candidates(word string) tagList {
	if tags, ok := lx.words[word]; ok {
		return tags
	}
	if all(word, isDigit) {
		return tagList{"NUM"}
	}
	for _, r := range lx.suffixes {
		if len(word) >= max(r.MinLen, len(r.Suffix)+1) && strings.HasSuffix(word, r.Suffix) {
			return tagList{r.Tag}
		}
	}
	return tagList{lx.fallback}
}

func isDigit(r rune) bool { return r >= '0' && r <= '9' }

func (lx *Lexicon) tagWords(ws []string) []string {
	tags := make([]string, len(ws))
	for i, w := range ws {
		cands := lx.candidates(w)
		tags[i] = cands[0]
		if len(cands) == 1 {
			continue
		}
		var prevWord, prevTag string
		if i > 0 {
			prevWord, prevTag = ws[i-1], tags[i-1]
		}
		var next tagList
		if i+1 < len(ws) {
			next = lx.candidates(ws[i+1])
		}
		tags[i] = lx.disambiguate(cands, prevWord, prevTag, next)
	}
	return tags
}

func (lx *Lexicon) disambiguate(cands tagList, prevWord, prevTag string, next tagList) string {
	prefer := func(tag string) (string, bool) {
		return tag, slices.Contains(cands, tag)
	}
	switch {
	case lx.possessives[prevWord], prevTag == "DET", prevTag == "ADJ", prevTag == "NUM":
		if t, ok := prefer(tokcmp.TagNoun); ok {
			return t
		}
	case prevTag == "PRON", prevTag == "AUX", prevTag == "PART":
		if t, ok := prefer(tokcmp.TagVerb); ok {
			return t
		}
	}
	if len(next) > 0 && next[0] == tokcmp.TagVerb {
		if t, ok := prefer("PART"); ok {
			return t
		}
	}
	return cands[0]
}
