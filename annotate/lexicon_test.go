package annotate

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fractalqb/tokcmp"
)

func lexicon(t *testing.T) *Lexicon {
	t.Helper()
	lx, err := NewLexicon("")
	require.NoError(t, err)
	return lx
}

func tagString(seq tokcmp.Sequence) string {
	var sb strings.Builder
	for i, t := range seq {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(t.Surface)
		sb.WriteByte('/')
		sb.WriteString(t.Tag)
	}
	return sb.String()
}

func TestLexicon_Tag(t *testing.T) {
	lx := lexicon(t)
	tests := []struct {
		text, want string
	}{
		{"The quick brown fox jumps over the lazy dog.",
			"the/DET quick/ADJ brown/ADJ fox/NOUN jumps/VERB over/ADP the/DET lazy/ADJ dog/NOUN"},
		{"They run. The run was long!",
			"they/PRON run/VERB the/DET run/NOUN was/AUX long/ADJ"},
		{"I want to run to the house",
			"i/PRON want/VERB to/PART run/VERB to/ADP the/DET house/NOUN"},
		{"My book, your draft", "my/PRON book/NOUN your/PRON draft/NOUN"},
		{"Zorp happily walking 42 times", "zorp/NOUN happily/ADV walking/VERB 42/NUM times/NOUN"},
		{"sing fed", "sing/NOUN fed/NOUN"},
		{"Don't panic -- it's fine", "panic/NOUN fine/NOUN"},
		{"", ""},
	}
	for _, test := range tests {
		t.Run(test.text, func(t *testing.T) {
			seq, err := lx.Tag(context.Background(), test.text)
			require.NoError(t, err)
			assert.Equal(t, test.want, tagString(seq))
		})
	}
}

func TestLexicon_Tag_canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := lexicon(t).Tag(ctx, "fox")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestLexicon_Parse(t *testing.T) {
	p, err := lexicon(t).Parse(context.Background(), "the quick fox jumps over the lazy dog")
	require.NoError(t, err)
	var deps []string
	for _, tok := range p.Tokens {
		deps = append(deps, tok.Dep)
	}
	assert.Equal(t, []string{
		tokcmp.DepDet, tokcmp.DepAMod, tokcmp.DepNSubj, tokcmp.DepRoot,
		tokcmp.DepPrep, tokcmp.DepDet, tokcmp.DepAMod, tokcmp.DepPObj,
	}, deps)
	assert.Equal(t, []tokcmp.Span{{Start: 0, End: 3}, {Start: 5, End: 8}}, p.NounChunks)

	var phrases []string
	for _, ph := range tokcmp.ClassifyPhrases(p) {
		phrases = append(phrases, ph.Type.String()+": "+ph.Pattern)
	}
	assert.Equal(t, []string{
		"Noun Phrase (NP): the quick fox",
		"Noun Phrase (NP): the lazy dog",
		"Verb Phrase (VP) - inferred: jumps over dog",
	}, phrases)
}

func TestLexicon_Parse_phrases(t *testing.T) {
	lx := lexicon(t)
	tests := []struct {
		text string
		want []string
	}{
		{"very happy", []string{"Adjective Phrase (ADJP) - inferred: very happy"}},
		{"the lazy dog", []string{"Noun Phrase (NP): the lazy dog"}},
		{"he reads a book", []string{
			"Noun Phrase (NP): he",
			"Noun Phrase (NP): a book",
			"Verb Phrase (VP) - inferred: reads book",
		}},
		{"the dog is happy", []string{
			"Noun Phrase (NP): the dog",
		}},
	}
	for _, test := range tests {
		t.Run(test.text, func(t *testing.T) {
			p, err := lx.Parse(context.Background(), test.text)
			require.NoError(t, err)
			var got []string
			for _, ph := range tokcmp.ClassifyPhrases(p) {
				got = append(got, ph.Type.String()+": "+ph.Pattern)
			}
			assert.Equal(t, test.want, got)
		})
	}
}

func TestLexicon_Parse_empty(t *testing.T) {
	p, err := lexicon(t).Parse(context.Background(), " ... ")
	require.NoError(t, err)
	assert.Empty(t, p.Tokens)
	assert.Empty(t, tokcmp.ClassifyPhrases(p))
}

func TestParseLexicon(t *testing.T) {
	lx, err := ParseLexicon([]byte(`
default: X
suffixes:
  - {suffix: o, tag: O}
  - {suffix: oo, tag: OO}
words:
  Alpha: A
  beta: [B, C]
`))
	require.NoError(t, err)
	assert.Equal(t, tagList{"A"}, lx.candidates("alpha"))
	assert.Equal(t, tagList{"B", "C"}, lx.candidates("beta"))
	assert.Equal(t, tagList{"OO"}, lx.candidates("zoo"))
	assert.Equal(t, tagList{"O"}, lx.candidates("go"))
	assert.Equal(t, tagList{"X"}, lx.candidates("o"))
	assert.Equal(t, tagList{"NUM"}, lx.candidates("7"))

	_, err = ParseLexicon([]byte("default: X\n"))
	assert.Error(t, err)
	_, err = ParseLexicon([]byte("words:\n  a: []\n"))
	assert.Error(t, err)
	_, err = ParseLexicon([]byte("words:\n  a: {b: c}\n"))
	assert.Error(t, err)
}

func TestNewLexicon_file(t *testing.T) {
	file := filepath.Join(t.TempDir(), "lex.yaml")
	require.NoError(t, os.WriteFile(file, []byte("words:\n  fox: NOUN\n"), 0666))
	lx, err := NewLexicon(file)
	require.NoError(t, err)
	seq, err := lx.Tag(context.Background(), "Fox")
	require.NoError(t, err)
	assert.Equal(t, "fox/NOUN", tagString(seq))

	_, err = NewLexicon(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, tokcmp.ErrAnnotatorUnavailable)
	var aerr tokcmp.AnnotatorError
	require.ErrorAs(t, err, &aerr)
	assert.Equal(t, "lexicon", aerr.Annotator)
}
