package tokcmp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyPhrases(t *testing.T) {
	p := &Parse{
		Tokens: []ParseToken{
			{Text: "the", Tag: "DET", Dep: DepDet, Head: 2},
			{Text: "quick", Tag: TagAdj, Dep: DepAMod, Head: 2},
			{Text: "fox", Tag: TagNoun, Dep: DepNSubj, Head: 3},
			{Text: "jumps", Tag: TagVerb, Dep: DepRoot, Head: 3},
			{Text: "over", Tag: "ADP", Dep: DepPrep, Head: 3},
			{Text: "the", Tag: "DET", Dep: DepDet, Head: 6},
			{Text: "dog", Tag: TagNoun, Dep: DepPObj, Head: 4},
		},
		NounChunks: []Span{{0, 3}, {5, 7}},
	}
	assert.Equal(t, []PhraseInfo{
		{
			Pattern:     "the quick fox",
			Type:        NounPhrase,
			Description: "A noun phrase headed by 'fox' ('NOUN') including its modifiers.",
		},
		{
			Pattern:     "the dog",
			Type:        NounPhrase,
			Description: "A noun phrase headed by 'dog' ('NOUN') including its modifiers.",
		},
		{
			Pattern:     "jumps over dog",
			Type:        VerbPhrase,
			Description: "A verb phrase centered around 'jumps' ('VERB') possibly including its objects/complements/adjuncts.",
		},
	}, ClassifyPhrases(p))
}

func TestClassifyPhrases_adjective(t *testing.T) {
	p := &Parse{Tokens: []ParseToken{
		{Text: "very", Tag: TagAdv, Dep: DepAdvMod, Head: 1},
		{Text: "happy", Tag: TagAdj, Dep: DepRoot, Head: 1},
	}}
	assert.Equal(t, []PhraseInfo{{
		Pattern:     "very happy",
		Type:        AdjPhrase,
		Description: "An adjective phrase centered around 'happy' ('ADJ').",
	}}, ClassifyPhrases(p))
}

func TestClassifyPhrases_adverb(t *testing.T) {
	p := &Parse{Tokens: []ParseToken{
		{Text: "quite", Tag: TagAdv, Dep: DepAdvMod, Head: 1},
		{Text: "quickly", Tag: TagAdv, Dep: DepRoot, Head: 1},
	}}
	assert.Equal(t, []PhraseInfo{{
		Pattern:     "quite quickly",
		Type:        AdvPhrase,
		Description: "An adverb phrase centered around 'quickly' ('ADV').",
	}}, ClassifyPhrases(p))
}

func TestClassifyPhrases_bareHeads(t *testing.T) {
	p := &Parse{Tokens: []ParseToken{
		{Text: "runs", Tag: TagVerb, Dep: DepRoot, Head: 0},
	}}
	assert.Empty(t, ClassifyPhrases(p))
	assert.Empty(t, ClassifyPhrases(nil))
	assert.Empty(t, ClassifyPhrases(&Parse{}))
}

func TestClassifyPhrases_textOrder(t *testing.T) {
	// the object precedes its verb
	p := &Parse{Tokens: []ParseToken{
		{Text: "quickly", Tag: TagAdv, Dep: DepAdvMod, Head: 2},
		{Text: "home", Tag: TagNoun, Dep: DepDObj, Head: 2},
		{Text: "ran", Tag: TagVerb, Dep: DepRoot, Head: 2},
		{Text: "away", Tag: TagAdv, Dep: DepAdvMod, Head: 2},
	}}
	ps := ClassifyPhrases(p)
	assert.Len(t, ps, 1)
	assert.Equal(t, "home ran", ps[0].Pattern)
}

func TestPhraseType_String(t *testing.T) {
	assert.Equal(t, "Noun Phrase (NP)", NounPhrase.String())
	assert.Equal(t, "Adverb Phrase (ADVP) - inferred", AdvPhrase.String())
	assert.Equal(t, "PhraseType(9)", PhraseType(9).String())
}
