package tokcmp

import (
	"fmt"
	"slices"
	"strings"
)

type PhraseType int

const (
	NounPhrase PhraseType = iota
	VerbPhrase
	AdjPhrase
	AdvPhrase
)

func (t PhraseType) String() string {
	switch t {
	case NounPhrase:
		return "Noun Phrase (NP)"
	case VerbPhrase:
		return "Verb Phrase (VP) - inferred"
	case AdjPhrase:
		return "Adjective Phrase (ADJP) - inferred"
	case AdvPhrase:
		return "Adverb Phrase (ADVP) - inferred"
	}
	return fmt.Sprintf("PhraseType(%d)", int(t))
}

// PhraseInfo describes one phrase found in a parse.
type PhraseInfo struct {
	Pattern     string
	Type        PhraseType
	Description string
}

var (
	verbPhraseDeps = []string{DepDObj, DepAComp, DepAttr, DepPrep, DepAdvCl, DepCComp, DepXComp}
	adjPhraseDeps  = []string{DepAdvMod, DepAMod, DepPrep}
	advPhraseDeps  = []string{DepAdvMod, DepPrep}
)

// ClassifyPhrases labels the phrases of a parse. It is a heuristic and by no
// means a phrase grammar:
//
//   - each noun chunk is a noun phrase
//   - a root verb together with its objects, complements and adjuncts is a
//     verb phrase; prepositions bring their own children along
//   - an adjective that does not modify a noun together with its modifiers
//     is an adjective phrase
//   - an adverb that does not modify a verb together with its modifiers is an
//     adverb phrase
//
// Verb, adjective and adverb phrases are reported only if they contain more
// than the head word. Phrase tokens are put in text order.
func ClassifyPhrases(p *Parse) []PhraseInfo {
	if p == nil {
		return nil
	}
	var res []PhraseInfo
	for _, chunk := range p.NounChunks {
		root := &p.Tokens[p.SpanRoot(chunk)]
		res = append(res, PhraseInfo{
			Pattern: p.SpanText(chunk),
			Type:    NounPhrase,
			Description: fmt.Sprintf(
				"A noun phrase headed by '%s' ('%s') including its modifiers.",
				root.Text, root.Tag,
			),
		})
	}
	for i := range p.Tokens {
		tok := &p.Tokens[i]
		switch {
		case tok.Tag == TagVerb && tok.Dep == DepRoot:
			idxs := []int{i}
			for _, c := range p.Children(i) {
				dep := p.Tokens[c].Dep
				if !slices.Contains(verbPhraseDeps, dep) {
					continue
				}
				idxs = append(idxs, c)
				if dep == DepPrep {
					idxs = append(idxs, p.Children(c)...)
				}
			}
			if text := p.phraseText(idxs); text != tok.Text {
				res = append(res, PhraseInfo{
					Pattern: text,
					Type:    VerbPhrase,
					Description: fmt.Sprintf(
						"A verb phrase centered around '%s' ('%s') possibly including its objects/complements/adjuncts.",
						tok.Text, tok.Tag,
					),
				})
			}
		case tok.Tag == TagAdj && p.HeadTag(i) != TagNoun:
			if text := p.phraseText(p.withChildren(i, adjPhraseDeps)); text != tok.Text {
				res = append(res, PhraseInfo{
					Pattern: text,
					Type:    AdjPhrase,
					Description: fmt.Sprintf(
						"An adjective phrase centered around '%s' ('%s').",
						tok.Text, tok.Tag,
					),
				})
			}
		case tok.Tag == TagAdv && p.HeadTag(i) != TagVerb:
			if text := p.phraseText(p.withChildren(i, advPhraseDeps)); text != tok.Text {
				res = append(res, PhraseInfo{
					Pattern: text,
					Type:    AdvPhrase,
					Description: fmt.Sprintf(
						"An adverb phrase centered around '%s' ('%s').",
						tok.Text, tok.Tag,
					),
				})
			}
		}
	}
	return res
}

func (p *Parse) withChildren(i int, deps []string) []int {
	idxs := []int{i}
	for _, c := range p.Children(i) {
		if slices.Contains(deps, p.Tokens[c].Dep) {
			idxs = append(idxs, c)
		}
	}
	return idxs
}

func (p *Parse) phraseText(idxs []int) string {
	idxs = slices.Clone(idxs)
	slices.Sort(idxs)
	words := make([]string, len(idxs))
	for i, idx := range idxs {
		words[i] = p.Tokens[idx].Text
	}
	return strings.Join(words, SurfaceSep)
}
