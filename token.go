package tokcmp

import "strings"

// Universal part-of-speech tags the phrase heuristics look at.
const (
	TagNoun  = "NOUN"
	TagPropN = "PROPN"
	TagVerb  = "VERB"
	TagAdj   = "ADJ"
	TagAdv   = "ADV"
)

// Separators used to render token runs.
const (
	SurfaceSep = " "
	TagSep     = "-"
)

// Token is one annotated word of a text. Surface is lower-cased and consists
// of letters or digits only; the annotator drops everything else.
type Token struct {
	Surface string
	Tag     string
}

// Sequence is the annotated token stream of one text in text order.
type Sequence []Token

// Text joins the surface forms with single spaces.
func (s Sequence) Text() string {
	switch len(s) {
	case 0:
		return ""
	case 1:
		return s[0].Surface
	}
	var sb strings.Builder
	sb.WriteString(s[0].Surface)
	for _, t := range s[1:] {
		sb.WriteString(SurfaceSep)
		sb.WriteString(t.Surface)
	}
	return sb.String()
}

// Tags joins the tags with '-'.
func (s Sequence) Tags() string {
	tags := make([]string, len(s))
	for i, t := range s {
		tags[i] = t.Tag
	}
	return strings.Join(tags, TagSep)
}
