package tokcmp

import "strings"

// Dependency labels the phrase heuristics look at.
const (
	DepRoot     = "ROOT"
	DepDObj     = "dobj"
	DepAComp    = "acomp"
	DepAttr     = "attr"
	DepPrep     = "prep"
	DepAdvCl    = "advcl"
	DepCComp    = "ccomp"
	DepXComp    = "xcomp"
	DepAdvMod   = "advmod"
	DepAMod     = "amod"
	DepNSubj    = "nsubj"
	DepPObj     = "pobj"
	DepDet      = "det"
	DepPoss     = "poss"
	DepNumMod   = "nummod"
	DepCompound = "compound"
	DepAux      = "aux"
	DepCC       = "cc"
	DepDep      = "dep"
)

// ParseToken is one token of a dependency parse.
type ParseToken struct {
	Text string
	Tag  string
	Dep  string
	// Index of the syntactic head. A root token is its own head.
	Head int
}

// Span is the token range [Start, End) of a parse.
type Span struct {
	Start, End int
}

// Parse is the dependency parse of a short phrase as delivered by an
// annotator.
type Parse struct {
	Tokens     []ParseToken
	NounChunks []Span

	children [][]int
}

// Children returns the indices of the tokens whose head is token i, in text
// order.
func (p *Parse) Children(i int) []int {
	if p.children == nil {
		p.children = make([][]int, len(p.Tokens))
		for j, t := range p.Tokens {
			if t.Head != j && t.Head >= 0 && t.Head < len(p.Tokens) {
				p.children[t.Head] = append(p.children[t.Head], j)
			}
		}
	}
	return p.children[i]
}

// HeadTag returns the tag of token i's head.
func (p *Parse) HeadTag(i int) string {
	h := p.Tokens[i].Head
	if h < 0 || h >= len(p.Tokens) {
		return ""
	}
	return p.Tokens[h].Tag
}

// SpanRoot returns the index of the token in s whose head lies outside s or
// that is its own head.
func (p *Parse) SpanRoot(s Span) int {
	for i := s.Start; i < s.End; i++ {
		h := p.Tokens[i].Head
		if h == i || h < s.Start || h >= s.End {
			return i
		}
	}
	return s.End - 1
}

func (p *Parse) SpanText(s Span) string {
	words := make([]string, 0, s.End-s.Start)
	for i := s.Start; i < s.End; i++ {
		words = append(words, p.Tokens[i].Text)
	}
	return strings.Join(words, SurfaceSep)
}

// Text joins the token texts of the whole parse.
func (p *Parse) Text() string {
	return p.SpanText(Span{0, len(p.Tokens)})
}
