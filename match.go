package tokcmp

import (
	"cmp"
	"slices"
	"strings"

	"git.fractalqb.de/fractalqb/icontainer/islist"
)

// Pattern is a run of tokens that occurs in both compared texts with the same
// surface forms and the same tags.
type Pattern struct {
	// Surface forms joined by single spaces. Patterns are unique by Text.
	Text string
	// Tags joined by '-'
	Tags        string
	Length      int
	SourceCount int
}

// Matcher finds the shared token patterns of two sequences. The zero value
// uses a minimum pattern length of 1.
//
// A surface text is a candidate if it is a contiguous run of at least
// MinLength tokens in both sequences and the tags of its last occurrence are
// the same in both sequences. Candidates that are a substring of a longer
// accepted candidate are suppressed. The result is ordered by length
// (descending) and then by the first occurrence in the first sequence.
type Matcher struct {
	MinLength int
}

// FindPatterns is a shortcut for Matcher{MinLength: minLength}.Patterns.
func FindPatterns(seq1, seq2 Sequence, minLength int) []Pattern {
	return Matcher{MinLength: minLength}.Patterns(seq1, seq2)
}

func (m Matcher) Patterns(seq1, seq2 Sequence) []Pattern {
	minLen := max(m.MinLength, 1)
	if len(seq1) < minLen || len(seq2) < minLen {
		return nil
	}
	words, tags := make(symbols), make(symbols)
	w1, g1 := encode(seq1, words, tags)
	w2, g2 := encode(seq2, words, tags)
	reach1, reach2 := commonReach(w1, w2)

	texts, tagRuns := newChainTable(), newChainTable()
	side2 := walkSpans(w2, g2, reach2, texts, tagRuns)
	side1 := walkSpans(w1, g1, reach1, texts, tagRuns)
	occ1 := side1.occurrences(texts.size())
	occ2 := side2.occurrences(texts.size())
	candidate := func(id int32) bool {
		o1, o2 := &occ1[id], &occ2[id]
		return int(texts.lens[id]) >= minLen &&
			o1.first >= 0 && o2.first >= 0 &&
			o1.tags == o2.tags
	}

	// A candidate that extends to a longer candidate by one token is always
	// suppressed. Marking those first keeps the substring checks below to
	// the locally maximal runs.
	extendable := make([]bool, texts.size())
	for i, ids := range side1.text {
		for l := minLen; l < len(ids); l++ {
			if !candidate(ids[l]) {
				continue
			}
			extendable[ids[l-1]] = true
			extendable[side1.text[i+1][l-1]] = true
		}
	}

	var cands []match
	for id := int32(1); id < int32(texts.size()); id++ {
		if extendable[id] || !candidate(id) {
			continue
		}
		o := &occ1[id]
		run := seq1[o.last : o.last+int(texts.lens[id])]
		cands = append(cands, match{
			Pattern: Pattern{
				Text:        run.Text(),
				Tags:        run.Tags(),
				Length:      len(run),
				SourceCount: 1,
			},
			first: o.first,
		})
	}
	slices.SortFunc(cands, func(a, b match) int {
		if c := cmp.Compare(b.Length, a.Length); c != 0 {
			return c
		}
		if c := cmp.Compare(b.SourceCount, a.SourceCount); c != 0 {
			return c
		}
		return cmp.Compare(a.first, b.first)
	})
	return suppressContained(cands)
}

type match struct {
	Pattern
	first int
	next  *match
}

// ListNext to implement intrusive singly linked list
func (m *match) ListNext() islist.Node {
	if m.next == nil {
		return nil
	}
	return m.next
}

// SetListNext to implement intrusive singly linked list
func (m *match) SetListNext(n islist.Node) {
	if n == nil {
		m.next = nil
	} else {
		m.next = n.(*match)
	}
}

// suppressContained expects cands sorted by descending length.
func suppressContained(cands []match) []Pattern {
	var kept *islist.List
CANDIDATES:
	for i := range cands {
		c := &cands[i]
		if kept == nil {
			kept = islist.New(c)
			continue
		}
		n := kept.Front()
		for range kept.Len() {
			k := n.(*match)
			if k.Length > c.Length && strings.Contains(k.Text, c.Text) {
				continue CANDIDATES
			}
			n = n.ListNext()
		}
		kept.PushBack(c)
	}
	if kept == nil {
		return nil
	}
	res := make([]Pattern, 0, kept.Len())
	n := kept.Front()
	for range kept.Len() {
		res = append(res, n.(*match).Pattern)
		n = n.ListNext()
	}
	return res
}

// symbols interns strings to small integers
type symbols map[string]int32

func (s symbols) id(str string) int32 {
	if id, ok := s[str]; ok {
		return id
	}
	id := int32(len(s))
	s[str] = id
	return id
}

func encode(seq Sequence, words, tags symbols) (w, g []int32) {
	w = make([]int32, len(seq))
	g = make([]int32, len(seq))
	for i, t := range seq {
		w[i] = words.id(t.Surface)
		g[i] = tags.id(t.Tag)
	}
	return w, g
}

// commonReach computes for each position the length of the longest run
// starting there that also occurs in the other sequence.
func commonReach(w1, w2 []int32) (reach1, reach2 []int) {
	reach1 = make([]int, len(w1))
	reach2 = make([]int, len(w2))
	next := make([]int, len(w2)+1)
	cur := make([]int, len(w2)+1)
	for i := len(w1) - 1; i >= 0; i-- {
		for j := len(w2) - 1; j >= 0; j-- {
			if w1[i] == w2[j] {
				cur[j] = next[j+1] + 1
			} else {
				cur[j] = 0
			}
			reach1[i] = max(reach1[i], cur[j])
			reach2[j] = max(reach2[j], cur[j])
		}
		cur, next = next, cur
	}
	return reach1, reach2
}

// chainTable gives each distinct symbol sequence a dense id by chaining
// (prefix id, last symbol). Id 0 is the empty sequence.
type chainTable struct {
	ids  map[[2]int32]int32
	lens []int32
}

func newChainTable() *chainTable {
	return &chainTable{
		ids:  make(map[[2]int32]int32),
		lens: []int32{0},
	}
}

func (ct *chainTable) extend(prefix, sym int32) int32 {
	k := [2]int32{prefix, sym}
	if id, ok := ct.ids[k]; ok {
		return id
	}
	id := int32(len(ct.lens))
	ct.ids[k] = id
	ct.lens = append(ct.lens, ct.lens[prefix]+1)
	return id
}

func (ct *chainTable) size() int { return len(ct.lens) }

// spans holds the chain ids of all runs of one sequence that may be shared:
// text[i][l-1] is the surface chain of the l tokens starting at i, tags[i][l-1]
// the matching tag chain.
type spans struct {
	text [][]int32
	tags [][]int32
}

func walkSpans(w, g []int32, reach []int, texts, tagRuns *chainTable) spans {
	s := spans{
		text: make([][]int32, len(w)),
		tags: make([][]int32, len(w)),
	}
	for i := range w {
		n := reach[i]
		if n == 0 {
			continue
		}
		s.text[i] = make([]int32, n)
		s.tags[i] = make([]int32, n)
		var tid, gid int32
		for l := 0; l < n; l++ {
			tid = texts.extend(tid, w[i+l])
			gid = tagRuns.extend(gid, g[i+l])
			s.text[i][l], s.tags[i][l] = tid, gid
		}
	}
	return s
}

type occurrence struct {
	first, last int // start positions, first is -1 if the run does not occur
	tags        int32
}

// occurrences records per surface chain its first and last start position and
// the tag chain of the last occurrence.
func (s spans) occurrences(n int) []occurrence {
	occ := make([]occurrence, n)
	for i := range occ {
		occ[i].first = -1
	}
	for i, ids := range s.text {
		for l, id := range ids {
			o := &occ[id]
			if o.first < 0 {
				o.first = i
			}
			o.last = i
			o.tags = s.tags[i][l]
		}
	}
	return occ
}
