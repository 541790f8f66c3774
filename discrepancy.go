package tokcmp

import (
	"cmp"
	"slices"
)

// Discrepancy reports a word that occurs in both texts and carries Tag1 in
// the first text and Tag2 in the second one. Tag1 never equals Tag2.
type Discrepancy struct {
	Word string
	Tag1 string
	Tag2 string
}

// FindDiscrepancies compares the sets of tags each word carries in seq1 and
// seq2. For a word with unequal tag sets every tag that is missing on the
// other side is paired with every tag of the other side. The result is sorted
// by word, then Tag1, then Tag2.
func FindDiscrepancies(seq1, seq2 Sequence) []Discrepancy {
	tags1, tags2 := wordTags(seq1), wordTags(seq2)
	found := make(map[Discrepancy]struct{})
	add := func(d Discrepancy) {
		if d.Tag1 != d.Tag2 {
			found[d] = struct{}{}
		}
	}
	for word, set1 := range tags1 {
		set2, ok := tags2[word]
		if !ok || set1.equal(set2) {
			continue
		}
		for t1 := range set1 {
			if set2.has(t1) {
				continue
			}
			for t2 := range set2 {
				add(Discrepancy{Word: word, Tag1: t1, Tag2: t2})
			}
		}
		for t2 := range set2 {
			if set1.has(t2) {
				continue
			}
			for t1 := range set1 {
				add(Discrepancy{Word: word, Tag1: t1, Tag2: t2})
			}
		}
	}
	if len(found) == 0 {
		return nil
	}
	res := make([]Discrepancy, 0, len(found))
	for d := range found {
		res = append(res, d)
	}
	slices.SortFunc(res, compareDiscrepancies)
	return res
}

func compareDiscrepancies(a, b Discrepancy) int {
	if c := cmp.Compare(a.Word, b.Word); c != 0 {
		return c
	}
	if c := cmp.Compare(a.Tag1, b.Tag1); c != 0 {
		return c
	}
	return cmp.Compare(a.Tag2, b.Tag2)
}

type tagSet map[string]struct{}

func (s tagSet) has(tag string) bool {
	_, ok := s[tag]
	return ok
}

func (s tagSet) equal(t tagSet) bool {
	if len(s) != len(t) {
		return false
	}
	for tag := range s {
		if !t.has(tag) {
			return false
		}
	}
	return true
}

func wordTags(seq Sequence) map[string]tagSet {
	res := make(map[string]tagSet)
	for _, t := range seq {
		set := res[t.Surface]
		if set == nil {
			set = make(tagSet)
			res[t.Surface] = set
		}
		set[t.Tag] = struct{}{}
	}
	return res
}
