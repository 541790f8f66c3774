package annotate

import "github.com/fractalqb/tokcmp"

// shallowParse derives a dependency structure from tags alone:
//
//   - noun chunks are runs of determiners, possessives, numbers, adjectives
//     (optionally preceded by an adverb) ending in nouns; a lone pronoun is a
//     chunk too
//   - the first verb is the root, else the first auxiliary, else the first
//     chunk's noun, else the first adjective or adverb, else the first word
//   - chunk nouns become subjects before the root, prepositional objects
//     after a preposition and direct objects otherwise
//   - prepositions attach to the closest preceding verb or noun
//
// This gives the phrase heuristics something to work on when no real parser
// is available.
func shallowParse(ws, tags []string, possessives map[string]bool) *tokcmp.Parse {
	n := len(ws)
	p := &tokcmp.Parse{Tokens: make([]tokcmp.ParseToken, n)}
	if n == 0 {
		return p
	}
	for i := range ws {
		p.Tokens[i] = tokcmp.ParseToken{Text: ws[i], Tag: tags[i], Head: -1}
	}
	attach := func(i, head int, dep string) {
		p.Tokens[i].Head = head
		p.Tokens[i].Dep = dep
	}

	chunkOf := make([]int, n)
	for i := range chunkOf {
		chunkOf[i] = -1
	}
	for i := 0; i < n; {
		end, root, ok := chunkAt(tags, i)
		if !ok {
			i++
			continue
		}
		c := len(p.NounChunks)
		p.NounChunks = append(p.NounChunks, tokcmp.Span{Start: i, End: end})
		for j := i; j < end; j++ {
			chunkOf[j] = c
			switch {
			case j == root:
			case tags[j] == "ADV":
				attach(j, j+1, tokcmp.DepAdvMod)
			default:
				attach(j, root, modifierDep(ws[j], tags[j], possessives))
			}
		}
		i = end
	}

	root := firstTag(tags, tokcmp.TagVerb, "AUX")
	if root < 0 && len(p.NounChunks) > 0 {
		root = p.SpanRoot(p.NounChunks[0])
	}
	if root < 0 {
		root = max(firstTag(tags, tokcmp.TagAdj, tokcmp.TagAdv), 0)
	}
	attach(root, root, tokcmp.DepRoot)
	rootIsVerb := tags[root] == tokcmp.TagVerb || tags[root] == "AUX"

	for i := range p.Tokens {
		if p.Tokens[i].Head >= 0 {
			continue
		}
		switch {
		case chunkOf[i] >= 0:
			start := p.NounChunks[chunkOf[i]].Start
			switch {
			case start > 0 && tags[start-1] == "ADP":
				attach(i, start-1, tokcmp.DepPObj)
			case i < root:
				attach(i, root, tokcmp.DepNSubj)
			case rootIsVerb && tags[root] == "AUX":
				attach(i, root, tokcmp.DepAttr)
			case rootIsVerb:
				attach(i, root, tokcmp.DepDObj)
			default:
				attach(i, root, tokcmp.DepDep)
			}
		case tags[i] == "ADP":
			attach(i, prepHead(tags, chunkOf, p, i, root), tokcmp.DepPrep)
		case tags[i] == tokcmp.TagAdv:
			if i+1 < n && tags[i+1] == tokcmp.TagAdj {
				attach(i, i+1, tokcmp.DepAdvMod)
			} else {
				attach(i, root, tokcmp.DepAdvMod)
			}
		case tags[i] == tokcmp.TagAdj:
			if rootIsVerb {
				attach(i, root, tokcmp.DepAComp)
			} else {
				attach(i, root, tokcmp.DepDep)
			}
		case tags[i] == "AUX":
			attach(i, root, tokcmp.DepAux)
		case tags[i] == "PART" && i+1 < n && tags[i+1] == tokcmp.TagVerb:
			attach(i, i+1, tokcmp.DepAux)
		case tags[i] == "CCONJ":
			attach(i, root, tokcmp.DepCC)
		case tags[i] == tokcmp.TagVerb && i > root:
			attach(i, root, tokcmp.DepXComp)
		case tags[i] == tokcmp.TagVerb:
			attach(i, root, tokcmp.DepAdvCl)
		default:
			attach(i, root, tokcmp.DepDep)
		}
	}
	return p
}

// firstTag returns the index of the first word tagged with want[0], if there
// is none of want[1] and so on. It returns -1 if no tag is found.
func firstTag(tags []string, want ...string) int {
	for _, w := range want {
		for i, t := range tags {
			if t == w {
				return i
			}
		}
	}
	return -1
}

func isNominal(tag string) bool {
	return tag == tokcmp.TagNoun || tag == tokcmp.TagPropN
}

func chunkAt(tags []string, i int) (end, root int, ok bool) {
	j := i
	for j < len(tags) {
		switch tags[j] {
		case "DET", "NUM", "PRON", tokcmp.TagAdj:
			j++
			continue
		case tokcmp.TagAdv:
			if j+1 < len(tags) && tags[j+1] == tokcmp.TagAdj {
				j++
				continue
			}
		}
		break
	}
	k := j
	for k < len(tags) && isNominal(tags[k]) {
		k++
	}
	switch {
	case k > j:
		return k, k - 1, true
	case tags[i] == "PRON":
		return i + 1, i, true
	}
	return 0, 0, false
}

func modifierDep(word, tag string, possessives map[string]bool) string {
	switch tag {
	case "DET":
		return tokcmp.DepDet
	case "NUM":
		return tokcmp.DepNumMod
	case "PRON":
		if possessives[word] {
			return tokcmp.DepPoss
		}
		return tokcmp.DepDep
	case tokcmp.TagAdj:
		return tokcmp.DepAMod
	}
	return tokcmp.DepCompound
}

func prepHead(tags []string, chunkOf []int, p *tokcmp.Parse, i, root int) int {
	for j := i - 1; j >= 0; j-- {
		switch {
		case tags[j] == tokcmp.TagVerb:
			return j
		case chunkOf[j] >= 0:
			return p.SpanRoot(p.NounChunks[chunkOf[j]])
		}
	}
	if root == i {
		return i
	}
	return root
}
