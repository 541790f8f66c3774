// Package annotate provides the annotators tokcmp runs texts through.
//
// SpaCy runs a spaCy pipeline in a python sidecar process, Lexicon is a
// self-contained lexicon tagger with a shallow dependency parser and Fixture
// returns canned annotations for tests.
package annotate

import (
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// Normalize composes text to NFC and lower-cases it.
func Normalize(text string) string {
	// A Caser is stateful, don't share it between goroutines
	return cases.Lower(language.Und).String(norm.NFC.String(text))
}

// Keep reports whether a token is purely alphabetic or purely numeric.
func Keep(surface string) bool {
	return surface != "" && (all(surface, unicode.IsLetter) || all(surface, unicode.IsDigit))
}

func all(s string, pred func(rune) bool) bool {
	for _, r := range s {
		if !pred(r) {
			return false
		}
	}
	return true
}
