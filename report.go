package tokcmp

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Result collects everything one analysis run found.
type Result struct {
	Patterns      []Pattern
	Discrepancies []Discrepancy
	// Phrases of the longest shared pattern
	Phrases []PhraseInfo
}

// Longest returns the first, i.e. longest, pattern or nil.
func (r *Result) Longest() *Pattern {
	if len(r.Patterns) == 0 {
		return nil
	}
	return &r.Patterns[0]
}

func sectionHead(w io.Writer, title string) {
	fmt.Fprintf(w, "---\n## %s\n---\n", title)
}

// WriteReport writes the plain text report of r. Every section is written,
// empty sections get a "none found" line.
func WriteReport(w io.Writer, r *Result) error {
	bw := bufio.NewWriter(w)
	WritePatterns(bw, r.Patterns)
	fmt.Fprintln(bw)
	WriteDiscrepancies(bw, r.Discrepancies)
	fmt.Fprintln(bw)
	WritePhrases(bw, r.Phrases)
	return bw.Flush()
}

func WritePatterns(w io.Writer, ps []Pattern) {
	sectionHead(w, "Shared Token Patterns (Text and POS Match)")
	if len(ps) == 0 {
		fmt.Fprintln(w, "No shared token patterns found.")
		return
	}
	for i, p := range ps {
		fmt.Fprintf(w, "%d. \"%s\" (Length: %d tokens, POS: %s)\n",
			i+1, p.Text, p.Length, p.Tags)
	}
}

func WriteDiscrepancies(w io.Writer, ds []Discrepancy) {
	sectionHead(w, "POS Discrepancies (Same Word, Different POS)")
	if len(ds) == 0 {
		fmt.Fprintln(w, "No POS discrepancies found.")
		return
	}
	fmt.Fprintln(w, "Words with POS Discrepancies:")
	for _, d := range ds {
		fmt.Fprintf(w, "  Word: \"%s\"\n", d.Word)
		fmt.Fprintf(w, "    Text1 POS: %s\n", d.Tag1)
		fmt.Fprintf(w, "    Text2 POS: %s\n", d.Tag2)
		fmt.Fprintln(w)
	}
}

func WritePhrases(w io.Writer, ps []PhraseInfo) {
	sectionHead(w, "Phrase Pattern Analysis of the Longest Common Pattern")
	if len(ps) == 0 {
		fmt.Fprintln(w, "No phrase patterns identified in the longest common pattern.")
		return
	}
	for _, p := range ps {
		fmt.Fprintf(w, "  Pattern: \"%s\"\n", p.Pattern)
		fmt.Fprintf(w, "  Type: %s\n", p.Type)
		fmt.Fprintf(w, "  Description: %s\n", p.Description)
		fmt.Fprintln(w)
	}
}

// WriteReportFile writes the report to a temporary file next to path and
// renames it into place. A failing write leaves no partial report behind.
func WriteReportFile(path string, r *Result) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*")
	if err != nil {
		return FileError{Kind: FileWriteError, Path: path, err: err}
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()
	if err = WriteReport(tmp, r); err != nil {
		return FileError{Kind: FileWriteError, Path: path, err: err}
	}
	if err = tmp.Close(); err != nil {
		return FileError{Kind: FileWriteError, Path: path, err: err}
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return FileError{Kind: FileWriteError, Path: path, err: err}
	}
	return nil
}
