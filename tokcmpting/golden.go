// Package tokcmpting compares test output with golden files, e.g. reports
// written by tokcmp.WriteReport.
//
// Example reads the expected output from testdata/TestReport.golden:
//
//	func TestReport(t *testing.T) {
//		var buf bytes.Buffer
//		tokcmp.WriteReport(&buf, result)
//		tokcmpting.Error(t, "", &buf)
//	}
//
// A missing golden file is recorded by running the test with the RecordEnv
// variable set to a regexp matching the test's name.
package tokcmpting

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// When this environment variable is set to a regexp and the name of the current
// test matches, calls to Error or Fatal record subj as the new golden file
// instead of comparing it. E.g.
//
//	TOKCMP_RECORD=TestWriteReport go test .
const RecordEnv = "TOKCMP_RECORD"

// GoTestdataDir is the name of Go's default directory for testdata (see go help
// test).
const GoTestdataDir = "testdata"

func Error(t testing.TB, hint string, subj io.Reader) error {
	return defaultConfig.Error(t, hint, subj)
}

func Fatal(t testing.TB, hint string, subj io.Reader) {
	defaultConfig.Fatal(t, hint, subj)
}

func Record(t testing.TB, hint string, subj io.Reader) {
	defaultConfig.Record(t, hint, subj)
}

// RefRepo maps tests to golden files below Dir.
type RefRepo struct {
	Dir    string
	Suffix string
}

const (
	StdSuffix = ".golden"
	NoSuffix  = "\x00"
	// Suffix appended to a golden file's name to keep mismatching output
	GotSuffix = ".got"
)

func (rr RefRepo) Filename(t testing.TB, hint string) string {
	suffix := rr.Suffix
	switch suffix {
	case "":
		suffix = StdSuffix
	case NoSuffix:
		suffix = ""
	}
	if hint == "" {
		return filepath.Join(rr.Dir, t.Name()+suffix)
	}
	if suffix == "" || strings.HasSuffix(hint, suffix) {
		return filepath.Join(rr.Dir, t.Name(), hint)
	}
	return filepath.Join(rr.Dir, t.Name(), hint+suffix)
}

type Config struct {
	RefFileName     func(t testing.TB, hint string) string
	RecordOverwrite bool
	// Write mismatching output next to the golden file
	KeepSubject bool
	// Maximum number of differing lines logged, < 1 logs all
	DiffLimit int
}

var defaultConfig = Config{
	RefFileName:     RefRepo{Dir: GoTestdataDir}.Filename,
	RecordOverwrite: false,
	KeepSubject:     true,
	DiffLimit:       20,
}

func (cfg Config) Error(t testing.TB, hint string, subj io.Reader) error {
	t.Helper()
	if recordTest(t) {
		cfg.Record(t, hint, subj)
		return nil
	}
	err := cfg.compare(t, hint, subj)
	if err != nil {
		t.Error(err)
	}
	return err
}

func (cfg Config) Fatal(t testing.TB, hint string, subj io.Reader) {
	t.Helper()
	if recordTest(t) {
		cfg.Record(t, hint, subj)
	} else if err := cfg.compare(t, hint, subj); err != nil {
		t.Fatal(err)
	}
}

func recordTest(t testing.TB) bool {
	rec := os.Getenv(RecordEnv)
	if rec == "" {
		return false
	}
	r, err := regexp.Compile(rec)
	if err != nil {
		t.Logf("tokcmpting: invalid regexp '%s' in %s, not recording: %s", rec, RecordEnv, err)
		return false
	}
	return r.MatchString(t.Name())
}

// ErrMismatch is returned when the subject differs from the golden file.
var ErrMismatch = errors.New("subject differs from golden file")

func (cfg *Config) compare(t testing.TB, hint string, subj io.Reader) error {
	t.Helper()
	reffile := cfg.RefFileName(t, hint)
	want, err := os.ReadFile(reffile)
	if errors.Is(err, os.ErrNotExist) {
		t.Logf("to record the golden file run '%[1]s=%[2]s go test -run %[2]s'",
			RecordEnv,
			t.Name(),
		)
		return fmt.Errorf("golden file %s does not exist", reffile)
	} else if err != nil {
		return err
	}
	got, err := io.ReadAll(subj)
	if err != nil {
		return err
	}
	keepfile := reffile + GotSuffix
	if string(got) == string(want) {
		os.Remove(keepfile)
		return nil
	}
	logDiff(t, hint, string(want), string(got), cfg.DiffLimit)
	if cfg.KeepSubject {
		if err := os.WriteFile(keepfile, got, 0666); err != nil {
			t.Logf("cannot keep subject: %s", err)
		} else {
			t.Logf("kept subject in %s", keepfile)
		}
	}
	return fmt.Errorf("%s: %w", reffile, ErrMismatch)
}

// LineDiff returns the differing lines of want and got, prefixed with '-' for
// lines only in want and '+' for lines only in got.
func LineDiff(want, got string) []string {
	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(want, got)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)
	var res []string
	for _, d := range diffs {
		var mark string
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			mark = "-"
		case diffmatchpatch.DiffInsert:
			mark = "+"
		default:
			continue
		}
		for _, l := range strings.SplitAfter(d.Text, "\n") {
			if l != "" {
				res = append(res, mark+strings.TrimSuffix(l, "\n"))
			}
		}
	}
	return res
}

func logDiff(t testing.TB, hint, want, got string, limit int) {
	t.Helper()
	if hint == "" {
		hint = "subject"
	}
	diff := LineDiff(want, got)
	if limit > 0 && len(diff) > limit {
		t.Logf("%s: %d differing lines, showing %d", hint, len(diff), limit)
		diff = diff[:limit]
	}
	for _, l := range diff {
		t.Logf("%s %s", hint, l)
	}
}

func (cfg Config) Record(t testing.TB, hint string, subj io.Reader) {
	t.Helper()
	reffile := cfg.RefFileName(t, hint)
	if _, err := os.Stat(reffile); !os.IsNotExist(err) && !cfg.RecordOverwrite {
		t.Fatalf("Record: golden file '%s' already exists", reffile)
	}
	if err := os.MkdirAll(filepath.Dir(reffile), 0777); err != nil {
		t.Fatal(err)
	}
	data, err := io.ReadAll(subj)
	if err != nil {
		t.Fatal(err)
	}
	if err = os.WriteFile(reffile, data, 0666); err != nil {
		t.Fatal(err)
	}
	t.Errorf("tokcmpting recorder wrote: %s", reffile)
}
