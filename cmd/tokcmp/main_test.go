package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fractalqb/tokcmp"
)

func inputs(t *testing.T) (dir, in1, in2 string) {
	dir = t.TempDir()
	in1 = filepath.Join(dir, "text1.txt")
	in2 = filepath.Join(dir, "text2.txt")
	require.NoError(t, os.WriteFile(in1, []byte("The quick fox jumps over the lazy dog."), 0666))
	require.NoError(t, os.WriteFile(in2, []byte("A quick fox jumps and the lazy dog sleeps."), 0666))
	return dir, in1, in2
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestAnalyze(t *testing.T) {
	dir, in1, in2 := inputs(t)
	out := filepath.Join(dir, "report.txt")
	_, err := execute(t, "analyze", "-a", "lexicon", "-o", out, in1, in2)
	require.NoError(t, err)
	report, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(report),
		`1. "quick fox jumps" (Length: 3 tokens, POS: ADJ-NOUN-VERB)`)
	assert.Contains(t, string(report),
		`2. "the lazy dog" (Length: 3 tokens, POS: DET-ADJ-NOUN)`)
	assert.Contains(t, string(report), "No POS discrepancies found.")
}

func TestAnalyze_missingInput(t *testing.T) {
	dir, in1, _ := inputs(t)
	out := filepath.Join(dir, "report.txt")
	_, err := execute(t, "analyze", "-a", "lexicon", "-o", out, in1, filepath.Join(dir, "nope.txt"))
	assert.Equal(t, exitFileError, exitCode(err))
	assert.NoFileExists(t, out)
}

func TestAnalyze_noAnnotator(t *testing.T) {
	dir, in1, in2 := inputs(t)
	out := filepath.Join(dir, "report.txt")
	_, err := execute(t, "analyze",
		"-a", "spacy",
		"--python", filepath.Join(dir, "no-python"),
		"-o", out, in1, in2,
	)
	assert.Equal(t, exitNoAnnotator, exitCode(err))
	assert.NoFileExists(t, out)
}

func TestTag(t *testing.T) {
	_, in1, _ := inputs(t)
	out, err := execute(t, "tag", "-a", "lexicon", in1)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 8)
	assert.Equal(t, "the\tDET", lines[0])
	assert.Equal(t, "jumps\tVERB", lines[3])
}

func TestParse(t *testing.T) {
	out, err := execute(t, "parse", "-a", "lexicon", "the", "lazy", "dog")
	require.NoError(t, err)
	assert.Contains(t, out, "2\tdog\tNOUN\tROOT\t2\n")
	assert.Contains(t, out, "chunk [0,3): the lazy dog\n")
	assert.Contains(t, out, `Pattern: "the lazy dog"`)
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, exitOK, exitCode(nil))
	assert.Equal(t, exitFileError, exitCode(fmt.Errorf("wrapped: %w",
		tokcmp.FileError{Kind: tokcmp.FileReadError, Path: "x"})))
	assert.Equal(t, exitNoAnnotator, exitCode(tokcmp.NewAnnotatorError("spacy", errors.New("gone"))))
	assert.Equal(t, exitError, exitCode(errors.New("boom")))
}
