package tokcmp

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fractalqb/tokcmp/tokcmpting"
)

var reportResult = Result{
	Patterns: []Pattern{
		{Text: "quick fox jumps", Tags: "ADJ-NOUN-VERB", Length: 3, SourceCount: 1},
		{Text: "the lazy dog", Tags: "DET-ADJ-NOUN", Length: 3, SourceCount: 1},
	},
	Discrepancies: []Discrepancy{{Word: "run", Tag1: "NOUN", Tag2: "VERB"}},
	Phrases: []PhraseInfo{
		{
			Pattern:     "quick fox",
			Type:        NounPhrase,
			Description: "A noun phrase headed by 'fox' ('NOUN') including its modifiers.",
		},
		{
			Pattern:     "quick fox jumps",
			Type:        VerbPhrase,
			Description: "A verb phrase centered around 'jumps' ('VERB') possibly including its objects/complements/adjuncts.",
		},
	},
}

func TestWriteReport(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteReport(&buf, &reportResult))
	tokcmpting.Error(t, "", &buf)
}

func TestWriteReport_empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteReport(&buf, &Result{}))
	tokcmpting.Error(t, "", &buf)
}

func TestResult_Longest(t *testing.T) {
	assert.Nil(t, (&Result{}).Longest())
	assert.Equal(t, "quick fox jumps", reportResult.Longest().Text)
}

func TestWriteReportFile(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "out.txt")
	require.NoError(t, os.WriteFile(out, []byte("stale"), 0666))
	require.NoError(t, WriteReportFile(out, &reportResult))

	var want bytes.Buffer
	require.NoError(t, WriteReport(&want, &reportResult))
	got, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, want.String(), string(got))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary file left behind")
}

func TestWriteReportFile_noDir(t *testing.T) {
	out := filepath.Join(t.TempDir(), "missing", "out.txt")
	err := WriteReportFile(out, &reportResult)
	var ferr FileError
	require.True(t, errors.As(err, &ferr), "unexpected error: %v", err)
	assert.Equal(t, FileWriteError, ferr.Kind)
	assert.Equal(t, out, ferr.Path)
	assert.NoFileExists(t, out)
}
