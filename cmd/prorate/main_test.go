package main

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caportal/prorate-calculator/internal/calculation"
	"github.com/caportal/prorate-calculator/internal/config"
	"github.com/caportal/prorate-calculator/internal/output"
)

const referenceBatch = "../../internal/config/testdata/example_batch.yaml"

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestCalc_Console(t *testing.T) {
	out, _, err := run(t, "calc", "--amount", "50", "--start", "2024-02-01", "--date", "2024-02-15", "--format", "console")
	require.NoError(t, err)
	assert.Contains(t, out, "Calculation Results (for Start Month):")
	assert.Contains(t, out, "$1.724")
	assert.Contains(t, out, "$25.860")
	assert.Contains(t, out, "$24.140")
}

func TestCalc_JSON(t *testing.T) {
	out, _, err := run(t, "calc", "-a", "100", "-s", "2023-01-10", "-d", "2023-01-31", "-f", "json")
	require.NoError(t, err)

	var got output.ReportView
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got.Entries, 1)
	require.NotNil(t, got.Entries[0].Result)
	assert.Equal(t, "70.972", got.Entries[0].Result.ProratedCost)
	assert.Equal(t, "29.028", got.Entries[0].Result.ProratedRemaining)
}

func TestCalc_Rejected(t *testing.T) {
	out, _, err := run(t, "calc", "--amount", "abc", "--start", "2024-02-01", "--date", "2024-02-15", "--format", "console")
	require.ErrorIs(t, err, errRejected)
	assert.Contains(t, out, "Please enter a valid Total Monthly Subscription Cost (positive number).")
	assert.NotContains(t, out, "Daily Subscription Cost")
}

func TestCalc_DefaultsDatesToToday(t *testing.T) {
	calculation.SetNowFunc(func() time.Time { return time.Date(2024, 2, 15, 18, 0, 0, 0, time.UTC) })
	t.Cleanup(func() { calculation.SetNowFunc(time.Now) })

	out, _, err := run(t, "calc", "--amount", "50", "--start", "2024-02-01", "--format", "csv")
	require.NoError(t, err)
	rows, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "2024-02-15", rows[1][3])
	assert.Equal(t, "15", rows[1][6])

	out, _, err = run(t, "calc", "--amount", "29", "--format", "csv")
	require.NoError(t, err)
	rows, err = csv.NewReader(strings.NewReader(out)).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, "1", rows[1][6])
	assert.Equal(t, "1.000", rows[1][7])
}

func TestCalc_UnknownFormat(t *testing.T) {
	_, _, err := run(t, "calc", "--amount", "50", "--format", "docx")
	assert.ErrorIs(t, err, output.ErrUnsupportedFormat)
}

func TestBatch_CSV(t *testing.T) {
	out, stderr, err := run(t, "batch", referenceBatch, "--format", "csv")
	require.NoError(t, err)

	rows, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 6)
	assert.Equal(t, "Leap February, first day", rows[1][0])
	assert.Equal(t, "1", rows[1][6])
	assert.Equal(t, "true", rows[3][9])
	assert.Equal(t, "InvalidAmount", rows[4][10])
	assert.Equal(t, "DateOrderError", rows[5][10])
	assert.Contains(t, stderr, "batch loaded")
}

func TestBatch_Strict(t *testing.T) {
	_, _, err := run(t, "batch", referenceBatch, "--format", "json", "--strict")
	assert.ErrorIs(t, err, errRejected)
}

func TestBatch_WritesBinaryFormats(t *testing.T) {
	dir := t.TempDir()
	for _, format := range []string{"xlsx", "pdf"} {
		path := filepath.Join(dir, "report."+format)
		out, _, err := run(t, "batch", referenceBatch, "--format", format, "--output", path)
		require.NoError(t, err, format)
		assert.Contains(t, out, "Report written to "+path)
		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Positive(t, info.Size())
	}
}

func TestBatch_MissingFile(t *testing.T) {
	_, _, err := run(t, "batch", "does-not-exist.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read file")
}

func TestExample_RoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "example.yaml")
	out, _, err := run(t, "example", path)
	require.NoError(t, err)
	assert.Contains(t, out, path)

	batch, err := config.NewInputParser().LoadFromFile(path)
	require.NoError(t, err)
	assert.Len(t, batch.Calculations, 3)
}

func TestFormats(t *testing.T) {
	out, _, err := run(t, "formats")
	require.NoError(t, err)
	assert.Contains(t, out, "Formats: console, csv, html, json, pdf, xlsx")
	assert.Contains(t, out, "excel")
}

func TestLinks(t *testing.T) {
	out, _, err := run(t, "links")
	require.NoError(t, err)
	assert.Contains(t, out, "Google Chat [gchat]")
	assert.Contains(t, out, "Open NDAs Folder: https://drive.google.com/")

	out, _, err = run(t, "links", "pending-orders", "--html")
	require.NoError(t, err)
	assert.Contains(t, out, "<strong>Commerce &gt; Orders</strong>")

	_, _, err = run(t, "links", "nope")
	assert.Error(t, err)
}

func TestLearn(t *testing.T) {
	out, _, err := run(t, "learn")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "Welcome! As a Contract Administrator"))
	assert.Contains(t, out, "2. Key Contract Processes (Plays) [key-processes]\n  Play: How to Order an NDA [play-nda]\n")

	out, _, err = run(t, "learn", "--section", "key-processes")
	require.NoError(t, err)
	assert.Contains(t, out, "We call these \"plays\"")
	assert.Contains(t, out, "In this section:\n  Play: How to Order an NDA [play-nda]")

	out, _, err = run(t, "learn", "--section", "play-billing-concerns")
	require.NoError(t, err)
	assert.Contains(t, out, "1. Initiate Approval Thread in Finance:")
	assert.Contains(t, out, "  • Skip directly to Page 3.")

	out, _, err = run(t, "learn", "--search", "zzz")
	require.NoError(t, err)
	assert.Equal(t, "No matching topics found.\n", out)

	_, _, err = run(t, "learn", "--section", "nope")
	assert.Error(t, err)
}

func TestInvalidLogLevel(t *testing.T) {
	_, _, err := run(t, "--log-level", "loud", "formats")
	assert.Error(t, err)
}
