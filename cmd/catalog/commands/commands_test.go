package commands

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/brequin/catalog/courses"
	"github.com/brequin/catalog/scrape"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatExpression(t *testing.T) {
	expression := courses.Expression{
		{{Subject: "CSCI", Number: 2200}},
		{{Subject: "MATH", Number: 1010}, {Subject: "MATH", Number: 1015}},
	}
	assert.Equal(t, "CSCI 2200 and (MATH 1010 or MATH 1015)", formatExpression(expression))
	assert.Equal(t, "none", formatExpression(courses.Expression{}))
}

func execute(t *testing.T, args ...string) string {
	t.Helper()

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})

	require.NoError(t, rootCmd.Execute())
	return out.String()
}

func TestParseAndShow(t *testing.T) {
	t.Setenv("DATABASE_CONNECTION_STRING", "")
	dir := t.TempDir()
	configFile := filepath.Join(dir, "catalog.json5")
	pagesFile := filepath.Join(dir, "pages.json")
	catalogFile := filepath.Join(dir, "catalog.json")

	require.NoError(t, scrape.WritePages(pagesFile, []scrape.Page{
		{Id: "1", Fragments: []string{
			"CSCI 2300 - Introduction to Algorithms",
			"Design and analysis of algorithms.",
			"Prerequisites/Corequisites:",
			"CSCI 1200 and MATH 2800 or MATH 2801",
			"When Offered:",
			"Fall and Spring",
		}},
		{Id: "2", Fragments: []string{"CSCI 1200 - Data Structures", "", "Prerequisites/Corequisites:", "CSCI 1100"}},
		{Id: "3", Fragments: []string{"BADLYFORMATTEDHEADER"}},
	}))

	execute(t, "parse", pagesFile, "--config", configFile, "--output", catalogFile)

	records, err := courses.ReadFile(catalogFile)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "Data Structures", records[0].Title)

	out := execute(t, "show", "CSCI", "1200", "--config", configFile, "--catalog", catalogFile)
	assert.Contains(t, out, "CSCI 1200: Data Structures")
	assert.Contains(t, out, "CSCI 1100")
	assert.Contains(t, out, "CSCI 2300")

	out = execute(t, "show", "CSCI 2300", "--config", configFile, "--catalog", catalogFile)
	assert.Contains(t, out, "CSCI 1200 and (MATH 2800 or MATH 2801)")
	assert.Contains(t, out, "Design and analysis of algorithms.")
}

func writeCatalogConfig(t *testing.T, dir string, record courses.Record) string {
	t.Helper()

	catalogFile := filepath.Join(dir, "catalog.json")
	require.NoError(t, courses.WriteFile(catalogFile, []courses.Record{record}))

	configFile := filepath.Join(dir, "catalog.json5")
	require.NoError(t, os.WriteFile(configFile, []byte(fmt.Sprintf("{output: %q}", catalogFile)), 0o644))
	return configFile
}

func TestShowFallsBackToEachConfigOutput(t *testing.T) {
	t.Setenv("DATABASE_CONNECTION_STRING", "")
	showCatalog = ""
	t.Cleanup(func() { showCatalog = "" })

	first, err := courses.Parse([]string{"CSCI 1100 - Computer Science I"})
	require.NoError(t, err)
	second, err := courses.Parse([]string{"MATH 1010 - Calculus I"})
	require.NoError(t, err)

	firstConfig := writeCatalogConfig(t, t.TempDir(), first)
	secondConfig := writeCatalogConfig(t, t.TempDir(), second)

	out := execute(t, "show", "CSCI 1100", "--config", firstConfig)
	assert.Contains(t, out, "CSCI 1100: Computer Science I")

	out = execute(t, "show", "MATH 1010", "--config", secondConfig)
	assert.Contains(t, out, "MATH 1010: Calculus I")
}
