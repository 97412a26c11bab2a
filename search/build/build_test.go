package build

import (
	"io"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"DiscoursGo/config"
)

func quietLogger() *logrus.Entry {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logrus.NewEntry(logger)
}

func writeFiles(t *testing.T, dir string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}
}

func TestListFiles(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		"Nomination_Macron.txt":  "",
		"Nomination_Chirac1.txt": "",
		"notes.md":               "",
	})
	require.NoError(t, os.Mkdir(filepath.Join(dir, "archive.txt"), 0o755))

	files, err := ListFiles(dir, ".txt")
	require.NoError(t, err)
	assert.Equal(t, []string{"Nomination_Chirac1.txt", "Nomination_Macron.txt"}, files)

	_, err = ListFiles(filepath.Join(dir, "absent"), ".txt")
	assert.Error(t, err)
}

func TestCleanCorpus(t *testing.T) {
	speeches := t.TempDir()
	cleaned := filepath.Join(t.TempDir(), "cleaned")
	writeFiles(t, speeches, map[string]string{
		"Nomination_Chirac1.txt":     "Vive la République !",
		"Nomination_Mitterrand1.txt": "Une \xe9tape d\x92histoire.",
	})

	files, err := CleanCorpus(speeches, cleaned, ".txt", quietLogger())
	require.NoError(t, err)
	assert.Len(t, files, 2)

	got, err := os.ReadFile(filepath.Join(cleaned, "Nomination_Chirac1.txt"))
	require.NoError(t, err)
	assert.Equal(t, "vive la republique  ", string(got))

	got, err = os.ReadFile(filepath.Join(cleaned, "Nomination_Mitterrand1.txt"))
	require.NoError(t, err)
	assert.Equal(t, "une etape d histoire ", string(got))

	// cleaning the cleaned corpus changes nothing
	again := filepath.Join(t.TempDir(), "again")
	_, err = CleanCorpus(cleaned, again, ".txt", quietLogger())
	require.NoError(t, err)
	for _, name := range files {
		first, err := os.ReadFile(filepath.Join(cleaned, name))
		require.NoError(t, err)
		second, err := os.ReadFile(filepath.Join(again, name))
		require.NoError(t, err)
		assert.Equal(t, string(first), string(second), name)
	}
}

func TestBuildIndex(t *testing.T) {
	speeches := t.TempDir()
	cleaned := filepath.Join(t.TempDir(), "cleaned")
	writeFiles(t, speeches, map[string]string{
		"Nomination_Chirac1.txt": "La nation, la République.",
		"Nomination_Macron.txt":  "La nation européenne.",
	})

	index, err := BuildIndex(config.CorpusConfig{
		SpeechesDir: speeches,
		CleanedDir:  cleaned,
		Extension:   ".txt",
	}, quietLogger())
	require.NoError(t, err)

	require.Equal(t, 2, index.N())
	assert.Equal(t, "Nomination_Chirac1.txt", index.Docs[0].Name)
	assert.Equal(t, filepath.Join(cleaned, "Nomination_Chirac1.txt"), index.Docs[0].Path)
	assert.Equal(t, 2, index.DF_table["nation"])
	assert.Equal(t, 0.0, index.IDF_table["nation"])
	assert.InDelta(t, math.Log(2), index.Matrix.Score("republique", 0), 1e-9)
	assert.InDelta(t, math.Log(2), index.Matrix.Score("europeenne", 1), 1e-9)
}

func TestBuildIndexMissingSpeeches(t *testing.T) {
	_, err := BuildIndex(config.CorpusConfig{
		SpeechesDir: filepath.Join(t.TempDir(), "absent"),
		CleanedDir:  filepath.Join(t.TempDir(), "cleaned"),
		Extension:   ".txt",
	}, quietLogger())
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestPresidentNames(t *testing.T) {
	names := PresidentNames([]string{
		"Nomination_Chirac1.txt",
		"Nomination_Chirac2.txt",
		"Nomination_Giscard dEstaing.txt",
		"Nomination_Hollande.txt",
		"sansprefixe.txt",
	})
	assert.Equal(t, []string{"Chirac", "Giscard dEstaing", "Hollande"}, names)

	presidents := WithFirstNames(append(names, "Pompidou"))
	assert.Equal(t, []President{
		{"Jacques", "Chirac"},
		{"Valéry", "Giscard dEstaing"},
		{"François", "Hollande"},
		{UnknownFirstName, "Pompidou"},
	}, presidents)
	assert.Equal(t, "Jacques Chirac", presidents[0].String())
}
