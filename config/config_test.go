package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, 0.1, cfg.Analysis.Significance)
	assert.Equal(t, 20, cfg.Analysis.TopTerms)
	assert.Equal(t, "./speeches", cfg.Corpus.SpeechesDir)
}

func TestLoadFileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "discours.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
corpus:
  speechesDir: /data/discours
analysis:
  significance: 0
  president: Macron
logging:
  level: debug
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/data/discours", cfg.Corpus.SpeechesDir)
	assert.Equal(t, "./cleaned", cfg.Corpus.CleanedDir)
	assert.Equal(t, 0.0, cfg.Analysis.Significance)
	assert.Equal(t, "Macron", cfg.Analysis.President)
	assert.Equal(t, "nation", cfg.Analysis.Keyword)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("corpus: [unclosed"), 0o644))
	_, err = Load(bad)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"negative significance", func(c *Config) { c.Analysis.Significance = -0.5 }},
		{"no top terms", func(c *Config) { c.Analysis.TopTerms = 0 }},
		{"same directories", func(c *Config) { c.Corpus.CleanedDir = c.Corpus.SpeechesDir }},
		{"no speeches dir", func(c *Config) { c.Corpus.SpeechesDir = "" }},
		{"no keyword", func(c *Config) { c.Analysis.Keyword = "" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
	assert.NoError(t, Default().Validate())
}
