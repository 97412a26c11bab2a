// Package config loads the YAML configuration of the speech analyzer.
// Every field has a default, so the file is optional.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the top-level application configuration.
type Config struct {
	Corpus   CorpusConfig   `yaml:"corpus"`
	Analysis AnalysisConfig `yaml:"analysis"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// CorpusConfig locates the raw and cleaned speeches.
type CorpusConfig struct {
	SpeechesDir string `yaml:"speechesDir"`
	CleanedDir  string `yaml:"cleanedDir"`
	Extension   string `yaml:"extension"`
}

// AnalysisConfig tunes the corpus statistics.
type AnalysisConfig struct {
	// Significance is the TF-IDF a term must exceed somewhere in the
	// corpus to count among a president's top terms.
	Significance float64 `yaml:"significance"`
	TopTerms     int     `yaml:"topTerms"`
	President    string  `yaml:"president"`
	Keyword      string  `yaml:"keyword"`
}

// LoggingConfig controls the logrus level.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Load reads a YAML config file when path is not empty and fills the
// remaining fields with defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file %s: %w", path, err)
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Default returns the configuration matching the usual project layout.
func Default() *Config {
	return &Config{
		Corpus: CorpusConfig{
			SpeechesDir: "./speeches",
			CleanedDir:  "./cleaned",
			Extension:   ".txt",
		},
		Analysis: AnalysisConfig{
			Significance: 0.1,
			TopTerms:     20,
			President:    "Chirac",
			Keyword:      "nation",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Validate rejects configurations the analyzer cannot run with.
func (c *Config) Validate() error {
	var errs []error
	if c.Corpus.SpeechesDir == "" {
		errs = append(errs, errors.New("corpus.speechesDir is empty"))
	}
	if c.Corpus.CleanedDir == "" {
		errs = append(errs, errors.New("corpus.cleanedDir is empty"))
	}
	if c.Corpus.SpeechesDir != "" && c.Corpus.SpeechesDir == c.Corpus.CleanedDir {
		errs = append(errs, errors.New("corpus.cleanedDir must differ from corpus.speechesDir"))
	}
	if c.Analysis.Significance < 0 {
		errs = append(errs, fmt.Errorf("analysis.significance must be >= 0, got %v", c.Analysis.Significance))
	}
	if c.Analysis.TopTerms <= 0 {
		errs = append(errs, fmt.Errorf("analysis.topTerms must be > 0, got %d", c.Analysis.TopTerms))
	}
	if c.Analysis.Keyword == "" {
		errs = append(errs, errors.New("analysis.keyword is empty"))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
