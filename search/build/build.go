package build

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/sirupsen/logrus"

	"DiscoursGo/config"
	"DiscoursGo/search/model"
	"DiscoursGo/search/text_preprocessor"
)

// ListFiles returns the names of the files of folderPath ending with
// extension, sorted.
func ListFiles(folderPath, extension string) ([]string, error) {
	entries, err := os.ReadDir(folderPath)
	if err != nil {
		return nil, err
	}
	var names []string
	for _, entry := range entries {
		if entry.Type().IsRegular() && filepath.Ext(entry.Name()) == extension {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}

// CleanCorpus normalizes every speech of speechesDir into a file of the
// same name under cleanedDir, which is created if needed.
func CleanCorpus(speechesDir, cleanedDir, extension string, logger *logrus.Entry) ([]string, error) {
	files, err := ListFiles(speechesDir, extension)
	if err != nil {
		return nil, fmt.Errorf("listing speeches: %w", err)
	}
	if err := os.MkdirAll(cleanedDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating %s: %w", cleanedDir, err)
	}

	for _, name := range files {
		raw, err := os.ReadFile(filepath.Join(speechesDir, name))
		if err != nil {
			return nil, fmt.Errorf("reading speech %s: %w", name, err)
		}
		cleaned := text_preprocessor.NormalizeDocument(text_preprocessor.DecodeText(raw))
		if err := os.WriteFile(filepath.Join(cleanedDir, name), []byte(cleaned), 0o644); err != nil {
			return nil, fmt.Errorf("writing cleaned speech %s: %w", name, err)
		}
		logger.WithField("file", name).Debug("speech cleaned")
	}
	return files, nil
}

// LoadCorpus reads the cleaned speeches of folderPath in file name order.
func LoadCorpus(folderPath, extension string) ([]model.Document, error) {
	files, err := ListFiles(folderPath, extension)
	if err != nil {
		return nil, fmt.Errorf("listing cleaned speeches: %w", err)
	}

	docs := make([]model.Document, 0, len(files))
	for _, name := range files {
		path := filepath.Join(folderPath, name)
		content, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading cleaned speech %s: %w", name, err)
		}
		docs = append(docs, model.NewDocument(name, path, string(content)))
	}
	return docs, nil
}

// BuildIndex cleans the speeches, reloads the cleaned corpus and scores it.
func BuildIndex(cfg config.CorpusConfig, logger *logrus.Entry) (*model.Index, error) {
	logger = logger.WithField("component", "build")

	files, err := CleanCorpus(cfg.SpeechesDir, cfg.CleanedDir, cfg.Extension, logger)
	if err != nil {
		return nil, err
	}
	logger.WithFields(logrus.Fields{
		"speeches": cfg.SpeechesDir,
		"cleaned":  cfg.CleanedDir,
		"files":    len(files),
	}).Info("corpus cleaned")

	docs, err := LoadCorpus(cfg.CleanedDir, cfg.Extension)
	if err != nil {
		return nil, err
	}

	index := model.NewIndex(docs)
	logger.WithFields(logrus.Fields{
		"documents": index.N(),
		"terms":     len(index.Matrix.Terms),
	}).Info("tf-idf matrix built")
	return index, nil
}
