package main

import (
	"flag"
	"os"

	"github.com/sirupsen/logrus"

	"DiscoursGo/cli"
	"DiscoursGo/config"
	"DiscoursGo/search/build"
	"DiscoursGo/search/model"
)

func main() {
	configPath := flag.String("config", "", "path to YAML config file")
	speechesDir := flag.String("speeches", "", "directory of the raw speeches (overrides config)")
	cleanedDir := flag.String("cleaned", "", "directory of the cleaned speeches (overrides config)")
	flag.Parse()

	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	log := logger.WithField("service", "discours")

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.WithError(err).Fatal("failed to load config")
	}
	if *speechesDir != "" {
		cfg.Corpus.SpeechesDir = *speechesDir
	}
	if *cleanedDir != "" {
		cfg.Corpus.CleanedDir = *cleanedDir
	}
	if err := cfg.Validate(); err != nil {
		log.WithError(err).Fatal("invalid config")
	}

	level, err := logrus.ParseLevel(cfg.Logging.Level)
	if err != nil {
		log.WithError(err).Warn("unknown log level, keeping info")
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	index, err := build.BuildIndex(cfg.Corpus, log)
	if err != nil {
		log.WithError(err).Error("failed to build index")
		os.Exit(1)
	}

	files, err := build.ListFiles(cfg.Corpus.SpeechesDir, cfg.Corpus.Extension)
	if err != nil {
		log.WithError(err).Error("failed to list speeches")
		os.Exit(1)
	}

	chatbot := model.NewChatbot(index, cfg.Corpus.CleanedDir, cfg.Corpus.SpeechesDir, log)
	menu := cli.NewMenu(os.Stdin, os.Stdout, index, chatbot, cfg.Analysis, log)
	menu.PrintPresidents(build.WithFirstNames(build.PresidentNames(files)))
	if err := menu.Run(); err != nil {
		log.WithError(err).Error("reading input failed")
		os.Exit(1)
	}
}
