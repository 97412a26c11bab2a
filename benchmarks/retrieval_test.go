package benchmarks

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"DiscoursGo/config"
	"DiscoursGo/search/build"
	"DiscoursGo/search/model"
	"DiscoursGo/search/text_preprocessor"
)

var vocabulary = strings.Fields(`nation république europe travail
	jeunesse liberté égalité fraternité économie emploi solidarité
	environnement climat écologie défense sécurité justice santé école
	culture avenir confiance progrès territoire entreprise famille`)

var questions = []string{
	"Pourquoi la nation est-elle importante ?",
	"Comment protéger le climat ?",
	"Quelles réformes pour l'école et la santé ?",
	"Parle-moi de l'Europe",
}

// writeCorpus writes n synthetic speeches of the given length in words.
func writeCorpus(b *testing.B, n, words int) config.CorpusConfig {
	b.Helper()
	rng := rand.New(rand.NewSource(1))
	cfg := config.Default().Corpus
	cfg.SpeechesDir = b.TempDir()
	cfg.CleanedDir = b.TempDir()
	for i := 0; i < n; i++ {
		var sb strings.Builder
		for w := 0; w < words; w++ {
			sb.WriteString(vocabulary[rng.Intn(len(vocabulary))])
			if w%12 == 11 {
				sb.WriteString(". ")
			} else {
				sb.WriteString(" ")
			}
		}
		name := fmt.Sprintf("Nomination_President%d.txt", i)
		require.NoError(b, os.WriteFile(filepath.Join(cfg.SpeechesDir, name), []byte(sb.String()), 0o644))
	}
	return cfg
}

func quietLogger() *logrus.Entry {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logrus.NewEntry(logger)
}

func BenchmarkBuildIndex(b *testing.B) {
	cfg := writeCorpus(b, 50, 2000)
	log := quietLogger()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := build.BuildIndex(cfg, log); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkRetrieve(b *testing.B) {
	cfg := writeCorpus(b, 50, 2000)
	index, err := build.BuildIndex(cfg, quietLogger())
	require.NoError(b, err)
	tokenizer := text_preprocessor.NewQuestionTokenizer()
	queries := make([]model.Query, 0, len(questions))
	for _, q := range questions {
		queries = append(queries, index.Vectorize(tokenizer.Tokenize(q)))
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = index.Retrieve(queries[i%len(queries)])
	}
}

func BenchmarkAsk(b *testing.B) {
	cfg := writeCorpus(b, 50, 2000)
	log := quietLogger()
	index, err := build.BuildIndex(cfg, log)
	require.NoError(b, err)
	bot := model.NewChatbot(index, cfg.CleanedDir, cfg.SpeechesDir, log)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		bot.Ask(questions[i%len(questions)])
	}
}
