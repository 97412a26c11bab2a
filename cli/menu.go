// Package cli is the line-based console front end: the main menu, the
// corpus statistics menu and the chatbot loop.
package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/charmbracelet/lipgloss"
	"github.com/sirupsen/logrus"

	"DiscoursGo/config"
	"DiscoursGo/search/build"
	"DiscoursGo/search/model"
)

// QuitWord ends the chatbot loop.
const QuitWord = "quitter"

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7D56F4"))

	answerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ECDC4"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))
)

// Menu drives the interactive session over an input and an output stream.
type Menu struct {
	in       *bufio.Scanner
	out      io.Writer
	index    *model.Index
	chatbot  *model.Chatbot
	analysis config.AnalysisConfig
	logger   *logrus.Entry
}

func NewMenu(in io.Reader, out io.Writer, index *model.Index, chatbot *model.Chatbot, analysis config.AnalysisConfig, logger *logrus.Entry) *Menu {
	return &Menu{
		in:       bufio.NewScanner(in),
		out:      out,
		index:    index,
		chatbot:  chatbot,
		analysis: analysis,
		logger:   logger.WithField("component", "cli"),
	}
}

// PrintPresidents lists the presidents found in the corpus.
func (m *Menu) PrintPresidents(presidents []build.President) {
	m.println(titleStyle.Render("Liste des présidents :"))
	for _, p := range presidents {
		m.println(p.String())
	}
}

// Run shows the main menu until the user quits or the input ends.
func (m *Menu) Run() error {
	for {
		m.println("")
		m.println(titleStyle.Render("Menu Principal :"))
		m.println("1. Accéder aux fonctionnalités de l'analyse de texte")
		m.println("2. Mode Chatbot")
		m.println("3. Quitter")
		choice, ok := m.prompt("Entrez votre choix (1-3) : ")
		if !ok {
			return m.in.Err()
		}
		switch choice {
		case "1":
			if !m.analysisMenu() {
				return m.in.Err()
			}
		case "2":
			if !m.chat() {
				return m.in.Err()
			}
		case "3":
			m.println("Quitter le programme.")
			return nil
		default:
			m.println(errorStyle.Render("Choix invalide. Veuillez entrer un nombre entre 1 et 3."))
		}
	}
}

// analysisMenu returns false when the input is exhausted.
func (m *Menu) analysisMenu() bool {
	for {
		m.println("")
		m.println(titleStyle.Render("Analyse des discours :"))
		m.println("1. Afficher les mots les moins importants")
		m.println("2. Afficher les mots avec le score TF-IDF le plus élevé")
		m.printf("3. Mots les plus répétés par le président %s (importants selon TF-IDF)\n", m.analysis.President)
		m.printf("4. Présidents ayant parlé de la '%s'\n", m.analysis.Keyword)
		m.println("5. Trouver le premier président à parler du climat et/ou de l'écologie")
		m.println("6. Mots communs à tous les présidents (hors mots non importants)")
		m.println("7. Retour")
		choice, ok := m.prompt("Entrez votre choix (1-7) : ")
		if !ok {
			return false
		}
		switch choice {
		case "1":
			m.leastImportant()
		case "2":
			m.mostImportant()
		case "3":
			m.topTerms()
		case "4":
			m.keywordMentions()
		case "5":
			m.firstClimateMention()
		case "6":
			m.commonVocabulary()
		case "7":
			m.println("Retour au menu principal.")
			return true
		default:
			m.println(errorStyle.Render("Veuillez entrer un nombre entre 1 et 7."))
		}
	}
}

func (m *Menu) leastImportant() {
	m.printf("Mots les moins importants : %s\n", joinOrNone(m.index.LeastImportantTerms()))
}

func (m *Menu) mostImportant() {
	terms, score, err := m.index.MostImportantTerms()
	if errors.Is(err, model.ErrEmptyResult) {
		m.println("Le corpus est vide.")
		return
	}
	m.printf("Mots avec le score TF-IDF le plus élevé : %s (Score: %.4f)\n", strings.Join(terms, ", "), score)
}

func (m *Menu) topTerms() {
	top := m.index.TopTermsByPresident(m.analysis.President, m.analysis.Significance, m.analysis.TopTerms)
	parts := make([]string, 0, len(top))
	for _, tc := range top {
		parts = append(parts, fmt.Sprintf("%s (%d)", tc.Term, tc.Count))
	}
	m.printf("Les mots les plus répétés par %s (importants selon TF-IDF) sont : %s\n", m.analysis.President, joinOrNone(parts))
}

func (m *Menu) keywordMentions() {
	mentions := m.index.KeywordMentions(m.analysis.Keyword)
	name, count, err := model.MostMentioning(mentions)
	if errors.Is(err, model.ErrEmptyResult) {
		m.printf("Aucun président n'a parlé de la '%s'.\n", m.analysis.Keyword)
		return
	}
	m.printf("Président(s) ayant parlé de la '%s' : %s\n", m.analysis.Keyword, strings.Join(model.MentioningPresidents(mentions), ", "))
	m.printf("Président l'ayant le plus mentionnée : %s (%d fois)\n", name, count)
}

func (m *Menu) firstClimateMention() {
	mention, err := m.index.FirstMention(model.InvestitureOrder, model.ClimateKeywords)
	if err != nil {
		m.logger.WithError(err).Debug("no climate mention")
		m.println("Aucun président n'a parlé du climat ni de l'écologie.")
		return
	}
	m.printf("Le premier président à parler du climat et/ou de l'écologie est %s, trouvé dans le fichier %s (mot « %s »).\n",
		mention.President, mention.File, mention.Keyword)
}

func (m *Menu) commonVocabulary() {
	m.printf("Mots communs à tous les présidents (hors mots non importants) : %s\n", joinOrNone(m.index.CommonVocabulary()))
}

// chat returns false when the input is exhausted.
func (m *Menu) chat() bool {
	for {
		m.println("")
		m.println(titleStyle.Render("Mode Chatbot :"))
		m.printf("Posez votre question (ou tapez '%s' pour revenir au menu principal) :\n", QuitWord)
		question, ok := m.prompt("Votre question : ")
		if !ok {
			return false
		}
		for question == "" || startsWithDigit(question) {
			if question, ok = m.prompt("Reformulez votre question : "); !ok {
				return false
			}
		}
		if strings.EqualFold(question, QuitWord) {
			m.println("Retour au menu principal.")
			return true
		}

		ans := m.chatbot.Ask(question)
		if ans.Document != "" {
			m.printf("Document pertinent retourné : %s\n", ans.Document)
		}
		m.println(answerStyle.Render("Réponse : " + ans.Text))
	}
}

func (m *Menu) prompt(label string) (string, bool) {
	fmt.Fprint(m.out, label)
	if !m.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(m.in.Text()), true
}

func (m *Menu) println(s string) {
	fmt.Fprintln(m.out, s)
}

func (m *Menu) printf(format string, args ...any) {
	fmt.Fprintf(m.out, format, args...)
}

func startsWithDigit(s string) bool {
	for _, r := range s {
		return unicode.IsDigit(r)
	}
	return false
}

func joinOrNone(items []string) string {
	if len(items) == 0 {
		return "aucun"
	}
	return strings.Join(items, ", ")
}
