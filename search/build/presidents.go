package build

import (
	"sort"
	"strings"
	"unicode"
)

// UnknownFirstName is used for presidents missing from FirstNames.
const UnknownFirstName = "PrénomInconnu"

// FirstNames maps a president's last name, as spelled in file names, to
// the first name.
var FirstNames = map[string]string{
	"Chirac":           "Jacques",
	"Giscard dEstaing": "Valéry",
	"Mitterrand":       "François",
	"Macron":           "Emmanuel",
	"Sarkozy":          "Nicolas",
	"Hollande":         "François",
}

// President is a full name.
type President struct {
	FirstName string
	LastName  string
}

func (p President) String() string {
	return p.FirstName + " " + p.LastName
}

// PresidentNames returns the distinct last names encoded in file names,
// sorted. The name is the second underscore-separated field stripped of
// anything that is not a letter or a space.
func PresidentNames(files []string) []string {
	seen := make(map[string]struct{})
	for _, file := range files {
		parts := strings.Split(strings.TrimSuffix(file, ".txt"), "_")
		if len(parts) < 2 {
			continue
		}
		name := strings.TrimSpace(strings.Map(func(r rune) rune {
			if unicode.IsLetter(r) || r == ' ' {
				return r
			}
			return -1
		}, parts[1]))
		if name != "" {
			seen[name] = struct{}{}
		}
	}
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// WithFirstNames attaches first names to last names.
func WithFirstNames(lastNames []string) []President {
	presidents := make([]President, 0, len(lastNames))
	for _, last := range lastNames {
		first, ok := FirstNames[last]
		if !ok {
			first = UnknownFirstName
		}
		presidents = append(presidents, President{FirstName: first, LastName: last})
	}
	return presidents
}
