package draft

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	quoteDashReplacer = strings.NewReplacer(
		"‘", "'", "’", "'",
		"“", `"`, "”", `"`,
		"–", "-", "—", "-",
	)
	dotUnderscore = regexp.MustCompile(`[._]`)
	nonWord       = regexp.MustCompile(`[^\w\s'-]`)
)

// Canon normaliza un nombre de habilidad o héroe a una clave de búsqueda estable.
// Canon(Canon(s)) == Canon(s).
func Canon(s string) string {
	folded, _, err := transform.String(transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn))), s)
	if err != nil {
		folded = s
	}
	folded = strings.ToLower(folded)
	folded = quoteDashReplacer.Replace(folded)
	folded = dotUnderscore.ReplaceAllString(folded, " ")
	folded = nonWord.ReplaceAllString(folded, " ")
	return strings.Join(strings.Fields(folded), " ")
}

// AbbreviateHero acorta nombres largos para las etiquetas de la selección
func AbbreviateHero(name string) string {
	s := strings.TrimSpace(name)
	if len([]rune(s)) <= 12 {
		return s
	}
	parts := strings.Fields(s)
	if len(parts) == 1 {
		return string([]rune(s)[:11]) + "…"
	}
	initials := make([]string, 0, len(parts)-1)
	for _, p := range parts[1:] {
		initials = append(initials, string([]rune(p)[0])+".")
	}
	out := parts[0] + " " + strings.Join(initials, " ")
	if len([]rune(out)) <= 12 {
		return out
	}
	first := []rune(parts[0])
	if len(first) > 9 {
		first = first[:9]
	}
	return string(first) + "…"
}
