package windrun

import (
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var (
	ErrTableNotFound  = errors.New("no se encontró la tabla de datos")
	ErrHeaderNotFound = errors.New("no se encontró la columna")
	ErrNoRows         = errors.New("la tabla no tiene filas utilizables")
)

var (
	abilityLink = regexp.MustCompile(`/abilities/-?\d+`)
	heroLink    = regexp.MustCompile(`/heroes/\d+`)
	numberToken = regexp.MustCompile(`[-+]?\d*\.?\d+`)
	spaces      = regexp.MustCompile(`\s+`)
)

// tableScore puntúa una tabla candidata; ok=false la descarta sin importar el puntaje
type tableScore func(t *goquery.Selection) (score int, ok bool)

// pickTable elige la tabla de mayor puntaje. Empates: gana la primera.
func pickTable(doc *goquery.Document, score tableScore, threshold int) (*goquery.Selection, int) {
	var best *goquery.Selection
	bestScore := -1
	doc.Find("table").Each(func(_ int, t *goquery.Selection) {
		s, ok := score(t)
		if !ok {
			return
		}
		if s > bestScore {
			best, bestScore = t, s
		}
	})
	if best == nil || bestScore < threshold {
		return nil, bestScore
	}
	return best, bestScore
}

// hasLink indica si la tabla tiene algún <a href> que cumpla el patrón
func hasLink(t *goquery.Selection, pattern *regexp.Regexp) bool {
	found := false
	t.Find("a[href]").EachWithBreak(func(_ int, a *goquery.Selection) bool {
		if pattern.MatchString(a.AttrOr("href", "")) {
			found = true
			return false
		}
		return true
	})
	return found
}

func countLinks(t *goquery.Selection, pattern *regexp.Regexp) int {
	n := 0
	t.Find("a[href]").Each(func(_ int, a *goquery.Selection) {
		if pattern.MatchString(a.AttrOr("href", "")) {
			n++
		}
	})
	return n
}

// text devuelve el texto de la selección con los espacios colapsados
func text(s *goquery.Selection) string {
	return strings.TrimSpace(spaces.ReplaceAllString(s.Text(), " "))
}

// headerIndex busca la columna cuyo encabezado contiene name (sin distinguir mayúsculas)
func headerIndex(headers []string, name string) (int, error) {
	needle := strings.ToLower(name)
	for i, h := range headers {
		if strings.Contains(strings.ToLower(h), needle) {
			return i, nil
		}
	}
	return -1, fmt.Errorf("%w %q, encabezados: %v", ErrHeaderNotFound, name, headers)
}

func tableHeaders(t *goquery.Selection) []string {
	cells := t.Find("thead th")
	if cells.Length() == 0 {
		cells = t.Find("tr").First().Find("th")
	}
	var headers []string
	cells.Each(func(_ int, th *goquery.Selection) {
		headers = append(headers, text(th))
	})
	return headers
}

// ParseNumber extrae el primer número de s, ignorando separadores de miles y texto
// alrededor. Devuelve nil si no hay número.
func ParseNumber(s string) *float64 {
	s = strings.ReplaceAll(s, ",", "")
	m := numberToken.FindString(s)
	if m == "" {
		return nil
	}
	v, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return nil
	}
	return &v
}

// resolveURL convierte src relativo en absoluto respecto de base
func resolveURL(base, ref string) string {
	if ref == "" {
		return ""
	}
	b, err := url.Parse(base)
	if err != nil {
		return ref
	}
	r, err := url.Parse(ref)
	if err != nil {
		return ref
	}
	return b.ResolveReference(r).String()
}

func parseDocument(html string) (*goquery.Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("error parseando HTML: %w", err)
	}
	return doc, nil
}
