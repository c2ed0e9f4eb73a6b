package windrun

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"dota-draft-tools/draft"
)

const byHeroThreshold = 3

var (
	byHeroAnchor = regexp.MustCompile(`^/(heroes|abilities)/(\d+)`)
	bodyWinrate  = regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)%\s*body winrate`)
	winPctOnly   = regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)%\s*win%`)
	avgPickOnly  = regexp.MustCompile(`(?i)/\s*(\d+(?:\.\d+)?)\s*avg pick`)
)

// HeroBlock es un héroe de la página ability-by-hero con sus habilidades
type HeroBlock struct {
	ID          int
	Name        string
	Img         string
	BodyWinrate *float64
	Abilities   []Entry
}

func scoreByHeroTable(t *goquery.Selection) (int, bool) {
	hasHero := hasLink(t, heroLink)
	hasAbility := hasLink(t, abilityLink)
	if !hasHero && !hasAbility {
		return 0, false
	}
	score := 0
	if hasHero {
		score += 2
	}
	if hasAbility {
		score += 2
	}
	if strings.Contains(strings.ToLower(text(t)), "body winrate") {
		score++
	}
	return score, true
}

// heroCursor es el acumulador del recorrido: los héroes vistos hasta ahora y el
// héroe al que se asignan las próximas habilidades.
type heroCursor struct {
	base    string
	heroes  map[string]*HeroBlock
	order   []string
	current string
}

type anchorStep func(acc heroCursor, a *goquery.Selection) heroCursor

// foldAnchors recorre los links en orden de documento pasando el acumulador
func foldAnchors(links *goquery.Selection, acc heroCursor, step anchorStep) heroCursor {
	for i := range links.Nodes {
		acc = step(acc, links.Eq(i))
	}
	return acc
}

func stepAnchor(acc heroCursor, a *goquery.Selection) heroCursor {
	m := byHeroAnchor.FindStringSubmatch(a.AttrOr("href", ""))
	if m == nil {
		return acc
	}
	id, _ := strconv.Atoi(m[2])
	name := text(a)
	if m[1] == "heroes" {
		return acc.openHero(a, id, name)
	}
	return acc.addAbility(a, id, name)
}

func (acc heroCursor) openHero(a *goquery.Selection, id int, name string) heroCursor {
	if id == 0 || name == "" {
		return acc
	}

	heroTD := a.Closest("td")
	img := heroPicture(heroTD)
	var body *float64
	if m := bodyWinrate.FindStringSubmatch(text(heroTD)); m != nil {
		body = ParseNumber(m[1])
	}

	h, ok := acc.heroes[name]
	if !ok {
		acc.heroes[name] = &HeroBlock{ID: id, Name: name, Img: resolveURL(acc.base, img), BodyWinrate: body}
		acc.order = append(acc.order, name)
	} else {
		// completar lo que falte
		if h.ID == 0 {
			h.ID = id
		}
		if h.BodyWinrate == nil {
			h.BodyWinrate = body
		}
		if h.Img == "" {
			h.Img = resolveURL(acc.base, img)
		}
	}
	acc.current = name
	return acc
}

func (acc heroCursor) addAbility(a *goquery.Selection, id int, name string) heroCursor {
	if acc.current == "" || id == 0 || name == "" {
		return acc
	}
	hero := acc.heroes[acc.current]
	for _, existing := range hero.Abilities {
		if existing.ID == id {
			return acc
		}
	}

	// las stats viven en el bloque que encierra al link (normalmente un <span>)
	block := a.Closest("span")
	if block.Length() == 0 {
		block = a.Parent()
	}
	win, pick := abilityStats(text(block), name)

	hero.Abilities = append(hero.Abilities, Entry{
		Kind:    draft.KindAbility,
		ID:      id,
		Name:    name,
		Img:     resolveURL(acc.base, nearestPrevImg(block, a)),
		WinPct:  win,
		PickNum: pick,
	})
	return acc
}

// heroPicture busca la imagen en el <td class="hero-picture"> anterior o en la misma celda
func heroPicture(heroTD *goquery.Selection) string {
	if heroTD.Length() == 0 {
		return ""
	}
	for prev := heroTD.Prev(); prev.Length() > 0; prev = prev.Prev() {
		if goquery.NodeName(prev) == "td" && prev.HasClass("hero-picture") {
			if src := prev.Find("img").First().AttrOr("src", ""); src != "" {
				return src
			}
			break
		}
	}
	return heroTD.Find("img").First().AttrOr("src", "")
}

// abilityStats lee "NN% win% / NN avg pick" a continuación del nombre, o cada valor por separado
func abilityStats(blockText, name string) (*float64, *float64) {
	anchored := regexp.MustCompile(`(?is)` + regexp.QuoteMeta(name) + `.*?(\d+(?:\.\d+)?)%\s*win%.*?/\s*(\d+(?:\.\d+)?)\s*avg pick`)
	if m := anchored.FindStringSubmatch(blockText); m != nil {
		return ParseNumber(m[1]), ParseNumber(m[2])
	}
	var win, pick *float64
	if m := winPctOnly.FindStringSubmatch(blockText); m != nil {
		win = ParseNumber(m[1])
	}
	if m := avgPickOnly.FindStringSubmatch(blockText); m != nil {
		pick = ParseNumber(m[1])
	}
	return win, pick
}

// nearestPrevImg devuelve el src del último <img> antes del link dentro del bloque.
// Si el link no está en el bloque, el último <img> del bloque.
func nearestPrevImg(block, link *goquery.Selection) string {
	target := link.Get(0)
	var last string
	var walk func(n *html.Node) bool
	walk = func(n *html.Node) bool {
		if n == target {
			return true
		}
		if n.Type == html.ElementNode && n.Data == "img" {
			for _, attr := range n.Attr {
				if attr.Key == "src" {
					last = attr.Val
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if walk(c) {
				return true
			}
		}
		return false
	}
	for _, n := range block.Nodes {
		if walk(n) {
			break
		}
	}
	return last
}

// ParseByHero parsea la página ability-by-hero. Cada habilidad se asigna al
// último héroe visto en orden de documento.
func ParseByHero(htmlText, base string) ([]HeroBlock, error) {
	doc, err := parseDocument(htmlText)
	if err != nil {
		return nil, err
	}

	table, score := pickTable(doc, scoreByHeroTable, byHeroThreshold)
	if table == nil {
		return nil, fmt.Errorf("%w en ability-by-hero (mejor puntaje %d)", ErrTableNotFound, score)
	}

	// solo dentro de la tabla, para no tomar links del nav o del footer
	links := table.Find("a[href]").FilterFunction(func(_ int, a *goquery.Selection) bool {
		return byHeroAnchor.MatchString(a.AttrOr("href", ""))
	})
	acc := foldAnchors(links, heroCursor{base: base, heroes: make(map[string]*HeroBlock)}, stepAnchor)

	var heroes []HeroBlock
	for _, name := range acc.order {
		if h := acc.heroes[name]; len(h.Abilities) > 0 {
			heroes = append(heroes, *h)
		}
	}
	if len(heroes) == 0 {
		return nil, fmt.Errorf("%w: cero héroes (hero_links=%d ability_links=%d)",
			ErrNoRows, countLinks(table, heroLink), countLinks(table, abilityLink))
	}
	return heroes, nil
}
