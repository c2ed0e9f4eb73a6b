package windrun

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"dota-draft-tools/draft"
)

const (
	hsWinHeader  = "HS Win %"
	hsPickHeader = "HS Pick #"
	hsThreshold  = 3
)

// Los links del HS son /abilities/<id>; los modelos de héroe usan id negativo
var hsRowLink = regexp.MustCompile(`^(?:https?://[^/]+)?/abilities/(-?\d+)/?$`)

// Entry es una fila de la tabla HS
type Entry struct {
	Kind    draft.Kind
	ID      int
	Name    string
	Img     string
	WinPct  *float64
	PickNum *float64
}

// HighSkill separa habilidades (por id) de modelos de héroe (por nombre)
type HighSkill struct {
	Abilities map[int]Entry
	Models    map[string]Entry
}

func scoreHighSkillTable(t *goquery.Selection) (int, bool) {
	hasAbility := hasLink(t, abilityLink)
	hasHero := hasLink(t, heroLink)
	if !hasAbility && !hasHero {
		return 0, false
	}
	score := 0
	if strings.Contains(strings.ToLower(text(t)), strings.ToLower(hsWinHeader)) {
		score += 3
	}
	if hasAbility {
		score += 2
	}
	if hasHero {
		score++
	}
	return score, true
}

// ParseHighSkill parsea la página ability-high-skill. base resuelve los src relativos.
func ParseHighSkill(html, base string) (HighSkill, error) {
	doc, err := parseDocument(html)
	if err != nil {
		return HighSkill{}, err
	}

	table, score := pickTable(doc, scoreHighSkillTable, hsThreshold)
	if table == nil {
		return HighSkill{}, fmt.Errorf("%w en ability-high-skill (mejor puntaje %d)", ErrTableNotFound, score)
	}

	headers := tableHeaders(table)
	winIdx, err := headerIndex(headers, hsWinHeader)
	if err != nil {
		return HighSkill{}, err
	}
	pickIdx, err := headerIndex(headers, hsPickHeader)
	if err != nil {
		return HighSkill{}, err
	}
	minCells := winIdx
	if pickIdx > minCells {
		minCells = pickIdx
	}

	rows := table.Find("tbody tr")
	if rows.Length() == 0 {
		rows = table.Find("tr")
	}

	hs := HighSkill{Abilities: make(map[int]Entry), Models: make(map[string]Entry)}
	rows.Each(func(_ int, tr *goquery.Selection) {
		cells := tr.Find("td, th")
		if cells.Length() <= minCells {
			return
		}

		var id int
		var link *goquery.Selection
		tr.Find("a[href]").EachWithBreak(func(_ int, a *goquery.Selection) bool {
			m := hsRowLink.FindStringSubmatch(a.AttrOr("href", ""))
			if m == nil {
				return true
			}
			id, _ = strconv.Atoi(m[1])
			link = a
			return false
		})
		if link == nil {
			return
		}
		name := text(link)
		if name == "" {
			return
		}

		e := Entry{
			Kind:    draft.KindAbility,
			ID:      id,
			Name:    name,
			Img:     resolveURL(base, tr.Find("img").First().AttrOr("src", "")),
			WinPct:  ParseNumber(text(cells.Eq(winIdx))),
			PickNum: ParseNumber(text(cells.Eq(pickIdx))),
		}
		if id < 0 {
			e.Kind = draft.KindModel
			hs.Models[name] = e
			return
		}
		hs.Abilities[id] = e
	})

	if len(hs.Abilities) == 0 {
		return HighSkill{}, fmt.Errorf("%w: cero habilidades HS, la estructura de la página puede haber cambiado", ErrNoRows)
	}
	return hs, nil
}
