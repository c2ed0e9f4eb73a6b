package draft

import (
	"sort"
	"strings"

	"dota-draft-tools/storage"
)

// Catalog es la vista de solo lectura del cache HS: héroes con sus habilidades
// y las entradas sueltas (habilidades agregadas a mano) indexadas por nombre.
type Catalog struct {
	heroes     map[string]Hero
	order      []string
	standalone map[string]storage.HeroEntry
}

func NewCatalog(data map[string]storage.HeroEntry) *Catalog {
	c := &Catalog{
		heroes:     make(map[string]Hero),
		standalone: make(map[string]storage.HeroEntry),
	}

	for name, entry := range data {
		if !entry.IsHero() {
			c.standalone[name] = entry
			continue
		}
		c.heroes[name] = newHero(name, entry)
		c.order = append(c.order, name)
	}

	sort.Slice(c.order, func(i, j int) bool {
		a, b := strings.ToLower(c.order[i]), strings.ToLower(c.order[j])
		if a == b {
			return c.order[i] < c.order[j]
		}
		return a < b
	})
	return c
}

func newHero(name string, entry storage.HeroEntry) Hero {
	h := Hero{
		Name:        name,
		ID:          entry.HeroID,
		Img:         entry.HeroImg,
		BodyWinrate: entry.BodyWinrate,
		WinPct:      firstFloat(entry.WinPct, entry.BodyWinrate),
		PickNum:     entry.PickNum,
	}
	if h.Img == "" {
		h.Img = entry.Img
	}

	for _, a := range entry.Abilities {
		if a.AbilityName == "" {
			continue
		}
		// Una "habilidad" con el nombre del héroe es su modelo, no se cuenta dos veces
		if a.AbilityName == name {
			h.WinPct = firstFloat(h.WinPct, a.WinPct)
			h.PickNum = firstFloat(h.PickNum, a.PickNum)
			if h.Img == "" {
				h.Img = a.Img
			}
			continue
		}
		h.Abilities = append(h.Abilities, Ability{
			ID:      a.AbilityID,
			Name:    a.AbilityName,
			Img:     a.Img,
			WinPct:  a.WinPct,
			PickNum: a.PickNum,
		})
	}
	return h
}

// Heroes devuelve los nombres ordenados sin distinguir mayúsculas
func (c *Catalog) Heroes() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}

func (c *Catalog) Hero(name string) (Hero, bool) {
	h, ok := c.heroes[name]
	return h, ok
}

// Resolve busca el nombre exacto y si no, uno que coincida sin importar mayúsculas
func (c *Catalog) Resolve(name string) (string, bool) {
	name = strings.TrimSpace(name)
	if _, ok := c.heroes[name]; ok {
		return name, true
	}
	for _, h := range c.order {
		if strings.EqualFold(h, name) {
			return h, true
		}
	}
	return "", false
}

// Standalone devuelve una entrada suelta del cache por nombre de habilidad
func (c *Catalog) Standalone(name string) (storage.HeroEntry, bool) {
	e, ok := c.standalone[name]
	return e, ok
}

// AbilityNames son los nombres distintos de habilidades (de héroes y sueltas), ordenados
func (c *Catalog) AbilityNames() []string {
	seen := make(map[string]struct{})
	for _, h := range c.heroes {
		for _, a := range h.Abilities {
			seen[a.Name] = struct{}{}
		}
	}
	for name := range c.standalone {
		seen[name] = struct{}{}
	}
	out := make([]string, 0, len(seen))
	for name := range seen {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// LabelNames es todo lo que lleva rol: las habilidades y los modelos de héroe, ordenados
func (c *Catalog) LabelNames() []string {
	out := append(c.AbilityNames(), c.order...)
	sort.Strings(out)
	return out
}

// AbilityInfo resume una habilidad o un modelo para mostrarlo fuera de una selección (labeler)
type AbilityInfo struct {
	Name    string
	Kind    Kind
	Heroes  []string
	Img     string
	WinPct  *float64
	PickNum *float64
}

func (c *Catalog) AbilityInfo(name string) AbilityInfo {
	if h, ok := c.heroes[name]; ok {
		return AbilityInfo{Name: name, Kind: KindModel, Heroes: []string{name}, Img: h.Img, WinPct: h.WinPct, PickNum: h.PickNum}
	}

	info := AbilityInfo{Name: name, Kind: KindAbility}
	if e, ok := c.standalone[name]; ok {
		info.Img = e.Img
		info.WinPct = e.WinPct
		info.PickNum = e.PickNum
	}
	for _, heroName := range c.order {
		for _, a := range c.heroes[heroName].Abilities {
			if a.Name != name {
				continue
			}
			info.Heroes = append(info.Heroes, heroName)
			info.WinPct = firstFloat(info.WinPct, a.WinPct)
			info.PickNum = firstFloat(info.PickNum, a.PickNum)
			if info.Img == "" {
				info.Img = a.Img
			}
		}
	}
	return info
}
