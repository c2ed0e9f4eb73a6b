package draft

import "sort"

type tokenKind int

const (
	tokenUnresolved tokenKind = iota
	tokenHero
	tokenAbility
)

type matcher struct {
	heroes map[string]struct{}
	owners Owners
}

// selectedOwners devuelve los dueños de una habilidad que están en la selección
func (m matcher) selectedOwners(key string) []string {
	var out []string
	for h := range m.owners[key] {
		if _, ok := m.heroes[h]; ok {
			out = append(out, h)
		}
	}
	return out
}

func (m matcher) isAbility(key string) bool {
	return len(m.selectedOwners(key)) > 0
}

func (m matcher) isHero(key string) bool {
	_, ok := m.heroes[key]
	return ok
}

// crossHero es true si existe algún dueño de a y alguno de b que sean héroes distintos
func (m matcher) crossHero(a, b string) bool {
	for _, h1 := range m.selectedOwners(a) {
		for _, h2 := range m.selectedOwners(b) {
			if h1 != h2 {
				return true
			}
		}
	}
	return false
}

// heroWithAbility es true si la habilidad tiene un dueño seleccionado distinto del héroe
func (m matcher) heroWithAbility(hero, ability string) bool {
	for _, h := range m.selectedOwners(ability) {
		if h != hero {
			return true
		}
	}
	return false
}

func (m matcher) valid(p Pair) bool {
	if p.A1 == "" || p.A2 == "" {
		return false
	}
	a1, a2 := Canon(p.A1), Canon(p.A2)
	if a1 == a2 {
		return false
	}

	switch {
	case m.isAbility(a1) && m.isAbility(a2):
		return m.crossHero(a1, a2)
	case m.isHero(a1) && m.isAbility(a2):
		return m.heroWithAbility(a1, a2)
	case m.isHero(a2) && m.isAbility(a1):
		return m.heroWithAbility(a2, a1)
	}
	return false
}

// MatchCombos filtra los pares que forman un combo entre dos héroes distintos de la
// selección. Héroe×héroe y tokens que no se resuelven se descartan. El resultado
// queda ordenado por sinergia descendente, con los nulos al final.
func MatchCombos(selectedHeroes []string, owners Owners, pairs []Pair) []Pair {
	m := matcher{heroes: make(map[string]struct{}, len(selectedHeroes)), owners: owners}
	for _, h := range selectedHeroes {
		m.heroes[Canon(h)] = struct{}{}
	}

	var out []Pair
	for _, p := range pairs {
		if m.valid(p) {
			out = append(out, p)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i].Synergy, out[j].Synergy
		if a == nil || b == nil {
			return a != nil && b == nil
		}
		return *a > *b
	})
	return out
}
