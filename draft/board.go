package draft

// Board es todo lo que la página del helper necesita para una selección
type Board struct {
	Heroes []string
	Models []Row
	Tables RoleTables
	Combos []Pair
}

// BuildBoard encadena CollectRows, AbilityOwners, SplitByRole y MatchCombos
func BuildBoard(c *Catalog, sel *Selection, roles RoleLookup, pairs []Pair, hidden map[string]bool) Board {
	rows := CollectRows(c, sel, roles)

	b := Board{Heroes: sel.Names()}
	b.Tables = SplitByRole(rows, hidden)

	// los modelos ocultos siguen en la tabla de modelos, sin nota
	good := make(map[string]*float64)
	for _, r := range b.Tables.All {
		if r.IsModel() {
			good[r.Name] = r.Good
		}
	}
	for _, r := range rows {
		if r.IsModel() {
			r.Good = good[r.Name]
			b.Models = append(b.Models, r)
		}
	}
	b.Combos = MatchCombos(b.Heroes, AbilityOwners(rows), pairs)
	return b
}
