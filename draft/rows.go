package draft

// RoleLookup resuelve la etiqueta de una habilidad por nombre exacto o por clave canónica
type RoleLookup struct {
	exact map[string]Role
	canon map[string]Role
}

func NewRoleLookup(labels map[string]string) RoleLookup {
	l := RoleLookup{exact: make(map[string]Role), canon: make(map[string]Role)}
	for name, label := range labels {
		role := ParseRole(label)
		if role == RoleNone {
			continue
		}
		l.exact[name] = role
		l.canon[Canon(name)] = role
	}
	return l
}

func (l RoleLookup) Role(name string) Role {
	if r, ok := l.exact[name]; ok {
		return r
	}
	return l.canon[Canon(name)]
}

// CollectRows arma una fila de modelo por héroe seleccionado (con su rol, el cuerpo
// también se draftea) y una fila por habilidad distinta, con From = todos los
// héroes seleccionados que la exponen.
func CollectRows(c *Catalog, sel *Selection, roles RoleLookup) []Row {
	var rows []Row
	index := make(map[string]int)

	for _, heroName := range sel.Names() {
		h, ok := c.Hero(heroName)
		if !ok {
			continue
		}

		rows = append(rows, Row{
			Kind: KindModel,
			Name: h.Name,
			From: []string{h.Name},
			Win:  h.WinPct,
			Pick: h.PickNum,
			Img:  h.Img,
			Role: roles.Role(h.Name),
		})

		for _, a := range h.Abilities {
			i, seen := index[a.Name]
			if !seen {
				rows = append(rows, Row{Kind: KindAbility, Name: a.Name, Img: a.Img, Role: roles.Role(a.Name)})
				i = len(rows) - 1
				index[a.Name] = i
			}
			row := &rows[i]
			row.From = append(row.From, h.Name)
			if row.Img == "" {
				row.Img = a.Img
			}

			// win%: el mejor entre los héroes seleccionados
			if a.WinPct != nil && (row.Win == nil || *a.WinPct > *row.Win) {
				w := *a.WinPct
				row.Win = &w
			}
			// pick#: la entrada HS suelta tiene prioridad sobre la del héroe
			if e, ok := c.Standalone(a.Name); ok && e.PickNum != nil {
				row.Pick = e.PickNum
			} else if row.Pick == nil {
				row.Pick = a.PickNum
			}
		}
	}
	return rows
}

// Owners mapea canon(habilidad) -> conjunto de canon(héroe)
type Owners map[string]map[string]struct{}

// AbilityOwners se reconstruye en cada selección; dos nombres con la misma clave canónica unen sus dueños.
func AbilityOwners(rows []Row) Owners {
	owners := make(Owners)
	for _, r := range rows {
		if r.Kind != KindAbility {
			continue
		}
		key := Canon(r.Name)
		set, ok := owners[key]
		if !ok {
			set = make(map[string]struct{})
			owners[key] = set
		}
		for _, h := range r.From {
			set[Canon(h)] = struct{}{}
		}
	}
	return owners
}
