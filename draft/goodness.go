package draft

import (
	"math"
	"sort"
	"strings"
)

func rawGoodness(r Row) (float64, bool) {
	if r.Pick == nil || r.Win == nil {
		return 0, false
	}
	v := *r.Pick * (100 - *r.Win)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// ScoreGoodness asigna Good en [1..10] (10 = mejor). El crudo es pick × (100 − win%)
// y menor es mejor. Si todos los crudos son iguales la nota es 10; sin datos queda nil.
func ScoreGoodness(rows []Row) {
	lo, hi := math.Inf(1), math.Inf(-1)
	n := 0
	for _, r := range rows {
		if v, ok := rawGoodness(r); ok {
			lo = math.Min(lo, v)
			hi = math.Max(hi, v)
			n++
		}
	}

	for i := range rows {
		v, ok := rawGoodness(rows[i])
		if !ok || n == 0 {
			rows[i].Good = nil
			continue
		}
		g := 10.0
		if hi != lo {
			g = 1 + 9*(hi-v)/(hi-lo)
			g = math.Max(1, math.Min(10, g))
		}
		rows[i].Good = &g
	}
}

// RoleTables son las tres tablas de la página; All incluye las filas sin etiqueta
type RoleTables struct {
	Carry   []Row
	Both    []Row
	Support []Row
	All     []Row
}

// SplitByRole reparte habilidades y modelos visibles por rol; las filas ocultas
// (por clave canónica) no entran. Goodness se calcula sobre All.
func SplitByRole(rows []Row, hidden map[string]bool) RoleTables {
	var t RoleTables
	for _, r := range rows {
		if hidden[Canon(r.Name)] {
			continue
		}
		t.All = append(t.All, r)
	}
	ScoreGoodness(t.All)

	for _, r := range t.All {
		switch r.Role {
		case RoleCarry:
			t.Carry = append(t.Carry, r)
		case RoleBoth:
			t.Both = append(t.Both, r)
		case RoleSupport:
			t.Support = append(t.Support, r)
		}
	}
	for _, table := range [][]Row{t.Carry, t.Both, t.Support} {
		SortByGoodness(table)
	}
	return t
}

// SortByGoodness ordena descendente con los nil al final y desempata por nombre
func SortByGoodness(rows []Row) {
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i].Good, rows[j].Good
		switch {
		case a != nil && b != nil && *a != *b:
			return *a > *b
		case a != nil && b == nil:
			return true
		case a == nil && b != nil:
			return false
		}
		return strings.ToLower(rows[i].Name) < strings.ToLower(rows[j].Name)
	})
}

// HiddenSet convierte nombres a ocultar en su clave canónica
func HiddenSet(names []string) map[string]bool {
	hidden := make(map[string]bool, len(names))
	for _, n := range names {
		if k := Canon(n); k != "" {
			hidden[k] = true
		}
	}
	return hidden
}
