package draft

import "dota-draft-tools/storage"

type Kind string

const (
	KindAbility Kind = "ability"
	KindModel   Kind = "model"
)

type Role string

const (
	RoleNone    Role = ""
	RoleCarry   Role = "carry"
	RoleSupport Role = "support"
	RoleBoth    Role = "both"
)

// Roles en el orden en que se muestran y se guardan en la metadata
var Roles = []Role{RoleCarry, RoleSupport, RoleBoth}

// ParseRole devuelve RoleNone para cualquier valor desconocido
func ParseRole(s string) Role {
	switch Role(s) {
	case RoleCarry, RoleSupport, RoleBoth:
		return Role(s)
	}
	return RoleNone
}

type Ability struct {
	ID      *int
	Name    string
	Img     string
	WinPct  *float64
	PickNum *float64
}

// Hero es un héroe del cache HS. WinPct/PickNum son las stats del modelo (el cuerpo del héroe).
type Hero struct {
	Name        string
	ID          *int
	Img         string
	BodyWinrate *float64
	WinPct      *float64
	PickNum     *float64
	Abilities   []Ability
}

type Pair struct {
	A1      string   `json:"a1"`
	A2      string   `json:"a2"`
	A1Img   string   `json:"a1_img,omitempty"`
	A2Img   string   `json:"a2_img,omitempty"`
	Synergy *float64 `json:"synergy"`
}

func PairsFromEntries(entries []storage.PairEntry) []Pair {
	pairs := make([]Pair, 0, len(entries))
	for _, e := range entries {
		pairs = append(pairs, Pair{A1: e.A1, A2: e.A2, A1Img: e.A1Img, A2Img: e.A2Img, Synergy: e.Synergy})
	}
	return pairs
}

// Row es una fila de la selección actual: un modelo de héroe o una habilidad
type Row struct {
	Kind Kind
	Name string
	From []string
	Win  *float64
	Pick *float64
	Img  string
	Role Role
	Good *float64
}

func (r Row) IsModel() bool { return r.Kind == KindModel }

func firstFloat(vals ...*float64) *float64 {
	for _, v := range vals {
		if v != nil {
			return v
		}
	}
	return nil
}
