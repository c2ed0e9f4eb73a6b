package report

import (
	"io"

	"dota-draft-tools/draft"
)

// AdHelperPage es la página estática del helper de Ability Draft para una selección
type AdHelperPage struct {
	Title       string
	GeneratedAt string
	HSCachedAt  string
	Board       draft.Board
	// Available son todos los héroes del cache, para elegir la próxima selección
	Available []string
	Unlabeled int
}

type roleSection struct {
	Title string
	Rows  []draft.Row
}

// Sections devuelve las tablas por rol en el orden de la página
func (p AdHelperPage) Sections() []roleSection {
	return []roleSection{
		{Title: "Carry", Rows: p.Board.Tables.Carry},
		{Title: "Both", Rows: p.Board.Tables.Both},
		{Title: "Support", Rows: p.Board.Tables.Support},
	}
}

func RenderAdHelper(w io.Writer, p AdHelperPage) error {
	if p.Title == "" {
		p.Title = "Ability Draft Helper"
	}
	return render(w, "ad_helper.html", p)
}
