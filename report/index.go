package report

import (
	"io"
	"strings"
)

type Link struct {
	Href        string
	Label       string
	Description string
}

// DefaultLinks son los reportes que genera el resto de los comandos
func DefaultLinks() []Link {
	return []Link{
		{Href: "hero_report.html", Label: "Hero Report", Description: "Score ajustado de cada jugador en los héroes de la lista."},
		{Href: "player_report.html", Label: "Player Report", Description: "Métricas de comodidad, versatilidad y roles por jugador."},
		{Href: "team_analyzer.html", Label: "Team Analyzer", Description: "Héroes fuertes y bans sugeridos por equipo."},
		{Href: "ad_helper.html", Label: "Ability Draft Helper", Description: "Habilidades por rol y combos de la selección actual."},
	}
}

// Commit es una entrada del changelog
type Commit struct {
	Date    string
	Author  string
	Message string
}

// GitLogFormat es el --pretty que entiende ParseGitLog
const GitLogFormat = "--pretty=format:%cd%x1f%an%x1f%s"

// ParseGitLog lee la salida de git log con GitLogFormat; las líneas rotas se ignoran
func ParseGitLog(out string) []Commit {
	var commits []Commit
	for _, line := range strings.Split(out, "\n") {
		parts := strings.Split(strings.TrimRight(line, "\r"), "\x1f")
		if len(parts) != 3 {
			continue
		}
		commits = append(commits, Commit{Date: parts[0], Author: parts[1], Message: strings.TrimSpace(parts[2])})
	}
	return commits
}

type IndexPage struct {
	Title       string
	GeneratedAt string
	Links       []Link
	Changelog   []Commit
}

func RenderIndex(w io.Writer, p IndexPage) error {
	if p.Links == nil {
		p.Links = DefaultLinks()
	}
	return render(w, "index.html", p)
}
