package report

import (
	"html/template"
	"io"

	"dota-draft-tools/config"
	"dota-draft-tools/scoring"
)

// TeamFrame es el análisis de un equipo en una ventana de tiempo
type TeamFrame struct {
	Frame    config.TimeFrame
	Analysis scoring.TeamAnalysis
}

type TeamReportPage struct {
	Title       string
	Team        string
	Players     []string
	GeneratedAt string
	Frames      []TeamFrame
}

type coloredHero struct {
	scoring.HeroScore
	Color template.CSS
}

type teamFrameView struct {
	Key, Label string
	Threshold  float64
	Active     bool
	Combined   []coloredHero
	Bans       []scoring.Ban
}

func RenderTeamReport(w io.Writer, p TeamReportPage) error {
	views := make([]teamFrameView, len(p.Frames))
	for i, f := range p.Frames {
		values := make([]float64, len(f.Analysis.Combined))
		for j, h := range f.Analysis.Combined {
			values[j] = h.Score
		}
		heat := newHeatScale(values)
		v := teamFrameView{
			Key:       f.Frame.Name,
			Label:     f.Frame.Label,
			Threshold: f.Frame.BanThreshold,
			Active:    i == 0,
			Bans:      f.Analysis.Bans,
		}
		for _, h := range f.Analysis.Combined {
			v.Combined = append(v.Combined, coloredHero{HeroScore: h, Color: heat.color(h.Score)})
		}
		views[i] = v
	}
	return render(w, "team_report.html", struct {
		TeamReportPage
		Views []teamFrameView
	}{p, views})
}
