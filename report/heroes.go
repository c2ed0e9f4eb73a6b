package report

import (
	"fmt"
	"html/template"
	"io"
	"math"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"dota-draft-tools/scoring"
)

// HeroFrame es una ventana de tiempo del reporte de héroes ("all" o "recent")
type HeroFrame struct {
	Key    string
	Label  string
	Report scoring.HeroReport
}

type HeroReportPage struct {
	Title       string
	GeneratedAt string
	Frames      []HeroFrame
	// ChartFile es la página del gráfico de promedios, relativa al reporte
	ChartFile string
}

type coloredPlayer struct {
	scoring.PlayerScore
	Color template.CSS
}

type coloredSection struct {
	Hero    scoring.HeroRef
	Average float64
	Players []coloredPlayer
}

type coloredScore struct {
	scoring.NamedScore
	Color template.CSS
}

type heroFrameView struct {
	Key, Label   string
	Active       bool
	Sections     []coloredSection
	PlayerTotals []coloredScore
	HeroAverages []coloredScore
}

func colorScores(scores []scoring.NamedScore) []coloredScore {
	values := make([]float64, len(scores))
	for i, s := range scores {
		values[i] = s.Score
	}
	heat := newHeatScale(values)
	out := make([]coloredScore, len(scores))
	for i, s := range scores {
		out[i] = coloredScore{NamedScore: s, Color: heat.color(s.Score)}
	}
	return out
}

func frameView(f HeroFrame, active bool) heroFrameView {
	v := heroFrameView{
		Key:          f.Key,
		Label:        f.Label,
		Active:       active,
		PlayerTotals: colorScores(f.Report.PlayerTotals),
		HeroAverages: colorScores(f.Report.HeroAverages),
	}
	for _, sec := range f.Report.Heroes {
		values := make([]float64, len(sec.Players))
		for i, p := range sec.Players {
			values[i] = p.Score
		}
		heat := newHeatScale(values)
		cs := coloredSection{Hero: sec.Hero, Average: sec.Average}
		for _, p := range sec.Players {
			cs.Players = append(cs.Players, coloredPlayer{PlayerScore: p, Color: heat.color(p.Score)})
		}
		v.Sections = append(v.Sections, cs)
	}
	return v
}

// RenderHeroReport dibuja las ventanas de tiempo con un selector; la primera queda visible
func RenderHeroReport(w io.Writer, p HeroReportPage) error {
	views := make([]heroFrameView, len(p.Frames))
	for i, f := range p.Frames {
		views[i] = frameView(f, i == 0)
	}
	return render(w, "hero_report.html", struct {
		HeroReportPage
		Views []heroFrameView
	}{p, views})
}

// RenderAverageChart genera la página del gráfico de barras con el promedio por
// héroe de cada ventana de tiempo
func RenderAverageChart(w io.Writer, title string, frames []HeroFrame) error {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: title,
			Width:     "1100px",
			Height:    "500px",
			Theme:     "dark",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    title,
			Subtitle: "Score ajustado promedio por héroe",
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:    opts.Bool(true),
			Trigger: "axis",
		}),
		charts.WithLegendOpts(opts.Legend{
			Show: opts.Bool(len(frames) > 1),
		}),
	)

	if len(frames) == 0 {
		return bar.Render(w)
	}

	// El eje X sigue el orden de la primera ventana; las demás se alinean por nombre
	var labels []string
	for _, s := range frames[0].Report.HeroAverages {
		labels = append(labels, s.Name)
	}
	bar.SetXAxis(labels)

	for _, f := range frames {
		byName := make(map[string]float64, len(f.Report.HeroAverages))
		for _, s := range f.Report.HeroAverages {
			byName[s.Name] = s.Score
		}
		data := make([]opts.BarData, len(labels))
		for i, name := range labels {
			data[i] = opts.BarData{Value: roundScore(byName[name])}
		}
		bar.AddSeries(f.Label, data)
	}

	if err := bar.Render(w); err != nil {
		return fmt.Errorf("error renderizando gráfico: %w", err)
	}
	return nil
}

func roundScore(v float64) float64 {
	return math.Round(v*10000) / 10000
}
