package report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/gocarina/gocsv"
	"github.com/xuri/excelize/v2"

	"dota-draft-tools/scoring"
)

const notAvailable = "N/A"

// MetricValues son los números crudos de un jugador
type MetricValues struct {
	GamesPlayed         int
	OverallWinrate      float64
	WinrateExclTop20    float64
	DiscomfortFactor    float64
	VersatilityFactor   float64
	RoleDiversityFactor float64
}

// PlayerMetrics es una fila del reporte de jugadores. Los campos de texto son
// lo que va al CSV; Values es nil cuando no hubo datos y la fila sale con "N/A".
type PlayerMetrics struct {
	Name                string        `csv:"name"`
	GamesPlayed         string        `csv:"games-played"`
	OverallWinrate      string        `csv:"overall-winrate"`
	WinrateExclTop20    string        `csv:"winrate-excl-top20"`
	DiscomfortFactor    string        `csv:"discomfort-factor"`
	VersatilityFactor   string        `csv:"versatility-factor"`
	RoleDiversityFactor string        `csv:"role-diversity-factor"`
	Rank                string        `csv:"-"`
	Values              *MetricValues `csv:"-"`
}

// NewPlayerMetrics calcula las métricas a partir de las respuestas de OpenDota
func NewPlayerMetrics(name string, heroes []scoring.HeroGames, wins, losses int, laneRoles map[string]int) PlayerMetrics {
	v := MetricValues{
		GamesPlayed:         scoring.TotalGames(heroes),
		OverallWinrate:      scoring.OverallWinrate(wins, losses),
		WinrateExclTop20:    scoring.WinrateExcludingTop20(heroes),
		DiscomfortFactor:    scoring.DiscomfortFactor(heroes),
		VersatilityFactor:   scoring.VersatilityFactor(heroes),
		RoleDiversityFactor: scoring.RoleDiversityFactor(laneRoles),
	}
	return PlayerMetrics{
		Name:                name,
		GamesPlayed:         strconv.Itoa(v.GamesPlayed),
		OverallWinrate:      f2(v.OverallWinrate),
		WinrateExclTop20:    f2(v.WinrateExclTop20),
		DiscomfortFactor:    f2(v.DiscomfortFactor),
		VersatilityFactor:   f2(v.VersatilityFactor),
		RoleDiversityFactor: f2(v.RoleDiversityFactor),
		Values:              &v,
	}
}

// UnavailableMetrics es la fila de un jugador sin id o sin respuesta de la API
func UnavailableMetrics(name string) PlayerMetrics {
	return PlayerMetrics{
		Name:                name,
		GamesPlayed:         notAvailable,
		OverallWinrate:      notAvailable,
		WinrateExclTop20:    notAvailable,
		DiscomfortFactor:    notAvailable,
		VersatilityFactor:   notAvailable,
		RoleDiversityFactor: notAvailable,
	}
}

func f2(v float64) string { return fmt.Sprintf("%.2f", v) }

func ensureDir(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("error creando %s: %w", dir, err)
		}
	}
	return nil
}

func WritePlayerMetricsCSV(path string, rows []PlayerMetrics) error {
	if err := ensureDir(path); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creando %s: %w", path, err)
	}
	defer f.Close()

	if err := gocsv.MarshalFile(&rows, f); err != nil {
		return fmt.Errorf("error escribiendo %s: %w", path, err)
	}
	return nil
}

var metricsHeader = []string{
	"name", "games-played", "overall-winrate", "winrate-excl-top20",
	"discomfort-factor", "versatility-factor", "role-diversity-factor", "rank",
}

const metricsSheet = "Players"

// WritePlayerMetricsXLSX escribe la misma tabla que el CSV pero con celdas numéricas
func WritePlayerMetricsXLSX(path string, rows []PlayerMetrics) error {
	if err := ensureDir(path); err != nil {
		return err
	}
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", metricsSheet); err != nil {
		return fmt.Errorf("error renombrando hoja: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return fmt.Errorf("error creando estilo: %w", err)
	}
	numberStyle, err := f.NewStyle(&excelize.Style{NumFmt: 2})
	if err != nil {
		return fmt.Errorf("error creando estilo: %w", err)
	}

	for col, h := range metricsHeader {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		f.SetCellValue(metricsSheet, cell, h)
	}
	last, _ := excelize.CoordinatesToCellName(len(metricsHeader), 1)
	f.SetCellStyle(metricsSheet, "A1", last, headerStyle)

	for i, r := range rows {
		row := i + 2
		values := []interface{}{r.Name, notAvailable, notAvailable, notAvailable, notAvailable, notAvailable, notAvailable, r.Rank}
		if v := r.Values; v != nil {
			values = []interface{}{r.Name, v.GamesPlayed, v.OverallWinrate, v.WinrateExclTop20,
				v.DiscomfortFactor, v.VersatilityFactor, v.RoleDiversityFactor, r.Rank}
		}
		for col, val := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			f.SetCellValue(metricsSheet, cell, val)
		}
		if r.Values != nil {
			from, _ := excelize.CoordinatesToCellName(3, row)
			to, _ := excelize.CoordinatesToCellName(len(metricsHeader)-1, row)
			f.SetCellStyle(metricsSheet, from, to, numberStyle)
		}
	}
	f.SetColWidth(metricsSheet, "A", "A", 24)
	f.SetColWidth(metricsSheet, "B", "H", 20)

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("error guardando %s: %w", path, err)
	}
	return nil
}

// PlayerReportPage es la versión HTML de las métricas de jugadores
type PlayerReportPage struct {
	Title       string
	GeneratedAt string
	Days        int
	Rows        []PlayerMetrics
}

func RenderPlayerReport(w io.Writer, p PlayerReportPage) error {
	return render(w, "player_report.html", p)
}
