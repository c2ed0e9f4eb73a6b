package report

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"os"
	"strings"
	"time"

	"dota-draft-tools/dota"
	"dota-draft-tools/draft"
	"dota-draft-tools/logging"
	"dota-draft-tools/scoring"
)

//go:embed templates/*.html
var templateFS embed.FS

var pages = template.Must(template.New("").Funcs(template.FuncMap{
	"num":     fmtNum,
	"pct":     fmtPct,
	"f2":      f2,
	"f4":      func(v float64) string { return fmt.Sprintf("%.4f", v) },
	"rate":    func(v float64) string { return fmt.Sprintf("%.1f%%", v*100) },
	"short":   draft.AbbreviateHero,
	"join":    func(s []string) string { return strings.Join(s, ", ") },
	"heroimg": dota.HeroImageURL,
}).ParseFS(templateFS, "templates/*.html"))

// Stamp es la fecha que aparece arriba de cada página
func Stamp(now time.Time) string {
	return now.Format("2006-01-02 15:04 MST")
}

func render(w io.Writer, name string, data any) error {
	if err := pages.ExecuteTemplate(w, name, data); err != nil {
		return fmt.Errorf("error renderizando %s: %w", name, err)
	}
	return nil
}

// WriteFile crea el directorio si hace falta y escribe lo que produce fn
func WriteFile(path string, fn func(io.Writer) error) error {
	if err := ensureDir(path); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creando %s: %w", path, err)
	}
	if err := fn(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("error cerrando %s: %w", path, err)
	}
	logging.Get().WithField("archivo", path).Info("reporte escrito")
	return nil
}

func fmtNum(v *float64) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%.2f", *v)
}

func fmtPct(v *float64) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%.2f%%", *v)
}

// heatScale colorea valores según el rango de su propia columna
type heatScale struct{ lo, hi float64 }

func newHeatScale(values []float64) heatScale {
	lo, hi := scoring.Range(values)
	return heatScale{lo: lo, hi: hi}
}

func (s heatScale) color(v float64) template.CSS {
	return template.CSS(scoring.HeatColor(scoring.Normalize(v, s.lo, s.hi)))
}
