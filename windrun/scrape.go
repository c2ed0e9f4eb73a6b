package windrun

import (
	"context"
	"fmt"

	"dota-draft-tools/logging"
	"dota-draft-tools/storage"
)

// Scrape es el resultado completo de una corrida: el HTML crudo (para debug) y
// la combinación lista para guardar como cache HS.
type Scrape struct {
	Pages     Pages
	HighSkill HighSkill
	Heroes    []HeroBlock
	Data      map[string]storage.HeroEntry
}

func (s *Scrape) Source(f *Fetcher) storage.Source {
	return storage.Source{HS: f.HighSkill, ByHero: f.ByHero}
}

// Scrape descarga y parsea ambas páginas. Cualquier página que no se pueda
// parsear aborta la corrida para no pisar un cache bueno con uno vacío.
func (f *Fetcher) Scrape(ctx context.Context) (*Scrape, error) {
	log := logging.Get()

	pages, err := f.FetchPages(ctx)
	if err != nil {
		return nil, err
	}
	out := &Scrape{Pages: pages}

	out.HighSkill, err = ParseHighSkill(pages.HighSkill, f.HighSkill)
	if err != nil {
		return out, fmt.Errorf("error parseando %s: %w", f.HighSkill, err)
	}
	log.Infof("HS: %d habilidades, %d modelos", len(out.HighSkill.Abilities), len(out.HighSkill.Models))

	out.Heroes, err = ParseByHero(pages.ByHero, f.ByHero)
	if err != nil {
		return out, fmt.Errorf("error parseando %s: %w", f.ByHero, err)
	}
	log.Infof("By-hero: %d héroes", len(out.Heroes))

	out.Data = Combine(out.Heroes, out.HighSkill)
	return out, nil
}
