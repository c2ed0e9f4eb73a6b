package dota

import (
	"context"
	"fmt"
	"time"

	"dota-draft-tools/logging"
	"dota-draft-tools/scoring"
	"dota-draft-tools/storage"
)

// OpenDota pagina /players/{id}/matches de a 100
const matchesPageSize = 100

// NewRetryPolicy arma la política de reintentos que loguea cada espera
func NewRetryPolicy(sleep time.Duration, maxRetries int) RetryPolicy {
	return RetryPolicy{
		Sleep:      sleep,
		MaxRetries: maxRetries,
		OnRateLimit: func(attempt int, wait time.Duration) {
			logging.Get().WithField("intento", attempt).Warnf("429 de OpenDota, esperando %s", wait)
		},
	}
}

// Collector junta los datos de jugadores que usan los reportes, con reintentos
// ante 429 y, si hay cache, guardando cada respuesta en disco.
type Collector struct {
	client *Client
	cache  *storage.APICache
	retry  RetryPolicy
}

// NewCollector acepta cache nil para no cachear
func NewCollector(client *Client, cache *storage.APICache, retry RetryPolicy) *Collector {
	return &Collector{client: client, cache: cache, retry: retry}
}

func (c *Collector) fetch(ctx context.Context, name string, v interface{}, fn func() error) error {
	call := func() error { return Retry(ctx, c.retry, fn) }
	if c.cache == nil {
		return call()
	}
	return c.cache.Fetch(name, v, call)
}

func (c *Collector) HeroStats(ctx context.Context) ([]HeroStat, error) {
	var heroes []HeroStat
	err := c.fetch(ctx, "heroStats", &heroes, func() error {
		var err error
		heroes, err = c.client.HeroStats(ctx)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("error obteniendo heroStats: %w", err)
	}
	return heroes, nil
}

// PlayerHeroes cachea como <id>_heroes_<frame>
func (c *Collector) PlayerHeroes(ctx context.Context, accountID, frame string, days int) ([]PlayerHero, error) {
	var heroes []PlayerHero
	name := fmt.Sprintf("%s_heroes_%s", accountID, frame)
	err := c.fetch(ctx, name, &heroes, func() error {
		var err error
		heroes, err = c.client.PlayerHeroes(ctx, accountID, days)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("error obteniendo héroes de %s: %w", accountID, err)
	}
	return heroes, nil
}

func (c *Collector) PlayerWinLoss(ctx context.Context, accountID string, days int) (*WinLoss, error) {
	var wl *WinLoss
	err := c.fetch(ctx, fmt.Sprintf("%s_wl_%d", accountID, days), &wl, func() error {
		var err error
		wl, err = c.client.PlayerWinLoss(ctx, accountID, days)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("error obteniendo win/loss de %s: %w", accountID, err)
	}
	if wl == nil {
		return nil, fmt.Errorf("error obteniendo win/loss de %s: %w", accountID, ErrEmptyResponse)
	}
	return wl, nil
}

func (c *Collector) PlayerCounts(ctx context.Context, accountID string, days int) (*Counts, error) {
	var counts *Counts
	err := c.fetch(ctx, fmt.Sprintf("%s_counts_%d", accountID, days), &counts, func() error {
		var err error
		counts, err = c.client.PlayerCounts(ctx, accountID, days)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("error obteniendo counts de %s: %w", accountID, err)
	}
	if counts == nil {
		return nil, fmt.Errorf("error obteniendo counts de %s: %w", accountID, ErrEmptyResponse)
	}
	return counts, nil
}

// PlayerRank devuelve el nombre del rango ("Unranked" si no tiene medalla)
func (c *Collector) PlayerRank(ctx context.Context, accountID string) (string, error) {
	var profile *PlayersResponse
	err := c.fetch(ctx, accountID+"_profile", &profile, func() error {
		var err error
		profile, err = c.client.PlayerProfile(ctx, accountID)
		return err
	})
	if err != nil {
		return "", fmt.Errorf("error obteniendo perfil de %s: %w", accountID, err)
	}
	if profile == nil {
		return "", fmt.Errorf("error obteniendo perfil de %s: %w", accountID, ErrEmptyResponse)
	}
	return GetRankName(profile.RankTier), nil
}

// RecentMatches recorre todas las páginas de partidas dentro de la ventana
func (c *Collector) RecentMatches(ctx context.Context, accountID string, days int) ([]PlayerMatch, error) {
	var all []PlayerMatch
	name := fmt.Sprintf("%s_matches_%d", accountID, days)
	err := c.fetch(ctx, name, &all, func() error {
		all = nil
		for offset := 0; ; {
			var page []PlayerMatch
			err := Retry(ctx, c.retry, func() error {
				var err error
				page, err = c.client.PlayerMatches(ctx, accountID, days, offset)
				return err
			})
			if err != nil {
				return err
			}
			all = append(all, page...)
			offset += len(page)
			if len(page) < matchesPageSize {
				return nil
			}
		}
	})
	if err != nil {
		return nil, fmt.Errorf("error obteniendo partidas de %s: %w", accountID, err)
	}
	return all, nil
}

// HeroGames convierte /players/{id}/heroes al formato de scoring
func HeroGames(heroes []PlayerHero) map[int]scoring.HeroGames {
	out := make(map[int]scoring.HeroGames, len(heroes))
	for _, h := range heroes {
		id := int(h.HeroID)
		out[id] = scoring.HeroGames{HeroID: id, Games: h.Games, Wins: h.Win}
	}
	return out
}

// HeroGamesFromMatches agrupa partidas sueltas por héroe
func HeroGamesFromMatches(matches []PlayerMatch) map[int]scoring.HeroGames {
	agg := AggregateMatches(matches)
	out := make(map[int]scoring.HeroGames, len(agg))
	for id, h := range agg {
		out[id] = scoring.HeroGames{HeroID: id, Games: h.Games, Wins: h.Win}
	}
	return out
}

// HeroGamesList es HeroGames como lista, para las métricas de jugador
func HeroGamesList(heroes []PlayerHero) []scoring.HeroGames {
	out := make([]scoring.HeroGames, 0, len(heroes))
	for _, h := range heroes {
		out = append(out, scoring.HeroGames{HeroID: int(h.HeroID), Games: h.Games, Wins: h.Win})
	}
	return out
}

// LaneRoleGames extrae partidas por lane_role de /players/{id}/counts
func LaneRoleGames(c *Counts) map[string]int {
	out := make(map[string]int)
	if c == nil {
		return out
	}
	for role, entry := range c.LaneRole {
		out[role] = entry.Games
	}
	return out
}

func heroRef(h HeroStat) scoring.HeroRef {
	return scoring.HeroRef{ID: h.ID, Name: h.LocalizedName, Slug: HeroSlug(h.Name)}
}

// HeroRefs resuelve nombres de héroes (sin distinguir mayúsculas) y devuelve
// aparte los que OpenDota no conoce
func HeroRefs(idx *HeroIndex, names []string) (refs []scoring.HeroRef, missing []string) {
	for _, n := range names {
		h, ok := idx.ByName(n)
		if !ok {
			missing = append(missing, n)
			continue
		}
		refs = append(refs, heroRef(h))
	}
	return refs, missing
}

// AllHeroRefs son todos los héroes en orden alfabético
func AllHeroRefs(idx *HeroIndex) []scoring.HeroRef {
	sorted := idx.Sorted()
	refs := make([]scoring.HeroRef, len(sorted))
	for i, h := range sorted {
		refs[i] = heroRef(h)
	}
	return refs
}
