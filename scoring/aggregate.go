package scoring

import (
	"sort"
	"strings"
)

// HeroRef identifica un héroe en los reportes
type HeroRef struct {
	ID   int
	Name string
	Slug string
}

// Stats son las partidas por jugador y héroe: jugador -> hero_id -> partidas
type Stats map[string]map[int]HeroGames

func (s Stats) get(player string, heroID int) HeroGames {
	if byHero, ok := s[player]; ok {
		if g, ok := byHero[heroID]; ok {
			return g
		}
	}
	return HeroGames{HeroID: heroID}
}

type PlayerScore struct {
	Player  string
	Games   int
	Wins    int
	Winrate float64
	Score   float64
}

type HeroSection struct {
	Hero    HeroRef
	Players []PlayerScore
	Average float64
}

type NamedScore struct {
	Name  string
	Score float64
}

// HeroReport es una ventana de tiempo del reporte de héroes
type HeroReport struct {
	Heroes       []HeroSection
	PlayerTotals []NamedScore
	HeroAverages []NamedScore
}

// BuildHeroReport puntúa a cada jugador en cada héroe pedido, suma totales por
// jugador y promedia por héroe. Todo queda ordenado por score descendente.
func BuildHeroReport(players []string, heroes []HeroRef, stats Stats, gamma float64) HeroReport {
	var report HeroReport
	totals := make(map[string]float64, len(players))

	for _, hero := range heroes {
		section := HeroSection{Hero: hero}
		sum := 0.0
		for _, p := range players {
			g := stats.get(p, hero.ID)
			score := AdjustedScore(g.Wins, g.Games, gamma)
			winrate := 0.0
			if g.Games > 0 {
				winrate = float64(g.Wins) / float64(g.Games)
			}
			section.Players = append(section.Players, PlayerScore{
				Player: p, Games: g.Games, Wins: g.Wins, Winrate: winrate, Score: score,
			})
			totals[p] += score
			sum += score
		}
		if len(players) > 0 {
			section.Average = sum / float64(len(players))
		}
		sort.SliceStable(section.Players, func(i, j int) bool {
			return section.Players[i].Score > section.Players[j].Score
		})
		report.Heroes = append(report.Heroes, section)
		report.HeroAverages = append(report.HeroAverages, NamedScore{Name: hero.Name, Score: section.Average})
	}

	for _, p := range players {
		report.PlayerTotals = append(report.PlayerTotals, NamedScore{Name: p, Score: totals[p]})
	}
	sortScores(report.PlayerTotals)
	sortScores(report.HeroAverages)
	return report
}

func sortScores(s []NamedScore) {
	sort.SliceStable(s, func(i, j int) bool { return s[i].Score > s[j].Score })
}

type HeroScore struct {
	Hero  HeroRef
	Score float64
}

type BanPlayer struct {
	Player  string
	Games   int
	Wins    int
	Winrate float64
}

// Ban es un héroe sugerido para banear y los jugadores que lo justifican
type Ban struct {
	Hero    HeroRef
	Players []BanPlayer
}

type TeamAnalysis struct {
	Combined []HeroScore
	Bans     []Ban
}

// AnalyzeTeam suma el score de los jugadores seleccionados por héroe y sugiere
// como ban cada héroe donde algún jugador llega al umbral.
func AnalyzeTeam(players []string, heroes []HeroRef, stats Stats, threshold, gamma float64) TeamAnalysis {
	var out TeamAnalysis
	for _, hero := range heroes {
		total := 0.0
		var ban []BanPlayer
		for _, p := range players {
			g := stats.get(p, hero.ID)
			score := AdjustedScore(g.Wins, g.Games, gamma)
			if score <= 0 {
				continue
			}
			total += score
			if score >= threshold {
				ban = append(ban, BanPlayer{
					Player:  p,
					Games:   g.Games,
					Wins:    g.Wins,
					Winrate: float64(g.Wins) / float64(g.Games) * 100,
				})
			}
		}
		if total > 0 {
			out.Combined = append(out.Combined, HeroScore{Hero: hero, Score: total})
		}
		if len(ban) > 0 {
			out.Bans = append(out.Bans, Ban{Hero: hero, Players: ban})
		}
	}

	sort.SliceStable(out.Combined, func(i, j int) bool { return out.Combined[i].Score > out.Combined[j].Score })
	sort.SliceStable(out.Bans, func(i, j int) bool {
		return strings.ToLower(out.Bans[i].Hero.Name) < strings.ToLower(out.Bans[j].Hero.Name)
	})
	return out
}
