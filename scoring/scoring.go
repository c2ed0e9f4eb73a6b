package scoring

import (
	"fmt"
	"math"
	"sort"
	"strconv"
)

// DefaultGamma controla cuánto pesa el tamaño de la muestra
const DefaultGamma = 0.69

const (
	comfortGames  = 10
	excludedTopN  = 20
	noComfortable = 50.0
)

// HeroGames son las partidas de un jugador con un héroe
type HeroGames struct {
	HeroID int
	Games  int
	Wins   int
}

// AdjustedScore = winrate × ln(games+1)^gamma; 0 sin partidas
func AdjustedScore(wins, games int, gamma float64) float64 {
	if games <= 0 {
		return 0
	}
	winrate := float64(wins) / float64(games)
	return winrate * math.Pow(math.Log(float64(games)+1), gamma)
}

// normalizedEntropy devuelve la entropía de counts normalizada a [0..100]; 0 con ≤1 categoría
func normalizedEntropy(counts []float64) float64 {
	total := 0.0
	for _, c := range counts {
		if c > 0 {
			total += c
		}
	}
	if total == 0 {
		return 0
	}
	var ps []float64
	for _, c := range counts {
		if c > 0 {
			ps = append(ps, c/total)
		}
	}
	if len(ps) <= 1 {
		return 0
	}
	entropy := 0.0
	for _, p := range ps {
		entropy -= p * math.Log(p)
	}
	return entropy / math.Log(float64(len(ps))) * 100
}

// DiscomfortFactor compara el winrate en héroes poco jugados (<10 partidas) contra
// los cómodos. 50 cuando no hay partidas cómodas ganadas.
func DiscomfortFactor(heroes []HeroGames) float64 {
	var compGames, compWins, uncGames, uncWins int
	for _, h := range heroes {
		if h.Games >= comfortGames {
			compGames += h.Games
			compWins += h.Wins
		} else {
			uncGames += h.Games
			uncWins += h.Wins
		}
	}

	comfortable := percent(compWins, compGames)
	if comfortable <= 0 {
		return noComfortable
	}
	return percent(uncWins, uncGames) / comfortable * 100
}

// VersatilityFactor es la entropía normalizada de las partidas por héroe
func VersatilityFactor(heroes []HeroGames) float64 {
	counts := make([]float64, 0, len(heroes))
	for _, h := range heroes {
		counts = append(counts, float64(h.Games))
	}
	return normalizedEntropy(counts)
}

// Positions en el orden de las columnas de reporte
var Positions = []string{"Carry", "Mid", "Offlane", "Support4", "Support5"}

// LanePositions reparte lane_role de OpenDota en las cinco posiciones:
// safe → mitad carry y mitad pos5, off → mitad offlane y mitad pos4, jungle/roam → pos4.
// El lane "0" (desconocido) y los valores no numéricos se ignoran.
func LanePositions(laneRoles map[string]int) map[string]float64 {
	pos := make(map[string]float64, len(Positions))
	for _, p := range Positions {
		pos[p] = 0
	}
	for lane, games := range laneRoles {
		if lane == "0" || games <= 0 {
			continue
		}
		n, err := strconv.Atoi(lane)
		if err != nil {
			continue
		}
		g := float64(games)
		switch n {
		case 1:
			pos["Carry"] += g / 2
			pos["Support5"] += g / 2
		case 2:
			pos["Mid"] += g
		case 3:
			pos["Offlane"] += g / 2
			pos["Support4"] += g / 2
		case 4, 5:
			pos["Support4"] += g
		}
	}
	return pos
}

// RoleDiversityFactor es la entropía normalizada de las posiciones jugadas
func RoleDiversityFactor(laneRoles map[string]int) float64 {
	pos := LanePositions(laneRoles)
	counts := make([]float64, 0, len(Positions))
	for _, p := range Positions {
		counts = append(counts, pos[p])
	}
	return normalizedEntropy(counts)
}

func percent(wins, games int) float64 {
	if games <= 0 {
		return 0
	}
	return float64(wins) / float64(games) * 100
}

func OverallWinrate(wins, losses int) float64 {
	return percent(wins, wins+losses)
}

// WinrateExcludingTop calcula el winrate sin los n héroes más jugados
func WinrateExcludingTop(heroes []HeroGames, n int) float64 {
	sorted := make([]HeroGames, len(heroes))
	copy(sorted, heroes)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Games > sorted[j].Games })

	top := make(map[int]struct{}, n)
	for i := 0; i < n && i < len(sorted); i++ {
		top[sorted[i].HeroID] = struct{}{}
	}

	var games, wins int
	for _, h := range heroes {
		if _, skip := top[h.HeroID]; skip {
			continue
		}
		games += h.Games
		wins += h.Wins
	}
	return percent(wins, games)
}

// WinrateExcludingTop20 es el valor que usa el reporte de jugadores
func WinrateExcludingTop20(heroes []HeroGames) float64 {
	return WinrateExcludingTop(heroes, excludedTopN)
}

func TotalGames(heroes []HeroGames) int {
	total := 0
	for _, h := range heroes {
		total += h.Games
	}
	return total
}

// Normalize lleva v a [0..1] dentro de [lo..hi]; 0.5 si el rango es vacío
func Normalize(v, lo, hi float64) float64 {
	if hi <= lo {
		return 0.5
	}
	return (v - lo) / (hi - lo)
}

// HeatColor va de marrón rojizo (t=0) a verde oscuro (t=1)
func HeatColor(t float64) string {
	hue := 30 + 90*t
	sat := 50 + 10*t
	light := 25 + 10*t
	return fmt.Sprintf("hsl(%.0f, %.0f%%, %.0f%%)", hue, sat, light)
}

// Range devuelve mínimo y máximo; (0,0) para una lista vacía
func Range(values []float64) (float64, float64) {
	if len(values) == 0 {
		return 0, 0
	}
	lo, hi := values[0], values[0]
	for _, v := range values[1:] {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	return lo, hi
}
