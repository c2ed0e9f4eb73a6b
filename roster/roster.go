package roster

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"sort"
	"strings"

	"github.com/gocarina/gocsv"
)

var ErrNoPlayerID = errors.New("no se pudo extraer el id de jugador")

var (
	playersPath = regexp.MustCompile(`/players/(\d+)`)
	digitsOnly  = regexp.MustCompile(`^\d+$`)
	nonWordRun  = regexp.MustCompile(`[^\p{L}\p{N}_]+`)
)

// Player es una fila del CSV de jugadores (columnas name,dotabuff)
type Player struct {
	Name     string `csv:"name"`
	Dotabuff string `csv:"dotabuff"`
}

// AccountID extrae el id de OpenDota del link de Dotabuff
func (p Player) AccountID() (string, error) {
	return ExtractPlayerID(p.Dotabuff)
}

// LoadPlayers lee el CSV de jugadores; los nombres se recortan
func LoadPlayers(path string) ([]Player, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error abriendo %s: %w", path, err)
	}
	defer f.Close()

	var players []Player
	if err := gocsv.UnmarshalFile(f, &players); err != nil {
		return nil, fmt.Errorf("error leyendo %s: %w", path, err)
	}
	for i := range players {
		players[i].Name = strings.TrimSpace(players[i].Name)
		players[i].Dotabuff = strings.TrimSpace(players[i].Dotabuff)
	}
	return players, nil
}

// SortByName ordena sin distinguir mayúsculas
func SortByName(players []Player) {
	sort.SliceStable(players, func(i, j int) bool {
		return strings.ToLower(players[i].Name) < strings.ToLower(players[j].Name)
	})
}

// ExtractPlayerID acepta .../players/<id>[/...] o un link cuyo último segmento es el id
func ExtractPlayerID(link string) (string, error) {
	link = strings.TrimSpace(link)
	if m := playersPath.FindStringSubmatch(link); m != nil {
		return m[1], nil
	}
	parts := strings.Split(strings.TrimRight(link, "/"), "/")
	if last := parts[len(parts)-1]; digitsOnly.MatchString(last) {
		return last, nil
	}
	return "", fmt.Errorf("%w de %q", ErrNoPlayerID, link)
}

// LoadHeroList lee nombres de héroes separados por comas, en minúsculas
func LoadHeroList(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error leyendo %s: %w", path, err)
	}
	return ParseHeroList(string(data)), nil
}

func ParseHeroList(s string) []string {
	heroes := SplitList(s)
	for i := range heroes {
		heroes[i] = strings.ToLower(heroes[i])
	}
	return heroes
}

// SplitList separa por comas, recorta y descarta vacíos
func SplitList(s string) []string {
	var out []string
	for _, item := range strings.Split(s, ",") {
		if v := strings.TrimSpace(item); v != "" {
			out = append(out, v)
		}
	}
	return out
}

// Slugify convierte el nombre de un equipo en clave: minúsculas y "_" entre palabras
func Slugify(name string) string {
	s := nonWordRun.ReplaceAllString(strings.ToLower(strings.TrimSpace(name)), "_")
	return strings.Trim(s, "_")
}

const teamSize = 5

// ParseTeams lee la planilla de equipos: una celda "Position" tiene el nombre del
// equipo a su derecha y los jugadores en las cinco filas siguientes de esa columna.
func ParseTeams(r io.Reader) (map[string][]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("error leyendo planilla de equipos: %w", err)
	}

	teams := make(map[string][]string)
	for ri, row := range rows {
		for ci, cell := range row {
			if cell != "Position" || ci+1 >= len(row) || strings.TrimSpace(row[ci+1]) == "" {
				continue
			}
			players := []string{}
			for pr := ri + 1; pr < len(rows) && pr <= ri+teamSize; pr++ {
				if ci+1 >= len(rows[pr]) {
					continue
				}
				if name := strings.TrimSpace(rows[pr][ci+1]); name != "" {
					players = append(players, strings.ToLower(name))
				}
			}
			sort.Strings(players)
			teams[Slugify(row[ci+1])] = players
		}
	}
	return teams, nil
}
