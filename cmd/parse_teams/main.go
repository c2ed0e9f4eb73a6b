// parse_teams convierte la planilla de draft (exportada a CSV) en teams.json:
// clave del equipo -> jugadores en minúsculas.
// Uso: go run ./cmd/parse_teams planilla.csv [teams.json]
package main

import (
	"fmt"
	"os"

	"dota-draft-tools/logging"
	"dota-draft-tools/roster"
	"dota-draft-tools/storage"
)

func main() {
	if len(os.Args) < 2 || len(os.Args) > 3 {
		fmt.Fprintln(os.Stderr, "Uso: parse_teams planilla.csv [teams.json]")
		os.Exit(2)
	}
	input := os.Args[1]
	output := "teams.json"
	if len(os.Args) == 3 {
		output = os.Args[2]
	}
	log := logging.Get()

	f, err := os.Open(input)
	if err != nil {
		log.Fatalf("Error abriendo %s: %v", input, err)
	}
	defer f.Close()

	teams, err := roster.ParseTeams(f)
	if err != nil {
		log.Fatalf("Error parseando equipos: %v", err)
	}
	if len(teams) == 0 {
		log.Warn("No se encontró ninguna celda \"Position\" con nombre de equipo")
	}

	// encoding/json ordena las claves del mapa
	if err := storage.WriteJSONAtomic(output, teams); err != nil {
		log.Fatalf("Error escribiendo %s: %v", output, err)
	}
	log.Infof("%d equipos guardados en %s", len(teams), output)
}
