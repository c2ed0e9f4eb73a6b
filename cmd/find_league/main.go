// find_league busca el id de una liga por nombre y, con un id, muestra la liga
// y sus últimas partidas.
// Uso: go run ./cmd/find_league [--name "RD2L PST-SUN Season 36"] [--id 16840] [--limit 20]
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"dota-draft-tools/config"
	"dota-draft-tools/dota"
	"dota-draft-tools/logging"
)

func main() {
	debug := flag.Bool("debug", false, "Activar modo debug (logs solo en consola)")
	name := flag.String("name", "", "Nombre exacto de la liga (por defecto league_name de reports.yaml)")
	id := flag.Int("id", 0, "Id de la liga (por defecto league_id de reports.yaml)")
	limit := flag.Int("limit", 20, "Cantidad de partidas recientes a mostrar")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error cargando configuración: %v\n", err)
		os.Exit(1)
	}
	if *debug {
		cfg.Debug = true
	}
	if err := logging.Init("find_league", cfg.Debug); err != nil {
		fmt.Fprintf(os.Stderr, "Error inicializando logger: %v\n", err)
		os.Exit(1)
	}
	log := logging.Get()

	reports, err := config.LoadReports(cfg.ReportsFile)
	if err != nil {
		log.Warnf("Usando valores por defecto: %v", err)
	}
	if *name == "" {
		*name = reports.LeagueName
	}
	if *id == 0 {
		*id = reports.LeagueID
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client := dota.NewClient(dota.ClientOptions{BaseURL: cfg.OpenDotaBaseURL, APIKey: cfg.OpenDotaAPIKey})
	svc := dota.NewLeagueService(client, *id)

	if *name != "" {
		leagues, err := svc.FindLeaguesByName(ctx, *name)
		if err != nil {
			log.Fatalf("Error buscando ligas: %v", err)
		}
		if len(leagues) == 0 {
			fmt.Printf("No se encontró ninguna liga llamada %q\n", *name)
		}
		for _, l := range leagues {
			fmt.Printf("League ID: %d  Nombre: %s  Tier: %s\n", l.LeagueID, l.Name, l.Tier)
		}
	}

	league, err := svc.Overview(ctx)
	if errors.Is(err, dota.ErrLeagueNotConfigured) {
		return
	}
	if err != nil {
		log.Fatalf("Error obteniendo la liga %d: %v", *id, err)
	}
	fmt.Printf("\n%s (id %d, tier %s)\n", league.Name, league.LeagueID, league.Tier)

	matches, err := svc.RecentMatches(ctx, *limit)
	if err != nil {
		log.Fatalf("Error obteniendo partidas: %v", err)
	}
	teams := map[int]string{}
	teamName := func(teamID *int) string {
		if teamID == nil {
			return "?"
		}
		if n, ok := teams[*teamID]; ok {
			return n
		}
		n := fmt.Sprintf("Team %d", *teamID)
		if t, err := client.Team(ctx, *teamID); err == nil && t.Name != "" {
			n = t.Name
		}
		teams[*teamID] = n
		return n
	}
	for _, m := range matches {
		winner := "?"
		if m.RadiantWin != nil {
			winner = teamName(m.DireTeamID)
			if *m.RadiantWin {
				winner = teamName(m.RadiantTeamID)
			}
		}
		fmt.Printf("%d  %s  %s vs %s  %d-%d  %s  ganó %s\n",
			m.MatchID,
			time.Unix(m.StartTime, 0).Format("2006-01-02 15:04"),
			teamName(m.RadiantTeamID), teamName(m.DireTeamID),
			m.RadiantScore, m.DireScore,
			dota.FormatDuration(m.Duration),
			winner)
	}
}
