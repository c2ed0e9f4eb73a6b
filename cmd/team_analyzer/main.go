// team_analyzer suma el score de los jugadores de un equipo en cada héroe y
// sugiere bans, para cada ventana de tiempo configurada.
// Uso: go run ./cmd/team_analyzer [--team clave | --players "a,b"] [--refresh] players.csv
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"dota-draft-tools/config"
	"dota-draft-tools/dota"
	"dota-draft-tools/logging"
	"dota-draft-tools/notify"
	"dota-draft-tools/report"
	"dota-draft-tools/roster"
	"dota-draft-tools/scoring"
	"dota-draft-tools/storage"
)

var errNoPlayers = errors.New("ningún jugador coincide con la selección")

func main() {
	debug := flag.Bool("debug", false, "Activar modo debug (logs solo en consola)")
	output := flag.String("o", "", "HTML de salida (por defecto <DIST_DIR>/team_analyzer.html)")
	refresh := flag.Bool("refresh", false, "Ignorar el cache y volver a pedir todo a OpenDota")
	team := flag.String("team", "", "Clave del equipo en teams.json (ver parse_teams)")
	teamsFile := flag.String("teams", "teams.json", "Archivo generado por parse_teams")
	only := flag.String("players", "", "Jugadores a analizar, separados por coma")
	flag.Parse()
	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Uso: team_analyzer [flags] players.csv")
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error cargando configuración: %v\n", err)
		os.Exit(1)
	}
	if *debug {
		cfg.Debug = true
	}
	if err := logging.Init("team_analyzer", cfg.Debug); err != nil {
		fmt.Fprintf(os.Stderr, "Error inicializando logger: %v\n", err)
		os.Exit(1)
	}
	log := logging.Get()

	reports, err := config.LoadReports(cfg.ReportsFile)
	if err != nil {
		log.Warnf("Usando valores por defecto: %v", err)
	}
	out := *output
	if out == "" {
		out = filepath.Join(cfg.DistDir, "team_analyzer.html")
	}

	players, err := roster.LoadPlayers(flag.Arg(0))
	if err != nil {
		log.Fatalf("Error cargando jugadores: %v", err)
	}
	roster.SortByName(players)

	wanted := roster.SplitList(*only)
	if *team != "" {
		var teams map[string][]string
		if err := storage.ReadJSON(*teamsFile, &teams); err != nil {
			log.Fatalf("Error leyendo %s: %v", *teamsFile, err)
		}
		members, ok := teams[*team]
		if !ok {
			log.Fatalf("El equipo %q no está en %s", *team, *teamsFile)
		}
		wanted = members
	}
	players, err = selectPlayers(players, wanted)
	if err != nil {
		log.Fatalf("Error seleccionando jugadores: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cache, err := storage.NewAPICache(cfg.CacheDir, *refresh)
	if err != nil {
		log.Fatalf("Error preparando cache: %v", err)
	}
	client := dota.NewClient(dota.ClientOptions{
		BaseURL:      cfg.OpenDotaBaseURL,
		APIKey:       cfg.OpenDotaAPIKey,
		RequestDelay: time.Duration(reports.RequestDelayMs) * time.Millisecond,
	})
	collector := dota.NewCollector(client, cache, dota.NewRetryPolicy(reports.Retry.Sleep(), reports.Retry.MaxRetries))

	heroStats, err := collector.HeroStats(ctx)
	if err != nil {
		log.Fatalf("Error obteniendo héroes: %v", err)
	}
	heroes := dota.AllHeroRefs(dota.NewHeroIndex(heroStats))

	names := make([]string, len(players))
	for i, p := range players {
		names[i] = p.Name
	}

	var frames []report.TeamFrame
	for _, tf := range reports.TimeFrames {
		stats := scoring.Stats{}
		for _, p := range players {
			id, err := p.AccountID()
			if err != nil {
				log.Warnf("%s: %v", p.Name, err)
				continue
			}
			heroGames, err := collector.PlayerHeroes(ctx, id, tf.Name, tf.Days)
			if err != nil {
				log.Warnf("%s (%s): %v", p.Name, tf.Label, err)
			}
			stats[p.Name] = dota.HeroGames(heroGames)
		}
		analysis := scoring.AnalyzeTeam(names, heroes, stats, tf.BanThreshold, reports.Gamma)
		log.Infof("%s: %d héroes con score, %d bans sugeridos", tf.Label, len(analysis.Combined), len(analysis.Bans))
		frames = append(frames, report.TeamFrame{Frame: tf, Analysis: analysis})
	}

	if err := report.WriteFile(out, func(w io.Writer) error {
		return report.RenderTeamReport(w, report.TeamReportPage{
			Title:       "Team Analyzer",
			Team:        *team,
			Players:     names,
			GeneratedAt: report.Stamp(time.Now()),
			Frames:      frames,
		})
	}); err != nil {
		log.Fatalf("Error generando reporte: %v", err)
	}

	notifier, err := notify.New(cfg.DiscordWebhookURL)
	if err != nil {
		log.Warnf("Webhook de Discord inválido: %v", err)
		return
	}
	lines := []string{"Jugadores: " + strings.Join(names, ", ")}
	for _, f := range frames {
		var bans []string
		for _, b := range f.Analysis.Bans {
			bans = append(bans, b.Hero.Name)
		}
		if len(bans) == 0 {
			bans = []string{"-"}
		}
		lines = append(lines, fmt.Sprintf("%s: %s", f.Frame.Label, strings.Join(bans, ", ")))
	}
	notify.Announce(ctx, notifier, notify.Announcement{Title: "Team Analyzer " + *team, Lines: lines})
}

// selectPlayers filtra por nombre sin distinguir mayúsculas; sin filtro devuelve todos
func selectPlayers(players []roster.Player, wanted []string) ([]roster.Player, error) {
	if len(wanted) == 0 {
		return players, nil
	}
	set := make(map[string]bool, len(wanted))
	for _, w := range wanted {
		set[strings.ToLower(strings.TrimSpace(w))] = true
	}
	var out []roster.Player
	for _, p := range players {
		if set[strings.ToLower(p.Name)] {
			out = append(out, p)
			delete(set, strings.ToLower(p.Name))
		}
	}
	for name := range set {
		logging.Get().Warnf("Jugador %q no está en el CSV", name)
	}
	if len(out) == 0 {
		return nil, errNoPlayers
	}
	return out, nil
}
