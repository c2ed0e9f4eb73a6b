// hero_stats genera el reporte de héroes: score ajustado de cada jugador en cada
// héroe de la lista, para todo el historial y para los últimos dos años.
// Uso: go run ./cmd/hero_stats players.csv heroes.csv [-o dist/hero_report.html]
package main

import (
	"context"
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
)

const chartFile = "hero_averages.html"

func main() {
	debug := flag.Bool("debug", false, "Activar modo debug (logs solo en consola)")
	output := flag.String("o", "", "HTML de salida (por defecto <DIST_DIR>/hero_report.html)")
	flag.Parse()
	if flag.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "Uso: hero_stats [-o salida.html] players.csv heroes.csv")
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
	if err := logging.Init("hero_stats", cfg.Debug); err != nil {
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
		out = filepath.Join(cfg.DistDir, "hero_report.html")
	}

	players, err := roster.LoadPlayers(flag.Arg(0))
	if err != nil {
		log.Fatalf("Error cargando jugadores: %v", err)
	}
	heroNames, err := roster.LoadHeroList(flag.Arg(1))
	if err != nil {
		log.Fatalf("Error cargando héroes: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client := dota.NewClient(dota.ClientOptions{
		BaseURL:      cfg.OpenDotaBaseURL,
		APIKey:       cfg.OpenDotaAPIKey,
		RequestDelay: time.Duration(reports.RequestDelayMs) * time.Millisecond,
	})
	collector := dota.NewCollector(client, nil, dota.NewRetryPolicy(reports.Retry.Sleep(), reports.Retry.MaxRetries))

	heroStats, err := collector.HeroStats(ctx)
	if err != nil {
		log.Fatalf("Error obteniendo héroes: %v", err)
	}
	heroes, missing := dota.HeroRefs(dota.NewHeroIndex(heroStats), heroNames)
	for _, m := range missing {
		log.Warnf("Héroe %q no existe en OpenDota, se omite", m)
	}

	names := make([]string, 0, len(players))
	all, recent := scoring.Stats{}, scoring.Stats{}
	for _, p := range players {
		names = append(names, p.Name)
		id, err := p.AccountID()
		if err != nil {
			log.Warnf("%s: %v", p.Name, err)
			continue
		}
		log.Infof("Jugador %s (ID: %s)", p.Name, id)

		allHeroes, err := collector.PlayerHeroes(ctx, id, "all", 0)
		if err != nil {
			log.Warnf("%s: %v", p.Name, err)
		}
		all[p.Name] = dota.HeroGames(allHeroes)

		matches, err := collector.RecentMatches(ctx, id, reports.RecentDays)
		if err != nil {
			log.Warnf("%s: %v", p.Name, err)
		}
		recent[p.Name] = dota.HeroGamesFromMatches(matches)
	}

	frames := []report.HeroFrame{
		{Key: "all", Label: "All Time", Report: scoring.BuildHeroReport(names, heroes, all, reports.Gamma)},
		{Key: "recent", Label: fmt.Sprintf("Last %d Days", reports.RecentDays), Report: scoring.BuildHeroReport(names, heroes, recent, reports.Gamma)},
	}
	title := reports.Title + " Hero Report"

	chartPath := filepath.Join(filepath.Dir(out), chartFile)
	if err := report.WriteFile(chartPath, func(w io.Writer) error {
		return report.RenderAverageChart(w, title, frames)
	}); err != nil {
		log.Fatalf("Error generando gráfico: %v", err)
	}
	if err := report.WriteFile(out, func(w io.Writer) error {
		return report.RenderHeroReport(w, report.HeroReportPage{
			Title:       title,
			GeneratedAt: report.Stamp(time.Now()),
			Frames:      frames,
			ChartFile:   chartFile,
		})
	}); err != nil {
		log.Fatalf("Error generando reporte: %v", err)
	}

	notifier, err := notify.New(cfg.DiscordWebhookURL)
	if err != nil {
		log.Warnf("Webhook de Discord inválido: %v", err)
		return
	}
	var top []string
	for i, s := range frames[0].Report.PlayerTotals {
		if i == 5 {
			break
		}
		top = append(top, fmt.Sprintf("%d. %s (%.2f)", i+1, s.Name, s.Score))
	}
	notify.Announce(ctx, notifier, notify.Announcement{
		Title: title,
		Lines: append([]string{fmt.Sprintf("%d jugadores, %d héroes: %s", len(names), len(heroes), strings.Join(heroNames, ", "))}, top...),
	})
}
