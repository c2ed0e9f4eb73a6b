// player_stats calcula las métricas de cada jugador del CSV (winrate, comodidad,
// versatilidad, diversidad de roles) y las escribe en CSV, XLSX y HTML.
// Uso: go run ./cmd/player_stats players.csv [salida.csv]
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
)

func main() {
	debug := flag.Bool("debug", false, "Activar modo debug (logs solo en consola)")
	flag.Parse()
	if flag.NArg() < 1 || flag.NArg() > 2 {
		fmt.Fprintln(os.Stderr, "Uso: player_stats players.csv [salida.csv]")
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
	if err := logging.Init("player_stats", cfg.Debug); err != nil {
		fmt.Fprintf(os.Stderr, "Error inicializando logger: %v\n", err)
		os.Exit(1)
	}
	log := logging.Get()

	reports, err := config.LoadReports(cfg.ReportsFile)
	if err != nil {
		log.Warnf("Usando valores por defecto: %v", err)
	}

	csvPath := filepath.Join(cfg.DistDir, "player_report.csv")
	if flag.NArg() == 2 {
		csvPath = flag.Arg(1)
	}
	base := strings.TrimSuffix(csvPath, filepath.Ext(csvPath))

	players, err := roster.LoadPlayers(flag.Arg(0))
	if err != nil {
		log.Fatalf("Error cargando jugadores: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client := dota.NewClient(dota.ClientOptions{
		BaseURL:      cfg.OpenDotaBaseURL,
		APIKey:       cfg.OpenDotaAPIKey,
		RequestDelay: time.Duration(reports.RequestDelayMs) * time.Millisecond,
	})
	retry := reports.PlayerStatsRetry
	collector := dota.NewCollector(client, nil, dota.NewRetryPolicy(retry.Sleep(), retry.MaxRetries))

	rows := make([]report.PlayerMetrics, 0, len(players))
	failed := 0
	for _, p := range players {
		row, err := playerMetrics(ctx, collector, p, reports.PlayerStatsDays)
		if err != nil {
			if ctx.Err() != nil {
				log.Fatalf("Cancelado: %v", ctx.Err())
			}
			log.Warnf("%s: %v", p.Name, err)
			failed++
		}
		rows = append(rows, row)
	}

	if err := report.WritePlayerMetricsCSV(csvPath, rows); err != nil {
		log.Fatalf("Error escribiendo CSV: %v", err)
	}
	if err := report.WritePlayerMetricsXLSX(base+".xlsx", rows); err != nil {
		log.Fatalf("Error escribiendo XLSX: %v", err)
	}
	if err := report.WriteFile(base+".html", func(w io.Writer) error {
		return report.RenderPlayerReport(w, report.PlayerReportPage{
			Title:       reports.Title + " Player Report",
			GeneratedAt: report.Stamp(time.Now()),
			Days:        reports.PlayerStatsDays,
			Rows:        rows,
		})
	}); err != nil {
		log.Fatalf("Error escribiendo HTML: %v", err)
	}
	log.Infof("Resultados en %s (%d jugadores, %d sin datos)", csvPath, len(rows), failed)

	notifier, err := notify.New(cfg.DiscordWebhookURL)
	if err != nil {
		log.Warnf("Webhook de Discord inválido: %v", err)
		return
	}
	notify.Announce(ctx, notifier, notify.Announcement{
		Title: reports.Title + " Player Report",
		Lines: []string{fmt.Sprintf("%d jugadores procesados, %d sin datos", len(rows), failed)},
	})
}

// playerMetrics devuelve siempre una fila; ante cualquier error es la fila "N/A"
func playerMetrics(ctx context.Context, c *dota.Collector, p roster.Player, days int) (report.PlayerMetrics, error) {
	id, err := p.AccountID()
	if err != nil {
		return report.UnavailableMetrics(p.Name), err
	}
	logging.Get().Infof("Procesando jugador %s (ID: %s)", p.Name, id)

	heroes, err := c.PlayerHeroes(ctx, id, fmt.Sprintf("%dd", days), days)
	if err != nil {
		return report.UnavailableMetrics(p.Name), err
	}
	counts, err := c.PlayerCounts(ctx, id, days)
	if err != nil {
		return report.UnavailableMetrics(p.Name), err
	}
	wl, err := c.PlayerWinLoss(ctx, id, days)
	if err != nil {
		return report.UnavailableMetrics(p.Name), err
	}

	row := report.NewPlayerMetrics(p.Name, dota.HeroGamesList(heroes), wl.Win, wl.Lose, dota.LaneRoleGames(counts))
	if rank, err := c.PlayerRank(ctx, id); err == nil {
		row.Rank = rank
	} else {
		logging.Get().Debugf("%s: sin rango: %v", p.Name, err)
	}
	return row, nil
}
