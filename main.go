// build_ad_helper genera la página del helper de Ability Draft a partir de los
// caches de windrun, las etiquetas de rol y los pares de combos.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"dota-draft-tools/config"
	"dota-draft-tools/draft"
	"dota-draft-tools/logging"
	"dota-draft-tools/notify"
	"dota-draft-tools/report"
	"dota-draft-tools/roster"
	"dota-draft-tools/storage"
)

// Cuántas habilidades sin rol se listan en el aviso
const unlabeledPreview = 25

type buildOptions struct {
	CacheDir string
	Output   string
	Heroes   []string
	Hide     []string
	Now      time.Time
}

func main() {
	debug := flag.Bool("debug", false, "Activar modo debug (logs solo en consola)")
	heroes := flag.String("heroes", "", `Héroes seleccionados, separados por coma (máx 12), ej. "Ursa,Lion"`)
	hide := flag.String("hide", "", "Habilidades a ocultar de las tablas, separadas por coma")
	output := flag.String("output", "", "HTML de salida (por defecto <DIST_DIR>/ad_helper.html)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error cargando configuración: %v\n", err)
		os.Exit(1)
	}
	if *debug {
		cfg.Debug = true
	}
	if err := logging.Init("build_ad_helper", cfg.Debug); err != nil {
		fmt.Fprintf(os.Stderr, "Error inicializando logger: %v\n", err)
		os.Exit(1)
	}
	log := logging.Get()

	opts := buildOptions{
		CacheDir: cfg.CacheDir,
		Output:   *output,
		Heroes:   roster.SplitList(*heroes),
		Hide:     roster.SplitList(*hide),
		Now:      time.Now(),
	}
	if opts.Output == "" {
		opts.Output = filepath.Join(cfg.DistDir, "ad_helper.html")
	}

	board, err := build(opts)
	if err != nil {
		log.Fatalf("Error generando el helper: %v", err)
	}
	log.Infof("Helper generado en %s (%d héroes, %d habilidades, %d combos)",
		opts.Output, len(board.Heroes), len(board.Tables.All), len(board.Combos))

	notifier, err := notify.New(cfg.DiscordWebhookURL)
	if err != nil {
		log.Warnf("Webhook de Discord inválido: %v", err)
		return
	}
	if len(board.Heroes) > 0 {
		notify.Announce(context.Background(), notifier, notify.Announcement{
			Title: "Ability Draft Helper",
			Lines: []string{"Héroes: " + strings.Join(board.Heroes, ", ")},
		})
	}
}

func build(opts buildOptions) (draft.Board, error) {
	log := logging.Get()

	hs, err := storage.LoadHighSkill(opts.CacheDir)
	if err != nil {
		return draft.Board{}, fmt.Errorf("error cargando cache HS (corre scrape_abilities primero): %w", err)
	}
	catalog := draft.NewCatalog(hs.Data)
	if len(catalog.Heroes()) == 0 {
		log.Warn("El cache HS no tiene héroes")
	}

	roles := storage.OpenRoleStore(opts.CacheDir)
	unlabeled := roles.Unlabeled(catalog.LabelNames())
	if n := len(unlabeled); n > 0 {
		preview := unlabeled
		if n > unlabeledPreview {
			preview = unlabeled[:unlabeledPreview]
		}
		log.Warnf("%d habilidades o modelos sin rol (corre label_roles): %s", n, strings.Join(preview, ", "))
	}

	pairs := draft.PairsFromEntries(storage.LoadPairs(opts.CacheDir))
	log.Debugf("%d pares de combos cargados", len(pairs))

	sel, err := catalog.NewSelection(opts.Heroes...)
	if err != nil {
		return draft.Board{}, fmt.Errorf("error en la selección: %w", err)
	}

	board := draft.BuildBoard(catalog, sel, draft.NewRoleLookup(roles.Labels()), pairs, draft.HiddenSet(opts.Hide))
	page := report.AdHelperPage{
		GeneratedAt: report.Stamp(opts.Now),
		HSCachedAt:  hs.CachedAt,
		Board:       board,
		Available:   catalog.Heroes(),
		Unlabeled:   len(unlabeled),
	}
	err = report.WriteFile(opts.Output, func(w io.Writer) error {
		return report.RenderAdHelper(w, page)
	})
	return board, err
}
