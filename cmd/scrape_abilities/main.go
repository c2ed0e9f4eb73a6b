// scrape_abilities descarga las páginas de habilidades de windrun.io y
// reconstruye cache/ability_high_skill.json.
// Ejecutar desde la raíz del repo: go run ./cmd/scrape_abilities
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"dota-draft-tools/config"
	"dota-draft-tools/logging"
	"dota-draft-tools/notify"
	"dota-draft-tools/storage"
	"dota-draft-tools/windrun"
)

func main() {
	debug := flag.Bool("debug", false, "Activar modo debug (logs solo en consola)")
	dumpHTML := flag.Bool("dump-html", false, "Guardar el HTML crudo en cache/debug/ para inspección")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error cargando configuración: %v\n", err)
		os.Exit(1)
	}
	if *debug {
		cfg.Debug = true
	}
	if err := logging.Init("scrape_abilities", cfg.Debug); err != nil {
		fmt.Fprintf(os.Stderr, "Error inicializando logger: %v\n", err)
		os.Exit(1)
	}
	log := logging.Get()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	fetcher := windrun.NewFetcher(nil)
	res, err := fetcher.Scrape(ctx)
	if res != nil && (*dumpHTML || err != nil) {
		dumpPages(cfg.CacheDir, res.Pages)
	}
	if err != nil {
		log.Fatalf("Error en el scraping: %v", err)
	}

	if err := storage.SaveHighSkill(cfg.CacheDir, res.Source(fetcher), res.Data, time.Now()); err != nil {
		log.Fatalf("Error guardando cache: %v", err)
	}

	abilities := 0
	for _, h := range res.Data {
		abilities += len(h.Abilities)
	}
	log.Infof("Cache guardado en %s: %d héroes, %d habilidades",
		storage.HighSkillPath(cfg.CacheDir), len(res.Data), abilities)

	notifier, err := notify.New(cfg.DiscordWebhookURL)
	if err != nil {
		log.Warnf("Webhook de Discord inválido: %v", err)
		return
	}
	notify.Announce(ctx, notifier, notify.Announcement{
		Title: "Cache de habilidades actualizado",
		Lines: []string{fmt.Sprintf("%d héroes, %d habilidades (windrun.io)", len(res.Data), abilities)},
	})
}

// dumpPages deja el HTML descargado en cache/debug; un fallo acá solo se loguea
func dumpPages(cacheDir string, pages windrun.Pages) {
	log := logging.Get()
	dir := filepath.Join(cacheDir, "debug")
	if err := os.MkdirAll(dir, 0755); err != nil {
		log.Warnf("No se pudo crear %s: %v", dir, err)
		return
	}
	for name, body := range map[string]string{
		"ability_high_skill.html": pages.HighSkill,
		"ability_by_hero.html":    pages.ByHero,
	} {
		if body == "" {
			continue
		}
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(body), 0644); err != nil {
			log.Warnf("No se pudo guardar %s: %v", path, err)
			continue
		}
		log.Infof("HTML guardado en %s", path)
	}
}
