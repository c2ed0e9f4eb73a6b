// download_hero_images descarga los renders e íconos de héroes (CDN de Steam)
// a <DIST_DIR>/heroes para que los reportes funcionen sin conexión.
// Ejecutar desde la raíz del repo: go run ./cmd/download_hero_images [dir]
package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"dota-draft-tools/config"
	"dota-draft-tools/dota"
	"dota-draft-tools/logging"
	"dota-draft-tools/storage"
)

const steamCDNIcons = "https://cdn.cloudflare.steamstatic.com/apps/dota2/images/dota_react/heroes/icons"

func main() {
	debug := flag.Bool("debug", false, "Activar modo debug (logs solo en consola)")
	refresh := flag.Bool("refresh", false, "Volver a pedir heroStats aunque esté cacheado")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error cargando configuración: %v\n", err)
		os.Exit(1)
	}
	if *debug {
		cfg.Debug = true
	}
	if err := logging.Init("download_hero_images", cfg.Debug); err != nil {
		fmt.Fprintf(os.Stderr, "Error inicializando logger: %v\n", err)
		os.Exit(1)
	}
	log := logging.Get()

	outDir := filepath.Join(cfg.DistDir, "heroes")
	if flag.NArg() > 0 {
		outDir = flag.Arg(0)
	}
	if err := os.MkdirAll(outDir, 0755); err != nil {
		log.Fatalf("Error creando %s: %v", outDir, err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cache, err := storage.NewAPICache(cfg.CacheDir, *refresh)
	if err != nil {
		log.Fatalf("Error preparando cache: %v", err)
	}
	client := dota.NewClient(dota.ClientOptions{BaseURL: cfg.OpenDotaBaseURL, APIKey: cfg.OpenDotaAPIKey})
	heroes, err := dota.NewCollector(client, cache, dota.NewRetryPolicy(time.Minute, 3)).HeroStats(ctx)
	if err != nil {
		log.Fatalf("Error obteniendo héroes: %v", err)
	}

	httpClient := &http.Client{Timeout: 30 * time.Second}
	log.Infof("Descargando %d héroes en %s ...", len(heroes), outDir)
	ok, fail := 0, 0
	for _, h := range heroes {
		slug := dota.HeroSlug(h.Name)
		if slug == "" {
			continue
		}
		// Render -> {slug}.png
		if err := download(ctx, httpClient, dota.HeroImageURL(h.Name), filepath.Join(outDir, slug+".png")); err != nil {
			log.Warnf("%s: %v", slug, err)
			fail++
		} else {
			ok++
		}
		time.Sleep(100 * time.Millisecond)
		// Icono -> {slug}_icon.png
		iconURL := fmt.Sprintf("%s/%s.png", steamCDNIcons, slug)
		if err := download(ctx, httpClient, iconURL, filepath.Join(outDir, slug+"_icon.png")); err != nil {
			log.Debugf("%s (icono): %v", slug, err)
		}
		time.Sleep(100 * time.Millisecond)
	}
	log.Infof("Listo: %d renders ok, %d fallos", ok, fail)
}

func download(ctx context.Context, client *http.Client, url, path string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("HTTP %d", resp.StatusCode)
	}
	return storage.WriteStreamAtomic(path, resp.Body)
}
