// generate_index genera index.html con links a los reportes y los últimos
// commits del repo como changelog.
// Uso: go run ./cmd/generate_index [--output dist/index.html] [--num-commits 8]
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"dota-draft-tools/config"
	"dota-draft-tools/logging"
	"dota-draft-tools/report"
)

func main() {
	debug := flag.Bool("debug", false, "Activar modo debug (logs solo en consola)")
	repoPath := flag.String("repo-path", ".", "Ruta del repositorio git")
	output := flag.String("output", "", "HTML de salida (por defecto <DIST_DIR>/index.html)")
	numCommits := flag.Int("num-commits", 8, "Cantidad de commits en el changelog")
	branch := flag.String("branch", "main", "Rama de la que se leen los commits")
	title := flag.String("title", "League of Lads Reports", "Título de la página")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error cargando configuración: %v\n", err)
		os.Exit(1)
	}
	if *debug {
		cfg.Debug = true
	}
	if err := logging.Init("generate_index", cfg.Debug); err != nil {
		fmt.Fprintf(os.Stderr, "Error inicializando logger: %v\n", err)
		os.Exit(1)
	}
	log := logging.Get()

	out := *output
	if out == "" {
		out = filepath.Join(cfg.DistDir, "index.html")
	}

	// Sin git o sin la rama el índice sale igual, con el changelog vacío
	commits, err := latestCommits(context.Background(), *repoPath, *branch, *numCommits)
	if err != nil {
		log.Warnf("No se pudo leer el changelog: %v", err)
	}

	if err := report.WriteFile(out, func(w io.Writer) error {
		return report.RenderIndex(w, report.IndexPage{
			Title:       *title,
			GeneratedAt: report.Stamp(time.Now()),
			Changelog:   commits,
		})
	}); err != nil {
		log.Fatalf("Error generando index: %v", err)
	}
}

func latestCommits(ctx context.Context, repo, branch string, n int) ([]report.Commit, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	cmd := exec.CommandContext(ctx, "git", "-C", repo, "log", branch,
		fmt.Sprintf("--max-count=%d", n), "--date=format:%Y-%m-%d %H:%M:%S", report.GitLogFormat)
	out, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("error ejecutando git log: %w", err)
	}
	return report.ParseGitLog(string(out)), nil
}
