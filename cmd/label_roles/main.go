// label_roles es la sesión interactiva para etiquetar cada habilidad y cada modelo
// de héroe del cache HS como carry, support o both. Las etiquetas se guardan en cache/ability_roles.json.
package main

import (
	"flag"
	"fmt"
	"os"

	"dota-draft-tools/config"
	"dota-draft-tools/draft"
	"dota-draft-tools/labeler"
	"dota-draft-tools/logging"
	"dota-draft-tools/storage"
)

func main() {
	debug := flag.Bool("debug", false, "Activar modo debug (logs solo en consola)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error cargando configuración: %v\n", err)
		os.Exit(1)
	}
	if *debug {
		cfg.Debug = true
	}
	if err := logging.Init("label_roles", cfg.Debug); err != nil {
		fmt.Fprintf(os.Stderr, "Error inicializando logger: %v\n", err)
		os.Exit(1)
	}
	log := logging.Get()

	hs, err := storage.LoadHighSkill(cfg.CacheDir)
	if err != nil {
		log.Fatalf("Error cargando cache HS (corre scrape_abilities primero): %v", err)
	}
	catalog := draft.NewCatalog(hs.Data)

	store := storage.OpenRoleStore(cfg.CacheDir)
	roles := make([]string, len(draft.Roles))
	for i, r := range draft.Roles {
		roles[i] = string(r)
	}
	store.SetMeta(hs.Source, hs.CachedAt, roles)

	session := labeler.NewSession(store, catalog.LabelNames())
	if err := labeler.Run(session, os.Stdin, os.Stdout, catalog.AbilityInfo); err != nil {
		log.Fatalf("Error en la sesión de etiquetado: %v", err)
	}
	log.Infof("Sesión terminada: %d cambios, %d/%d etiquetadas", session.Changes(), session.Labeled(), session.Total())
}
