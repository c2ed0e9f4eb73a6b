package storage

import (
	"encoding/json"
	"os"
	"path/filepath"

	"dota-draft-tools/logging"
)

const PairsFile = "ability_pairs.json"

// PairEntry es un combo precalculado externamente (a1/a2 son habilidades o héroes)
type PairEntry struct {
	A1      string   `json:"a1"`
	A2      string   `json:"a2"`
	A1Img   string   `json:"a1_img,omitempty"`
	A2Img   string   `json:"a2_img,omitempty"`
	Synergy *float64 `json:"synergy"`
}

// LoadPairs es opcional: si falta o está corrupto devuelve una lista vacía
func LoadPairs(cacheDir string) []PairEntry {
	path := filepath.Join(cacheDir, PairsFile)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}
	var doc struct {
		Pairs []json.RawMessage `json:"pairs"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		logging.Get().Warnf("%s corrupto, se ignora: %v", path, err)
		return nil
	}

	// Entradas individuales mal formadas (p.ej. synergy como string) se saltan
	pairs := make([]PairEntry, 0, len(doc.Pairs))
	skipped := 0
	for _, raw := range doc.Pairs {
		var p PairEntry
		if err := json.Unmarshal(raw, &p); err != nil {
			skipped++
			continue
		}
		pairs = append(pairs, p)
	}
	if skipped > 0 {
		logging.Get().Warnf("%s: %d pares ignorados por formato inválido", path, skipped)
	}
	return pairs
}
