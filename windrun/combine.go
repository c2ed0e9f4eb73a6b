package windrun

import (
	"dota-draft-tools/storage"
)

// Combine arma el "data" del cache HS: cada héroe del by-hero con sus habilidades
// y las stats HS por id de habilidad. El win% del héroe sale de su fila de modelo
// en HS o, si no hay, de su body winrate.
func Combine(heroes []HeroBlock, hs HighSkill) map[string]storage.HeroEntry {
	out := make(map[string]storage.HeroEntry, len(heroes))
	for _, h := range heroes {
		entry := storage.HeroEntry{
			HeroImg:     h.Img,
			BodyWinrate: h.BodyWinrate,
			WinPct:      h.BodyWinrate,
		}
		if h.ID != 0 {
			id := h.ID
			entry.HeroID = &id
		}
		if model, ok := hs.Models[h.Name]; ok {
			if model.WinPct != nil {
				entry.WinPct = model.WinPct
			}
			entry.PickNum = model.PickNum
		}

		entry.Abilities = make([]storage.AbilityEntry, 0, len(h.Abilities))
		for _, a := range h.Abilities {
			id := a.ID
			ab := storage.AbilityEntry{AbilityID: &id, AbilityName: a.Name, Img: a.Img}
			if hsA, ok := hs.Abilities[a.ID]; ok {
				ab.AbilityName = hsA.Name
				ab.WinPct = hsA.WinPct
				ab.PickNum = hsA.PickNum
				if ab.Img == "" {
					ab.Img = hsA.Img
				}
			}
			entry.Abilities = append(entry.Abilities, ab)
		}
		out[h.Name] = entry
	}
	return out
}
