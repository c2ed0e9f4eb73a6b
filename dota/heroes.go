package dota

import (
	"fmt"
	"sort"
	"strings"
)

const steamCDNHeroes = "https://cdn.cloudflare.steamstatic.com/apps/dota2/images/dota_react/heroes"

// HeroSlug convierte "npc_dota_hero_antimage" en "antimage"
func HeroSlug(internalName string) string {
	return strings.TrimPrefix(internalName, "npc_dota_hero_")
}

// HeroImageURL retorna la URL del render del héroe en el CDN de Steam
func HeroImageURL(internalName string) string {
	slug := HeroSlug(internalName)
	if slug == "" {
		return ""
	}
	return fmt.Sprintf("%s/%s.png", steamCDNHeroes, slug)
}

// HeroIndex indexa /heroStats por id y por nombre localizado en minúsculas
type HeroIndex struct {
	byID   map[int]HeroStat
	byName map[string]HeroStat
}

func NewHeroIndex(heroes []HeroStat) *HeroIndex {
	idx := &HeroIndex{
		byID:   make(map[int]HeroStat, len(heroes)),
		byName: make(map[string]HeroStat, len(heroes)),
	}
	for _, h := range heroes {
		idx.byID[h.ID] = h
		idx.byName[strings.ToLower(strings.TrimSpace(h.LocalizedName))] = h
	}
	return idx
}

func (idx *HeroIndex) ByID(id int) (HeroStat, bool) {
	h, ok := idx.byID[id]
	return h, ok
}

// ByName busca sin distinguir mayúsculas
func (idx *HeroIndex) ByName(name string) (HeroStat, bool) {
	h, ok := idx.byName[strings.ToLower(strings.TrimSpace(name))]
	return h, ok
}

// Name retorna el nombre localizado o "Hero N" si no se conoce
func (idx *HeroIndex) Name(id int) string {
	if h, ok := idx.byID[id]; ok {
		return h.LocalizedName
	}
	return fmt.Sprintf("Hero %d", id)
}

// Sorted devuelve los héroes ordenados alfabéticamente por nombre localizado
func (idx *HeroIndex) Sorted() []HeroStat {
	out := make([]HeroStat, 0, len(idx.byID))
	for _, h := range idx.byID {
		out = append(out, h)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].LocalizedName < out[j].LocalizedName })
	return out
}

func FormatDuration(seconds int) string {
	hours := seconds / 3600
	minutes := (seconds % 3600) / 60
	secs := seconds % 60

	if hours > 0 {
		return fmt.Sprintf("%d:%02d:%02d", hours, minutes, secs)
	}
	return fmt.Sprintf("%d:%02d", minutes, secs)
}

func GetRankName(rankTier *int) string {
	if rankTier == nil {
		return "Unranked"
	}

	rank := *rankTier
	tier := rank / 10
	star := rank % 10

	ranks := map[int]string{
		1: "Herald",
		2: "Guardian",
		3: "Crusader",
		4: "Archon",
		5: "Legend",
		6: "Ancient",
		7: "Divine",
		8: "Immortal",
	}

	if tierName, ok := ranks[tier]; ok {
		if tier == 8 {
			return tierName
		}
		return fmt.Sprintf("%s %d", tierName, star)
	}
	return fmt.Sprintf("Rank %d", rank)
}
