package storage

import (
	"path/filepath"
	"time"
)

const HighSkillFile = "ability_high_skill.json"

type Source struct {
	HS     string `json:"hs"`
	ByHero string `json:"by_hero"`
}

// AbilityEntry es una habilidad dentro del cache HS
type AbilityEntry struct {
	AbilityID   *int     `json:"ability_id,omitempty"`
	AbilityName string   `json:"ability_name"`
	Img         string   `json:"img,omitempty"`
	WinPct      *float64 `json:"win_pct"`
	PickNum     *float64 `json:"pick_num"`
}

// HeroEntry es una entrada de "data". Las entradas de héroe tienen abilities/hero_img;
// las entradas sueltas (agregadas a mano) solo traen win_pct/pick_num/img.
type HeroEntry struct {
	HeroID      *int           `json:"hero_id,omitempty"`
	HeroImg     string         `json:"hero_img,omitempty"`
	Img         string         `json:"img,omitempty"`
	BodyWinrate *float64       `json:"body_winrate,omitempty"`
	WinPct      *float64       `json:"win_pct"`
	PickNum     *float64       `json:"pick_num"`
	Abilities   []AbilityEntry `json:"abilities,omitempty"`
}

func (h HeroEntry) IsHero() bool {
	return h.Abilities != nil || h.HeroImg != "" || h.HeroID != nil
}

type HighSkillCache struct {
	Source   Source               `json:"source"`
	CachedAt string               `json:"cached_at"`
	Data     map[string]HeroEntry `json:"data"`
}

func HighSkillPath(cacheDir string) string {
	return filepath.Join(cacheDir, HighSkillFile)
}

// LoadHighSkill es obligatorio: si falta, el error envuelve ErrMissingCache
func LoadHighSkill(cacheDir string) (*HighSkillCache, error) {
	var doc HighSkillCache
	if err := ReadJSON(HighSkillPath(cacheDir), &doc); err != nil {
		return nil, err
	}
	if doc.Data == nil {
		doc.Data = map[string]HeroEntry{}
	}
	return &doc, nil
}

func SaveHighSkill(cacheDir string, source Source, data map[string]HeroEntry, now time.Time) error {
	doc := HighSkillCache{
		Source:   source,
		CachedAt: now.UTC().Format("2006-01-02T15:04:05Z"),
		Data:     data,
	}
	return WriteJSONAtomic(HighSkillPath(cacheDir), doc)
}
