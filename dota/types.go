package dota

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// HeroStat representa un héroe de /heroStats
type HeroStat struct {
	ID            int      `json:"id"`
	Name          string   `json:"name"` // npc_dota_hero_antimage
	LocalizedName string   `json:"localized_name"`
	Img           string   `json:"img"`
	Icon          string   `json:"icon"`
	PrimaryAttr   string   `json:"primary_attr"`
	Roles         []string `json:"roles"`
}

// PlayerHero representa una fila de /players/{id}/heroes
type PlayerHero struct {
	HeroID     FlexInt `json:"hero_id"` // OpenDota lo ha devuelto como string e int
	LastPlayed int64   `json:"last_played"`
	Games      int     `json:"games"`
	Win        int     `json:"win"`
}

type WinLoss struct {
	Win  int `json:"win"`
	Lose int `json:"lose"`
}

// Counts representa /players/{id}/counts; solo usamos lane_role
type Counts struct {
	LaneRole map[string]CountEntry `json:"lane_role"`
}

// CountEntry acepta {"games":N,"win":M} o un número suelto
type CountEntry struct {
	Games int `json:"games"`
	Win   int `json:"win"`
}

func (c *CountEntry) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		*c = CountEntry{}
		return nil
	}
	if data[0] == '{' {
		type plain CountEntry
		var p plain
		if err := json.Unmarshal(data, &p); err != nil {
			return err
		}
		*c = CountEntry(p)
		return nil
	}
	var n float64
	if err := json.Unmarshal(data, &n); err != nil {
		// Cualquier otra cosa cuenta como 0 partidas
		*c = CountEntry{}
		return nil
	}
	*c = CountEntry{Games: int(n)}
	return nil
}

// PlayerMatch representa una partida de /players/{id}/matches
type PlayerMatch struct {
	MatchID    int64   `json:"match_id"`
	PlayerSlot int     `json:"player_slot"`
	RadiantWin *bool   `json:"radiant_win"`
	HeroID     FlexInt `json:"hero_id"`
	StartTime  int64   `json:"start_time"`
	Duration   int     `json:"duration"`
}

// PlayersResponse representa el perfil de un jugador
type PlayersResponse struct {
	Profile struct {
		AccountID   int    `json:"account_id"`
		Personaname string `json:"personaname"`
		Avatarfull  string `json:"avatarfull"`
		Profileurl  string `json:"profileurl"`
	} `json:"profile"`
	RankTier        *int `json:"rank_tier"`
	LeaderboardRank *int `json:"leaderboard_rank"`
}

type League struct {
	LeagueID int    `json:"leagueid"`
	Name     string `json:"name"`
	Tier     string `json:"tier"`
	Ticket   string `json:"ticket"`
	Banner   string `json:"banner"`
}

type LeagueMatch struct {
	MatchID       int64  `json:"match_id"`
	StartTime     int64  `json:"start_time"`
	Duration      int    `json:"duration"`
	RadiantWin    *bool  `json:"radiant_win"`
	RadiantTeamID *int   `json:"radiant_team_id"`
	DireTeamID    *int   `json:"dire_team_id"`
	RadiantScore  int    `json:"radiant_score"`
	DireScore     int    `json:"dire_score"`
	SeriesID      int64  `json:"series_id"`
	Version       *int   `json:"version"`
	Leagueid      int    `json:"leagueid"`
	Cluster       int    `json:"cluster"`
	Replay        string `json:"replay_url"`
}

type Team struct {
	TeamID  int     `json:"team_id"`
	Name    string  `json:"name"`
	Tag     string  `json:"tag"`
	Rating  float64 `json:"rating"`
	Wins    int     `json:"wins"`
	Losses  int     `json:"losses"`
	LogoURL string  `json:"logo_url"`
}

// FlexInt acepta un entero como número o como string
type FlexInt int

func (f *FlexInt) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		*f = 0
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		n, err := strconv.Atoi(s)
		if err != nil {
			return fmt.Errorf("hero_id inválido %q: %w", s, err)
		}
		*f = FlexInt(n)
		return nil
	}
	var n float64
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = FlexInt(int(n))
	return nil
}
