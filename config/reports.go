package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// TimeFrame es una ventana de tiempo del analizador de equipos.
// Days == 0 significa "todo el historial".
type TimeFrame struct {
	Name         string  `yaml:"name"`
	Label        string  `yaml:"label"`
	Days         int     `yaml:"days"`
	BanThreshold float64 `yaml:"ban_threshold"`
}

type RetrySettings struct {
	SleepSeconds int `yaml:"sleep_seconds"`
	MaxRetries   int `yaml:"max_retries"`
}

func (r RetrySettings) Sleep() time.Duration {
	return time.Duration(r.SleepSeconds) * time.Second
}

type Reports struct {
	Title            string        `yaml:"title"`
	LeagueID         int           `yaml:"league_id"`
	LeagueName       string        `yaml:"league_name"`
	Gamma            float64       `yaml:"gamma"`
	RecentDays       int           `yaml:"recent_days"`
	PlayerStatsDays  int           `yaml:"player_stats_days"`
	RequestDelayMs   int           `yaml:"request_delay_ms"`
	TimeFrames       []TimeFrame   `yaml:"time_frames"`
	Retry            RetrySettings `yaml:"retry"`
	PlayerStatsRetry RetrySettings `yaml:"player_stats_retry"`
}

// DefaultReports reproduce las constantes históricas de los scripts.
func DefaultReports() Reports {
	return Reports{
		Title:           "PST-SUN",
		LeagueName:      "RD2L PST-SUN Season 36",
		Gamma:           0.69,
		RecentDays:      730,
		PlayerStatsDays: 720,
		RequestDelayMs:  1000,
		TimeFrames: []TimeFrame{
			{Name: "all_time", Label: "All Time", Days: 0, BanThreshold: 1.9},
			{Name: "last_2_years", Label: "Last 2 Years", Days: 730, BanThreshold: 1.7},
			{Name: "last_9_months", Label: "Last 9 Months", Days: 270, BanThreshold: 1.5},
		},
		Retry:            RetrySettings{SleepSeconds: 60, MaxRetries: 0},
		PlayerStatsRetry: RetrySettings{SleepSeconds: 61, MaxRetries: 5},
	}
}

// LoadReports carga reports.yaml encima de los valores por defecto.
// Si el archivo no existe se usan los valores por defecto.
func LoadReports(path string) (Reports, error) {
	r := DefaultReports()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return r, nil
		}
		return r, fmt.Errorf("error leyendo %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &r); err != nil {
		return DefaultReports(), fmt.Errorf("error parseando %s: %w", path, err)
	}
	if r.Gamma <= 0 {
		r.Gamma = DefaultReports().Gamma
	}
	if len(r.TimeFrames) == 0 {
		r.TimeFrames = DefaultReports().TimeFrames
	}
	return r, nil
}
