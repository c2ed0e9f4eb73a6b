package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadReports_MissingFileUsesDefaults(t *testing.T) {
	r, err := LoadReports(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultReports(), r)
}

func TestLoadReports_OverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reports.yaml")
	yml := `
title: League of Lads
league_id: 16840
time_frames:
  - name: last_month
    label: Last Month
    days: 30
    ban_threshold: 1.2
retry:
  sleep_seconds: 5
  max_retries: 2
`
	require.NoError(t, os.WriteFile(path, []byte(yml), 0644))

	r, err := LoadReports(path)
	require.NoError(t, err)
	assert.Equal(t, "League of Lads", r.Title)
	assert.Equal(t, 16840, r.LeagueID)
	assert.Equal(t, 0.69, r.Gamma)
	require.Len(t, r.TimeFrames, 1)
	assert.Equal(t, 30, r.TimeFrames[0].Days)
	assert.Equal(t, 2, r.Retry.MaxRetries)
	assert.Equal(t, 5, int(r.Retry.Sleep().Seconds()))
}

func TestLoadReports_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reports.yaml")
	require.NoError(t, os.WriteFile(path, []byte("title: [unclosed"), 0644))

	r, err := LoadReports(path)
	assert.Error(t, err)
	assert.Equal(t, DefaultReports(), r)
}

func TestReadPropertiesKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "opendota.properties")
	require.NoError(t, os.WriteFile(path, []byte("# comment\napi_key=abc-123\n"), 0644))

	key, ok := readPropertiesKey(path)
	assert.True(t, ok)
	assert.Equal(t, "abc-123", key)

	_, ok = readPropertiesKey(filepath.Join(t.TempDir(), "missing"))
	assert.False(t, ok)
}
