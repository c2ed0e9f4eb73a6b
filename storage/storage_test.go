package storage

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadJSON_MissingFile(t *testing.T) {
	var v map[string]int
	err := ReadJSON(filepath.Join(t.TempDir(), "nope.json"), &v)
	assert.ErrorIs(t, err, ErrMissingCache)
}

func TestWriteJSONAtomic_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "data.json")
	require.NoError(t, WriteJSONAtomic(path, map[string]int{"a": 1}))

	var got map[string]int
	require.NoError(t, ReadJSON(path, &got))
	assert.Equal(t, 1, got["a"])

	_, err := os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err))
}

func TestHighSkill_SaveLoad(t *testing.T) {
	dir := t.TempDir()
	win := 55.2
	data := map[string]HeroEntry{
		"Ursa": {HeroImg: "ursa.png", Abilities: []AbilityEntry{{AbilityName: "Overpower", WinPct: &win}}},
	}
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, SaveHighSkill(dir, Source{HS: "hs", ByHero: "bh"}, data, now))

	doc, err := LoadHighSkill(dir)
	require.NoError(t, err)
	assert.Equal(t, "2025-03-01T12:00:00Z", doc.CachedAt)
	assert.Equal(t, "hs", doc.Source.HS)
	require.Contains(t, doc.Data, "Ursa")
	assert.True(t, doc.Data["Ursa"].IsHero())
	assert.InDelta(t, 55.2, *doc.Data["Ursa"].Abilities[0].WinPct, 1e-9)
}

func TestHighSkill_Missing(t *testing.T) {
	_, err := LoadHighSkill(t.TempDir())
	assert.ErrorIs(t, err, ErrMissingCache)
}

func TestHeroEntry_StandaloneIsNotHero(t *testing.T) {
	pick := 12.0
	assert.False(t, HeroEntry{PickNum: &pick, Img: "x.png"}.IsHero())
}

func TestRoleStore_MalformedIsEmpty(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, RolesFile), []byte("{not json"), 0644))

	s := OpenRoleStore(dir)
	assert.Equal(t, 0, s.Len())
}

func TestRoleStore_SaveWithBackup(t *testing.T) {
	dir := t.TempDir()
	s := OpenRoleStore(dir)
	s.now = func() time.Time { return time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC) }

	s.SetMeta(Source{HS: "hs"}, "2025-01-01T00:00:00Z", []string{"carry", "support", "both"})
	s.Set("Hex", "support")
	s.Set("Fury Swipes", "carry")
	s.Delete("Fury Swipes")
	require.NoError(t, s.Save(true))

	_, err := os.Stat(filepath.Join(dir, "backups", "ability_roles_20250102-030405.json"))
	require.NoError(t, err)

	reopened := OpenRoleStore(dir)
	label, ok := reopened.Get("Hex")
	assert.True(t, ok)
	assert.Equal(t, "support", label)
	_, ok = reopened.Get("Fury Swipes")
	assert.False(t, ok)
	assert.Equal(t, "2025-01-02T03:04:05Z", reopened.meta.UpdatedAt)
	assert.Equal(t, []string{"Fury Swipes", "Overpower"}, reopened.Unlabeled([]string{"Overpower", "Hex", "Fury Swipes"}))
}

func TestRoleStore_LabelsIsCopy(t *testing.T) {
	s := OpenRoleStore(t.TempDir())
	s.Set("Hex", "support")
	labels := s.Labels()
	labels["Hex"] = "carry"

	got, _ := s.Get("Hex")
	assert.Equal(t, "support", got)
}

func TestLoadPairs(t *testing.T) {
	dir := t.TempDir()
	assert.Empty(t, LoadPairs(dir))

	body := `{"pairs":[
		{"a1":"Overpower","a2":"Hex","synergy":4.2},
		{"a1":"Hex","a2":"Ursa","synergy":"bad"},
		{"a1":"Hex","a2":"Fury Swipes"}
	]}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, PairsFile), []byte(body), 0644))

	pairs := LoadPairs(dir)
	require.Len(t, pairs, 2)
	assert.Equal(t, "Overpower", pairs[0].A1)
	assert.InDelta(t, 4.2, *pairs[0].Synergy, 1e-9)
	assert.Nil(t, pairs[1].Synergy)
}

func TestLoadPairs_Malformed(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, PairsFile), []byte("[[["), 0644))
	assert.Empty(t, LoadPairs(dir))
}

func TestAPICache_FetchAndRefresh(t *testing.T) {
	dir := t.TempDir()
	cache, err := NewAPICache(dir, false)
	require.NoError(t, err)

	calls := 0
	fetch := func(v *[]int) func() error {
		return func() error {
			calls++
			*v = []int{calls}
			return nil
		}
	}

	var first []int
	require.NoError(t, cache.Fetch("heroStats", &first, fetch(&first)))
	var second []int
	require.NoError(t, cache.Fetch("heroStats", &second, fetch(&second)))
	assert.Equal(t, 1, calls)
	assert.Equal(t, []int{1}, second)

	refreshing, err := NewAPICache(dir, true)
	require.NoError(t, err)
	var third []int
	require.NoError(t, refreshing.Fetch("heroStats", &third, fetch(&third)))
	assert.Equal(t, 2, calls)
	assert.Equal(t, []int{2}, third)
}

func TestAPICache_NullIsAMiss(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "42_profile.json"), []byte("null\n"), 0644))
	cache, err := NewAPICache(dir, false)
	require.NoError(t, err)

	var profile *struct{ RankTier int }
	assert.False(t, cache.Load("42_profile", &profile))

	calls := 0
	require.NoError(t, cache.Fetch("42_profile", &profile, func() error {
		calls++
		profile = &struct{ RankTier int }{RankTier: 45}
		return nil
	}))
	assert.Equal(t, 1, calls)
	require.NotNil(t, profile)
	assert.Equal(t, 45, profile.RankTier)
	assert.True(t, cache.Load("42_profile", &profile))
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("corte") }

func TestWriteStreamAtomic(t *testing.T) {
	path := filepath.Join(t.TempDir(), "img", "ursa.png")
	require.NoError(t, WriteStreamAtomic(path, strings.NewReader("png")))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "png", string(data))

	require.Error(t, WriteStreamAtomic(path, failingReader{}))
	data, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "png", string(data))
	_, err = os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err))
}
