package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dota-draft-tools/draft"
	"dota-draft-tools/storage"
)

func fp(v float64) *float64 { return &v }

func seedCache(t *testing.T, dir string) {
	t.Helper()
	data := map[string]storage.HeroEntry{
		"Ursa": {HeroImg: "https://windrun.io/ursa.png", PickNum: fp(20), Abilities: []storage.AbilityEntry{
			{AbilityName: "Fury Swipes", WinPct: fp(55), PickNum: fp(3)},
			{AbilityName: "Overpower", WinPct: fp(52), PickNum: fp(9)},
		}},
		"Lion": {HeroImg: "https://windrun.io/lion.png", Abilities: []storage.AbilityEntry{
			{AbilityName: "Hex", WinPct: fp(51), PickNum: fp(5)},
		}},
	}
	require.NoError(t, storage.SaveHighSkill(dir, storage.Source{HS: "hs", ByHero: "bh"}, data, time.Now()))

	roles := storage.OpenRoleStore(dir)
	roles.Set("Fury Swipes", "carry")
	roles.Set("Hex", "support")
	require.NoError(t, roles.Save(false))

	require.NoError(t, storage.WriteJSONAtomic(filepath.Join(dir, storage.PairsFile), map[string]any{
		"pairs": []map[string]any{
			{"a1": "Fury Swipes", "a2": "Hex", "synergy": 3.5},
			{"a1": "Fury Swipes", "a2": "Overpower", "synergy": 9.0},
		},
	}))
}

func TestBuild(t *testing.T) {
	dir := t.TempDir()
	seedCache(t, dir)
	out := filepath.Join(dir, "dist", "ad_helper.html")

	board, err := build(buildOptions{CacheDir: dir, Output: out, Heroes: []string{"ursa", "Lion"}, Hide: []string{"overpower"}, Now: time.Now()})
	require.NoError(t, err)

	assert.Equal(t, []string{"Ursa", "Lion"}, board.Heroes)
	require.Len(t, board.Tables.Carry, 1)
	assert.Equal(t, "Fury Swipes", board.Tables.Carry[0].Name)
	require.Len(t, board.Tables.Support, 1)
	// Fury Swipes, Hex y los dos modelos
	assert.Len(t, board.Tables.All, 4)

	// Overpower es del mismo héroe que Fury Swipes: no es combo cruzado
	require.Len(t, board.Combos, 1)
	assert.Equal(t, "Hex", board.Combos[0].A2)

	html, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(html), "Fury Swipes")
	assert.NotContains(t, string(html), "Overpower")
}

func TestBuild_LabeledModelInRoleTable(t *testing.T) {
	dir := t.TempDir()
	seedCache(t, dir)
	roles := storage.OpenRoleStore(dir)
	roles.Set("Ursa", "carry")
	require.NoError(t, roles.Save(false))
	out := filepath.Join(dir, "ad_helper.html")

	board, err := build(buildOptions{CacheDir: dir, Output: out, Heroes: []string{"Ursa", "Lion"}, Now: time.Now()})
	require.NoError(t, err)

	require.Len(t, board.Tables.Carry, 2)
	assert.Equal(t, "Fury Swipes", board.Tables.Carry[0].Name)
	assert.Equal(t, "Ursa", board.Tables.Carry[1].Name)
	assert.Equal(t, draft.KindModel, board.Tables.Carry[1].Kind)
	assert.Equal(t, draft.RoleCarry, board.Models[0].Role)

	html, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(html), `Ursa <span class="tag">modelo</span>`)
}

func TestBuild_MissingCache(t *testing.T) {
	_, err := build(buildOptions{CacheDir: t.TempDir(), Output: filepath.Join(t.TempDir(), "x.html")})
	assert.True(t, errors.Is(err, storage.ErrMissingCache))
}

func TestBuild_UnknownHero(t *testing.T) {
	dir := t.TempDir()
	seedCache(t, dir)
	_, err := build(buildOptions{CacheDir: dir, Output: filepath.Join(dir, "x.html"), Heroes: []string{"Pudge"}})
	assert.ErrorIs(t, err, draft.ErrUnknownHero)
}
