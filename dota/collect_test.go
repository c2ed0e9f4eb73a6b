package dota

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dota-draft-tools/storage"
)

func TestCollector_PlayerHeroesUsesCache(t *testing.T) {
	var calls int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		assert.Equal(t, "/players/42/heroes", r.URL.Path)
		assert.Equal(t, "270", r.URL.Query().Get("date"))
		w.Write([]byte(`[{"hero_id":"1","games":10,"win":6},{"hero_id":22,"games":3,"win":1}]`))
	}, "")

	cache, err := storage.NewAPICache(t.TempDir(), false)
	require.NoError(t, err)
	c := NewCollector(client, cache, RetryPolicy{Sleep: time.Millisecond})

	for i := 0; i < 2; i++ {
		heroes, err := c.PlayerHeroes(context.Background(), "42", "last_9_months", 270)
		require.NoError(t, err)
		require.Len(t, heroes, 2)
	}
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))

	games := HeroGames([]PlayerHero{{HeroID: 1, Games: 10, Win: 6}})
	assert.Equal(t, 6, games[1].Wins)
}

func TestCollector_RetriesOn429(t *testing.T) {
	var calls int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) == 1 {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		w.Write([]byte(`[{"id":1,"name":"npc_dota_hero_antimage","localized_name":"Anti-Mage"}]`))
	}, "")

	var waits int
	policy := RetryPolicy{Sleep: time.Millisecond, OnRateLimit: func(int, time.Duration) { waits++ }}
	heroes, err := NewCollector(client, nil, policy).HeroStats(context.Background())
	require.NoError(t, err)
	require.Len(t, heroes, 1)
	assert.Equal(t, 1, waits)
}

func TestCollector_RecentMatchesPaginates(t *testing.T) {
	radiantWin := `true`
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))
		assert.Equal(t, "730", r.URL.Query().Get("date"))
		n := 100
		if offset >= 100 {
			n = 3
		}
		rows := make([]string, n)
		for i := range rows {
			rows[i] = fmt.Sprintf(`{"match_id":%d,"player_slot":0,"radiant_win":%s,"hero_id":5}`, offset+i, radiantWin)
		}
		w.Write([]byte("[" + strings.Join(rows, ",") + "]"))
	}, "")

	matches, err := NewCollector(client, nil, RetryPolicy{}).RecentMatches(context.Background(), "7", 730)
	require.NoError(t, err)
	assert.Len(t, matches, 103)

	games := HeroGamesFromMatches(matches)
	assert.Equal(t, 103, games[5].Games)
	assert.Equal(t, 103, games[5].Wins)
}

func TestLaneRoleGames(t *testing.T) {
	counts := &Counts{LaneRole: map[string]CountEntry{"1": {Games: 12, Win: 7}, "0": {Games: 3}}}
	assert.Equal(t, map[string]int{"1": 12, "0": 3}, LaneRoleGames(counts))
	assert.Empty(t, LaneRoleGames(nil))
}

func TestHeroRefs(t *testing.T) {
	idx := NewHeroIndex([]HeroStat{
		{ID: 22, Name: "npc_dota_hero_zuus", LocalizedName: "Zeus"},
		{ID: 1, Name: "npc_dota_hero_antimage", LocalizedName: "Anti-Mage"},
	})

	refs, missing := HeroRefs(idx, []string{"zeus", "pudge", "anti-mage"})
	require.Len(t, refs, 2)
	assert.Equal(t, "zuus", refs[0].Slug)
	assert.Equal(t, "Zeus", refs[0].Name)
	assert.Equal(t, []string{"pudge"}, missing)

	all := AllHeroRefs(idx)
	require.Len(t, all, 2)
	assert.Equal(t, "Anti-Mage", all[0].Name)
	assert.Equal(t, 1, all[0].ID)
}

func TestCollector_PlayerSummary(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/players/9/wl":
			assert.Equal(t, "720", r.URL.Query().Get("date"))
			w.Write([]byte(`{"win":30,"lose":20}`))
		case "/players/9/counts":
			w.Write([]byte(`{"lane_role":{"1":{"games":40,"win":22},"3":{"games":10,"win":4}}}`))
		case "/players/9":
			w.Write([]byte(`{"profile":{"account_id":9,"personaname":"nine"},"rank_tier":53}`))
		default:
			http.NotFound(w, r)
		}
	}, "")
	c := NewCollector(client, nil, RetryPolicy{})
	ctx := context.Background()

	wl, err := c.PlayerWinLoss(ctx, "9", 720)
	require.NoError(t, err)
	assert.Equal(t, 30, wl.Win)

	counts, err := c.PlayerCounts(ctx, "9", 720)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"1": 40, "3": 10}, LaneRoleGames(counts))

	rank, err := c.PlayerRank(ctx, "9")
	require.NoError(t, err)
	assert.Equal(t, GetRankName(ptrInt(53)), rank)

	_, err = c.PlayerWinLoss(ctx, "404", 0)
	assert.Error(t, err)
}

func ptrInt(v int) *int { return &v }

func TestCollector_NullCacheIsRefetched(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"42_profile", "42_wl_30"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name+".json"), []byte("null"), 0644))
	}
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/players/42":
			w.Write([]byte(`{"rank_tier": 45}`))
		case "/players/42/wl":
			w.Write([]byte(`{"win": 3, "lose": 1}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}, "")
	cache, err := storage.NewAPICache(dir, false)
	require.NoError(t, err)
	c := NewCollector(client, cache, RetryPolicy{Sleep: time.Millisecond})

	rank, err := c.PlayerRank(context.Background(), "42")
	require.NoError(t, err)
	assert.Equal(t, "Archon 5", rank)

	wl, err := c.PlayerWinLoss(context.Background(), "42", 30)
	require.NoError(t, err)
	assert.Equal(t, 3, wl.Win)
}

func TestCollector_NullProfileIsUnranked(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("null"))
	}, "")
	c := NewCollector(client, nil, RetryPolicy{Sleep: time.Millisecond})

	rank, err := c.PlayerRank(context.Background(), "42")
	require.NoError(t, err)
	assert.Equal(t, "Unranked", rank)
}
