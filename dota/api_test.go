package dota

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc, apiKey string) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(ClientOptions{BaseURL: server.URL, APIKey: apiKey})
}

func TestGet_SendsBearerTokenAndDecodes(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/players/123/wl", r.URL.Path)
		assert.Equal(t, "730", r.URL.Query().Get("date"))
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		w.Write([]byte(`{"win": 10, "lose": 5}`))
	}, "secret")

	wl, err := client.PlayerWinLoss(context.Background(), "123", 730)
	require.NoError(t, err)
	assert.Equal(t, 10, wl.Win)
	assert.Equal(t, 5, wl.Lose)
}

func TestGet_NoAPIKeyNoHeader(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		assert.Empty(t, r.URL.RawQuery)
		w.Write([]byte(`[]`))
	}, "")

	heroes, err := client.PlayerHeroes(context.Background(), "1", 0)
	require.NoError(t, err)
	assert.Empty(t, heroes)
}

func TestGet_NonOKReturnsAPIError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error":"not found"}`))
	}, "")

	_, err := client.Team(context.Background(), 42)
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Contains(t, apiErr.Body, "not found")
	assert.False(t, errors.Is(err, ErrRateLimited))
}

func TestGet_TooManyRequestsIsRateLimited(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}, "")

	_, err := client.HeroStats(context.Background())
	assert.True(t, errors.Is(err, ErrRateLimited))
}

func TestPlayerHeroes_HeroIDAsString(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"hero_id":"8","games":20,"win":12},{"hero_id":14,"games":3,"win":1}]`))
	}, "")

	heroes, err := client.PlayerHeroes(context.Background(), "1", 0)
	require.NoError(t, err)
	require.Len(t, heroes, 2)
	assert.Equal(t, FlexInt(8), heroes[0].HeroID)
	assert.Equal(t, FlexInt(14), heroes[1].HeroID)
}

func TestPlayerCounts_LaneRoleShapes(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"lane_role":{"0":{"games":4,"win":1},"1":{"games":10,"win":6},"2":7,"3":null}}`))
	}, "")

	counts, err := client.PlayerCounts(context.Background(), "1", 720)
	require.NoError(t, err)
	assert.Equal(t, 10, counts.LaneRole["1"].Games)
	assert.Equal(t, 7, counts.LaneRole["2"].Games)
	assert.Equal(t, 0, counts.LaneRole["3"].Games)
}

func TestLeagueMatches_Limit(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/leagues/99/matches", r.URL.Path)
		assert.Equal(t, "20", r.URL.Query().Get("limit"))
		w.Write([]byte(`[{"match_id":1,"duration":1900,"radiant_win":true}]`))
	}, "")

	matches, err := client.LeagueMatches(context.Background(), 99, 20)
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, "31:40", FormatDuration(matches[0].Duration))
}

func TestAggregateMatches(t *testing.T) {
	yes, no := true, false
	matches := []PlayerMatch{
		{HeroID: 1, PlayerSlot: 0, RadiantWin: &yes},
		{HeroID: 1, PlayerSlot: 130, RadiantWin: &yes},
		{HeroID: 2, PlayerSlot: 129, RadiantWin: &no},
		{HeroID: 2, PlayerSlot: 1, RadiantWin: nil},
	}

	agg := AggregateMatches(matches)
	assert.Equal(t, 2, agg[1].Games)
	assert.Equal(t, 1, agg[1].Win)
	assert.Equal(t, 2, agg[2].Games)
	assert.Equal(t, 1, agg[2].Win)
}

func TestGetRankName(t *testing.T) {
	tier := func(n int) *int { return &n }
	assert.Equal(t, "Unranked", GetRankName(nil))
	assert.Equal(t, "Legend 3", GetRankName(tier(53)))
	assert.Equal(t, "Immortal", GetRankName(tier(80)))
	assert.Equal(t, "Rank 95", GetRankName(tier(95)))
}

func TestHeroIndex(t *testing.T) {
	idx := NewHeroIndex([]HeroStat{
		{ID: 70, Name: "npc_dota_hero_ursa", LocalizedName: "Ursa"},
		{ID: 26, Name: "npc_dota_hero_lion", LocalizedName: "Lion"},
	})

	h, ok := idx.ByName("  ursa ")
	require.True(t, ok)
	assert.Equal(t, 70, h.ID)
	assert.Equal(t, "Hero 1", idx.Name(1))
	assert.Equal(t, []string{"Lion", "Ursa"}, []string{idx.Sorted()[0].LocalizedName, idx.Sorted()[1].LocalizedName})
	assert.Equal(t, "https://cdn.cloudflare.steamstatic.com/apps/dota2/images/dota_react/heroes/ursa.png", HeroImageURL(h.Name))
}
