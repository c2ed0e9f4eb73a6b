package dota

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLeagueService_RequiresLeagueID(t *testing.T) {
	svc := NewLeagueService(NewClient(ClientOptions{}), 0)

	_, err := svc.Overview(context.Background())
	assert.ErrorIs(t, err, ErrLeagueNotConfigured)

	_, err = svc.RecentMatches(context.Background(), 20)
	assert.ErrorIs(t, err, ErrLeagueNotConfigured)
}

func TestLeagueService_Overview(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/leagues/16840", r.URL.Path)
		w.Write([]byte(`{"leagueid":16840,"name":"RD2L","tier":"amateur"}`))
	}, "")

	league, err := NewLeagueService(client, 16840).Overview(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "RD2L", league.Name)
}

func TestFindLeaguesByName(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[
			{"leagueid":1,"name":"RD2L PST-SUN Season 36 ","tier":"amateur"},
			{"leagueid":2,"name":"RD2L PST-SUN Season 35","tier":"amateur"},
			{"leagueid":3,"name":"rd2l pst-sun season 36","tier":"amateur"}
		]`))
	}, "")

	leagues, err := NewLeagueService(client, 0).FindLeaguesByName(context.Background(), "  RD2L PST-SUN Season 36")
	require.NoError(t, err)
	require.Len(t, leagues, 2)
	assert.Equal(t, 1, leagues[0].LeagueID)
	assert.Equal(t, 3, leagues[1].LeagueID)
}
