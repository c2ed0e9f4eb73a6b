package roster

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractPlayerID(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"https://www.dotabuff.com/players/123456", "123456", false},
		{"https://www.dotabuff.com/players/123456/matches", "123456", false},
		{" https://www.opendota.com/players/42/ ", "42", false},
		{"https://example.com/u/987/", "987", false},
		{"https://www.dotabuff.com/esports/teams/abc", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ExtractPlayerID(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrNoPlayerID)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoadPlayers(t *testing.T) {
	path := filepath.Join(t.TempDir(), "players.csv")
	body := "name,dotabuff\n  zed ,https://www.dotabuff.com/players/1\nAnna,https://www.dotabuff.com/players/2\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))

	players, err := LoadPlayers(path)
	require.NoError(t, err)
	require.Len(t, players, 2)
	assert.Equal(t, "zed", players[0].Name)

	SortByName(players)
	assert.Equal(t, "Anna", players[0].Name)
	id, err := players[1].AccountID()
	require.NoError(t, err)
	assert.Equal(t, "1", id)
}

func TestLoadPlayers_Missing(t *testing.T) {
	_, err := LoadPlayers(filepath.Join(t.TempDir(), "nope.csv"))
	assert.Error(t, err)
}

func TestParseHeroList(t *testing.T) {
	assert.Equal(t, []string{"anti-mage", "shadow fiend", "io"}, ParseHeroList("Anti-Mage, Shadow Fiend,,IO\n"))
	assert.Equal(t, []string{"Ursa", "Lion"}, SplitList(" Ursa ,, Lion"))
	assert.Nil(t, SplitList(" , "))
}

func TestSlugify(t *testing.T) {
	assert.Equal(t, "the_big_team", Slugify("  The Big   Team! "))
	assert.Equal(t, "team_ñu", Slugify("Team Ñu"))
	assert.Equal(t, "a_b", Slugify("--a--b--"))
}

func TestParseTeams(t *testing.T) {
	sheet := strings.Join([]string{
		"Position,Team Alpha,,Position,Beta Squad",
		"1,Zed,,1,Mia",
		"2,anna,,2,",
		"3,Bob",
		"4,Cy,,4,Lu",
		"5,Dee,,5,Kai",
		"6,Extra,,6,Nope",
		"Position,,,",
	}, "\n")

	teams, err := ParseTeams(strings.NewReader(sheet))
	require.NoError(t, err)
	require.Len(t, teams, 2)
	assert.Equal(t, []string{"anna", "bob", "cy", "dee", "zed"}, teams["team_alpha"])
	assert.Equal(t, []string{"kai", "lu", "mia"}, teams["beta_squad"])
}
