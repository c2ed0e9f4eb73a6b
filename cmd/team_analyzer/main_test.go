package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dota-draft-tools/roster"
)

func TestSelectPlayers(t *testing.T) {
	players := []roster.Player{{Name: "Anna"}, {Name: "bob"}, {Name: "Zed"}}

	all, err := selectPlayers(players, nil)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	some, err := selectPlayers(players, []string{"zed", " ANNA ", "ghost"})
	require.NoError(t, err)
	require.Len(t, some, 2)
	assert.Equal(t, "Anna", some[0].Name)
	assert.Equal(t, "Zed", some[1].Name)

	_, err = selectPlayers(players, []string{"ghost"})
	assert.ErrorIs(t, err, errNoPlayers)
}
