package memory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tablewars/pongbot/internal/pingpong"
	"github.com/tablewars/pongbot/internal/rating"
	"github.com/tablewars/pongbot/internal/store/memory"
)

func TestCreateAndGetPlayer(t *testing.T) {
	backend := memory.New()

	player := pingpong.Player{ID: "U1", Name: "alice", Ratings: rating.NewRatings()}
	created, err := backend.CreatePlayer(player)
	require.NoError(t, err)
	assert.Equal(t, player, created)

	fetched, found, err := backend.GetPlayer("U1")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, player, fetched)

	_, found, err = backend.GetPlayer("U404")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestCreatePlayer_DuplicateID(t *testing.T) {
	backend := memory.New()

	_, err := backend.CreatePlayer(pingpong.Player{ID: "U1", Name: "alice"})
	require.NoError(t, err)
	_, err = backend.CreatePlayer(pingpong.Player{ID: "U1", Name: "impostor"})
	assert.Error(t, err)
}

func TestUpdatePlayer_PartialUpdate(t *testing.T) {
	backend := memory.New()

	_, err := backend.CreatePlayer(pingpong.Player{ID: "U1", Name: "alice", Ratings: rating.NewRatings()})
	require.NoError(t, err)

	newName := "alicia"
	updated, err := backend.UpdatePlayer("U1", pingpong.PlayerUpdate{Name: &newName})
	require.NoError(t, err)
	assert.Equal(t, "alicia", updated.Name)
	assert.True(t, updated.Ratings.Equal(rating.NewRatings()))

	ratings := rating.NewRatings().Update(rating.HandDominant, rating.SportPingPong, 1016)
	updated, err = backend.UpdatePlayer("U1", pingpong.PlayerUpdate{Ratings: &ratings})
	require.NoError(t, err)
	assert.Equal(t, "alicia", updated.Name)
	assert.True(t, updated.Ratings.Equal(ratings))

	_, err = backend.UpdatePlayer("U404", pingpong.PlayerUpdate{Name: &newName})
	assert.Error(t, err)
}

func TestListMatchesFiltersBySport(t *testing.T) {
	backend := memory.New()

	_, err := backend.CreateMatch(pingpong.Match{Player1ID: "U1", Player2ID: "U2", Sport: rating.SportPingPong})
	require.NoError(t, err)
	_, err = backend.CreateMatch(pingpong.Match{Player1ID: "U1", Player2ID: "U2", Sport: rating.SportSquash})
	require.NoError(t, err)

	pingPong, err := backend.ListMatches(rating.SportPingPong)
	require.NoError(t, err)
	assert.Len(t, pingPong, 1)

	squash, err := backend.ListMatches(rating.SportSquash)
	require.NoError(t, err)
	assert.Len(t, squash, 1)
}

func TestWipe(t *testing.T) {
	backend := memory.New()

	_, err := backend.CreatePlayer(pingpong.Player{ID: "U1"})
	require.NoError(t, err)
	_, err = backend.CreateMatch(pingpong.Match{Player1ID: "U1", Player2ID: "U2", Sport: rating.SportPingPong})
	require.NoError(t, err)

	require.NoError(t, backend.Wipe())

	players, err := backend.ListPlayers()
	require.NoError(t, err)
	assert.Empty(t, players)
	matches, err := backend.ListMatches(rating.SportPingPong)
	require.NoError(t, err)
	assert.Empty(t, matches)
}
