package rating_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tablewars/pongbot/internal/rating"
)

func TestRatings_GetDefaultsToInitialRating(t *testing.T) {
	r := rating.NewRatings()
	assert.Equal(t, 1000, r.Get(rating.HandDominant, rating.SportPingPong))
	assert.Equal(t, 1000, r.Get(rating.HandNonDominant, rating.SportSquash))
}

func TestRatings_UpdateDoesNotMutateReceiver(t *testing.T) {
	r := rating.NewRatings().Update(rating.HandDominant, rating.SportPingPong, 1500)
	updated := r.Update(rating.HandDominant, rating.SportPingPong, 2000)

	assert.Equal(t, 1500, r.Get(rating.HandDominant, rating.SportPingPong))
	assert.Equal(t, 2000, updated.Get(rating.HandDominant, rating.SportPingPong))
}

func TestRatings_UpdateCarriesOtherCellsOver(t *testing.T) {
	r := rating.NewRatings().
		Update(rating.HandDominant, rating.SportPingPong, 1100).
		Update(rating.HandDominant, rating.SportSquash, 1200).
		Update(rating.HandNonDominant, rating.SportPingPong, 1300)

	updated := r.Update(rating.HandDominant, rating.SportPingPong, 1400)
	assert.Equal(t, 1400, updated.Get(rating.HandDominant, rating.SportPingPong))
	assert.Equal(t, 1200, updated.Get(rating.HandDominant, rating.SportSquash))
	assert.Equal(t, 1300, updated.Get(rating.HandNonDominant, rating.SportPingPong))
}

func TestRatings_Equal(t *testing.T) {
	a := rating.NewRatings().Update(rating.HandDominant, rating.SportPingPong, 1500)
	b := rating.NewRatings().Update(rating.HandDominant, rating.SportPingPong, 1500)
	c := rating.NewRatings().Update(rating.HandDominant, rating.SportPingPong, 1501)

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.True(t, rating.NewRatings().Equal(rating.NewRatings()))
	// An explicitly stored 1000 is not the same as a defaulted cell.
	explicit := rating.NewRatings().Update(rating.HandDominant, rating.SportPingPong, 1000)
	assert.False(t, explicit.Equal(rating.NewRatings()))
}

func TestRatings_Entries(t *testing.T) {
	r := rating.NewRatings().
		Update(rating.HandDominant, rating.SportPingPong, 1100).
		Update(rating.HandNonDominant, rating.SportSquash, 1200)

	entries := r.Entries()
	require.Len(t, entries, 2)
	// Iteration order is not significant, compare as a set.
	seen := make(map[rating.Entry]bool)
	for _, e := range entries {
		seen[e] = true
	}
	assert.True(t, seen[rating.Entry{Hand: rating.HandDominant, Sport: rating.SportPingPong, Rating: 1100}])
	assert.True(t, seen[rating.Entry{Hand: rating.HandNonDominant, Sport: rating.SportSquash, Rating: 1200}])
}

func TestRatings_JSONRoundTrip(t *testing.T) {
	r := rating.NewRatings().
		Update(rating.HandDominant, rating.SportPingPong, 1516).
		Update(rating.HandNonDominant, rating.SportPingPong, 984).
		Update(rating.HandDominant, rating.SportSquash, 1200)

	data, err := json.Marshal(r)
	require.NoError(t, err)

	var decoded rating.Ratings
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.True(t, r.Equal(decoded))
}

func TestRatings_MarshalUsesCanonicalLabels(t *testing.T) {
	r := rating.NewRatings().Update(rating.HandDominant, rating.SportPingPong, 1500)
	data, err := json.Marshal(r)
	require.NoError(t, err)
	assert.JSONEq(t, `{"Dominant hand":{"Ping-Pong":1500}}`, string(data))
}

func TestRatings_UnmarshalRejectsUnknownLabels(t *testing.T) {
	var r rating.Ratings
	err := json.Unmarshal([]byte(`{"Left hand":{"Ping-Pong":1500}}`), &r)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown hand")

	err = json.Unmarshal([]byte(`{"Dominant hand":{"Padel":1500}}`), &r)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown sport")
}

func TestRatings_EmptyRoundTrip(t *testing.T) {
	data, err := json.Marshal(rating.NewRatings())
	require.NoError(t, err)
	assert.Equal(t, "{}", string(data))

	var decoded rating.Ratings
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.True(t, rating.NewRatings().Equal(decoded))
}

func TestParseSportAndHand(t *testing.T) {
	sport, ok := rating.ParseSport("Ping-Pong")
	assert.True(t, ok)
	assert.Equal(t, rating.SportPingPong, sport)

	_, ok = rating.ParseSport("Padel")
	assert.False(t, ok)

	hand, ok := rating.ParseHand("Non-dominant hand")
	assert.True(t, ok)
	assert.Equal(t, rating.HandNonDominant, hand)

	_, ok = rating.ParseHand("nd")
	assert.False(t, ok)
}
