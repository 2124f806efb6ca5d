package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tablewars/pongbot/internal/config"
	"github.com/tablewars/pongbot/internal/metrics"
	"github.com/tablewars/pongbot/internal/pingpong"
	"github.com/tablewars/pongbot/internal/rating"
	"github.com/tablewars/pongbot/internal/store/memory"
)

func setupTestServer(t *testing.T) (*Server, *pingpong.Service) {
	t.Helper()
	backend := memory.New()
	service := pingpong.NewService(backend)
	server := NewServer(service, backend, metrics.NewMock(), http.NotFoundHandler(), config.Config{})
	return server, service
}

func seedMatch(t *testing.T, service *pingpong.Service) {
	t.Helper()
	_, err := service.AddNewPlayer("U1")
	require.NoError(t, err)
	_, err = service.AddNewPlayer("U2")
	require.NoError(t, err)
	_, err = service.AddMatch("U1", rating.HandDominant, "U2", rating.HandDominant, 11, 9)
	require.NoError(t, err)
}

func TestHealthCheckHandler(t *testing.T) {
	server, _ := setupTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rr := httptest.NewRecorder()
	server.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "OK!", rr.Body.String())
}

func TestScoreboardHandler(t *testing.T) {
	server, service := setupTestServer(t)
	seedMatch(t, service)

	req := httptest.NewRequest(http.MethodGet, "/scoreboard", nil)
	rr := httptest.NewRecorder()
	server.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var response ScoreboardResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))
	assert.Equal(t, 1, response.TotalMatches)
	require.Len(t, response.Leaderboard, 2)
	assert.Equal(t, pingpong.LeaderboardEntry{Rank: 1, Name: "U1", Rating: 1016}, response.Leaderboard[0])
	assert.Equal(t, pingpong.LeaderboardEntry{Rank: 2, Name: "U2", Rating: 984}, response.Leaderboard[1])
}

func TestListPlayersHandler(t *testing.T) {
	server, service := setupTestServer(t)
	_, err := service.AddNewPlayer("U1")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/players", nil)
	rr := httptest.NewRecorder()
	server.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	var players []pingpong.Player
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &players))
	require.Len(t, players, 1)
	assert.Equal(t, "U1", players[0].ID)
}

func TestListMatchesHandler(t *testing.T) {
	server, service := setupTestServer(t)
	seedMatch(t, service)

	req := httptest.NewRequest(http.MethodGet, "/matches", nil)
	rr := httptest.NewRecorder()
	server.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	var matches []pingpong.Match
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &matches))
	require.Len(t, matches, 1)
	assert.Equal(t, "U1", matches[0].Player1ID)
	assert.Equal(t, 11, matches[0].Player1Score)
}

func TestClearStoreHandler(t *testing.T) {
	server, service := setupTestServer(t)
	seedMatch(t, service)

	req := httptest.NewRequest(http.MethodPost, "/clear", nil)
	rr := httptest.NewRecorder()
	server.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "Store cleared!", rr.Body.String())

	total, err := service.TotalMatches()
	require.NoError(t, err)
	assert.Equal(t, 0, total)
}
