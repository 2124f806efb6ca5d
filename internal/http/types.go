package http

import (
	"net/http"

	"github.com/tablewars/pongbot/internal/config"
	"github.com/tablewars/pongbot/internal/metrics"
	"github.com/tablewars/pongbot/internal/pingpong"
)

type Server struct {
	Service        *pingpong.Service
	Backend        pingpong.Backend
	Metrics        metrics.Metrics
	MetricsHandler http.Handler
	Cfg            config.Config
	Router         *http.ServeMux
}

// ScoreboardResponse is the payload served at /scoreboard.
type ScoreboardResponse struct {
	TotalMatches int                         `json:"total_matches"`
	Leaderboard  []pingpong.LeaderboardEntry `json:"leaderboard"`
}
