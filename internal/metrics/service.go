package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var _ Metrics = (*Service)(nil)

// Service is the Prometheus-backed Metrics implementation.
type Service struct {
	CommandsHandled    *prometheus.CounterVec
	MatchesRegistered  prometheus.Counter
	PlayersRegistered  prometheus.Counter
	CommandDuration    prometheus.Histogram
	SlackMessagesSent  prometheus.Counter
	SlackMessagesFail  prometheus.Counter
	StartupTimeSeconds prometheus.Gauge
}

// NewMetricsHandler returns an http.Handler for the given Gatherer.
// If no gatherer is provided, it uses the default one.
func NewMetricsHandler(gatherer ...prometheus.Gatherer) http.Handler {
	gath := prometheus.DefaultGatherer
	if len(gatherer) > 0 {
		gath = gatherer[0]
	}
	return promhttp.HandlerFor(gath, promhttp.HandlerOpts{})
}

// NewService creates and registers the Prometheus metrics.
// If no registerer is provided, it uses the default Prometheus registerer.
func NewService(registerer ...prometheus.Registerer) *Service {
	reg := prometheus.DefaultRegisterer
	if len(registerer) > 0 {
		reg = registerer[0]
	}

	s := &Service{
		CommandsHandled: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "pongbot_commands_handled_total",
			Help: "The total number of chat commands handled, by command type.",
		}, []string{"command"}),
		MatchesRegistered: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "pongbot_matches_registered_total",
			Help: "The total number of matches registered.",
		}),
		PlayersRegistered: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "pongbot_players_registered_total",
			Help: "The total number of players registered.",
		}),
		CommandDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "pongbot_command_duration_seconds",
			Help:    "The duration of individual command handling.",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}),
		SlackMessagesSent: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "pongbot_slack_messages_sent_total",
			Help: "The total number of Slack messages successfully sent.",
		}),
		SlackMessagesFail: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "pongbot_slack_messages_failed_total",
			Help: "The total number of Slack messages that failed to send.",
		}),
		StartupTimeSeconds: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "pongbot_startup_duration_seconds",
			Help: "The duration of the application startup in seconds.",
		}),
	}

	reg.MustRegister(
		s.CommandsHandled,
		s.MatchesRegistered,
		s.PlayersRegistered,
		s.CommandDuration,
		s.SlackMessagesSent,
		s.SlackMessagesFail,
		s.StartupTimeSeconds,
	)

	return s
}

func (s *Service) IncCommandsHandled(commandType string) {
	s.CommandsHandled.WithLabelValues(commandType).Inc()
}

func (s *Service) IncMatchesRegistered() {
	s.MatchesRegistered.Inc()
}

func (s *Service) IncPlayersRegistered() {
	s.PlayersRegistered.Inc()
}

func (s *Service) ObserveCommandDuration(duration float64) {
	s.CommandDuration.Observe(duration)
}

func (s *Service) IncSlackMessagesSent() {
	s.SlackMessagesSent.Inc()
}

func (s *Service) IncSlackMessagesFailed() {
	s.SlackMessagesFail.Inc()
}

func (s *Service) SetStartupTime(duration float64) {
	s.StartupTimeSeconds.Set(duration)
}
