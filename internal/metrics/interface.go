package metrics

// Metrics defines the interface for collecting application metrics.
// This decouples the application from the specific metrics implementation (e.g., Prometheus).
type Metrics interface {
	IncCommandsHandled(commandType string)
	IncMatchesRegistered()
	IncPlayersRegistered()
	ObserveCommandDuration(duration float64)
	IncSlackMessagesSent()
	IncSlackMessagesFailed()
	SetStartupTime(duration float64)
}
