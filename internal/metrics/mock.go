package metrics

import "sync"

var _ Metrics = (*Mock)(nil)

// Mock is a Metrics implementation for tests. Safe for concurrent use.
type Mock struct {
	mu sync.Mutex

	CommandsHandledCalls   []string
	MatchesRegisteredCount int
	PlayersRegisteredCount int
	CommandDurations       []float64
	SlackMessagesSentCount int
	SlackMessagesFailCount int
	StartupTime            float64
}

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{}
}

func (m *Mock) IncCommandsHandled(commandType string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CommandsHandledCalls = append(m.CommandsHandledCalls, commandType)
}

func (m *Mock) IncMatchesRegistered() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.MatchesRegisteredCount++
}

func (m *Mock) IncPlayersRegistered() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.PlayersRegisteredCount++
}

func (m *Mock) ObserveCommandDuration(duration float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CommandDurations = append(m.CommandDurations, duration)
}

func (m *Mock) IncSlackMessagesSent() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SlackMessagesSentCount++
}

func (m *Mock) IncSlackMessagesFailed() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SlackMessagesFailCount++
}

func (m *Mock) SetStartupTime(duration float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.StartupTime = duration
}
