package pingpong

import (
	"sync"

	"github.com/tablewars/pongbot/internal/rating"
)

// MockBackend is a test double for the Backend interface. Each method
// records its calls and delegates to the corresponding Func field when set.
// Safe for concurrent use.
type MockBackend struct {
	mu sync.Mutex

	CreatePlayerFunc func(player Player) (Player, error)
	GetPlayerFunc    func(id string) (Player, bool, error)
	ListPlayersFunc  func() ([]Player, error)
	UpdatePlayerFunc func(id string, update PlayerUpdate) (Player, error)
	CreateMatchFunc  func(match Match) (Match, error)
	ListMatchesFunc  func(sport rating.Sport) ([]Match, error)
	WipeFunc         func() error

	CreatePlayerCalls []Player
	GetPlayerCalls    []string
	UpdatePlayerCalls []struct {
		ID     string
		Update PlayerUpdate
	}
	CreateMatchCalls []Match
	ListMatchesCalls []rating.Sport
	WipeCalls        int
}

// NewMockBackend creates a new mock instance.
func NewMockBackend() *MockBackend {
	return &MockBackend{}
}

func (m *MockBackend) CreatePlayer(player Player) (Player, error) {
	m.mu.Lock()
	m.CreatePlayerCalls = append(m.CreatePlayerCalls, player)
	m.mu.Unlock()
	if m.CreatePlayerFunc != nil {
		return m.CreatePlayerFunc(player)
	}
	return player, nil
}

func (m *MockBackend) GetPlayer(id string) (Player, bool, error) {
	m.mu.Lock()
	m.GetPlayerCalls = append(m.GetPlayerCalls, id)
	m.mu.Unlock()
	if m.GetPlayerFunc != nil {
		return m.GetPlayerFunc(id)
	}
	return Player{}, false, nil
}

func (m *MockBackend) ListPlayers() ([]Player, error) {
	if m.ListPlayersFunc != nil {
		return m.ListPlayersFunc()
	}
	return nil, nil
}

func (m *MockBackend) UpdatePlayer(id string, update PlayerUpdate) (Player, error) {
	m.mu.Lock()
	m.UpdatePlayerCalls = append(m.UpdatePlayerCalls, struct {
		ID     string
		Update PlayerUpdate
	}{id, update})
	m.mu.Unlock()
	if m.UpdatePlayerFunc != nil {
		return m.UpdatePlayerFunc(id, update)
	}
	return Player{}, nil
}

func (m *MockBackend) CreateMatch(match Match) (Match, error) {
	m.mu.Lock()
	m.CreateMatchCalls = append(m.CreateMatchCalls, match)
	m.mu.Unlock()
	if m.CreateMatchFunc != nil {
		return m.CreateMatchFunc(match)
	}
	return match, nil
}

func (m *MockBackend) ListMatches(sport rating.Sport) ([]Match, error) {
	m.mu.Lock()
	m.ListMatchesCalls = append(m.ListMatchesCalls, sport)
	m.mu.Unlock()
	if m.ListMatchesFunc != nil {
		return m.ListMatchesFunc(sport)
	}
	return nil, nil
}

func (m *MockBackend) Wipe() error {
	m.mu.Lock()
	m.WipeCalls++
	m.mu.Unlock()
	if m.WipeFunc != nil {
		return m.WipeFunc()
	}
	return nil
}
