// Package memory provides an in-process Backend. It backs unit tests and
// makes the bot runnable without any external storage.
package memory

import (
	"fmt"
	"sync"

	"github.com/tablewars/pongbot/internal/pingpong"
	"github.com/tablewars/pongbot/internal/rating"
)

type store struct {
	mu      sync.RWMutex
	players []pingpong.Player
	matches []pingpong.Match
}

// New creates an empty in-memory backend.
func New() pingpong.Backend {
	return &store{}
}

func (s *store) Wipe() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.players = nil
	s.matches = nil
	return nil
}

func (s *store) CreatePlayer(player pingpong.Player) (pingpong.Player, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.players {
		if p.ID == player.ID {
			return pingpong.Player{}, fmt.Errorf("player %s already exists", player.ID)
		}
	}
	s.players = append(s.players, player)
	return player, nil
}

func (s *store) GetPlayer(id string) (pingpong.Player, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.players {
		if p.ID == id {
			return p, true, nil
		}
	}
	return pingpong.Player{}, false, nil
}

func (s *store) ListPlayers() ([]pingpong.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	players := make([]pingpong.Player, len(s.players))
	copy(players, s.players)
	return players, nil
}

func (s *store) UpdatePlayer(id string, update pingpong.PlayerUpdate) (pingpong.Player, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, p := range s.players {
		if p.ID != id {
			continue
		}
		if update.Name != nil {
			p.Name = *update.Name
		}
		if update.Ratings != nil {
			p.Ratings = *update.Ratings
		}
		s.players[i] = p
		return p, nil
	}
	return pingpong.Player{}, fmt.Errorf("player %s does not exist", id)
}

func (s *store) CreateMatch(match pingpong.Match) (pingpong.Match, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.matches = append(s.matches, match)
	return match, nil
}

func (s *store) ListMatches(sport rating.Sport) ([]pingpong.Match, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var matches []pingpong.Match
	for _, m := range s.matches {
		if m.Sport == sport {
			matches = append(matches, m)
		}
	}
	return matches, nil
}
