package pingpong

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/tablewars/pongbot/internal/rating"
)

// Service orchestrates the backend and the rating model. It holds no
// persistent state of its own; everything lives behind the injected Backend.
type Service struct {
	backend Backend

	// mu serializes AddMatch's read-modify-write of player ratings. Without
	// it, two concurrent registrations touching the same player could both
	// compute their delta from the same stale base rating.
	mu sync.Mutex
}

// NewService creates a Service over the given backend.
func NewService(backend Backend) *Service {
	return &Service{backend: backend}
}

// AddNewPlayer registers a player with the given id, using the id as the
// initial display name and an empty Ratings (every cell implicitly 1000).
// Duplicate-id handling is delegated to the backend.
func (s *Service) AddNewPlayer(id string) (Player, error) {
	player := Player{ID: id, Name: id, Ratings: rating.NewRatings()}
	created, err := s.backend.CreatePlayer(player)
	if err != nil {
		return Player{}, fmt.Errorf("create player %s: %w", id, err)
	}
	log.Info("Registered new player", "playerID", id)
	return created, nil
}

// GetPlayer resolves a player strictly by id, never by display name.
func (s *Service) GetPlayer(id string) (Player, error) {
	player, found, err := s.backend.GetPlayer(id)
	if err != nil {
		return Player{}, err
	}
	if !found {
		return Player{}, ErrPlayerNotFound
	}
	return player, nil
}

// UpdateDisplayName renames a player if no other player already holds the
// name case-insensitively. Renaming to one's own current name (in any
// casing) is a no-op success. Returns false, with nothing written, on a
// collision with a different player.
func (s *Service) UpdateDisplayName(player Player, newName string) (bool, error) {
	players, err := s.backend.ListPlayers()
	if err != nil {
		return false, err
	}
	for _, p := range players {
		if !strings.EqualFold(p.Name, newName) {
			continue
		}
		if p.ID == player.ID {
			return true, nil
		}
		return false, nil
	}
	if _, err := s.backend.UpdatePlayer(player.ID, PlayerUpdate{Name: &newName}); err != nil {
		return false, err
	}
	log.Info("Updated display name", "playerID", player.ID, "name", newName)
	return true, nil
}

// AddMatch registers a completed ping-pong match and updates both players'
// ratings. Input shape is validated before player existence, so a tied
// self-match is rejected as invalid even when the player is unknown. The
// match record is persisted before the rating updates; a crash in between
// leaves a match with accurate pre-match snapshots and stale player ratings,
// which is an accepted partial-failure state.
func (s *Service) AddMatch(p1ID string, p1Hand rating.Hand, p2ID string, p2Hand rating.Hand, score1, score2 int) (MatchResult, error) {
	if p1ID == p2ID || score1 == score2 {
		return MatchResult{}, ErrInvalidMatch
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	p1, err := s.GetPlayer(p1ID)
	if err != nil {
		return MatchResult{}, err
	}
	p2, err := s.GetPlayer(p2ID)
	if err != nil {
		return MatchResult{}, err
	}

	oldRating1 := p1.Ratings.Get(p1Hand, rating.SportPingPong)
	oldRating2 := p2.Ratings.Get(p2Hand, rating.SportPingPong)

	match := Match{
		Player1ID:     p1ID,
		Player2ID:     p2ID,
		Player1Score:  score1,
		Player2Score:  score2,
		Player1Rating: oldRating1,
		Player2Rating: oldRating2,
		Sport:         rating.SportPingPong,
		Player1Hand:   p1Hand,
		Player2Hand:   p2Hand,
	}
	if _, err := s.backend.CreateMatch(match); err != nil {
		return MatchResult{}, fmt.Errorf("create match: %w", err)
	}

	newRating1, newRating2 := rating.NewEloRatings(oldRating1, oldRating2, score1 > score2)

	ratings1 := p1.Ratings.Update(p1Hand, rating.SportPingPong, newRating1)
	updated1, err := s.backend.UpdatePlayer(p1.ID, PlayerUpdate{Ratings: &ratings1})
	if err != nil {
		return MatchResult{}, fmt.Errorf("update ratings for %s: %w", p1.ID, err)
	}
	ratings2 := p2.Ratings.Update(p2Hand, rating.SportPingPong, newRating2)
	updated2, err := s.backend.UpdatePlayer(p2.ID, PlayerUpdate{Ratings: &ratings2})
	if err != nil {
		return MatchResult{}, fmt.Errorf("update ratings for %s: %w", p2.ID, err)
	}

	log.Info("Registered match",
		"player1", p1.ID, "player2", p2.ID,
		"score", fmt.Sprintf("%d-%d", score1, score2),
		"delta1", newRating1-oldRating1, "delta2", newRating2-oldRating2)

	return MatchResult{
		Player1:      updated1,
		Player1Delta: updated1.Ratings.Get(p1Hand, rating.SportPingPong) - oldRating1,
		Player2:      updated2,
		Player2Delta: updated2.Ratings.Get(p2Hand, rating.SportPingPong) - oldRating2,
	}, nil
}

// Leaderboard ranks every (name, rating) pair observed among players with at
// least one ping-pong match. Non-dominant-hand appearances are listed as
// separate "(nd)" entries. Sorted by rating descending; ties break on name
// ascending so the ordering is deterministic.
func (s *Service) Leaderboard() ([]LeaderboardEntry, error) {
	players, err := s.backend.ListPlayers()
	if err != nil {
		return nil, err
	}
	byID := make(map[string]Player, len(players))
	for _, p := range players {
		byID[p.ID] = p
	}

	matches, err := s.backend.ListMatches(rating.SportPingPong)
	if err != nil {
		return nil, err
	}

	type row struct {
		name   string
		rating int
	}
	seen := make(map[row]struct{})
	for _, m := range matches {
		if p, ok := byID[m.Player1ID]; ok {
			seen[row{displayName(p, m.Player1Hand), p.Ratings.Get(m.Player1Hand, rating.SportPingPong)}] = struct{}{}
		}
		if p, ok := byID[m.Player2ID]; ok {
			seen[row{displayName(p, m.Player2Hand), p.Ratings.Get(m.Player2Hand, rating.SportPingPong)}] = struct{}{}
		}
	}

	rows := make([]row, 0, len(seen))
	for r := range seen {
		rows = append(rows, r)
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].rating != rows[j].rating {
			return rows[i].rating > rows[j].rating
		}
		return rows[i].name < rows[j].name
	})

	entries := make([]LeaderboardEntry, len(rows))
	for i, r := range rows {
		entries[i] = LeaderboardEntry{Rank: i + 1, Name: r.name, Rating: r.rating}
	}
	return entries, nil
}

func displayName(p Player, hand rating.Hand) string {
	if hand == rating.HandNonDominant {
		return p.Name + "(nd)"
	}
	return p.Name
}

// TotalMatches counts all registered ping-pong matches.
func (s *Service) TotalMatches() (int, error) {
	matches, err := s.backend.ListMatches(rating.SportPingPong)
	if err != nil {
		return 0, err
	}
	return len(matches), nil
}

// PlayerStats resolves a player by exact display name and tallies their
// wins and losses across all ping-pong matches. The reported rating is the
// dominant-hand ping-pong rating.
func (s *Service) PlayerStats(name string) (PlayerStats, error) {
	players, err := s.backend.ListPlayers()
	if err != nil {
		return PlayerStats{}, err
	}
	var player Player
	found := false
	for _, p := range players {
		if p.Name == name {
			player = p
			found = true
			break
		}
	}
	if !found {
		return PlayerStats{}, ErrPlayerNotFound
	}

	matches, err := s.backend.ListMatches(rating.SportPingPong)
	if err != nil {
		return PlayerStats{}, err
	}
	wins, losses := 0, 0
	for _, m := range matches {
		switch player.ID {
		case m.Player1ID:
			if m.Player1Score > m.Player2Score {
				wins++
			} else {
				losses++
			}
		case m.Player2ID:
			if m.Player2Score > m.Player1Score {
				wins++
			} else {
				losses++
			}
		}
	}

	ratio := "∞"
	if losses > 0 {
		ratio = fmt.Sprintf("%.2f", float64(wins)/float64(losses))
	}
	return PlayerStats{
		Rating: player.Ratings.Get(rating.HandDominant, rating.SportPingPong),
		Wins:   wins,
		Losses: losses,
		Ratio:  ratio,
	}, nil
}
