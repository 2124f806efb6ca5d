package pingpong

import "github.com/tablewars/pongbot/internal/rating"

// Backend is the persistence contract the service depends on. Implementations
// live under internal/store and are injected at construction; the service
// never depends on a concrete adapter.
type Backend interface {
	// CreatePlayer persists a new player and returns the canonical stored
	// form. Behavior for a duplicate id is adapter-defined; it must succeed
	// for a fresh id.
	CreatePlayer(player Player) (Player, error)
	// GetPlayer looks up a player by id. Absence is reported via the bool,
	// not as an error.
	GetPlayer(id string) (Player, bool, error)
	// ListPlayers returns a full snapshot. Order is not significant.
	ListPlayers() ([]Player, error)
	// UpdatePlayer applies a partial update and returns the stored form.
	// Fails if the id does not exist.
	UpdatePlayer(id string, update PlayerUpdate) (Player, error)
	// CreateMatch persists an append-only match record.
	CreateMatch(match Match) (Match, error)
	// ListMatches returns all matches for the given sport.
	ListMatches(sport rating.Sport) ([]Match, error)
	// Wipe destroys all state held by this backend instance.
	Wipe() error
}
