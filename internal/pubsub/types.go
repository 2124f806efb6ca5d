package pubsub

import "cloud.google.com/go/pubsub"

type client struct {
	client *pubsub.Client
}

// Topics events are published to.
const (
	TopicMatchRegistered  = "match-registered"
	TopicPlayerRegistered = "player-registered"
)

// MatchRegisteredEvent is published after a match and both rating updates
// have been persisted.
type MatchRegisteredEvent struct {
	Player1ID    string `msgpack:"player1_id"`
	Player2ID    string `msgpack:"player2_id"`
	Player1Score int    `msgpack:"player1_score"`
	Player2Score int    `msgpack:"player2_score"`
	Player1Delta int    `msgpack:"player1_delta"`
	Player2Delta int    `msgpack:"player2_delta"`
}

// PlayerRegisteredEvent is published when an unknown sender is auto-registered.
type PlayerRegisteredEvent struct {
	PlayerID string `msgpack:"player_id"`
}
