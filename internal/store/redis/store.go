// Package redis provides a Backend over Redis, for deployments that want
// shared state without running a relational database. Players live in a
// hash of JSON documents keyed by id; matches are appended to a per-sport
// list, which preserves registration order.
package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/tablewars/pongbot/internal/pingpong"
	"github.com/tablewars/pongbot/internal/rating"
)

const (
	playersKey       = "pongbot:players"
	matchesKeyPrefix = "pongbot:matches:"
)

const opTimeout = 5 * time.Second

type store struct {
	client *redis.Client
}

// New creates a Backend over the given Redis client.
func New(client *redis.Client) pingpong.Backend {
	return &store{client: client}
}

func matchesKey(sport rating.Sport) string {
	return matchesKeyPrefix + string(sport)
}

func (s *store) Wipe() error {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	keys := []string{playersKey, matchesKey(rating.SportPingPong), matchesKey(rating.SportSquash)}
	if err := s.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("failed to wipe redis backend: %w", err)
	}
	return nil
}

func (s *store) CreatePlayer(player pingpong.Player) (pingpong.Player, error) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	data, err := json.Marshal(player)
	if err != nil {
		return pingpong.Player{}, fmt.Errorf("marshal player: %w", err)
	}
	// HSetNX makes a duplicate id fail rather than silently overwrite.
	created, err := s.client.HSetNX(ctx, playersKey, player.ID, data).Result()
	if err != nil {
		return pingpong.Player{}, fmt.Errorf("create player %s: %w", player.ID, err)
	}
	if !created {
		return pingpong.Player{}, fmt.Errorf("player %s already exists", player.ID)
	}
	return player, nil
}

func (s *store) GetPlayer(id string) (pingpong.Player, bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	data, err := s.client.HGet(ctx, playersKey, id).Result()
	if err == redis.Nil {
		return pingpong.Player{}, false, nil
	}
	if err != nil {
		return pingpong.Player{}, false, fmt.Errorf("get player %s: %w", id, err)
	}
	var player pingpong.Player
	if err := json.Unmarshal([]byte(data), &player); err != nil {
		return pingpong.Player{}, false, fmt.Errorf("decode player %s: %w", id, err)
	}
	return player, true, nil
}

func (s *store) ListPlayers() ([]pingpong.Player, error) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	raw, err := s.client.HGetAll(ctx, playersKey).Result()
	if err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}
	players := make([]pingpong.Player, 0, len(raw))
	for id, data := range raw {
		var player pingpong.Player
		if err := json.Unmarshal([]byte(data), &player); err != nil {
			return nil, fmt.Errorf("decode player %s: %w", id, err)
		}
		players = append(players, player)
	}
	return players, nil
}

func (s *store) UpdatePlayer(id string, update pingpong.PlayerUpdate) (pingpong.Player, error) {
	player, found, err := s.GetPlayer(id)
	if err != nil {
		return pingpong.Player{}, err
	}
	if !found {
		return pingpong.Player{}, fmt.Errorf("player %s does not exist", id)
	}
	if update.Name != nil {
		player.Name = *update.Name
	}
	if update.Ratings != nil {
		player.Ratings = *update.Ratings
	}

	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	data, err := json.Marshal(player)
	if err != nil {
		return pingpong.Player{}, fmt.Errorf("marshal player: %w", err)
	}
	if err := s.client.HSet(ctx, playersKey, id, data).Err(); err != nil {
		return pingpong.Player{}, fmt.Errorf("update player %s: %w", id, err)
	}
	return player, nil
}

func (s *store) CreateMatch(match pingpong.Match) (pingpong.Match, error) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	data, err := json.Marshal(match)
	if err != nil {
		return pingpong.Match{}, fmt.Errorf("marshal match: %w", err)
	}
	if err := s.client.RPush(ctx, matchesKey(match.Sport), data).Err(); err != nil {
		return pingpong.Match{}, fmt.Errorf("append match: %w", err)
	}
	return match, nil
}

func (s *store) ListMatches(sport rating.Sport) ([]pingpong.Match, error) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	raw, err := s.client.LRange(ctx, matchesKey(sport), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}
	matches := make([]pingpong.Match, 0, len(raw))
	for _, data := range raw {
		var match pingpong.Match
		if err := json.Unmarshal([]byte(data), &match); err != nil {
			return nil, fmt.Errorf("decode match: %w", err)
		}
		matches = append(matches, match)
	}
	return matches, nil
}
