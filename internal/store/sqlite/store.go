// Package sqlite provides the relational Backend over SQLite/libsql. The
// same adapter serves a local file database and a remote Turso primary.
package sqlite

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/tablewars/pongbot/internal/pingpong"
	"github.com/tablewars/pongbot/internal/rating"
)

type store struct {
	db *sql.DB
}

// New creates a Backend over an initialized database (see internal/database).
func New(db *sql.DB) pingpong.Backend {
	return &store{db: db}
}

func (s *store) Wipe() error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	if _, err := tx.Exec("DELETE FROM matches"); err != nil {
		tx.Rollback()
		return err
	}
	if _, err := tx.Exec("DELETE FROM players"); err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit()
}

func (s *store) CreatePlayer(player pingpong.Player) (pingpong.Player, error) {
	ratingsJSON, err := json.Marshal(player.Ratings)
	if err != nil {
		return pingpong.Player{}, fmt.Errorf("marshal ratings: %w", err)
	}
	// A duplicate id fails on the primary key constraint.
	_, err = s.db.Exec("INSERT INTO players (id, name, ratings_json) VALUES (?, ?, ?)",
		player.ID, player.Name, string(ratingsJSON))
	if err != nil {
		return pingpong.Player{}, fmt.Errorf("insert player %s: %w", player.ID, err)
	}
	return player, nil
}

func (s *store) GetPlayer(id string) (pingpong.Player, bool, error) {
	row := s.db.QueryRow("SELECT id, name, ratings_json FROM players WHERE id = ?", id)
	player, err := scanPlayer(row)
	if err == sql.ErrNoRows {
		return pingpong.Player{}, false, nil
	}
	if err != nil {
		return pingpong.Player{}, false, err
	}
	return player, true, nil
}

func (s *store) ListPlayers() ([]pingpong.Player, error) {
	rows, err := s.db.Query("SELECT id, name, ratings_json FROM players")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var players []pingpong.Player
	for rows.Next() {
		player, err := scanPlayer(rows)
		if err != nil {
			return nil, err
		}
		players = append(players, player)
	}
	return players, rows.Err()
}

func (s *store) UpdatePlayer(id string, update pingpong.PlayerUpdate) (pingpong.Player, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return pingpong.Player{}, err
	}
	defer tx.Rollback()

	player, err := scanPlayer(tx.QueryRow("SELECT id, name, ratings_json FROM players WHERE id = ?", id))
	if err == sql.ErrNoRows {
		return pingpong.Player{}, fmt.Errorf("player %s does not exist", id)
	}
	if err != nil {
		return pingpong.Player{}, err
	}

	if update.Name != nil {
		player.Name = *update.Name
	}
	if update.Ratings != nil {
		player.Ratings = *update.Ratings
	}
	ratingsJSON, err := json.Marshal(player.Ratings)
	if err != nil {
		return pingpong.Player{}, fmt.Errorf("marshal ratings: %w", err)
	}
	if _, err := tx.Exec("UPDATE players SET name = ?, ratings_json = ? WHERE id = ?",
		player.Name, string(ratingsJSON), id); err != nil {
		return pingpong.Player{}, err
	}
	if err := tx.Commit(); err != nil {
		return pingpong.Player{}, err
	}
	return player, nil
}

func (s *store) CreateMatch(match pingpong.Match) (pingpong.Match, error) {
	// The row id is internal to this adapter and not exposed on the record.
	_, err := s.db.Exec(`
		INSERT INTO matches (id, player1_id, player2_id, player1_score, player2_score, player1_rating, player2_rating, sport, player1_hand, player2_hand, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		uuid.NewString(), match.Player1ID, match.Player2ID,
		match.Player1Score, match.Player2Score,
		match.Player1Rating, match.Player2Rating,
		string(match.Sport), string(match.Player1Hand), string(match.Player2Hand),
		time.Now().Unix())
	if err != nil {
		return pingpong.Match{}, fmt.Errorf("insert match: %w", err)
	}
	return match, nil
}

func (s *store) ListMatches(sport rating.Sport) ([]pingpong.Match, error) {
	rows, err := s.db.Query(`
		SELECT player1_id, player2_id, player1_score, player2_score, player1_rating, player2_rating, sport, player1_hand, player2_hand
		FROM matches WHERE sport = ? ORDER BY created_at`, string(sport))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var matches []pingpong.Match
	for rows.Next() {
		var m pingpong.Match
		var rawSport, rawHand1, rawHand2 string
		if err := rows.Scan(&m.Player1ID, &m.Player2ID, &m.Player1Score, &m.Player2Score,
			&m.Player1Rating, &m.Player2Rating, &rawSport, &rawHand1, &rawHand2); err != nil {
			return nil, err
		}
		s, ok := rating.ParseSport(rawSport)
		if !ok {
			return nil, fmt.Errorf("stored match has unknown sport %q", rawSport)
		}
		h1, ok := rating.ParseHand(rawHand1)
		if !ok {
			return nil, fmt.Errorf("stored match has unknown hand %q", rawHand1)
		}
		h2, ok := rating.ParseHand(rawHand2)
		if !ok {
			return nil, fmt.Errorf("stored match has unknown hand %q", rawHand2)
		}
		m.Sport, m.Player1Hand, m.Player2Hand = s, h1, h2
		matches = append(matches, m)
	}
	return matches, rows.Err()
}

func scanPlayer(scanner interface{ Scan(...any) error }) (pingpong.Player, error) {
	var player pingpong.Player
	var ratingsJSON string
	if err := scanner.Scan(&player.ID, &player.Name, &ratingsJSON); err != nil {
		return pingpong.Player{}, err
	}
	if err := json.Unmarshal([]byte(ratingsJSON), &player.Ratings); err != nil {
		return pingpong.Player{}, fmt.Errorf("decode ratings for %s: %w", player.ID, err)
	}
	return player, nil
}
