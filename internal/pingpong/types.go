package pingpong

import "github.com/tablewars/pongbot/internal/rating"

// Player is a registered participant. The ID is the stable, externally
// supplied identifier (the Slack user ID); Name is the mutable display name.
type Player struct {
	ID      string         `json:"id"`
	Name    string         `json:"name"`
	Ratings rating.Ratings `json:"ratings"`
}

// Match is an immutable record of one completed contest. The rating fields
// are pre-match snapshots captured at registration time and are never
// updated retroactively.
type Match struct {
	Player1ID     string       `json:"player1_id"`
	Player2ID     string       `json:"player2_id"`
	Player1Score  int          `json:"player1_score"`
	Player2Score  int          `json:"player2_score"`
	Player1Rating int          `json:"player1_rating"`
	Player2Rating int          `json:"player2_rating"`
	Sport         rating.Sport `json:"sport"`
	Player1Hand   rating.Hand  `json:"player1_hand"`
	Player2Hand   rating.Hand  `json:"player2_hand"`
}

// PlayerUpdate is a partial update: nil fields are left unchanged.
type PlayerUpdate struct {
	Name    *string
	Ratings *rating.Ratings
}

// MatchResult is what AddMatch returns: both updated players and the signed
// rating delta each earned for the hand they played.
type MatchResult struct {
	Player1      Player
	Player1Delta int
	Player2      Player
	Player2Delta int
}

// LeaderboardEntry is one ranked row of the leaderboard. Non-dominant-hand
// entries carry a "(nd)" suffix on the name.
type LeaderboardEntry struct {
	Rank   int    `json:"rank"`
	Name   string `json:"name"`
	Rating int    `json:"rating"`
}

// PlayerStats aggregates a player's record across all their matches. Ratio
// is rendered textually so a lossless player reads as "∞" rather than a
// numeric overflow.
type PlayerStats struct {
	Rating int    `json:"rating"`
	Wins   int    `json:"wins"`
	Losses int    `json:"losses"`
	Ratio  string `json:"ratio"`
}
