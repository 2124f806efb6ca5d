package main

import (
	"math/rand/v2"
	"os"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/tablewars/pongbot/internal/database"
	"github.com/tablewars/pongbot/internal/pingpong"
	"github.com/tablewars/pongbot/internal/rating"
	"github.com/tablewars/pongbot/internal/store/sqlite"
)

// Seeds a local database with demo players and a batch of random matches.
func main() {
	log.Info("Starting database seeder...")

	if err := godotenv.Load(); err != nil {
		log.Warn("No .env file found, reading from environment variables")
	}
	dbName := os.Getenv("DB_NAME")
	if dbName == "" {
		dbName = "pongbot.db"
	}

	db, teardown, err := database.InitDB(dbName, "", "", "migrations")
	if err != nil {
		log.Fatal("Failed to initialize database", "error", err)
	}
	defer teardown()

	service := pingpong.NewService(sqlite.New(db))

	players := map[string]string{
		"seed-player-1": "Alice",
		"seed-player-2": "Bob",
		"seed-player-3": "Carol",
		"seed-player-4": "Dave",
	}
	ids := make([]string, 0, len(players))
	for id, name := range players {
		player, err := service.AddNewPlayer(id)
		if err != nil {
			log.Fatal("Failed to insert demo player", "playerID", id, "error", err)
		}
		if _, err := service.UpdateDisplayName(player, name); err != nil {
			log.Fatal("Failed to name demo player", "playerID", id, "error", err)
		}
		ids = append(ids, id)
	}
	log.Info("Inserted demo players", "count", len(ids))

	const numMatches = 50
	for i := 0; i < numMatches; i++ {
		p1 := ids[rand.IntN(len(ids))]
		p2 := ids[rand.IntN(len(ids))]
		if p1 == p2 {
			continue
		}
		hand := func() rating.Hand {
			if rand.IntN(10) == 0 {
				return rating.HandNonDominant
			}
			return rating.HandDominant
		}
		winnerScore, loserScore := 11, rand.IntN(10)
		score1, score2 := winnerScore, loserScore
		if rand.IntN(2) == 0 {
			score1, score2 = loserScore, winnerScore
		}
		if _, err := service.AddMatch(p1, hand(), p2, hand(), score1, score2); err != nil {
			log.Fatal("Failed to insert demo match", "error", err)
		}
	}
	log.Info("Seeding complete", "matches", numMatches)
}
