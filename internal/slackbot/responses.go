package slackbot

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/tablewars/pongbot/internal/pingpong"
)

func helpResponse() string {
	return "`match @<name> @<name> <points> <points>`: Add a new match result.\n" +
		"`name`: Get your display name.\n" +
		"`name <newname>`: Update your display name.\n" +
		"`stats`: Get ping pong statistics.\n" +
		"`stats <name>`: Get stats for a specific player.\n" +
		"`undo`: Undo the last match registered.\n\n" +
		"Add a nondominant-hand modifier (nd) behind a name in a *match* command " +
		"to signalize that a nondominant hand was used\n" +
		"Example: `match @alice nd @bob 11 0`"
}

func newPlayerResponse() string {
	return "Hi, you seem to be a new player. I've registered you in my system, but I dont have a name for " +
		"you yet. Please set your name by typing `@pingpong name <yourname>`."
}

func nameUpdatedResponse(name string) string {
	return fmt.Sprintf("Ok, %s. I've updated your name.", name)
}

func nameTakenResponse() string {
	return "Sorry. That name is taken."
}

func nameResponse(name string) string {
	return fmt.Sprintf("Your name is %s.", name)
}

func playerDoesNotExistResponse() string {
	return "That player does not exist in my system."
}

func invalidMatchRegistrationResponse() string {
	return "Nope. That's an invalid match registration."
}

func invalidMatchCommandResponse() string {
	return "That's not how you add a new match result. Type *match* @<name> @<name> <points> <points>."
}

func undoNotSupportedResponse() string {
	return "Sorry, undo is not supported."
}

func unknownCommandResponse() string {
	return "Not sure what you mean. Try `help`."
}

func somethingWentWrongResponse() string {
	return "Something went wrong on my end. Try again in a bit."
}

func matchAddedResponse(result pingpong.MatchResult, name1, name2 string, newRating1, newRating2 int) string {
	winnerName, loserName := name1, name2
	if result.Player1Delta < 0 {
		winnerName, loserName = name2, name1
	}
	winnerName = strings.TrimSuffix(winnerName, "(nd)")
	loserName = strings.TrimSuffix(loserName, "(nd)")

	messages := []string{
		"Okay, I added the result!",
		"Mmmmmm! Matches!",
		fmt.Sprintf("Congratulations, %s! You're now a few points closer to not sucking.", winnerName),
		fmt.Sprintf("Wow... You need to step your game up, %s.", loserName),
		"That was fun. But you know what would be even more fun? A FIGHT TO THE DEATH!!!",
		fmt.Sprintf("That's pretty impressive, %s. Or it _would_ be if you weren't always picking such useless opponents.", winnerName),
	}
	message := messages[rand.IntN(len(messages))]

	return fmt.Sprintf("%s\n\nYour new ratings are:\n%s: %d (%s)\n%s: %d (%s)\n",
		message,
		name1, newRating1, signed(result.Player1Delta),
		name2, newRating2, signed(result.Player2Delta))
}

func playerStatsResponse(name string, stats pingpong.PlayerStats) string {
	return fmt.Sprintf("Here are the stats for %s:\nRating: %d\nW/L Ratio: %s\nWins: %d\nLosses: %d",
		name, stats.Rating, stats.Ratio, stats.Wins, stats.Losses)
}

func statsResponse(totalMatches int, leaderboard []pingpong.LeaderboardEntry) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Total Matches played: %d\n", totalMatches)
	for _, entry := range leaderboard {
		fmt.Fprintf(&sb, "%-4s%s (%d)\n", fmt.Sprintf("%d.", entry.Rank), entry.Name, entry.Rating)
	}
	return strings.TrimRight(sb.String(), "\n")
}

func signed(delta int) string {
	if delta >= 0 {
		return fmt.Sprintf("+%d", delta)
	}
	return fmt.Sprintf("%d", delta)
}
