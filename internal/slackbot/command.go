package slackbot

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/tablewars/pongbot/internal/rating"
)

// nonDominantKeyword marks a non-dominant-hand game in a match command,
// e.g. `match @alice nd @bob 11 0`.
const nonDominantKeyword = "nd"

var (
	mentionRegex = regexp.MustCompile(`^<@([A-Z0-9]+)>(.*)`)
	commandRegex = regexp.MustCompile(`^([a-zA-Z]*)(\s+.*)?`)
	matchRegex   = regexp.MustCompile(`^<@([A-Z0-9]+)>\s+((?:nd\s+)?)<@([A-Z0-9]+)>\s+((?:nd\s+)?)(\d+)(?:\s+|-)(\d+)`)
)

// ParseCommand turns a raw message into a Command. Only messages that start
// with a direct mention carry a RecipientID; everything else is ignored by
// the caller.
func ParseCommand(channel, sender, text string) Command {
	cmd := Command{Channel: channel, SenderID: sender}

	mention := mentionRegex.FindStringSubmatch(text)
	if mention == nil {
		return cmd
	}
	cmd.RecipientID = mention[1]

	message := strings.TrimSpace(mention[2])
	if message == "" {
		return cmd
	}
	parsed := commandRegex.FindStringSubmatch(message)
	if parsed == nil {
		return cmd
	}
	if commandType, ok := ParseCommandType(parsed[1]); ok {
		cmd.Type = commandType
		cmd.HasType = true
	}
	cmd.Value = strings.TrimSpace(parsed[2])
	return cmd
}

// matchArgs is the parsed value of a match command.
type matchArgs struct {
	Player1ID   string
	Player1Hand rating.Hand
	Player2ID   string
	Player2Hand rating.Hand
	Score1      int
	Score2      int
}

// parseMatchCommand parses `<@id> [nd] <@id> [nd] <score> <score>` where the
// scores may also be separated by a dash.
func parseMatchCommand(value string) (matchArgs, bool) {
	groups := matchRegex.FindStringSubmatch(value)
	if groups == nil {
		return matchArgs{}, false
	}

	hand := func(keyword string) rating.Hand {
		if strings.TrimSpace(keyword) == nonDominantKeyword {
			return rating.HandNonDominant
		}
		return rating.HandDominant
	}

	score1, err := strconv.Atoi(groups[5])
	if err != nil {
		return matchArgs{}, false
	}
	score2, err := strconv.Atoi(groups[6])
	if err != nil {
		return matchArgs{}, false
	}

	return matchArgs{
		Player1ID:   groups[1],
		Player1Hand: hand(groups[2]),
		Player2ID:   groups[3],
		Player2Hand: hand(groups[4]),
		Score1:      score1,
		Score2:      score2,
	}, true
}
