package slackbot

import (
	"github.com/slack-go/slack"
	"github.com/slack-go/slack/socketmode"
	"github.com/tablewars/pongbot/internal/metrics"
	"github.com/tablewars/pongbot/internal/pingpong"
	"github.com/tablewars/pongbot/internal/pubsub"
)

// Bot connects the ping-pong service to Slack. It listens for direct
// mentions over Socket Mode, dispatches parsed commands to the service and
// answers with formatted text.
type Bot struct {
	service   *pingpong.Service
	api       *slack.Client
	socket    *socketmode.Client
	metrics   metrics.Metrics
	publisher pubsub.Publisher

	// answerChannels restricts which channels the bot answers in. Empty
	// means all channels.
	answerChannels map[string]struct{}
	botUserID      string
}

// CommandType enumerates the commands the bot understands.
type CommandType string

const (
	CommandName  CommandType = "name"
	CommandHelp  CommandType = "help"
	CommandMatch CommandType = "match"
	CommandStats CommandType = "stats"
	CommandUndo  CommandType = "undo"
)

// ParseCommandType is the safe membership test for the first word of a
// message; unknown words yield false rather than an error.
func ParseCommandType(raw string) (CommandType, bool) {
	switch CommandType(raw) {
	case CommandName, CommandHelp, CommandMatch, CommandStats, CommandUndo:
		return CommandType(raw), true
	}
	return "", false
}

// Command is a parsed inbound message.
type Command struct {
	Channel     string
	SenderID    string
	RecipientID string
	Type        CommandType
	// HasType is false when the message did not start with a known command word.
	HasType bool
	// Value is the remainder of the message after the command word.
	Value string
}
