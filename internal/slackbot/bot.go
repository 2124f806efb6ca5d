package slackbot

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/slack-go/slack"
	"github.com/slack-go/slack/slackevents"
	"github.com/slack-go/slack/socketmode"
	"github.com/tablewars/pongbot/internal/metrics"
	"github.com/tablewars/pongbot/internal/pingpong"
	"github.com/tablewars/pongbot/internal/pubsub"
	"github.com/tablewars/pongbot/internal/rating"
)

// New creates a Bot connected over Socket Mode. The publisher may be nil, in
// which case no events are published.
func New(botToken, appToken string, answerChannels []string, service *pingpong.Service, m metrics.Metrics, publisher pubsub.Publisher) *Bot {
	api := slack.New(botToken, slack.OptionAppLevelToken(appToken))
	socket := socketmode.New(api)

	channels := make(map[string]struct{}, len(answerChannels))
	for _, c := range answerChannels {
		channels[c] = struct{}{}
	}

	return &Bot{
		service:        service,
		api:            api,
		socket:         socket,
		metrics:        m,
		publisher:      publisher,
		answerChannels: channels,
	}
}

// Run resolves the bot's own user id and consumes Socket Mode events until
// the context is cancelled.
func (b *Bot) Run(ctx context.Context) error {
	auth, err := b.api.AuthTestContext(ctx)
	if err != nil {
		return fmt.Errorf("slack auth test: %w", err)
	}
	b.botUserID = auth.UserID
	log.Info("Slack bot authenticated", "botUserID", b.botUserID)

	go b.consumeEvents(ctx)
	return b.socket.RunContext(ctx)
}

func (b *Bot) consumeEvents(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case evt, ok := <-b.socket.Events:
			if !ok {
				return
			}
			switch evt.Type {
			case socketmode.EventTypeConnecting:
				log.Info("Connecting to Slack...")
			case socketmode.EventTypeConnected:
				log.Info("Connected to Slack")
			case socketmode.EventTypeConnectionError:
				log.Error("Slack connection error", "data", evt.Data)
			case socketmode.EventTypeEventsAPI:
				apiEvent, ok := evt.Data.(slackevents.EventsAPIEvent)
				if !ok {
					continue
				}
				if evt.Request != nil {
					b.socket.Ack(*evt.Request)
				}
				if apiEvent.Type != slackevents.CallbackEvent {
					continue
				}
				if msg, ok := apiEvent.InnerEvent.Data.(*slackevents.MessageEvent); ok {
					b.handleMessage(msg)
				}
			}
		}
	}
}

// handleMessage filters out everything that is not a plain user message
// mentioning the bot, then dispatches and answers.
func (b *Bot) handleMessage(msg *slackevents.MessageEvent) {
	if msg.BotID != "" || msg.SubType != "" || msg.User == "" || msg.User == b.botUserID {
		return
	}
	if len(b.answerChannels) > 0 {
		if _, ok := b.answerChannels[msg.Channel]; !ok {
			return
		}
	}

	cmd := ParseCommand(msg.Channel, msg.User, msg.Text)
	if cmd.RecipientID != b.botUserID {
		return
	}

	b.postMessage(cmd.Channel, b.handleBotCommand(cmd))
}

// handleBotCommand resolves the sender, auto-registering unknown players,
// and returns the text to answer with.
func (b *Bot) handleBotCommand(cmd Command) string {
	start := time.Now()
	defer func() {
		b.metrics.ObserveCommandDuration(time.Since(start).Seconds())
	}()

	sender, err := b.service.GetPlayer(cmd.SenderID)
	if errors.Is(err, pingpong.ErrPlayerNotFound) {
		if _, err := b.service.AddNewPlayer(cmd.SenderID); err != nil {
			log.Error("Failed to register new player", "playerID", cmd.SenderID, "error", err)
			return somethingWentWrongResponse()
		}
		b.metrics.IncPlayersRegistered()
		b.publish(pubsub.TopicPlayerRegistered, pubsub.PlayerRegisteredEvent{PlayerID: cmd.SenderID})
		return newPlayerResponse()
	}
	if err != nil {
		log.Error("Failed to look up sender", "playerID", cmd.SenderID, "error", err)
		return somethingWentWrongResponse()
	}

	if !cmd.HasType {
		return unknownCommandResponse()
	}
	b.metrics.IncCommandsHandled(string(cmd.Type))

	switch cmd.Type {
	case CommandHelp:
		return helpResponse()
	case CommandName:
		return b.handleNameCommand(sender, cmd.Value)
	case CommandMatch:
		return b.handleMatchCommand(cmd.Value)
	case CommandStats:
		return b.handleStatsCommand(cmd.Value)
	case CommandUndo:
		return undoNotSupportedResponse()
	}
	return unknownCommandResponse()
}

func (b *Bot) handleNameCommand(sender pingpong.Player, value string) string {
	if value == "" {
		return nameResponse(sender.Name)
	}
	ok, err := b.service.UpdateDisplayName(sender, value)
	if err != nil {
		log.Error("Failed to update display name", "playerID", sender.ID, "error", err)
		return somethingWentWrongResponse()
	}
	if !ok {
		return nameTakenResponse()
	}
	return nameUpdatedResponse(value)
}

func (b *Bot) handleMatchCommand(value string) string {
	args, ok := parseMatchCommand(value)
	if !ok {
		return invalidMatchCommandResponse()
	}

	result, err := b.service.AddMatch(args.Player1ID, args.Player1Hand, args.Player2ID, args.Player2Hand, args.Score1, args.Score2)
	switch {
	case errors.Is(err, pingpong.ErrInvalidMatch):
		return invalidMatchRegistrationResponse()
	case errors.Is(err, pingpong.ErrPlayerNotFound):
		return playerDoesNotExistResponse()
	case err != nil:
		log.Error("Failed to register match", "error", err)
		return somethingWentWrongResponse()
	}

	b.metrics.IncMatchesRegistered()
	b.publish(pubsub.TopicMatchRegistered, pubsub.MatchRegisteredEvent{
		Player1ID:    args.Player1ID,
		Player2ID:    args.Player2ID,
		Player1Score: args.Score1,
		Player2Score: args.Score2,
		Player1Delta: result.Player1Delta,
		Player2Delta: result.Player2Delta,
	})

	name1 := handName(result.Player1.Name, args.Player1Hand)
	name2 := handName(result.Player2.Name, args.Player2Hand)
	newRating1 := result.Player1.Ratings.Get(args.Player1Hand, rating.SportPingPong)
	newRating2 := result.Player2.Ratings.Get(args.Player2Hand, rating.SportPingPong)
	return matchAddedResponse(result, name1, name2, newRating1, newRating2)
}

func (b *Bot) handleStatsCommand(value string) string {
	if value != "" {
		stats, err := b.service.PlayerStats(value)
		if errors.Is(err, pingpong.ErrPlayerNotFound) {
			return playerDoesNotExistResponse()
		}
		if err != nil {
			log.Error("Failed to fetch player stats", "name", value, "error", err)
			return somethingWentWrongResponse()
		}
		return playerStatsResponse(value, stats)
	}

	total, err := b.service.TotalMatches()
	if err != nil {
		log.Error("Failed to count matches", "error", err)
		return somethingWentWrongResponse()
	}
	leaderboard, err := b.service.Leaderboard()
	if err != nil {
		log.Error("Failed to build leaderboard", "error", err)
		return somethingWentWrongResponse()
	}
	return statsResponse(total, leaderboard)
}

func handName(name string, hand rating.Hand) string {
	if hand == rating.HandNonDominant {
		return name + "(nd)"
	}
	return name
}

func (b *Bot) postMessage(channel, text string) {
	if b.api == nil {
		return
	}
	if _, _, err := b.api.PostMessage(channel, slack.MsgOptionText(text, false)); err != nil {
		log.Error("Failed to send Slack message", "channel", channel, "error", err)
		b.metrics.IncSlackMessagesFailed()
		return
	}
	b.metrics.IncSlackMessagesSent()
}

func (b *Bot) publish(topic string, event any) {
	if b.publisher == nil {
		return
	}
	if err := b.publisher.SendMessage(topic, event); err != nil {
		log.Error("Failed to publish event", "topic", topic, "error", err)
	}
}
