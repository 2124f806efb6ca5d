package slackbot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tablewars/pongbot/internal/metrics"
	"github.com/tablewars/pongbot/internal/pingpong"
	"github.com/tablewars/pongbot/internal/pubsub"
	"github.com/tablewars/pongbot/internal/rating"
	"github.com/tablewars/pongbot/internal/store/memory"
)

func newTestBot(t *testing.T) (*Bot, *pingpong.Service, *metrics.Mock, *pubsub.Mock) {
	t.Helper()
	service := pingpong.NewService(memory.New())
	m := metrics.NewMock()
	publisher := pubsub.NewMock()
	bot := &Bot{
		service:   service,
		metrics:   m,
		publisher: publisher,
		botUserID: "UBOT",
	}
	return bot, service, m, publisher
}

func command(t *testing.T, sender, text string) Command {
	t.Helper()
	cmd := ParseCommand("C1", sender, text)
	require.Equal(t, "UBOT", cmd.RecipientID)
	return cmd
}

func TestHandleBotCommand_RegistersNewSender(t *testing.T) {
	bot, service, m, publisher := newTestBot(t)

	response := bot.handleBotCommand(command(t, "U1", "<@UBOT> help"))

	assert.Equal(t, newPlayerResponse(), response)
	player, err := service.GetPlayer("U1")
	require.NoError(t, err)
	assert.Equal(t, "U1", player.Name)
	assert.Equal(t, 1, m.PlayersRegisteredCount)
	require.Len(t, publisher.SentMessages, 1)
	assert.Equal(t, pubsub.TopicPlayerRegistered, publisher.SentMessages[0].Topic)
	assert.Equal(t, pubsub.PlayerRegisteredEvent{PlayerID: "U1"}, publisher.SentMessages[0].Data)
}

func TestHandleBotCommand_Help(t *testing.T) {
	bot, service, m, _ := newTestBot(t)
	_, err := service.AddNewPlayer("U1")
	require.NoError(t, err)

	response := bot.handleBotCommand(command(t, "U1", "<@UBOT> help"))

	assert.Equal(t, helpResponse(), response)
	assert.Equal(t, []string{"help"}, m.CommandsHandledCalls)
	assert.Len(t, m.CommandDurations, 1)
}

func TestHandleBotCommand_Name(t *testing.T) {
	bot, service, _, _ := newTestBot(t)
	_, err := service.AddNewPlayer("U1")
	require.NoError(t, err)
	_, err = service.AddNewPlayer("U2")
	require.NoError(t, err)

	response := bot.handleBotCommand(command(t, "U1", "<@UBOT> name"))
	assert.Equal(t, nameResponse("U1"), response)

	response = bot.handleBotCommand(command(t, "U1", "<@UBOT> name alice"))
	assert.Equal(t, nameUpdatedResponse("alice"), response)

	player, err := service.GetPlayer("U1")
	require.NoError(t, err)
	assert.Equal(t, "alice", player.Name)

	response = bot.handleBotCommand(command(t, "U2", "<@UBOT> name Alice"))
	assert.Equal(t, nameTakenResponse(), response)
}

func TestHandleBotCommand_Match(t *testing.T) {
	bot, service, m, publisher := newTestBot(t)
	_, err := service.AddNewPlayer("U1")
	require.NoError(t, err)
	_, err = service.AddNewPlayer("U2")
	require.NoError(t, err)

	response := bot.handleBotCommand(command(t, "U1", "<@UBOT> match <@U1> <@U2> 11 9"))

	assert.Contains(t, response, "U1: 1016 (+16)")
	assert.Contains(t, response, "U2: 984 (-16)")
	assert.Equal(t, 1, m.MatchesRegisteredCount)
	require.Len(t, publisher.SentMessages, 1)
	assert.Equal(t, pubsub.TopicMatchRegistered, publisher.SentMessages[0].Topic)
	assert.Equal(t, pubsub.MatchRegisteredEvent{
		Player1ID:    "U1",
		Player2ID:    "U2",
		Player1Score: 11,
		Player2Score: 9,
		Player1Delta: 16,
		Player2Delta: -16,
	}, publisher.SentMessages[0].Data)
}

func TestHandleBotCommand_MatchNonDominant(t *testing.T) {
	bot, service, _, _ := newTestBot(t)
	_, err := service.AddNewPlayer("U1")
	require.NoError(t, err)
	_, err = service.AddNewPlayer("U2")
	require.NoError(t, err)

	response := bot.handleBotCommand(command(t, "U1", "<@UBOT> match <@U1> nd <@U2> 11 9"))

	assert.Contains(t, response, "U1(nd): 1016 (+16)")
	assert.Contains(t, response, "U2: 984 (-16)")
}

func TestHandleBotCommand_MatchErrors(t *testing.T) {
	bot, service, m, publisher := newTestBot(t)
	_, err := service.AddNewPlayer("U1")
	require.NoError(t, err)

	response := bot.handleBotCommand(command(t, "U1", "<@UBOT> match now"))
	assert.Equal(t, invalidMatchCommandResponse(), response)

	response = bot.handleBotCommand(command(t, "U1", "<@UBOT> match <@U1> <@U1> 11 9"))
	assert.Equal(t, invalidMatchRegistrationResponse(), response)

	response = bot.handleBotCommand(command(t, "U1", "<@UBOT> match <@U1> <@U9> 11 9"))
	assert.Equal(t, playerDoesNotExistResponse(), response)

	assert.Equal(t, 0, m.MatchesRegisteredCount)
	assert.Empty(t, publisher.SentMessages)
}

func TestHandleBotCommand_Stats(t *testing.T) {
	bot, service, _, _ := newTestBot(t)
	_, err := service.AddNewPlayer("U1")
	require.NoError(t, err)
	_, err = service.AddNewPlayer("U2")
	require.NoError(t, err)
	_, err = service.AddMatch("U1", rating.HandDominant, "U2", rating.HandDominant, 11, 9)
	require.NoError(t, err)

	response := bot.handleBotCommand(command(t, "U1", "<@UBOT> stats"))

	assert.Contains(t, response, "Total Matches played: 1")
	assert.Contains(t, response, "U1 (1016)")
	assert.Contains(t, response, "U2 (984)")
}

func TestHandleBotCommand_PlayerStats(t *testing.T) {
	bot, service, _, _ := newTestBot(t)
	_, err := service.AddNewPlayer("U1")
	require.NoError(t, err)
	_, err = service.AddNewPlayer("U2")
	require.NoError(t, err)
	_, err = service.AddMatch("U1", rating.HandDominant, "U2", rating.HandDominant, 11, 9)
	require.NoError(t, err)

	response := bot.handleBotCommand(command(t, "U1", "<@UBOT> stats U1"))
	assert.Contains(t, response, "Rating: 1016")
	assert.Contains(t, response, "W/L Ratio: ∞")
	assert.Contains(t, response, "Wins: 1")

	response = bot.handleBotCommand(command(t, "U1", "<@UBOT> stats nobody"))
	assert.Equal(t, playerDoesNotExistResponse(), response)
}

func TestHandleBotCommand_Undo(t *testing.T) {
	bot, service, _, _ := newTestBot(t)
	_, err := service.AddNewPlayer("U1")
	require.NoError(t, err)

	response := bot.handleBotCommand(command(t, "U1", "<@UBOT> undo"))
	assert.Equal(t, undoNotSupportedResponse(), response)
}

func TestHandleBotCommand_Unknown(t *testing.T) {
	bot, service, m, _ := newTestBot(t)
	_, err := service.AddNewPlayer("U1")
	require.NoError(t, err)

	response := bot.handleBotCommand(command(t, "U1", "<@UBOT> dance"))
	assert.Equal(t, unknownCommandResponse(), response)
	assert.Empty(t, m.CommandsHandledCalls)
}
