package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/brycec/wagerbot/internal/games"
	"github.com/bwmarrin/discordgo"
)

const (
	ComponentBlackjackHit   = "blackjack_hit"
	ComponentBlackjackStand = "blackjack_stand"
)

func HandleBlackjack(s *discordgo.Session, i *discordgo.InteractionCreate, svc *games.Service) {
	data := i.ApplicationCommandData()
	amountOpt := getIntOption(data.Options, "amount")
	if amountOpt == nil {
		respondEphemeral(s, i, Embed("Error", "amount is required", ColorRed))
		return
	}

	userID := interactionUserID(i)
	state, err := svc.StartBlackjack(context.Background(), i.ChannelID, userID, *amountOpt)
	if err != nil {
		respondError(s, i, err)
		return
	}

	respondEmbedComponents(s, i, blackjackEmbed(state), blackjackButtons())
}

func handleBlackjackAction(s *discordgo.Session, i *discordgo.InteractionCreate, svc *games.Service, action string) {
	userID := interactionUserID(i)

	var state *games.BlackjackState
	var err error
	switch action {
	case ComponentBlackjackHit:
		state, err = svc.BlackjackHit(context.Background(), i.ChannelID, userID)
	case ComponentBlackjackStand:
		state, err = svc.BlackjackStand(context.Background(), i.ChannelID, userID)
	}
	if err != nil {
		respondError(s, i, err)
		return
	}

	if state.Outcome == games.BlackjackPlaying {
		updateMessage(s, i, blackjackEmbed(state), blackjackButtons())
		return
	}
	updateMessage(s, i, blackjackEmbed(state), nil)
}

func blackjackButtons() []discordgo.MessageComponent {
	return []discordgo.MessageComponent{
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.Button{
					Label:    "Hit",
					Style:    discordgo.SuccessButton,
					CustomID: ComponentBlackjackHit,
				},
				discordgo.Button{
					Label:    "Stand",
					Style:    discordgo.DangerButton,
					CustomID: ComponentBlackjackStand,
				},
			},
		},
	}
}

func blackjackEmbed(state *games.BlackjackState) *discordgo.MessageEmbed {
	switch state.Outcome {
	case games.BlackjackPlaying:
		// Dealer shows only the up card while the hand is live.
		return Embed(
			"🎲 Blackjack",
			fmt.Sprintf("**Your Hand** (%d):\n%s\n\n"+
				"**Dealer's Hand** (%d):\n%s 🃏\n\n"+
				"**Your Points:** %s\n"+
				"**Bet Amount:** %s\n\n"+
				"Choose your action:",
				state.PlayerValue, formatHand(state.PlayerHand),
				games.HandValue(state.DealerHand[:1]), state.DealerHand[0],
				formatPoints(state.NewBalance), formatPoints(state.Amount)),
			ColorTeal,
		)
	case games.BlackjackBust:
		return blackjackResultEmbed(state, "Bust!",
			fmt.Sprintf("You busted and lost %s points!", formatPoints(state.Amount)), ColorRed)
	case games.BlackjackWin:
		return blackjackResultEmbed(state, "Win!",
			fmt.Sprintf("You won %s points!", formatPoints(state.Amount)), ColorGreen)
	case games.BlackjackLoss:
		return blackjackResultEmbed(state, "Loss!",
			fmt.Sprintf("You lost %s points!", formatPoints(state.Amount)), ColorRed)
	default:
		return blackjackResultEmbed(state, "Push!", "It's a push! Your bet is returned.", ColorTeal)
	}
}

func blackjackResultEmbed(state *games.BlackjackState, title, message string, color int) *discordgo.MessageEmbed {
	return Embed(
		"🎲 Blackjack - "+title,
		fmt.Sprintf("**Your Hand** (%d):\n%s\n\n"+
			"**Dealer's Hand** (%d):\n%s\n\n"+
			"**Your Points:** %s\n"+
			"**Bet Amount:** %s\n\n%s",
			state.PlayerValue, formatHand(state.PlayerHand),
			state.DealerValue, formatHand(state.DealerHand),
			formatPoints(state.NewBalance), formatPoints(state.Amount), message),
		color,
	)
}

func formatHand(hand []games.Card) string {
	parts := make([]string, len(hand))
	for idx, card := range hand {
		parts[idx] = card.String()
	}
	return strings.Join(parts, " ")
}
