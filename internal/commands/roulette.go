package commands

import (
	"context"
	"fmt"

	"github.com/brycec/wagerbot/internal/games"
	"github.com/bwmarrin/discordgo"
)

const (
	ComponentRouletteRed   = "roulette_join_red"
	ComponentRouletteBlack = "roulette_join_black"
)

func HandleRoulette(s *discordgo.Session, i *discordgo.InteractionCreate, svc *games.Service) {
	data := i.ApplicationCommandData()
	amountOpt := getIntOption(data.Options, "amount")
	if amountOpt == nil {
		respondEphemeral(s, i, Embed("Error", "amount is required", ColorRed))
		return
	}

	userID := interactionUserID(i)
	sess, err := svc.StartRoulette(context.Background(), i.ChannelID, userID, *amountOpt)
	if err != nil {
		respondError(s, i, err)
		return
	}

	embed := Embed(
		"🎲 Roulette Game",
		fmt.Sprintf("**%s** started a roulette game!\n"+
			"Host's bet: **%s** points\n\n"+
			"Click a button to place your bet!\n"+
			"Game ends <t:%d:R>",
			mention(userID), formatPoints(*amountOpt), sess.Deadline().Unix()),
		ColorTeal,
	)
	respondEmbedComponents(s, i, embed, []discordgo.MessageComponent{
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.Button{
					Label:    "Join Red",
					Style:    discordgo.DangerButton,
					CustomID: ComponentRouletteRed,
				},
				discordgo.Button{
					Label:    "Join Black",
					Style:    discordgo.SecondaryButton,
					CustomID: ComponentRouletteBlack,
				},
			},
		},
	})
}

func handleRouletteJoin(s *discordgo.Session, i *discordgo.InteractionCreate, svc *games.Service, color string) {
	userID := interactionUserID(i)
	sess, err := svc.JoinRoulette(context.Background(), i.ChannelID, userID, color)
	if err != nil {
		respondError(s, i, err)
		return
	}

	respondEphemeral(s, i, Embed(
		"Bet Placed",
		fmt.Sprintf("Your bet of **%s** points on **%s** has been placed.\n"+
			"Waiting for other players...",
			formatPoints(sess.Amount()), titleCase(color)),
		ColorTeal,
	))
}

// RenderRouletteOutcome builds the result embed posted when the wheel stops.
func RenderRouletteOutcome(o *games.RouletteOutcome) *discordgo.MessageEmbed {
	winners := ""
	for _, bet := range o.Winners {
		winners += fmt.Sprintf("%s won %s points\n", mention(bet.UserID), formatPoints(o.Stake))
	}
	if winners == "" {
		winners = "Nobody\n"
	}
	losers := ""
	for _, bet := range o.Losers {
		losers += fmt.Sprintf("%s lost %s points\n", mention(bet.UserID), formatPoints(o.Stake))
	}
	if losers == "" {
		losers = "Nobody\n"
	}

	color := ColorRed
	if len(o.Winners) > 0 {
		color = ColorGreen
	}
	return Embed(
		"🎲 Roulette Result",
		fmt.Sprintf("**%s %d**!\n\n**Winners:**\n%s\n**Losers:**\n%s",
			titleCase(o.Color), o.Number, winners, losers),
		color,
	)
}
