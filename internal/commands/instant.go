package commands

import (
	"context"
	"fmt"

	"github.com/brycec/wagerbot/internal/games"
	"github.com/bwmarrin/discordgo"
)

func HandleCoinflip(s *discordgo.Session, i *discordgo.InteractionCreate, svc *games.Service) {
	data := i.ApplicationCommandData()
	sideOpt := getStringOption(data.Options, "side")
	amountOpt := getIntOption(data.Options, "amount")
	if sideOpt == nil || amountOpt == nil {
		respondEphemeral(s, i, Embed("Error", "side and amount are required", ColorRed))
		return
	}

	userID := interactionUserID(i)
	result, err := svc.Coinflip(context.Background(), userID, *sideOpt, *amountOpt)
	if err != nil {
		respondError(s, i, err)
		return
	}

	title := titleCase(result.Result)
	if result.Won {
		respondEmbed(s, i, Embed(
			"Coinflip Result",
			fmt.Sprintf("🎉 **%s**! You won **%s** points!\n\n"+
				"Your bet: **%s** points on **%s**\n"+
				"New balance: **%s** points",
				title, formatPoints(result.Delta),
				formatPoints(*amountOpt), titleCase(result.Side),
				formatPoints(result.NewBalance)),
			ColorGreen,
		))
		return
	}
	respondEmbed(s, i, Embed(
		"Coinflip Result",
		fmt.Sprintf("😢 **%s**! You lost **%s** points.\n\n"+
			"Your bet: **%s** points on **%s**\n"+
			"New balance: **%s** points",
			title, formatPoints(*amountOpt),
			formatPoints(*amountOpt), titleCase(result.Side),
			formatPoints(result.NewBalance)),
		ColorRed,
	))
}

func HandleDice(s *discordgo.Session, i *discordgo.InteractionCreate, svc *games.Service) {
	data := i.ApplicationCommandData()
	targetOpt := getIntOption(data.Options, "target")
	amountOpt := getIntOption(data.Options, "amount")
	if targetOpt == nil || amountOpt == nil {
		respondEphemeral(s, i, Embed("Error", "target and amount are required", ColorRed))
		return
	}

	userID := interactionUserID(i)
	result, err := svc.Dice(context.Background(), userID, int(*targetOpt), *amountOpt)
	if err != nil {
		respondError(s, i, err)
		return
	}

	if result.Won {
		respondEmbed(s, i, Embed(
			"🎲 Dice Roll Result",
			fmt.Sprintf("🎉 You rolled a **%d** and won **%s** points!\n\n"+
				"**Target:** Above %d\n"+
				"**Bet Amount:** %s points\n"+
				"**Multiplier:** %.2fx\n"+
				"**New Balance:** %s points",
				result.Roll, formatPoints(result.Delta),
				result.Target, formatPoints(*amountOpt),
				result.Multiplier, formatPoints(result.NewBalance)),
			ColorGreen,
		))
		return
	}
	respondEmbed(s, i, Embed(
		"🎲 Dice Roll Result",
		fmt.Sprintf("😢 You rolled a **%d** and lost **%s** points.\n\n"+
			"**Target:** Above %d\n"+
			"**Bet Amount:** %s points\n"+
			"**New Balance:** %s points",
			result.Roll, formatPoints(*amountOpt),
			result.Target, formatPoints(*amountOpt),
			formatPoints(result.NewBalance)),
		ColorRed,
	))
}
