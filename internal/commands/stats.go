package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/brycec/wagerbot/internal/games"
	"github.com/brycec/wagerbot/internal/wager"
	"github.com/bwmarrin/discordgo"
)

const leaderboardSize = 10

func HandleStats(s *discordgo.Session, i *discordgo.InteractionCreate, svc *games.Service) {
	data := i.ApplicationCommandData()

	userID := interactionUserID(i)
	title := "📊 Your Stats"
	if targetID := getUserOption(data.Options, "user"); targetID != "" {
		userID = ParseUserID(targetID)
		title = "📊 Stats"
	}

	stats, err := svc.Ledger().UserStats(context.Background(), userID)
	if err != nil {
		respondError(s, i, err)
		return
	}

	respondEmbed(s, i, Embed(
		title,
		fmt.Sprintf("**User:** %s\n"+
			"**Points:** %s\n"+
			"**Wins:** %s\n"+
			"**Losses:** %s\n"+
			"**Draws:** %s\n"+
			"**Total Games:** %s\n"+
			"**Win Rate:** %.1f%%",
			mention(userID),
			formatPoints(stats.Points),
			formatPoints(stats.Wins),
			formatPoints(stats.Losses),
			formatPoints(stats.Draws),
			formatPoints(stats.TotalGames),
			stats.WinRate),
		ColorTeal,
	))
}

func HandleLeaderboard(s *discordgo.Session, i *discordgo.InteractionCreate, svc *games.Service) {
	rows, err := svc.Ledger().Leaderboard(context.Background(), leaderboardSize)
	if err != nil {
		respondError(s, i, err)
		return
	}
	if len(rows) == 0 {
		respondEmbed(s, i, Embed("🏆 Leaderboard", "No players yet.", ColorTeal))
		return
	}

	var b strings.Builder
	for idx, row := range rows {
		fmt.Fprintf(&b, "%s %s — %s points\n",
			leaderboardRank(idx), mention(row.UserID), formatPoints(row.Points))
	}
	respondEmbed(s, i, Embed("🏆 Leaderboard", b.String(), ColorTeal))
}

func leaderboardRank(idx int) string {
	switch idx {
	case 0:
		return "🥇"
	case 1:
		return "🥈"
	case 2:
		return "🥉"
	}
	return fmt.Sprintf("**%d.**", idx+1)
}

func HandleTransfer(s *discordgo.Session, i *discordgo.InteractionCreate, svc *games.Service) {
	data := i.ApplicationCommandData()
	targetID := getUserOption(data.Options, "user")
	amountOpt := getIntOption(data.Options, "amount")
	if targetID == "" || amountOpt == nil {
		respondEphemeral(s, i, Embed("Error", "user and amount are required", ColorRed))
		return
	}

	from := interactionUserID(i)
	to := ParseUserID(targetID)
	amount := *amountOpt

	if err := wager.CheckTransfer(from, to, amount); err != nil {
		respondError(s, i, err)
		return
	}

	ok, err := svc.Ledger().Transfer(context.Background(), from, to, amount)
	if err != nil {
		respondError(s, i, err)
		return
	}
	if !ok {
		respondError(s, i, wager.ErrInsufficientFunds)
		return
	}

	respondEmbed(s, i, Embed(
		"💸 Transfer Complete",
		fmt.Sprintf("%s sent %s points to %s.", mention(from), formatPoints(amount), mention(to)),
		ColorGreen,
	))
}
