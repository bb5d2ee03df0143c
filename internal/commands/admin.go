package commands

import (
	"context"
	"fmt"

	"github.com/brycec/wagerbot/internal/games"
	"github.com/bwmarrin/discordgo"
)

// requireAdminTarget gates an admin command and extracts its target user.
// It responds on failure and returns ok=false.
func requireAdminTarget(s *discordgo.Session, i *discordgo.InteractionCreate) (int64, bool) {
	if !isAdmin(i) {
		respondEphemeral(s, i, Embed("Permission Denied", "You need administrator permission to use this command.", ColorRed))
		return 0, false
	}
	targetID := getUserOption(i.ApplicationCommandData().Options, "user")
	if targetID == "" {
		respondEphemeral(s, i, Embed("Error", "user is required", ColorRed))
		return 0, false
	}
	return ParseUserID(targetID), true
}

func HandleSetBalance(s *discordgo.Session, i *discordgo.InteractionCreate, svc *games.Service) {
	userID, ok := requireAdminTarget(s, i)
	if !ok {
		return
	}
	amountOpt := getIntOption(i.ApplicationCommandData().Options, "amount")
	if amountOpt == nil {
		respondEphemeral(s, i, Embed("Error", "amount is required", ColorRed))
		return
	}

	if err := svc.Ledger().SetBalance(context.Background(), userID, *amountOpt); err != nil {
		respondError(s, i, err)
		return
	}
	respondEmbed(s, i, Embed(
		"⚙️ Balance Set",
		fmt.Sprintf("Set %s's balance to %s points.", mention(userID), formatPoints(max64(*amountOpt, 0))),
		ColorGreen,
	))
}

func HandleAddBalance(s *discordgo.Session, i *discordgo.InteractionCreate, svc *games.Service) {
	userID, ok := requireAdminTarget(s, i)
	if !ok {
		return
	}
	amountOpt := getIntOption(i.ApplicationCommandData().Options, "amount")
	if amountOpt == nil {
		respondEphemeral(s, i, Embed("Error", "amount is required", ColorRed))
		return
	}

	if err := svc.Ledger().AddBalance(context.Background(), userID, *amountOpt); err != nil {
		respondError(s, i, err)
		return
	}

	balance, err := svc.Ledger().Balance(context.Background(), userID)
	if err != nil {
		respondError(s, i, err)
		return
	}
	respondEmbed(s, i, Embed(
		"⚙️ Balance Adjusted",
		fmt.Sprintf("Added %s points to %s. New balance: %s.",
			formatPoints(*amountOpt), mention(userID), formatPoints(balance)),
		ColorGreen,
	))
}

func HandleSetWins(s *discordgo.Session, i *discordgo.InteractionCreate, svc *games.Service) {
	userID, ok := requireAdminTarget(s, i)
	if !ok {
		return
	}
	winsOpt := getIntOption(i.ApplicationCommandData().Options, "wins")
	if winsOpt == nil {
		respondEphemeral(s, i, Embed("Error", "wins is required", ColorRed))
		return
	}

	if err := svc.Ledger().SetWins(context.Background(), userID, *winsOpt); err != nil {
		respondError(s, i, err)
		return
	}
	respondEmbed(s, i, Embed(
		"⚙️ Wins Set",
		fmt.Sprintf("Set %s's wins to %s.", mention(userID), formatPoints(max64(*winsOpt, 0))),
		ColorGreen,
	))
}

func HandleSetLosses(s *discordgo.Session, i *discordgo.InteractionCreate, svc *games.Service) {
	userID, ok := requireAdminTarget(s, i)
	if !ok {
		return
	}
	lossesOpt := getIntOption(i.ApplicationCommandData().Options, "losses")
	if lossesOpt == nil {
		respondEphemeral(s, i, Embed("Error", "losses is required", ColorRed))
		return
	}

	if err := svc.Ledger().SetLosses(context.Background(), userID, *lossesOpt); err != nil {
		respondError(s, i, err)
		return
	}
	respondEmbed(s, i, Embed(
		"⚙️ Losses Set",
		fmt.Sprintf("Set %s's losses to %s.", mention(userID), formatPoints(max64(*lossesOpt, 0))),
		ColorGreen,
	))
}

func HandleAdjustWinRate(s *discordgo.Session, i *discordgo.InteractionCreate, svc *games.Service) {
	userID, ok := requireAdminTarget(s, i)
	if !ok {
		return
	}
	pctOpt := getNumberOption(i.ApplicationCommandData().Options, "percentage")
	if pctOpt == nil {
		respondEphemeral(s, i, Embed("Error", "percentage is required", ColorRed))
		return
	}
	if *pctOpt < 0 || *pctOpt > 100 {
		respondEphemeral(s, i, Embed("Error", "percentage must be between 0 and 100", ColorRed))
		return
	}

	if err := svc.Ledger().AdjustWinRate(context.Background(), userID, *pctOpt); err != nil {
		respondError(s, i, err)
		return
	}

	stats, err := svc.Ledger().UserStats(context.Background(), userID)
	if err != nil {
		respondError(s, i, err)
		return
	}
	respondEmbed(s, i, Embed(
		"⚙️ Win Rate Adjusted",
		fmt.Sprintf("%s's record is now %s-%s-%s (%.1f%% win rate).",
			mention(userID),
			formatPoints(stats.Wins), formatPoints(stats.Losses), formatPoints(stats.Draws),
			stats.WinRate),
		ColorGreen,
	))
}

func HandleRemoveWinRate(s *discordgo.Session, i *discordgo.InteractionCreate, svc *games.Service) {
	userID, ok := requireAdminTarget(s, i)
	if !ok {
		return
	}

	if err := svc.Ledger().ResetRecord(context.Background(), userID); err != nil {
		respondError(s, i, err)
		return
	}
	respondEmbed(s, i, Embed(
		"⚙️ Record Reset",
		fmt.Sprintf("Cleared %s's win/loss record.", mention(userID)),
		ColorGreen,
	))
}

func max64(a, b int64) int64 {
	if a > b {
		return a
	}
	return b
}
