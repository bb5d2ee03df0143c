package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/brycec/wagerbot/internal/games"
	"github.com/bwmarrin/discordgo"
)

const ComponentJackpotJoin = "jackpot_join"

func HandleJackpot(s *discordgo.Session, i *discordgo.InteractionCreate, svc *games.Service) {
	data := i.ApplicationCommandData()
	durationOpt := getNumberOption(data.Options, "duration")
	amountOpt := getIntOption(data.Options, "amount")
	if durationOpt == nil || amountOpt == nil {
		respondEphemeral(s, i, Embed("Error", "duration and amount are required", ColorRed))
		return
	}

	// Duration is given in days; decimals express hours/minutes.
	duration := time.Duration(*durationOpt * 24 * float64(time.Hour))

	userID := interactionUserID(i)
	sess, err := svc.StartJackpot(context.Background(), i.ChannelID, userID, *amountOpt, duration)
	if err != nil {
		respondError(s, i, err)
		return
	}

	embed := Embed(
		"🎰 Jackpot Started",
		fmt.Sprintf("**%s** started a jackpot!\n\n"+
			"**Initial Contribution:** %s points (100.0%% chance)\n"+
			"**Duration:** %s\n"+
			"**Ends:** <t:%d:R>\n\n"+
			"Click the Join button to participate!\n"+
			"The more you contribute, the higher your chance to win!",
			mention(userID), formatPoints(*amountOpt),
			formatJackpotDuration(*durationOpt), sess.Deadline().Unix()),
		ColorTeal,
	)
	respondEmbedComponents(s, i, embed, []discordgo.MessageComponent{
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.Button{
					Label:    "Join Jackpot",
					Style:    discordgo.SuccessButton,
					CustomID: ComponentJackpotJoin,
					Emoji:    discordgo.ComponentEmoji{Name: "🎰"},
				},
			},
		},
	})
}

func handleJackpotJoin(s *discordgo.Session, i *discordgo.InteractionCreate, svc *games.Service) {
	userID := interactionUserID(i)
	sess, err := svc.JoinJackpot(context.Background(), i.ChannelID, userID)
	if err != nil {
		respondError(s, i, err)
		return
	}

	contribution := sess.ContributionOf(userID)
	pool := sess.Pool()
	pct := float64(contribution) / float64(pool) * 100

	respondEphemeral(s, i, Embed(
		"🎰 Jackpot Joined",
		fmt.Sprintf("You contributed **%s** points!\n"+
			"**Total Contribution:** %s points (%.1f%% chance)\n\n"+
			"**Total Jackpot:** %s points\n"+
			"**Participants:** %d\n"+
			"**Ends:** <t:%d:R>\n\n"+
			"Click the Join button to contribute more!",
			formatPoints(sess.Amount()), formatPoints(contribution), pct,
			formatPoints(pool), sess.Contributors(), sess.Deadline().Unix()),
		ColorTeal,
	))
}

// RenderJackpotOutcome builds the winner announcement embed.
func RenderJackpotOutcome(o *games.JackpotOutcome) *discordgo.MessageEmbed {
	pct := float64(o.WinnerContribution) / float64(o.Pool) * 100
	return Embed(
		"🎰 Jackpot Winner!",
		fmt.Sprintf("**%s** won the jackpot of **%s** points!\n\n"+
			"**Total Participants:** %d\n"+
			"**Total Contributions:** %s points\n"+
			"**Winner's Contribution:** %s points (%.1f%% chance)\n\n"+
			"Congratulations to the winner! 🎉",
			mention(o.WinnerID), formatPoints(o.Pool),
			o.Contributors, formatPoints(o.Pool),
			formatPoints(o.WinnerContribution), pct),
		ColorGreen,
	)
}

func formatJackpotDuration(days float64) string {
	if days < 1 {
		if days < 1.0/24 {
			return fmt.Sprintf("%d minutes", int(days*24*60))
		}
		return fmt.Sprintf("%.1f hours", days*24)
	}
	return fmt.Sprintf("%g days", days)
}
