package commands

import (
	"errors"
	"time"

	"github.com/brycec/wagerbot/internal/games"
	"github.com/brycec/wagerbot/internal/wager"
	"github.com/bwmarrin/discordgo"
)

const (
	ColorTeal  = 0x1ABC9C
	ColorGreen = 0x57F287
	ColorRed   = 0xED4245
)

// Embed builds the bot's standard embed: title, description, color, and a
// footer with the current time.
func Embed(title, description string, color int) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       title,
		Description: description,
		Color:       color,
		Footer: &discordgo.MessageEmbedFooter{
			Text: "Today at " + time.Now().Format("3:04 PM"),
		},
	}
}

func respondEmbed(s *discordgo.Session, i *discordgo.InteractionCreate, embed *discordgo.MessageEmbed) {
	s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{Embeds: []*discordgo.MessageEmbed{embed}},
	})
}

func respondEphemeral(s *discordgo.Session, i *discordgo.InteractionCreate, embed *discordgo.MessageEmbed) {
	s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{embed},
			Flags:  discordgo.MessageFlagsEphemeral,
		},
	})
}

func respondEmbedComponents(s *discordgo.Session, i *discordgo.InteractionCreate, embed *discordgo.MessageEmbed, components []discordgo.MessageComponent) {
	s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds:     []*discordgo.MessageEmbed{embed},
			Components: components,
		},
	})
}

// updateMessage edits the message a component interaction came from.
func updateMessage(s *discordgo.Session, i *discordgo.InteractionCreate, embed *discordgo.MessageEmbed, components []discordgo.MessageComponent) {
	s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseUpdateMessage,
		Data: &discordgo.InteractionResponseData{
			Embeds:     []*discordgo.MessageEmbed{embed},
			Components: components,
		},
	})
}

// respondError maps a game/validation error to an ephemeral rejection embed.
func respondError(s *discordgo.Session, i *discordgo.InteractionCreate, err error) {
	title := "Error"
	switch {
	case errors.Is(err, wager.ErrInvalidAmount):
		title = "Invalid Amount"
	case errors.Is(err, wager.ErrInsufficientFunds):
		title = "Insufficient Points"
	case errors.Is(err, wager.ErrInvalidTarget):
		title = "Invalid Transfer"
	case errors.Is(err, wager.ErrInvalidDuration):
		title = "Invalid Duration"
	case errors.Is(err, games.ErrSessionConflict):
		title = "Game in Progress"
	case errors.Is(err, games.ErrSessionNotFound):
		title = "Game Not Found"
	case errors.Is(err, games.ErrNotYourSession):
		title = "Not Your Game"
	case errors.Is(err, games.ErrAlreadyJoined):
		title = "Already Joined"
	case errors.Is(err, games.ErrInvalidSide), errors.Is(err, games.ErrInvalidDiceTarget):
		title = "Invalid Choice"
	}
	respondEphemeral(s, i, Embed(title, err.Error(), ColorRed))
}
