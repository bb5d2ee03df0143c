package bot

import (
	"fmt"
	"log"

	"github.com/brycec/wagerbot/internal/games"
	"github.com/bwmarrin/discordgo"
)

type Bot struct {
	session *discordgo.Session
	svc     *games.Service
}

func New(token string, svc *games.Service) (*Bot, error) {
	session, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("failed to create discord session: %w", err)
	}

	bot := &Bot{
		session: session,
		svc:     svc,
	}

	// Register event handlers
	session.AddHandler(bot.onReady)
	session.AddHandler(bot.onGuildCreate)
	session.AddHandler(bot.onInteractionCreate)

	session.Identify.Intents = discordgo.IntentsGuilds | discordgo.IntentsGuildMessages

	return bot, nil
}

func (b *Bot) Start() error {
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open discord session: %w", err)
	}
	log.Println("Discord bot is running")
	return nil
}

func (b *Bot) Stop() error {
	return b.session.Close()
}

// Session exposes the underlying connection so the event sink can post
// timer-driven game results as channel messages.
func (b *Bot) Session() *discordgo.Session {
	return b.session
}
