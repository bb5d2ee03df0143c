package bot

import (
	"log"
	"sync"

	"github.com/brycec/wagerbot/internal/commands"
	"github.com/brycec/wagerbot/internal/games"
	"github.com/bwmarrin/discordgo"
)

// Sink posts timer-driven game results to the channel the session ran in.
// It is created before the Discord connection exists and bound afterwards;
// events arriving before Bind are dropped.
type Sink struct {
	mu      sync.RWMutex
	session *discordgo.Session
}

func NewSink() *Sink {
	return &Sink{}
}

func (k *Sink) Bind(session *discordgo.Session) {
	k.mu.Lock()
	k.session = session
	k.mu.Unlock()
}

func (k *Sink) HandleGameEvent(e games.Event) {
	k.mu.RLock()
	session := k.session
	k.mu.RUnlock()
	if session == nil {
		return
	}

	var embed *discordgo.MessageEmbed
	switch {
	case e.Type == games.EventSessionResolved && e.Outcome != nil && e.Outcome.Roulette != nil:
		embed = commands.RenderRouletteOutcome(e.Outcome.Roulette)
	case e.Type == games.EventSessionResolved && e.Outcome != nil && e.Outcome.Jackpot != nil:
		embed = commands.RenderJackpotOutcome(e.Outcome.Jackpot)
	case e.Type == games.EventSessionCancelled && e.Kind == games.KindRoulette:
		embed = commands.Embed("🎡 Roulette Cancelled", "Nobody placed a bet. No points were taken.", commands.ColorRed)
	case e.Type == games.EventSessionCancelled && e.Kind == games.KindJackpot:
		embed = commands.Embed("🎰 Jackpot Cancelled", "The pot could not be settled. All contributions were refunded.", commands.ColorRed)
	default:
		return
	}

	if _, err := session.ChannelMessageSendEmbed(e.Room, embed); err != nil {
		log.Printf("Failed to post %s result to channel %s: %v", e.Kind, e.Room, err)
	}
}
