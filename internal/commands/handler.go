package commands

import (
	"github.com/brycec/wagerbot/internal/games"
	"github.com/bwmarrin/discordgo"
)

// HandleCommand routes a slash command to its handler.
func HandleCommand(s *discordgo.Session, i *discordgo.InteractionCreate, svc *games.Service) {
	switch i.ApplicationCommandData().Name {
	case "coinflip":
		HandleCoinflip(s, i, svc)
	case "dice":
		HandleDice(s, i, svc)
	case "roulette":
		HandleRoulette(s, i, svc)
	case "blackjack":
		HandleBlackjack(s, i, svc)
	case "jackpot":
		HandleJackpot(s, i, svc)
	case "stats":
		HandleStats(s, i, svc)
	case "leaderboard":
		HandleLeaderboard(s, i, svc)
	case "transfer":
		HandleTransfer(s, i, svc)
	case "setbalance":
		HandleSetBalance(s, i, svc)
	case "addbalance":
		HandleAddBalance(s, i, svc)
	case "setwins":
		HandleSetWins(s, i, svc)
	case "setlosses":
		HandleSetLosses(s, i, svc)
	case "adjustwinrate":
		HandleAdjustWinRate(s, i, svc)
	case "removewinrate":
		HandleRemoveWinRate(s, i, svc)
	}
}

// HandleComponent routes a button press to its handler.
func HandleComponent(s *discordgo.Session, i *discordgo.InteractionCreate, svc *games.Service) {
	switch i.MessageComponentData().CustomID {
	case ComponentRouletteRed:
		handleRouletteJoin(s, i, svc, games.ColorRed)
	case ComponentRouletteBlack:
		handleRouletteJoin(s, i, svc, games.ColorBlack)
	case ComponentJackpotJoin:
		handleJackpotJoin(s, i, svc)
	case ComponentBlackjackHit, ComponentBlackjackStand:
		handleBlackjackAction(s, i, svc, i.MessageComponentData().CustomID)
	}
}
