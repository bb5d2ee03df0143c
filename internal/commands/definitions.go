package commands

import "github.com/bwmarrin/discordgo"

func GetCommands() []*discordgo.ApplicationCommand {
	return []*discordgo.ApplicationCommand{
		{
			Name:         "coinflip",
			Description:  "Play a game of coinflip",
			DMPermission: boolPtr(false),
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "side",
					Description: "Choose heads or tails",
					Required:    true,
					Choices: []*discordgo.ApplicationCommandOptionChoice{
						{Name: "Heads", Value: "heads"},
						{Name: "Tails", Value: "tails"},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionInteger,
					Name:        "amount",
					Description: "The amount of points to bet",
					Required:    true,
				},
			},
		},
		{
			Name:         "dice",
			Description:  "Roll a dice and win if you roll above the target number",
			DMPermission: boolPtr(false),
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionInteger,
					Name:        "target",
					Description: "The number you need to roll above",
					Required:    true,
					Choices: []*discordgo.ApplicationCommandOptionChoice{
						{Name: "Above 3 (50.0% chance, 2.0x)", Value: 3},
						{Name: "Above 4 (33.3% chance, 3.0x)", Value: 4},
						{Name: "Above 5 (16.7% chance, 6.0x)", Value: 5},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionInteger,
					Name:        "amount",
					Description: "The amount of points to bet",
					Required:    true,
				},
			},
		},
		{
			Name:         "roulette",
			Description:  "Start a game of roulette",
			DMPermission: boolPtr(false),
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionInteger,
					Name:        "amount",
					Description: "The amount of points to bet",
					Required:    true,
				},
			},
		},
		{
			Name:         "blackjack",
			Description:  "Play a game of blackjack",
			DMPermission: boolPtr(false),
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionInteger,
					Name:        "amount",
					Description: "The amount of points to bet",
					Required:    true,
				},
			},
		},
		{
			Name:         "jackpot",
			Description:  "Start a jackpot game",
			DMPermission: boolPtr(false),
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionNumber,
					Name:        "duration",
					Description: "Duration of the jackpot in days (can use decimals for hours/minutes)",
					Required:    true,
				},
				{
					Type:        discordgo.ApplicationCommandOptionInteger,
					Name:        "amount",
					Description: "The amount of points to contribute",
					Required:    true,
				},
			},
		},
		{
			Name:         "stats",
			Description:  "Show your game statistics",
			DMPermission: boolPtr(false),
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionUser,
					Name:        "user",
					Description: "The user to show statistics for (defaults to you)",
					Required:    false,
				},
			},
		},
		{
			Name:         "leaderboard",
			Description:  "Show the top point holders",
			DMPermission: boolPtr(false),
		},
		{
			Name:         "transfer",
			Description:  "Transfer your points to another user",
			DMPermission: boolPtr(false),
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionUser,
					Name:        "user",
					Description: "The user to transfer points to",
					Required:    true,
				},
				{
					Type:        discordgo.ApplicationCommandOptionInteger,
					Name:        "amount",
					Description: "The amount of points to transfer",
					Required:    true,
				},
			},
		},
		{
			Name:         "setbalance",
			Description:  "Set a user's balance to a specific amount",
			DMPermission: boolPtr(false),
			Options:      adminUserAmountOptions("The amount to set"),
		},
		{
			Name:         "addbalance",
			Description:  "Add points to a user's balance",
			DMPermission: boolPtr(false),
			Options:      adminUserAmountOptions("The amount to add"),
		},
		{
			Name:         "setwins",
			Description:  "Set a user's number of wins",
			DMPermission: boolPtr(false),
			Options: []*discordgo.ApplicationCommandOption{
				userOption("The user to set wins for"),
				{
					Type:        discordgo.ApplicationCommandOptionInteger,
					Name:        "wins",
					Description: "The number of wins to set",
					Required:    true,
				},
			},
		},
		{
			Name:         "setlosses",
			Description:  "Set a user's number of losses",
			DMPermission: boolPtr(false),
			Options: []*discordgo.ApplicationCommandOption{
				userOption("The user to set losses for"),
				{
					Type:        discordgo.ApplicationCommandOptionInteger,
					Name:        "losses",
					Description: "The number of losses to set",
					Required:    true,
				},
			},
		},
		{
			Name:         "adjustwinrate",
			Description:  "Set a user's win rate to a specific percentage",
			DMPermission: boolPtr(false),
			Options: []*discordgo.ApplicationCommandOption{
				userOption("The user to adjust win rate for"),
				{
					Type:        discordgo.ApplicationCommandOptionNumber,
					Name:        "percentage",
					Description: "The win rate percentage (0-100)",
					Required:    true,
				},
			},
		},
		{
			Name:         "removewinrate",
			Description:  "Reset a user's win rate to 0",
			DMPermission: boolPtr(false),
			Options: []*discordgo.ApplicationCommandOption{
				userOption("The user to reset win rate for"),
			},
		},
	}
}

func userOption(description string) *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionUser,
		Name:        "user",
		Description: description,
		Required:    true,
	}
}

func adminUserAmountOptions(amountDescription string) []*discordgo.ApplicationCommandOption {
	return []*discordgo.ApplicationCommandOption{
		userOption("The target user"),
		{
			Type:        discordgo.ApplicationCommandOptionInteger,
			Name:        "amount",
			Description: amountDescription,
			Required:    true,
		},
	}
}

func boolPtr(b bool) *bool {
	return &b
}
