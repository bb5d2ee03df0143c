package games

import (
	"context"

	"github.com/brycec/wagerbot/internal/ledger"
	"github.com/brycec/wagerbot/internal/wager"
)

const (
	SideHeads = "heads"
	SideTails = "tails"
)

// CoinflipResult is the synchronous outcome of a single coin flip.
type CoinflipResult struct {
	Side       string
	Result     string
	Won        bool
	Delta      int64
	NewBalance int64
}

// Coinflip resolves a coin bet immediately: the stake is debited up front and
// a win pays back twice the stake.
func (s *Service) Coinflip(ctx context.Context, userID int64, side string, amount int64) (*CoinflipResult, error) {
	if side != SideHeads && side != SideTails {
		return nil, ErrInvalidSide
	}
	if err := wager.CheckAmount(amount); err != nil {
		return nil, err
	}

	ok, err := s.ledger.Debit(ctx, userID, amount)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, wager.ErrInsufficientFunds
	}

	result := SideHeads
	if s.rng.Intn(2) == 1 {
		result = SideTails
	}
	won := result == side

	if won {
		err = s.ledger.Settle(ctx,
			[]ledger.Settlement{{UserID: userID, Delta: 2 * amount}},
			[]ledger.GameResult{{UserID: userID, Result: ledger.OutcomeWin}},
		)
	} else {
		err = s.ledger.Settle(ctx, nil,
			[]ledger.GameResult{{UserID: userID, Result: ledger.OutcomeLoss}},
		)
	}
	if err != nil {
		return nil, err
	}

	delta := amount
	if !won {
		delta = -amount
	}
	balance, err := s.ledger.Balance(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &CoinflipResult{
		Side:       side,
		Result:     result,
		Won:        won,
		Delta:      delta,
		NewBalance: balance,
	}, nil
}

// DiceResult is the synchronous outcome of a dice roll bet.
type DiceResult struct {
	Target     int
	Roll       int
	Won        bool
	Multiplier float64
	Delta      int64
	NewBalance int64
}

// DiceMultiplier returns the payout multiplier for a roll-above target.
func DiceMultiplier(target int) float64 {
	return 6.0 / float64(6-target)
}

// Dice resolves a roll-above bet. The roll must be strictly above the target
// to win; a win nets floor(amount * 6/(6-target)).
func (s *Service) Dice(ctx context.Context, userID int64, target int, amount int64) (*DiceResult, error) {
	if target < 3 || target > 5 {
		return nil, ErrInvalidDiceTarget
	}
	if err := wager.CheckAmount(amount); err != nil {
		return nil, err
	}

	ok, err := s.ledger.Debit(ctx, userID, amount)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, wager.ErrInsufficientFunds
	}

	multiplier := DiceMultiplier(target)
	roll := s.rng.Intn(6) + 1
	won := roll > target

	var delta int64
	if won {
		winnings := int64(float64(amount) * multiplier)
		delta = winnings
		err = s.ledger.Settle(ctx,
			[]ledger.Settlement{{UserID: userID, Delta: amount + winnings}},
			[]ledger.GameResult{{UserID: userID, Result: ledger.OutcomeWin}},
		)
	} else {
		delta = -amount
		err = s.ledger.Settle(ctx, nil,
			[]ledger.GameResult{{UserID: userID, Result: ledger.OutcomeLoss}},
		)
	}
	if err != nil {
		return nil, err
	}

	balance, err := s.ledger.Balance(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &DiceResult{
		Target:     target,
		Roll:       roll,
		Won:        won,
		Multiplier: multiplier,
		Delta:      delta,
		NewBalance: balance,
	}, nil
}
