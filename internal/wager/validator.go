package wager

import (
	"context"
	"errors"
	"time"

	"github.com/brycec/wagerbot/internal/ledger"
)

var (
	ErrInvalidAmount     = errors.New("amount must be greater than 0")
	ErrInsufficientFunds = errors.New("not enough points for this bet")
	ErrInvalidTarget     = errors.New("you cannot target yourself")
	ErrInvalidDuration   = errors.New("duration must be greater than 0")
)

// CheckAmount rejects non-positive stakes.
func CheckAmount(amount int64) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}
	return nil
}

// CheckDuration rejects non-positive session durations.
func CheckDuration(d time.Duration) error {
	if d <= 0 {
		return ErrInvalidDuration
	}
	return nil
}

// CheckBet verifies the stake is positive and covered by the user's balance.
// It reads but never mutates; callers collect the stake with an atomic Debit
// immediately before committing, since the balance may change in between.
func CheckBet(ctx context.Context, l ledger.Ledger, userID, amount int64) error {
	if err := CheckAmount(amount); err != nil {
		return err
	}
	balance, err := l.Balance(ctx, userID)
	if err != nil {
		return err
	}
	if balance < amount {
		return ErrInsufficientFunds
	}
	return nil
}

// CheckTransfer validates a points transfer between two users.
func CheckTransfer(from, to, amount int64) error {
	if err := CheckAmount(amount); err != nil {
		return err
	}
	if from == to {
		return ErrInvalidTarget
	}
	return nil
}
