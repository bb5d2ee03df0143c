package wager

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/brycec/wagerbot/internal/ledger"
)

func TestCheckAmount(t *testing.T) {
	if err := CheckAmount(1); err != nil {
		t.Errorf("expected 1 to be valid, got %v", err)
	}
	if err := CheckAmount(0); !errors.Is(err, ErrInvalidAmount) {
		t.Errorf("expected ErrInvalidAmount for 0, got %v", err)
	}
	if err := CheckAmount(-5); !errors.Is(err, ErrInvalidAmount) {
		t.Errorf("expected ErrInvalidAmount for -5, got %v", err)
	}
}

func TestCheckDuration(t *testing.T) {
	if err := CheckDuration(time.Minute); err != nil {
		t.Errorf("expected 1m to be valid, got %v", err)
	}
	if err := CheckDuration(0); !errors.Is(err, ErrInvalidDuration) {
		t.Errorf("expected ErrInvalidDuration for 0, got %v", err)
	}
}

func TestCheckBet(t *testing.T) {
	m := ledger.NewMemory()
	ctx := context.Background()
	m.SetBalance(ctx, 1, 100)

	if err := CheckBet(ctx, m, 1, 100); err != nil {
		t.Errorf("expected exact-balance bet to pass, got %v", err)
	}
	if err := CheckBet(ctx, m, 1, 101); !errors.Is(err, ErrInsufficientFunds) {
		t.Errorf("expected ErrInsufficientFunds, got %v", err)
	}
	if err := CheckBet(ctx, m, 1, 0); !errors.Is(err, ErrInvalidAmount) {
		t.Errorf("expected ErrInvalidAmount, got %v", err)
	}
	// Unknown users start at zero
	if err := CheckBet(ctx, m, 99, 1); !errors.Is(err, ErrInsufficientFunds) {
		t.Errorf("expected ErrInsufficientFunds for new user, got %v", err)
	}
}

func TestCheckTransfer(t *testing.T) {
	if err := CheckTransfer(1, 2, 10); err != nil {
		t.Errorf("expected valid transfer to pass, got %v", err)
	}
	if err := CheckTransfer(1, 1, 10); !errors.Is(err, ErrInvalidTarget) {
		t.Errorf("expected ErrInvalidTarget for self-transfer, got %v", err)
	}
	if err := CheckTransfer(1, 2, 0); !errors.Is(err, ErrInvalidAmount) {
		t.Errorf("expected ErrInvalidAmount, got %v", err)
	}
}
