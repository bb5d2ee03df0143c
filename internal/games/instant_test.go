package games

import (
	"context"
	"errors"
	"testing"

	"github.com/brycec/wagerbot/internal/wager"
)

func TestCoinflip(t *testing.T) {
	ctx := context.Background()

	t.Run("win pays double the stake", func(t *testing.T) {
		svc, mem, _ := newTestService(&scriptRand{intn: []int{0}}) // heads
		mem.SetBalance(ctx, 1, 100)

		res, err := svc.Coinflip(ctx, 1, SideHeads, 40)
		if err != nil {
			t.Fatalf("Coinflip returned error: %v", err)
		}
		if !res.Won || res.Result != SideHeads {
			t.Errorf("expected heads win, got result=%s won=%v", res.Result, res.Won)
		}
		if res.Delta != 40 || res.NewBalance != 140 {
			t.Errorf("expected delta=40 balance=140, got delta=%d balance=%d", res.Delta, res.NewBalance)
		}

		stats, _ := mem.UserStats(ctx, 1)
		if stats.Wins != 1 {
			t.Errorf("expected 1 win recorded, got %d", stats.Wins)
		}
	})

	t.Run("loss forfeits the stake", func(t *testing.T) {
		svc, mem, _ := newTestService(&scriptRand{intn: []int{1}}) // tails
		mem.SetBalance(ctx, 1, 100)

		res, err := svc.Coinflip(ctx, 1, SideHeads, 40)
		if err != nil {
			t.Fatalf("Coinflip returned error: %v", err)
		}
		if res.Won {
			t.Error("expected loss")
		}
		if res.Delta != -40 || res.NewBalance != 60 {
			t.Errorf("expected delta=-40 balance=60, got delta=%d balance=%d", res.Delta, res.NewBalance)
		}

		stats, _ := mem.UserStats(ctx, 1)
		if stats.Losses != 1 {
			t.Errorf("expected 1 loss recorded, got %d", stats.Losses)
		}
	})

	t.Run("rejects unknown side", func(t *testing.T) {
		svc, mem, _ := newTestService(&scriptRand{})
		mem.SetBalance(ctx, 1, 100)

		if _, err := svc.Coinflip(ctx, 1, "edge", 40); !errors.Is(err, ErrInvalidSide) {
			t.Errorf("expected ErrInvalidSide, got %v", err)
		}
	})

	t.Run("rejects uncovered stake", func(t *testing.T) {
		svc, mem, _ := newTestService(&scriptRand{})
		mem.SetBalance(ctx, 1, 10)

		if _, err := svc.Coinflip(ctx, 1, SideHeads, 40); !errors.Is(err, wager.ErrInsufficientFunds) {
			t.Errorf("expected ErrInsufficientFunds, got %v", err)
		}
		balance, _ := mem.Balance(ctx, 1)
		if balance != 10 {
			t.Errorf("rejected bet changed balance to %d", balance)
		}
	})
}

func TestDiceMultiplier(t *testing.T) {
	tests := []struct {
		target int
		want   float64
	}{
		{3, 2.0},
		{4, 3.0},
		{5, 6.0},
	}
	for _, tt := range tests {
		if got := DiceMultiplier(tt.target); got != tt.want {
			t.Errorf("DiceMultiplier(%d) = %v, want %v", tt.target, got, tt.want)
		}
	}
}

func TestDice(t *testing.T) {
	ctx := context.Background()

	t.Run("roll above target wins at the multiplier", func(t *testing.T) {
		svc, mem, _ := newTestService(&scriptRand{intn: []int{4}}) // roll 5
		mem.SetBalance(ctx, 1, 200)

		res, err := svc.Dice(ctx, 1, 4, 100)
		if err != nil {
			t.Fatalf("Dice returned error: %v", err)
		}
		if !res.Won || res.Roll != 5 {
			t.Fatalf("expected winning roll of 5, got roll=%d won=%v", res.Roll, res.Won)
		}
		if res.Multiplier != 3.0 {
			t.Errorf("expected multiplier 3.0, got %v", res.Multiplier)
		}
		if res.Delta != 300 || res.NewBalance != 500 {
			t.Errorf("expected delta=300 balance=500, got delta=%d balance=%d", res.Delta, res.NewBalance)
		}
	})

	t.Run("roll equal to target loses", func(t *testing.T) {
		svc, mem, _ := newTestService(&scriptRand{intn: []int{3}}) // roll 4
		mem.SetBalance(ctx, 1, 200)

		res, err := svc.Dice(ctx, 1, 4, 100)
		if err != nil {
			t.Fatalf("Dice returned error: %v", err)
		}
		if res.Won {
			t.Error("expected roll equal to target to lose")
		}
		if res.Delta != -100 || res.NewBalance != 100 {
			t.Errorf("expected delta=-100 balance=100, got delta=%d balance=%d", res.Delta, res.NewBalance)
		}
	})

	t.Run("rejects targets outside 3-5", func(t *testing.T) {
		svc, mem, _ := newTestService(&scriptRand{})
		mem.SetBalance(ctx, 1, 200)

		for _, target := range []int{0, 2, 6} {
			if _, err := svc.Dice(ctx, 1, target, 100); !errors.Is(err, ErrInvalidDiceTarget) {
				t.Errorf("target %d: expected ErrInvalidDiceTarget, got %v", target, err)
			}
		}
	})
}
