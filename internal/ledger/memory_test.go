package ledger

import (
	"context"
	"sync"
	"testing"
)

func TestAddBalanceConcurrent(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	const workers = 50
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			m.AddBalance(ctx, 1, 1)
		}()
	}
	wg.Wait()

	balance, err := m.Balance(ctx, 1)
	if err != nil {
		t.Fatalf("Balance returned error: %v", err)
	}
	if balance != workers {
		t.Errorf("expected balance %d, got %d", workers, balance)
	}
}

func TestBalanceNeverNegative(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	m.SetBalance(ctx, 1, 10)
	m.AddBalance(ctx, 1, -100)
	balance, _ := m.Balance(ctx, 1)
	if balance != 0 {
		t.Errorf("expected balance clamped to 0, got %d", balance)
	}

	m.SetBalance(ctx, 2, -5)
	balance, _ = m.Balance(ctx, 2)
	if balance != 0 {
		t.Errorf("expected SetBalance to clamp to 0, got %d", balance)
	}
}

func TestDebit(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()
	m.SetBalance(ctx, 1, 100)

	tests := []struct {
		name    string
		amount  int64
		wantOK  bool
		wantBal int64
	}{
		{"covers balance", 60, true, 40},
		{"exceeds balance", 50, false, 40},
		{"non-positive", 0, false, 40},
		{"exact remainder", 40, true, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, err := m.Debit(ctx, 1, tt.amount)
			if err != nil {
				t.Fatalf("Debit returned error: %v", err)
			}
			if ok != tt.wantOK {
				t.Errorf("expected ok=%v, got %v", tt.wantOK, ok)
			}
			balance, _ := m.Balance(ctx, 1)
			if balance != tt.wantBal {
				t.Errorf("expected balance %d, got %d", tt.wantBal, balance)
			}
		})
	}
}

func TestTransfer(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()
	m.SetBalance(ctx, 1, 100)

	ok, err := m.Transfer(ctx, 1, 2, 30)
	if err != nil || !ok {
		t.Fatalf("expected transfer to succeed, got ok=%v err=%v", ok, err)
	}
	b1, _ := m.Balance(ctx, 1)
	b2, _ := m.Balance(ctx, 2)
	if b1 != 70 || b2 != 30 {
		t.Errorf("expected balances 70/30, got %d/%d", b1, b2)
	}

	// Insufficient funds leaves both sides untouched
	ok, _ = m.Transfer(ctx, 1, 2, 1000)
	if ok {
		t.Error("expected transfer to fail on insufficient funds")
	}
	b1, _ = m.Balance(ctx, 1)
	b2, _ = m.Balance(ctx, 2)
	if b1 != 70 || b2 != 30 {
		t.Errorf("failed transfer changed balances: %d/%d", b1, b2)
	}

	// Self-transfer and non-positive amounts are rejected
	if ok, _ := m.Transfer(ctx, 1, 1, 10); ok {
		t.Error("expected self-transfer to fail")
	}
	if ok, _ := m.Transfer(ctx, 1, 2, 0); ok {
		t.Error("expected zero transfer to fail")
	}
}

func TestSettle(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()
	m.SetBalance(ctx, 1, 50)

	err := m.Settle(ctx,
		[]Settlement{{UserID: 1, Delta: 200}, {UserID: 2, Delta: -10}},
		[]GameResult{{UserID: 1, Result: OutcomeWin}, {UserID: 2, Result: OutcomeLoss}},
	)
	if err != nil {
		t.Fatalf("Settle returned error: %v", err)
	}

	s1, _ := m.UserStats(ctx, 1)
	if s1.Points != 250 || s1.Wins != 1 {
		t.Errorf("expected user 1 points=250 wins=1, got points=%d wins=%d", s1.Points, s1.Wins)
	}
	s2, _ := m.UserStats(ctx, 2)
	if s2.Points != 0 || s2.Losses != 1 {
		t.Errorf("expected user 2 points=0 losses=1, got points=%d losses=%d", s2.Points, s2.Losses)
	}
}

func TestStatsDerive(t *testing.T) {
	s := &Stats{Wins: 3, Losses: 1, Draws: 1}
	s.Derive()
	if s.TotalGames != 5 {
		t.Errorf("expected 5 total games, got %d", s.TotalGames)
	}
	if s.WinRate != 60 {
		t.Errorf("expected 60%% win rate, got %v", s.WinRate)
	}

	empty := &Stats{}
	empty.Derive()
	if empty.WinRate != 0 {
		t.Errorf("expected 0 win rate with no games, got %v", empty.WinRate)
	}
}

func TestAdjustWinRate(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()
	m.SetWins(ctx, 1, 2)
	m.SetLosses(ctx, 1, 8)

	if err := m.AdjustWinRate(ctx, 1, 70); err != nil {
		t.Fatalf("AdjustWinRate returned error: %v", err)
	}

	s, _ := m.UserStats(ctx, 1)
	if s.Wins != 7 || s.Losses != 3 {
		t.Errorf("expected 7 wins / 3 losses, got %d/%d", s.Wins, s.Losses)
	}
	if s.TotalGames != 10 {
		t.Errorf("expected total games to stay at 10, got %d", s.TotalGames)
	}

	// Out-of-range rates clamp rather than producing negative counters
	if err := m.AdjustWinRate(ctx, 1, -25); err != nil {
		t.Fatalf("AdjustWinRate returned error: %v", err)
	}
	s, _ = m.UserStats(ctx, 1)
	if s.Wins != 0 || s.Losses != 10 {
		t.Errorf("expected 0 wins / 10 losses, got %d/%d", s.Wins, s.Losses)
	}

	if err := m.AdjustWinRate(ctx, 1, 140); err != nil {
		t.Fatalf("AdjustWinRate returned error: %v", err)
	}
	s, _ = m.UserStats(ctx, 1)
	if s.Wins != 10 || s.Losses != 0 {
		t.Errorf("expected 10 wins / 0 losses, got %d/%d", s.Wins, s.Losses)
	}
}

func TestLeaderboardOrder(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()
	m.SetBalance(ctx, 1, 100)
	m.SetBalance(ctx, 2, 300)
	m.SetBalance(ctx, 3, 100)
	m.SetBalance(ctx, 4, 200)

	rows, err := m.Leaderboard(ctx, 3)
	if err != nil {
		t.Fatalf("Leaderboard returned error: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}
	// Descending by points; ties break on the lower user ID.
	if rows[0].UserID != 2 || rows[1].UserID != 4 || rows[2].UserID != 1 {
		t.Errorf("unexpected order: %d, %d, %d", rows[0].UserID, rows[1].UserID, rows[2].UserID)
	}
}
