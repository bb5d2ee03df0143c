package ledger

import "context"

// Settlement is a single balance delta applied when a session resolves.
type Settlement struct {
	UserID int64
	Delta  int64
}

// Outcome says how a finished game counts toward a user's record.
type Outcome int

const (
	OutcomeWin Outcome = iota
	OutcomeLoss
	OutcomeDraw
)

// GameResult pairs a user with how their game ended.
type GameResult struct {
	UserID int64
	Result Outcome
}

// Stats is the persisted per-user record. TotalGames and WinRate are derived
// and recomputed on every read, never stored.
type Stats struct {
	UserID     int64   `json:"user_id"`
	Points     int64   `json:"points"`
	Wins       int64   `json:"wins"`
	Losses     int64   `json:"losses"`
	Draws      int64   `json:"draws"`
	TotalGames int64   `json:"total_games"`
	WinRate    float64 `json:"win_rate"`
}

// Derive fills in TotalGames and WinRate from the stored counters.
func (s *Stats) Derive() {
	s.TotalGames = s.Wins + s.Losses + s.Draws
	if s.TotalGames > 0 {
		s.WinRate = float64(s.Wins) * 100 / float64(s.TotalGames)
	} else {
		s.WinRate = 0
	}
}

// Ledger is the single source of truth for user balances. Entries are created
// lazily with zero points on first reference and never deleted. Every mutation
// is atomic: no implementation may read a balance and write back a computed
// value in separate steps.
type Ledger interface {
	// Balance returns the user's points, creating the entry if absent.
	Balance(ctx context.Context, userID int64) (int64, error)

	// SetBalance overwrites the user's points. Negative amounts clamp to 0.
	SetBalance(ctx context.Context, userID, amount int64) error

	// AddBalance applies a delta. A negative delta never drives the balance
	// below zero; it clamps instead.
	AddBalance(ctx context.Context, userID, delta int64) error

	// Debit atomically subtracts amount if the balance covers it. Returns
	// false with no mutation otherwise. Stakes are only ever collected
	// through Debit, so settled balances cannot go negative.
	Debit(ctx context.Context, userID, amount int64) (bool, error)

	// Transfer moves amount between two users, both legs or neither.
	// Returns false with no mutation when amount <= 0, from == to, or the
	// sender's balance is insufficient.
	Transfer(ctx context.Context, from, to, amount int64) (bool, error)

	// Settle applies a session's payouts and win/loss/draw counters as one
	// all-or-nothing operation.
	Settle(ctx context.Context, settlements []Settlement, results []GameResult) error

	// UserStats returns the full record with derived fields filled in.
	UserStats(ctx context.Context, userID int64) (*Stats, error)

	SetWins(ctx context.Context, userID, wins int64) error
	SetLosses(ctx context.Context, userID, losses int64) error

	// AdjustWinRate rewrites wins and losses so the win rate matches pct,
	// keeping the number of games played constant.
	AdjustWinRate(ctx context.Context, userID int64, pct float64) error

	// ResetRecord zeroes wins, losses and draws. Points are untouched.
	ResetRecord(ctx context.Context, userID int64) error

	// Leaderboard returns up to limit users ordered by points descending.
	Leaderboard(ctx context.Context, limit int) ([]Stats, error)
}
