package db

import (
	"context"
	"fmt"
	"math"

	"github.com/brycec/wagerbot/internal/ledger"
)

// ensureUser creates the user's row with zero points if it does not exist yet.
func (db *DB) ensureUser(ctx context.Context, userID int64) error {
	_, err := db.pool.Exec(ctx,
		"INSERT INTO users (id) VALUES ($1) ON CONFLICT (id) DO NOTHING",
		userID,
	)
	return err
}

func (db *DB) Balance(ctx context.Context, userID int64) (int64, error) {
	if err := db.ensureUser(ctx, userID); err != nil {
		return 0, err
	}
	var points int64
	err := db.pool.QueryRow(ctx,
		"SELECT points FROM users WHERE id = $1",
		userID,
	).Scan(&points)
	if err != nil {
		return 0, err
	}
	return points, nil
}

func (db *DB) SetBalance(ctx context.Context, userID, amount int64) error {
	if amount < 0 {
		amount = 0
	}
	_, err := db.pool.Exec(ctx, `
		INSERT INTO users (id, points) VALUES ($1, $2)
		ON CONFLICT (id) DO UPDATE SET points = $2, updated_at = CURRENT_TIMESTAMP`,
		userID, amount,
	)
	return err
}

// AddBalance applies the delta in a single statement so concurrent callers
// serialize in the database instead of racing on a stale read.
func (db *DB) AddBalance(ctx context.Context, userID, delta int64) error {
	if err := db.ensureUser(ctx, userID); err != nil {
		return err
	}
	_, err := db.pool.Exec(ctx, `
		UPDATE users
		SET points = GREATEST(points + $2, 0), updated_at = CURRENT_TIMESTAMP
		WHERE id = $1`,
		userID, delta,
	)
	return err
}

func (db *DB) Debit(ctx context.Context, userID, amount int64) (bool, error) {
	if amount <= 0 {
		return false, nil
	}
	if err := db.ensureUser(ctx, userID); err != nil {
		return false, err
	}
	result, err := db.pool.Exec(ctx, `
		UPDATE users
		SET points = points - $2, updated_at = CURRENT_TIMESTAMP
		WHERE id = $1 AND points >= $2`,
		userID, amount,
	)
	if err != nil {
		return false, err
	}
	return result.RowsAffected() > 0, nil
}

func (db *DB) Transfer(ctx context.Context, from, to, amount int64) (bool, error) {
	if amount <= 0 || from == to {
		return false, nil
	}
	if err := db.ensureUser(ctx, from); err != nil {
		return false, err
	}
	if err := db.ensureUser(ctx, to); err != nil {
		return false, err
	}

	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return false, err
	}
	defer tx.Rollback(ctx)

	result, err := tx.Exec(ctx, `
		UPDATE users
		SET points = points - $2, updated_at = CURRENT_TIMESTAMP
		WHERE id = $1 AND points >= $2`,
		from, amount,
	)
	if err != nil {
		return false, err
	}
	if result.RowsAffected() == 0 {
		return false, nil
	}

	_, err = tx.Exec(ctx, `
		UPDATE users
		SET points = points + $2, updated_at = CURRENT_TIMESTAMP
		WHERE id = $1`,
		to, amount,
	)
	if err != nil {
		return false, err
	}

	if err := tx.Commit(ctx); err != nil {
		return false, err
	}
	return true, nil
}

// Settle applies a session's payouts and record counters in one transaction:
// either every leg commits or none does.
func (db *DB) Settle(ctx context.Context, settlements []ledger.Settlement, results []ledger.GameResult) error {
	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	for _, s := range settlements {
		_, err := tx.Exec(ctx, `
			INSERT INTO users (id, points) VALUES ($1, GREATEST($2, 0))
			ON CONFLICT (id) DO UPDATE
			SET points = GREATEST(users.points + $2, 0), updated_at = CURRENT_TIMESTAMP`,
			s.UserID, s.Delta,
		)
		if err != nil {
			return fmt.Errorf("failed to apply settlement for user %d: %w", s.UserID, err)
		}
	}

	for _, r := range results {
		var column string
		switch r.Result {
		case ledger.OutcomeWin:
			column = "wins"
		case ledger.OutcomeLoss:
			column = "losses"
		case ledger.OutcomeDraw:
			column = "draws"
		default:
			continue
		}
		_, err := tx.Exec(ctx, fmt.Sprintf(`
			INSERT INTO users (id, %[1]s) VALUES ($1, 1)
			ON CONFLICT (id) DO UPDATE
			SET %[1]s = users.%[1]s + 1, updated_at = CURRENT_TIMESTAMP`, column),
			r.UserID,
		)
		if err != nil {
			return fmt.Errorf("failed to record result for user %d: %w", r.UserID, err)
		}
	}

	return tx.Commit(ctx)
}

func (db *DB) UserStats(ctx context.Context, userID int64) (*ledger.Stats, error) {
	if err := db.ensureUser(ctx, userID); err != nil {
		return nil, err
	}
	stats := &ledger.Stats{UserID: userID}
	err := db.pool.QueryRow(ctx,
		"SELECT points, wins, losses, draws FROM users WHERE id = $1",
		userID,
	).Scan(&stats.Points, &stats.Wins, &stats.Losses, &stats.Draws)
	if err != nil {
		return nil, err
	}
	stats.Derive()
	return stats, nil
}

func (db *DB) SetWins(ctx context.Context, userID, wins int64) error {
	_, err := db.pool.Exec(ctx, `
		INSERT INTO users (id, wins) VALUES ($1, $2)
		ON CONFLICT (id) DO UPDATE SET wins = $2, updated_at = CURRENT_TIMESTAMP`,
		userID, wins,
	)
	return err
}

func (db *DB) SetLosses(ctx context.Context, userID, losses int64) error {
	_, err := db.pool.Exec(ctx, `
		INSERT INTO users (id, losses) VALUES ($1, $2)
		ON CONFLICT (id) DO UPDATE SET losses = $2, updated_at = CURRENT_TIMESTAMP`,
		userID, losses,
	)
	return err
}

// AdjustWinRate rewrites wins/losses so the win rate matches pct while the
// number of games played stays the same. The row lock serializes the
// read-compute-write.
func (db *DB) AdjustWinRate(ctx context.Context, userID int64, pct float64) error {
	if err := db.ensureUser(ctx, userID); err != nil {
		return err
	}

	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	var wins, losses, draws int64
	err = tx.QueryRow(ctx,
		"SELECT wins, losses, draws FROM users WHERE id = $1 FOR UPDATE",
		userID,
	).Scan(&wins, &losses, &draws)
	if err != nil {
		return err
	}

	total := wins + losses + draws
	newWins := int64(math.Round(float64(total) * pct / 100))
	if newWins < 0 {
		newWins = 0
	}
	if newWins > total-draws {
		newWins = total - draws
	}
	_, err = tx.Exec(ctx, `
		UPDATE users
		SET wins = $2, losses = $3, updated_at = CURRENT_TIMESTAMP
		WHERE id = $1`,
		userID, newWins, total-draws-newWins,
	)
	if err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (db *DB) ResetRecord(ctx context.Context, userID int64) error {
	_, err := db.pool.Exec(ctx, `
		INSERT INTO users (id) VALUES ($1)
		ON CONFLICT (id) DO UPDATE
		SET wins = 0, losses = 0, draws = 0, updated_at = CURRENT_TIMESTAMP`,
		userID,
	)
	return err
}

func (db *DB) Leaderboard(ctx context.Context, limit int) ([]ledger.Stats, error) {
	rows, err := db.pool.Query(ctx,
		"SELECT id, points, wins, losses, draws FROM users ORDER BY points DESC, id ASC LIMIT $1",
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var board []ledger.Stats
	for rows.Next() {
		var s ledger.Stats
		if err := rows.Scan(&s.UserID, &s.Points, &s.Wins, &s.Losses, &s.Draws); err != nil {
			return nil, err
		}
		s.Derive()
		board = append(board, s)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return board, nil
}
