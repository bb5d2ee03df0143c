package ledger

import (
	"context"
	"math"
	"sort"
	"sync"
)

type record struct {
	points int64
	wins   int64
	losses int64
	draws  int64
}

// Memory is a mutex-guarded in-memory Ledger. It backs the game engine tests
// and lets the core run without a database.
type Memory struct {
	mu    sync.RWMutex
	users map[int64]*record
}

func NewMemory() *Memory {
	return &Memory{users: make(map[int64]*record)}
}

// get returns the user's record, creating it if absent. Callers must hold mu.
func (m *Memory) get(userID int64) *record {
	r, ok := m.users[userID]
	if !ok {
		r = &record{}
		m.users[userID] = r
	}
	return r
}

func (m *Memory) Balance(_ context.Context, userID int64) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.get(userID).points, nil
}

func (m *Memory) SetBalance(_ context.Context, userID, amount int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if amount < 0 {
		amount = 0
	}
	m.get(userID).points = amount
	return nil
}

func (m *Memory) AddBalance(_ context.Context, userID, delta int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	r := m.get(userID)
	r.points += delta
	if r.points < 0 {
		r.points = 0
	}
	return nil
}

func (m *Memory) Debit(_ context.Context, userID, amount int64) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r := m.get(userID)
	if amount <= 0 || r.points < amount {
		return false, nil
	}
	r.points -= amount
	return true, nil
}

func (m *Memory) Transfer(_ context.Context, from, to, amount int64) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if amount <= 0 || from == to {
		return false, nil
	}
	src := m.get(from)
	if src.points < amount {
		return false, nil
	}
	src.points -= amount
	m.get(to).points += amount
	return true, nil
}

func (m *Memory) Settle(_ context.Context, settlements []Settlement, results []GameResult) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, s := range settlements {
		r := m.get(s.UserID)
		r.points += s.Delta
		if r.points < 0 {
			r.points = 0
		}
	}
	for _, res := range results {
		r := m.get(res.UserID)
		switch res.Result {
		case OutcomeWin:
			r.wins++
		case OutcomeLoss:
			r.losses++
		case OutcomeDraw:
			r.draws++
		}
	}
	return nil
}

func (m *Memory) UserStats(_ context.Context, userID int64) (*Stats, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r := m.get(userID)
	stats := &Stats{
		UserID: userID,
		Points: r.points,
		Wins:   r.wins,
		Losses: r.losses,
		Draws:  r.draws,
	}
	stats.Derive()
	return stats, nil
}

func (m *Memory) SetWins(_ context.Context, userID, wins int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.get(userID).wins = wins
	return nil
}

func (m *Memory) SetLosses(_ context.Context, userID, losses int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.get(userID).losses = losses
	return nil
}

func (m *Memory) AdjustWinRate(_ context.Context, userID int64, pct float64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	r := m.get(userID)
	total := r.wins + r.losses + r.draws
	wins := int64(math.Round(float64(total) * pct / 100))
	if wins < 0 {
		wins = 0
	}
	if wins > total-r.draws {
		wins = total - r.draws
	}
	r.wins = wins
	r.losses = total - r.draws - wins
	return nil
}

func (m *Memory) ResetRecord(_ context.Context, userID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	r := m.get(userID)
	r.wins, r.losses, r.draws = 0, 0, 0
	return nil
}

func (m *Memory) Leaderboard(_ context.Context, limit int) ([]Stats, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	all := make([]Stats, 0, len(m.users))
	for id, r := range m.users {
		s := Stats{UserID: id, Points: r.points, Wins: r.wins, Losses: r.losses, Draws: r.draws}
		s.Derive()
		all = append(all, s)
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].Points != all[j].Points {
			return all[i].Points > all[j].Points
		}
		return all[i].UserID < all[j].UserID
	})
	if limit > 0 && len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}
