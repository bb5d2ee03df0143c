package games

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/brycec/wagerbot/internal/ledger"
	"github.com/brycec/wagerbot/internal/wager"
)

const (
	ColorRed   = "red"
	ColorBlack = "black"
)

// RouletteBet is one joiner's color pick. Immutable once recorded.
type RouletteBet struct {
	UserID   int64
	Color    string
	PlacedAt time.Time
}

// RouletteSession is a pooled color bet open for a fixed window. Everyone who
// joins stakes the host's amount; stakes are debited at join and winners are
// paid back double at the spin.
type RouletteSession struct {
	mu sync.Mutex

	room      string
	hostID    int64
	amount    int64
	status    Status
	createdAt time.Time
	deadline  time.Time
	bets      []RouletteBet
	joined    map[int64]bool
	timer     *time.Timer
}

func (rs *RouletteSession) Room() string { return rs.room }
func (rs *RouletteSession) HostID() int64 { return rs.hostID }
func (rs *RouletteSession) Amount() int64 { return rs.amount }
func (rs *RouletteSession) Deadline() time.Time { return rs.deadline }

// Bets returns a copy of the recorded bets.
func (rs *RouletteSession) Bets() []RouletteBet {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	out := make([]RouletteBet, len(rs.bets))
	copy(out, rs.bets)
	return out
}

// StartRoulette opens a roulette session in the room. The host's stake is
// validated but the host does not automatically join; only joiners are
// debited. The session resolves itself when the window elapses.
func (s *Service) StartRoulette(ctx context.Context, room string, hostID, amount int64) (*RouletteSession, error) {
	if err := wager.CheckBet(ctx, s.ledger, hostID, amount); err != nil {
		return nil, err
	}

	now := time.Now()
	sess := &RouletteSession{
		room:      room,
		hostID:    hostID,
		amount:    amount,
		status:    StatusOpen,
		createdAt: now,
		deadline:  now.Add(s.rouletteWindow),
		joined:    make(map[int64]bool),
	}
	sess.timer = time.AfterFunc(s.rouletteWindow, func() {
		s.resolveRoulette(context.Background(), room)
	})

	// Publish only the fully built session; the timer must be in place
	// before anyone can look the session up.
	if err := s.registry.Open(room, KindRoulette, sess); err != nil {
		sess.timer.Stop()
		return nil, err
	}

	s.emit(Event{Type: EventSessionCreated, Room: room, Kind: KindRoulette})
	return sess, nil
}

// JoinRoulette places a bet on red or black. The stake is fixed to the host's
// amount and debited immediately; one bet per user.
func (s *Service) JoinRoulette(ctx context.Context, room string, userID int64, color string) (*RouletteSession, error) {
	if color != ColorRed && color != ColorBlack {
		return nil, ErrInvalidSide
	}

	raw, ok := s.registry.Lookup(room, KindRoulette)
	if !ok {
		return nil, ErrSessionNotFound
	}
	sess := raw.(*RouletteSession)

	sess.mu.Lock()
	defer sess.mu.Unlock()

	if sess.status != StatusOpen {
		return nil, ErrSessionNotFound
	}
	if sess.joined[userID] {
		return nil, ErrAlreadyJoined
	}

	debited, err := s.ledger.Debit(ctx, userID, sess.amount)
	if err != nil {
		return nil, err
	}
	if !debited {
		return nil, wager.ErrInsufficientFunds
	}

	sess.joined[userID] = true
	sess.bets = append(sess.bets, RouletteBet{
		UserID:   userID,
		Color:    color,
		PlacedAt: time.Now(),
	})

	s.emit(Event{Type: EventSessionUpdated, Room: room, Kind: KindRoulette})
	return sess, nil
}

// resolveRoulette fires at the deadline. With no bets the session cancels
// with no ledger effect; otherwise it spins the wheel, pays each matching bet
// double its stake and settles in one transaction.
func (s *Service) resolveRoulette(ctx context.Context, room string) {
	raw, ok := s.registry.Lookup(room, KindRoulette)
	if !ok {
		return
	}
	sess := raw.(*RouletteSession)

	sess.mu.Lock()
	defer sess.mu.Unlock()

	if sess.status != StatusOpen {
		return
	}

	if len(sess.bets) == 0 {
		sess.status = StatusCancelled
		s.registry.Close(room, KindRoulette)
		s.emit(Event{Type: EventSessionCancelled, Room: room, Kind: KindRoulette})
		return
	}

	sess.status = StatusResolving

	color := ColorRed
	if s.rng.Intn(2) == 1 {
		color = ColorBlack
	}
	// Display detail only; the number never affects payout.
	number := s.rng.Intn(37)

	outcome := &RouletteOutcome{Color: color, Number: number, Stake: sess.amount}
	var settlements []ledger.Settlement
	var results []ledger.GameResult
	for _, bet := range sess.bets {
		if bet.Color == color {
			outcome.Winners = append(outcome.Winners, bet)
			settlements = append(settlements, ledger.Settlement{UserID: bet.UserID, Delta: 2 * sess.amount})
			results = append(results, ledger.GameResult{UserID: bet.UserID, Result: ledger.OutcomeWin})
		} else {
			outcome.Losers = append(outcome.Losers, bet)
			results = append(results, ledger.GameResult{UserID: bet.UserID, Result: ledger.OutcomeLoss})
		}
	}

	if err := s.ledger.Settle(ctx, settlements, results); err != nil {
		// Stakes were already collected; hand them back instead of
		// leaving the pot in limbo.
		log.Printf("roulette settlement failed in %s, refunding stakes: %v", room, err)
		for _, bet := range sess.bets {
			if err := s.ledger.AddBalance(ctx, bet.UserID, sess.amount); err != nil {
				log.Printf("failed to refund %d points to user %d: %v", sess.amount, bet.UserID, err)
			}
		}
		sess.status = StatusCancelled
		s.registry.Close(room, KindRoulette)
		s.emit(Event{Type: EventSessionCancelled, Room: room, Kind: KindRoulette})
		return
	}

	sess.status = StatusSettled
	s.registry.Close(room, KindRoulette)
	s.emit(Event{
		Type:    EventSessionResolved,
		Room:    room,
		Kind:    KindRoulette,
		Outcome: &Outcome{Settlements: settlements, Roulette: outcome},
	})
}
