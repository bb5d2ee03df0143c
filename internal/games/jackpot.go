package games

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/brycec/wagerbot/internal/ledger"
	"github.com/brycec/wagerbot/internal/wager"
)

type contribution struct {
	userID int64
	total  int64
}

// JackpotSession is a contribution-weighted pool. Every join debits the fixed
// per-join amount immediately; at the deadline one contributor wins the whole
// pool with probability proportional to their share.
type JackpotSession struct {
	mu sync.Mutex

	room      string
	hostID    int64
	amount    int64 // fixed per-join stake
	status    Status
	createdAt time.Time
	deadline  time.Time
	pool      int64
	// Contributions in insertion order; rejoining accumulates onto the
	// existing entry, never resets it.
	contributions []*contribution
	byUser        map[int64]*contribution
	timer         *time.Timer
}

func (js *JackpotSession) Room() string { return js.room }
func (js *JackpotSession) HostID() int64 { return js.hostID }
func (js *JackpotSession) Amount() int64 { return js.amount }
func (js *JackpotSession) Deadline() time.Time { return js.deadline }

// Pool returns the current pool total.
func (js *JackpotSession) Pool() int64 {
	js.mu.Lock()
	defer js.mu.Unlock()
	return js.pool
}

// Contributors reports the number of distinct contributors.
func (js *JackpotSession) Contributors() int {
	js.mu.Lock()
	defer js.mu.Unlock()
	return len(js.contributions)
}

// ContributionOf returns a user's cumulative contribution.
func (js *JackpotSession) ContributionOf(userID int64) int64 {
	js.mu.Lock()
	defer js.mu.Unlock()
	if c, ok := js.byUser[userID]; ok {
		return c.total
	}
	return 0
}

// StartJackpot opens a jackpot in the room. The initiator's stake is debited
// immediately and becomes the first contribution, so the pool always has at
// least one contributor and the empty-cancel path is unreachable.
func (s *Service) StartJackpot(ctx context.Context, room string, hostID, amount int64, duration time.Duration) (*JackpotSession, error) {
	if err := wager.CheckAmount(amount); err != nil {
		return nil, err
	}
	if err := wager.CheckDuration(duration); err != nil {
		return nil, err
	}

	debited, err := s.ledger.Debit(ctx, hostID, amount)
	if err != nil {
		return nil, err
	}
	if !debited {
		return nil, wager.ErrInsufficientFunds
	}

	now := time.Now()
	host := &contribution{userID: hostID, total: amount}
	sess := &JackpotSession{
		room:          room,
		hostID:        hostID,
		amount:        amount,
		status:        StatusOpen,
		createdAt:     now,
		deadline:      now.Add(duration),
		pool:          amount,
		contributions: []*contribution{host},
		byUser:        map[int64]*contribution{hostID: host},
	}
	sess.timer = time.AfterFunc(duration, func() {
		s.resolveJackpot(context.Background(), room)
	})

	// Publish only the fully built session; joins racing the open must
	// never observe a pool without the host's contribution.
	if err := s.registry.Open(room, KindJackpot, sess); err != nil {
		sess.timer.Stop()
		if rerr := s.ledger.AddBalance(ctx, hostID, amount); rerr != nil {
			log.Printf("failed to refund %d points to user %d: %v", amount, hostID, rerr)
		}
		return nil, err
	}

	s.emit(Event{Type: EventSessionCreated, Room: room, Kind: KindJackpot})
	return sess, nil
}

// JoinJackpot contributes the fixed per-join amount to the room's pool. The
// stake is debited immediately; repeated joins stack onto the user's weight.
func (s *Service) JoinJackpot(ctx context.Context, room string, userID int64) (*JackpotSession, error) {
	raw, ok := s.registry.Lookup(room, KindJackpot)
	if !ok {
		return nil, ErrSessionNotFound
	}
	sess := raw.(*JackpotSession)

	sess.mu.Lock()
	defer sess.mu.Unlock()

	if sess.status != StatusOpen {
		return nil, ErrSessionNotFound
	}

	debited, err := s.ledger.Debit(ctx, userID, sess.amount)
	if err != nil {
		return nil, err
	}
	if !debited {
		return nil, wager.ErrInsufficientFunds
	}

	if c, ok := sess.byUser[userID]; ok {
		c.total += sess.amount
	} else {
		c := &contribution{userID: userID, total: sess.amount}
		sess.contributions = append(sess.contributions, c)
		sess.byUser[userID] = c
	}
	sess.pool += sess.amount

	s.emit(Event{Type: EventSessionUpdated, Room: room, Kind: KindJackpot})
	return sess, nil
}

// pickWinner walks contributions in insertion order accumulating totals until
// the running sum exceeds draw, which must be in [0, pool).
func pickWinner(contributions []*contribution, draw int64) *contribution {
	var sum int64
	for _, c := range contributions {
		sum += c.total
		if sum > draw {
			return c
		}
	}
	// Unreachable for a valid draw; guard against an empty slice anyway.
	if len(contributions) == 0 {
		return nil
	}
	return contributions[len(contributions)-1]
}

func (s *Service) resolveJackpot(ctx context.Context, room string) {
	raw, ok := s.registry.Lookup(room, KindJackpot)
	if !ok {
		return
	}
	sess := raw.(*JackpotSession)

	sess.mu.Lock()
	defer sess.mu.Unlock()

	if sess.status != StatusOpen {
		return
	}
	sess.status = StatusResolving

	winner := pickWinner(sess.contributions, s.rng.Int63n(sess.pool))

	settlements := []ledger.Settlement{{UserID: winner.userID, Delta: sess.pool}}
	results := make([]ledger.GameResult, 0, len(sess.contributions))
	for _, c := range sess.contributions {
		outcome := ledger.OutcomeLoss
		if c.userID == winner.userID {
			outcome = ledger.OutcomeWin
		}
		results = append(results, ledger.GameResult{UserID: c.userID, Result: outcome})
	}

	if err := s.ledger.Settle(ctx, settlements, results); err != nil {
		log.Printf("jackpot settlement failed in %s, refunding contributions: %v", room, err)
		for _, c := range sess.contributions {
			if err := s.ledger.AddBalance(ctx, c.userID, c.total); err != nil {
				log.Printf("failed to refund %d points to user %d: %v", c.total, c.userID, err)
			}
		}
		sess.status = StatusCancelled
		s.registry.Close(room, KindJackpot)
		s.emit(Event{Type: EventSessionCancelled, Room: room, Kind: KindJackpot})
		return
	}

	sess.status = StatusSettled
	s.registry.Close(room, KindJackpot)
	s.emit(Event{
		Type: EventSessionResolved,
		Room: room,
		Kind: KindJackpot,
		Outcome: &Outcome{
			Settlements: settlements,
			Jackpot: &JackpotOutcome{
				WinnerID:           winner.userID,
				Pool:               sess.pool,
				Contributors:       len(sess.contributions),
				WinnerContribution: winner.total,
			},
		},
	})
}
