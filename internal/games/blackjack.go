package games

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/brycec/wagerbot/internal/ledger"
	"github.com/brycec/wagerbot/internal/wager"
)

const dealerStand = 17

// BlackjackOutcome labels how a hand ended.
type BlackjackOutcome string

const (
	BlackjackPlaying BlackjackOutcome = "playing"
	BlackjackBust    BlackjackOutcome = "bust"
	BlackjackWin     BlackjackOutcome = "win"
	BlackjackLoss    BlackjackOutcome = "loss"
	BlackjackPush    BlackjackOutcome = "push"
)

// BlackjackSession is a single-player hand against the dealer, scoped to its
// initiator. The stake is debited at start; the deck is shuffled once and
// dealt from the front.
type BlackjackSession struct {
	mu sync.Mutex

	room      string
	playerID  int64
	amount    int64
	status    Status
	createdAt time.Time
	deck      *Deck
	player    []Card
	dealer    []Card
	timer     *time.Timer
}

func (bs *BlackjackSession) Room() string { return bs.room }
func (bs *BlackjackSession) PlayerID() int64 { return bs.playerID }
func (bs *BlackjackSession) Amount() int64 { return bs.amount }

// BlackjackState is a point-in-time view of a hand for rendering.
type BlackjackState struct {
	PlayerID    int64
	Amount      int64
	PlayerHand  []Card
	DealerHand  []Card
	PlayerValue int
	DealerValue int
	Outcome     BlackjackOutcome
	Delta       int64
	NewBalance  int64
}

func (bs *BlackjackSession) snapshot(outcome BlackjackOutcome, delta, balance int64) *BlackjackState {
	player := make([]Card, len(bs.player))
	copy(player, bs.player)
	dealer := make([]Card, len(bs.dealer))
	copy(dealer, bs.dealer)
	return &BlackjackState{
		PlayerID:    bs.playerID,
		Amount:      bs.amount,
		PlayerHand:  player,
		DealerHand:  dealer,
		PlayerValue: HandValue(player),
		DealerValue: HandValue(dealer),
		Outcome:     outcome,
		Delta:       delta,
		NewBalance:  balance,
	}
}

// StartBlackjack opens a hand for the player in the room, debiting the stake
// up front. An untouched hand is cancelled and refunded when the inactivity
// timeout elapses.
func (s *Service) StartBlackjack(ctx context.Context, room string, playerID, amount int64) (*BlackjackState, error) {
	if err := wager.CheckAmount(amount); err != nil {
		return nil, err
	}

	debited, err := s.ledger.Debit(ctx, playerID, amount)
	if err != nil {
		return nil, err
	}
	if !debited {
		return nil, wager.ErrInsufficientFunds
	}

	sess := &BlackjackSession{
		room:      room,
		playerID:  playerID,
		amount:    amount,
		status:    StatusOpen,
		createdAt: time.Now(),
		deck:      NewDeck(s.rng),
	}
	sess.player = []Card{sess.deck.Deal(), sess.deck.Deal()}
	sess.dealer = []Card{sess.deck.Deal(), sess.deck.Deal()}
	sess.timer = time.AfterFunc(s.blackjackTimeout, func() {
		s.expireBlackjack(context.Background(), room)
	})

	// Publish only the fully built session; a hit racing the open must
	// never find a nil deck or timer.
	if err := s.registry.Open(room, KindBlackjack, sess); err != nil {
		sess.timer.Stop()
		if rerr := s.ledger.AddBalance(ctx, playerID, amount); rerr != nil {
			log.Printf("failed to refund %d points to user %d: %v", amount, playerID, rerr)
		}
		return nil, err
	}

	s.emit(Event{Type: EventSessionCreated, Room: room, Kind: KindBlackjack})

	balance, err := s.ledger.Balance(ctx, playerID)
	if err != nil {
		return nil, err
	}
	return sess.snapshot(BlackjackPlaying, 0, balance), nil
}

// BlackjackHit draws one card for the player. Going over 21 busts the hand
// immediately and forfeits the stake.
func (s *Service) BlackjackHit(ctx context.Context, room string, userID int64) (*BlackjackState, error) {
	sess, err := s.blackjackSession(room, userID)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	if sess.status != StatusOpen {
		return nil, ErrSessionNotFound
	}

	sess.player = append(sess.player, sess.deck.Deal())
	if HandValue(sess.player) <= 21 {
		s.emit(Event{Type: EventSessionUpdated, Room: room, Kind: KindBlackjack})
		balance, err := s.ledger.Balance(ctx, userID)
		if err != nil {
			return nil, err
		}
		return sess.snapshot(BlackjackPlaying, 0, balance), nil
	}

	return s.settleBlackjack(ctx, sess, BlackjackBust)
}

// BlackjackStand ends the player's turn: the dealer draws to 17, the hands
// are compared and the session settles.
func (s *Service) BlackjackStand(ctx context.Context, room string, userID int64) (*BlackjackState, error) {
	sess, err := s.blackjackSession(room, userID)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	if sess.status != StatusOpen {
		return nil, ErrSessionNotFound
	}

	for HandValue(sess.dealer) < dealerStand {
		sess.dealer = append(sess.dealer, sess.deck.Deal())
	}

	playerValue := HandValue(sess.player)
	dealerValue := HandValue(sess.dealer)

	var outcome BlackjackOutcome
	switch {
	case dealerValue > 21 || playerValue > dealerValue:
		outcome = BlackjackWin
	case playerValue < dealerValue:
		outcome = BlackjackLoss
	default:
		outcome = BlackjackPush
	}

	return s.settleBlackjack(ctx, sess, outcome)
}

func (s *Service) blackjackSession(room string, userID int64) (*BlackjackSession, error) {
	raw, ok := s.registry.Lookup(room, KindBlackjack)
	if !ok {
		return nil, ErrSessionNotFound
	}
	sess := raw.(*BlackjackSession)
	if sess.playerID != userID {
		return nil, ErrNotYourSession
	}
	return sess, nil
}

// settleBlackjack applies the hand's payout and closes the session. Callers
// hold sess.mu.
func (s *Service) settleBlackjack(ctx context.Context, sess *BlackjackSession, outcome BlackjackOutcome) (*BlackjackState, error) {
	sess.status = StatusResolving
	sess.timer.Stop()

	var settlements []ledger.Settlement
	var delta int64
	var result ledger.Outcome
	switch outcome {
	case BlackjackWin:
		settlements = []ledger.Settlement{{UserID: sess.playerID, Delta: 2 * sess.amount}}
		delta = sess.amount
		result = ledger.OutcomeWin
	case BlackjackPush:
		settlements = []ledger.Settlement{{UserID: sess.playerID, Delta: sess.amount}}
		delta = 0
		result = ledger.OutcomeDraw
	default: // bust or loss
		delta = -sess.amount
		result = ledger.OutcomeLoss
	}

	err := s.ledger.Settle(ctx, settlements,
		[]ledger.GameResult{{UserID: sess.playerID, Result: result}},
	)
	if err != nil {
		// Hand the stake back and free the room instead of leaving a
		// dead session parked in the registry.
		log.Printf("blackjack settlement failed in %s, refunding stake: %v", sess.room, err)
		if rerr := s.ledger.AddBalance(ctx, sess.playerID, sess.amount); rerr != nil {
			log.Printf("failed to refund %d points to user %d: %v", sess.amount, sess.playerID, rerr)
		}
		sess.status = StatusCancelled
		s.registry.Close(sess.room, KindBlackjack)
		s.emit(Event{Type: EventSessionCancelled, Room: sess.room, Kind: KindBlackjack})
		return nil, err
	}

	sess.status = StatusSettled
	s.registry.Close(sess.room, KindBlackjack)
	s.emit(Event{
		Type:    EventSessionResolved,
		Room:    sess.room,
		Kind:    KindBlackjack,
		Outcome: &Outcome{Settlements: settlements},
	})

	balance, err := s.ledger.Balance(ctx, sess.playerID)
	if err != nil {
		return nil, err
	}
	return sess.snapshot(outcome, delta, balance), nil
}

// expireBlackjack cancels an abandoned hand and refunds the stake.
func (s *Service) expireBlackjack(ctx context.Context, room string) {
	raw, ok := s.registry.Lookup(room, KindBlackjack)
	if !ok {
		return
	}
	sess := raw.(*BlackjackSession)

	sess.mu.Lock()
	defer sess.mu.Unlock()

	if sess.status != StatusOpen {
		return
	}
	sess.status = StatusCancelled

	if err := s.ledger.AddBalance(ctx, sess.playerID, sess.amount); err != nil {
		log.Printf("failed to refund expired blackjack stake to user %d: %v", sess.playerID, err)
	}
	s.registry.Close(room, KindBlackjack)
	s.emit(Event{Type: EventSessionCancelled, Room: room, Kind: KindBlackjack})
}
