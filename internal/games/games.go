package games

import (
	"errors"
	"time"

	"github.com/brycec/wagerbot/internal/ledger"
)

// Kind identifies a game type. At most one non-terminal session of a given
// kind may exist per room at a time.
type Kind string

const (
	KindRoulette  Kind = "roulette"
	KindJackpot   Kind = "jackpot"
	KindBlackjack Kind = "blackjack"
)

// Status is a session's lifecycle state. Transitions are one-way:
// Open -> Resolving -> Settled, or Open -> Cancelled.
type Status int

const (
	StatusOpen Status = iota
	StatusResolving
	StatusSettled
	StatusCancelled
)

var (
	ErrSessionConflict   = errors.New("a game of this kind is already running in this channel")
	ErrSessionNotFound   = errors.New("no active game of this kind in this channel")
	ErrNotYourSession    = errors.New("this is not your game")
	ErrAlreadyJoined     = errors.New("you already joined this game")
	ErrInvalidSide       = errors.New("unknown side")
	ErrInvalidDiceTarget = errors.New("target must be 3, 4 or 5")
)

const (
	defaultRouletteWindow   = 30 * time.Second
	defaultBlackjackTimeout = 60 * time.Second
)

// Service owns all active wager sessions and settles them against the ledger.
type Service struct {
	ledger   ledger.Ledger
	registry *Registry
	rng      Rand
	events   EventSink

	rouletteWindow   time.Duration
	blackjackTimeout time.Duration
}

// NewService creates a game service. A nil rng falls back to the process-wide
// math/rand source; a nil sink discards events.
func NewService(l ledger.Ledger, rng Rand, sink EventSink) *Service {
	if rng == nil {
		rng = SystemRand()
	}
	if sink == nil {
		sink = NopSink{}
	}
	return &Service{
		ledger:           l,
		registry:         NewRegistry(),
		rng:              rng,
		events:           sink,
		rouletteWindow:   defaultRouletteWindow,
		blackjackTimeout: defaultBlackjackTimeout,
	}
}

// Ledger exposes the backing ledger for callers that need direct balance
// operations (transfers, admin commands, stats).
func (s *Service) Ledger() ledger.Ledger {
	return s.ledger
}

func (s *Service) emit(e Event) {
	s.events.HandleGameEvent(e)
}
