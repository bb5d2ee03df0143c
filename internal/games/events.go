package games

import "github.com/brycec/wagerbot/internal/ledger"

type EventType string

const (
	EventSessionCreated   EventType = "session_created"
	EventSessionUpdated   EventType = "session_updated"
	EventSessionResolved  EventType = "session_resolved"
	EventSessionCancelled EventType = "session_cancelled"
)

// Event is emitted by the core for the display layer to render. Synchronous
// command paths usually render their own reply and only the asynchronous
// timer-driven resolutions matter to a sink.
type Event struct {
	Type    EventType
	Room    string
	Kind    Kind
	Outcome *Outcome
}

// Outcome describes a resolved session: the ledger deltas that were applied
// plus game-specific detail for rendering. Produced once, then discarded.
type Outcome struct {
	Settlements []ledger.Settlement

	Roulette *RouletteOutcome
	Jackpot  *JackpotOutcome
}

type RouletteOutcome struct {
	Color  string
	Number int
	Stake  int64
	// Winning and losing bets in the order they were placed.
	Winners []RouletteBet
	Losers  []RouletteBet
}

type JackpotOutcome struct {
	WinnerID           int64
	Pool               int64
	Contributors       int
	WinnerContribution int64
}

// EventSink receives session lifecycle events. Implementations must not call
// back into the Service from the same goroutine that delivered the event.
type EventSink interface {
	HandleGameEvent(Event)
}

// NopSink discards all events.
type NopSink struct{}

func (NopSink) HandleGameEvent(Event) {}
