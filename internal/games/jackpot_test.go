package games

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/brycec/wagerbot/internal/ledger"
	"github.com/brycec/wagerbot/internal/wager"
)

func TestPickWinner(t *testing.T) {
	contributions := []*contribution{
		{userID: 1, total: 70},
		{userID: 2, total: 30},
	}

	tests := []struct {
		draw int64
		want int64
	}{
		{0, 1},
		{50, 1},
		{69, 1},
		{70, 2},
		{85, 2},
		{99, 2},
	}

	for _, tt := range tests {
		winner := pickWinner(contributions, tt.draw)
		if winner.userID != tt.want {
			t.Errorf("draw %d: expected user %d, got %d", tt.draw, tt.want, winner.userID)
		}
	}

	if pickWinner(nil, 0) != nil {
		t.Error("expected nil winner for no contributions")
	}
}

func TestJackpotLifecycle(t *testing.T) {
	ctx := context.Background()
	// Draw 60 out of [0,150): host holds [0,50), user 2 holds [50,150).
	svc, mem, sink := newTestService(&scriptRand{int63: []int64{60}})
	mem.SetBalance(ctx, 1, 100)
	mem.SetBalance(ctx, 2, 100)

	sess, err := svc.StartJackpot(ctx, "room", 1, 50, time.Hour)
	if err != nil {
		t.Fatalf("StartJackpot returned error: %v", err)
	}

	// The initiator is the first contributor
	b1, _ := mem.Balance(ctx, 1)
	if b1 != 50 {
		t.Fatalf("expected host debited to 50, got %d", b1)
	}
	if sess.Pool() != 50 || sess.Contributors() != 1 {
		t.Fatalf("expected pool=50 contributors=1, got %d/%d", sess.Pool(), sess.Contributors())
	}

	// Rejoining stacks onto the same entry
	if _, err := svc.JoinJackpot(ctx, "room", 2); err != nil {
		t.Fatalf("first join failed: %v", err)
	}
	if _, err := svc.JoinJackpot(ctx, "room", 2); err != nil {
		t.Fatalf("second join failed: %v", err)
	}
	if sess.Pool() != 150 || sess.Contributors() != 2 {
		t.Fatalf("expected pool=150 contributors=2, got %d/%d", sess.Pool(), sess.Contributors())
	}
	if got := sess.ContributionOf(2); got != 100 {
		t.Fatalf("expected user 2 contribution 100, got %d", got)
	}

	svc.resolveJackpot(ctx, "room")

	b1, _ = mem.Balance(ctx, 1)
	b2, _ := mem.Balance(ctx, 2)
	if b1 != 50 {
		t.Errorf("expected losing host at 50, got %d", b1)
	}
	if b2 != 150 {
		t.Errorf("expected winner paid the pool to 150, got %d", b2)
	}

	s1, _ := mem.UserStats(ctx, 1)
	s2, _ := mem.UserStats(ctx, 2)
	if s1.Losses != 1 || s2.Wins != 1 {
		t.Errorf("expected loss/win recorded, got losses=%d wins=%d", s1.Losses, s2.Wins)
	}

	resolved := sink.byType(EventSessionResolved)
	if len(resolved) != 1 {
		t.Fatalf("expected one resolved event, got %d", len(resolved))
	}
	outcome := resolved[0].Outcome.Jackpot
	if outcome.WinnerID != 2 || outcome.Pool != 150 || outcome.WinnerContribution != 100 {
		t.Errorf("unexpected outcome %+v", outcome)
	}

	if svc.registry.Len() != 0 {
		t.Error("expected registry to be empty after resolution")
	}
}

// stallLedger blocks the host's first debit until released, holding the start
// mid-flight so joins can interleave with it.
type stallLedger struct {
	*ledger.Memory
	hostID  int64
	once    sync.Once
	entered chan struct{}
	release chan struct{}
}

func (l *stallLedger) Debit(ctx context.Context, userID, amount int64) (bool, error) {
	if userID == l.hostID {
		l.once.Do(func() {
			close(l.entered)
			<-l.release
		})
	}
	return l.Memory.Debit(ctx, userID, amount)
}

func TestJackpotJoinDuringStartKeepsBothStakes(t *testing.T) {
	ctx := context.Background()
	mem := ledger.NewMemory()
	gate := &stallLedger{
		Memory:  mem,
		hostID:  1,
		entered: make(chan struct{}),
		release: make(chan struct{}),
	}
	svc := NewService(gate, &scriptRand{}, &recordSink{})

	mem.SetBalance(ctx, 1, 100)
	mem.SetBalance(ctx, 2, 100)

	started := make(chan error, 1)
	go func() {
		_, err := svc.StartJackpot(ctx, "room", 1, 50, time.Hour)
		started <- err
	}()
	<-gate.entered

	// The session must stay invisible until the start completes; a join
	// landing in this window either fails or sees the host already in.
	joined := make(chan error, 1)
	go func() {
		deadline := time.Now().Add(5 * time.Second)
		for time.Now().Before(deadline) {
			_, err := svc.JoinJackpot(ctx, "room", 2)
			if err == nil {
				joined <- nil
				return
			}
			if !errors.Is(err, ErrSessionNotFound) {
				joined <- err
				return
			}
			time.Sleep(time.Millisecond)
		}
		joined <- errors.New("join never succeeded")
	}()

	time.Sleep(10 * time.Millisecond)
	close(gate.release)

	if err := <-started; err != nil {
		t.Fatalf("StartJackpot returned error: %v", err)
	}
	if err := <-joined; err != nil {
		t.Fatalf("join failed: %v", err)
	}

	raw, ok := svc.registry.Lookup("room", KindJackpot)
	if !ok {
		t.Fatal("expected a live session after start and join")
	}
	sess := raw.(*JackpotSession)
	if sess.Pool() != 100 || sess.Contributors() != 2 {
		t.Fatalf("expected pool=100 contributors=2, got %d/%d", sess.Pool(), sess.Contributors())
	}
	b1, _ := mem.Balance(ctx, 1)
	b2, _ := mem.Balance(ctx, 2)
	if b1 != 50 || b2 != 50 {
		t.Errorf("expected both stakes collected, got %d and %d", b1, b2)
	}
}

func TestJackpotStartValidation(t *testing.T) {
	ctx := context.Background()
	svc, mem, _ := newTestService(&scriptRand{})
	mem.SetBalance(ctx, 1, 10)

	if _, err := svc.StartJackpot(ctx, "room", 1, 0, time.Hour); !errors.Is(err, wager.ErrInvalidAmount) {
		t.Errorf("expected ErrInvalidAmount, got %v", err)
	}
	if _, err := svc.StartJackpot(ctx, "room", 1, 50, 0); !errors.Is(err, wager.ErrInvalidDuration) {
		t.Errorf("expected ErrInvalidDuration, got %v", err)
	}

	// A failed debit releases the room for the next attempt
	if _, err := svc.StartJackpot(ctx, "room", 1, 50, time.Hour); !errors.Is(err, wager.ErrInsufficientFunds) {
		t.Errorf("expected ErrInsufficientFunds, got %v", err)
	}
	if svc.registry.Len() != 0 {
		t.Error("expected registry released after failed start")
	}

	mem.SetBalance(ctx, 1, 100)
	if _, err := svc.StartJackpot(ctx, "room", 1, 50, time.Hour); err != nil {
		t.Errorf("expected start to succeed after failed attempt, got %v", err)
	}
}

func TestJackpotJoinAfterResolve(t *testing.T) {
	ctx := context.Background()
	svc, mem, _ := newTestService(&scriptRand{})
	mem.SetBalance(ctx, 1, 100)
	mem.SetBalance(ctx, 2, 100)

	if _, err := svc.StartJackpot(ctx, "room", 1, 50, time.Hour); err != nil {
		t.Fatalf("StartJackpot returned error: %v", err)
	}
	svc.resolveJackpot(ctx, "room")

	if _, err := svc.JoinJackpot(ctx, "room", 2); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("expected ErrSessionNotFound, got %v", err)
	}

	// Sole contributor takes back the whole pool
	b1, _ := mem.Balance(ctx, 1)
	if b1 != 100 {
		t.Errorf("expected sole contributor restored to 100, got %d", b1)
	}
}
