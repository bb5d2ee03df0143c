package games

import "testing"

func TestNewDeckComplete(t *testing.T) {
	deck := NewDeck(SystemRand())

	if deck.Remaining() != 52 {
		t.Fatalf("expected 52 cards, got %d", deck.Remaining())
	}

	seen := make(map[Card]bool)
	for deck.Remaining() > 0 {
		card := deck.Deal()
		if seen[card] {
			t.Errorf("duplicate card %s", card)
		}
		seen[card] = true
	}
	if len(seen) != 52 {
		t.Errorf("expected 52 unique cards, got %d", len(seen))
	}
}

func TestHandValue(t *testing.T) {
	tests := []struct {
		name  string
		ranks []string
		want  int
	}{
		{"number cards", []string{"5", "5", "5"}, 15},
		{"face cards", []string{"K", "Q"}, 20},
		{"blackjack", []string{"A", "K"}, 21},
		{"two aces", []string{"A", "A", "9"}, 21},
		{"ace downgrades", []string{"A", "9", "5"}, 15},
		{"all aces", []string{"A", "A", "A", "A"}, 14},
		{"hard bust", []string{"K", "Q", "J"}, 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hand := make([]Card, len(tt.ranks))
			for i, r := range tt.ranks {
				hand[i] = Card{Rank: r, Suit: "♠"}
			}
			if got := HandValue(hand); got != tt.want {
				t.Errorf("expected %d, got %d", tt.want, got)
			}
		})
	}
}
