package games

import "strconv"

// Card is a single playing card.
type Card struct {
	Rank string
	Suit string
}

func (c Card) String() string {
	return c.Rank + c.Suit
}

var (
	suits = []string{"♠", "♥", "♦", "♣"}
	ranks = []string{"2", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K", "A"}
)

// Deck is an ordered 52-card sequence consumed from the front. It is owned
// exclusively by one blackjack session and never reshuffled mid-hand.
type Deck struct {
	cards []Card
}

// NewDeck builds a full deck shuffled once with the given source.
func NewDeck(rng Rand) *Deck {
	cards := make([]Card, 0, len(suits)*len(ranks))
	for _, suit := range suits {
		for _, rank := range ranks {
			cards = append(cards, Card{Rank: rank, Suit: suit})
		}
	}
	rng.Shuffle(len(cards), func(i, j int) {
		cards[i], cards[j] = cards[j], cards[i]
	})
	return &Deck{cards: cards}
}

// Deal removes and returns the top card.
func (d *Deck) Deal() Card {
	card := d.cards[0]
	d.cards = d.cards[1:]
	return card
}

// Remaining reports how many cards are left.
func (d *Deck) Remaining() int {
	return len(d.cards)
}

// HandValue scores a blackjack hand: number cards at face value, J/Q/K at 10,
// aces at 11 downgraded to 1 one at a time while the total is over 21.
func HandValue(hand []Card) int {
	value := 0
	aces := 0
	for _, card := range hand {
		switch card.Rank {
		case "J", "Q", "K":
			value += 10
		case "A":
			aces++
			value += 11
		default:
			n, _ := strconv.Atoi(card.Rank)
			value += n
		}
	}
	for value > 21 && aces > 0 {
		value -= 10
		aces--
	}
	return value
}
