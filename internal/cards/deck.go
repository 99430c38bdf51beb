package cards

import (
	"errors"
	"math/rand"
)

// DeckSize is the number of cards in a standard deck.
const DeckSize = 52

// ErrEmptyDeck is returned by Draw when no cards remain. A standard
// single-deck round can never legitimately exhaust 52 cards, so callers
// treat this as fatal to the round rather than reshuffling behind the
// player's back.
var ErrEmptyDeck = errors.New("cards: deck is empty")

var (
	suits = []Suit{Clubs, Diamonds, Hearts, Spades}
	ranks = []Rank{Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King, Ace}
)

// Deck is an ordered draw pile. It is owned by a single round and is not
// safe for concurrent use.
type Deck struct {
	cards []Card
}

// NewDeck returns the 52 standard cards in canonical suit-major order.
// No randomness is involved; call Shuffle before drawing.
func NewDeck() *Deck {
	d := &Deck{
		cards: make([]Card, 0, DeckSize),
	}

	for _, suit := range suits {
		for _, rank := range ranks {
			d.cards = append(d.cards, Card{Rank: rank, Suit: suit})
		}
	}

	return d
}

// From builds a deck holding exactly the given cards, top first. It is
// how fixed deals are set up for tests and replays.
func From(c ...Card) *Deck {
	return &Deck{cards: append([]Card(nil), c...)}
}

// Shuffle permutes the pile using the supplied source, so full-round
// outcomes are reproducible from a seed.
func (d *Deck) Shuffle(r *rand.Rand) {
	r.Shuffle(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
}

// Draw removes and returns the top card.
func (d *Deck) Draw() (Card, error) {
	if len(d.cards) == 0 {
		return Card{}, ErrEmptyDeck
	}

	card := d.cards[0]
	d.cards = d.cards[1:]
	return card, nil
}

// Remaining reports how many cards are left in the pile.
func (d *Deck) Remaining() int {
	return len(d.cards)
}
