package cards

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDeckHasFiftyTwoUniqueCards(t *testing.T) {
	d := NewDeck()
	require.Equal(t, DeckSize, d.Remaining())

	seen := make(map[Card]bool, DeckSize)
	for {
		card, err := d.Draw()
		if err != nil {
			break
		}
		assert.False(t, seen[card], "duplicate card %s", card)
		seen[card] = true
	}

	assert.Len(t, seen, DeckSize)
}

func TestNewDeckCanonicalOrder(t *testing.T) {
	d := NewDeck()

	first, err := d.Draw()
	require.NoError(t, err)
	assert.Equal(t, Card{Rank: Two, Suit: Clubs}, first)

	// Order is deterministic until a shuffle.
	a, b := NewDeck(), NewDeck()
	for a.Remaining() > 0 {
		ca, _ := a.Draw()
		cb, _ := b.Draw()
		assert.Equal(t, ca, cb)
	}
}

func drainDeck(d *Deck) []Card {
	out := make([]Card, 0, d.Remaining())
	for {
		card, err := d.Draw()
		if err != nil {
			return out
		}
		out = append(out, card)
	}
}

func TestShufflePreservesTheMultiset(t *testing.T) {
	shuffled := NewDeck()
	shuffled.Shuffle(rand.New(rand.NewSource(1)))
	require.Equal(t, DeckSize, shuffled.Remaining())

	canonical := drainDeck(NewDeck())
	got := drainDeck(shuffled)

	assert.ElementsMatch(t, canonical, got)
	assert.NotEqual(t, canonical, got, "order should change")
}

func TestShuffleIsReproducibleFromSeed(t *testing.T) {
	a, b := NewDeck(), NewDeck()
	a.Shuffle(rand.New(rand.NewSource(7)))
	b.Shuffle(rand.New(rand.NewSource(7)))

	assert.Equal(t, drainDeck(a), drainDeck(b))
}

func TestDrawExhaustsAtFiftyTwo(t *testing.T) {
	d := NewDeck()
	d.Shuffle(rand.New(rand.NewSource(3)))

	for i := 0; i < DeckSize; i++ {
		_, err := d.Draw()
		require.NoError(t, err)
	}

	assert.Equal(t, 0, d.Remaining())
	_, err := d.Draw()
	assert.ErrorIs(t, err, ErrEmptyDeck)
}

func TestFromDrawsInGivenOrder(t *testing.T) {
	ace := Card{Rank: Ace, Suit: Spades}
	ten := Card{Rank: Ten, Suit: Hearts}

	d := From(ace, ten)
	require.Equal(t, 2, d.Remaining())

	got, err := d.Draw()
	require.NoError(t, err)
	assert.Equal(t, ace, got)

	got, err = d.Draw()
	require.NoError(t, err)
	assert.Equal(t, ten, got)
}

func TestCardString(t *testing.T) {
	assert.Equal(t, "A♠", Card{Rank: Ace, Suit: Spades}.String())
	assert.Equal(t, "10♦", Card{Rank: Ten, Suit: Diamonds}.String())
	assert.Equal(t, "K♥", Card{Rank: King, Suit: Hearts}.String())
	assert.Equal(t, "2♣", Card{Rank: Two, Suit: Clubs}.String())
}

func TestRankValue(t *testing.T) {
	assert.Equal(t, 11, Ace.Value())
	assert.Equal(t, 10, King.Value())
	assert.Equal(t, 10, Queen.Value())
	assert.Equal(t, 10, Jack.Value())
	assert.Equal(t, 10, Ten.Value())
	assert.Equal(t, 2, Two.Value())
	assert.Equal(t, 9, Nine.Value())
}
