package deck

import (
	"errors"
	"hash/fnv"
	"strconv"
	"time"

	"holdem-server/internal/rng"
)

// ErrEndOfDeck is an error when Draw() is attempted and there are no more cards
var ErrEndOfDeck = errors.New("end of deck reached")

// Deck represents a playing deck
type Deck struct {
	Cards Hand `json:"cards"`
	seed  int64
	rng   rng.Generator
}

// New returns a new deck of cards.
// Important! this deck is unshuffled. You must call the Shuffle() method to shuffle the cards
func New() *Deck {
	d := &Deck{
		seed: -1,
	}

	d.buildDeck()
	return d
}

// Shuffled returns a deck shuffled with the given seed
func Shuffled(seed int64) *Deck {
	d := New()
	d.Shuffle(seed)
	return d
}

func (d *Deck) buildDeck() {
	cards := make(Hand, 0, 52)
	for _, suit := range Suits {
		for rank := 2; rank <= Ace; rank++ {
			cards = append(cards, Card{
				Rank: rank,
				Suit: suit,
			})
		}
	}

	d.Cards = cards
}

// SeedFor derives a shuffle seed from the room, the hand counter and a timestamp.
// Including the hand counter and the time keeps a room from reusing a seed across hands.
func SeedFor(roomID string, hand int, at time.Time) int64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(roomID))
	_, _ = h.Write([]byte{'-'})
	_, _ = h.Write([]byte(strconv.Itoa(hand)))
	_, _ = h.Write([]byte{'-'})
	_, _ = h.Write([]byte(strconv.FormatInt(at.UnixNano(), 10)))

	return int64(h.Sum64() & (1<<63 - 1))
}

// Shuffle will shuffle a fresh set of 52 cards with a Fisher-Yates shuffle.
// The same seed always produces the same order.
func (d *Deck) Shuffle(seed int64) {
	// we always want to shuffle from an unshuffled deck
	d.buildDeck()
	d.seed = seed
	d.rng = rng.New(seed)

	for j := len(d.Cards) - 1; j > 0; j-- {
		i := d.rng.Intn(j + 1)

		d.Cards[i], d.Cards[j] = d.Cards[j], d.Cards[i]
	}
}

// GetSeed returns the seed used to shuffle the deck
func (d *Deck) GetSeed() int64 {
	return d.seed
}

// Draw will draw the next card
// If there are no more cards, an ErrEndOfDeck is returned
func (d *Deck) Draw() (Card, error) {
	if len(d.Cards) == 0 {
		return Card{}, ErrEndOfDeck
	}

	card := d.Cards[0]
	d.Cards = d.Cards[1:]

	return card, nil
}

// RemoveCards strips cards that have already left the deck
func (d *Deck) RemoveCards(cards Hand) {
	if len(cards) == 0 {
		return
	}

	remaining := make(Hand, 0, len(d.Cards))
	for _, card := range d.Cards {
		if !cards.HasCard(card) {
			remaining = append(remaining, card)
		}
	}

	d.Cards = remaining
}

// CanDraw returns true if there are {want} cards left in the deck
func (d *Deck) CanDraw(want int) bool {
	return len(d.Cards) >= want
}

// CardsLeft returns the number of cards left in the deck
func (d *Deck) CardsLeft() int {
	return len(d.Cards)
}
