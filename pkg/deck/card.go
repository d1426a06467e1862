package deck

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Suit represents a card suit
type Suit byte

// suit constants
const (
	Clubs    Suit = 'C'
	Diamonds Suit = 'D'
	Hearts   Suit = 'H'
	Spades   Suit = 'S'
)

// Suits is every suit in deck order
var Suits = [4]Suit{Clubs, Diamonds, Hearts, Spades}

// face cards
const (
	Ten     = 10
	Jack    = 11
	Queen   = 12
	King    = 13
	Ace     = 14
	HighAce = Ace
	LowAce  = 1
)

const rankChars = "23456789TJQKA"

// Card is an individual playing card
type Card struct {
	Rank int
	Suit Suit
}

// String returns the two character token, rank then suit (i.e., "AS", "TD")
func (c Card) String() string {
	if c.Rank < 2 || c.Rank > Ace {
		return "??"
	}

	return string([]byte{rankChars[c.Rank-2], byte(c.Suit)})
}

// Equal returns true if the cards are equal (matches suit and rank)
func (c Card) Equal(card Card) bool {
	return c.Suit == card.Suit && c.Rank == card.Rank
}

// AceLowRank return the rank where Ace is considered low instead of high
func (c Card) AceLowRank() int {
	if c.Rank == Ace {
		return LowAce
	}

	return c.Rank
}

// MarshalJSON encodes the card as its token
func (c Card) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

// UnmarshalJSON decodes a card token
func (c *Card) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}

	card, err := ParseCard(s)
	if err != nil {
		return err
	}

	*c = card
	return nil
}

// ParseCard parses a token in the format of <rank><suit>, where rank is one of 23456789TJQKA and
// suit is one of CDHS. Parsing is case-insensitive.
func ParseCard(s string) (Card, error) {
	if len(s) != 2 {
		return Card{}, fmt.Errorf("could not parse card: %q", s)
	}

	s = strings.ToUpper(s)
	rank := strings.IndexByte(rankChars, s[0])
	if rank < 0 {
		return Card{}, fmt.Errorf("could not parse card rank: %q", s)
	}

	suit := Suit(s[1])
	switch suit {
	case Clubs, Diamonds, Hearts, Spades:
	default:
		return Card{}, fmt.Errorf("could not parse card suit: %q", s)
	}

	return Card{Rank: rank + 2, Suit: suit}, nil
}

// CardFromString returns a Card from the string.
// This panics if the card cannot be parsed, so it should only be used with known values.
func CardFromString(s string) Card {
	card, err := ParseCard(s)
	if err != nil {
		panic(err)
	}

	return card
}

// CardsFromString will returns a slice of cards from a comma separated list (i.e., "AS,KD,2C")
func CardsFromString(s string) Hand {
	if s == "" {
		return Hand{}
	}

	cardStrings := strings.Split(s, ",")
	cards := make(Hand, len(cardStrings))
	for i, card := range cardStrings {
		cards[i] = CardFromString(strings.TrimSpace(card))
	}

	return cards
}
