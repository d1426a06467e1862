package handanalyzer

import "fmt"

// Hand is a hand category, from high card up to royal flush
// Categories compare in the same order as the hands they name.
type Hand int

// Hand categories
const (
	HighCard Hand = iota
	OnePair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
	RoyalFlush
)

var handNames = [...]string{
	HighCard:      "High card",
	OnePair:       "Pair",
	TwoPair:       "Two pair",
	ThreeOfAKind:  "Three of a kind",
	Straight:      "Straight",
	Flush:         "Flush",
	FullHouse:     "Full house",
	FourOfAKind:   "Four of a kind",
	StraightFlush: "Straight flush",
	RoyalFlush:    "Royal flush",
}

// IsValid returns true if h is a known category
func (h Hand) IsValid() bool {
	return h >= HighCard && h <= RoyalFlush
}

// String returns the display name of the category
func (h Hand) String() string {
	if !h.IsValid() {
		return fmt.Sprintf("Unknown hand (%d)", int(h))
	}

	return handNames[h]
}
