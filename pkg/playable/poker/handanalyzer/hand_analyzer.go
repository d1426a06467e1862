package handanalyzer

import (
	"errors"
	"sort"

	"holdem-server/pkg/deck"
)

// ErrNotEnoughCards is returned when fewer than five cards are evaluated
var ErrNotEnoughCards = errors.New("at least five cards are required")

// handSize is the number of cards that make up a poker hand
const handSize = 5

// the category sits above five 4-bit rank slots
const categoryShift = 20

// Score is a totally ordered hand strength. A higher score always beats a lower score,
// and equal scores tie.
//
// Bits 20 and up hold the Hand category; the five nibbles below hold tie-break ranks in
// descending significance. Ranks are encoded as 0 (deuce) through 12 (ace).
type Score int

// Hand returns the category of the score
func (s Score) Hand() Hand {
	return Hand(int(s) >> categoryShift)
}

func (s Score) String() string {
	return s.Hand().String()
}

// HandName returns the display label for a score
func HandName(score Score) string {
	return score.Hand().String()
}

// HandAnalyzer finds the best five card hand out of a larger set of cards
type HandAnalyzer struct {
	cards    deck.Hand
	best     deck.Hand
	strength Score
}

// New will return a new HandAnalyzer instance
func New(cards deck.Hand) (*HandAnalyzer, error) {
	if len(cards) < handSize {
		return nil, ErrNotEnoughCards
	}

	h := &HandAnalyzer{
		cards:    cards.Clone(),
		strength: -1,
	}

	h.analyzeHand()
	return h, nil
}

// Evaluate scores the best five card hand out of the cards (seven in Hold'em).
// The result does not depend on the order of the cards.
func Evaluate(cards deck.Hand) (Score, error) {
	h, err := New(cards)
	if err != nil {
		return 0, err
	}

	return h.GetStrength(), nil
}

// GetHand will return the category of the best possible hand
func (h *HandAnalyzer) GetHand() Hand {
	return h.strength.Hand()
}

// GetStrength returns the score of the best possible hand
func (h *HandAnalyzer) GetStrength() Score {
	return h.strength
}

// GetBestCards returns the five cards that make up the best hand
func (h *HandAnalyzer) GetBestCards() deck.Hand {
	return h.best.Clone()
}

// analyzeHand walks every five card subset and keeps the strongest
func (h *HandAnalyzer) analyzeHand() {
	n := len(h.cards)
	var subset [handSize]deck.Card

	var walk func(start, depth int)
	walk = func(start, depth int) {
		if depth == handSize {
			if s := scoreFive(subset); s > h.strength {
				h.strength = s
				h.best = append(deck.Hand{}, subset[:]...)
			}
			return
		}

		for i := start; i <= n-(handSize-depth); i++ {
			subset[depth] = h.cards[i]
			walk(i+1, depth+1)
		}
	}

	walk(0, 0)
}

type rankCount struct {
	rank  int
	count int
}

// scoreFive scores exactly five cards
func scoreFive(cards [handSize]deck.Card) Score {
	var ranks [handSize]int
	isFlush := true
	for i, card := range cards {
		ranks[i] = card.Rank
		if card.Suit != cards[0].Suit {
			isFlush = false
		}
	}

	sort.Sort(sort.Reverse(sort.IntSlice(ranks[:])))
	high := straightHigh(ranks)

	// group by rank, larger groups first, then higher ranks
	groups := make([]rankCount, 0, handSize)
	for _, rank := range ranks {
		if len(groups) > 0 && groups[len(groups)-1].rank == rank {
			groups[len(groups)-1].count++
			continue
		}

		groups = append(groups, rankCount{rank: rank, count: 1})
	}

	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].count > groups[j].count
	})

	switch {
	case isFlush && high == deck.Ace:
		return pack(RoyalFlush)
	case isFlush && high > 0:
		return pack(StraightFlush, high)
	case groups[0].count == 4:
		return pack(FourOfAKind, groups[0].rank, groups[1].rank)
	case groups[0].count == 3 && groups[1].count == 2:
		return pack(FullHouse, groups[0].rank, groups[1].rank)
	case isFlush:
		return pack(Flush, ranks[:]...)
	case high > 0:
		return pack(Straight, high)
	case groups[0].count == 3:
		return pack(ThreeOfAKind, groups[0].rank, groups[1].rank, groups[2].rank)
	case groups[0].count == 2 && groups[1].count == 2:
		return pack(TwoPair, groups[0].rank, groups[1].rank, groups[2].rank)
	case groups[0].count == 2:
		return pack(OnePair, groups[0].rank, groups[1].rank, groups[2].rank, groups[3].rank)
	}

	return pack(HighCard, ranks[:]...)
}

// pack encodes the category and up to five ranks, most significant first
func pack(hand Hand, ranks ...int) Score {
	score := int(hand) << categoryShift
	shift := categoryShift
	for _, rank := range ranks {
		shift -= 4
		score |= (rank - 2) << shift
	}

	return Score(score)
}
