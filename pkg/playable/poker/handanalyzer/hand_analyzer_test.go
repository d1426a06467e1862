package handanalyzer

import (
	"math/rand"
	"testing"

	"github.com/paulhankin/poker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"holdem-server/pkg/deck"
	"holdem-server/pkg/snapshot"
)

func mustEvaluate(t *testing.T, cards string) Score {
	t.Helper()

	score, err := Evaluate(deck.CardsFromString(cards))
	require.NoError(t, err)
	return score
}

func TestEvaluate_categories(t *testing.T) {
	tests := []struct {
		cards string
		hand  Hand
	}{
		{"AS,KS,QS,JS,TS", RoyalFlush},
		{"9H,KH,QH,JH,TH", StraightFlush},
		{"AD,2D,3D,4D,5D", StraightFlush},
		{"7C,7D,7H,7S,2C", FourOfAKind},
		{"7C,7D,7H,2S,2C", FullHouse},
		{"2H,9H,4H,JH,KH", Flush},
		{"9C,TD,JH,QS,KC", Straight},
		{"AC,2D,3H,4S,5C", Straight},
		{"TC,JD,QH,KS,AC", Straight},
		{"7C,7D,7H,2S,3C", ThreeOfAKind},
		{"7C,7D,3H,3S,2C", TwoPair},
		{"7C,7D,3H,4S,2C", OnePair},
		{"AC,7D,3H,4S,2C", HighCard},
	}

	for _, tt := range tests {
		t.Run(tt.cards, func(t *testing.T) {
			assert.Equal(t, tt.hand, mustEvaluate(t, tt.cards).Hand())
		})
	}
}

func TestEvaluate_categoryOrder(t *testing.T) {
	ordered := []string{
		"AC,7D,3H,4S,2C",
		"7C,7D,3H,4S,2C",
		"7C,7D,3H,3S,2C",
		"7C,7D,7H,2S,3C",
		"9C,TD,JH,QS,KC",
		"2H,9H,4H,JH,KH",
		"7C,7D,7H,2S,2C",
		"7C,7D,7H,7S,2C",
		"9H,KH,QH,JH,TH",
		"AS,KS,QS,JS,TS",
	}

	for i := 1; i < len(ordered); i++ {
		assert.Greater(t, mustEvaluate(t, ordered[i]), mustEvaluate(t, ordered[i-1]), ordered[i])
	}
}

func TestEvaluate_aceLowStraight(t *testing.T) {
	a := assert.New(t)

	wheel := mustEvaluate(t, "2C,3D,4H,5S,AC")
	a.Equal(Straight, wheel.Hand())
	a.Less(wheel, mustEvaluate(t, "3C,4D,5H,6S,7C"))
	a.Less(wheel, mustEvaluate(t, "2C,3D,4H,5S,6C"))
	a.Greater(wheel, mustEvaluate(t, "AC,AD,AH,KS,QC"))

	steelWheel := mustEvaluate(t, "2C,3C,4C,5C,AC")
	a.Equal(StraightFlush, steelWheel.Hand())
	a.Less(steelWheel, mustEvaluate(t, "2C,3C,4C,5C,6C"))
}

func TestEvaluate_kickers(t *testing.T) {
	a := assert.New(t)

	// quads, then kicker
	a.Greater(mustEvaluate(t, "8C,8D,8H,8S,3C"), mustEvaluate(t, "7C,7D,7H,7S,AC"))
	a.Greater(mustEvaluate(t, "8C,8D,8H,8S,4C"), mustEvaluate(t, "8C,8D,8H,8S,3C"))

	// full house: trips before pair
	a.Greater(mustEvaluate(t, "3C,3D,3H,2S,2C"), mustEvaluate(t, "2C,2D,2H,AS,AC"))

	// flush compares every card
	a.Greater(mustEvaluate(t, "AH,9H,7H,5H,3H"), mustEvaluate(t, "AH,9H,7H,5H,2H"))

	// trips, two kickers
	a.Greater(mustEvaluate(t, "7C,7D,7H,AS,3C"), mustEvaluate(t, "7C,7D,7H,KS,QC"))
	a.Greater(mustEvaluate(t, "7C,7D,7H,AS,4C"), mustEvaluate(t, "7C,7D,7H,AS,3C"))

	// two pair: high pair, low pair, kicker
	a.Greater(mustEvaluate(t, "KC,KD,3H,3S,2C"), mustEvaluate(t, "QC,QD,JH,JS,AC"))
	a.Greater(mustEvaluate(t, "KC,KD,4H,4S,2C"), mustEvaluate(t, "KC,KD,3H,3S,AC"))
	a.Greater(mustEvaluate(t, "KC,KD,4H,4S,3C"), mustEvaluate(t, "KC,KD,4H,4S,2C"))

	// one pair: three kickers
	a.Greater(mustEvaluate(t, "9C,9D,AH,5S,2C"), mustEvaluate(t, "9C,9D,KH,QS,JC"))
	a.Greater(mustEvaluate(t, "9C,9D,AH,5S,3C"), mustEvaluate(t, "9C,9D,AH,5S,2C"))

	// same ranks, different suits tie
	a.Equal(mustEvaluate(t, "9C,9D,AH,5S,3C"), mustEvaluate(t, "9H,9S,AC,5D,3D"))
}

func TestEvaluate_sevenCards(t *testing.T) {
	a := assert.New(t)

	h, err := New(deck.CardsFromString("AS,KS,2D,QS,JS,TS,2C"))
	a.NoError(err)
	a.Equal(RoyalFlush, h.GetHand())
	a.ElementsMatch(deck.CardsFromString("AS,KS,QS,JS,TS"), h.GetBestCards())

	// the board plays
	a.Equal(mustEvaluate(t, "2C,3D,9S,TS,JS,QS,KS"), mustEvaluate(t, "4H,5H,9S,TS,JS,QS,KS"))

	// best full house out of two trips
	a.Equal(mustEvaluate(t, "7C,7D,7H,6C,6D"), mustEvaluate(t, "7C,7D,7H,6C,6D,6H,2S"))
}

func TestEvaluate_orderIndependent(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for i := 0; i < 200; i++ {
		d := deck.Shuffled(int64(i))
		cards := d.Cards[:7].Clone()
		expected, err := Evaluate(cards)
		assert.NoError(t, err)

		r.Shuffle(len(cards), func(i, j int) {
			cards[i], cards[j] = cards[j], cards[i]
		})

		actual, err := Evaluate(cards)
		assert.NoError(t, err)
		assert.Equal(t, expected, actual, cards.String())
	}
}

func TestEvaluate_notEnoughCards(t *testing.T) {
	_, err := Evaluate(deck.CardsFromString("AS,KS,QS,JS"))
	assert.Equal(t, ErrNotEnoughCards, err)
}

func TestHandName(t *testing.T) {
	assert.Equal(t, "Royal flush", HandName(mustEvaluate(t, "AS,KS,QS,JS,TS")))
	assert.Equal(t, "Two pair", HandName(mustEvaluate(t, "7C,7D,3H,3S,2C")))
	assert.Equal(t, "High card", HandName(mustEvaluate(t, "AC,7D,3H,4S,2C")))
	assert.Equal(t, "Unknown hand (42)", Hand(42).String())
	assert.False(t, Hand(-1).IsValid())
	assert.True(t, RoyalFlush.IsValid())
}

func toReferenceHand(t *testing.T, cards deck.Hand) *[7]poker.Card {
	t.Helper()

	suits := map[deck.Suit]poker.Suit{
		deck.Clubs:    poker.Club,
		deck.Diamonds: poker.Diamond,
		deck.Hearts:   poker.Heart,
		deck.Spades:   poker.Spade,
	}

	var hand [7]poker.Card
	for i, card := range cards {
		c, err := poker.MakeCard(suits[card.Suit], poker.Rank(card.AceLowRank()))
		require.NoError(t, err)
		hand[i] = c
	}

	return &hand
}

func sign(n int) int {
	switch {
	case n > 0:
		return 1
	case n < 0:
		return -1
	}

	return 0
}

// compare against an independent evaluator over random seven card hands
func TestEvaluate_matchesReferenceEvaluator(t *testing.T) {
	for i := 0; i < 500; i++ {
		d := deck.Shuffled(int64(1000 + i))
		left := d.Cards[0:7].Clone()
		right := d.Cards[7:14].Clone()

		leftScore, err := Evaluate(left)
		require.NoError(t, err)
		rightScore, err := Evaluate(right)
		require.NoError(t, err)

		expected := sign(int(poker.Eval7(toReferenceHand(t, left))) - int(poker.Eval7(toReferenceHand(t, right))))
		assert.Equal(t, expected, sign(int(leftScore)-int(rightScore)), "%s vs %s", left, right)
	}
}

func TestHandAnalyzer_snapshot(t *testing.T) {
	type analyzed struct {
		Cards     string    `json:"cards"`
		Hand      string    `json:"hand"`
		Score     Score     `json:"score"`
		BestCards deck.Hand `json:"bestCards"`
	}

	hands := []string{
		"AS,KS,QS,JS,TS,2C,3D",
		"AD,2D,3D,4D,5D,KC,KH",
		"7C,7D,7H,2S,2C,2D,9S",
		"9C,TD,JH,QS,KC,KD,2H",
		"7C,7D,3H,3S,2C,2D,AS",
		"AC,7D,3H,4S,9C,JD,QH",
	}

	results := make([]analyzed, 0, len(hands))
	for _, cards := range hands {
		h, err := New(deck.CardsFromString(cards))
		require.NoError(t, err)

		results = append(results, analyzed{
			Cards:     cards,
			Hand:      h.GetHand().String(),
			Score:     h.GetStrength(),
			BestCards: h.GetBestCards(),
		})
	}

	snapshot.ValidateSnapshot(t, results)
}

func Test_straightHigh(t *testing.T) {
	assert.Equal(t, 5, straightHigh([5]int{deck.Ace, 5, 4, 3, 2}))
	assert.Equal(t, deck.Ace, straightHigh([5]int{deck.Ace, deck.King, deck.Queen, deck.Jack, deck.Ten}))
	assert.Equal(t, 0, straightHigh([5]int{deck.Ace, deck.King, 4, 3, 2}))
}
