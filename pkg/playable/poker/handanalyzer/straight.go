package handanalyzer

import "holdem-server/pkg/deck"

// straightHigh returns the high card of a five card straight, or 0 if the ranks do not form one.
// ranks must be sorted descending. The wheel (A-2-3-4-5) is a five-high straight.
func straightHigh(ranks [5]int) int {
	if ranks[0] == deck.Ace && ranks[1] == 5 && ranks[2] == 4 && ranks[3] == 3 && ranks[4] == 2 {
		return 5
	}

	for i := 1; i < 5; i++ {
		if ranks[i-1]-ranks[i] != 1 {
			return 0
		}
	}

	return ranks[0]
}
