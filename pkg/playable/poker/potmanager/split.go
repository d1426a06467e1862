package potmanager

// Split divides amount between n winners.
// Any odd chips go one at a time to the winners in order, so the first winner (in seat order)
// receives the first odd chip. The shares always add up to amount.
func Split(amount, n int) []int {
	if n <= 0 {
		return nil
	}

	shares := make([]int, n)
	share := amount / n
	remainder := amount % n
	for i := range shares {
		shares[i] = share
		if i < remainder {
			shares[i]++
		}
	}

	return shares
}
