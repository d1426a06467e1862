package potmanager

// Contribution is how much a participant put into the pot over the whole hand
type Contribution struct {
	ParticipantID string
	Amount        int
}

// Pot is an amount and the participants who may contest it
type Pot struct {
	Amount int `json:"amount"`
	// Eligible is in seat order
	Eligible []string `json:"eligible"`
}

// IsEligible returns true if the participant may contest the pot
func (p *Pot) IsEligible(id string) bool {
	for _, e := range p.Eligible {
		if e == id {
			return true
		}
	}

	return false
}

// Pots is a collection of pots, ordered from the smallest stake to the largest
type Pots []*Pot

// Total returns the combined total of all pots
func (p Pots) Total() int {
	total := 0
	for _, pot := range p {
		total += pot.Amount
	}

	return total
}

// Calculate splits the contributions into pots.
// It repeatedly takes the smallest positive contribution, forms a pot of that amount from every
// participant who still has chips in, and subtracts it from each of them, until nothing is left.
// contributions must be in seat order.
func Calculate(contributions []Contribution) Pots {
	remaining := make([]Contribution, len(contributions))
	copy(remaining, contributions)

	pots := make(Pots, 0)
	for {
		min := 0
		for _, c := range remaining {
			if c.Amount > 0 && (min == 0 || c.Amount < min) {
				min = c.Amount
			}
		}

		if min == 0 {
			return pots
		}

		pot := &Pot{}
		for i, c := range remaining {
			if c.Amount <= 0 {
				continue
			}

			pot.Amount += min
			pot.Eligible = append(pot.Eligible, c.ParticipantID)
			remaining[i].Amount -= min
		}

		pots = append(pots, pot)
	}
}
