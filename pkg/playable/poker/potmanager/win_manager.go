package potmanager

type tier struct {
	strength     int
	participants []string
}

// WinManager groups participants by hand strength
type WinManager map[int]*tier

// NewWinManager returns an empty WinManager
func NewWinManager() WinManager {
	return make(WinManager)
}

// AddParticipant records a participant's hand strength
// Participants in a tier keep the order they were added in.
func (w WinManager) AddParticipant(id string, handStrength int) {
	t, ok := w[handStrength]
	if !ok {
		t = &tier{
			strength:     handStrength,
			participants: make([]string, 0),
		}
	}

	t.participants = append(t.participants, id)
	w[handStrength] = t
}

// Winners returns the participants tied for the strongest hand and that strength
func (w WinManager) Winners() ([]string, int) {
	var best *tier
	for _, t := range w {
		if best == nil || t.strength > best.strength {
			best = t
		}
	}

	if best == nil {
		return nil, 0
	}

	return best.participants, best.strength
}
