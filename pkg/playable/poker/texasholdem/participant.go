package texasholdem

import (
	"holdem-server/pkg/deck"
	"holdem-server/pkg/playable/poker/action"
)

// Credentials are handed to a player when they take a seat
// ID is public. Token authorizes the player's actions and must never be shown to anybody else.
type Credentials struct {
	ID    string `json:"id"`
	Token string `json:"token"`
}

// Participant represents an individual player at the table
type Participant struct {
	ID   string
	Name string

	token   string
	balance int
	cards   deck.Hand

	folded bool
	allIn  bool
	ready  bool
}

// Balance returns the chips the player has behind
func (p *Participant) Balance() int {
	return p.balance
}

// eligible returns true if the player can still act this hand
func (p *Participant) eligible() bool {
	return !p.folded && !p.allIn
}

// PrivatePlayer is the state a player can see about themselves
type PrivatePlayer struct {
	ID      string    `json:"id"`
	Name    string    `json:"name"`
	Balance int       `json:"balance"`
	Cards   deck.Hand `json:"cards"`
	Folded  bool      `json:"folded"`
	AllIn   bool      `json:"allIn"`
	Ready   bool      `json:"ready"`
}

// PublicPlayer is the state everybody can see about a player
// Cards are only present on a showdown reveal
type PublicPlayer struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Balance   int       `json:"balance"`
	Cards     deck.Hand `json:"cards"`
	CardCount int       `json:"cardCount"`
	Folded    bool      `json:"folded"`
	AllIn     bool      `json:"allIn"`
	Ready     bool      `json:"ready"`
}

func (p *Participant) privatePlayer() PrivatePlayer {
	return PrivatePlayer{
		ID:      p.ID,
		Name:    p.Name,
		Balance: p.balance,
		Cards:   p.cards.Clone(),
		Folded:  p.folded,
		AllIn:   p.allIn,
		Ready:   p.ready,
	}
}

func (p *Participant) publicPlayer(reveal bool) PublicPlayer {
	var cards deck.Hand
	if reveal && !p.folded && len(p.cards) > 0 {
		cards = p.cards.Clone()
	}

	return PublicPlayer{
		ID:        p.ID,
		Name:      p.Name,
		Balance:   p.balance,
		Cards:     cards,
		CardCount: len(p.cards),
		Folded:    p.folded,
		AllIn:     p.allIn,
		Ready:     p.ready,
	}
}

// ActionsForParticipant returns the actions the player can take right now
func (r *Round) ActionsForParticipant(p *Participant) []action.Action {
	if r.status != StatusInHand || !p.eligible() {
		return nil
	}

	if r.participants[r.turn] != p {
		return nil
	}

	contribution := r.roundBets[p.ID]
	actions := make([]action.Action, 0, 3)
	if contribution >= r.currentBet {
		actions = append(actions, action.Check)
	} else {
		actions = append(actions, action.Call)
	}

	if p.balance+contribution > r.currentBet {
		if r.currentBet == 0 {
			actions = append(actions, action.Bet)
		} else {
			actions = append(actions, action.Raise)
		}
	}

	return append(actions, action.Fold)
}

// betRange returns the smallest and largest legal bet for the player
// Both are zero when the player cannot bet
func (r *Round) betRange(p *Participant) (int, int) {
	if r.status != StatusInHand || !p.eligible() || r.participants[r.turn] != p {
		return 0, 0
	}

	max := p.balance + r.roundBets[p.ID]
	if max <= r.currentBet {
		return 0, 0
	}

	return r.currentBet + 1, max
}
