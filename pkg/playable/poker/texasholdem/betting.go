package texasholdem

import (
	"fmt"

	"holdem-server/pkg/playable/poker/action"
)

// SubmitAction applies an action for the player who owns the token
// amount is only used by bet and raise, and is the total the player wants to have in for this
// betting round. A rejected action leaves the round untouched.
func (r *Round) SubmitAction(token string, actionType string, amount int) error {
	if r.status != StatusInHand {
		return illegal("no hand is in progress")
	}

	p := r.participantByToken(token)
	if p == nil {
		return ErrPlayerNotFound
	}

	if p.folded {
		return illegal("you have folded")
	}

	if p.allIn {
		return illegal("you are all in")
	}

	if r.participants[r.turn] != p {
		return ErrNotYourTurn
	}

	act, err := action.FromString(actionType)
	if err != nil {
		return illegal(err.Error())
	}

	contribution := r.roundBets[p.ID]

	switch act {
	case action.Fold:
		p.folded = true
		r.log(p.ID, "%s", act.LogMessage(0))
	case action.Check:
		if contribution < r.currentBet {
			return illegal(fmt.Sprintf("cannot check, the bet is ${%d}", r.currentBet))
		}

		r.log(p.ID, "%s", act.LogMessage(0))
	case action.Call:
		shortfall := r.currentBet - contribution
		if shortfall > p.balance {
			shortfall = p.balance
		}

		r.bet(p, shortfall)
		if shortfall == 0 {
			r.log(p.ID, "%s", action.Check.LogMessage(0))
		} else {
			r.log(p.ID, "%s", action.Call.LogMessage(shortfall))
		}
	case action.Bet, action.Raise:
		if amount <= r.currentBet {
			return illegal(fmt.Sprintf("bet must be greater than ${%d}", r.currentBet))
		}

		if amount > p.balance+contribution {
			return illegal(fmt.Sprintf("bet cannot be more than ${%d}", p.balance+contribution))
		}

		logAction := action.Raise
		if r.currentBet == 0 {
			logAction = action.Bet
		}

		r.currentBet = amount
		r.bet(p, amount-contribution)
		r.acted = make(map[string]bool)
		r.log(p.ID, "%s", logAction.LogMessage(amount))
	}

	if p.allIn {
		r.log(p.ID, "is all in")
	}

	r.acted[p.ID] = true
	r.resolve()

	return nil
}

// resolve decides what happens after an action has been applied
func (r *Round) resolve() {
	switch {
	case r.activePlayers() == 1:
		r.settle()
	case !r.allPlayersActed():
		r.advanceTurn()
	case r.phase >= PhaseRiver || r.eligiblePlayers() <= 1:
		r.settle()
	default:
		r.advanceBettingRound()
	}
}

// allPlayersActed returns true when every player who can still act has done so since the last
// bet or raise and has matched the current bet
func (r *Round) allPlayersActed() bool {
	for _, p := range r.participants {
		if !p.eligible() {
			continue
		}

		if !r.acted[p.ID] || r.roundBets[p.ID] < r.currentBet {
			return false
		}
	}

	return true
}

// advanceTurn moves the turn to the next player, in seat order, who can act
func (r *Round) advanceTurn() {
	n := len(r.participants)
	for i := 1; i <= n; i++ {
		next := (r.turn + i) % n
		if r.participants[next].eligible() {
			r.turn = next
			return
		}
	}

	r.settle()
}

func (r *Round) advanceBettingRound() {
	r.nextBettingRound()

	turn, ok := r.firstEligible()
	if !ok {
		r.settle()
		return
	}

	r.turn = turn
}

// nextBettingRound clears the betting and deals the next community cards
// Leaving pre-flop deals the flop, every other round deals one card.
func (r *Round) nextBettingRound() {
	r.acted = make(map[string]bool)
	r.roundBets = make(map[string]int)
	r.currentBet = 0

	n := 1
	if r.phase == PhasePreFlop {
		n = 3
	}

	cards := r.drawCards(n)
	r.community = append(r.community, cards...)
	r.phase++

	msg := r.log("", "dealt the %s", r.phase)
	msg.Cards = cards
}

// bet moves chips from the player into the pot for the current betting round
func (r *Round) bet(p *Participant, amount int) {
	r.roundBets[p.ID] += amount
	r.commit(p, amount)
}

// commit moves chips from the player into the pot
func (r *Round) commit(p *Participant, amount int) {
	p.balance -= amount
	r.pot += amount
	r.handBets[p.ID] += amount

	if p.balance == 0 {
		p.allIn = true
	}
}

func (r *Round) firstEligible() (int, bool) {
	for i, p := range r.participants {
		if p.eligible() {
			return i, true
		}
	}

	return 0, false
}

// activePlayers returns the number of players who have not folded
func (r *Round) activePlayers() int {
	n := 0
	for _, p := range r.participants {
		if !p.folded {
			n++
		}
	}

	return n
}

// eligiblePlayers returns the number of players who can still act
func (r *Round) eligiblePlayers() int {
	n := 0
	for _, p := range r.participants {
		if p.eligible() {
			n++
		}
	}

	return n
}
