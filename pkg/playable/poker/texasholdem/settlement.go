package texasholdem

import (
	"github.com/sirupsen/logrus"
	"holdem-server/pkg/deck"
	"holdem-server/pkg/playable/poker/handanalyzer"
	"holdem-server/pkg/playable/poker/potmanager"
)

// WinByFold is the hand name recorded when everybody else folded
const WinByFold = "Win by fold"

// Winner is a player who took chips at settlement
type Winner struct {
	PlayerID  string             `json:"playerId"`
	Name      string             `json:"name"`
	AmountWon int                `json:"amountWon"`
	HandScore handanalyzer.Score `json:"handScore"`
	HandName  string             `json:"handName"`
}

// RoundResult is the outcome of the last completed hand
type RoundResult struct {
	HandNumber      int             `json:"handNumber"`
	TotalPot        int             `json:"totalPot"`
	WinningHandName string          `json:"winningHandName"`
	Winners         []*Winner       `json:"winners"`
	SidePots        potmanager.Pots `json:"sidePots"`
	Community       deck.Hand       `json:"communityCards"`
}

func (r *RoundResult) clone() *RoundResult {
	if r == nil {
		return nil
	}

	c := *r
	c.Winners = make([]*Winner, len(r.Winners))
	for i, w := range r.Winners {
		winner := *w
		c.Winners[i] = &winner
	}

	c.SidePots = clonePots(r.SidePots)
	c.Community = r.Community.Clone()
	return &c
}

func clonePots(pots potmanager.Pots) potmanager.Pots {
	if pots == nil {
		return nil
	}

	c := make(potmanager.Pots, len(pots))
	for i, pot := range pots {
		eligible := make([]string, len(pot.Eligible))
		copy(eligible, pot.Eligible)
		c[i] = &potmanager.Pot{Amount: pot.Amount, Eligible: eligible}
	}

	return c
}

// settle pays out the pot and returns the table to waiting
func (r *Round) settle() {
	defer r.reset()

	if len(r.community) < 5 {
		cards := r.drawCards(5 - len(r.community))
		r.community = append(r.community, cards...)
	}

	result := &RoundResult{
		HandNumber: r.handNumber,
		TotalPot:   r.pot,
		Winners:    make([]*Winner, 0),
		Community:  r.community.Clone(),
	}
	r.result = result

	contenders := make([]*Participant, 0, len(r.participants))
	for _, p := range r.participants {
		if !p.folded {
			contenders = append(contenders, p)
		}
	}

	r.showdown = len(contenders) > 1

	switch len(contenders) {
	case 0:
		r.logger.WithField("pot", r.pot).Error("hand ended without any players left")
		return
	case 1:
		winner := contenders[0]
		winner.balance += r.pot
		result.WinningHandName = WinByFold
		result.Winners = append(result.Winners, &Winner{
			PlayerID:  winner.ID,
			Name:      winner.Name,
			AmountWon: r.pot,
			HandName:  WinByFold,
		})

		r.log(winner.ID, "won ${%d}", r.pot)
		return
	}

	scores := make(map[string]handanalyzer.Score, len(contenders))
	for _, p := range contenders {
		score, err := handanalyzer.Evaluate(append(p.cards.Clone(), r.community...))
		if err != nil {
			r.logger.WithError(err).WithField("playerID", p.ID).Panic("could not evaluate hand")
		}

		scores[p.ID] = score
	}

	pots := r.pots(contenders)
	if len(pots) > 1 {
		result.SidePots = clonePots(pots)
	}

	if total := pots.Total(); total != r.pot {
		r.logger.WithFields(logrus.Fields{
			"pot":    r.pot,
			"inPots": total,
		}).Error("pots do not add up to the pot")
	}

	winners := make(map[string]*Winner)
	best := handanalyzer.Score(-1)
	for _, pot := range pots {
		eligible := make([]*Participant, 0, len(contenders))
		for _, p := range contenders {
			if pot.IsEligible(p.ID) {
				eligible = append(eligible, p)
			}
		}

		// everybody who put chips in this pot folded
		if len(eligible) == 0 {
			eligible = contenders
		}

		wm := potmanager.NewWinManager()
		for _, p := range eligible {
			wm.AddParticipant(p.ID, int(scores[p.ID]))
		}

		ids, strength := wm.Winners()
		shares := potmanager.Split(pot.Amount, len(ids))
		for i, id := range ids {
			p := r.participantByID(id)
			p.balance += shares[i]

			w, ok := winners[id]
			if !ok {
				score := handanalyzer.Score(strength)
				w = &Winner{
					PlayerID:  p.ID,
					Name:      p.Name,
					HandScore: score,
					HandName:  score.String(),
				}

				winners[id] = w
				result.Winners = append(result.Winners, w)
			}

			w.AmountWon += shares[i]
		}

		if score := handanalyzer.Score(strength); score > best {
			best = score
		}
	}

	if best >= 0 {
		result.WinningHandName = best.String()
	}

	for _, w := range result.Winners {
		msg := r.log(w.PlayerID, "won ${%d} with %s", w.AmountWon, w.HandName)
		msg.Cards = r.participantByID(w.PlayerID).cards.Clone()
	}
}

// pots splits the pot into side pots when a player is all in
// Otherwise everybody still in the hand contests a single pot.
func (r *Round) pots(contenders []*Participant) potmanager.Pots {
	allIn := false
	for _, p := range contenders {
		if p.allIn {
			allIn = true
			break
		}
	}

	if !allIn {
		eligible := make([]string, len(contenders))
		for i, p := range contenders {
			eligible[i] = p.ID
		}

		return potmanager.Pots{{Amount: r.pot, Eligible: eligible}}
	}

	return potmanager.Calculate(r.contributions())
}

// contributions returns what each player put in this hand, in seat order
func (r *Round) contributions() []potmanager.Contribution {
	contributions := make([]potmanager.Contribution, 0, len(r.participants))
	for _, p := range r.participants {
		contributions = append(contributions, potmanager.Contribution{
			ParticipantID: p.ID,
			Amount:        r.handBets[p.ID],
		})
	}

	return contributions
}

// reset clears everything that only lives for one hand
// Balances, hole cards and the result are kept for display.
func (r *Round) reset() {
	r.pot = 0
	r.currentBet = 0
	r.turn = 0
	r.phase = PhasePreFlop
	r.roundBets = make(map[string]int)
	r.handBets = make(map[string]int)
	r.acted = make(map[string]bool)

	for _, p := range r.participants {
		p.ready = p.balance == 0
		p.allIn = false
	}

	r.status = StatusWaiting
	r.logger.WithField("hand", r.handNumber).Info("hand settled")
}

func (r *Round) participantByID(id string) *Participant {
	for _, p := range r.participants {
		if p.ID == id {
			return p
		}
	}

	return nil
}
