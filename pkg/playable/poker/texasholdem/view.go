package texasholdem

import (
	"holdem-server/pkg/deck"
	"holdem-server/pkg/playable"
	"holdem-server/pkg/playable/poker/action"
	"holdem-server/pkg/playable/poker/handanalyzer"
	"holdem-server/pkg/playable/poker/potmanager"
)

// PlayerView is the state of the table as seen by one player
// A view shares no memory with the round it was taken from.
type PlayerView struct {
	RoomID           string                 `json:"roomId"`
	Status           Status                 `json:"status"`
	Phase            Phase                  `json:"phase"`
	Ante             int                    `json:"ante"`
	HandNumber       int                    `json:"handNumber"`
	CommunityCards   deck.Hand              `json:"communityCards"`
	Pot              int                    `json:"pot"`
	SidePots         potmanager.Pots        `json:"sidePots"`
	CurrentBet       int                    `json:"currentBet"`
	PlayerCurrentBet int                    `json:"playerCurrentBet"`
	CurrentTurn      string                 `json:"currentTurn"`
	Player           PrivatePlayer          `json:"player"`
	HandName         string                 `json:"handName"`
	OtherPlayers     []PublicPlayer         `json:"otherPlayers"`
	LastRoundResult  *RoundResult           `json:"lastRoundResult"`
	AvailableActions []action.Action        `json:"availableActions"`
	MinBet           int                    `json:"minBet"`
	MaxBet           int                    `json:"maxBet"`
	Logs             []*playable.LogMessage `json:"logs"`
}

// PlayerView returns the view for the player who owns the token
func (r *Round) PlayerView(token string) (*PlayerView, error) {
	p := r.participantByToken(token)
	if p == nil {
		return nil, ErrPlayerNotFound
	}

	// hole cards are shown after a showdown, never after a win by fold
	reveal := r.status == StatusWaiting && r.showdown

	others := make([]PublicPlayer, 0, len(r.participants)-1)
	for _, other := range r.participants {
		if other != p {
			others = append(others, other.publicPlayer(reveal))
		}
	}

	var currentTurn string
	if r.status == StatusInHand {
		currentTurn = r.participants[r.turn].ID
	}

	var sidePots potmanager.Pots
	if r.status == StatusInHand && r.anyAllIn() {
		sidePots = potmanager.Calculate(r.contributions())
	}

	var handName string
	if len(p.cards) > 0 && !p.folded {
		if score, err := handanalyzer.Evaluate(append(p.cards.Clone(), r.community...)); err == nil {
			handName = score.String()
		}
	}

	minBet, maxBet := r.betRange(p)

	logs := make([]*playable.LogMessage, len(r.logs))
	for i, msg := range r.logs {
		m := *msg
		m.PlayerIDs = append([]string(nil), msg.PlayerIDs...)
		m.Cards = msg.Cards.Clone()
		logs[i] = &m
	}

	return &PlayerView{
		RoomID:           r.id,
		Status:           r.status,
		Phase:            r.phase,
		Ante:             r.options.Ante,
		HandNumber:       r.handNumber,
		CommunityCards:   r.community.Clone(),
		Pot:              r.pot,
		SidePots:         sidePots,
		CurrentBet:       r.currentBet,
		PlayerCurrentBet: r.roundBets[p.ID],
		CurrentTurn:      currentTurn,
		Player:           p.privatePlayer(),
		HandName:         handName,
		OtherPlayers:     others,
		LastRoundResult:  r.result.clone(),
		AvailableActions: r.ActionsForParticipant(p),
		MinBet:           minBet,
		MaxBet:           maxBet,
		Logs:             logs,
	}, nil
}

func (r *Round) anyAllIn() bool {
	for _, p := range r.participants {
		if p.allIn && !p.folded {
			return true
		}
	}

	return false
}
