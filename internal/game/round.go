package game

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"

	"github.com/google/uuid"

	"github.com/blabel3/praeses-blackjack/internal/cards"
)

var (
	// ErrInvalidAction means the action is not legal in the round's
	// current phase. The round is left untouched; re-prompt and retry.
	ErrInvalidAction = errors.New("game: action not valid in current phase")
	// ErrRoundDone means the round already settled; start a new one.
	ErrRoundDone = errors.New("game: round is already done")
	// ErrUnknownAction means the input token named no known action.
	ErrUnknownAction = errors.New("game: unknown action")
)

// Phase is where a round currently is in its turn cycle.
type Phase int

const (
	PhaseDealing Phase = iota
	PhaseCheckNaturals
	PhasePlayerTurn
	PhaseDealerTurn
	PhaseSettlement
	PhaseDone
)

var phaseNames = [...]string{"dealing", "check_naturals", "player_turn", "dealer_turn", "settlement", "done"}

func (p Phase) String() string {
	if p < PhaseDealing || p > PhaseDone {
		return "unknown"
	}
	return phaseNames[p]
}

// Action is a move the player can submit during their turn.
type Action int

const (
	ActionHit Action = iota
	ActionStand
)

func (a Action) String() string {
	if a == ActionHit {
		return "hit"
	}
	return "stand"
}

// ParseAction maps a raw input token to an action. It accepts the full
// word or its first letter, case-insensitively.
func ParseAction(input string) (Action, error) {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "hit", "h":
		return ActionHit, nil
	case "stand", "s":
		return ActionStand, nil
	}
	return 0, ErrUnknownAction
}

// Round runs one complete play of blackjack: deal, naturals check,
// player turn, dealer turn, settlement. It exclusively owns its deck and
// both hands, and is not safe for concurrent use.
type Round struct {
	ID uuid.UUID

	rules   Rules
	deck    *cards.Deck
	player  Hand
	dealer  Hand
	phase   Phase
	outcome Outcome
}

// NewRound shuffles a fresh 52-card deck with the supplied source and
// deals the opening hands. The returned round is either waiting on the
// player or, when naturals decided it, already done.
func NewRound(r *rand.Rand, rules Rules) (*Round, error) {
	deck := cards.NewDeck()
	deck.Shuffle(r)
	return Start(deck, rules)
}

// Start begins a round drawing from an already prepared deck. The round
// takes ownership of the deck.
func Start(deck *cards.Deck, rules Rules) (*Round, error) {
	rd := &Round{
		ID:    uuid.New(),
		rules: rules,
		deck:  deck,
		phase: PhaseDealing,
	}

	if err := rd.deal(); err != nil {
		return nil, err
	}
	rd.checkNaturals()

	return rd, nil
}

// deal draws the opening two cards each, in standard order:
// player, dealer, player, dealer.
func (r *Round) deal() error {
	for i := 0; i < 2; i++ {
		for _, h := range []*Hand{&r.player, &r.dealer} {
			card, err := r.deck.Draw()
			if err != nil {
				return r.abort(err)
			}
			h.Add(card)
		}
	}
	return nil
}

// checkNaturals resolves two-card 21s before any turn is taken. Both
// turns are skipped whenever either side holds one.
func (r *Round) checkNaturals() {
	r.phase = PhaseCheckNaturals

	playerNatural := r.player.IsNatural()
	dealerNatural := r.dealer.IsNatural()

	switch {
	case playerNatural && dealerNatural:
		r.settle(OutcomePush)
	case playerNatural:
		r.settle(OutcomePlayerBlackjack)
	case dealerNatural:
		r.settle(OutcomeDealerWin)
	default:
		r.phase = PhasePlayerTurn
	}
}

// Submit applies one player action. Outside the player's turn every
// action is rejected without touching any state.
func (r *Round) Submit(a Action) error {
	if r.phase == PhaseDone {
		return ErrRoundDone
	}
	if r.phase != PhasePlayerTurn {
		return ErrInvalidAction
	}

	switch a {
	case ActionHit:
		card, err := r.deck.Draw()
		if err != nil {
			return r.abort(err)
		}
		r.player.Add(card)
		if r.player.IsBust() {
			r.settle(OutcomePlayerBust)
		}
		return nil
	case ActionStand:
		return r.playDealer()
	}
	return ErrInvalidAction
}

// playDealer runs the dealer's fixed policy: hit below 17, and on a
// soft 17 when the house rule says so.
func (r *Round) playDealer() error {
	r.phase = PhaseDealerTurn

	for dealerShouldHit(&r.dealer, r.rules) {
		card, err := r.deck.Draw()
		if err != nil {
			return r.abort(err)
		}
		r.dealer.Add(card)
	}

	if r.dealer.IsBust() {
		r.settle(OutcomeDealerBust)
		return nil
	}

	playerTotal, _ := r.player.Value()
	dealerTotal, _ := r.dealer.Value()

	switch {
	case playerTotal > dealerTotal:
		r.settle(OutcomePlayerWin)
	case playerTotal < dealerTotal:
		r.settle(OutcomeDealerWin)
	default:
		r.settle(OutcomePush)
	}
	return nil
}

func dealerShouldHit(h *Hand, rules Rules) bool {
	total, soft := h.Value()
	if total < 17 {
		return true
	}
	return total == 17 && soft && rules.DealerHitsSoft17
}

// settle records the outcome and closes the round. Settlement takes no
// input, so the phase moves straight through to done.
func (r *Round) settle(o Outcome) {
	r.outcome = o
	r.phase = PhaseDone
}

// abort ends the round without an outcome. Running out of cards mid-round
// cannot be repaired, only reported.
func (r *Round) abort(err error) error {
	r.phase = PhaseDone
	return fmt.Errorf("game: round %s aborted: %w", r.ID, err)
}

// Phase reports where the round currently is.
func (r *Round) Phase() Phase {
	return r.phase
}

// Outcome returns the settled outcome. ok is false until the round is
// done, and stays false for a round that was aborted.
func (r *Round) Outcome() (o Outcome, ok bool) {
	if r.phase != PhaseDone || r.outcome == OutcomeNone {
		return OutcomeNone, false
	}
	return r.outcome, true
}

// Snapshot is a read-only view of a round for rendering. The dealer's
// hole card is withheld until the dealer's turn begins.
type Snapshot struct {
	Phase       Phase
	Player      []cards.Card
	PlayerTotal int
	PlayerSoft  bool
	Dealer      []cards.Card
	DealerTotal int
	HoleHidden  bool
	Actions     []Action
	Outcome     Outcome
}

// Upcard returns the dealer's visible card.
func (s Snapshot) Upcard() cards.Card {
	if len(s.Dealer) == 0 {
		return cards.Card{}
	}
	return s.Dealer[0]
}

// Snapshot captures the current state without mutating anything.
func (r *Round) Snapshot() Snapshot {
	snap := Snapshot{
		Phase:   r.phase,
		Player:  r.player.Cards(),
		Outcome: r.outcome,
	}
	snap.PlayerTotal, snap.PlayerSoft = r.player.Value()

	if r.phase == PhasePlayerTurn {
		snap.HoleHidden = true
		dealer := r.dealer.Cards()
		if len(dealer) > 0 {
			snap.Dealer = dealer[:1]
		}
		snap.Actions = []Action{ActionHit, ActionStand}
		return snap
	}

	snap.Dealer = r.dealer.Cards()
	snap.DealerTotal, _ = r.dealer.Value()
	return snap
}
