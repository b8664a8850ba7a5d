package app

import (
	"errors"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"daifugo/internal/domain"
)

// Service contains the match use-cases operating on domain state. The
// engine is immutable, so every mutation swaps Match.State for the next
// state and reports what changed as events.
type Service struct {
	rng *rand.Rand
}

// NewService constructs a Service with the provided rng or a time-seeded
// default.
func NewService(rng *rand.Rand) *Service {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Service{rng: rng}
}

var (
	ErrNotPlaying        = errors.New("match not in playing phase")
	ErrUnknownPlayer     = errors.New("player not found")
	ErrNotYourTurn       = errors.New("not your turn")
	ErrEffectPending     = errors.New("a special effect must be resolved first")
	ErrIllegalPlay       = errors.New("selection cannot be played")
	ErrNoEffectPending   = errors.New("no effect to resolve")
	ErrNotEffectOwner    = errors.New("effect belongs to another player")
	ErrIllegalResolution = errors.New("resolution rejected")
)

// Match binds a dealt game to a transport-level id.
type Match struct {
	ID    string
	State *domain.Game
}

// CreateMatch deals a fresh four-seat game and emits the per-seat hand
// events plus the broadcast opener.
func (s *Service) CreateMatch(cfg domain.Config) (*Match, []Event, error) {
	match := &Match{ID: uuid.NewString(), State: domain.NewGame(s.rng, cfg)}
	return match, dealEvents(match), nil
}

// Restart deals a new game into the same match id.
func (s *Service) Restart(match *Match, cfg domain.Config) ([]Event, error) {
	match.State = domain.NewGame(s.rng, cfg)
	return dealEvents(match), nil
}

// dealEvents emits the per-seat hand events plus the broadcast opener.
func dealEvents(match *Match) []Event {
	game := match.State
	events := make([]Event, 0, len(game.Players)+1)
	for i := range game.Players {
		p := &game.Players[i]
		events = append(events, Event{
			Kind:       EventHandDealt,
			Payload:    HandDealtPayload{PlayerID: p.ID, Hand: p.Hand},
			Recipients: []string{p.ID},
		})
	}
	events = append(events, Event{
		Kind: EventMatchCreated,
		Payload: MatchCreatedPayload{
			MatchID:         match.ID,
			CurrentPlayerID: game.CurrentPlayerID,
			Rules:           game.Rules,
		},
	})
	return events
}

// SubmitAction validates and applies a play or pass, then reports the
// state delta as events.
func (s *Service) SubmitAction(match *Match, action domain.Action) ([]Event, error) {
	state := match.State
	if state.Phase != domain.PhasePlaying {
		return nil, ErrNotPlaying
	}
	if len(state.PendingEffects) > 0 {
		return nil, ErrEffectPending
	}
	player := state.PlayerByID(action.PlayerID)
	if player == nil {
		return nil, ErrUnknownPlayer
	}
	if state.CurrentPlayerID != action.PlayerID {
		return nil, ErrNotYourTurn
	}

	if action.Type == domain.ActionPlay {
		if result := domain.ValidateSelection(state, player, action.CardIDs); !result.Valid {
			return nil, ErrIllegalPlay
		}
	}

	next := domain.ApplyAction(state, action)
	if next == state {
		return nil, ErrIllegalPlay
	}
	match.State = next

	return s.diffEvents(state, next, action), nil
}

// ResolveEffect validates and applies a resolution for the head of the
// pending-effect queue.
func (s *Service) ResolveEffect(match *Match, resolution domain.EffectResolution) ([]Event, error) {
	state := match.State
	if state.Phase != domain.PhasePlaying {
		return nil, ErrNotPlaying
	}
	if len(state.PendingEffects) == 0 {
		return nil, ErrNoEffectPending
	}
	if state.PendingEffects[0].OwnerID != resolution.PlayerID {
		return nil, ErrNotEffectOwner
	}

	next := domain.ResolveEffect(state, resolution)
	if next == state {
		return nil, ErrIllegalResolution
	}
	match.State = next

	events := []Event{{
		Kind: EventEffectResolved,
		Payload: EffectResolvedPayload{
			PlayerID:   resolution.PlayerID,
			Resolution: resolution.Type,
		},
	}}
	events = append(events, s.settlementEvents(state, next)...)
	return events, nil
}

// diffEvents derives broadcast events from the transition an accepted
// action produced.
func (s *Service) diffEvents(prev, next *domain.Game, action domain.Action) []Event {
	var events []Event

	actor := prev.PlayerByID(action.PlayerID)
	cleared := prev.Field.Combo != nil && next.Field.Combo == nil

	if action.Type == domain.ActionPass {
		events = append(events, Event{
			Kind: EventTurnPassed,
			Payload: TurnPassedPayload{
				PlayerID:     action.PlayerID,
				NextPlayerID: next.CurrentPlayerID,
				FieldCleared: cleared,
			},
		})
	} else {
		played, _ := cardsPlayed(actor, next.PlayerByID(action.PlayerID))
		comboType := domain.Invalid
		if next.Field.Combo != nil {
			comboType = next.Field.Combo.Type
		} else if combo, ok := domain.AnalyzeCombo(played, prev.Rules); ok {
			comboType = combo.Type
		}
		events = append(events, Event{
			Kind: EventCardPlayed,
			Payload: CardPlayedPayload{
				PlayerID:        action.PlayerID,
				Cards:           played,
				ComboType:       comboType,
				NextPlayerID:    next.CurrentPlayerID,
				FieldCleared:    next.Field.Combo == nil,
				RevolutionOn:    next.Field.Revolution,
				ElevenBackOn:    next.Field.ElevenBack,
				ShibariSuit:     next.Field.ShibariSuit,
				RemainingInHand: len(next.PlayerByID(action.PlayerID).Hand),
			},
		})
	}

	if cleared {
		events = append(events, Event{Kind: EventFieldCleared, Payload: struct{}{}})
	}
	events = append(events, s.settlementEvents(prev, next)...)
	return events
}

// settlementEvents reports newly finished seats, a freshly queued effect
// head and the end of the match.
func (s *Service) settlementEvents(prev, next *domain.Game) []Event {
	var events []Event

	for i := range next.Players {
		p := &next.Players[i]
		before := prev.PlayerByID(p.ID)
		if p.Finished && (before == nil || !before.Finished) {
			events = append(events, Event{
				Kind:    EventPlayerFinished,
				Payload: PlayerFinishedPayload{PlayerID: p.ID, Place: p.FinishOrder},
			})
		}
	}

	if len(next.PendingEffects) > 0 {
		head := next.PendingEffects[0]
		if len(prev.PendingEffects) == 0 || prev.PendingEffects[0] != head {
			events = append(events, Event{
				Kind:       EventEffectPending,
				Payload:    EffectPendingPayload{Effect: head},
				Recipients: []string{head.OwnerID},
			})
		}
	}

	if next.Phase == domain.PhaseFinished && prev.Phase != domain.PhaseFinished {
		events = append(events, Event{
			Kind:    EventGameEnded,
			Payload: GameEndedPayload{Winners: next.Winners},
		})
	}
	return events
}

// cardsPlayed recovers the cards an actor shed between two states.
func cardsPlayed(before, after *domain.Player) ([]domain.Card, bool) {
	if before == nil || after == nil {
		return nil, false
	}
	kept := make(map[string]bool, len(after.Hand))
	for _, c := range after.Hand {
		kept[c.ID] = true
	}
	var played []domain.Card
	for _, c := range before.Hand {
		if !kept[c.ID] {
			played = append(played, c)
		}
	}
	return played, len(played) > 0
}
