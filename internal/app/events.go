package app

import "daifugo/internal/domain"

// EventKind identifies emitted match events for transport dispatch.
type EventKind string

const (
	EventMatchCreated   EventKind = "match_created"
	EventHandDealt      EventKind = "hand_dealt"
	EventCardPlayed     EventKind = "card_played"
	EventTurnPassed     EventKind = "turn_passed"
	EventFieldCleared   EventKind = "field_cleared"
	EventEffectPending  EventKind = "effect_pending"
	EventEffectResolved EventKind = "effect_resolved"
	EventPlayerFinished EventKind = "player_finished"
	EventGameEnded      EventKind = "game_ended"
)

// Event is an app event with optional targeted recipients.
type Event struct {
	Kind       EventKind
	Payload    any
	Recipients []string // player ids; empty means broadcast
}

type MatchCreatedPayload struct {
	MatchID         string
	CurrentPlayerID string
	Rules           domain.RuleSettings
}

type HandDealtPayload struct {
	PlayerID string
	Hand     []domain.Card
}

type CardPlayedPayload struct {
	PlayerID        string
	Cards           []domain.Card
	ComboType       domain.ComboType
	NextPlayerID    string
	FieldCleared    bool
	RevolutionOn    bool
	ElevenBackOn    bool
	ShibariSuit     domain.Suit
	RemainingInHand int
}

type TurnPassedPayload struct {
	PlayerID     string
	NextPlayerID string
	FieldCleared bool
}

type EffectPendingPayload struct {
	Effect domain.PendingEffect
}

type EffectResolvedPayload struct {
	PlayerID   string
	Resolution domain.ResolutionType
}

type PlayerFinishedPayload struct {
	PlayerID string
	Place    int
}

type GameEndedPayload struct {
	Winners []string
}
