package domain

import "fmt"

// The snapshot types are the flat wire shape of a match: plain structs
// with JSON tags and no behavior, so an external sync or persistence
// layer can round-trip the full state. Card labels are derived and never
// stored.

// ComboSnapshot is the serialized form of a Combo.
type ComboSnapshot struct {
	Type           string `json:"type"`
	Strength       int    `json:"strength"`
	Length         int    `json:"length"`
	SuitConstraint Suit   `json:"suit_constraint,omitempty"`
	Cards          []Card `json:"cards"`
}

// PlayerSnapshot is the serialized form of a Player.
type PlayerSnapshot struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Seat        int    `json:"seat"`
	IsHuman     bool   `json:"is_human"`
	Finished    bool   `json:"finished"`
	FinishOrder int    `json:"finish_order,omitempty"`
	Hand        []Card `json:"hand"`
}

// FieldSnapshot is the serialized form of the FieldState.
type FieldSnapshot struct {
	Combo       *ComboSnapshot `json:"combo,omitempty"`
	OwnerID     string         `json:"owner_id,omitempty"`
	ShibariSuit Suit           `json:"shibari_suit,omitempty"`
	Revolution  bool           `json:"revolution"`
	ElevenBack  bool           `json:"eleven_back"`
	StreakSuit  Suit           `json:"streak_suit,omitempty"`
	StreakCount int            `json:"streak_count"`
}

// GameSnapshot is the full serialized match state.
type GameSnapshot struct {
	Players         []PlayerSnapshot `json:"players"`
	CurrentPlayerID string           `json:"current_player_id"`
	Field           FieldSnapshot    `json:"field"`
	PassesInRow     int              `json:"passes_in_row"`
	Log             []string         `json:"log"`
	Winners         []string         `json:"winners"`
	Phase           Phase            `json:"phase"`
	Rules           RuleSettings     `json:"rules"`
	PendingEffects  []PendingEffect  `json:"pending_effects"`
}

// Snapshot reduces the game to its flat serialized form.
func (g *Game) Snapshot() GameSnapshot {
	players := make([]PlayerSnapshot, len(g.Players))
	for i, p := range g.Players {
		players[i] = PlayerSnapshot{
			ID:          p.ID,
			Name:        p.Name,
			Seat:        p.Seat,
			IsHuman:     p.IsHuman,
			Finished:    p.Finished,
			FinishOrder: p.FinishOrder,
			Hand:        append([]Card(nil), p.Hand...),
		}
	}

	field := FieldSnapshot{
		OwnerID:     g.Field.OwnerID,
		ShibariSuit: g.Field.ShibariSuit,
		Revolution:  g.Field.Revolution,
		ElevenBack:  g.Field.ElevenBack,
		StreakSuit:  g.Field.StreakSuit,
		StreakCount: g.Field.StreakCount,
	}
	if g.Field.Combo != nil {
		combo := snapshotCombo(*g.Field.Combo)
		field.Combo = &combo
	}

	return GameSnapshot{
		Players:         players,
		CurrentPlayerID: g.CurrentPlayerID,
		Field:           field,
		PassesInRow:     g.PassesInRow,
		Log:             append([]string(nil), g.Log...),
		Winners:         append([]string(nil), g.Winners...),
		Phase:           g.Phase,
		Rules:           g.Rules,
		PendingEffects:  append([]PendingEffect(nil), g.PendingEffects...),
	}
}

// Hydrate reconstructs a Game with semantics identical to the state the
// snapshot was taken from.
func Hydrate(snapshot GameSnapshot) (*Game, error) {
	players := make([]Player, len(snapshot.Players))
	for i, p := range snapshot.Players {
		players[i] = Player{
			ID:          p.ID,
			Name:        p.Name,
			Seat:        p.Seat,
			IsHuman:     p.IsHuman,
			Finished:    p.Finished,
			FinishOrder: p.FinishOrder,
			Hand:        append([]Card(nil), p.Hand...),
		}
	}

	field := FieldState{
		OwnerID:     snapshot.Field.OwnerID,
		ShibariSuit: snapshot.Field.ShibariSuit,
		Revolution:  snapshot.Field.Revolution,
		ElevenBack:  snapshot.Field.ElevenBack,
		StreakSuit:  snapshot.Field.StreakSuit,
		StreakCount: snapshot.Field.StreakCount,
	}
	if snapshot.Field.Combo != nil {
		combo, err := hydrateCombo(*snapshot.Field.Combo)
		if err != nil {
			return nil, err
		}
		field.Combo = &combo
	}

	switch snapshot.Phase {
	case PhasePlaying, PhaseFinished:
	default:
		return nil, fmt.Errorf("unknown phase %q", snapshot.Phase)
	}

	return &Game{
		Players:         players,
		CurrentPlayerID: snapshot.CurrentPlayerID,
		Field:           field,
		PassesInRow:     snapshot.PassesInRow,
		Log:             append([]string(nil), snapshot.Log...),
		Winners:         append([]string(nil), snapshot.Winners...),
		Phase:           snapshot.Phase,
		Rules:           snapshot.Rules,
		PendingEffects:  append([]PendingEffect(nil), snapshot.PendingEffects...),
	}, nil
}

func snapshotCombo(combo Combo) ComboSnapshot {
	return ComboSnapshot{
		Type:           combo.Type.String(),
		Strength:       combo.Strength,
		Length:         combo.Length,
		SuitConstraint: combo.SuitConstraint,
		Cards:          append([]Card(nil), combo.Cards...),
	}
}

func hydrateCombo(snapshot ComboSnapshot) (Combo, error) {
	comboType, err := parseComboType(snapshot.Type)
	if err != nil {
		return Combo{}, err
	}
	return Combo{
		Type:           comboType,
		Strength:       snapshot.Strength,
		Length:         snapshot.Length,
		SuitConstraint: snapshot.SuitConstraint,
		Cards:          append([]Card(nil), snapshot.Cards...),
	}, nil
}

func parseComboType(value string) (ComboType, error) {
	switch value {
	case "single":
		return Single, nil
	case "pair":
		return Pair, nil
	case "triple":
		return Triple, nil
	case "quad":
		return Quad, nil
	case "sequence":
		return Sequence, nil
	default:
		return Invalid, fmt.Errorf("unknown combo type %q", value)
	}
}
