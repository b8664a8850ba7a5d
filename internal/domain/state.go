package domain

// Phase represents the lifecycle stage of a Daifugo match.
type Phase string

const (
	// PhasePlaying is the active game state where cards are played.
	PhasePlaying Phase = "playing"
	// PhaseFinished is the terminal state after every seat has gone out.
	PhaseFinished Phase = "finished"
)

// Suit identifies a card suit. SuitJoker marks the wild card and SuitNone
// is the absence of a suit constraint.
type Suit string

const (
	SuitSpade   Suit = "spade"
	SuitHeart   Suit = "heart"
	SuitDiamond Suit = "diamond"
	SuitClub    Suit = "club"
	SuitJoker   Suit = "joker"
	SuitNone    Suit = ""
)

// Standard ranks run 3..15 where 11..15 map to J, Q, K, A, 2. The joker
// carries a sentinel rank above every standard rank.
const (
	MinRank   = 3
	MaxRank   = 15
	RankJoker = 16

	RankSeven = 7
	RankEight = 8
	RankTen   = 10
	RankJack  = 11
	RankQueen = 12
)

// Card is a single card in the Daifugo deck. Immutable once created; the
// ID is unique within a match and stable across snapshots.
type Card struct {
	ID   string `json:"id"`
	Suit Suit   `json:"suit"`
	Rank int    `json:"rank"`
}

// IsJoker reports whether the card is the wild card.
func (c Card) IsJoker() bool {
	return c.Suit == SuitJoker
}

// ComboType represents the shape of a played card combination.
type ComboType int

const (
	Invalid ComboType = iota
	Single
	Pair
	Triple
	Quad
	Sequence // same-suit run of 3 or more consecutive ranks
)

func (t ComboType) String() string {
	switch t {
	case Single:
		return "single"
	case Pair:
		return "pair"
	case Triple:
		return "triple"
	case Quad:
		return "quad"
	case Sequence:
		return "sequence"
	default:
		return "invalid"
	}
}

// Combo is a legally-shaped set of cards playable together.
type Combo struct {
	Type     ComboType
	Cards    []Card // canonical sort order
	Strength int    // comparison key: group rank, or the top rank of a sequence
	Length   int
	// SuitConstraint is the common suit of the combo, SuitNone when the
	// combo mixes suits or is a lone joker. Combos without a constraint
	// are exempt from an active shibari lock.
	SuitConstraint Suit
}

// RuleSettings is the closed set of rule toggles for a match. Immutable
// for the lifetime of the match.
type RuleSettings struct {
	Shibari         bool `json:"shibari"`          // suit lock after two consecutive same-suit plays
	EnableSequences bool `json:"enable_sequences"` // allow same-suit runs
	Revolution      bool `json:"revolution"`       // quad flips the strength order
	EightCut        bool `json:"eight_cut"`        // rank 8 wipes the field
	ElevenBack      bool `json:"eleven_back"`      // rank 11 flips strength until the field clears
	SevenGive       bool `json:"seven_give"`       // rank 7 passes cards to the next seat
	TenDiscard      bool `json:"ten_discard"`      // rank 10 forces discards
	QueenBomb       bool `json:"queen_bomb"`       // rank 12 declares ranks everyone discards
	JokerCount      int  `json:"joker_count"`      // 0..2 wild cards in the deck
}

// DefaultRules returns the standard rule set.
func DefaultRules() RuleSettings {
	return RuleSettings{
		Shibari:         true,
		EnableSequences: true,
		Revolution:      true,
		EightCut:        true,
		ElevenBack:      true,
		JokerCount:      1,
	}
}

// Player holds the state for one seat in the match.
type Player struct {
	ID          string
	Name        string
	Seat        int // 0..3, fixed for the match
	IsHuman     bool
	Hand        []Card // canonical sort order
	Finished    bool
	FinishOrder int // 1 = first out, 0 = still playing
}

// FieldState describes the combo currently owning the table and the
// active comparison modifiers.
type FieldState struct {
	Combo       *Combo
	OwnerID     string
	ShibariSuit Suit // locked suit, SuitNone when no lock is active
	Revolution  bool
	ElevenBack  bool
	StreakSuit  Suit // suit of the current run of same-suit plays
	StreakCount int
}

// EffectType identifies a rule-triggered pending effect.
type EffectType string

const (
	EffectSevenGive  EffectType = "seven_give"
	EffectTenDiscard EffectType = "ten_discard"
	EffectQueenBomb  EffectType = "queen_bomb"
)

// PendingEffect is a queued obligation that must be resolved by its owner
// before normal turns resume. TargetID is set for seven-give only.
type PendingEffect struct {
	Type      EffectType `json:"type"`
	OwnerID   string     `json:"owner_id"`
	TargetID  string     `json:"target_id,omitempty"`
	Remaining int        `json:"remaining"`
}

// ActionType identifies a normal turn action.
type ActionType string

const (
	ActionPlay ActionType = "play"
	ActionPass ActionType = "pass"
)

// Action is a play or pass submitted by a seat.
type Action struct {
	Type     ActionType
	PlayerID string
	CardIDs  []string
}

// PlayAction builds a play action for the given card ids.
func PlayAction(playerID string, cardIDs []string) Action {
	return Action{Type: ActionPlay, PlayerID: playerID, CardIDs: cardIDs}
}

// PassAction builds a pass action.
func PassAction(playerID string) Action {
	return Action{Type: ActionPass, PlayerID: playerID}
}

// ResolutionType identifies how a pending effect is being resolved.
type ResolutionType string

const (
	ResolutionSkip       ResolutionType = "skip"
	ResolutionSevenGive  ResolutionType = "seven_give"
	ResolutionTenDiscard ResolutionType = "ten_discard"
	ResolutionQueenBomb  ResolutionType = "queen_bomb"
)

// EffectResolution is the owner's answer to the head pending effect.
// CardIDs is used by seven-give and ten-discard, Ranks by queen-bomb.
type EffectResolution struct {
	Type     ResolutionType
	PlayerID string
	CardIDs  []string
	Ranks    []int
}

// LogLimit caps the number of retained log lines; the oldest entry drops.
const LogLimit = 30

// Game is the aggregate root for one match. Every transition replaces it
// wholesale; callers never observe partial mutation.
type Game struct {
	Players         []Player
	CurrentPlayerID string
	Field           FieldState
	PassesInRow     int
	Log             []string
	Winners         []string // player ids in finish order
	Phase           Phase
	Rules           RuleSettings
	PendingEffects  []PendingEffect
}

// PlayerByID returns the player with the given id, or nil.
func (g *Game) PlayerByID(id string) *Player {
	for i := range g.Players {
		if g.Players[i].ID == id {
			return &g.Players[i]
		}
	}
	return nil
}

// clone produces a deep copy so transitions never mutate the input state.
func (g *Game) clone() *Game {
	next := *g
	next.Players = make([]Player, len(g.Players))
	for i, p := range g.Players {
		next.Players[i] = p
		next.Players[i].Hand = append([]Card(nil), p.Hand...)
	}
	if g.Field.Combo != nil {
		combo := *g.Field.Combo
		combo.Cards = append([]Card(nil), combo.Cards...)
		next.Field.Combo = &combo
	}
	next.Log = append([]string(nil), g.Log...)
	next.Winners = append([]string(nil), g.Winners...)
	next.PendingEffects = append([]PendingEffect(nil), g.PendingEffects...)
	return &next
}

func (g *Game) appendLog(entry string) {
	g.Log = append(g.Log, entry)
	if len(g.Log) > LogLimit {
		g.Log = g.Log[1:]
	}
}
