package domain

import (
	"fmt"
	"math/rand"
)

// Config supplies match creation parameters. Rules nil means DefaultRules.
// Seats, when it names all four seats, overrides HumanName and CPUNames;
// server hosts use it to seat more than one human.
type Config struct {
	HumanName string
	CPUNames  []string
	Seats     []SeatConfig
	Rules     *RuleSettings
}

// SeatConfig overrides one seat of a hosted match.
type SeatConfig struct {
	Name    string
	IsHuman bool
}

var defaultCPUNames = []string{"CPU North", "CPU East", "CPU South"}

// NewGame deals a fresh four-seat match. Seat 0 is the human seat; the
// holder of the 3 of clubs leads, falling back to seat 0. The shuffle is
// the only source of randomness in the engine.
func NewGame(rng *rand.Rand, cfg Config) *Game {
	rules := DefaultRules()
	if cfg.Rules != nil {
		rules = *cfg.Rules
	}
	if rules.JokerCount < 0 {
		rules.JokerCount = 0
	}
	if rules.JokerCount > 2 {
		rules.JokerCount = 2
	}

	const totalPlayers = 4
	players := make([]Player, 0, totalPlayers)
	for i := 0; i < totalPlayers; i++ {
		isHuman := i == 0
		var name string
		if len(cfg.Seats) == totalPlayers {
			name = cfg.Seats[i].Name
			isHuman = cfg.Seats[i].IsHuman
		}
		if name == "" {
			if isHuman {
				name = cfg.HumanName
				if name == "" {
					name = "You"
				}
			} else if i-1 >= 0 && i-1 < len(cfg.CPUNames) && cfg.CPUNames[i-1] != "" {
				name = cfg.CPUNames[i-1]
			} else {
				name = defaultCPUNames[(max(i, 1)-1)%len(defaultCPUNames)]
			}
		}
		players = append(players, Player{
			ID:      fmt.Sprintf("player-%d", i+1),
			Name:    name,
			Seat:    i,
			IsHuman: isHuman,
		})
	}

	deck := Shuffle(rng, NewDeck(rules))
	for i, card := range deck {
		seat := i % totalPlayers
		players[seat].Hand = append(players[seat].Hand, card)
	}
	for i := range players {
		players[i].Hand = SortCards(players[i].Hand)
	}

	first := &players[0]
	for i := range players {
		if holdsStartingCard(players[i].Hand) {
			first = &players[i]
			break
		}
	}

	game := &Game{
		Players:         players,
		CurrentPlayerID: first.ID,
		Phase:           PhasePlaying,
		Rules:           rules,
	}
	game.appendLog(fmt.Sprintf("%s holds the 3 of clubs and leads", first.Name))
	return game
}

func holdsStartingCard(hand []Card) bool {
	for _, card := range hand {
		if card.Rank == MinRank && card.Suit == SuitClub {
			return true
		}
	}
	return false
}

// ApplyAction consumes a play or pass against the current state and
// returns the next state. Illegal input returns the state unchanged: out
// of turn, effect pending, unknown cards, failed analysis or a combo that
// does not beat the field.
func ApplyAction(state *Game, action Action) *Game {
	if state.Phase != PhasePlaying {
		return state
	}
	if len(state.PendingEffects) > 0 {
		return state
	}
	if action.PlayerID != state.CurrentPlayerID {
		return state
	}
	player := state.PlayerByID(action.PlayerID)
	if player == nil || player.Finished {
		return state
	}

	if action.Type == ActionPass {
		return handlePass(state, player.ID)
	}
	if action.Type != ActionPlay || len(action.CardIDs) == 0 {
		return state
	}

	cards, ok := cardsByID(player.Hand, action.CardIDs)
	if !ok {
		return state
	}
	combo, ok := AnalyzeCombo(cards, state.Rules)
	if !ok {
		return state
	}
	if !CanBeatField(state.Field, combo) {
		return state
	}
	return handlePlay(state, player.ID, combo)
}

// SelectionResult is the outcome of a pre-play validation.
type SelectionResult struct {
	Valid  bool
	Combo  *Combo
	Reason string
}

// ValidateSelection checks a card selection without mutating anything, so
// callers can surface a reason before submitting the action.
func ValidateSelection(state *Game, player *Player, cardIDs []string) SelectionResult {
	cards, ok := cardsByID(player.Hand, cardIDs)
	if !ok {
		return SelectionResult{Reason: "selected cards are not all in hand"}
	}
	combo, ok := AnalyzeCombo(cards, state.Rules)
	if !ok {
		return SelectionResult{Reason: "cards do not form a playable combo"}
	}
	if !CanBeatField(state.Field, combo) {
		return SelectionResult{Reason: "combo does not beat the current field"}
	}
	return SelectionResult{Valid: true, Combo: &combo}
}

func handlePlay(state *Game, playerID string, combo Combo) *Game {
	next := state.clone()
	player := next.PlayerByID(playerID)
	player.Hand = SortCards(removeByID(player.Hand, combo.Cards))

	fieldCombo := combo
	fieldCombo.Cards = append([]Card(nil), combo.Cards...)
	next.Field.Combo = &fieldCombo
	next.Field.OwnerID = player.ID
	updateShibari(&next.Field, combo, next.Rules)

	next.PassesInRow = 0
	next.CurrentPlayerID = nextActivePlayerID(next.Players, player.ID)
	next.appendLog(fmt.Sprintf("%s plays %s", player.Name, FormatCards(combo.Cards)))

	if next.Rules.Revolution && combo.Type == Quad {
		next.Field.Revolution = !next.Field.Revolution
	}
	if next.Rules.ElevenBack && comboHasRank(combo, RankJack) {
		next.Field.ElevenBack = !next.Field.ElevenBack
	}

	if next.Rules.EightCut && comboHasRank(combo, RankEight) {
		clearField(&next.Field)
		next.PassesInRow = 0
		if len(player.Hand) > 0 {
			next.CurrentPlayerID = player.ID
		}
	}

	settleFinishes(next, next.CurrentPlayerID, player.ID)

	owner := next.PlayerByID(playerID)
	next.PendingEffects = append(next.PendingEffects, collectSpecialEffects(next, owner, combo)...)

	return next
}

func handlePass(state *Game, playerID string) *Game {
	next := state.clone()
	player := next.PlayerByID(playerID)

	next.PassesInRow++
	next.CurrentPlayerID = nextActivePlayerID(next.Players, player.ID)
	next.appendLog(fmt.Sprintf("%s passes", player.Name))

	activeCount := 0
	for i := range next.Players {
		if !next.Players[i].Finished {
			activeCount++
		}
	}

	if next.Field.Combo != nil && next.PassesInRow >= activeCount-1 {
		ownerID := next.Field.OwnerID
		clearField(&next.Field)
		next.PassesInRow = 0
		if ownerID != "" {
			if owner := next.PlayerByID(ownerID); owner != nil && !owner.Finished {
				next.CurrentPlayerID = owner.ID
			} else {
				next.CurrentPlayerID = nextActivePlayerID(next.Players, ownerID)
			}
		}
	}

	return next
}

// clearField wipes the table: combo, owner, shibari lock, the temporary
// eleven-back flip and the streak tracker. Revolution persists.
func clearField(field *FieldState) {
	field.Combo = nil
	field.OwnerID = ""
	field.ShibariSuit = SuitNone
	field.ElevenBack = false
	field.StreakSuit = SuitNone
	field.StreakCount = 0
}

// updateShibari advances the same-suit streak tracker. The lock engages
// once two consecutive suit-constrained plays share a suit; a combo with
// no suit constraint resets the streak.
func updateShibari(field *FieldState, combo Combo, rules RuleSettings) {
	if !rules.Shibari || combo.SuitConstraint == SuitNone {
		field.ShibariSuit = SuitNone
		field.StreakSuit = SuitNone
		field.StreakCount = 0
		return
	}

	if combo.SuitConstraint == field.StreakSuit {
		field.StreakCount++
	} else {
		field.StreakSuit = combo.SuitConstraint
		field.StreakCount = 1
	}

	if field.StreakCount >= 2 {
		field.ShibariSuit = field.StreakSuit
	} else {
		field.ShibariSuit = SuitNone
	}
}

// settleFinishes marks emptied hands finished in seat order, force
// finishes the lone remaining seat, and repairs the acting seat. When the
// match ends the acting seat freezes at its last value.
func settleFinishes(next *Game, preferredNextID, lastActorID string) {
	for i := range next.Players {
		p := &next.Players[i]
		if !p.Finished && len(p.Hand) == 0 {
			p.Finished = true
			p.FinishOrder = len(next.Winners) + 1
			next.Winners = append(next.Winners, p.ID)
		}
	}

	if len(next.Winners) == len(next.Players)-1 {
		for i := range next.Players {
			p := &next.Players[i]
			if !p.Finished {
				p.Finished = true
				p.FinishOrder = len(next.Winners) + 1
				next.Winners = append(next.Winners, p.ID)
				break
			}
		}
	}

	frozen := next.CurrentPlayerID

	current := preferredNextID
	if cp := next.PlayerByID(current); cp == nil || cp.Finished {
		current = nextActivePlayerID(next.Players, lastActorID)
	}

	if len(next.Winners) == len(next.Players) {
		next.Phase = PhaseFinished
		current = frozen
	}
	next.CurrentPlayerID = current
}

// nextActivePlayerID returns the next unfinished seat clockwise from the
// given player. Falls back to the given id when no seat qualifies.
func nextActivePlayerID(players []Player, fromID string) string {
	index := -1
	for i := range players {
		if players[i].ID == fromID {
			index = i
			break
		}
	}
	if index == -1 {
		for i := range players {
			if !players[i].Finished {
				return players[i].ID
			}
		}
		return fromID
	}
	for i := 1; i <= len(players); i++ {
		candidate := &players[(index+i)%len(players)]
		if !candidate.Finished {
			return candidate.ID
		}
	}
	return fromID
}

// cardsByID resolves ids against a hand. Every id must match a distinct
// card or the lookup fails.
func cardsByID(hand []Card, ids []string) ([]Card, bool) {
	byID := make(map[string]Card, len(hand))
	for _, card := range hand {
		byID[card.ID] = card
	}
	cards := make([]Card, 0, len(ids))
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		card, ok := byID[id]
		if !ok || seen[id] {
			return nil, false
		}
		seen[id] = true
		cards = append(cards, card)
	}
	return cards, true
}

func removeByID(hand []Card, toRemove []Card) []Card {
	removing := make(map[string]bool, len(toRemove))
	for _, card := range toRemove {
		removing[card.ID] = true
	}
	out := make([]Card, 0, len(hand))
	for _, card := range hand {
		if removing[card.ID] {
			continue
		}
		out = append(out, card)
	}
	return out
}

func comboHasRank(combo Combo, rank int) bool {
	for _, card := range combo.Cards {
		if card.Rank == rank {
			return true
		}
	}
	return false
}
