package domain

// AnalyzeCombo classifies a set of cards as a legal combo. The second
// return value is false when the cards form no playable shape.
//
// A single card is always legal. Multiple cards are legal as a group when
// every card shares one rank and none is a joker, or as a sequence when
// sequences are enabled, every card shares one suit and the ranks are
// strictly consecutive with length >= 3.
func AnalyzeCombo(cards []Card, rules RuleSettings) (Combo, bool) {
	if len(cards) == 0 {
		return Combo{}, false
	}

	sorted := SortCards(cards)

	if len(sorted) == 1 {
		card := sorted[0]
		constraint := card.Suit
		if card.IsJoker() {
			constraint = SuitNone
		}
		return Combo{
			Type:           Single,
			Cards:          sorted,
			Strength:       card.Rank,
			Length:         1,
			SuitConstraint: constraint,
		}, true
	}

	if allSameRank(sorted) && !containsJoker(sorted) {
		comboType := groupType(len(sorted))
		if comboType == Invalid {
			return Combo{}, false
		}
		constraint := SuitNone
		if allSameSuit(sorted) {
			constraint = sorted[0].Suit
		}
		return Combo{
			Type:           comboType,
			Cards:          sorted,
			Strength:       sorted[0].Rank,
			Length:         len(sorted),
			SuitConstraint: constraint,
		}, true
	}

	if rules.EnableSequences && isSequence(sorted) {
		return makeSequenceCombo(sorted), true
	}

	return Combo{}, false
}

// Direction returns the active strength comparison direction: +1 for the
// normal order, -1 when an odd number of reversal modifiers is active.
func Direction(field FieldState) int {
	direction := 1
	if field.Revolution {
		direction = -direction
	}
	if field.ElevenBack {
		direction = -direction
	}
	return direction
}

// CanBeatField reports whether the combo legally beats the field. An
// empty field accepts any combo. Otherwise the type must match (and the
// length for sequences), the shibari lock must be honored, and the
// strength must win in the active direction.
func CanBeatField(field FieldState, combo Combo) bool {
	if field.Combo == nil {
		return true
	}
	if combo.Type != field.Combo.Type {
		return false
	}
	if combo.Type == Sequence && combo.Length != field.Combo.Length {
		return false
	}
	if field.ShibariSuit != SuitNone && combo.SuitConstraint != SuitNone && combo.SuitConstraint != field.ShibariSuit {
		return false
	}
	if Direction(field) >= 0 {
		return combo.Strength > field.Combo.Strength
	}
	return combo.Strength < field.Combo.Strength
}

func groupType(length int) ComboType {
	switch length {
	case 2:
		return Pair
	case 3:
		return Triple
	case 4:
		return Quad
	default:
		return Invalid
	}
}

// isSequence expects cards in canonical sort order.
func isSequence(cards []Card) bool {
	if len(cards) < 3 {
		return false
	}
	if !allSameSuit(cards) || containsJoker(cards) {
		return false
	}
	for i := 1; i < len(cards); i++ {
		if cards[i].Rank != cards[i-1].Rank+1 {
			return false
		}
	}
	return true
}

func makeSequenceCombo(sorted []Card) Combo {
	return Combo{
		Type:           Sequence,
		Cards:          sorted,
		Strength:       sorted[len(sorted)-1].Rank,
		Length:         len(sorted),
		SuitConstraint: sorted[0].Suit,
	}
}

func allSameRank(cards []Card) bool {
	if len(cards) == 0 {
		return false
	}
	rank := cards[0].Rank
	for _, c := range cards {
		if c.Rank != rank {
			return false
		}
	}
	return true
}

func allSameSuit(cards []Card) bool {
	if len(cards) == 0 {
		return false
	}
	suit := cards[0].Suit
	for _, c := range cards {
		if c.Suit != suit {
			return false
		}
	}
	return true
}

func containsJoker(cards []Card) bool {
	for _, c := range cards {
		if c.IsJoker() {
			return true
		}
	}
	return false
}
