package domain

import "testing"

func countType(combos []Combo, comboType ComboType) int {
	n := 0
	for _, c := range combos {
		if c.Type == comboType {
			n++
		}
	}
	return n
}

func TestEnumerateCombos(t *testing.T) {
	rules := DefaultRules()
	hand := []Card{
		card(SuitSpade, 5),
		card(SuitHeart, 5),
		card(SuitClub, 5),
		card(SuitHeart, 7),
		card(SuitHeart, 8),
		card(SuitHeart, 9),
		card(SuitHeart, 10),
		joker(),
	}

	combos := EnumerateCombos(hand, rules)

	if got := countType(combos, Single); got != 8 {
		t.Fatalf("singles = %d, want 8", got)
	}
	if got := countType(combos, Pair); got != 1 {
		t.Fatalf("pairs = %d, want 1", got)
	}
	if got := countType(combos, Triple); got != 1 {
		t.Fatalf("triples = %d, want 1", got)
	}
	if got := countType(combos, Quad); got != 0 {
		t.Fatalf("quads = %d, want 0", got)
	}
	// hearts 7-8-9-10: windows 7-9, 8-10, 7-10
	if got := countType(combos, Sequence); got != 3 {
		t.Fatalf("sequences = %d, want 3", got)
	}
}

func TestEnumerateCombosGroupTakesFirstN(t *testing.T) {
	rules := DefaultRules()
	hand := []Card{
		card(SuitSpade, 9),
		card(SuitHeart, 9),
		card(SuitDiamond, 9),
		card(SuitClub, 9),
	}

	combos := EnumerateCombos(hand, rules)

	var pair *Combo
	for i := range combos {
		if combos[i].Type == Pair {
			pair = &combos[i]
			break
		}
	}
	if pair == nil {
		t.Fatalf("no pair enumerated")
	}
	// first two cards in canonical order: club then diamond
	if pair.Cards[0].Suit != SuitClub || pair.Cards[1].Suit != SuitDiamond {
		t.Fatalf("pair cards = %s %s, want club then diamond", pair.Cards[0].Suit, pair.Cards[1].Suit)
	}
	if countType(combos, Quad) != 1 {
		t.Fatalf("expected one quad from four of a kind")
	}
}

func TestEnumerateCombosSequencesDisabled(t *testing.T) {
	rules := DefaultRules()
	rules.EnableSequences = false

	hand := []Card{
		card(SuitHeart, 7),
		card(SuitHeart, 8),
		card(SuitHeart, 9),
	}

	combos := EnumerateCombos(hand, rules)
	if got := countType(combos, Sequence); got != 0 {
		t.Fatalf("sequences = %d, want 0 when disabled", got)
	}
}

func TestEnumerateCombosJokerExcludedFromGroups(t *testing.T) {
	rules := DefaultRules()
	hand := []Card{card(SuitSpade, 15), joker()}

	combos := EnumerateCombos(hand, rules)
	if got := countType(combos, Pair); got != 0 {
		t.Fatalf("pairs = %d, want 0 (joker never joins a group)", got)
	}
	if got := countType(combos, Single); got != 2 {
		t.Fatalf("singles = %d, want 2", got)
	}
}
