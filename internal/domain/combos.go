package domain

import "sort"

// EnumerateCombos returns every legal combo obtainable from the hand:
// each single, each same-rank group of size 2..4 (first N cards of the
// rank; suit ties never change a group's strength), and, when sequences
// are enabled, every same-suit consecutive run of length >= 3 including
// the sub-runs of longer runs. Used by the bot layer to search options.
func EnumerateCombos(hand []Card, rules RuleSettings) []Combo {
	sorted := SortCards(hand)
	var combos []Combo

	for _, card := range sorted {
		constraint := card.Suit
		if card.IsJoker() {
			constraint = SuitNone
		}
		combos = append(combos, Combo{
			Type:           Single,
			Cards:          []Card{card},
			Strength:       card.Rank,
			Length:         1,
			SuitConstraint: constraint,
		})
	}

	byRank := make(map[int][]Card)
	for _, card := range sorted {
		if card.IsJoker() {
			continue
		}
		byRank[card.Rank] = append(byRank[card.Rank], card)
	}
	ranks := make([]int, 0, len(byRank))
	for rank := range byRank {
		ranks = append(ranks, rank)
	}
	sort.Ints(ranks)
	for _, rank := range ranks {
		group := byRank[rank]
		for size := 2; size <= 4 && size <= len(group); size++ {
			combos = append(combos, Combo{
				Type:           groupType(size),
				Cards:          append([]Card(nil), group[:size]...),
				Strength:       rank,
				Length:         size,
				SuitConstraint: SuitNone,
			})
		}
	}

	if rules.EnableSequences {
		combos = append(combos, enumerateSequences(sorted)...)
	}

	return combos
}

func enumerateSequences(sorted []Card) []Combo {
	bySuit := make(map[Suit][]Card)
	for _, card := range sorted {
		if card.IsJoker() {
			continue
		}
		bySuit[card.Suit] = append(bySuit[card.Suit], card)
	}

	var combos []Combo
	for _, suit := range Suits {
		cards := bySuit[suit]
		if len(cards) < 3 {
			continue
		}
		// cards are already rank-ascending within one suit; split into
		// maximal consecutive runs, then emit every window of length >= 3.
		run := []Card{cards[0]}
		for i := 1; i <= len(cards); i++ {
			if i < len(cards) && cards[i].Rank == run[len(run)-1].Rank+1 {
				run = append(run, cards[i])
				continue
			}
			combos = append(combos, sequenceWindows(run)...)
			if i < len(cards) {
				run = []Card{cards[i]}
			}
		}
	}
	return combos
}

func sequenceWindows(run []Card) []Combo {
	var combos []Combo
	for length := 3; length <= len(run); length++ {
		for start := 0; start+length <= len(run); start++ {
			window := append([]Card(nil), run[start:start+length]...)
			combos = append(combos, makeSequenceCombo(window))
		}
	}
	return combos
}
