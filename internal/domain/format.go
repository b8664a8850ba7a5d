package domain

import (
	"fmt"
	"strings"
)

var suitSymbols = map[Suit]string{
	SuitSpade:   "♠",
	SuitHeart:   "♥",
	SuitDiamond: "♦",
	SuitClub:    "♣",
}

var rankLabels = map[int]string{
	11: "J",
	12: "Q",
	13: "K",
	14: "A",
	15: "2",
	16: "Jo",
}

// RankLabel returns the display label for a rank ("3".."10", "J", "Q",
// "K", "A", "2", "Jo").
func RankLabel(rank int) string {
	if label, ok := rankLabels[rank]; ok {
		return label
	}
	return fmt.Sprintf("%d", rank)
}

// Label returns the display label for a card, e.g. "Q♥" or "Joker".
func (c Card) Label() string {
	if c.IsJoker() {
		return "Joker"
	}
	return RankLabel(c.Rank) + suitSymbols[c.Suit]
}

// FormatCards renders cards as space-separated labels.
func FormatCards(cards []Card) string {
	labels := make([]string, len(cards))
	for i, card := range cards {
		labels[i] = card.Label()
	}
	return strings.Join(labels, " ")
}

// FormatCombo renders a combo with its type, e.g. "pair (Q♥ Q♠)".
func FormatCombo(combo Combo) string {
	return fmt.Sprintf("%s (%s)", combo.Type, FormatCards(combo.Cards))
}
