package domain

import (
	"fmt"
	"math/rand"
	"sort"
)

// Suits lists the four standard suits in deck-construction order.
var Suits = []Suit{SuitSpade, SuitHeart, SuitDiamond, SuitClub}

// suitOrder is the canonical tie-break order within a rank, weakest first.
var suitOrder = map[Suit]int{
	SuitClub:    0,
	SuitDiamond: 1,
	SuitHeart:   2,
	SuitSpade:   3,
}

// NewDeck builds the 52-card deck plus the configured number of jokers.
// Card ids are deterministic so snapshots round-trip across processes.
func NewDeck(rules RuleSettings) []Card {
	deck := make([]Card, 0, 52+rules.JokerCount)
	counter := 0
	for _, suit := range Suits {
		for rank := MinRank; rank <= MaxRank; rank++ {
			deck = append(deck, Card{
				ID:   fmt.Sprintf("%s-%d-%d", suit, rank, counter),
				Suit: suit,
				Rank: rank,
			})
			counter++
		}
	}
	for i := 0; i < rules.JokerCount; i++ {
		deck = append(deck, Card{
			ID:   fmt.Sprintf("joker-%d", i),
			Suit: SuitJoker,
			Rank: RankJoker,
		})
	}
	return deck
}

// Shuffle returns a shuffled copy of the deck using the provided rng.
func Shuffle(rng *rand.Rand, deck []Card) []Card {
	out := append([]Card(nil), deck...)
	rng.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}

// SortCards returns a copy ordered by rank ascending, then canonical suit
// order. Jokers sort last.
func SortCards(cards []Card) []Card {
	out := append([]Card(nil), cards...)
	sort.SliceStable(out, func(i, j int) bool {
		return cardOrder(out[i]) < cardOrder(out[j])
	})
	return out
}

func cardOrder(c Card) int {
	if c.IsJoker() {
		return c.Rank*8 + 7
	}
	return c.Rank*8 + suitOrder[c.Suit]
}
