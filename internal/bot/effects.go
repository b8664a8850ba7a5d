package bot

import (
	"sort"

	"daifugo/internal/domain"
)

// decideEffect resolves a pending special effect the way a reasonable
// player would: hand the receiver your biggest cards, bin your smallest,
// and bomb the ranks with the most cards on the table.
func decideEffect(game *domain.Game, effect domain.PendingEffect) (domain.EffectResolution, error) {
	owner := game.PlayerByID(effect.OwnerID)
	if owner == nil {
		return skip(effect), nil
	}

	switch effect.Type {
	case domain.EffectSevenGive:
		ids := pickFromHand(owner.Hand, effect.Remaining, true)
		if len(ids) == 0 {
			return skip(effect), nil
		}
		return domain.EffectResolution{
			Type:     domain.ResolutionSevenGive,
			PlayerID: effect.OwnerID,
			CardIDs:  ids,
		}, nil

	case domain.EffectTenDiscard:
		ids := pickFromHand(owner.Hand, effect.Remaining, false)
		if len(ids) == 0 {
			return skip(effect), nil
		}
		return domain.EffectResolution{
			Type:     domain.ResolutionTenDiscard,
			PlayerID: effect.OwnerID,
			CardIDs:  ids,
		}, nil

	case domain.EffectQueenBomb:
		ranks := bombRanks(game, effect.Remaining)
		if len(ranks) == 0 {
			return skip(effect), nil
		}
		return domain.EffectResolution{
			Type:     domain.ResolutionQueenBomb,
			PlayerID: effect.OwnerID,
			Ranks:    ranks,
		}, nil
	}
	return skip(effect), nil
}

func skip(effect domain.PendingEffect) domain.EffectResolution {
	return domain.EffectResolution{Type: domain.ResolutionSkip, PlayerID: effect.OwnerID}
}

// pickFromHand takes up to count cards from one end of the sorted hand:
// the top for give-aways, the bottom for discards.
func pickFromHand(hand []domain.Card, count int, highest bool) []string {
	if count > len(hand) {
		count = len(hand)
	}
	if count <= 0 {
		return nil
	}
	sorted := domain.SortCards(hand)
	var picked []domain.Card
	if highest {
		picked = sorted[len(sorted)-count:]
	} else {
		picked = sorted[:count]
	}
	ids := make([]string, len(picked))
	for i, c := range picked {
		ids[i] = c.ID
	}
	return ids
}

// bombRanks declares the most populous ranks across every hand, ties
// broken toward the higher rank, capped at the effect's remaining count.
func bombRanks(game *domain.Game, limit int) []int {
	counts := make(map[int]int)
	for i := range game.Players {
		for _, c := range game.Players[i].Hand {
			if c.Rank >= domain.MinRank && c.Rank <= domain.MaxRank {
				counts[c.Rank]++
			}
		}
	}
	if len(counts) == 0 || limit <= 0 {
		return nil
	}

	ranks := make([]int, 0, len(counts))
	for rank := range counts {
		ranks = append(ranks, rank)
	}
	sort.Slice(ranks, func(i, j int) bool {
		if counts[ranks[i]] != counts[ranks[j]] {
			return counts[ranks[i]] > counts[ranks[j]]
		}
		return ranks[i] > ranks[j]
	})
	if len(ranks) > limit {
		ranks = ranks[:limit]
	}
	return ranks
}
