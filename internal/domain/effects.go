package domain

import (
	"fmt"
	"strings"
)

// collectSpecialEffects inspects a just-played combo against the active
// rules and returns the effects to queue, in fixed priority order:
// seven-give, ten-discard, queen-bomb. Runs after finish settlement so a
// seat that just went out can still own an effect, but never once the
// match is over.
func collectSpecialEffects(state *Game, player *Player, combo Combo) []PendingEffect {
	if state.Phase != PhasePlaying {
		return nil
	}
	var effects []PendingEffect

	if state.Rules.SevenGive {
		if count := countRank(combo.Cards, RankSeven); count > 0 {
			targetID := nextActivePlayerID(state.Players, player.ID)
			if targetID != "" && targetID != player.ID {
				effects = append(effects, PendingEffect{
					Type:      EffectSevenGive,
					OwnerID:   player.ID,
					TargetID:  targetID,
					Remaining: count,
				})
			}
		}
	}
	if state.Rules.TenDiscard {
		if count := countRank(combo.Cards, RankTen); count > 0 {
			effects = append(effects, PendingEffect{
				Type:      EffectTenDiscard,
				OwnerID:   player.ID,
				Remaining: count,
			})
		}
	}
	if state.Rules.QueenBomb {
		if count := countRank(combo.Cards, RankQueen); count > 0 {
			effects = append(effects, PendingEffect{
				Type:      EffectQueenBomb,
				OwnerID:   player.ID,
				Remaining: count,
			})
		}
	}
	return effects
}

// ResolveEffect applies a resolution to the head of the pending-effect
// queue and returns the next state. Illegal resolutions return the state
// unchanged: empty queue, non-owner, a kind that does not match the head,
// unknown cards, out-of-range ranks or zero usable input.
//
// Seven-give and ten-discard consume up to Remaining cards and re-queue
// any shortfall at the head. Queen-bomb is a single atomic declaration:
// it always consumes the whole effect, however many ranks are declared.
func ResolveEffect(state *Game, resolution EffectResolution) *Game {
	if state.Phase != PhasePlaying {
		return state
	}
	if len(state.PendingEffects) == 0 {
		return state
	}

	effect := state.PendingEffects[0]
	if resolution.PlayerID != effect.OwnerID {
		return state
	}

	if resolution.Type == ResolutionSkip {
		next := state.clone()
		next.PendingEffects = next.PendingEffects[1:]
		if owner := next.PlayerByID(effect.OwnerID); owner != nil {
			next.appendLog(fmt.Sprintf("%s declines the effect", owner.Name))
		}
		return next
	}

	switch {
	case effect.Type == EffectSevenGive && resolution.Type == ResolutionSevenGive:
		return resolveSevenGive(state, effect, resolution)
	case effect.Type == EffectTenDiscard && resolution.Type == ResolutionTenDiscard:
		return resolveTenDiscard(state, effect, resolution)
	case effect.Type == EffectQueenBomb && resolution.Type == ResolutionQueenBomb:
		return resolveQueenBomb(state, effect, resolution)
	default:
		return state
	}
}

func resolveSevenGive(state *Game, effect PendingEffect, resolution EffectResolution) *Game {
	ids := limitStrings(resolution.CardIDs, effect.Remaining)
	if len(ids) == 0 {
		return state
	}

	next := state.clone()
	owner := next.PlayerByID(effect.OwnerID)
	target := next.PlayerByID(effect.TargetID)
	if owner == nil || target == nil {
		return state
	}

	taken, ok := cardsByID(owner.Hand, ids)
	if !ok {
		return state
	}

	owner.Hand = SortCards(removeByID(owner.Hand, taken))
	target.Hand = SortCards(append(target.Hand, taken...))

	next.PendingEffects = requeueRemainder(next.PendingEffects, effect, len(taken))
	next.appendLog(fmt.Sprintf("%s gives %d card(s) to %s", owner.Name, len(taken), target.Name))

	settleFinishes(next, next.CurrentPlayerID, effect.OwnerID)
	return next
}

func resolveTenDiscard(state *Game, effect PendingEffect, resolution EffectResolution) *Game {
	ids := limitStrings(resolution.CardIDs, effect.Remaining)
	if len(ids) == 0 {
		return state
	}

	next := state.clone()
	owner := next.PlayerByID(effect.OwnerID)
	if owner == nil {
		return state
	}

	taken, ok := cardsByID(owner.Hand, ids)
	if !ok {
		return state
	}

	// Discarded cards leave the game permanently.
	owner.Hand = SortCards(removeByID(owner.Hand, taken))

	next.PendingEffects = requeueRemainder(next.PendingEffects, effect, len(taken))
	next.appendLog(fmt.Sprintf("%s discards %s", owner.Name, FormatCards(taken)))

	settleFinishes(next, next.CurrentPlayerID, effect.OwnerID)
	return next
}

func resolveQueenBomb(state *Game, effect PendingEffect, resolution EffectResolution) *Game {
	ranks := distinctRanks(resolution.Ranks, effect.Remaining)
	if len(ranks) == 0 {
		return state
	}
	for _, rank := range ranks {
		if rank < MinRank || rank > MaxRank {
			return state
		}
	}

	next := state.clone()
	next.PendingEffects = next.PendingEffects[1:]

	removedTotal := 0
	var detail []string
	for i := range next.Players {
		p := &next.Players[i]
		var removed []Card
		kept := make([]Card, 0, len(p.Hand))
		for _, card := range p.Hand {
			if rankDeclared(ranks, card.Rank) {
				removed = append(removed, card)
			} else {
				kept = append(kept, card)
			}
		}
		if len(removed) == 0 {
			continue
		}
		p.Hand = SortCards(kept)
		removedTotal += len(removed)
		detail = append(detail, fmt.Sprintf("%s: %s", p.Name, FormatCards(removed)))
	}

	labels := make([]string, len(ranks))
	for i, rank := range ranks {
		labels[i] = RankLabel(rank)
	}
	entry := fmt.Sprintf("queen bomb: %s declared, %d card(s) discarded", strings.Join(labels, ", "), removedTotal)
	if len(detail) > 0 {
		entry += " (" + strings.Join(detail, " / ") + ")"
	}
	next.appendLog(entry)

	settleFinishes(next, next.CurrentPlayerID, effect.OwnerID)
	return next
}

// requeueRemainder drops the head effect and puts back the unconsumed
// remainder, if any, at the front of the queue.
func requeueRemainder(queue []PendingEffect, effect PendingEffect, consumed int) []PendingEffect {
	rest := append([]PendingEffect(nil), queue[1:]...)
	left := effect.Remaining - consumed
	if left <= 0 {
		return rest
	}
	effect.Remaining = left
	return append([]PendingEffect{effect}, rest...)
}

func limitStrings(values []string, limit int) []string {
	if len(values) > limit {
		return values[:limit]
	}
	return values
}

func distinctRanks(ranks []int, limit int) []int {
	seen := make(map[int]bool, len(ranks))
	out := make([]int, 0, len(ranks))
	for _, rank := range ranks {
		if seen[rank] {
			continue
		}
		seen[rank] = true
		out = append(out, rank)
		if len(out) == limit {
			break
		}
	}
	return out
}

func rankDeclared(ranks []int, rank int) bool {
	for _, r := range ranks {
		if r == rank {
			return true
		}
	}
	return false
}

func countRank(cards []Card, rank int) int {
	count := 0
	for _, card := range cards {
		if card.Rank == rank {
			count++
		}
	}
	return count
}
