package bot

import (
	"sort"

	"daifugo/internal/domain"
)

// StandardBot plays the weakest combo that wins the field, and when leading
// prefers dumping small shapes first. Weakness is direction-aware, so under
// a revolution it sheds from the top of the hand instead.
type StandardBot struct{}

func (b *StandardBot) CalculateMove(game *domain.Game, player *domain.Player) (Move, error) {
	if player == nil || len(player.Hand) == 0 {
		return Move{Pass: true}, nil
	}

	candidates := domain.EnumerateCombos(player.Hand, game.Rules)
	playable := candidates[:0:0]
	for _, combo := range candidates {
		if domain.CanBeatField(game.Field, combo) {
			playable = append(playable, combo)
		}
	}
	if len(playable) == 0 {
		return Move{Pass: true}, nil
	}

	dir := domain.Direction(game.Field)
	if game.Field.Combo != nil {
		// respond with the cheapest winning combo
		sort.SliceStable(playable, func(i, j int) bool {
			return dir*playable[i].Strength < dir*playable[j].Strength
		})
	} else {
		// lead with the smallest shape, then the cheapest of that shape
		sort.SliceStable(playable, func(i, j int) bool {
			if len(playable[i].Cards) != len(playable[j].Cards) {
				return len(playable[i].Cards) < len(playable[j].Cards)
			}
			return dir*playable[i].Strength < dir*playable[j].Strength
		})
	}

	return Move{Cards: playable[0].Cards}, nil
}

func (b *StandardBot) DecideEffect(game *domain.Game, effect domain.PendingEffect) (domain.EffectResolution, error) {
	return decideEffect(game, effect)
}
