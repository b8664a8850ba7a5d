package bot

import (
	"daifugo/internal/domain"
)

// Move represents the decision made by the AI for one turn.
type Move struct {
	Pass  bool
	Cards []domain.Card
}

// CardIDs returns the ids of the chosen cards, in play order.
func (m Move) CardIDs() []string {
	ids := make([]string, len(m.Cards))
	for i, c := range m.Cards {
		ids[i] = c.ID
	}
	return ids
}

// Brain is the interface that all bot strategies must implement.
type Brain interface {
	CalculateMove(game *domain.Game, player *domain.Player) (Move, error)
	DecideEffect(game *domain.Game, effect domain.PendingEffect) (domain.EffectResolution, error)
}
