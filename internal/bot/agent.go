package bot

import (
	"daifugo/internal/domain"
)

// Agent represents an autonomous bot player bound to one seat.
type Agent struct {
	ID       string
	Name     string
	Strategy Brain
}

// Play asks the agent to calculate its move for the current state.
func (a *Agent) Play(game *domain.Game) (Move, error) {
	player := game.PlayerByID(a.ID)
	if player == nil {
		// Agent is not part of this game
		return Move{Pass: true}, nil
	}
	move, err := a.Strategy.CalculateMove(game, player)
	if err != nil {
		return Move{Pass: true}, err
	}
	return move, nil
}

// Action converts the agent's move into an engine action.
func (a *Agent) Action(game *domain.Game) (domain.Action, error) {
	move, err := a.Play(game)
	if err != nil || move.Pass {
		return domain.PassAction(a.ID), err
	}
	return domain.PlayAction(a.ID, move.CardIDs()), nil
}

// ResolvePending answers the head of the effect queue when this agent
// owns it.
func (a *Agent) ResolvePending(game *domain.Game) (domain.EffectResolution, bool, error) {
	if len(game.PendingEffects) == 0 || game.PendingEffects[0].OwnerID != a.ID {
		return domain.EffectResolution{}, false, nil
	}
	resolution, err := a.Strategy.DecideEffect(game, game.PendingEffects[0])
	if err != nil {
		return domain.EffectResolution{}, false, err
	}
	return resolution, true, nil
}
