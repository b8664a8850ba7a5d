package app

import (
	"math/rand"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"daifugo/internal/domain"
)

func testCard(suit domain.Suit, rank int) domain.Card {
	return domain.Card{ID: string(suit) + "-" + domain.RankLabel(rank), Suit: suit, Rank: rank}
}

// testMatch builds a fixed four-seat match, seat 0 ("player-1") to act.
func testMatch(rules domain.RuleSettings, hands ...[]domain.Card) *Match {
	game := &domain.Game{
		Phase:           domain.PhasePlaying,
		Rules:           rules,
		CurrentPlayerID: "player-1",
	}
	names := []string{"Alice", "Bob", "Chika", "Dai"}
	for i := 0; i < 4; i++ {
		var hand []domain.Card
		if i < len(hands) {
			hand = domain.SortCards(hands[i])
		}
		game.Players = append(game.Players, domain.Player{
			ID:   "player-" + string(rune('1'+i)),
			Name: names[i],
			Seat: i,
			Hand: hand,
		})
	}
	return &Match{ID: uuid.NewString(), State: game}
}

func kinds(events []Event) []EventKind {
	out := make([]EventKind, len(events))
	for i, e := range events {
		out[i] = e.Kind
	}
	return out
}

func TestCreateMatchDealsFourHands(t *testing.T) {
	svc := NewService(rand.New(rand.NewSource(11)))

	match, events, err := svc.CreateMatch(domain.Config{HumanName: "Alice"})
	require.NoError(t, err)
	require.NoError(t, uuid.Validate(match.ID))
	require.Len(t, match.State.Players, 4)
	require.Len(t, events, 5)

	total := 0
	for _, ev := range events[:4] {
		require.Equal(t, EventHandDealt, ev.Kind)
		payload := ev.Payload.(HandDealtPayload)
		require.Equal(t, []string{payload.PlayerID}, ev.Recipients)
		total += len(payload.Hand)
	}
	require.Equal(t, 53, total)

	opener := events[4]
	require.Equal(t, EventMatchCreated, opener.Kind)
	require.Empty(t, opener.Recipients)
	payload := opener.Payload.(MatchCreatedPayload)
	require.Equal(t, match.ID, payload.MatchID)
	require.Equal(t, match.State.CurrentPlayerID, payload.CurrentPlayerID)
}

func TestSubmitActionPlay(t *testing.T) {
	svc := NewService(rand.New(rand.NewSource(1)))
	five := testCard(domain.SuitHeart, 5)
	match := testMatch(domain.DefaultRules(),
		[]domain.Card{five, testCard(domain.SuitSpade, 12)},
		[]domain.Card{testCard(domain.SuitClub, 6)},
		[]domain.Card{testCard(domain.SuitClub, 7)},
		[]domain.Card{testCard(domain.SuitClub, 9)},
	)

	events, err := svc.SubmitAction(match, domain.PlayAction("player-1", []string{five.ID}))
	require.NoError(t, err)
	require.Equal(t, []EventKind{EventCardPlayed}, kinds(events))

	payload := events[0].Payload.(CardPlayedPayload)
	require.Equal(t, "player-1", payload.PlayerID)
	require.Equal(t, []domain.Card{five}, payload.Cards)
	require.Equal(t, domain.Single, payload.ComboType)
	require.Equal(t, "player-2", payload.NextPlayerID)
	require.Equal(t, 1, payload.RemainingInHand)
	require.Equal(t, "player-2", match.State.CurrentPlayerID)
}

func TestSubmitActionErrors(t *testing.T) {
	svc := NewService(rand.New(rand.NewSource(1)))
	five := testCard(domain.SuitHeart, 5)
	build := func() *Match {
		return testMatch(domain.DefaultRules(),
			[]domain.Card{five},
			[]domain.Card{testCard(domain.SuitClub, 6)},
			nil, nil,
		)
	}

	match := build()
	_, err := svc.SubmitAction(match, domain.PlayAction("player-2", []string{"x"}))
	require.ErrorIs(t, err, ErrNotYourTurn)

	_, err = svc.SubmitAction(match, domain.PlayAction("ghost", nil))
	require.ErrorIs(t, err, ErrUnknownPlayer)

	_, err = svc.SubmitAction(match, domain.PlayAction("player-1", []string{"missing"}))
	require.ErrorIs(t, err, ErrIllegalPlay)

	match.State.PendingEffects = []domain.PendingEffect{{Type: domain.EffectTenDiscard, OwnerID: "player-1", Remaining: 1}}
	_, err = svc.SubmitAction(match, domain.PassAction("player-1"))
	require.ErrorIs(t, err, ErrEffectPending)

	match = build()
	match.State.Phase = domain.PhaseFinished
	_, err = svc.SubmitAction(match, domain.PassAction("player-1"))
	require.ErrorIs(t, err, ErrNotPlaying)
}

func TestSubmitActionPassClearsField(t *testing.T) {
	svc := NewService(rand.New(rand.NewSource(1)))
	match := testMatch(domain.DefaultRules(),
		[]domain.Card{testCard(domain.SuitHeart, 5)},
		[]domain.Card{testCard(domain.SuitClub, 6)},
		[]domain.Card{testCard(domain.SuitClub, 7)},
		[]domain.Card{testCard(domain.SuitClub, 9)},
	)
	combo, ok := domain.AnalyzeCombo([]domain.Card{testCard(domain.SuitDiamond, 10)}, match.State.Rules)
	require.True(t, ok)
	match.State.Field.Combo = &combo
	match.State.Field.OwnerID = "player-4"
	match.State.PassesInRow = 2

	events, err := svc.SubmitAction(match, domain.PassAction("player-1"))
	require.NoError(t, err)
	require.Equal(t, []EventKind{EventTurnPassed, EventFieldCleared}, kinds(events))

	payload := events[0].Payload.(TurnPassedPayload)
	require.True(t, payload.FieldCleared)
	require.Equal(t, "player-4", payload.NextPlayerID)
	require.Nil(t, match.State.Field.Combo)
}

func TestSubmitActionFinishEmitsEndOfGame(t *testing.T) {
	svc := NewService(rand.New(rand.NewSource(1)))
	last := testCard(domain.SuitHeart, 14)
	match := testMatch(domain.DefaultRules(),
		[]domain.Card{last},
		[]domain.Card{testCard(domain.SuitClub, 6)},
		nil, nil,
	)
	match.State.Players[2].Finished = true
	match.State.Players[2].FinishOrder = 1
	match.State.Players[3].Finished = true
	match.State.Players[3].FinishOrder = 2
	match.State.Winners = []string{"player-3", "player-4"}

	events, err := svc.SubmitAction(match, domain.PlayAction("player-1", []string{last.ID}))
	require.NoError(t, err)
	require.Equal(t, []EventKind{EventCardPlayed, EventPlayerFinished, EventPlayerFinished, EventGameEnded}, kinds(events))

	ended := events[len(events)-1].Payload.(GameEndedPayload)
	require.Equal(t, []string{"player-3", "player-4", "player-1", "player-2"}, ended.Winners)
	require.Equal(t, domain.PhaseFinished, match.State.Phase)
}

func TestResolveEffectFlow(t *testing.T) {
	svc := NewService(rand.New(rand.NewSource(1)))
	rules := domain.DefaultRules()
	rules.TenDiscard = true
	ten := testCard(domain.SuitHeart, 10)
	junk := testCard(domain.SuitClub, 3)
	match := testMatch(rules,
		[]domain.Card{ten, junk, testCard(domain.SuitSpade, 13)},
		[]domain.Card{testCard(domain.SuitClub, 6)},
		[]domain.Card{testCard(domain.SuitClub, 7)},
		[]domain.Card{testCard(domain.SuitClub, 9)},
	)

	events, err := svc.SubmitAction(match, domain.PlayAction("player-1", []string{ten.ID}))
	require.NoError(t, err)
	require.Equal(t, []EventKind{EventCardPlayed, EventEffectPending}, kinds(events))
	pending := events[1]
	require.Equal(t, []string{"player-1"}, pending.Recipients)

	_, err = svc.ResolveEffect(match, domain.EffectResolution{
		Type: domain.ResolutionTenDiscard, PlayerID: "player-2", CardIDs: []string{junk.ID},
	})
	require.ErrorIs(t, err, ErrNotEffectOwner)

	_, err = svc.ResolveEffect(match, domain.EffectResolution{
		Type: domain.ResolutionTenDiscard, PlayerID: "player-1",
	})
	require.ErrorIs(t, err, ErrIllegalResolution)

	events, err = svc.ResolveEffect(match, domain.EffectResolution{
		Type: domain.ResolutionTenDiscard, PlayerID: "player-1", CardIDs: []string{junk.ID},
	})
	require.NoError(t, err)
	require.Equal(t, []EventKind{EventEffectResolved}, kinds(events))
	require.Empty(t, match.State.PendingEffects)

	_, err = svc.ResolveEffect(match, domain.EffectResolution{
		Type: domain.ResolutionSkip, PlayerID: "player-1",
	})
	require.ErrorIs(t, err, ErrNoEffectPending)
}
