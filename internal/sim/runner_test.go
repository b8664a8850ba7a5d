package sim

import (
	"testing"

	"github.com/stretchr/testify/require"

	"daifugo/internal/domain"
)

func TestRunMatchPlaysToCompletion(t *testing.T) {
	runner := NewRunner(nil, Options{Rules: domain.DefaultRules()})

	res := runner.RunMatch(1)
	require.NoError(t, res.Err)
	require.False(t, res.Truncated)
	require.NotEmpty(t, res.MatchID)
	require.Len(t, res.Winners, 4)
	require.Greater(t, res.Turns, 4)
}

func TestRunMatchIsDeterministicPerSeed(t *testing.T) {
	runner := NewRunner(nil, Options{Rules: domain.DefaultRules()})

	a := runner.RunMatch(42)
	b := runner.RunMatch(42)
	require.NoError(t, a.Err)
	require.NoError(t, b.Err)
	require.Equal(t, a.Winners, b.Winners)
	require.Equal(t, a.Turns, b.Turns)
}

func TestRunMatchWithAllEffects(t *testing.T) {
	rules := domain.DefaultRules()
	rules.SevenGive = true
	rules.TenDiscard = true
	rules.QueenBomb = true
	rules.JokerCount = 2
	runner := NewRunner(nil, Options{Rules: rules})

	for seed := int64(1); seed <= 5; seed++ {
		res := runner.RunMatch(seed)
		require.NoError(t, res.Err, "seed %d", seed)
		require.False(t, res.Truncated, "seed %d", seed)
		require.Len(t, res.Winners, 4, "seed %d", seed)
	}
}

func TestRunBatchAggregates(t *testing.T) {
	runner := NewRunner(nil, Options{
		Matches: 8,
		Seed:    100,
		Workers: 2,
		Rules:   domain.DefaultRules(),
	})

	summary := runner.RunBatch()
	require.Equal(t, 8, summary.Matches)
	require.Zero(t, summary.Failures)
	require.Zero(t, summary.Truncated)
	require.Greater(t, summary.TotalTurns, 0)

	wins := 0
	for _, n := range summary.WinsBySeat {
		wins += n
	}
	require.Equal(t, 8, wins)
}
