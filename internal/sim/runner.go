package sim

import (
	"fmt"
	"math/rand"
	"runtime"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"daifugo/internal/bot"
	"daifugo/internal/domain"
)

// Options configures a simulation batch.
type Options struct {
	Matches  int
	Seed     int64
	Workers  int
	MaxTurns int
	Rules    domain.RuleSettings
}

// MatchResult is the outcome of one simulated match.
type MatchResult struct {
	MatchID   string
	Seed      int64
	Turns     int
	Winners   []string // player ids in finish order
	Truncated bool
	Err       error
}

// Summary aggregates a whole batch.
type Summary struct {
	Matches    int
	Failures   int
	Truncated  int
	TotalTurns int
	WinsBySeat [4]int // first-place counts per seat
}

// Runner plays full bot-vs-bot matches to exercise the engine end to end.
type Runner struct {
	log  *zap.Logger
	opts Options
}

func NewRunner(log *zap.Logger, opts Options) *Runner {
	if log == nil {
		log = zap.NewNop()
	}
	if opts.Matches <= 0 {
		opts.Matches = 1
	}
	if opts.Workers <= 0 {
		opts.Workers = runtime.NumCPU()
	}
	if opts.MaxTurns <= 0 {
		opts.MaxTurns = 2000
	}
	return &Runner{log: log, opts: opts}
}

// RunBatch plays the configured number of matches across a worker pool
// and aggregates the results. Match i always runs with seed Seed+i, so a
// batch is reproducible regardless of worker count.
func (r *Runner) RunBatch() Summary {
	tasks := make(chan int, r.opts.Matches)
	results := make(chan MatchResult, r.opts.Matches)

	var wg sync.WaitGroup
	for w := 0; w < r.opts.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range tasks {
				results <- r.RunMatch(r.opts.Seed + int64(i))
			}
		}()
	}
	for i := 0; i < r.opts.Matches; i++ {
		tasks <- i
	}
	close(tasks)
	wg.Wait()
	close(results)

	var summary Summary
	for res := range results {
		summary.Matches++
		summary.TotalTurns += res.Turns
		if res.Err != nil {
			summary.Failures++
			r.log.Warn("match failed",
				zap.String("match_id", res.MatchID),
				zap.Int64("seed", res.Seed),
				zap.Error(res.Err),
			)
			continue
		}
		if res.Truncated {
			summary.Truncated++
			continue
		}
		if len(res.Winners) > 0 {
			if seat := seatOfPlayerID(res.Winners[0]); seat >= 0 {
				summary.WinsBySeat[seat]++
			}
		}
	}
	return summary
}

// RunMatch plays one full match with four standard bots.
func (r *Runner) RunMatch(seed int64) MatchResult {
	result := MatchResult{MatchID: uuid.NewString(), Seed: seed}

	rng := rand.New(rand.NewSource(seed))
	rules := r.opts.Rules
	game := domain.NewGame(rng, domain.Config{
		Seats: []domain.SeatConfig{
			{Name: "Bot North"}, {Name: "Bot East"}, {Name: "Bot South"}, {Name: "Bot West"},
		},
		Rules: &rules,
	})

	dealt := make(map[string]bool)
	for i := range game.Players {
		for _, c := range game.Players[i].Hand {
			dealt[c.ID] = true
		}
	}

	agents := make(map[string]*bot.Agent, len(game.Players))
	for i := range game.Players {
		p := &game.Players[i]
		agent, err := bot.NewAgent(p.ID, p.Name, bot.BotLevelStandard)
		if err != nil {
			result.Err = err
			return result
		}
		agents[p.ID] = agent
	}

	for game.Phase == domain.PhasePlaying {
		if result.Turns >= r.opts.MaxTurns {
			result.Truncated = true
			break
		}
		result.Turns++

		if len(game.PendingEffects) > 0 {
			next, err := resolveHeadEffect(game, agents)
			if err != nil {
				result.Err = err
				return result
			}
			game = next
			continue
		}

		agent := agents[game.CurrentPlayerID]
		action, err := agent.Action(game)
		if err != nil {
			result.Err = err
			return result
		}
		next := domain.ApplyAction(game, action)
		if next == game {
			result.Err = fmt.Errorf("bot %s produced an illegal action on turn %d", game.CurrentPlayerID, result.Turns)
			return result
		}
		if err := checkConservation(dealt, next); err != nil {
			result.Err = err
			return result
		}
		game = next
	}

	result.Winners = game.Winners
	return result
}

// resolveHeadEffect lets the owning bot answer the queued effect, falling
// back to an explicit skip when its choice is rejected.
func resolveHeadEffect(game *domain.Game, agents map[string]*bot.Agent) (*domain.Game, error) {
	head := game.PendingEffects[0]
	agent := agents[head.OwnerID]
	if agent == nil {
		return nil, fmt.Errorf("effect owner %s has no agent", head.OwnerID)
	}
	resolution, ok, err := agent.ResolvePending(game)
	if err != nil {
		return nil, err
	}
	if ok {
		if next := domain.ResolveEffect(game, resolution); next != game {
			return next, nil
		}
	}
	next := domain.ResolveEffect(game, domain.EffectResolution{
		Type:     domain.ResolutionSkip,
		PlayerID: head.OwnerID,
	})
	if next == game {
		return nil, fmt.Errorf("effect %s for %s could not be resolved or skipped", head.Type, head.OwnerID)
	}
	return next, nil
}

// checkConservation verifies no card is duplicated or invented: every
// card in any hand was dealt, and no id appears twice.
func checkConservation(dealt map[string]bool, game *domain.Game) error {
	seen := make(map[string]bool)
	for i := range game.Players {
		for _, c := range game.Players[i].Hand {
			if !dealt[c.ID] {
				return fmt.Errorf("card %s appeared from nowhere", c.ID)
			}
			if seen[c.ID] {
				return fmt.Errorf("card %s is held twice", c.ID)
			}
			seen[c.ID] = true
		}
	}
	return nil
}

func seatOfPlayerID(id string) int {
	var n int
	if _, err := fmt.Sscanf(id, "player-%d", &n); err != nil || n < 1 || n > 4 {
		return -1
	}
	return n - 1
}
