package domain

import (
	"encoding/json"
	"math/rand"
	"reflect"
	"testing"
)

func TestSnapshotRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	rules := DefaultRules()
	rules.SevenGive = true
	rules.TenDiscard = true
	game := NewGame(rng, Config{HumanName: "Alice", Rules: &rules})

	// move the match into a mid-game shape worth preserving
	game.Field.Revolution = true
	game.Field.ShibariSuit = SuitHeart
	game.Field.StreakSuit = SuitHeart
	game.Field.StreakCount = 2
	combo, ok := AnalyzeCombo([]Card{game.Players[0].Hand[0]}, rules)
	if !ok {
		t.Fatalf("single should always analyze")
	}
	game.Field.Combo = &combo
	game.Field.OwnerID = game.Players[0].ID
	game.PassesInRow = 2
	game.PendingEffects = []PendingEffect{
		{Type: EffectSevenGive, OwnerID: game.Players[0].ID, TargetID: game.Players[1].ID, Remaining: 1},
	}
	game.Players[2].Finished = true
	game.Players[2].FinishOrder = 1
	game.Winners = []string{game.Players[2].ID}

	snap := game.Snapshot()
	raw, err := json.Marshal(snap)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var decoded GameSnapshot
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	restored, err := Hydrate(decoded)
	if err != nil {
		t.Fatalf("hydrate: %v", err)
	}
	if !reflect.DeepEqual(game, restored) {
		t.Fatalf("round trip diverged\n got: %+v\nwant: %+v", restored, game)
	}
}

func TestHydrateRejectsBadInput(t *testing.T) {
	game := NewGame(rand.New(rand.NewSource(1)), Config{HumanName: "Alice"})

	snap := game.Snapshot()
	snap.Phase = "paused"
	if _, err := Hydrate(snap); err == nil {
		t.Fatalf("unknown phase should fail")
	}

	snap = game.Snapshot()
	combo, _ := AnalyzeCombo([]Card{game.Players[0].Hand[0]}, game.Rules)
	game.Field.Combo = &combo
	snap = game.Snapshot()
	snap.Field.Combo.Type = "flush"
	if _, err := Hydrate(snap); err == nil {
		t.Fatalf("unknown combo type should fail")
	}
}
