package nakama

import (
	"encoding/json"
	"testing"

	"daifugo/internal/app"
	"daifugo/internal/bot"
	"daifugo/internal/domain"

	"github.com/heroiclabs/nakama-common/runtime"
)

// noopLogger implements runtime.Logger for tests that only need to satisfy the interface.
type noopLogger struct{}

func (noopLogger) Debug(string, ...interface{}) {}
func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}
func (noopLogger) WithField(string, interface{}) runtime.Logger {
	return noopLogger{}
}
func (noopLogger) WithFields(map[string]interface{}) runtime.Logger {
	return noopLogger{}
}
func (noopLogger) Fields() map[string]interface{} {
	return nil
}

// mockDispatcher records match dispatcher calls for assertions.
type mockDispatcher struct {
	broadcastCount int
	labelUpdates   int
	lastLabel      string
	opCodes        []int64
}

func (md *mockDispatcher) BroadcastMessage(opCode int64, data []byte, presences []runtime.Presence, sender runtime.Presence, reliable bool) error {
	md.broadcastCount++
	md.opCodes = append(md.opCodes, opCode)
	return nil
}

func (md *mockDispatcher) BroadcastMessageDeferred(opCode int64, data []byte, presences []runtime.Presence, sender runtime.Presence, reliable bool) error {
	return nil
}

func (md *mockDispatcher) MatchKick(presences []runtime.Presence) error {
	return nil
}

func (md *mockDispatcher) MatchLabelUpdate(label string) error {
	md.labelUpdates++
	md.lastLabel = label
	return nil
}

type mockPresence struct {
	userID   string
	username string
}

func (p mockPresence) GetUserId() string                  { return p.userID }
func (p mockPresence) GetSessionId() string               { return "session-" + p.userID }
func (p mockPresence) GetNodeId() string                  { return "node" }
func (p mockPresence) GetHidden() bool                    { return false }
func (p mockPresence) GetPersistence() bool               { return true }
func (p mockPresence) GetUsername() string                { return p.username }
func (p mockPresence) GetStatus() string                  { return "" }
func (p mockPresence) GetReason() runtime.PresenceReason  { return runtime.PresenceReasonJoin }

type mockMatchData struct {
	mockPresence
	opCode int64
	data   []byte
}

func (m mockMatchData) GetOpCode() int64      { return m.opCode }
func (m mockMatchData) GetData() []byte       { return m.data }
func (m mockMatchData) GetReliable() bool     { return true }
func (m mockMatchData) GetReceiveTime() int64 { return 0 }

func init() {
	if err := bot.LoadIdentities("testdata/bot_identities.json"); err != nil {
		panic("failed to load bot identities for tests: " + err.Error())
	}
}

func newLobbyState() *MatchState {
	return &MatchState{
		OwnerSeat:    -1,
		Presences:    make(map[string]runtime.Presence),
		App:          app.NewService(nil),
		Bots:         make(map[string]*bot.Agent),
		BotMinDelay:  1,
		BotMaxDelay:  2,
		BotFillDelay: 1,
		Rules:        domain.DefaultRules(),
	}
}

func TestSeatDomainIDRoundTrip(t *testing.T) {
	for seat := 0; seat < 4; seat++ {
		if got := seatForDomainID(domainIDForSeat(seat)); got != seat {
			t.Fatalf("round trip for seat %d gave %d", seat, got)
		}
	}
	if got := seatForDomainID("weird"); got != -1 {
		t.Fatalf("malformed id should map to -1, got %d", got)
	}
	if got := seatForDomainID(""); got != -1 {
		t.Fatalf("empty id should map to -1, got %d", got)
	}
}

func TestFindFirstHumanSeat(t *testing.T) {
	bot1 := bot.GetBotIdentity(0).UserID
	bot2 := bot.GetBotIdentity(1).UserID

	tests := []struct {
		name  string
		seats []string
		want  int
	}{
		{name: "FirstHumanAfterBot", seats: []string{bot1, "user-1", "", ""}, want: 1},
		{name: "AllBots", seats: []string{bot1, bot2, "", ""}, want: -1},
		{name: "AllEmpty", seats: []string{"", "", "", ""}, want: -1},
		{name: "FirstHumanIsSeatZero", seats: []string{"user-1", bot1, "user-2", ""}, want: 0},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			if got := findFirstHumanSeat(test.seats); got != test.want {
				t.Fatalf("findFirstHumanSeat() = %d, want %d", got, test.want)
			}
		})
	}
}

func TestMakeLabel(t *testing.T) {
	state := newLobbyState()
	var label matchLabel
	if err := json.Unmarshal([]byte(makeLabel(state)), &label); err != nil {
		t.Fatalf("label is not valid JSON: %v", err)
	}
	if label.Game != MatchLabelGame || label.Open != 4 || label.Phase != "lobby" {
		t.Fatalf("unexpected lobby label: %+v", label)
	}

	state.Seats[0] = "user-1"
	state.Match = &app.Match{State: &domain.Game{Phase: domain.PhasePlaying}}
	if err := json.Unmarshal([]byte(makeLabel(state)), &label); err != nil {
		t.Fatalf("label is not valid JSON: %v", err)
	}
	if label.Open != 3 || label.Phase != "playing" {
		t.Fatalf("unexpected playing label: %+v", label)
	}
}

func TestHandleStartGameFillsEmptySeatsWithBots(t *testing.T) {
	mh := &matchHandler{}
	dispatcher := &mockDispatcher{}
	state := newLobbyState()
	human := mockPresence{userID: "user-1", username: "Alice"}
	state.Seats[0] = human.userID
	state.OwnerSeat = 0
	state.Presences[human.userID] = human

	mh.handleStartGame(state, dispatcher, noopLogger{}, mockMatchData{
		mockPresence: human,
		opCode:       OpStartGame,
	})

	if state.Match == nil {
		t.Fatalf("start game did not create a match")
	}
	if state.Match.State.Phase != domain.PhasePlaying {
		t.Fatalf("phase = %s, want playing", state.Match.State.Phase)
	}
	for i, seat := range state.Seats {
		if seat == "" {
			t.Fatalf("seat %d still empty after start", i)
		}
	}
	if len(state.Bots) != 3 {
		t.Fatalf("bot agents = %d, want 3", len(state.Bots))
	}
	if dispatcher.labelUpdates == 0 || dispatcher.broadcastCount == 0 {
		t.Fatalf("start game must update the label and broadcast")
	}

	// only the human seat carries the human flag
	for i := range state.Match.State.Players {
		p := &state.Match.State.Players[i]
		if p.IsHuman != (p.Seat == 0) {
			t.Fatalf("seat %d human flag = %t", p.Seat, p.IsHuman)
		}
	}
}

func TestHandleStartGameRejectsNonOwner(t *testing.T) {
	mh := &matchHandler{}
	state := newLobbyState()
	state.Seats[0] = "user-1"
	state.Seats[1] = "user-2"
	state.OwnerSeat = 0

	mh.handleStartGame(state, &mockDispatcher{}, noopLogger{}, mockMatchData{
		mockPresence: mockPresence{userID: "user-2"},
		opCode:       OpStartGame,
	})
	if state.Match != nil {
		t.Fatalf("non-owner must not start the game")
	}
}

func TestProcessBotsAutoFillsLonelyLobby(t *testing.T) {
	mh := &matchHandler{}
	dispatcher := &mockDispatcher{}
	state := newLobbyState()
	state.Seats[0] = "user-1"
	state.Presences["user-1"] = mockPresence{userID: "user-1", username: "Alice"}

	state.Tick = 10
	mh.processBots(state, dispatcher, noopLogger{})
	if state.openSeatCount() != 3 {
		t.Fatalf("fill must wait for the delay")
	}

	state.Tick = 12
	mh.processBots(state, dispatcher, noopLogger{})
	if state.openSeatCount() != 0 {
		t.Fatalf("open seats = %d after delay, want 0", state.openSeatCount())
	}
	if len(state.Bots) != 3 {
		t.Fatalf("bot agents = %d, want 3", len(state.Bots))
	}
}

func TestProcessBotsDrivesBotTurn(t *testing.T) {
	mh := &matchHandler{}
	dispatcher := &mockDispatcher{}
	state := newLobbyState()
	human := mockPresence{userID: "user-1", username: "Alice"}
	state.Seats[0] = human.userID
	state.OwnerSeat = 0
	state.Presences[human.userID] = human

	mh.handleStartGame(state, dispatcher, noopLogger{}, mockMatchData{
		mockPresence: human,
		opCode:       OpStartGame,
	})
	if state.Match == nil {
		t.Fatalf("start game failed")
	}

	// swap in a fixed state where the bot in seat 1 holds the turn
	card := func(suit domain.Suit, rank int) domain.Card {
		return domain.Card{ID: string(suit) + "-" + domain.RankLabel(rank), Suit: suit, Rank: rank}
	}
	game := state.Match.State.Snapshot()
	restored, err := domain.Hydrate(game)
	if err != nil {
		t.Fatalf("hydrate: %v", err)
	}
	for i := range restored.Players {
		restored.Players[i].Hand = []domain.Card{card(domain.SuitHeart, 4+i)}
	}
	restored.CurrentPlayerID = domainIDForSeat(1)
	restored.Field = domain.FieldState{}
	restored.PendingEffects = nil
	state.Match.State = restored

	// run ticks until the bot's think delay elapses and its action lands
	before := len(restored.Log)
	for tick := int64(1); tick <= 20; tick++ {
		state.Tick = tick
		mh.processBots(state, dispatcher, noopLogger{})
		if len(state.Match.State.Log) > before {
			if got := seatForDomainID(state.Match.State.Field.OwnerID); got != 1 {
				t.Fatalf("field owner seat = %d, want 1", got)
			}
			return
		}
	}
	t.Fatalf("no bot action within 20 ticks")
}
