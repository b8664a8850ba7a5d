package nakama

import (
	"context"
	"database/sql"
	"encoding/json"
	"math/rand"

	"daifugo/internal/app"
	"daifugo/internal/bot"
	"daifugo/internal/config"
	"daifugo/internal/domain"

	"github.com/heroiclabs/nakama-common/runtime"
)

// MatchState holds the authoritative runtime state for the Nakama match handler.
type MatchState struct {
	Seats          [4]string                   `json:"seats"`      // user ids, empty string means seat is empty
	OwnerSeat      int                         `json:"owner_seat"` // seat index of the match owner
	Tick           int64                       `json:"tick"`
	Presences      map[string]runtime.Presence `json:"-"`
	App            *app.Service                `json:"-"`
	Match          *app.Match                  `json:"-"` // nil while in the lobby
	Bots           map[string]*bot.Agent       `json:"-"`
	BotMinDelay    int                         `json:"bot_min_delay"` // ticks a bot waits before acting
	BotMaxDelay    int                         `json:"bot_max_delay"`
	BotFillDelay   int                         `json:"bot_fill_delay"` // ticks before bots take empty lobby seats
	BotWaitUntil   int64                       `json:"bot_wait_until"`
	SoloSinceTick  int64                       `json:"solo_since_tick"`
	IdentitiesPath string                      `json:"-"`
	Rules          domain.RuleSettings         `json:"rules"`
}

func (ms *MatchState) openSeatCount() int {
	count := 0
	for _, seat := range ms.Seats {
		if seat == "" {
			count++
		}
	}
	return count
}

func (ms *MatchState) humanSeatCount() int {
	count := 0
	for _, seat := range ms.Seats {
		if seat != "" && !bot.IsBot(seat) {
			count++
		}
	}
	return count
}

func (ms *MatchState) seatOf(userID string) int {
	for i, seat := range ms.Seats {
		if seat != "" && seat == userID {
			return i
		}
	}
	return -1
}

// isHumanSeat reports whether the seat index belongs to a human player.
func isHumanSeat(seats []string, seatIndex int) bool {
	if seatIndex < 0 || seatIndex >= len(seats) {
		return false
	}
	userID := seats[seatIndex]
	return userID != "" && !bot.IsBot(userID)
}

// findFirstHumanSeat returns the first seat index with a human occupant or -1 if none exist.
func findFirstHumanSeat(seats []string) int {
	for i, userID := range seats {
		if userID != "" && !bot.IsBot(userID) {
			return i
		}
	}
	return -1
}

// NewMatch is the factory function registered with Nakama.
func NewMatch(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule) (runtime.Match, error) {
	return &matchHandler{}, nil
}

type matchHandler struct{}

// matchLabel is the JSON document Nakama indexes for match listing.
type matchLabel struct {
	Game  string `json:"game"`
	Open  int    `json:"open"`
	Phase string `json:"phase"`
}

func (mh *matchHandler) MatchInit(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, params map[string]interface{}) (interface{}, int, string) {
	cfg := config.Get()

	if err := bot.LoadIdentities(cfg.Bot.IdentitiesPath); err != nil {
		logger.Warn("MatchInit: could not load bot identities: %v", err)
	}

	state := &MatchState{
		OwnerSeat:      -1,
		Presences:      make(map[string]runtime.Presence),
		App:            app.NewService(nil),
		Bots:           make(map[string]*bot.Agent),
		BotMinDelay:    cfg.Bot.ThinkMinMillis / 1000,
		BotMaxDelay:    cfg.Bot.ThinkMaxMillis/1000 + 1,
		BotFillDelay:   cfg.Bot.AutoFillDelaySeconds,
		IdentitiesPath: cfg.Bot.IdentitiesPath,
		Rules:          cfg.RuleSettings(),
	}
	if state.BotMinDelay < 1 {
		state.BotMinDelay = 1
	}
	if state.BotMaxDelay <= state.BotMinDelay {
		state.BotMaxDelay = state.BotMinDelay + 1
	}

	tickRate := 1
	return state, tickRate, makeLabel(state)
}

func makeLabel(state *MatchState) string {
	phase := "lobby"
	if state.Match != nil {
		phase = string(state.Match.State.Phase)
	}
	raw, _ := json.Marshal(matchLabel{
		Game:  MatchLabelGame,
		Open:  state.openSeatCount(),
		Phase: phase,
	})
	return string(raw)
}

func (mh *matchHandler) MatchJoinAttempt(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, presence runtime.Presence, metadata map[string]string) (interface{}, bool, string) {
	matchState, ok := state.(*MatchState)
	if !ok {
		return state, false, "state not found"
	}

	// allow join when there is an empty seat, or a bot to displace in the lobby
	if matchState.openSeatCount() <= 0 {
		hasBot := false
		if matchState.Match == nil {
			for _, seat := range matchState.Seats {
				if bot.IsBot(seat) {
					hasBot = true
					break
				}
			}
		}
		if !hasBot {
			return state, false, "match full"
		}
	}
	return state, true, ""
}

func (mh *matchHandler) MatchJoin(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, presences []runtime.Presence) interface{} {
	matchState, ok := state.(*MatchState)
	if !ok {
		logger.Error("MatchJoin: state not found")
		return state
	}

	for _, p := range presences {
		matchState.Presences[p.GetUserId()] = p

		assigned := false
		for i, seatUserID := range matchState.Seats {
			if seatUserID == "" {
				matchState.Seats[i] = p.GetUserId()
				assigned = true
				break
			}
		}
		if !assigned && matchState.Match == nil {
			for i, seatUserID := range matchState.Seats {
				if bot.IsBot(seatUserID) {
					logger.Info("MatchJoin: replacing bot %s with human %s in seat %d", seatUserID, p.GetUserId(), i)
					delete(matchState.Bots, seatUserID)
					matchState.Seats[i] = p.GetUserId()
					assigned = true
					break
				}
			}
		}
		if !assigned {
			logger.Warn("MatchJoin: user %s joined but no seat was available", p.GetUserId())
		}
	}

	if !isHumanSeat(matchState.Seats[:], matchState.OwnerSeat) {
		matchState.OwnerSeat = findFirstHumanSeat(matchState.Seats[:])
	}

	mh.updateLabel(matchState, dispatcher, logger)
	mh.broadcastSnapshot(matchState, dispatcher, logger)

	// late joiners of a running game still need their hand
	if matchState.Match != nil {
		for _, p := range presences {
			seat := matchState.seatOf(p.GetUserId())
			if seat < 0 {
				continue
			}
			if player := matchState.Match.State.PlayerByID(domainIDForSeat(seat)); player != nil {
				mh.sendToSeat(matchState, dispatcher, logger, seat, OpHandDealt, handDealtMessage{Seat: seat, Hand: player.Hand})
			}
		}
	}

	return matchState
}

func (mh *matchHandler) MatchLeave(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, presences []runtime.Presence) interface{} {
	matchState, ok := state.(*MatchState)
	if !ok {
		logger.Error("MatchLeave: state not found")
		return state
	}

	for _, p := range presences {
		delete(matchState.Presences, p.GetUserId())
		if seat := matchState.seatOf(p.GetUserId()); seat >= 0 {
			matchState.Seats[seat] = ""
			logger.Debug("MatchLeave: user %s left, seat %d freed", p.GetUserId(), seat)
		}
	}

	matchState.OwnerSeat = findFirstHumanSeat(matchState.Seats[:])
	if matchState.OwnerSeat == -1 {
		logger.Info("MatchLeave: terminating match with no humans")
		return nil
	}

	mh.updateLabel(matchState, dispatcher, logger)
	mh.broadcastSnapshot(matchState, dispatcher, logger)
	return matchState
}

func (mh *matchHandler) MatchLoop(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, messages []runtime.MatchData) interface{} {
	matchState, ok := state.(*MatchState)
	if !ok {
		return state
	}
	matchState.Tick = tick

	for _, msg := range messages {
		switch msg.GetOpCode() {
		case OpStartGame:
			mh.handleStartGame(matchState, dispatcher, logger, msg)
		case OpPlayCards:
			mh.handlePlayCards(matchState, dispatcher, logger, msg)
		case OpPassTurn:
			mh.handlePassTurn(matchState, dispatcher, logger, msg)
		case OpResolveEffect:
			mh.handleResolveEffect(matchState, dispatcher, logger, msg)
		case OpRequestNewGame:
			mh.handleRequestNewGame(matchState, dispatcher, logger, msg)
		default:
			logger.Warn("MatchLoop: unknown opcode received: %d", msg.GetOpCode())
		}
	}

	mh.processBots(matchState, dispatcher, logger)
	return matchState
}

// processBots fills lonely lobbies with bots and drives bot seats during
// a running game.
func (mh *matchHandler) processBots(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) {
	if state.Match == nil {
		if state.humanSeatCount() == 1 && state.openSeatCount() > 0 {
			if state.SoloSinceTick == 0 {
				state.SoloSinceTick = state.Tick
			}
			if state.Tick-state.SoloSinceTick >= int64(state.BotFillDelay) {
				mh.fillWithBots(state, logger)
				mh.updateLabel(state, dispatcher, logger)
				mh.broadcastSnapshot(state, dispatcher, logger)
				state.SoloSinceTick = 0
			}
		} else {
			state.SoloSinceTick = 0
		}
		return
	}

	game := state.Match.State
	if game.Phase != domain.PhasePlaying {
		return
	}

	// effect resolution takes priority over the turn
	if len(game.PendingEffects) > 0 {
		ownerSeat := seatForDomainID(game.PendingEffects[0].OwnerID)
		if ownerSeat < 0 || !bot.IsBot(state.Seats[ownerSeat]) {
			return
		}
		agent := state.Bots[state.Seats[ownerSeat]]
		if agent == nil {
			return
		}
		resolution, ok, err := agent.ResolvePending(game)
		if err != nil || !ok {
			return
		}
		events, err := state.App.ResolveEffect(state.Match, resolution)
		if err != nil {
			logger.Error("processBots: bot effect resolution rejected: %v", err)
			return
		}
		mh.broadcastEvents(state, dispatcher, logger, events)
		return
	}

	currentSeat := seatForDomainID(game.CurrentPlayerID)
	if currentSeat < 0 || !bot.IsBot(state.Seats[currentSeat]) {
		state.BotWaitUntil = 0
		return
	}

	if state.BotWaitUntil == 0 {
		delay := rand.Intn(state.BotMaxDelay-state.BotMinDelay+1) + state.BotMinDelay
		state.BotWaitUntil = state.Tick + int64(delay)
		return
	}
	if state.Tick < state.BotWaitUntil {
		return
	}
	state.BotWaitUntil = 0

	agent := state.Bots[state.Seats[currentSeat]]
	if agent == nil {
		return
	}
	action, err := agent.Action(game)
	if err != nil {
		logger.Error("processBots: bot %s failed to decide: %v", state.Seats[currentSeat], err)
		return
	}
	events, err := state.App.SubmitAction(state.Match, action)
	if err != nil {
		logger.Error("processBots: bot action rejected: %v", err)
		return
	}
	mh.broadcastEvents(state, dispatcher, logger, events)
}

// fillWithBots takes every empty seat with an identity from the pool.
func (mh *matchHandler) fillWithBots(state *MatchState, logger runtime.Logger) {
	for i, seat := range state.Seats {
		if seat != "" {
			continue
		}
		identity := bot.GetBotIdentity(i)
		agent, err := bot.NewAgent(identity.UserID, identity.DisplayName, bot.BotLevelStandard)
		if err != nil {
			logger.Error("fillWithBots: failed to create agent for %s: %v", identity.UserID, err)
			continue
		}
		state.Seats[i] = identity.UserID
		state.Bots[identity.UserID] = agent
		logger.Info("fillWithBots: added bot %s to seat %d", identity.DisplayName, i)
	}
}

func (mh *matchHandler) handleStartGame(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, msg runtime.MatchData) {
	senderSeat := state.seatOf(msg.GetUserId())
	if senderSeat != state.OwnerSeat {
		logger.Warn("handleStartGame: user %s is not the owner", msg.GetUserId())
		return
	}
	if state.Match != nil && state.Match.State.Phase == domain.PhasePlaying {
		logger.Warn("handleStartGame: game already running")
		return
	}

	// every seat plays, so bots take whatever is still empty
	mh.fillWithBots(state, logger)

	rules := state.Rules
	match, events, err := state.App.CreateMatch(domain.Config{
		Seats: mh.seatConfigs(state),
		Rules: &rules,
	})
	if err != nil {
		logger.Error("handleStartGame: failed to create match: %v", err)
		return
	}
	state.Match = match

	// rebind agents to the fresh game; the domain ids are stable per seat
	for userID, agent := range state.Bots {
		seat := state.seatOf(userID)
		if seat >= 0 {
			agent.ID = domainIDForSeat(seat)
		}
	}

	mh.updateLabel(state, dispatcher, logger)
	mh.broadcastEvents(state, dispatcher, logger, events)
	mh.broadcastSnapshot(state, dispatcher, logger)
}

// seatConfigs names the four engine seats after their occupants.
func (mh *matchHandler) seatConfigs(state *MatchState) []domain.SeatConfig {
	seats := make([]domain.SeatConfig, len(state.Seats))
	for i, userID := range state.Seats {
		name := userID
		human := !bot.IsBot(userID)
		if human {
			if p, ok := state.Presences[userID]; ok {
				name = p.GetUsername()
			}
		} else if display := bot.GetBotDisplayName(userID); display != "" {
			name = display
		}
		seats[i] = domain.SeatConfig{Name: name, IsHuman: human}
	}
	return seats
}

func (mh *matchHandler) handlePlayCards(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, msg runtime.MatchData) {
	senderSeat := state.seatOf(msg.GetUserId())
	if state.Match == nil || senderSeat < 0 {
		mh.sendError(state, dispatcher, logger, msg.GetUserId(), 400, "no game running")
		return
	}

	var request playCardsRequest
	if err := json.Unmarshal(msg.GetData(), &request); err != nil {
		logger.Warn("handlePlayCards: bad payload from %s: %v", msg.GetUserId(), err)
		mh.sendError(state, dispatcher, logger, msg.GetUserId(), 400, "bad payload")
		return
	}

	events, err := state.App.SubmitAction(state.Match, domain.PlayAction(domainIDForSeat(senderSeat), request.CardIDs))
	if err != nil {
		mh.sendError(state, dispatcher, logger, msg.GetUserId(), 400, err.Error())
		return
	}
	mh.broadcastEvents(state, dispatcher, logger, events)
}

func (mh *matchHandler) handlePassTurn(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, msg runtime.MatchData) {
	senderSeat := state.seatOf(msg.GetUserId())
	if state.Match == nil || senderSeat < 0 {
		mh.sendError(state, dispatcher, logger, msg.GetUserId(), 400, "no game running")
		return
	}

	events, err := state.App.SubmitAction(state.Match, domain.PassAction(domainIDForSeat(senderSeat)))
	if err != nil {
		mh.sendError(state, dispatcher, logger, msg.GetUserId(), 400, err.Error())
		return
	}
	mh.broadcastEvents(state, dispatcher, logger, events)
}

func (mh *matchHandler) handleResolveEffect(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, msg runtime.MatchData) {
	senderSeat := state.seatOf(msg.GetUserId())
	if state.Match == nil || senderSeat < 0 {
		mh.sendError(state, dispatcher, logger, msg.GetUserId(), 400, "no game running")
		return
	}

	var request resolveEffectRequest
	if err := json.Unmarshal(msg.GetData(), &request); err != nil {
		mh.sendError(state, dispatcher, logger, msg.GetUserId(), 400, "bad payload")
		return
	}
	kind, ok := parseResolutionType(request.Type)
	if !ok {
		mh.sendError(state, dispatcher, logger, msg.GetUserId(), 400, "unknown resolution type")
		return
	}

	events, err := state.App.ResolveEffect(state.Match, domain.EffectResolution{
		Type:     kind,
		PlayerID: domainIDForSeat(senderSeat),
		CardIDs:  request.CardIDs,
		Ranks:    request.Ranks,
	})
	if err != nil {
		mh.sendError(state, dispatcher, logger, msg.GetUserId(), 400, err.Error())
		return
	}
	mh.broadcastEvents(state, dispatcher, logger, events)
}

func (mh *matchHandler) handleRequestNewGame(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, msg runtime.MatchData) {
	senderSeat := state.seatOf(msg.GetUserId())
	if senderSeat != state.OwnerSeat {
		logger.Warn("handleRequestNewGame: user %s is not the owner", msg.GetUserId())
		return
	}
	if state.Match == nil || state.Match.State.Phase != domain.PhaseFinished {
		mh.sendError(state, dispatcher, logger, msg.GetUserId(), 400, "match still running")
		return
	}

	rules := state.Rules
	events, err := state.App.Restart(state.Match, domain.Config{
		Seats: mh.seatConfigs(state),
		Rules: &rules,
	})
	if err != nil {
		logger.Error("handleRequestNewGame: restart failed: %v", err)
		return
	}
	mh.updateLabel(state, dispatcher, logger)
	mh.broadcastEvents(state, dispatcher, logger, events)
	mh.broadcastSnapshot(state, dispatcher, logger)
}

// broadcastEvents converts app events into wire messages.
func (mh *matchHandler) broadcastEvents(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, events []app.Event) {
	for _, ev := range events {
		switch ev.Kind {
		case app.EventHandDealt:
			p := ev.Payload.(app.HandDealtPayload)
			seat := seatForDomainID(p.PlayerID)
			mh.sendToSeat(state, dispatcher, logger, seat, OpHandDealt, handDealtMessage{Seat: seat, Hand: p.Hand})
		case app.EventMatchCreated:
			mh.broadcastSnapshot(state, dispatcher, logger)
		case app.EventCardPlayed:
			p := ev.Payload.(app.CardPlayedPayload)
			mh.broadcast(state, dispatcher, logger, OpCardPlayed, cardPlayedMessage{
				Seat:            seatForDomainID(p.PlayerID),
				Cards:           p.Cards,
				ComboType:       p.ComboType.String(),
				NextSeat:        seatForDomainID(p.NextPlayerID),
				FieldCleared:    p.FieldCleared,
				Revolution:      p.RevolutionOn,
				ElevenBack:      p.ElevenBackOn,
				ShibariSuit:     p.ShibariSuit,
				RemainingInHand: p.RemainingInHand,
			})
		case app.EventTurnPassed:
			p := ev.Payload.(app.TurnPassedPayload)
			mh.broadcast(state, dispatcher, logger, OpTurnPassed, turnPassedMessage{
				Seat:         seatForDomainID(p.PlayerID),
				NextSeat:     seatForDomainID(p.NextPlayerID),
				FieldCleared: p.FieldCleared,
			})
		case app.EventFieldCleared:
			mh.broadcast(state, dispatcher, logger, OpFieldCleared, struct{}{})
		case app.EventEffectPending:
			p := ev.Payload.(app.EffectPendingPayload)
			seat := seatForDomainID(p.Effect.OwnerID)
			mh.sendToSeat(state, dispatcher, logger, seat, OpEffectPrompt, effectPromptMessage{
				Seat:       seat,
				Type:       string(p.Effect.Type),
				TargetSeat: seatForDomainID(p.Effect.TargetID),
				Remaining:  p.Effect.Remaining,
			})
		case app.EventEffectResolved:
			p := ev.Payload.(app.EffectResolvedPayload)
			mh.broadcast(state, dispatcher, logger, OpEffectResolved, effectResolvedMessage{
				Seat:       seatForDomainID(p.PlayerID),
				Resolution: string(p.Resolution),
			})
		case app.EventPlayerFinished:
			p := ev.Payload.(app.PlayerFinishedPayload)
			mh.broadcast(state, dispatcher, logger, OpPlayerFinished, playerFinishedMessage{
				Seat:  seatForDomainID(p.PlayerID),
				Place: p.Place,
			})
		case app.EventGameEnded:
			p := ev.Payload.(app.GameEndedPayload)
			mh.broadcast(state, dispatcher, logger, OpGameEnded, gameEndedMessage{
				WinnerSeats: seatsForDomainIDs(p.Winners),
			})
			mh.updateLabel(state, dispatcher, logger)
		default:
			logger.Warn("broadcastEvents: unknown event kind: %v", ev.Kind)
		}
	}
}

// broadcastSnapshot publishes the redacted public view of the match.
func (mh *matchHandler) broadcastSnapshot(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) {
	snapshot := matchSnapshotMessage{Phase: "lobby", CurrentSeat: -1}

	var game *domain.Game
	if state.Match != nil {
		game = state.Match.State
		snapshot.Phase = string(game.Phase)
		snapshot.CurrentSeat = seatForDomainID(game.CurrentPlayerID)
		snapshot.Log = game.Log

		full := game.Snapshot()
		snapshot.Field = &fieldView{
			Combo:       full.Field.Combo,
			OwnerSeat:   seatForDomainID(game.Field.OwnerID),
			ShibariSuit: game.Field.ShibariSuit,
			Revolution:  game.Field.Revolution,
			ElevenBack:  game.Field.ElevenBack,
		}
	}

	for i, userID := range state.Seats {
		if userID == "" {
			continue
		}
		view := seatView{
			UserID:      userID,
			Seat:        i,
			IsBot:       bot.IsBot(userID),
			IsOwner:     i == state.OwnerSeat,
			DisplayName: userID,
		}
		if p, ok := state.Presences[userID]; ok {
			view.DisplayName = p.GetUsername()
		} else if name := bot.GetBotDisplayName(userID); name != "" {
			view.DisplayName = name
		}
		if game != nil {
			if player := game.PlayerByID(domainIDForSeat(i)); player != nil {
				view.CardsRemaining = len(player.Hand)
				view.Finished = player.Finished
				view.FinishOrder = player.FinishOrder
			}
		}
		snapshot.Seats = append(snapshot.Seats, view)
	}

	mh.broadcast(state, dispatcher, logger, OpMatchSnapshot, snapshot)
}

func (mh *matchHandler) broadcast(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, opCode int64, payload any) {
	raw, err := json.Marshal(payload)
	if err != nil {
		logger.Error("broadcast: failed to marshal opcode %d: %v", opCode, err)
		return
	}
	dispatcher.BroadcastMessage(opCode, raw, nil, nil, true)
}

// sendToSeat targets one seat; messages to bot seats are dropped.
func (mh *matchHandler) sendToSeat(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, seat int, opCode int64, payload any) {
	if seat < 0 || seat >= len(state.Seats) {
		return
	}
	presence, ok := state.Presences[state.Seats[seat]]
	if !ok {
		return
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		logger.Error("sendToSeat: failed to marshal opcode %d: %v", opCode, err)
		return
	}
	dispatcher.BroadcastMessage(opCode, raw, []runtime.Presence{presence}, nil, true)
}

func (mh *matchHandler) sendError(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, userID string, code int, message string) {
	presence, ok := state.Presences[userID]
	if !ok {
		logger.Warn("sendError: presence for %s not found", userID)
		return
	}
	raw, err := json.Marshal(gameErrorMessage{Code: code, Message: message})
	if err != nil {
		logger.Error("sendError: marshal failed: %v", err)
		return
	}
	dispatcher.BroadcastMessage(OpGameError, raw, []runtime.Presence{presence}, nil, true)
}

func (mh *matchHandler) updateLabel(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) {
	if err := dispatcher.MatchLabelUpdate(makeLabel(state)); err != nil {
		logger.Error("updateLabel: failed to update: %v", err)
	}
}

func (mh *matchHandler) MatchTerminate(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, reason int) interface{} {
	logger.Debug("MatchTerminate: match terminated for reason %d", reason)
	return state
}

func (mh *matchHandler) MatchSignal(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, data string) (interface{}, string) {
	return state, ""
}
