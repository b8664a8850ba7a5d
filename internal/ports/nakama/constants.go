package nakama

const (
	// RpcQuickMatch is the Nakama RPC id clients call to find or create a lobby-capable match.
	RpcQuickMatch = "quick_match"

	// MatchNameDaifugo is the authoritative match handler name registered with Nakama.
	MatchNameDaifugo = "daifugo_match"

	// MatchLabelGame tags every match label so list queries can filter on it.
	MatchLabelGame = "daifugo"
)

// Op codes for client messages and server events.
const (
	// Client -> Server
	OpStartGame      int64 = 1
	OpPlayCards      int64 = 2
	OpPassTurn       int64 = 3
	OpResolveEffect  int64 = 4
	OpRequestNewGame int64 = 5

	// Server -> Client events
	OpMatchSnapshot  int64 = 101
	OpHandDealt      int64 = 102
	OpCardPlayed     int64 = 103
	OpTurnPassed     int64 = 104
	OpFieldCleared   int64 = 105
	OpEffectPrompt   int64 = 106
	OpEffectResolved int64 = 107
	OpPlayerFinished int64 = 108
	OpGameEnded      int64 = 109
	OpGameError      int64 = 110
)
