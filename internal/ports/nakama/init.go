package nakama

import (
	"context"
	"database/sql"

	"daifugo/internal/bot"
	"daifugo/internal/config"

	"github.com/heroiclabs/nakama-common/runtime"
)

// InitModule wires RPCs and match handlers for the Nakama runtime.
func InitModule(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, initializer runtime.Initializer) error {
	cfg, err := config.Load("")
	if err != nil {
		return err
	}

	if err := bot.LoadIdentities(cfg.Bot.IdentitiesPath); err != nil {
		logger.Warn("InitModule: could not load bot identities: %v", err)
	} else if err := bot.ProvisionBots(ctx, nk, logger); err != nil {
		logger.Warn("InitModule: could not provision bots: %v", err)
	}

	if err := RegisterRPCs(initializer); err != nil {
		return err
	}

	if err := initializer.RegisterMatch(MatchNameDaifugo, NewMatch); err != nil {
		return err
	}

	logger.Info("Daifugo Go module loaded.")
	return nil
}
