package cmd

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"ultrakill-save-editor/internal/config"
	"ultrakill-save-editor/internal/game"
	"ultrakill-save-editor/internal/logging"
	"ultrakill-save-editor/internal/session"
	"ultrakill-save-editor/pkg/steam"
)

// loadConfig loads the config and a stderr logger for non-interactive commands.
func loadConfig() (config.Config, *zap.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, nil, fmt.Errorf("failed to load config: %w", err)
	}
	logger, err := logging.New(cfg.Log)
	if err != nil {
		return config.Config{}, nil, err
	}
	return cfg, logger, nil
}

// rememberedState returns the last session, or an empty one when there is
// none or it cannot be read.
func rememberedState(logger *zap.Logger) (*session.Store, session.State) {
	store, err := session.DefaultStore()
	if err != nil {
		logger.Debug("no session store", zap.Error(err))
		return nil, session.State{}
	}
	state, err := store.Load()
	if err != nil {
		logger.Warn("ignoring unreadable session", zap.Error(err))
		return store, session.State{}
	}
	return store, state
}

// resolveDir picks the slot directory: an explicit argument, then the
// configured save_dir, then the remembered one, then Steam auto-detection.
func resolveDir(cfg config.Config, args []string, state session.State) (string, error) {
	if len(args) > 0 && args[0] != "" {
		return args[0], nil
	}
	if cfg.SaveDir != "" {
		return cfg.SaveDir, nil
	}
	if state.SaveDir != "" {
		if info, err := os.Stat(state.SaveDir); err == nil && info.IsDir() {
			return state.SaveDir, nil
		}
	}
	return locateSlot(cfg)
}

func locateSlot(cfg config.Config) (string, error) {
	slot, ok := game.SaveSlotFromRepr(cfg.Slot)
	if !ok {
		return "", fmt.Errorf("slot %d: %w", cfg.Slot, game.ErrInvalidVariant)
	}
	return steam.NewLocator(cfg.SteamRoot).SlotDir(slot)
}
