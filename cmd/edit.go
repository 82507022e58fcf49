package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"ultrakill-save-editor/internal/config"
	"ultrakill-save-editor/internal/game"
	"ultrakill-save-editor/internal/logging"
	"ultrakill-save-editor/internal/progress"
	"ultrakill-save-editor/internal/session"
	"ultrakill-save-editor/internal/ui"
)

var editCmd = &cobra.Command{
	Use:   "edit [dir]",
	Short: "Open the interactive editor on a save slot",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runEdit,
}

func init() {
	rootCmd.AddCommand(editCmd)
}

func runEdit(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	logger, err := logging.ForEditor(cfg.Log)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	store, state := rememberedState(logger)
	dir, err := resolveDir(cfg, args, state)
	if err != nil {
		return err
	}

	classes, err := progress.Load(dir, progress.WithLogger(logger))
	if err != nil {
		return err
	}

	difficulty := game.Harmless
	if state.SaveDir == dir {
		if d, ok := game.DifficultyFromRepr(state.Difficulty); ok {
			difficulty = d
		}
	}

	var watcher *ui.Watcher
	if w, err := ui.NewWatcher(dir); err != nil {
		logger.Warn("not watching save slot", zap.Error(err))
	} else {
		if err := w.Start(); err != nil {
			logger.Warn("not watching save slot", zap.Error(err))
		} else {
			watcher = w
		}
		defer w.Stop()
	}

	logger.Info("opening editor", zap.String("dir", dir), zap.Stringer("difficulty", difficulty))
	p := tea.NewProgram(ui.NewModel(dir, classes, difficulty, logger, watcher), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("editor failed: %w", err)
	}

	if m, ok := final.(ui.Model); ok && store != nil {
		next := session.State{SaveDir: dir, Slot: cfg.Slot, Difficulty: int(m.Difficulty())}
		if err := store.Save(next); err != nil {
			logger.Warn("failed to remember session", zap.Error(err))
		}
	}
	return nil
}
