package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"ultrakill-save-editor/internal/progress"
	"ultrakill-save-editor/internal/snapshot"
)

var importCmd = &cobra.Command{
	Use:   "import <file> [dir]",
	Short: "Replace a save slot with a YAML snapshot",
	Long: `Replace a save slot with a YAML snapshot written by export.

Records the snapshot leaves out are reset, and their files are removed.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runImport,
}

func init() {
	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	cfg, logger, err := loadConfig()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	snap, err := snapshot.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read snapshot: %w", err)
	}
	classes, err := snap.Apply()
	if err != nil {
		return fmt.Errorf("invalid snapshot: %w", err)
	}

	_, state := rememberedState(logger)
	dir, err := resolveDir(cfg, args[1:], state)
	if err != nil {
		return err
	}
	if err := classes.Save(dir, progress.WithLogger(logger)); err != nil {
		return fmt.Errorf("failed to save slot: %w", err)
	}
	logger.Info("imported save slot", zap.String("file", args[0]), zap.String("dir", dir))
	return nil
}
