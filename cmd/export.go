package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"ultrakill-save-editor/internal/progress"
	"ultrakill-save-editor/internal/snapshot"
)

var exportCmd = &cobra.Command{
	Use:   "export [dir]",
	Short: "Write a save slot as YAML",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringP("output", "o", "", "file to write (default stdout)")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg, logger, err := loadConfig()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	_, state := rememberedState(logger)
	dir, err := resolveDir(cfg, args, state)
	if err != nil {
		return err
	}
	classes, err := progress.Load(dir, progress.WithLogger(logger))
	if err != nil {
		return err
	}

	snap := snapshot.Export(classes)
	output, _ := cmd.Flags().GetString("output")
	if output == "" {
		return snapshot.Write(cmd.OutOrStdout(), snap)
	}
	if err := snapshot.WriteFile(output, snap); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	logger.Info("exported save slot", zap.String("dir", dir), zap.String("file", output))
	return nil
}
