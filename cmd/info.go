package cmd

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"ultrakill-save-editor/internal/game"
	"ultrakill-save-editor/internal/progress"
)

var infoCmd = &cobra.Command{
	Use:   "info [dir]",
	Short: "Show which save files a slot holds",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runInfo,
}

func init() {
	infoCmd.Flags().Bool("all", false, "list files the slot does not have too")
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
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
	all, _ := cmd.Flags().GetBool("all")

	files := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("FILE", "CLASS", "LOADED", "ON DISK")
	for _, f := range classes.Files(dir) {
		if !all && !f.Present {
			continue
		}
		files.Row(f.Name, f.Class, yesNo(f.Claimed), yesNo(f.Present))
	}

	campaigns := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("DIFFICULTY", "CURRENT LEVEL", "CYBERGRIND WAVE")
	for _, d := range game.Difficulties() {
		rec := classes.Difficulties[d]
		if !rec.FileExists {
			continue
		}
		campaigns.Row(d.String(), rec.CurrentLevel.String(), classes.Cybergrind.Waves[d])
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Slot: %s\n", dir)
	fmt.Fprintf(out, "Money: %s P\n", classes.General.Money)
	fmt.Fprintf(out, "Levels with progress: %d\n", countLevels(classes))
	fmt.Fprintln(out, files.String())
	fmt.Fprintln(out, campaigns.String())
	return nil
}

func countLevels(c *progress.Classes) int {
	n := 0
	for _, rec := range c.Levels {
		if rec.FileExists {
			n++
		}
	}
	return n
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
