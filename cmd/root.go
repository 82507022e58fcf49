package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "ukse",
	Short: "ULTRAKILL save slot editor",
	Long: `ukse reads and writes the .bepis files of an ULTRAKILL save slot.

Without a subcommand it opens the editor on the given slot directory, the
configured save_dir, the last edited slot, or the slot found in Steam.`,
	Args:          cobra.MaximumNArgs(1),
	RunE:          runEdit,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "config file (default .ukse.yaml)")
	flags.BoolP("verbose", "v", false, "verbose output")
	flags.Int("slot", 1, "save slot to auto-detect (1-5)")
	flags.String("steam-root", "", "Steam install directory to search first")

	_ = viper.BindPFlag("verbose", flags.Lookup("verbose"))
	_ = viper.BindPFlag("slot", flags.Lookup("slot"))
	_ = viper.BindPFlag("steam_root", flags.Lookup("steam-root"))
}

func initConfig() {
	if cfgFile, _ := rootCmd.PersistentFlags().GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(".ukse")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
	}

	viper.SetEnvPrefix("UKSE")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// It's fine if no config file is found; we use defaults.
	_ = viper.ReadInConfig()
}
