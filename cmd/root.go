package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ayomide-cmd/folio/internal/config"
)

var rootCmd = &cobra.Command{
	Use:          "folio",
	Short:        "A portfolio you explore in the terminal",
	Long:         "folio: Stephanie Ayomide Adetomiwa's portfolio as a terminal app. Explore every flagship project to unlock the rest.",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("log-file", "", "Write JSON logs to this file (overrides FOLIO_LOG_FILE env var)")
	rootCmd.PersistentFlags().Bool("skip-intro", false, "Start on the page without the loading screen (overrides FOLIO_SKIP_INTRO env var)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(tourCmd)
}

// loadConfig reads the environment, then applies any flags set on the
// command line, which take priority.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, err
	}
	if p, _ := cmd.Flags().GetString("log-file"); p != "" {
		cfg.LogFile = p
	}
	if cmd.Flags().Changed("skip-intro") {
		cfg.SkipIntro, _ = cmd.Flags().GetBool("skip-intro")
	}
	return cfg, nil
}
