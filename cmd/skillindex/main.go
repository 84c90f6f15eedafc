package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/foundrydocs/skillindex/pkg/logger"
	"github.com/foundrydocs/skillindex/pkg/presenter"
)

func init() {
	// Environment variables
	viper.SetEnvPrefix("SKILLINDEX")
	viper.AutomaticEnv()

	// Config file support
	viper.SetConfigName("skillindex-config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("$HOME/.config/skillindex")

	// Load config file if it exists (ignore errors if it doesn't)
	_ = viper.ReadInConfig()
}

var rootCmd = &cobra.Command{
	Use:   "skillindex",
	Short: "Generate the skill documentation index",
	Long: `skillindex scans the skill corpus, extracts metadata from each skill's
SKILL.md frontmatter, classifies skills by language and category, and emits
the JSON index consumed by the documentation site generator.

Running skillindex with no arguments generates the index with the default
repository paths.`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		if err := logger.SetLogLevel(viper.GetString("log_level")); err != nil {
			presenter.Warning(fmt.Sprintf("Invalid log level %q, using info", viper.GetString("log_level")))
		}
		logger.SetLogFormat(viper.GetString("log_format"))
	},
	Run: func(cmd *cobra.Command, _ []string) {
		if err := runGenerate(cmd.Context(), NewGenerateConfig()); err != nil {
			presenter.Error(err, "Failed to generate skill index")
			os.Exit(1)
		}
	},
}

func main() {
	rootCmd.PersistentFlags().String("log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "fmt", "Log format (fmt, json)")
	viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("log_format", rootCmd.PersistentFlags().Lookup("log-format"))

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(versionCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
