package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/foundrydocs/skillindex/pkg/classify"
	"github.com/foundrydocs/skillindex/pkg/index"
	"github.com/foundrydocs/skillindex/pkg/presenter"
	"github.com/foundrydocs/skillindex/pkg/skills"
)

const (
	defaultScanRoot = ".github/skills"
	defaultLinkRoot = "catalog"
	defaultOutput   = "docs/skills-index.json"
)

// GenerateConfig holds configuration for the generate command
type GenerateConfig struct {
	ScanRoot string
	LinkRoot string
	Output   string
	Quiet    bool
}

// NewGenerateConfig creates a GenerateConfig with the fixed repository paths,
// overridable through viper (config file or SKILLINDEX_* env vars)
func NewGenerateConfig() *GenerateConfig {
	config := &GenerateConfig{
		ScanRoot: defaultScanRoot,
		LinkRoot: defaultLinkRoot,
		Output:   defaultOutput,
	}

	if v := viper.GetString("scan_root"); v != "" {
		config.ScanRoot = v
	}
	if v := viper.GetString("link_root"); v != "" {
		config.LinkRoot = v
	}
	if v := viper.GetString("output"); v != "" {
		config.Output = v
	}

	return config
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the skill index JSON artifact",
	Long: `Scan the skill corpus, classify each skill, and write the sorted JSON
index. Skills with missing or invalid frontmatter are skipped with a warning
and never fail the run.`,
	Run: func(cmd *cobra.Command, _ []string) {
		config := getGenerateConfigFromFlags(cmd)
		presenter.SetQuiet(config.Quiet)

		if err := runGenerate(cmd.Context(), config); err != nil {
			presenter.Error(err, "Failed to generate skill index")
			os.Exit(1)
		}
	},
}

func init() {
	defaults := NewGenerateConfig()
	generateCmd.Flags().String("scan-root", defaults.ScanRoot, "Directory containing the skill directories")
	generateCmd.Flags().String("link-root", defaults.LinkRoot, "Root of the language/category symlink tree")
	generateCmd.Flags().StringP("output", "o", defaults.Output, "Path of the JSON index to write")
	generateCmd.Flags().BoolP("quiet", "q", false, "Suppress non-error output")
}

// getGenerateConfigFromFlags extracts generate configuration from command flags
func getGenerateConfigFromFlags(cmd *cobra.Command) *GenerateConfig {
	config := NewGenerateConfig()

	if cmd.Flags().Changed("scan-root") {
		config.ScanRoot, _ = cmd.Flags().GetString("scan-root")
	}
	if cmd.Flags().Changed("link-root") {
		config.LinkRoot, _ = cmd.Flags().GetString("link-root")
	}
	if cmd.Flags().Changed("output") {
		config.Output, _ = cmd.Flags().GetString("output")
	}
	if quiet, err := cmd.Flags().GetBool("quiet"); err == nil {
		config.Quiet = quiet
	}

	return config
}

// loadSkills builds the classification chain and loads the corpus. Symlink
// evidence is consulted before the suffix heuristic; the resolver defaults
// to (core, general) when neither matches.
func loadSkills(ctx context.Context, scanRoot, linkRoot string) ([]skills.Skill, []skills.Warning, error) {
	symlinks, err := classify.BuildSymlinkIndex(linkRoot)
	if err != nil {
		return nil, nil, err
	}

	resolver := classify.NewResolver(symlinks, classify.NewSuffixClassifier())
	loader := skills.NewLoader(resolver)

	return loader.Load(ctx, scanRoot)
}

func runGenerate(ctx context.Context, config *GenerateConfig) error {
	records, warnings, err := loadSkills(ctx, config.ScanRoot, config.LinkRoot)
	if err != nil {
		return err
	}

	for _, warning := range warnings {
		presenter.Warning(warning.String())
	}

	if err := index.Write(config.Output, records); err != nil {
		return err
	}

	presenter.Info(index.Summarize(records).String())
	presenter.Success(fmt.Sprintf("Wrote %s", config.Output))

	return nil
}
