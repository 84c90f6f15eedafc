package main

import (
	"context"
	"fmt"
	"os"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/foundrydocs/skillindex/pkg/presenter"
)

// ValidateConfig holds configuration for the validate command
type ValidateConfig struct {
	ScanRoot string
	LinkRoot string
	Strict   bool
}

// NewValidateConfig creates a ValidateConfig with default values
func NewValidateConfig() *ValidateConfig {
	generate := NewGenerateConfig()
	return &ValidateConfig{
		ScanRoot: generate.ScanRoot,
		LinkRoot: generate.LinkRoot,
		Strict:   false,
	}
}

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the skill corpus without writing the index",
	Long: `Load and classify every skill exactly as generate would, reporting each
skill that would be dropped. With --strict, any dropped skill fails the
command with a non-zero exit code.`,
	Run: func(cmd *cobra.Command, _ []string) {
		config := getValidateConfigFromFlags(cmd)
		if err := runValidate(cmd.Context(), config); err != nil {
			presenter.Error(err, "Validation failed")
			os.Exit(1)
		}
	},
}

func init() {
	defaults := NewValidateConfig()
	validateCmd.Flags().String("scan-root", defaults.ScanRoot, "Directory containing the skill directories")
	validateCmd.Flags().String("link-root", defaults.LinkRoot, "Root of the language/category symlink tree")
	validateCmd.Flags().Bool("strict", defaults.Strict, "Exit non-zero when any skill is dropped")
}

// getValidateConfigFromFlags extracts validate configuration from command flags
func getValidateConfigFromFlags(cmd *cobra.Command) *ValidateConfig {
	config := NewValidateConfig()

	if cmd.Flags().Changed("scan-root") {
		config.ScanRoot, _ = cmd.Flags().GetString("scan-root")
	}
	if cmd.Flags().Changed("link-root") {
		config.LinkRoot, _ = cmd.Flags().GetString("link-root")
	}
	if strict, err := cmd.Flags().GetBool("strict"); err == nil {
		config.Strict = strict
	}

	return config
}

func runValidate(ctx context.Context, config *ValidateConfig) error {
	records, warnings, err := loadSkills(ctx, config.ScanRoot, config.LinkRoot)
	if err != nil {
		return err
	}

	var findings error
	for _, warning := range warnings {
		presenter.Warning(warning.String())
		findings = multierror.Append(findings, errors.New(warning.String()))
	}

	presenter.Info(fmt.Sprintf("%d valid skills, %d dropped", len(records), len(warnings)))

	if findings != nil {
		if config.Strict {
			return errors.Wrap(findings, "skill corpus has invalid entries")
		}
		return nil
	}

	presenter.Success("Skill corpus is valid")
	return nil
}
