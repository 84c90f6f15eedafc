package main

import (
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/foundrydocs/skillindex/pkg/presenter"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the skills that would be indexed",
	Long:  `List every valid skill with its resolved language, category, and package.`,
	Run: func(cmd *cobra.Command, _ []string) {
		config := getGenerateConfigFromFlags(cmd)

		records, warnings, err := loadSkills(cmd.Context(), config.ScanRoot, config.LinkRoot)
		if err != nil {
			presenter.Error(err, "Failed to load skills")
			os.Exit(1)
		}

		for _, warning := range warnings {
			presenter.Warning(warning.String())
		}

		if len(records) == 0 {
			presenter.Info("No skills found")
			return
		}

		sort.Slice(records, func(i, j int) bool {
			return records[i].Name < records[j].Name
		})

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "NAME\tLANG\tCATEGORY\tPACKAGE")
		for _, skill := range records {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", skill.Name, skill.Lang, skill.Category, skill.Package)
		}
		w.Flush()
	},
}

func init() {
	defaults := NewGenerateConfig()
	listCmd.Flags().String("scan-root", defaults.ScanRoot, "Directory containing the skill directories")
	listCmd.Flags().String("link-root", defaults.LinkRoot, "Root of the language/category symlink tree")
}
