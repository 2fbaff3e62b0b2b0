// Package rank prints spending totals ranked from largest to smallest
package rank

import (
	"fmt"
	"io"

	"fjacquet/spend-summary/cmd/common"
	"fjacquet/spend-summary/cmd/root"
	"fjacquet/spend-summary/internal/container"

	"github.com/spf13/cobra"
)

// Cmd represents the rank command
var Cmd = &cobra.Command{
	Use:   "rank",
	Short: "Rank spending totals from largest to smallest",
	Long: `Rank totals the selected transactions per description or category and
prints one line per key, largest total first, e.g. "$35...Coffee".`,
	Run: rankFunc,
}

func rankFunc(cmd *cobra.Command, args []string) {
	if root.AppContainer == nil {
		root.Log.Fatal("Application container not initialized")
		return
	}
	if err := Run(root.AppContainer, root.SharedFlags, cmd.OutOrStdout()); err != nil {
		root.Log.Fatalf("Error ranking spending: %v", err)
	}
}

// Run summarises the input named by flags and writes the ranking to out.
func Run(c *container.Container, flags root.CommonFlags, out io.Writer) error {
	opts, err := common.BuildOptions(c, flags)
	if err != nil {
		return err
	}
	format, err := common.ReportFormat(c, flags)
	if err != nil {
		return err
	}

	result, err := common.Summarize(c.GetLoaders(), c.GetPipeline(), flags.Input, flags.Format, opts, c.GetLogger())
	if err != nil {
		return err
	}

	data, err := c.GetReportGenerator().GenerateRanking(result.Ranked, format)
	if err != nil {
		return fmt.Errorf("error generating report: %w", err)
	}
	return common.WriteReport(out, data)
}
