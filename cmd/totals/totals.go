// Package totals prints the per-key spending totals without ranking them
package totals

import (
	"fmt"
	"io"

	"fjacquet/spend-summary/cmd/common"
	"fjacquet/spend-summary/cmd/root"
	"fjacquet/spend-summary/internal/container"

	"github.com/spf13/cobra"
)

// Cmd represents the totals command
var Cmd = &cobra.Command{
	Use:   "totals",
	Short: "Print spending totals per key",
	Long: `Totals prints the total of the selected transactions per description or
category, in the order keys were first seen.`,
	Run: totalsFunc,
}

func totalsFunc(cmd *cobra.Command, args []string) {
	if root.AppContainer == nil {
		root.Log.Fatal("Application container not initialized")
		return
	}
	if err := Run(root.AppContainer, root.SharedFlags, cmd.OutOrStdout()); err != nil {
		root.Log.Fatalf("Error computing totals: %v", err)
	}
}

// Run summarises the input named by flags and writes the totals to out.
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

	data, err := c.GetReportGenerator().GenerateTotals(result.Totals, format)
	if err != nil {
		return fmt.Errorf("error generating report: %w", err)
	}
	return common.WriteReport(out, data)
}
