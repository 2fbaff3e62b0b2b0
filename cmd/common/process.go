// Package common contains shared functionality for command handlers
package common

import (
	"fmt"
	"io"
	"strings"
	"time"

	"fjacquet/spend-summary/cmd/root"
	"fjacquet/spend-summary/internal/container"
	"fjacquet/spend-summary/internal/dateutils"
	"fjacquet/spend-summary/internal/logging"
	"fjacquet/spend-summary/internal/models"
	"fjacquet/spend-summary/internal/report"
	"fjacquet/spend-summary/internal/spending"
)

// RecordSource loads the records a command summarises.
type RecordSource interface {
	LoadFile(path, format string) ([]models.TransactionRecord, error)
}

// BuildOptions merges command flags over the configured defaults.
func BuildOptions(c *container.Container, flags root.CommonFlags) (spending.Options, error) {
	opts := c.DefaultOptions()

	if flags.Type != "" {
		opts.BookkeepingType = flags.Type
	}
	if flags.GroupBy != "" {
		mode, err := models.ParseGroupingMode(flags.GroupBy)
		if err != nil {
			return opts, err
		}
		opts.GroupBy = mode
	}
	opts.Category = strings.TrimSpace(flags.Category)
	opts.SkipMalformed = opts.SkipMalformed || flags.SkipMalformed

	window, err := ResolveWindow(flags.From, flags.To, opts.Window, opts.Location)
	if err != nil {
		return opts, err
	}
	opts.Window = window

	return opts, opts.Validate()
}

// ResolveWindow builds the date window from --from/--to. A missing end is the
// default window's end; a missing start is one month before the end.
func ResolveWindow(from, to string, def dateutils.DateWindow, loc *time.Location) (dateutils.DateWindow, error) {
	if from == "" && to == "" {
		return def, nil
	}

	end := def.End
	if to != "" {
		t, err := dateutils.ParseTimestamp(to, loc)
		if err != nil {
			return dateutils.DateWindow{}, fmt.Errorf("invalid --to: %w", err)
		}
		end = t
	}

	start := end.AddDate(0, -1, 0)
	if from != "" {
		t, err := dateutils.ParseTimestamp(from, loc)
		if err != nil {
			return dateutils.DateWindow{}, fmt.Errorf("invalid --from: %w", err)
		}
		start = t
	}

	return dateutils.NewDateWindow(start, end)
}

// ReportFormat returns the --output format, or the configured one.
func ReportFormat(c *container.Container, flags root.CommonFlags) (report.Format, error) {
	if flags.Output != "" {
		return report.ParseFormat(flags.Output)
	}
	return report.ParseFormat(c.GetConfig().Report.Format)
}

// Summarize loads input and runs the pipeline over it.
func Summarize(src RecordSource, p *spending.Pipeline, input, format string, opts spending.Options, log logging.Logger) (*spending.Result, error) {
	if input == "" {
		return nil, fmt.Errorf("input file is required (--input)")
	}

	records, err := src.LoadFile(input, format)
	if err != nil {
		return nil, err
	}

	result, err := p.Run(records, opts)
	if err != nil {
		return nil, err
	}

	log.Info("Summary completed",
		logging.F(logging.FieldFile, input),
		logging.F(logging.FieldInputCount, result.Input),
		logging.F(logging.FieldRetainedCount, result.Retained),
		logging.F(logging.FieldCount, result.Totals.Len()))
	return result, nil
}

// WriteReport writes a rendered report to out.
func WriteReport(out io.Writer, data []byte) error {
	if _, err := out.Write(data); err != nil {
		return fmt.Errorf("error writing report: %w", err)
	}
	return nil
}
