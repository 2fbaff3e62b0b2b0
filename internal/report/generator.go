// Package report renders spending summaries for output.
package report

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"strings"

	"fjacquet/spend-summary/internal/currencyutils"
	"fjacquet/spend-summary/internal/logging"
	"fjacquet/spend-summary/internal/models"

	"github.com/gocarina/gocsv"
	"gopkg.in/yaml.v3"
)

// Format is an output format.
type Format string

const (
	Text Format = "text"
	CSV  Format = "csv"
	JSON Format = "json"
	YAML Format = "yaml"
	XML  Format = "xml"
)

// ParseFormat accepts a format name in any case. "yml" is an alias for yaml.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "text", "txt", "":
		return Text, nil
	case "csv":
		return CSV, nil
	case "json":
		return JSON, nil
	case "yaml", "yml":
		return YAML, nil
	case "xml":
		return XML, nil
	default:
		return "", fmt.Errorf("unsupported report format: %s", s)
	}
}

// RankedRow is one line of a ranking report. Totals are decimal strings so
// structured output keeps the exact rounded value.
type RankedRow struct {
	XMLName xml.Name `json:"-" yaml:"-" csv:"-" xml:"entry"`
	Rank    int      `json:"rank" yaml:"rank" csv:"rank" xml:"rank,attr"`
	Key     string   `json:"key" yaml:"key" csv:"key" xml:"key"`
	Total   string   `json:"total" yaml:"total" csv:"total" xml:"total"`
}

// TotalRow is one key of a totals report.
type TotalRow struct {
	XMLName xml.Name `json:"-" yaml:"-" csv:"-" xml:"entry"`
	Key     string   `json:"key" yaml:"key" csv:"key" xml:"key"`
	Total   string   `json:"total" yaml:"total" csv:"total" xml:"total"`
}

type xmlRanking struct {
	XMLName xml.Name    `xml:"ranking"`
	Entries []RankedRow `xml:"entry"`
}

type xmlTotals struct {
	XMLName xml.Name   `xml:"totals"`
	Entries []TotalRow `xml:"entry"`
}

// ReportGenerator renders rankings and totals in the supported formats.
type ReportGenerator struct {
	logger    logging.Logger
	symbol    string
	delimiter rune
}

// NewReportGenerator creates a generator printing cash with symbol ("$" when
// empty) and writing CSV with delimiter (',' when zero).
func NewReportGenerator(logger logging.Logger, symbol string, delimiter rune) *ReportGenerator {
	if symbol == "" {
		symbol = currencyutils.DefaultSymbol
	}
	if delimiter == 0 {
		delimiter = ','
	}
	return &ReportGenerator{logger: logger, symbol: symbol, delimiter: delimiter}
}

// GenerateRanking renders a ranked summary. The text format prints one
// "$<whole amount>...<key>" line per entry.
func (g *ReportGenerator) GenerateRanking(ranked []models.RankedEntry, format Format) ([]byte, error) {
	rows := make([]RankedRow, 0, len(ranked))
	for i, e := range ranked {
		rows = append(rows, RankedRow{Rank: i + 1, Key: e.Key, Total: e.Total.String()})
	}

	switch format {
	case Text:
		var b strings.Builder
		for _, e := range ranked {
			b.WriteString(currencyutils.FormatSummaryLine(g.symbol, e))
			b.WriteByte('\n')
		}
		return []byte(b.String()), nil
	case CSV:
		return g.generateCSV(rows)
	case JSON:
		return g.generateJSON(rows)
	case YAML:
		return g.generateYAML(rows)
	case XML:
		return g.generateXML(xmlRanking{Entries: rows})
	default:
		return nil, fmt.Errorf("unsupported report format: %s", format)
	}
}

// GenerateTotals renders the key to total mapping. Text, CSV, YAML and XML
// keep the order keys were first aggregated in; JSON objects are key-sorted.
func (g *ReportGenerator) GenerateTotals(summary *models.SpendingSummary, format Format) ([]byte, error) {
	if summary == nil {
		summary = models.NewSpendingSummary()
	}
	entries := summary.Entries()
	rows := make([]TotalRow, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, TotalRow{Key: e.Key, Total: e.Total.String()})
	}

	switch format {
	case Text:
		var b strings.Builder
		for _, r := range rows {
			fmt.Fprintf(&b, "%s: %s\n", r.Key, r.Total)
		}
		return []byte(b.String()), nil
	case CSV:
		return g.generateCSV(rows)
	case JSON:
		totals := make(map[string]string, len(rows))
		for _, r := range rows {
			totals[r.Key] = r.Total
		}
		return g.generateJSON(totals)
	case YAML:
		return g.generateYAML(orderedMapping(rows))
	case XML:
		return g.generateXML(xmlTotals{Entries: rows})
	default:
		return nil, fmt.Errorf("unsupported report format: %s", format)
	}
}

// orderedMapping builds a YAML mapping node that keeps row order.
func orderedMapping(rows []TotalRow) *yaml.Node {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, r := range rows {
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: r.Key},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: r.Total},
		)
	}
	return node
}

func (g *ReportGenerator) generateCSV(rows interface{}) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	w.Comma = g.delimiter
	if err := gocsv.MarshalCSV(rows, gocsv.NewSafeCSVWriter(w)); err != nil {
		g.logger.WithError(err).Error("Failed to marshal CSV report")
		return nil, fmt.Errorf("failed to marshal CSV report: %w", err)
	}
	return buf.Bytes(), nil
}

func (g *ReportGenerator) generateJSON(v interface{}) ([]byte, error) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		g.logger.WithError(err).Error("Failed to marshal JSON report")
		return nil, fmt.Errorf("failed to marshal JSON report: %w", err)
	}
	return append(out, '\n'), nil
}

func (g *ReportGenerator) generateYAML(v interface{}) ([]byte, error) {
	out, err := yaml.Marshal(v)
	if err != nil {
		g.logger.WithError(err).Error("Failed to marshal YAML report")
		return nil, fmt.Errorf("failed to marshal YAML report: %w", err)
	}
	return out, nil
}

func (g *ReportGenerator) generateXML(v interface{}) ([]byte, error) {
	out, err := xml.MarshalIndent(v, "", "  ")
	if err != nil {
		g.logger.WithError(err).Error("Failed to marshal XML report")
		return nil, fmt.Errorf("failed to marshal XML report: %w", err)
	}
	return []byte(xml.Header + string(out) + "\n"), nil
}
