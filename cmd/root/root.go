// Package root contains the root command for the application
package root

import (
	"fjacquet/spend-summary/internal/config"
	"fjacquet/spend-summary/internal/container"
	"fjacquet/spend-summary/internal/logging"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// CommonFlags represents the flags that are common to multiple commands
type CommonFlags struct {
	Input         string
	Format        string
	Type          string
	From          string
	To            string
	GroupBy       string
	Category      string
	Output        string
	SkipMalformed bool
}

var (
	// Log is the shared logger instance for commands
	Log = logging.NewLogrusAdapterFromLogger(logrus.StandardLogger())

	// AppContainer holds the wired dependencies once PersistentPreRun has run
	AppContainer *container.Container

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "spend-summary",
		Short: "Summarise spending per description or category over a date window.",
		Long: `spend-summary reads a transaction export (JSON, CSV or CAMT.053 XML),
keeps the transactions of one bookkeeping type inside a date window,
totals them per description or category and ranks the totals.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to spend-summary!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			initializeApp()
		},
	}

	// SharedFlags holds the flags accessible to all commands
	SharedFlags = CommonFlags{}
)

// Init initializes the root command and all flags
func Init() {
	flags := Cmd.PersistentFlags()
	flags.StringVarP(&SharedFlags.Input, "input", "i", "", "Input transaction file")
	flags.StringVarP(&SharedFlags.Format, "format", "f", "", "Input format: json, csv or camt (default: from file extension)")
	flags.StringVarP(&SharedFlags.Type, "type", "t", "", "Bookkeeping type to keep, e.g. debit or credit (default: from config)")
	flags.StringVar(&SharedFlags.From, "from", "", "Window start, e.g. 2017-05-01 (default: one month before --to)")
	flags.StringVar(&SharedFlags.To, "to", "", "Window end, inclusive, e.g. 2017-05-17T23:59:59 (default: now)")
	flags.StringVarP(&SharedFlags.GroupBy, "group-by", "g", "", "Group totals by description or category (default: from config)")
	flags.StringVar(&SharedFlags.Category, "category", "", "Only keep transactions whose primary category is this")
	flags.StringVarP(&SharedFlags.Output, "output", "o", "", "Report format: text, csv, json, yaml or xml (default: from config)")
	flags.BoolVar(&SharedFlags.SkipMalformed, "skip-malformed", false, "Skip malformed transactions instead of failing")
}

// initializeApp loads configuration and builds the application container.
func initializeApp() {
	config.LoadEnv(logrus.StandardLogger())

	cfg, err := config.InitializeConfig()
	if err != nil {
		Log.Fatalf("Failed to load configuration: %v", err)
		return
	}

	c, err := container.NewContainer(cfg)
	if err != nil {
		Log.Fatalf("Failed to initialize application: %v", err)
		return
	}

	AppContainer = c
	Log = c.GetLogger()
}
