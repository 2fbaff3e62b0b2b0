// Package container provides dependency injection for the spend-summary application.
// It centralizes the creation and wiring of all application dependencies,
// making them explicit and testable.
package container

import (
	"fmt"
	"time"

	"fjacquet/spend-summary/internal/config"
	"fjacquet/spend-summary/internal/dateutils"
	"fjacquet/spend-summary/internal/loader"
	"fjacquet/spend-summary/internal/logging"
	"fjacquet/spend-summary/internal/models"
	"fjacquet/spend-summary/internal/report"
	"fjacquet/spend-summary/internal/spending"
)

// Container holds all application dependencies and provides methods to access them.
//
// Container is immutable after creation: all fields are private and can only
// be accessed through getter methods.
type Container struct {
	logger    logging.Logger
	config    *config.Config
	location  *time.Location
	groupBy   models.GroupingMode
	loaders   *loader.Registry
	pipeline  *spending.Pipeline
	generator *report.ReportGenerator
	now       func() time.Time
}

// NewContainer creates and wires all application dependencies.
func NewContainer(cfg *config.Config) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}
	return NewContainerWithLogger(cfg, logging.NewLogrusAdapter(cfg.Log.Level, cfg.Log.Format))
}

// NewContainerWithLogger wires the dependencies around an existing logger.
func NewContainerWithLogger(cfg *config.Config, logger logging.Logger) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger cannot be nil")
	}

	location, err := cfg.Location()
	if err != nil {
		return nil, fmt.Errorf("resolving pipeline timezone: %w", err)
	}

	groupBy, err := models.ParseGroupingMode(cfg.Pipeline.GroupBy)
	if err != nil {
		return nil, err
	}

	var defaultFormat loader.Format
	if cfg.Input.DefaultFormat != "" {
		if defaultFormat, err = loader.ParseFormat(cfg.Input.DefaultFormat); err != nil {
			return nil, err
		}
	}

	loaders := loader.NewRegistry(logger, cfg.Delimiter(), defaultFormat)
	pipeline := spending.NewPipeline(logger)
	generator := report.NewReportGenerator(logger, cfg.Report.CurrencySymbol, cfg.Delimiter())

	logger.Debug("Container initialized successfully",
		logging.F(logging.FieldGroupBy, groupBy.String()),
		logging.F(logging.FieldFormat, cfg.Report.Format))

	return &Container{
		logger:    logger,
		config:    cfg,
		location:  location,
		groupBy:   groupBy,
		loaders:   loaders,
		pipeline:  pipeline,
		generator: generator,
		now:       time.Now,
	}, nil
}

// GetLogger returns the application logger
func (c *Container) GetLogger() logging.Logger {
	return c.logger
}

// GetConfig returns the application configuration
func (c *Container) GetConfig() *config.Config {
	return c.config
}

// GetLoaders returns the input loader registry
func (c *Container) GetLoaders() *loader.Registry {
	return c.loaders
}

// GetPipeline returns the spending pipeline
func (c *Container) GetPipeline() *spending.Pipeline {
	return c.pipeline
}

// GetReportGenerator returns the report generator
func (c *Container) GetReportGenerator() *report.ReportGenerator {
	return c.generator
}

// GetLocation returns the time zone zoneless timestamps are read in
func (c *Container) GetLocation() *time.Location {
	return c.location
}

// DefaultOptions returns pipeline options built from configuration. The date
// window defaults to the month up to now.
func (c *Container) DefaultOptions() spending.Options {
	return spending.Options{
		BookkeepingType: c.config.Pipeline.BookkeepingType,
		Window:          c.DefaultWindow(),
		Location:        c.location,
		GroupBy:         c.groupBy,
		SkipMalformed:   c.config.Pipeline.SkipMalformed,
	}
}

// DefaultWindow returns the month up to now in the configured time zone.
func (c *Container) DefaultWindow() dateutils.DateWindow {
	return dateutils.LastMonth(c.now().In(c.location))
}
