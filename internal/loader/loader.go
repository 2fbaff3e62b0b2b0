// Package loader reads transaction records from input documents into the
// in-memory form the spending pipeline consumes.
package loader

import (
	"io"

	"fjacquet/spend-summary/internal/logging"
	"fjacquet/spend-summary/internal/models"
)

// Loader turns one input document into transaction records.
type Loader interface {
	// Load reads the whole document from r. Fields absent from the input are
	// left empty on the record; the pipeline decides whether that is fatal.
	// Document-level problems are returned as *parsererror.InvalidFormatError,
	// unconvertible field values as *parsererror.ParseError.
	Load(r io.Reader) ([]models.TransactionRecord, error)
}

// BaseLoader holds what every loader shares. Loaders embed it:
//
//	type MyLoader struct {
//		BaseLoader
//	}
type BaseLoader struct {
	logger logging.Logger
}

// NewBaseLoader returns a BaseLoader logging to logger, or to an info-level
// logrus adapter when logger is nil.
func NewBaseLoader(logger logging.Logger) BaseLoader {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return BaseLoader{logger: logger}
}

// GetLogger returns the loader's logger
func (b *BaseLoader) GetLogger() logging.Logger {
	return b.logger
}
