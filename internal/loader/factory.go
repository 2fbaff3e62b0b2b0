package loader

import (
	"fmt"
	"path/filepath"
	"strings"

	"fjacquet/spend-summary/internal/fileutils"
	"fjacquet/spend-summary/internal/logging"
	"fjacquet/spend-summary/internal/models"
)

// Format identifies an input document format.
type Format string

const (
	JSON Format = "json"
	CSV  Format = "csv"
	CAMT Format = "camt"
)

// Formats lists the supported input formats.
var Formats = []Format{JSON, CSV, CAMT}

// ParseFormat accepts a format name in any case. "xml" is an alias for camt.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return JSON, nil
	case "csv":
		return CSV, nil
	case "camt", "camt053", "xml":
		return CAMT, nil
	default:
		return "", fmt.Errorf("unknown input format: %s", s)
	}
}

// DetectFormat infers the input format from a file extension.
func DetectFormat(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return JSON, nil
	case ".csv":
		return CSV, nil
	case ".xml":
		return CAMT, nil
	default:
		return "", fmt.Errorf("cannot infer input format from %q, set --format", path)
	}
}

// GetLoader returns a new loader for format.
func GetLoader(format Format, logger logging.Logger, delimiter rune) (Loader, error) {
	switch format {
	case JSON:
		return NewJSONLoader(logger), nil
	case CSV:
		return NewCSVLoader(logger, delimiter), nil
	case CAMT:
		return NewCAMTLoader(logger), nil
	default:
		return nil, fmt.Errorf("unknown loader type: %s", format)
	}
}

// Registry resolves loaders by format and reads input files.
type Registry struct {
	loaders       map[Format]Loader
	defaultFormat Format
	logger        logging.Logger
}

// NewRegistry creates one loader per supported format. defaultFormat, when
// non-empty, is used for files whose extension says nothing.
func NewRegistry(logger logging.Logger, delimiter rune, defaultFormat Format) *Registry {
	loaders := make(map[Format]Loader, len(Formats))
	for _, f := range Formats {
		l, err := GetLoader(f, logger, delimiter)
		if err != nil {
			logger.WithError(err).Warn("Loader unavailable",
				logging.F(logging.FieldFormat, string(f)))
			continue
		}
		loaders[f] = l
	}
	return &Registry{loaders: loaders, defaultFormat: defaultFormat, logger: logger}
}

// Get returns the loader registered for format.
func (r *Registry) Get(format Format) (Loader, error) {
	l, ok := r.loaders[format]
	if !ok {
		return nil, fmt.Errorf("no loader registered for format %s", format)
	}
	return l, nil
}

// ForFile selects the loader for path. An explicit format wins over the
// file extension, which wins over the registry default.
func (r *Registry) ForFile(path, format string) (Loader, Format, error) {
	var (
		f   Format
		err error
	)
	switch {
	case format != "":
		f, err = ParseFormat(format)
	default:
		f, err = DetectFormat(path)
		if err != nil && r.defaultFormat != "" {
			f, err = r.defaultFormat, nil
		}
	}
	if err != nil {
		return nil, "", err
	}

	l, err := r.Get(f)
	if err != nil {
		return nil, "", err
	}
	return l, f, nil
}

// LoadFile opens path and loads it with the loader ForFile selects.
func (r *Registry) LoadFile(path, format string) ([]models.TransactionRecord, error) {
	l, f, err := r.ForFile(path, format)
	if err != nil {
		return nil, err
	}

	r.logger.Info("Loading transactions",
		logging.F(logging.FieldFile, path),
		logging.F(logging.FieldFormat, string(f)))

	file, err := fileutils.OpenInput(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			r.logger.WithError(cerr).Warn("Failed to close file",
				logging.F(logging.FieldFile, path))
		}
	}()

	records, err := l.Load(file)
	if err != nil {
		return nil, fmt.Errorf("error loading %s: %w", path, err)
	}

	r.logger.Info("Loaded transactions",
		logging.F(logging.FieldFile, path),
		logging.F(logging.FieldCount, len(records)))
	return records, nil
}
