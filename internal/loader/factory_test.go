package loader

import (
	"os"
	"path/filepath"
	"testing"

	"fjacquet/spend-summary/internal/fileutils"
	"fjacquet/spend-summary/internal/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    Format
		wantErr bool
	}{
		{input: "json", want: JSON},
		{input: " CSV ", want: CSV},
		{input: "camt", want: CAMT},
		{input: "xml", want: CAMT},
		{input: "pdf", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseFormat(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDetectFormat(t *testing.T) {
	f, err := DetectFormat("/tmp/statement.XML")
	require.NoError(t, err)
	assert.Equal(t, CAMT, f)

	f, err = DetectFormat("export.json")
	require.NoError(t, err)
	assert.Equal(t, JSON, f)

	_, err = DetectFormat("export.txt")
	assert.Error(t, err)
}

func TestGetLoader(t *testing.T) {
	logger := logging.NewMockLogger()

	for _, f := range Formats {
		l, err := GetLoader(f, logger, ',')
		require.NoError(t, err)
		assert.NotNil(t, l)
	}

	_, err := GetLoader(Format("pdf"), logger, ',')
	assert.Error(t, err)
}

func TestRegistry_ForFile(t *testing.T) {
	r := NewRegistry(logging.NewMockLogger(), ',', "")

	l, f, err := r.ForFile("data.csv", "")
	require.NoError(t, err)
	assert.Equal(t, CSV, f)
	assert.IsType(t, &CSVLoader{}, l)

	l, f, err = r.ForFile("data.csv", "json")
	require.NoError(t, err)
	assert.Equal(t, JSON, f, "explicit format wins over extension")
	assert.IsType(t, &JSONLoader{}, l)

	_, _, err = r.ForFile("data.txt", "")
	assert.Error(t, err)

	withDefault := NewRegistry(logging.NewMockLogger(), ',', CAMT)
	_, f, err = withDefault.ForFile("data.txt", "")
	require.NoError(t, err)
	assert.Equal(t, CAMT, f)
}

func TestRegistry_LoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "transactions.json")
	require.NoError(t, os.WriteFile(path, []byte(transactionsJSON), 0600))

	logger := logging.NewMockLogger()
	records, err := NewRegistry(logger, ',', "").LoadFile(path, "")
	require.NoError(t, err)
	assert.Len(t, records, 2)
	assert.True(t, logger.HasEntry("INFO", "Loaded transactions"))

	_, err = NewRegistry(logger, ',', "").LoadFile(filepath.Join(dir, "missing.json"), "")
	assert.ErrorIs(t, err, fileutils.ErrNotExist)
}
