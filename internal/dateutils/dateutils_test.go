package dateutils

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimestamp(t *testing.T) {
	zurich := time.FixedZone("CET", 3600)

	tests := []struct {
		name     string
		input    string
		expected time.Time
	}{
		{"date only", "2017-05-10", time.Date(2017, 5, 10, 0, 0, 0, 0, zurich)},
		{"space separated", "2017-05-10 08:15:00", time.Date(2017, 5, 10, 8, 15, 0, 0, zurich)},
		{"T separated", "2017-05-10T08:15:00", time.Date(2017, 5, 10, 8, 15, 0, 0, zurich)},
		{"T separated millis", "2017-05-10T08:15:00.250", time.Date(2017, 5, 10, 8, 15, 0, 250e6, zurich)},
		{"RFC3339 keeps its offset", "2017-05-10T08:15:00Z", time.Date(2017, 5, 10, 8, 15, 0, 0, time.UTC)},
		{"RFC3339 nano", "2017-05-10T08:15:00.5-04:00", time.Date(2017, 5, 10, 12, 15, 0, 5e8, time.UTC)},
		{"surrounding whitespace", "  2017-05-10  ", time.Date(2017, 5, 10, 0, 0, 0, 0, zurich)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTimestamp(tt.input, zurich)
			require.NoError(t, err)
			assert.True(t, tt.expected.Equal(got), "got %s, want %s", got, tt.expected)
		})
	}
}

func TestParseTimestamp_Errors(t *testing.T) {
	_, err := ParseTimestamp("   ", time.UTC)
	assert.True(t, errors.Is(err, ErrEmptyTimestamp))

	_, err = ParseTimestamp("10/05/2017", time.UTC)
	assert.Error(t, err)

	_, err = ParseTimestamp("2017-13-40", time.UTC)
	assert.Error(t, err)
}

func TestParseTimestamp_NilLocationUsesLocal(t *testing.T) {
	got, err := ParseTimestamp("2017-05-10", nil)
	require.NoError(t, err)
	assert.Equal(t, time.Local, got.Location())
}

func TestLoadLocation(t *testing.T) {
	loc, err := LoadLocation("")
	require.NoError(t, err)
	assert.Equal(t, time.Local, loc)

	loc, err = LoadLocation("UTC")
	require.NoError(t, err)
	assert.Equal(t, time.UTC, loc)

	_, err = LoadLocation("Mars/Olympus_Mons")
	assert.Error(t, err)
}

func TestDateWindow_Contains(t *testing.T) {
	start := time.Date(2017, 5, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2017, 5, 17, 0, 0, 0, 0, time.UTC)
	w, err := NewDateWindow(start, end)
	require.NoError(t, err)

	assert.True(t, w.Contains(start), "start is inclusive")
	assert.True(t, w.Contains(end), "end is inclusive")
	assert.True(t, w.Contains(start.Add(time.Hour)))
	assert.False(t, w.Contains(start.Add(-time.Nanosecond)))
	assert.False(t, w.Contains(end.Add(time.Nanosecond)))
	assert.Equal(t, "2017-05-01_2017-05-17", w.String())
}

func TestDateWindow_Validate(t *testing.T) {
	start := time.Date(2017, 5, 1, 0, 0, 0, 0, time.UTC)

	_, err := NewDateWindow(start, start.Add(-time.Second))
	assert.Error(t, err)

	_, err = NewDateWindow(time.Time{}, start)
	assert.Error(t, err)

	w, err := NewDateWindow(start, start)
	require.NoError(t, err)
	assert.True(t, w.Contains(start))

	assert.Equal(t, "", DateWindow{}.String())
}

func TestLastMonth(t *testing.T) {
	now := time.Date(2017, 5, 17, 12, 0, 0, 0, time.UTC)
	w := LastMonth(now)

	assert.Equal(t, time.Date(2017, 4, 17, 12, 0, 0, 0, time.UTC), w.Start)
	assert.Equal(t, now, w.End)
	assert.NoError(t, w.Validate())
}
