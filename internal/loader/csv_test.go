package loader

import (
	"errors"
	"strings"
	"testing"

	"fjacquet/spend-summary/internal/logging"
	"fjacquet/spend-summary/internal/models"
	"fjacquet/spend-summary/internal/parsererror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCSVLoader_Load(t *testing.T) {
	input := "amount_raw,bookkeeping_type,category,description,recorded_at_local\n" +
		"100000,Debit,Food|Coffee,Coffee,2017-05-10\n" +
		",credit,,Refund,2017-05-11T10:00:00\n"

	records, err := NewCSVLoader(logging.NewMockLogger(), ',').Load(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, int64(100000), *records[0].AmountRaw)
	assert.Equal(t, "Debit", records[0].BookkeepingType)
	assert.Equal(t, []string{"Food", "Coffee"}, records[0].Category)
	assert.Equal(t, models.StringPtr("Coffee"), records[0].Description)

	assert.False(t, records[1].HasAmount(), "blank amount is absent")
	assert.Nil(t, records[1].Category)
	assert.Equal(t, "2017-05-11T10:00:00", records[1].RecordedAtLocal)
}

func TestCSVLoader_Delimiter(t *testing.T) {
	input := "description;amount_raw;bookkeeping_type;recorded_at_local;category\n" +
		"Lunch, downtown;250000;debit;2017-05-12;Food\n"

	records, err := NewCSVLoader(logging.NewMockLogger(), ';').Load(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, models.StringPtr("Lunch, downtown"), records[0].Description)
	assert.Equal(t, int64(250000), *records[0].AmountRaw)
}

func TestCSVLoader_BadAmount(t *testing.T) {
	input := "amount_raw,bookkeeping_type,category,description,recorded_at_local\n" +
		"100000,debit,Food,Coffee,2017-05-10\n" +
		"ten,debit,Food,Tea,2017-05-10\n"

	_, err := NewCSVLoader(logging.NewMockLogger(), ',').Load(strings.NewReader(input))
	var parseErr *parsererror.ParseError
	require.True(t, errors.As(err, &parseErr), "got %v", err)
	assert.Equal(t, "csv", parseErr.Loader)
	assert.Equal(t, "ten", parseErr.Value)
	assert.Contains(t, err.Error(), "row 1")
}

func TestCSVLoader_EmptyAndAbsentDescription(t *testing.T) {
	withColumn := "amount_raw,bookkeeping_type,category,description,recorded_at_local\n" +
		"100000,debit,Food,,2017-05-10\n"
	records, err := NewCSVLoader(logging.NewMockLogger(), ',').Load(strings.NewReader(withColumn))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, models.StringPtr(""), records[0].Description, "empty cell is an empty description")

	withoutColumn := "amount_raw,bookkeeping_type,category,recorded_at_local\n" +
		"100000,debit,Food,2017-05-10\n"
	records, err = NewCSVLoader(logging.NewMockLogger(), ',').Load(strings.NewReader(withoutColumn))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Nil(t, records[0].Description)
}

func TestSplitCategories(t *testing.T) {
	assert.Nil(t, splitCategories(""))
	assert.Equal(t, []string{"Food"}, splitCategories("Food"))
	assert.Equal(t, []string{"Food", "Coffee"}, splitCategories(" Food | | Coffee "))
}
