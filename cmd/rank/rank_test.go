package rank_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"fjacquet/spend-summary/cmd/rank"
	"fjacquet/spend-summary/cmd/root"
	"fjacquet/spend-summary/internal/config"
	"fjacquet/spend-summary/internal/container"
	"fjacquet/spend-summary/internal/logging"
	"fjacquet/spend-summary/internal/parsererror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const transactionsCSV = `amount_raw,bookkeeping_type,category,description,recorded_at_local
100000,Debit,Food,Coffee,2017-05-10 08:00:00
250000,debit,Food,Coffee,2017-05-12T09:30:00
50000,credit,Food,Refund,2017-05-11
4000000,debit,Home,Rent,2017-05-02
30000,debit,Food,Bagel,2017-06-01
`

func setup(t *testing.T, content string) (*container.Container, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "transactions.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	cfg := config.DefaultConfig()
	cfg.Pipeline.Timezone = "UTC"
	c, err := container.NewContainerWithLogger(cfg, logging.NewMockLogger())
	require.NoError(t, err)
	return c, path
}

func TestRankCommand_Metadata(t *testing.T) {
	assert.Equal(t, "rank", rank.Cmd.Use)
	assert.Contains(t, rank.Cmd.Short, "Rank")
	assert.Contains(t, rank.Cmd.Long, "largest total first")
	assert.NotNil(t, rank.Cmd.Run)
}

func TestRun_ByDescription(t *testing.T) {
	c, path := setup(t, transactionsCSV)

	var out bytes.Buffer
	err := rank.Run(c, root.CommonFlags{
		Input:   path,
		GroupBy: "description",
		From:    "2017-05-01",
		To:      "2017-05-17",
	}, &out)
	require.NoError(t, err)
	assert.Equal(t, "$400...Rent\n$35...Coffee\n", out.String())
}

func TestRun_ByCategoryJSON(t *testing.T) {
	c, path := setup(t, transactionsCSV)

	var out bytes.Buffer
	err := rank.Run(c, root.CommonFlags{
		Input:  path,
		From:   "2017-05-01",
		To:     "2017-06-30",
		Output: "json",
	}, &out)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"rank":1,"key":"Home","total":"400"},{"rank":2,"key":"Food","total":"38"}]`, out.String())
}

func TestRun_MissingInput(t *testing.T) {
	c, _ := setup(t, transactionsCSV)

	err := rank.Run(c, root.CommonFlags{}, &bytes.Buffer{})
	assert.Error(t, err)
}

func TestRun_MalformedTimestamp(t *testing.T) {
	c, path := setup(t, transactionsCSV+"1000,debit,Food,Tea,someday\n")

	flags := root.CommonFlags{Input: path, From: "2017-05-01", To: "2017-05-17"}
	err := rank.Run(c, flags, &bytes.Buffer{})
	var malformed *parsererror.MalformedTimestampError
	require.True(t, errors.As(err, &malformed), "got %v", err)

	flags.SkipMalformed = true
	var out bytes.Buffer
	require.NoError(t, rank.Run(c, flags, &out))
	assert.Contains(t, out.String(), "$35...Food")
}
