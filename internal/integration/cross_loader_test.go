package integration

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"fjacquet/spend-summary/internal/config"
	"fjacquet/spend-summary/internal/container"
	"fjacquet/spend-summary/internal/dateutils"
	"fjacquet/spend-summary/internal/logging"
	"fjacquet/spend-summary/internal/models"
	"fjacquet/spend-summary/internal/report"
	"fjacquet/spend-summary/internal/spending"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const exportJSON = `{"transactions": [
  {"amounts": {"amount": 100000}, "bookkeeping_type": "debit", "categories": [{"name": "CCRD"}], "description": "Coffee", "times": {"when_recorded_local": "2017-05-10"}},
  {"amounts": {"amount": 250000}, "bookkeeping_type": "debit", "categories": [{"name": "CCRD"}], "description": "Coffee", "times": {"when_recorded_local": "2017-05-12"}},
  {"amounts": {"amount": 50000}, "bookkeeping_type": "credit", "categories": [{"name": "RCDT"}], "description": "Refund", "times": {"when_recorded_local": "2017-05-11"}},
  {"amounts": {"amount": 4000000}, "bookkeeping_type": "debit", "categories": [{"name": "DMCT"}], "description": "Rent", "times": {"when_recorded_local": "2017-05-01"}}
]}`

const exportCSV = `amount_raw,bookkeeping_type,category,description,recorded_at_local
100000,debit,CCRD,Coffee,2017-05-10
250000,debit,CCRD,Coffee,2017-05-12
50000,credit,RCDT,Refund,2017-05-11
4000000,debit,DMCT,Rent,2017-05-01
`

const exportCAMT = `<?xml version="1.0" encoding="UTF-8"?>
<Document xmlns="urn:iso:std:iso:20022:tech:xsd:camt.053.001.02">
  <BkToCstmrStmt>
    <Stmt>
      <Ntry>
        <Amt Ccy="USD">10.00</Amt><CdtDbtInd>DBIT</CdtDbtInd>
        <BookgDt><Dt>2017-05-10</Dt></BookgDt>
        <BkTxCd><Domn><Cd>PMNT</Cd><Fmly><Cd>CCRD</Cd></Fmly></Domn></BkTxCd>
        <NtryDtls><TxDtls><RmtInf><Ustrd>Coffee</Ustrd></RmtInf></TxDtls></NtryDtls>
      </Ntry>
      <Ntry>
        <Amt Ccy="USD">25.00</Amt><CdtDbtInd>DBIT</CdtDbtInd>
        <BookgDt><Dt>2017-05-12</Dt></BookgDt>
        <BkTxCd><Domn><Cd>PMNT</Cd><Fmly><Cd>CCRD</Cd></Fmly></Domn></BkTxCd>
        <NtryDtls><TxDtls><RmtInf><Ustrd>Coffee</Ustrd></RmtInf></TxDtls></NtryDtls>
      </Ntry>
      <Ntry>
        <Amt Ccy="USD">5.00</Amt><CdtDbtInd>CRDT</CdtDbtInd>
        <BookgDt><Dt>2017-05-11</Dt></BookgDt>
        <BkTxCd><Domn><Cd>PMNT</Cd><Fmly><Cd>RCDT</Cd></Fmly></Domn></BkTxCd>
        <NtryDtls><TxDtls><RmtInf><Ustrd>Refund</Ustrd></RmtInf></TxDtls></NtryDtls>
      </Ntry>
      <Ntry>
        <Amt Ccy="USD">400.00</Amt><CdtDbtInd>DBIT</CdtDbtInd>
        <BookgDt><Dt>2017-05-01</Dt></BookgDt>
        <BkTxCd><Domn><Cd>PMNT</Cd><Fmly><Cd>DMCT</Cd></Fmly></Domn></BkTxCd>
        <AddtlNtryInf>Rent</AddtlNtryInf>
      </Ntry>
    </Stmt>
  </BkToCstmrStmt>
</Document>`

func newContainer(t *testing.T) *container.Container {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.Pipeline.Timezone = "UTC"
	c, err := container.NewContainerWithLogger(cfg, logging.NewMockLogger())
	require.NoError(t, err)
	return c
}

func writeExports(t *testing.T) map[string]string {
	t.Helper()
	dir := t.TempDir()
	files := map[string]string{
		"json": filepath.Join(dir, "export.json"),
		"csv":  filepath.Join(dir, "export.csv"),
		"camt": filepath.Join(dir, "statement.xml"),
	}
	require.NoError(t, os.WriteFile(files["json"], []byte(exportJSON), 0600))
	require.NoError(t, os.WriteFile(files["csv"], []byte(exportCSV), 0600))
	require.NoError(t, os.WriteFile(files["camt"], []byte(exportCAMT), 0600))
	return files
}

func mayWindow() dateutils.DateWindow {
	return dateutils.DateWindow{
		Start: time.Date(2017, 5, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2017, 5, 17, 0, 0, 0, 0, time.UTC),
	}
}

// TestCrossLoaderConsistency checks that the same transactions summarise
// identically whichever input format carries them.
func TestCrossLoaderConsistency(t *testing.T) {
	c := newContainer(t)
	files := writeExports(t)

	for _, mode := range []models.GroupingMode{models.GroupByDescription, models.GroupByCategory} {
		opts := spending.Options{
			BookkeepingType: models.BookkeepingDebit,
			Window:          mayWindow(),
			Location:        c.GetLocation(),
			GroupBy:         mode,
		}

		var outputs []string
		for _, format := range []string{"json", "csv", "camt"} {
			records, err := c.GetLoaders().LoadFile(files[format], "")
			require.NoError(t, err, format)

			result, err := c.GetPipeline().Run(records, opts)
			require.NoError(t, err, format)

			out, err := c.GetReportGenerator().GenerateRanking(result.Ranked, report.CSV)
			require.NoError(t, err, format)
			outputs = append(outputs, string(out))
		}

		assert.Equal(t, outputs[0], outputs[1], "json and csv differ for %s", mode)
		assert.Equal(t, outputs[0], outputs[2], "json and camt differ for %s", mode)
	}
}

func TestEndToEnd_TextReport(t *testing.T) {
	c := newContainer(t)
	files := writeExports(t)

	records, err := c.GetLoaders().LoadFile(files["camt"], "")
	require.NoError(t, err)

	window := mayWindow()
	window.Start = time.Date(2017, 5, 2, 0, 0, 0, 0, time.UTC)

	result, err := c.GetPipeline().Run(records, spending.Options{
		BookkeepingType: "DEBIT",
		Window:          window,
		Location:        c.GetLocation(),
		GroupBy:         models.GroupByDescription,
	})
	require.NoError(t, err)
	assert.Equal(t, 4, result.Input)
	assert.Equal(t, 2, result.Retained)

	out, err := c.GetReportGenerator().GenerateRanking(result.Ranked, report.Text)
	require.NoError(t, err)
	assert.Equal(t, "$35...Coffee\n", string(out))
}
