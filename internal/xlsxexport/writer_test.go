package xlsxexport_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"commis/internal/domain"
	"commis/internal/xlsxexport"
)

func TestBuild(t *testing.T) {
	records := []domain.CommissionRecord{
		{
			Carrier:         domain.CarrierOscar,
			AgentName:       "J SMITH",
			TransactionType: domain.TransactionCommission,
			Amount:          75.5,
			Period:          "2025-03",
			SourceFile:      "oscar_mar.xlsx",
			RowPosition:     2,
			CreatedAt:       time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC),
		},
	}

	buf, err := xlsxexport.Build(records)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows("Commissions")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Carrier", rows[0][0])
	assert.Equal(t, "OSCAR", rows[1][0])
	assert.Equal(t, "J SMITH", rows[1][1])
	assert.Equal(t, "2025-03", rows[1][4])
}

func TestBuildFilename(t *testing.T) {
	assert.Regexp(t, `^commission_records_\d{4}-\d{2}-\d{2}\.xlsx$`, xlsxexport.BuildFilename("commission records"))
}
