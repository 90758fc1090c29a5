package csvexport_test

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"commis/internal/csvexport"
	"commis/internal/domain"
)

func TestWriter_RecordsRoundTrip(t *testing.T) {
	created := time.Date(2025, 2, 1, 10, 0, 0, 0, time.UTC)
	records := []domain.CommissionRecord{
		{
			Carrier:         domain.CarrierMolina,
			AgentName:       "Jane Doe",
			TransactionType: domain.TransactionCommission,
			Amount:          1250,
			Period:          "2025-01",
			SourceFile:      "molina_jan.csv",
			RowPosition:     2,
			CreatedAt:       created,
		},
	}

	var buf bytes.Buffer
	w := csvexport.NewWriter(&buf)
	require.NoError(t, w.WriteHeader())
	require.NoError(t, w.WriteRecords(records))
	w.Flush()
	require.NoError(t, w.Error())

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Carrier", rows[0][0])
	assert.Equal(t, []string{
		"MOLINA", "Jane Doe", "commission", "1250.00", "2025-01",
		"molina_jan.csv", "2", "2025-02-01T10:00:00Z",
	}, rows[1])
}

func TestRejectWriter(t *testing.T) {
	rejects := []domain.RowReject{
		{Row: 7, Field: "amount", Code: domain.RejectInvalidAmount, Value: "N/A", Message: "not a monetary value"},
	}

	var buf bytes.Buffer
	w := csvexport.NewRejectWriter(&buf)
	require.NoError(t, w.WriteHeader())
	require.NoError(t, w.WriteRejects(rejects))
	w.Flush()
	require.NoError(t, w.Error())

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"7", "amount", "invalid_amount", "N/A", "not a monetary value"}, rows[1])
}

func TestSanitizeFilename(t *testing.T) {
	assert.Equal(t, "Molina_Jan_2025", csvexport.SanitizeFilename("Molina Jan 2025!"))
	assert.Equal(t, "a_b", csvexport.SanitizeFilename("a///___b"))
}

func TestBuildFilename(t *testing.T) {
	name := csvexport.BuildFilename("commission records")
	assert.Regexp(t, `^commission_records_\d{4}-\d{2}-\d{2}\.csv$`, name)
}
