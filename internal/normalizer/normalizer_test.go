package normalizer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"commis/internal/domain"
	"commis/internal/normalizer"
	"commis/internal/schema"
	"commis/internal/sheet"
)

func molinaSchema(t *testing.T) *schema.CarrierSchema {
	t.Helper()
	sc, err := schema.NewRegistry().SchemaFor(domain.CarrierMolina)
	require.NoError(t, err)
	return sc
}

func oscarSchema(t *testing.T) *schema.CarrierSchema {
	t.Helper()
	sc, err := schema.NewRegistry().SchemaFor(domain.CarrierOscar)
	require.NoError(t, err)
	return sc
}

func row(number int, cells map[string]string) sheet.RawRow {
	return sheet.RawRow{Number: number, Cells: cells}
}

func TestNormalize_MolinaRow(t *testing.T) {
	record, reject := normalizer.Normalize(row(2, map[string]string{
		"agent":      "Jane Doe",
		"amount":     "$1,250.00",
		"mes pagado": "2025-01",
	}), molinaSchema(t))

	require.Nil(t, reject)
	require.NotNil(t, record)
	assert.Equal(t, domain.CarrierMolina, record.Carrier)
	assert.Equal(t, "Jane Doe", record.AgentName)
	assert.Equal(t, 1250.00, record.Amount)
	assert.Equal(t, "2025-01", record.Period)
	assert.Equal(t, domain.TransactionCommission, record.TransactionType)
	assert.Equal(t, 2, record.RowPosition)
	assert.NotEmpty(t, record.Fingerprint)
}

func TestNormalize_MissingAgent(t *testing.T) {
	record, reject := normalizer.Normalize(row(5, map[string]string{
		"amount":     "100",
		"mes pagado": "2025-01",
	}), molinaSchema(t))

	assert.Nil(t, record)
	require.NotNil(t, reject)
	assert.Equal(t, 5, reject.Row)
	assert.Equal(t, domain.RejectMissingField, reject.Code)
	assert.Equal(t, schema.FieldAgent, reject.Field)
}

func TestNormalize_InvalidAmount(t *testing.T) {
	record, reject := normalizer.Normalize(row(3, map[string]string{
		"agent":      "Jane Doe",
		"amount":     "N/A",
		"mes pagado": "2025-01",
	}), molinaSchema(t))

	assert.Nil(t, record)
	require.NotNil(t, reject)
	assert.Equal(t, domain.RejectInvalidAmount, reject.Code)
	assert.Equal(t, "N/A", reject.Value)
}

func TestNormalize_InvalidDate(t *testing.T) {
	record, reject := normalizer.Normalize(row(3, map[string]string{
		"agent":      "Jane Doe",
		"amount":     "100",
		"mes pagado": "sometime soon",
	}), molinaSchema(t))

	assert.Nil(t, record)
	require.NotNil(t, reject)
	assert.Equal(t, domain.RejectInvalidDate, reject.Code)
}

func TestNormalize_OverrideClassification(t *testing.T) {
	record, reject := normalizer.Normalize(row(2, map[string]string{
		"agent":            "Jane Doe",
		"amount":           "50",
		"mes pagado":       "2025-01",
		"transaction type": "Override Payment",
	}), molinaSchema(t))

	require.Nil(t, reject)
	assert.Equal(t, domain.TransactionOverride, record.TransactionType)
	assert.Equal(t, "Override Payment", record.Extensions["transaction_type_raw"])
}

func TestNormalize_ExtensionsCollected(t *testing.T) {
	record, reject := normalizer.Normalize(row(2, map[string]string{
		"agent":      "Jane Doe",
		"amount":     "100",
		"mes pagado": "2025-01",
		"policy":     "POL-123",
		"insured":    "John Smith",
	}), molinaSchema(t))

	require.Nil(t, reject)
	assert.Equal(t, "POL-123", record.Extensions["policy_number"])
	assert.Equal(t, "John Smith", record.Extensions["insured_name"])
}

func TestNormalize_OscarUnlabeledAgentColumn(t *testing.T) {
	record, reject := normalizer.Normalize(row(2, map[string]string{
		"column 13":        "J SMITH",
		"commission":       "75.50",
		"commission month": "03/2025",
		"commission type":  "New Business",
	}), oscarSchema(t))

	require.Nil(t, reject)
	assert.Equal(t, "J SMITH", record.AgentName)
	assert.Equal(t, 75.50, record.Amount)
	assert.Equal(t, "2025-03", record.Period)
	assert.Equal(t, domain.TransactionCommission, record.TransactionType)
}

func TestNormalize_FingerprintStableAcrossReingestion(t *testing.T) {
	cells := map[string]string{
		"agent":      "Jane Doe",
		"amount":     "$1,250.00",
		"mes pagado": "2025-01",
	}
	first, _ := normalizer.Normalize(row(2, cells), molinaSchema(t))
	second, _ := normalizer.Normalize(row(2, cells), molinaSchema(t))
	require.NotNil(t, first)
	require.NotNil(t, second)
	assert.Equal(t, first.Fingerprint, second.Fingerprint)

	// Same values on a different source row are a distinct record.
	other, _ := normalizer.Normalize(row(3, cells), molinaSchema(t))
	assert.NotEqual(t, first.Fingerprint, other.Fingerprint)
}

func TestNormalize_RequiredSetComesFromSchema(t *testing.T) {
	sc := &schema.CarrierSchema{
		Carrier: domain.CarrierAetna,
		Fields: []schema.FieldMapping{
			{Canonical: schema.FieldAgent, Headers: []string{"Agent"}},
			{Canonical: schema.FieldAmount, Headers: []string{"Amount"}},
			{Canonical: schema.FieldPeriod, Headers: []string{"Period"}},
			{Canonical: "policy_number", Headers: []string{"Policy"}},
		},
		Required: map[string]bool{
			schema.FieldAgent:  true,
			schema.FieldAmount: true,
			"policy_number":    true,
		},
		ExpectedColumns: 4,
	}

	// Missing an extra required field rejects even though agent, amount,
	// and period are all present.
	record, rej := normalizer.Normalize(row(2, map[string]string{
		"agent":  "Jane Doe",
		"amount": "100",
		"period": "2025-01",
	}), sc)
	assert.Nil(t, record)
	require.NotNil(t, rej)
	assert.Equal(t, domain.RejectMissingField, rej.Code)
	assert.Equal(t, "policy_number", rej.Field)

	// Period is not in this schema's required set, so a row without one
	// is still accepted.
	record, rej = normalizer.Normalize(row(3, map[string]string{
		"agent":  "Jane Doe",
		"amount": "100",
		"policy": "POL-9",
	}), sc)
	require.Nil(t, rej)
	require.NotNil(t, record)
	assert.Equal(t, "", record.Period)
	assert.Equal(t, "POL-9", record.Extensions["policy_number"])
}

func TestParseAmount(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"$1,250.00", 1250.00},
		{"1250", 1250},
		{"(45.10)", -45.10},
		{"-$50", -50},
		{" $ 2,000.50 ", 2000.50},
	}
	for _, tc := range cases {
		got, err := normalizer.ParseAmount(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}

	_, err := normalizer.ParseAmount("twelve dollars")
	assert.Error(t, err)
}

func TestParsePeriod(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"2025-01", "2025-01"},
		{"2025-01-15", "2025-01"},
		{"01/15/2025", "2025-01"},
		{"1/5/2025", "2025-01"},
		{"03/2025", "2025-03"},
		{"Jan 2025", "2025-01"},
		{"January 2025", "2025-01"},
	}
	for _, tc := range cases {
		got, err := normalizer.ParsePeriod(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}

	_, err := normalizer.ParsePeriod("next month")
	assert.Error(t, err)
}
