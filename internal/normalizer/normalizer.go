// Package normalizer turns raw spreadsheet rows into canonical commission
// records using a carrier schema. It is pure: no I/O, no shared state, so
// rows can be normalized concurrently if it ever matters.
package normalizer

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"commis/internal/domain"
	"commis/internal/schema"
	"commis/internal/sheet"
)

// periodLayouts are tried in order when normalizing a period or payment
// date value to a YYYY-MM token. Carrier exports are inconsistent about
// date formats, sometimes within a single file.
var periodLayouts = []string{
	"2006-01",
	"2006-01-02",
	"2006-01-02 15:04:05",
	"01/02/2006",
	"1/2/2006",
	"01/02/06",
	"1/2/06",
	"01/2006",
	"1/2006",
	"01-02-2006",
	"2006/01/02",
	"Jan 2006",
	"January 2006",
	"Jan-06",
	"Jan-2006",
}

// Normalize maps one raw row to a canonical record. Exactly one of the
// returns is non-nil: a record when every required field resolves, or a
// reject naming the first failure. The reject carries the source row
// number so the operator can find the row in the original file.
// The required set comes from the schema, so adding a carrier with a
// different required set needs no change here.
func Normalize(row sheet.RawRow, sc *schema.CarrierSchema) (*domain.CommissionRecord, *domain.RowReject) {
	for _, m := range sc.Fields {
		if !sc.Required[m.Canonical] {
			continue
		}
		if resolve(row, sc, m.Canonical) == "" {
			return nil, reject(row, m.Canonical, domain.RejectMissingField, "",
				fmt.Sprintf("required field %q is empty", m.Canonical))
		}
	}

	agent := resolve(row, sc, schema.FieldAgent)

	var amount float64
	if rawAmount := resolve(row, sc, schema.FieldAmount); rawAmount != "" {
		var err error
		amount, err = ParseAmount(rawAmount)
		if err != nil {
			return nil, reject(row, schema.FieldAmount, domain.RejectInvalidAmount, rawAmount, err.Error())
		}
	}

	var period string
	if rawPeriod := resolve(row, sc, schema.FieldPeriod); rawPeriod != "" {
		var err error
		period, err = ParsePeriod(rawPeriod)
		if err != nil {
			return nil, reject(row, schema.FieldPeriod, domain.RejectInvalidDate, rawPeriod, err.Error())
		}
	}

	rawTxType := resolve(row, sc, schema.FieldTxType)

	record := &domain.CommissionRecord{
		Carrier:         sc.Carrier,
		AgentName:       strings.TrimSpace(agent),
		TransactionType: classifyTransaction(rawTxType),
		Amount:          amount,
		Period:          period,
		RowPosition:     row.Number,
		Extensions:      collectExtensions(row, sc, rawTxType),
	}
	record.Fingerprint = domain.Fingerprint(record)
	return record, nil
}

// resolve returns the first non-blank cell among the header variants the
// schema declares for a canonical field. Empty string when none matched.
func resolve(row sheet.RawRow, sc *schema.CarrierSchema, canonical string) string {
	m, ok := sc.Mapping(canonical)
	if !ok {
		return ""
	}
	for _, header := range m.Headers {
		if v := row.Cells[schema.NormalizeHeader(header)]; strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	return ""
}

// ParseAmount parses a currency cell. Accepts currency symbols, thousands
// separators, and accounting-style parentheses for negatives.
func ParseAmount(s string) (float64, error) {
	cleaned := strings.TrimSpace(s)
	negative := false
	if strings.HasPrefix(cleaned, "(") && strings.HasSuffix(cleaned, ")") {
		negative = true
		cleaned = cleaned[1 : len(cleaned)-1]
	}
	cleaned = strings.NewReplacer("$", "", ",", "", " ", "").Replace(cleaned)
	if cleaned == "" {
		return 0, fmt.Errorf("empty amount")
	}
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, fmt.Errorf("not a monetary value")
	}
	if negative {
		v = -v
	}
	return v, nil
}

// ParsePeriod normalizes a period or payment date cell to a YYYY-MM token.
// A full date is truncated to its month.
func ParsePeriod(s string) (string, error) {
	cleaned := strings.TrimSpace(s)
	for _, layout := range periodLayouts {
		if t, err := time.Parse(layout, cleaned); err == nil {
			return t.Format("2006-01"), nil
		}
	}
	return "", fmt.Errorf("unrecognized period format")
}

// classifyTransaction folds the carrier's free-form transaction label into
// the two canonical types. Anything mentioning an override is an override;
// everything else, including a missing label, is a plain commission.
func classifyTransaction(raw string) domain.TransactionType {
	if strings.Contains(strings.ToLower(raw), "override") {
		return domain.TransactionOverride
	}
	return domain.TransactionCommission
}

// collectExtensions gathers the schema's optional mapped fields that are
// present in the row. The carrier's raw transaction label is preserved so
// the canonical classification stays reversible.
func collectExtensions(row sheet.RawRow, sc *schema.CarrierSchema, rawTxType string) domain.Extensions {
	ext := make(domain.Extensions)
	for _, m := range sc.Fields {
		switch m.Canonical {
		case schema.FieldAgent, schema.FieldAmount, schema.FieldPeriod, schema.FieldTxType:
			continue
		}
		if v := resolve(row, sc, m.Canonical); v != "" {
			ext[m.Canonical] = v
		}
	}
	if rawTxType != "" {
		ext["transaction_type_raw"] = rawTxType
	}
	if len(ext) == 0 {
		return nil
	}
	return ext
}

func reject(row sheet.RawRow, field string, code domain.RejectCode, value, message string) *domain.RowReject {
	return &domain.RowReject{
		Row:     row.Number,
		Field:   field,
		Code:    code,
		Value:   value,
		Message: message,
	}
}
