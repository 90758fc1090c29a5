// Package schema holds the declarative per-carrier column mappings. Adding a
// carrier means adding a table entry here; the reader, normalizer, and
// pipeline never branch on carrier identity.
package schema

import (
	"strings"

	"commis/internal/domain"
)

// Canonical field names the normalizer resolves from required columns.
// Everything else a schema maps lands in the record's extension map.
const (
	FieldAgent  = "agent_name"
	FieldAmount = "amount"
	FieldPeriod = "period"
	FieldTxType = "transaction_type"
)

// FieldMapping binds one canonical field to the source column headers that
// may carry it. Headers are matched case-insensitively after trimming;
// the first variant present in the row wins.
type FieldMapping struct {
	Canonical string
	Headers   []string
}

// CarrierSchema describes one carrier's report layout.
type CarrierSchema struct {
	Carrier domain.Carrier

	// Fields is the ordered list of (canonical field, header variants)
	// pairs, required canonical fields first.
	Fields []FieldMapping

	// Required names the canonical fields that must resolve for a row to
	// be accepted.
	Required map[string]bool

	// ExpectedColumns is the labeled header width of a well-formed export,
	// used by the reader to locate the header row below any prepended title
	// rows. Unlabeled trailing columns (surfaced as "Column N") do not
	// count: the reader matches on non-blank header cells.
	ExpectedColumns int
}

// Mapping returns the field mapping for a canonical name, if declared.
func (s *CarrierSchema) Mapping(canonical string) (FieldMapping, bool) {
	for _, m := range s.Fields {
		if m.Canonical == canonical {
			return m, true
		}
	}
	return FieldMapping{}, false
}

// NormalizeHeader canonicalizes a source column label for matching:
// lower-cased, trimmed, inner whitespace collapsed to single spaces.
func NormalizeHeader(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

// Registry resolves carrier identifiers to their schemas.
type Registry struct {
	schemas map[domain.Carrier]*CarrierSchema
}

// NewRegistry builds a registry with the four supported carriers.
func NewRegistry() *Registry {
	r := &Registry{schemas: make(map[domain.Carrier]*CarrierSchema, len(builtinSchemas))}
	for i := range builtinSchemas {
		s := builtinSchemas[i]
		r.schemas[s.Carrier] = &s
	}
	return r
}

// SchemaFor returns the schema for a carrier, or domain.ErrUnknownCarrier.
func (r *Registry) SchemaFor(carrier domain.Carrier) (*CarrierSchema, error) {
	s, ok := r.schemas[carrier]
	if !ok {
		return nil, domain.ErrUnknownCarrier
	}
	return s, nil
}

// Carriers returns the carriers the registry knows, in declaration order.
func (r *Registry) Carriers() []domain.Carrier {
	out := make([]domain.Carrier, 0, len(builtinSchemas))
	for _, s := range builtinSchemas {
		out = append(out, s.Carrier)
	}
	return out
}
