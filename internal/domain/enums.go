package domain

import "strings"

// Carrier identifies an insurance carrier whose commission report layout
// the system understands.
type Carrier string

const (
	CarrierMolina   Carrier = "MOLINA"
	CarrierAmbetter Carrier = "AMBETTER"
	CarrierAetna    Carrier = "AETNA"
	CarrierOscar    Carrier = "OSCAR"
)

// Carriers lists the supported carriers in display order.
var Carriers = []Carrier{CarrierMolina, CarrierAmbetter, CarrierAetna, CarrierOscar}

// ParseCarrier normalizes a caller-declared carrier identifier.
// The carrier is always explicit; it is never auto-detected from file content.
func ParseCarrier(s string) (Carrier, error) {
	c := Carrier(strings.ToUpper(strings.TrimSpace(s)))
	for _, known := range Carriers {
		if c == known {
			return c, nil
		}
	}
	return "", ErrUnknownCarrier
}

// TransactionType classifies a commission entry. An override is a commission
// paid to an upline or manager rather than the writing agent.
type TransactionType string

const (
	TransactionCommission TransactionType = "commission"
	TransactionOverride   TransactionType = "override"
)

// FileType represents the accepted spreadsheet container formats.
type FileType string

const (
	FileTypeXLSX FileType = "xlsx"
	FileTypeCSV  FileType = "csv"
)

// AllowedExtensions maps file extensions (without dot) to FileType.
var AllowedExtensions = map[string]FileType{
	"xlsx": FileTypeXLSX,
	"csv":  FileTypeCSV,
}

// IngestionStatus represents the outcome of a file ingestion.
type IngestionStatus string

const (
	IngestionCompleted IngestionStatus = "completed"
	IngestionFailed    IngestionStatus = "failed"
)

// RejectCode classifies why a single row was rejected during normalization.
type RejectCode string

const (
	RejectMissingField  RejectCode = "missing_field"
	RejectInvalidAmount RejectCode = "invalid_amount"
	RejectInvalidDate   RejectCode = "invalid_date"
)
