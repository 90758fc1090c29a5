package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Extensions holds carrier-specific optional fields that have no canonical
// column, keyed by their canonical snake_case name. Stored as JSONB.
type Extensions map[string]string

// Value implements driver.Valuer for JSONB storage.
func (e Extensions) Value() (driver.Value, error) {
	if e == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(e)
}

// Scan implements sql.Scanner for JSONB storage.
func (e *Extensions) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*e = nil
		return nil
	case []byte:
		return json.Unmarshal(v, e)
	case string:
		return json.Unmarshal([]byte(v), e)
	default:
		return fmt.Errorf("unsupported extensions type %T", src)
	}
}

// CommissionRecord is the canonical, carrier-agnostic commission entry stored
// after ingestion. Records are append-only: corrections arrive as new records
// in a later upload, never as edits.
type CommissionRecord struct {
	ID              uuid.UUID       `db:"id" json:"id"`
	Carrier         Carrier         `db:"carrier" json:"carrier"`
	AgentName       string          `db:"agent_name" json:"agent_name"`
	TransactionType TransactionType `db:"transaction_type" json:"transaction_type"`
	Amount          float64         `db:"amount" json:"amount"`
	Period          string          `db:"period" json:"period"`
	RowPosition     int             `db:"row_position" json:"row_position"`
	Fingerprint     string          `db:"fingerprint" json:"fingerprint"`
	SourceFile      string          `db:"source_file" json:"source_file"`
	Extensions      Extensions      `db:"extensions" json:"extensions,omitempty"`
	CreatedAt       time.Time       `db:"created_at" json:"created_at"`
}

// RowReject describes a single rejected spreadsheet row. Row is the 1-based
// position in the source file, including any header offset, so the operator
// can locate it in the original spreadsheet.
type RowReject struct {
	Row     int        `json:"row"`
	Field   string     `json:"field,omitempty"`
	Code    RejectCode `json:"code"`
	Value   string     `json:"value,omitempty"`
	Message string     `json:"message"`
}

// RejectList is a JSONB-stored slice of row rejects.
type RejectList []RowReject

// Value implements driver.Valuer for JSONB storage.
func (l RejectList) Value() (driver.Value, error) {
	if l == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(l)
}

// Scan implements sql.Scanner for JSONB storage.
func (l *RejectList) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*l = nil
		return nil
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return fmt.Errorf("unsupported reject list type %T", src)
	}
}

// Ingestion is the durable record of one file ingestion, kept so the
// error report stays downloadable after the upload response is gone.
type Ingestion struct {
	ID         uuid.UUID       `db:"id" json:"id"`
	Carrier    Carrier         `db:"carrier" json:"carrier"`
	FileName   string          `db:"file_name" json:"file_name"`
	RowsRead   int             `db:"rows_read" json:"rows_read"`
	Accepted   int             `db:"accepted" json:"accepted"`
	Rejected   int             `db:"rejected" json:"rejected"`
	Duplicates int             `db:"duplicates" json:"duplicates"`
	Status     IngestionStatus `db:"status" json:"status"`
	Error      string          `db:"error" json:"error,omitempty"`
	Rejects    RejectList      `db:"rejects" json:"rejects,omitempty"`
	CreatedAt  time.Time       `db:"created_at" json:"created_at"`
}

// BatchStats summarizes the accepted records of one ingestion.
type BatchStats struct {
	TotalAmount    float64 `json:"total_amount"`
	DistinctAgents int     `json:"distinct_agents"`
	FirstPeriod    string  `json:"first_period,omitempty"`
	LastPeriod     string  `json:"last_period,omitempty"`
}

// IngestionResult is the per-file summary returned to the caller.
type IngestionResult struct {
	IngestionID uuid.UUID   `json:"ingestion_id"`
	Carrier     Carrier     `json:"carrier"`
	FileName    string      `json:"file_name"`
	RowsRead    int         `json:"rows_read"`
	Accepted    int         `json:"accepted"`
	Rejected    int         `json:"rejected"`
	Duplicates  int         `json:"duplicates"`
	Rejects     []RowReject `json:"rejects,omitempty"`
	Stats       BatchStats  `json:"stats"`
}

// RecordFilters narrows record queries for the dashboard.
type RecordFilters struct {
	Carrier         Carrier
	Agent           string
	TransactionType TransactionType
	PeriodFrom      string
	PeriodTo        string
	Offset          int
	Limit           int
}

// GroupTotal is one row of a grouped aggregate (by carrier, agent, or type).
type GroupTotal struct {
	Key   string  `db:"key" json:"key"`
	Count int     `db:"count" json:"count"`
	Total float64 `db:"total" json:"total"`
}

// Stats is the dashboard summary over the whole store.
type Stats struct {
	TotalRecords int          `json:"total_records"`
	TotalAmount  float64      `json:"total_amount"`
	ByCarrier    []GroupTotal `json:"by_carrier"`
	ByAgent      []GroupTotal `json:"by_agent"`
	ByType       []GroupTotal `json:"by_type"`
}
