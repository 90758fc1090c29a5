package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
)

// Fingerprint derives the dedup key for a record. Re-uploading the same
// export produces identical fingerprints, so a unique constraint on this
// value makes repeated ingestion idempotent. The composition lives behind
// this one function so it can be revisited without touching pipeline code.
func Fingerprint(r *CommissionRecord) string {
	h := sha256.New()
	fmt.Fprintf(h, "%s|%s|%s|%.2f|%d",
		r.Carrier,
		strings.ToLower(strings.TrimSpace(r.AgentName)),
		r.Period,
		r.Amount,
		r.RowPosition,
	)
	return hex.EncodeToString(h.Sum(nil))
}
