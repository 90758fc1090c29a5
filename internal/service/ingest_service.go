package service

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"commis/internal/config"
	"commis/internal/domain"
	"commis/internal/normalizer"
	"commis/internal/port"
	"commis/internal/schema"
	"commis/internal/sheet"
)

// IngestInput is the DTO for report ingestion requests.
type IngestInput struct {
	Carrier  string
	FileName string
	Payload  []byte
}

// IngestService defines the report ingestion contract.
type IngestService interface {
	Ingest(ctx context.Context, input IngestInput) (*domain.IngestionResult, error)
	GetIngestion(ctx context.Context, id uuid.UUID) (*domain.Ingestion, error)
	ListIngestions(ctx context.Context, offset, limit int) ([]domain.Ingestion, int, error)
}

type ingestService struct {
	registry   *schema.Registry
	records    port.CommissionRecordRepository
	ingestions port.IngestionRepository
	archive    port.ObjectStorage
	cfg        *config.Config
}

// NewIngestService creates a new IngestService implementation.
func NewIngestService(
	registry *schema.Registry,
	records port.CommissionRecordRepository,
	ingestions port.IngestionRepository,
	archive port.ObjectStorage,
	cfg *config.Config,
) IngestService {
	return &ingestService{
		registry:   registry,
		records:    records,
		ingestions: ingestions,
		archive:    archive,
		cfg:        cfg,
	}
}

var contentTypes = map[domain.FileType]string{
	domain.FileTypeXLSX: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	domain.FileTypeCSV:  "text/csv",
}

// Ingest runs the full pipeline for one uploaded report: resolve the
// carrier schema, read rows, normalize, persist the batch atomically, and
// record the ingestion in history. Per-row failures become rejects in the
// result; file-level failures abort with nothing persisted except a failed
// history entry.
func (s *ingestService) Ingest(ctx context.Context, input IngestInput) (*domain.IngestionResult, error) {
	carrier, err := domain.ParseCarrier(input.Carrier)
	if err != nil {
		return nil, err
	}

	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(input.FileName), "."))
	fileType, ok := domain.AllowedExtensions[ext]
	if !ok {
		return nil, domain.ErrUnsupportedFileType
	}
	if int64(len(input.Payload)) > s.cfg.Ingest.MaxFileSizeBytes() {
		return nil, domain.ErrFileTooLarge
	}

	sc, err := s.registry.SchemaFor(carrier)
	if err != nil {
		return nil, err
	}

	rows, err := sheet.Open(input.FileName, input.Payload, sc)
	if err != nil {
		s.recordFailure(ctx, carrier, input.FileName, err)
		return nil, err
	}

	batch := make([]domain.CommissionRecord, 0, rows.Len())
	rejects := []domain.RowReject{}
	for rows.Next() {
		record, reject := normalizer.Normalize(rows.Row(), sc)
		if reject != nil {
			rejects = append(rejects, *reject)
			continue
		}
		record.SourceFile = input.FileName
		batch = append(batch, *record)
	}

	inserted, err := s.records.CreateBatch(ctx, batch)
	if err != nil {
		wrapped := fmt.Errorf("%w: %v", domain.ErrPersistenceFailure, err)
		s.recordFailure(ctx, carrier, input.FileName, wrapped)
		return nil, wrapped
	}

	ingestion := &domain.Ingestion{
		ID:         uuid.New(),
		Carrier:    carrier,
		FileName:   input.FileName,
		RowsRead:   rows.Len(),
		Accepted:   len(batch),
		Rejected:   len(rejects),
		Duplicates: len(batch) - inserted,
		Status:     domain.IngestionCompleted,
		Rejects:    rejects,
	}
	// The batch is already committed; history stays best-effort, same as
	// recordFailure.
	if err := s.ingestions.Create(ctx, ingestion); err != nil {
		log.Printf("failed to record ingestion history for %s: %v", input.FileName, err)
	}

	s.archiveReport(ctx, carrier, input.FileName, input.Payload, contentTypes[fileType])

	return &domain.IngestionResult{
		IngestionID: ingestion.ID,
		Carrier:     carrier,
		FileName:    input.FileName,
		RowsRead:    ingestion.RowsRead,
		Accepted:    ingestion.Accepted,
		Rejected:    ingestion.Rejected,
		Duplicates:  ingestion.Duplicates,
		Rejects:     rejects,
		Stats:       batchStats(batch),
	}, nil
}

func (s *ingestService) GetIngestion(ctx context.Context, id uuid.UUID) (*domain.Ingestion, error) {
	return s.ingestions.GetByID(ctx, id)
}

func (s *ingestService) ListIngestions(ctx context.Context, offset, limit int) ([]domain.Ingestion, int, error) {
	offset, limit = normalizePagination(offset, limit)
	return s.ingestions.List(ctx, offset, limit)
}

// recordFailure writes a failed history entry. Best-effort: the original
// error is what the caller needs to see.
func (s *ingestService) recordFailure(ctx context.Context, carrier domain.Carrier, fileName string, cause error) {
	ingestion := &domain.Ingestion{
		Carrier:  carrier,
		FileName: fileName,
		Status:   domain.IngestionFailed,
		Error:    cause.Error(),
	}
	if err := s.ingestions.Create(ctx, ingestion); err != nil {
		log.Printf("failed to record ingestion failure for %s: %v", fileName, err)
	}
}

// archiveReport stores the raw upload for audit. Best-effort: an archive
// failure never fails an ingestion whose records are already committed.
func (s *ingestService) archiveReport(ctx context.Context, carrier domain.Carrier, fileName string, payload []byte, contentType string) {
	if s.archive == nil {
		return
	}
	key := fmt.Sprintf("reports/%s/%s/%s_%s",
		strings.ToLower(string(carrier)),
		time.Now().UTC().Format("2006/01"),
		uuid.New().String(), filepath.Base(fileName),
	)
	_, err := s.archive.Upload(ctx, port.UploadInput{
		Bucket:      s.cfg.Archive.Bucket,
		Key:         key,
		Body:        bytes.NewReader(payload),
		ContentType: contentType,
		Size:        int64(len(payload)),
	})
	if err != nil {
		log.Printf("failed to archive report %s: %v", fileName, err)
	}
}

// batchStats summarizes the accepted records of one file.
func batchStats(batch []domain.CommissionRecord) domain.BatchStats {
	stats := domain.BatchStats{}
	agents := map[string]struct{}{}
	for i := range batch {
		stats.TotalAmount += batch[i].Amount
		agents[batch[i].AgentName] = struct{}{}
		// YYYY-MM tokens order lexically.
		if stats.FirstPeriod == "" || batch[i].Period < stats.FirstPeriod {
			stats.FirstPeriod = batch[i].Period
		}
		if stats.LastPeriod == "" || batch[i].Period > stats.LastPeriod {
			stats.LastPeriod = batch[i].Period
		}
	}
	stats.DistinctAgents = len(agents)
	return stats
}
