package domain

import "errors"

var (
	ErrNotFound            = errors.New("resource not found")
	ErrUnknownCarrier      = errors.New("unknown carrier")
	ErrUnreadableFile      = errors.New("file is not a readable spreadsheet")
	ErrEmptySheet          = errors.New("sheet has a header row but no data rows")
	ErrUnsupportedFileType = errors.New("unsupported file type")
	ErrFileTooLarge        = errors.New("file exceeds maximum allowed size")
	ErrPersistenceFailure  = errors.New("failed to persist ingestion batch")
)
