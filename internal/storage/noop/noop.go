// Package noop provides a do-nothing archive for deployments without
// object storage.
package noop

import (
	"context"

	"commis/internal/port"
)

type noopStorage struct{}

// New creates an ObjectStorage that discards every upload.
func New() port.ObjectStorage {
	return noopStorage{}
}

func (noopStorage) Upload(_ context.Context, input port.UploadInput) (*port.UploadOutput, error) {
	return &port.UploadOutput{Location: "noop://" + input.Key}, nil
}
