package remote

import (
	"context"
	"io"
)

// Service is the boundary to the remote media/generation backend. Upload
// hands back an opaque handle, Status re-queries its processing state, and
// Generate produces text conditioned on a ready handle.
type Service interface {
	Upload(ctx context.Context, r io.Reader, mimeType, displayName string) (Handle, error)
	Status(ctx context.Context, name string) (Handle, error)
	Generate(ctx context.Context, instructions string, handle Handle, model string) (string, error)
}
