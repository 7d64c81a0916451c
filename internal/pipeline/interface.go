package pipeline

import "context"

// Pipeline runs one media file end to end: classify, upload, wait for
// remote ingestion, generate, extract, persist.
type Pipeline interface {
	Process(ctx context.Context, mediaPath string) error
}
