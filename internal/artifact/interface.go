package artifact

import "context"

// Writer persists the outputs of one pipeline run. The primary artifact is
// the extracted text, the raw artifact is the untouched model response kept
// for debugging, and the report is an optional docx rendering.
type Writer interface {
	SavePrimary(ctx context.Context, base, text string) (string, error)
	SaveRaw(ctx context.Context, base, text string) (string, error)
	SaveReport(ctx context.Context, base, text string) (string, error)
}
