package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// archive moves a processed media file out of the input folder so the
// watcher never picks it up again.
func (p *implPipeline) archive(ctx context.Context, mediaPath string) error {
	if err := os.MkdirAll(p.archivedDir, 0755); err != nil {
		return fmt.Errorf("create archived dir: %w", err)
	}

	destPath := filepath.Join(p.archivedDir, filepath.Base(mediaPath))
	p.logger.Info(ctx, "Archiving: %s -> %s", mediaPath, destPath)

	if err := os.Rename(mediaPath, destPath); err != nil {
		return fmt.Errorf("move to archived: %w", err)
	}

	return nil
}
