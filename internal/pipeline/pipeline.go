package pipeline

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/nguyentantai21042004/insight-flow/internal/media"
)

// Process orchestrates one full run. Any step failure short-circuits the
// rest; nothing is retried here.
func (p *implPipeline) Process(ctx context.Context, mediaPath string) error {
	startTime := time.Now()

	p.logger.Info(ctx, "========================================")
	p.logger.Info(ctx, "Starting pipeline run: %s", mediaPath)
	p.logger.Info(ctx, "========================================")

	// Step 1: Classify the local file
	desc, err := media.Describe(mediaPath)
	if err != nil {
		return fmt.Errorf("describe media: %w", err)
	}
	p.logger.Info(ctx, "Classified %s as %s (%s)", desc.DisplayName, desc.MIMEType, desc.Class)

	// Step 2: Upload to the remote service
	handle, err := p.upload(ctx, desc)
	if err != nil {
		return fmt.Errorf("upload: %w", err)
	}

	// Step 3: Wait for remote ingestion to finish
	handle, err = p.awaitReady(ctx, handle)
	if err != nil {
		return fmt.Errorf("await ready: %w", err)
	}

	// Step 4: Generate text conditioned on the file and instructions
	raw, err := p.generate(ctx, handle)
	if err != nil {
		return fmt.Errorf("generate: %w", err)
	}

	// Step 5: Extract and persist
	extracted := p.extractor.Extract(raw)

	primaryPath, err := p.persist(ctx, desc, raw, extracted)
	if err != nil {
		return fmt.Errorf("persist: %w", err)
	}

	// Step 6: Move the source file out of the input folder
	if err := p.archive(ctx, mediaPath); err != nil {
		p.logger.Warn(ctx, "Failed to archive %s: %v", mediaPath, err)
	}

	duration := time.Since(startTime)
	p.logger.Info(ctx, "========================================")
	p.logger.Info(ctx, "Pipeline run completed successfully!")
	p.logger.Info(ctx, "Primary artifact: %s", primaryPath)
	p.logger.Info(ctx, "Processing time: %s", duration)
	p.logger.Info(ctx, "========================================")

	return nil
}

// persist writes the raw response as a debug artifact, the extracted text as
// the primary artifact, and optionally a docx report.
func (p *implPipeline) persist(ctx context.Context, desc media.Descriptor, raw, extracted string) (string, error) {
	base := strings.TrimSuffix(desc.DisplayName, filepath.Ext(desc.DisplayName))

	if _, err := p.writer.SaveRaw(ctx, base, raw); err != nil {
		return "", fmt.Errorf("save raw: %w", err)
	}

	primaryPath, err := p.writer.SavePrimary(ctx, base, extracted)
	if err != nil {
		return "", fmt.Errorf("save primary: %w", err)
	}

	if p.docx {
		if _, err := p.writer.SaveReport(ctx, base, extracted); err != nil {
			p.logger.Warn(ctx, "Failed to write docx report for %s: %v", base, err)
		}
	}

	return primaryPath, nil
}
