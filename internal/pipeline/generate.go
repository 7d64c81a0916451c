package pipeline

import (
	"context"
	"fmt"

	"github.com/nguyentantai21042004/insight-flow/internal/remote"
)

// generate asks the remote service for text conditioned on the ready handle
// and the run's instructions. The handle must be Ready; the orchestration in
// Process guarantees that ordering.
func (p *implPipeline) generate(ctx context.Context, handle remote.Handle) (string, error) {
	if handle.State != remote.StateReady {
		return "", fmt.Errorf("generate called on non-ready handle %s (state: %s)", handle.Name, handle.State)
	}

	p.logger.Info(ctx, "Requesting generation for %s with model %s", handle.Name, p.model)

	raw, err := p.service.Generate(ctx, p.instructions, handle, p.model)
	if err != nil {
		return "", err
	}
	if raw == "" {
		return "", fmt.Errorf("%w: empty response for %s", remote.ErrGeneration, handle.Name)
	}

	p.logger.Debug(ctx, "Generation returned %d bytes", len(raw))
	return raw, nil
}
