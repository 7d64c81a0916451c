package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/nguyentantai21042004/insight-flow/internal/remote"
)

// awaitReady re-queries the handle's state until it is terminal. The poll
// cadence and optional deadline come from config; a zero deadline polls
// forever. Cancellation is the caller's context.
func (p *implPipeline) awaitReady(ctx context.Context, handle remote.Handle) (remote.Handle, error) {
	var deadline time.Time
	if p.pollTimeout > 0 {
		deadline = time.Now().Add(p.pollTimeout)
	}

	attempt := 0
	for !handle.State.Terminal() {
		attempt++
		p.logger.Info(ctx, "Waiting for remote processing: %s (attempt %d)", handle.Name, attempt)

		if !deadline.IsZero() && time.Now().After(deadline) {
			return handle, fmt.Errorf("%w: %s after %s", ErrPollTimeout, handle.Name, p.pollTimeout)
		}

		select {
		case <-ctx.Done():
			return handle, ctx.Err()
		case <-time.After(p.pollInterval):
		}

		refreshed, err := p.service.Status(ctx, handle.Name)
		if err != nil {
			return handle, fmt.Errorf("poll status: %w", err)
		}
		handle = refreshed
	}

	if handle.State == remote.StateFailed {
		return handle, fmt.Errorf("%w: %s", ErrProcessingFailed, handle.Name)
	}

	p.logger.Info(ctx, "Remote processing finished: %s", handle.Name)
	return handle, nil
}
