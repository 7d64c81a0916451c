package pipeline

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/nguyentantai21042004/insight-flow/internal/logger"
	"github.com/nguyentantai21042004/insight-flow/internal/remote"
)

func testLogger() logger.Logger {
	return logger.NewWithWriter("error", io.Discard)
}

func pollPipeline(svc remote.Service, timeout time.Duration) *implPipeline {
	return &implPipeline{
		service:      svc,
		logger:       testLogger(),
		pollInterval: time.Millisecond,
		pollTimeout:  timeout,
	}
}

func TestAwaitReadyEventuallyReady(t *testing.T) {
	svc := &fakeService{
		statusStates: []remote.State{
			remote.StateProcessing,
			remote.StateProcessing,
			remote.StateProcessing,
			remote.StateReady,
		},
	}
	p := pollPipeline(svc, 0)

	handle, err := p.awaitReady(context.Background(), remote.Handle{Name: "files/fake", State: remote.StateProcessing})
	if err != nil {
		t.Fatalf("awaitReady() error = %v", err)
	}
	if handle.State != remote.StateReady {
		t.Errorf("State = %q, want ready", handle.State)
	}
	if svc.statusCalls != 4 {
		t.Errorf("statusCalls = %d, want 4", svc.statusCalls)
	}
}

func TestAwaitReadyAlreadyReady(t *testing.T) {
	svc := &fakeService{}
	p := pollPipeline(svc, 0)

	handle, err := p.awaitReady(context.Background(), remote.Handle{Name: "files/fake", State: remote.StateReady})
	if err != nil {
		t.Fatalf("awaitReady() error = %v", err)
	}
	if handle.State != remote.StateReady {
		t.Errorf("State = %q, want ready", handle.State)
	}
	if svc.statusCalls != 0 {
		t.Errorf("statusCalls = %d, want 0 (no query for a terminal handle)", svc.statusCalls)
	}
}

func TestAwaitReadyRemoteFailed(t *testing.T) {
	svc := &fakeService{
		statusStates: []remote.State{remote.StateProcessing, remote.StateFailed},
	}
	p := pollPipeline(svc, 0)

	_, err := p.awaitReady(context.Background(), remote.Handle{Name: "files/fake", State: remote.StatePending})
	if !errors.Is(err, ErrProcessingFailed) {
		t.Errorf("awaitReady() error = %v, want ErrProcessingFailed", err)
	}
}

func TestAwaitReadyTimeout(t *testing.T) {
	svc := &fakeService{} // Status always reports processing
	p := pollPipeline(svc, 5*time.Millisecond)

	_, err := p.awaitReady(context.Background(), remote.Handle{Name: "files/fake", State: remote.StateProcessing})
	if !errors.Is(err, ErrPollTimeout) {
		t.Errorf("awaitReady() error = %v, want ErrPollTimeout", err)
	}
}

func TestAwaitReadyCancelled(t *testing.T) {
	svc := &fakeService{}
	p := pollPipeline(svc, 0)
	p.pollInterval = time.Minute

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(5 * time.Millisecond)
		cancel()
	}()

	_, err := p.awaitReady(ctx, remote.Handle{Name: "files/fake", State: remote.StateProcessing})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("awaitReady() error = %v, want context.Canceled", err)
	}
}

func TestAwaitReadyStatusError(t *testing.T) {
	svc := &fakeService{statusErr: remote.ErrTransport}
	p := pollPipeline(svc, 0)

	_, err := p.awaitReady(context.Background(), remote.Handle{Name: "files/fake", State: remote.StateProcessing})
	if !errors.Is(err, remote.ErrTransport) {
		t.Errorf("awaitReady() error = %v, want ErrTransport", err)
	}
}
