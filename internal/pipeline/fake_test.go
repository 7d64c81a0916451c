package pipeline

import (
	"context"
	"fmt"
	"io"

	"github.com/nguyentantai21042004/insight-flow/internal/remote"
)

// fakeService scripts the remote side: the upload returns a handle in
// uploadState, each Status call pops the next state from statusStates, and
// Generate returns raw.
type fakeService struct {
	uploadState  remote.State
	uploadErr    error
	statusStates []remote.State
	statusErr    error
	raw          string
	generateErr  error

	uploadCalls   int
	statusCalls   int
	generateCalls int
}

func (f *fakeService) Upload(ctx context.Context, r io.Reader, mimeType, displayName string) (remote.Handle, error) {
	f.uploadCalls++
	if f.uploadErr != nil {
		return remote.Handle{}, f.uploadErr
	}
	return remote.Handle{
		URI:      "files/fake-uri",
		Name:     "files/fake",
		MIMEType: mimeType,
		State:    f.uploadState,
	}, nil
}

func (f *fakeService) Status(ctx context.Context, name string) (remote.Handle, error) {
	f.statusCalls++
	if f.statusErr != nil {
		return remote.Handle{}, f.statusErr
	}

	state := remote.StateProcessing
	if len(f.statusStates) > 0 {
		state = f.statusStates[0]
		f.statusStates = f.statusStates[1:]
	}

	return remote.Handle{
		URI:      "files/fake-uri",
		Name:     name,
		MIMEType: "audio/mp3",
		State:    state,
	}, nil
}

func (f *fakeService) Generate(ctx context.Context, instructions string, handle remote.Handle, model string) (string, error) {
	f.generateCalls++
	if f.generateErr != nil {
		return "", f.generateErr
	}
	if f.raw == "" {
		return "", fmt.Errorf("%w: empty response for %s", remote.ErrGeneration, handle.Name)
	}
	return f.raw, nil
}
