package remote

import "errors"

var (
	// ErrUpload means the upload call itself failed. Not retried here.
	ErrUpload = errors.New("upload failed")
	// ErrTransport means a status query could not reach the service.
	ErrTransport = errors.New("transport error")
	// ErrGeneration covers generation call failures and empty responses.
	ErrGeneration = errors.New("generation failed")
)

// State is the remote-side processing state of an uploaded asset.
type State string

const (
	StatePending    State = "pending"
	StateProcessing State = "processing"
	StateReady      State = "ready"
	StateFailed     State = "failed"
)

// Terminal reports whether the state can no longer change.
func (s State) Terminal() bool {
	return s == StateReady || s == StateFailed
}

// Handle identifies an uploaded asset on the remote side. It is only ever
// mutated by re-querying the service; local code treats it as a snapshot.
type Handle struct {
	URI      string
	Name     string
	MIMEType string
	State    State
}
