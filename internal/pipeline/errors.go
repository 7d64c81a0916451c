package pipeline

import "errors"

var (
	// ErrProcessingFailed means the remote side reported the uploaded asset
	// as failed while polling for readiness.
	ErrProcessingFailed = errors.New("remote processing failed")
	// ErrPollTimeout means the readiness deadline expired before the asset
	// reached a terminal state.
	ErrPollTimeout = errors.New("polling timed out")
)
