package pipeline

import (
	"context"
	"fmt"
	"os"

	"github.com/nguyentantai21042004/insight-flow/internal/media"
	"github.com/nguyentantai21042004/insight-flow/internal/remote"
)

// upload streams the classified file to the remote service and returns the
// handle it assigned. Upload failures are terminal for the run; retry
// policy, if any, lives behind the Service.
func (p *implPipeline) upload(ctx context.Context, desc media.Descriptor) (remote.Handle, error) {
	f, err := os.Open(desc.Path)
	if err != nil {
		return remote.Handle{}, fmt.Errorf("%w: %s", media.ErrNotFound, desc.Path)
	}
	defer f.Close()

	p.logger.Info(ctx, "Uploading %s (%s)", desc.DisplayName, desc.MIMEType)

	handle, err := p.service.Upload(ctx, f, desc.MIMEType, desc.DisplayName)
	if err != nil {
		return remote.Handle{}, err
	}

	p.logger.Info(ctx, "Upload accepted: %s (state: %s)", handle.Name, handle.State)
	return handle, nil
}
