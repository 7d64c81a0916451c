package artifact

import (
	"github.com/nguyentantai21042004/insight-flow/internal/logger"
)

type implWriter struct {
	outputDir string
	logger    logger.Logger
}

// New creates a Writer rooted at outputDir.
func New(outputDir string, log logger.Logger) Writer {
	return &implWriter{
		outputDir: outputDir,
		logger:    log,
	}
}
