package pipeline

import (
	"time"

	"github.com/nguyentantai21042004/insight-flow/internal/artifact"
	"github.com/nguyentantai21042004/insight-flow/internal/config"
	"github.com/nguyentantai21042004/insight-flow/internal/logger"
	"github.com/nguyentantai21042004/insight-flow/internal/remote"
)

type implPipeline struct {
	service      remote.Service
	writer       artifact.Writer
	extractor    Extractor
	logger       logger.Logger
	instructions string
	model        string
	pollInterval time.Duration
	pollTimeout  time.Duration
	archivedDir  string
	docx         bool
}

// New creates a Pipeline. Instructions are read once by the caller and used
// unmodified for every run.
func New(cfg *config.Config, instructions string, svc remote.Service, w artifact.Writer, ext Extractor, log logger.Logger) Pipeline {
	return &implPipeline{
		service:      svc,
		writer:       w,
		extractor:    ext,
		logger:       log,
		instructions: instructions,
		model:        cfg.Gemini.Model,
		pollInterval: cfg.Gemini.PollInterval(),
		pollTimeout:  cfg.Gemini.PollTimeout(),
		archivedDir:  cfg.Paths.Archived,
		docx:         cfg.Artifacts.Docx,
	}
}
