package processor

import (
	"github.com/nguyentantai21042004/srtgen/internal/config"
	"github.com/nguyentantai21042004/srtgen/internal/extractor"
	"github.com/nguyentantai21042004/srtgen/internal/logger"
	"github.com/nguyentantai21042004/srtgen/internal/scanner"
	"github.com/nguyentantai21042004/srtgen/internal/transcriber"
	"github.com/nguyentantai21042004/srtgen/internal/transcript"
)

type implProcessor struct {
	cfg         *config.Config
	filter      scanner.Filter
	extractor   extractor.Extractor
	transcriber transcriber.Transcriber
	logger      logger.Logger

	writeDocx func(title, srt, path string) error
}

// New creates a new Processor instance. cfg must already be validated.
func New(cfg *config.Config, ext extractor.Extractor, tr transcriber.Transcriber, log logger.Logger) Processor {
	return &implProcessor{
		cfg:         cfg,
		filter:      scanner.NewFilter(cfg.Scan.Extensions),
		extractor:   ext,
		transcriber: tr,
		logger:      log,
		writeDocx:   transcript.WriteDocx,
	}
}
