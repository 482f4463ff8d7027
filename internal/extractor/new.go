package extractor

import (
	"github.com/nguyentantai21042004/srtgen/internal/logger"
	"github.com/nguyentantai21042004/srtgen/pkg/executor"
)

type implExtractor struct {
	binary   string
	executor executor.Executor
	logger   logger.Logger
}

// New creates an Extractor that shells out to the given ffmpeg binary
func New(binary string, exec executor.Executor, log logger.Logger) Extractor {
	if binary == "" {
		binary = "ffmpeg"
	}
	return &implExtractor{
		binary:   binary,
		executor: exec,
		logger:   log,
	}
}
