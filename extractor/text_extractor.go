package extractor

import (
	"os"

	"go.uber.org/zap"
)

// PlainTextExtractor reads a file's raw bytes and returns them as text,
// unchanged. It is not registered by default; see RegisterOptional.
type PlainTextExtractor struct {
	logger *zap.Logger
}

func NewPlainTextExtractor(logger *zap.Logger) *PlainTextExtractor {
	return &PlainTextExtractor{
		logger: logger,
	}
}

func (e *PlainTextExtractor) ExtractText(fp string) *Result {
	data, err := os.ReadFile(fp)
	if err != nil {
		e.logger.Error("Failed to read text file",
			zap.String("file", fp),
			zap.Error(err))
		return &Result{FilePath: fp, Success: false, Error: err.Error()}
	}

	return &Result{
		Text:     string(data),
		FilePath: fp,
		Success:  true,
	}
}
