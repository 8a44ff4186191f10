package processor

import (
	"fmt"
	"path/filepath"
	"strings"

	"textora/config"
	"textora/extractor"
	"textora/pkg/chunking"

	"go.uber.org/zap"
)

// formatLabels maps extensions to human-readable type labels. A label is
// only reported for extensions that currently resolve in the registry.
var formatLabels = map[string]string{
	".pdf":  "PDF Document",
	".docx": "Word Document",
	".doc":  "Word Document",
	".xlsx": "Excel Spreadsheet",
	".txt":  "Plain Text",
	".epub": "EPUB Document",
	".html": "HTML Document",
	".htm":  "HTML Document",
}

// Client bundles an extraction registry with the utilities used to prepare
// documents for indexing.
type Client struct {
	registry *extractor.Registry
	config   *config.Config
	logger   *zap.Logger
}

// NewClient wires a client over the registry. A nil config falls back to
// defaults; optional extractors named in config.ExtraFormats are registered
// here, an unknown name is logged and skipped rather than failing the client.
func NewClient(registry *extractor.Registry, cfg *config.Config, logger *zap.Logger) *Client {
	if cfg == nil {
		cfg = config.Default()
	}
	if len(cfg.ExtraFormats) > 0 {
		if err := extractor.RegisterOptional(registry, cfg.ExtraFormats, logger); err != nil {
			logger.Warn("Failed to register optional extractors",
				zap.Strings("formats", cfg.ExtraFormats),
				zap.Error(err))
		}
	}
	return &Client{
		registry: registry,
		config:   cfg,
		logger:   logger,
	}
}

// IsSupported reports whether the path's extension resolves in the registry.
func (c *Client) IsSupported(path string) bool {
	return c.registry.Supports(filepath.Ext(path))
}

// FileType returns a human-readable label for the path's file type, or the
// empty string when the extension does not resolve or carries no label.
func (c *Client) FileType(path string) string {
	ext := strings.ToLower(filepath.Ext(path))
	if !c.registry.Supports(ext) {
		return ""
	}
	return formatLabels[ext]
}

// ExtractText extracts text from any supported document format.
func (c *Client) ExtractText(path string) *extractor.Result {
	return c.registry.ExtractFile(path)
}

// Summarize returns a preview of the document's content, hard-truncated at a
// rune boundary with no word-boundary trimming. A non-positive maxLength
// falls back to the configured preview length. Failed extraction yields "".
func (c *Client) Summarize(path string, maxLength int) string {
	if maxLength <= 0 {
		maxLength = c.config.PreviewLength
	}

	result := c.ExtractText(path)
	if !result.Success {
		return ""
	}

	runes := []rune(result.Text)
	if len(runes) <= maxLength {
		return result.Text
	}
	return string(runes[:maxLength])
}

// ExtractChunks extracts a document and splits its text for indexing.
func (c *Client) ExtractChunks(path string, chunker chunking.ChunkingClient) ([]string, error) {
	result := c.ExtractText(path)
	if !result.Success {
		return nil, fmt.Errorf("failed to extract %s: %s", path, result.Error)
	}
	return chunker.ChunkText(result.Text)
}
