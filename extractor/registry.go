package extractor

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"go.uber.org/zap"
)

// Registry maps normalized file extensions to text extractors. Built-in
// formats are installed by NewRegistry; additional formats can be registered
// at any point during process lifetime. Entries are never removed,
// re-registration overwrites.
type Registry struct {
	extractors map[string]TextExtractor
	logger     *zap.Logger
	mutex      sync.RWMutex
}

// NewRegistry creates a registry with the built-in extractors for
// .pdf, .docx, .doc and .xlsx.
func NewRegistry(logger *zap.Logger) *Registry {
	r := &Registry{
		extractors: make(map[string]TextExtractor),
		logger:     logger,
	}

	docxExtractor := NewDocxExtractor(logger)
	r.Register(".pdf", NewPDFExtractor(logger))
	r.Register(".docx", docxExtractor)
	r.Register(".doc", docxExtractor)
	r.Register(".xlsx", NewXlsxExtractor(logger))

	return r
}

// Register stores an extractor for an extension, overwriting any previous
// entry. The extension is normalized to lowercase with a leading dot.
func (r *Registry) Register(ext string, extractor TextExtractor) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	r.extractors[normalizeExt(ext)] = extractor
}

// Resolve returns the extractor registered for an extension. The lookup is
// case-insensitive and never panics; the second return value reports whether
// the extension is registered.
func (r *Registry) Resolve(ext string) (TextExtractor, bool) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	extractor, ok := r.extractors[normalizeExt(ext)]
	return extractor, ok
}

// Supports reports whether an extension is registered without attempting an
// extraction.
func (r *Registry) Supports(ext string) bool {
	_, ok := r.Resolve(ext)
	return ok
}

// Extensions returns the registered extensions in sorted order.
func (r *Registry) Extensions() []string {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	exts := make([]string, 0, len(r.extractors))
	for ext := range r.extractors {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}

// ExtractFile derives the extension from the path, resolves it against the
// registry and forwards the call to the matching extractor. An unregistered
// extension or a missing file produces a failed Result, never an error or a
// panic.
func (r *Registry) ExtractFile(path string) *Result {
	ext := strings.ToLower(filepath.Ext(path))

	extractor, ok := r.Resolve(ext)
	if !ok {
		r.logger.Warn("No extractor registered for extension",
			zap.String("file", path),
			zap.String("extension", ext))
		return &Result{
			FilePath: path,
			Success:  false,
			Error:    fmt.Sprintf("unsupported file format: %q", ext),
		}
	}

	if _, err := os.Stat(path); err != nil {
		r.logger.Error("File not found",
			zap.String("file", path),
			zap.Error(err))
		return &Result{
			FilePath: path,
			Success:  false,
			Error:    err.Error(),
		}
	}

	r.logger.Info("Extracting text",
		zap.String("file", path),
		zap.String("extension", ext))

	return extractor.ExtractText(path)
}

// RegisterOptional registers the extractors that are shipped but not part of
// the built-in set. Known names are "txt", "epub" and "html".
func RegisterOptional(r *Registry, formats []string, logger *zap.Logger) error {
	for _, format := range formats {
		switch strings.ToLower(strings.TrimPrefix(format, ".")) {
		case "txt":
			r.Register(".txt", NewPlainTextExtractor(logger))
		case "epub":
			r.Register(".epub", NewEPUBExtractor(logger))
		case "html":
			htmlExtractor := NewHTMLExtractor(logger)
			r.Register(".html", htmlExtractor)
			r.Register(".htm", htmlExtractor)
		default:
			return fmt.Errorf("unknown optional format: %q", format)
		}
	}
	return nil
}

func normalizeExt(ext string) string {
	ext = strings.ToLower(strings.TrimSpace(ext))
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext
}
