package extractor

import (
	"fmt"
	"os"
	"strings"

	"github.com/ledongthuc/pdf"
	"go.uber.org/zap"
)

// PDFExtractor extracts the embedded text layer of a PDF. Scanned documents
// without a text layer yield a successful result with empty text.
type PDFExtractor struct {
	logger *zap.Logger
}

func NewPDFExtractor(logger *zap.Logger) *PDFExtractor {
	return &PDFExtractor{
		logger: logger,
	}
}

// ExtractText extracts text from all pages in document order, joined with
// newlines. The pdf library panics on some malformed files, so the panic is
// converted into a failed result at this boundary.
func (e *PDFExtractor) ExtractText(fp string) (result *Result) {
	defer func() {
		if r := recover(); r != nil {
			e.logger.Error("PDF parser panicked",
				zap.String("file", fp),
				zap.Any("panic", r))
			result = &Result{
				FilePath: fp,
				Success:  false,
				Error:    fmt.Sprintf("pdf parser panic: %v", r),
			}
		}
	}()

	f, err := os.Open(fp)
	if err != nil {
		e.logger.Error("Failed to open PDF file",
			zap.String("file", fp),
			zap.Error(err))
		return &Result{FilePath: fp, Success: false, Error: err.Error()}
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		e.logger.Error("Failed to stat PDF file",
			zap.String("file", fp),
			zap.Error(err))
		return &Result{FilePath: fp, Success: false, Error: err.Error()}
	}

	reader, err := pdf.NewReader(f, info.Size())
	if err != nil {
		e.logger.Error("Failed to parse PDF file",
			zap.String("file", fp),
			zap.Error(err))
		return &Result{FilePath: fp, Success: false, Error: err.Error()}
	}

	totalPages := reader.NumPage()
	var pages []string

	for pageNum := 1; pageNum <= totalPages; pageNum++ {
		page := reader.Page(pageNum)
		if page.V.IsNull() {
			continue
		}

		content, err := page.GetPlainText(nil)
		if err != nil {
			e.logger.Warn("Failed to extract page text",
				zap.String("file", fp),
				zap.Int("page", pageNum),
				zap.Error(err))
			continue
		}
		pages = append(pages, content)
	}

	return &Result{
		Text:     strings.Join(pages, "\n"),
		FilePath: fp,
		Pages:    totalPages,
		Success:  true,
	}
}
