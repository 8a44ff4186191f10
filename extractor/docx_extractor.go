package extractor

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fumiama/go-docx"
	"go.uber.org/zap"
)

// oleMagic is the compound-file signature of the legacy binary .doc layout,
// which the OOXML parser cannot read.
var oleMagic = []byte{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1}

// DocxExtractor extracts text from OOXML Word documents. It serves both the
// .docx and .doc registrations: a .doc file is accepted when it is a zip-based
// document with the wrong extension, and rejected with an explicit error when
// it carries the legacy binary layout.
type DocxExtractor struct {
	logger *zap.Logger
}

func NewDocxExtractor(logger *zap.Logger) *DocxExtractor {
	return &DocxExtractor{
		logger: logger,
	}
}

// ExtractText walks body paragraphs in document order concatenating non-empty
// paragraph text, then walks all tables row by row with cells joined by " | ".
func (e *DocxExtractor) ExtractText(fp string) (result *Result) {
	defer func() {
		if r := recover(); r != nil {
			e.logger.Error("Word parser panicked",
				zap.String("file", fp),
				zap.Any("panic", r))
			result = &Result{
				FilePath: fp,
				Success:  false,
				Error:    fmt.Sprintf("word parser panic: %v", r),
			}
		}
	}()

	f, err := os.Open(fp)
	if err != nil {
		e.logger.Error("Failed to open Word document",
			zap.String("file", fp),
			zap.Error(err))
		return &Result{FilePath: fp, Success: false, Error: err.Error()}
	}
	defer f.Close()

	header := make([]byte, len(oleMagic))
	if _, err := io.ReadFull(f, header); err != nil {
		e.logger.Error("Failed to read document header",
			zap.String("file", fp),
			zap.Error(err))
		return &Result{FilePath: fp, Success: false, Error: err.Error()}
	}
	if bytes.Equal(header, oleMagic) {
		e.logger.Error("Legacy binary Word format is not supported",
			zap.String("file", fp))
		return &Result{
			FilePath: fp,
			Success:  false,
			Error:    "legacy binary Word format (OLE compound file), convert to .docx",
		}
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return &Result{FilePath: fp, Success: false, Error: err.Error()}
	}

	info, err := f.Stat()
	if err != nil {
		e.logger.Error("Failed to stat Word document",
			zap.String("file", fp),
			zap.Error(err))
		return &Result{FilePath: fp, Success: false, Error: err.Error()}
	}

	doc, err := docx.Parse(f, info.Size())
	if err != nil {
		e.logger.Error("Failed to parse Word document",
			zap.String("file", fp),
			zap.Error(err))
		return &Result{FilePath: fp, Success: false, Error: err.Error()}
	}

	var parts []string

	for _, item := range doc.Document.Body.Items {
		paragraph, ok := item.(*docx.Paragraph)
		if !ok {
			continue
		}
		if text := strings.TrimSpace(paragraph.String()); text != "" {
			parts = append(parts, text)
		}
	}

	for _, item := range doc.Document.Body.Items {
		table, ok := item.(*docx.Table)
		if !ok {
			continue
		}
		for _, row := range table.TableRows {
			cells := make([]string, 0, len(row.TableCells))
			for _, cell := range row.TableCells {
				var cellParts []string
				for _, paragraph := range cell.Paragraphs {
					if text := strings.TrimSpace(paragraph.String()); text != "" {
						cellParts = append(cellParts, text)
					}
				}
				if cellText := strings.Join(cellParts, " "); cellText != "" {
					cells = append(cells, cellText)
				}
			}
			if len(cells) > 0 {
				parts = append(parts, strings.Join(cells, " | "))
			}
		}
	}

	return &Result{
		Text:     strings.Join(parts, "\n"),
		FilePath: fp,
		Success:  true,
	}
}
