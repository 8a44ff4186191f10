package extractor

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

// XlsxExtractor extracts cell text from Excel workbooks. Each worksheet is
// emitted in workbook order behind a "=== Sheet: NAME ===" header line.
type XlsxExtractor struct {
	logger *zap.Logger
}

func NewXlsxExtractor(logger *zap.Logger) *XlsxExtractor {
	return &XlsxExtractor{
		logger: logger,
	}
}

// ExtractText iterates rows top-to-bottom and cells left-to-right, skipping
// empty cells; cells are joined with " | " and rows with newlines.
func (e *XlsxExtractor) ExtractText(fp string) (result *Result) {
	defer func() {
		if r := recover(); r != nil {
			e.logger.Error("Workbook parser panicked",
				zap.String("file", fp),
				zap.Any("panic", r))
			result = &Result{
				FilePath: fp,
				Success:  false,
				Error:    fmt.Sprintf("workbook parser panic: %v", r),
			}
		}
	}()

	f, err := excelize.OpenFile(fp)
	if err != nil {
		e.logger.Error("Failed to open workbook",
			zap.String("file", fp),
			zap.Error(err))
		return &Result{FilePath: fp, Success: false, Error: err.Error()}
	}
	defer func() {
		if err := f.Close(); err != nil {
			e.logger.Warn("Failed to close workbook",
				zap.String("file", fp),
				zap.Error(err))
		}
	}()

	sheets := f.GetSheetList()
	var b strings.Builder

	for _, sheet := range sheets {
		b.WriteString(fmt.Sprintf("\n=== Sheet: %s ===\n", sheet))

		rows, err := f.GetRows(sheet)
		if err != nil {
			e.logger.Warn("Failed to read sheet rows",
				zap.String("file", fp),
				zap.String("sheet", sheet),
				zap.Error(err))
			continue
		}

		for _, row := range rows {
			cells := make([]string, 0, len(row))
			for _, cell := range row {
				if cell == "" {
					continue
				}
				cells = append(cells, cell)
			}
			if len(cells) == 0 {
				continue
			}
			b.WriteString(strings.Join(cells, " | "))
			b.WriteString("\n")
		}
	}

	return &Result{
		Text:     b.String(),
		FilePath: fp,
		Sheets:   len(sheets),
		Success:  true,
	}
}
