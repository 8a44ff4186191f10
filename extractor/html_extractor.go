package extractor

import (
	"os"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"
)

// HTMLExtractor extracts visible text from local HTML files. It is not
// registered by default; see RegisterOptional.
type HTMLExtractor struct {
	logger *zap.Logger
}

func NewHTMLExtractor(logger *zap.Logger) *HTMLExtractor {
	return &HTMLExtractor{
		logger: logger,
	}
}

func (e *HTMLExtractor) ExtractText(fp string) *Result {
	f, err := os.Open(fp)
	if err != nil {
		e.logger.Error("Failed to open HTML file",
			zap.String("file", fp),
			zap.Error(err))
		return &Result{FilePath: fp, Success: false, Error: err.Error()}
	}
	defer f.Close()

	doc, err := goquery.NewDocumentFromReader(f)
	if err != nil {
		e.logger.Error("Failed to parse HTML file",
			zap.String("file", fp),
			zap.Error(err))
		return &Result{FilePath: fp, Success: false, Error: err.Error()}
	}

	// Remove script and style elements
	doc.Find("script, style, noscript").Each(func(i int, s *goquery.Selection) {
		s.Remove()
	})
	text := doc.Find("body").Text()
	text = strings.Join(strings.Fields(text), " ")

	return &Result{
		Text:     text,
		FilePath: fp,
		Success:  true,
	}
}
