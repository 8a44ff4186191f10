package extractor

import (
	"fmt"
	"strings"

	"github.com/taylorskalyo/goreader/epub"
	"go.uber.org/zap"
	"golang.org/x/net/html"
)

// EPUBExtractor extracts text content from EPUB files by walking the spine
// in reading order and stripping the XHTML markup of each chapter. It is not
// registered by default; see RegisterOptional.
type EPUBExtractor struct {
	logger *zap.Logger
}

func NewEPUBExtractor(logger *zap.Logger) *EPUBExtractor {
	return &EPUBExtractor{
		logger: logger,
	}
}

func (e *EPUBExtractor) ExtractText(fp string) (result *Result) {
	defer func() {
		if r := recover(); r != nil {
			e.logger.Error("EPUB parser panicked",
				zap.String("file", fp),
				zap.Any("panic", r))
			result = &Result{
				FilePath: fp,
				Success:  false,
				Error:    fmt.Sprintf("epub parser panic: %v", r),
			}
		}
	}()

	rc, err := epub.OpenReader(fp)
	if err != nil {
		e.logger.Error("Failed to open EPUB file",
			zap.String("file", fp),
			zap.Error(err))
		return &Result{FilePath: fp, Success: false, Error: err.Error()}
	}
	defer rc.Close()

	if len(rc.Rootfiles) == 0 {
		e.logger.Error("EPUB has no rootfile",
			zap.String("file", fp))
		return &Result{FilePath: fp, Success: false, Error: "no rootfiles found in epub"}
	}

	book := rc.Rootfiles[0]
	var chapters []string

	for _, ref := range book.Spine.Itemrefs {
		if ref.Item == nil {
			continue
		}

		r, err := ref.Item.Open()
		if err != nil {
			e.logger.Warn("Failed to open EPUB chapter",
				zap.String("file", fp),
				zap.Error(err))
			continue
		}
		doc, err := html.Parse(r)
		r.Close()
		if err != nil {
			e.logger.Warn("Failed to parse EPUB chapter",
				zap.String("file", fp),
				zap.Error(err))
			continue
		}

		if text := strings.TrimSpace(nodeText(doc)); text != "" {
			chapters = append(chapters, text)
		}
	}

	return &Result{
		Text:     strings.Join(chapters, "\n"),
		FilePath: fp,
		Chapters: len(book.Spine.Itemrefs),
		Success:  true,
	}
}

// nodeText collects the text nodes under n, separated by single spaces.
func nodeText(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			if t := strings.TrimSpace(n.Data); t != "" {
				b.WriteString(t)
				b.WriteString(" ")
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}
