package extractor

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
)

// writeMinimalPDF assembles a one-page PDF with a single text-showing
// operator, computing the cross-reference table by hand.
func writeMinimalPDF(t *testing.T, path, text string) {
	t.Helper()

	var b bytes.Buffer
	offsets := make([]int, 6)

	b.WriteString("%PDF-1.4\n")

	offsets[1] = b.Len()
	b.WriteString("1 0 obj\n<< /Type /Catalog /Pages 2 0 R >>\nendobj\n")

	offsets[2] = b.Len()
	b.WriteString("2 0 obj\n<< /Type /Pages /Kids [3 0 R] /Count 1 >>\nendobj\n")

	offsets[3] = b.Len()
	b.WriteString("3 0 obj\n<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] " +
		"/Resources << /Font << /F1 4 0 R >> >> /Contents 5 0 R >>\nendobj\n")

	offsets[4] = b.Len()
	b.WriteString("4 0 obj\n<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica >>\nendobj\n")

	stream := fmt.Sprintf("BT /F1 12 Tf 72 712 Td (%s) Tj ET", text)
	offsets[5] = b.Len()
	fmt.Fprintf(&b, "5 0 obj\n<< /Length %d >>\nstream\n%s\nendstream\nendobj\n", len(stream), stream)

	xrefOffset := b.Len()
	b.WriteString("xref\n0 6\n")
	b.WriteString("0000000000 65535 f \n")
	for i := 1; i <= 5; i++ {
		fmt.Fprintf(&b, "%010d 00000 n \n", offsets[i])
	}
	fmt.Fprintf(&b, "trailer\n<< /Size 6 /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", xrefOffset)

	if err := os.WriteFile(path, b.Bytes(), 0o644); err != nil {
		t.Fatalf("failed to write pdf fixture: %v", err)
	}
}

func TestPDFExtractorRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fixture.pdf")
	writeMinimalPDF(t, path, "HelloTextoraPDF")

	result := NewPDFExtractor(zap.NewNop()).ExtractText(path)
	if !result.Success {
		t.Fatalf("unexpected failure: %s", result.Error)
	}
	if !strings.Contains(result.Text, "HelloTextoraPDF") {
		t.Errorf("extracted text %q does not contain the fixture sentence", result.Text)
	}
	if result.Pages != 1 {
		t.Errorf("Pages = %d, want 1", result.Pages)
	}
	if result.FilePath != path {
		t.Errorf("FilePath = %q, want %q", result.FilePath, path)
	}
}

func TestPDFExtractorIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fixture.pdf")
	writeMinimalPDF(t, path, "RepeatedExtraction")

	e := NewPDFExtractor(zap.NewNop())
	first := e.ExtractText(path)
	second := e.ExtractText(path)

	if !first.Success || !second.Success {
		t.Fatalf("unexpected failure: %s / %s", first.Error, second.Error)
	}
	if first.Text != second.Text {
		t.Errorf("repeated extraction differs: %q vs %q", first.Text, second.Text)
	}
}

func TestPDFExtractorCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corrupt.pdf")
	if err := os.WriteFile(path, []byte("this is not a pdf at all"), 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	result := NewPDFExtractor(zap.NewNop()).ExtractText(path)
	if result.Success {
		t.Fatal("expected failure for corrupt file")
	}
	if result.Text != "" {
		t.Errorf("expected empty text, got %q", result.Text)
	}
	if result.Error == "" {
		t.Error("expected an error description")
	}
}

func TestPDFExtractorMissingFile(t *testing.T) {
	result := NewPDFExtractor(zap.NewNop()).ExtractText(filepath.Join(t.TempDir(), "missing.pdf"))
	if result.Success {
		t.Fatal("expected failure for missing file")
	}
	if result.Text != "" {
		t.Errorf("expected empty text, got %q", result.Text)
	}
}
