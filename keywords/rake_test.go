package keywords

import (
	"strings"
	"testing"
)

func TestExtractKeywords(t *testing.T) {
	text := "Machine learning models require large training datasets. " +
		"Machine learning performance depends on the quality of the training datasets."

	keywords, err := NewRAKEExtractor().ExtractKeywords(text, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(keywords) == 0 {
		t.Fatal("expected keywords, got none")
	}
	if len(keywords) > 5 {
		t.Errorf("got %d keywords, want at most 5", len(keywords))
	}

	found := false
	for _, kw := range keywords {
		if strings.Contains(kw, "machine learning") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a phrase containing %q, got %v", "machine learning", keywords)
	}
}

func TestExtractKeywordsDeduplicates(t *testing.T) {
	text := "Solar power grows. Solar power grows. Solar power grows."

	keywords, err := NewRAKEExtractor().ExtractKeywords(text, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	seen := make(map[string]bool)
	for _, kw := range keywords {
		if seen[kw] {
			t.Errorf("duplicate keyword %q in %v", kw, keywords)
		}
		seen[kw] = true
	}
}

func TestExtractKeywordsEmptyText(t *testing.T) {
	keywords, err := NewRAKEExtractor().ExtractKeywords("", 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(keywords) != 0 {
		t.Errorf("keywords = %v, want none", keywords)
	}
}

func TestExtractKeywordsStopWordsOnly(t *testing.T) {
	keywords, err := NewRAKEExtractor().ExtractKeywords("the and of to in is was", 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(keywords) != 0 {
		t.Errorf("keywords = %v, want none", keywords)
	}
}
