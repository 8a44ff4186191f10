package chunking

import (
	"strings"
	"testing"
)

func TestSentenceChunkerGroupsSentences(t *testing.T) {
	chunker, err := NewSentenceChunker(30)
	if err != nil {
		t.Fatalf("failed to create chunker: %v", err)
	}

	chunks, err := chunker.ChunkText("First sentence here. Second one follows. Third sentence ends it.")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{
		"First sentence here. Second one follows.",
		"Third sentence ends it.",
	}
	if len(chunks) != len(want) {
		t.Fatalf("got %d chunks, want %d: %v", len(chunks), len(want), chunks)
	}
	for i, chunk := range chunks {
		if chunk != want[i] {
			t.Errorf("chunk %d = %q, want %q", i, chunk, want[i])
		}
	}
}

func TestSentenceChunkerNeverSplitsSentences(t *testing.T) {
	chunker, err := NewSentenceChunker(50)
	if err != nil {
		t.Fatalf("failed to create chunker: %v", err)
	}

	text := "The reactor came online in March. Output held steady for two weeks. Then the coolant loop failed. Repairs took a full month."
	chunks, err := chunker.ChunkText(text)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(chunks) < 2 {
		t.Fatalf("got %d chunks, want at least 2: %v", len(chunks), chunks)
	}
	for i, chunk := range chunks {
		if !strings.HasSuffix(chunk, ".") {
			t.Errorf("chunk %d does not end on a sentence boundary: %q", i, chunk)
		}
	}
}

func TestSentenceChunkerShortText(t *testing.T) {
	chunker, err := NewSentenceChunker(30)
	if err != nil {
		t.Fatalf("failed to create chunker: %v", err)
	}

	chunks, err := chunker.ChunkText("Tiny.")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(chunks) != 1 || chunks[0] != "Tiny." {
		t.Errorf("chunks = %v, want single chunk %q", chunks, "Tiny.")
	}
}

func TestSentenceChunkerEmptyText(t *testing.T) {
	chunker, err := NewSentenceChunker(30)
	if err != nil {
		t.Fatalf("failed to create chunker: %v", err)
	}

	chunks, err := chunker.ChunkText("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(chunks) != 0 {
		t.Errorf("chunks = %v, want none", chunks)
	}
}
