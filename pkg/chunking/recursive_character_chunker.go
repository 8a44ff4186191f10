package chunking

import (
	"github.com/tmc/langchaingo/textsplitter"
)

type RecursiveCharacterChunker struct {
	splitter *textsplitter.RecursiveCharacter
}

// NewRecursiveCharacterChunker splits text on paragraph, line and word
// boundaries into overlapping windows sized for embedding.
func NewRecursiveCharacterChunker() *RecursiveCharacterChunker {
	splitter := textsplitter.NewRecursiveCharacter(
		textsplitter.WithChunkSize(700),
		textsplitter.WithChunkOverlap(200),
		textsplitter.WithSeparators([]string{"\n\n", "\n", " "}),
	)
	return &RecursiveCharacterChunker{
		splitter: &splitter,
	}
}

func (c *RecursiveCharacterChunker) ChunkText(text string) ([]string, error) {
	return c.splitter.SplitText(text)
}
