package chunking

import (
	"fmt"
	"strings"

	"github.com/neurosnap/sentences"
	"github.com/neurosnap/sentences/english"
)

// SentenceChunker groups whole sentences into chunks of at least
// minChunkSize characters. The final chunk may be shorter; sentences are
// never split in the middle.
type SentenceChunker struct {
	tokenizer    *sentences.DefaultSentenceTokenizer
	minChunkSize int
}

func NewSentenceChunker(minChunkSize int) (*SentenceChunker, error) {
	if minChunkSize <= 0 {
		minChunkSize = 100
	}

	tokenizer, err := english.NewSentenceTokenizer(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create sentence tokenizer: %w", err)
	}

	return &SentenceChunker{
		tokenizer:    tokenizer,
		minChunkSize: minChunkSize,
	}, nil
}

func (sc *SentenceChunker) ChunkText(text string) ([]string, error) {
	sentenceObjs := sc.tokenizer.Tokenize(text)
	if len(sentenceObjs) == 0 {
		return nil, nil
	}

	var chunks []string
	var current []string

	for _, sentenceObj := range sentenceObjs {
		sentence := strings.TrimSpace(sentenceObj.Text)
		if sentence == "" {
			continue
		}

		current = append(current, sentence)
		if len(strings.Join(current, " ")) >= sc.minChunkSize {
			chunks = append(chunks, strings.Join(current, " "))
			current = nil
		}
	}

	if len(current) > 0 {
		chunks = append(chunks, strings.Join(current, " "))
	}

	return chunks, nil
}
