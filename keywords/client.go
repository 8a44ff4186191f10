package keywords

// KeywordExtractor defines the interface for extracting ranked keywords
// from document text.
type KeywordExtractor interface {
	ExtractKeywords(text string, topK int) ([]string, error)
}
