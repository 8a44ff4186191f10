package keywords

import (
	"regexp"
	"sort"
	"strings"

	"github.com/kljensen/snowball"
)

type KeywordScore struct {
	Keyword string
	Score   float64
}

// RAKEExtractor scores candidate phrases by word degree and frequency.
// Word statistics are accumulated over stemmed forms so that inflected
// variants of the same word reinforce each other.
type RAKEExtractor struct {
	stopWords     map[string]bool
	punctuation   *regexp.Regexp
	wordSeparator *regexp.Regexp
}

func NewRAKEExtractor() *RAKEExtractor {
	stopWords := map[string]bool{
		"a": true, "an": true, "and": true, "are": true, "as": true, "at": true,
		"be": true, "been": true, "by": true, "for": true, "from": true, "has": true,
		"he": true, "in": true, "is": true, "it": true, "its": true, "of": true,
		"on": true, "that": true, "the": true, "to": true, "was": true, "will": true,
		"with": true, "would": true, "could": true, "should": true, "may": true,
		"might": true, "can": true, "must": true, "shall": true, "this": true,
		"these": true, "they": true, "them": true, "their": true, "there": true,
		"then": true, "than": true, "or": true, "but": true, "not": true, "no": true,
		"nor": true, "so": true, "yet": true, "however": true, "therefore": true,
		"thus": true, "hence": true, "because": true, "since": true, "although": true,
		"though": true, "unless": true, "until": true, "while": true, "where": true,
		"when": true, "who": true, "whom": true, "whose": true, "which": true,
		"what": true, "why": true, "how": true, "if": true, "do": true, "does": true,
		"did": true, "have": true, "had": true, "having": true, "get": true, "got": true,
		"getting": true, "go": true, "going": true, "gone": true, "went": true,
		"come": true, "came": true, "coming": true, "take": true, "took": true,
		"taken": true, "taking": true, "make": true, "made": true, "making": true,
		"see": true, "saw": true, "seen": true, "seeing": true, "know": true,
		"knew": true, "known": true, "knowing": true, "say": true, "said": true,
		"saying": true, "think": true, "thought": true, "thinking": true,
	}

	return &RAKEExtractor{
		stopWords:     stopWords,
		punctuation:   regexp.MustCompile(`[^\w\s]`),
		wordSeparator: regexp.MustCompile(`\s+`),
	}
}

func (r *RAKEExtractor) extractCandidatePhrases(text string) []string {
	text = strings.ToLower(text)
	text = r.punctuation.ReplaceAllString(text, " ")
	text = r.wordSeparator.ReplaceAllString(text, " ")
	text = strings.TrimSpace(text)

	words := strings.Fields(text)

	var phrases []string
	var currentPhrase []string

	for _, word := range words {
		if r.stopWords[word] {
			if len(currentPhrase) > 0 {
				phrases = append(phrases, strings.Join(currentPhrase, " "))
				currentPhrase = nil
			}
		} else {
			if len(word) >= 2 {
				currentPhrase = append(currentPhrase, word)
			}
		}
	}

	if len(currentPhrase) > 0 {
		phrases = append(phrases, strings.Join(currentPhrase, " "))
	}

	return phrases
}

func (r *RAKEExtractor) stemWord(word string) string {
	stem, err := snowball.Stem(word, "english", true)
	if err != nil {
		return word
	}
	return stem
}

func (r *RAKEExtractor) calculateWordScores(phrases []string) map[string]float64 {
	wordFreq := make(map[string]int)
	wordDegree := make(map[string]int)

	for _, phrase := range phrases {
		words := strings.Fields(phrase)
		phraseLength := len(words)

		for _, word := range words {
			stem := r.stemWord(word)
			wordFreq[stem]++
			wordDegree[stem] += phraseLength - 1
		}
	}

	wordScores := make(map[string]float64)
	for word, freq := range wordFreq {
		degree := wordDegree[word]
		wordScores[word] = float64(degree+freq) / float64(freq)
	}

	return wordScores
}

func (r *RAKEExtractor) scoreKeywordPhrases(phrases []string, wordScores map[string]float64) []KeywordScore {
	var keywordScores []KeywordScore
	seen := make(map[string]bool)

	for _, phrase := range phrases {
		if seen[phrase] {
			continue
		}
		seen[phrase] = true

		words := strings.Fields(phrase)
		var phraseScore float64

		for _, word := range words {
			if score, exists := wordScores[r.stemWord(word)]; exists {
				phraseScore += score
			}
		}

		if phraseScore > 0 {
			keywordScores = append(keywordScores, KeywordScore{
				Keyword: phrase,
				Score:   phraseScore,
			})
		}
	}

	sort.SliceStable(keywordScores, func(i, j int) bool {
		return keywordScores[i].Score > keywordScores[j].Score
	})

	return keywordScores
}

// ExtractKeywords returns the topK highest-scoring candidate phrases.
func (r *RAKEExtractor) ExtractKeywords(text string, topK int) ([]string, error) {
	phrases := r.extractCandidatePhrases(text)
	if len(phrases) == 0 {
		return nil, nil
	}

	wordScores := r.calculateWordScores(phrases)
	keywordScores := r.scoreKeywordPhrases(phrases, wordScores)

	limit := topK
	if len(keywordScores) < limit {
		limit = len(keywordScores)
	}

	var keywords []string
	for i := 0; i < limit; i++ {
		keywords = append(keywords, keywordScores[i].Keyword)
	}

	return keywords, nil
}
