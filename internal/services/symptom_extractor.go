package services

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const (
	minPhraseTokens = 2
	maxPhraseTokens = 4
)

var nonWordPattern = regexp.MustCompile(`[^\p{L}\p{N}]+`)

// SymptomVocabulary resolves words and phrases to canonical symptom names.
type SymptomVocabulary interface {
	MatchTerm(term string) (string, bool)
	Terms() []string
}

// SymptomExtractor turns pre-selected symptoms and free text into a
// deduplicated, ordered set of canonical symptom names. It holds only
// immutable lookup state, so one extractor serves concurrent requests.
type SymptomExtractor struct {
	vocabulary SymptomVocabulary
	knownWords map[string]struct{}
}

func NewSymptomExtractor(vocabulary SymptomVocabulary) *SymptomExtractor {
	knownWords := make(map[string]struct{})
	for _, term := range vocabulary.Terms() {
		for _, word := range strings.Fields(term) {
			knownWords[word] = struct{}{}
		}
	}
	return &SymptomExtractor{
		vocabulary: vocabulary,
		knownWords: knownWords,
	}
}

// Extract seeds the result with the caller-selected symptoms verbatim, then
// unions in whatever the free text resolves to. An empty result is a normal
// outcome meaning nothing recognizable was provided, never an error.
func (extractor *SymptomExtractor) Extract(selected []string, freeText string) []string {
	recognized := make([]string, 0, len(selected))
	seen := make(map[string]struct{}, len(selected))
	add := func(symptom string) {
		if _, duplicate := seen[symptom]; duplicate {
			return
		}
		seen[symptom] = struct{}{}
		recognized = append(recognized, symptom)
	}

	for _, symptom := range selected {
		symptom = strings.TrimSpace(symptom)
		if symptom != "" {
			add(symptom)
		}
	}

	if strings.TrimSpace(freeText) != "" {
		for _, symptom := range extractor.extractFromText(freeText) {
			add(symptom)
		}
	}

	return recognized
}

// extractFromText runs the text pipeline: normalize, tokenize, drop stop
// words, lemmatize, then match single tokens and 2-4 token windows against
// the vocabulary. Windows are built over the already-filtered token sequence,
// so a phrase interrupted by a stop word in the original text will not match.
func (extractor *SymptomExtractor) extractFromText(text string) []string {
	tokens := extractor.contentTokens(text)

	matches := make([]string, 0)
	for _, token := range tokens {
		if canonical, ok := extractor.vocabulary.MatchTerm(token); ok {
			matches = append(matches, canonical)
		}
	}

	for start := range tokens {
		for size := minPhraseTokens; size <= maxPhraseTokens && start+size <= len(tokens); size++ {
			phrase := strings.Join(tokens[start:start+size], " ")
			if canonical, ok := extractor.vocabulary.MatchTerm(phrase); ok {
				matches = append(matches, canonical)
			}
		}
	}

	return matches
}

func (extractor *SymptomExtractor) contentTokens(text string) []string {
	cleaned := nonWordPattern.ReplaceAllString(foldDiacritics(strings.ToLower(text)), " ")

	tokens := make([]string, 0)
	for _, token := range strings.Fields(cleaned) {
		if isStopWord(token) {
			continue
		}
		tokens = append(tokens, lemmatize(token, extractor.knownWords))
	}
	return tokens
}

// foldDiacritics strips combining marks so accented input still matches the
// plain-ASCII vocabulary. The transformer chain is stateful and therefore
// built per call.
func foldDiacritics(text string) string {
	folding := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(folding, text)
	if err != nil {
		return text
	}
	return folded
}
