package services

import "strings"

// Noun lemmatization in the WordNet manner: an irregular-form table plus
// suffix detachment rules, where a detached candidate is only accepted when
// it is a known dictionary word. The dictionary here is the set of words
// occurring in the symptom vocabulary, which is the only lexicon matching
// cares about; unknown tokens pass through unchanged.

var irregularNouns = map[string]string{
	"feet":     "foot",
	"teeth":    "tooth",
	"men":      "man",
	"women":    "woman",
	"children": "child",
	"mice":     "mouse",
	"geese":    "goose",
}

var nounSuffixRules = []struct {
	suffix      string
	replacement string
}{
	{"sses", "ss"},
	{"ches", "ch"},
	{"shes", "sh"},
	{"xes", "x"},
	{"zes", "z"},
	{"ies", "y"},
	{"ves", "f"},
	{"es", "e"},
	{"es", ""},
	{"s", ""},
}

func lemmatize(token string, knownWords map[string]struct{}) string {
	if base, irregular := irregularNouns[token]; irregular {
		return base
	}
	if _, known := knownWords[token]; known {
		return token
	}
	for _, candidate := range lemmaCandidates(token) {
		if _, known := knownWords[candidate]; known {
			return candidate
		}
	}
	return token
}

func lemmaCandidates(token string) []string {
	candidates := make([]string, 0, 2)
	for _, rule := range nounSuffixRules {
		if !strings.HasSuffix(token, rule.suffix) {
			continue
		}
		stem := strings.TrimSuffix(token, rule.suffix) + rule.replacement
		if stem == "" || stem == token {
			continue
		}
		candidates = append(candidates, stem)
	}
	return candidates
}
