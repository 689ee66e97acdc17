package services

import (
	"reflect"
	"sort"
	"testing"
)

type stubVocabulary struct {
	terms map[string]string
}

func (stub stubVocabulary) MatchTerm(term string) (string, bool) {
	canonical, ok := stub.terms[term]
	return canonical, ok
}

func (stub stubVocabulary) Terms() []string {
	terms := make([]string, 0, len(stub.terms))
	for term := range stub.terms {
		terms = append(terms, term)
	}
	sort.Strings(terms)
	return terms
}

func newTestExtractor() *SymptomExtractor {
	return NewSymptomExtractor(stubVocabulary{terms: map[string]string{
		"fever":         "fever",
		"pyrexia":       "fever",
		"headache":      "headache",
		"cough":         "cough",
		"sore throat":   "sore throat",
		"runny nose":    "runny nose",
		"rhinorrhea":    "runny nose",
		"pain in chest": "pain in chest",
	}})
}

func TestExtractEmptyInput(t *testing.T) {
	extractor := newTestExtractor()

	got := extractor.Extract(nil, "")
	if len(got) != 0 {
		t.Fatalf("Extract(nil, \"\") = %#v, want empty", got)
	}

	got = extractor.Extract([]string{"", "  "}, "   \t ")
	if len(got) != 0 {
		t.Fatalf("Extract(blank, blank) = %#v, want empty", got)
	}
}

func TestExtractKeepsSelectedSymptomsVerbatim(t *testing.T) {
	extractor := newTestExtractor()

	got := extractor.Extract([]string{" fever ", "unlisted complaint", "fever"}, "")
	want := []string{"fever", "unlisted complaint"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Extract() = %#v, want %#v", got, want)
	}
}

func TestExtractFromFreeText(t *testing.T) {
	extractor := newTestExtractor()

	got := extractor.Extract(nil, "I have a fever and a bad headache!")
	want := []string{"fever", "headache"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Extract() = %#v, want %#v", got, want)
	}
}

func TestExtractResolvesSynonyms(t *testing.T) {
	extractor := newTestExtractor()

	got := extractor.Extract(nil, "suffering from rhinorrhea since monday")
	want := []string{"runny nose"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Extract() = %#v, want %#v", got, want)
	}
}

func TestExtractMatchesMultiWordPhrases(t *testing.T) {
	extractor := newTestExtractor()

	got := extractor.Extract(nil, "I woke up with a sore throat.")
	want := []string{"sore throat"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Extract() = %#v, want %#v", got, want)
	}
}

func TestExtractLemmatizesPlurals(t *testing.T) {
	extractor := newTestExtractor()

	got := extractor.Extract(nil, "constant headaches and fevers")
	want := []string{"headache", "fever"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Extract() = %#v, want %#v", got, want)
	}
}

func TestExtractFoldsDiacritics(t *testing.T) {
	extractor := newTestExtractor()

	got := extractor.Extract(nil, "running a féver")
	want := []string{"fever"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Extract() = %#v, want %#v", got, want)
	}
}

func TestExtractUnionsSelectedAndText(t *testing.T) {
	extractor := newTestExtractor()

	got := extractor.Extract([]string{"cough"}, "also have a fever, and the cough got worse")
	want := []string{"cough", "fever"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Extract() = %#v, want %#v", got, want)
	}
}

func TestExtractIsIdempotent(t *testing.T) {
	extractor := newTestExtractor()

	first := extractor.Extract(nil, "fever and headache")
	second := extractor.Extract(first, "")
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("Extract(Extract(...)) = %#v, want %#v", second, first)
	}
}

func TestExtractIgnoresStopWordsAndPunctuation(t *testing.T) {
	extractor := newTestExtractor()

	got := extractor.Extract(nil, "and the, of... to!!!")
	if len(got) != 0 {
		t.Fatalf("Extract() = %#v, want empty", got)
	}
}

// Phrase windows are built over the stop-word-filtered token stream, so a
// vocabulary phrase containing a stop word cannot be matched from free text.
func TestExtractDoesNotMatchStopWordSpanningPhrases(t *testing.T) {
	extractor := newTestExtractor()

	got := extractor.Extract(nil, "sharp pain in chest")
	if len(got) != 0 {
		t.Fatalf("Extract() = %#v, want empty", got)
	}
}
