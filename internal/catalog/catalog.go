package catalog

import (
	"sort"
	"strings"
)

// Catalog bundles the immutable reference tables the diagnosis pipeline reads:
// the symptom vocabulary with its synonyms, the symptom-to-disease association
// table and the per-disease care information. It is built once at process
// start and never mutated afterwards, so concurrent readers need no locking.
type Catalog struct {
	symptomNames  []string
	termToSymptom map[string]string
	associations  map[string][]string
	diseases      map[string]DiseaseInfo
}

// DiseaseInfo is the descriptive care record attached to a ranked disease.
type DiseaseInfo struct {
	Description string
	Precautions []string
	Diet        string
	Workout     string
	Medication  string
}

var defaultCatalog = build()

// Default returns the process-wide catalog.
func Default() *Catalog {
	return defaultCatalog
}

func build() *Catalog {
	entries := symptomEntries()

	catalog := &Catalog{
		symptomNames:  make([]string, 0, len(entries)),
		termToSymptom: make(map[string]string),
		associations:  symptomAssociations(),
		diseases:      diseaseEntries(),
	}

	// Canonical names are registered before synonyms so a synonym can never
	// shadow a canonical name. If the same term is registered twice the first
	// registration wins, matching the first-match-stops lookup policy.
	for _, entry := range entries {
		catalog.symptomNames = append(catalog.symptomNames, entry.Name)
		key := normalizeTerm(entry.Name)
		if _, exists := catalog.termToSymptom[key]; !exists {
			catalog.termToSymptom[key] = entry.Name
		}
	}
	for _, entry := range entries {
		for _, synonym := range entry.Synonyms {
			key := normalizeTerm(synonym)
			if _, exists := catalog.termToSymptom[key]; !exists {
				catalog.termToSymptom[key] = entry.Name
			}
		}
	}

	sort.Strings(catalog.symptomNames)
	return catalog
}

// SymptomNames returns the canonical vocabulary sorted alphabetically.
func (catalog *Catalog) SymptomNames() []string {
	names := make([]string, len(catalog.symptomNames))
	copy(names, catalog.symptomNames)
	return names
}

// MatchTerm resolves a word or phrase to its canonical symptom name. The
// comparison is case-insensitive and covers both canonical names and synonyms.
func (catalog *Catalog) MatchTerm(term string) (string, bool) {
	canonical, ok := catalog.termToSymptom[normalizeTerm(term)]
	return canonical, ok
}

// Terms returns every registered term, canonical names and synonyms alike,
// in normalized form.
func (catalog *Catalog) Terms() []string {
	terms := make([]string, 0, len(catalog.termToSymptom))
	for term := range catalog.termToSymptom {
		terms = append(terms, term)
	}
	sort.Strings(terms)
	return terms
}

// DiseasesForSymptom returns the diseases associated with a canonical symptom
// name, or an empty slice for symptoms outside the association table.
func (catalog *Catalog) DiseasesForSymptom(symptom string) []string {
	associated := catalog.associations[normalizeTerm(symptom)]
	diseases := make([]string, len(associated))
	copy(diseases, associated)
	return diseases
}

// InfoFor returns the care record for a disease name.
func (catalog *Catalog) InfoFor(disease string) (DiseaseInfo, bool) {
	info, ok := catalog.diseases[disease]
	return info, ok
}

func normalizeTerm(term string) string {
	return strings.ToLower(strings.TrimSpace(term))
}
