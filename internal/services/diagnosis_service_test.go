package services

import (
	"errors"
	"reflect"
	"testing"

	"github.com/Nikhil-Kaul2003/DoctorAi/internal/catalog"
	"github.com/Nikhil-Kaul2003/DoctorAi/internal/models"
)

type stubRecognizer struct {
	symptoms []string
}

func (stub stubRecognizer) Extract(selected []string, freeText string) []string {
	return stub.symptoms
}

type stubRanker struct {
	predictions []DiseasePrediction
	err         error
}

func (stub stubRanker) Score(symptoms []string, topN int) ([]DiseasePrediction, error) {
	if stub.err != nil {
		return nil, stub.err
	}
	return stub.predictions, nil
}

type stubInfoSource struct {
	records map[string]catalog.DiseaseInfo
}

func (stub stubInfoSource) InfoFor(disease string) (catalog.DiseaseInfo, bool) {
	info, ok := stub.records[disease]
	return info, ok
}

type stubDiagnosisStore struct {
	calls    int
	failures int
	saved    *models.Diagnosis
}

func (stub *stubDiagnosisStore) Create(diagnosis *models.Diagnosis) error {
	stub.calls++
	if stub.calls <= stub.failures {
		return errors.New("database locked")
	}
	diagnosis.ID = 42
	stub.saved = diagnosis
	return nil
}

func newTestDiagnosisService(recognizer SymptomRecognizer, ranker DiseaseRanker, info DiseaseInfoSource, store DiagnosisStore) *DiagnosisService {
	service := NewDiagnosisService(recognizer, ranker, info, store)
	service.retryDelay = 0
	return service
}

func TestDiagnoseHappyPath(t *testing.T) {
	influenza := catalog.DiseaseInfo{Description: "Viral infection", Diet: "Fluids"}
	store := &stubDiagnosisStore{}
	service := newTestDiagnosisService(
		stubRecognizer{symptoms: []string{"fever", "cough"}},
		stubRanker{predictions: []DiseasePrediction{{Disease: "Influenza", Probability: 100.0}}},
		stubInfoSource{records: map[string]catalog.DiseaseInfo{"Influenza": influenza}},
		store,
	)

	report, err := service.Diagnose(nil, "fever and cough", DefaultTopN)
	if err != nil {
		t.Fatalf("Diagnose() error = %v", err)
	}
	if !report.Saved || report.ID != 42 {
		t.Fatalf("Diagnose() report = %#v, want saved with ID 42", report)
	}
	if !reflect.DeepEqual(report.Symptoms, []string{"fever", "cough"}) {
		t.Fatalf("Diagnose() symptoms = %#v", report.Symptoms)
	}
	if len(report.Results) != 1 || !reflect.DeepEqual(report.Results[0].Info, influenza) {
		t.Fatalf("Diagnose() results = %#v", report.Results)
	}
	if store.saved == nil || len(store.saved.Results) != 1 {
		t.Fatalf("stored record = %#v, want one result row", store.saved)
	}
}

func TestDiagnoseEmptySymptomsSkipsScoringAndStorage(t *testing.T) {
	store := &stubDiagnosisStore{}
	service := newTestDiagnosisService(
		stubRecognizer{},
		stubRanker{err: errors.New("must not be called")},
		stubInfoSource{},
		store,
	)

	report, err := service.Diagnose(nil, "", DefaultTopN)
	if err != nil {
		t.Fatalf("Diagnose() error = %v", err)
	}
	if len(report.Symptoms) != 0 || len(report.Results) != 0 || report.Saved {
		t.Fatalf("Diagnose() report = %#v, want empty unsaved report", report)
	}
	if store.calls != 0 {
		t.Fatalf("store called %d times, want 0", store.calls)
	}
}

func TestDiagnosePropagatesRankerError(t *testing.T) {
	service := newTestDiagnosisService(
		stubRecognizer{symptoms: []string{"fever"}},
		stubRanker{err: ErrInvalidTopN},
		stubInfoSource{},
		&stubDiagnosisStore{},
	)

	if _, err := service.Diagnose(nil, "fever", -1); !errors.Is(err, ErrInvalidTopN) {
		t.Fatalf("Diagnose() error = %v, want ErrInvalidTopN", err)
	}
}

func TestDiagnoseSkipsDiseasesWithoutCareRecords(t *testing.T) {
	store := &stubDiagnosisStore{}
	service := newTestDiagnosisService(
		stubRecognizer{symptoms: []string{"fever"}},
		stubRanker{predictions: []DiseasePrediction{
			{Disease: "Documented", Probability: 100.0},
			{Disease: "Undocumented", Probability: 50.0},
		}},
		stubInfoSource{records: map[string]catalog.DiseaseInfo{"Documented": {Description: "known"}}},
		store,
	)

	report, err := service.Diagnose(nil, "fever", DefaultTopN)
	if err != nil {
		t.Fatalf("Diagnose() error = %v", err)
	}
	if len(report.Results) != 1 || report.Results[0].Disease != "Documented" {
		t.Fatalf("Diagnose() results = %#v, want only Documented", report.Results)
	}
}

func TestDiagnoseRetriesStorageThenSucceeds(t *testing.T) {
	store := &stubDiagnosisStore{failures: 2}
	service := newTestDiagnosisService(
		stubRecognizer{symptoms: []string{"fever"}},
		stubRanker{predictions: []DiseasePrediction{{Disease: "Influenza", Probability: 100.0}}},
		stubInfoSource{records: map[string]catalog.DiseaseInfo{"Influenza": {Description: "viral"}}},
		store,
	)

	report, err := service.Diagnose(nil, "fever", DefaultTopN)
	if err != nil {
		t.Fatalf("Diagnose() error = %v", err)
	}
	if store.calls != 3 {
		t.Fatalf("store called %d times, want 3", store.calls)
	}
	if !report.Saved {
		t.Fatalf("Diagnose() report = %#v, want saved", report)
	}
}

func TestDiagnoseReturnsResultsWhenStorageKeepsFailing(t *testing.T) {
	store := &stubDiagnosisStore{failures: 100}
	service := newTestDiagnosisService(
		stubRecognizer{symptoms: []string{"fever"}},
		stubRanker{predictions: []DiseasePrediction{{Disease: "Influenza", Probability: 100.0}}},
		stubInfoSource{records: map[string]catalog.DiseaseInfo{"Influenza": {Description: "viral"}}},
		store,
	)

	report, err := service.Diagnose(nil, "fever", DefaultTopN)
	if err != nil {
		t.Fatalf("Diagnose() error = %v, want results despite storage failure", err)
	}
	if store.calls != storageRetryAttempts {
		t.Fatalf("store called %d times, want %d", store.calls, storageRetryAttempts)
	}
	if report.Saved || report.ID != 0 {
		t.Fatalf("Diagnose() report = %#v, want unsaved", report)
	}
	if len(report.Results) != 1 {
		t.Fatalf("Diagnose() results = %#v, want computed results", report.Results)
	}
}
