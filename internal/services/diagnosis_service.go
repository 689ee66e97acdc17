package services

import (
	"log"
	"time"

	"github.com/Nikhil-Kaul2003/DoctorAi/internal/catalog"
	"github.com/Nikhil-Kaul2003/DoctorAi/internal/models"
)

// SymptomRecognizer normalizes caller input into canonical symptom names.
type SymptomRecognizer interface {
	Extract(selected []string, freeText string) []string
}

// DiseaseRanker converts a symptom set into ranked disease predictions.
type DiseaseRanker interface {
	Score(symptoms []string, topN int) ([]DiseasePrediction, error)
}

// DiseaseInfoSource looks up the care record for a ranked disease.
type DiseaseInfoSource interface {
	InfoFor(disease string) (catalog.DiseaseInfo, bool)
}

// DiagnosisStore persists a completed diagnosis session.
type DiagnosisStore interface {
	Create(diagnosis *models.Diagnosis) error
}

// DiagnosisEntry is one ranked disease enriched with its care information.
type DiagnosisEntry struct {
	Disease     string
	Probability float64
	Info        catalog.DiseaseInfo
}

// DiagnosisReport is the outcome of one diagnosis request. Empty Symptoms or
// Results signal "nothing recognizable" and "insufficient information"
// respectively; neither is an error. Saved reports carry the record ID.
type DiagnosisReport struct {
	ID       uint
	Symptoms []string
	Results  []DiagnosisEntry
	Saved    bool
}

type DiagnosisService struct {
	recognizer    SymptomRecognizer
	ranker        DiseaseRanker
	info          DiseaseInfoSource
	store         DiagnosisStore
	retryAttempts int
	retryDelay    time.Duration
}

func NewDiagnosisService(recognizer SymptomRecognizer, ranker DiseaseRanker, info DiseaseInfoSource, store DiagnosisStore) *DiagnosisService {
	return &DiagnosisService{
		recognizer:    recognizer,
		ranker:        ranker,
		info:          info,
		store:         store,
		retryAttempts: storageRetryAttempts,
		retryDelay:    storageRetryDelay,
	}
}

// Diagnose runs the full pipeline: extract symptoms, rank diseases, attach
// care information and persist the session. Persistence is retried a bounded
// number of times and its failure never withholds the computed results from
// the caller; the report simply comes back unsaved.
func (service *DiagnosisService) Diagnose(selected []string, freeText string, topN int) (DiagnosisReport, error) {
	symptoms := service.recognizer.Extract(selected, freeText)
	report := DiagnosisReport{Symptoms: symptoms}
	if len(symptoms) == 0 {
		return report, nil
	}

	predictions, err := service.ranker.Score(symptoms, topN)
	if err != nil {
		return DiagnosisReport{}, err
	}

	for _, prediction := range predictions {
		info, found := service.info.InfoFor(prediction.Disease)
		if !found {
			// Associations without a care record are skipped rather than
			// shown half-empty.
			continue
		}
		report.Results = append(report.Results, DiagnosisEntry{
			Disease:     prediction.Disease,
			Probability: prediction.Probability,
			Info:        info,
		})
	}
	if len(report.Results) == 0 {
		return report, nil
	}

	record := buildDiagnosisRecord(symptoms, report.Results)
	saveErr := retryStorage("save diagnosis", service.retryAttempts, service.retryDelay, func() error {
		return service.store.Create(record)
	})
	if saveErr != nil {
		log.Printf("diagnosis not persisted after %d attempts, returning results anyway: %v", service.retryAttempts, saveErr)
		return report, nil
	}

	report.ID = record.ID
	report.Saved = true
	return report, nil
}

func buildDiagnosisRecord(symptoms []string, entries []DiagnosisEntry) *models.Diagnosis {
	results := make([]models.DiagnosisResult, 0, len(entries))
	for _, entry := range entries {
		results = append(results, models.DiagnosisResult{
			Disease:     entry.Disease,
			Probability: entry.Probability,
			Description: entry.Info.Description,
			Precautions: entry.Info.Precautions,
			Diet:        entry.Info.Diet,
			Workout:     entry.Info.Workout,
			Medication:  entry.Info.Medication,
		})
	}
	return &models.Diagnosis{
		Symptoms: symptoms,
		Results:  results,
	}
}
