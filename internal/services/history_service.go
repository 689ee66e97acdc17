package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/Nikhil-Kaul2003/DoctorAi/internal/catalog"
	"github.com/Nikhil-Kaul2003/DoctorAi/internal/models"
	"gorm.io/gorm"
)

var ErrDiagnosisNotFound = errors.New("diagnosis not found")

// DiagnosisReader reads stored diagnosis sessions. Results come back ordered
// by probability descending within each diagnosis.
type DiagnosisReader interface {
	ListNewestFirst() ([]models.Diagnosis, error)
	FindByID(diagnosisID uint) (models.Diagnosis, error)
}

// HistoryItem is one row of the diagnosis history: the session metadata plus
// its top-ranked result.
type HistoryItem struct {
	ID             uint
	CreatedAt      time.Time
	Symptoms       []string
	TopDisease     string
	TopProbability float64
}

type HistoryService struct {
	diagnoses     DiagnosisReader
	retryAttempts int
	retryDelay    time.Duration
}

func NewHistoryService(diagnoses DiagnosisReader) *HistoryService {
	return &HistoryService{
		diagnoses:     diagnoses,
		retryAttempts: storageRetryAttempts,
		retryDelay:    storageRetryDelay,
	}
}

// List returns all saved diagnoses newest first. Sessions without any stored
// result are skipped, matching what the history page can usefully show.
func (service *HistoryService) List() ([]HistoryItem, error) {
	var records []models.Diagnosis
	err := retryStorage("load diagnosis history", service.retryAttempts, service.retryDelay, func() error {
		loaded, loadErr := service.diagnoses.ListNewestFirst()
		if loadErr != nil {
			return loadErr
		}
		records = loaded
		return nil
	})
	if err != nil {
		return nil, err
	}

	items := make([]HistoryItem, 0, len(records))
	for _, record := range records {
		if len(record.Results) == 0 {
			continue
		}
		top := record.Results[0]
		items = append(items, HistoryItem{
			ID:             record.ID,
			CreatedAt:      record.CreatedAt,
			Symptoms:       record.Symptoms,
			TopDisease:     top.Disease,
			TopProbability: top.Probability,
		})
	}
	return items, nil
}

// Detail rebuilds the full report for one stored diagnosis from its
// denormalized result rows.
func (service *HistoryService) Detail(diagnosisID uint) (DiagnosisReport, error) {
	var record models.Diagnosis
	notFound := false
	err := retryStorage("load diagnosis detail", service.retryAttempts, service.retryDelay, func() error {
		loaded, loadErr := service.diagnoses.FindByID(diagnosisID)
		if errors.Is(loadErr, gorm.ErrRecordNotFound) {
			// A missing row is a final answer, not a transient failure.
			notFound = true
			return nil
		}
		if loadErr != nil {
			return loadErr
		}
		record = loaded
		return nil
	})
	if err != nil {
		return DiagnosisReport{}, err
	}
	if notFound {
		return DiagnosisReport{}, fmt.Errorf("%w: id %d", ErrDiagnosisNotFound, diagnosisID)
	}

	report := DiagnosisReport{
		ID:       record.ID,
		Symptoms: record.Symptoms,
		Saved:    true,
	}
	for _, result := range record.Results {
		report.Results = append(report.Results, DiagnosisEntry{
			Disease:     result.Disease,
			Probability: result.Probability,
			Info: catalog.DiseaseInfo{
				Description: result.Description,
				Precautions: result.Precautions,
				Diet:        result.Diet,
				Workout:     result.Workout,
				Medication:  result.Medication,
			},
		})
	}
	return report, nil
}
