package db

import (
	"github.com/Nikhil-Kaul2003/DoctorAi/internal/models"
	"gorm.io/gorm"
)

type DiagnosisRepository struct {
	database *gorm.DB
}

func NewDiagnosisRepository(database *gorm.DB) *DiagnosisRepository {
	return &DiagnosisRepository{database: database}
}

// Create inserts the diagnosis and its result rows in one transaction.
func (repo *DiagnosisRepository) Create(diagnosis *models.Diagnosis) error {
	return repo.database.Create(diagnosis).Error
}

func (repo *DiagnosisRepository) ListNewestFirst() ([]models.Diagnosis, error) {
	diagnoses := make([]models.Diagnosis, 0)
	if err := repo.database.
		Preload("Results", orderResultsByProbability).
		Order("created_at DESC, id DESC").
		Find(&diagnoses).Error; err != nil {
		return nil, err
	}
	return diagnoses, nil
}

func (repo *DiagnosisRepository) FindByID(diagnosisID uint) (models.Diagnosis, error) {
	var diagnosis models.Diagnosis
	if err := repo.database.
		Preload("Results", orderResultsByProbability).
		First(&diagnosis, diagnosisID).Error; err != nil {
		return models.Diagnosis{}, err
	}
	return diagnosis, nil
}

func orderResultsByProbability(query *gorm.DB) *gorm.DB {
	return query.Order("probability DESC, id ASC")
}
