package db

import "gorm.io/gorm"

type Repositories struct {
	Diagnoses *DiagnosisRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Diagnoses: NewDiagnosisRepository(database),
	}
}
