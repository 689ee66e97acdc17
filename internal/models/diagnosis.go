package models

import "time"

// Diagnosis is one saved diagnosis session: the recognized symptom set plus
// the ranked results it produced. Sessions are recorded anonymously.
type Diagnosis struct {
	ID        uint      `gorm:"primaryKey"`
	Symptoms  []string  `gorm:"serializer:json;not null"`
	CreatedAt time.Time `gorm:"not null"`
	Results   []DiagnosisResult
}

// DiagnosisResult is a single ranked candidate disease with the care
// information that was current at diagnosis time. The care columns are
// denormalized on purpose so history stays stable when the catalog changes.
type DiagnosisResult struct {
	ID          uint    `gorm:"primaryKey"`
	DiagnosisID uint    `gorm:"not null;index"`
	Disease     string  `gorm:"not null"`
	Probability float64 `gorm:"not null"`
	Description string
	Precautions []string `gorm:"serializer:json"`
	Diet        string
	Workout     string
	Medication  string
	CreatedAt   time.Time
}
