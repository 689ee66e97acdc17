package api

import (
	"html/template"
	"time"

	"github.com/Nikhil-Kaul2003/DoctorAi/internal/catalog"
	"github.com/Nikhil-Kaul2003/DoctorAi/internal/db"
	"github.com/Nikhil-Kaul2003/DoctorAi/internal/services"
	"gorm.io/gorm"
)

type Handler struct {
	db               *gorm.DB
	location         *time.Location
	reference        *catalog.Catalog
	repositories     *db.Repositories
	diagnosisService *services.DiagnosisService
	historyService   *services.HistoryService
	templates        map[string]*template.Template
}

var pageTemplateNames = []string{"index", "results", "history", "error"}

func NewHandler(database *gorm.DB, templateDir string, location *time.Location) (*Handler, error) {
	handler := &Handler{
		db:        database,
		location:  location,
		reference: catalog.Default(),
	}

	templates, err := parsePageTemplates(templateDir, handler.newTemplateFuncMap(), pageTemplateNames)
	if err != nil {
		return nil, err
	}
	handler.templates = templates

	return handler.withDependencies(database), nil
}

func (handler *Handler) withDependencies(database *gorm.DB) *Handler {
	handler.repositories = db.NewRepositories(database)

	extractor := services.NewSymptomExtractor(handler.reference)
	scorer := services.NewDiseaseScorer(handler.reference)
	handler.diagnosisService = services.NewDiagnosisService(extractor, scorer, handler.reference, handler.repositories.Diagnoses)
	handler.historyService = services.NewHistoryService(handler.repositories.Diagnoses)
	return handler
}

// diagnosePayload accepts both the symptom-picker form and the JSON API body.
// Repeated form values for "symptoms" collect into the slice.
type diagnosePayload struct {
	Symptoms           []string `json:"symptoms" form:"symptoms"`
	AdditionalSymptoms string   `json:"additional_symptoms" form:"additional_symptoms"`
	TopN               int      `json:"top_n" form:"top_n"`
}
