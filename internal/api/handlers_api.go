package api

import (
	"errors"
	"strconv"
	"time"

	"github.com/Nikhil-Kaul2003/DoctorAi/internal/services"
	"github.com/gofiber/fiber/v2"
)

type diagnosisResultResponse struct {
	Disease     string   `json:"disease"`
	Probability float64  `json:"probability"`
	Description string   `json:"description"`
	Precautions []string `json:"precautions"`
	Diet        string   `json:"diet"`
	Workout     string   `json:"workout"`
	Medication  string   `json:"medication"`
}

type diagnosisResponse struct {
	ID       uint                      `json:"id,omitempty"`
	Symptoms []string                  `json:"symptoms"`
	Results  []diagnosisResultResponse `json:"results"`
	Saved    bool                      `json:"saved"`
}

type historyItemResponse struct {
	ID             uint      `json:"id"`
	CreatedAt      time.Time `json:"created_at"`
	Symptoms       []string  `json:"symptoms"`
	TopDisease     string    `json:"top_disease"`
	TopProbability float64   `json:"top_probability"`
}

func (handler *Handler) ListSymptomsJSON(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"symptoms": handler.reference.SymptomNames()})
}

func (handler *Handler) DiagnoseJSON(c *fiber.Ctx) error {
	payload := diagnosePayload{}
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	topN := payload.TopN
	if topN == 0 {
		topN = services.DefaultTopN
	}

	report, err := handler.diagnosisService.Diagnose(payload.Symptoms, payload.AdditionalSymptoms, topN)
	if errors.Is(err, services.ErrInvalidTopN) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "top_n must not be negative"})
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "diagnosis failed"})
	}

	return c.JSON(buildDiagnosisResponse(report))
}

func (handler *Handler) HistoryJSON(c *fiber.Ctx) error {
	items, err := handler.historyService.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to load history"})
	}

	response := make([]historyItemResponse, 0, len(items))
	for _, item := range items {
		response = append(response, historyItemResponse{
			ID:             item.ID,
			CreatedAt:      item.CreatedAt,
			Symptoms:       item.Symptoms,
			TopDisease:     item.TopDisease,
			TopProbability: item.TopProbability,
		})
	}
	return c.JSON(fiber.Map{"history": response})
}

func (handler *Handler) HistoryDetailJSON(c *fiber.Ctx) error {
	diagnosisID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid diagnosis id"})
	}

	report, err := handler.historyService.Detail(uint(diagnosisID))
	if errors.Is(err, services.ErrDiagnosisNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "diagnosis not found"})
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to load diagnosis"})
	}

	return c.JSON(buildDiagnosisResponse(report))
}

func buildDiagnosisResponse(report services.DiagnosisReport) diagnosisResponse {
	results := make([]diagnosisResultResponse, 0, len(report.Results))
	for _, entry := range report.Results {
		results = append(results, diagnosisResultResponse{
			Disease:     entry.Disease,
			Probability: entry.Probability,
			Description: entry.Info.Description,
			Precautions: entry.Info.Precautions,
			Diet:        entry.Info.Diet,
			Workout:     entry.Info.Workout,
			Medication:  entry.Info.Medication,
		})
	}
	return diagnosisResponse{
		ID:       report.ID,
		Symptoms: report.Symptoms,
		Results:  results,
		Saved:    report.Saved,
	}
}
