package api

import (
	"errors"
	"strconv"
	"strings"

	"github.com/Nikhil-Kaul2003/DoctorAi/internal/services"
	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) ShowIndex(c *fiber.Ctx) error {
	return handler.render(c, "index", fiber.Map{
		"Title":    "Symptom Checker",
		"Symptoms": handler.reference.SymptomNames(),
		"Flash":    popFlashCookie(c),
	})
}

func (handler *Handler) Diagnose(c *fiber.Ctx) error {
	payload := diagnosePayload{}
	if err := c.BodyParser(&payload); err != nil {
		setFlashCookie(c, FlashPayload{
			Message: "Please select at least one symptom for diagnosis.",
			Level:   FlashLevelWarning,
		})
		return c.Redirect("/", fiber.StatusSeeOther)
	}

	if len(payload.Symptoms) == 0 && strings.TrimSpace(payload.AdditionalSymptoms) == "" {
		setFlashCookie(c, FlashPayload{
			Message: "Please select at least one symptom for diagnosis.",
			Level:   FlashLevelWarning,
		})
		return c.Redirect("/", fiber.StatusSeeOther)
	}

	topN := payload.TopN
	if topN <= 0 {
		topN = services.DefaultTopN
	}

	report, err := handler.diagnosisService.Diagnose(payload.Symptoms, payload.AdditionalSymptoms, topN)
	if err != nil {
		setFlashCookie(c, FlashPayload{
			Message: "An error occurred while processing your symptoms. Please try again.",
			Level:   FlashLevelDanger,
		})
		return c.Redirect("/", fiber.StatusSeeOther)
	}
	if len(report.Symptoms) == 0 {
		setFlashCookie(c, FlashPayload{
			Message: "No valid symptoms were found. Please try again.",
			Level:   FlashLevelWarning,
		})
		return c.Redirect("/", fiber.StatusSeeOther)
	}
	if len(report.Results) == 0 {
		setFlashCookie(c, FlashPayload{
			Message: "Unable to determine a diagnosis based on the provided symptoms. Please consult a medical professional.",
			Level:   FlashLevelInfo,
		})
		return c.Redirect("/", fiber.StatusSeeOther)
	}

	return handler.render(c, "results", fiber.Map{
		"Title":       "Diagnosis Results",
		"Report":      report,
		"FromHistory": false,
	})
}

func (handler *Handler) ShowHistory(c *fiber.Ctx) error {
	items, err := handler.historyService.List()
	if err != nil {
		setFlashCookie(c, FlashPayload{
			Message: "An error occurred while retrieving your diagnosis history.",
			Level:   FlashLevelDanger,
		})
		return c.Redirect("/", fiber.StatusSeeOther)
	}

	return handler.render(c, "history", fiber.Map{
		"Title": "Diagnosis History",
		"Items": items,
		"Flash": popFlashCookie(c),
	})
}

func (handler *Handler) ShowHistoryDetail(c *fiber.Ctx) error {
	diagnosisID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return handler.renderErrorPage(c, fiber.StatusNotFound, "Page not found")
	}

	report, err := handler.historyService.Detail(uint(diagnosisID))
	if errors.Is(err, services.ErrDiagnosisNotFound) {
		return handler.renderErrorPage(c, fiber.StatusNotFound, "Page not found")
	}
	if err != nil {
		setFlashCookie(c, FlashPayload{
			Message: "An error occurred while retrieving diagnosis details.",
			Level:   FlashLevelDanger,
		})
		return c.Redirect("/history", fiber.StatusSeeOther)
	}

	return handler.render(c, "results", fiber.Map{
		"Title":       "Diagnosis Results",
		"Report":      report,
		"FromHistory": true,
	})
}
