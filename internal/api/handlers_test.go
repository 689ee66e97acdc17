package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/Nikhil-Kaul2003/DoctorAi/internal/db"
	"github.com/gofiber/fiber/v2"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	database, err := db.OpenSQLite(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("OpenSQLite() error = %v", err)
	}

	handler, err := NewHandler(database, filepath.Join("..", "templates"), time.UTC)
	if err != nil {
		t.Fatalf("NewHandler() error = %v", err)
	}

	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ErrorHandler:          handler.HandleError,
	})
	RegisterRoutes(app, handler)
	return app
}

func TestHealthEndpoint(t *testing.T) {
	app := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/healthz", nil), -1)
	if err != nil {
		t.Fatalf("app.Test() error = %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("GET /healthz status = %d, want 200", resp.StatusCode)
	}
}

func TestIndexPageListsSymptoms(t *testing.T) {
	app := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil), -1)
	if err != nil {
		t.Fatalf("app.Test() error = %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("GET / status = %d, want 200", resp.StatusCode)
	}

	body, _ := io.ReadAll(resp.Body)
	page := string(body)
	if !strings.Contains(page, "Symptom Checker") {
		t.Fatal("index page missing heading")
	}
	if !strings.Contains(page, `value="fever"`) {
		t.Fatal("index page missing fever checkbox")
	}
}

func TestDiagnoseFormRendersResults(t *testing.T) {
	app := newTestApp(t)

	form := strings.NewReader("symptoms=fever&symptoms=cough")
	req := httptest.NewRequest("POST", "/diagnose", form)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("app.Test() error = %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("POST /diagnose status = %d, want 200", resp.StatusCode)
	}

	body, _ := io.ReadAll(resp.Body)
	page := string(body)
	if !strings.Contains(page, "Diagnosis Results") {
		t.Fatal("results page missing heading")
	}
	if !strings.Contains(page, "Influenza") {
		t.Fatal("results page missing top prediction")
	}
}

func TestDiagnoseFormEmptyInputRedirectsWithFlash(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest("POST", "/diagnose", strings.NewReader(""))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("app.Test() error = %v", err)
	}
	if resp.StatusCode != fiber.StatusSeeOther {
		t.Fatalf("POST /diagnose status = %d, want 303", resp.StatusCode)
	}
	if location := resp.Header.Get("Location"); location != "/" {
		t.Fatalf("redirect location = %q, want /", location)
	}

	flashed := false
	for _, cookie := range resp.Cookies() {
		if cookie.Name == flashCookieName && cookie.Value != "" {
			flashed = true
		}
	}
	if !flashed {
		t.Fatal("expected a flash cookie on empty submission")
	}
}

func TestHistoryPageShowsSavedDiagnoses(t *testing.T) {
	app := newTestApp(t)

	form := strings.NewReader("symptoms=fever&symptoms=cough")
	req := httptest.NewRequest("POST", "/diagnose", form)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if _, err := app.Test(req, -1); err != nil {
		t.Fatalf("app.Test() error = %v", err)
	}

	resp, err := app.Test(httptest.NewRequest("GET", "/history", nil), -1)
	if err != nil {
		t.Fatalf("app.Test() error = %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("GET /history status = %d, want 200", resp.StatusCode)
	}

	body, _ := io.ReadAll(resp.Body)
	page := string(body)
	if !strings.Contains(page, "Common Cold") {
		t.Fatal("history page missing saved diagnosis")
	}
}

func TestHistoryDetailUnknownIDReturnsNotFound(t *testing.T) {
	app := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/history/99999", nil), -1)
	if err != nil {
		t.Fatalf("app.Test() error = %v", err)
	}
	if resp.StatusCode != fiber.StatusNotFound {
		t.Fatalf("GET /history/99999 status = %d, want 404", resp.StatusCode)
	}
}

func TestSymptomsJSONEndpoint(t *testing.T) {
	app := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/symptoms", nil), -1)
	if err != nil {
		t.Fatalf("app.Test() error = %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("GET /api/symptoms status = %d, want 200", resp.StatusCode)
	}

	var payload struct {
		Symptoms []string `json:"symptoms"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(payload.Symptoms) == 0 {
		t.Fatal("expected a non-empty symptom list")
	}
}

func TestDiagnoseJSONEndpoint(t *testing.T) {
	app := newTestApp(t)

	body, _ := json.Marshal(map[string]any{
		"symptoms":            []string{"fever"},
		"additional_symptoms": "I also have a cough",
	})
	req := httptest.NewRequest("POST", "/api/diagnose", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("app.Test() error = %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("POST /api/diagnose status = %d, want 200", resp.StatusCode)
	}

	var payload diagnosisResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(payload.Symptoms) != 2 {
		t.Fatalf("response symptoms = %v, want fever and cough", payload.Symptoms)
	}
	if len(payload.Results) == 0 || payload.Results[0].Probability != 100.0 {
		t.Fatalf("response results = %#v, want a full-probability top result", payload.Results)
	}
	if !payload.Saved || payload.ID == 0 {
		t.Fatalf("response = %#v, want a saved diagnosis", payload)
	}
}

func TestDiagnoseJSONRejectsNegativeTopN(t *testing.T) {
	app := newTestApp(t)

	body, _ := json.Marshal(map[string]any{
		"symptoms": []string{"fever"},
		"top_n":    -1,
	})
	req := httptest.NewRequest("POST", "/api/diagnose", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("app.Test() error = %v", err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("POST /api/diagnose status = %d, want 400", resp.StatusCode)
	}
}

func TestUnknownRouteRendersNotFoundPage(t *testing.T) {
	app := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/nowhere", nil), -1)
	if err != nil {
		t.Fatalf("app.Test() error = %v", err)
	}
	if resp.StatusCode != fiber.StatusNotFound {
		t.Fatalf("GET /nowhere status = %d, want 404", resp.StatusCode)
	}
}
