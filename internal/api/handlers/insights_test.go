package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/finverde/Family-Finance-Backend/internal/api/handlers"
	"github.com/finverde/Family-Finance-Backend/internal/service"
	"github.com/finverde/Family-Finance-Backend/internal/testutil"
)

func TestInsightHandlers(t *testing.T) {
	db := testutil.SetupTestDB(t)
	handler := handlers.NewInsightHandler(testutil.NewTestInsightService(t, db))

	ownerID := testutil.MakeID()
	testutil.NewIncomeSource(ownerID).WithAmount(6000).Build(t, db)
	testutil.NewInvestment(ownerID).WithCurrentValue(15000).Build(t, db)

	t.Run("generate for a single owner", func(t *testing.T) {
		req := testutil.NewRequestWithQueryParams(http.MethodPost, "/api/insights/generate", map[string]string{
			"owner_id": ownerID,
		})
		w := httptest.NewRecorder()
		handler.Generate(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var response handlers.GenerateResponse
		if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		if response.Refreshed != 1 {
			t.Errorf("Expected 1 owner refreshed, got %d", response.Refreshed)
		}
	})

	t.Run("generate rejects malformed owner_id", func(t *testing.T) {
		req := testutil.NewRequestWithQueryParams(http.MethodPost, "/api/insights/generate", map[string]string{
			"owner_id": "not-a-uuid",
		})
		w := httptest.NewRecorder()
		handler.Generate(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected 400, got %d", w.Code)
		}
	})

	t.Run("report includes score and insights", func(t *testing.T) {
		req := testutil.NewRequestWithQueryParams(http.MethodGet, "/api/insights", map[string]string{
			"owner_id": ownerID,
		})
		w := httptest.NewRecorder()
		handler.Insights(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d", w.Code)
		}

		var report service.InsightReport
		if err := json.NewDecoder(w.Body).Decode(&report); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		if len(report.Insights) == 0 {
			t.Error("Expected generated insights in the report")
		}
		if report.FinancialScore < 75 {
			t.Errorf("Expected score of at least the base, got %d", report.FinancialScore)
		}
	})

	t.Run("generate without owner refreshes everyone", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/insights/generate", nil)
		w := httptest.NewRecorder()
		handler.Generate(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var response handlers.GenerateResponse
		if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		if response.Refreshed != 1 {
			t.Errorf("Expected 1 owner refreshed, got %d", response.Refreshed)
		}
	})
}
