package handlers

import (
	"net/http"
	"time"

	"github.com/finverde/Family-Finance-Backend/internal/service"
	"github.com/finverde/Family-Finance-Backend/internal/validation"
)

// InsightHandler handles insight-related HTTP requests
type InsightHandler struct {
	insightService *service.InsightService
}

// NewInsightHandler creates a new InsightHandler
func NewInsightHandler(insightService *service.InsightService) *InsightHandler {
	return &InsightHandler{
		insightService: insightService,
	}
}

// Insights returns the stored insights, recommendations and financial score
// for an owner.
//
// Endpoint: GET /api/insights?owner_id=
func (h *InsightHandler) Insights(w http.ResponseWriter, r *http.Request) {
	ownerID := r.URL.Query().Get("owner_id")

	report, err := h.insightService.Report(ownerID)
	if err != nil {
		errorResponse := map[string]string{
			"error":  "Failed to load insights",
			"detail": err.Error(),
		}
		respondJSON(w, http.StatusInternalServerError, errorResponse)
		return
	}

	respondJSON(w, http.StatusOK, report)
}

// GenerateResponse represents the insight generation result
type GenerateResponse struct {
	Refreshed int `json:"refreshed"`
}

// Generate regenerates insights, for a single owner when owner_id is given
// or for every known owner otherwise. Guarded by the internal API key.
//
// Endpoint: POST /api/insights/generate?owner_id=
func (h *InsightHandler) Generate(w http.ResponseWriter, r *http.Request) {
	now := time.Now().UTC()

	if ownerID := r.URL.Query().Get("owner_id"); ownerID != "" {
		if err := validation.ValidateUUID(ownerID); err != nil {
			errorResponse := map[string]string{
				"error":  "invalid owner_id format",
				"detail": err.Error(),
			}
			respondJSON(w, http.StatusBadRequest, errorResponse)
			return
		}

		if err := h.insightService.Generate(ownerID, now); err != nil {
			errorResponse := map[string]string{
				"error":  "Failed to generate insights",
				"detail": err.Error(),
			}
			respondJSON(w, http.StatusInternalServerError, errorResponse)
			return
		}

		respondJSON(w, http.StatusOK, GenerateResponse{Refreshed: 1})
		return
	}

	refreshed, err := h.insightService.RefreshAll(now)
	if err != nil {
		errorResponse := map[string]string{
			"error":  "Failed to refresh insights",
			"detail": err.Error(),
		}
		respondJSON(w, http.StatusInternalServerError, errorResponse)
		return
	}

	respondJSON(w, http.StatusOK, GenerateResponse{Refreshed: refreshed})
}
