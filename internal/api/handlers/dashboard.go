package handlers

import (
	"net/http"
	"time"

	"github.com/finverde/Family-Finance-Backend/internal/model"
	"github.com/finverde/Family-Finance-Backend/internal/service"
)

// DashboardHandler handles dashboard-related HTTP requests: the aggregate
// summary, the wealth history chart and the category breakdowns.
type DashboardHandler struct {
	dashboardService *service.DashboardService
	wealthService    *service.WealthService
}

// NewDashboardHandler creates a new DashboardHandler
func NewDashboardHandler(dashboardService *service.DashboardService, wealthService *service.WealthService) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
		wealthService:    wealthService,
	}
}

// Summary returns the full financial summary for an owner, optionally
// filtered by start_date/end_date.
//
// Endpoint: GET /api/dashboard/summary?owner_id=&start_date=&end_date=
func (h *DashboardHandler) Summary(w http.ResponseWriter, r *http.Request) {
	ownerID := r.URL.Query().Get("owner_id")

	rng, err := parseDateRange(r)
	if err != nil {
		errorResponse := map[string]string{
			"error":  "Failed to parse date filter",
			"detail": err.Error(),
		}
		respondJSON(w, http.StatusBadRequest, errorResponse)
		return
	}

	summary, err := h.dashboardService.Summary(ownerID, rng)
	if err != nil {
		errorResponse := map[string]string{
			"error":  "Failed to compute dashboard summary",
			"detail": err.Error(),
		}
		respondJSON(w, http.StatusInternalServerError, errorResponse)
		return
	}

	respondJSON(w, http.StatusOK, summary)
}

// WealthHistoryResponse represents the wealth evolution chart payload
type WealthHistoryResponse struct {
	History  []model.BucketSnapshot `json:"history"`
	Warnings []string               `json:"warnings,omitempty"`
}

// Wealth returns the per-bucket wealth composition for an owner. Without a
// date filter the window is the last six months. Clients that keep stale
// start/end parameters around can pass date_filter_applied=false to force the
// default window.
//
// Endpoint: GET /api/dashboard/wealth?owner_id=&start_date=&end_date=&date_filter_applied=
func (h *DashboardHandler) Wealth(w http.ResponseWriter, r *http.Request) {
	ownerID := r.URL.Query().Get("owner_id")

	rng, err := parseDateRange(r)
	if err != nil {
		errorResponse := map[string]string{
			"error":  "Failed to parse date filter",
			"detail": err.Error(),
		}
		respondJSON(w, http.StatusBadRequest, errorResponse)
		return
	}
	if r.URL.Query().Get("date_filter_applied") == "false" {
		rng = nil
	}

	history, warnings, err := h.wealthService.History(ownerID, rng, time.Now().UTC())
	if err != nil {
		errorResponse := map[string]string{
			"error":  "Failed to compute wealth history",
			"detail": err.Error(),
		}
		respondJSON(w, http.StatusInternalServerError, errorResponse)
		return
	}

	respondJSON(w, http.StatusOK, WealthHistoryResponse{
		History:  history,
		Warnings: warnings,
	})
}

// IncomeBreakdown returns the per-category monthly income split.
//
// Endpoint: GET /api/income/breakdown?owner_id=
func (h *DashboardHandler) IncomeBreakdown(w http.ResponseWriter, r *http.Request) {
	ownerID := r.URL.Query().Get("owner_id")

	breakdown, err := h.dashboardService.IncomeBreakdown(ownerID)
	if err != nil {
		errorResponse := map[string]string{
			"error":  "Failed to compute income breakdown",
			"detail": err.Error(),
		}
		respondJSON(w, http.StatusInternalServerError, errorResponse)
		return
	}

	respondJSON(w, http.StatusOK, breakdown)
}

// ExpenseBreakdown returns the per-category monthly expense split.
//
// Endpoint: GET /api/expenses/breakdown?owner_id=
func (h *DashboardHandler) ExpenseBreakdown(w http.ResponseWriter, r *http.Request) {
	ownerID := r.URL.Query().Get("owner_id")

	breakdown, err := h.dashboardService.ExpenseBreakdown(ownerID)
	if err != nil {
		errorResponse := map[string]string{
			"error":  "Failed to compute expense breakdown",
			"detail": err.Error(),
		}
		respondJSON(w, http.StatusInternalServerError, errorResponse)
		return
	}

	respondJSON(w, http.StatusOK, breakdown)
}
