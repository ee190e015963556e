package testutil

import (
	"database/sql"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"

	"github.com/finverde/Family-Finance-Backend/internal/repository"
	"github.com/finverde/Family-Finance-Backend/internal/service"
)

// NewTestDashboardService wires a DashboardService against the given database.
func NewTestDashboardService(t *testing.T, db *sql.DB) *service.DashboardService {
	t.Helper()

	return service.NewDashboardService(
		repository.NewIncomeRepository(db),
		repository.NewExpenseRepository(db),
		repository.NewAssetRepository(db),
		repository.NewLiabilityRepository(db),
		repository.NewPlanningRepository(db),
	)
}

// NewTestWealthService wires a WealthService against the given database.
func NewTestWealthService(t *testing.T, db *sql.DB) *service.WealthService {
	t.Helper()

	return service.NewWealthService(repository.NewAssetRepository(db))
}

// NewTestInsightService wires an InsightService against the given database.
func NewTestInsightService(t *testing.T, db *sql.DB) *service.InsightService {
	t.Helper()

	return service.NewInsightService(
		repository.NewIncomeRepository(db),
		repository.NewExpenseRepository(db),
		repository.NewAssetRepository(db),
		repository.NewLiabilityRepository(db),
		repository.NewPlanningRepository(db),
		repository.NewInsightRepository(db),
	)
}

// NewTestSystemService wires a SystemService against the given database.
func NewTestSystemService(t *testing.T, db *sql.DB) *service.SystemService {
	t.Helper()

	return service.NewSystemService(db)
}

// MakeID generates a UUID string for use in tests.
//
// Example usage:
//
//	id := testutil.MakeID()
//	// Returns: "550e8400-e29b-41d4-a716-446655440000"
func MakeID() string {
	return uuid.New().String()
}

// NewRequestWithQueryParams creates an HTTP request with query parameters.
// This helper simplifies testing handlers that use r.URL.Query() to extract query string parameters.
//
// Example:
//
//	req := testutil.NewRequestWithQueryParams(
//	    http.MethodGet,
//	    "/api/dashboard/summary",
//	    map[string]string{
//	        "owner_id":   ownerID,
//	        "start_date": "2024-01-01",
//	    },
//	)
func NewRequestWithQueryParams(method, path string, queryParams map[string]string) *http.Request {
	req := httptest.NewRequest(method, path, nil)

	if len(queryParams) > 0 {
		q := req.URL.Query()
		for key, value := range queryParams {
			q.Add(key, value)
		}
		req.URL.RawQuery = q.Encode()
	}

	return req
}
