package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/finverde/Family-Finance-Backend/internal/model"
	"github.com/finverde/Family-Finance-Backend/internal/validation"
)

// respondJSON sends a JSON response with the given status code
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			log.Printf("Failed to encode JSON: %v", err)
		}
	}
}

// parseDate accepts plain dates and full RFC3339 timestamps.
func parseDate(raw string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		t, err = time.Parse(time.RFC3339, raw)
	}
	return t, err
}

// parseDateRange reads the optional start_date/end_date query parameters.
// With neither present it returns nil, meaning no date filter. A missing
// start defaults to the epoch, a missing end to now.
func parseDateRange(r *http.Request) (*model.DateRange, error) {
	rawStart := r.URL.Query().Get("start_date")
	rawEnd := r.URL.Query().Get("end_date")

	if rawStart == "" && rawEnd == "" {
		return nil, nil
	}

	rng := &model.DateRange{
		Start: time.Unix(0, 0).UTC(),
		End:   time.Now().UTC(),
	}

	var err error
	if rawStart != "" {
		if rng.Start, err = parseDate(rawStart); err != nil {
			return nil, err
		}
	}
	if rawEnd != "" {
		if rng.End, err = parseDate(rawEnd); err != nil {
			return nil, err
		}
	}
	if err := validation.ValidateDateRange(rng.Start, rng.End); err != nil {
		return nil, err
	}

	return rng, nil
}
