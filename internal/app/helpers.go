package app

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/klabast/wb-services/feiertag-kalender/internal/calendar"
)

// RequireEditMode validates that edit mode is enabled
func RequireEditMode(w http.ResponseWriter) bool {
	if !EditMode {
		http.Error(w, ErrEditModeDisabled, http.StatusForbidden)
		return false
	}
	return true
}

// RequireCalendar validates that the calendar store is set up
func RequireCalendar(w http.ResponseWriter) bool {
	if Calendar == nil {
		http.Error(w, ErrCalendarNotLoaded, http.StatusServiceUnavailable)
		return false
	}
	return true
}

// writeJSON encodes v as the response body
func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Error encoding response: %v", err)
		http.Error(w, ErrInternalServer, http.StatusInternalServerError)
	}
}

// writeCalendarError maps calendar errors to HTTP status codes
func writeCalendarError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, calendar.ErrInvalidKey):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, calendar.ErrUnsupportedYear):
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
	default:
		log.Printf("Error evaluating calendar rules: %v", err)
		http.Error(w, ErrInternalServer, http.StatusInternalServerError)
	}
}

// parseYear parses a year parameter, falling back to the current year when empty
func parseYear(s string) (int, error) {
	if s == "" {
		return GetCurrentYear(), nil
	}
	return strconv.Atoi(s)
}

// FilterFeastDays keeps only entries marked as feast days
func FilterFeastDays(entries []calendar.DatedEntry) []calendar.DatedEntry {
	filtered := make([]calendar.DatedEntry, 0, len(entries))
	for _, e := range entries {
		if e.IsFeastDay {
			filtered = append(filtered, e)
		}
	}
	return filtered
}
