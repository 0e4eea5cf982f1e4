package app

import (
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/klabast/wb-services/feiertag-kalender/internal/calendar"
)

// DayResponse is the JSON shape of a single day lookup
type DayResponse struct {
	Key string `json:"key"`
	calendar.DayEntry
}

// NewRouter sets up the API routes. The write route only exists in edit mode.
func NewRouter() http.Handler {
	r := chi.NewRouter()

	r.Get("/api/config", GetConfig)
	r.Get("/api/day/{key}", HandleDay)
	r.Get("/api/year/{year}", HandleYear)
	r.Get("/api/download", HandleDownload)
	r.Get("/api/subscribe", HandleSubscribe)

	if EditMode {
		r.Put("/api/day/{key}", RequireAuth(HandleWriteDay))
	}

	return r
}

// GetConfig returns the application configuration
func GetConfig(w http.ResponseWriter, r *http.Request) {
	if !RequireCalendar(w) {
		return
	}

	currentYear := GetCurrentYear()
	entries, err := Calendar.Entries(currentYear)
	if err != nil {
		writeCalendarError(w, err)
		return
	}

	writeJSON(w, map[string]interface{}{
		"currentYear": currentYear,
		"minYear":     calendar.MinYear,
		"ruleCount":   Calendar.Config().Len(),
		"editMode":    EditMode,
		"days":        entries,
	})
}

// HandleDay returns the entry of a single day
// URL: /api/day/{YYYYMMDD}
func HandleDay(w http.ResponseWriter, r *http.Request) {
	if !RequireCalendar(w) {
		return
	}

	key := chi.URLParam(r, "key")
	entry, err := Calendar.Lookup(key)
	if err != nil {
		writeCalendarError(w, err)
		return
	}

	writeJSON(w, DayResponse{Key: key, DayEntry: entry})
}

// HandleWriteDay sets the entry of a single day (edit mode only)
// URL: PUT /api/day/{YYYYMMDD}
func HandleWriteDay(w http.ResponseWriter, r *http.Request) {
	if !RequireEditMode(w) || !RequireCalendar(w) {
		return
	}

	var entry calendar.DayEntry
	if err := json.NewDecoder(r.Body).Decode(&entry); err != nil {
		http.Error(w, ErrInvalidBody, http.StatusBadRequest)
		return
	}

	key := chi.URLParam(r, "key")
	if err := Calendar.Write(key, entry); err != nil {
		writeCalendarError(w, err)
		return
	}

	log.Printf("Day %s set to %q (feast day: %t)", key, entry.Name, entry.IsFeastDay)
	writeJSON(w, DayResponse{Key: key, DayEntry: entry})
}

// HandleYear returns all named days of a year
// URL: /api/year/{year}?feast=true
func HandleYear(w http.ResponseWriter, r *http.Request) {
	if !RequireCalendar(w) {
		return
	}

	year, err := strconv.Atoi(chi.URLParam(r, "year"))
	if err != nil {
		http.Error(w, ErrInvalidYear, http.StatusBadRequest)
		return
	}

	entries, err := Calendar.Entries(year)
	if err != nil {
		writeCalendarError(w, err)
		return
	}
	if r.URL.Query().Get("feast") == "true" {
		entries = FilterFeastDays(entries)
	}

	writeJSON(w, map[string]interface{}{
		"year": year,
		"days": entries,
	})
}

// HandleDownload handles export downloads in ICS, CSV or JSON format
func HandleDownload(w http.ResponseWriter, r *http.Request) {
	if !RequireCalendar(w) {
		return
	}

	year, err := parseYear(r.URL.Query().Get("year"))
	if err != nil {
		http.Error(w, ErrInvalidYear, http.StatusBadRequest)
		return
	}

	format := r.URL.Query().Get("format")
	if format != "ics" && format != "csv" && format != "json" {
		http.Error(w, ErrInvalidFormat, http.StatusBadRequest)
		return
	}

	entries, err := Calendar.Entries(year)
	if err != nil {
		writeCalendarError(w, err)
		return
	}
	if r.URL.Query().Get("feast") == "true" {
		entries = FilterFeastDays(entries)
	}

	switch format {
	case "ics":
		GenerateICS(w, year, entries)
	case "csv":
		GenerateCSV(w, year, entries)
	case "json":
		GenerateJSON(w, year, entries)
	}
}

// HandleSubscribe returns an ICS feed covering the previous, current and next year
func HandleSubscribe(w http.ResponseWriter, r *http.Request) {
	if !RequireCalendar(w) {
		return
	}

	currentYear := GetCurrentYear()
	feastOnly := r.URL.Query().Get("feast") == "true"

	var all []calendar.DatedEntry
	for year := currentYear - 1; year <= currentYear+1; year++ {
		if year < calendar.MinYear {
			continue
		}
		entries, err := Calendar.Entries(year)
		if err != nil {
			writeCalendarError(w, err)
			return
		}
		if feastOnly {
			entries = FilterFeastDays(entries)
		}
		all = append(all, entries...)
	}

	GenerateSubscriptionICS(w, all)
}
