package app

import (
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/jszwec/csvutil"

	"github.com/klabast/wb-services/feiertag-kalender/internal/calendar"
)

// icsNamespace scopes the name based UIDs of exported events
var icsNamespace = uuid.NewSHA1(uuid.NameSpaceDNS, []byte(ICSDomain))

// csvDay is the row layout of the CSV export
type csvDay struct {
	Date    string `csv:"datum"`
	Weekday string `csv:"wochentag"`
	Name    string `csv:"name"`
	Feast   bool   `csv:"feiertag"`
}

// writeString writes to w and logs any error (helper for ICS generation)
func writeString(w io.Writer, format string, args ...interface{}) {
	if _, err := fmt.Fprintf(w, format, args...); err != nil {
		log.Printf("Error writing to response: %v", err)
	}
}

// EventUID returns a stable UID for a named day, so re-imports update instead of duplicate
func EventUID(e calendar.DatedEntry) string {
	return uuid.NewSHA1(icsNamespace, []byte(e.Key+"/"+e.Name)).String() + "@" + ICSDomain
}

// writeEvents writes one all-day VEVENT per named day
func writeEvents(w io.Writer, entries []calendar.DatedEntry) {
	stamp := time.Now().UTC().Format("20060102T150405Z")
	for _, e := range entries {
		next := calendar.AddDays(e.Date, 1)

		writeString(w, "BEGIN:VEVENT\r\n")
		writeString(w, "UID:%s\r\n", EventUID(e))
		writeString(w, "DTSTAMP:%s\r\n", stamp)
		writeString(w, "DTSTART;VALUE=DATE:%s\r\n", e.Key)
		writeString(w, "DTEND;VALUE=DATE:%s\r\n", next.Key())
		writeString(w, "SUMMARY:%s\r\n", e.Name)
		if e.IsFeastDay {
			writeString(w, "CATEGORIES:FEAST\r\n")
			writeString(w, "TRANSP:OPAQUE\r\n")
		} else {
			writeString(w, "TRANSP:TRANSPARENT\r\n")
		}
		writeString(w, "END:VEVENT\r\n")
	}
}

// GenerateICS generates an iCalendar (ICS) download of the named days of a year
func GenerateICS(w http.ResponseWriter, year int, entries []calendar.DatedEntry) {
	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=feiertage_%d.ics", year))

	writeString(w, "BEGIN:VCALENDAR\r\n")
	writeString(w, "VERSION:2.0\r\n")
	writeString(w, "PRODID:%s\r\n", ICSProductID)
	writeString(w, "X-WR-CALNAME:Feiertage %d\r\n", year)
	writeString(w, "X-WR-TIMEZONE:%s\r\n", ICSTimezone)
	writeString(w, "CALSCALE:GREGORIAN\r\n")
	writeEvents(w, entries)
	writeString(w, "END:VCALENDAR\r\n")
}

// GenerateSubscriptionICS generates an iCalendar subscription feed.
// Unlike GenerateICS it is served inline and carries METHOD:PUBLISH and a refresh interval.
func GenerateSubscriptionICS(w http.ResponseWriter, entries []calendar.DatedEntry) {
	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")

	writeString(w, "BEGIN:VCALENDAR\r\n")
	writeString(w, "VERSION:2.0\r\n")
	writeString(w, "PRODID:%s\r\n", ICSProductID)
	writeString(w, "METHOD:PUBLISH\r\n")
	writeString(w, "X-WR-CALNAME:Feiertage\r\n")
	writeString(w, "X-WR-TIMEZONE:%s\r\n", ICSTimezone)
	writeString(w, "CALSCALE:GREGORIAN\r\n")
	writeString(w, "X-PUBLISHED-TTL:P1D\r\n")
	writeEvents(w, entries)
	writeString(w, "END:VCALENDAR\r\n")
}

// GenerateCSV generates a CSV download of the named days of a year
func GenerateCSV(w http.ResponseWriter, year int, entries []calendar.DatedEntry) {
	rows := make([]csvDay, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, csvDay{
			Date:    e.Date.String(),
			Weekday: calendar.GetWeekday(e.Date).String(),
			Name:    e.Name,
			Feast:   e.IsFeastDay,
		})
	}

	data, err := csvutil.Marshal(rows)
	if err != nil {
		log.Printf("Error encoding CSV export: %v", err)
		http.Error(w, ErrInternalServer, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=feiertage_%d.csv", year))
	if _, err := w.Write(data); err != nil {
		log.Printf("Error writing CSV export: %v", err)
	}
}

// GenerateJSON generates a JSON download of the named days of a year
func GenerateJSON(w http.ResponseWriter, year int, entries []calendar.DatedEntry) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=feiertage_%d.json", year))

	data := map[string]interface{}{
		"year": year,
		"days": entries,
	}

	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON export: %v", err)
		http.Error(w, ErrFailedToGenerateJSON, http.StatusInternalServerError)
	}
}
