package app

import (
	"time"

	jsoniter "github.com/json-iterator/go"

	"github.com/klabast/wb-services/feiertag-kalender/internal/calendar"
)

// Constants
const (
	DefaultPort     = 8080
	TmpSuffix       = ".tmp"
	FilePermissions = 0644

	// Error messages
	ErrEditModeDisabled     = "Edit mode disabled"
	ErrInvalidYear          = "Invalid year"
	ErrInvalidFormat        = "Invalid format"
	ErrInvalidBody          = "Invalid request body"
	ErrInternalServer       = "Internal server error"
	ErrFailedToGenerateJSON = "Failed to generate JSON"
	ErrCalendarNotLoaded    = "Calendar not loaded"

	// ICS constants
	ICSProductID = "-//Winterberg//Feiertagskalender//DE"
	ICSTimezone  = "Europe/Berlin"
	ICSDomain    = "feiertage.winterberg.de"
)

// Global variables
var (
	RulesFile string
	Calendar  *calendar.Store
	EditMode  bool
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// GetCurrentYear returns the current calendar year
func GetCurrentYear() int {
	return time.Now().Year()
}
