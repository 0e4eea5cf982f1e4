package app

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/jszwec/csvutil"

	"github.com/klabast/wb-services/feiertag-kalender/internal/calendar"
)

// Rule kinds in CSV rule files
const (
	KindEaster     = "easter"
	KindFixed      = "fixed"
	KindNthInMonth = "nth_in_month"
	KindRelative   = "relative"
)

// RuleRow is one line of a CSV rule file. Columns a kind does not use stay empty.
type RuleRow struct {
	Kind      string `csv:"kind"`
	Name      string `csv:"name"`
	Feast     bool   `csv:"feast,omitempty"`
	Delta     int    `csv:"delta,omitempty"`
	Day       int    `csv:"day,omitempty"`
	Month     int    `csv:"month,omitempty"`
	Year      int    `csv:"year,omitempty"`
	WeekCount int    `csv:"week_count,omitempty"`
	Weekday   int    `csv:"weekday,omitempty"`
}

// LoadRules reads a rule configuration from a .json or .csv file
func LoadRules(path string) (calendar.Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return calendar.Config{}, err
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.Printf("Error closing rules file: %v", err)
		}
	}()

	data, err := io.ReadAll(file)
	if err != nil {
		return calendar.Config{}, err
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		var config calendar.Config
		if err := json.Unmarshal(data, &config); err != nil {
			return calendar.Config{}, fmt.Errorf("failed to parse %s: %w", path, err)
		}
		return config, nil
	case ".csv":
		var rows []RuleRow
		if err := csvutil.Unmarshal(data, &rows); err != nil {
			return calendar.Config{}, fmt.Errorf("failed to parse %s: %w", path, err)
		}
		return ConfigFromRows(rows)
	default:
		return calendar.Config{}, fmt.Errorf("unsupported rules file type %q", ext)
	}
}

// LoadRulesOrDefault loads path, or returns DefaultRules when path is empty
func LoadRulesOrDefault(path string) (calendar.Config, error) {
	if path == "" {
		return DefaultRules(), nil
	}
	return LoadRules(path)
}

// ConfigFromRows sorts CSV rows into the four rule categories
func ConfigFromRows(rows []RuleRow) (calendar.Config, error) {
	var config calendar.Config
	for i, row := range rows {
		switch strings.ToLower(strings.TrimSpace(row.Kind)) {
		case KindEaster:
			config.EasterRelativeDays = append(config.EasterRelativeDays, calendar.EasterRelativeDay{
				Delta: row.Delta, Name: row.Name, IsFeastDay: row.Feast,
			})
		case KindFixed:
			config.FixedDays = append(config.FixedDays, calendar.FixedDay{
				Day: row.Day, Month: row.Month, Year: row.Year, Name: row.Name, IsFeastDay: row.Feast,
			})
		case KindNthInMonth:
			config.NthWeekdayInMonthDays = append(config.NthWeekdayInMonthDays, calendar.NthWeekdayInMonthDay{
				WeekCount: row.WeekCount, Weekday: calendar.Weekday(row.Weekday), Month: row.Month,
				Name: row.Name, IsFeastDay: row.Feast,
			})
		case KindRelative:
			config.NthWeekdayRelativeToDateDays = append(config.NthWeekdayRelativeToDateDays, calendar.NthWeekdayRelativeToDateDay{
				Day: row.Day, Month: row.Month, WeekCount: row.WeekCount, Weekday: calendar.Weekday(row.Weekday),
				Name: row.Name, IsFeastDay: row.Feast,
			})
		default:
			// header is line 1
			return calendar.Config{}, fmt.Errorf("line %d: unknown rule kind %q", i+2, row.Kind)
		}
	}
	return config, nil
}

// SaveRules writes the configuration as JSON. The file is written to a
// temporary name first and renamed into place.
func SaveRules(path string, config calendar.Config) error {
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return err
	}

	tmpFile := path + TmpSuffix
	if err := os.WriteFile(tmpFile, data, FilePermissions); err != nil {
		return err
	}

	if err := os.Rename(tmpFile, path); err != nil {
		return fmt.Errorf("failed to save rules: %w", err)
	}
	return nil
}
