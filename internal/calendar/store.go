package calendar

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// MinYear is the first year a Store can materialize
const MinYear = 1971

// Logger is satisfied by *slog.Logger.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...any) {}
func (nopLogger) Info(string, ...any)  {}
func (nopLogger) Warn(string, ...any)  {}
func (nopLogger) Error(string, ...any) {}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger. Materializations are logged at Debug level,
// rule failures at Warn level.
func WithLogger(logger Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// DatedEntry is a DayEntry together with its key
type DatedEntry struct {
	Key  string       `json:"key"`
	Date CalendarDate `json:"date"`
	DayEntry
}

// Store materializes a rule Config into named days, one year at a time.
// Touching a year that is not materialized replaces the whole cache, including
// entries set with Write.
type Store struct {
	config Config
	logger Logger

	mu         sync.Mutex
	calendar   map[string]DayEntry
	yearMarker map[int]struct{}
	rebuilds   int
}

// New creates a Store for the given rules. Nothing is computed until the
// first Lookup.
func New(config Config, opts ...Option) *Store {
	s := &Store{
		config:     cloneConfig(config),
		logger:     nopLogger{},
		calendar:   make(map[string]DayEntry),
		yearMarker: make(map[int]struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Config returns a copy of the rules the store was created with
func (s *Store) Config() Config {
	return cloneConfig(s.config)
}

// Lookup returns the entry for a YYYYMMDD key, materializing the key's year
// first if needed. Days without a rule yield the zero DayEntry.
func (s *Store) Lookup(key string) (DayEntry, error) {
	date, err := ParseKey(key)
	if err != nil {
		return DayEntry{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureYearLocked(date.Year); err != nil {
		return DayEntry{}, err
	}

	return s.calendar[key], nil
}

// Write sets the entry for a YYYYMMDD key, replacing whatever was there.
func (s *Store) Write(key string, entry DayEntry) error {
	if _, err := ParseKey(key); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.calendar[key] = entry
	return nil
}

// Entries returns all named days of the given year ordered by date.
func (s *Store) Entries(year int) ([]DatedEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureYearLocked(year); err != nil {
		return nil, err
	}

	prefix := fmt.Sprintf("%04d", year)
	entries := make([]DatedEntry, 0, len(s.calendar))
	for key, entry := range s.calendar {
		if !strings.HasPrefix(key, prefix) {
			continue
		}
		date, err := ParseKey(key)
		if err != nil {
			continue
		}
		entries = append(entries, DatedEntry{Key: key, Date: date, DayEntry: entry})
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Key < entries[j].Key
	})

	return entries, nil
}

// ensureYearLocked materializes year unless it is already marked. Caller must hold mu.
func (s *Store) ensureYearLocked(year int) error {
	if _, ok := s.yearMarker[year]; ok {
		return nil
	}

	days, err := s.materialize(year)
	if err != nil {
		return err
	}

	s.calendar = days
	s.yearMarker = map[int]struct{}{year: {}}
	s.rebuilds++

	s.logger.Debug("calendar materialized", "year", year, "entries", len(days))
	return nil
}

// materialize evaluates all rules for year into a fresh map. Categories are
// applied in a fixed order and later ones win on the same day.
func (s *Store) materialize(year int) (map[string]DayEntry, error) {
	if year < MinYear {
		return nil, fmt.Errorf("%w: year before %d is not supported: %d", ErrUnsupportedYear, MinYear, year)
	}

	days := make(map[string]DayEntry, s.config.Len())
	set := func(name, key string, entry DayEntry) error {
		if _, err := ParseKey(key); err != nil {
			s.logger.Warn("invalid rule", "name", name, "key", key, "error", err)
			return fmt.Errorf("rule %q: %w", name, err)
		}
		days[key] = entry
		return nil
	}
	fail := func(name string, err error) error {
		s.logger.Warn("invalid rule", "name", name, "error", err)
		return fmt.Errorf("rule %q: %w", name, err)
	}

	easterSunday := CalcEasterSunday(year)
	for _, rule := range s.config.EasterRelativeDays {
		date := AddDays(easterSunday, rule.Delta)
		if err := set(rule.Name, date.Key(), DayEntry{Name: rule.Name, IsFeastDay: rule.IsFeastDay}); err != nil {
			return nil, err
		}
	}

	for _, rule := range s.config.FixedDays {
		if rule.Year != 0 && rule.Year != year {
			continue
		}
		if rule.Month < 1 || rule.Month > 12 || rule.Day < 1 || rule.Day > 31 {
			return nil, fail(rule.Name, fmt.Errorf("%w: day %d month %d", ErrInvalidRuleParameter, rule.Day, rule.Month))
		}
		if err := set(rule.Name, BuildKey(rule.Day, rule.Month, year), DayEntry{Name: rule.Name, IsFeastDay: rule.IsFeastDay}); err != nil {
			return nil, err
		}
	}

	for _, rule := range s.config.NthWeekdayInMonthDays {
		date, err := CalcDateByWDMY(rule.WeekCount, rule.Weekday, rule.Month, year)
		if err != nil {
			return nil, fail(rule.Name, err)
		}
		if err := set(rule.Name, date.Key(), DayEntry{Name: rule.Name, IsFeastDay: rule.IsFeastDay}); err != nil {
			return nil, err
		}
	}

	for _, rule := range s.config.NthWeekdayRelativeToDateDays {
		date, err := CalcDateByNthWeekdayRelativeToDate(rule.Day, rule.Month, year, rule.WeekCount, rule.Weekday)
		if err != nil {
			return nil, fail(rule.Name, err)
		}
		if err := set(rule.Name, date.Key(), DayEntry{Name: rule.Name, IsFeastDay: rule.IsFeastDay}); err != nil {
			return nil, err
		}
	}

	return days, nil
}

func cloneConfig(c Config) Config {
	return Config{
		EasterRelativeDays:           append([]EasterRelativeDay(nil), c.EasterRelativeDays...),
		FixedDays:                    append([]FixedDay(nil), c.FixedDays...),
		NthWeekdayInMonthDays:        append([]NthWeekdayInMonthDay(nil), c.NthWeekdayInMonthDays...),
		NthWeekdayRelativeToDateDays: append([]NthWeekdayRelativeToDateDay(nil), c.NthWeekdayRelativeToDateDays...),
	}
}
