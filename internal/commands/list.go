package commands

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"

	"github.com/klabast/wb-services/feiertag-kalender/internal/app"
	"github.com/klabast/wb-services/feiertag-kalender/internal/calendar"
)

var (
	feastColor = color.New(color.FgRed, color.Bold)
	dateColor  = color.New(color.FgCyan)
)

// List handles the list subcommand
func List(args []string) {
	if err := runList(os.Stdout, args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runList(w io.Writer, args []string) error {
	fs := flag.NewFlagSet("list", flag.ContinueOnError)
	year := fs.Int("year", app.GetCurrentYear(), "Year to list")
	rules := fs.String("rules", os.Getenv("RULES_FILE"), "Rules file (.json or .csv), built-in rules when empty")
	feastOnly := fs.Bool("feast", false, "Only list feast days")
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: feiertag-kalender list [OPTIONS]\n\n")
		fmt.Fprintf(os.Stderr, "Prints all named days of a year.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return err
	}

	store, err := openStore(*rules)
	if err != nil {
		return err
	}

	entries, err := store.Entries(*year)
	if err != nil {
		return err
	}
	if *feastOnly {
		entries = app.FilterFeastDays(entries)
	}

	for _, e := range entries {
		printEntry(w, e)
	}
	return nil
}

// Lookup handles the lookup subcommand
func Lookup(args []string) {
	if err := runLookup(os.Stdout, args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runLookup(w io.Writer, args []string) error {
	fs := flag.NewFlagSet("lookup", flag.ContinueOnError)
	rules := fs.String("rules", os.Getenv("RULES_FILE"), "Rules file (.json or .csv), built-in rules when empty")
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: feiertag-kalender lookup [OPTIONS] YYYYMMDD...\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return fmt.Errorf("no date given")
	}

	store, err := openStore(*rules)
	if err != nil {
		return err
	}

	for _, key := range fs.Args() {
		entry, err := store.Lookup(key)
		if err != nil {
			return err
		}
		date, _ := calendar.ParseKey(key)
		if entry.Name == "" {
			fmt.Fprintf(w, "%s  %-9s  -\n", dateColor.Sprint(date), calendar.GetWeekday(date))
			continue
		}
		printEntry(w, calendar.DatedEntry{Key: key, Date: date, DayEntry: entry})
	}
	return nil
}

func openStore(rulesFile string) (*calendar.Store, error) {
	config, err := app.LoadRulesOrDefault(rulesFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load rules: %w", err)
	}
	return calendar.New(config), nil
}

func printEntry(w io.Writer, e calendar.DatedEntry) {
	name := e.Name
	if e.IsFeastDay {
		name = feastColor.Sprint(name)
	}
	fmt.Fprintf(w, "%s  %-9s  %s\n", dateColor.Sprint(e.Date), calendar.GetWeekday(e.Date), name)
}
