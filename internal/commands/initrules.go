package commands

import (
	"flag"
	"fmt"
	"os"

	"github.com/klabast/wb-services/feiertag-kalender/internal/app"
)

// InitRules handles the init-rules subcommand
func InitRules(args []string) {
	if err := runInitRules(args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runInitRules(args []string) error {
	fs := flag.NewFlagSet("init-rules", flag.ContinueOnError)
	out := fs.String("out", "rules.json", "Where to write the rules")
	overwrite := fs.Bool("overwrite", false, "Overwrite an existing file")
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: feiertag-kalender init-rules [OPTIONS]\n\n")
		fmt.Fprintf(os.Stderr, "Writes the built-in holiday rules as JSON, as a starting point for RULES_FILE.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return err
	}

	if _, err := os.Stat(*out); err == nil && !*overwrite {
		return fmt.Errorf("%s already exists (use -overwrite)", *out)
	}

	config := app.DefaultRules()
	if err := app.SaveRules(*out, config); err != nil {
		return err
	}

	fmt.Printf("✅ Wrote %d rules to %s\n", config.Len(), *out)
	return nil
}
