package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/klabast/wb-services/feiertag-kalender/internal/app"
	"github.com/klabast/wb-services/feiertag-kalender/internal/calendar"
	"github.com/klabast/wb-services/feiertag-kalender/internal/commands"
)

func main() {
	_ = godotenv.Load(".env") // silent if missing

	// Check for subcommands
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "hash-password":
			commands.HashPassword(os.Args[2:])
			return
		case "list":
			commands.List(os.Args[2:])
			return
		case "lookup":
			commands.Lookup(os.Args[2:])
			return
		case "init-rules":
			commands.InitRules(os.Args[2:])
			return
		case "serve":
			os.Args = append(os.Args[:1], os.Args[2:]...)
		}
	}

	defaultPort := app.DefaultPort
	if p, err := strconv.Atoi(os.Getenv("PORT")); err == nil {
		defaultPort = p
	}

	port := flag.Int("port", defaultPort, "Port to listen on ($PORT)")
	flag.BoolVar(&app.EditMode, "edit", false, "Enable edit mode (default is serve mode)")
	flag.StringVar(&app.RulesFile, "rules", os.Getenv("RULES_FILE"), "Rules file, .json or .csv ($RULES_FILE, built-in rules when empty)")
	debug := flag.Bool("debug", false, "Log rule evaluation")
	flag.Parse()

	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	// Load and validate auth credentials (if edit mode)
	if app.EditMode {
		if err := app.LoadAuthCredentials(); err != nil {
			log.Fatalf("Failed to load auth credentials: %v", err)
		}
	}

	config, err := app.LoadRulesOrDefault(app.RulesFile)
	if err != nil {
		log.Fatalf("Failed to load rules: %v", err)
	}
	app.Calendar = calendar.New(config, calendar.WithLogger(logger))

	mode := "serve"
	if app.EditMode {
		mode = "edit"
	}
	source := app.RulesFile
	if source == "" {
		source = "built-in"
	}

	log.Printf("Starting Feiertagskalender in %s mode on http://localhost:%d", mode, *port)
	log.Printf("Rules: %s (%d rules)", source, config.Len())
	if err := http.ListenAndServe(fmt.Sprintf(":%d", *port), app.NewRouter()); err != nil {
		log.Fatal(err)
	}
}
