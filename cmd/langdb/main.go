package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"langdb/internal/engine"
	"langdb/internal/logging"
	"langdb/internal/repl"
	"langdb/internal/storage/memstore"
)

type Configuration struct {
	Bootstrap  bool
	DemoMode   bool
	ImportFile string
	LogLevel   string
	LogFile    string
	NoBanner   bool
}

func main() {
	config := parseArguments()

	level, err := logging.ParseLevel(config.LogLevel)
	if err != nil {
		log.Fatalf("Invalid -log-level: %v", err)
	}
	if err := logging.Init(logging.Config{Level: level, OutputPath: config.LogFile}); err != nil {
		log.Fatalf("Failed to initialize logging: %v", err)
	}
	defer logging.Close()

	// Create the in-memory storage engine and the database engine on top.
	eng := engine.New(memstore.New())
	if err := eng.Start(); err != nil {
		log.Fatalf("Failed to start engine: %v", err)
	}

	if config.Bootstrap || config.DemoMode {
		if err := bootstrapTables(eng); err != nil {
			log.Fatalf("Failed to bootstrap tables: %v", err)
		}
	}
	if config.DemoMode {
		if err := loadDemoData(eng); err != nil {
			log.Fatalf("Demo mode failed: %v", err)
		}
	}

	session := repl.New(eng, os.Stdout)
	session.ShowBanner = !config.NoBanner

	if config.ImportFile != "" {
		if err := importFile(session, config.ImportFile); err != nil {
			log.Fatalf("Failed to import data: %v", err)
		}
	}

	if err := session.Run(os.Stdin); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// parseArguments processes command-line flags
func parseArguments() Configuration {
	var config Configuration

	flag.BoolVar(&config.Bootstrap, "bootstrap", true, "Create the users, products and orders tables on startup")
	flag.BoolVar(&config.DemoMode, "demo", false, "Load sample rows into the bootstrap tables")
	flag.StringVar(&config.ImportFile, "import", "", "SQL file to run before the prompt")
	flag.StringVar(&config.LogLevel, "log-level", "warn", "Log level: debug, info, warn or error")
	flag.StringVar(&config.LogFile, "log-file", "", "Write logs to this file instead of stderr")
	flag.BoolVar(&config.NoBanner, "no-banner", false, "Do not print the help banner on startup")

	flag.Parse()

	return config
}

func importFile(session *repl.Session, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	return session.Import(path, f)
}
