package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/gcbaptista/course-catalog/api"
	"github.com/gcbaptista/course-catalog/config"
	"github.com/gcbaptista/course-catalog/internal/catalog"
	"github.com/gcbaptista/course-catalog/internal/loader"
)

func main() {
	// Define command-line flags
	var (
		help       = flag.Bool("help", false, "Show help message")
		version    = flag.Bool("version", false, "Show version information")
		configPath = flag.String("config", "", "Path to a YAML settings file")
		port       = flag.String("port", "", "Port to run the server on (overrides config)")
		dataDir    = flag.String("data-dir", "", "Directory holding category.csv, schools.csv and courses.csv (overrides config)")
	)

	flag.Parse()

	// Handle help flag
	if *help {
		fmt.Printf("Course Catalog - In-memory course catalog with ranked queries\n\n")
		fmt.Printf("Usage: %s [options]\n\n", os.Args[0])
		fmt.Printf("Options:\n")
		flag.PrintDefaults()
		fmt.Printf("\nExamples:\n")
		fmt.Printf("  %s                              # Start server on default port 8080\n", os.Args[0])
		fmt.Printf("  %s --port 9000                  # Start server on port 9000\n", os.Args[0])
		fmt.Printf("  %s --data-dir /srv/catalog      # Load the feed from a custom directory\n", os.Args[0])
		fmt.Printf("  %s --config catalog.yaml        # Read settings from a YAML file\n", os.Args[0])
		return
	}

	// Handle version flag
	if *version {
		fmt.Printf("Course Catalog v1.0.0\n")
		fmt.Printf("Top-N by category and school, keyword search, live course additions\n")
		return
	}

	settings, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load settings: %v", err)
	}
	if *port != "" {
		settings.Port = *port
	}
	if *dataDir != "" {
		settings.DataDir = *dataDir
	}
	if problems := settings.Validate(); len(problems) > 0 {
		log.Fatalf("Invalid settings: %s", strings.Join(problems, "; "))
	}

	router, err := newServer(context.Background(), settings)
	if err != nil {
		log.Fatalf("Failed to load catalog: %v", err)
	}

	// Start the server
	log.Printf("Starting server on port %s...", settings.Port)
	if err := router.Run(":" + settings.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// newServer loads the feed found in settings.DataDir into a fresh catalog and
// returns a router serving it. The catalog is never served partially loaded.
func newServer(ctx context.Context, settings config.CatalogSettings) (*gin.Engine, error) {
	log.Printf("Using data directory: %s", settings.DataDir)

	courseCatalog := catalog.New()
	if _, err := loader.LoadDir(ctx, courseCatalog, settings.DataDir, settings.Feed); err != nil {
		return nil, err
	}

	router := gin.Default()
	api.SetupRoutes(router, courseCatalog, settings)
	return router, nil
}
