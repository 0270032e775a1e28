// Package config provides configuration structures for the course catalog.
// It defines where the bulk-load feed lives, query limits and HTTP settings.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// FeedSettings names the bulk-load files read once at startup.
// File names are resolved relative to CatalogSettings.DataDir.
type FeedSettings struct {
	CategoriesFile string `json:"categories_file" yaml:"categoriesFile"` // id,name rows
	SchoolsFile    string `json:"schools_file" yaml:"schoolsFile"`       // id,name rows
	CoursesFile    string `json:"courses_file" yaml:"coursesFile"`       // id,school,category,title,rating,duration rows
}

// CatalogSettings contains all configuration options for a catalog process.
type CatalogSettings struct {
	Port               string       `json:"port" yaml:"port"`                               // HTTP port (e.g., "8080")
	DataDir            string       `json:"data_dir" yaml:"dataDir"`                        // Directory holding the feed files
	Feed               FeedSettings `json:"feed" yaml:"feed"`                               // Bulk-load file names
	DefaultSearchLimit int          `json:"default_search_limit" yaml:"defaultSearchLimit"` // Results returned by a keyword search without explicit limit
	DefaultTopN        int          `json:"default_top_n" yaml:"defaultTopN"`               // Results returned by a top-N query without explicit n
	MaxResults         int          `json:"max_results" yaml:"maxResults"`                  // Upper bound on any requested result count
	MaxRequestBytes    int64        `json:"max_request_bytes" yaml:"maxRequestBytes"`       // Request body size limit
	MetricsEnabled     bool         `json:"metrics_enabled" yaml:"metricsEnabled"`          // Expose /metrics
}

// Default returns settings with defaults applied.
func Default() CatalogSettings {
	settings := CatalogSettings{MetricsEnabled: true}
	settings.ApplyDefaults()
	return settings
}

// Load reads a YAML settings file (if path is not empty), applies
// environment-variable overrides and fills in defaults for missing values.
func Load(path string) (CatalogSettings, error) {
	settings := CatalogSettings{MetricsEnabled: true}
	if path != "" {
		data, err := os.ReadFile(path) // #nosec G304 -- path comes from the operator's command line
		if err != nil {
			return CatalogSettings{}, fmt.Errorf("reading config file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &settings); err != nil {
			return CatalogSettings{}, fmt.Errorf("parsing config file %s: %w", path, err)
		}
	}
	applyEnvOverrides(&settings)
	settings.ApplyDefaults()
	return settings, nil
}

// applyEnvOverrides reads CATALOG_* environment variables and overrides the
// corresponding fields.
func applyEnvOverrides(settings *CatalogSettings) {
	if v := os.Getenv("CATALOG_PORT"); v != "" {
		settings.Port = v
	}
	if v := os.Getenv("CATALOG_DATA_DIR"); v != "" {
		settings.DataDir = v
	}
	if v := os.Getenv("CATALOG_DEFAULT_SEARCH_LIMIT"); v != "" {
		if limit, err := strconv.Atoi(v); err == nil {
			settings.DefaultSearchLimit = limit
		}
	}
	if v := os.Getenv("CATALOG_METRICS_ENABLED"); v != "" {
		if enabled, err := strconv.ParseBool(v); err == nil {
			settings.MetricsEnabled = enabled
		}
	}
}

// ApplyDefaults applies default values to unset settings
func (settings *CatalogSettings) ApplyDefaults() {
	if settings.Port == "" {
		settings.Port = "8080"
	}
	if settings.DataDir == "" {
		settings.DataDir = "./catalog_data"
	}
	if settings.Feed.CategoriesFile == "" {
		settings.Feed.CategoriesFile = "category.csv"
	}
	if settings.Feed.SchoolsFile == "" {
		settings.Feed.SchoolsFile = "schools.csv"
	}
	if settings.Feed.CoursesFile == "" {
		settings.Feed.CoursesFile = "courses.csv"
	}
	if settings.DefaultSearchLimit == 0 {
		settings.DefaultSearchLimit = 50
	}
	if settings.DefaultTopN == 0 {
		settings.DefaultTopN = 10
	}
	if settings.MaxResults == 0 {
		settings.MaxResults = 1000
	}
	if settings.MaxRequestBytes == 0 {
		settings.MaxRequestBytes = 1 << 20
	}
}

// Validate checks the settings and returns one message per problem found.
func (settings *CatalogSettings) Validate() []string {
	var problems []string

	if port, err := strconv.Atoi(settings.Port); err != nil || port <= 0 || port > 65535 {
		problems = append(problems, "Port '"+settings.Port+"' is not a valid TCP port")
	}
	if strings.TrimSpace(settings.DataDir) == "" {
		problems = append(problems, "Data directory cannot be empty or whitespace-only")
	}
	for name, file := range map[string]string{
		"categories_file": settings.Feed.CategoriesFile,
		"schools_file":    settings.Feed.SchoolsFile,
		"courses_file":    settings.Feed.CoursesFile,
	} {
		if strings.TrimSpace(file) == "" {
			problems = append(problems, "Feed file "+name+" cannot be empty or whitespace-only")
		}
	}
	if settings.DefaultSearchLimit < 0 {
		problems = append(problems, "default_search_limit cannot be negative")
	}
	if settings.DefaultTopN < 0 {
		problems = append(problems, "default_top_n cannot be negative")
	}
	if settings.MaxResults <= 0 {
		problems = append(problems, "max_results must be positive")
	}
	if settings.DefaultSearchLimit > settings.MaxResults || settings.DefaultTopN > settings.MaxResults {
		problems = append(problems, "Defaults cannot exceed max_results")
	}
	if settings.MaxRequestBytes <= 0 {
		problems = append(problems, "max_request_bytes must be positive")
	}

	return problems
}

// CapLimit bounds a requested result count by MaxResults.
func (settings *CatalogSettings) CapLimit(requested int) int {
	if requested > settings.MaxResults {
		return settings.MaxResults
	}
	return requested
}
