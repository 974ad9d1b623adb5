// Package config loads and validates the symdoc configuration file.
package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	Site    SiteConfig    `yaml:"site"`
	Input   InputConfig   `yaml:"input"`
	Output  OutputConfig  `yaml:"output"`
	Static  []StaticPath  `yaml:"static,omitempty"`
	Metrics MetricsConfig `yaml:"metrics,omitempty"`
}

// SiteConfig controls site-wide presentation.
type SiteConfig struct {
	Title  string `yaml:"title"`
	Readme string `yaml:"readme,omitempty"` // optional markdown rendered on the landing page
}

// InputConfig locates the extractor output and optional tutorial sources.
type InputConfig struct {
	Doclets   string `yaml:"doclets"`
	Tutorials string `yaml:"tutorials,omitempty"`
	Templates string `yaml:"templates,omitempty"` // view override directory
}

// OutputConfig represents output configuration
type OutputConfig struct {
	Directory          string `yaml:"directory"`
	Clean              bool   `yaml:"clean"`
	DisableSourcePages bool   `yaml:"disable_source_pages,omitempty"`
}

// StaticPath is one user-configured static asset source with optional
// substring include/exclude filters.
type StaticPath struct {
	Path    string   `yaml:"path"`
	Include []string `yaml:"include,omitempty"`
	Exclude []string `yaml:"exclude,omitempty"`
}

// MetricsConfig enables the Prometheus endpoint in watch mode.
type MetricsConfig struct {
	Enabled bool   `yaml:"enabled,omitempty"`
	Listen  string `yaml:"listen,omitempty"`
}

// Load loads configuration from the specified file
func Load(configPath string) (*Config, error) {
	// .env values supplement the process environment without overriding it.
	for _, envPath := range []string{".env", ".env.local"} {
		if _, err := os.Stat(envPath); err == nil {
			if err := godotenv.Load(envPath); err != nil {
				fmt.Fprintf(os.Stderr, "Note: %s couldn't be loaded: %v\n", envPath, err)
			}
			break
		}
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("configuration file not found: %s", configPath)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Expand environment variables in the YAML content
	expandedData := os.ExpandEnv(string(data))

	var config Config
	if err := yaml.Unmarshal([]byte(expandedData), &config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	applyDefaults(&config)

	if config.Input.Doclets == "" {
		return nil, fmt.Errorf("input.doclets is required")
	}
	return &config, nil
}

func applyDefaults(config *Config) {
	if config.Site.Title == "" {
		config.Site.Title = "Documentation"
	}
	if config.Output.Directory == "" {
		config.Output.Directory = "./out"
	}
	if config.Metrics.Enabled && config.Metrics.Listen == "" {
		config.Metrics.Listen = ":9464"
	}
}

const exampleConfig = `# symdoc configuration
site:
  title: My Project

input:
  # JSON doclet export produced by the extractor
  doclets: ./doclets.json
  # Optional tutorial markdown directory
  # tutorials: ./tutorials
  # Optional view template overrides
  # templates: ./templates

output:
  directory: ./out
  clean: true
  # disable_source_pages: true

# Extra static assets copied into the site
# static:
#   - path: ./assets
#     include: [".png", ".css"]
#     exclude: ["draft"]

# metrics:
#   enabled: true
#   listen: ":9464"
`

// Init creates a new configuration file with example content
func Init(configPath string, force bool) error {
	if _, err := os.Stat(configPath); err == nil && !force {
		return fmt.Errorf("configuration file already exists: %s (use --force to overwrite)", configPath)
	}
	// #nosec G306 -- example config holds no secrets
	if err := os.WriteFile(configPath, []byte(exampleConfig), 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
