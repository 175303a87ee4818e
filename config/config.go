package config

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dhcgn/mbox-contacts/classify"
)

// Config captures all command-line options for an extraction run.
type Config struct {
	MboxPaths  []string
	OutputPath string
	ShowStats  bool
	DryRun     bool
	AssumeSent string // auto, always or never
	TopDomains int
	LogLevel   string
	LogDir     string
}

// RegisterFlags attaches all CLI flags to the provided command. The mbox
// paths themselves are positional arguments.
func RegisterFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringP("output", "o", "contacts.csv", "Output CSV path")
	flags.Bool("stats", false, "Print the full statistics breakdown after the run")
	flags.Bool("dry-run", false, "Scan and report statistics without writing the CSV")
	flags.String("assume-sent", "auto", "Treat label-less messages as sent: auto, always, never (auto uses the file name)")
	flags.Int("top", 10, "Number of recipient domains to list in the stats breakdown")
	flags.String("log-level", "info", "Logging level: debug, info, warn, error")
	flags.String("log-dir", "", "Directory for log files (in addition to stdout)")
}

// LoadConfig converts the parsed Cobra flags and positional arguments into
// a validated Config.
func LoadConfig(cmd *cobra.Command, args []string) (Config, error) {
	flags := cmd.Flags()

	outputPath, err := flags.GetString("output")
	if err != nil {
		return Config{}, err
	}
	showStats, err := flags.GetBool("stats")
	if err != nil {
		return Config{}, err
	}
	dryRun, err := flags.GetBool("dry-run")
	if err != nil {
		return Config{}, err
	}
	assumeSent, err := flags.GetString("assume-sent")
	if err != nil {
		return Config{}, err
	}
	topDomains, err := flags.GetInt("top")
	if err != nil {
		return Config{}, err
	}
	logLevel, err := flags.GetString("log-level")
	if err != nil {
		return Config{}, err
	}
	logDir, err := flags.GetString("log-dir")
	if err != nil {
		return Config{}, err
	}

	logLevel = strings.ToLower(logLevel)
	if logLevel == "warning" {
		logLevel = "warn"
	}

	cfg := Config{
		MboxPaths:  args,
		OutputPath: outputPath,
		ShowStats:  showStats,
		DryRun:     dryRun,
		AssumeSent: strings.ToLower(assumeSent),
		TopDomains: topDomains,
		LogLevel:   logLevel,
		LogDir:     logDir,
	}

	if err := validateConfig(cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func validateConfig(cfg Config) error {
	if len(cfg.MboxPaths) == 0 {
		return fmt.Errorf("at least one mbox path is required")
	}
	if cfg.OutputPath == "" {
		return fmt.Errorf("--output must not be empty")
	}
	switch cfg.AssumeSent {
	case "auto", "always", "never":
	default:
		return fmt.Errorf("invalid --assume-sent: %s", cfg.AssumeSent)
	}
	if cfg.TopDomains <= 0 {
		return fmt.Errorf("--top must be positive")
	}
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid --log-level: %s", cfg.LogLevel)
	}
	return nil
}

// AssumeSentFor resolves the classifier default for one archive path.
func (c Config) AssumeSentFor(path string) bool {
	switch c.AssumeSent {
	case "always":
		return true
	case "never":
		return false
	default:
		return classify.PathImpliesSent(path)
	}
}
