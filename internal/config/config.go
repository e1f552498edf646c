package config

import (
	"path/filepath"
	"slices"
	"strings"

	"github.com/adrg/xdg"
)

// Default configuration values.
const (
	// DefaultLength is the generated password length. 26 characters leave
	// enough headroom for the generator to reach the maximum score quickly;
	// anything below 18 can never reach it.
	DefaultLength = 26

	// DefaultCount is the number of passwords generated per invocation.
	DefaultCount = 1

	// DefaultBatchSize is the number of concurrent generations in a batch.
	DefaultBatchSize = 4

	// DefaultExportFormat is the session history export format.
	DefaultExportFormat = "csv"

	// DefaultMaskRune hides candidate characters in the session table.
	DefaultMaskRune = '•'

	// AppName is the application name used for XDG directory paths.
	AppName = "pwstrength"
)

// ExportFormats lists the accepted export format names.
var ExportFormats = []string{"csv", "tsv", "json", "markdown", "md", "text"}

// Config holds all configuration options for pwstrength.
// It is populated from CLI flags and the config file and passed through
// the application rather than kept in global state.
type Config struct {
	// Length is the generated password length in characters.
	Length int

	// Count is the number of passwords to generate.
	Count int

	// BatchSize is the number of concurrent generations.
	BatchSize int

	// MinEntropy rejects generated or scored passwords whose validator
	// entropy is below this many bits. Zero disables the check.
	MinEntropy float64

	// Verbose enables detailed log output using slog.LevelDebug.
	// When false, only warnings and errors are logged.
	Verbose bool

	// ConfigFilePath is the path to the configuration file.
	// If empty, FindConfigFile searches the default locations.
	ConfigFilePath string

	// JSONReport selects JSON output. Mutually exclusive with MarkdownReport.
	JSONReport bool

	// MarkdownReport selects Markdown output. Mutually exclusive with JSONReport.
	MarkdownReport bool

	// Explain adds the per-rule score breakdown to text output.
	Explain bool

	// Quiet prints generated passwords only.
	Quiet bool

	// ExportFormat is the session history export format.
	ExportFormat string

	// ExportFile is the session history export destination. When empty the
	// session exports into ExportDir with a timestamped name.
	ExportFile string

	// ExportDir is the directory for timestamped exports.
	// Defaults to the XDG data directory.
	ExportDir string

	// MaskRune hides candidate characters in the session table.
	MaskRune rune
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Length:       DefaultLength,
		Count:        DefaultCount,
		BatchSize:    DefaultBatchSize,
		ExportFormat: DefaultExportFormat,
		ExportDir:    XDGDataDir(),
		MaskRune:     DefaultMaskRune,
	}
}

// XDGDataDir returns the XDG data directory for pwstrength.
// On Linux: ~/.local/share/pwstrength
// On macOS: ~/Library/Application Support/pwstrength
// On Windows: %LOCALAPPDATA%\pwstrength
func XDGDataDir() string {
	return filepath.Join(xdg.DataHome, AppName)
}

// XDGConfigDir returns the XDG config directory for pwstrength.
// On Linux: ~/.config/pwstrength
// On macOS: ~/Library/Application Support/pwstrength
// On Windows: %APPDATA%\pwstrength
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// Validate checks if the configuration is valid and returns the first
// problem found.
func (c *Config) Validate() error {
	if c.Length <= 0 {
		return ErrInvalidLength
	}
	if c.Count <= 0 {
		return ErrInvalidCount
	}
	if c.BatchSize <= 0 {
		return ErrInvalidBatchSize
	}
	if c.MinEntropy < 0 {
		return ErrInvalidMinEntropy
	}
	if c.JSONReport && c.MarkdownReport {
		return ErrConflictingReportFormats
	}
	if !slices.Contains(ExportFormats, strings.ToLower(c.ExportFormat)) {
		return ErrInvalidExportFormat
	}
	return nil
}

// ApplyFile merges values from the config file into c. A field is taken
// from the file only when the file sets it and explicit does not report
// the matching flag as set on the command line.
func (c *Config) ApplyFile(f *File, explicit func(flag string) bool) {
	if f == nil {
		return
	}
	if explicit == nil {
		explicit = func(string) bool { return false }
	}

	g := f.Generate
	if g.Length != 0 && !explicit(FlagLength) {
		c.Length = g.Length
	}
	if g.Count != 0 && !explicit(FlagCount) {
		c.Count = g.Count
	}
	if g.Batch != 0 && !explicit(FlagBatch) {
		c.BatchSize = g.Batch
	}
	if g.MinEntropy != 0 && !explicit(FlagMinEntropy) {
		c.MinEntropy = g.MinEntropy
	}

	s := f.Session
	if s.ExportFormat != "" && !explicit(FlagFormat) {
		c.ExportFormat = s.ExportFormat
	}
	if s.ExportDir != "" {
		c.ExportDir = s.ExportDir
	}
	if r := []rune(s.MaskRune); len(r) > 0 {
		c.MaskRune = r[0]
	}
}

// Flag names shared by the CLI and ApplyFile.
const (
	FlagLength     = "length"
	FlagCount      = "count"
	FlagBatch      = "batch"
	FlagMinEntropy = "min-entropy"
	FlagFormat     = "format"
)
