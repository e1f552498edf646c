package config

// GenerateConfig holds generation defaults from the config file.
// Zero values leave the built-in defaults in place.
type GenerateConfig struct {
	// Length is the generated password length.
	Length int `yaml:"length,omitempty"`

	// Count is the number of passwords per invocation.
	Count int `yaml:"count,omitempty"`

	// Batch is the number of concurrent generations.
	Batch int `yaml:"batch,omitempty"`

	// MinEntropy is the minimum validator entropy in bits.
	MinEntropy float64 `yaml:"minEntropy,omitempty"`
}

// SessionConfig holds interactive session settings from the config file.
type SessionConfig struct {
	// ExportFormat is one of csv, tsv, json, markdown, text.
	ExportFormat string `yaml:"exportFormat,omitempty"`

	// ExportDir is where timestamped exports are written.
	ExportDir string `yaml:"exportDir,omitempty"`

	// MaskRune is the character shown in place of each candidate
	// character. Only the first rune is used.
	MaskRune string `yaml:"maskRune,omitempty"`
}

// File represents the structure of the .pwstrength configuration file.
type File struct {
	// Generate contains generation defaults.
	Generate GenerateConfig `yaml:"generate,omitempty"`

	// Session contains interactive session settings.
	Session SessionConfig `yaml:"session,omitempty"`
}
