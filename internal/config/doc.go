// Package config provides configuration structures and utilities for
// pwstrength. It defines the options for password generation, scoring
// output, and session export, and loads the optional YAML config file.
package config
