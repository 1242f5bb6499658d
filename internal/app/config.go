package app

import (
	"errors"
	"fmt"
	"strings"

	"github.com/CesarCoelho/xtcetools-sub001/internal/report"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	Documents []string // xml files or directories

	Format          string
	AliasNamespaces []string
	LogFormat       string
	LogLevel        string

	// Resolve is "CONTEXT:REF". When set the app prints that one
	// resolution instead of a report.
	Resolve string
}

// NewConfig validates cfg and returns a copy of it.
func NewConfig(cfg Config) (*Config, error) {
	if len(cfg.Documents) == 0 && cfg.Resolve == "" {
		return nil, errors.New("at least one document path is required")
	}
	if _, err := report.ParseFormat(cfg.Format); err != nil {
		return nil, err
	}
	if cfg.Resolve != "" {
		if _, _, ok := strings.Cut(cfg.Resolve, ":"); !ok {
			return nil, fmt.Errorf("invalid resolve argument %q: want CONTEXT:REF", cfg.Resolve)
		}
	}
	return &cfg, nil
}
