package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/CesarCoelho/xtcetools-sub001/internal/app"
	"github.com/CesarCoelho/xtcetools-sub001/internal/config"
	"github.com/spf13/pflag"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated app.Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := pflag.NewFlagSet("xtcetools", pflag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
xtcetools - Resolves references and effective attributes of XTCE documents.

Usage:
  xtcetools [options] [DOCUMENT|DIR ...]

Arguments:
  DOCUMENT|DIR
    Path to a single .xml file or a directory containing .xml files.

Options:
`)
		flagSet.PrintDefaults()
	}

	configFlag := flagSet.StringP("config", "c", "", "Path to an HCL configuration file.")
	formatFlag := flagSet.StringP("format", "f", "yaml", "Report format. Options: 'yaml' or 'json'.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	aliasFlag := flagSet.StringArray("alias-namespace", nil, "Only report aliases in this namespace. May be repeated.")
	resolveFlag := flagSet.String("resolve", "", "Resolve REF against the space system CONTEXT, given as CONTEXT:REF.")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	var file *config.File
	if *configFlag != "" {
		var err error
		file, err = config.Load(context.Background(), *configFlag)
		if err != nil {
			return nil, false, &ExitError{Code: 2, Message: err.Error()}
		}
	}

	documents := append(file.DocumentPaths(), flagSet.Args()...)
	slog.Debug("Document paths determined.", "paths", documents)

	if len(documents) == 0 && *resolveFlag == "" {
		slog.Debug("No document path provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}

	format := pick(flagSet, "format", *formatFlag, file.ReportFormat())
	logFormat := strings.ToLower(pick(flagSet, "log-format", *logFormatFlag, file.LogFormat()))
	logLevel := strings.ToLower(pick(flagSet, "log-level", *logLevelFlag, file.LogLevel()))

	aliasNamespaces := file.AliasNamespaces()
	if flagSet.Changed("alias-namespace") {
		aliasNamespaces = *aliasFlag
	}

	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}
	slog.Debug("CLI parameter validation complete.")

	cfg, err := app.NewConfig(app.Config{
		Documents:       documents,
		Format:          strings.ToLower(format),
		AliasNamespaces: aliasNamespaces,
		LogFormat:       logFormat,
		LogLevel:        logLevel,
		Resolve:         *resolveFlag,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", cfg)
	return cfg, false, nil
}

// pick returns the flag value when the flag was set explicitly, otherwise
// the configuration file value, otherwise the flag default.
func pick(flagSet *pflag.FlagSet, name, flagValue, fileValue string) string {
	if flagSet.Changed(name) || fileValue == "" {
		return flagValue
	}
	return fileValue
}
