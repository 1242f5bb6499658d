package config

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/CesarCoelho/xtcetools-sub001/internal/ctxlog"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// File is the decoded configuration file.
type File struct {
	Log       *Log       `hcl:"log,block"`
	Report    *Report    `hcl:"report,block"`
	Documents []Document `hcl:"document,block"`
}

// Log configures the application logger.
type Log struct {
	Level  string `hcl:"level,optional"`
	Format string `hcl:"format,optional"`
}

// Report configures report output.
type Report struct {
	Format          string   `hcl:"format,optional"`
	AliasNamespaces []string `hcl:"alias_namespaces,optional"`
}

// Document names an XTCE document or directory to load.
type Document struct {
	Name string `hcl:"name,label"`
	Path string `hcl:"path"`
}

// Load parses and decodes the configuration file at path.
func Load(ctx context.Context, path string) (*File, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Decoding configuration file.", "path", path)

	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse configuration file %s: %w", path, diags)
	}

	var file File
	diags = gohcl.DecodeBody(hclFile.Body, nil, &file)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode configuration file %s: %w", path, diags)
	}

	if err := file.validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration file %s: %w", path, err)
	}

	base := filepath.Dir(path)
	for i := range file.Documents {
		if !filepath.IsAbs(file.Documents[i].Path) {
			file.Documents[i].Path = filepath.Join(base, file.Documents[i].Path)
		}
	}

	logger.Debug("Successfully decoded configuration file.", "path", path, "documents", len(file.Documents))
	return &file, nil
}

// LogLevel returns the configured level or "".
func (f *File) LogLevel() string {
	if f == nil || f.Log == nil {
		return ""
	}
	return f.Log.Level
}

// LogFormat returns the configured log format or "".
func (f *File) LogFormat() string {
	if f == nil || f.Log == nil {
		return ""
	}
	return f.Log.Format
}

// ReportFormat returns the configured report format or "".
func (f *File) ReportFormat() string {
	if f == nil || f.Report == nil {
		return ""
	}
	return f.Report.Format
}

// AliasNamespaces returns the configured alias namespace filter.
func (f *File) AliasNamespaces() []string {
	if f == nil || f.Report == nil {
		return nil
	}
	return f.Report.AliasNamespaces
}

// DocumentPaths returns the paths of all document blocks in file order.
func (f *File) DocumentPaths() []string {
	if f == nil {
		return nil
	}
	paths := make([]string, 0, len(f.Documents))
	for _, d := range f.Documents {
		paths = append(paths, d.Path)
	}
	return paths
}

func (f *File) validate() error {
	seen := make(map[string]bool, len(f.Documents))
	for _, d := range f.Documents {
		if seen[d.Name] {
			return fmt.Errorf("duplicate document block %q", d.Name)
		}
		seen[d.Name] = true
		if d.Path == "" {
			return fmt.Errorf("document %q has an empty path", d.Name)
		}
	}
	return nil
}
