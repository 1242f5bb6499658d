package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/CesarCoelho/xtcetools-sub001/internal/ctxlog"
	"github.com/CesarCoelho/xtcetools-sub001/internal/engine"
	"github.com/CesarCoelho/xtcetools-sub001/internal/report"
	"github.com/CesarCoelho/xtcetools-sub001/internal/xtcepath"
	"github.com/CesarCoelho/xtcetools-sub001/internal/xtcexml"
)

// Document is one loaded XTCE document.
type Document struct {
	Path   string
	Engine *engine.Manager
}

// Run executes the main application logic based on the app's configuration.
func (a *App) Run(ctx context.Context) error {
	ctx = a.Context(ctx)
	a.logger.Debug("App.Run method started.")

	docs, err := a.Load(ctx)
	if err != nil {
		return err
	}

	if a.config.Resolve != "" {
		return a.resolve(ctx, docs)
	}

	format, err := report.ParseFormat(a.config.Format)
	if err != nil {
		return err
	}
	opts := report.Options{AliasNamespaces: a.config.AliasNamespaces}

	reports := make([]*report.Report, 0, len(docs))
	for _, doc := range docs {
		r, err := report.Build(ctx, doc.Engine, opts)
		if err != nil {
			return fmt.Errorf("failed to build report for %s: %w", doc.Path, err)
		}
		r.Document = doc.Path
		reports = append(reports, r)
	}

	if err := report.Write(a.outW, format, reports...); err != nil {
		return err
	}
	a.logger.Debug("App.Run method finished.", "reports", len(reports))
	return nil
}

// Load discovers and loads every configured document.
func (a *App) Load(ctx context.Context) ([]Document, error) {
	ctx = a.Context(ctx)
	logger := ctxlog.FromContext(ctx)

	var files []string
	for _, path := range a.config.Documents {
		found, err := xtcexml.ResolveDocumentPath(ctx, path)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve document path '%s': %w", path, err)
		}
		files = append(files, found...)
	}
	if len(files) > 0 {
		logger.Info("Found XTCE documents to process.", "count", len(files))
	}

	docs := make([]Document, 0, len(files))
	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		tree, err := xtcexml.LoadFile(ctx, file)
		if err != nil {
			return nil, err
		}
		docs = append(docs, Document{Path: file, Engine: engine.New(tree)})
	}
	return docs, nil
}

// resolve prints the absolute path of the configured reference and, for
// each loaded document, the parameter found there.
func (a *App) resolve(ctx context.Context, docs []Document) error {
	logger := ctxlog.FromContext(ctx)
	base, ref, _ := strings.Cut(a.config.Resolve, ":")

	resolved, err := xtcepath.Resolve(base, ref)
	if err != nil {
		return fmt.Errorf("failed to resolve %q against %q: %w", ref, base, err)
	}
	fmt.Fprintln(a.outW, resolved)

	for _, doc := range docs {
		p, err := doc.Engine.ResolveParameter(base, ref)
		if err != nil {
			logger.Debug("Reference does not name a parameter.", "document", doc.Path, "error", err)
			fmt.Fprintf(a.outW, "%s: no parameter\n", doc.Path)
			continue
		}
		line := fmt.Sprintf("%s: parameter %s", doc.Path, resolved)
		if desc := doc.Engine.EffectiveDescription(p); desc != "" {
			line += fmt.Sprintf(" (%s)", desc)
		}
		if v := doc.Engine.EffectiveInitialValue(p); v != "" {
			line += fmt.Sprintf(" initial=%s", v)
		}
		fmt.Fprintln(a.outW, line)
	}
	return nil
}
