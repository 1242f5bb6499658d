package xtcexml

import (
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/CesarCoelho/xtcetools-sub001/internal/ctxlog"
	"github.com/CesarCoelho/xtcetools-sub001/internal/fsutil"
	"github.com/CesarCoelho/xtcetools-sub001/internal/xtce"
	"github.com/CesarCoelho/xtcetools-sub001/internal/xtcepath"
	"golang.org/x/text/encoding/charmap"
)

// Extension is the file extension of XTCE documents.
const Extension = ".xml"

// Load decodes one XTCE document and returns its linked tree.
func Load(ctx context.Context, r io.Reader) (*xtce.Tree, error) {
	logger := ctxlog.FromContext(ctx)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	decoder := xml.NewDecoder(r)
	decoder.CharsetReader = charsetReader

	var doc xmlSpaceSystem
	if err := decoder.Decode(&doc); err != nil {
		return nil, fmt.Errorf("error decoding XTCE document: %w", err)
	}
	if err := xtcepath.ValidName(doc.Name); err != nil {
		return nil, fmt.Errorf("error decoding XTCE document: root space system: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	b := newBuilder(ctx)
	root := b.spaceSystem(&doc)
	tree := xtce.NewTree(root)
	if err := b.attachChildren(tree, root, &doc); err != nil {
		return nil, err
	}
	b.link(tree)

	logger.Debug("XTCE document loaded.",
		"root", root.Path(),
		"space_systems", b.stats.spaceSystems,
		"types", b.stats.types,
		"parameters", b.stats.parameters,
		"containers", b.stats.containers,
		"unresolved", b.stats.unresolved,
	)
	return tree, nil
}

// LoadFile opens path and decodes it with Load.
func LoadFile(ctx context.Context, path string) (*xtce.Tree, error) {
	ctx = ctxlog.With(ctx, "document", path)
	ctxlog.FromContext(ctx).Debug("Loading XTCE document.")

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening %s: %w", path, err)
	}
	defer f.Close()

	tree, err := Load(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("error loading %s: %w", path, err)
	}
	return tree, nil
}

// ResolveDocumentPath returns the document at path, or every document below
// it when path is a directory.
func ResolveDocumentPath(ctx context.Context, path string) ([]string, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Resolving document path.", "path", path)

	files, err := fsutil.Resolve(path, Extension)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		logger.Warn("No XTCE documents found at the specified path.", "path", path)
	}
	return files, nil
}

// charsetReader accepts the single-byte encodings older XTCE tools still
// emit besides UTF-8.
func charsetReader(label string, input io.Reader) (io.Reader, error) {
	switch strings.ToLower(strings.TrimSpace(label)) {
	case "utf-8", "utf8", "us-ascii", "ascii":
		return input, nil
	case "iso-8859-1", "iso8859-1", "latin1", "latin-1":
		return charmap.ISO8859_1.NewDecoder().Reader(input), nil
	case "iso-8859-15", "latin9":
		return charmap.ISO8859_15.NewDecoder().Reader(input), nil
	case "windows-1252", "cp1252":
		return charmap.Windows1252.NewDecoder().Reader(input), nil
	default:
		return nil, fmt.Errorf("unsupported document encoding %q", label)
	}
}
