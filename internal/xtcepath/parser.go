package xtcepath

import (
	"regexp"
	"strings"

	"github.com/CesarCoelho/xtcetools-sub001/internal/xtceerr"
)

const (
	// Delimiter separates Space System names in a path.
	Delimiter = "/"

	current = "."
	parent  = ".."
)

// segmentRegex matches one segment: no delimiter and no whitespace.
var segmentRegex = regexp.MustCompile(`^[^/\s]+$`)

// IsAbsolute reports whether p starts with the path delimiter.
func IsAbsolute(p string) bool {
	return strings.HasPrefix(p, Delimiter)
}

// Split breaks p into its segments and reports whether it was absolute.
// Dot segments are returned as-is; they are applied by Resolve.
func Split(p string) ([]string, bool, error) {
	if p == "" {
		return nil, false, xtceerr.New(xtceerr.MalformedReference, "", p, "path cannot be empty")
	}

	absolute := IsAbsolute(p)
	body := p
	if absolute {
		body = p[len(Delimiter):]
	}
	if body == "" {
		return nil, absolute, xtceerr.New(xtceerr.MalformedReference, "", p, "path has no segments")
	}

	parts := strings.Split(body, Delimiter)
	for _, part := range parts {
		if part == "" {
			return nil, absolute, xtceerr.New(xtceerr.MalformedReference, "", p, "path contains empty segment")
		}
		if !segmentRegex.MatchString(part) {
			return nil, absolute, xtceerr.Newf(xtceerr.MalformedReference, "", p, "invalid path segment %q", part)
		}
	}
	return parts, absolute, nil
}

// ValidName reports whether name can stand as a single path segment. Dot
// segments are rejected since Resolve would reinterpret them.
func ValidName(name string) error {
	if name == "" {
		return xtceerr.New(xtceerr.MalformedReference, "", name, "name cannot be empty")
	}
	if name == current || name == parent || !segmentRegex.MatchString(name) {
		return xtceerr.Newf(xtceerr.MalformedReference, "", name, "invalid name %q", name)
	}
	return nil
}

// Join renders segments as an absolute path. Zero segments yield "".
func Join(segments ...string) string {
	if len(segments) == 0 {
		return ""
	}
	return Delimiter + strings.Join(segments, Delimiter)
}

// SplitEntity separates an entity's full path into the path of its Space
// System and its own name. "/A/B/P" yields ("/A/B", "P").
func SplitEntity(fullPath string) (string, string, bool) {
	idx := strings.LastIndex(fullPath, Delimiter)
	if idx <= 0 || idx == len(fullPath)-1 {
		return "", "", false
	}
	return fullPath[:idx], fullPath[idx+1:], true
}
