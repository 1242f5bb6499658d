package xtcepath

import (
	"errors"

	"github.com/CesarCoelho/xtcetools-sub001/internal/xtceerr"
)

// Resolve turns reference into an absolute, normalized path. Absolute
// references ignore context; relative ones are applied on top of it.
func Resolve(context, reference string) (string, error) {
	refSegments, absolute, err := Split(reference)
	if err != nil {
		return "", withContext(err, context, reference)
	}

	var stack []string
	if !absolute {
		ctxSegments, ctxAbsolute, err := Split(context)
		if err != nil {
			return "", withContext(err, context, reference)
		}
		if !ctxAbsolute {
			return "", xtceerr.New(xtceerr.MalformedReference, context, reference, "context path must be absolute")
		}
		stack, err = apply(nil, ctxSegments, context, reference)
		if err != nil {
			return "", err
		}
	}

	stack, err = apply(stack, refSegments, context, reference)
	if err != nil {
		return "", err
	}
	return Join(stack...), nil
}

// ResolveString is Resolve with failures collapsed to "". Callers detect a
// failed resolution by checking for the empty string.
func ResolveString(context, reference string) string {
	resolved, err := Resolve(context, reference)
	if err != nil {
		return ""
	}
	return resolved
}

// Normalize applies the dot segments of an absolute path.
func Normalize(p string) (string, error) {
	if !IsAbsolute(p) {
		return "", xtceerr.New(xtceerr.MalformedReference, "", p, "only absolute paths can be normalized")
	}
	return Resolve("", p)
}

func apply(stack, segments []string, context, reference string) ([]string, error) {
	out := make([]string, len(stack), len(stack)+len(segments))
	copy(out, stack)

	for _, segment := range segments {
		switch segment {
		case current:
		case parent:
			if len(out) <= 1 {
				return nil, xtceerr.New(xtceerr.EscapesRoot, context, reference, "reference climbs above the root space system")
			}
			out = out[:len(out)-1]
		default:
			out = append(out, segment)
		}
	}
	return out, nil
}

func withContext(err error, context, reference string) error {
	var re *xtceerr.ResolutionError
	if errors.As(err, &re) {
		return xtceerr.New(re.Kind, context, reference, re.Detail)
	}
	return err
}
