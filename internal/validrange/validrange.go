// Package validrange derives the permitted value interval of a scalar type.
package validrange

import (
	"strings"

	"github.com/CesarCoelho/xtcetools-sub001/internal/xtce"
)

// Range is the valid range of a type. Callers must check Applied before
// trusting the bounds; a type without a range keeps the zero bounds, both
// inclusive and both raw.
type Range struct {
	Applied        bool
	Low            string
	High           string
	LowInclusive   bool
	HighInclusive  bool
	LowCalibrated  bool
	HighCalibrated bool
}

func notApplied() Range {
	return Range{LowInclusive: true, HighInclusive: true}
}

// Of derives the range of t from its category.
//
// Booleans are always [0, 1] on the raw value. Integers copy their inclusive
// bounds verbatim. Floats prefer the inclusive bound of each side and fall
// back to the exclusive one. For integers and floats the single
// appliesToCalibrated flag of the schema covers both bounds. All other
// categories, and types without a ValidRange, leave Applied false.
func Of(t *xtce.TypeDefinition) Range {
	r := notApplied()
	if t == nil {
		return r
	}

	switch d := t.Detail.(type) {
	case *xtce.BooleanType:
		r.Applied = true
		r.Low = "0"
		r.High = "1"
	case *xtce.IntegerType:
		if d.ValidRange == nil {
			return r
		}
		r.Applied = true
		r.Low = d.ValidRange.MinInclusive
		r.High = d.ValidRange.MaxInclusive
		r.LowCalibrated = d.ValidRange.AppliesToCalibrated
		r.HighCalibrated = d.ValidRange.AppliesToCalibrated
	case *xtce.FloatType:
		if d.ValidRange == nil {
			return r
		}
		vr := d.ValidRange
		r.Applied = true
		switch {
		case vr.MinInclusive != nil:
			r.Low = xtce.FormatFloat(*vr.MinInclusive)
		case vr.MinExclusive != nil:
			r.Low = xtce.FormatFloat(*vr.MinExclusive)
			r.LowInclusive = false
		}
		switch {
		case vr.MaxInclusive != nil:
			r.High = xtce.FormatFloat(*vr.MaxInclusive)
		case vr.MaxExclusive != nil:
			r.High = xtce.FormatFloat(*vr.MaxExclusive)
			r.HighInclusive = false
		}
		r.LowCalibrated = vr.AppliesToCalibrated
		r.HighCalibrated = vr.AppliesToCalibrated
	}
	return r
}

// String renders an applied range in interval notation, e.g. "(1.5, 10.0]".
// A missing bound renders as "*". Unapplied ranges render as "".
func (r Range) String() string {
	if !r.Applied {
		return ""
	}

	var b strings.Builder
	if r.LowInclusive {
		b.WriteByte('[')
	} else {
		b.WriteByte('(')
	}
	b.WriteString(orStar(r.Low))
	b.WriteString(", ")
	b.WriteString(orStar(r.High))
	if r.HighInclusive {
		b.WriteByte(']')
	} else {
		b.WriteByte(')')
	}
	return b.String()
}

// Basis describes which value space the bounds apply to: "raw",
// "calibrated", or "mixed" when the two bounds disagree.
func (r Range) Basis() string {
	switch {
	case r.LowCalibrated && r.HighCalibrated:
		return "calibrated"
	case !r.LowCalibrated && !r.HighCalibrated:
		return "raw"
	default:
		return "mixed"
	}
}

func orStar(s string) string {
	if s == "" {
		return "*"
	}
	return s
}
