package xtce

import (
	"strings"

	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
)

// ParseInitialValue converts the textual initial value of a document into a
// typed value for the given type. Text that does not parse for the category
// is kept as a string rather than dropped.
func ParseInitialValue(t *TypeDefinition, raw string) cty.Value {
	switch d := detailOf(t).(type) {
	case *IntegerType, *FloatType:
		if v, err := cty.ParseNumberVal(strings.TrimSpace(raw)); err == nil {
			return v
		}
	case *BooleanType:
		switch raw {
		case d.OneString():
			return cty.True
		case d.ZeroString():
			return cty.False
		}
		switch strings.ToLower(strings.TrimSpace(raw)) {
		case "true", "1":
			return cty.True
		case "false", "0":
			return cty.False
		}
	}
	return cty.StringVal(raw)
}

// DisplayValue renders v as text in the form used by documents of type t.
// Booleans render as the type's one and zero strings and floats through
// FormatFloat, so 10 becomes "10.0" as it does in valid ranges. Null,
// unknown and non-primitive values render as "".
func DisplayValue(t *TypeDefinition, v cty.Value) string {
	if v.IsNull() || !v.IsKnown() {
		return ""
	}
	switch d := detailOf(t).(type) {
	case *BooleanType:
		if v.Type() == cty.Bool {
			if v.True() {
				return d.OneString()
			}
			return d.ZeroString()
		}
	case *FloatType:
		if v.Type() == cty.Number {
			f, _ := v.AsBigFloat().Float64()
			return FormatFloat(f)
		}
	}
	s, err := convert.Convert(v, cty.String)
	if err != nil || s.IsNull() {
		return ""
	}
	return s.AsString()
}

func detailOf(t *TypeDefinition) TypeDetail {
	if t == nil {
		return nil
	}
	return t.Detail
}
