// Package effective computes the display-ready description and initial value
// of parameters, arguments and aggregate members.
//
// Each attribute may come from several optional sources. The sources are
// tried in a fixed order and the first one present wins:
//
//	member description:             type short, type long
//	parameter/argument description: own short, own long, type short, type long
//	parameter/argument initial:     own value, type value (then its base types)
//	member initial:                 type value (then its base types)
//
// Members have a shorter chain because the schema gives them no description
// or initial value of their own. An empty string counts as absent.
package effective

import (
	"github.com/CesarCoelho/xtcetools-sub001/internal/optional"
	"github.com/CesarCoelho/xtcetools-sub001/internal/xtce"
	"github.com/zclconf/go-cty/cty"
)

// Description returns the effective description of item.
func Description(item xtce.TypedItem) optional.Value[string] {
	switch it := item.(type) {
	case *xtce.Member:
		if it == nil {
			return optional.None[string]()
		}
		return TypeDescription(it.Type)
	case *xtce.Parameter:
		if it == nil {
			return optional.None[string]()
		}
		return ownThenType(&it.NameDescription, it.Type)
	case *xtce.Argument:
		if it == nil {
			return optional.None[string]()
		}
		return ownThenType(&it.NameDescription, it.Type)
	default:
		return optional.None[string]()
	}
}

// DescriptionText is Description rendered for display; absent becomes "".
func DescriptionText(item xtce.TypedItem) string {
	return Description(item).OrElse("")
}

// TypeDescription returns the short description of t, else its long one.
func TypeDescription(t *xtce.TypeDefinition) optional.Value[string] {
	if t == nil {
		return optional.None[string]()
	}
	return optional.FirstPresent(
		optional.NonEmpty(t.ShortDescription),
		optional.NonEmpty(t.LongDescription),
	)
}

func ownThenType(own *xtce.NameDescription, t *xtce.TypeDefinition) optional.Value[string] {
	return optional.FirstPresentFunc(
		func() optional.Value[string] { return optional.NonEmpty(own.ShortDescription) },
		func() optional.Value[string] { return optional.NonEmpty(own.LongDescription) },
		func() optional.Value[string] { return TypeDescription(t) },
	)
}

// InitialValue returns the effective initial value of item.
func InitialValue(item xtce.TypedItem) optional.Value[cty.Value] {
	switch it := item.(type) {
	case *xtce.Member:
		if it == nil {
			return optional.None[cty.Value]()
		}
		return TypeInitialValue(it.Type)
	case *xtce.Parameter:
		if it == nil {
			return optional.None[cty.Value]()
		}
		return optional.FirstPresentFunc(
			func() optional.Value[cty.Value] { return present(it.InitialValue) },
			func() optional.Value[cty.Value] { return TypeInitialValue(it.Type) },
		)
	case *xtce.Argument:
		if it == nil {
			return optional.None[cty.Value]()
		}
		return optional.FirstPresentFunc(
			func() optional.Value[cty.Value] { return present(it.InitialValue) },
			func() optional.Value[cty.Value] { return TypeInitialValue(it.Type) },
		)
	default:
		return optional.None[cty.Value]()
	}
}

// InitialValueText is InitialValue rendered for display; absent becomes "".
func InitialValueText(item xtce.TypedItem) string {
	v, ok := InitialValue(item).Get()
	if !ok {
		return ""
	}
	return xtce.DisplayValue(item.ItemType(), v)
}

// TypeInitialValue returns the initial value of t, falling back along its
// base types. A base-type cycle ends the walk without a value.
func TypeInitialValue(t *xtce.TypeDefinition) optional.Value[cty.Value] {
	visited := make(map[*xtce.TypeDefinition]struct{})
	for current := t; current != nil; current = current.BaseType {
		if _, seen := visited[current]; seen {
			break
		}
		visited[current] = struct{}{}
		if v := present(current.InitialValue); v.Present() {
			return v
		}
	}
	return optional.None[cty.Value]()
}

func present(v *cty.Value) optional.Value[cty.Value] {
	if v == nil || v.IsNull() {
		return optional.None[cty.Value]()
	}
	return optional.Some(*v)
}
