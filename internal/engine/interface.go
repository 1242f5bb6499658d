package engine

import (
	"context"

	"github.com/CesarCoelho/xtcetools-sub001/internal/alias"
	"github.com/CesarCoelho/xtcetools-sub001/internal/inheritance"
	"github.com/CesarCoelho/xtcetools-sub001/internal/validrange"
	"github.com/CesarCoelho/xtcetools-sub001/internal/xtce"
	"github.com/zclconf/go-cty/cty"
)

// Querier is the read side of the engine. Report builders and other
// consumers depend on it rather than on *Manager.
//
// Every method must be safe to call concurrently with other queries and
// with edits made through the Manager.
type Querier interface {
	// View runs fn with the tree read-locked. fn must not retain the tree
	// or call back into edit methods.
	View(fn func(*xtce.Tree) error) error

	// ResolvePath turns reference into an absolute path relative to the
	// context path.
	ResolvePath(context, reference string) (string, error)

	// EffectiveDescription returns the first non-empty description along
	// the item's fallback chain, or "".
	EffectiveDescription(item xtce.TypedItem) string

	// EffectiveInitialValue returns the display text of the item's
	// effective initial value, or "".
	EffectiveInitialValue(item xtce.TypedItem) string

	// InitialValue returns the typed effective initial value.
	InitialValue(item xtce.TypedItem) (cty.Value, bool)

	// ValidRange returns the valid range of t.
	ValidRange(t *xtce.TypeDefinition) validrange.Range

	// InheritancePath returns the memoized inheritance path of c.
	InheritancePath(ctx context.Context, c *xtce.Container) (inheritance.Path, error)

	// SortContainers orders containers by inheritance path.
	SortContainers(ctx context.Context, containers []*xtce.Container) error

	// ContainsParameter reports whether c lists p directly.
	ContainsParameter(c *xtce.Container, p *xtce.Parameter) bool

	// ContainsArgument reports whether c lists a directly.
	ContainsArgument(c *xtce.Container, a *xtce.Argument) bool

	// FindByAlias returns every entity carrying a.
	FindByAlias(a alias.Alias) []xtce.Entity
}
