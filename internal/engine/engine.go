package engine

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/CesarCoelho/xtcetools-sub001/internal/alias"
	"github.com/CesarCoelho/xtcetools-sub001/internal/ctxlog"
	"github.com/CesarCoelho/xtcetools-sub001/internal/effective"
	"github.com/CesarCoelho/xtcetools-sub001/internal/inheritance"
	"github.com/CesarCoelho/xtcetools-sub001/internal/validrange"
	"github.com/CesarCoelho/xtcetools-sub001/internal/xtce"
	"github.com/CesarCoelho/xtcetools-sub001/internal/xtcepath"
	"github.com/zclconf/go-cty/cty"
)

// ErrNotFound is returned by edits addressing a Space System that does not
// exist.
var ErrNotFound = errors.New("space system not found")

// Manager owns a tree and serializes edits against concurrent queries.
type Manager struct {
	mu   sync.RWMutex
	tree *xtce.Tree

	memoMu sync.Mutex
	memo   map[*xtce.Container]memoEntry
}

type memoEntry struct {
	generation uint64
	path       inheritance.Path
}

var _ Querier = (*Manager)(nil)

// New wraps tree. The Manager takes ownership; the caller must not edit
// the tree directly afterwards.
func New(tree *xtce.Tree) *Manager {
	return &Manager{
		tree: tree,
		memo: make(map[*xtce.Container]memoEntry),
	}
}

// Generation returns the current tree generation.
func (m *Manager) Generation() uint64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.tree.Generation()
}

// View implements Querier.
func (m *Manager) View(fn func(*xtce.Tree) error) error {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return fn(m.tree)
}

// ResolvePath implements Querier. It does not touch the tree.
func (m *Manager) ResolvePath(context, reference string) (string, error) {
	return xtcepath.Resolve(context, reference)
}

// ResolveParameter resolves ref against context and returns the parameter
// it names.
func (m *Manager) ResolveParameter(context, ref string) (*xtce.Parameter, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.tree.ResolveParameter(context, ref)
}

// EffectiveDescription implements Querier.
func (m *Manager) EffectiveDescription(item xtce.TypedItem) string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return effective.DescriptionText(item)
}

// EffectiveInitialValue implements Querier.
func (m *Manager) EffectiveInitialValue(item xtce.TypedItem) string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return effective.InitialValueText(item)
}

// InitialValue implements Querier.
func (m *Manager) InitialValue(item xtce.TypedItem) (cty.Value, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return effective.InitialValue(item).Get()
}

// ValidRange implements Querier.
func (m *Manager) ValidRange(t *xtce.TypeDefinition) validrange.Range {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return validrange.Of(t)
}

// InheritancePath implements Querier.
func (m *Manager) InheritancePath(ctx context.Context, c *xtce.Container) (inheritance.Path, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.inheritancePath(ctx, c)
}

// SortContainers implements Querier. The slice is left untouched on error.
func (m *Manager) SortContainers(ctx context.Context, containers []*xtce.Container) error {
	m.mu.RLock()
	defer m.mu.RUnlock()

	paths := make(map[*xtce.Container]inheritance.Path, len(containers))
	for _, c := range containers {
		p, err := m.inheritancePath(ctx, c)
		if err != nil {
			return fmt.Errorf("error computing inheritance path of %s: %w", containerPath(c), err)
		}
		paths[c] = p
	}
	slices.SortStableFunc(containers, func(a, b *xtce.Container) int {
		return inheritance.Compare(paths[a], paths[b])
	})
	return nil
}

// ContainsParameter implements Querier.
func (m *Manager) ContainsParameter(c *xtce.Container, p *xtce.Parameter) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return inheritance.Contains(c, p)
}

// ContainsArgument implements Querier.
func (m *Manager) ContainsArgument(c *xtce.Container, a *xtce.Argument) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return inheritance.ContainsArgument(c, a)
}

// FindByAlias implements Querier.
func (m *Manager) FindByAlias(a alias.Alias) []xtce.Entity {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.tree.FindByAlias(a)
}

// inheritancePath must be called with at least the read lock held, which
// keeps the generation stable for the duration of the call.
func (m *Manager) inheritancePath(ctx context.Context, c *xtce.Container) (inheritance.Path, error) {
	gen := m.tree.Generation()

	m.memoMu.Lock()
	entry, ok := m.memo[c]
	m.memoMu.Unlock()
	if ok && entry.generation == gen {
		return entry.path, nil
	}

	p, err := inheritance.PathOf(c, inheritance.TreeLookup(m.tree))
	if err != nil {
		ctxlog.FromContext(ctx).Debug("Inheritance path could not be computed.", "container", containerPath(c), "error", err)
		return inheritance.Path{}, err
	}

	m.memoMu.Lock()
	m.memo[c] = memoEntry{generation: gen, path: p}
	m.memoMu.Unlock()
	return p, nil
}

func containerPath(c *xtce.Container) string {
	if c == nil {
		return "<nil>"
	}
	return c.FullPath()
}
