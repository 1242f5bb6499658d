package engine

import (
	"context"
	"fmt"

	"github.com/CesarCoelho/xtcetools-sub001/internal/ctxlog"
	"github.com/CesarCoelho/xtcetools-sub001/internal/xtce"
)

// AddSpaceSystem attaches ss below the Space System at parentPath.
func (m *Manager) AddSpaceSystem(ctx context.Context, parentPath string, ss *xtce.SpaceSystem) error {
	logger := ctxlog.FromContext(ctx)

	m.mu.Lock()
	defer m.mu.Unlock()

	parent, err := m.lookup(parentPath)
	if err != nil {
		return err
	}
	if err := m.tree.Attach(parent, ss); err != nil {
		return fmt.Errorf("error adding space system %s: %w", ss.Name, err)
	}
	logger.Debug("Space system added.", "path", ss.Path(), "generation", m.tree.Generation())
	return nil
}

// Rename gives the Space System at path a new name.
func (m *Manager) Rename(ctx context.Context, path, name string) error {
	logger := ctxlog.FromContext(ctx)

	m.mu.Lock()
	defer m.mu.Unlock()

	ss, err := m.lookup(path)
	if err != nil {
		return err
	}
	if err := m.tree.Rename(ss, name); err != nil {
		return fmt.Errorf("error renaming %s: %w", path, err)
	}
	logger.Debug("Space system renamed.", "from", path, "to", ss.Path(), "generation", m.tree.Generation())
	return nil
}

// Move re-parents the Space System at path under newParentPath.
func (m *Manager) Move(ctx context.Context, path, newParentPath string) error {
	logger := ctxlog.FromContext(ctx)

	m.mu.Lock()
	defer m.mu.Unlock()

	ss, err := m.lookup(path)
	if err != nil {
		return err
	}
	parent, err := m.lookup(newParentPath)
	if err != nil {
		return err
	}
	if err := m.tree.Move(ss, parent); err != nil {
		return fmt.Errorf("error moving %s: %w", path, err)
	}
	logger.Debug("Space system moved.", "from", path, "to", ss.Path(), "generation", m.tree.Generation())
	return nil
}

// Remove detaches the Space System at path together with its subtree.
func (m *Manager) Remove(ctx context.Context, path string) error {
	logger := ctxlog.FromContext(ctx)

	m.mu.Lock()
	defer m.mu.Unlock()

	ss, err := m.lookup(path)
	if err != nil {
		return err
	}
	if err := m.tree.Remove(ss); err != nil {
		return fmt.Errorf("error removing %s: %w", path, err)
	}
	m.dropMemo()
	logger.Debug("Space system removed.", "path", path, "generation", m.tree.Generation())
	return nil
}

// Update runs fn with exclusive access to the tree, for entity-level edits
// such as changing a container's base reference. Memoized inheritance
// paths are discarded afterwards.
func (m *Manager) Update(ctx context.Context, fn func(*xtce.Tree) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	defer m.dropMemo()

	if err := fn(m.tree); err != nil {
		return err
	}
	ctxlog.FromContext(ctx).Debug("Tree updated.", "generation", m.tree.Generation())
	return nil
}

func (m *Manager) lookup(path string) (*xtce.SpaceSystem, error) {
	ss, ok := m.tree.Lookup(path)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	return ss, nil
}

func (m *Manager) dropMemo() {
	m.memoMu.Lock()
	clear(m.memo)
	m.memoMu.Unlock()
}
