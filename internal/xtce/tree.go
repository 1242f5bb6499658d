package xtce

import (
	"errors"
	"fmt"

	"github.com/CesarCoelho/xtcetools-sub001/internal/alias"
	"github.com/CesarCoelho/xtcetools-sub001/internal/xtceerr"
	"github.com/CesarCoelho/xtcetools-sub001/internal/xtcepath"
)

var (
	// ErrDuplicateName is returned when an edit would give two siblings the
	// same name.
	ErrDuplicateName = errors.New("space system name already used by a sibling")
	// ErrInvalidEdit is returned for structurally impossible edits, such as
	// moving a SpaceSystem below itself.
	ErrInvalidEdit = errors.New("invalid tree edit")
)

// Tree is the Space System hierarchy of one document.
type Tree struct {
	root       *SpaceSystem
	generation uint64
}

// NewTree makes root the root of a new tree and computes all cached paths.
func NewTree(root *SpaceSystem) *Tree {
	root.parent = nil
	root.isRoot = true
	root.refreshPaths()
	return &Tree{root: root}
}

// Root returns the root SpaceSystem.
func (t *Tree) Root() *SpaceSystem {
	return t.root
}

// Generation counts structural edits. Values derived from paths may be
// cached as long as the generation they were computed at is unchanged.
func (t *Tree) Generation() uint64 {
	return t.generation
}

// Walk visits every SpaceSystem depth-first in document order until fn
// returns false.
func (t *Tree) Walk(fn func(*SpaceSystem) bool) {
	var visit func(ss *SpaceSystem) bool
	visit = func(ss *SpaceSystem) bool {
		if !fn(ss) {
			return false
		}
		for _, c := range ss.children {
			if !visit(c) {
				return false
			}
		}
		return true
	}
	visit(t.root)
}

// Lookup returns the SpaceSystem at the absolute path p.
func (t *Tree) Lookup(p string) (*SpaceSystem, bool) {
	normalized, err := xtcepath.Normalize(p)
	if err != nil {
		return nil, false
	}
	segments, _, err := xtcepath.Split(normalized)
	if err != nil || segments[0] != t.root.Name {
		return nil, false
	}

	current := t.root
	for _, name := range segments[1:] {
		next, ok := current.Child(name)
		if !ok {
			return nil, false
		}
		current = next
	}
	return current, true
}

// FindParameter returns the parameter whose full path is fullPath.
func (t *Tree) FindParameter(fullPath string) (*Parameter, bool) {
	ss, name, ok := t.entityParent(fullPath)
	if !ok {
		return nil, false
	}
	return ss.Parameter(name)
}

// FindParameterType returns the telemetry type whose full path is fullPath.
func (t *Tree) FindParameterType(fullPath string) (*TypeDefinition, bool) {
	ss, name, ok := t.entityParent(fullPath)
	if !ok {
		return nil, false
	}
	return ss.ParameterType(name)
}

// FindArgumentType returns the command type whose full path is fullPath.
func (t *Tree) FindArgumentType(fullPath string) (*TypeDefinition, bool) {
	ss, name, ok := t.entityParent(fullPath)
	if !ok {
		return nil, false
	}
	return ss.ArgumentType(name)
}

// FindContainer returns the container whose full path is fullPath.
func (t *Tree) FindContainer(fullPath string) (*Container, bool) {
	ss, name, ok := t.entityParent(fullPath)
	if !ok {
		return nil, false
	}
	return ss.Container(name)
}

// FindMetaCommand returns the command whose full path is fullPath.
func (t *Tree) FindMetaCommand(fullPath string) (*MetaCommand, bool) {
	ss, name, ok := t.entityParent(fullPath)
	if !ok {
		return nil, false
	}
	return ss.MetaCommand(name)
}

// ResolveParameter resolves ref against the context path and returns the
// parameter it names.
func (t *Tree) ResolveParameter(context, ref string) (*Parameter, error) {
	full, err := xtcepath.Resolve(context, ref)
	if err != nil {
		return nil, err
	}
	p, ok := t.FindParameter(full)
	if !ok {
		return nil, xtceerr.Newf(xtceerr.UnresolvedReference, context, ref, "no parameter at %s", full)
	}
	return p, nil
}

// FindByAlias returns every entity carrying an alias equal to a, in
// tree order.
func (t *Tree) FindByAlias(a alias.Alias) []Entity {
	var found []Entity
	t.Walk(func(ss *SpaceSystem) bool {
		if ss.Aliases.Contains(a) {
			found = append(found, ss)
		}
		for _, e := range ss.Entities() {
			if e.NameDesc().Aliases.Contains(a) {
				found = append(found, e)
			}
		}
		return true
	})
	return found
}

// Attach adds child as the last child of parent.
func (t *Tree) Attach(parent, child *SpaceSystem) error {
	if err := xtcepath.ValidName(child.Name); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidEdit, err)
	}
	if child.parent != nil || child.isRoot {
		return fmt.Errorf("%w: %s is already attached", ErrInvalidEdit, child.Name)
	}
	if parent.path == "" {
		return fmt.Errorf("%w: parent %s is not attached", ErrInvalidEdit, parent.Name)
	}
	if _, exists := parent.Child(child.Name); exists {
		return fmt.Errorf("%w: %s under %s", ErrDuplicateName, child.Name, parent.Path())
	}
	child.parent = parent
	parent.children = append(parent.children, child)
	child.refreshPaths()
	t.generation++
	return nil
}

// Rename gives ss a new name and refreshes every path below it.
func (t *Tree) Rename(ss *SpaceSystem, name string) error {
	if err := xtcepath.ValidName(name); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidEdit, err)
	}
	if name == ss.Name {
		return nil
	}
	if ss.parent != nil {
		if _, exists := ss.parent.Child(name); exists {
			return fmt.Errorf("%w: %s under %s", ErrDuplicateName, name, ss.parent.Path())
		}
	}
	ss.Name = name
	ss.refreshPaths()
	t.generation++
	return nil
}

// Move re-parents ss under newParent.
func (t *Tree) Move(ss, newParent *SpaceSystem) error {
	if ss == t.root {
		return fmt.Errorf("%w: the root space system cannot be moved", ErrInvalidEdit)
	}
	if ss.path == "" || newParent.path == "" {
		return fmt.Errorf("%w: %s and %s must both be attached", ErrInvalidEdit, ss.Name, newParent.Name)
	}
	for p := newParent; p != nil; p = p.parent {
		if p == ss {
			return fmt.Errorf("%w: cannot move %s below itself", ErrInvalidEdit, ss.Path())
		}
	}
	if ss.parent == newParent {
		return nil
	}
	if _, exists := newParent.Child(ss.Name); exists {
		return fmt.Errorf("%w: %s under %s", ErrDuplicateName, ss.Name, newParent.Path())
	}

	ss.parent.removeChild(ss)
	ss.parent = newParent
	newParent.children = append(newParent.children, ss)
	ss.refreshPaths()
	t.generation++
	return nil
}

// Remove detaches ss and its subtree from the tree. Detached nodes and their
// entities have empty paths until they are attached again.
func (t *Tree) Remove(ss *SpaceSystem) error {
	if ss == t.root {
		return fmt.Errorf("%w: the root space system cannot be removed", ErrInvalidEdit)
	}
	if ss.parent == nil {
		return fmt.Errorf("%w: %s is not attached", ErrInvalidEdit, ss.Name)
	}
	ss.parent.removeChild(ss)
	ss.parent = nil
	ss.refreshPaths()
	t.generation++
	return nil
}

func (t *Tree) entityParent(fullPath string) (*SpaceSystem, string, bool) {
	normalized, err := xtcepath.Normalize(fullPath)
	if err != nil {
		return nil, "", false
	}
	ssPath, name, ok := xtcepath.SplitEntity(normalized)
	if !ok {
		return nil, "", false
	}
	ss, ok := t.Lookup(ssPath)
	if !ok {
		return nil, "", false
	}
	return ss, name, true
}

func (ss *SpaceSystem) removeChild(child *SpaceSystem) {
	for i, c := range ss.children {
		if c == child {
			ss.children = append(ss.children[:i], ss.children[i+1:]...)
			return
		}
	}
}
