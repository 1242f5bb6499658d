package inheritance

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/CesarCoelho/xtcetools-sub001/internal/xtce"
	"github.com/CesarCoelho/xtcetools-sub001/internal/xtceerr"
	"github.com/CesarCoelho/xtcetools-sub001/internal/xtcepath"
)

// Delimiter joins container names in an inheritance path.
const Delimiter = "."

// Lookup finds a container by its absolute storage path.
type Lookup func(fullPath string) (*xtce.Container, bool)

// TreeLookup adapts a tree into a Lookup.
func TreeLookup(t *xtce.Tree) Lookup {
	return t.FindContainer
}

// Path is the inheritance path of one container.
type Path struct {
	// Names holds the chain root first; the last name is the container's own.
	Names []string
	// Storage is the container's full storage path, used to break ties.
	Storage string
}

// String joins the chain with Delimiter.
func (p Path) String() string {
	return strings.Join(p.Names, Delimiter)
}

// Depth is the number of ancestors above the container.
func (p Path) Depth() int {
	if len(p.Names) == 0 {
		return 0
	}
	return len(p.Names) - 1
}

// Chain returns c and all of its base containers, root of the chain first.
func Chain(c *xtce.Container, lookup Lookup) ([]*xtce.Container, error) {
	if c == nil {
		return nil, xtceerr.New(xtceerr.UnresolvedReference, "", "", "no container given")
	}
	visited := map[*xtce.Container]bool{c: true}
	chain := []*xtce.Container{c}

	for current := c; current.HasBase(); {
		context := current.SpaceSystemPath()
		full, err := xtcepath.Resolve(context, current.BaseRef)
		if err != nil {
			return nil, err
		}
		base, ok := lookup(full)
		if !ok {
			return nil, xtceerr.Newf(xtceerr.UnresolvedReference, context, current.BaseRef,
				"base container of %s not found at %s", current.Name, full)
		}
		if visited[base] {
			return nil, xtceerr.Newf(xtceerr.CyclicInheritance, context, current.BaseRef,
				"base container chain of %s loops back to %s", c.Name, full)
		}
		visited[base] = true
		chain = append(chain, base)
		current = base
	}

	slices.Reverse(chain)
	return chain, nil
}

// PathOf computes the inheritance path of c.
func PathOf(c *xtce.Container, lookup Lookup) (Path, error) {
	chain, err := Chain(c, lookup)
	if err != nil {
		return Path{}, err
	}
	names := make([]string, len(chain))
	for i, link := range chain {
		names[i] = link.Name
	}
	return Path{Names: names, Storage: c.FullPath()}, nil
}

// Compare orders paths lexically by their inheritance string, then by
// storage path so that distinct containers never compare equal.
func Compare(a, b Path) int {
	if c := strings.Compare(a.String(), b.String()); c != 0 {
		return c
	}
	return cmp.Compare(a.Storage, b.Storage)
}

// Sort orders containers in place by inheritance path. The slice is left
// untouched when any path cannot be computed.
func Sort(containers []*xtce.Container, lookup Lookup) error {
	paths := make(map[*xtce.Container]Path, len(containers))
	for _, c := range containers {
		p, err := PathOf(c, lookup)
		if err != nil {
			return fmt.Errorf("error computing inheritance path of %s: %w", storagePath(c), err)
		}
		paths[c] = p
	}
	slices.SortStableFunc(containers, func(a, b *xtce.Container) int {
		return Compare(paths[a], paths[b])
	})
	return nil
}

func storagePath(c *xtce.Container) string {
	if c == nil {
		return "<nil>"
	}
	return c.FullPath()
}
