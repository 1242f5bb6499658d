// Package report renders the resolved view of a loaded document: effective
// descriptions and initial values, valid ranges, aliases and containers
// ordered by inheritance path.
package report

import (
	"context"
	"slices"

	"github.com/CesarCoelho/xtcetools-sub001/internal/alias"
	"github.com/CesarCoelho/xtcetools-sub001/internal/ctxlog"
	"github.com/CesarCoelho/xtcetools-sub001/internal/effective"
	"github.com/CesarCoelho/xtcetools-sub001/internal/inheritance"
	"github.com/CesarCoelho/xtcetools-sub001/internal/validrange"
	"github.com/CesarCoelho/xtcetools-sub001/internal/xtce"
	"github.com/CesarCoelho/xtcetools-sub001/internal/xtcepath"
)

// Source gives read access to a tree. *engine.Manager implements it.
type Source interface {
	View(fn func(*xtce.Tree) error) error
}

// Options tune what a report includes.
type Options struct {
	// AliasNamespaces restricts the aliases listed to these namespaces.
	// Empty lists every alias.
	AliasNamespaces []string
}

// Report is the resolved view of one document.
type Report struct {
	Document     string        `yaml:"document,omitempty" json:"document,omitempty"`
	Root         string        `yaml:"root" json:"root"`
	SpaceSystems []SpaceSystem `yaml:"space_systems" json:"space_systems"`
}

// SpaceSystem lists the resolved content of one Space System.
type SpaceSystem struct {
	Path        string      `yaml:"path" json:"path"`
	Description string      `yaml:"description,omitempty" json:"description,omitempty"`
	Aliases     []string    `yaml:"aliases,omitempty" json:"aliases,omitempty"`
	Parameters  []Item      `yaml:"parameters,omitempty" json:"parameters,omitempty"`
	Commands    []Command   `yaml:"commands,omitempty" json:"commands,omitempty"`
	Containers  []Container `yaml:"containers,omitempty" json:"containers,omitempty"`
}

// Item is a parameter, argument or aggregate member with its effective
// attributes.
type Item struct {
	Name         string   `yaml:"name" json:"name"`
	Path         string   `yaml:"path,omitempty" json:"path,omitempty"`
	Type         string   `yaml:"type,omitempty" json:"type,omitempty"`
	Category     string   `yaml:"category,omitempty" json:"category,omitempty"`
	Description  string   `yaml:"description,omitempty" json:"description,omitempty"`
	InitialValue string   `yaml:"initial_value,omitempty" json:"initial_value,omitempty"`
	Range        *Range   `yaml:"range,omitempty" json:"range,omitempty"`
	Aliases      []string `yaml:"aliases,omitempty" json:"aliases,omitempty"`
	Members      []Item   `yaml:"members,omitempty" json:"members,omitempty"`
}

// Range is an applied valid range.
type Range struct {
	Interval string `yaml:"interval" json:"interval"`
	Basis    string `yaml:"basis" json:"basis"`
}

// Command is a meta command with its arguments.
type Command struct {
	Name        string `yaml:"name" json:"name"`
	Path        string `yaml:"path" json:"path"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
	Arguments   []Item `yaml:"arguments,omitempty" json:"arguments,omitempty"`
	Container   string `yaml:"container,omitempty" json:"container,omitempty"`
}

// Container is a container placed in its inheritance chain.
type Container struct {
	Name            string  `yaml:"name" json:"name"`
	Path            string  `yaml:"path" json:"path"`
	Kind            string  `yaml:"kind" json:"kind"`
	Abstract        bool    `yaml:"abstract,omitempty" json:"abstract,omitempty"`
	InheritancePath string  `yaml:"inheritance_path,omitempty" json:"inheritance_path,omitempty"`
	Error           string  `yaml:"error,omitempty" json:"error,omitempty"`
	Entries         []Entry `yaml:"entries,omitempty" json:"entries,omitempty"`
}

// Entry is one container entry with its reference resolved.
type Entry struct {
	Kind     string `yaml:"kind" json:"kind"`
	Ref      string `yaml:"ref,omitempty" json:"ref,omitempty"`
	Resolved string `yaml:"resolved,omitempty" json:"resolved,omitempty"`
	Name     string `yaml:"name,omitempty" json:"name,omitempty"`
	Value    string `yaml:"value,omitempty" json:"value,omitempty"`
}

// Build walks the tree held by src and assembles its report.
func Build(ctx context.Context, src Source, opts Options) (*Report, error) {
	logger := ctxlog.FromContext(ctx)
	r := &Report{}

	err := src.View(func(tree *xtce.Tree) error {
		r.Root = tree.Root().Path()
		lookup := inheritance.TreeLookup(tree)
		tree.Walk(func(ss *xtce.SpaceSystem) bool {
			r.SpaceSystems = append(r.SpaceSystems, buildSpaceSystem(ctx, ss, lookup, opts))
			return ctx.Err() == nil
		})
		return ctx.Err()
	})
	if err != nil {
		return nil, err
	}

	logger.Debug("Report built.", "root", r.Root, "space_systems", len(r.SpaceSystems))
	return r, nil
}

func buildSpaceSystem(ctx context.Context, ss *xtce.SpaceSystem, lookup inheritance.Lookup, opts Options) SpaceSystem {
	out := SpaceSystem{
		Path:        ss.Path(),
		Description: firstNonEmpty(ss.ShortDescription, ss.LongDescription),
		Aliases:     aliases(ss.Aliases, opts),
	}
	for _, p := range ss.Parameters {
		item := typedItem(p, p.FullPath(), nil)
		item.Aliases = aliases(p.Aliases, opts)
		out.Parameters = append(out.Parameters, item)
	}
	for _, mc := range ss.MetaCommands {
		cmd := Command{
			Name:        mc.Name,
			Path:        mc.FullPath(),
			Description: firstNonEmpty(mc.ShortDescription, mc.LongDescription),
		}
		for _, a := range mc.Arguments {
			item := typedItem(a, a.FullPath(), nil)
			item.Aliases = aliases(a.Aliases, opts)
			cmd.Arguments = append(cmd.Arguments, item)
		}
		if mc.CommandContainer != nil {
			cmd.Container = mc.CommandContainer.Name
		}
		out.Commands = append(out.Commands, cmd)
	}
	out.Containers = containers(ctx, ss, lookup)
	return out
}

// typedItem expands aggregate members recursively; seen holds the aggregate
// types already being expanded so self-referencing aggregates terminate.
func typedItem(item xtce.TypedItem, path string, seen map[*xtce.TypeDefinition]bool) Item {
	out := Item{
		Name:         item.ItemName(),
		Path:         path,
		Description:  effective.DescriptionText(item),
		InitialValue: effective.InitialValueText(item),
	}

	t := item.ItemType()
	if t == nil {
		return out
	}
	out.Type = t.FullPath()
	out.Category = t.Category().String()
	if r := validrange.Of(t); r.Applied {
		out.Range = &Range{Interval: r.String(), Basis: r.Basis()}
	}
	if agg, ok := t.Aggregate(); ok && !seen[t] {
		if seen == nil {
			seen = make(map[*xtce.TypeDefinition]bool)
		}
		seen[t] = true
		for _, m := range agg.Members {
			out.Members = append(out.Members, typedItem(m, "", seen))
		}
		delete(seen, t)
	}
	return out
}

// containers lists the containers of ss ordered by inheritance path. When
// a path cannot be computed the affected container is listed last with its
// error and the rest keep their order.
func containers(ctx context.Context, ss *xtce.SpaceSystem, lookup inheritance.Lookup) []Container {
	logger := ctxlog.FromContext(ctx)

	type placed struct {
		c    *xtce.Container
		path inheritance.Path
		err  error
	}
	all := ss.Containers()
	items := make([]placed, 0, len(all))
	for _, c := range all {
		p, err := inheritance.PathOf(c, lookup)
		if err != nil {
			logger.Warn("Inheritance path could not be computed.", "container", c.FullPath(), "error", err)
		}
		items = append(items, placed{c: c, path: p, err: err})
	}
	slices.SortStableFunc(items, func(a, b placed) int {
		switch {
		case a.err != nil && b.err != nil:
			return 0
		case a.err != nil:
			return 1
		case b.err != nil:
			return -1
		}
		return inheritance.Compare(a.path, b.path)
	})

	var out []Container
	for _, it := range items {
		c := Container{
			Name:     it.c.Name,
			Path:     it.c.FullPath(),
			Kind:     it.c.Kind.String(),
			Abstract: it.c.Abstract,
		}
		if it.err != nil {
			c.Error = it.err.Error()
		} else {
			c.InheritancePath = it.path.String()
		}
		for _, e := range it.c.Entries {
			c.Entries = append(c.Entries, entry(it.c, e))
		}
		out = append(out, c)
	}
	return out
}

func entry(c *xtce.Container, e xtce.Entry) Entry {
	out := Entry{Kind: e.Kind.String(), Ref: e.Ref, Name: e.Name, Value: e.BinaryValue}
	switch e.Kind {
	case xtce.ParameterRefEntry, xtce.ArrayParameterRefEntry, xtce.ContainerRefEntry:
		out.Resolved = xtcepath.ResolveString(c.SpaceSystemPath(), e.Ref)
	case xtce.ArgumentRefEntry:
		if mc := c.MetaCommand(); mc != nil {
			if a, ok := mc.Argument(e.Ref); ok {
				out.Resolved = a.FullPath()
			}
		}
	}
	return out
}

func aliases(set alias.Set, opts Options) []string {
	var out []string
	for _, a := range set.All() {
		if len(opts.AliasNamespaces) == 0 || slices.Contains(opts.AliasNamespaces, a.Namespace) {
			out = append(out, a.FullName())
		}
	}
	return out
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
