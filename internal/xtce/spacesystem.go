package xtce

import "github.com/CesarCoelho/xtcetools-sub001/internal/xtcepath"

// SpaceSystem is one namespace node of the tree.
type SpaceSystem struct {
	NameDescription

	ParameterTypes     []*TypeDefinition
	Parameters         []*Parameter
	SequenceContainers []*Container
	Streams            []*Stream
	ArgumentTypes      []*TypeDefinition
	MetaCommands       []*MetaCommand
	CommandContainers  []*Container

	parent   *SpaceSystem
	children []*SpaceSystem
	path     string
	isRoot   bool
}

// NewSpaceSystem returns a detached SpaceSystem. It has no path until it
// becomes part of a tree through NewTree or Tree.Attach.
func NewSpaceSystem(name string) *SpaceSystem {
	return &SpaceSystem{NameDescription: NameDescription{Name: name}}
}

// Path returns the cached absolute path of ss, or "" when ss is detached.
func (ss *SpaceSystem) Path() string {
	return ss.path
}

// FullPath returns Path so SpaceSystem satisfies Entity.
func (ss *SpaceSystem) FullPath() string {
	return ss.path
}

// Parent returns the parent SpaceSystem, nil for the root.
func (ss *SpaceSystem) Parent() *SpaceSystem {
	return ss.parent
}

// Children returns the child SpaceSystems in document order. The slice must
// not be modified.
func (ss *SpaceSystem) Children() []*SpaceSystem {
	return ss.children
}

// Child returns the child named name.
func (ss *SpaceSystem) Child(name string) (*SpaceSystem, bool) {
	for _, c := range ss.children {
		if c.Name == name {
			return c, true
		}
	}
	return nil, false
}

// AddParameterType files t as a telemetry type.
func (ss *SpaceSystem) AddParameterType(t *TypeDefinition) {
	t.Space = TelemetrySpace
	t.setOwner(ss)
	ss.ParameterTypes = append(ss.ParameterTypes, t)
}

// AddArgumentType files t as a command type.
func (ss *SpaceSystem) AddArgumentType(t *TypeDefinition) {
	t.Space = CommandSpace
	t.setOwner(ss)
	ss.ArgumentTypes = append(ss.ArgumentTypes, t)
}

// AddParameter files p.
func (ss *SpaceSystem) AddParameter(p *Parameter) {
	p.owner = ss
	ss.Parameters = append(ss.Parameters, p)
}

// AddSequenceContainer files c as a telemetry container.
func (ss *SpaceSystem) AddSequenceContainer(c *Container) {
	c.Kind = SequenceContainerKind
	c.owner = ss
	ss.SequenceContainers = append(ss.SequenceContainers, c)
}

// AddCommandContainer files c in the CommandContainerSet.
func (ss *SpaceSystem) AddCommandContainer(c *Container) {
	c.Kind = CommandContainerKind
	c.owner = ss
	ss.CommandContainers = append(ss.CommandContainers, c)
}

// AddStream files s.
func (ss *SpaceSystem) AddStream(s *Stream) {
	s.owner = ss
	ss.Streams = append(ss.Streams, s)
}

// AddMetaCommand files mc together with its arguments and container.
func (ss *SpaceSystem) AddMetaCommand(mc *MetaCommand) {
	mc.setOwner(ss)
	ss.MetaCommands = append(ss.MetaCommands, mc)
}

// Parameter returns the first parameter named name.
func (ss *SpaceSystem) Parameter(name string) (*Parameter, bool) {
	return findNamed(ss.Parameters, name)
}

// ParameterType returns the first telemetry type named name.
func (ss *SpaceSystem) ParameterType(name string) (*TypeDefinition, bool) {
	return findNamed(ss.ParameterTypes, name)
}

// ArgumentType returns the first command type named name.
func (ss *SpaceSystem) ArgumentType(name string) (*TypeDefinition, bool) {
	return findNamed(ss.ArgumentTypes, name)
}

// MetaCommand returns the first command named name.
func (ss *SpaceSystem) MetaCommand(name string) (*MetaCommand, bool) {
	return findNamed(ss.MetaCommands, name)
}

// Stream returns the first stream named name.
func (ss *SpaceSystem) Stream(name string) (*Stream, bool) {
	return findNamed(ss.Streams, name)
}

// Container returns the first container named name, searching sequence
// containers, then the CommandContainerSet, then the containers of the
// MetaCommands.
func (ss *SpaceSystem) Container(name string) (*Container, bool) {
	if c, ok := findNamed(ss.SequenceContainers, name); ok {
		return c, true
	}
	if c, ok := findNamed(ss.CommandContainers, name); ok {
		return c, true
	}
	for _, mc := range ss.MetaCommands {
		if mc.CommandContainer != nil && mc.CommandContainer.Name == name {
			return mc.CommandContainer, true
		}
	}
	return nil, false
}

// Containers returns every container filed in ss, command containers of
// MetaCommands included.
func (ss *SpaceSystem) Containers() []*Container {
	out := make([]*Container, 0, len(ss.SequenceContainers)+len(ss.CommandContainers)+len(ss.MetaCommands))
	out = append(out, ss.SequenceContainers...)
	out = append(out, ss.CommandContainers...)
	for _, mc := range ss.MetaCommands {
		if mc.CommandContainer != nil {
			out = append(out, mc.CommandContainer)
		}
	}
	return out
}

// Entities returns every named entity filed directly in ss.
func (ss *SpaceSystem) Entities() []Entity {
	var out []Entity
	for _, t := range ss.ParameterTypes {
		out = append(out, t)
	}
	for _, p := range ss.Parameters {
		out = append(out, p)
	}
	for _, s := range ss.Streams {
		out = append(out, s)
	}
	for _, t := range ss.ArgumentTypes {
		out = append(out, t)
	}
	for _, mc := range ss.MetaCommands {
		out = append(out, mc)
		for _, a := range mc.Arguments {
			out = append(out, a)
		}
	}
	for _, c := range ss.Containers() {
		out = append(out, c)
	}
	return out
}

type named interface {
	NameDesc() *NameDescription
}

func findNamed[T named](items []T, name string) (T, bool) {
	for _, item := range items {
		if item.NameDesc().Name == name {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// refreshPaths recomputes the cached path of ss and all its descendants.
// Nodes outside a tree get an empty path.
func (ss *SpaceSystem) refreshPaths() {
	switch {
	case ss.parent != nil && ss.parent.path != "":
		ss.path = ss.parent.path + xtcepath.Delimiter + ss.Name
	case ss.parent == nil && ss.isRoot:
		ss.path = xtcepath.Join(ss.Name)
	default:
		ss.path = ""
	}
	ss.owner = ss.parent
	for _, c := range ss.children {
		c.refreshPaths()
	}
}
