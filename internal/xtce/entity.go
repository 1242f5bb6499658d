package xtce

import (
	"github.com/CesarCoelho/xtcetools-sub001/internal/alias"
	"github.com/CesarCoelho/xtcetools-sub001/internal/xtcepath"
	"github.com/zclconf/go-cty/cty"
)

// Entity is implemented by every named item filed in a SpaceSystem.
type Entity interface {
	NameDesc() *NameDescription
	FullPath() string
}

// AncillaryData is an opaque key/value pair attached to an entity.
type AncillaryData struct {
	Name     string
	Value    string
	MimeType string
	Href     string
}

// NameDescription is the part shared by all named entities.
type NameDescription struct {
	Name             string
	ShortDescription string
	LongDescription  string
	Aliases          alias.Set
	Ancillary        []AncillaryData

	owner *SpaceSystem
}

// NameDesc returns n itself so embedding types satisfy Entity.
func (n *NameDescription) NameDesc() *NameDescription {
	return n
}

// SpaceSystem returns the SpaceSystem the entity is filed in, or nil.
func (n *NameDescription) SpaceSystem() *SpaceSystem {
	return n.owner
}

// SpaceSystemPath returns the absolute path of the containing SpaceSystem.
// It never includes the entity's own name and is empty when unattached.
func (n *NameDescription) SpaceSystemPath() string {
	if n.owner == nil {
		return ""
	}
	return n.owner.Path()
}

// FullPath returns SpaceSystemPath joined with the entity name, or "" when
// the entity is not attached to a tree.
func (n *NameDescription) FullPath() string {
	if n.owner == nil || n.owner.path == "" {
		return ""
	}
	return n.owner.Path() + xtcepath.Delimiter + n.Name
}

// AncillaryValue returns the value of the first ancillary entry named name.
func (n *NameDescription) AncillaryValue(name string) (string, bool) {
	for _, a := range n.Ancillary {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// Parameter is a telemetry value.
type Parameter struct {
	NameDescription
	TypeRef      string
	Type         *TypeDefinition
	InitialValue *cty.Value
	ReadOnly     bool
}

// Argument is a command input value. Its SpaceSystem is the one holding its
// MetaCommand.
type Argument struct {
	NameDescription
	TypeRef      string
	Type         *TypeDefinition
	InitialValue *cty.Value

	metaCommand *MetaCommand
}

// MetaCommand returns the command that declares the argument.
func (a *Argument) MetaCommand() *MetaCommand {
	return a.metaCommand
}

// Member is one field of an aggregate type. The schema gives members no
// description or initial value of their own; both come from the member type.
type Member struct {
	Name    string
	TypeRef string
	Type    *TypeDefinition

	aggregate *TypeDefinition
}

// Aggregate returns the aggregate type that declares the member.
func (m *Member) Aggregate() *TypeDefinition {
	return m.aggregate
}

// SpaceSystemPath returns the path of the SpaceSystem holding the aggregate.
func (m *Member) SpaceSystemPath() string {
	if m.aggregate == nil {
		return ""
	}
	return m.aggregate.SpaceSystemPath()
}

// StreamKind distinguishes the XTCE stream flavors.
type StreamKind uint8

const (
	FixedFrameStream StreamKind = iota
	VariableFrameStream
	CustomStream
)

// String returns the XTCE element name of the stream kind.
func (k StreamKind) String() string {
	switch k {
	case FixedFrameStream:
		return "FixedFrameStream"
	case VariableFrameStream:
		return "VariableFrameStream"
	case CustomStream:
		return "CustomStream"
	default:
		return "UnknownStream"
	}
}

// Stream is a telemetry frame stream.
type Stream struct {
	NameDescription
	Kind         StreamKind
	ContainerRef string
}

// MetaCommand is a command definition with its arguments and container.
type MetaCommand struct {
	NameDescription
	Abstract           bool
	BaseMetaCommandRef string
	Arguments          []*Argument
	CommandContainer   *Container
}

// AddArgument appends arg and records mc as its declaring command.
func (mc *MetaCommand) AddArgument(arg *Argument) {
	arg.metaCommand = mc
	arg.owner = mc.owner
	mc.Arguments = append(mc.Arguments, arg)
}

// SetCommandContainer installs c as the command's container.
func (mc *MetaCommand) SetCommandContainer(c *Container) {
	c.Kind = CommandContainerKind
	c.metaCommand = mc
	c.owner = mc.owner
	mc.CommandContainer = c
}

// Argument returns the first argument named name.
func (mc *MetaCommand) Argument(name string) (*Argument, bool) {
	for _, a := range mc.Arguments {
		if a.Name == name {
			return a, true
		}
	}
	return nil, false
}

func (mc *MetaCommand) setOwner(ss *SpaceSystem) {
	mc.owner = ss
	for _, a := range mc.Arguments {
		a.owner = ss
	}
	if mc.CommandContainer != nil {
		mc.CommandContainer.owner = ss
	}
}

// TypedItem is the closed set of entities whose effective description and
// initial value can be computed: *Parameter, *Argument and *Member.
type TypedItem interface {
	ItemName() string
	ItemType() *TypeDefinition
	isTypedItem()
}

func (p *Parameter) ItemName() string          { return p.Name }
func (p *Parameter) ItemType() *TypeDefinition { return p.Type }
func (*Parameter) isTypedItem()                {}

func (a *Argument) ItemName() string          { return a.Name }
func (a *Argument) ItemType() *TypeDefinition { return a.Type }
func (*Argument) isTypedItem()                {}

func (m *Member) ItemName() string          { return m.Name }
func (m *Member) ItemType() *TypeDefinition { return m.Type }
func (*Member) isTypedItem()                {}
