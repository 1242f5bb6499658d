package xtce

// ContainerKind distinguishes telemetry and command containers.
type ContainerKind uint8

const (
	SequenceContainerKind ContainerKind = iota
	CommandContainerKind
)

// String returns the XTCE element name of the kind.
func (k ContainerKind) String() string {
	if k == CommandContainerKind {
		return "CommandContainer"
	}
	return "SequenceContainer"
}

// EntryKind identifies what an Entry refers to.
type EntryKind uint8

const (
	ParameterRefEntry EntryKind = iota
	ArrayParameterRefEntry
	ArgumentRefEntry
	ContainerRefEntry
	FixedValueEntry
)

// String returns the XTCE element name of the entry kind.
func (k EntryKind) String() string {
	switch k {
	case ParameterRefEntry:
		return "ParameterRefEntry"
	case ArrayParameterRefEntry:
		return "ArrayParameterRefEntry"
	case ArgumentRefEntry:
		return "ArgumentRefEntry"
	case ContainerRefEntry:
		return "ContainerRefEntry"
	case FixedValueEntry:
		return "FixedValueEntry"
	default:
		return "UnknownEntry"
	}
}

// Entry is one element of a container's entry list. Ref is the raw reference
// text and is empty for fixed values.
type Entry struct {
	Kind        EntryKind
	Ref         string
	Name        string
	BinaryValue string
	SizeInBits  int
}

// Container is a SequenceContainer or a CommandContainer. Its storage path
// comes from the SpaceSystem it is filed in; its inheritance comes from
// BaseRef, which names at most one base container.
type Container struct {
	NameDescription
	Kind     ContainerKind
	Abstract bool
	BaseRef  string
	Entries  []Entry

	metaCommand *MetaCommand
}

// MetaCommand returns the command that owns c, or nil for containers filed in
// a ContainerSet or CommandContainerSet.
func (c *Container) MetaCommand() *MetaCommand {
	return c.metaCommand
}

// HasBase reports whether c names a base container.
func (c *Container) HasBase() bool {
	return c.BaseRef != ""
}
