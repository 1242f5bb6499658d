package inheritance

import (
	"github.com/CesarCoelho/xtcetools-sub001/internal/xtce"
	"github.com/CesarCoelho/xtcetools-sub001/internal/xtcepath"
)

// Contains reports whether c lists p in its own entry list. Entries
// inherited from base containers and parameters reached through nested
// container references do not count.
func Contains(c *xtce.Container, p *xtce.Parameter) bool {
	if c == nil || p == nil {
		return false
	}
	target := p.FullPath()
	if target == "" {
		return false
	}

	context := c.SpaceSystemPath()
	for _, e := range c.Entries {
		if e.Kind != xtce.ParameterRefEntry && e.Kind != xtce.ArrayParameterRefEntry {
			continue
		}
		if xtcepath.ResolveString(context, e.Ref) == target {
			return true
		}
	}
	return false
}

// ContainsArgument reports whether the command container c lists a directly.
// Argument references are names local to the owning command.
func ContainsArgument(c *xtce.Container, a *xtce.Argument) bool {
	if c == nil || a == nil || c.MetaCommand() == nil || c.MetaCommand() != a.MetaCommand() {
		return false
	}
	for _, e := range c.Entries {
		if e.Kind == xtce.ArgumentRefEntry && e.Ref == a.Name {
			return true
		}
	}
	return false
}
