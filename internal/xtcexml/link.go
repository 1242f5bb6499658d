package xtcexml

import (
	"github.com/CesarCoelho/xtcetools-sub001/internal/xtce"
	"github.com/CesarCoelho/xtcetools-sub001/internal/xtcepath"
)

type typeFinder func(fullPath string) (*xtce.TypeDefinition, bool)

// link resolves every type reference in the tree, parses the deferred
// initial values and reports duplicate alias namespaces.
func (b *builder) link(tree *xtce.Tree) {
	tree.Walk(func(ss *xtce.SpaceSystem) bool {
		for _, t := range ss.ParameterTypes {
			b.linkType(t, tree.FindParameterType)
		}
		for _, t := range ss.ArgumentTypes {
			b.linkType(t, tree.FindArgumentType)
		}
		for _, p := range ss.Parameters {
			p.Type = b.resolveType(ss.Path(), p.FullPath(), p.TypeRef, tree.FindParameterType)
			if raw, ok := b.paramInitial[p]; ok {
				v := xtce.ParseInitialValue(p.Type, raw)
				p.InitialValue = &v
			}
		}
		for _, mc := range ss.MetaCommands {
			for _, a := range mc.Arguments {
				a.Type = b.resolveType(ss.Path(), mc.FullPath()+xtcepath.Delimiter+a.Name, a.TypeRef, tree.FindArgumentType)
				if raw, ok := b.argInitial[a]; ok {
					v := xtce.ParseInitialValue(a.Type, raw)
					a.InitialValue = &v
				}
			}
		}

		b.checkAliases(ss)
		for _, e := range ss.Entities() {
			b.checkAliases(e)
		}
		return true
	})
}

func (b *builder) linkType(t *xtce.TypeDefinition, find typeFinder) {
	context := t.SpaceSystemPath()
	if t.BaseTypeRef != "" {
		t.BaseType = b.resolveType(context, t.FullPath(), t.BaseTypeRef, find)
	}
	switch d := t.Detail.(type) {
	case *xtce.AggregateType:
		for _, m := range d.Members {
			m.Type = b.resolveType(context, t.FullPath()+xtcepath.Delimiter+m.Name, m.TypeRef, find)
		}
	case *xtce.ArrayType:
		d.ElementType = b.resolveType(context, t.FullPath(), d.ElementTypeRef, find)
	}
}

func (b *builder) resolveType(context, item, ref string, find typeFinder) *xtce.TypeDefinition {
	if ref == "" {
		return nil
	}
	full, err := xtcepath.Resolve(context, ref)
	if err != nil {
		b.stats.unresolved++
		b.logger.Warn("Malformed type reference.", "item", item, "ref", ref, "error", err)
		return nil
	}
	t, ok := find(full)
	if !ok {
		b.stats.unresolved++
		b.logger.Warn("Unresolved type reference.", "item", item, "ref", ref, "resolved", full)
		return nil
	}
	return t
}

func (b *builder) checkAliases(e xtce.Entity) {
	if dups := e.NameDesc().Aliases.DuplicateNamespaces(); len(dups) > 0 {
		b.logger.Warn("Duplicate alias namespaces, the first alias wins.", "item", e.FullPath(), "namespaces", dups)
	}
}
