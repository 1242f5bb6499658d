// Package alias models the alternate names an XTCE entity carries, each scoped
// to a free-form namespace string such as "MIL-STD-1553" or "ground".
package alias

import "slices"

// FullNameSeparator joins namespace and alias in FullName.
const FullNameSeparator = "::"

// Alias is one alternate name of an entity.
type Alias struct {
	Name      string
	Namespace string
}

// FullName renders the alias as "<namespace>::<alias>".
func (a Alias) FullName() string {
	return a.Namespace + FullNameSeparator + a.Name
}

// Equal reports whether both the name and the namespace match exactly.
func (a Alias) Equal(other Alias) bool {
	return a.Name == other.Name && a.Namespace == other.Namespace
}

// Set is the ordered list of aliases of one entity. The schema expects at
// most one alias per namespace but does not enforce it, so Set keeps
// duplicates and Lookup returns the first one.
type Set struct {
	items []Alias
}

// New builds a Set from pairs in document order.
func New(pairs ...Alias) Set {
	if len(pairs) == 0 {
		return Set{}
	}
	return Set{items: slices.Clone(pairs)}
}

// Len returns the number of aliases, duplicates included.
func (s Set) Len() int {
	return len(s.items)
}

// All returns a copy of the aliases in document order.
func (s Set) All() []Alias {
	return slices.Clone(s.items)
}

// Add appends an alias.
func (s *Set) Add(a Alias) {
	s.items = append(s.items, a)
}

// Lookup returns the first alias in namespace.
func (s Set) Lookup(namespace string) (Alias, bool) {
	for _, a := range s.items {
		if a.Namespace == namespace {
			return a, true
		}
	}
	return Alias{}, false
}

// Contains reports whether an equal alias is present.
func (s Set) Contains(a Alias) bool {
	return slices.ContainsFunc(s.items, a.Equal)
}

// FullNames returns FullName of every alias in document order.
func (s Set) FullNames() []string {
	names := make([]string, 0, len(s.items))
	for _, a := range s.items {
		names = append(names, a.FullName())
	}
	return names
}

// Namespaces returns the distinct namespaces in first-seen order.
func (s Set) Namespaces() []string {
	var namespaces []string
	seen := make(map[string]struct{}, len(s.items))
	for _, a := range s.items {
		if _, ok := seen[a.Namespace]; ok {
			continue
		}
		seen[a.Namespace] = struct{}{}
		namespaces = append(namespaces, a.Namespace)
	}
	return namespaces
}

// DuplicateNamespaces returns every namespace holding more than one alias,
// in first-seen order.
func (s Set) DuplicateNamespaces() []string {
	counts := make(map[string]int, len(s.items))
	for _, a := range s.items {
		counts[a.Namespace]++
	}
	var dups []string
	for _, ns := range s.Namespaces() {
		if counts[ns] > 1 {
			dups = append(dups, ns)
		}
	}
	return dups
}
