// Package inheritance computes where a container sits in its base-container
// chain, which is independent of where it is stored in the Space System tree.
//
// A container's inheritance path lists the names of its ancestors, root of
// the chain first, followed by its own name, joined by Delimiter. Storage
// paths use "/"; inheritance paths use "." so the two can never be confused.
package inheritance
