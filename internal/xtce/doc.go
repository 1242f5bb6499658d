// Package xtce holds the in-memory model of an XTCE document: a tree of Space
// Systems and the named entities filed in them.
//
// # Ownership
//
// The Tree owns every SpaceSystem and, through them, every entity. Entities
// keep non-owning back-references to the SpaceSystem they are filed in, and
// typed entities point at shared TypeDefinition values. Many parameters may
// reference the same type; types are read-only once a document is loaded.
//
// # Paths
//
// Each SpaceSystem caches its absolute path ("/Root/Sub"). The cache is
// rebuilt for the whole affected subtree whenever a SpaceSystem is attached,
// renamed or moved, so reading a path never writes. Entity paths are derived
// from their SpaceSystem and therefore follow moves automatically.
//
// # Concurrency
//
// The model itself performs no locking. Any number of readers may query a
// Tree concurrently as long as no edit runs at the same time; internal/engine
// provides the lock that serializes edits against readers.
package xtce
