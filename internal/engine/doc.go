// Package engine is a thread-safe facade over a loaded XTCE tree.
//
// The Manager answers the questions client code asks about a document:
// where a reference points, what an item's effective description and
// initial value are, what a type's valid range is, and where a container
// sits in its inheritance chain. Queries are pure functions of the tree
// and run concurrently under a read lock. Structural edits (add, rename,
// move, remove) take the write lock, refresh the cached paths of the
// affected subtree and invalidate memoized inheritance paths.
//
// Pointers handed out by the Manager stay valid across edits, but callers
// that walk the tree directly must do so inside View so the walk does not
// race with an edit.
package engine
