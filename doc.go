// Package disjointset implements a disjoint-set (union-find) forest over a
// growing set of comparable elements.
//
// Each element belongs to exactly one equivalence class. Classes are stored
// as rooted trees; the root of a tree is the representative of its class.
// Lookups apply path compression and merges use union by rank, so a sequence
// of operations runs in amortized near-constant time per operation.
//
// Basic usage:
//
//	f := disjointset.New(1, 2, 3, 4)
//	_ = f.Union(1, 3)
//	_ = f.Union(2, 4)
//	rep, err := f.Find(3)    // rep == 1
//	n := f.NumClasses()      // n == 2
//
// Lookups of elements the forest does not manage return an error matching
// [ErrNotFound]. Whether [Forest.Union] rejects or registers unknown
// elements is controlled by [Config.UnknownElements]:
//
//	cfg := disjointset.DefaultConfig()
//	cfg.UnknownElements = disjointset.UnknownAdd
//	f, err := disjointset.NewWithConfig(cfg, "a", "b")
//
// A Forest is not safe for concurrent use. Find and NumClasses rewrite
// internal links, so even read-only looking calls must be serialized.
package disjointset
