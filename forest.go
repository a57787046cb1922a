package disjointset

import (
	"fmt"
	"strings"
)

// node is one managed element. Nodes live in a dense arena and refer to
// their parent by arena index.
type node[E comparable] struct {
	value  E
	parent int // -1 means "is a root"
	// rank is an upper bound on the height of the subtree rooted here.
	// It is only read on roots and never decreases.
	rank int
}

// Forest is a disjoint-set forest with path compression and union by rank.
// Elements are add-only: once registered an element stays managed for the
// lifetime of the Forest.
//
// A Forest is not safe for concurrent use. Find, Connected and NumClasses
// rewrite parent links, so callers sharing a Forest between goroutines must
// hold one exclusive lock around every call.
type Forest[E comparable] struct {
	nodes []node[E]
	index map[E]int
	cfg   Config
}

// New creates a Forest holding one singleton class per distinct element,
// using [DefaultConfig]. Duplicate elements collapse into a single node.
func New[E comparable](elements ...E) *Forest[E] {
	f, err := NewWithConfig(DefaultConfig(), elements...)
	if err != nil {
		// DefaultConfig always validates.
		panic(err)
	}
	return f
}

// NewWithConfig is like [New] but uses cfg. It returns an error if cfg is
// invalid.
func NewWithConfig[E comparable](cfg Config, elements ...E) (*Forest[E], error) {
	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}
	capacity := max(cfg.Capacity, len(elements))
	f := &Forest[E]{
		nodes: make([]node[E], 0, capacity),
		index: make(map[E]int, capacity),
		cfg:   cfg,
	}
	for _, e := range elements {
		f.Add(e)
	}
	return f, nil
}

// Add registers e as a new singleton class. It is a no-op if e is already
// managed. Add reports whether a new node was created.
func (f *Forest[E]) Add(e E) bool {
	if _, ok := f.index[e]; ok {
		return false
	}
	f.index[e] = len(f.nodes)
	f.nodes = append(f.nodes, node[E]{value: e, parent: -1})
	return true
}

// Len returns the number of managed elements.
func (f *Forest[E]) Len() int {
	return len(f.nodes)
}

// Contains reports whether e is managed by the forest.
func (f *Forest[E]) Contains(e E) bool {
	_, ok := f.index[e]
	return ok
}

// Find returns the representative of the class containing e. It returns an
// error matching [ErrNotFound] if e is not managed.
//
// Every node visited on the way to the root is re-pointed directly at the
// root. This never changes class membership.
func (f *Forest[E]) Find(e E) (E, error) {
	id, ok := f.index[e]
	if !ok {
		var zero E
		return zero, notFound("find", e)
	}
	return f.nodes[f.root(id)].value, nil
}

// root returns the arena id of the root of x's tree, with path compression.
func (f *Forest[E]) root(x int) int {
	// Walk to the root.
	r := x
	for f.nodes[r].parent != -1 {
		r = f.nodes[r].parent
	}
	// Path compression: point all nodes along the path directly to r.
	for f.nodes[x].parent != -1 {
		x, f.nodes[x].parent = f.nodes[x].parent, r
	}
	return r
}

// Union merges the classes containing a and b.
//
// The root with the lower rank is attached under the root with the higher
// rank. On equal ranks b's root is attached under a's root, whose rank then
// grows by one.
//
// If a or b is not managed, Union follows Config.UnknownElements: with
// UnknownReject it returns an error matching [ErrNotFound] and leaves the
// forest unchanged; with UnknownAdd it registers the missing elements as
// singletons before merging.
func (f *Forest[E]) Union(a, b E) error {
	if err := f.prepare(a, b); err != nil {
		return err
	}
	ra := f.root(f.index[a])
	rb := f.root(f.index[b])
	if ra == rb {
		return nil
	}

	switch na, nb := &f.nodes[ra], &f.nodes[rb]; {
	case na.rank < nb.rank:
		na.parent = rb
	case na.rank > nb.rank:
		nb.parent = ra
	default:
		nb.parent = ra
		na.rank++
	}
	return nil
}

// prepare applies the unknown element policy to the arguments of Union.
// Both arguments are checked before anything is mutated.
func (f *Forest[E]) prepare(a, b E) error {
	if f.cfg.UnknownElements == UnknownAdd {
		f.Add(a)
		f.Add(b)
		return nil
	}
	if !f.Contains(a) {
		return notFound("union", a)
	}
	if !f.Contains(b) {
		return notFound("union", b)
	}
	return nil
}

// Connected reports whether a and b belong to the same class. It returns an
// error matching [ErrNotFound] if either element is not managed, regardless
// of Config.UnknownElements.
func (f *Forest[E]) Connected(a, b E) (bool, error) {
	ra, err := f.Find(a)
	if err != nil {
		return false, err
	}
	rb, err := f.Find(b)
	if err != nil {
		return false, err
	}
	return ra == rb, nil
}

// NumClasses returns the number of distinct classes. Every node is resolved
// to its root (compressing paths), so the result always reflects the latest
// Add and Union calls.
func (f *Forest[E]) NumClasses() int {
	count := 0
	for i := range f.nodes {
		if f.root(i) == i {
			count++
		}
	}
	return count
}

// String lists every element in registration order, followed by its current
// parent if it is not a root. It does not compress paths.
func (f *Forest[E]) String() string {
	var sb strings.Builder
	sb.WriteString("Forest(")
	for i, n := range f.nodes {
		if i != 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%v", n.value)
		if n.parent != -1 {
			fmt.Fprintf(&sb, "->%v", f.nodes[n.parent].value)
		}
	}
	sb.WriteString(")")
	return sb.String()
}
