package ptree

/*
BSD 3-Clause License

Copyright (c) 2024, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"fmt"
	"slices"
)

// Tree is a parent-pointer tree with payloads of type X.
//
// A tree created by
//
//	&Tree[X]{}
//
// is a valid, empty, unchecked tree. Nodes are identified by their position:
// node i carries values[i] and has parent parents[i]. Both slices always have
// the same length, and they only ever grow.
//
// A node is a root if its parent is its own id. Node ids referring to parents
// outside of the tree are accepted by Insert (and by Adopt for non-strict trees);
// walking such a parent chain will result in ErrIndexOutOfBounds.
//
//	Operation     |   Complexity
//	--------------+--------------
//	Insert        |   O(1) amortized
//	Adopt         |   O(1), strict: O(depth)
//	Parent        |   O(1)
//	Path          |   O(depth)
//	Leaves        |   O(n)
type Tree[X any] struct {
	values  []X
	parents []int
	strict  bool
}

// New creates an empty, unchecked tree.
func New[X any]() *Tree[X] {
	return &Tree[X]{}
}

// NewWithConfig creates an empty tree with validated configuration.
func NewWithConfig[X any](cfg Config) (*Tree[X], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg = cfg.normalized()
	return &Tree[X]{
		values:  make([]X, 0, cfg.Capacity),
		parents: make([]int, 0, cfg.Capacity),
		strict:  cfg.Strict,
	}, nil
}

// Len returns the number of nodes in the tree.
func (t *Tree[X]) Len() int {
	if t == nil {
		return 0
	}
	return len(t.parents)
}

// Strict reports whether Adopt validates its arguments.
func (t *Tree[X]) Strict() bool {
	return t != nil && t.strict
}

// Insert appends a new node carrying value and returns its id, which is
// always the previous length of the tree.
//
// parent is not validated. It may refer to a node which does not exist yet,
// including the new node itself: on an empty tree
//
//	t.Insert(0, value)
//
// creates a root. Use InsertRoot or AddChild for clearer semantics.
func (t *Tree[X]) Insert(parent int, value X) int {
	assert(t != nil, "Insert called on nil tree")
	assert(len(t.values) == len(t.parents), "tree storage out of sync")
	t.values = append(t.values, value)
	t.parents = append(t.parents, parent)
	return len(t.parents) - 1
}

// InsertRoot appends a new root node, i.e. a node which is its own parent.
func (t *Tree[X]) InsertRoot(value X) int {
	return t.Insert(t.Len(), value)
}

// AddChild appends a new node as a child of an existing node parent.
// If parent is not a node of the tree, ErrIndexOutOfBounds is returned and the
// tree is left unchanged.
func (t *Tree[X]) AddChild(parent int, value X) (int, error) {
	if !t.valid(parent) {
		return -1, t.outOfBounds(parent)
	}
	return t.Insert(parent, value), nil
}

// Adopt makes child a child of parent, overwriting its previous parent.
// It returns child to allow for chaining.
//
// For unchecked trees only child is validated. Strict trees will furthermore
// require parent to be a node of the tree and will refuse to introduce a cycle,
// returning ErrCycle. Adopting a node to itself turns it into a root.
func (t *Tree[X]) Adopt(parent, child int) (int, error) {
	if !t.valid(child) {
		return -1, t.outOfBounds(child)
	}
	if t.strict && parent != child {
		if !t.valid(parent) {
			return -1, t.outOfBounds(parent)
		}
		ancestors, err := t.Path(parent)
		if err != nil {
			return -1, err
		}
		if slices.Contains(ancestors, child) {
			return -1, fmt.Errorf("%w: %d is an ancestor of %d", ErrCycle, child, parent)
		}
	}
	tracer().Debugf("ptree: adopt %d: parent %d -> %d", child, t.parents[child], parent)
	t.parents[child] = parent
	return child, nil
}

// Parent returns the parent id of node child.
func (t *Tree[X]) Parent(child int) (int, error) {
	if !t.valid(child) {
		return -1, t.outOfBounds(child)
	}
	return t.parents[child], nil
}

// Value returns the payload of node id.
func (t *Tree[X]) Value(id int) (X, error) {
	var zero X
	if !t.valid(id) {
		return zero, t.outOfBounds(id)
	}
	return t.values[id], nil
}

// IsRoot reports whether node id is a root, i.e. its own parent.
func (t *Tree[X]) IsRoot(id int) (bool, error) {
	if !t.valid(id) {
		return false, t.outOfBounds(id)
	}
	return t.parents[id] == id, nil
}

// Path returns the ancestors of node child, starting with its parent and
// ending with its root. The path of a root is empty.
//
// Path fails with ErrIndexOutOfBounds if child or any of its ancestors is not
// a node of the tree, and with ErrCycle if the chain of parents loops without
// reaching a root.
func (t *Tree[X]) Path(child int) ([]int, error) {
	if t == nil {
		return nil, t.outOfBounds(child)
	}
	path, err := exhaust(t.parents, child)
	if err != nil {
		return nil, err
	}
	return emitSlice(path, fmt.Sprintf("ptree: path(%d)", child)), nil
}

// Root returns the root of the tree node id belongs to.
func (t *Tree[X]) Root(id int) (int, error) {
	path, err := t.Path(id)
	if err != nil {
		return -1, err
	}
	if len(path) == 0 {
		return id, nil
	}
	return emit(path[len(path)-1], fmt.Sprintf("ptree: root(%d)", id)), nil
}

// Depth returns the number of ancestors of node id.
func (t *Tree[X]) Depth(id int) (int, error) {
	path, err := t.Path(id)
	if err != nil {
		return -1, err
	}
	return len(path), nil
}

// Leaves returns the ids of all nodes which are not the parent of any node,
// in ascending order. A root without children is its own parent and therefore
// is not reported as a leaf.
func (t *Tree[X]) Leaves() []int {
	return emitSlice(except(til(t.Len()), t.parentIDs()), "ptree: leaves")
}

// Roots returns the ids of all roots in ascending order.
func (t *Tree[X]) Roots() []int {
	roots := []int{}
	for id, p := range t.parentIDs() {
		if p == id {
			roots = append(roots, id)
		}
	}
	return roots
}

// Children returns the ids of all nodes declaring id as their parent, in
// ascending order. A root is not reported as its own child.
func (t *Tree[X]) Children(id int) ([]int, error) {
	if !t.valid(id) {
		return nil, t.outOfBounds(id)
	}
	children := []int{}
	for ch, p := range t.parents {
		if p == id {
			children = append(children, ch)
		}
	}
	return exceptSingle(children, id), nil
}

// --- Helpers ---------------------------------------------------------------

func (t *Tree[X]) parentIDs() []int {
	if t == nil {
		return nil
	}
	return t.parents
}

func (t *Tree[X]) valid(id int) bool {
	return id >= 0 && id < t.Len()
}

func (t *Tree[X]) outOfBounds(id int) error {
	return fmt.Errorf("%w: id %d, length is %d", ErrIndexOutOfBounds, id, t.Len())
}

func (t *Tree[X]) String() string {
	return fmt.Sprintf("(Tree #nodes=%d roots=%v)", t.Len(), t.Roots())
}
