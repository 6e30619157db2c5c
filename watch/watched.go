package watch

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/guiguan/caster"
	"github.com/npillmayer/ptree"
)

// Kind classifies tree mutations.
type Kind int8

// Kinds of mutations
const (
	Inserted Kind = iota // a node has been appended
	Adopted              // a node has changed its parent
)

func (k Kind) String() string {
	switch k {
	case Inserted:
		return "inserted"
	case Adopted:
		return "adopted"
	}
	return fmt.Sprintf("kind(%d)", int8(k))
}

// Event is published to subscribers for every mutation of a Watched tree.
type Event struct {
	Kind   Kind
	Node   int // id of the inserted or adopted node
	Parent int // parent id after the mutation
}

func (e Event) String() string {
	return fmt.Sprintf("%s %d -> %d", e.Kind, e.Node, e.Parent)
}

// Watched is a parent-pointer tree which is safe for concurrent use.
type Watched[X any] struct {
	mx     sync.RWMutex
	tree   *ptree.Tree[X]
	cast   *caster.Caster // broadcaster for mutation events
	closed atomic.Bool
}

// New wraps tree for concurrent use. tree must not be accessed directly
// afterwards. If tree is nil, a new unchecked tree will be created.
func New[X any](tree *ptree.Tree[X]) *Watched[X] {
	if tree == nil {
		tree = ptree.New[X]()
	}
	return &Watched[X]{
		tree: tree,
		cast: caster.New(context.Background()),
	}
}

// Subscribe returns a channel with buffer size capacity, which will receive an
// Event value for every subsequent mutation. The subscription ends when ctx is
// done or with a call to Unsubscribe. ok is false, and ch is nil, if w has
// been closed or ctx is already done.
func (w *Watched[X]) Subscribe(ctx context.Context, capacity uint) (ch chan interface{}, ok bool) {
	if ctx == nil {
		ctx = context.Background()
	}
	if w.closed.Load() || ctx.Err() != nil {
		return nil, false
	}
	select {
	case <-w.cast.Done():
		return nil, false
	default:
	}
	// caster reports ok for every subscription, handing out closed channels
	// once it has shut down
	return w.cast.Sub(ctx, capacity)
}

// Unsubscribe ends a subscription.
func (w *Watched[X]) Unsubscribe(ch chan interface{}) bool {
	return w.cast.Unsub(ch)
}

// Close stops broadcasting events and ends all subscriptions. The tree itself
// remains usable.
func (w *Watched[X]) Close() bool {
	if w.closed.Swap(true) {
		return false
	}
	return w.cast.Close()
}

func (w *Watched[X]) publish(e Event) {
	if !w.cast.Pub(e) {
		tracer().Debugf("watch: event %v not published, caster closed", e)
	}
}

// --- Mutations -------------------------------------------------------------

// Insert appends a node, see ptree.Tree.Insert.
func (w *Watched[X]) Insert(parent int, value X) int {
	w.mx.Lock()
	id := w.tree.Insert(parent, value)
	w.mx.Unlock()
	w.publish(Event{Kind: Inserted, Node: id, Parent: parent})
	return id
}

// InsertRoot appends a root node, see ptree.Tree.InsertRoot.
func (w *Watched[X]) InsertRoot(value X) int {
	w.mx.Lock()
	id := w.tree.InsertRoot(value)
	w.mx.Unlock()
	w.publish(Event{Kind: Inserted, Node: id, Parent: id})
	return id
}

// AddChild appends a child of an existing node, see ptree.Tree.AddChild.
func (w *Watched[X]) AddChild(parent int, value X) (int, error) {
	w.mx.Lock()
	id, err := w.tree.AddChild(parent, value)
	w.mx.Unlock()
	if err != nil {
		return id, err
	}
	w.publish(Event{Kind: Inserted, Node: id, Parent: parent})
	return id, nil
}

// Adopt re-parents a node, see ptree.Tree.Adopt.
func (w *Watched[X]) Adopt(parent, child int) (int, error) {
	w.mx.Lock()
	id, err := w.tree.Adopt(parent, child)
	w.mx.Unlock()
	if err != nil {
		return id, err
	}
	w.publish(Event{Kind: Adopted, Node: child, Parent: parent})
	return id, nil
}

// --- Queries ---------------------------------------------------------------

// Len returns the number of nodes.
func (w *Watched[X]) Len() int {
	w.mx.RLock()
	defer w.mx.RUnlock()
	return w.tree.Len()
}

// Parent returns the parent of node child.
func (w *Watched[X]) Parent(child int) (int, error) {
	w.mx.RLock()
	defer w.mx.RUnlock()
	return w.tree.Parent(child)
}

// Value returns the payload of node id.
func (w *Watched[X]) Value(id int) (X, error) {
	w.mx.RLock()
	defer w.mx.RUnlock()
	return w.tree.Value(id)
}

// Path returns the ancestors of node child.
func (w *Watched[X]) Path(child int) ([]int, error) {
	w.mx.RLock()
	defer w.mx.RUnlock()
	return w.tree.Path(child)
}

// Leaves returns the ids of all leaves.
func (w *Watched[X]) Leaves() []int {
	w.mx.RLock()
	defer w.mx.RUnlock()
	return w.tree.Leaves()
}

// Check validates the tree's invariants.
func (w *Watched[X]) Check() error {
	w.mx.RLock()
	defer w.mx.RUnlock()
	return w.tree.Check()
}

// Read calls f with the wrapped tree while holding the read lock. f must not
// mutate the tree or retain it.
func (w *Watched[X]) Read(f func(*ptree.Tree[X]) error) error {
	w.mx.RLock()
	defer w.mx.RUnlock()
	return f(w.tree)
}
