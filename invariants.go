package ptree

import "fmt"

// Check validates structural tree invariants.
//
// It reports storage drift between values and parents, parent ids which do
// not denote a node of the tree, and parent chains looping without reaching
// a root. Trees built with Insert and unchecked Adopt may legally be in
// such a state; Check tells clients whether every node has a path to a root.
func (t *Tree[X]) Check() error {
	if t == nil {
		return fmt.Errorf("%w: nil tree", ErrIllegalArguments)
	}
	if len(t.values) != len(t.parents) {
		return fmt.Errorf("%w: %d values for %d parent ids", ErrCorruptedStorage,
			len(t.values), len(t.parents))
	}
	for id, p := range t.parents {
		if !t.valid(p) {
			return fmt.Errorf("%w: node %d has dangling parent %d", ErrIndexOutOfBounds, id, p)
		}
	}
	// 0 = unknown, 1 = on current walk, 2 = reaches a root
	state := make([]uint8, len(t.parents))
	for id := range t.parents {
		if state[id] == 2 {
			continue
		}
		var walk []int
		i := id
		for state[i] == 0 && t.parents[i] != i {
			state[i] = 1
			walk = append(walk, i)
			i = t.parents[i]
		}
		if state[i] == 1 {
			return fmt.Errorf("%w: node %d is part of a parent loop", ErrCycle, i)
		}
		state[i] = 2
		for _, w := range walk {
			state[w] = 2
		}
	}
	return nil
}
