package ptree

import "fmt"

// --- Sequence helpers ------------------------------------------------------

// except returns the elements of x which do not occur anywhere in y.
// Relative order of x is preserved, duplicates in x are checked one by one.
func except[T comparable](x, y []T) []T {
	if len(y) == 0 {
		return append([]T(nil), x...)
	}
	drop := make(map[T]struct{}, len(y))
	for _, item := range y {
		drop[item] = struct{}{}
	}
	r := make([]T, 0, len(x))
	for _, item := range x {
		if _, found := drop[item]; !found {
			r = append(r, item)
		}
	}
	return r
}

// exceptSingle returns x without every element equal to y.
func exceptSingle[T comparable](x []T, y T) []T {
	r := make([]T, 0, len(x))
	for _, item := range x {
		if item != y {
			r = append(r, item)
		}
	}
	return r
}

// til returns [0, 1, …, n-1].
func til(n int) []int {
	if n <= 0 {
		return []int{}
	}
	r := make([]int, n)
	for i := range r {
		r[i] = i
	}
	return r
}

// exhaust follows the next-table from start until it reaches a fixed point,
// i.e. an index pointing to itself. Every index reached on the way is
// collected, the repetition at the fixed point is not.
//
// exhaust fails with ErrIndexOutOfBounds if an index outside of next is
// encountered, and with ErrCycle if the walk returns to an index it has
// already visited.
func exhaust(next []int, start int) ([]int, error) {
	r := []int{}
	visited := map[int]struct{}{start: {}}
	i := start
	for {
		if i < 0 || i >= len(next) {
			return nil, fmt.Errorf("%w: id %d, length is %d", ErrIndexOutOfBounds, i, len(next))
		}
		last := i
		i = next[i]
		if i == last {
			return r, nil
		}
		if _, seen := visited[i]; seen {
			return nil, fmt.Errorf("%w: id %d revisited walking from %d", ErrCycle, i, start)
		}
		visited[i] = struct{}{}
		r = append(r, i)
	}
}
