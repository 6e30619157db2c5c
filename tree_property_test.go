package ptree

import (
	"errors"
	"math/rand"
	"slices"
	"testing"
)

// How to run:
//   - Deterministic randomized property test:
//     go test . -run TestTreeRandomizedProperty -count=1
//   - Fuzz test:
//     go test . -run '^$' -fuzz FuzzTreeRandomizedProperty -fuzztime=10s

// naiveLeaves is the quadratic reference: all ids not contained in parents.
func naiveLeaves(parents []int) []int {
	var leaves []int
	for id := range parents {
		if !slices.Contains(parents, id) {
			leaves = append(leaves, id)
		}
	}
	return leaves
}

// naivePath walks parents until a self-loop, without any guards.
func naivePath(parents []int, id int) []int {
	var path []int
	for parents[id] != id {
		id = parents[id]
		path = append(path, id)
	}
	return path
}

func runRandomizedOps(t *testing.T, seed int64, steps int) {
	t.Helper()
	r := rand.New(rand.NewSource(seed))
	tree, err := NewWithConfig[int](Config{Strict: true})
	if err != nil {
		t.Fatalf("NewWithConfig failed: %v", err)
	}
	var model []int // parent ids
	for step := 0; step < steps; step++ {
		switch {
		case len(model) == 0 || r.Intn(10) == 0:
			id := tree.InsertRoot(step)
			model = append(model, id)
		case r.Intn(4) == 0:
			parent, child := r.Intn(len(model)), r.Intn(len(model))
			_, err := tree.Adopt(parent, child)
			if err != nil {
				if !errors.Is(err, ErrCycle) {
					t.Fatalf("seed %d step %d: unexpected adopt error %v", seed, step, err)
				}
				if parent != child && !slices.Contains(naivePath(model, parent), child) {
					t.Fatalf("seed %d step %d: adopt(%d,%d) rejected without cycle", seed, step, parent, child)
				}
				continue
			}
			model[child] = parent
		default:
			parent := r.Intn(len(model))
			id, err := tree.AddChild(parent, step)
			if err != nil {
				t.Fatalf("seed %d step %d: AddChild failed: %v", seed, step, err)
			}
			if id != len(model) {
				t.Fatalf("seed %d step %d: expected dense id %d, got %d", seed, step, len(model), id)
			}
			model = append(model, parent)
		}
	}
	if err := tree.Check(); err != nil {
		t.Fatalf("seed %d: strict tree failed Check: %v", seed, err)
	}
	if got, want := tree.Leaves(), naiveLeaves(model); !slices.Equal(got, want) {
		t.Fatalf("seed %d: leaves = %v, want %v", seed, got, want)
	}
	for id := range model {
		got, err := tree.Path(id)
		if err != nil {
			t.Fatalf("seed %d: path(%d) failed: %v", seed, id, err)
		}
		if want := naivePath(model, id); !slices.Equal(got, want) {
			t.Fatalf("seed %d: path(%d) = %v, want %v", seed, id, got, want)
		}
	}
}

func TestTreeRandomizedProperty(t *testing.T) {
	for seed := int64(1); seed <= 25; seed++ {
		runRandomizedOps(t, seed, 300)
	}
}

func FuzzTreeRandomizedProperty(f *testing.F) {
	f.Add(int64(7), uint16(50))
	f.Add(int64(42), uint16(400))
	f.Fuzz(func(t *testing.T, seed int64, steps uint16) {
		runRandomizedOps(t, seed, int(steps%1000))
	})
}

func BenchmarkLeaves(b *testing.B) {
	tree := New[int]()
	tree.InsertRoot(0)
	for i := 1; i < 10000; i++ {
		tree.Insert(i/2, i)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = tree.Leaves()
	}
}
