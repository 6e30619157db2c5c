/*
Package ptree offers a minimal parent-pointer tree.

# Parent-Pointer Trees

A parent-pointer tree stores, for every node, a reference to its parent
instead of lists of children. Nodes are identified by dense integer ids,
handed out in insertion order; node i lives at position i of two parallel
slices, one for the payload values and one for the parent ids. There are no
node objects and no back-pointers, which keeps the structure trivially
copyable and free of reference cycles on the Go heap.

A node whose parent id is its own id is a root. A tree may hold more than one
root, so strictly speaking it is a forest:

	t := ptree.New[string]()
	r := t.InsertRoot("root")       // 0, parent 0
	c := t.Insert(r, "child")       // 1, parent 0
	g := t.Insert(c, "grandchild")  // 2, parent 1
	path, _ := t.Path(g)            // [1 0]
	leaves := t.Leaves()            // [2]

Nodes are never deleted. Re-parenting is done with Adopt. Out-of-range ids
and parent chains looping back onto themselves are reported as errors
(ErrIndexOutOfBounds, ErrCycle); Insert is intentionally unchecked and will
accept parents which do not (yet) exist. Trees created with a strict Config
validate Adopt as well.

Trees are not safe for concurrent mutation. Package watch offers a
synchronized wrapper.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2024, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package ptree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'ptree'
func tracer() tracing.Trace {
	return tracing.Select("ptree")
}

// TreeError is an error type for the ptree module
type TreeError string

func (e TreeError) Error() string {
	return string(e)
}

// ErrIndexOutOfBounds is flagged whenever a node id, or an id encountered
// while walking a parent chain, is not an id of the tree.
const ErrIndexOutOfBounds = TreeError("index out of bounds")

// ErrCycle is flagged whenever a parent chain returns to a node already
// visited, without reaching a self-referential root.
const ErrCycle = TreeError("cycle in parent chain")

// ErrIllegalArguments is flagged whenever function parameters are invalid.
const ErrIllegalArguments = TreeError("illegal arguments")

// ErrInvalidConfig signals an invalid tree configuration.
const ErrInvalidConfig = TreeError("invalid tree configuration")

// ErrCorruptedStorage is flagged if payloads and parent ids of a tree are out
// of sync.
const ErrCorruptedStorage = TreeError("tree storage corrupted")

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
