/*
Package watch provides a synchronized parent-pointer tree which broadcasts its
mutations.

A plain ptree.Tree must not be mutated concurrently. Watched wraps a tree with
a read-write mutex, and publishes an Event for every successful Insert and
Adopt to all subscribers. Subscribers receive events on buffered channels; a
subscriber which does not drain its channel will eventually hold up
publishing, so clients should either read continuously or unsubscribe.

Events are published after the tree lock has been released. For a single
mutating goroutine events arrive in mutation order; mutations from different
goroutines may be observed in either order.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package watch

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'ptree'
func tracer() tracing.Trace {
	return tracing.Select("ptree")
}
