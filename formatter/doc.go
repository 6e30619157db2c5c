/*
Package formatter outputs parent-pointer trees to devices with fixed-width
fonts, i.e. consoles and terminals.

Trees are printed as an outline, one node per line, with children indented
below their parent:

	0 root
	├── 1 child1
	│   └── 2 grandchild1
	└── 3 child2
	    └── 4 grandchild2

Roots, inner nodes and leaves are colored according to a Palette. Labels
exceeding the configured line width are truncated, measuring text with the
display widths of UAX#11 (East Asian Width), as long labels may well contain
wide characters.

Only trees which pass ptree.Tree.Check may be printed: every node needs a path
to a root.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2024, Norbert Pillmayer

Please refer to the LICENSE file for details.

*/
package formatter

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'ptree'
func tracer() tracing.Trace {
	return tracing.Select("ptree")
}
