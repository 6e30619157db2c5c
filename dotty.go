package ptree

import (
	"fmt"
	"io"
	"strings"
)

// Tree2Dot outputs the structure of a tree in Graphviz DOT format
// (for debugging purposes). Edges point from child to parent, as stored.
//
// Roots are drawn as double circles, leaves as boxes. Dangling parent ids
// are drawn as empty circles.
func Tree2Dot[X any](t *Tree[X], w io.Writer) {
	io.WriteString(w, "strict digraph {\n")
	io.WriteString(w, "\tnode [fontname=Arial,fontsize=12];\n")
	leaves := make(map[int]bool)
	for _, l := range t.Leaves() {
		leaves[l] = true
	}
	var nodelist, edgelist strings.Builder
	for id := 0; id < t.Len(); id++ {
		value, _ := t.Value(id)
		parent, _ := t.Parent(id)
		root := parent == id
		styles := nodeDotStyles(root, leaves[id])
		label := fmt.Sprintf("%d\\n%s", id, dotEscape(fmt.Sprint(value)))
		fmt.Fprintf(&nodelist, "\t\"%d\" [label=\"%s\"%s];\n", id, label, styles)
		if root {
			continue
		}
		if !t.valid(parent) {
			fmt.Fprintf(&nodelist, "\t\"%d\" %s;\n", parent, emptyNode())
		}
		fmt.Fprintf(&edgelist, "\t\"%d\" -> \"%d\";\n", id, parent)
	}
	io.WriteString(w, nodelist.String())
	io.WriteString(w, edgelist.String())
	io.WriteString(w, "}\n")
}

func emptyNode() string {
	return "[label=\"\",color=black,shape=circle,fixedsize=true,width=.4]"
}

func nodeDotStyles(isroot bool, isleaf bool) string {
	s := ",style=filled"
	if isroot {
		s += ",color=black,fillcolor=\"#a3d7e4\""
		s += ",shape=doublecircle"
	} else if isleaf {
		s += ",fillcolor=\"#CCDDFF\""
		s += ",shape=box"
	} else {
		s += ",color=black,fillcolor=\"#a3d7e4\""
		s += ",shape=circle"
	}
	return s
}

func dotEscape(s string) string {
	return strings.ReplaceAll(s, "\"", "\\\"")
}
