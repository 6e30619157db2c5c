/*
Package html builds parent-pointer trees from HTML input.

The resulting trees carry *html.Node payloads. Node ids are handed out
depth-first in document order, so a parent always has a smaller id than its
descendents. Comments, doctypes and whitespace-only text are skipped.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package html

import (
	"errors"
	"io"
	"strings"

	"github.com/npillmayer/ptree"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// tracer writes to trace with key 'ptree'
func tracer() tracing.Trace {
	return tracing.Select("ptree")
}

// ErrIllegalArguments is flagged for nil input nodes or readers.
var ErrIllegalArguments = errors.New("ptree/html: illegal arguments")

// FromNode creates a tree for an HTML node and all its descendents.
// n will be the single root of the tree, with id 0. As comments, doctypes and
// whitespace-only text are never part of a tree, they may not be used as n
// either; FromNode returns ErrIllegalArguments for them.
func FromNode(n *html.Node) (*ptree.Tree[*html.Node], error) {
	if n == nil || skip(n) {
		return nil, ErrIllegalArguments
	}
	t := ptree.New[*html.Node]()
	collect(n, -1, t)
	return t, nil
}

// FromHTML parses a complete HTML document and creates a tree for it.
// The document node is the root of the tree.
func FromHTML(input io.Reader) (*ptree.Tree[*html.Node], error) {
	if input == nil {
		return nil, ErrIllegalArguments
	}
	doc, err := html.Parse(input)
	if err != nil {
		return nil, err
	}
	return FromNode(doc)
}

// FromFragment parses an HTML fragment, as if it were the content of a
// <body> element. Every top-level node of the fragment becomes a root, thus
// the result may be a forest.
func FromFragment(input io.Reader) (*ptree.Tree[*html.Node], error) {
	if input == nil {
		return nil, ErrIllegalArguments
	}
	body := &html.Node{
		Type:     html.ElementNode,
		Data:     atom.Body.String(),
		DataAtom: atom.Body,
	}
	nodes, err := html.ParseFragment(input, body)
	if err != nil {
		return nil, err
	}
	t := ptree.New[*html.Node]()
	for _, n := range nodes {
		collect(n, -1, t)
	}
	tracer().Debugf("html fragment: %d top-level nodes, %d tree nodes", len(nodes), t.Len())
	return t, nil
}

// collect inserts n below parent, then recurses into n's children.
// A parent of -1 makes n a root.
func collect(n *html.Node, parent int, t *ptree.Tree[*html.Node]) {
	if skip(n) {
		return
	}
	var id int
	if parent < 0 {
		id = t.InsertRoot(n)
	} else {
		id = t.Insert(parent, n)
	}
	if n.Type == html.ElementNode {
		tracer().Debugf("html tree: <%s> = %d", n.Data, id)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collect(c, id, t)
	}
}

func skip(n *html.Node) bool {
	switch n.Type {
	case html.CommentNode, html.DoctypeNode, html.ErrorNode:
		return true
	case html.TextNode:
		return strings.TrimSpace(n.Data) == ""
	}
	return false
}

// Ancestry returns the element names along the path from node id to its
// root, nearest ancestor first. Non-element ancestors (i.e., the document
// node) are omitted.
func Ancestry(t *ptree.Tree[*html.Node], id int) ([]string, error) {
	if t == nil {
		return nil, ErrIllegalArguments
	}
	path, err := t.Path(id)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(path))
	for _, a := range path {
		n, err := t.Value(a)
		if err != nil {
			return nil, err
		}
		if n.Type == html.ElementNode {
			names = append(names, n.Data)
		}
	}
	return names, nil
}

// Label returns a short textual representation of an HTML node, suitable for
// printing trees: element names in angle brackets, text content quoted.
func Label(n *html.Node) string {
	if n == nil {
		return "<nil>"
	}
	switch n.Type {
	case html.DocumentNode:
		return "#document"
	case html.ElementNode:
		return "<" + n.Data + ">"
	case html.TextNode:
		return "“" + strings.TrimSpace(n.Data) + "”"
	}
	return n.Data
}
