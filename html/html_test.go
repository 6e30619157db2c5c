package html

import (
	"errors"
	"slices"
	"strings"
	"testing"

	"github.com/npillmayer/ptree"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"golang.org/x/net/html"
)

func labels(t *testing.T, tree *ptree.Tree[*html.Node], ids []int) []string {
	t.Helper()
	var out []string
	for _, id := range ids {
		n, err := tree.Value(id)
		if err != nil {
			t.Fatalf("value(%d): %v", id, err)
		}
		out = append(out, Label(n))
	}
	return out
}

func TestFromFragment(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ptree")
	defer teardown()

	tree, err := FromFragment(strings.NewReader("<p>Hello <b>World</b></p>"))
	if err != nil {
		t.Fatal(err)
	}
	// p(0) ─┬─ "Hello"(1)
	//       └─ b(2) ── "World"(3)
	if tree.Len() != 4 {
		t.Fatalf("expected 4 nodes, have %d: %v", tree.Len(), labels(t, tree, []int{0, 1, 2, 3}))
	}
	if got := labels(t, tree, tree.Roots()); !slices.Equal(got, []string{"<p>"}) {
		t.Errorf("roots = %v, want [<p>]", got)
	}
	if got := labels(t, tree, tree.Leaves()); !slices.Equal(got, []string{"“Hello”", "“World”"}) {
		t.Errorf("leaves = %v", got)
	}
	path, err := tree.Path(3)
	if err != nil {
		t.Fatal(err)
	}
	if got := labels(t, tree, path); !slices.Equal(got, []string{"<b>", "<p>"}) {
		t.Errorf("path(3) = %v, want [<b> <p>]", got)
	}
	if err := tree.Check(); err != nil {
		t.Errorf("html tree should validate, got %v", err)
	}
}

func TestFromFragmentIsForest(t *testing.T) {
	tree, err := FromFragment(strings.NewReader("<p>one</p>\n<!-- note -->\n<p>two</p>"))
	if err != nil {
		t.Fatal(err)
	}
	roots := tree.Roots()
	if len(roots) != 2 {
		t.Fatalf("expected two roots, got %v", labels(t, tree, roots))
	}
	for _, leaf := range tree.Leaves() {
		root, err := tree.Root(leaf)
		if err != nil {
			t.Fatal(err)
		}
		if !slices.Contains(roots, root) {
			t.Errorf("leaf %d has root %d, which is not among %v", leaf, root, roots)
		}
	}
}

func TestFromHTMLAncestry(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ptree")
	defer teardown()

	doc := `<!DOCTYPE html><html><head><title>T</title></head>
<body><ul><li>first</li><li><em>second</em></li></ul></body></html>`
	tree, err := FromHTML(strings.NewReader(doc))
	if err != nil {
		t.Fatal(err)
	}
	if root := labels(t, tree, tree.Roots()); !slices.Equal(root, []string{"#document"}) {
		t.Fatalf("expected document root, got %v", root)
	}
	var second = -1
	for _, leaf := range tree.Leaves() {
		n, _ := tree.Value(leaf)
		if n.Type == html.TextNode && n.Data == "second" {
			second = leaf
		}
	}
	if second < 0 {
		t.Fatalf("text node 'second' is not a leaf")
	}
	names, err := Ancestry(tree, second)
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"em", "li", "ul", "body", "html"}; !slices.Equal(names, want) {
		t.Errorf("ancestry = %v, want %v", names, want)
	}
}

func TestIllegalArguments(t *testing.T) {
	if _, err := FromNode(nil); !errors.Is(err, ErrIllegalArguments) {
		t.Errorf("expected ErrIllegalArguments, got %v", err)
	}
	if _, err := FromHTML(nil); !errors.Is(err, ErrIllegalArguments) {
		t.Errorf("expected ErrIllegalArguments, got %v", err)
	}
	if _, err := Ancestry(nil, 0); !errors.Is(err, ErrIllegalArguments) {
		t.Errorf("expected ErrIllegalArguments, got %v", err)
	}
	tree, _ := FromFragment(strings.NewReader("<i>x</i>"))
	if _, err := Ancestry(tree, 7); !errors.Is(err, ptree.ErrIndexOutOfBounds) {
		t.Errorf("expected ptree.ErrIndexOutOfBounds, got %v", err)
	}
}

func TestFromNodeRejectsSkippedNodes(t *testing.T) {
	for _, n := range []*html.Node{
		{Type: html.CommentNode, Data: "note"},
		{Type: html.DoctypeNode, Data: "html"},
		{Type: html.TextNode, Data: " \n\t"},
	} {
		if tree, err := FromNode(n); !errors.Is(err, ErrIllegalArguments) || tree != nil {
			t.Errorf("node of type %d: expected ErrIllegalArguments, got %v, %v", n.Type, tree, err)
		}
	}
	tree, err := FromNode(&html.Node{Type: html.TextNode, Data: "text"})
	if err != nil {
		t.Fatal(err)
	}
	if tree.Len() != 1 {
		t.Fatalf("expected a single node, have %d", tree.Len())
	}
	if ok, _ := tree.IsRoot(0); !ok {
		t.Errorf("node 0 should be the root")
	}
}
