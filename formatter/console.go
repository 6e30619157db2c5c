package formatter

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"unicode"

	"github.com/fatih/color"
	"github.com/npillmayer/ptree"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
	"golang.org/x/term"
)

// Config represents a set of configuration parameters for printing trees.
type Config struct {
	LineWidth int            // maximum line width in fixed-width ‘en’s, 0 for unlimited
	Context   *uax11.Context // context for character widths, defaults to uax11.LatinContext
	Palette   *Palette       // colors for node classes, defaults to DefaultPalette
}

// Palette holds colors for the different classes of tree nodes.
// A nil color outputs plain text.
type Palette struct {
	Root, Inner, Leaf *color.Color
}

// DefaultPalette is the palette used if a Config does not specify one.
var DefaultPalette = Palette{
	Root: color.New(color.FgRed, color.Bold),
	Leaf: color.New(color.FgBlue),
}

// Connectors used to draw the outline.
const (
	branch   = "├── "
	lastItem = "└── "
	pipe     = "│   "
	blank    = "    "
	ellipsis = "…"
)

// Print outputs a tree to stdout, labeling nodes with fmt.Sprint of their
// payload.
//
// If parameter config is nil,
// a heuristic will create a config from the current terminal's properties (if
// stdout is interactive). Config.Context will also be created based on heuristics
// from the user environment.
func Print[X any](t *ptree.Tree[X], config *Config) error {
	if config == nil {
		config = ConfigFromTerminal()
		config.Context = uax11.ContextFromEnvironment()
	}
	return Output(t, os.Stdout, config, func(x X) string { return fmt.Sprint(x) })
}

// Output writes a tree to out, one node per line. Node payloads are converted
// to text with label.
//
// It is safe to have config or label set to nil.
// Trees failing ptree.Tree.Check are rejected before anything is written.
func Output[X any](t *ptree.Tree[X], out io.Writer, config *Config, label func(X) string) error {
	if t == nil || out == nil {
		return ptree.ErrIllegalArguments
	}
	if err := t.Check(); err != nil {
		tracer().Errorf("tree cannot be printed: %v", err)
		return err
	}
	if config == nil {
		config = &Config{}
	}
	if label == nil {
		label = func(x X) string { return fmt.Sprint(x) }
	}
	p := printer[X]{
		tree:     t,
		out:      out,
		label:    label,
		width:    config.LineWidth,
		context:  config.Context,
		palette:  config.Palette,
		children: make([][]int, t.Len()),
	}
	if p.context == nil {
		p.context = uax11.LatinContext
	}
	if p.palette == nil {
		p.palette = &DefaultPalette
	}
	for id := 0; id < t.Len(); id++ {
		parent, _ := t.Parent(id)
		if parent != id {
			p.children[parent] = append(p.children[parent], id)
		}
	}
	for _, root := range t.Roots() {
		if err := p.node(root, "", "", p.palette.Root); err != nil {
			return err
		}
	}
	return nil
}

type printer[X any] struct {
	tree     *ptree.Tree[X]
	out      io.Writer
	label    func(X) string
	width    int
	context  *uax11.Context
	palette  *Palette
	children [][]int
}

// node writes the line for id and recurses into its children.
// lead is the connector for id itself, indent the prefix for its children.
func (p *printer[X]) node(id int, lead, indent string, c *color.Color) error {
	value, err := p.tree.Value(id)
	if err != nil {
		return err
	}
	prefix := fmt.Sprintf("%s%d ", lead, id)
	text := p.label(value)
	if p.width > 0 {
		text = truncate(text, p.width-stringWidth(prefix, p.context), p.context)
	}
	if _, err := io.WriteString(p.out, prefix); err != nil {
		return err
	}
	if c != nil {
		text = c.Sprint(text) // Fprint omits the reset if color.NoColor is set
	}
	if _, err := io.WriteString(p.out, text); err != nil {
		return err
	}
	if _, err := io.WriteString(p.out, "\n"); err != nil {
		return err
	}
	children := p.children[id]
	for i, ch := range children {
		lead, next := branch, pipe
		if i == len(children)-1 {
			lead, next = lastItem, blank
		}
		class := p.palette.Inner
		if len(p.children[ch]) == 0 {
			class = p.palette.Leaf
		}
		if err := p.node(ch, indent+lead, indent+next, class); err != nil {
			return err
		}
	}
	return nil
}

// --- Text width ------------------------------------------------------------

var setupGraphemes sync.Once

func graphemes(s string) grapheme.String {
	setupGraphemes.Do(func() { grapheme.SetupGraphemeClasses() })
	return grapheme.StringFromString(s)
}

// stringWidth sums up the widths of the graphemes of s. The grapheme breaker
// may report empty segments, which uax11.Width measures as 0 (whereas
// uax11.StringWidth would count them as narrow characters).
func stringWidth(s string, context *uax11.Context) int {
	gstr := graphemes(s)
	w := 0
	for i := 0; i < gstr.Len(); i++ {
		w += uax11.Width([]byte(gstr.Nth(i)), context)
	}
	return w
}

// truncate shortens s to at most width ‘en’s, marking the cut with an
// ellipsis. Graphemes are never split.
func truncate(s string, width int, context *uax11.Context) string {
	if stringWidth(s, context) <= width {
		return s
	}
	width -= stringWidth(ellipsis, context)
	if width < 0 {
		return ""
	}
	gstr := graphemes(s)
	var b strings.Builder
	w := 0
	for i := 0; i < gstr.Len(); i++ {
		g := gstr.Nth(i)
		gw := uax11.Width([]byte(g), context)
		if w+gw > width {
			break
		}
		b.WriteString(g)
		w += gw
	}
	return strings.TrimRightFunc(b.String(), unicode.IsSpace) + ellipsis
}

// --- Config for terminals --------------------------------------------------

// ConfigFromTerminal is a simple helper for creating a formatting Config.
// It checks wether stdout is a terminal, and if so it reads the terminal's width
// and sets the Config.LineWidth parameter accordingly.
func ConfigFromTerminal() *Config {
	config := &Config{}
	if term.IsTerminal(0) {
		w, _, err := term.GetSize(0)
		if err != nil {
			config.LineWidth = 65
		} else if w > 10 {
			config.LineWidth = w
		} else {
			config.LineWidth = 10
		}
	} else {
		config.LineWidth = 65
	}
	tracer().P("format", "console").Infof("setting line length to %d en", config.LineWidth)
	return config
}
