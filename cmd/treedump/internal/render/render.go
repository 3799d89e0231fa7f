// Package render prints trees with branch glyphs and terminal styling.
package render

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/junior176/animated-tree-view/pkg/tree"
)

var (
	keyStyle    = lipgloss.NewStyle().Bold(true)
	branchStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	metaStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Italic(true)
)

// Tree renders node and its descendants, one node per line. With styled
// false, output is plain text.
func Tree(node *tree.IndexedNode, styled bool) string {
	var b strings.Builder
	b.WriteString(style(keyStyle, node.Key(), styled))
	writeMeta(&b, node, styled)
	b.WriteByte('\n')
	writeChildren(&b, node, "", styled)
	return b.String()
}

func writeChildren(b *strings.Builder, node *tree.IndexedNode, prefix string, styled bool) {
	children := node.Children()
	for i, child := range children {
		glyph, indent := "├── ", "│   "
		if i == len(children)-1 {
			glyph, indent = "└── ", "    "
		}
		b.WriteString(style(branchStyle, prefix+glyph, styled))
		b.WriteString(style(keyStyle, child.Key(), styled))
		writeMeta(b, child, styled)
		b.WriteByte('\n')
		writeChildren(b, child, prefix+indent, styled)
	}
}

func writeMeta(b *strings.Builder, node *tree.IndexedNode, styled bool) {
	meta := node.Meta()
	if len(meta) == 0 {
		return
	}
	names := make([]string, 0, len(meta))
	for name := range meta {
		names = append(names, name)
	}
	sort.Strings(names)

	pairs := make([]string, len(names))
	for i, name := range names {
		pairs[i] = fmt.Sprintf("%s=%v", name, meta[name])
	}
	b.WriteString(" ")
	b.WriteString(style(metaStyle, "{"+strings.Join(pairs, ", ")+"}", styled))
}

func style(s lipgloss.Style, text string, styled bool) string {
	if !styled {
		return text
	}
	return s.Render(text)
}
