package render

import (
	"github.com/dictmark-dev/dictmark/pkg/entry"
	"github.com/dictmark-dev/dictmark/pkg/profile"
)

// renderContext is the per-call mutable state threaded through the recursive
// walk. Each top-level render call owns exactly one, so concurrent calls over
// a shared profile never interfere.
type renderContext struct {
	profile *profile.Profile

	// visited is the at-most-once guard, keyed by arena index.
	visited []bool

	// sharedCategory is the entry-level category value hoisted above the
	// senses; sharedShown flips once it has been displayed.
	sharedCategory string
	sharedShown    bool

	// lang is the inherited language filter, propagated top-down. Empty or
	// "*" disables localized-form filtering.
	lang string
}

func newRenderContext(root *entry.Node, prof *profile.Profile, sharedCategory, lang string) *renderContext {
	return &renderContext{
		profile:        prof,
		visited:        make([]bool, root.Count()),
		sharedCategory: sharedCategory,
		lang:           lang,
	}
}

func (c *renderContext) isVisited(n *entry.Node) bool {
	if n.Index < 0 || n.Index >= len(c.visited) {
		return false
	}
	return c.visited[n.Index]
}

func (c *renderContext) visit(n *entry.Node) {
	if n.Index >= 0 && n.Index < len(c.visited) {
		c.visited[n.Index] = true
	}
}

// visitTree marks a node and its whole subtree processed. Used when a group
// extraction consumes a subtree wholesale.
func (c *renderContext) visitTree(n *entry.Node) {
	c.visit(n)
	for _, child := range n.Children {
		c.visitTree(child)
	}
}
