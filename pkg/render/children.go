package render

import (
	"strings"

	"github.com/dictmark-dev/dictmark/pkg/entry"
	"github.com/dictmark-dev/dictmark/pkg/profile"
)

// renderChildren produces the ordered, filtered, grouped markup for a node's
// children in two phases: a profile-ordered pass driven by the rule list,
// then a leftover pass over still-unvisited children in document order.
// Child markups are concatenated with single spaces.
func (r *Renderer) renderChildren(parent *entry.Node, ctx *renderContext) string {
	var out []string

	// Phase A: rules ascending by order; ties keep listed precedence.
	rules := ctx.profile.Ordered()
	for i := range rules {
		rule := &rules[i]

		var pending []*entry.Node
		for _, c := range parent.Children {
			if !ctx.isVisited(c) && strings.EqualFold(c.Tag, rule.NodeType) {
				pending = append(pending, c)
			}
		}
		if len(pending) == 0 {
			continue
		}

		if entry.KindOf(rule.NodeType).Groupable() {
			if g := r.renderGroup(rule, pending, ctx); g != "" {
				out = append(out, g)
			}
			continue
		}

		for _, c := range pending {
			if ctx.isVisited(c) {
				continue
			}
			if !rule.Filter.Match(c.Type()) {
				continue
			}
			if parent.Kind == entry.KindEntry && c.Kind == entry.KindSense {
				r.injectSharedCategory(&out, ctx)
			}
			if s := r.renderNode(c, ctx); s != "" {
				out = append(out, s)
			}
		}
	}

	// Phase B: leftovers in document order. Explicit exclusions hold
	// unconditionally; plain inclusions do not suppress here, so legitimate
	// unconfigured content is never hidden.
	for _, c := range parent.Children {
		if ctx.isVisited(c) {
			continue
		}
		if excludedByNegation(ctx.profile, c) {
			ctx.visit(c)
			continue
		}
		if c.Kind == entry.KindForm && !langMatches(ctx.lang, c.Lang()) {
			ctx.visit(c)
			continue
		}
		if parent.Kind == entry.KindEntry && c.Kind == entry.KindSense {
			r.injectSharedCategory(&out, ctx)
		}
		if s := r.renderNode(c, ctx); s != "" {
			out = append(out, s)
		}
	}

	return strings.Join(out, " ")
}

// renderGroup collects the unvisited children matching a groupable rule,
// extracts each recursively (grouped items are consumed here, never visited
// individually later) and wraps the joined result exactly once.
func (r *Renderer) renderGroup(rule *profile.Rule, pending []*entry.Node, ctx *renderContext) string {
	var items []string
	for _, c := range pending {
		if !rule.Filter.Match(c.Type()) {
			continue
		}
		if t := r.extractGrouped(c, ctx, rule.Aspect); t != "" {
			items = append(items, escapeHTML(t))
		}
		ctx.visitTree(c)
	}

	// Exhaustive whitelist: a sole, purely positive rule for the type claims
	// every sibling of that type, matching or not, so none leak into the
	// leftover pass.
	if rule.Filter.PositiveOnly() && ctx.profile.CountFor(rule.NodeType) == 1 &&
		(len(rule.Filter.Inclusions()) >= 2 || rule.Aspect == "") {
		for _, c := range pending {
			ctx.visitTree(c)
		}
	}

	if len(items) == 0 || rule.EffectiveVisibility() == profile.VisibilityNever {
		return ""
	}
	content := escapeHTML(rule.Prefix) +
		strings.Join(items, escapeHTML(rule.EffectiveSeparator())) +
		escapeHTML(rule.Suffix)
	return wrap(rule.Tag(), rule.Class, content)
}

// extractGrouped extracts a grouped item's text: its own-kind extraction
// first, then a recursive descent over children when that yields nothing.
func (r *Renderer) extractGrouped(n *entry.Node, ctx *renderContext, aspect string) string {
	t, _ := r.extract.text(n, ctx.lang, aspect)
	if t != "" {
		return t
	}
	var parts []string
	for _, c := range n.Children {
		if t := r.extractGrouped(c, ctx, ""); t != "" {
			parts = append(parts, t)
		}
	}
	return strings.Join(parts, " ")
}

// injectSharedCategory emits the entry-level category marker once, the first
// time a sense is about to be rendered under the entry.
func (r *Renderer) injectSharedCategory(out *[]string, ctx *renderContext) {
	if ctx.sharedCategory == "" || ctx.sharedShown {
		return
	}
	ctx.sharedShown = true
	*out = append(*out, span("category", escapeHTML(ctx.sharedCategory)))
}

// excludedByNegation reports whether any rule for the child's type
// explicitly negates its subtype.
func excludedByNegation(p *profile.Profile, n *entry.Node) bool {
	for _, rule := range p.RulesFor(n.Tag) {
		if rule.Filter.Excludes(n.Type()) {
			return true
		}
	}
	return false
}
