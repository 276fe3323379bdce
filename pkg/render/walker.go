package render

import (
	"strings"

	"github.com/dictmark-dev/dictmark/pkg/entry"
	"github.com/dictmark-dev/dictmark/pkg/profile"
)

// renderNode renders one node recursively: mark visited, resolve the rule,
// compute the own-text contribution, orchestrate children, then apply the
// rule's visibility and wrapper. A node contributes at most once per call.
func (r *Renderer) renderNode(n *entry.Node, ctx *renderContext) string {
	if ctx.isVisited(n) {
		return ""
	}
	ctx.visit(n)

	rule, excluded := resolveRule(n, ctx.profile.RulesFor(n.Tag))
	if excluded {
		return ""
	}
	if rule != nil && rule.EffectiveVisibility() == profile.VisibilityNever {
		ctx.visitTree(n)
		return ""
	}

	prevLang := ctx.lang
	if rule != nil && rule.ForcedLanguage != "" {
		ctx.lang = rule.ForcedLanguage
	}

	var own string
	switch {
	case n.Kind == entry.KindIllustration:
		// The figure consumes its caption subtree.
		own = r.extract.illustration(n)
		ctx.visitTree(n)
	case n.Kind.Structural():
		// Structural kinds contribute no own text.
	default:
		aspect := ""
		if rule != nil {
			aspect = rule.Aspect
		}
		text, consumed := r.extract.text(n, ctx.lang, aspect)
		for _, c := range consumed {
			ctx.visitTree(c)
		}
		if n.Kind == entry.KindCategory {
			text = ctx.hoistCategory(text)
		}
		own = escapeHTML(text)
	}

	children := r.renderChildren(n, ctx)
	ctx.lang = prevLang

	combined := joinSpace(own, children)
	if rule == nil {
		return combined
	}
	if rule.EffectiveVisibility() == profile.VisibilityIfContent && strings.TrimSpace(combined) == "" {
		return ""
	}
	content := escapeHTML(rule.Prefix) + combined + escapeHTML(rule.Suffix)
	return wrap(rule.Tag(), rule.Class, content)
}

// hoistCategory suppresses a category value that duplicates the entry-level
// shared value once that value has been shown; showing it the first time
// counts as the shared display.
func (c *renderContext) hoistCategory(value string) string {
	if value == "" || c.sharedCategory == "" || !strings.EqualFold(value, c.sharedCategory) {
		return value
	}
	if c.sharedShown {
		return ""
	}
	c.sharedShown = true
	return value
}
