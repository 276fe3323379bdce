package render

import (
	"strings"

	"github.com/dictmark-dev/dictmark/pkg/entry"
	"github.com/dictmark-dev/dictmark/pkg/media"
)

// Extraction aspects selectable per rule. The default ("") dispatches on the
// node kind.
const (
	// AspectRaw extracts the flat text of the whole subtree, bypassing
	// language filtering and kind-specific formats.
	AspectRaw = "raw"

	// AspectValue extracts the value attribute regardless of kind.
	AspectValue = "value"
)

// extractor produces a node's own text contribution. It is stateless apart
// from the media resolver used to rewrite illustration references.
type extractor struct {
	media media.Resolver
}

// text returns the plain-text contribution of a node under the active
// language and aspect, along with the child nodes the extraction consumed
// (so the caller can keep them from rendering again). It never fails; a node
// with neither matching nested text nor a value attribute yields "".
func (e *extractor) text(n *entry.Node, lang, aspect string) (string, []*entry.Node) {
	switch aspect {
	case AspectRaw:
		return n.FlatText(), n.Children
	case AspectValue:
		return n.Attr("value"), nil
	}

	switch n.Kind {
	case entry.KindCrossRef:
		return crossRefText(n), nil
	case entry.KindVariant:
		text, consumed := localizedForms(n, lang)
		return joinSpace(n.Type(), text), consumed
	case entry.KindCategory, entry.KindAnnotation:
		return n.Attr("value"), nil
	case entry.KindField:
		if t, consumed := localizedForms(n, lang); t != "" {
			return t, consumed
		}
		if typ := n.Type(); typ != "" {
			return "[" + typ + "]", nil
		}
		return "", nil
	default:
		return localizedForms(n, lang)
	}
}

// illustration builds the markup fragment for an illustration node: an img
// tag, wrapped in a figure when a caption is found. A missing reference
// yields "".
func (e *extractor) illustration(n *entry.Node) string {
	ref := n.Attr("url")
	if ref == "" {
		ref = n.Attr("src")
	}
	if ref == "" {
		return ""
	}
	if !isAbsoluteRef(ref) {
		ref = e.media.Asset(ref)
	}
	return image(ref, captionText(n))
}

// localizedForms is the default extraction strategy: collect the node's
// immediate form children whose language passes the active filter, joined by
// single spaces; fall back to the node's own direct text when none match.
func localizedForms(n *entry.Node, lang string) (string, []*entry.Node) {
	var parts []string
	var consumed []*entry.Node
	for _, c := range n.Children {
		if c.Kind != entry.KindForm {
			continue
		}
		if !langMatches(lang, c.Lang()) {
			continue
		}
		if t := c.FlatText(); t != "" {
			parts = append(parts, t)
			consumed = append(consumed, c)
		}
	}
	if len(parts) > 0 {
		return strings.Join(parts, " "), consumed
	}
	return n.Text, nil
}

// langMatches applies the inherited language filter. An empty or wildcard
// filter disables filtering; untagged forms always pass.
func langMatches(active, nodeLang string) bool {
	if active == "" || active == "*" {
		return true
	}
	if nodeLang == "" {
		return true
	}
	return strings.EqualFold(active, nodeLang)
}

// crossRefText formats "{type} {resolved-target-label}". The label prefers
// the pre-resolved display attribute, then the raw target identifier; with
// neither, the type stands alone.
func crossRefText(n *entry.Node) string {
	label := n.Attr("resolved")
	if label == "" {
		label = n.Attr("target")
	}
	return joinSpace(n.Type(), label)
}

// captionText finds an illustration caption in a nested label, form or text
// chain.
func captionText(n *entry.Node) string {
	for _, c := range n.Children {
		switch c.Kind {
		case entry.KindAnnotation, entry.KindForm, entry.KindField:
			if t := c.FlatText(); t != "" {
				return t
			}
			if v := c.Attr("value"); v != "" {
				return v
			}
		}
	}
	return n.Text
}

// isAbsoluteRef reports whether an illustration reference should pass
// through unrewritten: full URLs and host-absolute paths.
func isAbsoluteRef(ref string) bool {
	return strings.HasPrefix(ref, "/") ||
		strings.Contains(ref, "://") ||
		strings.HasPrefix(ref, "data:")
}
