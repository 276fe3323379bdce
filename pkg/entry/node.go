package entry

import "strings"

// Kind is the node type discriminator.
type Kind uint8

const (
	KindGeneric      Kind = iota // Unclassified content element
	KindEntry                    // Top-level entry (structural)
	KindSense                    // Sense grouping (structural)
	KindForm                     // Language-tagged text container
	KindCrossRef                 // Cross-reference to another headword
	KindVariant                  // Variant form
	KindIllustration             // Image reference with optional caption
	KindCategory                 // Grammatical category (value attribute)
	KindAnnotation               // Usage/label annotation (value attribute)
	KindField                    // Typed field, may be content-free
)

// String returns the string representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindEntry:
		return "Entry"
	case KindSense:
		return "Sense"
	case KindForm:
		return "Form"
	case KindCrossRef:
		return "CrossRef"
	case KindVariant:
		return "Variant"
	case KindIllustration:
		return "Illustration"
	case KindCategory:
		return "Category"
	case KindAnnotation:
		return "Annotation"
	case KindField:
		return "Field"
	case KindGeneric:
		return "Generic"
	default:
		return "Unknown"
	}
}

// KindOf maps a namespace-stripped tag name to its Kind.
func KindOf(tag string) Kind {
	switch strings.ToLower(tag) {
	case "entry":
		return KindEntry
	case "sense":
		return KindSense
	case "form":
		return KindForm
	case "xr", "ref":
		return KindCrossRef
	case "variant":
		return KindVariant
	case "graphic", "illustration":
		return KindIllustration
	case "gramgrp", "pos":
		return KindCategory
	case "usg", "lbl":
		return KindAnnotation
	case "field", "note":
		return KindField
	default:
		return KindGeneric
	}
}

// Structural reports whether the kind contributes no own text; its output is
// entirely the output of its children.
func (k Kind) Structural() bool {
	return k == KindEntry || k == KindSense
}

// Groupable reports whether multiple instances of the kind under one parent
// are combined into a single rendered container.
func (k Kind) Groupable() bool {
	return k == KindCrossRef || k == KindAnnotation || k == KindVariant
}

// Node is one parsed element of an entry document. Nodes are immutable after
// parsing; per-render bookkeeping lives in the render context, keyed by Index.
type Node struct {
	Index    int               // Arena index, assigned in document order at parse time
	Tag      string            // Namespace-stripped, lower-cased element name
	Kind     Kind              // Derived from Tag
	Attrs    map[string]string // Attribute map, namespace prefixes stripped
	Children []*Node           // Ordered child elements
	Text     string            // Direct character data, whitespace-trimmed
}

// Attr returns the named attribute, or "" when absent.
func (n *Node) Attr(name string) string {
	if n == nil || n.Attrs == nil {
		return ""
	}
	return n.Attrs[name]
}

// Type returns the node's type attribute, the subject of rule filters.
func (n *Node) Type() string {
	return n.Attr("type")
}

// Lang returns the node's language tag (from xml:lang or lang).
func (n *Node) Lang() string {
	return n.Attr("lang")
}

// FlatText returns the node's direct text, falling back to the concatenated
// flat text of its children joined by single spaces.
func (n *Node) FlatText() string {
	if n == nil {
		return ""
	}
	if n.Text != "" {
		return n.Text
	}
	var parts []string
	for _, c := range n.Children {
		if t := c.FlatText(); t != "" {
			parts = append(parts, t)
		}
	}
	return strings.Join(parts, " ")
}

// Count returns the number of nodes in the subtree rooted at n, which is also
// the arena size when n is the parse root.
func (n *Node) Count() int {
	if n == nil {
		return 0
	}
	total := 1
	for _, c := range n.Children {
		total += c.Count()
	}
	return total
}
