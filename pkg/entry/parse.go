package entry

import (
	"encoding/xml"
	"io"
	"regexp"
	"strings"
)

// xmlnsDecl matches namespace declaration attributes in raw markup. They are
// stripped before parsing so conventionally namespaced documents and plain
// ones parse identically.
var xmlnsDecl = regexp.MustCompile(`\s+xmlns(?::[A-Za-z0-9_.-]+)?\s*=\s*"[^"]*"`)

// tagLike matches anything that looks like markup, including a trailing
// unclosed tag. What remains between the matches is literal text, used for
// best-effort recovery from documents that fail to parse.
var tagLike = regexp.MustCompile(`<[^<>]*>?`)

// Normalize strips namespace declarations from raw entry markup.
func Normalize(raw string) string {
	return xmlnsDecl.ReplaceAllString(raw, "")
}

// Parse builds a Node tree from raw entry markup. Namespace declarations are
// stripped first and element/attribute prefixes are dropped, so <tei:form>
// and <form> are the same node. Parsing is strict: a malformed document
// returns an error so the caller can fall back to RecoverFragments.
func Parse(raw string) (*Node, error) {
	dec := xml.NewDecoder(strings.NewReader(Normalize(raw)))

	var (
		root  *Node
		stack []*Node
		next  int
	)

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			node := &Node{
				Index: next,
				Tag:   strings.ToLower(t.Name.Local),
				Attrs: attrMap(t.Attr),
			}
			node.Kind = KindOf(node.Tag)
			next++
			if len(stack) == 0 {
				if root != nil {
					// Trailing sibling after the root element; ignore it the
					// same way a forgiving browser would.
					_ = dec.Skip()
					continue
				}
				root = node
			} else {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, node)
			}
			stack = append(stack, node)
		case xml.EndElement:
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
		case xml.CharData:
			if len(stack) == 0 {
				continue
			}
			text := strings.TrimSpace(string(t))
			if text == "" {
				continue
			}
			node := stack[len(stack)-1]
			if node.Text == "" {
				node.Text = text
			} else {
				node.Text += " " + text
			}
		}
	}

	if root == nil {
		return nil, &ParseError{Reason: "no element found"}
	}
	return root, nil
}

// RecoverFragments extracts literal text fragments from markup that failed to
// parse. Returned fragments are trimmed and non-empty, in document order.
func RecoverFragments(raw string) []string {
	var out []string
	for _, piece := range tagLike.Split(Normalize(raw), -1) {
		if text := strings.TrimSpace(piece); text != "" {
			out = append(out, text)
		}
	}
	return out
}

// ParseError reports an unparseable document.
type ParseError struct {
	Reason  string
	Wrapped error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.Wrapped != nil {
		return "entry: " + e.Reason + ": " + e.Wrapped.Error()
	}
	return "entry: " + e.Reason
}

// Unwrap returns the wrapped error for errors.Is/As support.
func (e *ParseError) Unwrap() error {
	return e.Wrapped
}

// attrMap converts decoder attributes to a lookup map. Prefixes are dropped,
// so xml:lang becomes lang.
func attrMap(attrs []xml.Attr) map[string]string {
	if len(attrs) == 0 {
		return nil
	}
	m := make(map[string]string, len(attrs))
	for _, a := range attrs {
		name := strings.ToLower(a.Name.Local)
		if name == "xmlns" {
			continue
		}
		m[name] = a.Value
	}
	return m
}
