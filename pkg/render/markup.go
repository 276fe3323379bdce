package render

import "strings"

// wrap emits an element with an optional class attribute around content.
// Content must already be escaped or produced by this package.
func wrap(tag, class, content string) string {
	var buf strings.Builder
	buf.Grow(len(tag)*2 + len(class) + len(content) + 16)
	buf.WriteByte('<')
	buf.WriteString(tag)
	if class != "" {
		buf.WriteString(` class="`)
		buf.WriteString(escapeAttr(class))
		buf.WriteString(`"`)
	}
	buf.WriteByte('>')
	buf.WriteString(content)
	buf.WriteString("</")
	buf.WriteString(tag)
	buf.WriteByte('>')
	return buf.String()
}

// span wraps content in an inline span with an optional class.
func span(class, content string) string {
	return wrap("span", class, content)
}

// image emits an img tag, wrapped in a figure when a caption is present.
func image(src, caption string) string {
	img := `<img src="` + escapeAttr(src) + `"/>`
	if caption == "" {
		return img
	}
	return wrap("figure", "illustration", img+span("caption", escapeHTML(caption)))
}

// joinSpace joins the non-empty parts with single spaces.
func joinSpace(parts ...string) string {
	var kept []string
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, " ")
}
