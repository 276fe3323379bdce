package profile

import "strings"

// Filter is a comma-separated expression over a node's type attribute.
// Plain terms are inclusions, "!"-prefixed terms are exclusions, and "*"
// is a wildcard matching anything. Matching is case-insensitive.
//
//	"synonym,antonym"  only synonym and antonym nodes
//	"!obsolete"        everything except obsolete nodes
//	"*"                everything
type Filter string

// IsEmpty reports whether the filter places no restriction.
func (f Filter) IsEmpty() bool {
	return strings.TrimSpace(string(f)) == ""
}

// Terms returns the trimmed, lower-cased terms of the expression.
func (f Filter) Terms() []string {
	var out []string
	for _, raw := range strings.Split(string(f), ",") {
		term := strings.ToLower(strings.TrimSpace(raw))
		if term != "" {
			out = append(out, term)
		}
	}
	return out
}

// Inclusions returns the positive terms, wildcard excluded.
func (f Filter) Inclusions() []string {
	var out []string
	for _, term := range f.Terms() {
		if term != "*" && !strings.HasPrefix(term, "!") {
			out = append(out, term)
		}
	}
	return out
}

// Exclusions returns the negated terms with the "!" stripped.
func (f Filter) Exclusions() []string {
	var out []string
	for _, term := range f.Terms() {
		if strings.HasPrefix(term, "!") {
			if neg := strings.TrimPrefix(term, "!"); neg != "" {
				out = append(out, neg)
			}
		}
	}
	return out
}

// HasWildcard reports whether the expression contains "*".
func (f Filter) HasWildcard() bool {
	for _, term := range f.Terms() {
		if term == "*" {
			return true
		}
	}
	return false
}

// PositiveOnly reports whether the expression consists solely of inclusion
// terms: no negations and no wildcard. Such a filter can act as an
// exhaustive whitelist during grouping.
func (f Filter) PositiveOnly() bool {
	terms := f.Terms()
	if len(terms) == 0 {
		return false
	}
	for _, term := range terms {
		if term == "*" || strings.HasPrefix(term, "!") {
			return false
		}
	}
	return true
}

// Match reports whether a node type value satisfies the expression. An empty
// filter matches everything. Exclusions always win over inclusions; when
// inclusions are present the value must be among them, unless the wildcard
// is also present.
func (f Filter) Match(value string) bool {
	if f.IsEmpty() {
		return true
	}
	v := strings.ToLower(strings.TrimSpace(value))
	for _, neg := range f.Exclusions() {
		if v == neg {
			return false
		}
	}
	if f.HasWildcard() {
		return true
	}
	inclusions := f.Inclusions()
	if len(inclusions) == 0 {
		// Exclusion-only expression: everything not negated passes.
		return true
	}
	for _, inc := range inclusions {
		if v == inc {
			return true
		}
	}
	return false
}

// Excludes reports whether the expression explicitly negates the value.
// Used by the leftover pass, where only explicit exclusions suppress.
func (f Filter) Excludes(value string) bool {
	v := strings.ToLower(strings.TrimSpace(value))
	for _, neg := range f.Exclusions() {
		if v == neg {
			return true
		}
	}
	return false
}
