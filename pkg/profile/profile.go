package profile

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
)

// Visibility controls when a rule's output is emitted.
type Visibility string

const (
	// VisibilityAlways emits the wrapper even when content is empty.
	VisibilityAlways Visibility = "always"

	// VisibilityIfContent suppresses the node entirely when the combined
	// own-text and child content is blank.
	VisibilityIfContent Visibility = "if-content"

	// VisibilityNever suppresses the node unconditionally. The node still
	// counts as processed, so it cannot resurface later in the same call.
	VisibilityNever Visibility = "never"
)

// Mode selects the wrapper element for a rule.
type Mode string

const (
	ModeInline Mode = "inline" // <span>
	ModeBlock  Mode = "block"  // <div>
)

// DefaultSeparator joins grouped items when a rule does not set its own.
const DefaultSeparator = ", "

// Rule is one display-profile entry: how, where and whether nodes of one
// type are rendered. Rules are immutable during a render call and safely
// shareable across concurrent calls.
type Rule struct {
	// NodeType is the namespace-stripped element name this rule applies to.
	NodeType string `json:"nodeType"`

	// Order positions this rule's output among siblings; lower renders first.
	Order int `json:"order"`

	// Class is the CSS class of the wrapper element.
	Class string `json:"class,omitempty"`

	// Prefix and Suffix decorate the wrapped content.
	Prefix string `json:"prefix,omitempty"`
	Suffix string `json:"suffix,omitempty"`

	// Visibility is one of always, if-content, never. Defaults to always.
	Visibility Visibility `json:"visibility,omitempty"`

	// Mode is inline (span) or block (div). Defaults to inline.
	Mode Mode `json:"mode,omitempty"`

	// Filter restricts the rule to nodes whose type attribute satisfies the
	// expression. Empty means no restriction.
	Filter Filter `json:"filter,omitempty"`

	// Separator joins grouped items. Defaults to DefaultSeparator.
	Separator string `json:"separator,omitempty"`

	// ForcedLanguage overrides the inherited language for this subtree.
	ForcedLanguage string `json:"forcedLanguage,omitempty"`

	// Aspect selects an alternative extraction strategy, when set.
	Aspect string `json:"aspect,omitempty"`
}

// EffectiveSeparator returns the rule's separator or the default.
func (r *Rule) EffectiveSeparator() string {
	if r.Separator == "" {
		return DefaultSeparator
	}
	return r.Separator
}

// EffectiveVisibility returns the rule's visibility or VisibilityAlways.
func (r *Rule) EffectiveVisibility() Visibility {
	if r.Visibility == "" {
		return VisibilityAlways
	}
	return r.Visibility
}

// Tag returns the wrapper element name for the rule's mode.
func (r *Rule) Tag() string {
	if r.Mode == ModeBlock {
		return "div"
	}
	return "span"
}

// Profile is an ordered display profile: the full rule list driving one
// render call. A Profile is read-only once built.
type Profile struct {
	Rules []Rule `json:"rules"`
}

// New builds a Profile from rules, sorted ascending by Order. The sort is
// stable, so rules sharing an order keep their listed precedence.
func New(rules ...Rule) *Profile {
	p := &Profile{Rules: append([]Rule(nil), rules...)}
	sort.SliceStable(p.Rules, func(i, j int) bool {
		return p.Rules[i].Order < p.Rules[j].Order
	})
	return p
}

// Ordered returns the rules ascending by Order.
func (p *Profile) Ordered() []Rule {
	if p == nil {
		return nil
	}
	return p.Rules
}

// RulesFor returns the candidate rules for a node type, in profile order.
func (p *Profile) RulesFor(nodeType string) []*Rule {
	if p == nil {
		return nil
	}
	var out []*Rule
	for i := range p.Rules {
		if strings.EqualFold(p.Rules[i].NodeType, nodeType) {
			out = append(out, &p.Rules[i])
		}
	}
	return out
}

// CountFor returns how many rules target the node type.
func (p *Profile) CountFor(nodeType string) int {
	n := 0
	if p == nil {
		return 0
	}
	for i := range p.Rules {
		if strings.EqualFold(p.Rules[i].NodeType, nodeType) {
			n++
		}
	}
	return n
}

// Decode parses a JSON profile document. Both a bare rule array and a
// {"rules": [...]} object are accepted.
func Decode(data []byte) (*Profile, error) {
	trimmed := strings.TrimSpace(string(data))
	if strings.HasPrefix(trimmed, "[") {
		var rules []Rule
		if err := json.Unmarshal(data, &rules); err != nil {
			return nil, fmt.Errorf("profile: decode: %w", err)
		}
		return New(rules...), nil
	}
	var p Profile
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("profile: decode: %w", err)
	}
	return New(p.Rules...), nil
}

// Load reads a JSON profile from disk.
func Load(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("profile: read %s: %w", path, err)
	}
	return Decode(data)
}
