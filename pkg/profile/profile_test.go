package profile

import "testing"

func TestNewSortsByOrder(t *testing.T) {
	p := New(
		Rule{NodeType: "def", Order: 3},
		Rule{NodeType: "gloss", Order: 2},
		Rule{NodeType: "xr", Order: 2, Filter: "synonym"},
	)

	got := p.Ordered()
	if got[0].NodeType != "gloss" {
		t.Errorf("first rule = %s, want gloss", got[0].NodeType)
	}
	// Stable: ties keep listed precedence.
	if got[1].NodeType != "xr" {
		t.Errorf("second rule = %s, want xr (tie keeps listed order)", got[1].NodeType)
	}
	if got[2].NodeType != "def" {
		t.Errorf("third rule = %s, want def", got[2].NodeType)
	}
}

func TestRulesFor(t *testing.T) {
	p := New(
		Rule{NodeType: "xr", Order: 1, Filter: "synonym"},
		Rule{NodeType: "xr", Order: 2, Filter: "antonym"},
		Rule{NodeType: "def", Order: 3},
	)

	if got := len(p.RulesFor("xr")); got != 2 {
		t.Errorf("RulesFor(xr) = %d rules, want 2", got)
	}
	if got := p.CountFor("XR"); got != 2 {
		t.Errorf("CountFor is case-sensitive: got %d, want 2", got)
	}
	if got := p.RulesFor("missing"); got != nil {
		t.Errorf("RulesFor(missing) = %v, want nil", got)
	}
}

func TestDecodeArrayAndObject(t *testing.T) {
	array := `[{"nodeType":"gloss","order":2},{"nodeType":"def","order":1}]`
	object := `{"rules":[{"nodeType":"gloss","order":2},{"nodeType":"def","order":1}]}`

	for _, data := range []string{array, object} {
		p, err := Decode([]byte(data))
		if err != nil {
			t.Fatalf("Decode(%s): %v", data, err)
		}
		if len(p.Ordered()) != 2 {
			t.Fatalf("expected 2 rules, got %d", len(p.Ordered()))
		}
		if p.Ordered()[0].NodeType != "def" {
			t.Errorf("rules not sorted after decode: first = %s", p.Ordered()[0].NodeType)
		}
	}

	if _, err := Decode([]byte(`{not json`)); err == nil {
		t.Error("expected error for invalid JSON")
	}
}

func TestRuleDefaults(t *testing.T) {
	r := Rule{NodeType: "xr"}
	if r.EffectiveSeparator() != DefaultSeparator {
		t.Errorf("separator default = %q", r.EffectiveSeparator())
	}
	if r.EffectiveVisibility() != VisibilityAlways {
		t.Errorf("visibility default = %q", r.EffectiveVisibility())
	}
	if r.Tag() != "span" {
		t.Errorf("mode default tag = %q, want span", r.Tag())
	}

	r.Mode = ModeBlock
	if r.Tag() != "div" {
		t.Errorf("block tag = %q, want div", r.Tag())
	}
	r.Separator = " | "
	if r.EffectiveSeparator() != " | " {
		t.Errorf("explicit separator not honored: %q", r.EffectiveSeparator())
	}
}
