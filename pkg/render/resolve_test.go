package render

import (
	"testing"

	"github.com/dictmark-dev/dictmark/pkg/entry"
	"github.com/dictmark-dev/dictmark/pkg/profile"
)

func typedNode(tag, typ string) *entry.Node {
	n := &entry.Node{Tag: tag, Kind: entry.KindOf(tag)}
	if typ != "" {
		n.Attrs = map[string]string{"type": typ}
	}
	return n
}

func TestResolveRuleFirstFilterMatchWins(t *testing.T) {
	syn := &profile.Rule{NodeType: "xr", Filter: "synonym", Class: "syn"}
	ant := &profile.Rule{NodeType: "xr", Filter: "antonym", Class: "ant"}
	all := &profile.Rule{NodeType: "xr", Class: "any"}

	rule, excluded := resolveRule(typedNode("xr", "antonym"), []*profile.Rule{syn, ant, all})
	if excluded {
		t.Fatal("unexpected exclusion")
	}
	if rule != ant {
		t.Errorf("resolved %+v, want the antonym rule", rule)
	}
}

func TestResolveRuleFilterlessFallback(t *testing.T) {
	syn := &profile.Rule{NodeType: "xr", Filter: "synonym"}
	all := &profile.Rule{NodeType: "xr", Class: "any"}

	rule, excluded := resolveRule(typedNode("xr", "hypernym"), []*profile.Rule{syn, all})
	if excluded {
		t.Fatal("unexpected exclusion")
	}
	if rule != all {
		t.Errorf("resolved %+v, want the filterless fallback", rule)
	}
}

func TestResolveRuleExcludesPartitionedGroupable(t *testing.T) {
	syn := &profile.Rule{NodeType: "xr", Filter: "synonym"}
	ant := &profile.Rule{NodeType: "xr", Filter: "antonym"}

	rule, excluded := resolveRule(typedNode("xr", "hypernym"), []*profile.Rule{syn, ant})
	if rule != nil {
		t.Errorf("resolved %+v, want nil", rule)
	}
	if !excluded {
		t.Error("fully partitioned groupable type should exclude stragglers")
	}
}

func TestResolveRuleNoExclusionForNonGroupable(t *testing.T) {
	a := &profile.Rule{NodeType: "note", Filter: "usage"}
	b := &profile.Rule{NodeType: "note", Filter: "grammar"}

	rule, excluded := resolveRule(typedNode("note", "etymology"), []*profile.Rule{a, b})
	if rule != nil || excluded {
		t.Errorf("got rule=%v excluded=%v, want nil/false for non-groupable kind", rule, excluded)
	}
}

func TestResolveRuleSingleCandidateNoExclusion(t *testing.T) {
	syn := &profile.Rule{NodeType: "xr", Filter: "synonym"}

	rule, excluded := resolveRule(typedNode("xr", "hypernym"), []*profile.Rule{syn})
	if rule != nil || excluded {
		t.Errorf("got rule=%v excluded=%v, want nil/false with a single candidate", rule, excluded)
	}
}

func TestResolveRuleNoCandidates(t *testing.T) {
	rule, excluded := resolveRule(typedNode("def", ""), nil)
	if rule != nil || excluded {
		t.Errorf("got rule=%v excluded=%v, want nil/false", rule, excluded)
	}
}
