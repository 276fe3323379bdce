package render

import (
	"github.com/dictmark-dev/dictmark/pkg/entry"
	"github.com/dictmark-dev/dictmark/pkg/profile"
)

// resolveRule selects the best-matching rule for a node among the candidates
// configured for its type, in profile order.
//
// The first candidate whose non-empty filter the node satisfies wins
// immediately; the first filter-less candidate is remembered as fallback.
// When no filter matched, the fallback (possibly nil) applies — except for
// the excluded case: a groupable node with more than one candidate, all of
// them filtered, matching none, models an exhaustive partition of subtypes
// and is deliberately excluded rather than rendered unconfigured.
func resolveRule(n *entry.Node, candidates []*profile.Rule) (rule *profile.Rule, excluded bool) {
	var fallback *profile.Rule
	allFiltered := true

	for _, cand := range candidates {
		if cand.Filter.IsEmpty() {
			allFiltered = false
			if fallback == nil {
				fallback = cand
			}
			continue
		}
		if cand.Filter.Match(n.Type()) {
			return cand, false
		}
	}

	if fallback != nil {
		return fallback, false
	}
	if len(candidates) > 1 && allFiltered && n.Kind.Groupable() {
		return nil, true
	}
	return nil, false
}
