// Package render converts parsed dictionary entries into display markup
// according to an ordered, filterable display profile.
//
// The pipeline parses the raw text, walks the tree from the root,
// orchestrates each node's children, resolves a rule and extracts text per
// node, and concatenates results upward. The profile decides output order,
// wrapping, visibility, grouping and filtering; the document decides content
// and relative order within a rule.
//
// Guarantees upheld per render call:
//
//   - Every source node contributes to the output at most once.
//   - Sibling output order follows ascending rule order; ties keep the
//     profile's listed precedence, first filter match wins.
//   - visibility "never" suppresses output while still marking the node
//     processed; "if-content" suppresses only blank results.
//   - A groupable rule emits at most one group container.
//   - Render never fails: malformed input degrades to recovered fragments
//     or a fixed placeholder, and unexpected failures become a visible
//     error placeholder instead of propagating.
//
// Output is restricted to div/span wrappers with class attributes plus
// img/figure fragments for illustrations. All text is escaped.
//
// A Renderer is stateless across calls: the profile is read-only during a
// call and shareable across concurrent calls, and each call owns its own
// visited set and language state.
package render
