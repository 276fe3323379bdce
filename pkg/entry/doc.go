// Package entry models a parsed dictionary entry as an immutable element
// tree.
//
// An entry arrives as conventionally namespaced XML. Parse strips namespace
// declarations and prefixes, assigns every node a stable arena index in
// document order, and classifies each element into a closed Kind enum that
// drives extraction dispatch during rendering. Per-render state (the visited
// set) is keyed by Node.Index, never by pointer identity.
//
// RecoverFragments provides the degraded path for documents that fail to
// parse: it pulls literal text fragments out of the raw markup so the
// renderer can still show something.
package entry
