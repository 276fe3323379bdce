// Package profile defines the display profile: the ordered, filterable rule
// list that drives entry rendering.
//
// A profile is user-configurable data, not code. Each Rule binds one node
// type to an output position, a wrapper (span or div with a class),
// decorations, a visibility policy, an optional type-attribute filter, a
// group separator, an optional forced language and an optional extraction
// aspect. Profiles arrive fully formed (storage is a collaborator concern);
// this package only decodes, orders and queries them.
package profile
