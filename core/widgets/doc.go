// Package widgets contains dumb render primitives.
//
// Allowed here:
// - stateless drawing/composition helpers (card chrome, stacks, marker field, bottom sheet compositor)
//
// Not allowed here:
// - key handling, app state transitions, scope logic, or panel policy
package widgets
