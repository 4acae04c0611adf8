// Package core contains the view shell: app-wide state, message contracts and
// state orchestration.
//
// Allowed here:
// - the root model and the operations that mutate its UI state
// - message contracts, key registry, screen stack
// - header, navigation, status and footer chrome
//
// Not allowed here:
// - concrete panel or sheet rendering
// - low-level widget rendering primitives
package core
