// Package screens contains the overlay flows drawn on top of panels.
//
// Allowed here:
// - screen implementations that satisfy core.Screen (the transport sheet)
// - sheet-specific presentation and interaction wiring
//
// Not allowed here:
// - app-wide routing tables and key registry ownership
// - low-level widget/layout primitives
package screens
