// Package types defines the grid data model, the veto-map variant
// tables, region geometry, plot styling, and the standard error types
// shared by the jet-veto-map toolkit.
package types
