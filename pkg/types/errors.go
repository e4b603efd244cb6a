package types

import "errors"

// Sentinel errors shared across the toolkit. Call sites wrap these with
// context; decision points test them with errors.Is.
var (
	// ErrHistogramNotFound indicates a requested histogram is absent
	// from a ROOT container file.
	ErrHistogramNotFound = errors.New("histogram not found")

	// ErrMapNotFound indicates a requested map key is absent from a
	// correction-set JSON document.
	ErrMapNotFound = errors.New("map not found")

	// ErrEdgeMismatch indicates two grids disagree on bin edges beyond
	// the comparison tolerance.
	ErrEdgeMismatch = errors.New("bin edge mismatch")

	// ErrBinCountMismatch indicates two grids disagree on the number of
	// bins.
	ErrBinCountMismatch = errors.New("bin count mismatch")

	// ErrVariantUnknown indicates an unrecognized veto-map variant name.
	ErrVariantUnknown = errors.New("unknown veto-map variant")
)
