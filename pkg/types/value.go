package types

// The veto-map production encodes hot towers as +100 and dead channels
// as -100 inside the histogram contents. Classify tags those sentinels
// once at the data-model boundary so downstream code never compares
// against the magic numbers itself.

// CellClass labels the content of a single veto-map cell.
type CellClass int

const (
	// CellEmpty is a cell with no veto (content 0).
	CellEmpty CellClass = iota
	// CellHot is a hot-tower override (content +100).
	CellHot
	// CellCold is a dead-channel override (content -100).
	CellCold
	// CellLevel is any other non-zero content, carried as-is.
	CellLevel
)

const (
	hotSentinel  = 100
	coldSentinel = -100
)

// CellValue is a tagged veto-map cell content.
type CellValue struct {
	Class CellClass
	// Level holds the raw content for CellLevel cells and is zero
	// otherwise.
	Level float64
}

// Classify tags a raw bin content.
func Classify(v float64) CellValue {
	switch v {
	case 0:
		return CellValue{Class: CellEmpty}
	case hotSentinel:
		return CellValue{Class: CellHot}
	case coldSentinel:
		return CellValue{Class: CellCold}
	default:
		return CellValue{Class: CellLevel, Level: v}
	}
}

// Vetoed reports whether the cell carries any veto at all.
func (c CellValue) Vetoed() bool { return c.Class != CellEmpty }
