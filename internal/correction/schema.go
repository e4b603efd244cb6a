// Package correction reads and writes veto-map grids in the
// correctionlib schema v2 JSON format, with transparent gzip handling.
package correction

// The structs below mirror the subset of correctionlib schema v2 the
// veto maps use: a category node keyed by map name whose values are 2D
// multibinning lookup tables.

// Set is a top-level correction set document.
type Set struct {
	SchemaVersion int          `json:"schema_version"`
	Description   string       `json:"description,omitempty"`
	Corrections   []Correction `json:"corrections"`
}

// Correction is one named correction inside a set.
type Correction struct {
	Version     int        `json:"version"`
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	Inputs      []Variable `json:"inputs"`
	Output      Variable   `json:"output"`
	Data        Category   `json:"data"`
}

// Variable describes one correction input or output.
type Variable struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Description string `json:"description,omitempty"`
}

// Category is a string-keyed dispatch node.
type Category struct {
	NodeType string         `json:"nodetype"` // always "category"
	Input    string         `json:"input"`
	Content  []CategoryItem `json:"content"`
}

// CategoryItem is one key → multibinning entry of a category node.
type CategoryItem struct {
	Key   string       `json:"key"`
	Value MultiBinning `json:"value"`
}

// MultiBinning is an N-dimensional binned lookup table; the veto maps
// always use two axes (eta, phi) with contents flattened eta-major.
type MultiBinning struct {
	NodeType string      `json:"nodetype"` // always "multibinning"
	Inputs   []string    `json:"inputs"`
	Edges    [][]float64 `json:"edges"`
	Content  []float64   `json:"content"`
	Flow     float64     `json:"flow"`
}

const (
	nodeCategory     = "category"
	nodeMultiBinning = "multibinning"
	schemaVersion    = 2
)
