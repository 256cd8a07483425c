package cograph

// Config holds all configuration for the co-occurrence pipeline.
type Config struct {
	// TopN is the number of highest-frequency word pairs kept for the graph.
	TopN int `json:"top_n" yaml:"top_n"`

	// WeightMultiplier scales a pair's count into its edge weight.
	WeightMultiplier int `json:"weight_multiplier" yaml:"weight_multiplier"`

	// CanonicalPairs orders each pair alphabetically before counting, so
	// (a,b) and (b,a) share one key. Off by default: the two orientations
	// are counted separately and a later edge insert for the same unordered
	// pair overwrites the earlier weight.
	CanonicalPairs bool `json:"canonical_pairs" yaml:"canonical_pairs"`

	// Layout and rendering.
	Spacing    float64 `json:"spacing" yaml:"spacing"`         // repulsion constant of the spring layout
	FontSize   float64 `json:"font_size" yaml:"font_size"`     // node label size in points
	LineWidth  float64 `json:"line_width" yaml:"line_width"`   // edge stroke width in points
	LayoutSeed int64   `json:"layout_seed" yaml:"layout_seed"` // 0 = unseeded, positions differ per run

	// SQLite corpus source (only used for .db/.sqlite inputs).
	SQLiteTable  string `json:"sqlite_table" yaml:"sqlite_table"`
	SQLiteColumn string `json:"sqlite_column" yaml:"sqlite_column"`
}

// DefaultConfig returns a Config matching the original analysis defaults.
func DefaultConfig() Config {
	return Config{
		TopN:             60,
		WeightMultiplier: 5,
		Spacing:          2.0,
		FontSize:         16,
		LineWidth:        3,
		SQLiteTable:      "lines",
		SQLiteColumn:     "text",
	}
}

// validate checks the fields Run depends on.
func (c Config) validate() error {
	if c.TopN < 0 {
		return ErrInvalidConfig
	}
	if c.WeightMultiplier <= 0 {
		return ErrInvalidConfig
	}
	if c.Spacing <= 0 {
		return ErrInvalidConfig
	}
	if c.FontSize <= 0 || c.LineWidth <= 0 {
		return ErrInvalidConfig
	}
	return nil
}
