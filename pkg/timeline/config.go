package timeline

// Config holds the geometry and interaction settings of a timeline.
type Config struct {
	// CueSize is the width of a cue marker in pixels.
	CueSize float64
	// MarginLeft and MarginRight are the grip widths. Cues live between them.
	MarginLeft  float64
	MarginRight float64
	// LabelsHeight is the height of the label band above the cues.
	LabelsHeight float64
	// DrawLabels enables the "NN%" labels and reserves the label band.
	DrawLabels bool
	// Precision is the number of decimals cues are rounded to.
	Precision int
	// CornerRadius rounds the cue markers.
	CornerRadius float64
	// CreateModifier must be held with the primary button to create a cue
	// on the background.
	CreateModifier Modifiers
}

// DefaultConfig returns the stock timeline configuration.
func DefaultConfig() Config {
	return Config{
		CueSize:        10,
		MarginLeft:     20,
		MarginRight:    20,
		LabelsHeight:   15,
		DrawLabels:     false,
		Precision:      2,
		CornerRadius:   0,
		CreateModifier: ModControl,
	}
}

// MinWidth is the smallest width a timeline is laid out with. Narrower
// bounds are clamped to it so the cue span stays positive.
func (c Config) MinWidth() float64 {
	return c.MarginLeft + c.MarginRight + 1
}

// cueTop is the top edge of the cue markers.
func (c Config) cueTop() float64 {
	if c.DrawLabels {
		return c.LabelsHeight
	}
	return 0
}
