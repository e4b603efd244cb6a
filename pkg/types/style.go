package types

// PlotStyle collects every styling knob the rendering code needs. It is
// passed explicitly into render calls; nothing in the toolkit mutates
// shared plotting state.
type PlotStyle struct {
	Title     string  `mapstructure:"title"`
	ExtraText string  `mapstructure:"extra_text"` // e.g. "Preliminary"
	LumiText  string  `mapstructure:"lumi_text"`  // e.g. "2024 RunBtoI, 109 fb^-1"
	Energy    string  `mapstructure:"energy"`     // center-of-mass energy in TeV
	XLabel    string  `mapstructure:"x_label"`
	YLabel    string  `mapstructure:"y_label"`
	XMin      float64 `mapstructure:"x_min"`
	XMax      float64 `mapstructure:"x_max"`
	YMin      float64 `mapstructure:"y_min"`
	YMax      float64 `mapstructure:"y_max"`
	WidthPt   float64 `mapstructure:"width_pt"`  // canvas width in points
	HeightPt  float64 `mapstructure:"height_pt"` // canvas height in points
}

// DefaultStyle returns the house style for veto-map images: the full
// detector acceptance in eta and phi and the CMS preliminary labels.
func DefaultStyle() PlotStyle {
	return PlotStyle{
		Title:     "Jet veto map",
		ExtraText: "Preliminary",
		Energy:    "13.6",
		XLabel:    "eta (jet)",
		YLabel:    "phi (jet)",
		XMin:      -5.2,
		XMax:      5.2,
		YMin:      -3.15,
		YMax:      3.15,
		WidthPt:   670,
		HeightPt:  400,
	}
}

// Header returns the annotation line drawn above the frame.
func (s PlotStyle) Header() string {
	h := "CMS"
	if s.ExtraText != "" {
		h += " " + s.ExtraText
	}
	if s.LumiText != "" {
		h += "   " + s.LumiText
	}
	if s.Energy != "" {
		h += "  (" + s.Energy + " TeV)"
	}
	return h
}
