// Package render draws veto-map grids as PNG images with gonum/plot.
// All styling arrives through an explicit types.PlotStyle; nothing here
// mutates package-level plotting state.
package render

import (
	"fmt"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/ravindkv/cms-jme-scripts/pkg/types"
)

// colorBarWidth is the horizontal space reserved for the palette bar.
const colorBarWidth = 50

// gridXYZ adapts a Grid to gonum's heat-map data interface over bin
// centers.
type gridXYZ struct {
	g *types.Grid
}

func (a gridXYZ) Dims() (c, r int)   { return a.g.Nx(), a.g.Ny() }
func (a gridXYZ) X(c int) float64    { return a.g.CenterX(c) }
func (a gridXYZ) Y(r int) float64    { return a.g.CenterY(r) }
func (a gridXYZ) Z(c, r int) float64 { return a.g.At(c, r) }

// Heatmap renders a single grid with a side colour bar.
func Heatmap(g *types.Grid, style types.PlotStyle, path string) error {
	min, max := valueRange(g)
	return heatmap(g, style, path, min, max)
}

func heatmap(g *types.Grid, style types.PlotStyle, path string, min, max float64) error {
	if max <= min {
		max = min + 1
	}

	p := newFrame(style)

	colorMap := moreland.ExtendedBlackBody()
	colorMap.SetMin(min)
	colorMap.SetMax(max)
	heat := plotter.NewHeatMap(gridXYZ{g}, colorMap.Palette(255))
	heat.Min = min
	heat.Max = max
	p.Add(heat)

	bar := plot.New()
	bar.Add(&plotter.ColorBar{ColorMap: colorMap, Vertical: true})
	bar.HideX()
	bar.Y.Padding = 0

	return writePNG(path, style, p, bar)
}

// HotCold renders hot towers and dead channels of a veto map as a
// diverging two-sided image: a cell is hot when both the master map and
// the hot map are non-empty, cold when the master and the cold map are,
// and neutral otherwise.
func HotCold(master, hot, cold *types.Grid, style types.PlotStyle, path string) error {
	if !master.SameBinning(hot) || !master.SameBinning(cold) {
		return fmt.Errorf("%w: master %dx%d, hot %dx%d, cold %dx%d",
			types.ErrBinCountMismatch,
			master.Nx(), master.Ny(), hot.Nx(), hot.Ny(), cold.Nx(), cold.Ny())
	}

	comp := master.Clone()
	for i := range comp.Values {
		switch {
		case !types.Classify(master.Values[i]).Vetoed():
			comp.Values[i] = 0
		case types.Classify(hot.Values[i]).Vetoed():
			comp.Values[i] = 1
		case types.Classify(cold.Values[i]).Vetoed():
			comp.Values[i] = -1
		default:
			comp.Values[i] = 0
		}
	}

	p := newFrame(style)

	colorMap := moreland.SmoothBlueRed()
	colorMap.SetMin(-1)
	colorMap.SetMax(1)
	heat := plotter.NewHeatMap(gridXYZ{comp}, colorMap.Palette(255))
	heat.Min = -1
	heat.Max = 1
	p.Add(heat)

	bar := plot.New()
	bar.Add(&plotter.ColorBar{ColorMap: colorMap, Vertical: true})
	bar.HideX()
	bar.Y.Padding = 0

	return writePNG(path, style, p, bar)
}

// Layer is one veto-map variant to composite into an overlay image.
type Layer struct {
	Variant types.Variant
	Grid    *types.Grid
}

// Overlay composites several variant grids into one image. Sentinel
// contents are remapped to the variant display levels (hot towers to
// the top of the scale, dead channels just above the bottom); plain
// levels pass through. The first layer claiming a cell wins.
func Overlay(layers []Layer, style types.PlotStyle, path string) error {
	comp, err := composite(layers)
	if err != nil {
		return err
	}
	return heatmap(comp, style, path,
		types.VariantCold.DisplayLevel(), types.VariantHot.DisplayLevel())
}

// composite merges variant layers into a single display grid. The
// first layer claiming a cell wins.
func composite(layers []Layer) (*types.Grid, error) {
	if len(layers) == 0 {
		return nil, fmt.Errorf("no layers to overlay")
	}
	base := layers[0].Grid
	for _, l := range layers[1:] {
		if !base.SameBinning(l.Grid) {
			return nil, fmt.Errorf("%w: %q is %dx%d, %q is %dx%d",
				types.ErrBinCountMismatch,
				base.Name, base.Nx(), base.Ny(),
				l.Grid.Name, l.Grid.Nx(), l.Grid.Ny())
		}
	}

	coldLevel := types.VariantCold.DisplayLevel()

	comp := base.Clone()
	comp.Name = "overlay"
	for i := range comp.Values {
		comp.Values[i] = 0
		for _, l := range layers {
			cv := types.Classify(l.Grid.Values[i])
			if !cv.Vetoed() {
				continue
			}
			switch cv.Class {
			case types.CellHot:
				comp.Values[i] = l.Variant.DisplayLevel()
			case types.CellCold:
				comp.Values[i] = coldLevel + 0.1
			default:
				comp.Values[i] = cv.Level
			}
			break
		}
	}
	return comp, nil
}

// newFrame builds the annotated plot frame for a veto-map image.
func newFrame(style types.PlotStyle) *plot.Plot {
	p := plot.New()
	p.Title.Text = style.Header()
	p.X.Label.Text = style.XLabel
	p.Y.Label.Text = style.YLabel
	p.X.Min, p.X.Max = style.XMin, style.XMax
	p.Y.Min, p.Y.Max = style.YMin, style.YMax
	return p
}

// writePNG lays the map and its colour bar side by side and writes the
// canvas out.
func writePNG(path string, style types.PlotStyle, p, bar *plot.Plot) (err error) {
	img := vgimg.New(vg.Length(style.WidthPt), vg.Length(style.HeightPt))
	dc := draw.New(img)

	p.Draw(draw.Crop(dc, 0, -colorBarWidth-20, 0, 0))
	bar.Draw(draw.Crop(dc, vg.Length(style.WidthPt)-colorBarWidth, 0, 0, 0))

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %q: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %q: %w", path, cerr)
		}
	}()

	png := vgimg.PngCanvas{Canvas: img}
	if _, err := png.WriteTo(f); err != nil {
		return fmt.Errorf("write %q: %w", path, err)
	}
	return nil
}

func valueRange(g *types.Grid) (min, max float64) {
	if len(g.Values) == 0 {
		return 0, 1
	}
	min, max = g.Values[0], g.Values[0]
	for _, v := range g.Values[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return min, max
}
