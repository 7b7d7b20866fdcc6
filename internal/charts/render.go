package charts

import (
	"fmt"
	"image/color"
	"io"
	"math"
	"strconv"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Default PNG dimensions.
const (
	DefaultImageWidth  = 12 * vg.Inch
	DefaultImageHeight = 7 * vg.Inch
)

var (
	barWidth        = vg.Points(10)
	minMarkerRadius = vg.Points(3)
	maxMarkerRadius = vg.Points(15)
)

var fallbackColor = color.RGBA{R: 0x7f, G: 0x8c, B: 0x8d, A: 0xff}

// Render draws spec as a PNG image. Bar charts are grouped over the union of
// their categories; a missing or non-finite value draws an empty bar.
// Scatter points with a non-finite coordinate are skipped.
func Render(w io.Writer, spec Spec, width, height vg.Length) error {
	p := plot.New()
	p.Title.Text = spec.Layout.Title
	p.X.Label.Text = spec.Layout.XAxisTitle
	p.Y.Label.Text = spec.Layout.YAxisTitle
	p.Legend.Top = true

	var err error
	switch spec.Kind() {
	case KindBar:
		err = addBars(p, spec.Data)
	case KindScatter:
		err = addScatter(p, spec.Data)
	}
	if err != nil {
		return fmt.Errorf("render %q: %w", spec.Layout.Title, err)
	}

	if spec.Layout.XTickAngle != 0 {
		p.X.Tick.Label.Rotation = -spec.Layout.XTickAngle * math.Pi / 180
		p.X.Tick.Label.XAlign = draw.XLeft
		p.X.Tick.Label.YAlign = draw.YTop
	}

	wt, err := p.WriterTo(width, height, "png")
	if err != nil {
		return fmt.Errorf("render %q: %w", spec.Layout.Title, err)
	}
	if _, err := wt.WriteTo(w); err != nil {
		return fmt.Errorf("render %q: write image: %w", spec.Layout.Title, err)
	}
	return nil
}

func addBars(p *plot.Plot, series []Series) error {
	categories := categoryUnion(series)
	if len(categories) == 0 {
		return nil
	}
	position := make(map[string]int, len(categories))
	for i, c := range categories {
		position[c] = i
	}

	n := len(series)
	for i, s := range series {
		values := make(plotter.Values, len(categories))
		for j, c := range s.Categories {
			if j < len(s.Y) && s.Y[j].Valid() {
				values[position[c]] = float64(s.Y[j])
			}
		}

		chart, err := plotter.NewBarChart(values, barWidth)
		if err != nil {
			return fmt.Errorf("series %q: %w", s.Name, err)
		}
		chart.Color = parseHexColor(s.Color)
		chart.LineStyle.Width = vg.Length(0)
		chart.Offset = vg.Length(float64(i)-float64(n-1)/2) * barWidth

		p.Add(chart)
		if s.Name != "" {
			p.Legend.Add(s.Name, chart)
		}
	}
	p.NominalX(categories...)
	return nil
}

func addScatter(p *plot.Plot, series []Series) error {
	p.Add(plotter.NewGrid())

	for _, s := range series {
		colors := colorScale(s)
		maxSize := 0.0
		for _, v := range s.Size {
			if v.Valid() {
				maxSize = max(maxSize, float64(v))
			}
		}

		var (
			xys    plotter.XYs
			labels []string
			styles []draw.GlyphStyle
		)
		for j := range s.X {
			if j >= len(s.Y) || !s.X[j].Valid() || !s.Y[j].Valid() {
				continue
			}
			xys = append(xys, plotter.XY{X: float64(s.X[j]), Y: float64(s.Y[j])})
			labels = append(labels, at(s.Text, j))
			styles = append(styles, draw.GlyphStyle{
				Color:  colors(j),
				Radius: markerRadius(s.Size, j, maxSize),
				Shape:  draw.CircleGlyph{},
			})
		}
		if len(xys) == 0 {
			continue
		}

		scatter, err := plotter.NewScatter(xys)
		if err != nil {
			return fmt.Errorf("series %q: %w", s.Name, err)
		}
		scatter.GlyphStyleFunc = func(i int) draw.GlyphStyle { return styles[i] }
		p.Add(scatter)

		names, err := plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: labels})
		if err != nil {
			return fmt.Errorf("series %q labels: %w", s.Name, err)
		}
		p.Add(names)
	}
	return nil
}

// colorScale maps each point to a color, on a blue-red scale when the series
// carries per-point color values.
func colorScale(s Series) func(int) color.Color {
	solid := parseHexColor(s.Color)

	lo, hi := math.Inf(1), math.Inf(-1)
	for _, v := range s.ColorValues {
		if v.Valid() {
			lo = min(lo, float64(v))
			hi = max(hi, float64(v))
		}
	}
	if math.IsInf(lo, 1) {
		return func(int) color.Color { return solid }
	}
	if hi <= lo {
		hi = lo + 1
	}

	var cmap palette.ColorMap = moreland.SmoothBlueRed()
	cmap.SetMax(hi)
	cmap.SetMin(lo)

	return func(i int) color.Color {
		if i >= len(s.ColorValues) || !s.ColorValues[i].Valid() {
			return solid
		}
		c, err := cmap.At(float64(s.ColorValues[i]))
		if err != nil {
			return solid
		}
		return c
	}
}

func markerRadius(size []Number, i int, maxSize float64) vg.Length {
	if i >= len(size) || !size[i].Valid() || maxSize <= 0 || size[i] <= 0 {
		return minMarkerRadius
	}
	ratio := math.Sqrt(float64(size[i]) / maxSize)
	return minMarkerRadius + vg.Length(ratio)*(maxMarkerRadius-minMarkerRadius)
}

func categoryUnion(series []Series) []string {
	var categories []string
	seen := make(map[string]bool)
	for _, s := range series {
		for _, c := range s.Categories {
			if !seen[c] {
				seen[c] = true
				categories = append(categories, c)
			}
		}
	}
	return categories
}

func at(values []string, i int) string {
	if i < len(values) {
		return values[i]
	}
	return ""
}

// parseHexColor reads "#rrggbb".
func parseHexColor(s string) color.Color {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return fallbackColor
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return fallbackColor
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}
}
