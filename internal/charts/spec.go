package charts

import (
	"encoding/json"
	"math"
	"strconv"
)

// Kind is the trace type of a Series.
type Kind string

const (
	KindBar     Kind = "bar"
	KindScatter Kind = "scatter"
)

// Number is a chart value. NaN and infinities are written as JSON null so the
// browser draws a gap instead of failing to parse the figure.
type Number float64

// Valid reports whether n is a finite value.
func (n Number) Valid() bool {
	f := float64(n)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

func (n Number) MarshalJSON() ([]byte, error) {
	if !n.Valid() {
		return []byte("null"), nil
	}
	return strconv.AppendFloat(nil, float64(n), 'f', -1, 64), nil
}

func (n *Number) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*n = Number(math.NaN())
		return nil
	}
	f, err := strconv.ParseFloat(string(b), 64)
	if err != nil {
		return err
	}
	*n = Number(f)
	return nil
}

// Series is one trace of a chart. Bar traces use Categories for x; scatter
// traces use X.
type Series struct {
	Type       Kind
	Name       string
	Categories []string
	X          []Number
	Y          []Number
	Text       []string
	Color      string
	// ColorValues, when set, colors each point on ColorScale instead of Color.
	ColorValues []Number
	ColorScale  string
	Size        []Number
	SizeRef     float64
}

type marker struct {
	Color      any      `json:"color,omitempty"`
	ColorScale string   `json:"colorscale,omitempty"`
	ShowScale  bool     `json:"showscale,omitempty"`
	Size       []Number `json:"size,omitempty"`
	SizeMode   string   `json:"sizemode,omitempty"`
	SizeRef    float64  `json:"sizeref,omitempty"`
}

type trace struct {
	Type   Kind     `json:"type"`
	Name   string   `json:"name,omitempty"`
	Mode   string   `json:"mode,omitempty"`
	X      any      `json:"x"`
	Y      []Number `json:"y"`
	Text   []string `json:"text,omitempty"`
	Marker marker   `json:"marker"`
}

// MarshalJSON writes the series as a Plotly trace.
func (s Series) MarshalJSON() ([]byte, error) {
	t := trace{
		Type: s.Type,
		Name: s.Name,
		Y:    s.Y,
		Text: s.Text,
	}
	if t.Y == nil {
		t.Y = []Number{}
	}

	switch {
	case s.Categories != nil:
		t.X = s.Categories
	case s.X != nil:
		t.X = s.X
	default:
		t.X = []string{}
	}

	if s.ColorValues != nil {
		t.Marker.Color = s.ColorValues
		t.Marker.ColorScale = s.ColorScale
		t.Marker.ShowScale = true
	} else if s.Color != "" {
		t.Marker.Color = s.Color
	}

	if s.Size != nil {
		t.Marker.Size = s.Size
		t.Marker.SizeMode = "area"
		t.Marker.SizeRef = s.SizeRef
	}

	if s.Type == KindScatter {
		t.Mode = "markers"
	}

	return json.Marshal(t)
}

// Layout holds the titles and arrangement of a chart.
type Layout struct {
	Title      string
	XAxisTitle string
	YAxisTitle string
	// BarMode is "group" for side-by-side bars, empty otherwise.
	BarMode string
	// XTickAngle rotates x labels clockwise, in degrees.
	XTickAngle float64
}

type titleText struct {
	Text string `json:"text"`
}

type axis struct {
	Title     titleText `json:"title"`
	TickAngle float64   `json:"tickangle,omitempty"`
}

// MarshalJSON writes the layout as a Plotly layout object.
func (l Layout) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Title   titleText `json:"title"`
		XAxis   axis      `json:"xaxis"`
		YAxis   axis      `json:"yaxis"`
		BarMode string    `json:"barmode,omitempty"`
	}{
		Title:   titleText{Text: l.Title},
		XAxis:   axis{Title: titleText{Text: l.XAxisTitle}, TickAngle: l.XTickAngle},
		YAxis:   axis{Title: titleText{Text: l.YAxisTitle}},
		BarMode: l.BarMode,
	})
}

// Spec is the declarative description of one chart, handed to the browser
// (as a Plotly figure) or to Render.
type Spec struct {
	Data   []Series `json:"data"`
	Layout Layout   `json:"layout"`
}

// Kind returns the trace type shared by the series, or "" for an empty chart.
func (s Spec) Kind() Kind {
	if len(s.Data) == 0 {
		return ""
	}
	return s.Data[0].Type
}

func numbers(values []float64) []Number {
	out := make([]Number, len(values))
	for i, v := range values {
		out[i] = Number(v)
	}
	return out
}

func nan() float64 {
	return math.NaN()
}
