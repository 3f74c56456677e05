package nn

import (
	"fmt"
	"math"

	"creatures/internal/render"
)

// RenderOptions controls the layout of a network drawing.
type RenderOptions struct {
	NodeRadius           float64
	NodeDistance         float64
	LayerDistance        float64
	ConnectionLineWeight float64
}

func DefaultRenderOptions() RenderOptions {
	return RenderOptions{
		NodeRadius:           15,
		NodeDistance:         30,
		LayerDistance:        30,
		ConnectionLineWeight: 4,
	}
}

// Render draws the cached connections, then one circle per neuron shaded by
// its value with the value printed on top. Layers run left to right and
// neurons top to bottom.
func (n *Network) Render(g render.Graphics, origin render.Vector, opts RenderOptions) {
	for _, connection := range n.connections {
		from := opts.nodeCenter(origin, connection.From)
		to := opts.nodeCenter(origin, connection.To)
		g.DrawLine(from, to, render.Style{
			LineWidth:   1 + connection.Weight*(opts.ConnectionLineWeight-1),
			StrokeStyle: "#FFFFFF",
		})
	}

	for _, layer := range n.layers {
		for _, neuron := range layer.neurons {
			center := opts.nodeCenter(origin, neuron)
			intensity := int(Sat(math.Floor(256*neuron.value), 255, 0))
			g.DrawCircle(center, opts.NodeRadius, render.Style{
				LineWidth:   2,
				StrokeStyle: "#FFFFFF",
				FillStyle:   grey(intensity),
			})
			g.WriteText(center.X, center.Y, fmt.Sprintf("%.2f", neuron.value), render.Style{
				Font:         "12px sans-serif",
				FillStyle:    grey(255 - intensity),
				TextAlign:    "center",
				TextBaseline: "middle",
			})
		}
	}
}

func (o RenderOptions) nodeCenter(origin render.Vector, neuron *Neuron) render.Vector {
	return render.Vector{
		X: origin.X + o.NodeRadius + (2*o.NodeRadius+o.LayerDistance)*float64(neuron.layer.ordinal),
		Y: origin.Y + o.NodeRadius + (2*o.NodeRadius+o.NodeDistance)*float64(neuron.ordinal),
	}
}

func grey(intensity int) string {
	return fmt.Sprintf("#%02X%02X%02X", intensity, intensity, intensity)
}
