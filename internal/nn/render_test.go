package nn

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"creatures/internal/render"
)

func TestRenderDrawsConnectionsThenNodes(t *testing.T) {
	network := mustNetwork(t, []int{2, 1}, WithRand(&scriptedRand{floats: []float64{1}})).FullyConnect()
	_, err := network.Activate([]float64{0, 1})
	require.NoError(t, err)

	rec := render.NewRecorder()
	opts := RenderOptions{NodeRadius: 10, NodeDistance: 20, LayerDistance: 30, ConnectionLineWeight: 3}
	network.Render(rec, render.Vector{X: 100, Y: 50}, opts)

	assert.Equal(t, 2, rec.Count(render.CallLine))
	assert.Equal(t, 3, rec.Count(render.CallCircle))
	assert.Equal(t, 3, rec.Count(render.CallText))

	require.Equal(t, render.CallLine, rec.Calls[0].Kind)
	require.Equal(t, render.CallLine, rec.Calls[1].Kind)

	first := rec.Calls[0]
	assert.Equal(t, render.Vector{X: 110, Y: 60}, first.From)
	assert.Equal(t, render.Vector{X: 160, Y: 60}, first.To)
	// Weight 1 yields the full line weight.
	assert.InDelta(t, 3.0, first.Style.LineWidth, 1e-12)

	second := rec.Calls[1]
	assert.Equal(t, render.Vector{X: 110, Y: 100}, second.From)

	circle := rec.Calls[2]
	assert.Equal(t, render.CallCircle, circle.Kind)
	assert.Equal(t, 10.0, circle.Radius)
	assert.Equal(t, "#000000", circle.Style.FillStyle)

	text := rec.Calls[3]
	assert.Equal(t, render.CallText, text.Kind)
	assert.Equal(t, "0.00", text.Text)
	assert.Equal(t, "#FFFFFF", text.Style.FillStyle)
	assert.Equal(t, "center", text.Style.TextAlign)
}

func TestRenderClampsIntensity(t *testing.T) {
	network := mustNetwork(t, []int{1, 1}, WithActivation(Identity), WithRand(&scriptedRand{floats: []float64{1}})).FullyConnect()
	_, err := network.Activate([]float64{5})
	require.NoError(t, err)

	rec := render.NewRecorder()
	network.Render(rec, render.Vector{}, DefaultRenderOptions())

	var fills []string
	for _, call := range rec.Calls {
		if call.Kind == render.CallCircle {
			fills = append(fills, call.Style.FillStyle)
		}
	}
	assert.Equal(t, []string{"#FFFFFF", "#FFFFFF"}, fills)
}
