package creature

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"creatures/internal/nn"
	"creatures/internal/render"
)

func TestPartSensesBody(t *testing.T) {
	body := NewPointBody(render.Vector{})
	body.Push(render.Vector{X: 3, Y: 4}, -0.5)
	part := NewPart(body, 5, "#00FF00")

	values, err := part.Sense(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []float64{5, 0.5, 0, DefaultFrictionAir}, values)

	names := make([]string, 0, 4)
	for _, sensor := range part.Sensors() {
		names = append(names, sensor.Name())
	}
	assert.Equal(t, []string{SensorSpeed, SensorAngularSpeed, SensorAngle, SensorFrictionAir}, names)
}

func TestPartActClampsFriction(t *testing.T) {
	cases := []struct {
		name     string
		initial  float64
		value    float64
		expected float64
	}{
		{name: "within range", initial: 0.2, value: 0.3, expected: 0.5},
		{name: "above max", initial: 0.8, value: 0.5, expected: MaxFrictionAir},
		{name: "below min", initial: 0.2, value: -0.5, expected: MinFrictionAir},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			body := NewPointBody(render.Vector{})
			body.SetFrictionAir(tc.initial)
			part := NewPart(body, 5, "#00FF00")

			require.NoError(t, part.Act(context.Background(), []float64{tc.value}))
			assert.InDelta(t, tc.expected, body.FrictionAir(), 1e-12)
		})
	}
}

func TestPartActRejectsWrongWidth(t *testing.T) {
	part := NewPart(NewPointBody(render.Vector{}), 5, "#00FF00")
	require.Error(t, part.Act(context.Background(), []float64{1, 2}))
}

func TestPartRenderDrawsShadowThenBody(t *testing.T) {
	body := NewPointBody(render.Vector{X: 20, Y: 30})
	part := NewPart(body, 7, "#123456")
	recorder := render.NewRecorder()

	part.Render(recorder)
	require.Len(t, recorder.Calls, 2)

	shadow := recorder.Calls[0]
	assert.Equal(t, render.Vector{X: 23, Y: 33}, shadow.From)
	assert.Equal(t, 7.0, shadow.Radius)
	assert.Equal(t, "#000000", shadow.Style.FillStyle)
	assert.Equal(t, 0.2, shadow.Style.GlobalAlpha)

	front := recorder.Calls[1]
	assert.Equal(t, render.Vector{X: 20, Y: 30}, front.From)
	assert.Equal(t, "#123456", front.Style.FillStyle)
	assert.Equal(t, 0.25, front.Style.GlobalAlpha)

	body.SetFrictionAir(0.6)
	recorder.Reset()
	part.Render(recorder)
	assert.Equal(t, 0.6, recorder.Calls[1].Style.GlobalAlpha)
}

func TestNewRandomPart(t *testing.T) {
	rng := nn.NewSeededRand(9)
	for i := 0; i < 20; i++ {
		part := NewRandomPart(NewPointBody(render.Vector{}), rng)
		assert.GreaterOrEqual(t, part.Radius(), 3.0)
		assert.LessOrEqual(t, part.Radius(), 12.0)
		assert.Regexp(t, `^#[0-9A-F]{6}$`, part.Color())
	}
}

func TestHueColor(t *testing.T) {
	assert.Equal(t, "#FF0000", hueColor(0))
	assert.Equal(t, "#FFFF00", hueColor(60))
	assert.Equal(t, "#00FF00", hueColor(120))
	assert.Equal(t, "#0000FF", hueColor(240))
	assert.Equal(t, "#FF0000", hueColor(360))
}

func TestPointBodyStep(t *testing.T) {
	body := NewPointBody(render.Vector{X: 1, Y: 1})
	body.SetFrictionAir(0.5)
	body.Push(render.Vector{X: 3, Y: 4}, 2)

	body.Step()
	assert.Equal(t, render.Vector{X: 4, Y: 5}, body.Position())
	assert.Equal(t, 2.0, body.Angle())
	assert.InDelta(t, 2.5, body.Speed(), 1e-12)
	assert.InDelta(t, 1.0, body.AngularSpeed(), 1e-12)
}
