package creature

import (
	"context"
	"fmt"
	"math"

	"creatures/internal/io"
	"creatures/internal/nn"
	"creatures/internal/render"
)

const (
	ShadowOffset   = 3
	MinFrictionAir = 0.1
	MaxFrictionAir = 1
	minAlpha       = 0.25
	shadowAlpha    = 0.2
	minRandRadius  = 3
	maxRandRadius  = 12
)

const (
	SensorSpeed        = "speed"
	SensorAngularSpeed = "angular_speed"
	SensorAngle        = "angle"
	SensorFrictionAir  = "friction_air"
	TriggerFrictionAir = "friction_air"
)

// Part is one round body segment of a creature. It exposes four sensors and
// a single trigger that adjusts its air friction.
type Part struct {
	body     Body
	radius   float64
	color    string
	sensors  []io.Sensor
	triggers []io.Actuator
}

func NewPart(body Body, radius float64, color string) *Part {
	p := &Part{body: body, radius: radius, color: color}
	p.sensors = []io.Sensor{
		io.NewFuncSensor(SensorSpeed, body.Speed),
		io.NewFuncSensor(SensorAngularSpeed, body.AngularSpeed),
		io.NewFuncSensor(SensorAngle, body.Angle),
		io.NewFuncSensor(SensorFrictionAir, body.FrictionAir),
	}
	p.triggers = []io.Actuator{
		io.NewFuncActuator(TriggerFrictionAir, func(value float64) {
			body.SetFrictionAir(nn.Sat(body.FrictionAir()+value, MaxFrictionAir, MinFrictionAir))
		}),
	}
	return p
}

// NewRandomPart picks a radius in [3, 12] and a fully saturated hue.
func NewRandomPart(body Body, rng nn.Rand) *Part {
	radius := float64(minRandRadius + rng.Intn(maxRandRadius-minRandRadius+1))
	return NewPart(body, radius, hueColor(rng.Intn(361)))
}

func (p *Part) Body() Body {
	return p.body
}

func (p *Part) Radius() float64 {
	return p.radius
}

func (p *Part) Color() string {
	return p.color
}

func (p *Part) Sensors() []io.Sensor {
	return append([]io.Sensor(nil), p.sensors...)
}

func (p *Part) Triggers() []io.Actuator {
	return append([]io.Actuator(nil), p.triggers...)
}

func (p *Part) Sense(ctx context.Context) ([]float64, error) {
	return io.ReadAll(ctx, p.sensors)
}

func (p *Part) Act(ctx context.Context, values []float64) error {
	return io.WriteAll(ctx, p.triggers, values)
}

// Render draws a translucent shadow offset down and right, then the part
// itself with an opacity that follows its air friction.
func (p *Part) Render(g render.Graphics) {
	position := p.body.Position()
	g.DrawCircle(position.Add(render.Vector{X: ShadowOffset, Y: ShadowOffset}), p.radius, render.Style{
		FillStyle:   "#000000",
		GlobalAlpha: shadowAlpha,
	})
	g.DrawCircle(position, p.radius, render.Style{
		FillStyle:   p.color,
		GlobalAlpha: nn.Sat(p.body.FrictionAir(), 1, minAlpha),
	})
}

// hueColor converts a hue in degrees at full saturation and half lightness
// to a hex colour.
func hueColor(hue int) string {
	h := float64(hue%360) / 60
	x := 1 - math.Abs(math.Mod(h, 2)-1)
	var r, g, b float64
	switch {
	case h < 1:
		r, g, b = 1, x, 0
	case h < 2:
		r, g, b = x, 1, 0
	case h < 3:
		r, g, b = 0, 1, x
	case h < 4:
		r, g, b = 0, x, 1
	case h < 5:
		r, g, b = x, 0, 1
	default:
		r, g, b = 1, 0, x
	}
	return fmt.Sprintf("#%02X%02X%02X", int(math.Round(r*255)), int(math.Round(g*255)), int(math.Round(b*255)))
}
