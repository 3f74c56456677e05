package creature

import (
	"math"
	"sync"

	"creatures/internal/render"
)

// Body is the physics handle a part senses and acts on.
type Body interface {
	Position() render.Vector
	Speed() float64
	AngularSpeed() float64
	Angle() float64
	FrictionAir() float64
	SetFrictionAir(value float64)
}

// DefaultFrictionAir matches the air friction of a freshly created rigid body.
const DefaultFrictionAir = 0.01

// PointBody is a minimal frictional point mass. It stands in for a physics
// engine body when creatures are simulated headless.
type PointBody struct {
	mu              sync.RWMutex
	position        render.Vector
	velocity        render.Vector
	angle           float64
	angularVelocity float64
	frictionAir     float64
}

func NewPointBody(position render.Vector) *PointBody {
	return &PointBody{position: position, frictionAir: DefaultFrictionAir}
}

func (b *PointBody) Position() render.Vector {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.position
}

func (b *PointBody) Speed() float64 {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return math.Hypot(b.velocity.X, b.velocity.Y)
}

func (b *PointBody) AngularSpeed() float64 {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return math.Abs(b.angularVelocity)
}

func (b *PointBody) Angle() float64 {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.angle
}

func (b *PointBody) FrictionAir() float64 {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.frictionAir
}

func (b *PointBody) SetFrictionAir(value float64) {
	b.mu.Lock()
	b.frictionAir = value
	b.mu.Unlock()
}

// Push adds to the linear and angular velocity.
func (b *PointBody) Push(velocity render.Vector, angular float64) {
	b.mu.Lock()
	b.velocity = b.velocity.Add(velocity)
	b.angularVelocity += angular
	b.mu.Unlock()
}

// Step advances the body by one time unit, damping both velocities by the
// air friction.
func (b *PointBody) Step() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.position = b.position.Add(b.velocity)
	b.angle += b.angularVelocity

	damping := 1 - b.frictionAir
	b.velocity = render.Vector{X: b.velocity.X * damping, Y: b.velocity.Y * damping}
	b.angularVelocity *= damping
}
