// Package creature assembles parts and a brain into an agent that senses,
// thinks, and acts once per tick.
package creature

import (
	"context"
	"errors"

	"creatures/internal/io"
	"creatures/internal/log"
	"creatures/internal/nn"
	"creatures/internal/render"
)

var ErrNoParts = errors.New("creature needs at least one part")

type Creature struct {
	parts    []*Part
	sensors  []io.Sensor
	triggers []io.Actuator
	brain    *nn.Network
	fitness  float64
}

// New wires a brain with one input per part sensor and one output per part
// trigger, fully connected.
func New(parts []*Part, opts ...nn.Option) (*Creature, error) {
	if len(parts) == 0 {
		return nil, ErrNoParts
	}

	c := &Creature{parts: append([]*Part(nil), parts...)}
	for _, part := range parts {
		c.sensors = append(c.sensors, part.sensors...)
		c.triggers = append(c.triggers, part.triggers...)
	}

	brain, err := nn.New([]int{len(c.sensors), len(c.triggers)}, opts...)
	if err != nil {
		return nil, err
	}
	c.brain = brain.FullyConnect()
	return c, nil
}

// Randomize adds numConnections random structural mutations to the brain.
func (c *Creature) Randomize(numConnections int) error {
	_, err := c.brain.Randomize(numConnections)
	return err
}

// Tick feeds every sensor reading through the brain and hands each output
// to the matching trigger. A brain that fails to activate is reported and
// the tick has no effect.
func (c *Creature) Tick(ctx context.Context) error {
	inputs, err := io.ReadAll(ctx, c.sensors)
	if err != nil {
		return err
	}

	outputs, err := c.brain.Activate(inputs)
	if err != nil {
		log.Warningf("creature brain skipped tick: %v", err)
		return nil
	}
	return io.WriteAll(ctx, c.triggers, outputs)
}

func (c *Creature) Parts() []*Part {
	return append([]*Part(nil), c.parts...)
}

func (c *Creature) Brain() *nn.Network {
	return c.brain
}

func (c *Creature) Sensors() []io.Sensor {
	return append([]io.Sensor(nil), c.sensors...)
}

func (c *Creature) Triggers() []io.Actuator {
	return append([]io.Actuator(nil), c.triggers...)
}

func (c *Creature) Fitness() float64 {
	return c.fitness
}

func (c *Creature) SetFitness(fitness float64) {
	c.fitness = fitness
}

func (c *Creature) Render(g render.Graphics) {
	for _, part := range c.parts {
		part.Render(g)
	}
}
