// Package io connects creature brains to the world through sensors and
// actuators.
package io

import "context"

type Sensor interface {
	Name() string
	Read(ctx context.Context) ([]float64, error)
}

type Actuator interface {
	Name() string
	Write(ctx context.Context, values []float64) error
}

// SnapshotActuator is an optional actuator capability for inspecting the
// most recent output.
type SnapshotActuator interface {
	Last() []float64
}
