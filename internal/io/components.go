package io

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

var ErrWidthMismatch = errors.New("actuator width mismatch")

var _ SnapshotActuator = (*FuncActuator)(nil)

// FuncSensor adapts a closure returning one reading into a Sensor.
type FuncSensor struct {
	name string
	read func() float64
}

func NewFuncSensor(name string, read func() float64) *FuncSensor {
	return &FuncSensor{name: name, read: read}
}

func (s *FuncSensor) Name() string {
	return s.name
}

func (s *FuncSensor) Read(ctx context.Context) ([]float64, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return []float64{s.read()}, nil
}

// FuncActuator adapts a closure consuming one value into an Actuator.
type FuncActuator struct {
	name  string
	write func(value float64)

	mu   sync.RWMutex
	last []float64
}

func NewFuncActuator(name string, write func(value float64)) *FuncActuator {
	return &FuncActuator{name: name, write: write}
}

func (a *FuncActuator) Name() string {
	return a.name
}

func (a *FuncActuator) Write(ctx context.Context, values []float64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if len(values) != 1 {
		return fmt.Errorf("%w: %s expects 1 value, got %d", ErrWidthMismatch, a.name, len(values))
	}
	a.write(values[0])

	a.mu.Lock()
	a.last = append(a.last[:0], values...)
	a.mu.Unlock()
	return nil
}

func (a *FuncActuator) Last() []float64 {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return append([]float64(nil), a.last...)
}

// ValueSensor reports a settable scalar.
type ValueSensor struct {
	name string

	mu    sync.RWMutex
	value float64
}

func NewValueSensor(name string, initial float64) *ValueSensor {
	return &ValueSensor{name: name, value: initial}
}

func (s *ValueSensor) Name() string {
	return s.name
}

func (s *ValueSensor) Read(_ context.Context) ([]float64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return []float64{s.value}, nil
}

func (s *ValueSensor) Set(value float64) {
	s.mu.Lock()
	s.value = value
	s.mu.Unlock()
}

// ReadAll concatenates the readings of every sensor in order.
func ReadAll(ctx context.Context, sensors []Sensor) ([]float64, error) {
	values := make([]float64, 0, len(sensors))
	for _, sensor := range sensors {
		reading, err := sensor.Read(ctx)
		if err != nil {
			return nil, fmt.Errorf("read sensor %s: %w", sensor.Name(), err)
		}
		values = append(values, reading...)
	}
	return values, nil
}

// WriteAll hands one value to each actuator in order.
func WriteAll(ctx context.Context, actuators []Actuator, values []float64) error {
	if len(values) != len(actuators) {
		return fmt.Errorf("%w: %d actuators, %d values", ErrWidthMismatch, len(actuators), len(values))
	}
	for i, actuator := range actuators {
		if err := actuator.Write(ctx, values[i:i+1]); err != nil {
			return fmt.Errorf("write actuator %s: %w", actuator.Name(), err)
		}
	}
	return nil
}
