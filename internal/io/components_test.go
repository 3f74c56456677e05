package io

import (
	"context"
	"errors"
	"reflect"
	"testing"
)

func TestValueSensor(t *testing.T) {
	s := NewValueSensor("value", 0.25)
	values, err := s.Read(context.Background())
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(values) != 1 || values[0] != 0.25 {
		t.Fatalf("unexpected sensor values: %+v", values)
	}

	s.Set(0.75)
	values, err = s.Read(context.Background())
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if values[0] != 0.75 {
		t.Fatalf("unexpected updated value: %f", values[0])
	}
}

func TestFuncSensorHonorsContext(t *testing.T) {
	s := NewFuncSensor("speed", func() float64 { return 3 })
	values, err := s.Read(context.Background())
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(values) != 1 || values[0] != 3 {
		t.Fatalf("unexpected sensor values: %+v", values)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := s.Read(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context canceled, got %v", err)
	}
}

func TestFuncActuator(t *testing.T) {
	var got float64
	a := NewFuncActuator("push", func(v float64) { got += v })

	if err := a.Write(context.Background(), []float64{0.5}); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := a.Write(context.Background(), []float64{0.25}); err != nil {
		t.Fatalf("write: %v", err)
	}
	if got != 0.75 {
		t.Fatalf("unexpected accumulated value: %f", got)
	}

	err := a.Write(context.Background(), []float64{1, 2})
	if !errors.Is(err, ErrWidthMismatch) {
		t.Fatalf("expected width mismatch, got %v", err)
	}
	if got != 0.75 {
		t.Fatalf("rejected write must not reach the closure, got %f", got)
	}
}

func TestFuncActuatorSnapshot(t *testing.T) {
	var actuator Actuator = NewFuncActuator("push", func(float64) {})
	snapshot, ok := actuator.(SnapshotActuator)
	if !ok {
		t.Fatal("expected func actuator to expose its last output")
	}
	if last := snapshot.Last(); len(last) != 0 {
		t.Fatalf("expected no output before the first write, got %+v", last)
	}

	if err := actuator.Write(context.Background(), []float64{0.9}); err != nil {
		t.Fatalf("write: %v", err)
	}
	last := snapshot.Last()
	if len(last) != 1 || last[0] != 0.9 {
		t.Fatalf("unexpected actuator last output: %+v", last)
	}

	last[0] = 5
	if snapshot.Last()[0] != 0.9 {
		t.Fatal("expected Last to return a copy")
	}
}

func TestReadAllConcatenates(t *testing.T) {
	sensors := []Sensor{
		NewValueSensor("a", 1),
		NewFuncSensor("b", func() float64 { return 2 }),
		NewValueSensor("c", 3),
	}
	values, err := ReadAll(context.Background(), sensors)
	if err != nil {
		t.Fatalf("read all: %v", err)
	}
	if !reflect.DeepEqual(values, []float64{1, 2, 3}) {
		t.Fatalf("unexpected readings: %+v", values)
	}
}

func TestWriteAllDistributesValues(t *testing.T) {
	var first, second float64
	actuators := []Actuator{
		NewFuncActuator("first", func(v float64) { first = v }),
		NewFuncActuator("second", func(v float64) { second = v }),
	}

	if err := WriteAll(context.Background(), actuators, []float64{0.1, 0.2}); err != nil {
		t.Fatalf("write all: %v", err)
	}
	if first != 0.1 || second != 0.2 {
		t.Fatalf("unexpected distributed values: first=%f second=%f", first, second)
	}

	if err := WriteAll(context.Background(), actuators, []float64{1}); !errors.Is(err, ErrWidthMismatch) {
		t.Fatalf("expected width mismatch, got %v", err)
	}
}
