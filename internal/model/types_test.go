package model

import (
	"reflect"
	"testing"
)

func TestBrainRecordTopology(t *testing.T) {
	brain := BrainRecord{Layers: []LayerRecord{
		{Neurons: []string{"a", "b"}},
		{},
		{Neurons: []string{"c"}},
	}}
	if got := brain.Topology(); !reflect.DeepEqual(got, []int{2, 0, 1}) {
		t.Fatalf("unexpected topology: %v", got)
	}
	if got := (BrainRecord{}).Topology(); len(got) != 0 {
		t.Fatalf("expected empty topology, got %v", got)
	}
}

func TestBrainRecordCloneIsDeep(t *testing.T) {
	brain := BrainRecord{ID: "x", Layers: []LayerRecord{{Neurons: []string{"a"}}}}
	clone := brain.Clone()
	clone.Layers[0].Neurons[0] = "changed"
	clone.Layers = append(clone.Layers, LayerRecord{})

	if brain.Layers[0].Neurons[0] != "a" || len(brain.Layers) != 1 {
		t.Fatalf("clone aliased original: %+v", brain)
	}
	if clone.ID != "x" {
		t.Fatalf("unexpected clone id: %s", clone.ID)
	}
}
