package model

import "time"

// VersionedRecord captures schema and codec evolution for persistent data.
type VersionedRecord struct {
	SchemaVersion int `json:"schema_version"`
	CodecVersion  int `json:"codec_version"`
}

// BrainRecord is the structural export of a brain: which neurons belong to
// which layer, in order. Weights and connections are not recorded.
type BrainRecord struct {
	VersionedRecord
	ID        string        `json:"id"`
	Layers    []LayerRecord `json:"layers"`
	CreatedAt time.Time     `json:"created_at"`
}

type LayerRecord struct {
	Neurons []string `json:"neurons"`
}

// Topology returns the neuron count of every layer.
func (b BrainRecord) Topology() []int {
	topology := make([]int, len(b.Layers))
	for i, layer := range b.Layers {
		topology[i] = len(layer.Neurons)
	}
	return topology
}

// Clone returns a deep copy so stored records never alias caller slices.
func (b BrainRecord) Clone() BrainRecord {
	clone := b
	clone.Layers = make([]LayerRecord, len(b.Layers))
	for i, layer := range b.Layers {
		clone.Layers[i] = LayerRecord{Neurons: append([]string(nil), layer.Neurons...)}
	}
	return clone
}
