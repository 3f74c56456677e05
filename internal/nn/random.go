package nn

import (
	"math/rand"
	"time"
)

// Rand is the random source used for weight initialization and structural
// sampling. *rand.Rand satisfies it.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

func newDefaultRand() Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

// NewSeededRand returns a deterministic source for reproducible networks.
func NewSeededRand(seed int64) Rand {
	return rand.New(rand.NewSource(seed))
}

func chooseRandomNeuron(rng Rand, neurons []*Neuron) *Neuron {
	if len(neurons) == 0 {
		return nil
	}
	return neurons[rng.Intn(len(neurons))]
}

func chooseRandomLayer(rng Rand, layers []*Layer, mustNotBeEmpty bool, exclusions ...int) *Layer {
	candidates := make([]*Layer, 0, len(layers))
	for _, layer := range layers {
		if mustNotBeEmpty && layer.Size() == 0 {
			continue
		}
		if containsOrdinal(exclusions, layer.ordinal) {
			continue
		}
		candidates = append(candidates, layer)
	}
	if len(candidates) == 0 {
		return nil
	}
	return candidates[rng.Intn(len(candidates))]
}

func containsOrdinal(ordinals []int, ordinal int) bool {
	for _, o := range ordinals {
		if o == ordinal {
			return true
		}
	}
	return false
}

func uniform(rng Rand, min, max float64) float64 {
	return min + rng.Float64()*(max-min)
}
