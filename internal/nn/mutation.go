package nn

import "fmt"

// AddRandomConnection grows the network by one connection. With probability
// chanceOfNewNeuron a new hidden neuron is created and joined to either a
// random input neuron or a random output neuron. Otherwise two neurons from
// distinct non-empty layers are joined, always pointing from the lower layer
// ordinal to the higher one so the graph stays acyclic.
func (n *Network) AddRandomConnection(chanceOfNewNeuron float64) (*Connection, error) {
	var from, to *Neuron

	if n.rng.Float64() < chanceOfNewNeuron {
		if len(n.layers) < 2 {
			return nil, fmt.Errorf("%w: hidden neuron needs input and output layers", ErrNoConnectionCandidates)
		}
		fromInput := n.rng.Float64() < .5
		if fromInput && n.Inputs().Size() == 0 {
			return nil, fmt.Errorf("%w: input layer is empty", ErrNoConnectionCandidates)
		}
		if !fromInput && n.Outputs().Size() == 0 {
			return nil, fmt.Errorf("%w: output layer is empty", ErrNoConnectionCandidates)
		}

		hidden := n.AddHiddenNeuron()
		if fromInput {
			from = n.Inputs().ChooseRandomNeuron()
			to = hidden
		} else {
			from = hidden
			to = n.Outputs().ChooseRandomNeuron()
		}
	} else {
		layer := chooseRandomLayer(n.rng, n.layers, true)
		if layer == nil {
			return nil, fmt.Errorf("%w: every layer is empty", ErrNoConnectionCandidates)
		}
		otherLayer := chooseRandomLayer(n.rng, n.layers, true, layer.ordinal)
		if otherLayer == nil {
			return nil, fmt.Errorf("%w: only one non-empty layer", ErrNoConnectionCandidates)
		}

		neuron := layer.ChooseRandomNeuron()
		otherNeuron := otherLayer.ChooseRandomNeuron()
		if otherLayer.ordinal > layer.ordinal {
			from, to = neuron, otherNeuron
		} else {
			from, to = otherNeuron, neuron
		}
	}

	connection := from.ProjectTo(to)
	n.UpdateConnectionsCache()
	return connection, nil
}

// AddHiddenNeuron adds a neuron to a uniformly chosen hidden layer. When the
// network has no hidden layer, one is inserted immediately before the
// output layer. It returns nil for networks with fewer than two layers.
func (n *Network) AddHiddenNeuron() *Neuron {
	if len(n.layers) < 2 {
		return nil
	}

	var layer *Layer
	if hidden := n.Hidden(); len(hidden) > 0 {
		layer = hidden[n.rng.Intn(len(hidden))]
	} else {
		layer = n.insertLayer(len(n.layers) - 1)
	}
	return layer.AddNeuron()
}

// Randomize applies numConnections independent AddRandomConnection(0.5)
// mutations.
func (n *Network) Randomize(numConnections int) (*Network, error) {
	for i := 0; i < numConnections; i++ {
		if _, err := n.AddRandomConnection(.5); err != nil {
			return n, fmt.Errorf("random connection %d: %w", i, err)
		}
	}
	return n, nil
}
