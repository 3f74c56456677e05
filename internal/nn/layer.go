package nn

// LayerDescriptor is the structural export of a layer: the ordered IDs of
// its neurons.
type LayerDescriptor struct {
	Neurons []string `json:"neurons"`
}

// Layer is an ordered collection of neurons owned by one network.
type Layer struct {
	network *Network
	ordinal int
	neurons []*Neuron
}

// Ordinal is the layer's position within its network.
func (l *Layer) Ordinal() int {
	return l.ordinal
}

func (l *Layer) Size() int {
	return len(l.neurons)
}

func (l *Layer) Neurons() []*Neuron {
	return append([]*Neuron(nil), l.neurons...)
}

// Neuron returns the neuron at ordinal i, or nil when out of range.
func (l *Layer) Neuron(i int) *Neuron {
	if i < 0 || i >= len(l.neurons) {
		return nil
	}
	return l.neurons[i]
}

// Inputs returns every connection entering the layer, neuron by neuron.
func (l *Layer) Inputs() []*Connection {
	var inputs []*Connection
	for _, neuron := range l.neurons {
		inputs = append(inputs, neuron.inputs...)
	}
	return inputs
}

func (l *Layer) Activate() {
	for _, neuron := range l.neurons {
		neuron.Activate()
	}
}

func (l *Layer) AddNeuron() *Neuron {
	activation := l.network.activation
	if l.ordinal == 0 {
		activation = l.network.inputActivation
	}

	neuron := &Neuron{
		id:         l.network.newID(),
		layer:      l,
		activation: activation,
	}
	l.neurons = append(l.neurons, neuron)
	l.refreshNeuronOrdinals()
	return neuron
}

// ChooseRandomNeuron samples a neuron uniformly; nil when the layer is empty.
func (l *Layer) ChooseRandomNeuron() *Neuron {
	return chooseRandomNeuron(l.network.rng, l.neurons)
}

// ProjectTo connects every neuron of l to every neuron of other. It is a
// no-op when either layer is empty.
func (l *Layer) ProjectTo(other *Layer) {
	if l.Size() == 0 || other.Size() == 0 {
		return
	}
	for _, neuron := range l.neurons {
		for _, otherNeuron := range other.neurons {
			neuron.ProjectTo(otherNeuron)
		}
	}
}

func (l *Layer) Descriptor() LayerDescriptor {
	ids := make([]string, len(l.neurons))
	for i, neuron := range l.neurons {
		ids[i] = neuron.id
	}
	return LayerDescriptor{Neurons: ids}
}

func (l *Layer) refreshNeuronOrdinals() {
	for i, neuron := range l.neurons {
		neuron.ordinal = i
	}
}
