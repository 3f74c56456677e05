package nn

// Neuron holds a scalar value and the connections incident to it.
type Neuron struct {
	id         string
	layer      *Layer
	ordinal    int
	value      float64
	activation ActivationFunc
	inputs     []*Connection
	outputs    []*Connection
}

func (n *Neuron) ID() string {
	return n.id
}

func (n *Neuron) Layer() *Layer {
	return n.layer
}

// Ordinal is the neuron's position within its layer.
func (n *Neuron) Ordinal() int {
	return n.ordinal
}

func (n *Neuron) Value() float64 {
	return n.value
}

// SetValue assigns the neuron's value directly, as done for input neurons.
func (n *Neuron) SetValue(value float64) {
	n.value = value
}

func (n *Neuron) Inputs() []*Connection {
	return append([]*Connection(nil), n.inputs...)
}

func (n *Neuron) Outputs() []*Connection {
	return append([]*Connection(nil), n.outputs...)
}

// SetActivation replaces the neuron's activation function. A nil function
// is ignored.
func (n *Neuron) SetActivation(fn ActivationFunc) {
	if fn != nil {
		n.activation = fn
	}
}

// Activate recomputes the value from the current values of upstream
// neurons. Neurons of the input layer without incoming connections keep
// their assigned value.
func (n *Neuron) Activate() {
	if len(n.inputs) == 0 && n.layer != nil && n.layer.ordinal == 0 {
		return
	}

	total := 0.0
	for _, connection := range n.inputs {
		total += connection.Weight * connection.From.value
	}
	n.value = n.activation(total)
}

// ProjectTo connects n to other with a freshly randomized weight. Parallel
// edges are not deduplicated.
func (n *Neuron) ProjectTo(other *Neuron) *Connection {
	connection := &Connection{
		From:   n,
		To:     other,
		Weight: n.layer.network.randomWeight(),
	}
	n.outputs = append(n.outputs, connection)
	other.inputs = append(other.inputs, connection)
	return connection
}
