package nn

import (
	"fmt"

	"github.com/google/uuid"

	"creatures/internal/log"
)

const (
	DefaultWeightMin = -1.0
	DefaultWeightMax = 1.0
)

// Network is an ordered collection of layers: the input layer first, the
// output layer last and zero or more hidden layers between them.
//
// A Network is not safe for concurrent use. Mutation and activation assume
// a single writer.
type Network struct {
	layers      []*Layer
	connections []*Connection

	rng             Rand
	activation      ActivationFunc
	inputActivation ActivationFunc
	weightMin       float64
	weightMax       float64
	newID           func() string
	logger          log.Logger
}

type Option func(*Network)

// WithRand injects the random source used for weights and sampling.
func WithRand(rng Rand) Option {
	return func(n *Network) {
		if rng != nil {
			n.rng = rng
		}
	}
}

func WithSeed(seed int64) Option {
	return WithRand(NewSeededRand(seed))
}

// WithActivation sets the activation function of non-input neurons.
func WithActivation(fn ActivationFunc) Option {
	return func(n *Network) {
		if fn != nil {
			n.activation = fn
		}
	}
}

// WithInputActivation sets the activation function of input-layer neurons.
func WithInputActivation(fn ActivationFunc) Option {
	return func(n *Network) {
		if fn != nil {
			n.inputActivation = fn
		}
	}
}

// WithWeightRange bounds the uniform distribution new connection weights
// are drawn from.
func WithWeightRange(min, max float64) Option {
	return func(n *Network) {
		if min > max {
			min, max = max, min
		}
		n.weightMin = min
		n.weightMax = max
	}
}

func WithIDGenerator(fn func() string) Option {
	return func(n *Network) {
		if fn != nil {
			n.newID = fn
		}
	}
}

func WithLogger(logger log.Logger) Option {
	return func(n *Network) {
		if logger != nil {
			n.logger = logger
		}
	}
}

// New builds a network with one layer per topology entry, each populated
// with that many neurons. A topology with a single entry has no propagation
// direction and is rejected; an empty topology yields an empty network that
// fails validation.
func New(topology []int, opts ...Option) (*Network, error) {
	if len(topology) == 1 {
		return nil, fmt.Errorf("%w: must contain zero or at least two layers", ErrInvalidTopology)
	}
	for i, size := range topology {
		if size < 0 {
			return nil, fmt.Errorf("%w: layer %d has negative size %d", ErrInvalidTopology, i, size)
		}
	}

	n := &Network{
		activation:      Sigmoid,
		inputActivation: Identity,
		weightMin:       DefaultWeightMin,
		weightMax:       DefaultWeightMax,
		newID:           uuid.NewString,
	}
	for _, opt := range opts {
		opt(n)
	}
	if n.rng == nil {
		n.rng = newDefaultRand()
	}

	for _, size := range topology {
		layer := n.AddLayer()
		for i := 0; i < size; i++ {
			layer.AddNeuron()
		}
	}
	return n, nil
}

func (n *Network) Layers() []*Layer {
	return append([]*Layer(nil), n.layers...)
}

// Layer returns the layer at ordinal i, or nil when out of range.
func (n *Network) Layer(i int) *Layer {
	if i < 0 || i >= len(n.layers) {
		return nil
	}
	return n.layers[i]
}

// Inputs returns the first layer, or nil for an empty network.
func (n *Network) Inputs() *Layer {
	if len(n.layers) == 0 {
		return nil
	}
	return n.layers[0]
}

// Outputs returns the last layer, or nil for an empty network.
func (n *Network) Outputs() *Layer {
	if len(n.layers) == 0 {
		return nil
	}
	return n.layers[len(n.layers)-1]
}

// Hidden returns the layers strictly between input and output.
func (n *Network) Hidden() []*Layer {
	if len(n.layers) < 3 {
		return nil
	}
	return append([]*Layer(nil), n.layers[1:len(n.layers)-1]...)
}

// Connections returns the connection cache.
func (n *Network) Connections() []*Connection {
	return append([]*Connection(nil), n.connections...)
}

// Size is the total number of neurons.
func (n *Network) Size() int {
	total := 0
	for _, layer := range n.layers {
		total += layer.Size()
	}
	return total
}

func (n *Network) AddLayer() *Layer {
	layer := &Layer{network: n}
	n.layers = append(n.layers, layer)
	n.refreshLayerOrdinals()
	return layer
}

func (n *Network) insertLayer(at int) *Layer {
	layer := &Layer{network: n}
	n.layers = append(n.layers, nil)
	copy(n.layers[at+1:], n.layers[at:])
	n.layers[at] = layer
	n.refreshLayerOrdinals()
	return layer
}

// FullyConnect wires every adjacent pair of layers with full bipartite
// connections.
func (n *Network) FullyConnect() *Network {
	for i := 0; i < len(n.layers)-1; i++ {
		n.layers[i].ProjectTo(n.layers[i+1])
	}
	n.UpdateConnectionsCache()
	return n
}

func (n *Network) Validate() error {
	if len(n.layers) < 2 {
		return fmt.Errorf("%w: %d", ErrTooFewLayers, len(n.layers))
	}
	if n.Inputs().Size() == 0 {
		return ErrNoInputNeurons
	}
	if n.Outputs().Size() == 0 {
		return ErrNoOutputNeurons
	}
	return nil
}

// Activate assigns inputs to the input layer, propagates layer by layer and
// returns the output layer's values in ordinal order.
func (n *Network) Activate(inputs []float64) ([]float64, error) {
	if err := n.Validate(); err != nil {
		return nil, err
	}
	in := n.Inputs()
	if len(inputs) != in.Size() {
		return nil, fmt.Errorf("%w: expected %d, got %d", ErrDimensionMismatch, in.Size(), len(inputs))
	}

	for i, value := range inputs {
		in.neurons[i].value = value
	}
	for _, layer := range n.layers {
		layer.Activate()
	}

	out := n.Outputs()
	values := make([]float64, out.Size())
	for i, neuron := range out.neurons {
		values[i] = neuron.value
	}
	return values, nil
}

// UpdateConnectionsCache rebuilds the flat connection list from every
// neuron's outputs, layer by layer.
func (n *Network) UpdateConnectionsCache() {
	connections := make([]*Connection, 0, len(n.connections))
	for _, layer := range n.layers {
		for _, neuron := range layer.neurons {
			connections = append(connections, neuron.outputs...)
		}
	}
	n.connections = connections
	n.debugf("updated connections cache (%d)", len(connections))
}

// Descriptors exports every layer's structural descriptor in order.
func (n *Network) Descriptors() []LayerDescriptor {
	descriptors := make([]LayerDescriptor, len(n.layers))
	for i, layer := range n.layers {
		descriptors[i] = layer.Descriptor()
	}
	return descriptors
}

func (n *Network) randomWeight() float64 {
	return uniform(n.rng, n.weightMin, n.weightMax)
}

func (n *Network) refreshLayerOrdinals() {
	for i, layer := range n.layers {
		layer.ordinal = i
	}
}

func (n *Network) debugf(format string, args ...interface{}) {
	if n.logger != nil {
		n.logger.Debugf(format, args...)
		return
	}
	log.Debugf(format, args...)
}
