package nn

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

// scriptedRand replays fixed draws, cycling when exhausted.
type scriptedRand struct {
	floats []float64
	ints   []int
	fi, ii int
}

func (r *scriptedRand) Float64() float64 {
	if len(r.floats) == 0 {
		return 0
	}
	v := r.floats[r.fi%len(r.floats)]
	r.fi++
	return v
}

func (r *scriptedRand) Intn(n int) int {
	if len(r.ints) == 0 {
		return 0
	}
	v := r.ints[r.ii%len(r.ints)]
	r.ii++
	return v % n
}

type capturingLogger struct {
	debug []string
}

func (l *capturingLogger) Debugf(format string, args ...interface{}) {
	l.debug = append(l.debug, fmt.Sprintf(format, args...))
}
func (l *capturingLogger) Infof(string, ...interface{})    {}
func (l *capturingLogger) Warningf(string, ...interface{}) {}
func (l *capturingLogger) Errorf(string, ...interface{})   {}

func sequentialIDs() func() string {
	next := 0
	return func() string {
		id := fmt.Sprintf("n%d", next)
		next++
		return id
	}
}

func mustNetwork(t *testing.T, topology []int, opts ...Option) *Network {
	t.Helper()
	network, err := New(topology, opts...)
	require.NoError(t, err)
	return network
}

func requireOrdinalsConsistent(t *testing.T, network *Network) {
	t.Helper()
	for i, layer := range network.Layers() {
		require.Equal(t, i, layer.Ordinal(), "layer ordinal")
		for j, neuron := range layer.Neurons() {
			require.Equal(t, j, neuron.Ordinal(), "neuron ordinal in layer %d", i)
			require.Same(t, layer, neuron.Layer())
		}
	}
}

func requireFeedForward(t *testing.T, network *Network) {
	t.Helper()
	for _, c := range network.Connections() {
		require.Less(t, c.From.Layer().Ordinal(), c.To.Layer().Ordinal(), "connection %s", c)
	}
}

func containsConnection(connections []*Connection, target *Connection) bool {
	for _, c := range connections {
		if c == target {
			return true
		}
	}
	return false
}
