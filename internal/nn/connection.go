package nn

import "fmt"

// Connection is a directed, weighted edge between two neurons. It is listed
// in From's outputs and To's inputs at the same time.
type Connection struct {
	From   *Neuron
	To     *Neuron
	Weight float64
}

func (c *Connection) String() string {
	return fmt.Sprintf("Connection(%d:%d -> %d:%d, weight=%.3f)",
		c.From.layer.ordinal, c.From.ordinal, c.To.layer.ordinal, c.To.ordinal, c.Weight)
}
