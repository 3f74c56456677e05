package nn

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"sync"
)

const (
	ActivationIdentity = "identity"
	ActivationSigmoid  = "sigmoid"
	ActivationTanh     = "tanh"
	ActivationReLU     = "relu"
	ActivationSoftSign = "softsign"
	ActivationGaussian = "gaussian"
)

var (
	ErrActivationExists   = errors.New("activation already registered")
	ErrActivationNotFound = errors.New("activation not found")
)

// ActivationFunc maps a neuron's weighted input sum to its output value.
type ActivationFunc func(x float64) float64

var activationRegistry = struct {
	mu sync.RWMutex
	m  map[string]ActivationFunc
}{
	m: make(map[string]ActivationFunc),
}

func init() {
	initializeBuiltInActivations()
}

func initializeBuiltInActivations() {
	MustRegisterActivation(ActivationIdentity, Identity)
	MustRegisterActivation(ActivationSigmoid, Sigmoid)
	MustRegisterActivation(ActivationTanh, math.Tanh)
	MustRegisterActivation(ActivationReLU, func(x float64) float64 {
		if x < 0 {
			return 0
		}
		return x
	})
	MustRegisterActivation(ActivationSoftSign, SoftSign)
	MustRegisterActivation(ActivationGaussian, func(x float64) float64 {
		return math.Exp(-x * x / 2)
	})
}

// Identity passes the weighted sum through unchanged.
func Identity(x float64) float64 {
	return x
}

// Sigmoid is the logistic function, the default neuron activation.
func Sigmoid(x float64) float64 {
	return 1.0 / (1.0 + math.Exp(-x))
}

// SoftSign squashes x into (-1, 1) as x / (1 + |x|).
func SoftSign(x float64) float64 {
	return x / (1 + math.Abs(x))
}

func RegisterActivation(name string, fn ActivationFunc) error {
	if name == "" {
		return errors.New("activation name is required")
	}
	if fn == nil {
		return errors.New("activation function is required")
	}

	activationRegistry.mu.Lock()
	defer activationRegistry.mu.Unlock()

	if _, exists := activationRegistry.m[name]; exists {
		return fmt.Errorf("%w: %s", ErrActivationExists, name)
	}
	activationRegistry.m[name] = fn
	return nil
}

func MustRegisterActivation(name string, fn ActivationFunc) {
	if err := RegisterActivation(name, fn); err != nil {
		panic(err)
	}
}

func GetActivation(name string) (ActivationFunc, error) {
	activationRegistry.mu.RLock()
	fn, ok := activationRegistry.m[name]
	activationRegistry.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrActivationNotFound, name)
	}
	return fn, nil
}

func ListActivations() []string {
	activationRegistry.mu.RLock()
	defer activationRegistry.mu.RUnlock()

	names := make([]string, 0, len(activationRegistry.m))
	for name := range activationRegistry.m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Sat clamps value to [min, max].
func Sat(value, max, min float64) float64 {
	if value > max {
		return max
	}
	if value < min {
		return min
	}
	return value
}

func resetActivationRegistryForTests() {
	activationRegistry.mu.Lock()
	activationRegistry.m = make(map[string]ActivationFunc)
	activationRegistry.mu.Unlock()
	initializeBuiltInActivations()
}
