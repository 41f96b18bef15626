// Package nn implements the dense feedforward core: layer
// construction, forward propagation, and pass-based backpropagation
// with per-example SGD updates.
//
// The exported surface of this package is re-exported by the
// top-level nn package; see its documentation for usage examples.
package nn

import (
	"errors"
	"fmt"
	"math/rand"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"
)

var (
	// ErrArchitecture reports an invalid layer-size chain at
	// construction time.
	ErrArchitecture = errors.New("nn: invalid architecture")

	// ErrShapeMismatch reports a vector whose length does not match
	// the layer it feeds.
	ErrShapeMismatch = errors.New("nn: shape mismatch")
)

// TrainingExample pairs an input vector with its target distribution,
// usually one-hot.
type TrainingExample struct {
	Input  []float64
	Target []float64
}

// Config collects the knobs for NewWithConfig. The zero value of every
// optional field selects the default.
type Config struct {
	// LayerSizes lists the input size, the hidden sizes, and the
	// output size, in order. At least two entries, all positive.
	LayerSizes []int

	// LearningRate scales every gradient step.
	LearningRate float64

	// Momentum adds a velocity term to weight updates. Zero disables
	// it.
	Momentum float64

	// HiddenActivation applies to every layer except the last. The
	// zero value is ReLU. The output layer always uses Softmax.
	HiddenActivation Activation

	// Rand drives weight initialization. Nil uses a source seeded
	// from the process-wide generator.
	Rand *rand.Rand
}

// Network is a feedforward network of dense layers with softmax
// output. Construction fixes the architecture; training mutates only
// weights and biases. Forward passes on a network that is not being
// trained are safe for concurrent use.
type Network struct {
	layers       []*Layer
	learningRate float64
	momentum     float64
}

// New constructs a network from a layer-size chain with ReLU hidden
// layers, a softmax output layer, and Xavier-initialized weights.
//
// Example:
//
//	net, err := nn.New([]int{784, 128, 10}, 0.01)
func New(layerSizes []int, learningRate float64) (*Network, error) {
	return NewWithConfig(Config{LayerSizes: layerSizes, LearningRate: learningRate})
}

// NewWithConfig constructs a network with explicit hidden activation,
// momentum, and randomness.
func NewWithConfig(cfg Config) (*Network, error) {
	if len(cfg.LayerSizes) < 2 {
		return nil, fmt.Errorf("%w: need at least input and output sizes, got %d", ErrArchitecture, len(cfg.LayerSizes))
	}
	for i, size := range cfg.LayerSizes {
		if size <= 0 {
			return nil, fmt.Errorf("%w: layer %d has size %d", ErrArchitecture, i, size)
		}
	}
	rng := cfg.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}
	layers := make([]*Layer, len(cfg.LayerSizes)-1)
	for i := range layers {
		act := cfg.HiddenActivation
		if i == len(layers)-1 {
			act = Softmax
		}
		layers[i] = newLayer(cfg.LayerSizes[i], cfg.LayerSizes[i+1], act, rng)
	}
	return &Network{
		layers:       layers,
		learningRate: cfg.LearningRate,
		momentum:     cfg.Momentum,
	}, nil
}

// ForwardPass runs a training-mode forward pass, recording each
// layer's input and output in the returned Pass. Dropout, when enabled
// in cfg, applies to hidden activations only; the softmax output is
// never dropped.
func (n *Network) ForwardPass(input []float64, cfg PassConfig) (*Pass, error) {
	if err := n.checkInput(input); err != nil {
		return nil, err
	}
	p := newPass(len(n.layers))
	in := mat.NewVecDense(len(input), append([]float64(nil), input...))
	for i, layer := range n.layers {
		out := mat.NewVecDense(layer.outputSize, nil)
		layer.forward(in, out)
		if cfg.Dropout && cfg.DropoutRate > 0 && i < len(n.layers)-1 {
			applyDropout(out.RawVector().Data, cfg.DropoutRate, cfg.Rand)
		}
		p.inputs[i] = in
		p.outputs[i] = out
		in = out
	}
	return p, nil
}

// Forward propagates input through the network with dropout disabled
// and returns the output distribution. The returned slice is a copy.
func (n *Network) Forward(input []float64) ([]float64, error) {
	p, err := n.ForwardPass(input, PassConfig{})
	if err != nil {
		return nil, err
	}
	return append([]float64(nil), p.Output()...), nil
}

// Predict is Forward under its inference-time name.
func (n *Network) Predict(input []float64) ([]float64, error) {
	return n.Forward(input)
}

// Backward fills the pass's gradients from its cached activations and
// the target distribution, output layer to input layer. Weights are
// untouched; Update applies the step.
//
// The output layer's gradient is the combined softmax/cross-entropy
// delta, output - target. Hidden gradients chain the next layer's
// gradient back through its weights and the activation derivative at
// the cached output.
func (n *Network) Backward(p *Pass, target []float64) error {
	last := len(n.layers) - 1
	out := p.outputs[last]
	if len(target) != out.Len() {
		return fmt.Errorf("%w: target length %d, output layer produces %d", ErrShapeMismatch, len(target), out.Len())
	}

	g := mat.NewVecDense(out.Len(), nil)
	g.SubVec(out, mat.NewVecDense(len(target), target))
	p.grads[last] = g

	for i := last - 1; i >= 0; i-- {
		layer := n.layers[i]
		g := mat.NewVecDense(layer.outputSize, nil)
		g.MulVec(n.layers[i+1].weights.T(), p.grads[i+1])
		gd := g.RawVector().Data
		od := p.outputs[i].RawVector().Data
		for j := range gd {
			gd[j] *= layer.activation.derivative(od[j])
		}
		p.grads[i] = g
	}
	return nil
}

// Update applies one SGD step from the pass's gradients and cached
// inputs. The pass must have been through Backward first.
func (n *Network) Update(p *Pass) {
	if p.grads[0] == nil {
		panic("nn: Update called before Backward")
	}
	for i, layer := range n.layers {
		layer.update(p.grads[i], p.inputs[i], n.learningRate, n.momentum)
	}
}

// Layers returns the network's layers in forward order. The slice and
// the layers are owned by the network.
func (n *Network) Layers() []*Layer { return n.layers }

// InputSize returns the length of input vectors the network accepts.
func (n *Network) InputSize() int { return n.layers[0].inputSize }

// OutputSize returns the length of the output distribution.
func (n *Network) OutputSize() int { return n.layers[len(n.layers)-1].outputSize }

// LearningRate returns the step size used by Update.
func (n *Network) LearningRate() float64 { return n.learningRate }

// Architecture renders the layer-size chain, e.g. "2 -> 3 -> 1".
func (n *Network) Architecture() string {
	var b strings.Builder
	b.WriteString(strconv.Itoa(n.layers[0].inputSize))
	for _, layer := range n.layers {
		b.WriteString(" -> ")
		b.WriteString(strconv.Itoa(layer.outputSize))
	}
	return b.String()
}

// NumParameters returns the total count of weights and biases.
func (n *Network) NumParameters() int {
	total := 0
	for _, layer := range n.layers {
		total += layer.inputSize*layer.outputSize + layer.outputSize
	}
	return total
}

func (n *Network) checkInput(input []float64) error {
	if len(input) == 0 {
		return fmt.Errorf("%w: empty input vector", ErrShapeMismatch)
	}
	if got, want := len(input), n.layers[0].inputSize; got != want {
		return fmt.Errorf("%w: input length %d, first layer expects %d", ErrShapeMismatch, got, want)
	}
	return nil
}
