package nn

import (
	"math/rand"

	"gonum.org/v1/gonum/mat"
)

// Layer is a single dense transformation: activation(W·x + b).
// Weights are stored as an outputSize×inputSize matrix so that the
// forward pass is one matrix-vector product. Each layer exclusively
// owns its parameters; networks never share layers.
type Layer struct {
	inputSize  int
	outputSize int
	weights    *mat.Dense
	biases     *mat.VecDense
	activation Activation

	// Momentum velocity buffers, allocated on the first update of a
	// network that carries a momentum term.
	velWeights *mat.Dense
	velBiases  *mat.VecDense
}

func newLayer(inputSize, outputSize int, activation Activation, rng *rand.Rand) *Layer {
	return &Layer{
		inputSize:  inputSize,
		outputSize: outputSize,
		weights:    xavierWeights(inputSize, outputSize, rng),
		biases:     uniformBiases(outputSize, rng),
		activation: activation,
	}
}

// InputSize returns the length of vectors the layer accepts.
func (l *Layer) InputSize() int { return l.inputSize }

// OutputSize returns the length of vectors the layer produces.
func (l *Layer) OutputSize() int { return l.outputSize }

// Activation returns the layer's nonlinearity.
func (l *Layer) Activation() Activation { return l.activation }

// Weights returns the layer's weight matrix. The matrix is owned by
// the layer; callers that mutate it (to pin weights in tests, for
// example) are responsible for keeping its shape intact.
func (l *Layer) Weights() *mat.Dense { return l.weights }

// Biases returns the layer's bias vector, owned by the layer.
func (l *Layer) Biases() *mat.VecDense { return l.biases }

// forward computes activation(W·in + b) into out. out must have
// length outputSize.
func (l *Layer) forward(in, out *mat.VecDense) {
	out.MulVec(l.weights, in)
	out.AddVec(out, l.biases)
	l.activation.apply(out.RawVector().Data)
}

// update applies one per-example SGD step. The weight gradient for a
// single example is the rank-one product grad·inputᵀ, so the update
// never materializes a gradient matrix. With momentum > 0 a velocity
// term accumulates the rank-one updates across steps.
func (l *Layer) update(grad, input *mat.VecDense, learningRate, momentum float64) {
	if momentum == 0 {
		l.weights.RankOne(l.weights, -learningRate, grad, input)
		l.biases.AddScaledVec(l.biases, -learningRate, grad)
		return
	}
	if l.velWeights == nil {
		l.velWeights = mat.NewDense(l.outputSize, l.inputSize, nil)
		l.velBiases = mat.NewVecDense(l.outputSize, nil)
	}
	l.velWeights.Scale(momentum, l.velWeights)
	l.velWeights.RankOne(l.velWeights, 1, grad, input)
	l.velBiases.ScaleVec(momentum, l.velBiases)
	l.velBiases.AddVec(l.velBiases, grad)

	w := l.weights.RawMatrix().Data
	vw := l.velWeights.RawMatrix().Data
	for i := range w {
		w[i] -= learningRate * vw[i]
	}
	b := l.biases.RawVector().Data
	vb := l.velBiases.RawVector().Data
	for i := range b {
		b[i] -= learningRate * vb[i]
	}
}
