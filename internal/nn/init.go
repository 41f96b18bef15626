package nn

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/mat"
)

// maxInitialBias bounds the uniform bias initialization. Small
// positive biases keep ReLU units alive at the first forward pass.
const maxInitialBias = 0.01

// xavierScale returns the Xavier/Glorot bound sqrt(2 / (fanIn + fanOut)).
func xavierScale(fanIn, fanOut int) float64 {
	return math.Sqrt(2 / float64(fanIn+fanOut))
}

// xavierWeights builds an outputSize×inputSize weight matrix with
// entries drawn uniformly from [-scale, scale].
func xavierWeights(inputSize, outputSize int, rng *rand.Rand) *mat.Dense {
	scale := xavierScale(inputSize, outputSize)
	data := make([]float64, outputSize*inputSize)
	for i := range data {
		data[i] = (rng.Float64()*2 - 1) * scale
	}
	return mat.NewDense(outputSize, inputSize, data)
}

// uniformBiases builds a bias vector with entries drawn uniformly
// from [0, maxInitialBias).
func uniformBiases(outputSize int, rng *rand.Rand) *mat.VecDense {
	data := make([]float64, outputSize)
	for i := range data {
		data[i] = rng.Float64() * maxInitialBias
	}
	return mat.NewVecDense(outputSize, data)
}
