package nn

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// crossEntropyEpsilon keeps the loss finite when a predicted
// probability reaches exactly zero.
const crossEntropyEpsilon = 1e-10

// softmax normalizes v into a probability distribution in place.
// The maximum is subtracted before exponentiation so large logits
// cannot overflow; the result is unchanged because the correction
// cancels in the ratio.
func softmax(v []float64) {
	if len(v) == 0 {
		return
	}
	max := floats.Max(v)
	for i, x := range v {
		v[i] = math.Exp(x - max)
	}
	sum := floats.Sum(v)
	for i := range v {
		v[i] /= sum
	}
}

// CrossEntropy returns -Σ target[j]·log(output[j]+ε) over the target's
// indices. With a one-hot target only the true class contributes.
// Output and target must be the same length.
func CrossEntropy(output, target []float64) float64 {
	var loss float64
	for j, t := range target {
		loss -= t * math.Log(output[j]+crossEntropyEpsilon)
	}
	return loss
}

// Argmax returns the index of the largest element of v.
// Classification decisions compare Argmax of the network output
// against Argmax of the one-hot target.
func Argmax(v []float64) int {
	return floats.MaxIdx(v)
}
