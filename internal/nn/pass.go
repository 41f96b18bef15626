package nn

import (
	"math/rand"

	"gonum.org/v1/gonum/mat"
)

// PassConfig controls a single training-mode forward pass.
type PassConfig struct {
	// Dropout enables inverted dropout on hidden activations.
	// Inference passes leave it false.
	Dropout bool

	// DropoutRate is the probability of zeroing each hidden
	// activation, in [0, 1). Ignored unless Dropout is set.
	DropoutRate float64

	// Rand supplies the dropout randomness. Nil falls back to the
	// process-wide source.
	Rand *rand.Rand
}

// Pass carries the transient state of one forward/backward cycle:
// every layer's input, post-activation output, and gradient. A Pass is
// valid between the ForwardPass that produced it and the Update that
// consumes it. Keeping this state off the layers means a network with
// fixed weights can serve concurrent forward passes.
type Pass struct {
	inputs  []*mat.VecDense // inputs[i] is the vector fed to layer i
	outputs []*mat.VecDense // outputs[i] is layer i's post-activation output
	grads   []*mat.VecDense // grads[i] is filled in by Backward
}

func newPass(layers int) *Pass {
	return &Pass{
		inputs:  make([]*mat.VecDense, layers),
		outputs: make([]*mat.VecDense, layers),
		grads:   make([]*mat.VecDense, layers),
	}
}

// Output returns the final layer's activation vector. The slice is
// owned by the pass; callers that retain it past the pass's lifetime
// must copy it.
func (p *Pass) Output() []float64 {
	return p.outputs[len(p.outputs)-1].RawVector().Data
}

// applyDropout zeroes each activation with probability rate and scales
// the survivors by 1/(1-rate), so expected activations match inference
// and no rescaling is needed at predict time. A dropped unit's cached
// output is zero, which also blocks its gradient during backprop.
func applyDropout(v []float64, rate float64, rng *rand.Rand) {
	uniform := rand.Float64
	if rng != nil {
		uniform = rng.Float64
	}
	keep := 1 - rate
	for i := range v {
		if uniform() < rate {
			v[i] = 0
		} else {
			v[i] /= keep
		}
	}
}
