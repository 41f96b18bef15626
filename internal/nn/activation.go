package nn

import "math"

// Activation selects the nonlinearity a layer applies to its
// pre-activation values. The variant is fixed when the layer is built;
// a layer never infers its activation from its position in the network.
type Activation int

// Activation variants. The zero value is ReLU, the default for hidden
// layers. Softmax is reserved for output layers: it normalizes the
// whole vector rather than acting element-wise.
const (
	ReLU Activation = iota
	Softmax
	Sigmoid
	Tanh
	LeakyReLU
)

// leakySlope is the negative-side gradient of LeakyReLU.
const leakySlope = 0.01

// String returns the variant name for logs and errors.
func (a Activation) String() string {
	switch a {
	case ReLU:
		return "relu"
	case Softmax:
		return "softmax"
	case Sigmoid:
		return "sigmoid"
	case Tanh:
		return "tanh"
	case LeakyReLU:
		return "leaky_relu"
	default:
		return "unknown"
	}
}

// apply transforms a pre-activation vector in place. Softmax is the
// only vector-level variant; all others act element-wise.
func (a Activation) apply(v []float64) {
	switch a {
	case Softmax:
		softmax(v)
	case ReLU:
		for i, x := range v {
			if x < 0 {
				v[i] = 0
			}
		}
	case Sigmoid:
		for i, x := range v {
			v[i] = 1 / (1 + math.Exp(-x))
		}
	case Tanh:
		for i, x := range v {
			v[i] = math.Tanh(x)
		}
	case LeakyReLU:
		for i, x := range v {
			if x < 0 {
				v[i] = leakySlope * x
			}
		}
	}
}

// derivative evaluates the activation's derivative at a cached
// post-activation value y. Every variant here can be expressed in
// terms of its own output, so the forward pass never keeps
// pre-activation values around. Softmax returns 1: its gradient is
// folded into the cross-entropy delta at the output layer.
func (a Activation) derivative(y float64) float64 {
	switch a {
	case ReLU:
		if y > 0 {
			return 1
		}
		return 0
	case Sigmoid:
		return y * (1 - y)
	case Tanh:
		return 1 - y*y
	case LeakyReLU:
		if y > 0 {
			return 1
		}
		return leakySlope
	default:
		return 1
	}
}
