// Copyright 2025 Dendrite ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"github.com/dendrite-ml/dendrite/internal/nn"
)

// Core types, aliased from the internal implementation.
type (
	// Network is a feedforward network of dense layers.
	Network = nn.Network

	// Layer is a single dense transformation within a Network.
	Layer = nn.Layer

	// Config collects the construction knobs for NewWithConfig.
	Config = nn.Config

	// TrainingExample pairs an input vector with its target
	// distribution.
	TrainingExample = nn.TrainingExample

	// Pass carries the transient state of one forward/backward cycle.
	Pass = nn.Pass

	// PassConfig controls a training-mode forward pass.
	PassConfig = nn.PassConfig

	// Activation selects a layer's nonlinearity.
	Activation = nn.Activation
)

// Activation variants.
const (
	ReLU      = nn.ReLU
	Softmax   = nn.Softmax
	Sigmoid   = nn.Sigmoid
	Tanh      = nn.Tanh
	LeakyReLU = nn.LeakyReLU
)

// Sentinel errors, matchable with errors.Is.
var (
	ErrArchitecture  = nn.ErrArchitecture
	ErrShapeMismatch = nn.ErrShapeMismatch
)

// New constructs a network from a layer-size chain with ReLU hidden
// layers, a softmax output layer, and Xavier-initialized weights.
//
// Example:
//
//	net, err := nn.New([]int{784, 128, 10}, 0.01)
func New(layerSizes []int, learningRate float64) (*Network, error) {
	return nn.New(layerSizes, learningRate)
}

// NewWithConfig constructs a network with explicit hidden activation,
// momentum, and randomness.
func NewWithConfig(cfg Config) (*Network, error) {
	return nn.NewWithConfig(cfg)
}

// CrossEntropy returns the cross-entropy loss between a predicted
// distribution and a target distribution.
func CrossEntropy(output, target []float64) float64 {
	return nn.CrossEntropy(output, target)
}

// Argmax returns the index of the largest element of v.
func Argmax(v []float64) int {
	return nn.Argmax(v)
}
