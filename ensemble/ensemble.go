// Copyright 2025 Dendrite ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package ensemble

import (
	"github.com/dendrite-ml/dendrite/internal/ensemble"
	"github.com/dendrite-ml/dendrite/internal/nn"
)

// Core types, aliased from the internal implementation.
type (
	// Ensemble owns a set of member networks.
	Ensemble = ensemble.Ensemble

	// Result reports an ensemble training run.
	Result = ensemble.Result
)

// New builds an ensemble of size independently initialized networks.
func New(size int, layerSizes []int, learningRate float64) (*Ensemble, error) {
	return ensemble.New(size, layerSizes, learningRate)
}

// FromNetworks wraps pre-built networks as an ensemble. Members must
// share input and output sizes; hidden layers may differ.
func FromNetworks(members ...*nn.Network) (*Ensemble, error) {
	return ensemble.FromNetworks(members...)
}
