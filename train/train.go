// Copyright 2025 Dendrite ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package train

import (
	"github.com/dendrite-ml/dendrite/internal/nn"
	"github.com/dendrite-ml/dendrite/internal/train"
)

// Core types, aliased from the internal implementation.
type (
	// Trainer runs shuffled mini-batch SGD epochs.
	Trainer = train.Trainer

	// Result reports a training run's final epoch.
	Result = train.Result

	// RegularizedTrainer adds dropout and early stopping.
	RegularizedTrainer = train.RegularizedTrainer

	// ValidationResult reports a regularized run.
	ValidationResult = train.ValidationResult

	// ProgressFunc observes a training run.
	ProgressFunc = train.ProgressFunc
)

// New returns a trainer bound to net.
func New(net *nn.Network) *Trainer {
	return train.New(net)
}

// NewRegularized returns a trainer with dropout at dropoutRate and
// validation-based early stopping.
func NewRegularized(net *nn.Network, dropoutRate float64) (*RegularizedTrainer, error) {
	return train.NewRegularized(net, dropoutRate)
}

// Evaluate returns the fraction of examples net classifies correctly,
// with dropout disabled.
func Evaluate(net *nn.Network, examples []nn.TrainingExample) (float64, error) {
	return train.Evaluate(net, examples)
}

// LogProgress is a ready-made ProgressFunc that writes one line per
// report to standard output.
func LogProgress(epoch, totalEpochs int, loss, accuracy float64) {
	train.LogProgress(epoch, totalEpochs, loss, accuracy)
}
