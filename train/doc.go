// Copyright 2025 Dendrite ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package train provides training loops for nn networks.
//
// # Overview
//
// This package contains:
//   - Trainer: shuffled mini-batch SGD with per-example updates
//   - RegularizedTrainer: dropout plus validation-based early stopping
//   - Evaluate: held-out accuracy with dropout disabled
//   - ProgressFunc: periodic progress reporting
//
// # Basic Usage
//
//	import (
//	    "github.com/dendrite-ml/dendrite/nn"
//	    "github.com/dendrite-ml/dendrite/train"
//	)
//
//	func main() {
//	    net, _ := nn.New([]int{784, 128, 10}, 0.01)
//
//	    trainer := train.New(net)
//	    trainer.Progress = train.LogProgress
//	    res, err := trainer.Train(examples, 50, 32)
//	    ...
//	}
package train
