// Copyright 2025 Dendrite ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides feedforward neural networks built from dense layers.
//
// # Overview
//
// This package contains:
//   - Network: dense layers with ReLU (or configurable) hidden
//     activations and a softmax output layer
//   - Xavier weight initialization
//   - Pass-based forward/backward propagation with per-example SGD
//   - Loss utilities: CrossEntropy, Argmax
//
// # Basic Usage
//
//	import "github.com/dendrite-ml/dendrite/nn"
//
//	func main() {
//	    net, err := nn.New([]int{784, 128, 10}, 0.01)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    out, err := net.Predict(pixels)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    class := nn.Argmax(out)
//	    ...
//	}
//
// Training loops live in the train package; prediction averaging over
// several networks lives in the ensemble package.
package nn
