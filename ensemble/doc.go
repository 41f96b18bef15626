// Copyright 2025 Dendrite ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package ensemble averages predictions across independently trained
// networks.
//
// # Overview
//
// An Ensemble owns several networks with a shared architecture but
// independent Xavier initializations. Training runs the members in
// parallel on the same dataset; prediction is the element-wise mean
// of the member outputs, which stays a probability distribution.
//
// # Basic Usage
//
//	import "github.com/dendrite-ml/dendrite/ensemble"
//
//	func main() {
//	    ens, err := ensemble.New(4, []int{784, 128, 10}, 0.01)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    res, err := ens.Train(examples, 50, 32)
//	    ...
//	    out, err := ens.Predict(pixels)
//	    ...
//	}
package ensemble
