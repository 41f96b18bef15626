// Copyright 2025 Dendrite ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn_test

import (
	"errors"
	"math"
	"testing"

	"github.com/dendrite-ml/dendrite/nn"
)

// TestPublicSurface verifies the re-exported API end to end: build,
// predict, pass-based training step.
func TestPublicSurface(t *testing.T) {
	net, err := nn.New([]int{2, 4, 2}, 0.1)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if got, want := net.Architecture(), "2 -> 4 -> 2"; got != want {
		t.Errorf("Architecture() = %q, want %q", got, want)
	}
	if got, want := net.NumParameters(), 2*4+4+4*2+2; got != want {
		t.Errorf("NumParameters() = %d, want %d", got, want)
	}

	out, err := net.Predict([]float64{1, 0})
	if err != nil {
		t.Fatalf("Predict failed: %v", err)
	}
	if sum := out[0] + out[1]; math.Abs(sum-1) > 1e-9 {
		t.Errorf("prediction sums to %v, want 1", sum)
	}

	target := []float64{0, 1}
	p, err := net.ForwardPass([]float64{1, 0}, nn.PassConfig{})
	if err != nil {
		t.Fatalf("ForwardPass failed: %v", err)
	}
	before := nn.CrossEntropy(p.Output(), target)
	if err := net.Backward(p, target); err != nil {
		t.Fatalf("Backward failed: %v", err)
	}
	net.Update(p)

	after, err := net.Predict([]float64{1, 0})
	if err != nil {
		t.Fatal(err)
	}
	if loss := nn.CrossEntropy(after, target); loss >= before {
		t.Errorf("loss after one step = %v, want < %v", loss, before)
	}
}

func TestSentinelErrors(t *testing.T) {
	if _, err := nn.New([]int{5}, 0.1); !errors.Is(err, nn.ErrArchitecture) {
		t.Errorf("New([5]) error = %v, want ErrArchitecture", err)
	}

	net, err := nn.New([]int{2, 2}, 0.1)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := net.Forward([]float64{1, 2, 3}); !errors.Is(err, nn.ErrShapeMismatch) {
		t.Errorf("Forward error = %v, want ErrShapeMismatch", err)
	}
}

func TestConfigDefaults(t *testing.T) {
	net, err := nn.NewWithConfig(nn.Config{
		LayerSizes:   []int{3, 5, 2},
		LearningRate: 0.05,
	})
	if err != nil {
		t.Fatal(err)
	}
	layers := net.Layers()
	if got := layers[0].Activation(); got != nn.ReLU {
		t.Errorf("default hidden activation = %v, want relu", got)
	}
	if got := layers[len(layers)-1].Activation(); got != nn.Softmax {
		t.Errorf("output activation = %v, want softmax", got)
	}
}
