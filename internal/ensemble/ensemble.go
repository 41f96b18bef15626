// Package ensemble trains several independently initialized networks
// and averages their predictions.
package ensemble

import (
	"fmt"
	"math/rand"
	"sync"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/dendrite-ml/dendrite/internal/nn"
	"github.com/dendrite-ml/dendrite/internal/train"
)

// Result reports an ensemble training run.
type Result struct {
	// AverageAccuracy is the arithmetic mean of the members' final
	// training accuracies.
	AverageAccuracy float64

	// Networks is the member count.
	Networks int
}

// Ensemble owns a set of member networks with a shared architecture
// but independent weights. Members share no state, so training runs
// them concurrently.
type Ensemble struct {
	// Rand seeds the per-member shuffle sources, making a run
	// reproducible. Nil draws seeds from the process-wide source.
	Rand *rand.Rand

	// Progress observes every member's training. It may be invoked
	// from the member goroutines concurrently.
	Progress train.ProgressFunc

	members []*nn.Network
}

// New builds an ensemble of size independently initialized networks.
//
// Example:
//
//	ens, err := ensemble.New(4, []int{784, 128, 10}, 0.01)
func New(size int, layerSizes []int, learningRate float64) (*Ensemble, error) {
	if size < 1 {
		return nil, fmt.Errorf("ensemble: need at least one member, got %d", size)
	}
	members := make([]*nn.Network, size)
	for i := range members {
		net, err := nn.New(layerSizes, learningRate)
		if err != nil {
			return nil, fmt.Errorf("ensemble: member %d: %w", i, err)
		}
		members[i] = net
	}
	return &Ensemble{members: members}, nil
}

// FromNetworks wraps pre-built networks as an ensemble. Every member
// must accept the same input size and produce the same output size;
// hidden layers may differ. The members must not be shared with
// another ensemble that trains concurrently.
func FromNetworks(members ...*nn.Network) (*Ensemble, error) {
	if len(members) == 0 {
		return nil, fmt.Errorf("ensemble: need at least one member")
	}
	for i, member := range members[1:] {
		if member.InputSize() != members[0].InputSize() || member.OutputSize() != members[0].OutputSize() {
			return nil, fmt.Errorf("ensemble: %w: member %d is %s, member 0 is %s",
				nn.ErrShapeMismatch, i+1, member.Architecture(), members[0].Architecture())
		}
	}
	return &Ensemble{members: append([]*nn.Network(nil), members...)}, nil
}

// Networks returns the member networks in order.
func (e *Ensemble) Networks() []*nn.Network { return e.members }

// Train runs every member to completion on the same dataset and
// returns the mean of their final training accuracies. Members train
// in parallel: each goroutine owns one member's layers outright, so
// the only join point is the result aggregation. Any member failure
// aborts the run; a partially trained ensemble is never averaged.
func (e *Ensemble) Train(examples []nn.TrainingExample, epochs, batchSize int) (Result, error) {
	accuracies := make([]float64, len(e.members))
	errs := make([]error, len(e.members))

	var wg sync.WaitGroup
	wg.Add(len(e.members))
	for i, member := range e.members {
		trainer := train.New(member)
		trainer.Progress = e.Progress
		trainer.Rand = rand.New(rand.NewSource(e.memberSeed()))

		go func(i int, trainer *train.Trainer) {
			defer wg.Done()
			res, err := trainer.Train(examples, epochs, batchSize)
			if err != nil {
				errs[i] = err
				return
			}
			accuracies[i] = res.Accuracy
		}(i, trainer)
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			return Result{}, fmt.Errorf("ensemble: member %d: %w", i, err)
		}
	}
	return Result{
		AverageAccuracy: stat.Mean(accuracies, nil),
		Networks:        len(e.members),
	}, nil
}

// memberSeed draws the next member's shuffle seed. Called on the
// caller's goroutine before the member starts, so seeded runs assign
// seeds in member order.
func (e *Ensemble) memberSeed() int64 {
	if e.Rand != nil {
		return e.Rand.Int63()
	}
	return rand.Int63()
}

// Predict forwards input through every member and returns the
// element-wise arithmetic mean of their output distributions.
func (e *Ensemble) Predict(input []float64) ([]float64, error) {
	var mean []float64
	for i, member := range e.members {
		out, err := member.Forward(input)
		if err != nil {
			return nil, fmt.Errorf("ensemble: member %d: %w", i, err)
		}
		if mean == nil {
			mean = out
			continue
		}
		floats.Add(mean, out)
	}
	floats.Scale(1/float64(len(e.members)), mean)
	return mean, nil
}
