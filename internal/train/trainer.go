// Package train drives epoch-based training over example datasets:
// the base mini-batch trainer and a dropout-regularized variant with
// validation-based early stopping.
package train

import (
	"fmt"
	"math/rand"

	"github.com/dendrite-ml/dendrite/internal/nn"
)

// Result reports the metrics of a training run's final epoch.
type Result struct {
	// Accuracy is the fraction of training examples whose predicted
	// class matched the target class during the final epoch.
	Accuracy float64

	// Loss is the mean cross-entropy over the final epoch.
	Loss float64

	// Epochs is the number of epochs that actually ran.
	Epochs int
}

// Trainer runs shuffled mini-batch SGD epochs against a network.
// Construct with New; the exported fields may be set before Train.
type Trainer struct {
	// Progress, when non-nil, observes the run every
	// progressInterval epochs.
	Progress ProgressFunc

	// Rand drives the per-epoch shuffle. Nil uses the process-wide
	// source.
	Rand *rand.Rand

	net *nn.Network
}

// New returns a trainer bound to net.
func New(net *nn.Network) *Trainer {
	return &Trainer{net: net}
}

// Train runs up to epochs passes over examples. Each epoch shuffles a
// private copy of the dataset, partitions it into batches of
// batchSize (the last batch may be shorter), and steps through every
// example: forward, backward, weight update. Updates apply after each
// individual example; the batch size controls iteration order only.
//
// The returned Result reflects the final epoch. Metrics are measured
// on the fly, so each example is scored by the weights in effect when
// it was visited.
//
// An empty dataset or a zero epoch count is a no-op returning a zero
// Result. A non-positive batch size or negative epoch count is an
// error.
func (t *Trainer) Train(examples []nn.TrainingExample, epochs, batchSize int) (Result, error) {
	return t.train(examples, epochs, batchSize, nn.PassConfig{})
}

func (t *Trainer) train(examples []nn.TrainingExample, epochs, batchSize int, cfg nn.PassConfig) (Result, error) {
	if batchSize < 1 {
		return Result{}, fmt.Errorf("train: batch size must be positive, got %d", batchSize)
	}
	if epochs < 0 {
		return Result{}, fmt.Errorf("train: epoch count must be non-negative, got %d", epochs)
	}
	if len(examples) == 0 || epochs == 0 {
		return Result{}, nil
	}

	shuffled := make([]nn.TrainingExample, len(examples))
	copy(shuffled, examples)

	var res Result
	for epoch := 1; epoch <= epochs; epoch++ {
		t.shuffle(shuffled)

		var totalLoss float64
		correct := 0
		for _, batch := range batches(shuffled, batchSize) {
			for _, ex := range batch {
				if len(ex.Target) != t.net.OutputSize() {
					return Result{}, fmt.Errorf("train: epoch %d: %w: target length %d, network produces %d",
						epoch, nn.ErrShapeMismatch, len(ex.Target), t.net.OutputSize())
				}
				p, err := t.net.ForwardPass(ex.Input, cfg)
				if err != nil {
					return Result{}, fmt.Errorf("train: epoch %d: %w", epoch, err)
				}
				out := p.Output()
				totalLoss += nn.CrossEntropy(out, ex.Target)
				if nn.Argmax(out) == nn.Argmax(ex.Target) {
					correct++
				}
				if err := t.net.Backward(p, ex.Target); err != nil {
					return Result{}, fmt.Errorf("train: epoch %d: %w", epoch, err)
				}
				t.net.Update(p)
			}
		}

		res = Result{
			Accuracy: float64(correct) / float64(len(shuffled)),
			Loss:     totalLoss / float64(len(shuffled)),
			Epochs:   epoch,
		}
		if t.Progress != nil && epoch%progressInterval == 0 {
			t.Progress(epoch, epochs, res.Loss, res.Accuracy)
		}
	}
	return res, nil
}

func (t *Trainer) shuffle(examples []nn.TrainingExample) {
	swap := func(i, j int) { examples[i], examples[j] = examples[j], examples[i] }
	if t.Rand != nil {
		t.Rand.Shuffle(len(examples), swap)
		return
	}
	rand.Shuffle(len(examples), swap)
}

// batches partitions examples into contiguous slices of batchSize;
// the last batch holds the remainder.
func batches(examples []nn.TrainingExample, batchSize int) [][]nn.TrainingExample {
	out := make([][]nn.TrainingExample, 0, (len(examples)+batchSize-1)/batchSize)
	for start := 0; start < len(examples); start += batchSize {
		end := start + batchSize
		if end > len(examples) {
			end = len(examples)
		}
		out = append(out, examples[start:end])
	}
	return out
}

// Evaluate returns the fraction of examples whose predicted class
// matches the target class, with dropout disabled. An empty dataset
// evaluates to zero.
func Evaluate(net *nn.Network, examples []nn.TrainingExample) (float64, error) {
	if len(examples) == 0 {
		return 0, nil
	}
	correct := 0
	for _, ex := range examples {
		if len(ex.Target) != net.OutputSize() {
			return 0, fmt.Errorf("train: evaluate: %w: target length %d, network produces %d",
				nn.ErrShapeMismatch, len(ex.Target), net.OutputSize())
		}
		out, err := net.Forward(ex.Input)
		if err != nil {
			return 0, fmt.Errorf("train: evaluate: %w", err)
		}
		if nn.Argmax(out) == nn.Argmax(ex.Target) {
			correct++
		}
	}
	return float64(correct) / float64(len(examples)), nil
}
