package train

import (
	"fmt"
	"math"

	"github.com/dendrite-ml/dendrite/internal/nn"
)

// ValidationResult reports a regularized run with early stopping.
type ValidationResult struct {
	// TrainAccuracy is the training accuracy of the last epoch that
	// ran, measured with dropout active.
	TrainAccuracy float64

	// ValidationAccuracy is the held-out accuracy after the last
	// epoch, measured with dropout off.
	ValidationAccuracy float64

	// Epochs is the number of epochs that actually ran.
	Epochs int

	// EarlyStopped is true when the run ended on the patience
	// trigger rather than by exhausting the epoch budget.
	EarlyStopped bool
}

// RegularizedTrainer extends Trainer with inverted dropout on hidden
// activations and validation-based early stopping. Dropout applies to
// training passes only; validation and inference always run the full
// network.
type RegularizedTrainer struct {
	Trainer

	// DropoutEnabled gates dropout during training passes. Toggling
	// it off turns TrainWithValidation into plain early-stopped SGD.
	DropoutEnabled bool

	// DropoutRate is the probability of zeroing each hidden
	// activation, in [0, 1).
	DropoutRate float64
}

// NewRegularized returns a trainer bound to net that drops hidden
// activations at dropoutRate. A rate of zero disables dropout but
// keeps early stopping.
func NewRegularized(net *nn.Network, dropoutRate float64) (*RegularizedTrainer, error) {
	if dropoutRate < 0 || dropoutRate >= 1 {
		return nil, fmt.Errorf("train: dropout rate must be in [0, 1), got %v", dropoutRate)
	}
	return &RegularizedTrainer{
		Trainer:        Trainer{net: net},
		DropoutEnabled: dropoutRate > 0,
		DropoutRate:    dropoutRate,
	}, nil
}

// TrainWithValidation runs up to epochs rounds of one-epoch training
// with dropout enabled, evaluating validationData after each round
// with dropout off. The best validation accuracy starts below any
// reachable value, so the first epoch always registers as an
// improvement. Once patience consecutive epochs fail to beat the best,
// the run stops early; ties do not count as improvement.
//
// The returned ValidationResult reflects the last epoch that ran,
// whether the run stopped early or exhausted its budget.
func (r *RegularizedTrainer) TrainWithValidation(trainingData, validationData []nn.TrainingExample, epochs, batchSize, patience int) (ValidationResult, error) {
	if patience < 1 {
		return ValidationResult{}, fmt.Errorf("train: early-stopping patience must be positive, got %d", patience)
	}
	if batchSize < 1 {
		return ValidationResult{}, fmt.Errorf("train: batch size must be positive, got %d", batchSize)
	}
	if epochs < 0 {
		return ValidationResult{}, fmt.Errorf("train: epoch count must be non-negative, got %d", epochs)
	}

	cfg := nn.PassConfig{
		Dropout:     r.DropoutEnabled,
		DropoutRate: r.DropoutRate,
		Rand:        r.Rand,
	}
	best := math.Inf(-1)
	stalled := 0

	var res ValidationResult
	for epoch := 1; epoch <= epochs; epoch++ {
		epochRes, err := r.train(trainingData, 1, batchSize, cfg)
		if err != nil {
			return ValidationResult{}, err
		}
		valAcc, err := Evaluate(r.net, validationData)
		if err != nil {
			return ValidationResult{}, err
		}
		res = ValidationResult{
			TrainAccuracy:      epochRes.Accuracy,
			ValidationAccuracy: valAcc,
			Epochs:             epoch,
		}
		if r.Progress != nil && epoch%progressInterval == 0 {
			r.Progress(epoch, epochs, epochRes.Loss, valAcc)
		}

		if valAcc > best {
			best = valAcc
			stalled = 0
			continue
		}
		stalled++
		if stalled >= patience {
			res.EarlyStopped = true
			return res, nil
		}
	}
	return res, nil
}
