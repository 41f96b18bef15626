package train

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dendrite-ml/dendrite/internal/nn"
)

func TestNewRegularizedValidation(t *testing.T) {
	net := seededNetwork(t, []int{2, 2}, 0.1, 1)

	for _, rate := range []float64{-0.1, 1.0, 1.5} {
		_, err := NewRegularized(net, rate)
		assert.Error(t, err, "rate %v should be rejected", rate)
	}

	rt, err := NewRegularized(net, 0)
	require.NoError(t, err)
	assert.False(t, rt.DropoutEnabled, "zero rate disables dropout")

	rt, err = NewRegularized(net, 0.3)
	require.NoError(t, err)
	assert.True(t, rt.DropoutEnabled)
}

func TestEarlyStoppingOnPlateau(t *testing.T) {
	// A zero learning rate freezes the weights, so validation
	// accuracy is constant: the first epoch sets the best and every
	// later epoch stalls.
	net := seededNetwork(t, []int{2, 4, 2}, 0, 1)
	rt, err := NewRegularized(net, 0.3)
	require.NoError(t, err)
	rt.Rand = rand.New(rand.NewSource(1))

	res, err := rt.TrainWithValidation(xorData(), xorData(), 50, 4, 3)
	require.NoError(t, err)

	assert.True(t, res.EarlyStopped)
	assert.Equal(t, 4, res.Epochs, "one improving epoch plus three stalled ones")
}

func TestEarlyStoppingExhaustsBudget(t *testing.T) {
	net := seededNetwork(t, []int{2, 4, 2}, 0.1, 1)
	rt, err := NewRegularized(net, 0.2)
	require.NoError(t, err)
	rt.Rand = rand.New(rand.NewSource(1))

	res, err := rt.TrainWithValidation(twoBlobs(), twoBlobs(), 5, 4, 100)
	require.NoError(t, err)

	assert.False(t, res.EarlyStopped)
	assert.Equal(t, 5, res.Epochs)
}

func TestTrainWithValidationLearns(t *testing.T) {
	net := seededNetwork(t, []int{2, 8, 2}, 0.1, 2)
	rt, err := NewRegularized(net, 0.1)
	require.NoError(t, err)
	rt.Rand = rand.New(rand.NewSource(2))

	res, err := rt.TrainWithValidation(twoBlobs(), twoBlobs(), 400, 4, 50)
	require.NoError(t, err)

	assert.GreaterOrEqual(t, res.ValidationAccuracy, 0.9)
}

func TestTrainWithValidationArguments(t *testing.T) {
	net := seededNetwork(t, []int{2, 4, 2}, 0.1, 1)
	rt, err := NewRegularized(net, 0.2)
	require.NoError(t, err)

	_, err = rt.TrainWithValidation(xorData(), xorData(), 10, 4, 0)
	assert.Error(t, err, "zero patience")

	_, err = rt.TrainWithValidation(xorData(), xorData(), 10, 0, 3)
	assert.Error(t, err, "zero batch size")

	_, err = rt.TrainWithValidation(xorData(), xorData(), -1, 4, 3)
	assert.Error(t, err, "negative epochs")

	res, err := rt.TrainWithValidation(xorData(), xorData(), 0, 4, 3)
	require.NoError(t, err)
	assert.Equal(t, ValidationResult{}, res, "zero epochs is a no-op")

	bad := []nn.TrainingExample{{Input: []float64{1, 0}, Target: nil}}
	_, err = rt.TrainWithValidation(xorData(), bad, 10, 4, 3)
	assert.ErrorIs(t, err, nn.ErrShapeMismatch, "validation targets are shape-checked")
}

func TestValidationRunsWithoutDropout(t *testing.T) {
	// With dropout at 0.9 the training passes are heavily perturbed,
	// but validation sees the full network: on a frozen net the
	// validation accuracy must match a plain Evaluate.
	net := seededNetwork(t, []int{2, 16, 2}, 0, 3)
	want, err := Evaluate(net, xorData())
	require.NoError(t, err)

	rt, err := NewRegularized(net, 0.9)
	require.NoError(t, err)
	rt.Rand = rand.New(rand.NewSource(3))

	res, err := rt.TrainWithValidation(xorData(), xorData(), 2, 4, 5)
	require.NoError(t, err)
	assert.Equal(t, want, res.ValidationAccuracy)
}
