package optim_test

import (
	"testing"

	"github.com/born-ml/micrograd/internal/autodiff"
	"github.com/born-ml/micrograd/internal/nn"
	"github.com/born-ml/micrograd/internal/optim"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newParam creates a single parameter with the given data and gradient.
func newParam(tape *autodiff.Tape, data, grad float64) *nn.Parameter {
	p := nn.NewParameter("x", tape.Parameter(data))
	// d(grad*x)/dx = grad
	tape.Reset()
	p.Value().MulScalar(grad).Backward()
	tape.Reset()
	return p
}

// TestSGD_SimpleUpdate tests SGD without momentum.
func TestSGD_SimpleUpdate(t *testing.T) {
	tape := autodiff.NewTape()
	param := newParam(tape, 2.0, 1.0)
	require.Equal(t, 1.0, param.Grad())

	optimizer := optim.NewSGD([]*nn.Parameter{param}, optim.SGDConfig{LR: 0.1})
	optimizer.Step()

	// Expected: x_new = x_old - lr * grad = 2.0 - 0.1 * 1.0 = 1.9
	assert.InDelta(t, 1.9, param.Data(), 1e-12)
	assert.Equal(t, 1.0, param.Grad(), "Step leaves gradients in place")

	optimizer.ZeroGrad()
	assert.Equal(t, 0.0, param.Grad())
}

// TestSGD_WithMomentum tests SGD with momentum.
func TestSGD_WithMomentum(t *testing.T) {
	tape := autodiff.NewTape()
	param := newParam(tape, 1.0, 1.0)

	optimizer := optim.NewSGD([]*nn.Parameter{param}, optim.SGDConfig{LR: 0.1, Momentum: 0.9})

	// v_1 = 0.9 * 0 + 1.0 = 1.0, x_1 = 1.0 - 0.1 * 1.0 = 0.9
	optimizer.Step()
	assert.InDelta(t, 0.9, param.Data(), 1e-12)
	assert.InDelta(t, 1.0, optimizer.Velocity(0), 1e-12)

	// v_2 = 0.9 * 1.0 + 1.0 = 1.9, x_2 = 0.9 - 0.1 * 1.9 = 0.71
	optimizer.Step()
	assert.InDelta(t, 0.71, param.Data(), 1e-12)
	assert.InDelta(t, 1.9, optimizer.Velocity(0), 1e-12)
}

// TestSGD_DefaultLR tests the default learning rate.
func TestSGD_DefaultLR(t *testing.T) {
	optimizer := optim.NewSGD(nil, optim.SGDConfig{})
	assert.Equal(t, 0.01, optimizer.GetLR())

	optimizer.SetLR(0.5)
	assert.Equal(t, 0.5, optimizer.GetLR())
}

// TestSGD_MatchesNudge tests that Step + ZeroGrad equals MLP.Nudge.
func TestSGD_MatchesNudge(t *testing.T) {
	build := func() (*autodiff.Tape, *nn.MLP) {
		tape := autodiff.NewTape()
		return tape, nn.NewMLP(tape, nn.NewRand(21), 3, []int{4, 1})
	}
	backward := func(model *nn.MLP) {
		out := model.Predict([]float64{1, 2, -1})
		nn.SumSquaredError(out, []float64{-1}).Backward()
	}

	tapeA, nudged := build()
	tapeB, stepped := build()

	for range 5 {
		tapeA.Reset()
		backward(nudged)
		nudged.Nudge(0.05)

		tapeB.Reset()
		backward(stepped)
		sgd := optim.NewSGD(stepped.Parameters(), optim.SGDConfig{LR: 0.05})
		sgd.Step()
		sgd.ZeroGrad()
	}

	pa, pb := nudged.Parameters(), stepped.Parameters()
	for i := range pa {
		assert.Equal(t, pa[i].Data(), pb[i].Data(), pa[i].Name())
		assert.Equal(t, 0.0, pb[i].Grad())
	}
}

// TestAdam_FirstStep tests that the first Adam step moves each parameter by about lr.
func TestAdam_FirstStep(t *testing.T) {
	tape := autodiff.NewTape()
	pos := nn.NewParameter("pos", tape.Parameter(1.0))
	neg := nn.NewParameter("neg", tape.Parameter(1.0))

	// loss = 3*pos - 0.5*neg
	pos.Value().MulScalar(3).Add(neg.Value().MulScalar(-0.5)).Backward()
	tape.Reset()

	optimizer := optim.NewAdam([]*nn.Parameter{pos, neg}, optim.AdamConfig{LR: 0.1})
	optimizer.Step()

	// With bias correction m_hat = g and v_hat = g², so the step is lr*sign(g).
	assert.InDelta(t, 0.9, pos.Data(), 1e-6)
	assert.InDelta(t, 1.1, neg.Data(), 1e-6)
	assert.Equal(t, 1, optimizer.GetTimestep())
}

// TestAdam_Defaults tests default hyperparameters.
func TestAdam_Defaults(t *testing.T) {
	optimizer := optim.NewAdam(nil, optim.AdamConfig{})
	assert.Equal(t, 0.001, optimizer.GetLR())
}

// TestAdam_ReducesLoss tests convergence on a quadratic.
func TestAdam_ReducesLoss(t *testing.T) {
	tape := autodiff.NewTape()
	x := nn.NewParameter("x", tape.Parameter(3.0))
	optimizer := optim.NewAdam([]*nn.Parameter{x}, optim.AdamConfig{LR: 0.1})

	lossAt := func() autodiff.Value {
		tape.Reset()
		return x.Value().SubScalar(1).Pow(2)
	}

	initial := lossAt().Data()
	for range 200 {
		lossAt().Backward()
		optimizer.Step()
		optimizer.ZeroGrad()
	}

	assert.Less(t, lossAt().Data(), initial/100)
	assert.InDelta(t, 1.0, x.Data(), 0.1)
}

// TestOptimizers_ImplementInterface tests interface satisfaction.
func TestOptimizers_ImplementInterface(t *testing.T) {
	var _ optim.Optimizer = (*optim.SGD)(nil)
	var _ optim.Optimizer = (*optim.Adam)(nil)
}
