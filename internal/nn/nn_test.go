package nn_test

import (
	"math"
	"testing"

	"github.com/born-ml/micrograd/internal/autodiff"
	"github.com/born-ml/micrograd/internal/nn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestUniform_Range tests that initial values lie in [-1, 1).
func TestUniform_Range(t *testing.T) {
	rng := nn.NewRand(7)
	for range 10_000 {
		v := nn.Uniform(rng, -1, 1)
		require.GreaterOrEqual(t, v, -1.0)
		require.Less(t, v, 1.0)
	}
}

// TestNeuron_Parameters tests parameter count, order and init range.
func TestNeuron_Parameters(t *testing.T) {
	tape := autodiff.NewTape()
	n := nn.NewNeuron(tape, nn.NewRand(1), 3)

	params := n.Parameters()
	require.Len(t, params, 4)
	assert.Equal(t, 3, n.NumInputs())

	names := make([]string, len(params))
	for i, p := range params {
		names[i] = p.Name()
		assert.GreaterOrEqual(t, p.Data(), -1.0)
		assert.Less(t, p.Data(), 1.0)
	}
	assert.Equal(t, []string{"w0", "w1", "w2", "b"}, names)
}

// TestNeuron_Forward tests tanh(b + Σ wᵢxᵢ) against a direct computation.
func TestNeuron_Forward(t *testing.T) {
	tape := autodiff.NewTape()
	n := nn.NewNeuron(tape, nn.NewRand(3), 2)
	p := n.Parameters()

	x := []float64{0.5, -1.5}
	out := n.Forward(tape.Leaves(x))

	want := math.Tanh(p[2].Data() + p[0].Data()*x[0] + p[1].Data()*x[1])
	assert.InDelta(t, want, out.Data(), 1e-12)
}

// TestNeuron_ForwardGradients tests dout/dwᵢ = (1 - out²) xᵢ and dout/db = 1 - out².
func TestNeuron_ForwardGradients(t *testing.T) {
	tape := autodiff.NewTape()
	n := nn.NewNeuron(tape, nn.NewRand(5), 2)
	p := n.Parameters()

	x := []float64{2, -3}
	out := n.Forward(tape.Leaves(x))
	out.Backward()

	local := 1 - out.Data()*out.Data()
	assert.InDelta(t, local*x[0], p[0].Grad(), 1e-12)
	assert.InDelta(t, local*x[1], p[1].Grad(), 1e-12)
	assert.InDelta(t, local, p[2].Grad(), 1e-12)
}

// TestNeuron_InputMismatchPanics tests the input length check.
func TestNeuron_InputMismatchPanics(t *testing.T) {
	tape := autodiff.NewTape()
	n := nn.NewNeuron(tape, nn.NewRand(1), 3)

	assert.PanicsWithValue(t, "nn: Neuron.Forward: expected 3 inputs, got 2", func() {
		n.Forward(tape.Leaves([]float64{1, 2}))
	})
}

// TestLayer_Forward tests output count and neuron order.
func TestLayer_Forward(t *testing.T) {
	tape := autodiff.NewTape()
	layer := nn.NewLayer(tape, nn.NewRand(2), 3, 4)

	assert.Equal(t, 3, layer.InFeatures())
	assert.Equal(t, 4, layer.OutFeatures())
	require.Len(t, layer.Parameters(), 4*(3+1))

	inputs := tape.Leaves([]float64{1, 0.5, -1})
	outputs := layer.Forward(inputs)
	require.Len(t, outputs, 4)

	for i, neuron := range layer.Neurons() {
		assert.Equal(t, neuron.Forward(inputs).Data(), outputs[i].Data())
	}
}

// TestMLP_Shape tests layer chaining and parameter naming.
func TestMLP_Shape(t *testing.T) {
	tape := autodiff.NewTape()
	model := nn.NewMLP(tape, nn.NewRand(42), 3, []int{4, 4, 1})

	require.Len(t, model.Layers(), 3)
	assert.Equal(t, 3, model.NumInputs())
	assert.Equal(t, 1, model.NumOutputs())

	params := model.Parameters()
	require.Len(t, params, 4*4+4*5+1*5)
	assert.Equal(t, tape.NumParameters(), len(params))
	assert.Equal(t, "layers.0.neurons.0.w0", params[0].Name())
	assert.Equal(t, "layers.0.neurons.0.b", params[3].Name())
	assert.Equal(t, "layers.2.neurons.0.b", params[len(params)-1].Name())

	out := model.Predict([]float64{2, 3, -1})
	require.Len(t, out, 1)
	assert.Greater(t, out[0].Data(), -1.0)
	assert.Less(t, out[0].Data(), 1.0)
}

// TestMLP_DeterministicInit tests that the same seed gives the same model.
func TestMLP_DeterministicInit(t *testing.T) {
	a := nn.NewMLP(autodiff.NewTape(), nn.NewRand(9), 2, []int{3, 1})
	b := nn.NewMLP(autodiff.NewTape(), nn.NewRand(9), 2, []int{3, 1})
	c := nn.NewMLP(autodiff.NewTape(), nn.NewRand(10), 2, []int{3, 1})

	pa, pb, pc := a.Parameters(), b.Parameters(), c.Parameters()
	differs := false
	for i := range pa {
		assert.Equal(t, pa[i].Data(), pb[i].Data())
		differs = differs || pa[i].Data() != pc[i].Data()
	}
	assert.True(t, differs, "a different seed should give different weights")
}

// TestMLP_SharedParameterAccumulates tests that parameters reused across
// examples receive the sum of every example's gradient.
func TestMLP_SharedParameterAccumulates(t *testing.T) {
	tape := autodiff.NewTape()
	model := nn.NewMLP(tape, nn.NewRand(4), 1, []int{1})
	bias := model.Parameters()[1]

	single := func(x float64) float64 {
		tape.Reset()
		model.ZeroGrad()
		model.Predict([]float64{x})[0].Backward()
		return bias.Grad()
	}
	g1, g2 := single(0.5), single(-2)

	tape.Reset()
	model.ZeroGrad()
	sum := model.Predict([]float64{0.5})[0].Add(model.Predict([]float64{-2})[0])
	sum.Backward()

	assert.InDelta(t, g1+g2, bias.Grad(), 1e-12)
}

// TestMLP_Nudge tests data -= lr*grad followed by a zeroed gradient.
func TestMLP_Nudge(t *testing.T) {
	tape := autodiff.NewTape()
	model := nn.NewMLP(tape, nn.NewRand(11), 3, []int{4, 1})

	out := model.Predict([]float64{1, -1, 0.5})
	loss := nn.SumSquaredError(out, []float64{1})
	loss.Backward()

	params := model.Parameters()
	before := make([]float64, len(params))
	grads := make([]float64, len(params))
	for i, p := range params {
		before[i] = p.Data()
		grads[i] = p.Grad()
	}

	const lr = 0.1
	model.Nudge(lr)

	for i, p := range params {
		assert.InDelta(t, before[i]-lr*grads[i], p.Data(), 1e-15, p.Name())
		assert.Equal(t, 0.0, p.Grad(), p.Name())
	}
}

// TestMLP_NudgeReducesLoss tests a single descent step on one example.
func TestMLP_NudgeReducesLoss(t *testing.T) {
	tape := autodiff.NewTape()
	model := nn.NewMLP(tape, nn.NewRand(8), 2, []int{3, 1})
	x, y := []float64{0.5, -0.25}, []float64{0.3}

	lossAt := func() float64 {
		tape.Reset()
		return nn.SumSquaredError(model.Predict(x), y).Data()
	}

	before := lossAt()
	tape.Reset()
	nn.SumSquaredError(model.Predict(x), y).Backward()
	model.Nudge(0.01)

	assert.Less(t, lossAt(), before)
}

// TestSumSquaredError tests the loss value and gradient.
func TestSumSquaredError(t *testing.T) {
	tape := autodiff.NewTape()
	preds := tape.Leaves([]float64{0.5, -0.5})

	loss := nn.SumSquaredError(preds, []float64{1, -1})
	assert.InDelta(t, 0.25+0.25, loss.Data(), 1e-12)

	loss.Backward()
	// d/dp (y - p)² = -2(y - p)
	assert.InDelta(t, -1.0, preds[0].Grad(), 1e-12)
	assert.InDelta(t, 1.0, preds[1].Grad(), 1e-12)
}

func TestSumSquaredError_Panics(t *testing.T) {
	tape := autodiff.NewTape()

	assert.Panics(t, func() { nn.SumSquaredError(tape.Leaves([]float64{1}), nil) })
	assert.Panics(t, func() { nn.SumSquaredError(nil, nil) })
}

// TestMLP_ImplementsModule tests interface satisfaction.
func TestMLP_ImplementsModule(t *testing.T) {
	var _ nn.Module = (*nn.MLP)(nil)
	var _ nn.Module = (*nn.Layer)(nil)
}
