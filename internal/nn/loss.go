package nn

import (
	"fmt"

	"github.com/born-ml/micrograd/internal/autodiff"
)

// SumSquaredError computes Σ (targetᵢ - predictionᵢ)².
//
// The sum is folded from a zero constant in prediction order. Unlike a mean,
// the loss grows with the number of examples.
//
// Example:
//
//	var preds []autodiff.Value
//	for _, x := range inputs {
//	    preds = append(preds, model.Predict(x)[0])
//	}
//	loss := nn.SumSquaredError(preds, targets)
//
// Panics if the lengths differ or predictions is empty.
func SumSquaredError(predictions []autodiff.Value, targets []float64) autodiff.Value {
	if len(predictions) != len(targets) {
		panic(fmt.Sprintf("nn: SumSquaredError: %d predictions for %d targets", len(predictions), len(targets)))
	}
	if len(predictions) == 0 {
		panic("nn: SumSquaredError: no predictions")
	}

	loss := predictions[0].Tape().Constant(0)
	for i, pred := range predictions {
		loss = loss.Add(pred.RSub(targets[i]).Pow(2))
	}
	return loss
}
