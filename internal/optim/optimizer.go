// Package optim implements optimization algorithms for training neural networks.
//
// This package provides:
//   - Optimizer interface: Base interface for all optimizers
//   - SGD: Gradient descent with optional momentum
//   - Adam: Adaptive Moment Estimation
//
// Gradients live on the parameters themselves, so Step reads Parameter.Grad
// directly instead of taking a gradient map.
//
// Example usage:
//
//	optimizer := optim.NewSGD(model.Parameters(), optim.SGDConfig{LR: 0.05})
//
//	for range iterations {
//	    tape.Reset()
//	    loss := computeLoss(model, data)
//	    loss.Backward()
//
//	    optimizer.Step()
//	    optimizer.ZeroGrad()
//	}
package optim

import (
	"github.com/born-ml/micrograd/internal/nn"
)

// Optimizer is the base interface for all optimization algorithms.
//
// All optimizers must implement:
//   - Step: Apply gradient updates to parameters
//   - ZeroGrad: Clear gradients before next iteration
//   - GetLR: Get current learning rate (for monitoring/scheduling)
type Optimizer interface {
	// Step applies one update to every parameter using the gradients left
	// by the most recent backward pass. It does not clear them.
	Step()

	// ZeroGrad clears all parameter gradients.
	//
	// Call it after Step so the next backward pass starts from zero.
	ZeroGrad()

	// GetLR returns the current learning rate.
	GetLR() float64
}

// Config is the base configuration for all optimizers.
type Config struct {
	LR float64 // Learning rate
}

// zeroGrad clears gradients of every parameter.
func zeroGrad(params []*nn.Parameter) {
	for _, param := range params {
		param.ZeroGrad()
	}
}
