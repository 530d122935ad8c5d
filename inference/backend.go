// Package inference wraps a compiled detection network behind a single
// pure function: tensor in, tensors out. Accelerator selection happens once
// at backend construction; Run never touches hardware configuration.
package inference

import (
	"gorgonia.org/tensor"
)

// Outputs carries the raw tensors produced by one inference pass.
type Outputs struct {
	// Score is the per-pixel probability map, shape [1, 1, H, W]. When the
	// model emits logits the backend has already applied a sigmoid.
	Score *tensor.Dense
	// Mask is the auxiliary mask output at the same spatial scale, or nil
	// when the model has no such output.
	Mask *tensor.Dense
}

// Backend is one loaded model graph bound to one selected accelerator.
//
// Run is deterministic across repeated calls on the same backend, but not
// bitwise reproducible across different accelerators. Implementations need
// not be safe for concurrent Run calls; the owning Detector serializes.
type Backend interface {
	// Run executes the graph on an NCHW float32 input tensor. Shape or
	// device faults surface as ErrInference and are never retried.
	Run(input *tensor.Dense) (*Outputs, error)
	// Close releases device memory and the compiled graph deterministically.
	// A backend must not be used after Close.
	Close() error
}

// Factory constructs a Backend for a model contract and an ordered
// accelerator preference. It exists so session management can swap the
// runtime-backed implementation for a synthetic one in tests.
type Factory func(cfg ModelConfig, accelerators []string) (Backend, error)
