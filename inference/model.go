package inference

import "github.com/pkg/errors"

// ModelConfig describes the tensor contract of a detection model artifact.
// The graph itself is opaque; the backend only needs the node names, the
// normalization constants, and the dimension alignment the graph requires.
type ModelConfig struct {
	// Path is the location of the serialized model graph.
	Path string
	// InputName is the graph's image input node, NCHW float32.
	InputName string
	// ScoreOutput is the per-pixel score map output node.
	ScoreOutput string
	// MaskOutput is the auxiliary mask output node.
	MaskOutput string
	// Mean and Scale normalize pixels as (v - Mean) / Scale.
	Mean  float32
	Scale float32
	// PadMultiple is the dimension alignment required by the graph.
	PadMultiple int
	// ApplySigmoid converts raw score logits to probabilities after Run.
	ApplySigmoid bool
}

// DefaultModelConfig returns the contract of the stock detection model:
// an "input" node normalized to [-1, 1], a "db" logit map passed through a
// sigmoid, a "mask" auxiliary output, and 32-pixel dimension alignment.
func DefaultModelConfig(path string) ModelConfig {
	return ModelConfig{
		Path:         path,
		InputName:    "input",
		ScoreOutput:  "db",
		MaskOutput:   "mask",
		Mean:         127.5,
		Scale:        127.5,
		PadMultiple:  32,
		ApplySigmoid: true,
	}
}

// Validate checks the config for obvious contract violations.
func (c ModelConfig) Validate() error {
	if c.Path == "" {
		return errors.New("model path cannot be empty")
	}
	if c.InputName == "" || c.ScoreOutput == "" {
		return errors.New("input and score output node names are required")
	}
	if c.Scale == 0 {
		return errors.New("normalization scale cannot be zero")
	}
	if c.PadMultiple <= 0 {
		return errors.Errorf("pad multiple must be positive, got %d", c.PadMultiple)
	}
	return nil
}
