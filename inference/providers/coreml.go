// Package providers - CoreML execution provider.
package providers

import (
	"github.com/pkg/errors"
	ort "github.com/yalue/onnxruntime_go"
)

// CoreMLProvider enables the Apple CoreML execution provider.
type CoreMLProvider struct {
	options CoreMLOptions
}

// CoreMLOptions contains arguments for the CoreML provider.
// See: https://onnxruntime.ai/docs/execution-providers/CoreML-ExecutionProvider.html
type CoreMLOptions struct {
	// Flags is the CoreML provider flag bitmask, e.g. COREML_FLAG_USE_CPU_ONLY.
	// Zero enables the default configuration (all compute units).
	Flags uint32 `json:"flags" yaml:"flags"`
}

// Backend returns the backend of the CoreML provider.
func (p *CoreMLProvider) Backend() Backend {
	return CoreMLBackend
}

// Apply enables CoreML on the session options.
func (p *CoreMLProvider) Apply(opts *ort.SessionOptions) error {
	if err := opts.AppendExecutionProviderCoreML(p.options.Flags); err != nil {
		return errors.Wrap(err, "enabling CoreML")
	}
	return nil
}

// NewCoreMLProvider creates a new CoreML provider.
func NewCoreMLProvider(options CoreMLOptions) *CoreMLProvider {
	return &CoreMLProvider{options: options}
}
