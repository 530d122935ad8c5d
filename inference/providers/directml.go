// Package providers - DirectML execution provider.
package providers

import (
	"github.com/pkg/errors"
	ort "github.com/yalue/onnxruntime_go"
)

// DirectMLProvider enables the DirectML execution provider on Windows.
type DirectMLProvider struct {
	options DirectMLOptions
}

// DirectMLOptions contains arguments for the DirectML provider.
type DirectMLOptions struct {
	// The DirectX device ID.
	DeviceID int `json:"deviceID" yaml:"deviceID"`
}

// Backend returns the backend of the DirectML provider.
func (p *DirectMLProvider) Backend() Backend {
	return DirectMLBackend
}

// Apply enables DirectML on the session options.
func (p *DirectMLProvider) Apply(opts *ort.SessionOptions) error {
	if err := opts.AppendExecutionProviderDirectML(p.options.DeviceID); err != nil {
		return errors.Wrap(err, "enabling DirectML")
	}
	return nil
}

// NewDirectMLProvider creates a new DirectML provider.
func NewDirectMLProvider(options DirectMLOptions) *DirectMLProvider {
	return &DirectMLProvider{options: options}
}
