// Package providers - DNNL execution provider.
package providers

import (
	"github.com/pkg/errors"
	ort "github.com/yalue/onnxruntime_go"
)

// DNNLProvider stands in for the Intel oneDNN execution provider. The Go
// runtime bindings do not expose a DNNL append yet, so Apply always fails
// and load falls through to the next accelerator in the preference list.
type DNNLProvider struct {
	options DNNLOptions
}

// DNNLOptions contains arguments for the DNNL provider.
type DNNLOptions struct {
	// The device ID.
	DeviceID int `json:"deviceID" yaml:"deviceID"`
}

// Backend returns the backend of the DNNL provider.
func (p *DNNLProvider) Backend() Backend {
	return DNNLBackend
}

// Apply reports DNNL as unavailable in the current runtime bindings.
func (p *DNNLProvider) Apply(_ *ort.SessionOptions) error {
	return errors.New("DNNL execution provider is not supported by the Go ONNX Runtime bindings")
}

// NewDNNLProvider creates a new DNNL provider.
func NewDNNLProvider(options DNNLOptions) *DNNLProvider {
	return &DNNLProvider{options: options}
}
