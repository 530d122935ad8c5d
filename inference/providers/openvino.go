// Package providers - OpenVINO execution provider.
package providers

import (
	"fmt"

	"github.com/pkg/errors"
	ort "github.com/yalue/onnxruntime_go"
)

// OpenVINOProvider enables the Intel OpenVINO execution provider.
type OpenVINOProvider struct {
	options OpenVINOOptions
}

// OpenVINOOptions contains arguments for the OpenVINO provider.
// See:
// https://onnxruntime.ai/docs/execution-providers/OpenVINO-ExecutionProvider.html#summary-of-options
type OpenVINOOptions struct {
	// DeviceType selects the target, e.g. "CPU", "GPU", "NPU". Empty means
	// the OpenVINO default.
	DeviceType string `json:"deviceType"   yaml:"deviceType"`
	// NumOfThreads bounds inference threads. Zero means auto.
	NumOfThreads int `json:"numOfThreads" yaml:"numOfThreads"`
}

// Backend returns the backend of the OpenVINO provider.
func (p *OpenVINOProvider) Backend() Backend {
	return OpenVINOBackend
}

// Apply enables OpenVINO on the session options.
func (p *OpenVINOProvider) Apply(opts *ort.SessionOptions) error {
	config := map[string]string{}
	if p.options.DeviceType != "" {
		config["device_type"] = p.options.DeviceType
	}
	if p.options.NumOfThreads > 0 {
		config["num_of_threads"] = fmt.Sprintf("%d", p.options.NumOfThreads)
	}
	if err := opts.AppendExecutionProviderOpenVINO(config); err != nil {
		return errors.Wrap(err, "enabling OpenVINO")
	}
	return nil
}

// NewOpenVINOProvider creates a new OpenVINO provider.
func NewOpenVINOProvider(options OpenVINOOptions) *OpenVINOProvider {
	return &OpenVINOProvider{options: options}
}
