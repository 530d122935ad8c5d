// Package providers - CPU execution provider.
package providers

import (
	ort "github.com/yalue/onnxruntime_go"
)

// CPUProvider is the fallback provider; it requires no session changes
// because ONNX Runtime always registers the CPU provider last.
type CPUProvider struct{}

// Backend returns the backend of the CPU provider.
func (p *CPUProvider) Backend() Backend {
	return CPUBackend
}

// Apply is a no-op for the CPU provider.
func (p *CPUProvider) Apply(_ *ort.SessionOptions) error {
	return nil
}

// NewCPUProvider creates a new CPU provider.
func NewCPUProvider() *CPUProvider {
	return &CPUProvider{}
}
