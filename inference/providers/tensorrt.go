// Package providers - TensorRT execution provider.
package providers

import (
	"fmt"

	"github.com/pkg/errors"
	ort "github.com/yalue/onnxruntime_go"
)

// TensorRTProvider enables the NVIDIA TensorRT execution provider.
type TensorRTProvider struct {
	options TensorRTOptions
}

// TensorRTOptions contains arguments for the TensorRT provider.
// See:
// https://onnxruntime.ai/docs/execution-providers/TensorRT-ExecutionProvider.html#configurations
type TensorRTOptions struct {
	// The device ID.
	DeviceID int `json:"deviceID"        yaml:"deviceID"`
	// Maximum workspace size for TensorRT engine build, in bytes. Zero
	// means the ONNX Runtime default.
	MaxWorkspaceSize int64 `json:"maxWorkspaceSize" yaml:"maxWorkspaceSize"`
	// Enable FP16 precision for faster inference on supported hardware.
	FP16Enable bool `json:"fp16Enable"      yaml:"fp16Enable"`
}

// Backend returns the backend of the TensorRT provider.
func (p *TensorRTProvider) Backend() Backend {
	return TensorRTBackend
}

// Apply enables TensorRT on the session options.
func (p *TensorRTProvider) Apply(opts *ort.SessionOptions) error {
	trt, err := ort.NewTensorRTProviderOptions()
	if err != nil {
		return errors.Wrap(err, "creating TensorRT provider options")
	}
	defer trt.Destroy()

	config := map[string]string{
		"device_id":       fmt.Sprintf("%d", p.options.DeviceID),
		"trt_fp16_enable": fmt.Sprintf("%t", p.options.FP16Enable),
	}
	if p.options.MaxWorkspaceSize > 0 {
		config["trt_max_workspace_size"] = fmt.Sprintf("%d", p.options.MaxWorkspaceSize)
	}
	if err = trt.Update(config); err != nil {
		return errors.Wrap(err, "updating TensorRT provider options")
	}

	if err := opts.AppendExecutionProviderTensorRT(trt); err != nil {
		return errors.Wrap(err, "enabling TensorRT")
	}
	return nil
}

// NewTensorRTProvider creates a new TensorRT provider.
func NewTensorRTProvider(options TensorRTOptions) *TensorRTProvider {
	return &TensorRTProvider{options: options}
}
