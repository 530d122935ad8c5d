// Package providers - CUDA execution provider.
package providers

import (
	"fmt"

	"github.com/pkg/errors"
	ort "github.com/yalue/onnxruntime_go"
)

// CUDAProvider enables the NVIDIA CUDA execution provider.
type CUDAProvider struct {
	options CUDAOptions
}

// CUDAOptions contains arguments for the CUDA provider.
// See:
// https://onnxruntime.ai/docs/execution-providers/CUDA-ExecutionProvider.html#configuration-options
type CUDAOptions struct {
	// The device ID.
	DeviceID int `json:"deviceID"            yaml:"deviceID"`
	// The size limit of the device memory arena in bytes. Zero means the
	// ONNX Runtime default.
	GPUMemLimit int64 `json:"gpuMemLimit"         yaml:"gpuMemLimit"`
	// The strategy for extending the device memory arena.
	// 0: kNextPowerOfTwo, 1: kSameAsRequested.
	ArenaExtendStrategy int `json:"arenaExtendStrategy" yaml:"arenaExtendStrategy"`
	// Whether to do copies in the default stream. The recommended setting
	// is true; false trades race conditions for possible speed.
	DoCopyInDefaultStream bool `json:"doCopyInDefaultStream" yaml:"doCopyInDefaultStream"`
}

// Backend returns the backend of the CUDA provider.
func (p *CUDAProvider) Backend() Backend {
	return CUDABackend
}

// Apply enables CUDA on the session options.
func (p *CUDAProvider) Apply(opts *ort.SessionOptions) error {
	cuda, err := ort.NewCUDAProviderOptions()
	if err != nil {
		return errors.Wrap(err, "creating CUDA provider options")
	}
	defer cuda.Destroy()

	config := map[string]string{
		"device_id":                 fmt.Sprintf("%d", p.options.DeviceID),
		"arena_extend_strategy":     fmt.Sprintf("%d", p.options.ArenaExtendStrategy),
		"do_copy_in_default_stream": fmt.Sprintf("%t", p.options.DoCopyInDefaultStream),
	}
	if p.options.GPUMemLimit > 0 {
		config["gpu_mem_limit"] = fmt.Sprintf("%d", p.options.GPUMemLimit)
	}
	if err = cuda.Update(config); err != nil {
		return errors.Wrap(err, "updating CUDA provider options")
	}

	if err := opts.AppendExecutionProviderCUDA(cuda); err != nil {
		return errors.Wrap(err, "enabling CUDA")
	}
	return nil
}

// NewCUDAProvider creates a new CUDA provider.
func NewCUDAProvider(options CUDAOptions) *CUDAProvider {
	return &CUDAProvider{options: options}
}
