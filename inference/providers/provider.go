// Package providers - Execution provider selection for the inference backend.
//
// Accelerator preference is expressed as an ordered list of identifiers
// (e.g. "tensorrt", "cuda", "cpu"). Identifiers resolve to Provider variants
// at load time; an empty list means CPU-only. Each variant knows how to
// enable itself on an ONNX Runtime session, so new accelerators are added as
// new files in this package without touching detector logic.
package providers

import (
	"os"
	"runtime"
	"strings"

	"github.com/pkg/errors"
	ort "github.com/yalue/onnxruntime_go"
)

// Backend identifies an execution provider variant.
type Backend string

const (
	// CPUBackend runs inference on the default CPU provider.
	CPUBackend Backend = "cpu"
	// CUDABackend uses NVIDIA CUDA for GPU acceleration.
	CUDABackend Backend = "cuda"
	// TensorRTBackend uses NVIDIA TensorRT for optimized GPU inference.
	TensorRTBackend Backend = "tensorrt"
	// DirectMLBackend uses DirectML on Windows.
	DirectMLBackend Backend = "directml"
	// CoreMLBackend uses Apple CoreML on macOS.
	CoreMLBackend Backend = "coreml"
	// OpenVINOBackend uses Intel OpenVINO.
	OpenVINOBackend Backend = "openvino"
	// DNNLBackend uses Intel oneDNN for CPU optimization.
	DNNLBackend Backend = "dnnl"
)

// Provider represents the contract that all execution providers implement.
type Provider interface {
	// Backend returns the variant identifier.
	Backend() Backend
	// Apply enables this provider on the given session options.
	Apply(opts *ort.SessionOptions) error
}

// Resolve maps accelerator identifiers to Provider variants with default
// options, preserving order. Identifiers are case-insensitive. An unknown
// identifier is an error; resolution happens at load time, never earlier.
func Resolve(names []string) ([]Provider, error) {
	out := make([]Provider, 0, len(names))
	for _, name := range names {
		switch Backend(strings.ToLower(strings.TrimSpace(name))) {
		case CPUBackend:
			out = append(out, NewCPUProvider())
		case CUDABackend:
			out = append(out, NewCUDAProvider(CUDAOptions{}))
		case TensorRTBackend:
			out = append(out, NewTensorRTProvider(TensorRTOptions{}))
		case DirectMLBackend:
			out = append(out, NewDirectMLProvider(DirectMLOptions{}))
		case CoreMLBackend:
			out = append(out, NewCoreMLProvider(CoreMLOptions{}))
		case OpenVINOBackend:
			out = append(out, NewOpenVINOProvider(OpenVINOOptions{}))
		case DNNLBackend:
			out = append(out, NewDNNLProvider(DNNLOptions{}))
		default:
			return nil, errors.Errorf("unknown execution provider %q", name)
		}
	}
	return out, nil
}

// SharedLibraryPath returns the path to the ONNX Runtime shared library.
// The TEXTDETECT_ORT_LIB environment variable takes precedence; otherwise a
// platform default under third_party/ is used.
func SharedLibraryPath() string {
	if p := os.Getenv("TEXTDETECT_ORT_LIB"); p != "" {
		return p
	}
	switch runtime.GOOS {
	case "windows":
		return "third_party/onnxruntime.dll"
	case "darwin":
		return "third_party/libonnxruntime.dylib"
	default:
		if runtime.GOARCH == "arm64" {
			return "third_party/onnxruntime_arm64.so"
		}
		return "third_party/onnxruntime.so"
	}
}
