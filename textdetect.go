// Package textdetect locates text regions in images with a DB-style
// segmentation model served by ONNX Runtime.
//
// A Session captures an accelerator preference once and hands out
// independent Detectors. Each Detector owns its backend resources and
// walks an explicit Unloaded -> Loading -> Ready lifecycle:
//
//	session := textdetect.NewSession(textdetect.SessionConfig{
//		Accelerators: []string{"cuda", "directml"},
//	})
//	det := session.DefaultDetector()
//	if err := det.Load(); err != nil { ... }
//	defer det.Unload()
//	result, err := det.Detect(img, detector.PreprocessOptions{}, detector.DefaultDecodeOptions())
package textdetect

import (
	"github.com/nvr-ai/go-textdetect/detector"
	"github.com/nvr-ai/go-textdetect/inference"
)

// DefaultModelPath is where DefaultDetector expects the stock detection
// model artifact relative to the working directory.
const DefaultModelPath = "models/detect.onnx"

// SessionConfig configures a Session. The zero value selects the stock
// model on CPU.
type SessionConfig struct {
	// Accelerators is the ordered accelerator preference applied to every
	// detector the session creates. Identifiers are resolved when a
	// detector loads, never earlier; an empty list means CPU only.
	Accelerators []string
	// ModelPath overrides DefaultModelPath for DefaultDetector.
	ModelPath string
	// NewBackend overrides the backend constructor, used by tests.
	NewBackend inference.Factory
}

// Session is a factory for Detectors sharing one accelerator preference.
// Construction performs no I/O and never fails; all fallible work happens
// when a detector loads. Detectors from the same session are fully
// independent and may be used concurrently.
type Session struct {
	cfg SessionConfig
}

// NewSession creates a session from the given configuration.
func NewSession(cfg SessionConfig) *Session {
	return &Session{cfg: cfg}
}

// DefaultDetector returns an Unloaded detector bound to the stock detection
// model contract. The model file is not touched until Load.
func (s *Session) DefaultDetector() *detector.Detector {
	path := s.cfg.ModelPath
	if path == "" {
		path = DefaultModelPath
	}
	return s.Detector(inference.DefaultModelConfig(path))
}

// Detector returns an Unloaded detector for an arbitrary model contract,
// using the session's accelerator preference.
func (s *Session) Detector(model inference.ModelConfig) *detector.Detector {
	return detector.New(detector.Config{
		Model:        model,
		Accelerators: s.cfg.Accelerators,
		NewBackend:   s.cfg.NewBackend,
	})
}
