package textdetect

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorgonia.org/tensor"

	"github.com/nvr-ai/go-textdetect/detector"
	"github.com/nvr-ai/go-textdetect/images"
	"github.com/nvr-ai/go-textdetect/inference"
)

type stubBackend struct{}

func (stubBackend) Run(input *tensor.Dense) (*inference.Outputs, error) {
	shape := input.Shape()
	h, w := shape[2], shape[3]
	return &inference.Outputs{
		Score: tensor.New(tensor.WithShape(1, 1, h, w), tensor.WithBacking(make([]float32, h*w))),
	}, nil
}

func (stubBackend) Close() error { return nil }

func stubFactory(cfg inference.ModelConfig, accelerators []string) (inference.Backend, error) {
	return stubBackend{}, nil
}

func TestNewSession_NoIO(t *testing.T) {
	// Construction must never touch the model path, even a nonsense one.
	session := NewSession(SessionConfig{ModelPath: "/definitely/not/there.onnx"})
	require.NotNil(t, session)

	det := session.DefaultDetector()
	require.NotNil(t, det)
	assert.Equal(t, detector.Unloaded, det.State())
}

func TestSession_DefaultDetectorEndToEnd(t *testing.T) {
	session := NewSession(SessionConfig{NewBackend: stubFactory})
	det := session.DefaultDetector()
	require.NoError(t, det.Load())
	defer func() { require.NoError(t, det.Unload()) }()

	pixels := make([]uint8, 32*32*images.Channels)
	img, err := images.NewImageBuffer(32, 32, pixels)
	require.NoError(t, err)

	decode := detector.DefaultDecodeOptions()
	decode.MaxSideLen = 32
	result, err := det.Detect(img, detector.PreprocessOptions{}, decode)
	require.NoError(t, err)
	assert.Empty(t, result.Regions)
	assert.NotNil(t, result.Mask)
}

func TestSession_IndependentDetectors(t *testing.T) {
	session := NewSession(SessionConfig{NewBackend: stubFactory})
	first := session.DefaultDetector()
	second := session.DefaultDetector()

	require.NoError(t, first.Load())
	assert.Equal(t, detector.Unloaded, second.State(),
		"detectors from one session share no state")
	require.NoError(t, first.Unload())
}

func TestSession_CustomModelContract(t *testing.T) {
	session := NewSession(SessionConfig{NewBackend: stubFactory})
	det := session.Detector(inference.ModelConfig{
		Path:        "custom.onnx",
		InputName:   "images",
		ScoreOutput: "prob",
		Mean:        0,
		Scale:       255,
		PadMultiple: 64,
	})
	require.NoError(t, det.Load())
	require.NoError(t, det.Unload())
}
