package inference

import (
	"log/slog"
	"os"
	"sync"

	"github.com/chewxy/math32"
	"github.com/pkg/errors"
	ort "github.com/yalue/onnxruntime_go"
	"gorgonia.org/tensor"

	"github.com/nvr-ai/go-textdetect/inference/providers"
)

var ortInit sync.Once

// initRuntime points ONNX Runtime at the native shared library and prepares
// its environment. Required once per process.
func initRuntime() error {
	var err error
	ortInit.Do(func() {
		libPath := providers.SharedLibraryPath()
		if _, statErr := os.Stat(libPath); os.IsNotExist(statErr) {
			err = errors.Wrapf(ErrBackendLoad, "ONNX Runtime library not found at %s", libPath)
			return
		}
		ort.SetSharedLibraryPath(libPath)
		if initErr := ort.InitializeEnvironment(); initErr != nil {
			err = errors.Wrapf(ErrBackendLoad, "initializing ONNX Runtime environment: %v", initErr)
		}
	})
	if err == nil && !ort.IsInitialized() {
		return errors.Wrap(ErrBackendLoad, "ONNX Runtime environment failed to initialize")
	}
	return err
}

// runtimeBackend is the ONNX Runtime implementation of Backend. It owns one
// dynamic session bound to the first accelerator that accepted the model.
type runtimeBackend struct {
	session     *ort.DynamicAdvancedSession
	cfg         ModelConfig
	accelerator providers.Backend
	outputNames []string
}

// NewRuntimeBackend materializes a model graph on the first accelerator in
// the preference list that succeeds, falling through on failure. An empty
// preference list selects the plain CPU provider.
//
// Arguments:
//   - cfg: The model tensor contract, including the artifact path.
//   - accelerators: Ordered accelerator identifiers; resolved here, at
//     load time, never earlier.
//
// Returns:
//   - Backend: The loaded backend.
//   - error: ErrBackendLoad if the artifact is missing or invalid,
//     ErrNoAcceleratorAvailable if every accelerator failed.
func NewRuntimeBackend(cfg ModelConfig, accelerators []string) (Backend, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrapf(ErrBackendLoad, "%v", err)
	}
	if _, err := os.Stat(cfg.Path); err != nil {
		return nil, errors.Wrapf(ErrBackendLoad, "model artifact %s: %v", cfg.Path, err)
	}
	if err := initRuntime(); err != nil {
		return nil, err
	}

	prefs, err := providers.Resolve(accelerators)
	if err != nil {
		return nil, errors.Wrapf(ErrBackendLoad, "%v", err)
	}
	if len(prefs) == 0 {
		prefs = []providers.Provider{providers.NewCPUProvider()}
	}

	outputNames := []string{cfg.ScoreOutput}
	if cfg.MaskOutput != "" {
		outputNames = append(outputNames, cfg.MaskOutput)
	}

	var lastErr error
	for _, provider := range prefs {
		session, sessionErr := newSession(cfg, provider, outputNames)
		if sessionErr != nil {
			slog.Debug("accelerator rejected model, falling through",
				"accelerator", string(provider.Backend()), "error", sessionErr)
			lastErr = sessionErr
			continue
		}
		slog.Debug("backend loaded", "accelerator", string(provider.Backend()), "model", cfg.Path)
		return &runtimeBackend{
			session:     session,
			cfg:         cfg,
			accelerator: provider.Backend(),
			outputNames: outputNames,
		}, nil
	}
	return nil, errors.Wrapf(ErrNoAcceleratorAvailable,
		"all %d accelerators failed, last error: %v", len(prefs), lastErr)
}

// newSession builds one dynamic session with the provider enabled.
func newSession(
	cfg ModelConfig,
	provider providers.Provider,
	outputNames []string,
) (*ort.DynamicAdvancedSession, error) {
	options, err := ort.NewSessionOptions()
	if err != nil {
		return nil, errors.Wrap(err, "creating session options")
	}
	defer options.Destroy()

	// Zero lets the runtime pick thread counts; extended level enables
	// graph fusion and constant folding during load.
	if err := options.SetIntraOpNumThreads(0); err != nil {
		return nil, errors.Wrap(err, "setting intra-op threads")
	}
	if err := options.SetInterOpNumThreads(0); err != nil {
		return nil, errors.Wrap(err, "setting inter-op threads")
	}
	if err := options.SetGraphOptimizationLevel(ort.GraphOptimizationLevelEnableExtended); err != nil {
		return nil, errors.Wrap(err, "setting graph optimization level")
	}

	if err := provider.Apply(options); err != nil {
		return nil, err
	}

	session, err := ort.NewDynamicAdvancedSession(
		cfg.Path,
		[]string{cfg.InputName},
		outputNames,
		options,
	)
	if err != nil {
		return nil, errors.Wrap(err, "creating session")
	}
	return session, nil
}

// Run executes the graph once. The input tensor is copied into runtime
// memory; the caller keeps ownership of it.
func (b *runtimeBackend) Run(input *tensor.Dense) (*Outputs, error) {
	if b.session == nil {
		return nil, errors.Wrap(ErrInference, "backend is closed")
	}

	shape := input.Shape()
	dims := make([]int64, len(shape))
	for i, d := range shape {
		dims[i] = int64(d)
	}
	data, ok := input.Data().([]float32)
	if !ok {
		return nil, errors.Wrap(ErrInference, "input tensor must be float32")
	}

	inputValue, err := ort.NewTensor(ort.NewShape(dims...), data)
	if err != nil {
		return nil, errors.Wrapf(ErrInference, "creating input tensor: %v", err)
	}
	defer inputValue.Destroy()

	// Nil entries let the runtime allocate outputs with the graph's shapes.
	outputValues := make([]ort.Value, len(b.outputNames))
	if err := b.session.Run([]ort.Value{inputValue}, outputValues); err != nil {
		return nil, errors.Wrapf(ErrInference, "%v", err)
	}
	defer func() {
		for _, v := range outputValues {
			if v != nil {
				v.Destroy()
			}
		}
	}()

	score, err := extractDense(outputValues[0])
	if err != nil {
		return nil, err
	}
	if b.cfg.ApplySigmoid {
		applySigmoid(score.Data().([]float32))
	}

	out := &Outputs{Score: score}
	if len(outputValues) > 1 {
		mask, err := extractDense(outputValues[1])
		if err != nil {
			return nil, err
		}
		out.Mask = mask
	}
	return out, nil
}

// extractDense copies a runtime-owned float32 tensor into Go memory.
func extractDense(value ort.Value) (*tensor.Dense, error) {
	t, ok := value.(*ort.Tensor[float32])
	if !ok {
		return nil, errors.Wrapf(ErrInference, "unexpected output tensor type %T", value)
	}
	srcShape := t.GetShape()
	dims := make([]int, len(srcShape))
	n := 1
	for i, d := range srcShape {
		dims[i] = int(d)
		n *= int(d)
	}
	data := make([]float32, n)
	copy(data, t.GetData())
	return tensor.New(tensor.WithShape(dims...), tensor.WithBacking(data)), nil
}

// applySigmoid converts logits to probabilities in place.
func applySigmoid(data []float32) {
	for i, v := range data {
		data[i] = 1.0 / (1.0 + math32.Exp(-v))
	}
}

// Close releases the compiled graph. Safe to call more than once.
func (b *runtimeBackend) Close() error {
	if b.session == nil {
		return nil
	}
	err := b.session.Destroy()
	b.session = nil
	if err != nil {
		return errors.Wrap(err, "destroying session")
	}
	return nil
}
