package detector

import (
	"log/slog"
	"sync"

	"github.com/pkg/errors"

	"github.com/nvr-ai/go-textdetect/images"
	"github.com/nvr-ai/go-textdetect/inference"
)

// State is the lifecycle position of a Detector.
type State int32

const (
	// Unloaded means no backend resources are held.
	Unloaded State = iota
	// Loading means a backend is being constructed; detect is rejected.
	Loading
	// Ready means the backend is loaded and detect may run.
	Ready
)

func (s State) String() string {
	switch s {
	case Unloaded:
		return "unloaded"
	case Loading:
		return "loading"
	case Ready:
		return "ready"
	default:
		return "unknown"
	}
}

// Config assembles everything a Detector needs before Load.
type Config struct {
	// Model is the tensor contract and artifact path of the detection model.
	Model inference.ModelConfig
	// Accelerators is the ordered accelerator preference. Identifiers are
	// resolved at Load time; an empty list means CPU only.
	Accelerators []string
	// NewBackend constructs the inference backend. Nil selects the ONNX
	// Runtime implementation.
	NewBackend inference.Factory
}

// Detector owns one inference backend and its lifecycle. All methods are
// safe for concurrent use; detect calls on the same Detector serialize on
// an internal mutex because the backend is not reentrant.
type Detector struct {
	mu      sync.Mutex
	state   State
	backend inference.Backend
	cfg     Config
}

// New returns an Unloaded detector. No I/O happens here; the model artifact
// and accelerators are only touched by Load.
func New(cfg Config) *Detector {
	if cfg.NewBackend == nil {
		cfg.NewBackend = inference.NewRuntimeBackend
	}
	return &Detector{state: Unloaded, cfg: cfg}
}

// State reports the current lifecycle state.
func (d *Detector) State() State {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.state
}

// Loaded reports whether the detector is Ready.
func (d *Detector) Loaded() bool {
	return d.State() == Ready
}

// Load constructs the backend on the first available accelerator from the
// configured preference list. Calling Load on a detector that is not
// Unloaded returns ErrInvalidState. A failed Load always leaves the
// detector Unloaded so it can be retried.
func (d *Detector) Load() error {
	d.mu.Lock()
	if d.state != Unloaded {
		state := d.state
		d.mu.Unlock()
		return errors.Wrapf(ErrInvalidState, "cannot load from state %s", state)
	}
	d.state = Loading
	d.mu.Unlock()

	backend, err := d.cfg.NewBackend(d.cfg.Model, d.cfg.Accelerators)

	d.mu.Lock()
	defer d.mu.Unlock()
	if err != nil {
		d.state = Unloaded
		return err
	}
	d.backend = backend
	d.state = Ready
	slog.Debug("detector loaded", "model", d.cfg.Model.Path)
	return nil
}

// Unload releases the backend. Unloading an Unloaded detector is a no-op.
// Unloading during Load returns ErrInvalidState.
func (d *Detector) Unload() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	switch d.state {
	case Unloaded:
		return nil
	case Loading:
		return errors.Wrap(ErrInvalidState, "cannot unload while loading")
	}

	err := d.backend.Close()
	d.backend = nil
	d.state = Unloaded
	if err != nil {
		return err
	}
	slog.Debug("detector unloaded", "model", d.cfg.Model.Path)
	return nil
}

// Detect runs the full pipeline on one image: preprocess, inference, and
// decode. The input image is never mutated; the result is produced fresh
// per call. Valid only when Ready, otherwise ErrNotLoaded.
func (d *Detector) Detect(
	img *images.ImageBuffer,
	pre PreprocessOptions,
	decode DecodeOptions,
) (*Result, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.state != Ready {
		return nil, errors.Wrapf(ErrNotLoaded, "detector is %s", d.state)
	}
	if img == nil {
		return nil, errors.New("image cannot be nil")
	}
	if err := decode.Validate(); err != nil {
		return nil, err
	}

	result, err := d.runPass(img, pre, pre.Rotate, decode)
	if err != nil {
		return nil, err
	}

	if pre.AutoRotate && !pre.Rotate && mostlyVertical(result.Regions) {
		slog.Debug("auto-rotate rerun", "regions", len(result.Regions))
		rotated, err := d.runPass(img, pre, true, decode)
		if err != nil {
			return nil, err
		}
		result = rotated
	}
	return result, nil
}

// runPass executes one preprocess/inference/decode cycle. Callers hold the
// detector mutex.
func (d *Detector) runPass(
	img *images.ImageBuffer,
	pre PreprocessOptions,
	rotate bool,
	decode DecodeOptions,
) (*Result, error) {
	input, transform, err := preprocess(img, pre, rotate, decode, d.cfg.Model)
	if err != nil {
		return nil, err
	}

	outputs, err := d.backend.Run(input)
	if err != nil {
		return nil, err
	}

	regions, err := decodeRegions(outputs.Score, decode, transform)
	if err != nil {
		return nil, err
	}
	mask, err := extractMask(outputs, transform)
	if err != nil {
		return nil, err
	}

	if rotate {
		unrotateRegions(regions, img.Height())
		mask = mask.rotateCCW()
		transform = images.Transform{
			Scale:          transform.Scale,
			WorkingWidth:   mask.Width,
			WorkingHeight:  mask.Height,
			OriginalWidth:  img.Width(),
			OriginalHeight: img.Height(),
		}
		sortRegions(regions)
	}

	return &Result{Regions: regions, Mask: mask, Transform: transform}, nil
}

// unrotateRegions maps polygons detected on a clockwise-rotated image back
// into the unrotated frame. A rotated point (xr, yr) came from original
// (yr, h-1-xr), h being the unrotated image height.
func unrotateRegions(regions []Region, height int) {
	h := float64(height)
	for ri := range regions {
		for pi := range regions[ri].Polygon {
			p := regions[ri].Polygon[pi]
			regions[ri].Polygon[pi] = Point{X: p.Y, Y: h - 1 - p.X}
		}
	}
}

// mostlyVertical reports whether more than half of the regions are taller
// than they are wide, the heuristic that triggers an auto-rotate rerun.
func mostlyVertical(regions []Region) bool {
	if len(regions) == 0 {
		return false
	}
	tall := 0
	for _, r := range regions {
		minX, minY, maxX, maxY := r.BoundingBox()
		if maxY-minY > maxX-minX {
			tall++
		}
	}
	return tall*2 > len(regions)
}
