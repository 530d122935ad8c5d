package inference

import "github.com/pkg/errors"

// Error kinds surfaced by the backend. Callers match them with errors.Is;
// none are retried internally.
var (
	// ErrBackendLoad reports a missing or corrupt model artifact, or a
	// session that could not be created.
	ErrBackendLoad = errors.New("backend load failed")

	// ErrNoAcceleratorAvailable reports that every accelerator in the
	// preference list failed to initialize.
	ErrNoAcceleratorAvailable = errors.New("no accelerator available")

	// ErrInference reports a runtime shape or device fault during Run.
	ErrInference = errors.New("inference failed")
)
