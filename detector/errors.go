package detector

import "github.com/pkg/errors"

var (
	// ErrNotLoaded reports a detect call on a detector that is not Ready.
	ErrNotLoaded = errors.New("detector is not loaded")

	// ErrInvalidState reports a lifecycle transition that is not legal from
	// the current state, such as loading an already loaded detector.
	ErrInvalidState = errors.New("invalid detector state transition")
)
