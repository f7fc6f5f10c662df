package explorer

import "errors"

var (
	// ErrUnknownElement indicates an atomic number or symbol outside the
	// dataset.
	ErrUnknownElement = errors.New("unknown element")

	// ErrNoElementOpen indicates a detail operation with nothing selected
	// for viewing.
	ErrNoElementOpen = errors.New("no element is open for viewing")

	// ErrStaleElement indicates a gateway result that resolved after the
	// viewed element changed; the result is discarded.
	ErrStaleElement = errors.New("viewed element changed while the request was in flight")

	// ErrNoDetails indicates a narration request for a section whose text
	// has not been generated yet.
	ErrNoDetails = errors.New("details have not been generated yet")

	// ErrAudioUnavailable indicates a playback request for an audio slot
	// that was never populated (a tolerated earlier synthesis failure).
	ErrAudioUnavailable = errors.New("audio is not available for this slot")

	// ErrInvalidSelection indicates a mix attempted outside the 2..5
	// element range. It is a local precondition failure; the gateway is
	// never contacted.
	ErrInvalidSelection = errors.New("selection must contain between 2 and 5 elements")

	// ErrMixInFlight indicates a mix attempted while another is running.
	ErrMixInFlight = errors.New("a mix is already in progress")
)
