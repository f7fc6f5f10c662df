package genai

import (
	"context"
	"time"

	"github.com/ykhadiri/alkimiya/internal/elements"
)

// Op identifies the kind of gateway call, for usage accounting.
type Op string

const (
	OpDetails Op = "details"
	OpSpeech  Op = "speech"
	OpMix     Op = "mix"
)

// Usage describes a single upstream call. Token counts are zero when the
// provider does not report them (speech calls report characters instead).
type Usage struct {
	Provider     string
	Model        string
	Op           Op
	InputTokens  int
	OutputTokens int
	Characters   int
	Duration     time.Duration
	Failed       bool
}

// UsageFunc receives a Usage record after every upstream call.
type UsageFunc func(Usage)

// Generator is the boundary to the remote content/audio generation service.
// Calls are one-shot: a failure surfaces immediately to the caller with no
// automatic retry, since every call is a user-triggered interactive action.
type Generator interface {
	// ElementDetails requests localized description, applications and fun
	// fact for the element. A payload missing any required field is an
	// *UpstreamError.
	ElementDetails(ctx context.Context, el elements.Element) (*ElementDetails, error)

	// Speech synthesizes the text in the given language and returns raw
	// single-channel 16-bit PCM at 24 kHz.
	Speech(ctx context.Context, text string, lang elements.Lang) ([]byte, error)

	// Combine resolves 2..5 elements to a best-guess compound, or to a
	// well-formed "no reaction" result. Only transport/parse problems are
	// errors; a no-reaction outcome is a Compound with Success false.
	Combine(ctx context.Context, els []elements.Element) (*Compound, error)

	// Name returns the provider name.
	Name() string
}
