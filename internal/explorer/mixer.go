package explorer

import (
	"context"
	"sync"

	"github.com/ykhadiri/alkimiya/internal/genai"
)

// Mixer runs combination experiments over the lab selection. Only one mix
// may be in flight at a time; the last result is kept until the next mix
// or an explicit Reset.
type Mixer struct {
	gen       genai.Generator
	selection *Selection

	mu       sync.Mutex
	inFlight bool
	result   *genai.Compound
}

func NewMixer(gen genai.Generator, selection *Selection) *Mixer {
	return &Mixer{gen: gen, selection: selection}
}

// Mix asks the gateway what the staged elements form together. The lab
// must hold between 2 and MaxLabElements elements; anything else fails
// locally without contacting the gateway. A "no reaction" verdict from
// the model is a successful result, not an error.
func (m *Mixer) Mix(ctx context.Context) (*genai.Compound, error) {
	lab := m.selection.Lab()
	if len(lab) < 2 || len(lab) > MaxLabElements {
		return nil, ErrInvalidSelection
	}

	m.mu.Lock()
	if m.inFlight {
		m.mu.Unlock()
		return nil, ErrMixInFlight
	}
	m.inFlight = true
	m.mu.Unlock()
	defer func() {
		m.mu.Lock()
		m.inFlight = false
		m.mu.Unlock()
	}()

	compound, err := m.gen.Combine(ctx, lab)
	if err != nil {
		return nil, err
	}
	m.mu.Lock()
	m.result = compound
	m.mu.Unlock()
	return compound, nil
}

// Result returns the outcome of the last completed mix, if any.
func (m *Mixer) Result() (*genai.Compound, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.result == nil {
		return nil, false
	}
	return m.result, true
}

// InFlight reports whether a mix is currently running.
func (m *Mixer) InFlight() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.inFlight
}

// Reset discards the last result and empties the lab selection.
func (m *Mixer) Reset() {
	m.mu.Lock()
	m.result = nil
	m.mu.Unlock()
	m.selection.ClearLab()
}
