package explorer

import (
	"sync"

	"github.com/ykhadiri/alkimiya/internal/elements"
)

// MaxLabElements is the most elements the mixing lab will hold. Toggling
// a new element in when the lab is full is a silent no-op.
const MaxLabElements = 5

// Selection tracks the two independent selection surfaces of the explorer:
// the single element open for detail viewing, and the ordered set staged
// in the mixing lab. All methods are safe for concurrent use.
type Selection struct {
	mu      sync.Mutex
	viewing *elements.Element
	lab     []elements.Element
}

func NewSelection() *Selection {
	return &Selection{}
}

// SelectForViewing replaces the element open for detail viewing.
func (s *Selection) SelectForViewing(el elements.Element) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.viewing = &el
}

// Viewing reports the element currently open for viewing, if any.
func (s *Selection) Viewing() (elements.Element, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.viewing == nil {
		return elements.Element{}, false
	}
	return *s.viewing, true
}

// CloseViewing clears the viewed element.
func (s *Selection) CloseViewing() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.viewing = nil
}

// ToggleInLab adds the element to the lab set, or removes it if already
// present. Adding past MaxLabElements does nothing. Insertion order is
// preserved and drives the order elements are presented to the mixer.
func (s *Selection) ToggleInLab(el elements.Element) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, cur := range s.lab {
		if cur.Number == el.Number {
			s.lab = append(s.lab[:i], s.lab[i+1:]...)
			return
		}
	}
	if len(s.lab) >= MaxLabElements {
		return
	}
	s.lab = append(s.lab, el)
}

// Lab returns a copy of the staged elements in insertion order.
func (s *Selection) Lab() []elements.Element {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]elements.Element, len(s.lab))
	copy(out, s.lab)
	return out
}

// InLab reports whether the element with the given atomic number is staged.
func (s *Selection) InLab(number int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, cur := range s.lab {
		if cur.Number == number {
			return true
		}
	}
	return false
}

// ClearLab empties the lab set.
func (s *Selection) ClearLab() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lab = nil
}
