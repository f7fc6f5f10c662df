package explorer

import (
	"sync"

	"github.com/ykhadiri/alkimiya/internal/elements"
	"github.com/ykhadiri/alkimiya/internal/genai"
)

// Section names a narratable piece of element content.
type Section string

const (
	SectionName        Section = "name"
	SectionDescription Section = "description"
	SectionFunFact     Section = "funFact"
)

// Valid reports whether s is a known section.
func (s Section) Valid() bool {
	switch s {
	case SectionName, SectionDescription, SectionFunFact:
		return true
	}
	return false
}

type audioKey struct {
	section Section
	lang    elements.Lang
}

// Cache holds generated content for at most one element at a time. It is
// bound to an atomic number, and every setter carries the number the
// content was generated for: writes that arrive after the binding changed
// are silently dropped, so a slow gateway response can never attach stale
// content to a newly opened element.
type Cache struct {
	mu      sync.Mutex
	number  int
	details *genai.ElementDetails
	audio   map[audioKey][]byte
}

func NewCache() *Cache {
	return &Cache{audio: make(map[audioKey][]byte)}
}

// Bind points the cache at a new element, discarding everything held for
// the previous one. Re-binding to the currently bound number keeps the
// cached content.
func (c *Cache) Bind(number int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.number == number {
		return
	}
	c.number = number
	c.details = nil
	c.audio = make(map[audioKey][]byte)
}

// Clear unbinds the cache and discards all content.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.number = 0
	c.details = nil
	c.audio = make(map[audioKey][]byte)
}

// Details returns the cached details if the cache is still bound to number.
func (c *Cache) Details(number int) (*genai.ElementDetails, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.number != number || c.details == nil {
		return nil, false
	}
	return c.details, true
}

// SetDetails stores details generated for number. It reports false and
// stores nothing when the cache has since been bound to a different element.
func (c *Cache) SetDetails(number int, d *genai.ElementDetails) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.number != number {
		return false
	}
	c.details = d
	return true
}

// Audio returns the cached PCM for a section and language if the cache is
// still bound to number.
func (c *Cache) Audio(number int, section Section, lang elements.Lang) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.number != number {
		return nil, false
	}
	pcm, ok := c.audio[audioKey{section, lang}]
	return pcm, ok
}

// SetAudio stores PCM generated for number. Stale writes are dropped.
func (c *Cache) SetAudio(number int, section Section, lang elements.Lang, pcm []byte) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.number != number {
		return false
	}
	c.audio[audioKey{section, lang}] = pcm
	return true
}
