package audio

import (
	"fmt"
	"sync"
	"time"
)

// Category distinguishes the two independent playback slots: short name
// pronunciations and full immersive-reader narrations.
type Category string

const (
	CategoryName   Category = "name"
	CategoryReader Category = "reader"
)

// Valid reports whether c is a known category.
func (c Category) Valid() bool {
	return c == CategoryName || c == CategoryReader
}

// State is the playback state of one category.
type State string

const (
	StateIdle    State = "idle"
	StatePlaying State = "playing"
	StatePaused  State = "paused"
)

// Event is emitted on every state transition. Ended marks a natural end
// (buffer exhausted), as opposed to an explicit stop; UI overlays such as
// the immersive reader dismiss themselves on {reader, idle, ended}.
type Event struct {
	Category Category `json:"category"`
	State    State    `json:"state"`
	Ended    bool     `json:"ended,omitempty"`
}

// PlaybackError reports a decode or start failure. The category is left (or
// returned to) idle; no half-initialized session remains.
type PlaybackError struct {
	Category Category
	Err      error
}

func (e *PlaybackError) Error() string {
	return fmt.Sprintf("playback %s: %v", e.Category, e.Err)
}

func (e *PlaybackError) Unwrap() error { return e.Err }

// playback is one live session: the sink and its lifecycle flags. Exactly
// one may exist per category.
type playback struct {
	sink     Sink
	state    State
	released bool
	stop     chan struct{}
}

// Controller owns the at-most-two live playback sessions. Every exit path
// (natural end, manual stop, element change, teardown) funnels through the
// same release step, which is idempotent.
type Controller struct {
	mu       sync.Mutex
	newSink  SinkFactory
	poll     time.Duration
	sessions map[Category]*playback
	subs     map[int]chan Event
	nextSub  int
}

// NewController creates a controller that plays buffers through sinks from
// the given factory.
func NewController(factory SinkFactory) *Controller {
	return &Controller{
		newSink:  factory,
		poll:     50 * time.Millisecond,
		sessions: make(map[Category]*playback),
		subs:     make(map[int]chan Event),
	}
}

// Play starts playback of the PCM buffer in the given category. A session
// already live in that category is stopped and released first; the other
// category is unaffected.
func (c *Controller) Play(cat Category, pcm []byte) error {
	if err := Validate(pcm); err != nil {
		return &PlaybackError{Category: cat, Err: err}
	}

	c.mu.Lock()
	if prev, ok := c.sessions[cat]; ok {
		c.releaseLocked(prev)
		delete(c.sessions, cat)
	}

	sink, err := c.newSink(pcm)
	if err != nil {
		c.mu.Unlock()
		return &PlaybackError{Category: cat, Err: err}
	}

	p := &playback{sink: sink, state: StatePlaying, stop: make(chan struct{})}
	c.sessions[cat] = p
	sink.Play()
	c.mu.Unlock()

	c.publish(Event{Category: cat, State: StatePlaying})
	go c.watch(cat, p)
	return nil
}

// TogglePause flips Playing and Paused; it is a no-op when the category is
// idle.
func (c *Controller) TogglePause(cat Category) {
	c.mu.Lock()
	p, ok := c.sessions[cat]
	if !ok {
		c.mu.Unlock()
		return
	}

	var ev Event
	switch p.state {
	case StatePlaying:
		p.sink.Pause()
		p.state = StatePaused
		ev = Event{Category: cat, State: StatePaused}
	case StatePaused:
		p.sink.Play()
		p.state = StatePlaying
		ev = Event{Category: cat, State: StatePlaying}
	default:
		c.mu.Unlock()
		return
	}
	c.mu.Unlock()
	c.publish(ev)
}

// Stop transitions the category to idle, releasing the underlying resource.
// It is idempotent: stopping an idle category does nothing, and the release
// runs safely even if playback already ended naturally.
func (c *Controller) Stop(cat Category) {
	c.mu.Lock()
	p, ok := c.sessions[cat]
	if !ok {
		c.mu.Unlock()
		return
	}
	c.releaseLocked(p)
	delete(c.sessions, cat)
	c.mu.Unlock()

	c.publish(Event{Category: cat, State: StateIdle})
}

// StopAll stops both categories. Called on element change and teardown.
func (c *Controller) StopAll() {
	c.Stop(CategoryName)
	c.Stop(CategoryReader)
}

// State returns the current state of the category.
func (c *Controller) State(cat Category) State {
	c.mu.Lock()
	defer c.mu.Unlock()
	if p, ok := c.sessions[cat]; ok {
		return p.state
	}
	return StateIdle
}

// Subscribe returns a channel of state-transition events and a cancel
// function. Slow subscribers drop events rather than blocking playback.
func (c *Controller) Subscribe() (<-chan Event, func()) {
	c.mu.Lock()
	id := c.nextSub
	c.nextSub++
	ch := make(chan Event, 16)
	c.subs[id] = ch
	c.mu.Unlock()

	cancel := func() {
		c.mu.Lock()
		if sub, ok := c.subs[id]; ok {
			delete(c.subs, id)
			close(sub)
		}
		c.mu.Unlock()
	}
	return ch, cancel
}

func (c *Controller) publish(ev Event) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, ch := range c.subs {
		select {
		case ch <- ev:
		default:
		}
	}
}

// releaseLocked stops the watcher and closes the sink exactly once.
// Callers hold c.mu.
func (c *Controller) releaseLocked(p *playback) {
	if p.released {
		return
	}
	p.released = true
	close(p.stop)
	_ = p.sink.Close()
}

// watch polls the sink until the buffer is exhausted, then transitions the
// category to idle and announces the natural end.
func (c *Controller) watch(cat Category, p *playback) {
	ticker := time.NewTicker(c.poll)
	defer ticker.Stop()

	for {
		select {
		case <-p.stop:
			return
		case <-ticker.C:
			c.mu.Lock()
			if c.sessions[cat] != p {
				c.mu.Unlock()
				return
			}
			// A paused sink also reports not-playing; only a playing
			// session that went quiet has finished.
			if p.state == StatePlaying && !p.sink.IsPlaying() {
				c.releaseLocked(p)
				delete(c.sessions, cat)
				c.mu.Unlock()
				c.publish(Event{Category: cat, State: StateIdle, Ended: true})
				return
			}
			c.mu.Unlock()
		}
	}
}
