package explorer

import (
	"context"
	"fmt"
	"sync"

	"github.com/ykhadiri/alkimiya/internal/audio"
	"github.com/ykhadiri/alkimiya/internal/elements"
	"github.com/ykhadiri/alkimiya/internal/genai"
)

// Session orchestrates a single explorer session: which element is open,
// what content has been generated for it, and what is playing. Opening or
// closing an element stops all playback and resets the content cache, so
// nothing from a previous element can leak into the next.
type Session struct {
	catalog   *elements.Catalog
	gen       genai.Generator
	selection *Selection
	cache     *Cache
	player    *audio.Controller
}

func NewSession(catalog *elements.Catalog, gen genai.Generator, player *audio.Controller) *Session {
	return &Session{
		catalog:   catalog,
		gen:       gen,
		selection: NewSelection(),
		cache:     NewCache(),
		player:    player,
	}
}

// Selection exposes the underlying selection state, shared with the mixer.
func (s *Session) Selection() *Selection {
	return s.selection
}

// Snapshot is the client-facing view of the session state.
type Snapshot struct {
	Viewing    *elements.Element  `json:"viewing,omitempty"`
	Lab        []elements.Element `json:"lab"`
	HasDetails bool               `json:"hasDetails"`
}

// Snapshot reports the current session state.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{Lab: s.selection.Lab()}
	if el, ok := s.selection.Viewing(); ok {
		snap.Viewing = &el
		_, snap.HasDetails = s.cache.Details(el.Number)
	}
	return snap
}

// Open selects the element with the given atomic number for viewing. Any
// playback is stopped and content cached for a previously viewed element
// is discarded.
func (s *Session) Open(number int) (elements.Element, error) {
	el, ok := s.catalog.ByNumber(number)
	if !ok {
		return elements.Element{}, fmt.Errorf("element %d: %w", number, ErrUnknownElement)
	}
	s.player.StopAll()
	s.cache.Bind(el.Number)
	s.selection.SelectForViewing(el)
	return el, nil
}

// Close dismisses the viewed element, stopping playback and discarding
// its generated content.
func (s *Session) Close() {
	s.player.StopAll()
	s.cache.Clear()
	s.selection.CloseViewing()
}

// ToggleLab stages the element for mixing, or unstages it if already
// staged. Staging past the lab capacity is a no-op.
func (s *Session) ToggleLab(number int) error {
	el, ok := s.catalog.ByNumber(number)
	if !ok {
		return fmt.Errorf("element %d: %w", number, ErrUnknownElement)
	}
	s.selection.ToggleInLab(el)
	return nil
}

// GenerateDetails fetches the full content bundle for the viewed element:
// the structured details plus pronunciation audio for the element name in
// both languages, all requested concurrently. A details failure fails the
// whole call; a pronunciation failure only leaves that audio slot empty.
// The call waits for every in-flight request to settle before returning,
// and discards all results if the viewed element changed in the meantime.
func (s *Session) GenerateDetails(ctx context.Context) (*genai.ElementDetails, error) {
	el, ok := s.selection.Viewing()
	if !ok {
		return nil, ErrNoElementOpen
	}
	if d, ok := s.cache.Details(el.Number); ok {
		return d, nil
	}

	var (
		wg         sync.WaitGroup
		details    *genai.ElementDetails
		detailsErr error
		namePCM    = map[elements.Lang][]byte{}
		nameMu     sync.Mutex
	)
	wg.Add(1)
	go func() {
		defer wg.Done()
		details, detailsErr = s.gen.ElementDetails(ctx, el)
	}()
	for _, lang := range []elements.Lang{elements.LangFr, elements.LangAr} {
		wg.Add(1)
		go func(lang elements.Lang) {
			defer wg.Done()
			pcm, err := s.gen.Speech(ctx, el.Name(lang), lang)
			if err != nil {
				return
			}
			nameMu.Lock()
			namePCM[lang] = pcm
			nameMu.Unlock()
		}(lang)
	}
	wg.Wait()

	if detailsErr != nil {
		return nil, detailsErr
	}
	if cur, ok := s.selection.Viewing(); !ok || cur.Number != el.Number {
		return nil, ErrStaleElement
	}
	s.cache.SetDetails(el.Number, details)
	for lang, pcm := range namePCM {
		s.cache.SetAudio(el.Number, SectionName, lang, pcm)
	}
	return details, nil
}

// CachedDetails returns the generated details for the viewed element if
// they are already cached, without contacting the gateway.
func (s *Session) CachedDetails() (*genai.ElementDetails, bool) {
	el, ok := s.selection.Viewing()
	if !ok {
		return nil, false
	}
	return s.cache.Details(el.Number)
}

// NameAudio returns the cached pronunciation audio for the viewed element.
func (s *Session) NameAudio(lang elements.Lang) ([]byte, error) {
	el, ok := s.selection.Viewing()
	if !ok {
		return nil, ErrNoElementOpen
	}
	pcm, ok := s.cache.Audio(el.Number, SectionName, lang)
	if !ok {
		return nil, ErrAudioUnavailable
	}
	return pcm, nil
}

// PlayName plays the cached pronunciation audio on the name channel,
// replacing whatever was playing there.
func (s *Session) PlayName(lang elements.Lang) error {
	pcm, err := s.NameAudio(lang)
	if err != nil {
		return err
	}
	return s.player.Play(audio.CategoryName, pcm)
}

// SectionAudio returns narration audio for a section of the viewed
// element, synthesizing and caching it on first use. Description and fun
// fact sections require GenerateDetails to have completed.
func (s *Session) SectionAudio(ctx context.Context, section Section, lang elements.Lang) ([]byte, error) {
	el, ok := s.selection.Viewing()
	if !ok {
		return nil, ErrNoElementOpen
	}
	if pcm, ok := s.cache.Audio(el.Number, section, lang); ok {
		return pcm, nil
	}
	text, err := s.sectionText(el, section, lang)
	if err != nil {
		return nil, err
	}
	pcm, err := s.gen.Speech(ctx, text, lang)
	if err != nil {
		return nil, err
	}
	if cur, ok := s.selection.Viewing(); !ok || cur.Number != el.Number {
		return nil, ErrStaleElement
	}
	s.cache.SetAudio(el.Number, section, lang, pcm)
	return pcm, nil
}

// Narrate plays a section of the viewed element on the reader channel,
// fetching the audio first if it is not cached.
func (s *Session) Narrate(ctx context.Context, section Section, lang elements.Lang) error {
	pcm, err := s.SectionAudio(ctx, section, lang)
	if err != nil {
		return err
	}
	return s.player.Play(audio.CategoryReader, pcm)
}

func (s *Session) sectionText(el elements.Element, section Section, lang elements.Lang) (string, error) {
	if section == SectionName {
		return el.Name(lang), nil
	}
	details, ok := s.cache.Details(el.Number)
	if !ok {
		return "", ErrNoDetails
	}
	switch section {
	case SectionDescription:
		if lang == elements.LangAr {
			return details.DescriptionAr, nil
		}
		return details.DescriptionFr, nil
	case SectionFunFact:
		if lang == elements.LangAr {
			return details.FunFactAr, nil
		}
		return details.FunFactFr, nil
	}
	return "", fmt.Errorf("unknown section %q", section)
}
