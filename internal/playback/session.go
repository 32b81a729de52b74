package playback

import (
	"errors"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	"aspenkiosk/internal/domain"
	"aspenkiosk/internal/ports"
	"aspenkiosk/internal/safety"
)

var ErrNoFactory = errors.New("no media element factory configured")

const (
	defaultStartDelay = 100 * time.Millisecond
	defaultVolume     = 70
)

// SessionConfig controls playback session timing.
type SessionConfig struct {
	// RetryDelay is the pause before the single blocked-autoplay retry.
	RetryDelay time.Duration
	// StartDelay is the pause between loading a new item and the automatic
	// play request, letting the resource start buffering first.
	StartDelay time.Duration
}

// Session is the single source of truth for what is currently playing. It
// composes the media transport with the safe volume ceiling and the
// Emergency Talk override.
type Session struct {
	factory   ports.MediaElementFactory
	clock     clockwork.Clock
	emergency *safety.Emergency
	sink      ports.EventSink
	cfg       SessionConfig

	mu        sync.Mutex
	transport *Transport
	current   *domain.PlayableItem
	queue     []domain.PlayableItem
	index     int
	volume    int
	volumeCap int
	lastError domain.ErrorKind
}

// NewSession creates an empty session. The session pauses playback, exactly
// once, whenever the emergency override transitions to active.
func NewSession(factory ports.MediaElementFactory, clock clockwork.Clock, emergency *safety.Emergency, sink ports.EventSink, cfg SessionConfig) *Session {
	if cfg.RetryDelay <= 0 {
		cfg.RetryDelay = defaultRetryDelay
	}
	if cfg.StartDelay <= 0 {
		cfg.StartDelay = defaultStartDelay
	}
	s := &Session{
		factory:   factory,
		clock:     clock,
		emergency: emergency,
		sink:      sink,
		cfg:       cfg,
		index:     -1,
		volume:    defaultVolume,
		volumeCap: defaultVolume,
	}
	emergency.OnChange(s.handleEmergency)
	return s
}

// StartPlayback replaces the queue with item alone, loads it, and requests
// playback after the start delay unless the emergency override is active. A
// previous transport is released first so no stale continuation can apply.
func (s *Session) StartPlayback(item domain.PlayableItem) error {
	return s.StartQueue([]domain.PlayableItem{item}, 0)
}

// StartQueue replaces the queue with items and begins playing the item at
// startIndex. An out-of-range index clamps to the nearest end; an empty
// queue stops the session.
func (s *Session) StartQueue(items []domain.PlayableItem, startIndex int) error {
	if s.factory == nil {
		return ErrNoFactory
	}
	if len(items) == 0 {
		s.Stop()
		return nil
	}
	if startIndex < 0 {
		startIndex = 0
	}
	if startIndex > len(items)-1 {
		startIndex = len(items) - 1
	}

	var transport *Transport
	transport = NewTransport(s.factory, s.clock, s.cfg.RetryDelay, func(state domain.TransportState) {
		s.transportChanged(transport, state)
	})

	s.mu.Lock()
	prev := s.transport
	s.transport = transport
	s.queue = append([]domain.PlayableItem(nil), items...)
	s.index = startIndex
	item := s.queue[startIndex]
	s.current = &item
	s.lastError = domain.ErrorKindNone
	volume := s.volume
	if volume > s.volumeCap {
		volume = s.volumeCap
	}
	s.volume = volume
	s.mu.Unlock()

	if prev != nil {
		prev.Release()
	}

	transport.Load(item.Source, item.Loop)
	transport.SetVolume(volume)

	s.clock.AfterFunc(s.cfg.StartDelay, func() {
		s.mu.Lock()
		stale := s.transport != transport
		s.mu.Unlock()
		if stale || s.emergency.Active() {
			return
		}
		transport.Play()
	})

	s.publish()
	return nil
}

// Play resumes the current item. While Emergency Talk is active this is a
// silent no-op, mirroring the disabled UI control.
func (s *Session) Play() {
	if s.emergency.Active() {
		return
	}
	if t := s.activeTransport(); t != nil {
		t.Play()
	}
}

// Pause pauses the current item.
func (s *Session) Pause() {
	if t := s.activeTransport(); t != nil {
		t.Pause()
	}
}

// Stop halts playback and resets the session to empty. The transport is
// stopped and released so no pending readiness continuation can fire a late
// play.
func (s *Session) Stop() {
	s.mu.Lock()
	t := s.transport
	s.transport = nil
	s.current = nil
	s.queue = nil
	s.index = -1
	s.lastError = domain.ErrorKindNone
	s.mu.Unlock()

	if t != nil {
		t.Stop()
		t.Release()
	}
	s.publish()
}

// SetVolume applies min(percent, cap) to the transport and remembers it for
// the next item.
func (s *Session) SetVolume(percent int) {
	s.mu.Lock()
	if percent > s.volumeCap {
		percent = s.volumeCap
	}
	if percent < 0 {
		percent = 0
	}
	s.volume = percent
	t := s.transport
	s.mu.Unlock()

	if t != nil {
		t.SetVolume(percent)
		return
	}
	s.publish()
}

// SetVolumeCap installs a new safe volume ceiling. A ceiling below the
// current volume re-clamps immediately.
func (s *Session) SetVolumeCap(cap int) {
	if cap < 0 {
		cap = 0
	}
	if cap > 100 {
		cap = 100
	}

	s.mu.Lock()
	s.volumeCap = cap
	reclamp := s.volume > cap
	if reclamp {
		s.volume = cap
	}
	t := s.transport
	s.mu.Unlock()

	if reclamp && t != nil {
		t.SetVolume(cap)
		return
	}
	s.publish()
}

// ClearError clears the surfaced transport error.
func (s *Session) ClearError() {
	s.mu.Lock()
	s.lastError = domain.ErrorKindNone
	t := s.transport
	s.mu.Unlock()

	if t != nil {
		t.ClearError()
		return
	}
	s.publish()
}

// NavigatePrevious moves to the previous queue item without starting
// playback. It is a no-op at the front of the queue.
func (s *Session) NavigatePrevious() {
	s.navigate(-1)
}

// NavigateNext moves to the next queue item without starting playback. It is
// a no-op at the end of the queue.
func (s *Session) NavigateNext() {
	s.navigate(+1)
}

func (s *Session) navigate(step int) {
	s.mu.Lock()
	if len(s.queue) <= 1 {
		s.mu.Unlock()
		return
	}
	next := s.index + step
	if next < 0 || next > len(s.queue)-1 {
		s.mu.Unlock()
		return
	}
	s.index = next
	item := s.queue[next]
	s.current = &item
	s.lastError = domain.ErrorKindNone
	prev := s.transport

	var transport *Transport
	transport = NewTransport(s.factory, s.clock, s.cfg.RetryDelay, func(state domain.TransportState) {
		s.transportChanged(transport, state)
	})
	s.transport = transport
	volume := s.volume
	s.mu.Unlock()

	if prev != nil {
		prev.Release()
	}
	transport.Load(item.Source, item.Loop)
	transport.SetVolume(volume)

	s.publish()
}

// Status assembles the UI read model.
func (s *Session) Status() domain.PlaybackStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.statusLocked()
}

func (s *Session) statusLocked() domain.PlaybackStatus {
	status := domain.PlaybackStatus{
		Volume:              s.volume,
		VolumeCap:           s.volumeCap,
		CanNavigatePrevious: len(s.queue) > 1 && s.index > 0,
		CanNavigateNext:     len(s.queue) > 1 && s.index < len(s.queue)-1,
	}
	if s.current != nil {
		item := *s.current
		status.CurrentItem = &item
	}
	if s.transport != nil {
		state := s.transport.Snapshot()
		status.IsPlaying = state.IsPlaying
		status.Volume = state.Volume
		status.ErrorKind = state.ErrorKind
		status.ErrorMessage = state.ErrorMessage
	}
	return status
}

func (s *Session) activeTransport() *Transport {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.transport
}

// handleEmergency fires on override transitions only, so an already paused
// session sees no extra pause calls. Deactivation never auto-resumes.
func (s *Session) handleEmergency(active bool) {
	if !active {
		return
	}
	t := s.activeTransport()
	if t != nil && t.Snapshot().IsPlaying {
		t.Pause()
	}
}

func (s *Session) transportChanged(t *Transport, state domain.TransportState) {
	s.mu.Lock()
	if s.transport != t {
		s.mu.Unlock()
		return
	}
	newError := state.ErrorKind != domain.ErrorKindNone && state.ErrorKind != s.lastError
	s.lastError = state.ErrorKind
	status := s.statusLocked()
	s.mu.Unlock()

	s.sink.PlaybackChanged(status)
	if newError {
		s.sink.PlaybackError(state.ErrorKind, state.ErrorMessage)
	}
}

func (s *Session) publish() {
	s.sink.PlaybackChanged(s.Status())
}
