package playback

import (
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	"aspenkiosk/internal/domain"
	"aspenkiosk/internal/ports"
)

// User-facing messages for surfaced playback failures.
const (
	msgNetwork         = "Network error: Unable to load audio. Please check your connection."
	msgUnsupported     = "Audio format not supported on this device."
	msgDecode          = "Audio file is corrupted or cannot be decoded."
	msgPlayback        = "Unable to play this audio file."
	msgAutoplayBlocked = "Unable to start playback. Your device may have blocked autoplay."
	msgPlayFailed      = "Unable to start playback. Please try again."
)

const defaultRetryDelay = 300 * time.Millisecond

type phase int

const (
	phaseIdle phase = iota
	phaseLoading
	phaseReadyPending
	phasePlaying
	phaseRetryScheduled
	phaseFailed
)

// Transport wraps exactly one playable resource behind a uniform
// command/state surface. It owns the webview media handle for the resource
// and is discarded, via Release, whenever the source changes.
type Transport struct {
	factory    ports.MediaElementFactory
	clock      clockwork.Clock
	retryDelay time.Duration
	onChange   func(domain.TransportState)

	mu             sync.Mutex
	element        ports.MediaElement
	state          domain.TransportState
	phase          phase
	loop           bool
	ready          bool
	pendingPlay    bool
	retryAttempted bool
	retryTimer     clockwork.Timer
	released       bool
}

// NewTransport creates a transport with no loaded resource. onChange is
// invoked with a state snapshot after every observable mutation; it must not
// call back into the transport.
func NewTransport(factory ports.MediaElementFactory, clock clockwork.Clock, retryDelay time.Duration, onChange func(domain.TransportState)) *Transport {
	if retryDelay <= 0 {
		retryDelay = defaultRetryDelay
	}
	if onChange == nil {
		onChange = func(domain.TransportState) {}
	}
	return &Transport{
		factory:    factory,
		clock:      clock,
		retryDelay: retryDelay,
		onChange:   onChange,
		state:      domain.TransportState{Volume: 70},
	}
}

// Load constructs a fresh media handle for src, replacing and releasing any
// previous handle. Construction failures degrade to an unsupported-format
// error instead of propagating.
func (t *Transport) Load(src string, loop bool) {
	t.mu.Lock()
	if t.released {
		t.mu.Unlock()
		return
	}
	prev := t.element
	t.element = nil
	t.loop = loop
	t.ready = false
	t.pendingPlay = false
	t.retryAttempted = false
	t.stopRetryLocked()
	t.state.IsPlaying = false
	t.state.CurrentTime = 0
	t.state.Duration = 0
	t.state.ErrorKind = domain.ErrorKindNone
	t.state.ErrorMessage = ""
	volume := t.state.Volume
	t.mu.Unlock()

	if prev != nil {
		prev.Pause()
		prev.Release()
	}

	element, err := t.factory.New(t)
	if err == nil {
		err = element.Load(src, loop)
		if err != nil {
			element.Release()
		}
	}
	if err != nil {
		t.mu.Lock()
		t.failLocked(domain.ErrorKindUnsupported, msgUnsupported)
		snap := t.state
		t.mu.Unlock()
		t.onChange(snap)
		return
	}

	element.SetVolume(volume)

	t.mu.Lock()
	if t.released {
		t.mu.Unlock()
		element.Pause()
		element.Release()
		return
	}
	t.element = element
	t.phase = phaseLoading
	snap := t.state
	t.mu.Unlock()
	t.onChange(snap)
}

// Play requests playback. If the handle has not yet signalled readiness the
// request is parked until the canplay event fires; the wait is bounded only
// by that event.
func (t *Transport) Play() {
	t.mu.Lock()
	if t.released || t.element == nil {
		t.mu.Unlock()
		return
	}
	if !t.ready {
		t.pendingPlay = true
		t.phase = phaseReadyPending
		t.mu.Unlock()
		return
	}
	element := t.element
	t.mu.Unlock()

	if err := element.Play(); err != nil {
		t.HandlePlayResult(domain.PlayRejectionOther)
	}
}

// Pause always succeeds when a handle exists.
func (t *Transport) Pause() {
	t.mu.Lock()
	if t.released || t.element == nil {
		t.mu.Unlock()
		return
	}
	element := t.element
	t.pendingPlay = false
	t.stopRetryLocked()
	t.state.IsPlaying = false
	t.phase = phaseIdle
	snap := t.state
	t.mu.Unlock()

	element.Pause()
	t.onChange(snap)
}

// Stop pauses and rewinds to the start.
func (t *Transport) Stop() {
	t.mu.Lock()
	if t.released || t.element == nil {
		t.mu.Unlock()
		return
	}
	element := t.element
	t.pendingPlay = false
	t.stopRetryLocked()
	t.state.IsPlaying = false
	t.state.CurrentTime = 0
	t.phase = phaseIdle
	snap := t.state
	t.mu.Unlock()

	element.Stop()
	t.onChange(snap)
}

// SetVolume clamps percent to [0,100] and applies it.
func (t *Transport) SetVolume(percent int) {
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}

	t.mu.Lock()
	if t.released {
		t.mu.Unlock()
		return
	}
	t.state.Volume = percent
	element := t.element
	snap := t.state
	t.mu.Unlock()

	if element != nil {
		element.SetVolume(percent)
	}
	t.onChange(snap)
}

// ClearError resets the surfaced error without touching playback state.
func (t *Transport) ClearError() {
	t.mu.Lock()
	if t.released {
		t.mu.Unlock()
		return
	}
	t.state.ErrorKind = domain.ErrorKindNone
	t.state.ErrorMessage = ""
	t.retryAttempted = false
	if t.phase == phaseFailed {
		t.phase = phaseIdle
	}
	snap := t.state
	t.mu.Unlock()
	t.onChange(snap)
}

// Release pauses the handle and detaches every listener. After Release all
// commands and in-flight continuations become no-ops, so a stale play can
// never apply to a superseded resource.
func (t *Transport) Release() {
	t.mu.Lock()
	if t.released {
		t.mu.Unlock()
		return
	}
	t.released = true
	t.pendingPlay = false
	t.stopRetryLocked()
	element := t.element
	t.element = nil
	t.mu.Unlock()

	if element != nil {
		element.Pause()
		element.Release()
	}
}

// Snapshot returns a copy of the current transport state.
func (t *Transport) Snapshot() domain.TransportState {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}

// HandleMediaEvent is the single ingress for native media element signals.
func (t *Transport) HandleMediaEvent(ev domain.MediaEvent) {
	t.mu.Lock()
	if t.released {
		t.mu.Unlock()
		return
	}

	var issuePlay ports.MediaElement
	switch ev.Kind {
	case domain.MediaEventTimeUpdate:
		t.state.CurrentTime = ev.Seconds
	case domain.MediaEventLoadedMetadata:
		t.state.Duration = ev.Seconds
		t.state.ErrorKind = domain.ErrorKindNone
		t.state.ErrorMessage = ""
	case domain.MediaEventEnded:
		if !t.loop {
			t.state.IsPlaying = false
			t.phase = phaseIdle
		}
	case domain.MediaEventCanPlay:
		t.ready = true
		t.state.ErrorKind = domain.ErrorKindNone
		t.state.ErrorMessage = ""
		if t.pendingPlay {
			t.pendingPlay = false
			issuePlay = t.element
		}
	case domain.MediaEventError:
		t.applyNativeErrorLocked(ev.Error)
	}
	snap := t.state
	t.mu.Unlock()

	if issuePlay != nil {
		if err := issuePlay.Play(); err != nil {
			t.HandlePlayResult(domain.PlayRejectionOther)
			return
		}
	}
	t.onChange(snap)
}

// HandlePlayResult records the outcome of the most recent play request. A
// blocked-autoplay rejection is retried exactly once after the retry delay;
// all other rejections surface immediately.
func (t *Transport) HandlePlayResult(rejection domain.PlayRejection) {
	t.mu.Lock()
	if t.released {
		t.mu.Unlock()
		return
	}

	switch rejection {
	case domain.PlayRejectionNone:
		t.phase = phasePlaying
		t.retryAttempted = false
		t.state.IsPlaying = true
		t.state.ErrorKind = domain.ErrorKindNone
		t.state.ErrorMessage = ""
	case domain.PlayRejectionAutoplayBlocked:
		if !t.retryAttempted {
			t.retryAttempted = true
			t.phase = phaseRetryScheduled
			t.retryTimer = t.clock.AfterFunc(t.retryDelay, t.retryPlay)
			t.mu.Unlock()
			return
		}
		t.failLocked(domain.ErrorKindPlayback, msgAutoplayBlocked)
	case domain.PlayRejectionNotSupported:
		t.failLocked(domain.ErrorKindUnsupported, msgUnsupported)
	default:
		t.failLocked(domain.ErrorKindPlayback, msgPlayFailed)
	}
	snap := t.state
	t.mu.Unlock()
	t.onChange(snap)
}

func (t *Transport) retryPlay() {
	t.mu.Lock()
	if t.released || t.phase != phaseRetryScheduled || t.element == nil {
		t.mu.Unlock()
		return
	}
	element := t.element
	t.mu.Unlock()

	if err := element.Play(); err != nil {
		t.HandlePlayResult(domain.PlayRejectionOther)
	}
}

func (t *Transport) applyNativeErrorLocked(code domain.NativeError) {
	switch code {
	case domain.NativeErrorNetwork:
		t.failLocked(domain.ErrorKindNetwork, msgNetwork)
	case domain.NativeErrorSrcNotSupported:
		t.failLocked(domain.ErrorKindUnsupported, msgUnsupported)
	case domain.NativeErrorDecode:
		t.failLocked(domain.ErrorKindUnsupported, msgDecode)
	case domain.NativeErrorAborted:
		// Intentional cancellation is not a user-facing error.
		t.state.IsPlaying = false
	default:
		t.failLocked(domain.ErrorKindPlayback, msgPlayback)
	}
}

func (t *Transport) failLocked(kind domain.ErrorKind, message string) {
	t.phase = phaseFailed
	t.state.IsPlaying = false
	t.state.ErrorKind = kind
	t.state.ErrorMessage = message
}

func (t *Transport) stopRetryLocked() {
	if t.retryTimer != nil {
		t.retryTimer.Stop()
		t.retryTimer = nil
	}
	if t.phase == phaseRetryScheduled {
		t.phase = phaseIdle
	}
}
