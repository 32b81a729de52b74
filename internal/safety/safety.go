// Package safety holds the Emergency Talk override and the video activity
// flag. Both are constructed once at startup and handed to consumers, so
// tests get fresh instances instead of ambient globals.
package safety

import "sync"

// Emergency is the two-state Emergency Talk override. While active, the
// playback session must not be playing and play requests are silently
// rejected. There is no intermediate or terminal state.
type Emergency struct {
	mu     sync.Mutex
	active bool
	subs   []func(active bool)
}

func NewEmergency() *Emergency {
	return &Emergency{}
}

// OnChange registers fn to run on every transition. Callbacks fire outside
// the lock, in registration order, and only on actual edges.
func (e *Emergency) OnChange(fn func(active bool)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.subs = append(e.subs, fn)
}

// Activate raises the override. Calling while already active is a no-op.
func (e *Emergency) Activate() {
	e.set(true)
}

// Deactivate lowers the override. Calling while already inactive is a no-op.
func (e *Emergency) Deactivate() {
	e.set(false)
}

// Active reports whether the override is raised.
func (e *Emergency) Active() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.active
}

func (e *Emergency) set(active bool) {
	e.mu.Lock()
	if e.active == active {
		e.mu.Unlock()
		return
	}
	e.active = active
	subs := make([]func(bool), len(e.subs))
	copy(subs, e.subs)
	e.mu.Unlock()

	for _, fn := range subs {
		fn(active)
	}
}

// Activity tracks whether a video overlay outside the audio session is
// currently shown, so the Emergency Talk bar stays visible while video
// plays.
type Activity struct {
	mu    sync.Mutex
	video bool
	subs  []func(active bool)
}

func NewActivity() *Activity {
	return &Activity{}
}

// OnChange registers fn to run whenever the video flag flips.
func (a *Activity) OnChange(fn func(active bool)) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.subs = append(a.subs, fn)
}

// SetVideoActive records whether a video overlay is shown.
func (a *Activity) SetVideoActive(active bool) {
	a.mu.Lock()
	if a.video == active {
		a.mu.Unlock()
		return
	}
	a.video = active
	subs := make([]func(bool), len(a.subs))
	copy(subs, a.subs)
	a.mu.Unlock()

	for _, fn := range subs {
		fn(active)
	}
}

// VideoActive reports whether a video overlay is shown.
func (a *Activity) VideoActive() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.video
}
