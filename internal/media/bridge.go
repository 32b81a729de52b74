// Package media bridges the playback core to the webview's audio element.
// Commands go out as named events; native element signals come back through
// the dispatcher, keyed by handle id so stale handles are dropped.
package media

import (
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"aspenkiosk/internal/domain"
	"aspenkiosk/internal/ports"
)

// Event names consumed by the webview media shim.
const (
	EventLoad      = "kiosk:media:load"
	EventPlay      = "kiosk:media:play"
	EventPause     = "kiosk:media:pause"
	EventStop      = "kiosk:media:stop"
	EventSetVolume = "kiosk:media:volume"
	EventRelease   = "kiosk:media:release"
)

// Emitter sends one named event with a payload to the webview.
type Emitter func(name string, payload any)

// Dispatcher fans incoming webview media signals out to handle owners.
// Signals for unknown or released handles are dropped; that is the identity
// check that keeps a superseded resource from receiving late events.
type Dispatcher struct {
	mu       sync.Mutex
	handlers map[string]ports.MediaEventSink
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{handlers: make(map[string]ports.MediaEventSink)}
}

// Bind routes signals for handle id to sink.
func (d *Dispatcher) Bind(id string, sink ports.MediaEventSink) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.handlers[id] = sink
}

// Unbind stops routing for handle id.
func (d *Dispatcher) Unbind(id string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	delete(d.handlers, id)
}

// DispatchEvent delivers a native media signal to the handle's owner.
func (d *Dispatcher) DispatchEvent(id string, ev domain.MediaEvent) {
	if sink := d.sinkFor(id); sink != nil {
		sink.HandleMediaEvent(ev)
	}
}

// DispatchPlayResult delivers a play request outcome to the handle's owner.
func (d *Dispatcher) DispatchPlayResult(id string, rejection domain.PlayRejection) {
	if sink := d.sinkFor(id); sink != nil {
		sink.HandlePlayResult(rejection)
	}
}

func (d *Dispatcher) sinkFor(id string) ports.MediaEventSink {
	d.mu.Lock()
	defer d.mu.Unlock()
	sink, ok := d.handlers[id]
	if !ok {
		slog.Debug("dropping signal for released media handle", "handle", id)
		return nil
	}
	return sink
}

// Factory creates webview-backed media elements.
type Factory struct {
	emit       Emitter
	dispatcher *Dispatcher
}

func NewFactory(emit Emitter, dispatcher *Dispatcher) *Factory {
	return &Factory{emit: emit, dispatcher: dispatcher}
}

// New allocates a handle id, binds sink to it, and returns the element.
func (f *Factory) New(sink ports.MediaEventSink) (ports.MediaElement, error) {
	id := uuid.NewString()
	f.dispatcher.Bind(id, sink)
	return &element{id: id, emit: f.emit, unbind: func() { f.dispatcher.Unbind(id) }}, nil
}

type element struct {
	id     string
	emit   Emitter
	unbind func()
}

type handlePayload struct {
	Handle string `json:"handle"`
}

func (e *element) ID() string { return e.id }

func (e *element) Load(src string, loop bool) error {
	e.emit(EventLoad, struct {
		Handle string `json:"handle"`
		Src    string `json:"src"`
		Loop   bool   `json:"loop"`
	}{Handle: e.id, Src: src, Loop: loop})
	return nil
}

func (e *element) Play() error {
	e.emit(EventPlay, handlePayload{Handle: e.id})
	return nil
}

func (e *element) Pause() {
	e.emit(EventPause, handlePayload{Handle: e.id})
}

func (e *element) Stop() {
	e.emit(EventStop, handlePayload{Handle: e.id})
}

func (e *element) SetVolume(percent int) {
	e.emit(EventSetVolume, struct {
		Handle  string `json:"handle"`
		Percent int    `json:"percent"`
	}{Handle: e.id, Percent: percent})
}

func (e *element) Release() {
	e.unbind()
	e.emit(EventRelease, handlePayload{Handle: e.id})
}
