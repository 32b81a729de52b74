package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/gorilla/websocket"

	"aspenkiosk/internal/domain"
)

// Watcher is an active staff-settings subscription. Updates arrive on a
// buffered channel that closes when the connection ends.
type Watcher struct {
	conn *websocket.Conn

	updates chan domain.StoreUpdate
	done    chan struct{}

	errMu sync.Mutex
	err   error

	closeOnce sync.Once
}

// DialWatcher subscribes to pushed staff-settings changes. The watcher
// closes itself when ctx is cancelled.
func DialWatcher(ctx context.Context, baseURL string) (*Watcher, error) {
	wsURL, err := buildUpdatesURL(baseURL)
	if err != nil {
		return nil, err
	}

	conn, _, err := websocket.DefaultDialer.DialContext(ctx, wsURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to store updates stream: %w", err)
	}

	w := &Watcher{
		conn:    conn,
		updates: make(chan domain.StoreUpdate, 16),
		done:    make(chan struct{}),
	}

	go w.readLoop()
	go func() {
		<-ctx.Done()
		_ = w.Close()
	}()

	return w, nil
}

// Updates returns the stream of staff-settings changes.
func (w *Watcher) Updates() <-chan domain.StoreUpdate {
	return w.updates
}

// Close tears down the subscription and reports any stream error.
func (w *Watcher) Close() error {
	w.closeOnce.Do(func() {
		_ = w.conn.Close()
	})
	<-w.done
	return w.waitErr()
}

func (w *Watcher) readLoop() {
	defer func() {
		close(w.updates)
		close(w.done)
		_ = w.conn.Close()
	}()

	for {
		_, payload, err := w.conn.ReadMessage()
		if err != nil {
			w.setErr(fmt.Errorf("failed to read store update: %w", err))
			return
		}

		var update domain.StoreUpdate
		if err := json.Unmarshal(payload, &update); err != nil {
			continue
		}

		switch update.Kind {
		case domain.StoreUpdateVolumeCap, domain.StoreUpdateOTTProviders:
		default:
			continue
		}

		select {
		case w.updates <- update:
		default:
			// A slow consumer drops intermediate updates; the latest
			// settings always arrive with the next message.
		}
	}
}

func (w *Watcher) waitErr() error {
	w.errMu.Lock()
	defer w.errMu.Unlock()
	return w.err
}

func (w *Watcher) setErr(err error) {
	if err == nil {
		return
	}
	var closeErr *websocket.CloseError
	if errors.As(err, &closeErr) &&
		(closeErr.Code == websocket.CloseNormalClosure ||
			closeErr.Code == websocket.CloseGoingAway ||
			closeErr.Code == websocket.CloseNoStatusReceived) {
		return
	}

	w.errMu.Lock()
	defer w.errMu.Unlock()
	if w.err == nil {
		w.err = err
	}
}

func buildUpdatesURL(baseURL string) (string, error) {
	base := strings.TrimSpace(baseURL)
	if strings.HasPrefix(base, "https://") {
		base = "wss://" + strings.TrimPrefix(base, "https://")
	} else if strings.HasPrefix(base, "http://") {
		base = "ws://" + strings.TrimPrefix(base, "http://")
	}
	base = strings.TrimRight(base, "/")
	if base == "" {
		return "", errors.New("store base URL is not configured")
	}
	return base + "/ws/updates", nil
}
