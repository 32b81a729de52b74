package store

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"aspenkiosk/internal/domain"
)

func TestWatcherDeliversKnownUpdates(t *testing.T) {
	t.Parallel()

	upgrader := websocket.Upgrader{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/ws/updates" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			t.Errorf("upgrade: %v", err)
			return
		}
		defer conn.Close()

		messages := []string{
			`{"kind":"volume_cap","volumeCap":45}`,
			`not json at all`,
			`{"kind":"weather_report"}`,
			`{"kind":"ott_providers","ottProviders":["netflix","hotstar"]}`,
		}
		for _, m := range messages {
			if err := conn.WriteMessage(websocket.TextMessage, []byte(m)); err != nil {
				t.Errorf("write: %v", err)
				return
			}
		}
		deadline := time.Now().Add(time.Second)
		msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")
		_ = conn.WriteControl(websocket.CloseMessage, msg, deadline)
		// Wait for the client close before tearing down the server side.
		_, _, _ = conn.ReadMessage()
	}))
	defer srv.Close()

	w, err := DialWatcher(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("DialWatcher: %v", err)
	}

	var got []domain.StoreUpdate
	for update := range w.Updates() {
		got = append(got, update)
	}

	if len(got) != 2 {
		t.Fatalf("expected 2 updates, got %+v", got)
	}
	if got[0].Kind != domain.StoreUpdateVolumeCap || got[0].VolumeCap != 45 {
		t.Fatalf("unexpected first update: %+v", got[0])
	}
	if got[1].Kind != domain.StoreUpdateOTTProviders || len(got[1].OTTProviders) != 2 {
		t.Fatalf("unexpected second update: %+v", got[1])
	}

	if err := w.Close(); err != nil {
		t.Fatalf("expected clean close, got %v", err)
	}
}

func TestWatcherCloseStopsStream(t *testing.T) {
	t.Parallel()

	upgrader := websocket.Upgrader{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()
		// Hold the connection open until the client goes away.
		_, _, _ = conn.ReadMessage()
	}))
	defer srv.Close()

	w, err := DialWatcher(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("DialWatcher: %v", err)
	}

	_ = w.Close()

	select {
	case _, open := <-w.Updates():
		if open {
			t.Fatalf("expected closed updates channel")
		}
	case <-time.After(time.Second):
		t.Fatalf("updates channel did not close")
	}
}

func TestWatcherContextCancelCloses(t *testing.T) {
	t.Parallel()

	upgrader := websocket.Upgrader{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()
		_, _, _ = conn.ReadMessage()
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	w, err := DialWatcher(ctx, srv.URL)
	if err != nil {
		t.Fatalf("DialWatcher: %v", err)
	}

	cancel()

	select {
	case _, open := <-w.Updates():
		if open {
			t.Fatalf("expected closed updates channel")
		}
	case <-time.After(time.Second):
		t.Fatalf("updates channel did not close after cancel")
	}
}

func TestBuildUpdatesURL(t *testing.T) {
	t.Parallel()

	cases := map[string]struct {
		base    string
		want    string
		wantErr bool
	}{
		"http":           {base: "http://store.local:8080", want: "ws://store.local:8080/ws/updates"},
		"https":          {base: "https://store.local", want: "wss://store.local/ws/updates"},
		"trailing slash": {base: "http://store.local/", want: "ws://store.local/ws/updates"},
		"empty":          {base: "   ", wantErr: true},
	}

	for name, tc := range cases {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, err := buildUpdatesURL(tc.base)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("buildUpdatesURL: %v", err)
			}
			if got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}
