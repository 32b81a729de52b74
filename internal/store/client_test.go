package store

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"aspenkiosk/internal/domain"
)

func TestSafeVolumeCap(t *testing.T) {
	t.Parallel()

	cases := map[string]struct {
		handler http.HandlerFunc
		want    int
	}{
		"configured cap": {
			handler: func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path != "/api/v1/settings/volume-cap" {
					t.Errorf("unexpected path %q", r.URL.Path)
				}
				w.Write([]byte(`{"cap": 55}`))
			},
			want: 55,
		},
		"server error falls back": {
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
			want: 70,
		},
		"out of range falls back": {
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"cap": 180}`))
			},
			want: 70,
		},
	}

	for name, tc := range cases {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			srv := httptest.NewServer(tc.handler)
			defer srv.Close()

			c := NewClient(srv.URL, time.Second, 70)
			if got := c.SafeVolumeCap(context.Background()); got != tc.want {
				t.Fatalf("expected cap %d, got %d", tc.want, got)
			}
		})
	}
}

func TestSafeVolumeCapUnreachableStore(t *testing.T) {
	t.Parallel()

	c := NewClient("http://127.0.0.1:1", 100*time.Millisecond, 70)
	if got := c.SafeVolumeCap(context.Background()); got != 70 {
		t.Fatalf("expected default cap, got %d", got)
	}
}

func TestUpdateVolumeCap(t *testing.T) {
	t.Parallel()

	var got struct {
		Cap int `json:"cap"`
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut || r.URL.Path != "/api/v1/settings/volume-cap" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode body: %v", err)
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second, 70)
	if err := c.UpdateVolumeCap(context.Background(), 60); err != nil {
		t.Fatalf("UpdateVolumeCap: %v", err)
	}
	if got.Cap != 60 {
		t.Fatalf("expected cap 60 in body, got %d", got.Cap)
	}
}

func TestIntakeStateAbsent(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second, 70)
	state, err := c.IntakeState(context.Background())
	if err != nil {
		t.Fatalf("IntakeState: %v", err)
	}
	if state != nil {
		t.Fatalf("expected nil state for 404, got %+v", state)
	}
}

func TestIntakeStateRoundTrip(t *testing.T) {
	t.Parallel()

	saved := domain.IntakeState{Mood: domain.MoodRelax, Language: domain.LanguageTelugu, AnxietyLevel: 4}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPut:
			if err := json.NewDecoder(r.Body).Decode(&saved); err != nil {
				t.Errorf("decode body: %v", err)
			}
			w.WriteHeader(http.StatusNoContent)
		case http.MethodGet:
			json.NewEncoder(w).Encode(saved)
		}
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second, 70)
	if err := c.SaveIntakeState(context.Background(), domain.IntakeState{Mood: domain.MoodDistract, AnxietyLevel: 9}); err != nil {
		t.Fatalf("SaveIntakeState: %v", err)
	}

	state, err := c.IntakeState(context.Background())
	if err != nil {
		t.Fatalf("IntakeState: %v", err)
	}
	if state == nil || state.Mood != domain.MoodDistract || state.AnxietyLevel != 9 {
		t.Fatalf("unexpected state: %+v", state)
	}
}

func TestPlaylistsForLanguage(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("language"); got != "kannada" {
			t.Errorf("unexpected language %q", got)
		}
		json.NewEncoder(w).Encode([]domain.Playlist{{ID: "kn-1", Title: "Kannada Calm"}})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second, 70)
	playlists, err := c.PlaylistsForLanguage(context.Background(), domain.LanguageKannada)
	if err != nil {
		t.Fatalf("PlaylistsForLanguage: %v", err)
	}
	if len(playlists) != 1 || playlists[0].ID != "kn-1" {
		t.Fatalf("unexpected playlists: %+v", playlists)
	}
}

func TestVerifyStaffPasscode(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/v1/staff/verify" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		var body struct {
			Passcode string `json:"passcode"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("decode body: %v", err)
		}
		json.NewEncoder(w).Encode(map[string]bool{"ok": body.Passcode == "1234"})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second, 70)

	ok, err := c.VerifyStaffPasscode(context.Background(), "1234")
	if err != nil || !ok {
		t.Fatalf("expected accepted passcode, got ok=%t err=%v", ok, err)
	}
	ok, err = c.VerifyStaffPasscode(context.Background(), "9999")
	if err != nil || ok {
		t.Fatalf("expected rejected passcode, got ok=%t err=%v", ok, err)
	}
}

func TestUpdateHeadsetBattery(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/headsets/hs-01/battery" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		var body struct {
			BatteryLevel int   `json:"batteryLevel"`
			Timestamp    int64 `json:"timestamp"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("decode body: %v", err)
		}
		if body.BatteryLevel != 85 || body.Timestamp != 1700000000 {
			t.Errorf("unexpected body: %+v", body)
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second, 70)
	if err := c.UpdateHeadsetBattery(context.Background(), "hs-01", 85, 1700000000); err != nil {
		t.Fatalf("UpdateHeadsetBattery: %v", err)
	}
}

func TestBadStatusIncludesDetail(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "cap must be between 0 and 100", http.StatusBadRequest)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second, 70)
	err := c.UpdateVolumeCap(context.Background(), 400)
	if err == nil {
		t.Fatalf("expected error for bad status")
	}
	want := "cap must be between 0 and 100"
	if got := err.Error(); !strings.Contains(got, want) {
		t.Fatalf("expected %q in error, got %q", want, got)
	}
}
