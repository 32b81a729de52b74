package layout

import (
	"testing"

	"aspenkiosk/internal/domain"
)

func TestOffsets(t *testing.T) {
	t.Parallel()

	cases := map[string]struct {
		presence Presence
		want     domain.BarOffsets
	}{
		"both bars stack": {
			presence: Presence{HasNowPlaying: true, HasEmergencyBar: true},
			want: domain.BarOffsets{
				EmergencyBarBottom:   0,
				NowPlayingBarBottom:  96,
				ContentPaddingBottom: 236,
			},
		},
		"emergency bar only": {
			presence: Presence{HasEmergencyBar: true},
			want: domain.BarOffsets{
				NowPlayingBarBottom:  96,
				ContentPaddingBottom: 96,
			},
		},
		"no bars": {
			presence: Presence{},
			want:     domain.BarOffsets{},
		},
	}

	for name, tc := range cases {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			if got := Offsets(tc.presence); got != tc.want {
				t.Fatalf("expected %+v, got %+v", tc.want, got)
			}
		})
	}
}

func TestPresenceFor(t *testing.T) {
	t.Parallel()

	cases := map[string]struct {
		hasItem bool
		video   bool
		want    Presence
	}{
		"idle":       {want: Presence{}},
		"audio item": {hasItem: true, want: Presence{HasNowPlaying: true, HasEmergencyBar: true}},
		"video only": {video: true, want: Presence{HasEmergencyBar: true}},
		"both":       {hasItem: true, video: true, want: Presence{HasNowPlaying: true, HasEmergencyBar: true}},
	}

	for name, tc := range cases {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			if got := PresenceFor(tc.hasItem, tc.video); got != tc.want {
				t.Fatalf("expected %+v, got %+v", tc.want, got)
			}
		})
	}
}
