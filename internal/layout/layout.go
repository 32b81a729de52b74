// Package layout derives non-overlapping vertical offsets for the two
// stacked, conditionally visible bottom bars.
package layout

import "aspenkiosk/internal/domain"

// Fixed bar heights in device-independent pixels.
const (
	EmergencyBarHeight  = 96
	NowPlayingBarHeight = 140
)

// Presence says which bottom bars are visible.
type Presence struct {
	HasNowPlaying   bool `json:"hasNowPlaying"`
	HasEmergencyBar bool `json:"hasEmergencyBar"`
}

// PresenceFor derives bar visibility: the Now Playing bar shows while an
// item is current, and the Emergency Talk bar shows whenever any media
// (audio item or video overlay) is active.
func PresenceFor(hasCurrentItem, videoActive bool) Presence {
	return Presence{
		HasNowPlaying:   hasCurrentItem,
		HasEmergencyBar: hasCurrentItem || videoActive,
	}
}

// Offsets computes bar anchors and content padding. The Emergency bar
// anchors to the viewport bottom; the Now Playing bar stacks above it when
// both are visible, so the bars never overlap.
func Offsets(p Presence) domain.BarOffsets {
	var o domain.BarOffsets
	if p.HasEmergencyBar {
		o.NowPlayingBarBottom = EmergencyBarHeight
		o.ContentPaddingBottom += EmergencyBarHeight
	}
	if p.HasNowPlaying {
		o.ContentPaddingBottom += NowPlayingBarHeight
	}
	return o
}
