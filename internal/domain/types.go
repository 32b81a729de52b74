package domain

// ErrorKind classifies playback failures surfaced to the UI.
type ErrorKind string

const (
	ErrorKindNone        ErrorKind = ""
	ErrorKindNetwork     ErrorKind = "network"
	ErrorKindUnsupported ErrorKind = "unsupported"
	ErrorKindPlayback    ErrorKind = "playback"
)

// NativeError identifies the raw media element error signal.
type NativeError string

const (
	NativeErrorAborted         NativeError = "aborted"
	NativeErrorNetwork         NativeError = "network"
	NativeErrorDecode          NativeError = "decode"
	NativeErrorSrcNotSupported NativeError = "src_not_supported"
	NativeErrorUnknown         NativeError = "unknown"
)

// PlayRejection classifies the outcome of an asynchronous play request.
type PlayRejection string

const (
	PlayRejectionNone            PlayRejection = ""
	PlayRejectionAutoplayBlocked PlayRejection = "not_allowed"
	PlayRejectionNotSupported    PlayRejection = "not_supported"
	PlayRejectionOther           PlayRejection = "other"
)

// MediaEventKind names one native media element signal.
type MediaEventKind string

const (
	MediaEventTimeUpdate     MediaEventKind = "timeupdate"
	MediaEventLoadedMetadata MediaEventKind = "loadedmetadata"
	MediaEventEnded          MediaEventKind = "ended"
	MediaEventError          MediaEventKind = "error"
	MediaEventCanPlay        MediaEventKind = "canplay"
)

// MediaEvent is one signal raised by the webview media element. Seconds
// carries the playback position for timeupdate and the total duration for
// loadedmetadata.
type MediaEvent struct {
	Kind    MediaEventKind `json:"kind"`
	Seconds float64        `json:"seconds,omitempty"`
	Error   NativeError    `json:"error,omitempty"`
}

// PlayableItem is one audio or video resource the kiosk can play.
// Identity is ID; items are immutable once constructed.
type PlayableItem struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Source   string `json:"source"`
	Loop     bool   `json:"loop"`
	IconHint string `json:"iconHint,omitempty"`
}

// TransportState is the observable state of one media transport.
type TransportState struct {
	IsPlaying    bool      `json:"isPlaying"`
	CurrentTime  float64   `json:"currentTime"`
	Duration     float64   `json:"duration"`
	Volume       int       `json:"volume"`
	ErrorKind    ErrorKind `json:"errorKind,omitempty"`
	ErrorMessage string    `json:"errorMessage,omitempty"`
}

// PlaybackStatus is the read model the UI renders from.
type PlaybackStatus struct {
	CurrentItem         *PlayableItem `json:"currentItem"`
	IsPlaying           bool          `json:"isPlaying"`
	Volume              int           `json:"volume"`
	VolumeCap           int           `json:"volumeCap"`
	ErrorKind           ErrorKind     `json:"errorKind,omitempty"`
	ErrorMessage        string        `json:"errorMessage,omitempty"`
	CanNavigatePrevious bool          `json:"canNavigatePrevious"`
	CanNavigateNext     bool          `json:"canNavigateNext"`
}

// BarOffsets positions the two stacked bottom overlay bars and the content
// padding that keeps page content clear of them.
type BarOffsets struct {
	EmergencyBarBottom   int `json:"emergencyBarBottom"`
	NowPlayingBarBottom  int `json:"nowPlayingBarBottom"`
	ContentPaddingBottom int `json:"contentPaddingBottom"`
}
