package ports

import (
	"context"

	"aspenkiosk/internal/domain"
)

// MediaElement drives exactly one playable resource in the webview.
type MediaElement interface {
	ID() string
	Load(src string, loop bool) error
	Play() error
	Pause()
	Stop()
	SetVolume(percent int)
	Release()
}

// MediaEventSink receives the native signals for one media handle.
type MediaEventSink interface {
	HandleMediaEvent(ev domain.MediaEvent)
	HandlePlayResult(rejection domain.PlayRejection)
}

// MediaElementFactory creates fresh media handles. Events for a handle are
// delivered to sink until the handle is released.
type MediaElementFactory interface {
	New(sink MediaEventSink) (MediaElement, error)
}

// EventSink emits backend state changes to the UI.
type EventSink interface {
	PlaybackChanged(status domain.PlaybackStatus)
	PlaybackError(kind domain.ErrorKind, message string)
	EmergencyChanged(active bool)
	LayoutChanged(offsets domain.BarOffsets)
}

// Store is the remote kiosk data store.
type Store interface {
	SafeVolumeCap(ctx context.Context) int
	UpdateVolumeCap(ctx context.Context, cap int) error
	IntakeState(ctx context.Context) (*domain.IntakeState, error)
	SaveIntakeState(ctx context.Context, state domain.IntakeState) error
	OTTSession(ctx context.Context) (*domain.OTTSession, error)
	SaveOTTSession(ctx context.Context, session domain.OTTSession) error
	EnabledOTTProviders(ctx context.Context) ([]domain.OTTProvider, error)
	SetEnabledOTTProviders(ctx context.Context, providers []domain.OTTProvider) error
	PlaylistsForLanguage(ctx context.Context, language domain.Language) ([]domain.Playlist, error)
	UserProfile(ctx context.Context) (*domain.UserProfile, error)
	SaveUserProfile(ctx context.Context, profile domain.UserProfile) error
	VerifyStaffPasscode(ctx context.Context, passcode string) (bool, error)
	UpdateStaffPasscode(ctx context.Context, passcode string) error
	HeadsetBatteries(ctx context.Context) ([]domain.HeadsetBattery, error)
	UpdateHeadsetBattery(ctx context.Context, deviceID string, level int, timestamp int64) error
}

// StoreWatcher delivers staff-settings changes pushed by the store.
type StoreWatcher interface {
	Updates() <-chan domain.StoreUpdate
	Close() error
}
