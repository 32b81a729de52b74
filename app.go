package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/wailsapp/wails/v2/pkg/runtime"

	"aspenkiosk/internal/bootstrap"
	"aspenkiosk/internal/domain"
	"aspenkiosk/internal/fallback"
	"aspenkiosk/internal/layout"
	"aspenkiosk/internal/store"
)

const (
	eventPlayback  = "kiosk:playback"
	eventError     = "kiosk:playback-error"
	eventEmergency = "kiosk:emergency"
	eventLayout    = "kiosk:layout"
	eventVolumeCap = "kiosk:volume-cap"
	eventProviders = "kiosk:ott-providers"
)

var errStaffLocked = errors.New("staff settings are locked")

// App is the Wails application root.
type App struct {
	ctx context.Context

	services bootstrap.Services
	watcher  *store.Watcher
	bootErr  error
}

func NewApp() *App {
	return &App{}
}

func (a *App) startup(ctx context.Context) {
	a.ctx = ctx

	services, err := bootstrap.Build(a, a.emitMedia)
	if err != nil {
		a.bootErr = err
		slog.Error("startup failed", "err", err)
		return
	}
	a.services = services

	cap := services.Store.SafeVolumeCap(ctx)
	services.Session.SetVolumeCap(cap)

	services.Activity.OnChange(func(bool) { a.emitLayout() })
	services.Emergency.OnChange(func(active bool) {
		a.EmergencyChanged(active)
	})

	watcher, err := store.DialWatcher(ctx, services.Config.Store.BaseURL)
	if err != nil {
		slog.Warn("staff-settings stream unavailable", "err", err)
	} else {
		a.watcher = watcher
		go a.consumeUpdates(watcher)
	}
}

func (a *App) shutdown(context.Context) {
	if a.watcher != nil {
		if err := a.watcher.Close(); err != nil {
			slog.Warn("staff-settings stream closed with error", "err", err)
		}
	}
}

func (a *App) consumeUpdates(watcher *store.Watcher) {
	for update := range watcher.Updates() {
		switch update.Kind {
		case domain.StoreUpdateVolumeCap:
			a.services.Session.SetVolumeCap(update.VolumeCap)
			a.emit(eventVolumeCap, update.VolumeCap)
		case domain.StoreUpdateOTTProviders:
			a.emit(eventProviders, update.OTTProviders)
		}
	}
}

// --- Playback commands ---

// StartPlayback replaces the queue with item and begins playing it.
func (a *App) StartPlayback(item domain.PlayableItem) error {
	if err := a.requireReady(); err != nil {
		return err
	}
	return a.services.Session.StartPlayback(item)
}

// StartQueue replaces the queue with items and begins playing the one at
// startIndex.
func (a *App) StartQueue(items []domain.PlayableItem, startIndex int) error {
	if err := a.requireReady(); err != nil {
		return err
	}
	return a.services.Session.StartQueue(items, startIndex)
}

// Play resumes the current item; a no-op while Emergency Talk is active.
func (a *App) Play() error {
	if err := a.requireReady(); err != nil {
		return err
	}
	a.services.Session.Play()
	return nil
}

// Pause pauses the current item.
func (a *App) Pause() error {
	if err := a.requireReady(); err != nil {
		return err
	}
	a.services.Session.Pause()
	return nil
}

// StopPlayback halts playback and clears the queue.
func (a *App) StopPlayback() error {
	if err := a.requireReady(); err != nil {
		return err
	}
	a.services.Session.Stop()
	return nil
}

// SetVolume requests a volume change, clamped to the safe ceiling.
func (a *App) SetVolume(percent int) error {
	if err := a.requireReady(); err != nil {
		return err
	}
	a.services.Session.SetVolume(percent)
	return nil
}

// NavigatePrevious selects the previous queue item without playing it.
func (a *App) NavigatePrevious() error {
	if err := a.requireReady(); err != nil {
		return err
	}
	a.services.Session.NavigatePrevious()
	return nil
}

// NavigateNext selects the next queue item without playing it.
func (a *App) NavigateNext() error {
	if err := a.requireReady(); err != nil {
		return err
	}
	a.services.Session.NavigateNext()
	return nil
}

// ClearPlaybackError dismisses the surfaced playback error.
func (a *App) ClearPlaybackError() error {
	if err := a.requireReady(); err != nil {
		return err
	}
	a.services.Session.ClearError()
	return nil
}

// GetPlaybackStatus returns the playback read model.
func (a *App) GetPlaybackStatus() domain.PlaybackStatus {
	if a.requireReady() != nil {
		return domain.PlaybackStatus{Volume: 70, VolumeCap: 70}
	}
	return a.services.Session.Status()
}

// --- Media element ingress (called by the webview media shim) ---

// MediaEvent forwards a native media element signal to its handle owner.
func (a *App) MediaEvent(handle string, kind string, seconds float64, nativeError string) {
	if a.requireReady() != nil {
		return
	}
	a.services.Media.DispatchEvent(handle, domain.MediaEvent{
		Kind:    domain.MediaEventKind(kind),
		Seconds: seconds,
		Error:   domain.NativeError(nativeError),
	})
}

// MediaPlayResult forwards the outcome of a play() request. An empty
// rejection means the request succeeded.
func (a *App) MediaPlayResult(handle string, rejection string) {
	if a.requireReady() != nil {
		return
	}
	a.services.Media.DispatchPlayResult(handle, domain.PlayRejection(rejection))
}

// --- Emergency Talk ---

// ActivateEmergencyTalk force-pauses all media for caregiver communication.
func (a *App) ActivateEmergencyTalk() {
	if a.requireReady() != nil {
		return
	}
	a.services.Emergency.Activate()
}

// DeactivateEmergencyTalk lowers the override. Playback does not resume
// until the patient presses play again.
func (a *App) DeactivateEmergencyTalk() {
	if a.requireReady() != nil {
		return
	}
	a.services.Emergency.Deactivate()
}

// EmergencyTalkActive reports whether the override is raised.
func (a *App) EmergencyTalkActive() bool {
	if a.requireReady() != nil {
		return false
	}
	return a.services.Emergency.Active()
}

// SetVideoActive records whether a video overlay is currently shown.
func (a *App) SetVideoActive(active bool) {
	if a.requireReady() != nil {
		return
	}
	a.services.Activity.SetVideoActive(active)
}

// --- Layout ---

// GetBarOffsets returns the current bottom bar offsets.
func (a *App) GetBarOffsets() domain.BarOffsets {
	if a.requireReady() != nil {
		return domain.BarOffsets{}
	}
	return layout.Offsets(a.presence())
}

func (a *App) presence() layout.Presence {
	status := a.services.Session.Status()
	return layout.PresenceFor(status.CurrentItem != nil, a.services.Activity.VideoActive())
}

// --- Fallback ---

// FallbackURL returns the external destination for a failed item, or ""
// when only the bare error should be shown.
func (a *App) FallbackURL(errorKind string, itemID string) string {
	if a.requireReady() != nil {
		return ""
	}
	url, ok := a.services.Resolver.Resolve(domain.ErrorKind(errorKind), itemID)
	if !ok {
		return ""
	}
	return url
}

// GetKidsCartoonFavorites lists the kids quick picks.
func (a *App) GetKidsCartoonFavorites() []fallback.KidsCartoonFavorite {
	return fallback.KidsCartoonFavorites
}

// --- Navigation ---

// VisitRoute records a route change for back navigation.
func (a *App) VisitRoute(path string) {
	if a.requireReady() != nil {
		return
	}
	a.services.History.Visit(path)
}

// BackRoute returns the route to navigate to when the back control is used.
func (a *App) BackRoute(current string) string {
	if a.requireReady() != nil {
		return "/dashboard"
	}
	return a.services.History.Back(current)
}

// CanGoBack reports whether back navigation makes sense from current.
func (a *App) CanGoBack(current string) bool {
	if a.requireReady() != nil {
		return false
	}
	return a.services.History.CanGoBack(current)
}

// --- Session preferences ---

// GetLanguagePreference returns the stored language preference.
func (a *App) GetLanguagePreference() string {
	if a.requireReady() != nil {
		return string(domain.LanguageEnglish)
	}
	return string(a.services.Prefs.Language())
}

// SetLanguagePreference stores the language preference for this session.
func (a *App) SetLanguagePreference(language string) {
	if a.requireReady() != nil {
		return
	}
	a.services.Prefs.SetLanguage(domain.Language(language))
}

// IsStaffAuthenticated reports whether staff unlocked settings this session.
func (a *App) IsStaffAuthenticated() bool {
	if a.requireReady() != nil {
		return false
	}
	return a.services.Prefs.StaffAuthenticated()
}

// LogoutStaff clears the staff auth flag.
func (a *App) LogoutStaff() {
	if a.requireReady() != nil {
		return
	}
	a.services.Prefs.SetStaffAuthenticated(false)
}

// --- Remote store surface ---

// GetSafeVolumeCap returns the staff-configured volume ceiling.
func (a *App) GetSafeVolumeCap() int {
	if a.requireReady() != nil {
		return 70
	}
	return a.services.Store.SafeVolumeCap(a.ctx)
}

// UpdateVolumeCap writes a new volume ceiling. Requires staff auth; the new
// ceiling reaches the session through the settings stream.
func (a *App) UpdateVolumeCap(cap int) error {
	if err := a.requireStaff(); err != nil {
		return err
	}
	if err := a.services.Store.UpdateVolumeCap(a.ctx, cap); err != nil {
		return err
	}
	a.services.Session.SetVolumeCap(cap)
	return nil
}

// VerifyStaffPasscode checks the passcode and unlocks staff settings for
// this session on success.
func (a *App) VerifyStaffPasscode(passcode string) (bool, error) {
	if err := a.requireReady(); err != nil {
		return false, err
	}
	ok, err := a.services.Store.VerifyStaffPasscode(a.ctx, passcode)
	if err != nil {
		return false, err
	}
	if ok {
		a.services.Prefs.SetStaffAuthenticated(true)
	}
	return ok, nil
}

// UpdateStaffPasscode replaces the staff passcode. Requires staff auth.
func (a *App) UpdateStaffPasscode(passcode string) error {
	if err := a.requireStaff(); err != nil {
		return err
	}
	return a.services.Store.UpdateStaffPasscode(a.ctx, passcode)
}

// GetIntakeState returns the saved intake answers, preferring the session
// cache when the store has none.
func (a *App) GetIntakeState() (*domain.IntakeState, error) {
	if err := a.requireReady(); err != nil {
		return nil, err
	}
	state, err := a.services.Store.IntakeState(a.ctx)
	if err != nil {
		if cached, ok := a.services.Prefs.IntakeState(); ok {
			return cached, nil
		}
		return nil, err
	}
	return state, nil
}

// SaveIntakeState persists intake answers and caches them for the session.
func (a *App) SaveIntakeState(state domain.IntakeState) error {
	if err := a.requireReady(); err != nil {
		return err
	}
	a.services.Prefs.SetIntakeState(state)
	return a.services.Store.SaveIntakeState(a.ctx, state)
}

// GetOTTSession returns the last external streaming session.
func (a *App) GetOTTSession() (*domain.OTTSession, error) {
	if err := a.requireReady(); err != nil {
		return nil, err
	}
	return a.services.Store.OTTSession(a.ctx)
}

// SaveOTTSession persists the external streaming session.
func (a *App) SaveOTTSession(session domain.OTTSession) error {
	if err := a.requireReady(); err != nil {
		return err
	}
	return a.services.Store.SaveOTTSession(a.ctx, session)
}

// GetEnabledOTTProviders lists the streaming providers staff has enabled.
func (a *App) GetEnabledOTTProviders() ([]domain.OTTProvider, error) {
	if err := a.requireReady(); err != nil {
		return nil, err
	}
	return a.services.Store.EnabledOTTProviders(a.ctx)
}

// SetEnabledOTTProviders replaces the enabled providers. Requires staff
// auth.
func (a *App) SetEnabledOTTProviders(providers []domain.OTTProvider) error {
	if err := a.requireStaff(); err != nil {
		return err
	}
	return a.services.Store.SetEnabledOTTProviders(a.ctx, providers)
}

// GetPlaylistsForLanguage lists curated playlists for language.
func (a *App) GetPlaylistsForLanguage(language string) ([]domain.Playlist, error) {
	if err := a.requireReady(); err != nil {
		return nil, err
	}
	return a.services.Store.PlaylistsForLanguage(a.ctx, domain.Language(language))
}

// GetUserProfile returns the patient profile.
func (a *App) GetUserProfile() (*domain.UserProfile, error) {
	if err := a.requireReady(); err != nil {
		return nil, err
	}
	return a.services.Store.UserProfile(a.ctx)
}

// SaveUserProfile persists the patient profile.
func (a *App) SaveUserProfile(profile domain.UserProfile) error {
	if err := a.requireReady(); err != nil {
		return err
	}
	return a.services.Store.SaveUserProfile(a.ctx, profile)
}

// GetHeadsetBatteries lists the last known headset battery states.
func (a *App) GetHeadsetBatteries() ([]domain.HeadsetBattery, error) {
	if err := a.requireReady(); err != nil {
		return nil, err
	}
	return a.services.Store.HeadsetBatteries(a.ctx)
}

// UpdateHeadsetBattery records a battery report for one headset.
func (a *App) UpdateHeadsetBattery(deviceID string, level int, timestamp int64) error {
	if err := a.requireReady(); err != nil {
		return err
	}
	return a.services.Store.UpdateHeadsetBattery(a.ctx, deviceID, level, timestamp)
}

// --- EventSink ---

// PlaybackChanged emits the playback read model to the frontend and keeps
// the bar layout in step with it.
func (a *App) PlaybackChanged(status domain.PlaybackStatus) {
	a.emit(eventPlayback, status)
	a.emitLayout()
}

// PlaybackError emits a surfaced playback failure with any fallback URL.
func (a *App) PlaybackError(kind domain.ErrorKind, message string) {
	payload := struct {
		Kind        domain.ErrorKind `json:"kind"`
		Message     string           `json:"message"`
		FallbackURL string           `json:"fallbackUrl,omitempty"`
	}{Kind: kind, Message: message}

	if a.services.Resolver != nil {
		status := a.services.Session.Status()
		if status.CurrentItem != nil {
			if url, ok := a.services.Resolver.Resolve(kind, status.CurrentItem.ID); ok {
				payload.FallbackURL = url
			}
		}
	}
	a.emit(eventError, payload)
}

// EmergencyChanged emits override transitions.
func (a *App) EmergencyChanged(active bool) {
	a.emit(eventEmergency, active)
	a.emitLayout()
}

// LayoutChanged emits recomputed bar offsets.
func (a *App) LayoutChanged(offsets domain.BarOffsets) {
	a.emit(eventLayout, offsets)
}

func (a *App) emitLayout() {
	if a.requireReady() != nil {
		return
	}
	a.LayoutChanged(layout.Offsets(a.presence()))
}

func (a *App) emit(name string, payload any) {
	if a.ctx == nil {
		return
	}
	runtime.EventsEmit(a.ctx, name, payload)
}

func (a *App) emitMedia(name string, payload any) {
	a.emit(name, payload)
}

func (a *App) requireReady() error {
	if a.bootErr != nil {
		return a.bootErr
	}
	if a.services.Session == nil {
		return fmt.Errorf("application is not initialized")
	}
	return nil
}

func (a *App) requireStaff() error {
	if err := a.requireReady(); err != nil {
		return err
	}
	if !a.services.Prefs.StaffAuthenticated() {
		return errStaffLocked
	}
	return nil
}
