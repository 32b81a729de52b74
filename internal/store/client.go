// Package store talks to the remote kiosk data store over HTTP and
// receives pushed staff-settings changes over a websocket.
package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"aspenkiosk/internal/domain"
)

const defaultVolumeCap = 70

// Client is the HTTP client for the remote data store.
type Client struct {
	baseURL    string
	httpClient *http.Client
	defaultCap int
}

// NewClient creates a store client for baseURL.
func NewClient(baseURL string, timeout time.Duration, defaultCap int) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	if defaultCap <= 0 || defaultCap > 100 {
		defaultCap = defaultVolumeCap
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		defaultCap: defaultCap,
	}
}

// SafeVolumeCap returns the staff-configured volume ceiling, or the default
// when the store is unavailable. Reads never fail the caller.
func (c *Client) SafeVolumeCap(ctx context.Context) int {
	var out struct {
		Cap int `json:"cap"`
	}
	if err := c.get(ctx, "/api/v1/settings/volume-cap", &out); err != nil {
		slog.Warn("volume cap unavailable, using default", "default", c.defaultCap, "err", err)
		return c.defaultCap
	}
	if out.Cap < 0 || out.Cap > 100 {
		slog.Warn("volume cap out of range, using default", "cap", out.Cap, "default", c.defaultCap)
		return c.defaultCap
	}
	return out.Cap
}

// UpdateVolumeCap writes a new volume ceiling.
func (c *Client) UpdateVolumeCap(ctx context.Context, cap int) error {
	body := struct {
		Cap int `json:"cap"`
	}{Cap: cap}
	return c.put(ctx, "/api/v1/settings/volume-cap", body, nil)
}

// IntakeState fetches the saved intake answers; nil when none exist.
func (c *Client) IntakeState(ctx context.Context) (*domain.IntakeState, error) {
	var out *domain.IntakeState
	if err := c.get(ctx, "/api/v1/intake", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// SaveIntakeState persists intake answers.
func (c *Client) SaveIntakeState(ctx context.Context, state domain.IntakeState) error {
	return c.put(ctx, "/api/v1/intake", state, nil)
}

// OTTSession fetches the last external streaming session; nil when none
// exists.
func (c *Client) OTTSession(ctx context.Context) (*domain.OTTSession, error) {
	var out *domain.OTTSession
	if err := c.get(ctx, "/api/v1/ott/session", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// SaveOTTSession persists the external streaming session.
func (c *Client) SaveOTTSession(ctx context.Context, session domain.OTTSession) error {
	return c.put(ctx, "/api/v1/ott/session", session, nil)
}

// EnabledOTTProviders lists the streaming providers staff has enabled.
func (c *Client) EnabledOTTProviders(ctx context.Context) ([]domain.OTTProvider, error) {
	var out struct {
		Providers []domain.OTTProvider `json:"providers"`
	}
	if err := c.get(ctx, "/api/v1/ott/providers", &out); err != nil {
		return nil, err
	}
	return out.Providers, nil
}

// SetEnabledOTTProviders replaces the enabled streaming providers.
func (c *Client) SetEnabledOTTProviders(ctx context.Context, providers []domain.OTTProvider) error {
	body := struct {
		Providers []domain.OTTProvider `json:"providers"`
	}{Providers: providers}
	return c.put(ctx, "/api/v1/ott/providers", body, nil)
}

// PlaylistsForLanguage lists curated playlists for language.
func (c *Client) PlaylistsForLanguage(ctx context.Context, language domain.Language) ([]domain.Playlist, error) {
	path := "/api/v1/playlists?" + url.Values{"language": {string(language)}}.Encode()
	var out []domain.Playlist
	if err := c.get(ctx, path, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// UserProfile fetches the patient profile; nil when none exists.
func (c *Client) UserProfile(ctx context.Context) (*domain.UserProfile, error) {
	var out *domain.UserProfile
	if err := c.get(ctx, "/api/v1/profile", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// SaveUserProfile persists the patient profile.
func (c *Client) SaveUserProfile(ctx context.Context, profile domain.UserProfile) error {
	return c.put(ctx, "/api/v1/profile", profile, nil)
}

// VerifyStaffPasscode checks a staff passcode against the store.
func (c *Client) VerifyStaffPasscode(ctx context.Context, passcode string) (bool, error) {
	body := struct {
		Passcode string `json:"passcode"`
	}{Passcode: passcode}
	var out struct {
		OK bool `json:"ok"`
	}
	if err := c.post(ctx, "/api/v1/staff/verify", body, &out); err != nil {
		return false, err
	}
	return out.OK, nil
}

// UpdateStaffPasscode replaces the staff passcode.
func (c *Client) UpdateStaffPasscode(ctx context.Context, passcode string) error {
	body := struct {
		Passcode string `json:"passcode"`
	}{Passcode: passcode}
	return c.put(ctx, "/api/v1/staff/passcode", body, nil)
}

// HeadsetBatteries lists the last known battery state of paired headsets.
func (c *Client) HeadsetBatteries(ctx context.Context) ([]domain.HeadsetBattery, error) {
	var out []domain.HeadsetBattery
	if err := c.get(ctx, "/api/v1/headsets", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateHeadsetBattery records a battery report for one headset.
func (c *Client) UpdateHeadsetBattery(ctx context.Context, deviceID string, level int, timestamp int64) error {
	body := struct {
		BatteryLevel int   `json:"batteryLevel"`
		Timestamp    int64 `json:"timestamp"`
	}{BatteryLevel: level, Timestamp: timestamp}
	return c.put(ctx, "/api/v1/headsets/"+url.PathEscape(deviceID)+"/battery", body, nil)
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, body, out)
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json; charset=utf-8")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if resp.StatusCode != http.StatusOK {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("bad status %s from %s: %s", resp.Status, path, strings.TrimSpace(string(detail)))
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response from %s: %w", path, err)
	}
	return nil
}
