// Package prefs is the tab-scoped preference store: language, staff auth,
// and intake answers live only for one kiosk session and tolerate absence.
package prefs

import (
	"encoding/json"
	"sync"

	"aspenkiosk/internal/domain"
)

// Keys mirror the kiosk's session storage names.
const (
	KeyLanguage  = "aspen-calm-language"
	KeyStaffAuth = "aspen-calm-staff-auth"
	KeyIntake    = "aspen-calm-intake"
)

// Prefs is an in-memory keyed string store bound to the application
// session. All reads are best effort; a missing key is not an error.
type Prefs struct {
	mu              sync.RWMutex
	values          map[string]string
	defaultLanguage domain.Language
}

// New creates an empty preference store.
func New(defaultLanguage domain.Language) *Prefs {
	if defaultLanguage == "" {
		defaultLanguage = domain.LanguageEnglish
	}
	return &Prefs{
		values:          make(map[string]string),
		defaultLanguage: defaultLanguage,
	}
}

// Get returns the raw value for key.
func (p *Prefs) Get(key string) (string, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	value, ok := p.values[key]
	return value, ok
}

// Set stores value under key.
func (p *Prefs) Set(key, value string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.values[key] = value
}

// Delete removes key.
func (p *Prefs) Delete(key string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.values, key)
}

// Language returns the stored language preference or the default.
func (p *Prefs) Language() domain.Language {
	if value, ok := p.Get(KeyLanguage); ok && value != "" {
		return domain.Language(value)
	}
	return p.defaultLanguage
}

// SetLanguage stores the language preference.
func (p *Prefs) SetLanguage(language domain.Language) {
	p.Set(KeyLanguage, string(language))
}

// StaffAuthenticated reports whether staff has unlocked the settings
// surface this session.
func (p *Prefs) StaffAuthenticated() bool {
	value, ok := p.Get(KeyStaffAuth)
	return ok && value == "true"
}

// SetStaffAuthenticated records or clears the staff auth flag.
func (p *Prefs) SetStaffAuthenticated(authenticated bool) {
	if authenticated {
		p.Set(KeyStaffAuth, "true")
		return
	}
	p.Delete(KeyStaffAuth)
}

// IntakeState returns the locally cached intake answers, if any.
func (p *Prefs) IntakeState() (*domain.IntakeState, bool) {
	value, ok := p.Get(KeyIntake)
	if !ok || value == "" {
		return nil, false
	}
	var state domain.IntakeState
	if err := json.Unmarshal([]byte(value), &state); err != nil {
		return nil, false
	}
	return &state, true
}

// SetIntakeState caches intake answers for the session. Failures are
// swallowed; the remote store remains the source of truth.
func (p *Prefs) SetIntakeState(state domain.IntakeState) {
	encoded, err := json.Marshal(state)
	if err != nil {
		return
	}
	p.Set(KeyIntake, string(encoded))
}
