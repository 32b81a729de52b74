// Package fallback decides whether a failed playable item gets an
// external-platform fallback link, and centralizes the kiosk's external
// destination tables.
package fallback

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"aspenkiosk/internal/domain"
)

// Resolver maps failed item ids to external destinations. It carries no
// retry or timing logic.
type Resolver struct {
	links map[string]string
}

// NewResolver builds a resolver from the built-in link table, merged with an
// optional JSON overrides file mapping item id to URL. A missing file is
// treated the same as no file.
func NewResolver(overridesPath string) (*Resolver, error) {
	links := defaultItems()

	if strings.TrimSpace(overridesPath) != "" {
		contents, err := os.ReadFile(overridesPath)
		if err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("failed to read fallback links file %q: %w", overridesPath, err)
			}
		} else {
			var overrides map[string]string
			if err := json.Unmarshal(contents, &overrides); err != nil {
				return nil, fmt.Errorf("failed to parse fallback links file %q: %w", overridesPath, err)
			}
			for id, url := range overrides {
				if strings.TrimSpace(url) == "" {
					delete(links, id)
					continue
				}
				links[id] = url
			}
		}
	}

	return &Resolver{links: links}, nil
}

// Resolve returns the fallback URL for itemID when a playback error is
// present and a mapping exists. Otherwise ok is false and the UI shows only
// the bare error.
func (r *Resolver) Resolve(kind domain.ErrorKind, itemID string) (url string, ok bool) {
	if kind == domain.ErrorKindNone {
		return "", false
	}
	url, ok = r.links[itemID]
	return url, ok
}
