package fallback

import "aspenkiosk/internal/domain"

// SpotifyPlaylists maps language and category slug to curated playlist URLs.
var SpotifyPlaylists = map[domain.Language]map[string]string{
	domain.LanguageKannada: {
		"hits":     "https://open.spotify.com/playlist/37i9dQZF1DWZqTcNLmb3sH",
		"classics": "https://open.spotify.com/playlist/37i9dQZF1DWZd79rJ6a7lp",
	},
	domain.LanguageHindi: {
		"hits":     "https://open.spotify.com/playlist/37i9dQZF1DX0XUfTFmNBRM",
		"classics": "https://open.spotify.com/playlist/4hgLMZWGcTH9bPFJYegzpM",
	},
	domain.LanguageTelugu: {
		"hits":     "https://open.spotify.com/playlist/37i9dQZF1DX6XE7HRLM75P",
		"classics": "https://open.spotify.com/playlist/37i9dQZF1DX44F1QWqYoaV",
	},
	domain.LanguageTamil: {
		"hits":     "https://open.spotify.com/playlist/1uvSuVApwODnOSBGkpBiR6",
		"classics": "https://open.spotify.com/playlist/37i9dQZF1DX4Gs5Zzqe0Zy",
	},
	domain.LanguageEnglish: {
		"lofi":     "https://open.spotify.com/playlist/37i9dQZF1DWWQRwui0ExPn",
		"classics": "https://open.spotify.com/playlist/37i9dQZF1DWTJ7xPn4vNaz",
	},
}

// AudioPharmacySpotify holds the curated Audio Pharmacy collections.
var AudioPharmacySpotify = map[string]string{
	"deep-focus":         "https://open.spotify.com/playlist/37i9dQZF1DWZeKCadgRdKQ",
	"peaceful-piano":     "https://open.spotify.com/playlist/37i9dQZF1DX4sWSpwq3LiO",
	"ambient-relaxation": "https://open.spotify.com/playlist/37i9dQZF1DWZd79rJ6a7lp",
	"nature-sounds":      "https://open.spotify.com/playlist/37i9dQZF1DX4PP3DA4J0N8",
}

// KidsCartoonFavorite is a one-tap quick pick for the kids profile.
type KidsCartoonFavorite struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	EmbedURL    string `json:"embedUrl,omitempty"`
	ExternalURL string `json:"externalUrl"`
}

// KidsCartoonFavorites lists the kids quick picks in display order.
var KidsCartoonFavorites = []KidsCartoonFavorite{
	{ID: "peppa-pig", Title: "Peppa Pig", ExternalURL: "https://www.youtube.com/results?search_query=peppa+pig+full+episodes"},
	{ID: "shinchan", Title: "Shinchan", ExternalURL: "https://www.youtube.com/results?search_query=shin+chan+episodes"},
	{ID: "bluey", Title: "Bluey", ExternalURL: "https://www.youtube.com/results?search_query=bluey+full+episodes"},
	{ID: "paw-patrol", Title: "PAW Patrol", ExternalURL: "https://www.youtube.com/results?search_query=paw+patrol+full+episodes"},
	{ID: "spongebob", Title: "SpongeBob SquarePants", ExternalURL: "https://www.youtube.com/results?search_query=spongebob+squarepants+full+episodes"},
	{ID: "daniel-tiger", Title: "Daniel Tiger's Neighborhood", ExternalURL: "https://www.youtube.com/results?search_query=daniel+tiger+full+episodes"},
}

// AudiobookCategories maps audience and category slug to external
// destinations.
var AudiobookCategories = map[string]map[string]string{
	"kids": {
		"short-stories":  "https://www.youtube.com/results?search_query=kids+short+stories+audiobook",
		"light-fiction":  "https://www.youtube.com/results?search_query=children+fiction+audiobook",
		"inspirational":  "https://www.youtube.com/results?search_query=inspirational+stories+for+kids+audiobook",
		"comedy":         "https://www.youtube.com/results?search_query=funny+stories+for+kids+audiobook",
		"travel-memoirs": "https://www.youtube.com/results?search_query=adventure+stories+for+kids+audiobook",
	},
	"adults": {
		"short-stories":  "https://www.youtube.com/results?search_query=short+stories+audiobook+adults",
		"light-fiction":  "https://www.youtube.com/results?search_query=light+fiction+audiobook",
		"inspirational":  "https://www.youtube.com/results?search_query=inspirational+audiobook",
		"comedy":         "https://www.youtube.com/results?search_query=comedy+audiobook",
		"travel-memoirs": "https://www.youtube.com/results?search_query=travel+memoir+audiobook",
	},
}

// OTTProviderURLs maps streaming providers to their home pages.
var OTTProviderURLs = map[domain.OTTProvider]string{
	domain.OTTProviderNetflix:    "https://www.netflix.com",
	domain.OTTProviderPrimeVideo: "https://www.primevideo.com",
	domain.OTTProviderHotstar:    "https://www.hotstar.com",
	domain.OTTProviderYouTube:    "https://www.youtube.com",
}

// MediaProviderURLs maps music providers to their home pages.
var MediaProviderURLs = map[domain.MediaProvider]string{
	domain.MediaProviderSpotify:      "https://open.spotify.com",
	domain.MediaProviderYouTubeMusic: "https://music.youtube.com",
	domain.MediaProviderAppleMusic:   "https://music.apple.com",
}

// defaultitems maps built-in playable item ids to the external destination
// offered when local playback fails.
func defaultItems() map[string]string {
	return map[string]string{
		// Audio Pharmacy built-in programs.
		"sonic-shield":  "https://www.youtube.com/results?search_query=brown+noise+3+hours+sleep",
		"deep-zen":      "https://www.youtube.com/results?search_query=4hz+theta+waves+meditation",
		"garden-escape": "https://www.youtube.com/results?search_query=432hz+nature+sounds+relaxation",
		// Visual Escapes loops.
		"virtual-window": "https://www.youtube.com/results?search_query=4k+drone+footage+silent+nature",
		"ocean-nature":   "https://www.youtube.com/results?search_query=4k+ocean+waves+nature+sounds",
	}
}
