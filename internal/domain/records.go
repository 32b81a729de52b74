package domain

// Language selects the patient's preferred content language.
type Language string

const (
	LanguageEnglish Language = "english"
	LanguageHindi   Language = "hindi"
	LanguageKannada Language = "kannada"
	LanguageTamil   Language = "tamil"
	LanguageTelugu  Language = "telugu"
)

// Mood captures what the patient wants from the session.
type Mood string

const (
	MoodDistract Mood = "distract"
	MoodRelax    Mood = "relax"
	MoodListen   Mood = "listen"
)

// Vibe refines the mood into a content direction.
type Vibe string

const (
	VibeFocus   Vibe = "focus"
	VibeNurture Vibe = "nurture"
	VibeEscape  Vibe = "escape"
)

// ProfileType is the patient audience bucket.
type ProfileType string

const (
	ProfileKid    ProfileType = "kid"
	ProfileTeen   ProfileType = "teen"
	ProfileAdult  ProfileType = "adult"
	ProfileSenior ProfileType = "senior"
)

// MediaProvider is an external music platform.
type MediaProvider string

const (
	MediaProviderSpotify      MediaProvider = "spotify"
	MediaProviderYouTubeMusic MediaProvider = "youtubeMusic"
	MediaProviderAppleMusic   MediaProvider = "appleMusic"
)

// OTTProvider is an external video streaming platform.
type OTTProvider string

const (
	OTTProviderNetflix    OTTProvider = "netflix"
	OTTProviderHotstar    OTTProvider = "hotstar"
	OTTProviderPrimeVideo OTTProvider = "primeVideo"
	OTTProviderYouTube    OTTProvider = "youtube"
)

// PlaylistCategory groups curated playlists.
type PlaylistCategory string

const (
	CategoryBollywoodClassics PlaylistCategory = "bollywoodClassics"
	CategoryUpbeat            PlaylistCategory = "upbeat"
	CategoryKannadaHits       PlaylistCategory = "kannadaHits"
)

// SubscriptionFlag marks playlists that need a premium subscription.
type SubscriptionFlag string

const (
	SubscriptionPremium SubscriptionFlag = "premium"
	SubscriptionFree    SubscriptionFlag = "free"
)

// Playlist is a curated external playlist record from the store.
type Playlist struct {
	ID          string           `json:"id"`
	URL         string           `json:"url"`
	Title       string           `json:"title"`
	Provider    MediaProvider    `json:"provider"`
	PremiumFlag SubscriptionFlag `json:"premiumFlag"`
	Language    Language         `json:"language"`
	Category    PlaylistCategory `json:"category"`
}

// IntakeState holds the patient's intake answers.
type IntakeState struct {
	Mood         Mood        `json:"mood,omitempty"`
	Vibe         Vibe        `json:"vibe,omitempty"`
	Language     Language    `json:"language"`
	AnxietyLevel int         `json:"anxietyLevel"`
	Profile      ProfileType `json:"profile,omitempty"`
}

// OTTSession remembers the last external streaming session.
type OTTSession struct {
	Provider  OTTProvider `json:"provider"`
	LastTitle string      `json:"lastTitle,omitempty"`
	Timestamp int64       `json:"timestamp"`
}

// UserProfile is the patient profile record from the store.
type UserProfile struct {
	Name        string      `json:"name"`
	ProfileType ProfileType `json:"profileType,omitempty"`
}

// HeadsetBattery is the last reported battery state of a paired headset.
type HeadsetBattery struct {
	DeviceID     string `json:"deviceId"`
	BatteryLevel int    `json:"batteryLevel"`
	LastUpdated  int64  `json:"lastUpdated"`
}

// StoreUpdateKind names one pushed staff-settings change.
type StoreUpdateKind string

const (
	StoreUpdateVolumeCap    StoreUpdateKind = "volume_cap"
	StoreUpdateOTTProviders StoreUpdateKind = "ott_providers"
)

// StoreUpdate is one staff-settings change pushed by the store.
type StoreUpdate struct {
	Kind         StoreUpdateKind `json:"kind"`
	VolumeCap    int             `json:"volumeCap,omitempty"`
	OTTProviders []OTTProvider   `json:"ottProviders,omitempty"`
}
