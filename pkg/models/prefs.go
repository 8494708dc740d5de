package models

import "golang.org/x/text/language"

// Prefs are user preferences.
type Prefs struct {
	Currency string         `json:"currency" example:"EUR"`   // ISO 4217 code
	Locale   language.Tag   `json:"locale" example:"de-DE"`   // Used for number formatting
	Theme    string         `json:"theme" example:"dark"`
	Sound    *SoundSettings `json:"sound,omitempty"` // Added with schema version 2
}

// SoundSettings controls audio feedback in clients.
type SoundSettings struct {
	Enabled bool    `json:"enabled"`
	Volume  float64 `json:"volume" example:"0.6"`
}

// PrefsUpdate is a partial update. Nil fields are left untouched.
type PrefsUpdate struct {
	Currency *string        `json:"currency,omitempty"`
	Locale   *language.Tag  `json:"locale,omitempty"`
	Theme    *string        `json:"theme,omitempty"`
	Sound    *SoundSettings `json:"sound,omitempty"`
}

// DefaultSoundSettings returns the sound settings used when none are stored.
func DefaultSoundSettings() *SoundSettings {
	return &SoundSettings{Enabled: true, Volume: 0.6}
}

// DefaultPrefs returns the preferences of a new budget.
func DefaultPrefs() Prefs {
	return Prefs{
		Currency: "USD",
		Locale:   language.AmericanEnglish,
		Theme:    "system",
		Sound:    DefaultSoundSettings(),
	}
}
