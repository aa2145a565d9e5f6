package config

import (
	"strings"
	"time"

	"fyne.io/fyne/v2"

	"github.com/ytget/tripwise/internal/platform"
)

// Settings keys for Fyne preferences
const (
	KeyAPIBaseURL       = "api_base_url"
	KeyConnectTimeout   = "connect_timeout_seconds"
	KeyRequestTimeout   = "request_timeout_seconds"
	KeySuggestionLimit  = "suggestion_limit"
	KeySubstringMatches = "substring_matches"
	KeyExportDir        = "export_directory"
	KeyAutoRevealExport = "auto_reveal_export"
	KeyLanguage         = "app_language"
	KeyShareURL         = "share_url"
)

// Default values
const (
	DefaultAPIBaseURL       = "http://localhost:8000/api"
	DefaultConnectTimeout   = 10
	DefaultRequestTimeout   = 120
	DefaultSuggestionLimit  = 8
	DefaultSubstringMatches = true
	DefaultLanguage         = "system"
	DefaultAutoRevealExport = true
)

// Bounds
const (
	MinConnectTimeout  = 1
	MaxConnectTimeout  = 60
	MinRequestTimeout  = 10
	MaxRequestTimeout  = 600
	MinSuggestionLimit = 1
	MaxSuggestionLimit = 20
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
	env Env
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app, env: Env{APIBaseURL: DefaultAPIBaseURL}}
}

// ApplyEnv sets the fallbacks used when a preference was never saved
func (s *Settings) ApplyEnv(env Env) {
	if env.APIBaseURL == "" {
		env.APIBaseURL = DefaultAPIBaseURL
	}
	s.env = env
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// GetAPIBaseURL returns the itinerary service base URL
func (s *Settings) GetAPIBaseURL() string {
	if v := s.app.Preferences().String(KeyAPIBaseURL); v != "" {
		return v
	}
	return s.env.APIBaseURL
}

// SetAPIBaseURL saves the base URL; empty restores the environment default
func (s *Settings) SetAPIBaseURL(url string) {
	url = strings.TrimRight(strings.TrimSpace(url), "/")
	s.app.Preferences().SetString(KeyAPIBaseURL, url)
}

// GetConnectTimeout returns the pre-check timeout
func (s *Settings) GetConnectTimeout() time.Duration {
	value := s.app.Preferences().IntWithFallback(KeyConnectTimeout, DefaultConnectTimeout)
	return time.Duration(clamp(value, MinConnectTimeout, MaxConnectTimeout)) * time.Second
}

// SetConnectTimeout sets the pre-check timeout in seconds
func (s *Settings) SetConnectTimeout(seconds int) {
	s.app.Preferences().SetInt(KeyConnectTimeout, clamp(seconds, MinConnectTimeout, MaxConnectTimeout))
}

// GetRequestTimeout returns the generation timeout
func (s *Settings) GetRequestTimeout() time.Duration {
	value := s.app.Preferences().IntWithFallback(KeyRequestTimeout, DefaultRequestTimeout)
	return time.Duration(clamp(value, MinRequestTimeout, MaxRequestTimeout)) * time.Second
}

// SetRequestTimeout sets the generation timeout in seconds
func (s *Settings) SetRequestTimeout(seconds int) {
	s.app.Preferences().SetInt(KeyRequestTimeout, clamp(seconds, MinRequestTimeout, MaxRequestTimeout))
}

// GetSuggestionLimit returns the maximum number of autocomplete rows
func (s *Settings) GetSuggestionLimit() int {
	value := s.app.Preferences().Int(KeySuggestionLimit)
	if value <= 0 {
		s.SetSuggestionLimit(DefaultSuggestionLimit)
		return DefaultSuggestionLimit
	}
	return clamp(value, MinSuggestionLimit, MaxSuggestionLimit)
}

// SetSuggestionLimit sets the maximum number of autocomplete rows
func (s *Settings) SetSuggestionLimit(limit int) {
	s.app.Preferences().SetInt(KeySuggestionLimit, clamp(limit, MinSuggestionLimit, MaxSuggestionLimit))
}

// GetSubstringMatches returns whether names containing the query also match
func (s *Settings) GetSubstringMatches() bool {
	return s.app.Preferences().BoolWithFallback(KeySubstringMatches, DefaultSubstringMatches)
}

// SetSubstringMatches toggles the substring ranking tier
func (s *Settings) SetSubstringMatches(enabled bool) {
	s.app.Preferences().SetBool(KeySubstringMatches, enabled)
}

// GetExportDirectory returns where exported itineraries are written
func (s *Settings) GetExportDirectory() string {
	dir := s.app.Preferences().String(KeyExportDir)
	if dir != "" {
		return dir
	}
	if s.env.ExportDir != "" {
		return s.env.ExportDir
	}
	defaultDir, err := platform.GetHomeDownloadsDir()
	if err != nil {
		defaultDir = "/tmp/downloads"
	}
	s.SetExportDirectory(defaultDir)
	return defaultDir
}

// SetExportDirectory sets the export directory
func (s *Settings) SetExportDirectory(dir string) {
	s.app.Preferences().SetString(KeyExportDir, dir)
}

// GetAutoRevealExport returns whether to reveal exported files
func (s *Settings) GetAutoRevealExport() bool {
	return s.app.Preferences().BoolWithFallback(KeyAutoRevealExport, DefaultAutoRevealExport)
}

// SetAutoRevealExport sets whether to reveal exported files
func (s *Settings) SetAutoRevealExport(autoReveal bool) {
	s.app.Preferences().SetBool(KeyAutoRevealExport, autoReveal)
}

// GetShareURL returns the link attached to shared plans
func (s *Settings) GetShareURL() string {
	if v := s.app.Preferences().String(KeyShareURL); v != "" {
		return v
	}
	if s.env.ShareURL != "" {
		return s.env.ShareURL
	}
	return DeriveShareURL(s.GetAPIBaseURL())
}

// SetShareURL saves the share link; empty derives it from the API base URL
func (s *Settings) SetShareURL(url string) {
	s.app.Preferences().SetString(KeyShareURL, strings.TrimSpace(url))
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}
