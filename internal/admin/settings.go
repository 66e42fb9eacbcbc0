package admin

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/MrSnakeDoc/uadb/internal/domain"
)

// SiteSettings holds the general site configuration edited from the admin.
type SiteSettings struct {
	SiteName        string `json:"siteName"`
	SiteDescription string `json:"siteDescription"`
	AdminUsername   string `json:"adminUsername"`
	AdminEmail      string `json:"adminEmail"`
}

// DefaultSiteSettings returns the settings of a fresh install.
func DefaultSiteSettings() SiteSettings {
	return SiteSettings{
		SiteName:        "User Agent Database",
		SiteDescription: "Daily updated user agents for web development",
		AdminUsername:   "admin",
	}
}

// withDefaults fills blank fields from DefaultSiteSettings.
func (s SiteSettings) withDefaults() SiteSettings {
	def := DefaultSiteSettings()
	trim(&s.SiteName, &s.SiteDescription, &s.AdminUsername, &s.AdminEmail)
	if s.SiteName == "" {
		s.SiteName = def.SiteName
	}
	if s.SiteDescription == "" {
		s.SiteDescription = def.SiteDescription
	}
	if s.AdminUsername == "" {
		s.AdminUsername = def.AdminUsername
	}
	return s
}

// AutoUpdateSettings configures the scheduled catalog refresh.
// Runs are simulated: only LastRun is recorded.
type AutoUpdateSettings struct {
	SourceURL string          `json:"sourceUrl"`
	Enabled   bool            `json:"enabled"`
	Schedule  domain.Schedule `json:"schedule"`
	LastRun   *time.Time      `json:"lastRun"`
	NextRun   *time.Time      `json:"nextRun"`
}

// DefaultAutoUpdateSettings returns disabled auto-update settings.
func DefaultAutoUpdateSettings() AutoUpdateSettings {
	return AutoUpdateSettings{Schedule: domain.DefaultSchedule()}
}

// SettingsStore persists the admin settings.
// Load on an empty store returns the defaults, not an error.
type SettingsStore interface {
	LoadSite(ctx context.Context) (SiteSettings, error)
	SaveSite(ctx context.Context, s SiteSettings) error
	LoadAutoUpdate(ctx context.Context) (AutoUpdateSettings, error)
	SaveAutoUpdate(ctx context.Context, s AutoUpdateSettings) error
}

// Settings applies validation and scheduling rules on top of a SettingsStore.
type Settings struct {
	mu    sync.Mutex // serializes read-modify-write cycles
	store SettingsStore
	now   func() time.Time
}

func NewSettings(store SettingsStore) *Settings {
	return &Settings{store: store, now: time.Now}
}

// Site returns the current site settings.
func (s *Settings) Site(ctx context.Context) (SiteSettings, error) {
	site, err := s.store.LoadSite(ctx)
	if err != nil {
		return SiteSettings{}, fmt.Errorf("failed to load site settings: %w", err)
	}
	return site.withDefaults(), nil
}

// SaveSite stores site, blank fields falling back to their defaults.
func (s *Settings) SaveSite(ctx context.Context, site SiteSettings) (SiteSettings, error) {
	site = site.withDefaults()
	if site.AdminEmail != "" && !strings.Contains(site.AdminEmail, "@") {
		return SiteSettings{}, fmt.Errorf("%w: admin email is not a valid address", ErrInvalid)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.SaveSite(ctx, site); err != nil {
		return SiteSettings{}, fmt.Errorf("failed to save site settings: %w", err)
	}
	return site, nil
}

// AutoUpdate returns the current auto-update settings.
func (s *Settings) AutoUpdate(ctx context.Context) (AutoUpdateSettings, error) {
	au, err := s.store.LoadAutoUpdate(ctx)
	if err != nil {
		return AutoUpdateSettings{}, fmt.Errorf("failed to load auto-update settings: %w", err)
	}
	return au, nil
}

// SaveAutoUpdate validates and stores in, recomputing NextRun.
// LastRun is owned by RunNow and is kept from the stored settings.
func (s *Settings) SaveAutoUpdate(ctx context.Context, in AutoUpdateSettings) (AutoUpdateSettings, error) {
	in.SourceURL = strings.TrimSpace(in.SourceURL)
	if in.Enabled && in.SourceURL == "" {
		return AutoUpdateSettings{}, fmt.Errorf("%w: a source URL is required to enable auto-update", ErrInvalid)
	}
	if in.SourceURL != "" {
		if err := validateSourceURL(in.SourceURL); err != nil {
			return AutoUpdateSettings{}, err
		}
	}
	if in.Schedule.Frequency == "" {
		in.Schedule.Frequency = domain.FrequencyDaily
	}
	if err := in.Schedule.Validate(); err != nil {
		return AutoUpdateSettings{}, fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.store.LoadAutoUpdate(ctx)
	if err != nil {
		return AutoUpdateSettings{}, fmt.Errorf("failed to load auto-update settings: %w", err)
	}
	in.LastRun = current.LastRun
	in.NextRun = nil
	if in.Enabled {
		if next, ok := domain.NextRun(in.Schedule, s.now()); ok {
			in.NextRun = &next
		}
	}

	if err := s.store.SaveAutoUpdate(ctx, in); err != nil {
		return AutoUpdateSettings{}, fmt.Errorf("failed to save auto-update settings: %w", err)
	}
	return in, nil
}

// RunNow records a manual run. It requires a saved source URL.
func (s *Settings) RunNow(ctx context.Context) (AutoUpdateSettings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	au, err := s.store.LoadAutoUpdate(ctx)
	if err != nil {
		return AutoUpdateSettings{}, fmt.Errorf("failed to load auto-update settings: %w", err)
	}
	if au.SourceURL == "" {
		return AutoUpdateSettings{}, fmt.Errorf("%w: save a source URL first", ErrInvalid)
	}

	now := s.now()
	au.LastRun = &now
	if err := s.store.SaveAutoUpdate(ctx, au); err != nil {
		return AutoUpdateSettings{}, fmt.Errorf("failed to save auto-update settings: %w", err)
	}
	return au, nil
}

func validateSourceURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: source URL must be an absolute http(s) URL", ErrInvalid)
	}
	return nil
}

// MemoryStore is a process-local SettingsStore.
type MemoryStore struct {
	mu         sync.RWMutex
	site       SiteSettings
	autoUpdate AutoUpdateSettings
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		site:       DefaultSiteSettings(),
		autoUpdate: DefaultAutoUpdateSettings(),
	}
}

func (m *MemoryStore) LoadSite(context.Context) (SiteSettings, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.site, nil
}

func (m *MemoryStore) SaveSite(_ context.Context, s SiteSettings) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.site = s
	return nil
}

func (m *MemoryStore) LoadAutoUpdate(context.Context) (AutoUpdateSettings, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.autoUpdate, nil
}

func (m *MemoryStore) SaveAutoUpdate(_ context.Context, s AutoUpdateSettings) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.autoUpdate = s
	return nil
}
