package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/go-cmp/cmp"
	"github.com/redis/go-redis/v9"

	"github.com/MrSnakeDoc/uadb/internal/admin"
	"github.com/MrSnakeDoc/uadb/internal/domain"
)

func newTestClient(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, client
}

func mirrorFixture() ([]*domain.UserAgent, []*domain.Article) {
	return []*domain.UserAgent{
			{ID: "3", Name: "Googlebot", Category: domain.CategoryBot},
			{ID: "1", Name: "Chrome on Windows", Category: domain.CategoryDesktop, Popularity: 65.2},
			{ID: "2", Name: "Safari on iPhone", Category: domain.CategoryMobile},
		}, []*domain.Article{
			{ID: "b", Title: "Privacy", Category: "Security"},
			{ID: "a", Title: "Basics", Category: "Development"},
		}
}

func TestSaveLoadCatalogKeepsOrder(t *testing.T) {
	_, client := newTestClient(t)
	store := NewStore(client)
	ctx := context.Background()

	uas, arts := mirrorFixture()
	if err := store.SaveCatalog(ctx, uas, arts); err != nil {
		t.Fatalf("SaveCatalog() error = %v", err)
	}

	gotUAs, gotArts, err := store.LoadCatalog(ctx)
	if err != nil {
		t.Fatalf("LoadCatalog() error = %v", err)
	}
	if diff := cmp.Diff(uas, gotUAs); diff != "" {
		t.Errorf("user agents mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(arts, gotArts); diff != "" {
		t.Errorf("articles mismatch (-want +got):\n%s", diff)
	}
}

func TestSaveCatalogReplacesOrder(t *testing.T) {
	_, client := newTestClient(t)
	store := NewStore(client)
	ctx := context.Background()

	uas, arts := mirrorFixture()
	if err := store.SaveCatalog(ctx, uas, arts); err != nil {
		t.Fatalf("SaveCatalog() error = %v", err)
	}
	if err := store.SaveCatalog(ctx, uas[1:2], nil); err != nil {
		t.Fatalf("SaveCatalog() error = %v", err)
	}

	gotUAs, gotArts, err := store.LoadCatalog(ctx)
	if err != nil {
		t.Fatalf("LoadCatalog() error = %v", err)
	}
	if len(gotUAs) != 1 || gotUAs[0].ID != "1" {
		t.Errorf("LoadCatalog() user agents = %+v, want only record 1", gotUAs)
	}
	if len(gotArts) != 0 {
		t.Errorf("LoadCatalog() articles = %+v, want none", gotArts)
	}
}

func TestLoadCatalogSkipsExpiredRecords(t *testing.T) {
	mr, client := newTestClient(t)
	store := NewStore(client)
	ctx := context.Background()

	uas, arts := mirrorFixture()
	if err := store.SaveCatalog(ctx, uas, arts); err != nil {
		t.Fatalf("SaveCatalog() error = %v", err)
	}
	if ttl := mr.TTL(UserAgentKey("1")); ttl != DefaultRecordTTL {
		t.Errorf("record TTL = %v, want %v", ttl, DefaultRecordTTL)
	}

	mr.Del(UserAgentKey("1"))

	gotUAs, _, err := store.LoadCatalog(ctx)
	if err != nil {
		t.Fatalf("LoadCatalog() error = %v", err)
	}
	var ids []string
	for _, ua := range gotUAs {
		ids = append(ids, ua.ID)
	}
	if diff := cmp.Diff([]string{"3", "2"}, ids); diff != "" {
		t.Errorf("LoadCatalog() ids mismatch (-want +got):\n%s", diff)
	}

	mr.FastForward(DefaultRecordTTL + time.Second)

	gotUAs, gotArts, err := store.LoadCatalog(ctx)
	if err != nil {
		t.Fatalf("LoadCatalog() after expiry error = %v", err)
	}
	if len(gotUAs) != 0 || len(gotArts) != 0 {
		t.Errorf("LoadCatalog() after expiry = %d user agents, %d articles, want none", len(gotUAs), len(gotArts))
	}
}

func TestLoadCatalogEmptyMirror(t *testing.T) {
	_, client := newTestClient(t)
	store := NewStore(client)

	uas, arts, err := store.LoadCatalog(context.Background())
	if err != nil {
		t.Fatalf("LoadCatalog() error = %v", err)
	}
	if uas == nil || arts == nil || len(uas) != 0 || len(arts) != 0 {
		t.Errorf("LoadCatalog() = %v, %v, want empty non-nil slices", uas, arts)
	}
}

func TestLoadCatalogCorruptRecord(t *testing.T) {
	mr, client := newTestClient(t)
	store := NewStore(client)
	ctx := context.Background()

	uas, arts := mirrorFixture()
	if err := store.SaveCatalog(ctx, uas, arts); err != nil {
		t.Fatalf("SaveCatalog() error = %v", err)
	}
	if err := mr.Set(ArticleKey("a"), "{not json"); err != nil {
		t.Fatalf("miniredis Set() error = %v", err)
	}

	if _, _, err := store.LoadCatalog(ctx); err == nil {
		t.Error("LoadCatalog() should fail on a corrupt record")
	}
}

func TestSyncedAt(t *testing.T) {
	mr, client := newTestClient(t)
	store := NewStore(client)
	ctx := context.Background()

	got, err := store.SyncedAt(ctx)
	if err != nil {
		t.Fatalf("SyncedAt() error = %v", err)
	}
	if !got.IsZero() {
		t.Errorf("SyncedAt() before any save = %v, want zero", got)
	}

	before := time.Now().Add(-time.Second)
	if err := store.SaveCatalog(ctx, nil, nil); err != nil {
		t.Fatalf("SaveCatalog() error = %v", err)
	}
	got, err = store.SyncedAt(ctx)
	if err != nil {
		t.Fatalf("SyncedAt() error = %v", err)
	}
	if got.Before(before.Truncate(time.Second)) || got.After(time.Now().Add(time.Second)) {
		t.Errorf("SyncedAt() = %v, want around now", got)
	}

	if err := mr.Set(KeyCatalogSyncedAt, "yesterday"); err != nil {
		t.Fatalf("miniredis Set() error = %v", err)
	}
	if _, err := store.SyncedAt(ctx); err == nil {
		t.Error("SyncedAt() should reject a malformed timestamp")
	}
}

func TestPing(t *testing.T) {
	mr, client := newTestClient(t)
	store := NewStore(client)

	if err := store.Ping(context.Background()); err != nil {
		t.Fatalf("Ping() error = %v", err)
	}
	mr.Close()
	if err := store.Ping(context.Background()); err == nil {
		t.Error("Ping() should fail once the server is gone")
	}
}

func TestSettingsStoreDefaults(t *testing.T) {
	_, client := newTestClient(t)
	store := NewSettingsStore(client)
	ctx := context.Background()

	site, err := store.LoadSite(ctx)
	if err != nil {
		t.Fatalf("LoadSite() error = %v", err)
	}
	if diff := cmp.Diff(admin.DefaultSiteSettings(), site); diff != "" {
		t.Errorf("LoadSite() on empty store mismatch (-want +got):\n%s", diff)
	}

	au, err := store.LoadAutoUpdate(ctx)
	if err != nil {
		t.Fatalf("LoadAutoUpdate() error = %v", err)
	}
	if diff := cmp.Diff(admin.DefaultAutoUpdateSettings(), au); diff != "" {
		t.Errorf("LoadAutoUpdate() on empty store mismatch (-want +got):\n%s", diff)
	}
}

func TestSettingsStoreRoundTrip(t *testing.T) {
	mr, client := newTestClient(t)
	store := NewSettingsStore(client)
	ctx := context.Background()

	site := admin.SiteSettings{
		SiteName:        "UA Lab",
		SiteDescription: "Test catalog",
		AdminUsername:   "root",
		AdminEmail:      "root@example.com",
	}
	if err := store.SaveSite(ctx, site); err != nil {
		t.Fatalf("SaveSite() error = %v", err)
	}
	gotSite, err := store.LoadSite(ctx)
	if err != nil {
		t.Fatalf("LoadSite() error = %v", err)
	}
	if diff := cmp.Diff(site, gotSite); diff != "" {
		t.Errorf("LoadSite() mismatch (-want +got):\n%s", diff)
	}

	lastRun := time.Date(2025, time.April, 2, 9, 0, 0, 0, time.UTC)
	au := admin.AutoUpdateSettings{
		SourceURL: "https://example.com/ua.json",
		Enabled:   true,
		Schedule:  domain.Schedule{Enabled: true, Frequency: domain.FrequencyWeekly, Time: "08:00", Day: "Friday"},
		LastRun:   &lastRun,
	}
	if err := store.SaveAutoUpdate(ctx, au); err != nil {
		t.Fatalf("SaveAutoUpdate() error = %v", err)
	}
	gotAU, err := store.LoadAutoUpdate(ctx)
	if err != nil {
		t.Fatalf("LoadAutoUpdate() error = %v", err)
	}
	if diff := cmp.Diff(au, gotAU); diff != "" {
		t.Errorf("LoadAutoUpdate() mismatch (-want +got):\n%s", diff)
	}

	if mr.TTL(KeySiteSettings) != 0 {
		t.Error("settings must not expire")
	}
}

func TestSettingsStoreCorruptValue(t *testing.T) {
	mr, client := newTestClient(t)
	store := NewSettingsStore(client)

	if err := mr.Set(KeySiteSettings, "{broken"); err != nil {
		t.Fatalf("miniredis Set() error = %v", err)
	}
	if _, err := store.LoadSite(context.Background()); err == nil {
		t.Error("LoadSite() should fail on a corrupt document")
	}
}
