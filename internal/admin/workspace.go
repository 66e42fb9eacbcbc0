package admin

import (
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/MrSnakeDoc/uadb/internal/domain"
)

const (
	dateLayout      = "2006-01-02"
	defaultReadTime = "5 min"
)

// Workspace is an admin session's private copy of the catalog.
// Edits stay in the workspace and never reach the catalog store.
type Workspace struct {
	mu         sync.Mutex
	userAgents []*domain.UserAgent
	articles   []*domain.Article

	// every id ever held by the workspace, deleted ones included
	usedUserAgentIDs map[string]struct{}
	usedArticleIDs   map[string]struct{}

	now   func() time.Time
	newID func() string
}

// NewWorkspace clones the given records into a fresh workspace.
func NewWorkspace(userAgents []*domain.UserAgent, articles []*domain.Article) *Workspace {
	w := &Workspace{
		userAgents: make([]*domain.UserAgent, 0, len(userAgents)),
		articles:   make([]*domain.Article, 0, len(articles)),

		usedUserAgentIDs: make(map[string]struct{}, len(userAgents)),
		usedArticleIDs:   make(map[string]struct{}, len(articles)),

		now:        time.Now,
		newID:      uuid.NewString,
	}
	for _, ua := range userAgents {
		if ua != nil {
			w.userAgents = append(w.userAgents, ua.Clone())
			w.usedUserAgentIDs[ua.ID] = struct{}{}
		}
	}
	for _, a := range articles {
		if a != nil {
			w.articles = append(w.articles, a.Clone())
			w.usedArticleIDs[a.ID] = struct{}{}
		}
	}
	return w
}

// ─────────────────────────────
// User agents
// ─────────────────────────────

// UserAgents lists records whose name, browser or OS contains query,
// case-insensitively. A blank query lists everything.
func (w *Workspace) UserAgents(query string) []*domain.UserAgent {
	needle := strings.ToLower(strings.TrimSpace(query))

	w.mu.Lock()
	defer w.mu.Unlock()

	out := make([]*domain.UserAgent, 0, len(w.userAgents))
	for _, ua := range w.userAgents {
		if needle == "" || containsAny(needle, ua.Name, ua.Browser, ua.OS) {
			out = append(out, ua.Clone())
		}
	}
	return out
}

// UserAgent returns a copy of one record.
func (w *Workspace) UserAgent(id string) (*domain.UserAgent, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	i := w.userAgentIndex(id)
	if i < 0 {
		return nil, fmt.Errorf("user agent %q: %w", id, ErrNotFound)
	}
	return w.userAgents[i].Clone(), nil
}

// AddUserAgent appends ua. An empty id is replaced by a fresh one. An id
// the workspace has ever held, even a deleted one, is a conflict.
func (w *Workspace) AddUserAgent(ua domain.UserAgent) (*domain.UserAgent, error) {
	if err := w.normalizeUserAgent(&ua); err != nil {
		return nil, err
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	ua.ID = strings.TrimSpace(ua.ID)
	if ua.ID == "" {
		ua.ID = freshID(w.newID, w.usedUserAgentIDs)
	} else if _, used := w.usedUserAgentIDs[ua.ID]; used {
		return nil, fmt.Errorf("user agent %q: %w", ua.ID, ErrConflict)
	}

	w.usedUserAgentIDs[ua.ID] = struct{}{}
	w.userAgents = append(w.userAgents, &ua)
	return ua.Clone(), nil
}

// UpdateUserAgent replaces every field of record id with ua's.
func (w *Workspace) UpdateUserAgent(id string, ua domain.UserAgent) (*domain.UserAgent, error) {
	if err := w.normalizeUserAgent(&ua); err != nil {
		return nil, err
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	i := w.userAgentIndex(id)
	if i < 0 {
		return nil, fmt.Errorf("user agent %q: %w", id, ErrNotFound)
	}
	ua.ID = id
	w.userAgents[i] = &ua
	return ua.Clone(), nil
}

// DeleteUserAgent removes record id.
func (w *Workspace) DeleteUserAgent(id string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	i := w.userAgentIndex(id)
	if i < 0 {
		return fmt.Errorf("user agent %q: %w", id, ErrNotFound)
	}
	w.userAgents = slices.Delete(w.userAgents, i, i+1)
	return nil
}

func (w *Workspace) userAgentIndex(id string) int {
	return slices.IndexFunc(w.userAgents, func(ua *domain.UserAgent) bool { return ua.ID == id })
}

func (w *Workspace) normalizeUserAgent(ua *domain.UserAgent) error {
	trim(&ua.Name, &ua.Value, &ua.Browser, &ua.OS, &ua.Device, &ua.LastUpdated, &ua.Description)

	if missing := firstEmpty(
		field{"name", ua.Name}, field{"value", ua.Value}, field{"browser", ua.Browser},
		field{"os", ua.OS}, field{"device", ua.Device},
	); missing != "" {
		return fmt.Errorf("%w: %s is required", ErrInvalid, missing)
	}
	if ua.Popularity < 0 || ua.Popularity > 100 {
		return fmt.Errorf("%w: popularity must be between 0 and 100", ErrInvalid)
	}
	if !ua.Category.Valid() {
		ua.Category = domain.CategoryDesktop
	}
	if ua.LastUpdated == "" {
		ua.LastUpdated = w.now().Format(dateLayout)
	}
	return nil
}

// ─────────────────────────────
// Articles
// ─────────────────────────────

// Articles lists articles whose title or category contains query,
// case-insensitively. A blank query lists everything.
func (w *Workspace) Articles(query string) []*domain.Article {
	needle := strings.ToLower(strings.TrimSpace(query))

	w.mu.Lock()
	defer w.mu.Unlock()

	out := make([]*domain.Article, 0, len(w.articles))
	for _, a := range w.articles {
		if needle == "" || containsAny(needle, a.Title, a.Category) {
			out = append(out, a.Clone())
		}
	}
	return out
}

// Article returns a copy of one article.
func (w *Workspace) Article(id string) (*domain.Article, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	i := w.articleIndex(id)
	if i < 0 {
		return nil, fmt.Errorf("article %q: %w", id, ErrNotFound)
	}
	return w.articles[i].Clone(), nil
}

// AddArticle appends a. An empty id is replaced by a fresh one. Deleted
// ids are never handed out again.
func (w *Workspace) AddArticle(a domain.Article) (*domain.Article, error) {
	if err := w.normalizeArticle(&a); err != nil {
		return nil, err
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	a.ID = strings.TrimSpace(a.ID)
	if a.ID == "" {
		a.ID = freshID(w.newID, w.usedArticleIDs)
	} else if _, used := w.usedArticleIDs[a.ID]; used {
		return nil, fmt.Errorf("article %q: %w", a.ID, ErrConflict)
	}

	w.usedArticleIDs[a.ID] = struct{}{}
	w.articles = append(w.articles, &a)
	return a.Clone(), nil
}

// UpdateArticle replaces every field of article id with a's.
func (w *Workspace) UpdateArticle(id string, a domain.Article) (*domain.Article, error) {
	if err := w.normalizeArticle(&a); err != nil {
		return nil, err
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	i := w.articleIndex(id)
	if i < 0 {
		return nil, fmt.Errorf("article %q: %w", id, ErrNotFound)
	}
	a.ID = id
	w.articles[i] = &a
	return a.Clone(), nil
}

// DeleteArticle removes article id.
func (w *Workspace) DeleteArticle(id string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	i := w.articleIndex(id)
	if i < 0 {
		return fmt.Errorf("article %q: %w", id, ErrNotFound)
	}
	w.articles = slices.Delete(w.articles, i, i+1)
	return nil
}

func (w *Workspace) articleIndex(id string) int {
	return slices.IndexFunc(w.articles, func(a *domain.Article) bool { return a.ID == id })
}

func (w *Workspace) normalizeArticle(a *domain.Article) error {
	trim(&a.Title, &a.Summary, &a.Content, &a.Category, &a.PublishDate, &a.ReadTime)

	if missing := firstEmpty(
		field{"title", a.Title}, field{"summary", a.Summary},
		field{"content", a.Content}, field{"category", a.Category},
	); missing != "" {
		return fmt.Errorf("%w: %s is required", ErrInvalid, missing)
	}
	if a.PublishDate == "" {
		a.PublishDate = w.now().Format(dateLayout)
	}
	if a.ReadTime == "" {
		a.ReadTime = defaultReadTime
	}
	return nil
}

// ─────────────────────────────
// helpers
// ─────────────────────────────

func freshID(gen func() string, used map[string]struct{}) string {
	for {
		id := gen()
		if _, taken := used[id]; !taken {
			return id
		}
	}
}

func trim(fields ...*string) {
	for _, f := range fields {
		*f = strings.TrimSpace(*f)
	}
}

type field struct{ name, value string }

// firstEmpty returns the name of the first field with an empty value.
func firstEmpty(fields ...field) string {
	for _, f := range fields {
		if f.value == "" {
			return f.name
		}
	}
	return ""
}

// containsAny expects needle to be already lowercased.
func containsAny(needle string, fields ...string) bool {
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), needle) {
			return true
		}
	}
	return false
}
