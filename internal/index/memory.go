package index

import (
	"sync"
	"time"

	"github.com/MrSnakeDoc/uadb/internal/domain"
)

// snapshot is never mutated once published.
type snapshot struct {
	userAgents []*domain.UserAgent
	articles   []*domain.Article
	uaByID     map[string]int // ID -> position in userAgents
	artByID    map[string]int // ID -> position in articles
}

// MemoryIndex is the catalog store: an ordered, read-only view of the user
// agent records and advice articles. Update swaps the whole snapshot.
type MemoryIndex struct {
	mu         sync.RWMutex
	current    *snapshot
	lastReload time.Time // Timestamp of last Update
}

// NewMemoryIndex creates an empty index
func NewMemoryIndex() *MemoryIndex {
	return &MemoryIndex{current: buildSnapshot(nil, nil)}
}

func buildSnapshot(userAgents []*domain.UserAgent, articles []*domain.Article) *snapshot {
	s := &snapshot{
		userAgents: make([]*domain.UserAgent, 0, len(userAgents)),
		articles:   make([]*domain.Article, 0, len(articles)),
		uaByID:     make(map[string]int, len(userAgents)),
		artByID:    make(map[string]int, len(articles)),
	}
	for _, ua := range userAgents {
		if ua == nil {
			continue
		}
		s.uaByID[ua.ID] = len(s.userAgents)
		s.userAgents = append(s.userAgents, ua.Clone())
	}
	for _, a := range articles {
		if a == nil {
			continue
		}
		s.artByID[a.ID] = len(s.articles)
		s.articles = append(s.articles, a.Clone())
	}
	return s
}

// Update replaces the catalog. Records are copied so callers may keep
// mutating their own slices.
func (idx *MemoryIndex) Update(userAgents []*domain.UserAgent, articles []*domain.Article) {
	next := buildSnapshot(userAgents, articles)

	idx.mu.Lock()
	defer idx.mu.Unlock()

	idx.current = next
	idx.lastReload = time.Now()
}

func (idx *MemoryIndex) load() *snapshot {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	return idx.current
}

// AllUserAgents returns every record in insertion order.
// The returned records are shared and must be treated as read-only.
func (idx *MemoryIndex) AllUserAgents() []*domain.UserAgent {
	s := idx.load()
	out := make([]*domain.UserAgent, len(s.userAgents))
	copy(out, s.userAgents)
	return out
}

// AllArticles returns every article in insertion order.
// The returned articles are shared and must be treated as read-only.
func (idx *MemoryIndex) AllArticles() []*domain.Article {
	s := idx.load()
	out := make([]*domain.Article, len(s.articles))
	copy(out, s.articles)
	return out
}

// GetUserAgent retrieves a record by ID
func (idx *MemoryIndex) GetUserAgent(id string) (*domain.UserAgent, bool) {
	s := idx.load()
	pos, ok := s.uaByID[id]
	if !ok {
		return nil, false
	}
	return s.userAgents[pos], true
}

// GetArticle retrieves an article by ID
func (idx *MemoryIndex) GetArticle(id string) (*domain.Article, bool) {
	s := idx.load()
	pos, ok := s.artByID[id]
	if !ok {
		return nil, false
	}
	return s.articles[pos], true
}

// Count returns the number of user agent records
func (idx *MemoryIndex) Count() int {
	return len(idx.load().userAgents)
}

// ArticleCount returns the number of articles
func (idx *MemoryIndex) ArticleCount() int {
	return len(idx.load().articles)
}

// GetLastReload returns the timestamp of the last Update
func (idx *MemoryIndex) GetLastReload() time.Time {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	return idx.lastReload
}
