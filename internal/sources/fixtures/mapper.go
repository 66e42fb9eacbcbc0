package fixtures

import (
	"fmt"
	"strings"

	"github.com/MrSnakeDoc/uadb/internal/domain"
)

// defaultReadTime is used when an article carries no read time.
const defaultReadTime = "5 min"

// MapResult holds the normalized catalog plus counters for logging.
type MapResult struct {
	UserAgents []*domain.UserAgent
	Articles   []*domain.Article
	Skipped    int // entries dropped for a missing id
}

// Mapper converts catalog YAML entries to domain records
type Mapper struct{}

// NewMapper creates a new mapper instance
func NewMapper() *Mapper {
	return &Mapper{}
}

// MapCatalog normalizes every entry. Entries without an id are skipped,
// a duplicated id fails the whole catalog.
func (m *Mapper) MapCatalog(catalog CatalogFile) (MapResult, error) {
	res := MapResult{
		UserAgents: make([]*domain.UserAgent, 0, len(catalog.UserAgents)),
		Articles:   make([]*domain.Article, 0, len(catalog.Articles)),
	}

	seen := make(map[string]struct{}, len(catalog.UserAgents))
	for i, e := range catalog.UserAgents {
		id := strings.TrimSpace(e.ID)
		if id == "" {
			res.Skipped++
			continue
		}
		if _, dup := seen[id]; dup {
			return MapResult{}, fmt.Errorf("user agent #%d: duplicate id %q", i, id)
		}
		seen[id] = struct{}{}

		device := strings.TrimSpace(e.Device)
		res.UserAgents = append(res.UserAgents, &domain.UserAgent{
			ID:          id,
			Name:        strings.TrimSpace(e.Name),
			Value:       strings.TrimSpace(e.Value),
			Browser:     strings.TrimSpace(e.Browser),
			OS:          strings.TrimSpace(e.OS),
			Device:      device,
			Category:    normalizeCategory(e.Category, device),
			LastUpdated: strings.TrimSpace(e.LastUpdated),
			Popularity:  e.Popularity,
			Description: strings.TrimSpace(e.Description),
		})
	}

	seen = make(map[string]struct{}, len(catalog.Articles))
	for i, e := range catalog.Articles {
		id := strings.TrimSpace(e.ID)
		if id == "" {
			res.Skipped++
			continue
		}
		if _, dup := seen[id]; dup {
			return MapResult{}, fmt.Errorf("article #%d: duplicate id %q", i, id)
		}
		seen[id] = struct{}{}

		readTime := strings.TrimSpace(e.ReadTime)
		if readTime == "" {
			readTime = defaultReadTime
		}
		res.Articles = append(res.Articles, &domain.Article{
			ID:          id,
			Title:       strings.TrimSpace(e.Title),
			Summary:     strings.TrimSpace(e.Summary),
			Content:     strings.TrimSpace(e.Content),
			PublishDate: strings.TrimSpace(e.PublishDate),
			Category:    strings.TrimSpace(e.Category),
			ReadTime:    readTime,
		})
	}

	return res, nil
}

// normalizeCategory lowercases the declared category. When it is not one
// of the four known buckets, the device label is tried, then desktop.
func normalizeCategory(category, device string) domain.Category {
	if c := domain.Category(strings.ToLower(strings.TrimSpace(category))); c.Valid() {
		return c
	}
	if c := domain.Category(strings.ToLower(device)); c.Valid() {
		return c
	}
	return domain.CategoryDesktop
}
