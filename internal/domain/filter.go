package domain

import "strings"

// FilterUserAgents returns the records of all matching both the category
// token and the free-text query, in input order.
//
// An empty or unknown category applies no category filter. A blank query
// (after trimming) applies no text filter. The query is matched
// case-insensitively as a substring of Name, Value, Browser, OS or Device,
// each field tested on its own.
//
// The result is always a fresh slice; all is never modified.
func FilterUserAgents(all []*UserAgent, category, query string) []*UserAgent {
	tax, hasCategory := LookupTaxonomy(category)
	needle := normalizeQuery(query)

	result := make([]*UserAgent, 0, len(all))
	for _, ua := range all {
		if hasCategory && !tax.Predicate.Match(ua) {
			continue
		}
		if needle != "" && !matchesText(ua, needle) {
			continue
		}
		result = append(result, ua)
	}
	return result
}

// SearchFields returns the fields a free-text query is tested against.
func (ua *UserAgent) SearchFields() []string {
	return []string{ua.Name, ua.Value, ua.Browser, ua.OS, ua.Device}
}

// matchesText expects needle to be already lowercased.
func matchesText(ua *UserAgent, needle string) bool {
	if ua == nil {
		return false
	}
	for _, field := range ua.SearchFields() {
		if strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}
	return false
}

func normalizeQuery(q string) string {
	return strings.ToLower(strings.TrimSpace(q))
}

// FeaturedCount is how many records the home page shows before a search.
const FeaturedCount = 6

// Search backs the home page search box: the first FeaturedCount records for
// a blank query, otherwise every record matching the query.
func Search(all []*UserAgent, query string) []*UserAgent {
	if normalizeQuery(query) == "" {
		return firstN(all, FeaturedCount)
	}
	return FilterUserAgents(all, "", query)
}

// FilterArticlesByCategory returns the articles whose Category equals
// category exactly. An empty category returns every article.
func FilterArticlesByCategory(all []*Article, category string) []*Article {
	result := make([]*Article, 0, len(all))
	for _, a := range all {
		if a == nil {
			continue
		}
		if category != "" && a.Category != category {
			continue
		}
		result = append(result, a)
	}
	return result
}

// ArticleCategories returns the distinct article categories in
// first-occurrence order.
func ArticleCategories(all []*Article) []string {
	seen := make(map[string]bool, len(all))
	cats := make([]string, 0, len(all))
	for _, a := range all {
		if a == nil || seen[a.Category] {
			continue
		}
		seen[a.Category] = true
		cats = append(cats, a.Category)
	}
	return cats
}

// RelatedUserAgents returns up to n other records sharing ua's category.
func RelatedUserAgents(all []*UserAgent, ua *UserAgent, n int) []*UserAgent {
	n = max(n, 0)
	related := make([]*UserAgent, 0, n)
	if ua == nil {
		return related
	}
	for _, other := range all {
		if len(related) >= n {
			break
		}
		if other == nil || other.ID == ua.ID || other.Category != ua.Category {
			continue
		}
		related = append(related, other)
	}
	return related
}

// RelatedArticles returns up to n articles other than a.
func RelatedArticles(all []*Article, a *Article, n int) []*Article {
	n = max(n, 0)
	related := make([]*Article, 0, n)
	if a == nil {
		return related
	}
	for _, other := range all {
		if len(related) >= n {
			break
		}
		if other == nil || other.ID == a.ID {
			continue
		}
		related = append(related, other)
	}
	return related
}

func firstN(all []*UserAgent, n int) []*UserAgent {
	n = min(max(n, 0), len(all))
	out := make([]*UserAgent, n)
	copy(out, all[:n])
	return out
}
