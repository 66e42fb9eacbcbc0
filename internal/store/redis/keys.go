package redis

const (
	// KeyPrefixUserAgent is the prefix for mirrored user agent records
	KeyPrefixUserAgent = "uadb:useragent:"
	// KeyPrefixArticle is the prefix for mirrored advice articles
	KeyPrefixArticle = "uadb:article:"
	// KeyUserAgentOrder is the list of user agent IDs in catalog order
	KeyUserAgentOrder = "uadb:useragents:order"
	// KeyArticleOrder is the list of article IDs in catalog order
	KeyArticleOrder = "uadb:articles:order"
	// KeyCatalogSyncedAt holds the RFC 3339 time of the last mirror write
	KeyCatalogSyncedAt = "uadb:catalog:synced_at"

	// KeySiteSettings holds the JSON-encoded site settings
	KeySiteSettings = "uadb:settings:site"
	// KeyAutoUpdateSettings holds the JSON-encoded auto-update settings
	KeyAutoUpdateSettings = "uadb:settings:autoupdate"
)

// UserAgentKey returns the Redis key for a user agent record by ID
func UserAgentKey(id string) string {
	return KeyPrefixUserAgent + id
}

// ArticleKey returns the Redis key for an article by ID
func ArticleKey(id string) string {
	return KeyPrefixArticle + id
}

func recordKeys(ids []string, keyFn func(string) string) []string {
	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = keyFn(id)
	}
	return keys
}
