package domain

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func testAgents() []*UserAgent {
	return []*UserAgent{
		{ID: "1", Name: "Chrome 135 (Windows)", Value: "Mozilla/5.0 (Windows NT 10.0; Win64; x64) Chrome/135.0.0.0 Safari/537.36", Browser: "Chrome", OS: "Windows", Device: "Desktop", Category: CategoryDesktop},
		{ID: "2", Name: "Firefox 130 (Windows)", Value: "Mozilla/5.0 (Windows NT 10.0; rv:130.0) Gecko/20100101 Firefox/130.0", Browser: "Firefox", OS: "Windows", Device: "Desktop", Category: CategoryDesktop},
		{ID: "3", Name: "Safari 19 (macOS)", Value: "Mozilla/5.0 (Macintosh; Intel Mac OS X 14_5_1) Version/19.1 Safari/625.2.7", Browser: "Safari", OS: "macOS", Device: "Desktop", Category: CategoryDesktop},
		{ID: "4", Name: "Safari 19 (iOS 18)", Value: "Mozilla/5.0 (iPhone; CPU iPhone OS 18_0 like Mac OS X) Mobile/15E148", Browser: "Safari", OS: "iOS", Device: "Mobile", Category: CategoryMobile},
		{ID: "5", Name: "Chrome 135 (Android)", Value: "Mozilla/5.0 (Linux; Android 14; Pixel 8) Chrome/135.0.0.0 Mobile Safari/537.36", Browser: "Chrome", OS: "Android", Device: "Mobile", Category: CategoryMobile},
		{ID: "6", Name: "Safari 19 (iPadOS)", Value: "Mozilla/5.0 (iPad; CPU OS 18_0 like Mac OS X) Safari/604.1", Browser: "Safari", OS: "iPadOS", Device: "Tablet", Category: CategoryTablet},
		{ID: "7", Name: "Chrome 135 (Linux)", Value: "Mozilla/5.0 (X11; Linux x86_64) Chrome/135.0.0.0", Browser: "Chrome", OS: "Linux", Device: "Desktop", Category: CategoryDesktop},
		{ID: "8", Name: "Googlebot (2025)", Value: "Mozilla/5.0 (compatible; Googlebot/2.1; +http://www.google.com/bot.html)", Browser: "Googlebot", OS: "N/A", Device: "Bot", Category: CategoryBot},
	}
}

func ids(uas []*UserAgent) []string {
	out := make([]string, 0, len(uas))
	for _, ua := range uas {
		out = append(out, ua.ID)
	}
	return out
}

func TestFilterUserAgents(t *testing.T) {
	all := testAgents()

	tests := []struct {
		name     string
		category string
		query    string
		expected []string
	}{
		{name: "no filters returns everything", expected: []string{"1", "2", "3", "4", "5", "6", "7", "8"}},
		{name: "unknown category falls through", category: "smartwatch", expected: []string{"1", "2", "3", "4", "5", "6", "7", "8"}},
		{name: "whitespace query is no filter", query: "   \t", expected: []string{"1", "2", "3", "4", "5", "6", "7", "8"}},
		{name: "desktop by device", category: "desktop", expected: []string{"1", "2", "3", "7"}},
		{name: "mobile by device", category: "mobile", expected: []string{"4", "5"}},
		{name: "tablet by device", category: "tablet", expected: []string{"6"}},
		{name: "bot by device", category: "bot", expected: []string{"8"}},
		{name: "ios by os substring", category: "ios", expected: []string{"4"}},
		{name: "android by os substring", category: "android", expected: []string{"5"}},
		{name: "windows by os substring", category: "windows", expected: []string{"1", "2"}},
		{name: "macos by os substring", category: "macos", expected: []string{"3"}},
		{name: "linux by os substring", category: "linux", expected: []string{"7"}},
		{name: "query matches browser case-insensitively", query: "FIREFOX", expected: []string{"2"}},
		{name: "query matches value", query: "googlebot/2.1", expected: []string{"8"}},
		{name: "query matches device", query: "tablet", expected: []string{"6"}},
		{name: "query is trimmed", query: "  safari  ", expected: []string{"1", "3", "4", "5", "6"}},
		{name: "combined filter is conjunctive", category: "mobile", query: "chrome", expected: []string{"5"}},
		{name: "no match", query: "netscape", expected: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ids(FilterUserAgents(all, tt.category, tt.query))
			if diff := cmp.Diff(tt.expected, got); diff != "" {
				t.Errorf("FilterUserAgents(%q, %q) mismatch (-want +got):\n%s", tt.category, tt.query, diff)
			}
		})
	}
}

func TestFilterUserAgentsIdentityAndIdempotence(t *testing.T) {
	all := testAgents()

	if diff := cmp.Diff(all, FilterUserAgents(all, "", "")); diff != "" {
		t.Errorf("identity filter changed the input (-want +got):\n%s", diff)
	}

	first := FilterUserAgents(all, "desktop", "chrome")
	second := FilterUserAgents(all, "desktop", "chrome")
	if !cmp.Equal(first, second) {
		t.Errorf("same inputs gave different results: %v vs %v", ids(first), ids(second))
	}
}

func TestFilterUserAgentsEmptyInput(t *testing.T) {
	for _, cat := range []string{"", "bot", "ios", "nope"} {
		got := FilterUserAgents(nil, cat, "chrome")
		if diff := cmp.Diff([]*UserAgent{}, got, cmpopts.EquateEmpty()); diff != "" {
			t.Errorf("FilterUserAgents(nil, %q) = %v, want empty", cat, got)
		}
	}
}

func TestFilterUserAgentsBrowserSubstrings(t *testing.T) {
	all := testAgents()
	for _, ua := range all {
		for i := 0; i < len(ua.Browser); i++ {
			for j := i + 1; j <= len(ua.Browser); j++ {
				sub := strings.ToUpper(ua.Browser[i:j])
				if strings.TrimSpace(sub) == "" {
					continue
				}
				if !containsID(FilterUserAgents(all, "", sub), ua.ID) {
					t.Fatalf("query %q should include record %s (%s)", sub, ua.ID, ua.Browser)
				}
			}
		}
	}
}

func TestFilterUserAgentsCategoryExactness(t *testing.T) {
	all := testAgents()

	for _, ua := range FilterUserAgents(all, "bot", "") {
		if ua.Device != "Bot" {
			t.Errorf("bot filter returned device %q", ua.Device)
		}
	}
	for _, ua := range FilterUserAgents(all, "ios", "") {
		if !strings.Contains(ua.OS, "iOS") {
			t.Errorf("ios filter returned os %q", ua.OS)
		}
	}
}

func TestFilterUserAgentsScenario(t *testing.T) {
	all := []*UserAgent{{ID: "ff", Browser: "Firefox", OS: "Windows", Device: "Desktop", Category: CategoryDesktop}}

	if got := ids(FilterUserAgents(all, "desktop", "firefox")); !cmp.Equal(got, []string{"ff"}) {
		t.Errorf("desktop+firefox = %v, want [ff]", got)
	}
	if got := FilterUserAgents(all, "desktop", "safari"); len(got) != 0 {
		t.Errorf("desktop+safari = %v, want empty", ids(got))
	}
}

func TestFilterUserAgentsDoesNotMutateInput(t *testing.T) {
	all := testAgents()
	before := cmp.Diff(testAgents(), all)

	_ = FilterUserAgents(all, "mobile", "safari")

	if after := cmp.Diff(testAgents(), all); after != before {
		t.Errorf("input was modified:\n%s", after)
	}
}

func TestSearch(t *testing.T) {
	all := testAgents()

	if got := ids(Search(all, "")); !cmp.Equal(got, []string{"1", "2", "3", "4", "5", "6"}) {
		t.Errorf("blank search = %v, want first %d", got, FeaturedCount)
	}
	if got := ids(Search(all, "android")); !cmp.Equal(got, []string{"5"}) {
		t.Errorf("search android = %v, want [5]", got)
	}
	if got := Search(all[:2], " "); len(got) != 2 {
		t.Errorf("blank search over short catalog returned %d records", len(got))
	}
}

func TestFilterArticlesByCategory(t *testing.T) {
	all := []*Article{
		{ID: "1", Category: "Development"},
		{ID: "2", Category: "JavaScript"},
		{ID: "3", Category: "Development"},
	}

	tests := []struct {
		name     string
		category string
		expected []string
	}{
		{name: "no category", category: "", expected: []string{"1", "2", "3"}},
		{name: "exact match", category: "Development", expected: []string{"1", "3"}},
		{name: "case-sensitive", category: "development", expected: []string{}},
		{name: "unknown", category: "Privacy", expected: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := make([]string, 0)
			for _, a := range FilterArticlesByCategory(all, tt.category) {
				got = append(got, a.ID)
			}
			if diff := cmp.Diff(tt.expected, got); diff != "" {
				t.Errorf("FilterArticlesByCategory(%q) mismatch (-want +got):\n%s", tt.category, diff)
			}
		})
	}
}

func TestArticleCategories(t *testing.T) {
	all := []*Article{
		{ID: "1", Category: "Development"},
		{ID: "2", Category: "JavaScript"},
		{ID: "3", Category: "Development"},
	}

	got := ArticleCategories(all)
	if diff := cmp.Diff([]string{"Development", "JavaScript"}, got); diff != "" {
		t.Errorf("ArticleCategories() mismatch (-want +got):\n%s", diff)
	}

	if got := ArticleCategories(nil); len(got) != 0 {
		t.Errorf("ArticleCategories(nil) = %v, want empty", got)
	}
}

func TestRelatedUserAgents(t *testing.T) {
	all := testAgents()

	got := ids(RelatedUserAgents(all, all[0], 2))
	if diff := cmp.Diff([]string{"2", "3"}, got); diff != "" {
		t.Errorf("RelatedUserAgents() mismatch (-want +got):\n%s", diff)
	}

	if got := RelatedUserAgents(all, all[7], 2); len(got) != 0 {
		t.Errorf("only bot should have no related records, got %v", ids(got))
	}
}

func TestRelatedArticles(t *testing.T) {
	all := []*Article{{ID: "1"}, {ID: "2"}, {ID: "3"}}

	got := make([]string, 0)
	for _, a := range RelatedArticles(all, all[1], 2) {
		got = append(got, a.ID)
	}
	if diff := cmp.Diff([]string{"1", "3"}, got); diff != "" {
		t.Errorf("RelatedArticles() mismatch (-want +got):\n%s", diff)
	}
}

func containsID(uas []*UserAgent, id string) bool {
	for _, ua := range uas {
		if ua.ID == id {
			return true
		}
	}
	return false
}
