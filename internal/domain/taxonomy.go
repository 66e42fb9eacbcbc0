package domain

import "strings"

// MatchKind selects which record field a taxonomy predicate inspects.
type MatchKind int

const (
	// MatchDevice includes a record when Device equals the label exactly.
	MatchDevice MatchKind = iota + 1
	// MatchOS includes a record when OS contains the label.
	MatchOS
)

// Predicate is a tagged filter variant: exactly one of ByDevice or ByOS.
type Predicate struct {
	Kind  MatchKind
	Label string
}

// ByDevice builds a predicate matching Device == label (case-sensitive).
func ByDevice(label string) Predicate { return Predicate{Kind: MatchDevice, Label: label} }

// ByOS builds a predicate matching strings.Contains(OS, label) (case-sensitive).
func ByOS(label string) Predicate { return Predicate{Kind: MatchOS, Label: label} }

// Match evaluates the predicate against a record.
func (p Predicate) Match(ua *UserAgent) bool {
	if ua == nil {
		return false
	}
	switch p.Kind {
	case MatchDevice:
		return ua.Device == p.Label
	case MatchOS:
		return strings.Contains(ua.OS, p.Label)
	default:
		return false
	}
}

// Taxonomy is one entry of the browse menu.
type Taxonomy struct {
	Key         string    `json:"key"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Predicate   Predicate `json:"-"`
}

// taxonomies mixes device-family and OS-family keys in one flat key space.
// Keep it that way: the category URLs are public.
var taxonomies = []Taxonomy{
	{
		Key:         "desktop",
		Title:       "Desktop User Agents",
		Description: "User agents for desktop browsers across various operating systems",
		Predicate:   ByDevice("Desktop"),
	},
	{
		Key:         "mobile",
		Title:       "Mobile User Agents",
		Description: "User agents for mobile devices and smartphones",
		Predicate:   ByDevice("Mobile"),
	},
	{
		Key:         "tablet",
		Title:       "Tablet User Agents",
		Description: "User agents specific to tablet devices",
		Predicate:   ByDevice("Tablet"),
	},
	{
		Key:         "ios",
		Title:       "iOS User Agents",
		Description: "User agents for iPhones, iPads and other Apple iOS devices",
		Predicate:   ByOS("iOS"),
	},
	{
		Key:         "android",
		Title:       "Android User Agents",
		Description: "User agents for Android phones, tablets and other devices",
		Predicate:   ByOS("Android"),
	},
	{
		Key:         "windows",
		Title:       "Windows User Agents",
		Description: "User agents for Windows operating systems",
		Predicate:   ByOS("Windows"),
	},
	{
		Key:         "macos",
		Title:       "macOS User Agents",
		Description: "User agents for Apple macOS operating systems",
		Predicate:   ByOS("macOS"),
	},
	{
		Key:         "linux",
		Title:       "Linux User Agents",
		Description: "User agents for Linux-based operating systems",
		Predicate:   ByOS("Linux"),
	},
	{
		Key:         "bot",
		Title:       "Bot User Agents",
		Description: "User agents for web crawlers, bots, and automated systems",
		Predicate:   ByDevice("Bot"),
	},
}

// AllTaxonomy is used for pages browsed without a (known) category.
var AllTaxonomy = Taxonomy{
	Key:         "",
	Title:       "All User Agents",
	Description: "Complete database of user agents for various browsers, devices, and operating systems",
}

var taxonomyByKey = func() map[string]Taxonomy {
	m := make(map[string]Taxonomy, len(taxonomies))
	for _, t := range taxonomies {
		m[t.Key] = t
	}
	return m
}()

// Taxonomies returns the browse menu in display order.
func Taxonomies() []Taxonomy {
	out := make([]Taxonomy, len(taxonomies))
	copy(out, taxonomies)
	return out
}

// LookupTaxonomy resolves a category token. Unknown tokens report ok=false.
func LookupTaxonomy(key string) (Taxonomy, bool) {
	t, ok := taxonomyByKey[key]
	return t, ok
}
