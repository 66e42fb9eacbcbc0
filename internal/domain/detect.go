package domain

import "strings"

const unknown = "Unknown"

// Detection is a best-effort guess of what sent a user-agent string.
type Detection struct {
	UserAgent string `json:"userAgent"`
	Browser   string `json:"browser"`
	OS        string `json:"os"`
	Device    string `json:"device"`
}

type sniffRule struct {
	tokens []string // any token matches
	except string   // rule is skipped when this token is present
	label  string
}

// Order matters: most user-agent strings carry several vendor tokens
// (Edge and Opera say "Chrome", Chrome says "Safari").
var browserRules = []sniffRule{
	{tokens: []string{"Firefox"}, label: "Mozilla Firefox"},
	{tokens: []string{"SamsungBrowser"}, label: "Samsung Browser"},
	{tokens: []string{"Opera", "OPR"}, label: "Opera"},
	{tokens: []string{"Edg"}, label: "Microsoft Edge"},
	{tokens: []string{"Chrome"}, label: "Google Chrome"},
	{tokens: []string{"Safari"}, except: "Chrome", label: "Safari"},
	{tokens: []string{"Trident", "MSIE"}, label: "Internet Explorer"},
}

// iOS tokens are checked before "Mac": iPhone strings contain "like Mac OS X".
var osRules = []sniffRule{
	{tokens: []string{"Win"}, label: "Windows"},
	{tokens: []string{"iPhone", "iPad", "iPod"}, label: "iOS"},
	{tokens: []string{"Mac"}, label: "macOS"},
	{tokens: []string{"Android"}, label: "Android"},
	{tokens: []string{"Linux"}, label: "Linux"},
}

var deviceRules = []sniffRule{
	{tokens: []string{"Mobile"}, label: "Mobile"},
	{tokens: []string{"Tablet"}, label: "Tablet"},
}

// Detect guesses browser, OS and device family from a raw user-agent string
// using ordered substring checks.
func Detect(ua string) Detection {
	device := sniff(ua, deviceRules)
	if device == unknown {
		device = "Desktop"
	}
	return Detection{
		UserAgent: ua,
		Browser:   sniff(ua, browserRules),
		OS:        sniff(ua, osRules),
		Device:    device,
	}
}

func sniff(ua string, rules []sniffRule) string {
	for _, r := range rules {
		if r.except != "" && strings.Contains(ua, r.except) {
			continue
		}
		for _, tok := range r.tokens {
			if strings.Contains(ua, tok) {
				return r.label
			}
		}
	}
	return unknown
}
