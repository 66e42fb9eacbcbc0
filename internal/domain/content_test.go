package domain

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseContent(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		expected []Block
	}{
		{
			name:     "plain paragraphs",
			content:  "First paragraph.\n\nSecond paragraph\nspans two lines.",
			expected: []Block{{Kind: BlockParagraph, Text: "First paragraph."}, {Kind: BlockParagraph, Text: "Second paragraph\nspans two lines."}},
		},
		{
			name:    "headings keep their level",
			content: "# Title\n\n## 1. Identify the Problem",
			expected: []Block{
				{Kind: BlockHeading, Level: 1, Text: "Title"},
				{Kind: BlockHeading, Level: 2, Text: "1. Identify the Problem"},
			},
		},
		{
			name:    "bullet list",
			content: "- **Safari**: CSS quirks\n- **Chrome vs. Firefox**: JS features",
			expected: []Block{
				{Kind: BlockList, Items: []string{"**Safari**: CSS quirks", "**Chrome vs. Firefox**: JS features"}},
			},
		},
		{
			name:    "fenced code with language and blank lines",
			content: "Intro:\n\n```javascript\nconst ua = navigator.userAgent;\n\nconsole.log(ua);\n```\n\nAfter.",
			expected: []Block{
				{Kind: BlockParagraph, Text: "Intro:"},
				{Kind: BlockCode, Language: "javascript", Text: "const ua = navigator.userAgent;\n\nconsole.log(ua);"},
				{Kind: BlockParagraph, Text: "After."},
			},
		},
		{
			name:     "fence without language",
			content:  "```\nMozilla/4.0 (compatible; MSIE 6.0; Windows NT 5.1)\n```",
			expected: []Block{{Kind: BlockCode, Text: "Mozilla/4.0 (compatible; MSIE 6.0; Windows NT 5.1)"}},
		},
		{
			name:     "unterminated fence runs to the end",
			content:  "```go\nfmt.Println(1)",
			expected: []Block{{Kind: BlockCode, Language: "go", Text: "fmt.Println(1)"}},
		},
		{
			name:     "only a dash plus space is stripped from list lines",
			content:  "- first\n-second\n-\tthird",
			expected: []Block{{Kind: BlockList, Items: []string{"first", "-second", "third"}}},
		},
		{
			name:     "dash without space is a paragraph",
			content:  "-not a list",
			expected: []Block{{Kind: BlockParagraph, Text: "-not a list"}},
		},
		{
			name:     "windows line endings",
			content:  "# Head\r\n\r\nBody",
			expected: []Block{{Kind: BlockHeading, Level: 1, Text: "Head"}, {Kind: BlockParagraph, Text: "Body"}},
		},
		{
			name:     "empty content",
			content:  "",
			expected: []Block{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseContent(tt.content)
			if diff := cmp.Diff(tt.expected, got); diff != "" {
				t.Errorf("ParseContent() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
