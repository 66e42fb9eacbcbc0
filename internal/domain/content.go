package domain

import (
	"strings"
	"unicode"
)

// BlockKind identifies how an article block is rendered.
type BlockKind string

const (
	BlockParagraph BlockKind = "paragraph"
	BlockHeading   BlockKind = "heading"
	BlockCode      BlockKind = "code"
	BlockList      BlockKind = "list"
)

// Block is one rendered unit of article content.
type Block struct {
	Kind     BlockKind `json:"kind"`
	Text     string    `json:"text,omitempty"`     // paragraph, heading and code body
	Level    int       `json:"level,omitempty"`    // heading only: number of leading '#'
	Language string    `json:"language,omitempty"` // code only: fence info string
	Items    []string  `json:"items,omitempty"`    // list only
}

const fence = "```"

// ParseContent splits article content into blocks.
//
// Blocks are separated by blank lines. A fenced code block runs from an
// opening ``` line to the next ``` line and may contain blank lines.
// A block starting with '#' is a heading, one starting with "- " is a bullet
// list, anything else is a paragraph.
func ParseContent(content string) []Block {
	lines := strings.Split(strings.ReplaceAll(content, "\r\n", "\n"), "\n")
	blocks := make([]Block, 0, 8)

	var chunk []string
	flush := func() {
		if len(chunk) > 0 {
			blocks = append(blocks, classify(chunk))
			chunk = nil
		}
	}

	for i := 0; i < len(lines); i++ {
		line := lines[i]

		if strings.HasPrefix(line, fence) {
			flush()
			lang := strings.TrimSpace(strings.TrimPrefix(line, fence))
			var body []string
			for i++; i < len(lines) && !strings.HasPrefix(lines[i], fence); i++ {
				body = append(body, lines[i])
			}
			blocks = append(blocks, Block{
				Kind:     BlockCode,
				Language: lang,
				Text:     strings.Join(body, "\n"),
			})
			continue
		}

		if strings.TrimSpace(line) == "" {
			flush()
			continue
		}
		chunk = append(chunk, line)
	}
	flush()

	return blocks
}

func classify(chunk []string) Block {
	first := chunk[0]

	switch {
	case strings.HasPrefix(first, "#"):
		level := len(first) - len(strings.TrimLeft(first, "#"))
		text := strings.Join(chunk, "\n")
		text = strings.TrimLeft(text, "#")
		text = strings.TrimPrefix(text, " ")
		return Block{Kind: BlockHeading, Level: level, Text: text}

	case strings.HasPrefix(first, "- "):
		items := make([]string, 0, len(chunk))
		for _, l := range chunk {
			items = append(items, trimBullet(l))
		}
		return Block{Kind: BlockList, Items: items}

	default:
		return Block{Kind: BlockParagraph, Text: strings.Join(chunk, "\n")}
	}
}

// trimBullet drops a leading "-" plus one whitespace character, as a unit.
func trimBullet(line string) string {
	if len(line) >= 2 && line[0] == '-' && unicode.IsSpace(rune(line[1])) {
		return line[2:]
	}
	return line
}
