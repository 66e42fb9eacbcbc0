package domain

// Article is a long-form advice entry.
//
// Content uses a tiny markdown-like syntax, see ParseContent.
type Article struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Summary     string `json:"summary"`
	Content     string `json:"content"`
	PublishDate string `json:"publishDate"` // YYYY-MM-DD
	Category    string `json:"category"`    // free text, not enumerated
	ReadTime    string `json:"readTime"`    // ex: "5 min"
}

// Clone returns a shallow copy; Article holds no reference fields.
func (a *Article) Clone() *Article {
	if a == nil {
		return nil
	}
	c := *a
	return &c
}
