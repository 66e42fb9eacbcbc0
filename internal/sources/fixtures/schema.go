package fixtures

// CatalogFile is the root structure of a catalog YAML file.
type CatalogFile struct {
	UserAgents []UserAgentEntry `yaml:"userAgents"`
	Articles   []ArticleEntry   `yaml:"articles"`
}

// UserAgentEntry is one user agent record as written in YAML.
type UserAgentEntry struct {
	ID          string  `yaml:"id"`
	Name        string  `yaml:"name"`
	Value       string  `yaml:"value"`
	Browser     string  `yaml:"browser"`
	OS          string  `yaml:"os"`
	Device      string  `yaml:"device"`
	LastUpdated string  `yaml:"lastUpdated"`
	Popularity  float64 `yaml:"popularity"`
	Category    string  `yaml:"category"`
	Description string  `yaml:"description"`
}

// ArticleEntry is one advice article as written in YAML.
type ArticleEntry struct {
	ID          string `yaml:"id"`
	Title       string `yaml:"title"`
	Summary     string `yaml:"summary"`
	Content     string `yaml:"content"`
	PublishDate string `yaml:"publishDate"`
	Category    string `yaml:"category"`
	ReadTime    string `yaml:"readTime"`
}
