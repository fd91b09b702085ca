package mangadex

// MangaListResponse is the envelope returned by GET /manga
type MangaListResponse struct {
	Result   string  `json:"result"`
	Response string  `json:"response,omitempty"`
	Data     []Manga `json:"data"`
	Limit    int     `json:"limit"`
	Offset   int     `json:"offset"`
	Total    int     `json:"total"`
}

// Manga is a single catalog entry
type Manga struct {
	ID            string          `json:"id"`
	Type          string          `json:"type"`
	Attributes    MangaAttributes `json:"attributes"`
	Relationships []Relationship  `json:"relationships,omitempty"`
}

// MangaAttributes holds the fields of a manga entry that the browser reads
type MangaAttributes struct {
	Title     map[string]string `json:"title"`
	Status    string            `json:"status,omitempty"`
	Year      int               `json:"year,omitempty"`
	CreatedAt string            `json:"createdAt,omitempty"`
	UpdatedAt string            `json:"updatedAt,omitempty"`
}

// Relationship links a manga to another entity (author, artist, cover_art, ...).
// Attributes are only present when the related type was requested via includes[].
type Relationship struct {
	ID         string                  `json:"id"`
	Type       string                  `json:"type"`
	Attributes *RelationshipAttributes `json:"attributes,omitempty"`
}

// RelationshipAttributes covers the expanded cover_art attributes
type RelationshipAttributes struct {
	FileName    string `json:"fileName,omitempty"`
	Volume      string `json:"volume,omitempty"`
	Description string `json:"description,omitempty"`
	Locale      string `json:"locale,omitempty"`
}

// Relationship type names
const (
	RelationshipCoverArt = "cover_art"
)
