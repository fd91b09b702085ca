package mangadex

import (
	"fmt"
	"strings"

	"github.com/Urdemonlord/mangagueh/internal/domain"
)

// MapPage converts a listing response to a domain page
func MapPage(resp *MangaListResponse, cdnURL, siteURL string) *domain.PageResult {
	items := make([]domain.ResultItem, 0, len(resp.Data))
	for _, m := range resp.Data {
		items = append(items, MapManga(m, cdnURL, siteURL))
	}
	return &domain.PageResult{
		Items:      items,
		Total:      resp.Total,
		TotalPages: domain.TotalPages(resp.Total),
	}
}

// MapManga converts a single manga entry to a display item
func MapManga(m Manga, cdnURL, siteURL string) domain.ResultItem {
	return domain.ResultItem{
		ID:            m.ID,
		DisplayTitle:  DisplayTitle(m),
		CoverImageURL: CoverImageURL(m, cdnURL),
		DetailURL:     DetailURL(siteURL, m.ID),
	}
}

// DisplayTitle prefers the English title, falling back to a fixed placeholder
func DisplayTitle(m Manga) string {
	if title := m.Attributes.Title["en"]; title != "" {
		return title
	}
	return domain.UntitledManga
}

// CoverImageURL builds the CDN URL of the first cover_art relationship.
// Entries without a cover, or whose cover carries no file name, get the placeholder.
func CoverImageURL(m Manga, cdnURL string) string {
	for _, rel := range m.Relationships {
		if rel.Type != RelationshipCoverArt {
			continue
		}
		if rel.Attributes == nil || rel.Attributes.FileName == "" {
			return domain.PlaceholderCover
		}
		return fmt.Sprintf("%s/covers/%s/%s", strings.TrimRight(cdnURL, "/"), m.ID, rel.Attributes.FileName)
	}
	return domain.PlaceholderCover
}

// DetailURL builds the catalog site page for a title
func DetailURL(siteURL, id string) string {
	return fmt.Sprintf("%s/title/%s", strings.TrimRight(siteURL, "/"), id)
}
