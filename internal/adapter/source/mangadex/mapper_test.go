package mangadex

import (
	"testing"

	"github.com/Urdemonlord/mangagueh/internal/domain"
)

func TestDisplayTitle(t *testing.T) {
	tests := []struct {
		name  string
		title map[string]string
		want  string
	}{
		{name: "english", title: map[string]string{"en": "One Piece"}, want: "One Piece"},
		{name: "english among others", title: map[string]string{"ja": "ワンピース", "en": "One Piece"}, want: "One Piece"},
		{name: "no english", title: map[string]string{"ja-ro": "Wan Pisu"}, want: "Untitled Manga"},
		{name: "empty english", title: map[string]string{"en": ""}, want: "Untitled Manga"},
		{name: "nil map", title: nil, want: "Untitled Manga"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := Manga{ID: "x", Attributes: MangaAttributes{Title: tt.title}}
			if got := DisplayTitle(m); got != tt.want {
				t.Errorf("DisplayTitle() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCoverImageURL(t *testing.T) {
	tests := []struct {
		name string
		rels []Relationship
		want string
	}{
		{
			name: "cover art present",
			rels: []Relationship{
				{ID: "a1", Type: "author"},
				{ID: "c1", Type: "cover_art", Attributes: &RelationshipAttributes{FileName: "cover.jpg"}},
			},
			want: "https://uploads.mangadex.org/covers/m-1/cover.jpg",
		},
		{
			name: "first cover wins",
			rels: []Relationship{
				{ID: "c1", Type: "cover_art", Attributes: &RelationshipAttributes{FileName: "first.png"}},
				{ID: "c2", Type: "cover_art", Attributes: &RelationshipAttributes{FileName: "second.png"}},
			},
			want: "https://uploads.mangadex.org/covers/m-1/first.png",
		},
		{
			name: "no cover relationship",
			rels: []Relationship{{ID: "a1", Type: "author"}},
			want: domain.PlaceholderCover,
		},
		{
			name: "no relationships",
			rels: nil,
			want: domain.PlaceholderCover,
		},
		{
			name: "cover without attributes",
			rels: []Relationship{{ID: "c1", Type: "cover_art"}},
			want: domain.PlaceholderCover,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := Manga{ID: "m-1", Relationships: tt.rels}
			if got := CoverImageURL(m, DefaultCDNURL); got != tt.want {
				t.Errorf("CoverImageURL() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDetailURL(t *testing.T) {
	got := DetailURL("https://mangadex.org/", "abc-123")
	if got != "https://mangadex.org/title/abc-123" {
		t.Errorf("DetailURL() = %q", got)
	}
}

func TestMapPage(t *testing.T) {
	resp := &MangaListResponse{
		Data: []Manga{
			{ID: "1", Attributes: MangaAttributes{Title: map[string]string{"en": "First"}}},
			{ID: "2"},
		},
		Total: 37,
	}

	page := MapPage(resp, DefaultCDNURL, DefaultSiteURL)

	if page.TotalPages != 3 {
		t.Errorf("TotalPages = %d, want 3", page.TotalPages)
	}
	if page.Total != 37 {
		t.Errorf("Total = %d, want 37", page.Total)
	}
	if len(page.Items) != 2 {
		t.Fatalf("len(Items) = %d, want 2", len(page.Items))
	}
	if page.Items[0].ID != "1" || page.Items[1].ID != "2" {
		t.Errorf("items out of order: %+v", page.Items)
	}
	if page.Items[1].DisplayTitle != domain.UntitledManga {
		t.Errorf("Items[1].DisplayTitle = %q", page.Items[1].DisplayTitle)
	}
	if page.Items[1].DetailURL != "https://mangadex.org/title/2" {
		t.Errorf("Items[1].DetailURL = %q", page.Items[1].DetailURL)
	}
}
