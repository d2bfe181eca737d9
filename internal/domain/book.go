// Package domain contains the core business entities and domain logic for the BookMuse recommendation server.
package domain

// Book represents one recommendable work, whether it came from the demo
// catalog or from a generative model response.
type Book struct {
	ID              string   `json:"id"`
	Title           string   `json:"title"`
	Author          string   `json:"author"`
	Description     string   `json:"description"`
	CoverImage      string   `json:"coverImage"`
	Genres          []string `json:"genre"`
	Rating          *float64 `json:"rating,omitempty"`
	PublicationYear *int     `json:"publicationYear,omitempty"`
}

// Same reports whether two books are the same entity.
// Identity is carried by ID alone; all other fields are mutable metadata.
func (b *Book) Same(other *Book) bool {
	return b.ID != "" && b.ID == other.ID
}
