package domain

// Preferences is the single preference aggregate: favorite genres (ordered,
// unique), favorite books (unique by id), and disliked book ids.
//
// Two invariants hold across all mutations:
//   - a book id is never in FavoriteBooks and DislikedBooks at the same time;
//     any operation that would violate this evicts the id from the opposing set
//   - favoriting a book unions its genres into FavoriteGenres
type Preferences struct {
	FavoriteGenres []string `json:"favoriteGenres"`
	FavoriteBooks  []Book   `json:"favoriteBooks"`
	DislikedBooks  []string `json:"dislikedBooks"`
}

// NewPreferences creates an empty aggregate.
func NewPreferences() *Preferences {
	return &Preferences{
		FavoriteGenres: []string{},
		FavoriteBooks:  []Book{},
		DislikedBooks:  []string{},
	}
}

// IsFavorite reports whether the book id is currently favorited.
func (p *Preferences) IsFavorite(bookID string) bool {
	return p.FavoriteByID(bookID) != nil
}

// FavoriteByID returns the favorited book with the given id, or nil.
func (p *Preferences) FavoriteByID(bookID string) *Book {
	probe := Book{ID: bookID}
	for i := range p.FavoriteBooks {
		if p.FavoriteBooks[i].Same(&probe) {
			return &p.FavoriteBooks[i]
		}
	}
	return nil
}

// IsDisliked reports whether the book id is currently disliked.
func (p *Preferences) IsDisliked(bookID string) bool {
	for _, id := range p.DislikedBooks {
		if id == bookID {
			return true
		}
	}
	return false
}

// AddFavorite inserts a book into favorites. It evicts the id from the
// disliked set and unions the book's genres into the favorite genres.
// Returns false if the book was already favorited.
func (p *Preferences) AddFavorite(book Book) bool {
	if p.IsFavorite(book.ID) {
		return false
	}

	p.FavoriteBooks = append(p.FavoriteBooks, book)
	p.RemoveDislike(book.ID)

	for _, genre := range book.Genres {
		p.AddGenre(genre)
	}

	return true
}

// RemoveFavorite evicts the book id from favorites.
// Returns false if the id was not favorited; removal is idempotent.
func (p *Preferences) RemoveFavorite(bookID string) bool {
	for i := range p.FavoriteBooks {
		if p.FavoriteBooks[i].ID == bookID {
			p.FavoriteBooks = append(p.FavoriteBooks[:i], p.FavoriteBooks[i+1:]...)
			return true
		}
	}
	return false
}

// AddDislike inserts the book id into the disliked set and evicts it from
// favorites. Returns false if the id was already disliked.
func (p *Preferences) AddDislike(bookID string) bool {
	if p.IsDisliked(bookID) {
		return false
	}

	p.DislikedBooks = append(p.DislikedBooks, bookID)
	p.RemoveFavorite(bookID)
	return true
}

// RemoveDislike evicts the book id from the disliked set.
// Returns false if the id was not disliked; removal is idempotent.
func (p *Preferences) RemoveDislike(bookID string) bool {
	for i, id := range p.DislikedBooks {
		if id == bookID {
			p.DislikedBooks = append(p.DislikedBooks[:i], p.DislikedBooks[i+1:]...)
			return true
		}
	}
	return false
}

// AddGenre appends a genre to the favorite genres, preserving insertion
// order. Returns false if the genre was already present.
func (p *Preferences) AddGenre(genre string) bool {
	for _, g := range p.FavoriteGenres {
		if g == genre {
			return false
		}
	}
	p.FavoriteGenres = append(p.FavoriteGenres, genre)
	return true
}

// RemoveGenre evicts a genre from the favorite genres.
// Returns false if the genre was not present.
func (p *Preferences) RemoveGenre(genre string) bool {
	for i, g := range p.FavoriteGenres {
		if g == genre {
			p.FavoriteGenres = append(p.FavoriteGenres[:i], p.FavoriteGenres[i+1:]...)
			return true
		}
	}
	return false
}
