package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/bookmuse/bookmuse-server/internal/domain"
)

func (s *Server) registerBookRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "listBooks",
		Method:      http.MethodGet,
		Path:        "/api/v1/books",
		Summary:     "List books",
		Description: "Returns the full catalog",
		Tags:        []string{"Books"},
	}, s.handleListBooks)

	huma.Register(s.api, huma.Operation{
		OperationID: "getBook",
		Method:      http.MethodGet,
		Path:        "/api/v1/books/{id}",
		Summary:     "Get book",
		Description: "Returns a book by ID, resolving favorites and recommendation ids",
		Tags:        []string{"Books"},
	}, s.handleGetBook)
}

// === DTOs ===

// BookResponse contains book data in API responses.
type BookResponse struct {
	ID              string   `json:"id" doc:"Book ID"`
	Title           string   `json:"title" doc:"Title"`
	Author          string   `json:"author,omitempty" doc:"Author name"`
	Description     string   `json:"description,omitempty" doc:"Short description"`
	CoverImage      string   `json:"coverImage,omitempty" doc:"Cover image URL"`
	Genres          []string `json:"genre" doc:"Genres"`
	Rating          *float64 `json:"rating,omitempty" doc:"Average rating"`
	PublicationYear *int     `json:"publicationYear,omitempty" doc:"Year of publication"`
}

func toBookResponse(b domain.Book) BookResponse {
	genres := b.Genres
	if genres == nil {
		genres = []string{}
	}
	return BookResponse{
		ID:              b.ID,
		Title:           b.Title,
		Author:          b.Author,
		Description:     b.Description,
		CoverImage:      b.CoverImage,
		Genres:          genres,
		Rating:          b.Rating,
		PublicationYear: b.PublicationYear,
	}
}

// ListBooksResponse contains a list of books.
type ListBooksResponse struct {
	Books []BookResponse `json:"books" doc:"List of books"`
}

// ListBooksOutput wraps the list books response for Huma.
type ListBooksOutput struct {
	Body ListBooksResponse
}

// GetBookInput contains parameters for getting a book.
type GetBookInput struct {
	ID string `path:"id" doc:"Book ID"`
}

// BookOutput wraps the book response for Huma.
type BookOutput struct {
	Body BookResponse
}

// === Handlers ===

func (s *Server) handleListBooks(ctx context.Context, _ *struct{}) (*ListBooksOutput, error) {
	books, err := s.services.Book.ListBooks(ctx)
	if err != nil {
		return nil, err
	}

	resp := make([]BookResponse, len(books))
	for i, b := range books {
		resp[i] = toBookResponse(b)
	}

	return &ListBooksOutput{Body: ListBooksResponse{Books: resp}}, nil
}

func (s *Server) handleGetBook(ctx context.Context, input *GetBookInput) (*BookOutput, error) {
	book, err := s.services.Book.GetBook(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	return &BookOutput{Body: toBookResponse(*book)}, nil
}
