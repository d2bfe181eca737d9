package gemini

import (
	"encoding/json/v2"
	"log/slog"
	"time"

	"github.com/bookmuse/bookmuse-server/internal/domain"
)

// Normalize converts a provider payload into domain books. Identifiers
// are synthesized from the batch timestamp and the entry's position, so
// positions stay stable even when a malformed entry is skipped. Entries
// that fail to decode are dropped individually; the rest of the batch
// survives.
func Normalize(p *Payload, batch time.Time, logger *slog.Logger) []domain.Book {
	books := make([]domain.Book, 0, len(p.Books))
	for i, raw := range p.Books {
		var rb rawBook
		if err := json.Unmarshal(raw, &rb); err != nil {
			logger.Warn("skipping malformed recommendation entry", "index", i, "error", err)
			continue
		}

		genres := []string(rb.Genre)
		if genres == nil {
			genres = []string{}
		}

		books = append(books, domain.Book{
			ID:              domain.RecommendationID(batch, i),
			Title:           rb.Title,
			Author:          rb.Author,
			Description:     rb.Description,
			CoverImage:      domain.PlaceholderCover(rb.Title),
			Genres:          genres,
			Rating:          rb.Rating.value,
			PublicationYear: rb.publicationYear(),
		})
	}
	return books
}
