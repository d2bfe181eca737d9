package store

import (
	"context"
	"encoding/json/v2"
	"errors"
	"fmt"
	"sort"

	"github.com/dgraph-io/badger/v4"

	"github.com/bookmuse/bookmuse-server/internal/domain"
	apperrors "github.com/bookmuse/bookmuse-server/internal/errors"
	"github.com/bookmuse/bookmuse-server/internal/id"
)

const (
	bookPrefix     = "book:"
	catalogMetaKey = "meta:catalog-seeded"
)

// ErrBookNotFound is returned when a book id is not in the catalog.
var ErrBookNotFound = apperrors.NotFound("book not found")

// GetBook retrieves a catalog book by id.
func (s *Store) GetBook(ctx context.Context, bookID string) (*domain.Book, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var book domain.Book
	err := s.get([]byte(bookPrefix+bookID), &book)
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, ErrBookNotFound
	}
	if err != nil {
		return nil, err
	}
	return &book, nil
}

// PutBook stores a book in the catalog, assigning an id when absent.
func (s *Store) PutBook(ctx context.Context, book *domain.Book) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if book.ID == "" {
		generated, err := id.Generate("book")
		if err != nil {
			return fmt.Errorf("generate book id: %w", err)
		}
		book.ID = generated
	}

	return s.set([]byte(bookPrefix+book.ID), book)
}

// ListBooks retrieves the whole catalog, sorted by title for a stable order.
func (s *Store) ListBooks(ctx context.Context) ([]domain.Book, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	prefix := []byte(bookPrefix)
	books := []domain.Book{}

	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = prefix
		opts.PrefetchValues = true

		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			var book domain.Book
			err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &book)
			})
			if err != nil {
				return err
			}
			books = append(books, book)
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	sort.Slice(books, func(i, j int) bool {
		return books[i].Title < books[j].Title
	})
	return books, nil
}

// SeedCatalog inserts the demo catalog on first startup. Subsequent
// startups are no-ops, guarded by a marker key so the seed survives a
// fully emptied catalog.
func (s *Store) SeedCatalog(ctx context.Context, books []domain.Book) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	seeded, err := s.exists([]byte(catalogMetaKey))
	if err != nil {
		return err
	}
	if seeded {
		return nil
	}

	for i := range books {
		if err := s.PutBook(ctx, &books[i]); err != nil {
			return fmt.Errorf("seed book %q: %w", books[i].Title, err)
		}
	}

	if err := s.set([]byte(catalogMetaKey), true); err != nil {
		return err
	}

	if s.logger != nil {
		s.logger.Info("Seeded catalog", "books", len(books))
	}
	return nil
}
