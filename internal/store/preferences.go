package store

import (
	"context"
	"encoding/json/v2"
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"

	"github.com/bookmuse/bookmuse-server/internal/domain"
)

// The preference aggregate is stored under a single fixed key. Every
// mutation is a read-modify-write inside one Update transaction, so
// concurrent mutations cannot interleave and break the aggregate's
// invariants.
const preferencesKey = "prefs:default"

// GetPreferences retrieves the preference aggregate. A missing record
// reads as an empty aggregate.
func (s *Store) GetPreferences(ctx context.Context) (*domain.Preferences, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var prefs domain.Preferences
	err := s.get([]byte(preferencesKey), &prefs)
	if errors.Is(err, badger.ErrKeyNotFound) {
		return domain.NewPreferences(), nil
	}
	if err != nil {
		return nil, err
	}
	return &prefs, nil
}

// ClearPreferences resets the aggregate to empty.
func (s *Store) ClearPreferences(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(preferencesKey))
	})
}

// AddFavorite favorites a book and returns the updated aggregate.
func (s *Store) AddFavorite(ctx context.Context, book domain.Book) (*domain.Preferences, error) {
	return s.mutatePreferences(ctx, func(p *domain.Preferences) {
		p.AddFavorite(book)
	})
}

// RemoveFavorite unfavorites a book id and returns the updated aggregate.
func (s *Store) RemoveFavorite(ctx context.Context, bookID string) (*domain.Preferences, error) {
	return s.mutatePreferences(ctx, func(p *domain.Preferences) {
		p.RemoveFavorite(bookID)
	})
}

// AddDislike marks a book id as disliked and returns the updated aggregate.
func (s *Store) AddDislike(ctx context.Context, bookID string) (*domain.Preferences, error) {
	return s.mutatePreferences(ctx, func(p *domain.Preferences) {
		p.AddDislike(bookID)
	})
}

// RemoveDislike clears a dislike and returns the updated aggregate.
func (s *Store) RemoveDislike(ctx context.Context, bookID string) (*domain.Preferences, error) {
	return s.mutatePreferences(ctx, func(p *domain.Preferences) {
		p.RemoveDislike(bookID)
	})
}

// AddFavoriteGenre adds a genre and returns the updated aggregate.
func (s *Store) AddFavoriteGenre(ctx context.Context, genre string) (*domain.Preferences, error) {
	return s.mutatePreferences(ctx, func(p *domain.Preferences) {
		p.AddGenre(genre)
	})
}

// RemoveFavoriteGenre removes a genre and returns the updated aggregate.
func (s *Store) RemoveFavoriteGenre(ctx context.Context, genre string) (*domain.Preferences, error) {
	return s.mutatePreferences(ctx, func(p *domain.Preferences) {
		p.RemoveGenre(genre)
	})
}

// mutatePreferences loads the aggregate, applies fn, and writes it back,
// all inside one transaction.
func (s *Store) mutatePreferences(ctx context.Context, fn func(*domain.Preferences)) (*domain.Preferences, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	prefs := domain.NewPreferences()
	err := s.db.Update(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(preferencesKey))
		if err != nil && !errors.Is(err, badger.ErrKeyNotFound) {
			return err
		}
		if err == nil {
			err = item.Value(func(val []byte) error {
				return json.Unmarshal(val, prefs)
			})
			if err != nil {
				return err
			}
		}

		fn(prefs)

		data, err := json.Marshal(prefs)
		if err != nil {
			return fmt.Errorf("marshal preferences: %w", err)
		}
		return txn.Set([]byte(preferencesKey), data)
	})

	if err != nil {
		return nil, err
	}
	return prefs, nil
}
