package providers

import (
	"context"
	"path/filepath"

	"github.com/samber/do/v2"

	"github.com/bookmuse/bookmuse-server/internal/config"
	"github.com/bookmuse/bookmuse-server/internal/domain"
	"github.com/bookmuse/bookmuse-server/internal/logger"
	"github.com/bookmuse/bookmuse-server/internal/store"
)

// StoreHandle wraps the store with shutdown capability.
type StoreHandle struct {
	*store.Store
}

// Shutdown implements do.Shutdownable.
func (h *StoreHandle) Shutdown() error {
	return h.Close()
}

// ProvideStore provides the database store, seeded with the demo catalog.
func ProvideStore(i do.Injector) (*StoreHandle, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)

	dbPath := filepath.Join(cfg.Data.BasePath, "db")
	db, err := store.New(dbPath, log.Logger)
	if err != nil {
		return nil, err
	}

	log.Info("Database initialized", "path", dbPath)

	if err := db.SeedCatalog(context.Background(), domain.SeedBooks()); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &StoreHandle{Store: db}, nil
}
