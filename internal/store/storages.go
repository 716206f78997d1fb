package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-progress-keeper/internal/config"
	"github.com/MKhiriev/go-progress-keeper/internal/logger"
)

// Storages groups every repository the services depend on.
type Storages struct {
	UserRepository       UserRepository
	TodoRepository       DocumentRepository
	JournalRepository    DocumentRepository
	PlannerRepository    DocumentRepository
	CompletionRepository CompletionRepository

	db *DB
}

// NewStorages connects to PostgreSQL, applies migrations and builds all
// repositories on the shared pool.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(ctx); err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("error applying migrations")
		_ = db.Close()
		return nil, fmt.Errorf("error applying migrations: %w", err)
	}

	return NewStoragesFromDB(db, log), nil
}

// NewStoragesFromDB builds the repositories over an existing connection.
func NewStoragesFromDB(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository:       NewUserRepository(db, log),
		TodoRepository:       NewDocumentRepository(db, TableTodos, log),
		JournalRepository:    NewDocumentRepository(db, TableJournal, log),
		PlannerRepository:    NewDocumentRepository(db, TablePlanner, log),
		CompletionRepository: NewCompletionRepository(db, log),
		db:                   db,
	}
}

// Close releases the connection pool.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}

	return s.db.Close()
}
