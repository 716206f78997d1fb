package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-progress-keeper/internal/logger"
	"github.com/MKhiriev/go-progress-keeper/internal/utils"
	"github.com/MKhiriev/go-progress-keeper/models"
)

// documentRepository is the PostgreSQL-backed [DocumentRepository] for one
// table. The JSONB data column holds the already encrypted document body.
type documentRepository struct {
	table  string
	logger *logger.Logger
	db     *DB
}

// NewDocumentRepository constructs a [DocumentRepository] over table.
func NewDocumentRepository(db *DB, table string, logger *logger.Logger) DocumentRepository {
	logger.Debug().Str("table", table).Msg("creating document repository")
	return &documentRepository{
		table:  table,
		db:     db,
		logger: logger,
	}
}

func (r *documentRepository) Create(ctx context.Context, doc models.Document) (models.Document, error) {
	log := logger.FromContext(ctx).With().Str("table", r.table).Logger()

	if doc.ID == "" {
		doc.ID = utils.NewID()
	}

	data, err := encodeData(doc.Data)
	if err != nil {
		return models.Document{}, err
	}

	query, args, err := buildInsertDocumentQuery(r.table, doc, data)
	if err != nil {
		log.Err(err).Str("func", "*documentRepository.Create").Msg("error building query")
		return models.Document{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	created, err := scanDocument(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).Str("func", "*documentRepository.Create").Msg("error inserting document")
		return models.Document{}, err
	}

	return created, nil
}

func (r *documentRepository) Get(ctx context.Context, userID, id string) (models.Document, error) {
	log := logger.FromContext(ctx).With().Str("table", r.table).Logger()

	query, args, err := buildGetDocumentQuery(r.table, userID, id)
	if err != nil {
		return models.Document{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var doc models.Document
	err = r.db.withRetry(ctx, func(ctx context.Context) error {
		doc, err = scanDocument(r.db.QueryRowContext(ctx, query, args...))
		return err
	})
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			log.Err(err).Str("func", "*documentRepository.Get").Msg("error getting document")
		}
		return models.Document{}, err
	}

	return doc, nil
}

func (r *documentRepository) List(ctx context.Context, filter models.DocumentFilter) ([]models.Document, error) {
	log := logger.FromContext(ctx).With().Str("table", r.table).Logger()

	query, args, err := buildListDocumentsQuery(r.table, filter)
	if err != nil {
		log.Err(err).Str("func", "*documentRepository.List").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var docs []models.Document
	err = r.db.withRetry(ctx, func(ctx context.Context) error {
		docs, err = r.queryDocuments(ctx, query, args)
		return err
	})
	if err != nil {
		log.Err(err).Str("func", "*documentRepository.List").Msg("error listing documents")
		return nil, err
	}

	return docs, nil
}

func (r *documentRepository) Update(ctx context.Context, doc models.Document) (models.Document, error) {
	log := logger.FromContext(ctx).With().Str("table", r.table).Logger()

	data, err := encodeData(doc.Data)
	if err != nil {
		return models.Document{}, err
	}

	query, args, err := buildUpdateDocumentQuery(r.table, doc, data)
	if err != nil {
		return models.Document{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	updated, err := scanDocument(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			log.Err(err).Str("func", "*documentRepository.Update").Msg("error updating document")
		}
		return models.Document{}, err
	}

	return updated, nil
}

func (r *documentRepository) Delete(ctx context.Context, userID, id string) error {
	log := logger.FromContext(ctx).With().Str("table", r.table).Logger()

	query, args, err := buildDeleteDocumentQuery(r.table, userID, id)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*documentRepository.Delete").Msg("error deleting document")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *documentRepository) queryDocuments(ctx context.Context, query string, args []any) ([]models.Document, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	docs := make([]models.Document, 0)
	for rows.Next() {
		doc, err := scanDocument(rows)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return docs, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanDocument(row rowScanner) (models.Document, error) {
	var (
		doc      models.Document
		day      sql.NullTime
		parentID sql.NullString
		data     []byte
	)

	err := row.Scan(&doc.ID, &doc.UserID, &day, &parentID, &data, &doc.CreatedAt, &doc.UpdatedAt)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.Document{}, ErrNotFound
	case err != nil:
		if postgresError(err) != "" {
			return models.Document{}, mapWriteError(err)
		}
		return models.Document{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	if day.Valid {
		doc.Day = &day.Time
	}
	if parentID.Valid {
		doc.ParentID = &parentID.String
	}
	if err = json.Unmarshal(data, &doc.Data); err != nil {
		return models.Document{}, fmt.Errorf("%w: %w", ErrEncodingData, err)
	}

	return doc, nil
}

func encodeData(data models.Record) (string, error) {
	if data == nil {
		data = models.Record{}
	}

	raw, err := json.Marshal(data)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrEncodingData, err)
	}

	return string(raw), nil
}
