package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-progress-keeper/internal/crypto"
	"github.com/MKhiriev/go-progress-keeper/internal/logger"
	"github.com/MKhiriev/go-progress-keeper/internal/store"
	"github.com/MKhiriev/go-progress-keeper/internal/streak"
	"github.com/MKhiriev/go-progress-keeper/models"
)

type journalService struct {
	journalRepository store.DocumentRepository
	documents         documentCodec
	calc              *streak.Calculator

	logger *logger.Logger
}

func NewJournalService(journalRepository store.DocumentRepository, codec crypto.Codec, calc *streak.Calculator, logger *logger.Logger) JournalService {
	return &journalService{
		journalRepository: journalRepository,
		documents:         documentCodec{codec: codec, fields: models.EncryptedFields.Journal},
		calc:              calc,
		logger:            logger,
	}
}

// SaveEntry creates the entry for its day or overwrites the existing one.
// A concurrent insert for the same day is resolved by updating instead.
func (s *journalService) SaveEntry(ctx context.Context, entry models.JournalEntry) (models.JournalEntry, error) {
	log := logger.FromContext(ctx)

	if entry.Day.IsZero() {
		entry.Day = s.calc.Today()
	} else {
		entry.Day = s.calc.DayOf(entry.Day)
	}

	existing, err := s.find(ctx, entry.UserID, entry.Day)
	switch {
	case err == nil:
		entry.ID = existing.ID
		return s.update(ctx, entry)
	case !errors.Is(err, store.ErrNotFound):
		return models.JournalEntry{}, err
	}

	entry.ID = ""
	doc, err := s.toDocument(ctx, entry)
	if err != nil {
		return models.JournalEntry{}, err
	}

	created, err := s.journalRepository.Create(ctx, doc)
	if errors.Is(err, store.ErrAlreadyExists) {
		log.Debug().Str("day", streak.FormatDay(entry.Day)).Msg("journal entry created concurrently, updating")
		if existing, err = s.find(ctx, entry.UserID, entry.Day); err != nil {
			return models.JournalEntry{}, err
		}
		entry.ID = existing.ID
		return s.update(ctx, entry)
	}
	if err != nil {
		return models.JournalEntry{}, fmt.Errorf("error creating journal entry: %w", err)
	}

	return s.fromDocument(ctx, created)
}

func (s *journalService) GetEntry(ctx context.Context, userID string, day time.Time) (models.JournalEntry, error) {
	doc, err := s.find(ctx, userID, s.calc.DayOf(day))
	if err != nil {
		return models.JournalEntry{}, err
	}

	return s.fromDocument(ctx, doc)
}

func (s *journalService) ListEntries(ctx context.Context, userID string, from, to *time.Time) ([]models.JournalEntry, error) {
	filter := models.DocumentFilter{UserID: userID}
	if from != nil {
		day := s.calc.DayOf(*from)
		filter.From = &day
	}
	if to != nil {
		day := s.calc.DayOf(*to)
		filter.To = &day
	}

	docs, err := s.journalRepository.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error listing journal entries: %w", err)
	}

	entries := make([]models.JournalEntry, 0, len(docs))
	for _, doc := range docs {
		entry, err := s.fromDocument(ctx, doc)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

func (s *journalService) DeleteEntry(ctx context.Context, userID string, day time.Time) error {
	doc, err := s.find(ctx, userID, s.calc.DayOf(day))
	if err != nil {
		return err
	}

	if err = s.journalRepository.Delete(ctx, userID, doc.ID); err != nil {
		return fmt.Errorf("error deleting journal entry: %w", err)
	}

	return nil
}

// find returns the stored document of day or store.ErrNotFound.
func (s *journalService) find(ctx context.Context, userID string, day time.Time) (models.Document, error) {
	docs, err := s.journalRepository.List(ctx, models.DocumentFilter{UserID: userID, From: &day, To: &day})
	if err != nil {
		return models.Document{}, fmt.Errorf("error finding journal entry: %w", err)
	}
	if len(docs) == 0 {
		return models.Document{}, fmt.Errorf("journal entry for %s: %w", streak.FormatDay(day), store.ErrNotFound)
	}

	return docs[0], nil
}

func (s *journalService) update(ctx context.Context, entry models.JournalEntry) (models.JournalEntry, error) {
	doc, err := s.toDocument(ctx, entry)
	if err != nil {
		return models.JournalEntry{}, err
	}

	updated, err := s.journalRepository.Update(ctx, doc)
	if err != nil {
		return models.JournalEntry{}, fmt.Errorf("error updating journal entry: %w", err)
	}

	return s.fromDocument(ctx, updated)
}

func (s *journalService) toDocument(ctx context.Context, entry models.JournalEntry) (models.Document, error) {
	data, err := s.documents.encode(ctx, entry, entry.UserID)
	if err != nil {
		return models.Document{}, err
	}

	day := entry.Day
	return models.Document{ID: entry.ID, UserID: entry.UserID, Day: &day, Data: data}, nil
}

func (s *journalService) fromDocument(ctx context.Context, doc models.Document) (models.JournalEntry, error) {
	var entry models.JournalEntry
	if err := s.documents.decode(ctx, doc, &entry); err != nil {
		return models.JournalEntry{}, err
	}

	return entry, nil
}
