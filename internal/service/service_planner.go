package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-progress-keeper/internal/crypto"
	"github.com/MKhiriev/go-progress-keeper/internal/logger"
	"github.com/MKhiriev/go-progress-keeper/internal/store"
	"github.com/MKhiriev/go-progress-keeper/models"
)

// maxPlannerDepth bounds ancestor walks so a corrupted parent chain cannot
// loop forever.
const maxPlannerDepth = 64

type plannerService struct {
	plannerRepository store.DocumentRepository
	documents         documentCodec

	logger *logger.Logger
}

func NewPlannerService(plannerRepository store.DocumentRepository, codec crypto.Codec, logger *logger.Logger) PlannerService {
	return &plannerService{
		plannerRepository: plannerRepository,
		documents: documentCodec{
			codec:      codec,
			fields:     models.EncryptedFields.Planner,
			contentKey: "content",
		},
		logger: logger,
	}
}

func (s *plannerService) CreatePage(ctx context.Context, page models.PlannerPage) (models.PlannerPage, error) {
	page.ID = ""
	if err := s.checkParent(ctx, page); err != nil {
		return models.PlannerPage{}, err
	}

	doc, err := s.toDocument(ctx, page)
	if err != nil {
		return models.PlannerPage{}, err
	}

	created, err := s.plannerRepository.Create(ctx, doc)
	if err != nil {
		return models.PlannerPage{}, fmt.Errorf("error creating planner page: %w", err)
	}

	return s.fromDocument(ctx, created)
}

func (s *plannerService) GetPage(ctx context.Context, userID, id string) (models.PlannerPage, error) {
	doc, err := s.plannerRepository.Get(ctx, userID, id)
	if err != nil {
		return models.PlannerPage{}, fmt.Errorf("error getting planner page: %w", err)
	}

	return s.fromDocument(ctx, doc)
}

func (s *plannerService) ListPages(ctx context.Context, userID string, parentID *string) ([]models.PlannerPage, error) {
	docs, err := s.plannerRepository.List(ctx, models.DocumentFilter{
		UserID:    userID,
		ParentID:  parentID,
		RootsOnly: parentID == nil,
	})
	if err != nil {
		return nil, fmt.Errorf("error listing planner pages: %w", err)
	}

	pages := make([]models.PlannerPage, 0, len(docs))
	for _, doc := range docs {
		page, err := s.fromDocument(ctx, doc)
		if err != nil {
			return nil, err
		}
		pages = append(pages, page)
	}

	return pages, nil
}

// UpdatePage replaces the page. Moving it under another parent is allowed as
// long as the new parent is not the page itself or one of its descendants.
func (s *plannerService) UpdatePage(ctx context.Context, page models.PlannerPage) (models.PlannerPage, error) {
	if _, err := s.plannerRepository.Get(ctx, page.UserID, page.ID); err != nil {
		return models.PlannerPage{}, fmt.Errorf("error getting planner page: %w", err)
	}

	if err := s.checkParent(ctx, page); err != nil {
		return models.PlannerPage{}, err
	}

	doc, err := s.toDocument(ctx, page)
	if err != nil {
		return models.PlannerPage{}, err
	}

	updated, err := s.plannerRepository.Update(ctx, doc)
	if err != nil {
		return models.PlannerPage{}, fmt.Errorf("error updating planner page: %w", err)
	}

	return s.fromDocument(ctx, updated)
}

// DeletePage removes the subtree rooted at id, children first.
func (s *plannerService) DeletePage(ctx context.Context, userID, id string) error {
	if _, err := s.plannerRepository.Get(ctx, userID, id); err != nil {
		return fmt.Errorf("error getting planner page: %w", err)
	}

	return s.deleteTree(ctx, userID, id, 0)
}

func (s *plannerService) deleteTree(ctx context.Context, userID, id string, depth int) error {
	if depth > maxPlannerDepth {
		return fmt.Errorf("%w: planner tree is deeper than %d", ErrPlannerCycle, maxPlannerDepth)
	}

	children, err := s.plannerRepository.List(ctx, models.DocumentFilter{UserID: userID, ParentID: &id})
	if err != nil {
		return fmt.Errorf("error listing child pages: %w", err)
	}

	for _, child := range children {
		if err = s.deleteTree(ctx, userID, child.ID, depth+1); err != nil {
			return err
		}
	}

	err = s.plannerRepository.Delete(ctx, userID, id)
	// a parent deleted concurrently may have cascaded to this page already
	if err != nil && (depth == 0 || !errors.Is(err, store.ErrNotFound)) {
		return fmt.Errorf("error deleting planner page: %w", err)
	}

	logger.FromContext(ctx).Debug().Str("page_id", id).Int("depth", depth).Msg("planner page deleted")

	return nil
}

// checkParent verifies that the parent exists and that attaching the page to
// it does not create a cycle.
func (s *plannerService) checkParent(ctx context.Context, page models.PlannerPage) error {
	if page.ParentID == nil {
		return nil
	}

	current := *page.ParentID
	for range maxPlannerDepth {
		if page.ID != "" && current == page.ID {
			return ErrPlannerCycle
		}

		parent, err := s.plannerRepository.Get(ctx, page.UserID, current)
		if errors.Is(err, store.ErrNotFound) {
			if current == *page.ParentID {
				return ErrParentNotFound
			}
			// dangling link further up the chain
			return nil
		}
		if err != nil {
			return fmt.Errorf("error getting parent page: %w", err)
		}

		if parent.ParentID == nil || page.ID == "" {
			return nil
		}
		current = *parent.ParentID
	}

	return ErrPlannerCycle
}

func (s *plannerService) toDocument(ctx context.Context, page models.PlannerPage) (models.Document, error) {
	data, err := s.documents.encode(ctx, page, page.UserID)
	if err != nil {
		return models.Document{}, err
	}

	return models.Document{ID: page.ID, UserID: page.UserID, ParentID: page.ParentID, Data: data}, nil
}

func (s *plannerService) fromDocument(ctx context.Context, doc models.Document) (models.PlannerPage, error) {
	var page models.PlannerPage
	if err := s.documents.decode(ctx, doc, &page); err != nil {
		return models.PlannerPage{}, err
	}

	return page, nil
}
