package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-progress-keeper/internal/validators"
	"github.com/MKhiriev/go-progress-keeper/models"
)

// Validation decorators check input before the wrapped service encrypts and
// stores it. Reads pass straight through.

type TodoValidationService struct {
	inner     TodoService
	validator validators.Validator
}

func NewTodoValidationService() TodoServiceWrapper {
	return &TodoValidationService{validator: validators.NewProgressValidator()}
}

func (v *TodoValidationService) Wrap(inner TodoService) TodoService {
	v.inner = inner
	return v
}

// CreateTodo skips the day rule: a missing day means today.
func (v *TodoValidationService) CreateTodo(ctx context.Context, todo models.Todo) (models.Todo, error) {
	if err := v.validator.Validate(ctx, todo, validators.FieldUserID, validators.FieldTitle, validators.FieldCategory, validators.FieldPoints); err != nil {
		return models.Todo{}, invalid(err)
	}

	return v.inner.CreateTodo(ctx, todo)
}

func (v *TodoValidationService) ListTodos(ctx context.Context, userID string, day time.Time) ([]models.Todo, error) {
	return v.inner.ListTodos(ctx, userID, day)
}

func (v *TodoValidationService) UpdateTodo(ctx context.Context, todo models.Todo) (models.Todo, error) {
	if err := v.validator.Validate(ctx, todo, validators.FieldID, validators.FieldUserID, validators.FieldTitle, validators.FieldCategory, validators.FieldPoints); err != nil {
		return models.Todo{}, invalid(err)
	}

	return v.inner.UpdateTodo(ctx, todo)
}

func (v *TodoValidationService) SetCompleted(ctx context.Context, userID, id string, completed bool) (models.Todo, error) {
	if err := v.validator.Validate(ctx, models.Todo{ID: id, UserID: userID}, validators.FieldID, validators.FieldUserID); err != nil {
		return models.Todo{}, invalid(err)
	}

	return v.inner.SetCompleted(ctx, userID, id, completed)
}

func (v *TodoValidationService) DeleteTodo(ctx context.Context, userID, id string) error {
	if err := v.validator.Validate(ctx, models.Todo{ID: id, UserID: userID}, validators.FieldID, validators.FieldUserID); err != nil {
		return invalid(err)
	}

	return v.inner.DeleteTodo(ctx, userID, id)
}

type JournalValidationService struct {
	inner     JournalService
	validator validators.Validator
}

func NewJournalValidationService() JournalServiceWrapper {
	return &JournalValidationService{validator: validators.NewProgressValidator()}
}

func (v *JournalValidationService) Wrap(inner JournalService) JournalService {
	v.inner = inner
	return v
}

func (v *JournalValidationService) SaveEntry(ctx context.Context, entry models.JournalEntry) (models.JournalEntry, error) {
	if err := v.validator.Validate(ctx, entry, validators.FieldUserID, validators.FieldContent, validators.FieldMood); err != nil {
		return models.JournalEntry{}, invalid(err)
	}

	return v.inner.SaveEntry(ctx, entry)
}

func (v *JournalValidationService) GetEntry(ctx context.Context, userID string, day time.Time) (models.JournalEntry, error) {
	return v.inner.GetEntry(ctx, userID, day)
}

func (v *JournalValidationService) ListEntries(ctx context.Context, userID string, from, to *time.Time) ([]models.JournalEntry, error) {
	if from != nil && to != nil && from.After(*to) {
		return nil, fmt.Errorf("%w: from is after to", ErrInvalidDataProvided)
	}

	return v.inner.ListEntries(ctx, userID, from, to)
}

func (v *JournalValidationService) DeleteEntry(ctx context.Context, userID string, day time.Time) error {
	return v.inner.DeleteEntry(ctx, userID, day)
}

type PlannerValidationService struct {
	inner     PlannerService
	validator validators.Validator
}

func NewPlannerValidationService() PlannerServiceWrapper {
	return &PlannerValidationService{validator: validators.NewProgressValidator()}
}

func (v *PlannerValidationService) Wrap(inner PlannerService) PlannerService {
	v.inner = inner
	return v
}

func (v *PlannerValidationService) CreatePage(ctx context.Context, page models.PlannerPage) (models.PlannerPage, error) {
	if err := v.validator.Validate(ctx, page); err != nil {
		return models.PlannerPage{}, invalid(err)
	}

	return v.inner.CreatePage(ctx, page)
}

func (v *PlannerValidationService) GetPage(ctx context.Context, userID, id string) (models.PlannerPage, error) {
	return v.inner.GetPage(ctx, userID, id)
}

func (v *PlannerValidationService) ListPages(ctx context.Context, userID string, parentID *string) ([]models.PlannerPage, error) {
	return v.inner.ListPages(ctx, userID, parentID)
}

func (v *PlannerValidationService) UpdatePage(ctx context.Context, page models.PlannerPage) (models.PlannerPage, error) {
	if err := v.validator.Validate(ctx, page, validators.FieldID, validators.FieldUserID, validators.FieldTitle, validators.FieldParentID, validators.FieldBlocks); err != nil {
		return models.PlannerPage{}, invalid(err)
	}

	return v.inner.UpdatePage(ctx, page)
}

func (v *PlannerValidationService) DeletePage(ctx context.Context, userID, id string) error {
	if err := v.validator.Validate(ctx, models.PlannerPage{ID: id, UserID: userID}, validators.FieldID, validators.FieldUserID); err != nil {
		return invalid(err)
	}

	return v.inner.DeletePage(ctx, userID, id)
}

type UserValidationService struct {
	inner     UserService
	validator validators.Validator
}

func NewUserValidationService() UserServiceWrapper {
	return &UserValidationService{validator: validators.NewProgressValidator()}
}

func (v *UserValidationService) Wrap(inner UserService) UserService {
	v.inner = inner
	return v
}

func (v *UserValidationService) EnsureUser(ctx context.Context, userID string) (models.User, error) {
	return v.inner.EnsureUser(ctx, userID)
}

func (v *UserValidationService) GetProfile(ctx context.Context, userID string) (models.User, error) {
	return v.inner.GetProfile(ctx, userID)
}

func (v *UserValidationService) UpdateProfile(ctx context.Context, user models.User) (models.User, error) {
	if err := v.validator.Validate(ctx, user); err != nil {
		return models.User{}, invalid(err)
	}

	return v.inner.UpdateProfile(ctx, user)
}

func (v *UserValidationService) SetStartDate(ctx context.Context, userID string, start time.Time) (models.User, error) {
	if err := v.validator.Validate(ctx, models.User{UserID: userID, StartDate: &start}, validators.FieldUserID, validators.FieldStartDate); err != nil {
		return models.User{}, invalid(err)
	}

	return v.inner.SetStartDate(ctx, userID, start)
}

func invalid(err error) error {
	return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
}
