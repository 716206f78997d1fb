package validators

import (
	"context"
	"fmt"
	"slices"
	"time"
	"unicode/utf8"

	"github.com/MKhiriev/go-progress-keeper/internal/utils"
	"github.com/MKhiriev/go-progress-keeper/models"
)

// Field names accepted by [ProgressValidator.Validate] to scope validation.
const (
	FieldID        = "id"
	FieldUserID    = "user_id"
	FieldTitle     = "title"
	FieldCategory  = "category"
	FieldPoints    = "points"
	FieldDay       = "day"
	FieldContent   = "content"
	FieldMood      = "mood"
	FieldParentID  = "parent_id"
	FieldBlocks    = "blocks"
	FieldName      = "display_name"
	FieldGoal      = "goal"
	FieldStartDate = "start_date"
	FieldCounts    = "counts"
)

const (
	maxTitleLength    = 200
	maxCategoryLength = 100
	maxNameLength     = 100
	maxGoalLength     = 1000
	maxJournalLength  = 20000
)

var allowedBlockTypes = []string{"paragraph", "heading", "list", "checklist", "quote"}

// ProgressValidator checks todos, journal entries, planner pages, profiles
// and completion entries before they are encrypted and stored. Limits apply
// to the plaintext.
type ProgressValidator struct{}

func NewProgressValidator() Validator {
	return &ProgressValidator{}
}

func (v *ProgressValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Todo:
		return v.validateTodo(value, fields...)
	case *models.Todo:
		return v.validateTodo(*value, fields...)

	case models.JournalEntry:
		return v.validateJournalEntry(value, fields...)
	case *models.JournalEntry:
		return v.validateJournalEntry(*value, fields...)

	case models.PlannerPage:
		return v.validatePlannerPage(value, fields...)
	case *models.PlannerPage:
		return v.validatePlannerPage(*value, fields...)

	case models.User:
		return v.validateUser(value, fields...)
	case *models.User:
		return v.validateUser(*value, fields...)

	case models.CompletionHistoryEntry:
		return v.validateCompletion(value, fields...)
	case *models.CompletionHistoryEntry:
		return v.validateCompletion(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *ProgressValidator) validateTodo(todo models.Todo, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserID, FieldTitle, FieldCategory, FieldPoints, FieldDay}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if !isUUID(todo.ID) {
				return ErrInvalidID
			}
		case FieldUserID:
			if todo.UserID == "" {
				return ErrInvalidUserID
			}
		case FieldTitle:
			if err := checkTitle(todo.Title); err != nil {
				return err
			}
		case FieldCategory:
			if utf8.RuneCountInString(todo.Category) > maxCategoryLength {
				return fmt.Errorf("category: %w", ErrTextTooLong)
			}
		case FieldPoints:
			if todo.Points < 0 {
				return ErrInvalidPoints
			}
		case FieldDay:
			if todo.Day.IsZero() {
				return ErrInvalidDay
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *ProgressValidator) validateJournalEntry(entry models.JournalEntry, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserID, FieldDay, FieldContent, FieldMood}
	}

	for _, f := range fields {
		switch f {
		case FieldUserID:
			if entry.UserID == "" {
				return ErrInvalidUserID
			}
		case FieldDay:
			if entry.Day.IsZero() {
				return ErrInvalidDay
			}
		case FieldContent:
			if utf8.RuneCountInString(entry.Content) > maxJournalLength {
				return fmt.Errorf("content: %w", ErrTextTooLong)
			}
		case FieldMood:
			if !entry.Mood.IsValid() {
				return ErrInvalidMood
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *ProgressValidator) validatePlannerPage(page models.PlannerPage, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserID, FieldTitle, FieldParentID, FieldBlocks}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if !isUUID(page.ID) {
				return ErrInvalidID
			}
		case FieldUserID:
			if page.UserID == "" {
				return ErrInvalidUserID
			}
		case FieldTitle:
			if err := checkTitle(page.Title); err != nil {
				return err
			}
		case FieldParentID:
			if page.ParentID == nil {
				continue
			}
			if !isUUID(*page.ParentID) {
				return ErrInvalidParentID
			}
			if page.ID != "" && *page.ParentID == page.ID {
				return ErrSelfParent
			}
		case FieldBlocks:
			for i, block := range page.Content {
				if !slices.Contains(allowedBlockTypes, block.Type) {
					return fmt.Errorf("block %d: %w", i, ErrInvalidBlockType)
				}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *ProgressValidator) validateUser(user models.User, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserID, FieldName, FieldGoal, FieldStartDate}
	}

	for _, f := range fields {
		switch f {
		case FieldUserID:
			if user.UserID == "" {
				return ErrInvalidUserID
			}
		case FieldName:
			if utf8.RuneCountInString(user.DisplayName) > maxNameLength {
				return fmt.Errorf("display name: %w", ErrTextTooLong)
			}
		case FieldGoal:
			if utf8.RuneCountInString(user.Goal) > maxGoalLength {
				return fmt.Errorf("goal: %w", ErrTextTooLong)
			}
		case FieldStartDate:
			// one day of slack for clients ahead of the server's zone
			if user.StartDate != nil && user.StartDate.After(time.Now().Add(24*time.Hour)) {
				return ErrStartDateInFuture
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *ProgressValidator) validateCompletion(entry models.CompletionHistoryEntry, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserID, FieldDay, FieldCounts}
	}

	for _, f := range fields {
		switch f {
		case FieldUserID:
			if entry.UserID == "" {
				return ErrInvalidUserID
			}
		case FieldDay:
			if entry.Date.IsZero() {
				return ErrInvalidDay
			}
		case FieldCounts:
			if entry.CompletedTodos < 0 || entry.TotalTodos < 0 || entry.TotalScore < 0 || entry.PossibleScore < 0 {
				return ErrInvalidCounts
			}
			if entry.CompletedTodos > entry.TotalTodos || entry.TotalScore > entry.PossibleScore {
				return ErrInvalidCounts
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func checkTitle(title string) error {
	if title == "" {
		return ErrEmptyTitle
	}
	if utf8.RuneCountInString(title) > maxTitleLength {
		return ErrTitleTooLong
	}

	return nil
}

func isUUID(s string) bool {
	return utils.IsID(s)
}
