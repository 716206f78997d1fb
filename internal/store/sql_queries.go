package store

import (
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-progress-keeper/models"
)

// Document tables.
const (
	TableTodos   = "todos"
	TableJournal = "journal_entries"
	TablePlanner = "planner_pages"
)

const (
	tableUsers      = "users"
	tableCompletion = "completion_history"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var (
	userColumns       = []string{"user_id", "display_name", "goal", "start_date", "created_at"}
	documentColumns   = []string{"id", "user_id", "day", "parent_id", "data", "created_at", "updated_at"}
	completionColumns = []string{"user_id", "day", "completed", "completed_todos", "total_todos", "total_score", "possible_score"}
)

// users

func buildEnsureUserQuery(userID string) (string, []any, error) {
	return psql.Insert(tableUsers).
		Columns("user_id").
		Values(userID).
		Suffix("ON CONFLICT (user_id) DO NOTHING").
		Suffix(returning(userColumns)).
		ToSql()
}

func buildGetUserQuery(userID string) (string, []any, error) {
	return psql.Select(userColumns...).
		From(tableUsers).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
}

func buildUpdateUserQuery(user models.User) (string, []any, error) {
	return psql.Update(tableUsers).
		Set("display_name", user.DisplayName).
		Set("goal", user.Goal).
		Set("start_date", user.StartDate).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"user_id": user.UserID}).
		Suffix(returning(userColumns)).
		ToSql()
}

// documents

func buildInsertDocumentQuery(table string, doc models.Document, data string) (string, []any, error) {
	return psql.Insert(table).
		Columns("id", "user_id", "day", "parent_id", "data").
		Values(doc.ID, doc.UserID, doc.Day, doc.ParentID, data).
		Suffix(returning(documentColumns)).
		ToSql()
}

func buildGetDocumentQuery(table, userID, id string) (string, []any, error) {
	return psql.Select(documentColumns...).
		From(table).
		Where(sq.Eq{"id": id, "user_id": userID}).
		ToSql()
}

// buildListDocumentsQuery builds the SELECT for filter. Day bounds are
// inclusive. ParentID takes precedence over RootsOnly.
func buildListDocumentsQuery(table string, filter models.DocumentFilter) (string, []any, error) {
	where := sq.And{sq.Eq{"user_id": filter.UserID}}

	if filter.From != nil {
		where = append(where, sq.GtOrEq{"day": *filter.From})
	}
	if filter.To != nil {
		where = append(where, sq.LtOrEq{"day": *filter.To})
	}

	switch {
	case filter.ParentID != nil:
		where = append(where, sq.Eq{"parent_id": *filter.ParentID})
	case filter.RootsOnly:
		where = append(where, sq.Eq{"parent_id": nil})
	}

	return psql.Select(documentColumns...).
		From(table).
		Where(where).
		OrderBy("day ASC NULLS LAST", "created_at ASC").
		ToSql()
}

func buildUpdateDocumentQuery(table string, doc models.Document, data string) (string, []any, error) {
	return psql.Update(table).
		Set("day", doc.Day).
		Set("parent_id", doc.ParentID).
		Set("data", data).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": doc.ID, "user_id": doc.UserID}).
		Suffix(returning(documentColumns)).
		ToSql()
}

func buildDeleteDocumentQuery(table, userID, id string) (string, []any, error) {
	return psql.Delete(table).
		Where(sq.Eq{"id": id, "user_id": userID}).
		ToSql()
}

// completion history

func buildUpsertCompletionQuery(entry models.CompletionHistoryEntry) (string, []any, error) {
	return psql.Insert(tableCompletion).
		Columns(completionColumns...).
		Values(
			entry.UserID,
			entry.Date,
			entry.Completed,
			entry.CompletedTodos,
			entry.TotalTodos,
			entry.TotalScore,
			entry.PossibleScore,
		).
		Suffix(`ON CONFLICT (user_id, day) DO UPDATE SET
			completed = EXCLUDED.completed,
			completed_todos = EXCLUDED.completed_todos,
			total_todos = EXCLUDED.total_todos,
			total_score = EXCLUDED.total_score,
			possible_score = EXCLUDED.possible_score,
			updated_at = NOW()`).
		ToSql()
}

func buildGetCompletionQuery(userID string, day time.Time) (string, []any, error) {
	return psql.Select(completionColumns...).
		From(tableCompletion).
		Where(sq.Eq{"user_id": userID, "day": day}).
		ToSql()
}

func buildListCompletionQuery(userID string, from, to *time.Time) (string, []any, error) {
	where := sq.And{sq.Eq{"user_id": userID}}
	if from != nil {
		where = append(where, sq.GtOrEq{"day": *from})
	}
	if to != nil {
		where = append(where, sq.LtOrEq{"day": *to})
	}

	return psql.Select(completionColumns...).
		From(tableCompletion).
		Where(where).
		OrderBy("day DESC").
		ToSql()
}

func buildFillMissingDayQuery(day time.Time) (string, []any, error) {
	missing := sq.Select("user_id").
		Column("?::timestamptz", day).
		Column("FALSE").
		From(tableUsers)

	return psql.Insert(tableCompletion).
		Columns("user_id", "day", "completed").
		Select(missing).
		Suffix("ON CONFLICT (user_id, day) DO NOTHING").
		ToSql()
}

func returning(columns []string) string {
	return "RETURNING " + strings.Join(columns, ", ")
}
