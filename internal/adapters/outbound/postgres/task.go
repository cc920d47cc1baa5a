package postgres

import (
	"context"
	"database/sql"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/cleitonmarx/symbiont/depend"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/kaamkaaj/kaamkaaj/internal/domain"
	"github.com/kaamkaaj/kaamkaaj/internal/telemetry"
)

var taskFields = []string{
	"id",
	"owner_id",
	"title",
	"description",
	"status",
	"priority",
	"category",
	"due_date",
	"completed_at",
	"created_at",
	"updated_at",
}

var taskFieldsCSV = strings.Join(taskFields, ", ")

// TaskRepository implements domain.TaskRepository using PostgreSQL as the
// storage backend.
type TaskRepository struct {
	sb squirrel.StatementBuilderType
}

// NewTaskRepository creates a new instance of TaskRepository.
func NewTaskRepository(br squirrel.BaseRunner) TaskRepository {
	return TaskRepository{
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar).RunWith(br),
	}
}

func scanTask(row squirrel.RowScanner) (domain.Task, error) {
	var task domain.Task
	err := row.Scan(
		&task.ID,
		&task.OwnerID,
		&task.Title,
		&task.Description,
		&task.Status,
		&task.Priority,
		&task.Category,
		&task.DueDate,
		&task.CompletedAt,
		&task.CreatedAt,
		&task.UpdatedAt,
	)
	return task, err
}

// CreateTask inserts a task and returns it with the assigned ID.
func (tr TaskRepository) CreateTask(ctx context.Context, task domain.Task) (domain.Task, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	created, err := scanTask(tr.sb.
		Insert("tasks").
		Columns(
			"owner_id",
			"title",
			"description",
			"status",
			"priority",
			"category",
			"due_date",
			"completed_at",
			"created_at",
			"updated_at",
		).
		Values(
			task.OwnerID,
			task.Title,
			task.Description,
			task.Status,
			task.Priority,
			task.Category,
			task.DueDate,
			task.CompletedAt,
			task.CreatedAt,
			task.UpdatedAt,
		).
		Suffix("RETURNING " + taskFieldsCSV).
		QueryRowContext(spanCtx))

	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.Task{}, err
	}

	return created, nil
}

// GetTask retrieves one of the owner's tasks by ID.
func (tr TaskRepository) GetTask(ctx context.Context, ownerID string, id int64) (domain.Task, bool, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.Int64("task_id", id),
	))
	defer span.End()

	task, err := scanTask(tr.sb.
		Select(taskFields...).
		From("tasks").
		Where(squirrel.Eq{"id": id, "owner_id": ownerID}).
		Limit(1).
		QueryRowContext(spanCtx))

	if telemetry.RecordErrorAndStatus(span, err) {
		if err == sql.ErrNoRows {
			return domain.Task{}, false, nil
		}
		return domain.Task{}, false, err
	}

	return task, true, nil
}

// ListTasks lists the owner's tasks, newest first, with optional filters.
func (tr TaskRepository) ListTasks(ctx context.Context, ownerID string, opts domain.ListTasksOptions) ([]domain.Task, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.Int("limit", opts.EffectiveLimit()),
	))
	defer span.End()

	qry := tr.sb.
		Select(taskFields...).
		From("tasks").
		Where(squirrel.Eq{"owner_id": ownerID}).
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(opts.EffectiveLimit()))

	if opts.Status != "" {
		qry = qry.Where(squirrel.Eq{"status": opts.Status})
	}
	if opts.Category != "" {
		qry = qry.Where(squirrel.Eq{"category": opts.Category})
	}
	if opts.DueBefore != nil {
		qry = qry.Where(squirrel.LtOrEq{"due_date": *opts.DueBefore})
	}

	rows, err := qry.QueryContext(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}
	defer rows.Close() //nolint:errcheck

	var tasks []domain.Task
	for rows.Next() {
		task, err := scanTask(rows)
		if telemetry.RecordErrorAndStatus(span, err) {
			return nil, err
		}
		tasks = append(tasks, task)
	}

	if err := rows.Err(); telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}

	return tasks, nil
}

// UpdateTask overwrites a task's mutable fields and returns the stored row.
func (tr TaskRepository) UpdateTask(ctx context.Context, task domain.Task) (domain.Task, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.Int64("task_id", task.ID),
	))
	defer span.End()

	updated, err := scanTask(tr.sb.
		Update("tasks").
		Set("title", task.Title).
		Set("description", task.Description).
		Set("status", task.Status).
		Set("priority", task.Priority).
		Set("category", task.Category).
		Set("due_date", task.DueDate).
		Set("completed_at", task.CompletedAt).
		Set("updated_at", task.UpdatedAt).
		Where(squirrel.Eq{"id": task.ID, "owner_id": task.OwnerID}).
		Suffix("RETURNING " + taskFieldsCSV).
		QueryRowContext(spanCtx))

	if telemetry.RecordErrorAndStatus(span, err) {
		if err == sql.ErrNoRows {
			return domain.Task{}, domain.NewNotFoundErr("task not found")
		}
		return domain.Task{}, err
	}

	return updated, nil
}

// DeleteTask deletes one of the owner's tasks. It reports whether a row was
// actually removed.
func (tr TaskRepository) DeleteTask(ctx context.Context, ownerID string, id int64) (bool, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.Int64("task_id", id),
	))
	defer span.End()

	res, err := tr.sb.
		Delete("tasks").
		Where(squirrel.Eq{"id": id, "owner_id": ownerID}).
		ExecContext(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		return false, err
	}

	affected, err := res.RowsAffected()
	if telemetry.RecordErrorAndStatus(span, err) {
		return false, err
	}

	return affected > 0, nil
}

// InitTaskRepository is a Symbiont initializer for TaskRepository.
type InitTaskRepository struct {
	DB *sql.DB `resolve:""`
}

// Initialize registers the TaskRepository in the dependency container.
func (tr InitTaskRepository) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[domain.TaskRepository](NewTaskRepository(tr.DB))
	return ctx, nil
}
