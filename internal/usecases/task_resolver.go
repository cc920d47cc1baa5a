package usecases

import (
	"context"
	"fmt"
	"strings"

	"github.com/cleitonmarx/symbiont/depend"

	"github.com/kaamkaaj/kaamkaaj/internal/domain"
)

// TaskResolver turns a task reference from a chat utterance into a concrete
// task, within a unit of work.
type TaskResolver interface {
	Resolve(ctx context.Context, uow domain.UnitOfWork, ownerID string, ref domain.TaskReference, state domain.ConversationState) (domain.Task, error)
}

// TaskResolverImpl is the implementation of the TaskResolver service.
//
// Numeric references resolve against the listing the user last saw, when one
// exists and the number fits inside it; larger numbers, and listed tasks
// deleted since the listing was shown, fall through to a direct task id
// lookup. Title references match case-insensitively as a
// substring over the user's tasks, earliest created match first.
type TaskResolverImpl struct{}

// NewTaskResolverImpl creates a new instance of TaskResolverImpl.
func NewTaskResolverImpl() TaskResolverImpl {
	return TaskResolverImpl{}
}

// Resolve finds the task a reference points at, or a NotFoundErr when no
// task matches.
func (tr TaskResolverImpl) Resolve(ctx context.Context, uow domain.UnitOfWork, ownerID string, ref domain.TaskReference, state domain.ConversationState) (domain.Task, error) {
	if ref.HasNumber {
		return tr.resolveNumber(ctx, uow, ownerID, ref.Number, state)
	}
	if ref.Title != "" {
		return tr.resolveTitle(ctx, uow, ownerID, ref.Title)
	}
	return domain.Task{}, domain.NewNotFoundErr("no task reference given")
}

func (tr TaskResolverImpl) resolveNumber(ctx context.Context, uow domain.UnitOfWork, ownerID string, number int, state domain.ConversationState) (domain.Task, error) {
	listing := state.LastListing

	if number < 0 {
		// "the last one" only makes sense against a remembered listing.
		if listing == nil || listing.TaskCount == 0 {
			return domain.Task{}, domain.NewNotFoundErr("no task listing to refer back to")
		}
		number = listing.TaskCount
	}

	if listing != nil && number <= listing.TaskCount {
		if id, ok := listing.TaskAtPosition(number); ok {
			task, found, err := uow.Task().GetTask(ctx, ownerID, id)
			if err != nil {
				return domain.Task{}, err
			}
			if found {
				return task, nil
			}
			// The listed task is gone since the listing was shown; fall
			// through and try the number as a task id instead.
		}
	}

	// Beyond the listing, or no listing at all: treat the number as a task id.
	task, found, err := uow.Task().GetTask(ctx, ownerID, int64(number))
	if err != nil {
		return domain.Task{}, err
	}
	if !found {
		return domain.Task{}, domain.NewNotFoundErr(fmt.Sprintf("task %d not found", number))
	}
	return task, nil
}

func (tr TaskResolverImpl) resolveTitle(ctx context.Context, uow domain.UnitOfWork, ownerID string, title string) (domain.Task, error) {
	tasks, err := uow.Task().ListTasks(ctx, ownerID, domain.ListTasksOptions{})
	if err != nil {
		return domain.Task{}, err
	}

	needle := strings.ToLower(title)
	var match *domain.Task
	for i := range tasks {
		if !strings.Contains(strings.ToLower(tasks[i].Title), needle) {
			continue
		}
		if match == nil || tasks[i].CreatedAt.Before(match.CreatedAt) {
			match = &tasks[i]
		}
	}
	if match == nil {
		return domain.Task{}, domain.NewNotFoundErr(fmt.Sprintf("no task matching %q", title))
	}
	return *match, nil
}

// InitTaskResolver initializes the TaskResolver.
type InitTaskResolver struct{}

// Initialize registers the TaskResolver service in the dependency container.
func (i InitTaskResolver) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[TaskResolver](NewTaskResolverImpl())
	return ctx, nil
}
