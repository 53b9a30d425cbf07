package tasks

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/dmitrijs2005/taskflow/internal/common"
	"github.com/dmitrijs2005/taskflow/internal/localstore"
	"github.com/dmitrijs2005/taskflow/internal/logging"
	"github.com/dmitrijs2005/taskflow/internal/models"
)

// IdentityProvider resolves the owner of the current session.
type IdentityProvider interface {
	CurrentUserEmail(ctx context.Context) (string, bool)
}

type Repository interface {
	List(ctx context.Context) []models.Task
	GetByID(ctx context.Context, id int64) (models.Task, bool)
	Create(ctx context.Context, input models.TaskInput) (models.Task, error)
	Update(ctx context.Context, id int64, input models.TaskInput) (models.Task, error)
	Delete(ctx context.Context, id int64) bool
}

type localRepository struct {
	store    localstore.Store
	identity IdentityProvider
	logger   logging.Logger
	now      func() time.Time
}

// Option configures a Repository built by NewRepository.
type Option func(*localRepository)

// WithClock replaces the time source used for createdAt/updatedAt.
func WithClock(now func() time.Time) Option {
	return func(r *localRepository) { r.now = now }
}

func NewRepository(store localstore.Store, identity IdentityProvider, logger logging.Logger, opts ...Option) Repository {
	r := &localRepository{store: store, identity: identity, logger: logger, now: time.Now}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// collection is the stored task list. Records that do not decode as a Task
// are kept in opaque and written back unchanged; their ids still count when
// allocating new ones.
type collection struct {
	tasks  []models.Task
	opaque []json.RawMessage
}

func (c collection) maxID() int64 {
	var highest int64
	for _, t := range c.tasks {
		if t.ID > highest {
			highest = t.ID
		}
	}
	for _, raw := range c.opaque {
		var rec struct {
			ID int64 `json:"id"`
		}
		if json.Unmarshal(raw, &rec) == nil && rec.ID > highest {
			highest = rec.ID
		}
	}
	return highest
}

func (r *localRepository) load(ctx context.Context) collection {
	raws, err := localstore.LoadJSON[json.RawMessage](ctx, r.store, common.TasksStorageKey)
	if err != nil {
		r.logger.Warn(ctx, "ignoring unreadable task list", "error", err)
	}

	c := collection{tasks: make([]models.Task, 0, len(raws))}
	for i, raw := range raws {
		if string(raw) == "null" {
			c.opaque = append(c.opaque, raw)
			continue
		}
		var t models.Task
		if err := json.Unmarshal(raw, &t); err != nil {
			r.logger.Warn(ctx, "keeping undecodable task record", "index", i, "error", err)
			c.opaque = append(c.opaque, raw)
			continue
		}
		c.tasks = append(c.tasks, t)
	}
	return c
}

func (r *localRepository) save(ctx context.Context, c collection) error {
	items := make([]json.RawMessage, 0, len(c.tasks)+len(c.opaque))
	for _, t := range c.tasks {
		b, err := json.Marshal(t)
		if err != nil {
			return fmt.Errorf("failed to save tasks: %w", err)
		}
		items = append(items, b)
	}
	items = append(items, c.opaque...)

	if err := localstore.SaveJSON(ctx, r.store, common.TasksStorageKey, items); err != nil {
		return fmt.Errorf("failed to save tasks: %w", err)
	}
	return nil
}

// List returns the owner's tasks, most recently updated first.
func (r *localRepository) List(ctx context.Context) []models.Task {
	owner, ok := r.identity.CurrentUserEmail(ctx)
	if !ok {
		return []models.Task{}
	}

	result := []models.Task{}
	for _, t := range r.load(ctx).tasks {
		if t.UserEmail == owner {
			result = append(result, t)
		}
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].UpdatedAt.After(result[j].UpdatedAt.Time)
	})
	return result
}

func (r *localRepository) GetByID(ctx context.Context, id int64) (models.Task, bool) {
	owner, ok := r.identity.CurrentUserEmail(ctx)
	if !ok {
		return models.Task{}, false
	}
	for _, t := range r.load(ctx).tasks {
		if t.ID == id && t.UserEmail == owner {
			return t, true
		}
	}
	return models.Task{}, false
}

func (r *localRepository) Create(ctx context.Context, input models.TaskInput) (models.Task, error) {
	owner, ok := r.identity.CurrentUserEmail(ctx)
	if !ok {
		return models.Task{}, common.ErrNoSession
	}
	if !input.Status.Valid() {
		return models.Task{}, fmt.Errorf("%w: %q", common.ErrInvalidStatus, input.Status)
	}

	all := r.load(ctx)

	now := models.NewTimestamp(r.now())
	task := models.Task{
		ID:          all.maxID() + 1,
		Title:       strings.TrimSpace(input.Title),
		Description: strings.TrimSpace(input.Description),
		DueDate:     input.DueDate,
		Status:      input.Status,
		UserEmail:   owner,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	all.tasks = append(all.tasks, task)
	if err := r.save(ctx, all); err != nil {
		return models.Task{}, err
	}
	r.logger.Debug(ctx, "task created", "id", task.ID)
	return task, nil
}

// Update replaces the editable fields of an existing task. It never creates
// a task.
func (r *localRepository) Update(ctx context.Context, id int64, input models.TaskInput) (models.Task, error) {
	owner, ok := r.identity.CurrentUserEmail(ctx)
	if !ok {
		return models.Task{}, common.ErrNoSession
	}
	if !input.Status.Valid() {
		return models.Task{}, fmt.Errorf("%w: %q", common.ErrInvalidStatus, input.Status)
	}

	all := r.load(ctx)
	for i, t := range all.tasks {
		if t.ID != id || t.UserEmail != owner {
			continue
		}

		t.Title = strings.TrimSpace(input.Title)
		t.Description = strings.TrimSpace(input.Description)
		t.DueDate = input.DueDate
		t.Status = input.Status
		t.UpdatedAt = r.nextUpdate(t.UpdatedAt)
		all.tasks[i] = t

		if err := r.save(ctx, all); err != nil {
			return models.Task{}, err
		}
		r.logger.Debug(ctx, "task updated", "id", id)
		return t, nil
	}

	return models.Task{}, fmt.Errorf("task %d: %w", id, common.ErrNotFound)
}

// nextUpdate is now, or one millisecond past prev when the clock has not
// moved on at stored precision.
func (r *localRepository) nextUpdate(prev models.Timestamp) models.Timestamp {
	ts := models.NewTimestamp(r.now())
	if !ts.After(prev.Time) {
		ts = models.NewTimestamp(prev.Add(time.Millisecond))
	}
	return ts
}

func (r *localRepository) Delete(ctx context.Context, id int64) bool {
	owner, ok := r.identity.CurrentUserEmail(ctx)
	if !ok {
		return false
	}

	all := r.load(ctx)
	kept := make([]models.Task, 0, len(all.tasks))
	for _, t := range all.tasks {
		if t.ID == id && t.UserEmail == owner {
			continue
		}
		kept = append(kept, t)
	}
	if len(kept) == len(all.tasks) {
		return false
	}

	all.tasks = kept
	if err := r.save(ctx, all); err != nil {
		r.logger.Error(ctx, "failed to delete task", "id", id, "error", err)
		return false
	}
	r.logger.Debug(ctx, "task deleted", "id", id)
	return true
}
