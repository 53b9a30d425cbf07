package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/taskflow/internal/common"
	"github.com/dmitrijs2005/taskflow/internal/models"
	"github.com/dmitrijs2005/taskflow/internal/tasks"
)

// List prints the current user's tasks, optionally narrowed to one status
// ("all" or empty for every status).
func (a *App) List(ctx context.Context, status string) error {
	q := tasks.Query{}
	if s := strings.TrimSpace(status); s != "" && !strings.EqualFold(s, "all") {
		st, ok := models.ParseStatus(s)
		if !ok {
			return fmt.Errorf("%w: %q", common.ErrInvalidStatus, s)
		}
		q.Status = st
	}

	printTasks(tasks.Filter(a.taskRepo.List(ctx), q))
	return nil
}

func (a *App) Search(ctx context.Context, term string) error {
	if strings.TrimSpace(term) == "" {
		printlnFn("Usage: search <term>")
		return nil
	}
	printTasks(tasks.Filter(a.taskRepo.List(ctx), tasks.Query{Search: term}))
	return nil
}

func printTasks(list []models.Task) {
	if len(list) == 0 {
		printlnFn("No tasks.")
		return
	}
	for _, t := range list {
		printlnFn(formatTaskLine(t))
	}
}

func formatTaskLine(t models.Task) string {
	line := fmt.Sprintf("#%d [%s] %s", t.ID, t.Status.Label(), t.Title)
	if t.DueDate != "" {
		line += fmt.Sprintf(" (due %s)", t.DueDate)
	}
	return line
}

func (a *App) readTaskID(prompt string) (int64, error) {
	s, err := getSimpleText(a.reader, prompt, a.out)
	if err != nil {
		return 0, err
	}
	id, err := strconv.ParseInt(strings.TrimPrefix(s, "#"), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid task id %q", s)
	}
	return id, nil
}

func (a *App) Show(ctx context.Context) error {
	id, err := a.readTaskID("Enter task id to show")
	if err != nil {
		return err
	}

	t, ok := a.taskRepo.GetByID(ctx, id)
	if !ok {
		return fmt.Errorf("task %d: %w", id, common.ErrNotFound)
	}

	printlnFn(fmt.Sprintf("#%d %s", t.ID, t.Title))
	printlnFn("Status:", t.Status.Label())
	printlnFn("Due:", t.DueDate)
	if t.Description != "" {
		printlnFn("Description:")
		printlnFn(t.Description)
	}
	printlnFn("Created:", t.CreatedAt.Format(models.TimestampLayout))
	printlnFn("Updated:", t.UpdatedAt.Format(models.TimestampLayout))
	return nil
}

// readTaskInput prompts for every editable field. An empty answer keeps the
// value from current, which lets Edit reuse it.
func (a *App) readTaskInput(current models.TaskInput) (models.TaskInput, error) {
	in := current

	hint := func(label, v string) string {
		if v == "" {
			return label
		}
		return fmt.Sprintf("%s [%s]", label, v)
	}

	title, err := getSimpleText(a.reader, hint("Title", current.Title), a.out)
	if err != nil {
		return in, err
	}
	if title != "" {
		in.Title = title
	}

	desc, err := getMultiline(a.reader, hint("Description", current.Description), a.out)
	if err != nil {
		return in, err
	}
	if desc != "" {
		in.Description = desc
	}

	due, err := getSimpleText(a.reader, hint("Due date (YYYY-MM-DD)", current.DueDate), a.out)
	if err != nil {
		return in, err
	}
	if due != "" {
		in.DueDate = due
	}

	status, err := getSimpleText(a.reader, hint("Status (todo, in_progress, done)", string(current.Status)), a.out)
	if err != nil {
		return in, err
	}
	if status != "" {
		// unknown spellings still reach ValidateInput, which reports them
		st, _ := models.ParseStatus(status)
		in.Status = st
	}

	return in, nil
}

func (a *App) Add(ctx context.Context) error {
	in, err := a.readTaskInput(models.TaskInput{Status: models.StatusTodo})
	if err != nil {
		return err
	}
	if err := tasks.ValidateInput(in); err != nil {
		return err
	}

	t, err := a.taskRepo.Create(ctx, in)
	if err != nil {
		return err
	}
	printlnFn(fmt.Sprintf("Created task #%d.", t.ID))
	return nil
}

func (a *App) Edit(ctx context.Context) error {
	id, err := a.readTaskID("Enter task id to edit")
	if err != nil {
		return err
	}

	t, ok := a.taskRepo.GetByID(ctx, id)
	if !ok {
		return fmt.Errorf("task %d: %w", id, common.ErrNotFound)
	}

	in, err := a.readTaskInput(models.TaskInput{
		Title:       t.Title,
		Description: t.Description,
		DueDate:     t.DueDate,
		Status:      t.Status,
	})
	if err != nil {
		return err
	}
	if err := tasks.ValidateInput(in); err != nil {
		return err
	}

	if _, err := a.taskRepo.Update(ctx, id, in); err != nil {
		return err
	}
	printlnFn(fmt.Sprintf("Updated task #%d.", id))
	return nil
}

func (a *App) Delete(ctx context.Context) error {
	id, err := a.readTaskID("Enter task id to delete")
	if err != nil {
		return err
	}

	if !a.taskRepo.Delete(ctx, id) {
		return fmt.Errorf("task %d: %w", id, common.ErrNotFound)
	}
	printlnFn(fmt.Sprintf("Deleted task #%d.", id))
	return nil
}

func (a *App) Stats(ctx context.Context) error {
	c := tasks.CountByStatus(a.taskRepo.List(ctx))
	printlnFn(fmt.Sprintf("%s: %d, %s: %d, %s: %d, Total: %d",
		models.StatusTodo.Label(), c.Todo,
		models.StatusInProgress.Label(), c.InProgress,
		models.StatusDone.Label(), c.Done,
		c.Total()))
	return nil
}
