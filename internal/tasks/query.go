package tasks

import (
	"strings"

	"github.com/dmitrijs2005/taskflow/internal/models"
)

// Query narrows a task list. The zero value matches everything.
type Query struct {
	Status models.TaskStatus
	Search string
}

// Filter keeps the tasks with the wanted status whose title or description
// contains the search term, ignoring case. Order is preserved.
func Filter(list []models.Task, q Query) []models.Task {
	term := strings.ToLower(strings.TrimSpace(q.Search))

	result := make([]models.Task, 0, len(list))
	for _, t := range list {
		if q.Status != "" && t.Status != q.Status {
			continue
		}
		if term != "" &&
			!strings.Contains(strings.ToLower(t.Title), term) &&
			!strings.Contains(strings.ToLower(t.Description), term) {
			continue
		}
		result = append(result, t)
	}
	return result
}

type Counts struct {
	Todo       int
	InProgress int
	Done       int
}

func (c Counts) Total() int { return c.Todo + c.InProgress + c.Done }

func CountByStatus(list []models.Task) Counts {
	var c Counts
	for _, t := range list {
		switch t.Status {
		case models.StatusTodo:
			c.Todo++
		case models.StatusInProgress:
			c.InProgress++
		case models.StatusDone:
			c.Done++
		}
	}
	return c
}
