package tasks

import (
	"errors"
	"strings"
	"time"

	"github.com/dmitrijs2005/taskflow/internal/models"
)

// DueDateLayout is the form of TaskInput.DueDate.
const DueDateLayout = "2006-01-02"

var (
	ErrTitleRequired   = errors.New("title is required")
	ErrDueDateRequired = errors.New("due date is required")
	ErrDueDateInvalid  = errors.New("due date must be YYYY-MM-DD")
	ErrStatusRequired  = errors.New("status is required")
	ErrStatusInvalid   = errors.New("status must be TODO, IN_PROGRESS or DONE")
)

// ValidateInput applies the task form rules. The repository only checks the
// status; the rest is enforced where the form is filled in.
func ValidateInput(in models.TaskInput) error {
	var errs []error

	if strings.TrimSpace(in.Title) == "" {
		errs = append(errs, ErrTitleRequired)
	}

	switch due := strings.TrimSpace(in.DueDate); {
	case due == "":
		errs = append(errs, ErrDueDateRequired)
	default:
		if _, err := time.Parse(DueDateLayout, due); err != nil {
			errs = append(errs, ErrDueDateInvalid)
		}
	}

	switch {
	case in.Status == "":
		errs = append(errs, ErrStatusRequired)
	case !in.Status.Valid():
		errs = append(errs, ErrStatusInvalid)
	}

	return errors.Join(errs...)
}
