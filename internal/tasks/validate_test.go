package tasks

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/taskflow/internal/models"
)

func TestValidateInput(t *testing.T) {
	tests := []struct {
		name     string
		in       models.TaskInput
		wantErrs []error
	}{
		{name: "valid", in: models.TaskInput{Title: "x", DueDate: "2025-02-28", Status: models.StatusDone}},
		{name: "empty", wantErrs: []error{ErrTitleRequired, ErrDueDateRequired, ErrStatusRequired}},
		{name: "bad date", in: models.TaskInput{Title: "x", DueDate: "28/02/2025", Status: models.StatusTodo}, wantErrs: []error{ErrDueDateInvalid}},
		{name: "impossible date", in: models.TaskInput{Title: "x", DueDate: "2025-02-30", Status: models.StatusTodo}, wantErrs: []error{ErrDueDateInvalid}},
		{name: "bad status", in: models.TaskInput{Title: "x", DueDate: "2025-02-28", Status: "LATER"}, wantErrs: []error{ErrStatusInvalid}},
		{name: "blank title", in: models.TaskInput{Title: "  ", DueDate: "2025-02-28", Status: models.StatusTodo}, wantErrs: []error{ErrTitleRequired}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateInput(tt.in)
			if len(tt.wantErrs) == 0 {
				require.NoError(t, err)
				return
			}
			for _, want := range tt.wantErrs {
				assert.ErrorIs(t, err, want)
			}
		})
	}
}
