package models

import (
	"time"
)

// DateLayout is the canonical due date representation (zero-padded).
const DateLayout = "2006-01-02"

// Task represents a todo item living in the current session
type Task struct {
	ID          uint       `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	DueDate     string     `json:"due_date"` // YYYY-MM-DD
	Completed   bool       `json:"completed"`
	CreatedAt   time.Time  `json:"created_at"`
	CompletedAt *time.Time `json:"completed_at"` // set iff Completed
}

// Status returns the display status of the task
func (t Task) Status() string {
	if t.Completed {
		return "done"
	}
	return "todo"
}

// Due parses DueDate back into a calendar date (UTC midnight)
func (t Task) Due() (time.Time, error) {
	return time.Parse(DateLayout, t.DueDate)
}

// Draft holds the not-yet-submitted form values
type Draft struct {
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	Due           time.Time `json:"due"`
	PickerVisible bool      `json:"picker_visible"`
}
