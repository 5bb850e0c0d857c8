// Package tasklist holds the session's task list state and the reducer
// that is the only way to change it.
package tasklist

import (
	"fmt"
	"slices"
	"time"

	"github.com/balkashynov/daylist/internal/models"
)

// State is the whole task list of a session.
// Tasks are kept in insertion order.
type State struct {
	Tasks  []models.Task
	Draft  models.Draft
	LastID uint // last identifier handed out, never decreases
}

// NewState returns an empty list whose draft due date is now.
func NewState(now time.Time) State {
	return State{Draft: models.Draft{Due: now}}
}

// Index returns the position of the task with the given id, or -1.
func (s State) Index(id uint) int {
	return slices.IndexFunc(s.Tasks, func(t models.Task) bool { return t.ID == id })
}

// Task returns the task with the given id.
func (s State) Task(id uint) (models.Task, bool) {
	i := s.Index(id)
	if i < 0 {
		return models.Task{}, false
	}
	return s.Tasks[i], true
}

// Clone returns a copy that shares nothing mutable with s.
func (s State) Clone() State {
	s.Tasks = slices.Clone(s.Tasks)
	return s
}

// Reduce applies an action and returns the resulting state.
// The input state is never modified. On error the returned state is the
// input state.
func Reduce(s State, a Action, now time.Time) (State, error) {
	switch a := a.(type) {
	case DraftTitleChanged:
		s.Draft.Title = a.Text
	case DraftDescriptionChanged:
		s.Draft.Description = a.Text
	case OpenDatePicker:
		s.Draft.PickerVisible = true
	case CloseDatePicker:
		s.Draft.PickerVisible = false
	case DateSelected:
		if a.Date != nil {
			s.Draft.Due = *a.Date
		}
		s.Draft.PickerVisible = false
	case SubmitAddTask:
		return addTask(s, s.Draft.Title, s.Draft.Description, s.Draft.Due, now)
	case AddTask:
		return addTask(s, a.Title, a.Description, a.Due, now)
	case ToggleTask:
		return toggleTask(s, a.ID, now), nil
	case DeleteTask:
		return deleteTask(s, a.ID), nil
	default:
		return s, fmt.Errorf("unknown action %T", a)
	}
	return s, nil
}

// NormalizeDueDate formats a picked date as YYYY-MM-DD in its own location.
func NormalizeDueDate(due time.Time) string {
	return due.Format(models.DateLayout)
}

// IsFutureDate reports whether the canonical date string, read as midnight
// UTC, is strictly after now. Unparseable strings are not in the future.
func IsFutureDate(canonical string, now time.Time) bool {
	d, err := time.Parse(models.DateLayout, canonical)
	if err != nil {
		return false
	}
	return d.After(now)
}

// Validate checks the inputs of a new task and returns the canonical due date.
// Emptiness is checked literally, whitespace-only text is accepted.
func Validate(title, description string, due time.Time, now time.Time) (string, error) {
	if title == "" || description == "" {
		return "", &ValidationError{Kind: MissingFields}
	}
	canonical := NormalizeDueDate(due)
	if !IsFutureDate(canonical, now) {
		return "", &ValidationError{Kind: PastOrInvalidDate}
	}
	return canonical, nil
}

func addTask(s State, title, description string, due time.Time, now time.Time) (State, error) {
	canonical, err := Validate(title, description, due, now)
	if err != nil {
		return s, err
	}

	id := s.LastID + 1
	task := models.Task{
		ID:          id,
		Title:       title,
		Description: description,
		DueDate:     canonical,
		Completed:   false,
		CreatedAt:   now,
	}

	tasks := make([]models.Task, 0, len(s.Tasks)+1)
	tasks = append(tasks, s.Tasks...)
	s.Tasks = append(tasks, task)
	s.LastID = id
	s.Draft = models.Draft{Due: now}
	return s, nil
}

func toggleTask(s State, id uint, now time.Time) State {
	i := s.Index(id)
	if i < 0 {
		return s
	}

	s.Tasks = slices.Clone(s.Tasks)
	t := s.Tasks[i]
	t.Completed = !t.Completed
	if t.Completed {
		at := now
		t.CompletedAt = &at
	} else {
		t.CompletedAt = nil
	}
	s.Tasks[i] = t
	return s
}

func deleteTask(s State, id uint) State {
	i := s.Index(id)
	if i < 0 {
		return s
	}
	s.Tasks = slices.Delete(slices.Clone(s.Tasks), i, i+1)
	return s
}
