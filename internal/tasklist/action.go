package tasklist

import "time"

// Action is the sealed interface for every intent the task list accepts.
//
// go-sumtype:decl Action
type Action interface {
	// Name identifies the action in logs and the journal.
	Name() string
	sealed()
}

// DraftTitleChanged replaces the draft title.
type DraftTitleChanged struct {
	Text string
}

func (DraftTitleChanged) Name() string { return "title" }
func (DraftTitleChanged) sealed()      {}

// DraftDescriptionChanged replaces the draft description.
type DraftDescriptionChanged struct {
	Text string
}

func (DraftDescriptionChanged) Name() string { return "desc" }
func (DraftDescriptionChanged) sealed()      {}

// OpenDatePicker shows the date picker.
type OpenDatePicker struct{}

func (OpenDatePicker) Name() string { return "open" }
func (OpenDatePicker) sealed()      {}

// CloseDatePicker hides the date picker without touching the draft date.
type CloseDatePicker struct{}

func (CloseDatePicker) Name() string { return "close" }
func (CloseDatePicker) sealed()      {}

// DateSelected is the date picker result. A nil Date keeps the current
// draft date. The picker is closed either way.
type DateSelected struct {
	Date *time.Time
}

func (DateSelected) Name() string { return "date" }
func (DateSelected) sealed()      {}

// SubmitAddTask creates a task from the draft.
type SubmitAddTask struct{}

func (SubmitAddTask) Name() string { return "submit" }
func (SubmitAddTask) sealed()      {}

// AddTask creates a task from explicit values, bypassing the draft fields.
// On success the draft is reset just like SubmitAddTask.
type AddTask struct {
	Title       string
	Description string
	Due         time.Time
}

func (AddTask) Name() string { return "add" }
func (AddTask) sealed()      {}

// ToggleTask flips the completion of a task.
type ToggleTask struct {
	ID uint
}

func (ToggleTask) Name() string { return "toggle" }
func (ToggleTask) sealed()      {}

// DeleteTask removes a task.
type DeleteTask struct {
	ID uint
}

func (DeleteTask) Name() string { return "delete" }
func (DeleteTask) sealed()      {}

// targetID returns the task an action refers to, or 0.
func targetID(a Action) uint {
	switch a := a.(type) {
	case ToggleTask:
		return a.ID
	case DeleteTask:
		return a.ID
	}
	return 0
}

// journaled reports whether an action is worth a journal entry.
// Keystroke-level draft edits are not.
func journaled(a Action) bool {
	switch a.(type) {
	case DraftTitleChanged, DraftDescriptionChanged:
		return false
	}
	return true
}
