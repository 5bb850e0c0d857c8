package tasklist

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"time"

	"github.com/balkashynov/daylist/internal/models"
)

// Recorder stores a journal entry for every dispatched action.
type Recorder interface {
	Record(ctx context.Context, entry models.JournalEntry) error
}

// Controller owns the task list of one session and is its only mutator.
// It is not safe for concurrent use; a session has one event loop.
type Controller struct {
	now     func() time.Time
	log     *slog.Logger
	journal Recorder
	state   State
}

// Option configures a Controller.
type Option func(*Controller)

// WithClock sets the time source used for validation and timestamps.
func WithClock(now func() time.Time) Option {
	return func(c *Controller) { c.now = now }
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *Controller) { c.log = l }
}

// WithJournal records every dispatched action.
func WithJournal(r Recorder) Option {
	return func(c *Controller) { c.journal = r }
}

// New creates a Controller with an empty list.
func New(opts ...Option) *Controller {
	c := &Controller{
		now: time.Now,
		log: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.state = NewState(c.now())
	return c
}

// State returns a snapshot of the current state.
func (c *Controller) State() State {
	return c.state.Clone()
}

// Tasks returns the tasks in insertion order.
func (c *Controller) Tasks() []models.Task {
	return c.State().Tasks
}

// Draft returns the current draft form values.
func (c *Controller) Draft() models.Draft {
	return c.state.Draft
}

// Dispatch applies an action. Only adding a task can fail, with a
// *ValidationError; toggling or deleting an unknown id is a no-op.
func (c *Controller) Dispatch(ctx context.Context, a Action) error {
	outcome := models.OutcomeOK
	if id := targetID(a); id != 0 && c.state.Index(id) < 0 {
		outcome = models.OutcomeNoop
	}

	next, err := Reduce(c.state, a, c.now())
	message := ""
	if err != nil {
		outcome = models.OutcomeRejected
		message = err.Error()
		var verr *ValidationError
		if errors.As(err, &verr) {
			c.log.Info("action rejected", "action", a.Name(), "reason", verr.Kind.String())
		} else {
			c.log.Error("action failed", "action", a.Name(), "error", err)
		}
	} else {
		c.state = next
		c.log.Debug("action applied", "action", a.Name(), "outcome", outcome, "tasks", len(next.Tasks))
	}

	c.record(ctx, a, outcome, message)
	return err
}

// record writes the journal entry; journal trouble never fails an action.
func (c *Controller) record(ctx context.Context, a Action, outcome, message string) {
	if c.journal == nil || !journaled(a) {
		return
	}

	taskID := targetID(a)
	if outcome == models.OutcomeOK && (a.Name() == "submit" || a.Name() == "add") {
		taskID = c.state.LastID
	}

	entry := models.JournalEntry{
		Action:  a.Name(),
		TaskID:  taskID,
		Outcome: outcome,
		Message: message,
	}
	if err := c.journal.Record(ctx, entry); err != nil {
		c.log.Warn("journal write failed", "action", a.Name(), "error", err)
	}
}

// AddTask validates and appends a new task, then resets the draft.
func (c *Controller) AddTask(ctx context.Context, title, description string, due time.Time) (models.Task, error) {
	if err := c.Dispatch(ctx, AddTask{Title: title, Description: description, Due: due}); err != nil {
		return models.Task{}, err
	}
	return c.state.Tasks[len(c.state.Tasks)-1], nil
}

// Submit adds a task from the draft fields.
func (c *Controller) Submit(ctx context.Context) (models.Task, error) {
	if err := c.Dispatch(ctx, SubmitAddTask{}); err != nil {
		return models.Task{}, err
	}
	return c.state.Tasks[len(c.state.Tasks)-1], nil
}

// ToggleCompletion flips a task between active and completed.
func (c *Controller) ToggleCompletion(ctx context.Context, id uint) {
	_ = c.Dispatch(ctx, ToggleTask{ID: id})
}

// DeleteTask removes a task by id.
func (c *Controller) DeleteTask(ctx context.Context, id uint) {
	_ = c.Dispatch(ctx, DeleteTask{ID: id})
}

// SetDraftTitle sets the draft title.
func (c *Controller) SetDraftTitle(ctx context.Context, text string) {
	_ = c.Dispatch(ctx, DraftTitleChanged{Text: text})
}

// SetDraftDescription sets the draft description.
func (c *Controller) SetDraftDescription(ctx context.Context, text string) {
	_ = c.Dispatch(ctx, DraftDescriptionChanged{Text: text})
}

// ShowDatePicker marks the date picker visible.
func (c *Controller) ShowDatePicker(ctx context.Context) {
	_ = c.Dispatch(ctx, OpenDatePicker{})
}

// HideDatePicker hides the date picker.
func (c *Controller) HideDatePicker(ctx context.Context) {
	_ = c.Dispatch(ctx, CloseDatePicker{})
}

// SelectDate hands the picker result to the draft; nil keeps the current date.
func (c *Controller) SelectDate(ctx context.Context, date *time.Time) {
	_ = c.Dispatch(ctx, DateSelected{Date: date})
}
