package tasklist

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/balkashynov/daylist/internal/models"
)

// fakeJournal collects entries in memory.
type fakeJournal struct {
	entries []models.JournalEntry
	err     error
}

func (f *fakeJournal) Record(_ context.Context, entry models.JournalEntry) error {
	if f.err != nil {
		return f.err
	}
	f.entries = append(f.entries, entry)
	return nil
}

func newTestController(opts ...Option) *Controller {
	return New(append([]Option{WithClock(func() time.Time { return testNow })}, opts...)...)
}

func TestController_Scenarios(t *testing.T) {
	ctx := context.Background()

	t.Run("add with tomorrow succeeds", func(t *testing.T) {
		c := newTestController()
		task, err := c.AddTask(ctx, "Buy milk", "2% milk", tomorrow())
		require.NoError(t, err)
		assert.False(t, task.Completed)
		assert.Nil(t, task.CompletedAt)
		assert.Equal(t, tomorrow().Format("2006-01-02"), task.DueDate)
	})

	t.Run("add with yesterday fails", func(t *testing.T) {
		c := newTestController()
		_, err := c.AddTask(ctx, "Buy milk", "2% milk", yesterday())
		assert.ErrorIs(t, err, ErrPastOrInvalidDate)
		assert.Empty(t, c.Tasks())
	})

	t.Run("add with empty fields fails", func(t *testing.T) {
		c := newTestController()
		_, err := c.AddTask(ctx, "", "", tomorrow())
		assert.ErrorIs(t, err, ErrMissingFields)
	})

	t.Run("toggle first of two", func(t *testing.T) {
		c := newTestController()
		a, err := c.AddTask(ctx, "A", "a", tomorrow())
		require.NoError(t, err)
		b, err := c.AddTask(ctx, "B", "b", tomorrow())
		require.NoError(t, err)
		require.Equal(t, uint(1), a.ID)
		require.Equal(t, uint(2), b.ID)

		c.ToggleCompletion(ctx, 1)

		tasks := c.Tasks()
		require.Len(t, tasks, 2)
		assert.True(t, tasks[0].Completed)
		assert.NotNil(t, tasks[0].CompletedAt)
		assert.Equal(t, b, tasks[1])
	})

	t.Run("delete middle of three", func(t *testing.T) {
		c := newTestController()
		for _, title := range []string{"A", "B", "C"} {
			_, err := c.AddTask(ctx, title, title, tomorrow())
			require.NoError(t, err)
		}

		c.DeleteTask(ctx, 2)

		assert.Equal(t, []uint{1, 3}, ids(c.Tasks()))
	})
}

func TestController_DraftFlow(t *testing.T) {
	ctx := context.Background()
	c := newTestController()
	due := tomorrow()

	c.SetDraftTitle(ctx, "Buy milk")
	c.SetDraftDescription(ctx, "2% milk")
	c.ShowDatePicker(ctx)
	assert.True(t, c.Draft().PickerVisible)
	c.SelectDate(ctx, &due)
	assert.False(t, c.Draft().PickerVisible)

	c.ShowDatePicker(ctx)
	c.SelectDate(ctx, nil)
	assert.Equal(t, due, c.Draft().Due, "cancel keeps the picked date")

	c.ShowDatePicker(ctx)
	c.HideDatePicker(ctx)
	assert.False(t, c.Draft().PickerVisible)

	task, err := c.Submit(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Buy milk", task.Title)
	assert.Equal(t, models.Draft{Due: testNow}, c.Draft())
}

func TestController_StateIsASnapshot(t *testing.T) {
	ctx := context.Background()
	c := newTestController()
	_, err := c.AddTask(ctx, "A", "a", tomorrow())
	require.NoError(t, err)

	snap := c.State()
	snap.Tasks[0].Title = "changed"

	assert.Equal(t, "A", c.Tasks()[0].Title)
}

func TestController_Journal(t *testing.T) {
	ctx := context.Background()
	j := &fakeJournal{}
	c := newTestController(WithJournal(j))

	c.SetDraftTitle(ctx, "typing is not journaled")
	_, err := c.AddTask(ctx, "A", "a", tomorrow())
	require.NoError(t, err)
	_, err = c.AddTask(ctx, "B", "b", yesterday())
	require.Error(t, err)
	c.ToggleCompletion(ctx, 1)
	c.DeleteTask(ctx, 7)
	c.ShowDatePicker(ctx)

	require.Len(t, j.entries, 5)
	assert.Equal(t, models.JournalEntry{Action: "add", TaskID: 1, Outcome: models.OutcomeOK}, j.entries[0])
	assert.Equal(t, "add", j.entries[1].Action)
	assert.Equal(t, models.OutcomeRejected, j.entries[1].Outcome)
	assert.Contains(t, j.entries[1].Message, ErrPastOrInvalidDate.Error())
	assert.Equal(t, models.JournalEntry{Action: "toggle", TaskID: 1, Outcome: models.OutcomeOK}, j.entries[2])
	assert.Equal(t, models.JournalEntry{Action: "delete", TaskID: 7, Outcome: models.OutcomeNoop}, j.entries[3])
	assert.Equal(t, "open", j.entries[4].Action)
}

func TestController_JournalFailureDoesNotFailAction(t *testing.T) {
	ctx := context.Background()
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	c := newTestController(WithJournal(&fakeJournal{err: errors.New("disk full")}), WithLogger(logger))

	_, err := c.AddTask(ctx, "A", "a", tomorrow())
	require.NoError(t, err)
	assert.Len(t, c.Tasks(), 1)
	assert.Contains(t, buf.String(), "journal write failed")
	assert.Contains(t, buf.String(), "disk full")
}

func TestController_LogsRejections(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	c := newTestController(WithLogger(logger))

	_, err := c.AddTask(context.Background(), "", "", tomorrow())
	require.Error(t, err)
	assert.Contains(t, buf.String(), "reason=MissingFields")
}
