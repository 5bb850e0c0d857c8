package db

import (
	"context"
	"fmt"

	"github.com/balkashynov/daylist/internal/models"
)

// Record appends an entry to the journal
func (j *Journal) Record(ctx context.Context, entry models.JournalEntry) error {
	if entry.Action == "" {
		return fmt.Errorf("journal entry has no action")
	}
	if entry.Outcome == "" {
		entry.Outcome = models.OutcomeOK
	}

	if err := j.db.WithContext(ctx).Create(&entry).Error; err != nil {
		return fmt.Errorf("failed to record %s: %w", entry.Action, err)
	}
	return nil
}

// Entries returns all journal entries in the order they were recorded
func (j *Journal) Entries(ctx context.Context) ([]models.JournalEntry, error) {
	var entries []models.JournalEntry

	err := j.db.WithContext(ctx).
		Order("id ASC").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}

	return entries, nil
}

// EntriesForTask returns the entries that targeted one task
func (j *Journal) EntriesForTask(ctx context.Context, taskID uint) ([]models.JournalEntry, error) {
	var entries []models.JournalEntry

	err := j.db.WithContext(ctx).
		Where("task_id = ?", taskID).
		Order("id ASC").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}

	return entries, nil
}

// Summary counts journal entries per action and outcome
func (j *Journal) Summary(ctx context.Context) ([]models.JournalCount, error) {
	var counts []models.JournalCount

	err := j.db.WithContext(ctx).
		Model(&models.JournalEntry{}).
		Select("action, outcome, COUNT(*) AS count").
		Group("action, outcome").
		Order("action ASC, outcome ASC").
		Scan(&counts).Error
	if err != nil {
		return nil, err
	}

	return counts, nil
}
