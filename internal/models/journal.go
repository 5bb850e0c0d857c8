package models

import (
	"time"
)

// Journal outcomes
const (
	OutcomeOK       = "ok"
	OutcomeRejected = "rejected"
	OutcomeNoop     = "noop"
)

// JournalEntry records one action dispatched to the task list during a session
type JournalEntry struct {
	ID        uint      `gorm:"primarykey" json:"seq"`
	CreatedAt time.Time `json:"at"`

	Action  string `gorm:"not null;index" json:"action"`
	TaskID  uint   `json:"task_id,omitempty"` // 0 when the action has no target
	Outcome string `gorm:"not null;default:ok" json:"outcome"`
	Message string `json:"message,omitempty"`
}

// JournalCount is one row of the per-action journal summary
type JournalCount struct {
	Action  string `json:"action"`
	Outcome string `json:"outcome"`
	Count   int64  `json:"count"`
}
