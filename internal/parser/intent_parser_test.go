package parser

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/balkashynov/daylist/internal/tasklist"
)

func TestParseScript(t *testing.T) {
	script := `# groceries
title Buy milk
desc 2% milk

open
date tomorrow
submit
toggle 1
delete 1
date none
close
`
	intents, err := ParseScript(strings.NewReader(script), now)
	require.NoError(t, err)

	tomorrow := time.Date(2026, time.October, 20, 0, 0, 0, 0, time.UTC)
	want := []Intent{
		{Line: 2, Action: tasklist.DraftTitleChanged{Text: "Buy milk"}},
		{Line: 3, Action: tasklist.DraftDescriptionChanged{Text: "2% milk"}},
		{Line: 5, Action: tasklist.OpenDatePicker{}},
		{Line: 6, Action: tasklist.DateSelected{Date: &tomorrow}},
		{Line: 7, Action: tasklist.SubmitAddTask{}},
		{Line: 8, Action: tasklist.ToggleTask{ID: 1}},
		{Line: 9, Action: tasklist.DeleteTask{ID: 1}},
		{Line: 10, Action: tasklist.DateSelected{}},
		{Line: 11, Action: tasklist.CloseDatePicker{}},
	}
	assert.Equal(t, want, intents)
}

func TestParseScript_Errors(t *testing.T) {
	tests := []struct {
		name     string
		script   string
		wantLine int
		contains string
	}{
		{name: "unknown verb", script: "title a\nfly away\n", wantLine: 2, contains: "unknown intent"},
		{name: "bad id", script: "toggle x\n", wantLine: 1, contains: "invalid task ID"},
		{name: "zero id", script: "\n\ndelete 0\n", wantLine: 3, contains: "invalid task ID"},
		{name: "bad date", script: "date someday\n", wantLine: 1, contains: "invalid date"},
		{name: "uppercase verb", script: "TITLE x\n", wantLine: 1, contains: "invalid intent"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseScript(strings.NewReader(tt.script), now)
			require.Error(t, err)

			var serr *ScriptError
			require.True(t, errors.As(err, &serr))
			assert.Equal(t, tt.wantLine, serr.Line)
			assert.Contains(t, err.Error(), tt.contains)
		})
	}
}

func TestParseIntent_TextIsVerbatim(t *testing.T) {
	action, err := ParseIntent("title  ", now)
	require.NoError(t, err)
	assert.Equal(t, tasklist.DraftTitleChanged{Text: " "}, action)

	action, err = ParseIntent("desc", now)
	require.NoError(t, err)
	assert.Equal(t, tasklist.DraftDescriptionChanged{Text: ""}, action)
}
