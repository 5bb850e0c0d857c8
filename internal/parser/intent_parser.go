package parser

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/balkashynov/daylist/internal/tasklist"
)

// Intent is one parsed script line
type Intent struct {
	Line   int
	Action tasklist.Action
}

// ScriptError reports the line a script failed on
type ScriptError struct {
	Line int
	Err  error
}

func (e *ScriptError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *ScriptError) Unwrap() error {
	return e.Err
}

var verbRegex = regexp.MustCompile(`^[a-z]+$`)

// ParseScript reads one intent per line.
// Syntax:
//
//	title <text>     draft title
//	desc <text>      draft description
//	open             open the date picker
//	date <due>       pick a date (see ParseDueDate)
//	date none        dismiss the picker keeping the current date
//	close            hide the picker
//	submit           add a task from the draft
//	toggle <id>      complete/uncomplete a task
//	delete <id>      delete a task
//
// Blank lines and lines starting with # are ignored. Text arguments are
// taken verbatim after the first space, so "title  " sets a one-space title.
func ParseScript(r io.Reader, now time.Time) ([]Intent, error) {
	var intents []Intent

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), "\r")
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		action, err := ParseIntent(strings.TrimLeft(line, " \t"), now)
		if err != nil {
			return nil, &ScriptError{Line: lineNo, Err: err}
		}
		intents = append(intents, Intent{Line: lineNo, Action: action})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read script: %w", err)
	}

	return intents, nil
}

// ParseIntent parses a single script line into an action
func ParseIntent(line string, now time.Time) (tasklist.Action, error) {
	verb, arg, _ := strings.Cut(line, " ")
	if !verbRegex.MatchString(verb) {
		return nil, fmt.Errorf("invalid intent %q", line)
	}

	switch verb {
	case "title":
		return tasklist.DraftTitleChanged{Text: arg}, nil
	case "desc":
		return tasklist.DraftDescriptionChanged{Text: arg}, nil
	case "open":
		return tasklist.OpenDatePicker{}, nil
	case "close":
		return tasklist.CloseDatePicker{}, nil
	case "submit":
		return tasklist.SubmitAddTask{}, nil
	case "date":
		arg = strings.TrimSpace(arg)
		if arg == "none" || arg == "" {
			return tasklist.DateSelected{}, nil
		}
		due, err := ParseDueDate(arg, now)
		if err != nil {
			return nil, fmt.Errorf("invalid date %q: %w", arg, err)
		}
		return tasklist.DateSelected{Date: &due}, nil
	case "toggle", "delete":
		id, err := strconv.ParseUint(strings.TrimSpace(arg), 10, 32)
		if err != nil || id == 0 {
			return nil, fmt.Errorf("invalid task ID '%s'", strings.TrimSpace(arg))
		}
		if verb == "toggle" {
			return tasklist.ToggleTask{ID: uint(id)}, nil
		}
		return tasklist.DeleteTask{ID: uint(id)}, nil
	default:
		return nil, fmt.Errorf("unknown intent %q", verb)
	}
}
