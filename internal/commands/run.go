package commands

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/balkashynov/daylist/internal/db"
	"github.com/balkashynov/daylist/internal/models"
	"github.com/balkashynov/daylist/internal/parser"
	"github.com/balkashynov/daylist/internal/tasklist"
)

type runResult struct {
	Tasks    []models.Task `json:"tasks"`
	Rejected int           `json:"rejected"`
}

func newRunCommand(root *rootOptions) *cobra.Command {
	var opts struct {
		JSON   bool
		Strict bool
	}

	cmd := &cobra.Command{
		Use:   "run <script>",
		Short: "Replay an intent script and print the resulting list",
		Long: `Replay a script of user intents against a fresh list, then print it.

One intent per line; blank lines and lines starting with # are ignored:

  title <text>      set the draft title
  desc <text>       set the draft description
  open              open the date picker
  date <due>        pick a date (yyyy-mm-dd, dd/mm/yyyy, today, tomorrow, 3 days, 2 weeks)
  date none         close the picker keeping the current date
  close             close the picker
  submit            add a task from the draft
  toggle <id>       complete or undo a task
  delete <id>       delete a task

Rejected submits are reported on stderr and the run continues.
Use - to read the script from stdin.

Examples:
  daylist run errands.txt
  daylist run --json --strict - < errands.txt`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, closeIn, err := openScript(args[0], cmd.InOrStdin())
			if err != nil {
				return err
			}
			defer closeIn()

			intents, err := parser.ParseScript(in, clock())
			if err != nil {
				return err
			}

			s, err := openSession(*root)
			if err != nil {
				return err
			}
			defer s.Close()

			ctx := cmd.Context()
			ctrl := s.controller()
			rejected, err := replay(ctx, ctrl, intents, cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			result := runResult{Tasks: ctrl.Tasks(), Rejected: rejected}
			if result.Tasks == nil {
				result.Tasks = []models.Task{}
			}

			out := cmd.OutOrStdout()
			if opts.JSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				if err := enc.Encode(result); err != nil {
					return fmt.Errorf("encode result: %w", err)
				}
			} else {
				printTasks(out, result.Tasks, s.cfg.DateLayout)
			}

			if root.journalSummary {
				if err := printSummary(ctx, out, s.journal); err != nil {
					return err
				}
			}

			if opts.Strict && rejected > 0 {
				return fmt.Errorf("%d submit(s) rejected", rejected)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&opts.JSON, "json", false, "Print the list as JSON")
	cmd.Flags().BoolVar(&opts.Strict, "strict", false, "Fail when any submit was rejected")

	return cmd
}

func openScript(path string, stdin io.Reader) (io.Reader, func(), error) {
	if path == "-" {
		return stdin, func() {}, nil
	}

	f, err := os.Open(path) //nolint:gosec // Script path comes from the command line
	if err != nil {
		return nil, nil, fmt.Errorf("open script: %w", err)
	}
	return f, func() { _ = f.Close() }, nil
}

// replay dispatches every intent in order. Validation failures are reported
// and counted; anything else stops the run.
func replay(ctx context.Context, ctrl *tasklist.Controller, intents []parser.Intent, errOut io.Writer) (int, error) {
	rejected := 0
	for _, intent := range intents {
		err := ctrl.Dispatch(ctx, intent.Action)
		if err == nil {
			continue
		}

		var verr *tasklist.ValidationError
		if !errors.As(err, &verr) {
			return rejected, fmt.Errorf("line %d: %w", intent.Line, err)
		}
		rejected++
		_, _ = fmt.Fprintf(errOut, "line %d: %s\n", intent.Line, verr.Message())
	}
	return rejected, nil
}

func printTasks(out io.Writer, tasks []models.Task, layout string) {
	if len(tasks) == 0 {
		_, _ = fmt.Fprintln(out, "No tasks.")
		return
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "ID\tSTATUS\tTITLE\tDUE\tDESCRIPTION")
	for _, task := range tasks {
		due := task.DueDate
		if d, err := task.Due(); err == nil {
			due = d.Format(layout)
		}
		_, _ = fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n",
			task.ID,
			task.Status(),
			truncate(task.Title, 38),
			due,
			truncate(task.Description, 50))
	}
	_ = w.Flush()
}

// truncate shortens s to at most n runes
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n-3]) + "..."
}

func printSummary(ctx context.Context, out io.Writer, journal *db.Journal) error {
	counts, err := journal.Summary(ctx)
	if err != nil {
		return fmt.Errorf("journal summary: %w", err)
	}

	_, _ = fmt.Fprintln(out)
	_, _ = fmt.Fprintln(out, "Journal")
	_, _ = fmt.Fprintln(out, strings.Repeat("-", 30))
	if len(counts) == 0 {
		_, _ = fmt.Fprintln(out, "no actions recorded")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	for _, c := range counts {
		_, _ = fmt.Fprintf(w, "%s\t%s\t%d\n", c.Action, c.Outcome, c.Count)
	}
	return w.Flush()
}
