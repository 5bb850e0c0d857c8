// Package commands wires the daylist CLI.
package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/balkashynov/daylist/internal/config"
	"github.com/balkashynov/daylist/internal/db"
	"github.com/balkashynov/daylist/internal/logging"
	"github.com/balkashynov/daylist/internal/parser"
	"github.com/balkashynov/daylist/internal/tasklist"
	"github.com/balkashynov/daylist/internal/tui"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// clock is the time source for every command; tests replace it.
var clock = time.Now

// launchTUIFunc starts the interactive screen; tests replace it.
var launchTUIFunc = tui.Run

// SetVersion sets the version information
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the root command
func Execute() error {
	return NewRootCommand().ExecuteContext(context.Background())
}

type rootOptions struct {
	configPath     string
	logLevel       string
	journalSummary bool
	title          string
	description    string
	due            string
}

// NewRootCommand creates the daylist command tree.
func NewRootCommand() *cobra.Command {
	var opts rootOptions

	root := &cobra.Command{
		Use:   "daylist",
		Short: "A task list for one terminal session",
		Long: `daylist keeps a list of tasks for the length of one session.
Add a task with a title, a description and a future due date, tick it off
when it's done, delete it when it's not needed. Nothing is saved when
you quit.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInteractive(cmd, opts)
		},
	}

	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "Config file (default $XDG_CONFIG_HOME/daylist/config.toml)")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "Override log_level: debug|info|warn|error")
	root.PersistentFlags().BoolVar(&opts.journalSummary, "journal-summary", false, "Print action counts when the session ends")

	root.Flags().StringVarP(&opts.title, "title", "t", "", "Pre-fill the task title")
	root.Flags().StringVarP(&opts.description, "desc", "d", "", "Pre-fill the task description")
	root.Flags().StringVar(&opts.due, "due", "", "Pre-fill the due date (yyyy-mm-dd, dd/mm/yyyy, tomorrow, 3 days, 2 weeks)")

	root.AddCommand(newRunCommand(&opts))
	root.AddCommand(newVersionCommand())
	root.SetHelpCommand(newHelpCommand())

	return root
}

func runInteractive(cmd *cobra.Command, opts rootOptions) error {
	tuiOpts := tui.Options{
		Title:       opts.title,
		Description: opts.description,
		Now:         clock,
	}
	if opts.due != "" {
		due, err := parser.ParseDueDate(opts.due, clock())
		if err != nil {
			return fmt.Errorf("invalid --due: %w", err)
		}
		tuiOpts.Due = &due
	}

	s, err := openSession(opts)
	if err != nil {
		return err
	}
	defer s.Close()

	tuiOpts.DateLayout = s.cfg.DateLayout
	tuiOpts.Animations = s.cfg.Animations

	ctx := cmd.Context()
	if err := launchTUIFunc(ctx, s.controller(), tuiOpts); err != nil {
		s.log.Error("tui exited with error", "error", err)
		return err
	}

	if opts.journalSummary {
		return printSummary(ctx, cmd.OutOrStdout(), s.journal)
	}
	return nil
}

// session holds what a command needs for one run: settings, the logger
// and the action journal.
type session struct {
	cfg     *config.Config
	log     *slog.Logger
	logFile io.Closer
	journal *db.Journal
	started time.Time
}

func openSession(opts rootOptions) (*session, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, err
	}
	if opts.logLevel != "" {
		cfg.LogLevel = opts.logLevel
		if err := cfg.Validate(); err != nil {
			return nil, fmt.Errorf("--log-level: %w", err)
		}
	}

	logger, logFile, err := logging.New(cfg.LogFile, logging.ParseLevel(cfg.LogLevel))
	if err != nil {
		return nil, err
	}

	journal, err := db.Open(cfg.Journal)
	if err != nil {
		_ = logFile.Close()
		return nil, err
	}

	s := &session{
		cfg:     cfg,
		log:     logger,
		logFile: logFile,
		journal: journal,
		started: clock(),
	}
	logger.Info("session started", "journal", cfg.Journal, "version", version)
	return s, nil
}

func (s *session) controller() *tasklist.Controller {
	return tasklist.New(
		tasklist.WithClock(clock),
		tasklist.WithLogger(s.log),
		tasklist.WithJournal(s.journal),
	)
}

// Close releases the journal and the log file.
func (s *session) Close() error {
	s.log.Info("session ended", "duration", clock().Sub(s.started).Round(time.Second))
	return errors.Join(s.journal.Close(), s.logFile.Close())
}
