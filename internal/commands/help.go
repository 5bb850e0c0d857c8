package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
)

func newHelpCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "help [command]",
		Short: "Show commands, flags and keybindings",
		Long:  `Display detailed help for daylist commands, flags and the keys of the interactive screen.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				sub, _, err := cmd.Root().Find(args)
				if err != nil {
					return err
				}
				return sub.Help()
			}
			showCustomHelp(cmd.OutOrStdout())
			return nil
		},
	}
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "daylist %s (commit %s, built %s)\n", version, commit, date)
		},
	}
}

type helpSection struct {
	title    string
	commands []helpCommand
}

type helpCommand struct {
	name        string
	description string
	examples    []string
	flags       []helpFlag
}

type helpFlag struct {
	name        string
	description string
}

var helpSections = []helpSection{
	{
		title: "COMMANDS",
		commands: []helpCommand{
			{
				name:        "daylist",
				description: "Open the task list",
				flags: []helpFlag{
					{"-t, --title", "Pre-fill the title"},
					{"-d, --desc", "Pre-fill the description"},
					{"--due", "Pre-fill the due date (yyyy-mm-dd, dd/mm/yyyy, tomorrow, 3 days, 2 weeks)"},
					{"--config", "Config file"},
					{"--log-level", "debug|info|warn|error"},
					{"--journal-summary", "Print action counts on exit"},
				},
				examples: []string{`daylist --title "Buy milk" --desc "2% milk" --due tomorrow`},
			},
			{
				name:        "run <script>",
				description: "Replay an intent script and print the list",
				flags: []helpFlag{
					{"--json", "JSON output"},
					{"--strict", "Exit non-zero when a submit was rejected"},
				},
				examples: []string{"daylist run errands.txt", "daylist run --json - < errands.txt"},
			},
			{name: "version", description: "Print version information"},
			{name: "help", description: "Show this help"},
		},
	},
	{
		title: "FORM KEYS",
		commands: []helpCommand{
			{name: "tab / shift+tab", description: "Move between title, description, due date, add and the list"},
			{name: "enter", description: "Next field; on the due date, open the date picker; on add, add the task"},
			{name: "ctrl+s", description: "Add the task from anywhere"},
		},
	},
	{
		title: "LIST KEYS",
		commands: []helpCommand{
			{name: "↑/↓ or k/j", description: "Select a task"},
			{name: "space or x", description: "Complete / undo"},
			{name: "d", description: "Delete"},
		},
	},
	{
		title: "DATE PICKER",
		commands: []helpCommand{
			{name: "←/→", description: "Previous / next day"},
			{name: "↑/↓", description: "Previous / next week"},
			{name: "pgup/pgdn", description: "Previous / next month"},
			{name: "t", description: "Today"},
			{name: "enter", description: "Pick the highlighted day"},
			{name: "esc", description: "Close without changing the date"},
		},
	},
	{
		title: "GENERAL",
		commands: []helpCommand{
			{name: "f1", description: "Toggle full help"},
			{name: "esc / ctrl+c", description: "Quit (tasks are not saved)"},
		},
	},
}

func showCustomHelp(out io.Writer) {
	var b strings.Builder

	b.WriteString("\ndaylist - a task list for one terminal session\n")
	b.WriteString("Due dates must be after today. Nothing is kept after you quit.\n")

	for _, section := range helpSections {
		fmt.Fprintf(&b, "\n%s:\n\n", section.title)
		for _, c := range section.commands {
			fmt.Fprintf(&b, "  %-22s %s\n", c.name, c.description)
			for _, f := range c.flags {
				fmt.Fprintf(&b, "    %-20s %s\n", f.name, f.description)
			}
			if len(c.examples) > 0 {
				b.WriteString("\n    Example:\n")
				for _, ex := range c.examples {
					fmt.Fprintf(&b, "      %s\n", ex)
				}
				b.WriteString("\n")
			}
		}
	}
	b.WriteString("\n")

	_, _ = io.WriteString(out, b.String())
}
