package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/balkashynov/daylist/internal/models"
	"github.com/balkashynov/daylist/internal/parser"
	"github.com/balkashynov/daylist/internal/tasklist"
)

// Focus identifies the element receiving keys
type Focus int

const (
	FocusTitle Focus = iota
	FocusDescription
	FocusDue
	FocusAdd
	FocusList
	focusCount
)

// Options prefill the form and tune rendering
type Options struct {
	Title       string
	Description string
	Due         *time.Time
	DateLayout  string
	Animations  bool
	Now         func() time.Time
}

// Model is the single daylist screen: the add form and the task list
type Model struct {
	ctx  context.Context
	ctrl *tasklist.Controller

	keys KeyMap
	help help.Model

	titleInput textinput.Model
	descInput  textinput.Model
	focus      Focus
	selected   int
	picker     DatePicker

	alert  string
	notice string

	layout  string
	now     func() time.Time
	shimmer *Shimmer
	ticking bool

	width    int
	height   int
	quitting bool
}

func newInput(placeholder string, limit int) textinput.Model {
	in := textinput.New()
	in.Placeholder = placeholder
	in.CharLimit = limit
	in.Width = 40
	in.TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPrimaryText))
	in.PlaceholderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPlaceholder))
	in.Cursor.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentBright))
	return in
}

// NewModel creates the screen. Prefilled values are dispatched to the
// controller so the draft and the inputs agree.
func NewModel(ctx context.Context, ctrl *tasklist.Controller, opts Options) Model {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.DateLayout == "" {
		opts.DateLayout = "02/01/2006"
	}

	keys := DefaultKeyMap()
	m := Model{
		ctx:        ctx,
		ctrl:       ctrl,
		keys:       keys,
		help:       help.New(),
		titleInput: newInput("What needs doing?", 200),
		descInput:  newInput("Details", 500),
		picker:     NewDatePicker(keys),
		layout:     opts.DateLayout,
		now:        opts.Now,
		shimmer:    NewShimmer(DefaultShimmerConfig(opts.Animations)),
	}
	m.help.Styles.ShortKey = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSecondaryText))
	m.help.Styles.ShortDesc = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorHelpText))

	if opts.Title != "" {
		m.titleInput.SetValue(opts.Title)
		ctrl.SetDraftTitle(ctx, opts.Title)
	}
	if opts.Description != "" {
		m.descInput.SetValue(opts.Description)
		ctrl.SetDraftDescription(ctx, opts.Description)
	}
	if opts.Due != nil {
		ctrl.SelectDate(ctx, opts.Due)
	}

	m.titleInput.Focus()
	m.shimmer.SetActive(false)
	return m
}

// Init starts the cursor blink
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Focused returns the element with focus
func (m Model) Focused() Focus {
	return m.focus
}

// Alert returns the current validation message, if any
func (m Model) Alert() string {
	return m.alert
}

// Selected returns the index of the highlighted task
func (m Model) Selected() int {
	return m.selected
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

		inputWidth := max(20, min(60, msg.Width/2-12))
		m.titleInput.Width = inputWidth
		m.descInput.Width = inputWidth
		return m, nil

	case shimmerTickMsg:
		if !m.shimmer.Active() {
			m.ticking = false
			return m, nil
		}
		if task, ok := m.selectedTask(); ok {
			m.shimmer.Advance(len([]rune(task.Title)))
		}
		return m, m.shimmer.Tick()

	case PickerResultMsg:
		m.ctrl.SelectDate(m.ctx, msg.Date)
		return m, nil

	case tea.KeyMsg:
		if m.picker.Visible() {
			var cmd tea.Cmd
			m.picker, cmd = m.picker.Update(msg)
			return m, cmd
		}
		return m.handleKey(msg)
	}

	return m.updateInputs(msg)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.Submit):
		return m.submit()
	case key.Matches(msg, m.keys.NextField):
		cmd := m.setFocus((m.focus + 1) % focusCount)
		return m, cmd
	case key.Matches(msg, m.keys.PrevField):
		cmd := m.setFocus((m.focus + focusCount - 1) % focusCount)
		return m, cmd
	}

	switch m.focus {
	case FocusTitle, FocusDescription:
		if key.Matches(msg, m.keys.Enter) {
			cmd := m.setFocus(m.focus + 1)
			return m, cmd
		}
		return m.updateInputs(msg)

	case FocusDue:
		if key.Matches(msg, m.keys.Enter) {
			m.ctrl.ShowDatePicker(m.ctx)
			m.picker = m.picker.Open(m.ctrl.Draft().Due, m.now())
		}

	case FocusAdd:
		if key.Matches(msg, m.keys.Enter) {
			return m.submit()
		}

	case FocusList:
		return m.handleListKey(msg)
	}

	return m, nil
}

func (m Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	task, ok := m.selectedTask()
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Up):
		if m.selected > 0 {
			m.selected--
			m.shimmer.Reset()
		}
	case key.Matches(msg, m.keys.Down):
		if m.selected < len(m.ctrl.Tasks())-1 {
			m.selected++
			m.shimmer.Reset()
		}
	case key.Matches(msg, m.keys.Toggle):
		m.ctrl.ToggleCompletion(m.ctx, task.ID)
	case key.Matches(msg, m.keys.Delete):
		m.ctrl.DeleteTask(m.ctx, task.ID)
		m.notice = fmt.Sprintf("Deleted %q", task.Title)
		m.clampSelection()
	}

	return m, nil
}

// updateInputs forwards msg to the focused text input and mirrors its
// value into the draft
func (m Model) updateInputs(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.focus {
	case FocusTitle:
		before := m.titleInput.Value()
		m.titleInput, cmd = m.titleInput.Update(msg)
		if value := m.titleInput.Value(); value != before {
			m.ctrl.SetDraftTitle(m.ctx, value)
			m.alert = ""
		}
	case FocusDescription:
		before := m.descInput.Value()
		m.descInput, cmd = m.descInput.Update(msg)
		if value := m.descInput.Value(); value != before {
			m.ctrl.SetDraftDescription(m.ctx, value)
			m.alert = ""
		}
	}
	return m, cmd
}

func (m *Model) setFocus(f Focus) tea.Cmd {
	m.focus = f
	m.titleInput.Blur()
	m.descInput.Blur()

	var cmds []tea.Cmd
	switch f {
	case FocusTitle:
		cmds = append(cmds, m.titleInput.Focus())
	case FocusDescription:
		cmds = append(cmds, m.descInput.Focus())
	}

	m.shimmer.SetActive(f == FocusList)
	if m.shimmer.Active() && !m.ticking {
		m.ticking = true
		m.shimmer.Reset()
		cmds = append(cmds, m.shimmer.Tick())
	}

	return tea.Batch(cmds...)
}

func (m Model) submit() (tea.Model, tea.Cmd) {
	task, err := m.ctrl.Submit(m.ctx)
	if err != nil {
		m.notice = ""
		var verr *tasklist.ValidationError
		if errors.As(err, &verr) {
			m.alert = verr.Message()
		} else {
			m.alert = err.Error()
		}
		return m, nil
	}

	m.alert = ""
	m.notice = fmt.Sprintf("Added %q", task.Title)
	m.titleInput.SetValue("")
	m.descInput.SetValue("")
	m.selected = len(m.ctrl.Tasks()) - 1
	cmd := m.setFocus(FocusTitle)
	return m, cmd
}

func (m Model) selectedTask() (models.Task, bool) {
	tasks := m.ctrl.Tasks()
	if m.selected < 0 || m.selected >= len(tasks) {
		return models.Task{}, false
	}
	return tasks[m.selected], true
}

func (m *Model) clampSelection() {
	n := len(m.ctrl.Tasks())
	if m.selected >= n {
		m.selected = n - 1
	}
	if m.selected < 0 {
		m.selected = 0
	}
	m.shimmer.Reset()
}

// View renders the screen
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.picker.Visible() {
		return lipgloss.Place(
			m.width, m.height,
			lipgloss.Center, lipgloss.Center,
			m.picker.View()+"\n"+m.help.View(pickerKeys{m.keys}),
		)
	}

	form := m.renderForm()
	list := m.renderList()

	var body string
	if m.width >= 90 {
		half := m.width/2 - 2
		body = lipgloss.JoinHorizontal(
			lipgloss.Top,
			m.panelStyle(m.focus != FocusList).Width(half).Render(form),
			" ",
			m.panelStyle(m.focus == FocusList).Width(half).Render(list),
		)
	} else {
		body = lipgloss.JoinVertical(
			lipgloss.Left,
			m.panelStyle(m.focus != FocusList).Render(form),
			m.panelStyle(m.focus == FocusList).Render(list),
		)
	}

	return body + "\n" + m.help.View(m.helpKeys())
}

func (m Model) helpKeys() help.KeyMap {
	if m.focus == FocusList {
		return listKeys{m.keys}
	}
	return formKeys{m.keys}
}

func (m Model) panelStyle(focused bool) lipgloss.Style {
	border := ColorBorder
	if focused {
		border = ColorBorderFocus
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(border)).
		Padding(0, 1)
}

func (m Model) renderForm() string {
	var b strings.Builder

	headerStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccentBright)).
		MarginBottom(1)
	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSecondaryText))
	focusLabelStyle := labelStyle.Foreground(lipgloss.Color(ColorAccentBright)).Bold(true)

	label := func(f Focus, text string) string {
		if m.focus == f {
			return focusLabelStyle.Render("▶ " + text)
		}
		return labelStyle.Render("  " + text)
	}

	b.WriteString(headerStyle.Render("New task"))
	b.WriteString("\n")

	b.WriteString(label(FocusTitle, "Title"))
	b.WriteString("\n  ")
	b.WriteString(m.titleInput.View())
	b.WriteString("\n\n")

	b.WriteString(label(FocusDescription, "Description"))
	b.WriteString("\n  ")
	b.WriteString(m.descInput.View())
	b.WriteString("\n\n")

	b.WriteString(label(FocusDue, "Due date"))
	b.WriteString("\n  ")
	b.WriteString(m.button(FocusDue, m.ctrl.Draft().Due.Format(m.layout)))
	b.WriteString("\n\n  ")
	b.WriteString(m.button(FocusAdd, "Add task"))
	b.WriteString("\n")

	if m.alert != "" {
		alertStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorError)).
			Bold(true).
			MarginTop(1)
		b.WriteString(alertStyle.Render("✗ " + m.alert))
		b.WriteString("\n")
	} else if m.notice != "" {
		noticeStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorSuccess)).
			MarginTop(1)
		b.WriteString(noticeStyle.Render("✓ " + m.notice))
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) button(f Focus, text string) string {
	style := lipgloss.NewStyle().
		Padding(0, 2).
		Foreground(lipgloss.Color(ColorPrimaryText)).
		Background(lipgloss.Color(ColorBorder))
	if m.focus == f {
		style = style.
			Foreground(lipgloss.Color("#000000")).
			Background(lipgloss.Color(ColorAccentMain)).
			Bold(true)
	}
	return style.Render(text)
}

func (m Model) renderList() string {
	var b strings.Builder
	tasks := m.ctrl.Tasks()
	now := m.now()

	headerStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccentBright)).
		MarginBottom(1)
	b.WriteString(headerStyle.Render(fmt.Sprintf("Tasks (%d)", len(tasks))))
	b.WriteString("\n")

	if len(tasks) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorDisabledText)).
			Italic(true)
		b.WriteString(emptyStyle.Render("No tasks yet."))
		return b.String()
	}

	titleStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPrimaryText)).Bold(true)
	doneStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSuccess)).Strikethrough(true)
	descStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSecondaryText))
	metaStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorDisabledText))
	linkStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorLink)).Underline(true)
	stamp := "15:04 " + m.layout

	for i, task := range tasks {
		selected := i == m.selected && m.focus == FocusList

		marker := "  "
		if selected {
			marker = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentBright)).Render("▶ ")
		}

		var title string
		switch {
		case task.Completed:
			title = doneStyle.Render(task.Title)
		case selected && m.shimmer.Active():
			title = m.shimmer.Render(task.Title)
		default:
			title = titleStyle.Render(task.Title)
		}

		action := "Complete"
		if task.Completed {
			action = "Undo"
		}

		fmt.Fprintf(&b, "%s%s  %s\n", marker, title, linkStyle.Render(action))
		fmt.Fprintf(&b, "  %s\n", descStyle.Render(task.Description))
		fmt.Fprintf(&b, "  %s\n", metaStyle.Render(parser.FormatDueDate(task.DueDate, m.layout, now)))

		meta := "added " + task.CreatedAt.Format(stamp)
		if task.CompletedAt != nil {
			meta += " · completed " + task.CompletedAt.Format(stamp)
		}
		fmt.Fprintf(&b, "  %s\n", metaStyle.Render(meta))

		if i < len(tasks)-1 {
			b.WriteString("\n")
		}
	}

	return b.String()
}
