package views

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dkovach/ttm/internal/models"
	"github.com/dkovach/ttm/internal/ui/keys"
	"github.com/dkovach/ttm/internal/ui/styles"
)

// Focus slots on the create-project form.
const (
	createFocusName = iota
	createFocusDesc
	createFocusDeadline
	createFocusColor
	createFocusTaskTitle
	createFocusTaskDeadline
	createFocusTaskTags
	createFocusAddTask
	createFocusSubmit
	createFocusCount
)

// CreateView is the new-project form with its task sub-form. Validation runs
// entirely client-side before any API call.
type CreateView struct {
	env    Env
	styles *styles.Styles
	keys   keys.KeyMap

	width  int
	height int

	name     textinput.Model
	desc     textinput.Model
	deadline textinput.Model
	colorIdx int

	tasks        []models.TaskDraft
	taskTitle    textinput.Model
	taskDeadline textinput.Model
	taskTags     textinput.Model

	focusIdx int
	busy     bool
	errText  string
}

// NewCreateView creates the form.
func NewCreateView(env Env) *CreateView {
	newInput := func(placeholder string, limit int) textinput.Model {
		in := textinput.New()
		in.Placeholder = placeholder
		in.CharLimit = limit
		return in
	}

	v := &CreateView{
		env:          env,
		styles:       styles.NewStyles(),
		keys:         keys.DefaultKeyMap(),
		name:         newInput("Project name", 100),
		desc:         newInput("Description (optional)", 200),
		deadline:     newInput("Deadline (yyyy-mm-dd)", 20),
		taskTitle:    newInput("Task title", 200),
		taskDeadline: newInput("Task deadline (yyyy-mm-dd)", 20),
		taskTags:     newInput("Tags, comma separated", 200),
	}
	v.name.Focus()
	return v
}

func (v *CreateView) Init() tea.Cmd {
	return textinput.Blink
}

type projectCreatedMsg struct {
	name string
	err  error
}

func (v *CreateView) inputs() []*textinput.Model {
	return []*textinput.Model{
		&v.name, &v.desc, &v.deadline, nil,
		&v.taskTitle, &v.taskDeadline, &v.taskTags,
	}
}

func (v *CreateView) updateFocus() {
	for i, in := range v.inputs() {
		if in == nil {
			continue
		}
		if i == v.focusIdx {
			in.Focus()
		} else {
			in.Blur()
		}
	}
}

func (v *CreateView) addTask() {
	title := strings.TrimSpace(v.taskTitle.Value())
	if title == "" {
		return
	}
	var tags []string
	for _, tag := range strings.Split(v.taskTags.Value(), ",") {
		tags = append(tags, strings.TrimSpace(tag))
	}
	v.tasks = append(v.tasks, models.TaskDraft{
		Title:    title,
		Deadline: strings.TrimSpace(v.taskDeadline.Value()),
		Tags:     models.NormalizeTags(tags),
	})
	v.taskTitle.Reset()
	v.taskDeadline.Reset()
	v.taskTags.Reset()
}

func (v *CreateView) submit() tea.Cmd {
	// Capture an unfinished task sub-form before validating.
	v.addTask()

	draft := models.ProjectDraft{
		Name:        strings.TrimSpace(v.name.Value()),
		Description: strings.TrimSpace(v.desc.Value()),
		Color:       models.Palette[v.colorIdx],
		Deadline:    strings.TrimSpace(v.deadline.Value()),
		Tasks:       v.tasks,
	}

	// Validation must pass before the create call goes out.
	if err := draft.Validate(); err != nil {
		v.errText = err.Error()
		return nil
	}

	v.busy = true
	v.errText = ""
	return func() tea.Msg {
		project, err := v.env.API.CreateProject(context.Background(), draft)
		if err != nil {
			return projectCreatedMsg{err: err}
		}
		return projectCreatedMsg{name: project.Name}
	}
}

func (v *CreateView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		return v, nil

	case projectCreatedMsg:
		v.busy = false
		if msg.err != nil {
			v.errText = msg.err.Error()
			return v, nil
		}
		notice := v.env.Tr.T("create.created", map[string]string{"name": msg.name})
		return v, func() tea.Msg { return ShowDashboard{Notice: notice} }

	case tea.KeyMsg:
		if v.busy {
			return v, nil
		}

		switch {
		case msg.String() == "ctrl+c":
			return v, tea.Quit

		case key.Matches(msg, v.keys.Back):
			return v, func() tea.Msg { return ShowDashboard{} }

		case msg.String() == "ctrl+s":
			return v, v.submit()

		case key.Matches(msg, v.keys.Tab):
			v.focusIdx = (v.focusIdx + 1) % createFocusCount
			v.updateFocus()
			return v, nil

		case msg.String() == "shift+tab":
			v.focusIdx = (v.focusIdx + createFocusCount - 1) % createFocusCount
			v.updateFocus()
			return v, nil

		case key.Matches(msg, v.keys.Left):
			if v.focusIdx == createFocusColor {
				v.colorIdx = (v.colorIdx + len(models.Palette) - 1) % len(models.Palette)
				return v, nil
			}

		case key.Matches(msg, v.keys.Right):
			if v.focusIdx == createFocusColor {
				v.colorIdx = (v.colorIdx + 1) % len(models.Palette)
				return v, nil
			}

		case key.Matches(msg, v.keys.Enter):
			switch v.focusIdx {
			case createFocusAddTask:
				v.addTask()
				v.focusIdx = createFocusTaskTitle
				v.updateFocus()
				return v, nil
			case createFocusSubmit:
				return v, v.submit()
			default:
				v.focusIdx = (v.focusIdx + 1) % createFocusCount
				v.updateFocus()
				return v, nil
			}
		}
	}

	var cmd tea.Cmd
	if inputs := v.inputs(); v.focusIdx < len(inputs) && inputs[v.focusIdx] != nil {
		*inputs[v.focusIdx], cmd = inputs[v.focusIdx].Update(msg)
	}
	return v, cmd
}

func (v *CreateView) View() string {
	s := v.styles
	tr := v.env.Tr
	contentWidth := styles.ContentWidth(v.width)
	inputWidth := clamp(contentWidth-6, 20, 50)

	inputStyle := func(idx int) lipgloss.Style {
		if v.focusIdx == idx {
			return s.InputFocused
		}
		return s.Input
	}

	// Color swatches with the selected one highlighted.
	var swatches []string
	for i, color := range models.Palette {
		dot := lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render("●")
		if i == v.colorIdx {
			dot = "[" + dot + "]"
		} else {
			dot = " " + dot + " "
		}
		swatches = append(swatches, dot)
	}
	colorRow := strings.Join(swatches, " ")
	if v.focusIdx == createFocusColor {
		colorRow = s.InputFocused.Render(colorRow)
	}

	var taskRows []string
	for i, task := range v.tasks {
		taskRows = append(taskRows, s.TitleMuted.Render(
			fmt.Sprintf("%d. %s (%s) %s", i+1, task.Title, task.Deadline, strings.Join(task.Tags, ", ")),
		))
	}
	if len(taskRows) == 0 {
		taskRows = append(taskRows, s.TitleMuted.Render("No tasks yet"))
	}

	addStyle := s.Button
	if v.focusIdx == createFocusAddTask {
		addStyle = s.ButtonFocused
	}
	submitStyle := s.Button
	if v.focusIdx == createFocusSubmit {
		submitStyle = s.ButtonFocused
	}
	submitLabel := " " + tr.T("common.save", nil) + " "
	if v.busy {
		submitLabel = " " + tr.T("create.creating", nil) + " "
		submitStyle = s.ButtonPrimary
	}

	rows := []string{
		s.Title.Render(tr.T("create.title", nil)),
		"",
		"Name:",
		inputStyle(createFocusName).Width(inputWidth).Render(v.name.View()),
		"Description:",
		inputStyle(createFocusDesc).Width(inputWidth).Render(v.desc.View()),
		"Deadline:",
		inputStyle(createFocusDeadline).Width(inputWidth).Render(v.deadline.View()),
		"Color:",
		colorRow,
		"",
		"Tasks:",
	}
	rows = append(rows, taskRows...)
	rows = append(rows,
		"",
		inputStyle(createFocusTaskTitle).Width(inputWidth).Render(v.taskTitle.View()),
		inputStyle(createFocusTaskDeadline).Width(inputWidth).Render(v.taskDeadline.View()),
		inputStyle(createFocusTaskTags).Width(inputWidth).Render(v.taskTags.View()),
		addStyle.Render(" + Task "),
		"",
		submitStyle.Render(submitLabel),
	)

	if v.errText != "" {
		rows = append(rows, "", s.ErrorText.Render(v.errText))
	}
	rows = append(rows, "",
		s.TitleMuted.Render("Tab: next • ←→: color • Ctrl+S: save • Esc: cancel"),
	)

	form := lipgloss.JoinVertical(lipgloss.Left, rows...)
	centered := lipgloss.Place(contentWidth, v.height,
		lipgloss.Center, lipgloss.Center,
		form,
	)
	return styles.CenterView(centered, v.width, v.height)
}
