package views

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dkovach/ttm/internal/models"
	"github.com/dkovach/ttm/internal/ui/keys"
	"github.com/dkovach/ttm/internal/ui/styles"
)

var projectFilterOrder = []models.ProjectFilter{
	models.FilterAll,
	models.FilterActive,
	models.FilterCompleted,
	models.FilterOverdue,
	models.FilterArchived,
}

var taskFilterOrder = []models.TaskStatus{
	"",
	models.TaskNew,
	models.TaskInProgress,
	models.TaskSubmitted,
	models.TaskHelpRequested,
	models.TaskDeclined,
	models.TaskCompleted,
}

// DashboardView is the main project list with the filter pipeline, task
// drill-down and all status transitions.
type DashboardView struct {
	env    Env
	styles *styles.Styles
	keys   keys.KeyMap

	width  int
	height int

	// gen tags load requests so a response arriving after a newer request
	// is discarded instead of clobbering fresher state.
	gen      int
	loading  bool
	projects []models.Project

	errText string
	notice  string

	tagInput      textinput.Model
	tagFocused    bool
	projFilterIdx int
	taskFilterIdx int
	cursor        int

	// Task drill-down into the selected project.
	detail     bool
	detailID   int64
	taskCursor int

	// Rating form for a completed task.
	rating     bool
	rateTaskID int64
	rateInputs [3]textinput.Model
	rateFocus  int

	confirmingDelete bool
	deleteTargetID   int64

	busy      bool
	busyLabel string
}

// NewDashboardView creates the dashboard; Notice seeds the success banner
// shown after navigation (e.g. "project created").
func NewDashboardView(env Env, notice string) *DashboardView {
	tag := textinput.New()
	tag.Placeholder = "Tag..."
	tag.CharLimit = 50

	v := &DashboardView{
		env:      env,
		styles:   styles.NewStyles(),
		keys:     keys.DefaultKeyMap(),
		tagInput: tag,
		notice:   notice,
	}
	for i := range v.rateInputs {
		in := textinput.New()
		in.Placeholder = "1-10"
		in.CharLimit = 2
		v.rateInputs[i] = in
	}
	return v
}

func (v *DashboardView) Init() tea.Cmd {
	cmds := []tea.Cmd{v.loadProjects()}
	if v.notice != "" {
		cmds = append(cmds, clearNoticeLater())
	}
	return tea.Batch(cmds...)
}

type dashLoadedMsg struct {
	gen      int
	projects []models.Project
	err      error
}

type dashActionMsg struct {
	err    error
	notice string
}

func (v *DashboardView) loadProjects() tea.Cmd {
	v.gen++
	v.loading = true
	gen := v.gen
	return func() tea.Msg {
		projects, err := v.env.API.MyProjects(context.Background())
		return dashLoadedMsg{gen: gen, projects: projects, err: err}
	}
}

func (v *DashboardView) filters() models.Filters {
	return models.Filters{
		Tag:        strings.TrimSpace(v.tagInput.Value()),
		Project:    projectFilterOrder[v.projFilterIdx],
		TaskStatus: taskFilterOrder[v.taskFilterIdx],
		Archived:   v.env.Local.ArchivedSet(),
		Now:        time.Now(),
	}
}

// visible runs the filter pipeline over the fetched projects.
func (v *DashboardView) visible() []models.Project {
	return models.FilterProjects(v.projects, v.filters())
}

func (v *DashboardView) selected() (models.Project, bool) {
	vis := v.visible()
	if len(vis) == 0 || v.cursor >= len(vis) {
		return models.Project{}, false
	}
	return vis[v.cursor], true
}

func (v *DashboardView) selectedTask() (models.Task, bool) {
	p, ok := v.selected()
	if !ok || len(p.Tasks) == 0 || v.taskCursor >= len(p.Tasks) {
		return models.Task{}, false
	}
	return p.Tasks[v.taskCursor], true
}

// patchTask applies an optimistic local patch. The reload that follows every
// mutation stays authoritative; this only bridges the gap.
func (v *DashboardView) patchTask(taskID int64, patch func(*models.Task)) {
	for pi := range v.projects {
		for ti := range v.projects[pi].Tasks {
			if v.projects[pi].Tasks[ti].ID == taskID {
				patch(&v.projects[pi].Tasks[ti])
				return
			}
		}
	}
}

func (v *DashboardView) patchProject(projectID int64, patch func(*models.Project)) {
	for i := range v.projects {
		if v.projects[i].ID == projectID {
			patch(&v.projects[i])
			return
		}
	}
}

func (v *DashboardView) runAction(label, notice string, call func(context.Context) error) tea.Cmd {
	v.busy = true
	v.busyLabel = label
	v.errText = ""
	return func() tea.Msg {
		err := call(context.Background())
		if err != nil {
			return dashActionMsg{err: err}
		}
		return dashActionMsg{notice: notice}
	}
}

func (v *DashboardView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		return v, nil

	case dashLoadedMsg:
		if msg.gen != v.gen {
			return v, nil
		}
		v.loading = false
		if msg.err != nil {
			v.errText = msg.err.Error()
			return v, nil
		}
		v.projects = msg.projects
		if vis := v.visible(); v.cursor >= len(vis) {
			v.cursor = max(0, len(vis)-1)
		}
		return v, nil

	case dashActionMsg:
		v.busy = false
		v.busyLabel = ""
		if msg.err != nil {
			v.errText = msg.err.Error()
			return v, nil
		}
		v.notice = msg.notice
		cmds := []tea.Cmd{v.loadProjects()}
		if msg.notice != "" {
			cmds = append(cmds, clearNoticeLater())
		}
		return v, tea.Batch(cmds...)

	case clearNoticeMsg:
		v.notice = ""
		return v, nil

	case tea.KeyMsg:
		if v.busy {
			return v, nil
		}
		if v.confirmingDelete {
			return v.updateConfirmDelete(msg)
		}
		if v.rating {
			return v.updateRating(msg)
		}
		if v.tagFocused {
			return v.updateTagInput(msg)
		}
		if v.detail {
			return v.updateDetail(msg)
		}
		return v.updateNormal(msg)
	}

	return v, nil
}

func (v *DashboardView) updateTagInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, v.keys.Back):
		v.tagInput.Reset()
		v.tagInput.Blur()
		v.tagFocused = false
		return v, nil
	case key.Matches(msg, v.keys.Enter):
		v.tagInput.Blur()
		v.tagFocused = false
		v.cursor = 0
		return v, nil
	}
	var cmd tea.Cmd
	v.tagInput, cmd = v.tagInput.Update(msg)
	return v, cmd
}

func (v *DashboardView) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, v.keys.Quit):
		return v, tea.Quit

	case key.Matches(msg, v.keys.Up):
		if v.cursor > 0 {
			v.cursor--
		}
		return v, nil

	case key.Matches(msg, v.keys.Down):
		if v.cursor < len(v.visible())-1 {
			v.cursor++
		}
		return v, nil

	case key.Matches(msg, v.keys.Search):
		v.tagFocused = true
		v.tagInput.Focus()
		return v, textinput.Blink

	case key.Matches(msg, v.keys.Filter):
		v.projFilterIdx = (v.projFilterIdx + 1) % len(projectFilterOrder)
		v.cursor = 0
		return v, nil

	case msg.String() == "t":
		v.taskFilterIdx = (v.taskFilterIdx + 1) % len(taskFilterOrder)
		return v, nil

	case key.Matches(msg, v.keys.New):
		return v, func() tea.Msg { return ShowCreateProject{} }

	case msg.String() == "2":
		return v, func() tea.Msg { return ShowCalendar{} }
	case msg.String() == "3":
		return v, func() tea.Msg { return ShowParticipants{} }
	case msg.String() == "4":
		return v, func() tea.Msg { return ShowHistory{} }
	case msg.String() == "5":
		return v, func() tea.Msg { return ShowAcceptInvite{} }

	case key.Matches(msg, v.keys.Enter):
		if p, ok := v.selected(); ok {
			v.detail = true
			v.detailID = p.ID
			v.taskCursor = 0
		}
		return v, nil

	case key.Matches(msg, v.keys.Archive):
		p, ok := v.selected()
		if !ok {
			return v, nil
		}
		// Local-only hide, independent of server-side completion.
		if v.env.Local.ArchivedSet()[p.ID] {
			v.env.Local.UnarchiveProject(p.ID)
			v.notice = ""
		} else {
			v.env.Local.ArchiveProject(p.ID)
			v.notice = v.env.Tr.T("dashboard.archivedOk", nil)
		}
		v.cursor = 0
		if v.notice != "" {
			return v, clearNoticeLater()
		}
		return v, nil

	case key.Matches(msg, v.keys.Complete):
		p, ok := v.selected()
		if !ok || !v.env.Session.IsAdmin() {
			return v, nil
		}
		user := *v.env.Session.CurrentUser()
		if p.Status == models.ProjectCompleted {
			v.patchProject(p.ID, func(pp *models.Project) { pp.Reopen() })
			return v, v.runAction("", "", func(ctx context.Context) error {
				return v.env.API.SetProjectStatus(ctx, p.ID, models.ProjectActive)
			})
		}
		v.patchProject(p.ID, func(pp *models.Project) { pp.Complete(user, time.Now()) })
		return v, v.runAction("", "", func(ctx context.Context) error {
			return v.env.API.SetProjectStatus(ctx, p.ID, models.ProjectCompleted)
		})

	case key.Matches(msg, v.keys.Delete):
		if p, ok := v.selected(); ok && v.env.Session.IsAdmin() {
			v.confirmingDelete = true
			v.deleteTargetID = p.ID
		}
		return v, nil

	case msg.String() == "ctrl+q":
		v.env.Session.Logout()
		return v, func() tea.Msg { return LoggedOut{} }
	}

	return v, nil
}

func (v *DashboardView) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	p, ok := v.selected()
	if !ok || p.ID != v.detailID {
		v.detail = false
		return v, nil
	}

	switch {
	case key.Matches(msg, v.keys.Back):
		v.detail = false
		return v, nil

	case key.Matches(msg, v.keys.Quit):
		return v, tea.Quit

	case key.Matches(msg, v.keys.Up):
		if v.taskCursor > 0 {
			v.taskCursor--
		}
		return v, nil

	case key.Matches(msg, v.keys.Down):
		if v.taskCursor < len(p.Tasks)-1 {
			v.taskCursor++
		}
		return v, nil

	case key.Matches(msg, v.keys.Submit):
		task, ok := v.selectedTask()
		if !ok || !models.CanSubmit(task, v.env.Session.CurrentUser()) {
			return v, nil
		}
		user := *v.env.Session.CurrentUser()
		v.patchTask(task.ID, func(t *models.Task) { t.Submit(user, time.Now()) })
		return v, v.runAction(v.env.Tr.T("dashboard.submitting", nil), "", func(ctx context.Context) error {
			return v.env.API.SubmitTask(ctx, task.ID)
		})

	case key.Matches(msg, v.keys.Complete):
		// Approve and complete share the endpoint; the label differs.
		task, ok := v.selectedTask()
		if !ok || !v.env.Session.IsAdmin() || !models.CanComplete(task.Status) {
			return v, nil
		}
		user := *v.env.Session.CurrentUser()
		v.patchTask(task.ID, func(t *models.Task) { t.Complete(user, time.Now()) })
		return v, v.runAction("", "", func(ctx context.Context) error {
			return v.env.API.CompleteTask(ctx, task.ID)
		})

	case key.Matches(msg, v.keys.Reopen):
		task, ok := v.selectedTask()
		if !ok || !v.env.Session.IsAdmin() || !models.CanReopen(task.Status) {
			return v, nil
		}
		v.patchTask(task.ID, func(t *models.Task) { t.Reopen() })
		return v, v.runAction("", "", func(ctx context.Context) error {
			return v.env.API.ReopenTask(ctx, task.ID)
		})

	case key.Matches(msg, v.keys.Grade):
		task, ok := v.selectedTask()
		if !ok || !v.env.Session.IsAdmin() || task.Status != models.TaskCompleted {
			return v, nil
		}
		v.rating = true
		v.rateTaskID = task.ID
		v.rateFocus = 0
		for i := range v.rateInputs {
			v.rateInputs[i].Reset()
		}
		v.rateInputs[0].Focus()
		return v, textinput.Blink
	}

	return v, nil
}

func (v *DashboardView) updateRating(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, v.keys.Back):
		v.rating = false
		return v, nil

	case key.Matches(msg, v.keys.Tab):
		v.rateInputs[v.rateFocus].Blur()
		v.rateFocus = (v.rateFocus + 1) % len(v.rateInputs)
		v.rateInputs[v.rateFocus].Focus()
		return v, nil

	case key.Matches(msg, v.keys.Enter):
		if v.rateFocus < len(v.rateInputs)-1 {
			v.rateInputs[v.rateFocus].Blur()
			v.rateFocus++
			v.rateInputs[v.rateFocus].Focus()
			return v, nil
		}
		rating := models.Rating{
			Punctuality: atoiOrZero(v.rateInputs[0].Value()),
			Teamwork:    atoiOrZero(v.rateInputs[1].Value()),
			Quality:     atoiOrZero(v.rateInputs[2].Value()),
		}
		if !rating.Valid() {
			v.errText = "scores must be between 1 and 10"
			return v, nil
		}
		taskID := v.rateTaskID
		v.rating = false
		return v, v.runAction("", "rating saved", func(ctx context.Context) error {
			return v.env.API.RateTask(ctx, taskID, rating)
		})
	}

	var cmd tea.Cmd
	v.rateInputs[v.rateFocus], cmd = v.rateInputs[v.rateFocus].Update(msg)
	return v, cmd
}

func (v *DashboardView) updateConfirmDelete(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		v.confirmingDelete = false
		id := v.deleteTargetID
		v.detail = false
		return v, v.runAction(v.env.Tr.T("dashboard.deleting", nil), "", func(ctx context.Context) error {
			return v.env.API.DeleteProject(ctx, id)
		})
	case "n", "N", "esc":
		v.confirmingDelete = false
		return v, nil
	}
	return v, nil
}

func atoiOrZero(s string) int {
	n, _ := strconv.Atoi(strings.TrimSpace(s))
	return n
}

func (v *DashboardView) View() string {
	if v.confirmingDelete {
		return v.renderConfirm("Delete project?")
	}
	if v.rating {
		return v.renderRatingForm()
	}
	if v.detail {
		return v.renderDetail()
	}
	return v.renderList()
}

func (v *DashboardView) renderList() string {
	s := v.styles
	tr := v.env.Tr
	contentWidth := styles.ContentWidth(v.width)

	var b strings.Builder
	b.WriteString(s.Title.Render(tr.T("dashboard.title", nil)))
	b.WriteString("\n")
	b.WriteString(v.renderFilterBar())
	b.WriteString("\n\n")

	if v.loading && v.projects == nil {
		b.WriteString(s.TitleMuted.Render(tr.T("common.loading", nil)))
	} else if vis := v.visible(); len(vis) == 0 {
		b.WriteString(s.TitleMuted.Render(tr.T("dashboard.empty", nil)))
	} else {
		for i, p := range vis {
			b.WriteString(v.renderProjectItem(p, i == v.cursor, contentWidth))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(v.renderStatusLine())
	b.WriteString("\n")
	b.WriteString(s.Help.Render(
		fmt.Sprintf("%s open • %s new • %s tag • %s filter • %s task filter • %s archive • %s complete • %s del • %s-%s pages • %s quit",
			s.HelpKey.Render("↵"), s.HelpKey.Render("n"), s.HelpKey.Render("/"),
			s.HelpKey.Render("f"), s.HelpKey.Render("t"), s.HelpKey.Render("a"),
			s.HelpKey.Render("c"), s.HelpKey.Render("d"),
			s.HelpKey.Render("2"), s.HelpKey.Render("5"), s.HelpKey.Render("q")),
	))

	return styles.CenterView(b.String(), v.width, v.height)
}

func (v *DashboardView) renderFilterBar() string {
	s := v.styles

	tagBox := v.tagInput.View()
	tagStyle := s.Input
	if v.tagFocused {
		tagStyle = s.InputFocused
	}

	taskFilter := string(taskFilterOrder[v.taskFilterIdx])
	if taskFilter == "" {
		taskFilter = "any task"
	}

	return lipgloss.JoinHorizontal(lipgloss.Center,
		tagStyle.Width(20).Render(tagBox),
		"  ",
		s.Button.Render(string(projectFilterOrder[v.projFilterIdx])),
		"  ",
		s.Button.Render(taskFilter),
	)
}

func (v *DashboardView) renderProjectItem(p models.Project, selected bool, contentWidth int) string {
	s := v.styles
	width := max(contentWidth-4, 20)

	urgency := models.Classify(p.Deadline, time.Now())
	swatch := lipgloss.NewStyle().Foreground(lipgloss.Color(p.Color)).Render("●")

	title := fmt.Sprintf("%s %s", swatch, p.Name)
	if p.Status == models.ProjectCompleted {
		title += " ✓"
	}

	meta := fmt.Sprintf("%s  %s",
		s.Tone(urgency.Tone).Render(urgency.Label),
		s.TitleMuted.Render(v.env.Tr.T("dashboard.taskCount", map[string]string{
			"count": strconv.Itoa(len(p.Tasks)),
		})),
	)

	titleStyle := s.ListItem.Width(width)
	metaStyle := s.ListItem.Width(width)
	if selected {
		titleStyle = s.ListSelected.Width(width)
		metaStyle = s.ListSelected.Width(width)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(title),
		metaStyle.Render(meta),
	)
}

func (v *DashboardView) renderDetail() string {
	s := v.styles
	contentWidth := styles.ContentWidth(v.width)

	p, ok := v.selected()
	if !ok {
		return ""
	}

	var b strings.Builder
	b.WriteString(s.Title.Render(p.Name))
	b.WriteString("\n")

	urgency := models.Classify(p.Deadline, time.Now())
	b.WriteString(s.Tone(urgency.Tone).Render(urgency.Label))
	if p.Status == models.ProjectCompleted && p.CompletedBy != nil {
		b.WriteString("  " + s.TitleMuted.Render(v.env.Tr.T("dashboard.completed", map[string]string{
			"name": p.CompletedBy.Name,
		})))
	}
	b.WriteString("\n\n")

	if len(p.Tasks) == 0 {
		b.WriteString(s.TitleMuted.Render("No tasks"))
	}
	for i, task := range p.Tasks {
		b.WriteString(v.renderTaskItem(task, i == v.taskCursor, contentWidth))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(v.renderStatusLine())
	b.WriteString("\n")

	approveLabel := "complete"
	if task, ok := v.selectedTask(); ok && task.Status == models.TaskSubmitted {
		approveLabel = "approve"
	}
	b.WriteString(s.Help.Render(
		fmt.Sprintf("%s submit • %s %s • %s reopen • %s rate • %s back",
			s.HelpKey.Render("s"), s.HelpKey.Render("c"), approveLabel,
			s.HelpKey.Render("r"), s.HelpKey.Render("g"), s.HelpKey.Render("esc")),
	))

	return styles.CenterView(b.String(), v.width, v.height)
}

func (v *DashboardView) renderTaskItem(task models.Task, selected bool, contentWidth int) string {
	s := v.styles
	width := max(contentWidth-4, 20)

	urgency := models.Classify(task.Deadline, time.Now())

	assignee := "unassigned"
	if task.AssignedTo != nil {
		assignee = task.AssignedTo.Name
	}

	title := fmt.Sprintf("%s  [%s]", task.Title, task.Status)
	meta := fmt.Sprintf("%s  %s  %s",
		s.Tone(urgency.Tone).Render(urgency.Label),
		s.TitleMuted.Render(assignee),
		s.TitleMuted.Render(strings.Join(task.Tags, " ")),
	)

	titleStyle := s.ListItem.Width(width)
	metaStyle := s.ListItem.Width(width)
	if selected {
		titleStyle = s.ListSelected.Width(width)
		metaStyle = s.ListSelected.Width(width)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(title),
		metaStyle.Render(meta),
	)
}

func (v *DashboardView) renderRatingForm() string {
	s := v.styles
	contentWidth := styles.ContentWidth(v.width)

	labels := []string{"Punctuality", "Teamwork", "Quality"}
	rows := []string{s.Title.Render("Rate task"), ""}
	for i, label := range labels {
		style := s.Input
		if v.rateFocus == i {
			style = s.InputFocused
		}
		rows = append(rows, label+":", style.Width(10).Render(v.rateInputs[i].View()), "")
	}
	if v.errText != "" {
		rows = append(rows, s.ErrorText.Render(v.errText), "")
	}
	rows = append(rows, s.TitleMuted.Render("Tab: next • ↵: save • Esc: cancel"))

	form := lipgloss.JoinVertical(lipgloss.Left, rows...)
	centered := lipgloss.Place(contentWidth, v.height,
		lipgloss.Center, lipgloss.Center,
		form,
	)
	return styles.CenterView(centered, v.width, v.height)
}

func (v *DashboardView) renderConfirm(question string) string {
	s := v.styles
	contentWidth := styles.ContentWidth(v.width)

	content := lipgloss.JoinVertical(lipgloss.Center,
		s.Title.Foreground(styles.Current.Error).Render(question),
		"",
		lipgloss.JoinHorizontal(lipgloss.Center,
			s.ButtonPrimary.Render(" Y - "+v.env.Tr.T("common.yes", nil)+" "),
			"  ",
			s.Button.Render(" N - "+v.env.Tr.T("common.no", nil)+" "),
		),
	)

	centered := lipgloss.Place(contentWidth, v.height,
		lipgloss.Center, lipgloss.Center,
		content,
	)
	return styles.CenterView(centered, v.width, v.height)
}

func (v *DashboardView) renderStatusLine() string {
	s := v.styles
	switch {
	case v.busy && v.busyLabel != "":
		return s.StatusBar.Render(v.busyLabel)
	case v.busy:
		return s.StatusBar.Render("Working...")
	case v.errText != "":
		return s.ErrorText.Render(v.errText)
	case v.notice != "":
		return s.Notice.Render(v.notice)
	}
	return ""
}
