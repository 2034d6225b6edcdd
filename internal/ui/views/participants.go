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

type partMode int

const (
	partNormal partMode = iota
	partDetail
	partAddEmail
	partLists
	partNewList
	partConfirmDelete
	partPickProject
	partPickTask
	partRate
)

type pickPurpose int

const (
	pickAssignProject pickPurpose = iota
	pickAssignTask
	pickInvite
	pickRate
)

// ParticipantsView manages the colleague roster: invites, lists, assignment
// and project ratings.
type ParticipantsView struct {
	env    Env
	styles *styles.Styles
	keys   keys.KeyMap

	width  int
	height int

	gen        int
	loading    bool
	colleagues []models.Colleague
	lists      []models.ColleagueList
	projects   []models.Project

	mode       partMode
	cursor     int
	listCursor int
	listFilter int // index into lists+1; 0 = all

	purpose    pickPurpose
	pickCursor int
	tasks      []models.Task
	pickedID   int64 // project picked for the task step

	// Per-tag rating aggregates for the colleague shown in detail.
	performance []models.TagPerformance
	perfLoading bool

	emailInput textinput.Model
	listInput  textinput.Model
	rateInputs [3]textinput.Model
	rateFocus  int

	deleteTargetID int64

	busy    bool
	errText string
	notice  string
}

// NewParticipantsView creates the roster page.
func NewParticipantsView(env Env) *ParticipantsView {
	email := textinput.New()
	email.Placeholder = "colleague@example.com"
	email.CharLimit = 200

	listName := textinput.New()
	listName.Placeholder = "List name"
	listName.CharLimit = 100

	v := &ParticipantsView{
		env:        env,
		styles:     styles.NewStyles(),
		keys:       keys.DefaultKeyMap(),
		emailInput: email,
		listInput:  listName,
	}
	for i := range v.rateInputs {
		in := textinput.New()
		in.Placeholder = "1-10"
		in.CharLimit = 2
		v.rateInputs[i] = in
	}
	return v
}

func (v *ParticipantsView) Init() tea.Cmd {
	return v.load()
}

type participantsLoadedMsg struct {
	gen        int
	colleagues []models.Colleague
	lists      []models.ColleagueList
	projects   []models.Project
	err        error
}

type participantTasksMsg struct {
	gen   int
	tasks []models.Task
	err   error
}

type participantActionMsg struct {
	err    error
	notice string
}

type participantPerfMsg struct {
	gen  int
	perf []models.TagPerformance
	err  error
}

func (v *ParticipantsView) loadPerformance(colleagueID int64) tea.Cmd {
	v.gen++
	v.perfLoading = true
	gen := v.gen
	return func() tea.Msg {
		perf, err := v.env.API.ColleaguePerformance(context.Background(), colleagueID)
		return participantPerfMsg{gen: gen, perf: perf, err: err}
	}
}

func (v *ParticipantsView) load() tea.Cmd {
	v.gen++
	v.loading = true
	gen := v.gen
	return func() tea.Msg {
		ctx := context.Background()
		colleagues, err := v.env.API.Colleagues(ctx)
		if err != nil {
			return participantsLoadedMsg{gen: gen, err: err}
		}
		lists, err := v.env.API.ColleagueLists(ctx)
		if err != nil {
			return participantsLoadedMsg{gen: gen, err: err}
		}
		projects, err := v.env.API.MyProjects(ctx)
		if err != nil {
			return participantsLoadedMsg{gen: gen, err: err}
		}
		return participantsLoadedMsg{gen: gen, colleagues: colleagues, lists: lists, projects: projects}
	}
}

func (v *ParticipantsView) loadProjectTasks(projectID int64) tea.Cmd {
	v.gen++
	gen := v.gen
	return func() tea.Msg {
		tasks, err := v.env.API.ProjectTasks(context.Background(), projectID)
		return participantTasksMsg{gen: gen, tasks: tasks, err: err}
	}
}

func (v *ParticipantsView) runAction(notice string, call func(context.Context) error) tea.Cmd {
	v.busy = true
	v.errText = ""
	return func() tea.Msg {
		if err := call(context.Background()); err != nil {
			return participantActionMsg{err: err}
		}
		return participantActionMsg{notice: notice}
	}
}

// visible applies the list filter to the roster.
func (v *ParticipantsView) visible() []models.Colleague {
	if v.listFilter == 0 || v.listFilter > len(v.lists) {
		return v.colleagues
	}
	list := v.lists[v.listFilter-1]
	members := make(map[int64]bool, len(list.Members))
	for _, id := range list.Members {
		members[id] = true
	}
	var out []models.Colleague
	for _, c := range v.colleagues {
		if members[c.ID] {
			out = append(out, c)
		}
	}
	return out
}

func (v *ParticipantsView) selected() (models.Colleague, bool) {
	vis := v.visible()
	if len(vis) == 0 || v.cursor >= len(vis) {
		return models.Colleague{}, false
	}
	return vis[v.cursor], true
}

func (v *ParticipantsView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		return v, nil

	case participantsLoadedMsg:
		if msg.gen != v.gen {
			return v, nil
		}
		v.loading = false
		if msg.err != nil {
			v.errText = msg.err.Error()
			return v, nil
		}
		v.colleagues = msg.colleagues
		v.lists = msg.lists
		v.projects = msg.projects
		if vis := v.visible(); v.cursor >= len(vis) {
			v.cursor = max(0, len(vis)-1)
		}
		return v, nil

	case participantTasksMsg:
		if msg.gen != v.gen {
			return v, nil
		}
		if msg.err != nil {
			v.errText = msg.err.Error()
			v.mode = partNormal
			return v, nil
		}
		v.tasks = msg.tasks
		v.pickCursor = 0
		v.mode = partPickTask
		return v, nil

	case participantPerfMsg:
		if msg.gen != v.gen {
			return v, nil
		}
		v.perfLoading = false
		if msg.err != nil {
			v.errText = msg.err.Error()
			return v, nil
		}
		v.performance = msg.perf
		return v, nil

	case participantActionMsg:
		v.busy = false
		if msg.err != nil {
			v.errText = msg.err.Error()
			return v, nil
		}
		v.notice = msg.notice
		cmds := []tea.Cmd{v.load()}
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
		switch v.mode {
		case partDetail:
			return v.updateDetail(msg)
		case partAddEmail:
			return v.updateAddEmail(msg)
		case partNewList:
			return v.updateNewList(msg)
		case partLists:
			return v.updateLists(msg)
		case partConfirmDelete:
			return v.updateConfirmDelete(msg)
		case partPickProject:
			return v.updatePickProject(msg)
		case partPickTask:
			return v.updatePickTask(msg)
		case partRate:
			return v.updateRate(msg)
		}
		return v.updateNormal(msg)
	}

	return v, nil
}

func (v *ParticipantsView) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, v.keys.Quit):
		return v, tea.Quit

	case key.Matches(msg, v.keys.Back):
		return v, func() tea.Msg { return ShowDashboard{} }

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

	case key.Matches(msg, v.keys.Enter):
		c, ok := v.selected()
		if !ok {
			return v, nil
		}
		v.mode = partDetail
		v.performance = nil
		v.errText = ""
		return v, v.loadPerformance(c.ID)

	case key.Matches(msg, v.keys.New):
		v.mode = partAddEmail
		v.emailInput.Reset()
		v.emailInput.Focus()
		return v, textinput.Blink

	case key.Matches(msg, v.keys.Delete):
		if c, ok := v.selected(); ok {
			v.mode = partConfirmDelete
			v.deleteTargetID = c.ID
		}
		return v, nil

	case key.Matches(msg, v.keys.Filter):
		v.listFilter = (v.listFilter + 1) % (len(v.lists) + 1)
		v.cursor = 0
		return v, nil

	case msg.String() == "L":
		v.mode = partLists
		v.listCursor = 0
		return v, nil

	case msg.String() == "p":
		return v.startPick(pickAssignProject)

	case msg.String() == "t":
		return v.startPick(pickAssignTask)

	case msg.String() == "i":
		return v.startPick(pickInvite)

	case key.Matches(msg, v.keys.Grade):
		return v.startPick(pickRate)
	}

	return v, nil
}

func (v *ParticipantsView) startPick(purpose pickPurpose) (tea.Model, tea.Cmd) {
	c, ok := v.selected()
	if !ok {
		return v, nil
	}
	// Assignment and rating need a linked account; invites only need email.
	if purpose != pickInvite && c.Contact == nil {
		v.errText = c.Email + ": " + v.env.Tr.T("participants.unlinked", nil)
		return v, nil
	}
	if len(v.projects) == 0 {
		return v, nil
	}
	v.purpose = purpose
	v.pickCursor = 0
	v.mode = partPickProject
	v.errText = ""
	return v, nil
}

func (v *ParticipantsView) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, v.keys.Quit):
		return v, tea.Quit
	case key.Matches(msg, v.keys.Back), key.Matches(msg, v.keys.Enter):
		v.mode = partNormal
		return v, nil
	case key.Matches(msg, v.keys.Grade):
		return v.startPick(pickRate)
	}
	return v, nil
}

func (v *ParticipantsView) updateAddEmail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, v.keys.Back):
		v.mode = partNormal
		return v, nil
	case key.Matches(msg, v.keys.Enter):
		email := strings.TrimSpace(v.emailInput.Value())
		if email == "" {
			return v, nil
		}
		v.mode = partNormal
		return v, v.runAction(email+" added", func(ctx context.Context) error {
			_, err := v.env.API.AddColleague(ctx, email)
			return err
		})
	}
	var cmd tea.Cmd
	v.emailInput, cmd = v.emailInput.Update(msg)
	return v, cmd
}

func (v *ParticipantsView) updateNewList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, v.keys.Back):
		v.mode = partLists
		return v, nil
	case key.Matches(msg, v.keys.Enter):
		name := strings.TrimSpace(v.listInput.Value())
		if name == "" {
			return v, nil
		}
		v.mode = partLists
		return v, v.runAction("list \""+name+"\" created", func(ctx context.Context) error {
			_, err := v.env.API.CreateColleagueList(ctx, name)
			return err
		})
	}
	var cmd tea.Cmd
	v.listInput, cmd = v.listInput.Update(msg)
	return v, cmd
}

func (v *ParticipantsView) updateLists(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, v.keys.Back):
		v.mode = partNormal
		return v, nil

	case key.Matches(msg, v.keys.Up):
		if v.listCursor > 0 {
			v.listCursor--
		}
		return v, nil

	case key.Matches(msg, v.keys.Down):
		if v.listCursor < len(v.lists)-1 {
			v.listCursor++
		}
		return v, nil

	case key.Matches(msg, v.keys.New):
		v.mode = partNewList
		v.listInput.Reset()
		v.listInput.Focus()
		return v, textinput.Blink

	case key.Matches(msg, v.keys.Delete):
		if v.listCursor < len(v.lists) {
			list := v.lists[v.listCursor]
			v.mode = partNormal
			return v, v.runAction("list deleted", func(ctx context.Context) error {
				return v.env.API.DeleteColleagueList(ctx, list.ID)
			})
		}
		return v, nil

	case key.Matches(msg, v.keys.Enter), msg.String() == " ":
		// Toggle the selected colleague's membership in this list.
		c, ok := v.selected()
		if !ok || v.listCursor >= len(v.lists) {
			return v, nil
		}
		list := v.lists[v.listCursor]
		member := false
		for _, id := range list.Members {
			if id == c.ID {
				member = true
				break
			}
		}
		if member {
			return v, v.runAction("", func(ctx context.Context) error {
				return v.env.API.RemoveListMember(ctx, list.ID, c.ID)
			})
		}
		return v, v.runAction("", func(ctx context.Context) error {
			return v.env.API.AddListMember(ctx, list.ID, c.ID)
		})
	}

	return v, nil
}

func (v *ParticipantsView) updateConfirmDelete(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		v.mode = partNormal
		id := v.deleteTargetID
		return v, v.runAction("colleague removed", func(ctx context.Context) error {
			return v.env.API.DeleteColleague(ctx, id)
		})
	case "n", "N", "esc":
		v.mode = partNormal
		return v, nil
	}
	return v, nil
}

func (v *ParticipantsView) updatePickProject(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, v.keys.Back):
		v.mode = partNormal
		return v, nil

	case key.Matches(msg, v.keys.Up):
		if v.pickCursor > 0 {
			v.pickCursor--
		}
		return v, nil

	case key.Matches(msg, v.keys.Down):
		if v.pickCursor < len(v.projects)-1 {
			v.pickCursor++
		}
		return v, nil

	case key.Matches(msg, v.keys.Enter):
		if v.pickCursor >= len(v.projects) {
			return v, nil
		}
		project := v.projects[v.pickCursor]
		c, ok := v.selected()
		if !ok {
			v.mode = partNormal
			return v, nil
		}

		switch v.purpose {
		case pickAssignProject:
			v.mode = partNormal
			return v, v.runAction("project assigned", func(ctx context.Context) error {
				return v.env.API.AssignProject(ctx, c.ID, project.ID)
			})
		case pickAssignTask:
			v.pickedID = project.ID
			return v, v.loadProjectTasks(project.ID)
		case pickInvite:
			v.mode = partNormal
			return v, v.invite(project.ID, c.Email)
		case pickRate:
			v.pickedID = project.ID
			v.mode = partRate
			v.rateFocus = 0
			for i := range v.rateInputs {
				v.rateInputs[i].Reset()
				v.rateInputs[i].Blur()
			}
			v.rateInputs[0].Focus()
			return v, textinput.Blink
		}
	}

	return v, nil
}

func (v *ParticipantsView) invite(projectID int64, email string) tea.Cmd {
	v.busy = true
	v.errText = ""
	return func() tea.Msg {
		inv, err := v.env.API.InviteToProject(context.Background(), projectID, email)
		if err != nil {
			return participantActionMsg{err: err}
		}
		return participantActionMsg{
			notice: v.env.Tr.T("participants.inviteLink", map[string]string{"link": inv.Link}),
		}
	}
}

func (v *ParticipantsView) updatePickTask(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, v.keys.Back):
		v.mode = partNormal
		return v, nil

	case key.Matches(msg, v.keys.Up):
		if v.pickCursor > 0 {
			v.pickCursor--
		}
		return v, nil

	case key.Matches(msg, v.keys.Down):
		if v.pickCursor < len(v.tasks)-1 {
			v.pickCursor++
		}
		return v, nil

	case key.Matches(msg, v.keys.Enter):
		c, ok := v.selected()
		if !ok || v.pickCursor >= len(v.tasks) {
			v.mode = partNormal
			return v, nil
		}
		task := v.tasks[v.pickCursor]
		v.mode = partNormal
		return v, v.runAction("task assigned", func(ctx context.Context) error {
			return v.env.API.AssignTask(ctx, c.ID, task.ID)
		})
	}

	return v, nil
}

func (v *ParticipantsView) updateRate(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, v.keys.Back):
		v.mode = partNormal
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
		c, ok := v.selected()
		if !ok {
			v.mode = partNormal
			return v, nil
		}
		projectID := v.pickedID
		v.mode = partNormal
		return v, v.runAction("rating saved", func(ctx context.Context) error {
			return v.env.API.RateProject(ctx, projectID, c.ID, rating)
		})
	}

	var cmd tea.Cmd
	v.rateInputs[v.rateFocus], cmd = v.rateInputs[v.rateFocus].Update(msg)
	return v, cmd
}

func (v *ParticipantsView) View() string {
	switch v.mode {
	case partDetail:
		return v.renderDetail()
	case partAddEmail:
		return v.renderInputPrompt(v.env.Tr.T("participants.invite", nil), v.emailInput.View())
	case partNewList:
		return v.renderInputPrompt("New list", v.listInput.View())
	case partConfirmDelete:
		return v.renderConfirm("Remove colleague?")
	case partLists:
		return v.renderLists()
	case partPickProject:
		return v.renderPicker("Choose project", v.projectNames())
	case partPickTask:
		return v.renderPicker("Choose task", v.taskNames())
	case partRate:
		return v.renderRateForm()
	}
	return v.renderRoster()
}

func (v *ParticipantsView) projectNames() []string {
	names := make([]string, len(v.projects))
	for i, p := range v.projects {
		names[i] = p.Name
	}
	return names
}

func (v *ParticipantsView) taskNames() []string {
	names := make([]string, len(v.tasks))
	for i, t := range v.tasks {
		names[i] = fmt.Sprintf("%s [%s]", t.Title, t.Status)
	}
	return names
}

func (v *ParticipantsView) renderRoster() string {
	s := v.styles
	tr := v.env.Tr
	contentWidth := styles.ContentWidth(v.width)
	width := max(contentWidth-4, 20)

	var b strings.Builder
	b.WriteString(s.Title.Render(tr.T("participants.title", nil)))
	if v.listFilter > 0 && v.listFilter <= len(v.lists) {
		b.WriteString(s.TitleMuted.Render("  (" + v.lists[v.listFilter-1].Name + ")"))
	}
	b.WriteString("\n\n")

	if v.loading && v.colleagues == nil {
		b.WriteString(s.TitleMuted.Render(tr.T("common.loading", nil)))
	} else if vis := v.visible(); len(vis) == 0 {
		b.WriteString(s.TitleMuted.Render("No colleagues. Press 'n' to add one."))
	} else {
		for i, c := range vis {
			line := c.Email
			if c.Contact != nil {
				line += "  " + s.TitleMuted.Render(c.Contact.Name+" ("+string(c.Contact.Role)+")")
			} else {
				line += "  " + s.TitleMuted.Render(tr.T("participants.unlinked", nil))
			}
			itemStyle := s.ListItem.Width(width)
			if i == v.cursor {
				itemStyle = s.ListSelected.Width(width)
			}
			b.WriteString(itemStyle.Render(line))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(v.renderStatusLine())
	b.WriteString("\n")
	b.WriteString(s.Help.Render(
		fmt.Sprintf("%s detail • %s add • %s del • %s lists • %s filter • %s project • %s task • %s invite • %s rate • %s back",
			s.HelpKey.Render("↵"), s.HelpKey.Render("n"), s.HelpKey.Render("d"),
			s.HelpKey.Render("L"), s.HelpKey.Render("f"), s.HelpKey.Render("p"),
			s.HelpKey.Render("t"), s.HelpKey.Render("i"), s.HelpKey.Render("g"),
			s.HelpKey.Render("esc")),
	))

	return styles.CenterView(b.String(), v.width, v.height)
}

func (v *ParticipantsView) renderDetail() string {
	s := v.styles
	tr := v.env.Tr
	contentWidth := styles.ContentWidth(v.width)

	c, ok := v.selected()
	if !ok {
		return v.renderRoster()
	}

	rows := []string{s.Title.Render(c.Email), ""}
	if c.Contact != nil {
		rows = append(rows, c.Contact.Name+"  "+s.TitleMuted.Render(string(c.Contact.Role)))
	} else {
		rows = append(rows, s.TitleMuted.Render(tr.T("participants.unlinked", nil)))
	}
	rows = append(rows, s.TitleMuted.Render(
		fmt.Sprintf("%d projects, %d tasks, %d lists", len(c.Projects), len(c.Tasks), len(c.Lists)),
	), "")

	rows = append(rows, s.Title.Render("Performance by tag"))
	switch {
	case v.perfLoading:
		rows = append(rows, s.TitleMuted.Render(tr.T("common.loading", nil)))
	case len(v.performance) == 0:
		rows = append(rows, s.TitleMuted.Render("No ratings yet"))
	default:
		for _, p := range v.performance {
			rows = append(rows, fmt.Sprintf("%-20s %5.1f  %s", p.Tag, p.Average,
				s.TitleMuted.Render(fmt.Sprintf("(%d rated)", p.Count))))
		}
	}

	if v.errText != "" {
		rows = append(rows, "", s.ErrorText.Render(v.errText))
	}
	rows = append(rows, "", s.TitleMuted.Render("g: rate • Esc: back"))

	content := lipgloss.JoinVertical(lipgloss.Left, rows...)
	centered := lipgloss.Place(contentWidth, v.height,
		lipgloss.Center, lipgloss.Center,
		s.Panel.Render(content),
	)
	return styles.CenterView(centered, v.width, v.height)
}

func (v *ParticipantsView) renderLists() string {
	s := v.styles
	contentWidth := styles.ContentWidth(v.width)
	width := max(contentWidth-4, 20)

	selected, hasSelected := v.selected()

	var b strings.Builder
	b.WriteString(s.Title.Render("Lists"))
	if hasSelected {
		b.WriteString(s.TitleMuted.Render("  (toggling " + selected.Email + ")"))
	}
	b.WriteString("\n\n")

	if len(v.lists) == 0 {
		b.WriteString(s.TitleMuted.Render("No lists. Press 'n' to create one."))
	}
	for i, list := range v.lists {
		checkbox := "[ ]"
		if hasSelected {
			for _, id := range list.Members {
				if id == selected.ID {
					checkbox = "[x]"
					break
				}
			}
		}
		line := fmt.Sprintf("%s %s (%d)", checkbox, list.Name, len(list.Members))
		itemStyle := s.ListItem.Width(width)
		if i == v.listCursor {
			itemStyle = s.ListSelected.Width(width)
		}
		b.WriteString(itemStyle.Render(line))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(v.renderStatusLine())
	b.WriteString("\n")
	b.WriteString(s.Help.Render(
		fmt.Sprintf("%s toggle • %s new • %s del • %s back",
			s.HelpKey.Render("space"), s.HelpKey.Render("n"),
			s.HelpKey.Render("d"), s.HelpKey.Render("esc")),
	))

	return styles.CenterView(b.String(), v.width, v.height)
}

func (v *ParticipantsView) renderPicker(title string, items []string) string {
	s := v.styles
	contentWidth := styles.ContentWidth(v.width)

	rows := []string{s.Title.Render(title), ""}
	if len(items) == 0 {
		rows = append(rows, s.TitleMuted.Render("Nothing to choose from"))
	}
	for i, item := range items {
		itemStyle := s.ListItem
		if i == v.pickCursor {
			itemStyle = s.ListSelected
		}
		rows = append(rows, itemStyle.Render(item))
	}
	rows = append(rows, "", s.TitleMuted.Render("↵: choose • Esc: cancel"))

	content := lipgloss.JoinVertical(lipgloss.Left, rows...)
	centered := lipgloss.Place(contentWidth, v.height,
		lipgloss.Center, lipgloss.Center,
		s.Panel.Render(content),
	)
	return styles.CenterView(centered, v.width, v.height)
}

func (v *ParticipantsView) renderInputPrompt(title, input string) string {
	s := v.styles
	contentWidth := styles.ContentWidth(v.width)
	inputWidth := clamp(contentWidth-6, 20, 50)

	content := lipgloss.JoinVertical(lipgloss.Left,
		s.Title.Render(title),
		"",
		s.InputFocused.Width(inputWidth).Render(input),
		"",
		s.TitleMuted.Render("↵: save • Esc: cancel"),
	)
	centered := lipgloss.Place(contentWidth, v.height,
		lipgloss.Center, lipgloss.Center,
		content,
	)
	return styles.CenterView(centered, v.width, v.height)
}

func (v *ParticipantsView) renderRateForm() string {
	s := v.styles
	contentWidth := styles.ContentWidth(v.width)

	labels := []string{"Punctuality", "Teamwork", "Quality"}
	rows := []string{s.Title.Render("Rate colleague"), ""}
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

func (v *ParticipantsView) renderConfirm(question string) string {
	s := v.styles
	contentWidth := styles.ContentWidth(v.width)

	content := lipgloss.JoinVertical(lipgloss.Center,
		s.Title.Foreground(styles.Current.Error).Render(question),
		"",
		lipgloss.JoinHorizontal(lipgloss.Center,
			s.ButtonPrimary.Render(" Y - Yes "),
			"  ",
			s.Button.Render(" N - No "),
		),
	)
	centered := lipgloss.Place(contentWidth, v.height,
		lipgloss.Center, lipgloss.Center,
		content,
	)
	return styles.CenterView(centered, v.width, v.height)
}

func (v *ParticipantsView) renderStatusLine() string {
	s := v.styles
	switch {
	case v.busy:
		return s.StatusBar.Render("Working...")
	case v.errText != "":
		return s.ErrorText.Render(v.errText)
	case v.notice != "":
		return s.Notice.Render(v.notice)
	}
	return ""
}
