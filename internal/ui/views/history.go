package views

import (
	"context"
	"fmt"
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

// historyEntry tags each row with where it came from, since locally hidden
// projects can be brought back while server-archived ones cannot.
type historyEntry struct {
	project models.Project
	local   bool
}

type histMode int

const (
	histNormal histMode = iota
	histPickColleague
	histRate
)

// HistoryView lists completed and archived projects. Locally hidden projects
// can be restored from here; admins can reopen completed ones and rate the
// colleagues who worked on them.
type HistoryView struct {
	env    Env
	styles *styles.Styles
	keys   keys.KeyMap

	width  int
	height int

	gen     int
	loading bool
	entries []historyEntry
	cursor  int

	// Rating a finished project: pick a colleague, then enter scores.
	mode            histMode
	colleagues      []models.Colleague
	pickCursor      int
	rateProjectID   int64
	rateColleagueID int64
	rateInputs      [3]textinput.Model
	rateFocus       int

	busy    bool
	errText string
	notice  string
}

// NewHistoryView creates the history page.
func NewHistoryView(env Env) *HistoryView {
	v := &HistoryView{
		env:    env,
		styles: styles.NewStyles(),
		keys:   keys.DefaultKeyMap(),
	}
	for i := range v.rateInputs {
		in := textinput.New()
		in.Placeholder = "1-10"
		in.CharLimit = 2
		v.rateInputs[i] = in
	}
	return v
}

func (v *HistoryView) Init() tea.Cmd {
	return v.load()
}

type historyLoadedMsg struct {
	gen     int
	entries []historyEntry
	err     error
}

type historyActionMsg struct {
	err    error
	notice string
}

type historyColleaguesMsg struct {
	gen        int
	colleagues []models.Colleague
	err        error
}

func (v *HistoryView) loadColleagues() tea.Cmd {
	v.gen++
	gen := v.gen
	return func() tea.Msg {
		colleagues, err := v.env.API.Colleagues(context.Background())
		return historyColleaguesMsg{gen: gen, colleagues: colleagues, err: err}
	}
}

func (v *HistoryView) load() tea.Cmd {
	v.gen++
	v.loading = true
	gen := v.gen
	archivedIDs := v.env.Local.ArchivedSet()
	return func() tea.Msg {
		ctx := context.Background()
		mine, err := v.env.API.MyProjects(ctx)
		if err != nil {
			return historyLoadedMsg{gen: gen, err: err}
		}
		archived, err := v.env.API.ArchivedProjects(ctx)
		if err != nil {
			return historyLoadedMsg{gen: gen, err: err}
		}

		seen := make(map[int64]bool)
		var entries []historyEntry
		for _, p := range mine {
			if p.Status == models.ProjectCompleted || archivedIDs[p.ID] {
				seen[p.ID] = true
				entries = append(entries, historyEntry{project: p, local: archivedIDs[p.ID]})
			}
		}
		for _, p := range archived {
			if seen[p.ID] {
				continue
			}
			entries = append(entries, historyEntry{project: p})
		}
		return historyLoadedMsg{gen: gen, entries: entries}
	}
}

func (v *HistoryView) selected() (historyEntry, bool) {
	if len(v.entries) == 0 || v.cursor >= len(v.entries) {
		return historyEntry{}, false
	}
	return v.entries[v.cursor], true
}

func (v *HistoryView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		return v, nil

	case historyLoadedMsg:
		if msg.gen != v.gen {
			return v, nil
		}
		v.loading = false
		if msg.err != nil {
			v.errText = msg.err.Error()
			return v, nil
		}
		v.entries = msg.entries
		if v.cursor >= len(v.entries) {
			v.cursor = max(0, len(v.entries)-1)
		}
		return v, nil

	case historyColleaguesMsg:
		if msg.gen != v.gen {
			return v, nil
		}
		if msg.err != nil {
			v.errText = msg.err.Error()
			return v, nil
		}
		// Only linked colleagues can be rated.
		v.colleagues = nil
		for _, c := range msg.colleagues {
			if c.Contact != nil {
				v.colleagues = append(v.colleagues, c)
			}
		}
		v.pickCursor = 0
		v.mode = histPickColleague
		return v, nil

	case historyActionMsg:
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
		case histPickColleague:
			return v.updatePick(msg)
		case histRate:
			return v.updateRate(msg)
		}
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
			if v.cursor < len(v.entries)-1 {
				v.cursor++
			}
			return v, nil

		case key.Matches(msg, v.keys.Archive):
			// Bring a locally hidden project back onto the dashboard.
			entry, ok := v.selected()
			if !ok || !entry.local {
				return v, nil
			}
			if err := v.env.Local.UnarchiveProject(entry.project.ID); err != nil {
				v.errText = err.Error()
				return v, nil
			}
			v.notice = "project restored to dashboard"
			return v, tea.Batch(v.load(), clearNoticeLater())

		case key.Matches(msg, v.keys.Grade):
			entry, ok := v.selected()
			if !ok || entry.project.Status != models.ProjectCompleted {
				return v, nil
			}
			v.rateProjectID = entry.project.ID
			v.errText = ""
			return v, v.loadColleagues()

		case key.Matches(msg, v.keys.Reopen):
			entry, ok := v.selected()
			if !ok || !v.env.Session.IsAdmin() {
				return v, nil
			}
			if entry.project.Status != models.ProjectCompleted {
				return v, nil
			}
			id := entry.project.ID
			v.busy = true
			v.errText = ""
			return v, func() tea.Msg {
				err := v.env.API.SetProjectStatus(context.Background(), id, models.ProjectActive)
				if err != nil {
					return historyActionMsg{err: err}
				}
				return historyActionMsg{notice: "project reopened"}
			}
		}
	}

	return v, nil
}

func (v *HistoryView) updatePick(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, v.keys.Back):
		v.mode = histNormal
		return v, nil

	case key.Matches(msg, v.keys.Up):
		if v.pickCursor > 0 {
			v.pickCursor--
		}
		return v, nil

	case key.Matches(msg, v.keys.Down):
		if v.pickCursor < len(v.colleagues)-1 {
			v.pickCursor++
		}
		return v, nil

	case key.Matches(msg, v.keys.Enter):
		if v.pickCursor >= len(v.colleagues) {
			v.mode = histNormal
			return v, nil
		}
		v.rateColleagueID = v.colleagues[v.pickCursor].ID
		v.mode = histRate
		v.rateFocus = 0
		for i := range v.rateInputs {
			v.rateInputs[i].Reset()
			v.rateInputs[i].Blur()
		}
		v.rateInputs[0].Focus()
		return v, textinput.Blink
	}

	return v, nil
}

func (v *HistoryView) updateRate(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, v.keys.Back):
		v.mode = histNormal
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
		projectID, colleagueID := v.rateProjectID, v.rateColleagueID
		v.mode = histNormal
		v.busy = true
		v.errText = ""
		return v, func() tea.Msg {
			err := v.env.API.RateProject(context.Background(), projectID, colleagueID, rating)
			if err != nil {
				return historyActionMsg{err: err}
			}
			return historyActionMsg{notice: "rating saved"}
		}
	}

	var cmd tea.Cmd
	v.rateInputs[v.rateFocus], cmd = v.rateInputs[v.rateFocus].Update(msg)
	return v, cmd
}

func (v *HistoryView) View() string {
	switch v.mode {
	case histPickColleague:
		return v.renderPick()
	case histRate:
		return v.renderRateForm()
	}
	return v.renderList()
}

func (v *HistoryView) renderPick() string {
	s := v.styles
	contentWidth := styles.ContentWidth(v.width)

	rows := []string{s.Title.Render("Rate a colleague"), ""}
	if len(v.colleagues) == 0 {
		rows = append(rows, s.TitleMuted.Render("No rateable colleagues"))
	}
	for i, c := range v.colleagues {
		line := c.Contact.Name + "  " + s.TitleMuted.Render(c.Email)
		itemStyle := s.ListItem
		if i == v.pickCursor {
			itemStyle = s.ListSelected
		}
		rows = append(rows, itemStyle.Render(line))
	}
	rows = append(rows, "", s.TitleMuted.Render("↵: choose • Esc: cancel"))

	content := lipgloss.JoinVertical(lipgloss.Left, rows...)
	centered := lipgloss.Place(contentWidth, v.height,
		lipgloss.Center, lipgloss.Center,
		s.Panel.Render(content),
	)
	return styles.CenterView(centered, v.width, v.height)
}

func (v *HistoryView) renderRateForm() string {
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

func (v *HistoryView) renderList() string {
	s := v.styles
	tr := v.env.Tr
	contentWidth := styles.ContentWidth(v.width)
	width := max(contentWidth-4, 20)

	var b strings.Builder
	b.WriteString(s.Title.Render(tr.T("history.title", nil)))
	b.WriteString("\n\n")

	switch {
	case v.loading && v.entries == nil:
		b.WriteString(s.TitleMuted.Render(tr.T("common.loading", nil)))
		b.WriteString("\n")
	case len(v.entries) == 0:
		b.WriteString(s.TitleMuted.Render(tr.T("history.empty", nil)))
		b.WriteString("\n")
	default:
		for i, entry := range v.entries {
			itemStyle := s.ListItem.Width(width)
			if i == v.cursor {
				itemStyle = s.ListSelected.Width(width)
			}
			b.WriteString(itemStyle.Render(v.renderEntry(entry)))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	switch {
	case v.busy:
		b.WriteString(s.StatusBar.Render("Working..."))
	case v.errText != "":
		b.WriteString(s.ErrorText.Render(v.errText))
	case v.notice != "":
		b.WriteString(s.Notice.Render(v.notice))
	}
	b.WriteString("\n")

	help := "%s restore • %s rate • %s back"
	args := []any{s.HelpKey.Render("a"), s.HelpKey.Render("g"), s.HelpKey.Render("esc")}
	if v.env.Session.IsAdmin() {
		help = "%s restore • %s rate • %s reopen • %s back"
		args = []any{s.HelpKey.Render("a"), s.HelpKey.Render("g"), s.HelpKey.Render("r"), s.HelpKey.Render("esc")}
	}
	b.WriteString(s.Help.Render(fmt.Sprintf(help, args...)))

	return styles.CenterView(b.String(), v.width, v.height)
}

func (v *HistoryView) renderEntry(entry historyEntry) string {
	s := v.styles
	tr := v.env.Tr
	p := entry.project

	var parts []string
	parts = append(parts, p.Name)

	switch {
	case p.Status == models.ProjectCompleted:
		stamp := ""
		if p.CompletedAt != nil {
			stamp = p.CompletedAt.Local().Format("2006-01-02")
		}
		by := ""
		if p.CompletedBy != nil {
			by = tr.T("dashboard.completed", map[string]string{"name": p.CompletedBy.Name})
		}
		parts = append(parts, s.Tone(models.ToneOk).Render(strings.TrimSpace(by+" "+stamp)))
	case entry.local:
		parts = append(parts, s.TitleMuted.Render(tr.T("dashboard.archived", nil)))
	default:
		parts = append(parts, s.TitleMuted.Render(models.Classify(p.Deadline, time.Now()).Label))
	}

	return strings.Join(parts, "  ")
}
