package views

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/dkovach/ttm/internal/models"
	"github.com/dkovach/ttm/internal/ui/keys"
	"github.com/dkovach/ttm/internal/ui/styles"
)

// CalendarView shows an agenda of upcoming deadlines, one month at a time.
// Task deadlines come from the calendar feed, project deadlines from the
// project list.
type CalendarView struct {
	env    Env
	styles *styles.Styles
	keys   keys.KeyMap

	width  int
	height int

	// month holds the first day of the displayed month in local time.
	month time.Time

	gen     int
	loading bool
	agenda  map[string][]models.Event
	errText string
}

// NewCalendarView creates the calendar page on the current month.
func NewCalendarView(env Env) *CalendarView {
	now := time.Now()
	return &CalendarView{
		env:    env,
		styles: styles.NewStyles(),
		keys:   keys.DefaultKeyMap(),
		month:  time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.Local),
	}
}

func (v *CalendarView) Init() tea.Cmd {
	return v.load()
}

type calendarLoadedMsg struct {
	gen    int
	agenda map[string][]models.Event
	err    error
}

// window returns the inclusive bounds of the displayed month.
func (v *CalendarView) window() (time.Time, time.Time) {
	from := v.month
	to := v.month.AddDate(0, 1, 0).Add(-time.Nanosecond)
	return from, to
}

func (v *CalendarView) load() tea.Cmd {
	v.gen++
	v.loading = true
	v.errText = ""
	gen := v.gen
	from, to := v.window()
	return func() tea.Msg {
		ctx := context.Background()
		entries, err := v.env.API.MyCalendar(ctx, &from, &to)
		if err != nil {
			return calendarLoadedMsg{gen: gen, err: err}
		}
		projects, err := v.env.API.MyProjects(ctx)
		if err != nil {
			return calendarLoadedMsg{gen: gen, err: err}
		}
		agenda := models.BuildAgenda(entries, projects, &from, &to)
		return calendarLoadedMsg{gen: gen, agenda: agenda}
	}
}

func (v *CalendarView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		return v, nil

	case calendarLoadedMsg:
		if msg.gen != v.gen {
			return v, nil
		}
		v.loading = false
		if msg.err != nil {
			v.errText = msg.err.Error()
			return v, nil
		}
		v.agenda = msg.agenda
		return v, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, v.keys.Quit):
			return v, tea.Quit

		case key.Matches(msg, v.keys.Back):
			return v, func() tea.Msg { return ShowDashboard{} }

		case key.Matches(msg, v.keys.Left):
			v.month = v.month.AddDate(0, -1, 0)
			return v, v.load()

		case key.Matches(msg, v.keys.Right):
			v.month = v.month.AddDate(0, 1, 0)
			return v, v.load()

		case msg.String() == ".":
			now := time.Now()
			v.month = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.Local)
			return v, v.load()
		}
	}

	return v, nil
}

func (v *CalendarView) View() string {
	s := v.styles
	tr := v.env.Tr
	now := time.Now()

	var b strings.Builder
	b.WriteString(s.Title.Render(tr.T("calendar.title", nil)))
	b.WriteString("  ")
	b.WriteString(s.TitleMuted.Render(v.month.Format("January 2006")))
	b.WriteString("\n\n")

	switch {
	case v.loading && v.agenda == nil:
		b.WriteString(s.TitleMuted.Render(tr.T("common.loading", nil)))
		b.WriteString("\n")
	case v.errText != "":
		b.WriteString(s.ErrorText.Render(v.errText))
		b.WriteString("\n")
	case len(v.agenda) == 0:
		b.WriteString(s.TitleMuted.Render(tr.T("calendar.empty", nil)))
		b.WriteString("\n")
	default:
		for _, day := range models.AgendaDays(v.agenda) {
			b.WriteString(v.renderDay(day, v.agenda[day], now))
		}
	}

	b.WriteString(s.Help.Render(
		fmt.Sprintf("%s/%s month • %s today • %s back",
			s.HelpKey.Render("←"), s.HelpKey.Render("→"),
			s.HelpKey.Render("."), s.HelpKey.Render("esc")),
	))

	return styles.CenterView(b.String(), v.width, v.height)
}

func (v *CalendarView) renderDay(day string, events []models.Event, now time.Time) string {
	s := v.styles

	header := day
	if t, err := time.ParseInLocation("2006-01-02", day, time.Local); err == nil {
		header = t.Format("Mon, Jan 2")
	}
	if day == models.DayKey(now) {
		header += "  (today)"
	}

	var b strings.Builder
	b.WriteString(s.Title.Render(header))
	b.WriteString("\n")

	for _, e := range events {
		deadline := e.Deadline
		urgency := models.Classify(&deadline, now)
		marker := "•"
		label := e.Title
		if e.Kind == models.EventProject {
			marker = "◆"
		} else if e.ProjectName != "" {
			label += s.TitleMuted.Render("  (" + e.ProjectName + ")")
		}
		b.WriteString("  ")
		b.WriteString(s.Tone(urgency.Tone).Render(marker))
		b.WriteString(" ")
		b.WriteString(label)
		b.WriteString("  ")
		b.WriteString(s.Tone(urgency.Tone).Render(urgency.Label))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	return b.String()
}
