package ui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/dkovach/ttm/internal/i18n"
	"github.com/dkovach/ttm/internal/store"
	"github.com/dkovach/ttm/internal/ui/styles"
	"github.com/dkovach/ttm/internal/ui/views"
)

// App routes between views. Each page is constructed fresh on navigation so
// it fetches its own data on mount.
type App struct {
	env views.Env

	current tea.Model
	booting bool
	width   int
	height  int
}

// NewApp creates the application shell.
func NewApp(env views.Env) *App {
	return &App{env: env, booting: true}
}

type sessionRestoredMsg struct {
	ok  bool
	err error
}

func (a *App) Init() tea.Cmd {
	return func() tea.Msg {
		ok, err := a.env.Session.Restore(context.Background())
		return sessionRestoredMsg{ok: ok, err: err}
	}
}

// swap replaces the active view and primes it with the current window size.
func (a *App) swap(view tea.Model) tea.Cmd {
	a.current = view
	return tea.Batch(
		view.Init(),
		func() tea.Msg {
			return tea.WindowSizeMsg{Width: a.width, Height: a.height}
		},
	)
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height

	case sessionRestoredMsg:
		a.booting = false
		if msg.ok {
			return a, a.swap(views.NewDashboardView(a.env, ""))
		}
		// A failed restore just means signing in again.
		return a, a.swap(views.NewLoginView(a.env))

	case views.LoggedIn:
		return a, a.swap(views.NewDashboardView(a.env, ""))

	case views.LoggedOut:
		return a, a.swap(views.NewLoginView(a.env))

	case views.ShowDashboard:
		return a, a.swap(views.NewDashboardView(a.env, msg.Notice))

	case views.ShowCreateProject:
		return a, a.swap(views.NewCreateView(a.env))

	case views.ShowParticipants:
		return a, a.swap(views.NewParticipantsView(a.env))

	case views.ShowCalendar:
		return a, a.swap(views.NewCalendarView(a.env))

	case views.ShowHistory:
		return a, a.swap(views.NewHistoryView(a.env))

	case views.ShowAcceptInvite:
		return a, a.swap(views.NewInviteView(a.env))

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+t":
			return a, a.toggleTheme()
		case "ctrl+g":
			return a, a.cycleLanguage()
		}
	}

	if a.current == nil {
		return a, nil
	}
	var cmd tea.Cmd
	a.current, cmd = a.current.Update(msg)
	return a, cmd
}

// toggleTheme flips between the dark and light theme, persists the choice,
// and rebuilds the active view so its cached styles pick the theme up.
func (a *App) toggleTheme() tea.Cmd {
	name := styles.TokyoNight.Name
	if styles.Current.Name == name {
		name = styles.Paper.Name
	}
	styles.SetTheme(name)
	a.env.Local.Set(store.KeyTheme, name)
	return a.rebuild()
}

// cycleLanguage advances to the next available language and persists it.
func (a *App) cycleLanguage() tea.Cmd {
	langs := i18n.Languages()
	next := langs[0]
	for i, lang := range langs {
		if lang == a.env.Tr.Language() {
			next = langs[(i+1)%len(langs)]
			break
		}
	}
	a.env.Tr.SetLanguage(next)
	a.env.Local.Set(store.KeyLanguage, next)
	return a.rebuild()
}

// rebuild reconstructs the current view type from scratch. Form state is
// lost, which is acceptable for a settings toggle.
func (a *App) rebuild() tea.Cmd {
	switch a.current.(type) {
	case *views.LoginView:
		return a.swap(views.NewLoginView(a.env))
	case *views.CreateView:
		return a.swap(views.NewCreateView(a.env))
	case *views.ParticipantsView:
		return a.swap(views.NewParticipantsView(a.env))
	case *views.CalendarView:
		return a.swap(views.NewCalendarView(a.env))
	case *views.HistoryView:
		return a.swap(views.NewHistoryView(a.env))
	case *views.InviteView:
		return a.swap(views.NewInviteView(a.env))
	case *views.DashboardView:
		return a.swap(views.NewDashboardView(a.env, ""))
	}
	return nil
}

func (a *App) View() string {
	if a.current == nil {
		if a.booting {
			return styles.NewStyles().TitleMuted.Render(a.env.Tr.T("common.loading", nil))
		}
		return ""
	}
	return a.current.View()
}
