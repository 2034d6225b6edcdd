package views

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/dkovach/ttm/internal/api"
	"github.com/dkovach/ttm/internal/i18n"
	"github.com/dkovach/ttm/internal/store"
)

// Env bundles the services every view depends on. Constructed once at
// startup and passed by reference, so tests can inject fakes.
type Env struct {
	API     *api.Client
	Session *store.Session
	Local   *store.Store
	Tr      *i18n.Translator
}

// Navigation messages views emit for the app router.
type (
	// LoggedIn signals a successful login or register.
	LoggedIn struct{}
	// LoggedOut signals that the session was cleared.
	LoggedOut struct{}
	// ShowDashboard switches to the dashboard; Notice is shown there.
	ShowDashboard struct{ Notice string }
	// ShowCreateProject switches to the create-project form.
	ShowCreateProject struct{}
	// ShowParticipants switches to the colleague roster.
	ShowParticipants struct{}
	// ShowCalendar switches to the calendar.
	ShowCalendar struct{}
	// ShowHistory switches to completed and archived projects.
	ShowHistory struct{}
	// ShowAcceptInvite switches to the invite redemption form.
	ShowAcceptInvite struct{}
)

// noticeTTL is how long success notices stay visible. Errors persist until
// the next action.
const noticeTTL = 3 * time.Second

type clearNoticeMsg struct{}

func clearNoticeLater() tea.Cmd {
	return tea.Tick(noticeTTL, func(time.Time) tea.Msg {
		return clearNoticeMsg{}
	})
}

// clamp returns val clamped between minVal and maxVal.
func clamp(val, minVal, maxVal int) int {
	if val < minVal {
		return minVal
	}
	if val > maxVal {
		return maxVal
	}
	return val
}
