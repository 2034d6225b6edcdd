package views

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dkovach/ttm/internal/ui/keys"
	"github.com/dkovach/ttm/internal/ui/styles"
)

// InviteView redeems a project invite token.
type InviteView struct {
	env    Env
	styles *styles.Styles
	keys   keys.KeyMap

	width  int
	height int

	token textinput.Model

	busy    bool
	errText string
}

// NewInviteView creates the invite redemption form.
func NewInviteView(env Env) *InviteView {
	token := textinput.New()
	token.Placeholder = env.Tr.T("invite.token", nil)
	token.CharLimit = 500
	token.Focus()

	return &InviteView{
		env:    env,
		styles: styles.NewStyles(),
		keys:   keys.DefaultKeyMap(),
		token:  token,
	}
}

func (v *InviteView) Init() tea.Cmd {
	return textinput.Blink
}

type inviteAcceptedMsg struct {
	name string
	err  error
}

func (v *InviteView) submit() tea.Cmd {
	token := strings.TrimSpace(v.token.Value())
	if token == "" {
		return nil
	}
	v.busy = true
	v.errText = ""
	return func() tea.Msg {
		project, err := v.env.API.AcceptInvite(context.Background(), token)
		if err != nil {
			return inviteAcceptedMsg{err: err}
		}
		return inviteAcceptedMsg{name: project.Name}
	}
}

func (v *InviteView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		return v, nil

	case inviteAcceptedMsg:
		v.busy = false
		if msg.err != nil {
			v.errText = msg.err.Error()
			return v, nil
		}
		notice := v.env.Tr.T("invite.accepted", map[string]string{"name": msg.name})
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

		case key.Matches(msg, v.keys.Enter):
			return v, v.submit()
		}
	}

	var cmd tea.Cmd
	v.token, cmd = v.token.Update(msg)
	return v, cmd
}

func (v *InviteView) View() string {
	s := v.styles
	tr := v.env.Tr
	contentWidth := styles.ContentWidth(v.width)
	inputWidth := clamp(contentWidth-6, 20, 60)

	label := " " + tr.T("common.save", nil) + " "
	if v.busy {
		label = " " + tr.T("invite.accepting", nil) + " "
	}

	rows := []string{
		s.Title.Render(tr.T("invite.title", nil)),
		"",
		tr.T("invite.token", nil) + ":",
		s.InputFocused.Width(inputWidth).Render(v.token.View()),
		"",
		s.ButtonPrimary.Render(label),
	}
	if v.errText != "" {
		rows = append(rows, "", s.ErrorText.Render(v.errText))
	}
	rows = append(rows, "", s.TitleMuted.Render("↵: join • Esc: cancel"))

	form := lipgloss.JoinVertical(lipgloss.Left, rows...)
	centered := lipgloss.Place(contentWidth, v.height,
		lipgloss.Center, lipgloss.Center,
		form,
	)
	return styles.CenterView(centered, v.width, v.height)
}
