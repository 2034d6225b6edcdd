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

// LoginView is the sign-in / register form.
type LoginView struct {
	env    Env
	styles *styles.Styles
	keys   keys.KeyMap

	width  int
	height int

	registering bool
	name        textinput.Model
	email       textinput.Model
	password    textinput.Model
	focusIdx    int

	busy    bool
	errText string
}

// NewLoginView creates the login form.
func NewLoginView(env Env) *LoginView {
	s := styles.NewStyles()

	name := textinput.New()
	name.Placeholder = env.Tr.T("login.name", nil)
	name.CharLimit = 100

	email := textinput.New()
	email.Placeholder = env.Tr.T("login.email", nil)
	email.CharLimit = 200

	password := textinput.New()
	password.Placeholder = env.Tr.T("login.password", nil)
	password.CharLimit = 200
	password.EchoMode = textinput.EchoPassword

	email.Focus()

	return &LoginView{
		env:      env,
		styles:   s,
		keys:     keys.DefaultKeyMap(),
		name:     name,
		email:    email,
		password: password,
	}
}

func (v *LoginView) Init() tea.Cmd {
	return textinput.Blink
}

type authDoneMsg struct {
	err error
}

func (v *LoginView) submit() tea.Cmd {
	email := strings.TrimSpace(v.email.Value())
	password := v.password.Value()
	name := strings.TrimSpace(v.name.Value())

	if email == "" || password == "" || (v.registering && name == "") {
		return nil
	}

	v.busy = true
	v.errText = ""
	registering := v.registering

	return func() tea.Msg {
		ctx := context.Background()
		var err error
		if registering {
			err = v.env.Session.Register(ctx, name, email, password)
		} else {
			err = v.env.Session.Login(ctx, email, password)
		}
		return authDoneMsg{err: err}
	}
}

// fieldCount is the number of focusable slots: inputs plus the button.
func (v *LoginView) fieldCount() int {
	if v.registering {
		return 4
	}
	return 3
}

func (v *LoginView) inputs() []*textinput.Model {
	if v.registering {
		return []*textinput.Model{&v.name, &v.email, &v.password}
	}
	return []*textinput.Model{&v.email, &v.password}
}

func (v *LoginView) updateFocus() {
	for i, input := range v.inputs() {
		if i == v.focusIdx {
			input.Focus()
		} else {
			input.Blur()
		}
	}
}

func (v *LoginView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		return v, nil

	case authDoneMsg:
		v.busy = false
		if msg.err != nil {
			v.errText = msg.err.Error()
			return v, nil
		}
		return v, func() tea.Msg { return LoggedIn{} }

	case tea.KeyMsg:
		if v.busy {
			return v, nil
		}

		switch {
		case msg.String() == "ctrl+c":
			return v, tea.Quit

		case msg.String() == "ctrl+r":
			v.registering = !v.registering
			v.focusIdx = 0
			v.errText = ""
			v.updateFocus()
			return v, nil

		case key.Matches(msg, v.keys.Tab):
			v.focusIdx = (v.focusIdx + 1) % v.fieldCount()
			v.updateFocus()
			return v, nil

		case msg.String() == "shift+tab":
			v.focusIdx = (v.focusIdx + v.fieldCount() - 1) % v.fieldCount()
			v.updateFocus()
			return v, nil

		case key.Matches(msg, v.keys.Enter):
			// Enter on the last input or the button submits.
			if v.focusIdx >= len(v.inputs())-1 {
				return v, v.submit()
			}
			v.focusIdx++
			v.updateFocus()
			return v, nil
		}
	}

	var cmd tea.Cmd
	if inputs := v.inputs(); v.focusIdx < len(inputs) {
		*inputs[v.focusIdx], cmd = inputs[v.focusIdx].Update(msg)
	}
	return v, cmd
}

func (v *LoginView) View() string {
	s := v.styles
	tr := v.env.Tr
	contentWidth := styles.ContentWidth(v.width)
	inputWidth := clamp(contentWidth-6, 20, 50)

	title := tr.T("login.title", nil)
	buttonLabel := " " + tr.T("login.title", nil) + " "
	if v.registering {
		title = tr.T("login.register", nil)
		buttonLabel = " " + tr.T("login.register", nil) + " "
	}
	if v.busy {
		buttonLabel = " " + tr.T("login.signingIn", nil) + " "
		if v.registering {
			buttonLabel = " " + tr.T("login.creating", nil) + " "
		}
	}

	rows := []string{s.Title.Render(title), ""}

	inputStyle := func(idx int) lipgloss.Style {
		if v.focusIdx == idx {
			return s.InputFocused
		}
		return s.Input
	}

	idx := 0
	if v.registering {
		rows = append(rows,
			tr.T("login.name", nil)+":",
			inputStyle(idx).Width(inputWidth).Render(v.name.View()),
			"",
		)
		idx++
	}
	rows = append(rows,
		tr.T("login.email", nil)+":",
		inputStyle(idx).Width(inputWidth).Render(v.email.View()),
		"",
		tr.T("login.password", nil)+":",
		inputStyle(idx+1).Width(inputWidth).Render(v.password.View()),
		"",
	)

	btnStyle := s.Button
	if v.focusIdx == v.fieldCount()-1 {
		btnStyle = s.ButtonFocused
	}
	if v.busy {
		btnStyle = s.ButtonPrimary
	}
	rows = append(rows, btnStyle.Render(buttonLabel))

	if v.errText != "" {
		rows = append(rows, "", s.ErrorText.Render(v.errText))
	}

	rows = append(rows, "",
		s.TitleMuted.Render("Ctrl+R: "+tr.T("login.register", nil)+" • "+tr.T("login.switchHint", nil)),
	)

	form := lipgloss.JoinVertical(lipgloss.Left, rows...)
	centered := lipgloss.Place(contentWidth, v.height,
		lipgloss.Center, lipgloss.Center,
		form,
	)
	return styles.CenterView(centered, v.width, v.height)
}
