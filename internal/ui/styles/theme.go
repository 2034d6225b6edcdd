package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/dkovach/ttm/internal/models"
)

// Theme is a color scheme for the application.
type Theme struct {
	Name string

	Background    lipgloss.Color
	Foreground    lipgloss.Color
	ForegroundDim lipgloss.Color

	Primary   lipgloss.Color
	Secondary lipgloss.Color

	Success lipgloss.Color
	Warning lipgloss.Color
	Error   lipgloss.Color

	Border      lipgloss.Color
	BorderFocus lipgloss.Color
	Selection   lipgloss.Color
}

// TokyoNight is the default dark theme.
var TokyoNight = Theme{
	Name: "tokyo-night",

	Background:    lipgloss.Color("#1a1b26"),
	Foreground:    lipgloss.Color("#c0caf5"),
	ForegroundDim: lipgloss.Color("#565f89"),

	Primary:   lipgloss.Color("#7aa2f7"),
	Secondary: lipgloss.Color("#bb9af7"),

	Success: lipgloss.Color("#9ece6a"),
	Warning: lipgloss.Color("#e0af68"),
	Error:   lipgloss.Color("#f7768e"),

	Border:      lipgloss.Color("#3b4261"),
	BorderFocus: lipgloss.Color("#7aa2f7"),
	Selection:   lipgloss.Color("#33467c"),
}

// Paper is the light theme.
var Paper = Theme{
	Name: "paper",

	Background:    lipgloss.Color("#fafafa"),
	Foreground:    lipgloss.Color("#2e3440"),
	ForegroundDim: lipgloss.Color("#8a8f98"),

	Primary:   lipgloss.Color("#3b6ea5"),
	Secondary: lipgloss.Color("#8f5da2"),

	Success: lipgloss.Color("#4f894c"),
	Warning: lipgloss.Color("#ac8a2c"),
	Error:   lipgloss.Color("#b3555e"),

	Border:      lipgloss.Color("#d0d4db"),
	BorderFocus: lipgloss.Color("#3b6ea5"),
	Selection:   lipgloss.Color("#dce5f2"),
}

// Current holds the active theme.
var Current = TokyoNight

// SetTheme activates a theme by name; unknown names keep the default.
func SetTheme(name string) {
	switch name {
	case Paper.Name:
		Current = Paper
	default:
		Current = TokyoNight
	}
}

// MaxWidth is the maximum content width for the app.
const MaxWidth = 80

// ContentWidth returns the width to lay content out in.
func ContentWidth(terminalWidth int) int {
	if terminalWidth > MaxWidth {
		return MaxWidth
	}
	return terminalWidth
}

// CenterView centers content horizontally when the terminal is wider than
// MaxWidth.
func CenterView(content string, terminalWidth, terminalHeight int) string {
	if terminalWidth <= MaxWidth {
		return content
	}
	return lipgloss.Place(terminalWidth, terminalHeight,
		lipgloss.Center, lipgloss.Top,
		content,
	)
}

// Styles holds the pre-computed styles for the UI.
type Styles struct {
	Title      lipgloss.Style
	TitleMuted lipgloss.Style

	ListItem     lipgloss.Style
	ListSelected lipgloss.Style

	Button        lipgloss.Style
	ButtonFocused lipgloss.Style
	ButtonPrimary lipgloss.Style

	Input        lipgloss.Style
	InputFocused lipgloss.Style

	Panel lipgloss.Style

	Notice    lipgloss.Style
	ErrorText lipgloss.Style

	Help     lipgloss.Style
	HelpKey  lipgloss.Style
	HelpDesc lipgloss.Style

	StatusBar lipgloss.Style
}

// NewStyles creates styles based on the current theme.
func NewStyles() *Styles {
	t := Current

	return &Styles{
		Title: lipgloss.NewStyle().
			Foreground(t.Primary).
			Bold(true),

		TitleMuted: lipgloss.NewStyle().
			Foreground(t.ForegroundDim),

		ListItem: lipgloss.NewStyle().
			Foreground(t.Foreground).
			Padding(0, 2),

		ListSelected: lipgloss.NewStyle().
			Foreground(t.Primary).
			Background(t.Selection).
			Padding(0, 2).
			Bold(true),

		Button: lipgloss.NewStyle().
			Foreground(t.Foreground).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Border).
			Padding(0, 2),

		ButtonFocused: lipgloss.NewStyle().
			Foreground(t.Primary).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.BorderFocus).
			Padding(0, 2).
			Bold(true),

		ButtonPrimary: lipgloss.NewStyle().
			Foreground(t.Background).
			Background(t.Primary).
			Padding(0, 2).
			Bold(true),

		Input: lipgloss.NewStyle().
			Foreground(t.Foreground).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Border).
			Padding(0, 1),

		InputFocused: lipgloss.NewStyle().
			Foreground(t.Foreground).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.BorderFocus).
			Padding(0, 1),

		Panel: lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Border),

		Notice: lipgloss.NewStyle().
			Foreground(t.Success),

		ErrorText: lipgloss.NewStyle().
			Foreground(t.Error),

		Help: lipgloss.NewStyle().
			Foreground(t.ForegroundDim).
			Padding(1, 2),

		HelpKey: lipgloss.NewStyle().
			Foreground(t.Primary).
			Bold(true),

		HelpDesc: lipgloss.NewStyle().
			Foreground(t.ForegroundDim),

		StatusBar: lipgloss.NewStyle().
			Foreground(t.ForegroundDim).
			Padding(0, 1),
	}
}

// Tone returns the foreground style for a deadline urgency tone.
func (s *Styles) Tone(tone models.Tone) lipgloss.Style {
	t := Current
	switch tone {
	case models.ToneOk:
		return lipgloss.NewStyle().Foreground(t.Success)
	case models.ToneWarn:
		return lipgloss.NewStyle().Foreground(t.Warning)
	case models.ToneDanger:
		return lipgloss.NewStyle().Foreground(t.Error)
	default:
		return lipgloss.NewStyle().Foreground(t.ForegroundDim)
	}
}
