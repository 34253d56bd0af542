package screen

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/zacharyhyde/listprofit/internal/config"
	"github.com/zacharyhyde/listprofit/internal/format"
	"github.com/zacharyhyde/listprofit/internal/ui"
	"github.com/zacharyhyde/listprofit/internal/ui/component"
	"github.com/zacharyhyde/listprofit/internal/ui/router"
	"github.com/zacharyhyde/listprofit/internal/ui/style"
)

// WelcomeScreen is the entry screen: a short pitch, the configured
// defaults, and a single way forward.
type WelcomeScreen struct {
	width  int
	height int
	keyMap ui.KeyMap
	cfg    *config.Config

	helpBar *component.HelpBar

	titleStyle    lipgloss.Style
	subtitleStyle lipgloss.Style
	defaultsStyle lipgloss.Style
	promptStyle   lipgloss.Style
}

// NewWelcomeScreen creates the welcome screen.
func NewWelcomeScreen(cfg *config.Config) *WelcomeScreen {
	palette := style.DefaultPalette()
	keyMap := ui.DefaultKeyMap()

	helpBar := component.NewHelpBar().
		SetKeyBindings(keyMap.ContextualHelp(ui.RouteWelcome))

	return &WelcomeScreen{
		keyMap:  keyMap,
		cfg:     cfg,
		helpBar: helpBar,

		titleStyle: lipgloss.NewStyle().
			Foreground(palette.Primary).
			Bold(true).
			Margin(1, 0).
			Align(lipgloss.Center),

		subtitleStyle: lipgloss.NewStyle().
			Foreground(palette.TextSecondary).
			Align(lipgloss.Center),

		defaultsStyle: lipgloss.NewStyle().
			Foreground(palette.TextMuted).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(palette.TextMuted).
			Padding(1, 3).
			Margin(1, 0),

		promptStyle: lipgloss.NewStyle().
			Foreground(palette.Secondary).
			Bold(true).
			Margin(1, 0),
	}
}

// Init initializes the screen.
func (s *WelcomeScreen) Init() tea.Cmd {
	return ui.ListenBus()
}

// Update handles screen updates.
func (s *WelcomeScreen) Update(msg tea.Msg) (router.Screen, tea.Cmd) {
	var cmds []tea.Cmd

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, s.keyMap.Quit):
			return s, tea.Quit

		case key.Matches(msg, s.keyMap.Enter):
			cmds = append(cmds, func() tea.Msg {
				return ui.RouterMsg{To: ui.RouteCalculator}
			})
		}
	}

	cmds = append(cmds, ui.ListenBus())
	return s, tea.Batch(cmds...)
}

// View renders the screen.
func (s *WelcomeScreen) View() string {
	if s.width == 0 || s.height == 0 {
		return "Loading..."
	}

	var content strings.Builder

	content.WriteString(s.titleStyle.Width(s.width).Render("📧 Daily Email Profit Calculator"))
	content.WriteString("\n")
	content.WriteString(s.subtitleStyle.Width(s.width).Render(
		"Model the yearly impact of emailing your list more often, using conservative funnel assumptions."))
	content.WriteString("\n")

	defaults := strings.Join([]string{
		"Defaults for this session:",
		"",
		"List size:            " + format.Count(float64(s.cfg.ListSize)) + " subscribers",
		"Average order value:  " + format.USD(s.cfg.AvgOrderValue),
		"Gross margin:         " + format.Percent(s.cfg.GrossMarginPct),
		"Current strategy:     " + format.Count(s.cfg.Current.SendsPerWeek) + " sends/week",
		"New strategy:         " + format.Count(s.cfg.New.SendsPerWeek) + " sends/week",
	}, "\n")
	content.WriteString(lipgloss.PlaceHorizontal(s.width, lipgloss.Center, s.defaultsStyle.Render(defaults)))
	content.WriteString("\n")

	content.WriteString(lipgloss.PlaceHorizontal(s.width, lipgloss.Center,
		s.promptStyle.Render("Press Enter to start")))
	content.WriteString("\n")

	content.WriteString(s.helpBar.SetWidth(s.width).View())

	return content.String()
}

// SetSize sets the screen dimensions.
func (s *WelcomeScreen) SetSize(width, height int) {
	s.width = width
	s.height = height
}
