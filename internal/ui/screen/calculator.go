package screen

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/zacharyhyde/listprofit/internal/config"
	"github.com/zacharyhyde/listprofit/internal/export"
	"github.com/zacharyhyde/listprofit/internal/format"
	"github.com/zacharyhyde/listprofit/internal/funnel"
	"github.com/zacharyhyde/listprofit/internal/ui"
	"github.com/zacharyhyde/listprofit/internal/ui/component"
	"github.com/zacharyhyde/listprofit/internal/ui/router"
	"github.com/zacharyhyde/listprofit/internal/ui/style"
)

// CalculatorStep represents the current step in the wizard
type CalculatorStep int

const (
	StepAssumptions CalculatorStep = iota
	StepCurrent
	StepNew
	StepResults
)

const (
	positiveMessage   = "Even with conservative assumptions, you're adding serious top-line."
	cautionaryMessage = "With these assumptions, the new strategy doesn't beat the current one."
)

// CalculatorScreen walks the user through the funnel inputs and shows the
// three-way comparison at the end. Scenarios are rebuilt from the form
// values on every entry to the results step; nothing persists between runs.
type CalculatorScreen struct {
	width  int
	height int
	keyMap ui.KeyMap

	cfg      *config.Config
	exporter *export.ComparisonExporter

	// UI components
	helpBar         *component.HelpBar
	assumptionsForm *component.Form
	currentForm     *component.Form
	newForm         *component.Form
	resultsTable    *component.Table

	// State
	currentStep CalculatorStep
	comparison  funnel.Comparison
	errors      []string
	statusLine  string

	// Styling
	titleStyle     lipgloss.Style
	stepStyle      lipgloss.Style
	errorStyle     lipgloss.Style
	successStyle   lipgloss.Style
	warningStyle   lipgloss.Style
	containerStyle lipgloss.Style
	captionStyle   lipgloss.Style
}

// NewCalculatorScreen creates the calculator wizard.
func NewCalculatorScreen(cfg *config.Config, exporter *export.ComparisonExporter) *CalculatorScreen {
	palette := style.DefaultPalette()
	keyMap := ui.DefaultKeyMap()

	screen := &CalculatorScreen{
		keyMap:      keyMap,
		cfg:         cfg,
		exporter:    exporter,
		currentStep: StepAssumptions,
		errors:      make([]string, 0),

		titleStyle: lipgloss.NewStyle().
			Foreground(palette.Primary).
			Bold(true).
			Margin(1, 0).
			Align(lipgloss.Center),

		stepStyle: lipgloss.NewStyle().
			Foreground(palette.Secondary).
			Bold(true).
			Padding(0, 2),

		errorStyle: lipgloss.NewStyle().
			Foreground(palette.Error).
			Bold(true).
			Padding(0, 2),

		successStyle: lipgloss.NewStyle().
			Foreground(palette.Success).
			Bold(true).
			Padding(0, 2),

		warningStyle: lipgloss.NewStyle().
			Foreground(palette.Warning).
			Bold(true).
			Padding(0, 2),

		containerStyle: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(palette.Primary).
			Padding(1, 3).
			Margin(1, 0),

		captionStyle: lipgloss.NewStyle().
			Foreground(palette.TextMuted).
			Padding(0, 2),
	}

	screen.initializeForms()
	screen.initializeResultsTable()
	screen.initializeHelpBar()

	return screen
}

// initializeForms seeds every form with the configured defaults.
func (s *CalculatorScreen) initializeForms() {
	s.assumptionsForm = component.NewForm().
		AddIntegerField("list_size", "List size (subscribers)", s.cfg.ListSize, 1, 10_000).
		AddNumberField("avg_order_value", "Average order value ($)", s.cfg.AvgOrderValue, 1.0, 1.0).
		AddPercentField("gross_margin", "Gross margin (%)", s.cfg.GrossMarginPct, 10, 100, 5)

	s.currentForm = component.NewForm().
		AddNumberField("sends_per_week", "Emails per week", s.cfg.Current.SendsPerWeek, 0, 0.5).
		AddPercentField("open_rate", "Open rate (%)", s.cfg.Current.OpenPercent, 1, 100, 1).
		AddPercentField("click_rate", "Click-through (% of opens)", s.cfg.Current.ClickPercent, 1, 100, 1).
		AddPercentField("conversion_rate", "Conversion rate (% of clicks)", s.cfg.Current.ConvertPercent, 1, 100, 1)

	s.newForm = component.NewForm().
		AddNumberField("sends_per_week", "Emails per week", s.cfg.New.SendsPerWeek, 0, 0.5).
		AddPercentField("open_rate", "Open rate (%)", s.cfg.New.OpenPercent, 1, 100, 1).
		AddPercentField("click_rate", "Click-through (% of opens)", s.cfg.New.ClickPercent, 1, 100, 1).
		AddPercentField("conversion_rate", "Conversion rate (% of clicks)", s.cfg.New.ConvertPercent, 1, 100, 1)
}

// initializeResultsTable creates the comparison table skeleton.
func (s *CalculatorScreen) initializeResultsTable() {
	s.resultsTable = component.NewTable().
		AddColumn("Metric", 18, lipgloss.Left).
		AddColumn("Current", 16, lipgloss.Right).
		AddColumn("New", 16, lipgloss.Right).
		AddColumn("Uplift", 16, lipgloss.Right)
}

// initializeHelpBar creates the help bar.
func (s *CalculatorScreen) initializeHelpBar() {
	s.helpBar = component.NewHelpBar().
		SetKeyBindings(s.keyMap.ContextualHelp(ui.RouteCalculator))
}

// Init initializes the wizard.
func (s *CalculatorScreen) Init() tea.Cmd {
	return tea.Batch(
		ui.ListenBus(),
		s.getCurrentForm().Init(),
	)
}

// Update handles wizard updates.
func (s *CalculatorScreen) Update(msg tea.Msg) (router.Screen, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, s.keyMap.Quit) && s.currentStep == StepResults:
			return s, tea.Quit

		case key.Matches(msg, s.keyMap.Back):
			if s.currentStep == StepAssumptions {
				cmds = append(cmds, func() tea.Msg {
					return ui.RouterMsg{To: ui.RouteWelcome}
				})
			} else {
				s.previousStep()
			}

		case key.Matches(msg, s.keyMap.Enter):
			if s.currentStep == StepResults {
				break
			}
			if s.validateCurrentStep() {
				s.nextStep()
			}

		case key.Matches(msg, s.keyMap.Export) && s.currentStep == StepResults:
			cmds = append(cmds, s.exportCmd())

		case key.Matches(msg, s.keyMap.Restart) && s.currentStep == StepResults:
			s.restart()

		default:
			if s.currentStep < StepResults {
				form := s.getCurrentForm()
				updatedForm, cmd := form.Update(msg)
				*form = *updatedForm
				cmds = append(cmds, cmd)
			}
		}

	case ui.ErrorMsg:
		s.statusLine = ""
		s.errors = append(s.errors, msg.Error.Error())

	case ui.SuccessMsg:
		s.errors = make([]string, 0)
		s.statusLine = msg.Message
	}

	cmds = append(cmds, ui.ListenBus())
	return s, tea.Batch(cmds...)
}

// View renders the wizard.
func (s *CalculatorScreen) View() string {
	if s.width == 0 || s.height == 0 {
		return "Loading..."
	}

	var content strings.Builder

	title := fmt.Sprintf("📧 Daily Email Profit Calculator — Step %d/4", int(s.currentStep)+1)
	content.WriteString(s.titleStyle.Width(s.width).Render(title))
	content.WriteString("\n\n")

	content.WriteString(s.renderStepIndicator())
	content.WriteString("\n\n")

	for _, err := range s.errors {
		content.WriteString(s.errorStyle.Render("❌ " + err))
		content.WriteString("\n")
	}
	if len(s.errors) > 0 {
		content.WriteString("\n")
	}

	content.WriteString(s.containerStyle.Render(s.renderCurrentStep()))
	content.WriteString("\n")

	if s.statusLine != "" {
		content.WriteString(s.successStyle.Render("✅ " + s.statusLine))
		content.WriteString("\n")
	}

	content.WriteString(s.helpBar.SetWidth(s.width).View())

	return content.String()
}

// SetSize sets the screen dimensions.
func (s *CalculatorScreen) SetSize(width, height int) {
	s.width = width
	s.height = height
	s.helpBar.SetWidth(width)

	formWidth := width - 10
	if formWidth > 60 {
		formWidth = 60
	}
	s.assumptionsForm.SetWidth(formWidth)
	s.currentForm.SetWidth(formWidth)
	s.newForm.SetWidth(formWidth)
}

// getCurrentForm returns the form for the current step.
func (s *CalculatorScreen) getCurrentForm() *component.Form {
	switch s.currentStep {
	case StepAssumptions:
		return s.assumptionsForm
	case StepCurrent:
		return s.currentForm
	case StepNew:
		return s.newForm
	default:
		return s.assumptionsForm
	}
}

// renderStepIndicator renders the step progress indicator.
func (s *CalculatorScreen) renderStepIndicator() string {
	steps := []string{"Assumptions", "Current", "New", "Results"}
	var indicators []string

	palette := style.DefaultPalette()

	for i, stepName := range steps {
		switch {
		case i == int(s.currentStep):
			indicators = append(indicators, lipgloss.NewStyle().
				Foreground(palette.Background).
				Background(palette.Primary).
				Bold(true).
				Padding(0, 1).
				Render(fmt.Sprintf("%d. %s", i+1, stepName)))
		case i < int(s.currentStep):
			indicators = append(indicators, lipgloss.NewStyle().
				Foreground(palette.Success).
				Bold(true).
				Render("✓ "+stepName))
		default:
			indicators = append(indicators, lipgloss.NewStyle().
				Foreground(palette.TextMuted).
				Render(fmt.Sprintf("%d. %s", i+1, stepName)))
		}
	}

	return "  " + strings.Join(indicators, " → ")
}

// renderCurrentStep renders the content for the current step.
func (s *CalculatorScreen) renderCurrentStep() string {
	switch s.currentStep {
	case StepAssumptions:
		var b strings.Builder
		b.WriteString(s.stepStyle.Render("⚙️ Global Assumptions"))
		b.WriteString("\n\n")
		b.WriteString(s.assumptionsForm.View())
		b.WriteString("\n")
		b.WriteString(s.captionStyle.Render("Adjust these to match a specific brand or portfolio."))
		return b.String()

	case StepCurrent:
		var b strings.Builder
		b.WriteString(s.stepStyle.Render("Current Strategy"))
		b.WriteString("\n\n")
		b.WriteString(s.currentForm.View())
		return b.String()

	case StepNew:
		var b strings.Builder
		b.WriteString(s.stepStyle.Render("New Strategy (e.g. Daily Emails)"))
		b.WriteString("\n\n")
		b.WriteString(s.captionStyle.Render("You can deliberately handicap these rates to be worse than current."))
		b.WriteString("\n\n")
		b.WriteString(s.newForm.View())
		return b.String()

	case StepResults:
		return s.renderResults()

	default:
		return ""
	}
}

// renderResults renders the yearly impact comparison.
func (s *CalculatorScreen) renderResults() string {
	palette := style.DefaultPalette()

	cur := s.comparison.Current
	next := s.comparison.New

	upliftStyle := lipgloss.NewStyle().Foreground(palette.Positive).Padding(0, 1)
	if s.comparison.Verdict() == funnel.VerdictNegative {
		upliftStyle = lipgloss.NewStyle().Foreground(palette.Negative).Padding(0, 1)
	}

	s.resultsTable.Clear().
		AddRow([]string{"Sends / year", format.Count(cur.SendsPerYear), format.Count(next.SendsPerYear), format.Count(next.SendsPerYear - cur.SendsPerYear)}).
		AddRow([]string{"Total sends", format.Count(cur.TotalSends), format.Count(next.TotalSends), format.Count(next.TotalSends - cur.TotalSends)}).
		AddRow([]string{"Opens / year", format.Count(cur.TotalOpens), format.Count(next.TotalOpens), format.Count(next.TotalOpens - cur.TotalOpens)}).
		AddRow([]string{"Clicks / year", format.Count(cur.TotalClicks), format.Count(next.TotalClicks), format.Count(next.TotalClicks - cur.TotalClicks)}).
		AddRow([]string{"Buyers / year", format.Count(cur.TotalBuyers), format.Count(next.TotalBuyers), format.Count(next.TotalBuyers - cur.TotalBuyers)}).
		AddStyledRow([]string{"Revenue / year", format.USD(cur.Revenue), format.USD(next.Revenue), format.SignedUSD(s.comparison.RevenueDelta)}, upliftStyle).
		AddStyledRow([]string{"Profit / year", format.USD(cur.Profit), format.USD(next.Profit), format.SignedUSD(s.comparison.ProfitDelta)}, upliftStyle)

	var b strings.Builder
	b.WriteString(s.stepStyle.Render("📊 Yearly Impact"))
	b.WriteString("\n\n")
	b.WriteString(s.resultsTable.View())
	b.WriteString("\n\n")

	if s.comparison.Verdict() == funnel.VerdictPositive {
		b.WriteString(s.successStyle.Render("✅ " + positiveMessage))
	} else {
		b.WriteString(s.warningStyle.Render("⚠ " + cautionaryMessage))
	}
	b.WriteString("\n\n")
	b.WriteString(s.captionStyle.Render("e: export CSV+JSON • r: start over • esc: adjust inputs"))

	return b.String()
}

// validateCurrentStep validates the current step's form.
func (s *CalculatorScreen) validateCurrentStep() bool {
	s.errors = make([]string, 0)

	if !s.getCurrentForm().Validate() {
		s.errors = append(s.errors, "Please fix the highlighted fields.")
		return false
	}
	return true
}

// nextStep moves to the next step. Entering the results step rebuilds the
// scenarios and the comparison from the current form values.
func (s *CalculatorScreen) nextStep() {
	if s.currentStep >= StepResults {
		return
	}
	s.currentStep++

	if s.currentStep == StepResults {
		current, proposed := s.buildScenarios()
		s.comparison = funnel.Compare(current, proposed)
	}
}

// previousStep moves to the previous step.
func (s *CalculatorScreen) previousStep() {
	if s.currentStep > StepAssumptions {
		s.currentStep--
		s.statusLine = ""
	}
}

// restart resets the wizard to the configured defaults.
func (s *CalculatorScreen) restart() {
	s.initializeForms()
	s.currentStep = StepAssumptions
	s.errors = make([]string, 0)
	s.statusLine = ""
	s.SetSize(s.width, s.height)
}

// buildScenarios assembles both scenarios from the form values. The
// shared assumptions come from the first form; the rate percents are
// converted to decimals here, so the funnel always sees (0, 1] rates.
func (s *CalculatorScreen) buildScenarios() (funnel.Scenario, funnel.Scenario) {
	listSize := s.assumptionsForm.IntValue("list_size")
	avgOrderValue := s.assumptionsForm.FloatValue("avg_order_value")
	grossMargin := s.assumptionsForm.FloatValue("gross_margin") / 100

	current := funnel.Scenario{
		Name:           "Current",
		ListSize:       listSize,
		SendsPerWeek:   s.currentForm.FloatValue("sends_per_week"),
		OpenRate:       s.currentForm.FloatValue("open_rate") / 100,
		ClickRate:      s.currentForm.FloatValue("click_rate") / 100,
		ConversionRate: s.currentForm.FloatValue("conversion_rate") / 100,
		AvgOrderValue:  avgOrderValue,
		GrossMargin:    grossMargin,
	}

	proposed := funnel.Scenario{
		Name:           "New",
		ListSize:       listSize,
		SendsPerWeek:   s.newForm.FloatValue("sends_per_week"),
		OpenRate:       s.newForm.FloatValue("open_rate") / 100,
		ClickRate:      s.newForm.FloatValue("click_rate") / 100,
		ConversionRate: s.newForm.FloatValue("conversion_rate") / 100,
		AvgOrderValue:  avgOrderValue,
		GrossMargin:    grossMargin,
	}

	return current, proposed
}

// exportCmd writes the comparison in both formats off the UI goroutine and
// reports back through the bus.
func (s *CalculatorScreen) exportCmd() tea.Cmd {
	current, proposed := s.buildScenarios()
	exporter := s.exporter

	return func() tea.Msg {
		paths, err := exporter.ExportAll(current, proposed)
		if err != nil {
			ui.PublishError(err, "Export failed")
			return nil
		}
		ui.PublishSuccess("Exported "+strings.Join(paths, ", "), "Export complete")
		return nil
	}
}
