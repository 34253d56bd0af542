package screen

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/zacharyhyde/listprofit/internal/config"
	"github.com/zacharyhyde/listprofit/internal/export"
	"github.com/zacharyhyde/listprofit/internal/funnel"
)

func testConfig() *config.Config {
	return &config.Config{
		ListSize:       500_000,
		AvgOrderValue:  97.0,
		GrossMarginPct: 60,
		Current: config.StrategyDefaults{
			SendsPerWeek:   2,
			OpenPercent:    22,
			ClickPercent:   6,
			ConvertPercent: 3,
		},
		New: config.StrategyDefaults{
			SendsPerWeek:   7,
			OpenPercent:    20,
			ClickPercent:   5,
			ConvertPercent: 2,
		},
		ExportDir: "exports",
	}
}

func testCalculator(t *testing.T) *CalculatorScreen {
	t.Helper()
	exporter := export.NewComparisonExporter(t.TempDir(), zap.NewNop())
	s := NewCalculatorScreen(testConfig(), exporter)
	s.SetSize(120, 40)
	return s
}

func pressEnter(t *testing.T, s *CalculatorScreen) *CalculatorScreen {
	t.Helper()
	updated, _ := s.Update(tea.KeyMsg{Type: tea.KeyEnter})
	return updated.(*CalculatorScreen)
}

func TestBuildScenariosFromDefaults(t *testing.T) {
	s := testCalculator(t)

	current, proposed := s.buildScenarios()

	assert.Equal(t, "Current", current.Name)
	assert.Equal(t, 500_000, current.ListSize)
	assert.Equal(t, 2.0, current.SendsPerWeek)
	assert.InDelta(t, 0.22, current.OpenRate, 1e-9)
	assert.InDelta(t, 0.06, current.ClickRate, 1e-9)
	assert.InDelta(t, 0.03, current.ConversionRate, 1e-9)
	assert.InDelta(t, 0.6, current.GrossMargin, 1e-9)

	assert.Equal(t, "New", proposed.Name)
	assert.Equal(t, 7.0, proposed.SendsPerWeek)
	assert.InDelta(t, 0.20, proposed.OpenRate, 1e-9)

	// The defaults reproduce the reference projection.
	c := funnel.Compare(current, proposed)
	assert.InDelta(t, 1_533_376.0, c.RevenueDelta, 1e-3)
	assert.Equal(t, funnel.VerdictPositive, c.Verdict())
}

func TestWizardWalksToResults(t *testing.T) {
	s := testCalculator(t)
	require.Equal(t, StepAssumptions, s.currentStep)

	s = pressEnter(t, s)
	assert.Equal(t, StepCurrent, s.currentStep)

	s = pressEnter(t, s)
	assert.Equal(t, StepNew, s.currentStep)

	s = pressEnter(t, s)
	require.Equal(t, StepResults, s.currentStep)

	assert.InDelta(t, 1_533_376.0, s.comparison.RevenueDelta, 1e-3)
	assert.InDelta(t, 920_025.6, s.comparison.ProfitDelta, 1e-3)

	view := s.View()
	assert.Contains(t, view, "1,997,424")
	assert.Contains(t, view, "3,530,800")
	assert.Contains(t, view, positiveMessage)
}

func TestWizardShowsCautionaryMessage(t *testing.T) {
	cfg := testConfig()
	// Make the new strategy strictly worse.
	cfg.New = config.StrategyDefaults{
		SendsPerWeek:   1,
		OpenPercent:    10,
		ClickPercent:   2,
		ConvertPercent: 1,
	}

	exporter := export.NewComparisonExporter(t.TempDir(), zap.NewNop())
	s := NewCalculatorScreen(cfg, exporter)
	s.SetSize(120, 40)

	s = pressEnter(t, s)
	s = pressEnter(t, s)
	s = pressEnter(t, s)
	require.Equal(t, StepResults, s.currentStep)

	assert.Equal(t, funnel.VerdictNegative, s.comparison.Verdict())
	assert.Contains(t, s.View(), cautionaryMessage)
}

func TestWizardValidationBlocksAdvance(t *testing.T) {
	s := testCalculator(t)
	s.assumptionsForm.SetValue("gross_margin", 150)

	s = pressEnter(t, s)

	assert.Equal(t, StepAssumptions, s.currentStep)
	assert.NotEmpty(t, s.errors)
}

func TestWizardRestartResetsToDefaults(t *testing.T) {
	s := testCalculator(t)
	s = pressEnter(t, s)
	s = pressEnter(t, s)
	s = pressEnter(t, s)
	require.Equal(t, StepResults, s.currentStep)

	updated, _ := s.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")})
	s = updated.(*CalculatorScreen)

	assert.Equal(t, StepAssumptions, s.currentStep)
	assert.Equal(t, 500_000, s.assumptionsForm.IntValue("list_size"))
	assert.Equal(t, 2.0, s.currentForm.FloatValue("sends_per_week"))
}

func TestStepBackFromResults(t *testing.T) {
	s := testCalculator(t)
	s = pressEnter(t, s)
	s = pressEnter(t, s)
	s = pressEnter(t, s)
	require.Equal(t, StepResults, s.currentStep)

	updated, _ := s.Update(tea.KeyMsg{Type: tea.KeyEsc})
	s = updated.(*CalculatorScreen)
	assert.Equal(t, StepNew, s.currentStep)
}
