package component

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func assumptionsForm() *Form {
	return NewForm().
		AddIntegerField("list_size", "List size (subscribers)", 500_000, 1, 10_000).
		AddNumberField("avg_order_value", "Average order value ($)", 97.0, 1.0, 1.0).
		AddPercentField("gross_margin", "Gross margin (%)", 60, 10, 100, 5)
}

func TestFormInitialValues(t *testing.T) {
	f := assumptionsForm()

	assert.Equal(t, 500_000, f.IntValue("list_size"))
	assert.Equal(t, 97.0, f.FloatValue("avg_order_value"))
	assert.Equal(t, 60.0, f.FloatValue("gross_margin"))
}

func TestFormStepUpAndDown(t *testing.T) {
	f := assumptionsForm()

	// First field is focused: list size steps by 10,000.
	f, _ = f.Update(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 510_000, f.IntValue("list_size"))

	f, _ = f.Update(tea.KeyMsg{Type: tea.KeyDown})
	f, _ = f.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 490_000, f.IntValue("list_size"))
}

func TestFormStepClampsAtBounds(t *testing.T) {
	f := NewForm().
		AddPercentField("gross_margin", "Gross margin (%)", 95, 10, 100, 5)

	f, _ = f.Update(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 100.0, f.FloatValue("gross_margin"))

	// Further raises stay clamped at the maximum.
	f, _ = f.Update(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 100.0, f.FloatValue("gross_margin"))

	for i := 0; i < 25; i++ {
		f, _ = f.Update(tea.KeyMsg{Type: tea.KeyDown})
	}
	assert.Equal(t, 10.0, f.FloatValue("gross_margin"))
}

func TestFormTabCyclesFocus(t *testing.T) {
	f := assumptionsForm()

	f, _ = f.Update(tea.KeyMsg{Type: tea.KeyTab})
	f, _ = f.Update(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 98.0, f.FloatValue("avg_order_value"))

	// Wrap around back to the first field.
	f, _ = f.Update(tea.KeyMsg{Type: tea.KeyTab})
	f, _ = f.Update(tea.KeyMsg{Type: tea.KeyTab})
	f, _ = f.Update(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 510_000, f.IntValue("list_size"))
}

func TestFormValidate(t *testing.T) {
	f := assumptionsForm()
	assert.True(t, f.Validate())

	f.SetValue("gross_margin", 150)
	assert.False(t, f.Validate())
	assert.NotEmpty(t, f.FieldError("gross_margin"))

	f.SetValue("gross_margin", 60)
	f.SetValue("list_size", 0)
	assert.False(t, f.Validate())
	assert.NotEmpty(t, f.FieldError("list_size"))

	f.SetValue("list_size", 500_000)
	assert.True(t, f.Validate())
}

func TestFormValidateRejectsNonNumeric(t *testing.T) {
	f := NewForm().
		AddNumberField("sends_per_week", "Emails per week", 2.0, 0, 0.5)

	// Type over the value with garbage.
	for i := 0; i < 10; i++ {
		f, _ = f.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	}
	f, _ = f.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("abc")})

	assert.False(t, f.Validate())
	assert.NotEmpty(t, f.FieldError("sends_per_week"))
}

func TestFormFractionalSteps(t *testing.T) {
	f := NewForm().
		AddNumberField("sends_per_week", "Emails per week", 2.0, 0, 0.5)

	f, _ = f.Update(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 2.5, f.FloatValue("sends_per_week"))

	for i := 0; i < 10; i++ {
		f, _ = f.Update(tea.KeyMsg{Type: tea.KeyDown})
	}
	// Sends per week bottoms out at zero, never negative.
	assert.Equal(t, 0.0, f.FloatValue("sends_per_week"))
}
