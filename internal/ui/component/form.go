package component

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/zacharyhyde/listprofit/internal/ui/style"
)

// FieldType represents the type of form field
type FieldType int

const (
	// FieldTypeNumber is a non-negative real input with a step.
	FieldTypeNumber FieldType = iota
	// FieldTypeInteger is a whole-number input.
	FieldTypeInteger
	// FieldTypePercent is a bounded whole-percent input; up/down walk it
	// by its step, standing in for a slider.
	FieldTypePercent
)

// FormField represents a single form field
type FormField struct {
	Name  string
	Label string
	Type  FieldType
	Min   float64
	Max   float64 // only enforced for percent fields
	Step  float64
	Error string

	// Internal state
	textInput textinput.Model
	focused   bool
}

// Form represents a form component with multiple fields
type Form struct {
	fields     []FormField
	focusIndex int
	width      int

	// Styling
	labelStyle   lipgloss.Style
	inputStyle   lipgloss.Style
	focusedStyle lipgloss.Style
	errorStyle   lipgloss.Style
	hintStyle    lipgloss.Style
}

// NewForm creates a new form component
func NewForm() *Form {
	palette := style.DefaultPalette()

	return &Form{
		fields:     make([]FormField, 0),
		focusIndex: 0,

		labelStyle: lipgloss.NewStyle().
			Foreground(palette.Text).
			Bold(true).
			MarginRight(1),

		inputStyle: lipgloss.NewStyle().
			Foreground(palette.Text).
			Background(palette.BackgroundAlt).
			Padding(0, 1).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(palette.TextMuted),

		focusedStyle: lipgloss.NewStyle().
			Foreground(palette.Text).
			Background(palette.BackgroundAlt).
			Padding(0, 1).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(palette.Primary),

		errorStyle: lipgloss.NewStyle().
			Foreground(palette.Error).
			MarginTop(1),

		hintStyle: lipgloss.NewStyle().
			Foreground(palette.TextMuted),
	}
}

func (f *Form) addField(field FormField, initial float64) *Form {
	ti := textinput.New()
	ti.Width = 24
	ti.SetValue(formatNumber(initial))
	field.textInput = ti

	f.fields = append(f.fields, field)

	if len(f.fields) == 1 {
		f.fields[0].focused = true
		f.fields[0].textInput.Focus()
	}
	return f
}

// AddNumberField adds a real-valued field with a lower bound and a step.
func (f *Form) AddNumberField(name, label string, initial, min, step float64) *Form {
	return f.addField(FormField{
		Name:  name,
		Label: label,
		Type:  FieldTypeNumber,
		Min:   min,
		Step:  step,
	}, initial)
}

// AddIntegerField adds a whole-number field with a lower bound and a step.
func (f *Form) AddIntegerField(name, label string, initial int, min, step float64) *Form {
	return f.addField(FormField{
		Name:  name,
		Label: label,
		Type:  FieldTypeInteger,
		Min:   min,
		Step:  step,
	}, float64(initial))
}

// AddPercentField adds a bounded whole-percent field.
func (f *Form) AddPercentField(name, label string, initial, min, max, step float64) *Form {
	return f.addField(FormField{
		Name:  name,
		Label: label,
		Type:  FieldTypePercent,
		Min:   min,
		Max:   max,
		Step:  step,
	}, initial)
}

// Init initializes the form (for compatibility with tea.Model interface)
func (f *Form) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles form input and updates
func (f *Form) Update(msg tea.Msg) (*Form, tea.Cmd) {
	if len(f.fields) == 0 {
		return f, nil
	}

	var cmds []tea.Cmd

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "tab":
			f.nextField()
			return f, nil
		case "shift+tab":
			f.prevField()
			return f, nil
		case "up":
			f.stepField(1)
			return f, nil
		case "down":
			f.stepField(-1)
			return f, nil
		}
	}

	// Update the focused field
	field := &f.fields[f.focusIndex]
	var cmd tea.Cmd
	field.textInput, cmd = field.textInput.Update(msg)
	cmds = append(cmds, cmd)

	// Clear error when user types
	if field.Error != "" {
		field.Error = ""
	}

	return f, tea.Batch(cmds...)
}

// View renders the form
func (f *Form) View() string {
	if len(f.fields) == 0 {
		return "No fields defined"
	}

	var content strings.Builder

	for i, field := range f.fields {
		content.WriteString(f.labelStyle.Render(field.Label))
		content.WriteString(" ")
		content.WriteString(f.hintStyle.Render(f.rangeHint(field)))
		content.WriteString("\n")

		fieldStyle := f.inputStyle
		if i == f.focusIndex {
			fieldStyle = f.focusedStyle
		}
		content.WriteString(fieldStyle.Render(field.textInput.View()))
		content.WriteString("\n")

		if field.Error != "" {
			content.WriteString(f.errorStyle.Render("⚠ " + field.Error))
			content.WriteString("\n")
		}

		if i < len(f.fields)-1 {
			content.WriteString("\n")
		}
	}

	return content.String()
}

func (f *Form) rangeHint(field FormField) string {
	switch field.Type {
	case FieldTypePercent:
		return fmt.Sprintf("(%g–%g%%, ↑/↓ ±%g)", field.Min, field.Max, field.Step)
	default:
		return fmt.Sprintf("(min %g, ↑/↓ ±%g)", field.Min, field.Step)
	}
}

// nextField moves focus to the next field
func (f *Form) nextField() {
	f.fields[f.focusIndex].focused = false
	f.fields[f.focusIndex].textInput.Blur()

	f.focusIndex = (f.focusIndex + 1) % len(f.fields)

	f.fields[f.focusIndex].focused = true
	f.fields[f.focusIndex].textInput.Focus()
}

// prevField moves focus to the previous field
func (f *Form) prevField() {
	f.fields[f.focusIndex].focused = false
	f.fields[f.focusIndex].textInput.Blur()

	f.focusIndex--
	if f.focusIndex < 0 {
		f.focusIndex = len(f.fields) - 1
	}

	f.fields[f.focusIndex].focused = true
	f.fields[f.focusIndex].textInput.Focus()
}

// stepField nudges the focused field by its step, clamped to its bounds.
// Unparseable text snaps to the field minimum.
func (f *Form) stepField(direction float64) {
	field := &f.fields[f.focusIndex]

	value, err := strconv.ParseFloat(strings.TrimSpace(field.textInput.Value()), 64)
	if err != nil {
		value = field.Min
	} else {
		value += direction * field.Step
	}

	if value < field.Min {
		value = field.Min
	}
	if field.Type == FieldTypePercent && value > field.Max {
		value = field.Max
	}

	field.textInput.SetValue(formatNumber(value))
	field.Error = ""
}

// Validate checks every field against its type and bounds.
func (f *Form) Validate() bool {
	valid := true

	for i := range f.fields {
		field := &f.fields[i]
		field.Error = ""

		raw := strings.TrimSpace(field.textInput.Value())
		if raw == "" {
			field.Error = "This field is required"
			valid = false
			continue
		}

		value, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			field.Error = "Must be a number"
			valid = false
			continue
		}

		if field.Type == FieldTypeInteger && value != float64(int64(value)) {
			field.Error = "Must be a whole number"
			valid = false
			continue
		}

		if value < field.Min {
			field.Error = fmt.Sprintf("Must be at least %g", field.Min)
			valid = false
			continue
		}

		if field.Type == FieldTypePercent && value > field.Max {
			field.Error = fmt.Sprintf("Must be at most %g", field.Max)
			valid = false
		}
	}

	return valid
}

// FloatValue returns the parsed value of a field, or its minimum when the
// text does not parse. Call Validate first when the distinction matters.
func (f *Form) FloatValue(name string) float64 {
	for _, field := range f.fields {
		if field.Name == name {
			value, err := strconv.ParseFloat(strings.TrimSpace(field.textInput.Value()), 64)
			if err != nil {
				return field.Min
			}
			return value
		}
	}
	return 0
}

// IntValue returns the parsed value of an integer field.
func (f *Form) IntValue(name string) int {
	return int(f.FloatValue(name))
}

// SetValue sets the text of a field by name.
func (f *Form) SetValue(name string, value float64) *Form {
	for i := range f.fields {
		if f.fields[i].Name == name {
			f.fields[i].textInput.SetValue(formatNumber(value))
			break
		}
	}
	return f
}

// FieldError returns the current validation error of a field.
func (f *Form) FieldError(name string) string {
	for _, field := range f.fields {
		if field.Name == name {
			return field.Error
		}
	}
	return ""
}

// SetWidth sets the form width
func (f *Form) SetWidth(width int) *Form {
	f.width = width
	inputWidth := width - 4
	if inputWidth > 10 {
		for i := range f.fields {
			f.fields[i].textInput.Width = inputWidth
		}
	}
	return f
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
