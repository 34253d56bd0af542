package router

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zacharyhyde/listprofit/internal/ui"
)

type stubScreen struct {
	msgs   []tea.Msg
	inited bool
	width  int
	height int
}

func (s *stubScreen) Init() tea.Cmd {
	s.inited = true
	return nil
}

func (s *stubScreen) Update(msg tea.Msg) (Screen, tea.Cmd) {
	s.msgs = append(s.msgs, msg)
	return s, nil
}

func (s *stubScreen) View() string { return "stub" }

func (s *stubScreen) SetSize(width, height int) {
	s.width = width
	s.height = height
}

func TestRouterForwardsNavigationMessages(t *testing.T) {
	screen := &stubScreen{}
	r := New(screen)

	// Navigation messages pass through to the current screen like any
	// other message; the router must not answer them with a command that
	// emits the same message again.
	_, cmd := r.Update(ui.RouterMsg{To: ui.RouteCalculator})

	assert.Nil(t, cmd)
	require.Len(t, screen.msgs, 1)
	assert.Equal(t, ui.RouterMsg{To: ui.RouteCalculator}, screen.msgs[0])
}

func TestRouterEscPopsOnlyWhenStacked(t *testing.T) {
	first := &stubScreen{}
	second := &stubScreen{}
	r := New(first)
	r.Push(second)
	require.Equal(t, 2, r.Depth())

	r.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, 1, r.Depth())

	// At the bottom of the stack esc belongs to the screen.
	r.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, 1, r.Depth())
	assert.Len(t, first.msgs, 1)
}

func TestRouterReplaceKeepsDepth(t *testing.T) {
	first := &stubScreen{}
	next := &stubScreen{}
	r := New(first)
	r.SetSize(100, 30)

	r.Replace(next)

	assert.Equal(t, 1, r.Depth())
	assert.Same(t, next, r.Current())
	assert.True(t, next.inited)
	assert.Equal(t, 100, next.width)
}
