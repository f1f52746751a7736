package tui

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	uv "github.com/charmbracelet/ultraviolet"
	"github.com/stretchr/testify/require"

	"github.com/quirekit/quire/internal/tui/testfixtures"
)

func TestOpenModal_ShowStartsEmpty(t *testing.T) {
	t.Parallel()

	modal := NewOpenModal()
	modal.Show()

	require.True(t, modal.IsVisible())
	require.Empty(t, modal.input.Value())
}

func TestOpenModal_EnterSubmitsPath(t *testing.T) {
	t.Parallel()

	modal := NewOpenModal()
	modal.Show()
	modal.input.SetValue("/tmp/notes.txt")

	cmd := modal.Update(tea.KeyPressMsg{Code: tea.KeyEnter})

	require.NotNil(t, cmd)
	msg, ok := cmd().(OpenSubmitMsg)
	require.True(t, ok, "enter should emit an OpenSubmitMsg")
	require.Equal(t, "/tmp/notes.txt", msg.Path)
	require.False(t, modal.IsVisible())
}

func TestOpenModal_EnterOnEmptyInputKeepsModalOpen(t *testing.T) {
	t.Parallel()

	modal := NewOpenModal()
	modal.Show()

	cmd := modal.Update(tea.KeyPressMsg{Code: tea.KeyEnter})

	require.Nil(t, cmd, "an empty path should not submit")
	require.True(t, modal.IsVisible())
}

func TestOpenModal_EscapeCancels(t *testing.T) {
	t.Parallel()

	modal := NewOpenModal()
	modal.Show()
	modal.input.SetValue("/tmp/partially-typed")

	cmd := modal.Update(tea.KeyPressMsg{Text: "esc"})

	require.Nil(t, cmd)
	require.False(t, modal.IsVisible())
	require.Empty(t, modal.input.Value())
}

func TestOpenModal_ShowClearsPreviousInput(t *testing.T) {
	t.Parallel()

	modal := NewOpenModal()
	modal.Show()
	modal.input.SetValue("/tmp/old-path")
	modal.Update(tea.KeyPressMsg{Text: "esc"})

	modal.Show()

	require.Empty(t, modal.input.Value(), "reopening should start from a blank path")
}

func TestOpenModal_DrawAndClickDismiss(t *testing.T) {
	t.Parallel()

	modal := NewOpenModal()
	modal.Show()

	render := testfixtures.Render(func(canvas uv.ScreenBuffer) {
		modal.Draw(canvas, canvas.Bounds())
	})
	require.Contains(t, render, "Open File")

	inside := modal.modalArea.Min
	require.Nil(t, modal.HandleClick(inside.X+1, inside.Y+1))
	require.True(t, modal.IsVisible(), "clicks inside the modal are consumed")

	require.Nil(t, modal.HandleClick(0, 0))
	require.False(t, modal.IsVisible(), "clicks outside dismiss the modal")
}
