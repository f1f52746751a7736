package tui

import (
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	uv "github.com/charmbracelet/ultraviolet"

	"github.com/quirekit/quire/internal/tui/theme"
)

// RenameSubmitMsg is sent when the user confirms a new title for the
// current tab.
type RenameSubmitMsg struct {
	Title string
}

// RenameModal is a small centered modal with a single text input for
// retitling the current tab.
type RenameModal struct {
	visible   bool
	input     textinput.Model
	width     int
	modalArea uv.Rectangle
}

// NewRenameModal creates the rename modal.
func NewRenameModal() *RenameModal {
	input := textinput.New()
	input.Placeholder = "New title..."
	input.Prompt = ""
	input.CharLimit = 120
	input.SetStyles(inputStyles())
	input.SetWidth(40)

	return &RenameModal{
		input: input,
		width: 48,
	}
}

// inputStyles builds the shared text input styling from the active theme.
func inputStyles() textinput.Styles {
	t := theme.Current()
	return textinput.Styles{
		Focused: textinput.StyleState{
			Text:        lipgloss.NewStyle().Foreground(lipgloss.Color(t.FgBase)),
			Placeholder: lipgloss.NewStyle().Foreground(lipgloss.Color(t.FgMuted)),
			Prompt:      lipgloss.NewStyle().Foreground(lipgloss.Color(t.Secondary)),
		},
		Blurred: textinput.StyleState{
			Text:        lipgloss.NewStyle().Foreground(lipgloss.Color(t.FgSubtle)),
			Placeholder: lipgloss.NewStyle().Foreground(lipgloss.Color(t.FgMuted)),
			Prompt:      lipgloss.NewStyle().Foreground(lipgloss.Color(t.FgMuted)),
		},
		Cursor: textinput.CursorStyle{
			Color: lipgloss.Color(t.Primary),
			Shape: tea.CursorBar,
			Blink: true,
		},
	}
}

// IsVisible returns whether the modal is open.
func (m *RenameModal) IsVisible() bool {
	return m.visible
}

// Show opens the modal pre-filled with the current title.
func (m *RenameModal) Show(current string) tea.Cmd {
	m.visible = true
	m.input.SetValue(current)
	m.input.CursorEnd()
	return m.input.Focus()
}

// Close hides the modal and clears the input.
func (m *RenameModal) Close() {
	m.visible = false
	m.input.SetValue("")
	m.input.Blur()
}

// Update handles keyboard input while the modal is open.
func (m *RenameModal) Update(msg tea.Msg) tea.Cmd {
	if !m.visible {
		return nil
	}

	if keyMsg, ok := msg.(tea.KeyPressMsg); ok {
		switch keyMsg.String() {
		case "esc":
			m.Close()
			return nil
		case "enter":
			title := strings.TrimSpace(m.input.Value())
			if title == "" {
				return nil
			}
			m.Close()
			return func() tea.Msg {
				return RenameSubmitMsg{Title: title}
			}
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return cmd
}

// HandleClick processes a click while the modal is open. Clicks outside
// the modal dismiss it; all clicks are consumed.
func (m *RenameModal) HandleClick(x, y int) tea.Cmd {
	if !m.visible {
		return nil
	}
	inside := x >= m.modalArea.Min.X && x < m.modalArea.Max.X &&
		y >= m.modalArea.Min.Y && y < m.modalArea.Max.Y
	if !inside {
		m.Close()
	}
	return nil
}

// Draw renders the modal centered on the screen buffer.
func (m *RenameModal) Draw(scr uv.Screen, area uv.Rectangle) {
	if !m.visible {
		return
	}

	s := theme.Current().S()

	var sections []string
	sections = append(sections, s.ModalTitle.Render("Rename Tab"))
	sections = append(sections, "")
	sections = append(sections, m.input.View())
	sections = append(sections, "")
	sections = append(sections, RenderHintBar(KeyEnter, "apply", KeyEsc, "cancel"))

	content := strings.Join(sections, "\n")
	modal := s.ModalContainer.Width(m.width).Render(content)

	renderedWidth := lipgloss.Width(modal)
	renderedHeight := lipgloss.Height(modal)
	x := (area.Dx() - renderedWidth) / 2
	y := (area.Dy() - renderedHeight) / 2
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}

	m.modalArea = uv.Rectangle{
		Min: uv.Position{X: area.Min.X + x, Y: area.Min.Y + y},
		Max: uv.Position{X: area.Min.X + x + renderedWidth, Y: area.Min.Y + y + renderedHeight},
	}
	uv.NewStyledString(modal).Draw(scr, m.modalArea)
}
