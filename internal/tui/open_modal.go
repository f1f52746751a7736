package tui

import (
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	uv "github.com/charmbracelet/ultraviolet"

	"github.com/quirekit/quire/internal/tui/theme"
)

// OpenSubmitMsg is sent when the user confirms a file path to open in a
// new tab.
type OpenSubmitMsg struct {
	Path string
}

// OpenModal is a centered modal with a single text input for opening a
// document by path.
type OpenModal struct {
	visible   bool
	input     textinput.Model
	width     int
	modalArea uv.Rectangle
}

// NewOpenModal creates the open-file modal.
func NewOpenModal() *OpenModal {
	input := textinput.New()
	input.Placeholder = "Path to file..."
	input.Prompt = ""
	input.CharLimit = 512
	input.SetStyles(inputStyles())
	input.SetWidth(40)

	return &OpenModal{
		input: input,
		width: 48,
	}
}

// IsVisible returns whether the modal is open.
func (m *OpenModal) IsVisible() bool {
	return m.visible
}

// Show opens the modal with an empty input.
func (m *OpenModal) Show() tea.Cmd {
	m.visible = true
	m.input.SetValue("")
	return m.input.Focus()
}

// Close hides the modal and clears the input.
func (m *OpenModal) Close() {
	m.visible = false
	m.input.SetValue("")
	m.input.Blur()
}

// Update handles keyboard input while the modal is open.
func (m *OpenModal) Update(msg tea.Msg) tea.Cmd {
	if !m.visible {
		return nil
	}

	if keyMsg, ok := msg.(tea.KeyPressMsg); ok {
		switch keyMsg.String() {
		case "esc":
			m.Close()
			return nil
		case "enter":
			path := strings.TrimSpace(m.input.Value())
			if path == "" {
				return nil
			}
			m.Close()
			return func() tea.Msg {
				return OpenSubmitMsg{Path: path}
			}
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return cmd
}

// HandleClick processes a click while the modal is open. Clicks outside
// the modal dismiss it; all clicks are consumed.
func (m *OpenModal) HandleClick(x, y int) tea.Cmd {
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
func (m *OpenModal) Draw(scr uv.Screen, area uv.Rectangle) {
	if !m.visible {
		return
	}

	s := theme.Current().S()

	var sections []string
	sections = append(sections, s.ModalTitle.Render("Open File"))
	sections = append(sections, "")
	sections = append(sections, m.input.View())
	sections = append(sections, s.ModalHint.Render("Plain text, markdown, or source code"))
	sections = append(sections, "")
	sections = append(sections, RenderHintBar(KeyEnter, "open", KeyEsc, "cancel"))

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
