package tui

import (
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/quirekit/quire/internal/tui/theme"
)

// ToastDismissMsg is sent when the toast should be dismissed.
type ToastDismissMsg struct{}

// ShowToastMsg is sent to show a toast notification.
type ShowToastMsg struct {
	Text string
}

// Toast is a minimal toast notification component.
// Shows a message in the bottom-right corner that auto-dismisses after 3 seconds.
type Toast struct {
	message   string
	visible   bool
	dismissAt time.Time
}

// NewToast creates a new Toast component.
func NewToast() *Toast {
	return &Toast{}
}

// Show displays a toast with the given message.
// The toast will auto-dismiss after 3 seconds.
func (t *Toast) Show(msg string) tea.Cmd {
	t.message = msg
	t.visible = true
	t.dismissAt = time.Now().Add(3 * time.Second)
	return t.dismissCmd()
}

// dismissCmd returns a command that will dismiss the toast after the remaining time.
func (t *Toast) dismissCmd() tea.Cmd {
	remaining := time.Until(t.dismissAt)
	if remaining <= 0 {
		remaining = 1 * time.Millisecond
	}
	return tea.Tick(remaining, func(time.Time) tea.Msg {
		return ToastDismissMsg{}
	})
}

// Update handles messages for the toast component.
func (t *Toast) Update(msg tea.Msg) tea.Cmd {
	switch msg.(type) {
	case ToastDismissMsg:
		t.visible = false
		t.message = ""
		return nil
	}
	return nil
}

// View renders the toast bubble, truncated to fit the given width.
// Returns empty string if the toast is not visible; the caller decides
// where on screen the bubble lands.
func (t *Toast) View(width int) string {
	if !t.visible || t.message == "" {
		return ""
	}

	style := theme.Current().S().Toast
	content := style.Render(t.message)
	if lipgloss.Width(content) > width-2 && width > 2 {
		content = style.Width(width - 2).Render(t.message)
	}

	return content
}

// IsVisible returns whether the toast is currently visible.
func (t *Toast) IsVisible() bool {
	return t.visible
}

// GetMessage returns the current toast message (empty if not visible).
func (t *Toast) GetMessage() string {
	if !t.visible {
		return ""
	}
	return t.message
}
