package notebook

// Tab is the header strip representing one page in the tab row. It owns the
// title, a closable flag fixed at creation, and the transient visual state:
// active/inactive plus a hover flag for the close affordance. A tab never
// activates itself; activation is driven exclusively by the notebook's
// selection switch, so pointer handlers only *request* mutations through the
// callbacks bound at creation.
type Tab struct {
	page     *Page
	title    string
	closable bool
	active   bool
	hover    bool

	onActivate func()
	onClose    func()
}

// Title returns the tab's display title.
func (t *Tab) Title() string {
	return t.title
}

// Closable reports whether the tab renders a close affordance and responds
// to close gestures.
func (t *Tab) Closable() bool {
	return t.closable
}

// Active reports whether the tab's page is the current page.
func (t *Tab) Active() bool {
	return t.active
}

// Hovered reports whether the pointer is over the close affordance.
func (t *Tab) Hovered() bool {
	return t.hover
}

// Page returns the page this tab belongs to.
func (t *Tab) Page() *Page {
	return t.page
}

// SetHover toggles the close-affordance hover flag, swapping which icon
// variant the header renders with. It reports whether the flag changed.
// Non-closable tabs have no affordance and ignore hover entirely.
func (t *Tab) SetHover(on bool) bool {
	if !t.closable || t.hover == on {
		return false
	}
	t.hover = on
	return true
}

// Click reports a pointer-down on the tab's label or body. The tab requests
// selection from its notebook; the visual state change arrives via the
// notebook's activate call, never directly.
func (t *Tab) Click() {
	if t.onActivate != nil {
		t.onActivate()
	}
}

// ClickClose reports a pointer-down on the close affordance. Ignored on
// non-closable tabs.
func (t *Tab) ClickClose() {
	if t.closable && t.onClose != nil {
		t.onClose()
	}
}

func (t *Tab) activate() {
	t.active = true
}

func (t *Tab) deactivate() {
	t.active = false
}
