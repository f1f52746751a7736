package tui

import (
	"runtime"

	tea "charm.land/bubbletea/v2"
)

// Family selects which physical mouse button carries the secondary (menu)
// and tertiary (direct close) tab gestures. It is resolved once at startup
// and injected into the tab row, so no component branches on the OS at
// gesture time.
type Family int

const (
	// FamilyOther is the default: right button opens the tab menu, middle
	// button closes.
	FamilyOther Family = iota
	// FamilyMac swaps the pair: middle button opens the tab menu, right
	// button closes.
	FamilyMac
)

func (f Family) String() string {
	if f == FamilyMac {
		return "mac"
	}
	return "other"
}

// ResolveFamily maps the config platform value to a family. "mac" and
// "other" force a family; anything else (normally "auto") detects from the
// OS quire is running on.
func ResolveFamily(platform string) Family {
	switch platform {
	case "mac":
		return FamilyMac
	case "other":
		return FamilyOther
	}
	if runtime.GOOS == "darwin" {
		return FamilyMac
	}
	return FamilyOther
}

// TabAction is what a pointer gesture on a tab header asks for.
type TabAction int

const (
	TabActionNone TabAction = iota
	TabActionSelect
	TabActionMenu
	TabActionClose
)

// Bindings is the per-family button table for the tab row.
type Bindings struct {
	family Family
}

// NewBindings creates the button table for a platform family.
func NewBindings(f Family) Bindings {
	return Bindings{family: f}
}

// Family returns the platform family the table was built for.
func (b Bindings) Family() Family {
	return b.family
}

// ForButton maps a mouse button on a tab header to its action. The left
// button always selects; the close affordance overrides this table and is
// hit-tested separately by the tab row.
func (b Bindings) ForButton(btn tea.MouseButton) TabAction {
	switch btn {
	case tea.MouseLeft:
		return TabActionSelect
	case tea.MouseMiddle:
		if b.family == FamilyMac {
			return TabActionMenu
		}
		return TabActionClose
	case tea.MouseRight:
		if b.family == FamilyMac {
			return TabActionClose
		}
		return TabActionMenu
	}
	return TabActionNone
}
