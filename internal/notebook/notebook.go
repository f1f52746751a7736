// Package notebook implements the tabbed-container state machine: an ordered
// sequence of pages, each pairing a tab header with an opaque content handle,
// plus a single current-page selection. The package is pure bookkeeping; it
// drives rendering through the Layout interface and reports selection
// switches through a registered callback, so it has no terminal dependencies
// and is fully testable with fakes.
package notebook

import (
	"fmt"

	"github.com/gosimple/slug"
)

// Content is the opaque handle a page displays. The notebook holds a
// reference only, the caller keeps ownership, and handles are compared by
// identity, so implementations should be pointer types.
type Content = any

// Layout is the rendering service the notebook drives. Calls are synchronous
// and must not fail; a nil Layout passed to New is replaced with a no-op
// implementation.
type Layout interface {
	// Place positions a tab header at the given slot of the row, ordered
	// left to right.
	Place(t *Tab, position int)
	// Raise brings a page's content to the front of the stacked region.
	Raise(c Content)
	// Detach removes a header and its content from the layout.
	Detach(t *Tab, c Content)
	// Focus moves keyboard focus to the given content, or to the notebook
	// frame itself when c is nil.
	Focus(c Content)
}

// Page pairs one tab header with one content handle under a stable ID
// assigned at insertion. The ID survives renames; content identity, not the
// ID and not the title, is the canonical way to address a page.
type Page struct {
	id      string
	tab     *Tab
	content Content
}

// ID returns the page's stable identifier.
func (p *Page) ID() string {
	return p.id
}

// Tab returns the page's header.
func (p *Page) Tab() *Tab {
	return p.tab
}

// Content returns the page's content handle.
func (p *Page) Content() Content {
	return p.content
}

// Config controls notebook-wide behavior.
type Config struct {
	// Closable controls whether tabs carry a close affordance and respond
	// to close gestures. Fixed per tab at creation time.
	Closable bool
}

// Notebook owns the ordered page sequence and the current-page pointer and
// is the single writer of both; tab headers and external callers only
// request mutations. All methods must run on one goroutine (the UI event
// loop), so the notebook does no locking.
//
// At every public-operation boundary the selection invariant holds: the
// current page is nil exactly when the sequence is empty, and otherwise is
// an element of the sequence. Failed operations change nothing.
type Notebook struct {
	cfg      Config
	layout   Layout
	pages    []*Page
	current  *Page
	onChange func()
	seq      int
}

// New creates an empty notebook driving the given layout service.
func New(cfg Config, layout Layout) *Notebook {
	if layout == nil {
		layout = noopLayout{}
	}
	return &Notebook{cfg: cfg, layout: layout}
}

// SetOnChange registers the selection-changed notification. It fires exactly
// once per completed switch of the current page, including the switch to no
// page when the last one closes, and never for a no-op select. The callback
// carries no payload; consumers re-query Current or SelectedID.
func (n *Notebook) SetOnChange(fn func()) {
	n.onChange = fn
}

// Add appends a page and selects it. Equivalent to Insert at Len.
func (n *Notebook) Add(c Content, title string) *Page {
	p, _ := n.Insert(len(n.pages), c, title)
	return p
}

// Insert creates a page at pos, shifting later pages right, re-places every
// header to match the new order, and unconditionally selects the new page.
// pos must lie in [0, Len]; anything else fails with ErrOutOfRange.
func (n *Notebook) Insert(pos int, c Content, title string) (*Page, error) {
	if pos < 0 || pos > len(n.pages) {
		return nil, fmt.Errorf("insert at %d of %d pages: %w", pos, len(n.pages), ErrOutOfRange)
	}

	p := &Page{id: n.pageID(title), content: c}
	p.tab = &Tab{
		page:       p,
		title:      title,
		closable:   n.cfg.Closable,
		onActivate: func() { n.selectPage(p) },
		onClose:    func() { n.closePage(p) },
	}

	n.pages = append(n.pages, nil)
	copy(n.pages[pos+1:], n.pages[pos:])
	n.pages[pos] = p

	n.placeAll()
	n.selectPage(p)
	return p, nil
}

// Close removes the page holding c: the header and content are detached from
// the layout, the page leaves the sequence, and the remaining headers are
// re-placed. If the closed page was current, selection moves to the page now
// occupying the same index (the right neighbor), else to the new last page,
// else away entirely; the move runs through the normal selection path, so it
// raises and notifies like any other switch.
func (n *Notebook) Close(c Content) error {
	i := n.lookup(c)
	if i < 0 {
		return fmt.Errorf("close: %w", ErrNotFound)
	}
	n.removeAt(i)
	return nil
}

// CloseTab closes the page owned by the given header. Close gestures on the
// header delegate here.
func (n *Notebook) CloseTab(t *Tab) error {
	p := n.pageOf(t)
	if p == nil {
		return fmt.Errorf("close tab: %w", ErrNotFound)
	}
	n.closePage(p)
	return nil
}

// CloseOthers closes every page except keep's, iterating in reverse display
// order so removals cannot shift the indices of pages not yet visited.
func (n *Notebook) CloseOthers(keep *Tab) error {
	if keep != nil && n.pageOf(keep) == nil {
		return fmt.Errorf("close others: %w", ErrNotFound)
	}
	for i := len(n.pages) - 1; i >= 0; i-- {
		if n.pages[i].tab == keep {
			continue
		}
		n.removeAt(i)
	}
	return nil
}

// CloseAll closes every page, in the same reverse order as CloseOthers.
func (n *Notebook) CloseAll() error {
	return n.CloseOthers(nil)
}

// SelectIndex selects the page at display index i. Selecting the current
// index is a no-op: no visual state change and no notification. An index
// outside [0, Len) fails with ErrOutOfRange.
func (n *Notebook) SelectIndex(i int) error {
	if i < 0 || i >= len(n.pages) {
		return fmt.Errorf("select index %d of %d pages: %w", i, len(n.pages), ErrOutOfRange)
	}
	n.selectPage(n.pages[i])
	return nil
}

// Select resolves c to its display index and selects it, propagating
// ErrNotFound for unknown handles.
func (n *Notebook) Select(c Content) error {
	i := n.lookup(c)
	if i < 0 {
		return fmt.Errorf("select: %w", ErrNotFound)
	}
	return n.SelectIndex(i)
}

// SelectID selects by stable page ID. A convenience alias for callers that
// hold IDs from Tabs; content identity stays the canonical key, and the
// failure mode is the same ErrNotFound as Select's.
func (n *Notebook) SelectID(id string) error {
	for _, p := range n.pages {
		if p.id == id {
			n.selectPage(p)
			return nil
		}
	}
	return fmt.Errorf("select %q: %w", id, ErrNotFound)
}

// SelectedID returns the current page's stable ID, or "" when the notebook
// is empty.
func (n *Notebook) SelectedID() string {
	if n.current == nil {
		return ""
	}
	return n.current.id
}

// Index returns the display position of the page holding c.
func (n *Notebook) Index(c Content) (int, error) {
	i := n.lookup(c)
	if i < 0 {
		return 0, fmt.Errorf("index: %w", ErrNotFound)
	}
	return i, nil
}

// Rename retitles the page holding c. The stable ID is unaffected.
func (n *Notebook) Rename(c Content, title string) error {
	i := n.lookup(c)
	if i < 0 {
		return fmt.Errorf("rename: %w", ErrNotFound)
	}
	n.pages[i].tab.title = title
	return nil
}

// Tabs returns the page IDs in display order. The slice is a snapshot, not
// a live view.
func (n *Notebook) Tabs() []string {
	ids := make([]string, len(n.pages))
	for i, p := range n.pages {
		ids[i] = p.id
	}
	return ids
}

// ChildAt returns the content handle at display index i.
func (n *Notebook) ChildAt(i int) (Content, error) {
	if i < 0 || i >= len(n.pages) {
		return nil, fmt.Errorf("child at %d of %d pages: %w", i, len(n.pages), ErrOutOfRange)
	}
	return n.pages[i].content, nil
}

// Current returns the current page's content handle, or nil when the
// notebook is empty.
func (n *Notebook) Current() Content {
	if n.current == nil {
		return nil
	}
	return n.current.content
}

// CurrentPage returns the current page, or nil when the notebook is empty.
func (n *Notebook) CurrentPage() *Page {
	return n.current
}

// Pages returns the pages in display order as a snapshot slice.
func (n *Notebook) Pages() []*Page {
	out := make([]*Page, len(n.pages))
	copy(out, n.pages)
	return out
}

// Len returns the number of pages.
func (n *Notebook) Len() int {
	return len(n.pages)
}

// Focus delegates keyboard focus to the current content, or to the notebook
// frame itself when no page is open.
func (n *Notebook) Focus() {
	if n.current != nil {
		n.layout.Focus(n.current.content)
		return
	}
	n.layout.Focus(nil)
}

// pageID derives the stable identifier for a new page. Slugs keep IDs
// readable in Tabs output and logs; the sequence number keeps them unique
// across duplicate and renamed titles.
func (n *Notebook) pageID(title string) string {
	s := slug.Make(title)
	if s == "" {
		s = "page"
	}
	n.seq++
	return fmt.Sprintf("%s-%d", s, n.seq)
}

// lookup returns the index of the page holding c, or -1. Handles are
// matched by identity.
func (n *Notebook) lookup(c Content) int {
	for i, p := range n.pages {
		if p.content == c {
			return i
		}
	}
	return -1
}

func (n *Notebook) pageOf(t *Tab) *Page {
	for _, p := range n.pages {
		if p.tab == t {
			return p
		}
	}
	return nil
}

// selectPage makes p current. It is a no-op when p is already current or is
// no longer a member (a stale header callback arriving after removal).
// Every real switch deactivates the previous header, activates the new one,
// raises its content, and fires the notification exactly once.
func (n *Notebook) selectPage(p *Page) {
	if p == n.current {
		return
	}
	if p != nil && n.indexOf(p) < 0 {
		return
	}
	if n.current != nil {
		n.current.tab.deactivate()
	}
	n.current = p
	if p != nil {
		p.tab.activate()
		n.layout.Raise(p.content)
	}
	if n.onChange != nil {
		n.onChange()
	}
}

// closePage removes p if it is still a member. Header close callbacks land
// here, so a double-fired gesture on an already-removed tab is harmless.
func (n *Notebook) closePage(p *Page) {
	if i := n.indexOf(p); i >= 0 {
		n.removeAt(i)
	}
}

// removeAt drops the page at index i and re-establishes the selection
// invariant with the right-neighbor tie-break before the headers are
// re-placed, so the sequence and selection are never rendered inconsistent.
func (n *Notebook) removeAt(i int) {
	p := n.pages[i]
	wasCurrent := p == n.current

	n.layout.Detach(p.tab, p.content)
	n.pages = append(n.pages[:i], n.pages[i+1:]...)

	if wasCurrent {
		switch {
		case i < len(n.pages):
			n.selectPage(n.pages[i])
		case len(n.pages) > 0:
			n.selectPage(n.pages[len(n.pages)-1])
		default:
			n.selectPage(nil)
		}
	}

	n.placeAll()
}

// placeAll re-renders the left-to-right placement of every header. A full
// pass keeps the ordering logic trivial; notebooks stay small.
func (n *Notebook) placeAll() {
	for i, p := range n.pages {
		n.layout.Place(p.tab, i)
	}
}

func (n *Notebook) indexOf(p *Page) int {
	for i, q := range n.pages {
		if q == p {
			return i
		}
	}
	return -1
}

type noopLayout struct{}

func (noopLayout) Place(*Tab, int)      {}
func (noopLayout) Raise(Content)        {}
func (noopLayout) Detach(*Tab, Content) {}
func (noopLayout) Focus(Content)        {}
