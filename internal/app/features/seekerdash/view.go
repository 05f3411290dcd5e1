// internal/app/features/seekerdash/view.go
package seekerdash

import (
	"html/template"
	"sort"
	"sync"

	"github.com/dalemusser/seekerhub/internal/app/system/htmlsanitize"
)

// Element ids of the job-seeker dashboard.
const (
	MainID        = "dashboard-main"
	AppliedJobsID = "applied-jobs-table"
	KPITotalID    = "kpi-total"
	KPIPendingID  = "kpi-pending"
	KPIAcceptedID = "kpi-accepted"
	KPIRejectedID = "kpi-rejected"
)

// LoadingClass is set on MainID while a dashboard load is in flight.
const LoadingClass = "loading"

// View is the set of addressable elements the controller writes into.
// Writes to an element that does not exist are silently ignored.
type View interface {
	Has(id string) bool
	SetHTML(id string, html template.HTML)
	SetText(id, text string)
	SetClass(id, class string, on bool)
}

// Page is an in-memory View. It is safe for concurrent use; concurrent
// writes to the same element are last-write-wins.
type Page struct {
	mu    sync.Mutex
	elems map[string]*element
}

type element struct {
	html     template.HTML
	classes  map[string]bool
	htmlSet  bool
	classSet bool
}

// NewPage creates a Page holding exactly the given elements.
func NewPage(ids ...string) *Page {
	p := &Page{elems: make(map[string]*element, len(ids))}
	for _, id := range ids {
		p.elems[id] = &element{classes: map[string]bool{}}
	}
	return p
}

// DashboardPage creates a Page with every dashboard element present.
func DashboardPage() *Page {
	return NewPage(MainID, AppliedJobsID, KPITotalID, KPIPendingID, KPIAcceptedID, KPIRejectedID)
}

func (p *Page) Has(id string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	_, ok := p.elems[id]
	return ok
}

// SetHTML replaces the element's content. Markup passes through the
// sanitizer before it is stored.
func (p *Page) SetHTML(id string, html template.HTML) {
	clean := htmlsanitize.SanitizeToHTML(string(html))

	p.mu.Lock()
	defer p.mu.Unlock()
	if el, ok := p.elems[id]; ok {
		el.html = clean
		el.htmlSet = true
	}
}

// SetText replaces the element's content with escaped text.
func (p *Page) SetText(id, text string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if el, ok := p.elems[id]; ok {
		el.html = template.HTML(template.HTMLEscapeString(text))
		el.htmlSet = true
	}
}

func (p *Page) SetClass(id, class string, on bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	el, ok := p.elems[id]
	if !ok {
		return
	}
	if on {
		el.classes[class] = true
	} else {
		delete(el.classes, class)
	}
	el.classSet = true
}

// HTML returns the element's current content.
func (p *Page) HTML(id string) template.HTML {
	p.mu.Lock()
	defer p.mu.Unlock()
	if el, ok := p.elems[id]; ok {
		return el.html
	}
	return ""
}

// Written reports whether the element's content was set since the Page was created.
func (p *Page) Written(id string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	el, ok := p.elems[id]
	return ok && el.htmlSet
}

func (p *Page) HasClass(id, class string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	el, ok := p.elems[id]
	return ok && el.classes[class]
}

// Classes returns the element's classes in sorted order.
func (p *Page) Classes(id string) []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	el, ok := p.elems[id]
	if !ok {
		return nil
	}
	return sortedClasses(el)
}

func sortedClasses(el *element) []string {
	out := make([]string, 0, len(el.classes))
	for c := range el.classes {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

// ElementPatch is the client-side update for one written element.
// HTML is nil when only classes changed.
type ElementPatch struct {
	HTML    *string  `json:"html,omitempty"`
	Classes []string `json:"classes"`
}

// Patch returns updates for the elements written since the Page was created.
// Elements never written are omitted, so the client keeps their old content.
func (p *Page) Patch() map[string]ElementPatch {
	p.mu.Lock()
	defer p.mu.Unlock()

	out := make(map[string]ElementPatch)
	for id, el := range p.elems {
		if !el.htmlSet && !el.classSet {
			continue
		}
		var patch ElementPatch
		if el.htmlSet {
			s := string(el.html)
			patch.HTML = &s
		}
		patch.Classes = sortedClasses(el)
		out[id] = patch
	}
	return out
}
