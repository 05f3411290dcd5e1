// Package htmlsanitize filters HTML before it is written into a dashboard
// element. Fragments are built with html/template, so this is a second gate:
// anything outside the dashboard vocabulary (tables, badges, links, plain
// formatting) is stripped.
package htmlsanitize

import (
	"html/template"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	policyOnce sync.Once
	policy     *bluemonday.Policy
)

func dashboardPolicy() *bluemonday.Policy {
	policyOnce.Do(func() {
		p := bluemonday.UGCPolicy()
		p.AllowTables()
		p.AllowAttrs("colspan", "rowspan").Matching(bluemonday.Integer).OnElements("td", "th")
		p.AllowAttrs("class").Matching(bluemonday.SpaceSeparatedTokens).Globally()
		policy = p
	})
	return policy
}

// Sanitize returns s with every disallowed element and attribute removed.
func Sanitize(s string) string {
	if s == "" {
		return ""
	}
	return dashboardPolicy().Sanitize(s)
}

// SanitizeToHTML is Sanitize for values headed into a template.
func SanitizeToHTML(s string) template.HTML {
	return template.HTML(Sanitize(s))
}
