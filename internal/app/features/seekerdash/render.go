// internal/app/features/seekerdash/render.go
package seekerdash

import (
	"bytes"
	"html/template"
	"net/url"
	"strings"
	"time"

	"github.com/dalemusser/seekerhub/internal/domain/models"
)

// TableColumns is the column count of the applications table:
// title, company, status, applied date, action.
const TableColumns = 5

// Empty-state copy for a seeker with no applications.
const (
	EmptyIcon  = "📋"
	EmptyTitle = "No applications yet"
	EmptyText  = "Start browsing jobs to apply!"
)

// ErrorRow replaces the table body when the applications fetch fails.
const ErrorRow template.HTML = `<tr class="error-row"><td colspan="5" class="error-state">Failed to load applications. Please try again later.</td></tr>`

// Badge is the visual treatment of an application status.
type Badge struct {
	Class string
	Label string
}

var (
	badgePending      = Badge{Class: "badge-warning", Label: "Pending"}
	badgeAccepted     = Badge{Class: "badge-success", Label: "Accepted"}
	badgeRejected     = Badge{Class: "badge-error", Label: "Rejected"}
	badgeInterviewing = Badge{Class: "badge-info", Label: "Interviewing"}
	badgeUnknown      = Badge{Class: "badge-neutral", Label: "Unknown"}
)

// StatusBadge maps a status to its badge, ignoring case.
// Every input has a badge; unrecognised values get the neutral "Unknown" one.
func StatusBadge(status string) Badge {
	switch strings.ToLower(status) {
	case models.StatusPending:
		return badgePending
	case models.StatusAccepted:
		return badgeAccepted
	case models.StatusRejected:
		return badgeRejected
	case models.StatusInterviewing:
		return badgeInterviewing
	default:
		return badgeUnknown
	}
}

// dateLayouts are the shapes applied_date arrives in.
var dateLayouts = []string{
	time.DateOnly,
	time.RFC3339Nano,
	"2006-01-02T15:04:05", // zone-less ISO; fractional seconds are accepted when parsing
	time.DateTime,
}

// FormatDate renders an applied date as "Jan 5, 2024". The calendar date is
// taken as written, with no zone conversion. Empty input renders as an em
// dash; input in none of the known layouts is returned unchanged.
func FormatDate(value string) string {
	v := strings.TrimSpace(value)
	if v == "" {
		return "—"
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return t.Format("Jan 2, 2006")
		}
	}
	return value
}

// DetailPath is where the "View" action for an application navigates.
func DetailPath(prefix string, id models.ApplicationID) string {
	return strings.TrimRight(prefix, "/") + "/" + url.PathEscape(id.String())
}

var fragments = template.Must(template.New("fragments").Parse(`
{{- define "empty_state" -}}
<tr class="empty-row"><td colspan="{{.Colspan}}"><div class="empty-state"><div class="empty-state-icon">{{.Icon}}</div><p class="empty-state-title">{{.Title}}</p><p class="empty-state-text">{{.Text}}</p></div></td></tr>
{{- end -}}
{{- define "application_rows" -}}
{{range .}}<tr class="application-row"><td>{{.JobTitle}}</td><td>{{.Company}}</td><td><span class="badge {{.Badge.Class}}">{{.Badge.Label}}</span></td><td>{{.AppliedDate}}</td><td><a class="btn btn-sm btn-view" href="{{.DetailURL}}">View</a></td></tr>{{end}}
{{- end -}}
`))

type emptyStateVM struct {
	Icon    string
	Title   string
	Text    string
	Colspan int
}

type applicationRowVM struct {
	JobTitle    string
	Company     string
	Badge       Badge
	AppliedDate string
	DetailURL   string
}

func execute(name string, data any) (template.HTML, error) {
	var buf bytes.Buffer
	if err := fragments.ExecuteTemplate(&buf, name, data); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}

// RenderEmptyState builds a "nothing to show" row spanning colspan columns.
// All three strings are treated as text.
func RenderEmptyState(icon, title, text string, colspan int) (template.HTML, error) {
	return execute("empty_state", emptyStateVM{
		Icon:    icon,
		Title:   title,
		Text:    text,
		Colspan: colspan,
	})
}

// RenderApplications builds the applications table body: one row per
// record, or the empty state when there are none.
func RenderApplications(apps []models.Application, detailPrefix string) (template.HTML, error) {
	if len(apps) == 0 {
		return RenderEmptyState(EmptyIcon, EmptyTitle, EmptyText, TableColumns)
	}

	rows := make([]applicationRowVM, 0, len(apps))
	for _, a := range apps {
		rows = append(rows, applicationRowVM{
			JobTitle:    a.JobTitle,
			Company:     a.Company,
			Badge:       StatusBadge(a.Status),
			AppliedDate: FormatDate(a.AppliedDate),
			DetailURL:   DetailPath(detailPrefix, a.ID),
		})
	}
	return execute("application_rows", rows)
}
