package htmlsanitize_test

import (
	"html/template"
	"strings"
	"testing"

	"github.com/dalemusser/seekerhub/internal/app/system/htmlsanitize"
)

func TestSanitize_Empty(t *testing.T) {
	result := htmlsanitize.Sanitize("")
	if result != "" {
		t.Errorf("expected empty string, got %q", result)
	}
}

func TestSanitize_PlainText(t *testing.T) {
	result := htmlsanitize.Sanitize("Hello, World!")
	if result != "Hello, World!" {
		t.Errorf("expected plain text unchanged, got %q", result)
	}
}

func TestSanitize_RemovesScript(t *testing.T) {
	input := "<p>Hello</p><script>alert('xss')</script>"
	result := htmlsanitize.Sanitize(input)
	if result != "<p>Hello</p>" {
		t.Errorf("expected script removed, got %q", result)
	}
}

func TestSanitize_RemovesOnclick(t *testing.T) {
	input := `<a href="/jobseeker/applications/1" onclick="alert('xss')">View</a>`
	result := htmlsanitize.Sanitize(input)
	if strings.Contains(result, "onclick") {
		t.Errorf("expected onclick attribute to be removed, got %q", result)
	}
	if !strings.Contains(result, `href="/jobseeker/applications/1"`) {
		t.Errorf("expected relative href preserved, got %q", result)
	}
}

func TestSanitize_RemovesJavascriptHref(t *testing.T) {
	input := `<a href="javascript:alert('xss')">Click</a>`
	result := htmlsanitize.Sanitize(input)
	if strings.Contains(result, "javascript:") {
		t.Errorf("expected javascript: href to be removed, got %q", result)
	}
}

func TestSanitize_AllowsTableRowAttributes(t *testing.T) {
	input := `<tr class="empty-row"><td colspan="5" class="empty-state">Nothing</td></tr>`
	result := htmlsanitize.Sanitize(input)
	if !strings.Contains(result, `colspan="5"`) {
		t.Errorf("expected colspan preserved, got %q", result)
	}
	if !strings.Contains(result, `class="empty-state"`) {
		t.Errorf("expected class preserved, got %q", result)
	}
}

func TestSanitize_RejectsNonIntegerColspan(t *testing.T) {
	input := `<table><tr><td colspan="x">Cell</td></tr></table>`
	result := htmlsanitize.Sanitize(input)
	if strings.Contains(result, "colspan") {
		t.Errorf("expected non-integer colspan stripped, got %q", result)
	}
}

func TestSanitize_KeepsBadgeMarkup(t *testing.T) {
	input := `<span class="badge badge-warning">Pending</span>`
	result := htmlsanitize.Sanitize(input)
	if result != input {
		t.Errorf("expected badge preserved, got %q", result)
	}
}

func TestSanitize_RemovesIframe(t *testing.T) {
	input := `<p>Content</p><iframe src="https://evil.com"></iframe>`
	result := htmlsanitize.Sanitize(input)
	if strings.Contains(result, "iframe") {
		t.Error("expected iframe to be removed")
	}
	if !strings.Contains(result, "Content") {
		t.Error("expected safe content to be preserved")
	}
}

func TestSanitizeToHTML_ReturnsTemplateHTML(t *testing.T) {
	result := htmlsanitize.SanitizeToHTML("<p>Hello</p>")
	expected := template.HTML("<p>Hello</p>")
	if result != expected {
		t.Errorf("expected %v, got %v", expected, result)
	}
}
