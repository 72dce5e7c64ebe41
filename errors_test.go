package forms_test

import (
	"fmt"
	"strings"
	"testing"

	forms "github.com/dculussoftwares/dculus-forms-sub000"
)

func TestIssuesErrorSummary(t *testing.T) {
	var iss forms.Issues
	if iss.Error() != "" {
		t.Fatalf("empty issues must stringify to empty")
	}

	iss = forms.AppendIssues(nil,
		forms.IssueAt("/label", forms.CodeRequired, "required", nil),
		forms.IssueAt("/max", forms.CodeDomainRange, "minimum exceeds maximum", nil),
		forms.IssueAt("/hint", forms.CodeTooLong, "too long", nil),
		forms.IssueAt("/prefix", forms.CodeTooLong, "too long", nil),
	)
	msg := iss.Error()
	if !strings.Contains(msg, "required at /label") {
		t.Fatalf("summary missing first issue: %q", msg)
	}
	if !strings.Contains(msg, "(total 4)") {
		t.Fatalf("summary missing truncation note: %q", msg)
	}
}

func TestAsIssues(t *testing.T) {
	iss := forms.Issues{{Path: "/label", Code: forms.CodeRequired}}
	wrapped := fmt.Errorf("validate: %w", iss)
	got, ok := forms.AsIssues(wrapped)
	if !ok || len(got) != 1 || got[0].Path != "/label" {
		t.Fatalf("AsIssues failed to unwrap: %v %v", got, ok)
	}
	if _, ok := forms.AsIssues(nil); ok {
		t.Fatalf("nil error must not yield issues")
	}
}
