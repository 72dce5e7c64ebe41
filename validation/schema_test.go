package validation_test

import (
	"strings"
	"testing"

	forms "github.com/dculussoftwares/dculus-forms-sub000"
	"github.com/dculussoftwares/dculus-forms-sub000/validation"
)

func intPtr(n int) *int { return &n }

func hasIssue(iss forms.Issues, path, code string) bool {
	for _, it := range iss {
		if it.Path == path && it.Code == code {
			return true
		}
	}
	return false
}

func validNumberField() *forms.NumberField {
	f := forms.NewNumberField("Age")
	f.Min = "1"
	f.Max = "10"
	f.DefaultValue = "5"
	return f
}

func TestNumberField_MinGreaterThanMax(t *testing.T) {
	f := forms.NewNumberField("Age")
	f.Min = "10"
	f.Max = "5"
	iss := validation.ValidateField(f)
	if !hasIssue(iss, "/max", forms.CodeDomainRange) {
		t.Fatalf("expected domain_range at /max, got %v", iss)
	}
}

func TestNumberField_ValidationMonotonicity(t *testing.T) {
	f := validNumberField()
	if iss := validation.ValidateField(f); len(iss) != 0 {
		t.Fatalf("expected clean field, got %v", iss)
	}

	// narrowing the range below the default must surface a defaultValue issue
	f.Max = "4"
	iss := validation.ValidateField(f)
	if !hasIssue(iss, "/defaultValue", forms.CodeTooBig) {
		t.Fatalf("expected too_big at /defaultValue, got %v", iss)
	}

	f.Max = "10"
	f.Min = "6"
	iss = validation.ValidateField(f)
	if !hasIssue(iss, "/defaultValue", forms.CodeTooSmall) {
		t.Fatalf("expected too_small at /defaultValue, got %v", iss)
	}
}

func TestNumberField_UnparseableBoundSkipsComparison(t *testing.T) {
	f := forms.NewNumberField("Age")
	f.Min = "ten"
	f.Max = "5"
	f.DefaultValue = "7"
	iss := validation.ValidateField(f)
	if hasIssue(iss, "/max", forms.CodeDomainRange) {
		t.Fatalf("unparseable min must skip the min<=max comparison, got %v", iss)
	}
	if hasIssue(iss, "/defaultValue", forms.CodeTooSmall) {
		t.Fatalf("unparseable min must skip the default>=min comparison, got %v", iss)
	}
	// max is parseable, so default<=max still applies
	if !hasIssue(iss, "/defaultValue", forms.CodeTooBig) {
		t.Fatalf("expected too_big against parseable max, got %v", iss)
	}
}

func TestCheckboxField_DefaultContainment(t *testing.T) {
	f := forms.NewCheckboxField("Pick", []string{"A", "B"})
	f.DefaultValue = "A,C"
	iss := validation.ValidateField(f)
	if !hasIssue(iss, "/defaultValue", forms.CodeInvalidEnum) {
		t.Fatalf("expected invalid_enum at /defaultValue, got %v", iss)
	}

	// removing the foreign entry makes it pass
	f.DefaultValue = "A"
	if iss := validation.ValidateField(f); len(iss) != 0 {
		t.Fatalf("expected clean field after removing C, got %v", iss)
	}
}

func TestCheckboxField_SelectionBounds(t *testing.T) {
	f := forms.NewCheckboxField("Pick", []string{"A", "B"})
	f.Validation.MinSelections = intPtr(3)
	f.Validation.MaxSelections = intPtr(2)
	iss := validation.ValidateField(f)
	if !hasIssue(iss, "/validation/maxSelections", forms.CodeDomainRange) {
		t.Fatalf("expected domain_range at /validation/maxSelections, got %v", iss)
	}

	f.Validation.MinSelections = nil
	f.Validation.MaxSelections = intPtr(5)
	iss = validation.ValidateField(f)
	if !hasIssue(iss, "/validation/maxSelections", forms.CodeTooBig) {
		t.Fatalf("expected too_big against option count, got %v", iss)
	}
}

func TestDateField_Refinements(t *testing.T) {
	f := forms.NewDateField("When")
	f.MinDate = "2024-12-31"
	f.MaxDate = "2024-01-01"
	iss := validation.ValidateField(f)
	if !hasIssue(iss, "/maxDate", forms.CodeDomainRange) {
		t.Fatalf("expected domain_range at /maxDate, got %v", iss)
	}

	f.MinDate = "2024-01-01"
	f.MaxDate = "2024-12-31"
	f.DefaultValue = "2025-06-15"
	iss = validation.ValidateField(f)
	if !hasIssue(iss, "/defaultValue", forms.CodeTooBig) {
		t.Fatalf("expected too_big at /defaultValue, got %v", iss)
	}

	// unparseable date -> comparison does not apply
	f.DefaultValue = "not-a-date"
	if iss := validation.ValidateField(f); len(iss) != 0 {
		t.Fatalf("unparseable default must skip comparisons, got %v", iss)
	}
}

func TestTextField_LengthRefinements(t *testing.T) {
	f := forms.NewTextInputField("Name")
	f.Validation.MinLength = intPtr(10)
	f.Validation.MaxLength = intPtr(5)
	iss := validation.ValidateField(f)
	if !hasIssue(iss, "/validation/maxLength", forms.CodeDomainRange) {
		t.Fatalf("expected domain_range at /validation/maxLength, got %v", iss)
	}

	f.Validation.MinLength = intPtr(3)
	f.Validation.MaxLength = intPtr(5)
	f.DefaultValue = "toolongdefault"
	iss = validation.ValidateField(f)
	if !hasIssue(iss, "/defaultValue", forms.CodeTooLong) {
		t.Fatalf("expected too_long at /defaultValue, got %v", iss)
	}
}

func TestBaseRules_LabelAndLimits(t *testing.T) {
	f := forms.NewTextInputField("")
	iss := validation.ValidateField(f)
	if !hasIssue(iss, "/label", forms.CodeRequired) {
		t.Fatalf("expected required at /label, got %v", iss)
	}

	f.Label = strings.Repeat("a", 201)
	f.Hint = strings.Repeat("h", 501)
	f.Placeholder = strings.Repeat("p", 101)
	f.Prefix = strings.Repeat("x", 11)
	iss = validation.ValidateField(f)
	for _, path := range []string{"/label", "/hint", "/placeholder", "/prefix"} {
		if !hasIssue(iss, path, forms.CodeTooLong) {
			t.Fatalf("expected too_long at %s, got %v", path, iss)
		}
	}
}

func TestSelectField_OmitsPlaceholderRule(t *testing.T) {
	f := forms.NewSelectField("Pick", []string{"a"}, false)
	f.Placeholder = strings.Repeat("p", 500)
	if iss := validation.ValidateField(f); len(iss) != 0 {
		t.Fatalf("select must not check placeholder, got %v", iss)
	}
}

func TestOptionRules(t *testing.T) {
	f := forms.NewRadioField("Pick", nil)
	iss := validation.ValidateField(f)
	if !hasIssue(iss, "/options", forms.CodeTooSmall) {
		t.Fatalf("expected too_small for empty options, got %v", iss)
	}

	f.Options = []string{"A", "B", "A"}
	iss = validation.ValidateField(f)
	if !hasIssue(iss, "/options/2", forms.CodeDuplicateOption) {
		t.Fatalf("expected duplicate_option at /options/2, got %v", iss)
	}
}

func TestIssuesAreCollectedNotShortCircuited(t *testing.T) {
	f := forms.NewNumberField("")
	f.Min = "10"
	f.Max = "5"
	f.DefaultValue = "20"
	iss := validation.ValidateField(f)
	if !hasIssue(iss, "/label", forms.CodeRequired) ||
		!hasIssue(iss, "/max", forms.CodeDomainRange) ||
		!hasIssue(iss, "/defaultValue", forms.CodeTooBig) {
		t.Fatalf("expected all independent failures in one pass, got %v", iss)
	}
}

func TestUnknownKind_PermissiveSchema(t *testing.T) {
	s := validation.SchemaFor(forms.FieldType("weird_field"))
	if s == nil {
		t.Fatalf("unknown kinds must still get a schema")
	}
	if iss := s.Validate(&forms.BaseField{ID: "x"}); len(iss) != 0 {
		t.Fatalf("base field must validate clean under the permissive schema, got %v", iss)
	}
}

func TestValidatePage_DuplicateIDs(t *testing.T) {
	a := forms.NewTextInputField("A")
	b := forms.NewTextInputField("B")
	b.ID = a.ID
	p := &forms.FormPage{ID: "p1", Fields: []forms.Field{a, b}, Order: 1}
	iss := validation.ValidatePage(p)
	if !hasIssue(iss, "/fields/1/id", forms.CodeDuplicateID) {
		t.Fatalf("expected duplicate_id at /fields/1/id, got %v", iss)
	}
}

func TestValidateSchema_PathsArePrefixed(t *testing.T) {
	f := forms.NewTextInputField("")
	s := &forms.FormSchema{Pages: []*forms.FormPage{{ID: "p1", Fields: []forms.Field{f}}}}
	iss := validation.ValidateSchema(s)
	if !hasIssue(iss, "/pages/0/fields/0/label", forms.CodeRequired) {
		t.Fatalf("expected prefixed path, got %v", iss)
	}
}
