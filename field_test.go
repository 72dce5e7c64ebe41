package forms_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	forms "github.com/dculussoftwares/dculus-forms-sub000"
)

func TestSplitCommaList(t *testing.T) {
	cases := []struct {
		in   string
		want []string
	}{
		{"", []string{}},
		{"a", []string{"a"}},
		{"a,b", []string{"a", "b"}},
		{" a , b ", []string{"a", "b"}},
		{"a,,b,", []string{"a", "b"}},
		{" , ", []string{}},
	}
	for _, tc := range cases {
		if diff := cmp.Diff(tc.want, forms.SplitCommaList(tc.in)); diff != "" {
			t.Fatalf("SplitCommaList(%q) mismatch:\n%s", tc.in, diff)
		}
	}
}

func TestCheckboxParsedDefaults(t *testing.T) {
	f := forms.NewCheckboxField("Pick", []string{"A", "B"})

	f.DefaultValue = "A, B"
	if diff := cmp.Diff([]string{"A", "B"}, f.ParsedDefaults()); diff != "" {
		t.Fatalf("legacy split mismatch:\n%s", diff)
	}

	// canonical list wins over the legacy string
	f.DefaultValues = []string{" B ", "", "A"}
	if diff := cmp.Diff([]string{"B", "A"}, f.ParsedDefaults()); diff != "" {
		t.Fatalf("canonical list mismatch:\n%s", diff)
	}
}

func TestDefaultRulesFor(t *testing.T) {
	if _, ok := forms.DefaultRulesFor(forms.FieldTypeTextInput).(forms.TextRules); !ok {
		t.Fatalf("text input should start from TextRules")
	}
	if _, ok := forms.DefaultRulesFor(forms.FieldTypeTextArea).(forms.TextRules); !ok {
		t.Fatalf("text area should start from TextRules")
	}
	if _, ok := forms.DefaultRulesFor(forms.FieldTypeCheckbox).(forms.CheckboxRules); !ok {
		t.Fatalf("checkbox should start from CheckboxRules")
	}
	if _, ok := forms.DefaultRulesFor(forms.FieldTypeNumber).(forms.Rules); !ok {
		t.Fatalf("number should start from base Rules")
	}
	if _, ok := forms.DefaultRulesFor(forms.FieldType("weird_field")).(forms.Rules); !ok {
		t.Fatalf("unknown tags should start from base Rules")
	}
}

func TestConstructorsMintUniqueIDs(t *testing.T) {
	a := forms.NewTextInputField("A")
	b := forms.NewTextInputField("B")
	if a.FieldID() == "" || a.FieldID() == b.FieldID() {
		t.Fatalf("expected distinct non-empty ids, got %q and %q", a.FieldID(), b.FieldID())
	}
	if a.FieldType() != forms.FieldTypeTextInput {
		t.Fatalf("unexpected type tag %q", a.FieldType())
	}
}

func TestKnownFieldTypesClosedSet(t *testing.T) {
	kinds := forms.KnownFieldTypes()
	if len(kinds) != 9 {
		t.Fatalf("expected 9 kinds, got %d", len(kinds))
	}
	seen := map[forms.FieldType]bool{}
	for _, k := range kinds {
		if seen[k] {
			t.Fatalf("duplicate kind %q", k)
		}
		seen[k] = true
	}
}

func TestFieldByID(t *testing.T) {
	f := forms.NewEmailField("Email")
	s := &forms.FormSchema{Pages: []*forms.FormPage{{ID: "p1", Fields: []forms.Field{f}}}}
	got, ok := s.FieldByID(f.FieldID())
	if !ok || got.FieldID() != f.FieldID() {
		t.Fatalf("lookup failed for %q", f.FieldID())
	}
	if _, ok := s.FieldByID("missing"); ok {
		t.Fatalf("expected miss for unknown id")
	}
}
