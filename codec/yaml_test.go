package codec

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	forms "github.com/dculussoftwares/dculus-forms-sub000"
)

func TestUnmarshalSchemaYAML(t *testing.T) {
	doc := []byte(`
pages:
  - id: p1
    title: About you
    order: 1
    fields:
      - id: f1
        type: text_input_field
        label: Name
        validation:
          required: true
          maxLength: 80
      - id: f2
        type: checkbox_field
        label: Pick
        options: [A, B]
        defaultValues: "A,B"
layout:
  theme: light
isShuffleEnabled: true
`)
	s, warns, err := UnmarshalSchemaYAMLWithMeta(doc)
	if err != nil {
		t.Fatalf("yaml err: %v", err)
	}
	if len(s.Pages) != 1 || len(s.Pages[0].Fields) != 2 {
		t.Fatalf("unexpected shape: %+v", s)
	}
	text, ok := s.Pages[0].Fields[0].(*forms.TextInputField)
	if !ok || !text.Validation.Required || text.Validation.MaxLength == nil || *text.Validation.MaxLength != 80 {
		t.Fatalf("text field not decoded: %+v", s.Pages[0].Fields[0])
	}
	check := s.Pages[0].Fields[1].(*forms.CheckboxField)
	if diff := cmp.Diff([]string{"A", "B"}, check.DefaultValues); diff != "" {
		t.Fatalf("checkbox defaults mismatch:\n%s", diff)
	}
	if len(warns) != 1 || warns[0].Code != forms.CodeLegacyRepresentation {
		t.Fatalf("expected one legacy warning, got %v", warns)
	}
	if !s.IsShuffleEnabled || s.Layout.Theme != "light" {
		t.Fatalf("schema attributes lost: %+v", s)
	}
}

func TestSchemaRoundTrip_YAML(t *testing.T) {
	orig := sampleSchema()
	data, err := MarshalSchemaYAML(orig)
	if err != nil {
		t.Fatalf("marshal err: %v", err)
	}
	back, err := UnmarshalSchemaYAML(data)
	if err != nil {
		t.Fatalf("unmarshal err: %v", err)
	}
	if diff := cmp.Diff(orig, back, cmpopts.EquateEmpty()); diff != "" {
		t.Fatalf("yaml round trip mismatch (-orig +decoded):\n%s", diff)
	}
}
