// Package validation maps each field kind to its validation schema: ordered
// per-attribute rules followed by ordered cross-field refinements. All fired
// issues are collected in a single pass; a rule that references an absent or
// unparseable value is skipped, never failed.
package validation

import (
	"fmt"

	forms "github.com/dculussoftwares/dculus-forms-sub000"
	"github.com/dculussoftwares/dculus-forms-sub000/i18n"
)

// rule is a named check producing zero or more issues. The runner stamps the
// rule name onto every issue it yields.
type rule struct {
	name string
	fn   func(f forms.Field) []forms.Issue
}

// FieldSchema is the validation schema of one field kind: per-attribute rules
// evaluated first, then cross-field refinements. No rule short-circuits
// another.
type FieldSchema struct {
	attrs   []rule
	refines []rule
}

// Validate runs the schema against a field and returns every fired issue.
func (s *FieldSchema) Validate(f forms.Field) forms.Issues {
	var iss forms.Issues
	iss = runRules(iss, s.attrs, f)
	iss = runRules(iss, s.refines, f)
	return iss
}

func runRules(iss forms.Issues, rules []rule, f forms.Field) forms.Issues {
	for _, r := range rules {
		out := r.fn(f)
		if len(out) == 0 {
			continue
		}
		for _, it := range out {
			it.Rule = r.name
			iss = forms.AppendIssues(iss, it)
		}
	}
	return iss
}

// SchemaFor returns the validation schema for a kind tag. The switch is
// closed over the known kinds; unmatched tags receive the permissive base
// schema, never an error.
func SchemaFor(t forms.FieldType) *FieldSchema {
	switch t {
	case forms.FieldTypeTextInput, forms.FieldTypeTextArea:
		return textSchema()
	case forms.FieldTypeEmail:
		return baseSchema(true)
	case forms.FieldTypeNumber:
		return numberSchema()
	case forms.FieldTypeSelect:
		return selectSchema()
	case forms.FieldTypeRadio:
		return radioSchema()
	case forms.FieldTypeCheckbox:
		return checkboxSchema()
	case forms.FieldTypeDate:
		return dateSchema()
	case forms.FieldTypeRichText:
		// display-only: nothing to check
		return &FieldSchema{}
	default:
		return baseSchema(true)
	}
}

// ValidateField validates a single field against its kind's schema.
func ValidateField(f forms.Field) forms.Issues {
	return SchemaFor(f.FieldType()).Validate(f)
}

// ValidatePage validates every field of a page and enforces id uniqueness
// within the page. Issues are pathed /fields/<index>/....
func ValidatePage(p *forms.FormPage) forms.Issues {
	var iss forms.Issues
	seen := make(map[string]int, len(p.Fields))
	for i, f := range p.Fields {
		if j, dup := seen[f.FieldID()]; dup {
			iss = forms.AppendIssues(iss, forms.IssueAt(
				fmt.Sprintf("/fields/%d/id", i),
				forms.CodeDuplicateID,
				i18n.T(forms.CodeDuplicateID, nil),
				map[string]any{"id": f.FieldID(), "first": j},
			))
		} else {
			seen[f.FieldID()] = i
		}
		for _, it := range ValidateField(f) {
			it.Path = fmt.Sprintf("/fields/%d%s", i, it.Path)
			iss = forms.AppendIssues(iss, it)
		}
	}
	return iss
}

// ValidateSchema validates every page of a form schema. Issues are pathed
// /pages/<index>/....
func ValidateSchema(s *forms.FormSchema) forms.Issues {
	var iss forms.Issues
	for i, p := range s.Pages {
		for _, it := range ValidatePage(p) {
			it.Path = fmt.Sprintf("/pages/%d%s", i, it.Path)
			iss = forms.AppendIssues(iss, it)
		}
	}
	return iss
}
