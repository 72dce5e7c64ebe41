package jsonschema

import (
	"strconv"
	"strings"

	forms "github.com/dculussoftwares/dculus-forms-sub000"
)

// FromForm builds the JSON Schema of a form's submission payload: one
// property per input-accepting field, keyed by field id. Display-only and
// degenerate fields contribute nothing.
func FromForm(s *forms.FormSchema) *Schema {
	out := &Schema{
		Type:       "object",
		Properties: map[string]*Schema{},
	}
	for _, p := range s.Pages {
		for _, f := range p.Fields {
			prop := fieldSchema(f)
			if prop == nil {
				continue
			}
			out.Properties[f.FieldID()] = prop
			if required(f) {
				out.Required = append(out.Required, f.FieldID())
			}
		}
	}
	return out
}

func fieldSchema(f forms.Field) *Schema {
	switch v := f.(type) {
	case *forms.TextInputField:
		return textSchema(&v.FillableField, v.Validation)
	case *forms.TextAreaField:
		return textSchema(&v.FillableField, v.Validation)
	case *forms.EmailField:
		return &Schema{Type: "string", Format: "email", Title: v.Label, Default: defaultOrNil(v.DefaultValue)}
	case *forms.NumberField:
		sch := &Schema{Type: "number", Title: v.Label}
		if n, ok := parseFloat(v.Min); ok {
			sch.Minimum = &n
		}
		if n, ok := parseFloat(v.Max); ok {
			sch.Maximum = &n
		}
		if n, ok := parseFloat(v.DefaultValue); ok {
			sch.Default = n
		}
		return sch
	case *forms.SelectField:
		if v.Multiple {
			return listSchema(v.Label, v.Options, nil, nil)
		}
		return choiceSchema(v.Label, v.Options, v.DefaultValue)
	case *forms.RadioField:
		return choiceSchema(v.Label, v.Options, v.DefaultValue)
	case *forms.CheckboxField:
		return listSchema(v.Label, v.Options, v.Validation.MinSelections, v.Validation.MaxSelections)
	case *forms.DateField:
		return &Schema{Type: "string", Format: "date", Title: v.Label, Default: defaultOrNil(v.DefaultValue)}
	default:
		return nil
	}
}

func textSchema(fl *forms.FillableField, rules forms.TextRules) *Schema {
	return &Schema{
		Type:      "string",
		Title:     fl.Label,
		Default:   defaultOrNil(fl.DefaultValue),
		MinLength: rules.MinLength,
		MaxLength: rules.MaxLength,
	}
}

func choiceSchema(label string, options []string, def string) *Schema {
	return &Schema{
		Type:    "string",
		Title:   label,
		Enum:    toAny(options),
		Default: defaultOrNil(def),
	}
}

func listSchema(label string, options []string, minItems, maxItems *int) *Schema {
	return &Schema{
		Type:     "array",
		Title:    label,
		Items:    &Schema{Type: "string", Enum: toAny(options)},
		MinItems: minItems,
		MaxItems: maxItems,
	}
}

func required(f forms.Field) bool {
	switch v := f.(type) {
	case *forms.TextInputField:
		return v.Validation.Required
	case *forms.TextAreaField:
		return v.Validation.Required
	case *forms.EmailField:
		return v.Validation.Required
	case *forms.NumberField:
		return v.Validation.Required
	case *forms.SelectField:
		return v.Validation.Required
	case *forms.RadioField:
		return v.Validation.Required
	case *forms.CheckboxField:
		return v.Validation.Required
	case *forms.DateField:
		return v.Validation.Required
	default:
		return false
	}
}

func parseFloat(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

func defaultOrNil(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func toAny(ss []string) []any {
	if len(ss) == 0 {
		return nil
	}
	out := make([]any, len(ss))
	for i, s := range ss {
		out[i] = s
	}
	return out
}
