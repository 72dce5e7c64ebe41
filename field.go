package forms

import "strings"

// FieldType is the discriminator tag identifying a form-field kind. The set of
// kinds is closed: adding one requires extending the validation schema
// factory, the codec and the default-value engine in lockstep.
type FieldType string

const (
	FieldTypeTextInput FieldType = "text_input_field"
	FieldTypeTextArea  FieldType = "text_area_field"
	FieldTypeEmail     FieldType = "email_field"
	FieldTypeNumber    FieldType = "number_field"
	FieldTypeSelect    FieldType = "select_field"
	FieldTypeRadio     FieldType = "radio_field"
	FieldTypeCheckbox  FieldType = "checkbox_field"
	FieldTypeDate      FieldType = "date_field"
	FieldTypeRichText  FieldType = "rich_text_field"
)

// KnownFieldTypes lists every member of the closed kind set in declaration
// order.
func KnownFieldTypes() []FieldType {
	return []FieldType{
		FieldTypeTextInput, FieldTypeTextArea, FieldTypeEmail,
		FieldTypeNumber, FieldTypeSelect, FieldTypeRadio,
		FieldTypeCheckbox, FieldTypeDate, FieldTypeRichText,
	}
}

// Field is the polymorphic base of every form-field variant. The tag returned
// by FieldType is fixed at construction time.
type Field interface {
	FieldID() string
	FieldType() FieldType
}

// FillableFormField is implemented by kinds that accept end-user input, as
// opposed to display-only kinds (rich text) and the degenerate base field.
type FillableFormField interface {
	Field
	Fillable() *FillableField
}

// BaseField carries the attributes shared by every kind. It is also the
// degenerate variant produced when a record's discriminator is unknown; in
// that case only the id survives.
type BaseField struct {
	ID string
}

func (f *BaseField) FieldID() string      { return f.ID }
func (f *BaseField) FieldType() FieldType { return "" }

// FillableField carries the attributes shared by input-accepting kinds.
type FillableField struct {
	BaseField
	Label        string
	DefaultValue string
	Prefix       string
	Hint         string
	Placeholder  string
}

// Fillable exposes the shared fillable attributes for tag-generic code.
func (f *FillableField) Fillable() *FillableField { return f }

// RuleSet is the polymorphic validation rule-set attached to fillable kinds.
type RuleSet interface {
	Base() Rules
}

// Rules is the base rule-set shared by every fillable kind.
type Rules struct {
	Required bool
}

func (r Rules) Base() Rules { return r }

// TextRules adds length bounds to the base rule-set.
type TextRules struct {
	Rules
	MinLength *int
	MaxLength *int
}

// CheckboxRules adds selection-count bounds to the base rule-set.
type CheckboxRules struct {
	Rules
	MinSelections *int
	MaxSelections *int
}

// DefaultRulesFor returns the rule-set a freshly decoded field of the given
// kind starts from: text kinds get length-bounds rules, checkbox gets
// selection-bounds rules, every other kind the base required-only rules.
func DefaultRulesFor(t FieldType) RuleSet {
	switch t {
	case FieldTypeTextInput, FieldTypeTextArea:
		return TextRules{}
	case FieldTypeCheckbox:
		return CheckboxRules{}
	default:
		return Rules{}
	}
}

// TextInputField is a single-line text input.
type TextInputField struct {
	FillableField
	Validation TextRules
}

func (f *TextInputField) FieldType() FieldType { return FieldTypeTextInput }

// TextAreaField is a multi-line text input.
type TextAreaField struct {
	FillableField
	Validation TextRules
}

func (f *TextAreaField) FieldType() FieldType { return FieldTypeTextArea }

// EmailField is a text input restricted to email addresses.
type EmailField struct {
	FillableField
	Validation Rules
}

func (f *EmailField) FieldType() FieldType { return FieldTypeEmail }

// NumberField is a numeric input. Min and Max hold the raw bound strings as
// edited in the builder; an empty string means the bound is absent.
type NumberField struct {
	FillableField
	Validation Rules
	Min        string
	Max        string
}

func (f *NumberField) FieldType() FieldType { return FieldTypeNumber }

// SelectField is a dropdown, optionally multi-valued.
type SelectField struct {
	FillableField
	Validation Rules
	Options    []string
	Multiple   bool
}

func (f *SelectField) FieldType() FieldType { return FieldTypeSelect }

// RadioField is a single-choice option group.
type RadioField struct {
	FillableField
	Validation Rules
	Options    []string
}

func (f *RadioField) FieldType() FieldType { return FieldTypeRadio }

// CheckboxField is a multi-choice option group. DefaultValues is the canonical
// list representation; builders that still write the legacy comma-joined
// DefaultValue string are normalized at the decode boundary.
type CheckboxField struct {
	FillableField
	Validation    CheckboxRules
	Options       []string
	DefaultValues []string
}

func (f *CheckboxField) FieldType() FieldType { return FieldTypeCheckbox }

// ParsedDefaults returns the effective default selection list: the canonical
// DefaultValues when present, otherwise the comma-split legacy DefaultValue.
func (f *CheckboxField) ParsedDefaults() []string {
	if len(f.DefaultValues) > 0 {
		out := make([]string, 0, len(f.DefaultValues))
		for _, v := range f.DefaultValues {
			if s := strings.TrimSpace(v); s != "" {
				out = append(out, s)
			}
		}
		return out
	}
	return SplitCommaList(f.DefaultValue)
}

// DateField is a date input. Bounds and default hold raw date strings in
// YYYY-MM-DD form; an empty string means the bound is absent.
type DateField struct {
	FillableField
	Validation Rules
	MinDate    string
	MaxDate    string
}

func (f *DateField) FieldType() FieldType { return FieldTypeDate }

// RichTextField is a display-only block of rich content. It accepts no input
// and carries no validation rule-set.
type RichTextField struct {
	BaseField
	Content string
}

func (f *RichTextField) FieldType() FieldType { return FieldTypeRichText }

// SplitCommaList splits a comma-joined value list into trimmed, non-empty
// segments. An empty input yields an empty (non-nil) list.
func SplitCommaList(s string) []string {
	out := []string{}
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
