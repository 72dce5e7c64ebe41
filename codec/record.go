// Package codec converts live field instances to and from flat, kind-tagged
// records for storage and wire transfer. Encoding shallow-copies every own
// attribute plus a redundant discriminator so historical records stay
// self-describing. Decoding is total: it never returns an error for
// data-shape problems and instead degrades to a minimal base field, reporting
// anomalies on a separate warning channel.
package codec

import (
	"fmt"
	"strconv"
	"strings"

	forms "github.com/dculussoftwares/dculus-forms-sub000"
	"github.com/dculussoftwares/dculus-forms-sub000/i18n"
)

// Discriminator key names. DiscriminatorKey wins when both are present;
// LegacyDiscriminatorKey is accepted for records written before the rename.
const (
	DiscriminatorKey       = "type"
	LegacyDiscriminatorKey = "__type"
)

// EncodeField flattens a field into its storage record.
func EncodeField(f forms.Field) map[string]any {
	switch v := f.(type) {
	case *forms.TextInputField:
		rec := fillableRecord(&v.FillableField, v.FieldType())
		rec["validation"] = textRulesRecord(v.Validation)
		return rec
	case *forms.TextAreaField:
		rec := fillableRecord(&v.FillableField, v.FieldType())
		rec["validation"] = textRulesRecord(v.Validation)
		return rec
	case *forms.EmailField:
		rec := fillableRecord(&v.FillableField, v.FieldType())
		rec["validation"] = baseRulesRecord(v.Validation)
		return rec
	case *forms.NumberField:
		rec := fillableRecord(&v.FillableField, v.FieldType())
		rec["validation"] = baseRulesRecord(v.Validation)
		rec["min"] = v.Min
		rec["max"] = v.Max
		return rec
	case *forms.SelectField:
		rec := fillableRecord(&v.FillableField, v.FieldType())
		rec["validation"] = baseRulesRecord(v.Validation)
		rec["options"] = copyStrings(v.Options)
		rec["multiple"] = v.Multiple
		return rec
	case *forms.RadioField:
		rec := fillableRecord(&v.FillableField, v.FieldType())
		rec["validation"] = baseRulesRecord(v.Validation)
		rec["options"] = copyStrings(v.Options)
		return rec
	case *forms.CheckboxField:
		rec := fillableRecord(&v.FillableField, v.FieldType())
		rec["validation"] = checkboxRulesRecord(v.Validation)
		rec["options"] = copyStrings(v.Options)
		rec["defaultValues"] = copyStrings(v.DefaultValues)
		return rec
	case *forms.DateField:
		rec := fillableRecord(&v.FillableField, v.FieldType())
		rec["validation"] = baseRulesRecord(v.Validation)
		rec["minDate"] = v.MinDate
		rec["maxDate"] = v.MaxDate
		return rec
	case *forms.RichTextField:
		return map[string]any{
			"id":             v.ID,
			DiscriminatorKey: string(v.FieldType()),
			"content":        v.Content,
		}
	default:
		// degenerate base field: only the id survives
		return map[string]any{"id": f.FieldID()}
	}
}

// DecodeField reconstructs a field from its record. It never fails; see
// DecodeFieldWithMeta for the diagnostic channel.
func DecodeField(rec map[string]any) forms.Field {
	f, _ := DecodeFieldWithMeta(rec)
	return f
}

// DecodeFieldWithMeta reconstructs a field and reports decode anomalies
// (unknown discriminator, legacy representations) as warning issues. The
// returned field is always usable.
func DecodeFieldWithMeta(rec map[string]any) (forms.Field, forms.Issues) {
	var warns forms.Issues
	id := getString(rec, "id")

	tag, ok := rec[DiscriminatorKey].(string)
	if !ok {
		if legacy, lok := rec[LegacyDiscriminatorKey].(string); lok {
			tag = legacy
			warns = forms.AppendIssues(warns, forms.IssueAt(
				"/"+LegacyDiscriminatorKey,
				forms.CodeLegacyRepresentation,
				i18n.T(forms.CodeLegacyRepresentation, nil),
				map[string]any{"key": LegacyDiscriminatorKey},
			))
		}
	}

	switch forms.FieldType(tag) {
	case forms.FieldTypeTextInput:
		return &forms.TextInputField{
			FillableField: decodeFillable(rec, id),
			Validation:    decodeTextRules(rec, forms.FieldTypeTextInput),
		}, warns
	case forms.FieldTypeTextArea:
		return &forms.TextAreaField{
			FillableField: decodeFillable(rec, id),
			Validation:    decodeTextRules(rec, forms.FieldTypeTextArea),
		}, warns
	case forms.FieldTypeEmail:
		return &forms.EmailField{
			FillableField: decodeFillable(rec, id),
			Validation:    decodeBaseRules(rec, forms.FieldTypeEmail),
		}, warns
	case forms.FieldTypeNumber:
		return &forms.NumberField{
			FillableField: decodeFillable(rec, id),
			Validation:    decodeBaseRules(rec, forms.FieldTypeNumber),
			Min:           getBoundString(rec, "min"),
			Max:           getBoundString(rec, "max"),
		}, warns
	case forms.FieldTypeSelect:
		return &forms.SelectField{
			FillableField: decodeFillable(rec, id),
			Validation:    decodeBaseRules(rec, forms.FieldTypeSelect),
			Options:       getStringList(rec["options"]),
			Multiple:      getBool(rec, "multiple"),
		}, warns
	case forms.FieldTypeRadio:
		return &forms.RadioField{
			FillableField: decodeFillable(rec, id),
			Validation:    decodeBaseRules(rec, forms.FieldTypeRadio),
			Options:       getStringList(rec["options"]),
		}, warns
	case forms.FieldTypeCheckbox:
		defaults, legacy := decodeCheckboxDefaults(rec["defaultValues"])
		if legacy {
			warns = forms.AppendIssues(warns, forms.IssueAt(
				"/defaultValues",
				forms.CodeLegacyRepresentation,
				i18n.T(forms.CodeLegacyRepresentation, nil),
				map[string]any{"key": "defaultValues"},
			))
		}
		return &forms.CheckboxField{
			FillableField: decodeFillable(rec, id),
			Validation:    decodeCheckboxRules(rec, forms.FieldTypeCheckbox),
			Options:       getStringList(rec["options"]),
			DefaultValues: defaults,
		}, warns
	case forms.FieldTypeDate:
		return &forms.DateField{
			FillableField: decodeFillable(rec, id),
			Validation:    decodeBaseRules(rec, forms.FieldTypeDate),
			MinDate:       getString(rec, "minDate"),
			MaxDate:       getString(rec, "maxDate"),
		}, warns
	case forms.FieldTypeRichText:
		return &forms.RichTextField{
			BaseField: forms.BaseField{ID: id},
			Content:   getString(rec, "content"),
		}, warns
	default:
		warns = forms.AppendIssues(warns, forms.IssueAt(
			"/"+DiscriminatorKey,
			forms.CodeDiscriminatorUnknown,
			i18n.T(forms.CodeDiscriminatorUnknown, nil),
			map[string]any{"got": tag},
		))
		return &forms.BaseField{ID: id}, warns
	}
}

func fillableRecord(fl *forms.FillableField, t forms.FieldType) map[string]any {
	return map[string]any{
		"id":             fl.ID,
		DiscriminatorKey: string(t),
		"label":          fl.Label,
		"defaultValue":   fl.DefaultValue,
		"prefix":         fl.Prefix,
		"hint":           fl.Hint,
		"placeholder":    fl.Placeholder,
	}
}

func decodeFillable(rec map[string]any, id string) forms.FillableField {
	return forms.FillableField{
		BaseField:    forms.BaseField{ID: id},
		Label:        getString(rec, "label"),
		DefaultValue: getString(rec, "defaultValue"),
		Prefix:       getString(rec, "prefix"),
		Hint:         getString(rec, "hint"),
		Placeholder:  getString(rec, "placeholder"),
	}
}

func baseRulesRecord(r forms.Rules) map[string]any {
	return map[string]any{"required": r.Required}
}

func textRulesRecord(r forms.TextRules) map[string]any {
	rec := baseRulesRecord(r.Rules)
	if r.MinLength != nil {
		rec["minLength"] = *r.MinLength
	}
	if r.MaxLength != nil {
		rec["maxLength"] = *r.MaxLength
	}
	return rec
}

func checkboxRulesRecord(r forms.CheckboxRules) map[string]any {
	rec := baseRulesRecord(r.Rules)
	if r.MinSelections != nil {
		rec["minSelections"] = *r.MinSelections
	}
	if r.MaxSelections != nil {
		rec["maxSelections"] = *r.MaxSelections
	}
	return rec
}

// The decode helpers below seed from forms.DefaultRulesFor, so a record
// without a validation object reconstructs the kind's default rule-set.

func decodeBaseRules(rec map[string]any, t forms.FieldType) forms.Rules {
	rules, _ := forms.DefaultRulesFor(t).(forms.Rules)
	v, ok := rec["validation"].(map[string]any)
	if !ok {
		return rules
	}
	rules.Required = getBool(v, "required")
	return rules
}

func decodeTextRules(rec map[string]any, t forms.FieldType) forms.TextRules {
	rules, _ := forms.DefaultRulesFor(t).(forms.TextRules)
	v, ok := rec["validation"].(map[string]any)
	if !ok {
		return rules
	}
	rules.Required = getBool(v, "required")
	rules.MinLength = getIntPtr(v, "minLength")
	rules.MaxLength = getIntPtr(v, "maxLength")
	return rules
}

func decodeCheckboxRules(rec map[string]any, t forms.FieldType) forms.CheckboxRules {
	rules, _ := forms.DefaultRulesFor(t).(forms.CheckboxRules)
	v, ok := rec["validation"].(map[string]any)
	if !ok {
		return rules
	}
	rules.Required = getBool(v, "required")
	rules.MinSelections = getIntPtr(v, "minSelections")
	rules.MaxSelections = getIntPtr(v, "maxSelections")
	return rules
}

// decodeCheckboxDefaults accepts the canonical list form or the legacy
// comma-joined string, normalizing to a trimmed non-empty list. The second
// return reports whether the legacy form was seen.
func decodeCheckboxDefaults(v any) ([]string, bool) {
	switch t := v.(type) {
	case string:
		return forms.SplitCommaList(t), true
	case nil:
		return []string{}, false
	default:
		out := []string{}
		for _, s := range getStringList(v) {
			if s = strings.TrimSpace(s); s != "" {
				out = append(out, s)
			}
		}
		return out, false
	}
}

// ---- record accessors ----

func getString(rec map[string]any, key string) string {
	if rec == nil {
		return ""
	}
	s, _ := rec[key].(string)
	return s
}

// getBoundString reads a numeric bound attribute stored as a string,
// tolerating records where a builder wrote a bare number instead.
func getBoundString(rec map[string]any, key string) string {
	switch t := rec[key].(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'g', -1, 64)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	default:
		return ""
	}
}

func getBool(rec map[string]any, key string) bool {
	if rec == nil {
		return false
	}
	b, _ := rec[key].(bool)
	return b
}

func getIntPtr(rec map[string]any, key string) *int {
	if rec == nil {
		return nil
	}
	switch t := rec[key].(type) {
	case int:
		return &t
	case int64:
		n := int(t)
		return &n
	case float64:
		n := int(t)
		return &n
	case string:
		if n, err := strconv.Atoi(strings.TrimSpace(t)); err == nil {
			return &n
		}
		return nil
	default:
		return nil
	}
}

func getStringList(v any) []string {
	switch t := v.(type) {
	case []string:
		out := make([]string, len(t))
		copy(out, t)
		return out
	case []any:
		out := make([]string, 0, len(t))
		for _, e := range t {
			switch s := e.(type) {
			case string:
				out = append(out, s)
			default:
				out = append(out, fmt.Sprint(s))
			}
		}
		return out
	default:
		return nil
	}
}

func copyStrings(ss []string) []string {
	out := make([]string, len(ss))
	copy(out, ss)
	return out
}
