package validation

import (
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	forms "github.com/dculussoftwares/dculus-forms-sub000"
	"github.com/dculussoftwares/dculus-forms-sub000/i18n"
)

// Attribute limits shared by every fillable kind.
const (
	maxLabelLen        = 200
	maxHintLen         = 500
	maxPlaceholderLen  = 100
	maxDefaultValueLen = 1000
	maxPrefixLen       = 10

	maxOptionCount = 100
	maxOptionLen   = 200
)

func fillableOf(f forms.Field) (*forms.FillableField, bool) {
	ff, ok := f.(forms.FillableFormField)
	if !ok {
		return nil, false
	}
	return ff.Fillable(), true
}

// baseSchema holds the attribute rules applied to every fillable kind. Kinds
// without a placeholder surface (select, radio) pass withPlaceholder=false.
func baseSchema(withPlaceholder bool) *FieldSchema {
	s := &FieldSchema{}
	s.attrs = append(s.attrs, labelRule())
	s.attrs = append(s.attrs, maxLenRule("hint", "/hint", maxHintLen, func(fl *forms.FillableField) string { return fl.Hint }))
	if withPlaceholder {
		s.attrs = append(s.attrs, maxLenRule("placeholder", "/placeholder", maxPlaceholderLen, func(fl *forms.FillableField) string { return fl.Placeholder }))
	}
	s.attrs = append(s.attrs, maxLenRule("defaultValue", "/defaultValue", maxDefaultValueLen, func(fl *forms.FillableField) string { return fl.DefaultValue }))
	s.attrs = append(s.attrs, maxLenRule("prefix", "/prefix", maxPrefixLen, func(fl *forms.FillableField) string { return fl.Prefix }))
	return s
}

func textSchema() *FieldSchema {
	s := baseSchema(true)
	s.refines = append(s.refines,
		rule{name: "minLength<=maxLength", fn: refineTextLengthOrder},
		rule{name: "default-within-length", fn: refineTextDefaultLength},
	)
	return s
}

func numberSchema() *FieldSchema {
	s := baseSchema(true)
	s.refines = append(s.refines,
		rule{name: "min<=max", fn: refineNumberMinMax},
		rule{name: "default>=min", fn: refineNumberDefaultMin},
		rule{name: "default<=max", fn: refineNumberDefaultMax},
	)
	return s
}

func dateSchema() *FieldSchema {
	s := baseSchema(true)
	s.refines = append(s.refines,
		rule{name: "minDate<=maxDate", fn: refineDateMinMax},
		rule{name: "default>=minDate", fn: refineDateDefaultMin},
		rule{name: "default<=maxDate", fn: refineDateDefaultMax},
	)
	return s
}

func selectSchema() *FieldSchema {
	s := baseSchema(false)
	s.attrs = append(s.attrs, optionsRule(func(f forms.Field) ([]string, bool) {
		v, ok := f.(*forms.SelectField)
		if !ok {
			return nil, false
		}
		return v.Options, true
	}))
	s.refines = append(s.refines,
		rule{name: "options-unique", fn: refineSelectOptionsUnique},
		rule{name: "default-in-options", fn: refineSelectDefaultMembership},
	)
	return s
}

func radioSchema() *FieldSchema {
	s := baseSchema(false)
	s.attrs = append(s.attrs, optionsRule(func(f forms.Field) ([]string, bool) {
		v, ok := f.(*forms.RadioField)
		if !ok {
			return nil, false
		}
		return v.Options, true
	}))
	s.refines = append(s.refines,
		rule{name: "options-unique", fn: refineRadioOptionsUnique},
		rule{name: "default-in-options", fn: refineRadioDefaultMembership},
	)
	return s
}

func checkboxSchema() *FieldSchema {
	s := baseSchema(true)
	s.attrs = append(s.attrs, optionsRule(func(f forms.Field) ([]string, bool) {
		v, ok := f.(*forms.CheckboxField)
		if !ok {
			return nil, false
		}
		return v.Options, true
	}))
	s.attrs = append(s.attrs, rule{name: "selection-bounds", fn: checkSelectionBoundsNonNegative})
	s.refines = append(s.refines,
		rule{name: "options-unique", fn: refineCheckboxOptionsUnique},
		rule{name: "defaults-in-options", fn: refineCheckboxDefaultMembership},
		rule{name: "minSelections<=maxSelections", fn: refineSelectionOrder},
		rule{name: "maxSelections<=options", fn: refineSelectionUpperBound},
	)
	return s
}

// ---- per-attribute rules ----

func labelRule() rule {
	return rule{name: "label", fn: func(f forms.Field) []forms.Issue {
		fl, ok := fillableOf(f)
		if !ok {
			return nil
		}
		if fl.Label == "" {
			return []forms.Issue{forms.IssueAt("/label", forms.CodeRequired, i18n.T(forms.CodeRequired, nil), nil)}
		}
		if n := utf8.RuneCountInString(fl.Label); n > maxLabelLen {
			return []forms.Issue{forms.IssueAt("/label", forms.CodeTooLong, i18n.T(forms.CodeTooLong, nil), map[string]any{"max": maxLabelLen, "got": n})}
		}
		return nil
	}}
}

func maxLenRule(name, path string, max int, get func(*forms.FillableField) string) rule {
	return rule{name: name, fn: func(f forms.Field) []forms.Issue {
		fl, ok := fillableOf(f)
		if !ok {
			return nil
		}
		if n := utf8.RuneCountInString(get(fl)); n > max {
			return []forms.Issue{forms.IssueAt(path, forms.CodeTooLong, i18n.T(forms.CodeTooLong, nil), map[string]any{"max": max, "got": n})}
		}
		return nil
	}}
}

func optionsRule(get func(forms.Field) ([]string, bool)) rule {
	return rule{name: "options", fn: func(f forms.Field) []forms.Issue {
		opts, ok := get(f)
		if !ok {
			return nil
		}
		var out []forms.Issue
		if len(opts) == 0 {
			out = append(out, forms.IssueAt("/options", forms.CodeTooSmall, i18n.T(forms.CodeTooSmall, nil), map[string]any{"min": 1}))
		}
		if len(opts) > maxOptionCount {
			out = append(out, forms.IssueAt("/options", forms.CodeTooBig, i18n.T(forms.CodeTooBig, nil), map[string]any{"max": maxOptionCount, "got": len(opts)}))
		}
		for i, o := range opts {
			if n := utf8.RuneCountInString(o); n > maxOptionLen {
				out = append(out, forms.IssueAt(fmt.Sprintf("/options/%d", i), forms.CodeTooLong, i18n.T(forms.CodeTooLong, nil), map[string]any{"max": maxOptionLen, "got": n}))
			}
		}
		return out
	}}
}

func checkSelectionBoundsNonNegative(f forms.Field) []forms.Issue {
	v, ok := f.(*forms.CheckboxField)
	if !ok {
		return nil
	}
	var out []forms.Issue
	if v.Validation.MinSelections != nil && *v.Validation.MinSelections < 0 {
		out = append(out, forms.IssueAt("/validation/minSelections", forms.CodeTooSmall, i18n.T(forms.CodeTooSmall, nil), map[string]any{"min": 0}))
	}
	if v.Validation.MaxSelections != nil && *v.Validation.MaxSelections < 0 {
		out = append(out, forms.IssueAt("/validation/maxSelections", forms.CodeTooSmall, i18n.T(forms.CodeTooSmall, nil), map[string]any{"min": 0}))
	}
	return out
}

// ---- cross-field refinements ----
//
// Every refinement follows the same skip policy: when a referenced value is
// absent or unparseable the comparison does not apply and no issue fires.

func parseBound(s string) (float64, bool) {
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

func parseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(forms.DateLayout, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

func refineNumberMinMax(f forms.Field) []forms.Issue {
	v, ok := f.(*forms.NumberField)
	if !ok {
		return nil
	}
	min, okMin := parseBound(v.Min)
	max, okMax := parseBound(v.Max)
	if !okMin || !okMax || min <= max {
		return nil
	}
	return []forms.Issue{forms.IssueAt("/max", forms.CodeDomainRange, i18n.T(forms.CodeDomainRange, nil), map[string]any{"min": min, "max": max})}
}

func refineNumberDefaultMin(f forms.Field) []forms.Issue {
	v, ok := f.(*forms.NumberField)
	if !ok {
		return nil
	}
	def, okDef := parseBound(v.DefaultValue)
	min, okMin := parseBound(v.Min)
	if !okDef || !okMin || def >= min {
		return nil
	}
	return []forms.Issue{forms.IssueAt("/defaultValue", forms.CodeTooSmall, i18n.T(forms.CodeTooSmall, nil), map[string]any{"min": min, "got": def})}
}

func refineNumberDefaultMax(f forms.Field) []forms.Issue {
	v, ok := f.(*forms.NumberField)
	if !ok {
		return nil
	}
	def, okDef := parseBound(v.DefaultValue)
	max, okMax := parseBound(v.Max)
	if !okDef || !okMax || def <= max {
		return nil
	}
	return []forms.Issue{forms.IssueAt("/defaultValue", forms.CodeTooBig, i18n.T(forms.CodeTooBig, nil), map[string]any{"max": max, "got": def})}
}

func refineDateMinMax(f forms.Field) []forms.Issue {
	v, ok := f.(*forms.DateField)
	if !ok {
		return nil
	}
	min, okMin := parseDate(v.MinDate)
	max, okMax := parseDate(v.MaxDate)
	if !okMin || !okMax || !min.After(max) {
		return nil
	}
	return []forms.Issue{forms.IssueAt("/maxDate", forms.CodeDomainRange, i18n.T(forms.CodeDomainRange, nil), map[string]any{"minDate": v.MinDate, "maxDate": v.MaxDate})}
}

func refineDateDefaultMin(f forms.Field) []forms.Issue {
	v, ok := f.(*forms.DateField)
	if !ok {
		return nil
	}
	def, okDef := parseDate(v.DefaultValue)
	min, okMin := parseDate(v.MinDate)
	if !okDef || !okMin || !def.Before(min) {
		return nil
	}
	return []forms.Issue{forms.IssueAt("/defaultValue", forms.CodeTooSmall, i18n.T(forms.CodeTooSmall, nil), map[string]any{"minDate": v.MinDate, "got": v.DefaultValue})}
}

func refineDateDefaultMax(f forms.Field) []forms.Issue {
	v, ok := f.(*forms.DateField)
	if !ok {
		return nil
	}
	def, okDef := parseDate(v.DefaultValue)
	max, okMax := parseDate(v.MaxDate)
	if !okDef || !okMax || !def.After(max) {
		return nil
	}
	return []forms.Issue{forms.IssueAt("/defaultValue", forms.CodeTooBig, i18n.T(forms.CodeTooBig, nil), map[string]any{"maxDate": v.MaxDate, "got": v.DefaultValue})}
}

func refineTextLengthOrder(f forms.Field) []forms.Issue {
	var rules forms.TextRules
	switch v := f.(type) {
	case *forms.TextInputField:
		rules = v.Validation
	case *forms.TextAreaField:
		rules = v.Validation
	default:
		return nil
	}
	if rules.MinLength == nil || rules.MaxLength == nil || *rules.MinLength <= *rules.MaxLength {
		return nil
	}
	return []forms.Issue{forms.IssueAt("/validation/maxLength", forms.CodeDomainRange, i18n.T(forms.CodeDomainRange, nil), map[string]any{"minLength": *rules.MinLength, "maxLength": *rules.MaxLength})}
}

func refineTextDefaultLength(f forms.Field) []forms.Issue {
	var rules forms.TextRules
	var def string
	switch v := f.(type) {
	case *forms.TextInputField:
		rules, def = v.Validation, v.DefaultValue
	case *forms.TextAreaField:
		rules, def = v.Validation, v.DefaultValue
	default:
		return nil
	}
	if def == "" {
		return nil
	}
	n := utf8.RuneCountInString(def)
	var out []forms.Issue
	if rules.MinLength != nil && n < *rules.MinLength {
		out = append(out, forms.IssueAt("/defaultValue", forms.CodeTooShort, i18n.T(forms.CodeTooShort, nil), map[string]any{"min": *rules.MinLength, "got": n}))
	}
	if rules.MaxLength != nil && n > *rules.MaxLength {
		out = append(out, forms.IssueAt("/defaultValue", forms.CodeTooLong, i18n.T(forms.CodeTooLong, nil), map[string]any{"max": *rules.MaxLength, "got": n}))
	}
	return out
}

func refineSelectOptionsUnique(f forms.Field) []forms.Issue {
	v, ok := f.(*forms.SelectField)
	if !ok {
		return nil
	}
	return duplicateOptionIssues(v.Options)
}

func refineRadioOptionsUnique(f forms.Field) []forms.Issue {
	v, ok := f.(*forms.RadioField)
	if !ok {
		return nil
	}
	return duplicateOptionIssues(v.Options)
}

func refineCheckboxOptionsUnique(f forms.Field) []forms.Issue {
	v, ok := f.(*forms.CheckboxField)
	if !ok {
		return nil
	}
	return duplicateOptionIssues(v.Options)
}

// duplicateOptionIssues flags repeated non-empty entries; empty entries are
// ignored.
func duplicateOptionIssues(opts []string) []forms.Issue {
	seen := make(map[string]struct{}, len(opts))
	var out []forms.Issue
	for i, o := range opts {
		if o == "" {
			continue
		}
		if _, dup := seen[o]; dup {
			out = append(out, forms.IssueAt(fmt.Sprintf("/options/%d", i), forms.CodeDuplicateOption, i18n.T(forms.CodeDuplicateOption, nil), map[string]any{"value": o}))
			continue
		}
		seen[o] = struct{}{}
	}
	return out
}

func refineSelectDefaultMembership(f forms.Field) []forms.Issue {
	v, ok := f.(*forms.SelectField)
	if !ok || len(v.Options) == 0 {
		return nil
	}
	if v.Multiple {
		return membershipIssues(forms.SplitCommaList(v.DefaultValue), v.Options)
	}
	if v.DefaultValue == "" {
		return nil
	}
	return membershipIssues([]string{v.DefaultValue}, v.Options)
}

func refineRadioDefaultMembership(f forms.Field) []forms.Issue {
	v, ok := f.(*forms.RadioField)
	if !ok || len(v.Options) == 0 || v.DefaultValue == "" {
		return nil
	}
	return membershipIssues([]string{v.DefaultValue}, v.Options)
}

func refineCheckboxDefaultMembership(f forms.Field) []forms.Issue {
	v, ok := f.(*forms.CheckboxField)
	if !ok || len(v.Options) == 0 {
		return nil
	}
	return membershipIssues(v.ParsedDefaults(), v.Options)
}

// membershipIssues reports every default entry missing from the option list,
// all under the single /defaultValue path.
func membershipIssues(defaults, opts []string) []forms.Issue {
	set := make(map[string]struct{}, len(opts))
	for _, o := range opts {
		set[o] = struct{}{}
	}
	var missing []string
	for _, d := range defaults {
		if _, ok := set[d]; !ok {
			missing = append(missing, d)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	return []forms.Issue{forms.IssueAt("/defaultValue", forms.CodeInvalidEnum, i18n.T(forms.CodeInvalidEnum, nil), map[string]any{"values": missing})}
}

func refineSelectionOrder(f forms.Field) []forms.Issue {
	v, ok := f.(*forms.CheckboxField)
	if !ok {
		return nil
	}
	min, max := v.Validation.MinSelections, v.Validation.MaxSelections
	if min == nil || max == nil || *min <= *max {
		return nil
	}
	return []forms.Issue{forms.IssueAt("/validation/maxSelections", forms.CodeDomainRange, i18n.T(forms.CodeDomainRange, nil), map[string]any{"minSelections": *min, "maxSelections": *max})}
}

func refineSelectionUpperBound(f forms.Field) []forms.Issue {
	v, ok := f.(*forms.CheckboxField)
	if !ok {
		return nil
	}
	max := v.Validation.MaxSelections
	if max == nil || len(v.Options) == 0 || *max <= len(v.Options) {
		return nil
	}
	return []forms.Issue{forms.IssueAt("/validation/maxSelections", forms.CodeTooBig, i18n.T(forms.CodeTooBig, nil), map[string]any{"max": len(v.Options), "got": *max})}
}
