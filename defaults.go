package forms

import (
	"strconv"
	"strings"
)

// DefaultValueFor derives the pre-fill value for a single field. The second
// return is false when the field contributes no default at all; among fillable
// kinds only number fields can report that (an unparseable or absent numeric
// default is omitted rather than coerced to zero).
func DefaultValueFor(f Field) (any, bool) {
	switch v := f.(type) {
	case *CheckboxField:
		return toAnyList(v.ParsedDefaults()), true
	case *SelectField:
		if v.Multiple {
			return toAnyList(SplitCommaList(v.DefaultValue)), true
		}
		return v.DefaultValue, true
	case *NumberField:
		s := strings.TrimSpace(v.DefaultValue)
		if s == "" {
			return nil, false
		}
		n, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, false
		}
		return n, true
	case FillableFormField:
		return v.Fillable().DefaultValue, true
	default:
		// display-only and degenerate kinds collect no input
		return nil, false
	}
}

// GeneratePageDefaultValues builds the field-id -> default-value map used to
// pre-populate an empty page. Fields without a derivable default are omitted.
func GeneratePageDefaultValues(p *FormPage) map[string]any {
	out := make(map[string]any)
	for _, f := range p.Fields {
		if v, ok := DefaultValueFor(f); ok {
			out[f.FieldID()] = v
		}
	}
	return out
}

// GenerateDefaultValues merges the per-page default maps of the whole schema.
func GenerateDefaultValues(s *FormSchema) map[string]any {
	out := make(map[string]any)
	for _, p := range s.Pages {
		for id, v := range GeneratePageDefaultValues(p) {
			out[id] = v
		}
	}
	return out
}

// TransformSubmission normalizes raw submitted values into each field's
// canonical storage shape, independent of how the UI collected them. The
// transform is defensive: malformed submissions degrade to empty or neutral
// values instead of being rejected. Applying it twice yields the same result
// as once, and keys that match no field pass through untouched.
func TransformSubmission(s *FormSchema, data map[string]any) map[string]any {
	out := make(map[string]any, len(data))
	for key, raw := range data {
		f, ok := s.FieldByID(key)
		if !ok {
			out[key] = raw
			continue
		}
		out[key] = transformValue(f, raw)
	}
	return out
}

// TransformPageSubmission is the single-page variant of TransformSubmission.
func TransformPageSubmission(p *FormPage, data map[string]any) map[string]any {
	out := make(map[string]any, len(data))
	byID := make(map[string]Field, len(p.Fields))
	for _, f := range p.Fields {
		byID[f.FieldID()] = f
	}
	for key, raw := range data {
		f, ok := byID[key]
		if !ok {
			out[key] = raw
			continue
		}
		out[key] = transformValue(f, raw)
	}
	return out
}

func transformValue(f Field, raw any) any {
	switch v := f.(type) {
	case *NumberField:
		if raw == "" {
			return nil
		}
		return raw
	case *CheckboxField:
		return coerceList(raw)
	case *SelectField:
		if v.Multiple {
			return coerceList(raw)
		}
		return coerceScalar(raw)
	default:
		return coerceScalar(raw)
	}
}

func coerceList(raw any) any {
	switch raw.(type) {
	case []any, []string:
		return raw
	default:
		return []any{}
	}
}

func coerceScalar(raw any) any {
	if raw == nil || raw == "" || raw == false {
		return ""
	}
	return raw
}

func toAnyList(ss []string) []any {
	out := make([]any, len(ss))
	for i, s := range ss {
		out[i] = s
	}
	return out
}
