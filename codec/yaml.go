package codec

import (
	"gopkg.in/yaml.v3"

	forms "github.com/dculussoftwares/dculus-forms-sub000"
)

// MarshalSchemaYAML serializes a form schema to YAML, for fixtures and CLI
// conversion.
func MarshalSchemaYAML(s *forms.FormSchema) ([]byte, error) {
	return yaml.Marshal(EncodeSchema(s))
}

// UnmarshalSchemaYAML parses a YAML document and reconstructs the schema.
func UnmarshalSchemaYAML(data []byte) (*forms.FormSchema, error) {
	s, _, err := UnmarshalSchemaYAMLWithMeta(data)
	return s, err
}

// UnmarshalSchemaYAMLWithMeta is UnmarshalSchemaYAML plus the decode warning
// channel.
func UnmarshalSchemaYAMLWithMeta(data []byte) (*forms.FormSchema, forms.Issues, error) {
	var node any
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, nil, err
	}
	rec := yamlAnyToStringMap(node)
	if rec == nil {
		rec = map[string]any{}
	}
	s, warns := DecodeSchemaWithMeta(rec)
	return s, warns, nil
}

// yamlAnyToStringMap converts YAML-decoded values (which may contain
// map[any]any) into JSON-like map[string]any recursively. Non-map roots
// return nil.
func yamlAnyToStringMap(v any) map[string]any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			out[k] = yamlNormalizeValue(vv)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			ks, ok := k.(string)
			if !ok {
				continue
			}
			out[ks] = yamlNormalizeValue(vv)
		}
		return out
	default:
		return nil
	}
}

func yamlNormalizeValue(v any) any {
	switch t := v.(type) {
	case map[string]any, map[any]any:
		return yamlAnyToStringMap(t)
	case []any:
		arr := make([]any, len(t))
		for i := range t {
			arr[i] = yamlNormalizeValue(t[i])
		}
		return arr
	default:
		return v
	}
}
