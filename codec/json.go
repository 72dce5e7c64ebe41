package codec

import (
	json "github.com/goccy/go-json"

	forms "github.com/dculussoftwares/dculus-forms-sub000"
)

// MarshalSchema serializes a form schema to its JSON record shape.
func MarshalSchema(s *forms.FormSchema) ([]byte, error) {
	return json.Marshal(EncodeSchema(s))
}

// MarshalSchemaIndent is MarshalSchema with indentation, for files and CLI
// output.
func MarshalSchemaIndent(s *forms.FormSchema) ([]byte, error) {
	return json.MarshalIndent(EncodeSchema(s), "", "  ")
}

// UnmarshalSchema parses a JSON record and reconstructs the schema. Shape
// anomalies inside the record degrade per the permissive decode policy; only
// malformed JSON itself is an error.
func UnmarshalSchema(data []byte) (*forms.FormSchema, error) {
	s, _, err := UnmarshalSchemaWithMeta(data)
	return s, err
}

// UnmarshalSchemaWithMeta is UnmarshalSchema plus the decode warning channel.
func UnmarshalSchemaWithMeta(data []byte) (*forms.FormSchema, forms.Issues, error) {
	var rec map[string]any
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, nil, err
	}
	s, warns := DecodeSchemaWithMeta(rec)
	return s, warns, nil
}
