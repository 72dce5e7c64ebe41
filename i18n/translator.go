// Package i18n maps issue codes to human-readable messages.
package i18n

// Translator retrieves localized messages for Issue codes.
// data provides optional metadata to embed in the message (for example,
// "attribute" or "max").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{}

func (dictTranslator) Message(code string, data map[string]string) string {
	switch code {
	case "required":
		return "required"
	case "too_short":
		return "too short"
	case "too_long":
		return "too long"
	case "too_small":
		return "too small"
	case "too_big":
		return "too big"
	case "invalid_enum":
		return "value is not one of the options"
	case "duplicate_option":
		return "duplicate option"
	case "duplicate_id":
		return "duplicate field id"
	case "domain_range":
		return "minimum exceeds maximum"
	case "invalid_format":
		return "invalid format"
	case "discriminator_unknown":
		return "unknown field type"
	case "legacy_representation":
		return "legacy representation normalized"
	}
	return code
}

var currentTranslator Translator = dictTranslator{}

// SetTranslator replaces the Translator implementation. Passing nil restores
// the built-in dictionary.
func SetTranslator(tr Translator) {
	if tr == nil {
		currentTranslator = dictTranslator{}
		return
	}
	currentTranslator = tr
}

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string { return currentTranslator.Message(code, data) }
