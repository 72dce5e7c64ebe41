package forms

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	richTextPolicyOnce sync.Once
	richTextPolicy     *bluemonday.Policy
)

// SanitizeRichText strips unsafe markup from rich-text content using a UGC
// policy. This is an explicit operation for callers that accept untrusted
// content; the codec never runs it, so persisted content round-trips verbatim.
func SanitizeRichText(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	return strings.TrimSpace(richTextSanitizer().Sanitize(trimmed))
}

// SanitizeContent sanitizes every rich-text field in the schema in place and
// reports how many fields changed.
func (s *FormSchema) SanitizeContent() int {
	changed := 0
	for _, p := range s.Pages {
		for _, f := range p.Fields {
			rt, ok := f.(*RichTextField)
			if !ok {
				continue
			}
			if clean := SanitizeRichText(rt.Content); clean != rt.Content {
				rt.Content = clean
				changed++
			}
		}
	}
	return changed
}

func richTextSanitizer() *bluemonday.Policy {
	richTextPolicyOnce.Do(func() {
		richTextPolicy = bluemonday.UGCPolicy()
	})
	return richTextPolicy
}
