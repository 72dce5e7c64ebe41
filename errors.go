package forms

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	CodeRequired        = "required"
	CodeTooShort        = "too_short"
	CodeTooLong         = "too_long"
	CodeTooSmall        = "too_small"
	CodeTooBig          = "too_big"
	CodeInvalidEnum     = "invalid_enum"
	CodeDuplicateOption = "duplicate_option"
	CodeDuplicateID     = "duplicate_id"
	CodeDomainRange     = "domain_range"
	CodeInvalidFormat   = "invalid_format"
	// Decode diagnostics (warning channel; decoding itself never fails)
	CodeDiscriminatorUnknown = "discriminator_unknown"
	CodeLegacyRepresentation = "legacy_representation"
)

// Issue represents a single validation or decode-diagnostic entry.
type Issue struct {
	Path    string // attribute path (for example: /validation/maxSelections)
	Code    string // One of the codes listed above.
	Message string
	// Params carries structured parameters (e.g., {"max":200, "got":412})
	// for i18n and observability.
	Params map[string]any
	// Rule optionally records the rule name that produced this issue.
	Rule string
}

// Issues is a collection of validation entries that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		// e.g. too_long at /label
		fmt.Fprintf(b, "%s at %s", it.Code, it.Path)
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	dst = append(dst, more...)
	return dst
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}

// IssueAt creates an Issue at the given path with the provided code, message
// and params map. Convenience helper for call sites with many parameters.
func IssueAt(path, code, msg string, params map[string]any) Issue {
	return Issue{Path: path, Code: code, Message: msg, Params: params}
}
