package torcontactinfo

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	CodeTooShort       = "too_short"
	CodeTooLong        = "too_long"
	CodePattern        = "pattern"
	CodeInvalidVersion = "invalid_version"
)

// Sentinel errors signaling a line that is not a structured contact line at
// all, as opposed to one with invalid field values. Callers should treat both
// as "unparseable" rather than propagate them further.
var (
	// ErrMissingVersion reports that the mandatory ciissversion field did not
	// appear among the tokenized fields.
	ErrMissingVersion = errors.New("torcontactinfo: missing ciissversion field")
	// ErrInvalidVersion reports that the ciissversion value failed its rule
	// under the VersionValidated policy.
	ErrInvalidVersion = errors.New("torcontactinfo: invalid ciissversion value")
)

// Issue represents a single field validation entry.
type Issue struct {
	Field   string // Name of the offending field.
	Code    string // One of the codes listed above.
	Message string
}

// Issues is a collection of validation errors that implements error.
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
		// e.g. too_short at field 'url'
		fmt.Fprintf(b, "%s at field '%s'", it.Code, it.Field)
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

// Violation messages match the reference specification tooling verbatim so
// downstream consumers can keep matching on them.

func issueTooShort(field string) Issue {
	return Issue{Field: field, Code: CodeTooShort, Message: fmt.Sprintf("value of field '%s' is too short", field)}
}

func issueTooLong(field string) Issue {
	return Issue{Field: field, Code: CodeTooLong, Message: fmt.Sprintf("value of field '%s' is too long", field)}
}

func issuePattern(field string) Issue {
	return Issue{Field: field, Code: CodePattern, Message: fmt.Sprintf("value of field '%s' doesn't match valid chars restrictions", field)}
}
