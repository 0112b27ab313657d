package torcontactinfo

import (
	"strings"
	"unicode/utf8"
)

// evaluate applies rule to the raw value of the named field. It returns the
// normalized value and whether it was accepted. In strict mode a rejection
// returns an Issues error instead, identifying the field and the violation.
//
// Lengths are counted in code points, matching the reference tooling.
func evaluate(name, raw string, rule FieldRule, strict bool) (string, bool, error) {
	switch rule.Kind {
	case KindRaw:
		return raw, true, nil
	case KindEmailLike:
		// De-obfuscate only. An empty value normalizes to empty, and no shape
		// checks apply no matter what the result looks like.
		return strings.ReplaceAll(raw, "[]", "@"), true, nil
	}

	n := utf8.RuneCountInString(raw)
	if n < rule.MinLength {
		if strict {
			return "", false, AppendIssues(nil, issueTooShort(name))
		}
		return "", false, nil
	}
	if n > rule.MaxLength {
		if strict {
			return "", false, AppendIssues(nil, issueTooLong(name))
		}
		return "", false, nil
	}
	// Compatibility quirk, kept deliberately: this is a search, not a full
	// match. A value carrying disallowed characters alongside one allowed
	// character still passes, exactly like the reference specification
	// tooling. Downstream consumers depend on the looser acceptance.
	if rule.re != nil && !rule.re.MatchString(raw) {
		if strict {
			return "", false, AppendIssues(nil, issuePattern(name))
		}
		return "", false, nil
	}
	return raw, true, nil
}
