package torcontactinfo

import (
	"fmt"
	"regexp"
)

// RuleKind tags the variant of a FieldRule.
type RuleKind int

const (
	KindRaw       RuleKind = iota // Store the value unmodified, no validation.
	KindBounded                   // Inclusive length bounds plus a character-class search.
	KindEmailLike                 // Reverse the "[]" obfuscation into "@", no validation.
)

// WildcardChars is the ValidChars sentinel that accepts any characters.
const WildcardChars = "*"

// FieldRule describes how one field's value is validated and normalized.
// Rules are built once and treated as immutable; evaluation threads all
// per-call state through arguments so concurrent parses never interfere.
type FieldRule struct {
	Kind RuleKind

	// Bounded only. Lengths are inclusive bounds counted in code points.
	MinLength  int
	MaxLength  int
	ValidChars string // Character class, or WildcardChars.

	re *regexp.Regexp // Compiled ValidChars; nil when wildcard.
}

// Raw returns a rule that stores values unmodified.
func Raw() FieldRule { return FieldRule{Kind: KindRaw} }

// EmailLike returns the obfuscated-email rule. It only reverses the "[]"
// marker; it deliberately performs no length or shape checks, per the source
// specification's treatment of obfuscated-email fields. Callers needing real
// email validation must layer it on top.
func EmailLike() FieldRule { return FieldRule{Kind: KindEmailLike} }

// Bounded returns a length/character-class rule. validChars is either
// WildcardChars or a regular-expression character class searched for within
// the value.
func Bounded(min, max int, validChars string) (FieldRule, error) {
	if min > max {
		return FieldRule{}, fmt.Errorf("torcontactinfo: bounded rule: min %d exceeds max %d", min, max)
	}
	r := FieldRule{Kind: KindBounded, MinLength: min, MaxLength: max, ValidChars: validChars}
	if validChars != WildcardChars {
		re, err := regexp.Compile(validChars)
		if err != nil {
			return FieldRule{}, fmt.Errorf("torcontactinfo: bounded rule: invalid char pattern %q: %w", validChars, err)
		}
		r.re = re
	}
	return r, nil
}

// mustBounded is Bounded for the static default table, where the patterns are
// known-good.
func mustBounded(min, max int, validChars string) FieldRule {
	r, err := Bounded(min, max, validChars)
	if err != nil {
		panic(err)
	}
	return r
}
