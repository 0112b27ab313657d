package torcontactinfo

import "sort"

// VersionField is the mandatory protocol-version marker; its absence from the
// tokenized input makes a line unparseable as structured contact info.
const VersionField = "ciissversion"

// Registry is an immutable mapping from field name to its FieldRule. Field
// names are case-sensitive. Names absent from the registry are skipped by the
// parser, which keeps it forward-compatible with future spec fields.
type Registry struct {
	rules map[string]FieldRule
}

// Lookup returns the rule for name, if any.
func (r *Registry) Lookup(name string) (FieldRule, bool) {
	rule, ok := r.rules[name]
	return rule, ok
}

// Len returns the number of registered fields.
func (r *Registry) Len() int { return len(r.rules) }

// Names returns the registered field names in lexical order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.rules))
	for name := range r.rules {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (r *Registry) clone() map[string]FieldRule {
	out := make(map[string]FieldRule, len(r.rules))
	for name, rule := range r.rules {
		out[name] = rule
	}
	return out
}

// defaultRegistry holds the CIISS v2 field table. Built once before first use
// and never mutated afterward, so concurrent parses share it without locking.
var defaultRegistry = &Registry{rules: map[string]FieldRule{
	"email":              EmailLike(),
	"url":                mustBounded(4, 399, "[_%/:a-zA-Z0-9.-]+"),
	"proof":              mustBounded(7, 7, "[adinrsu-]+"),
	VersionField:         mustBounded(1, 1, "[12]+"),
	"pgp":                mustBounded(40, 40, "[a-zA-Z0-9]+"),
	"abuse":              EmailLike(),
	"keybase":            mustBounded(0, 50, "[a-zA-Z0-9]+"),
	"twitter":            mustBounded(1, 15, "[a-zA-Z0-9_]+"),
	"mastodon":           mustBounded(0, 254, WildcardChars),
	"matrix":             mustBounded(0, 254, WildcardChars),
	"xmpp":               EmailLike(),
	"otr3":               mustBounded(40, 40, "[a-z0-9]+"),
	"hoster":             mustBounded(0, 254, "[a-zA-Z0-9.-]+"),
	"cost":               mustBounded(0, 13, "[A-Z0-9.]+"),
	"uplinkbw":           mustBounded(0, 7, "[0-9]+"),
	"trafficacct":        mustBounded(0, 7, "[unmetered0-9]+"),
	"memory":             mustBounded(0, 10, "[0-9]+"),
	"cpu":                mustBounded(0, 50, "[a-zA-Z0-9_-]+"),
	"virtualization":     mustBounded(0, 15, "[a-z-]+"),
	"donationurl":        mustBounded(0, 254, WildcardChars),
	"btc":                mustBounded(26, 99, "[a-zA-Z0-9]+"),
	"zec":                mustBounded(0, 95, "[a-zA-Z0-9]+"),
	"xmr":                mustBounded(0, 99, "[a-zA-Z0-9]+"),
	"offlinemasterkey":   mustBounded(1, 1, "[yn]"),
	"signingkeylifetime": mustBounded(0, 6, "[0-9]+"),
	"sandbox":            mustBounded(1, 2, "[yn]"),
	"os":                 mustBounded(0, 20, "[A-Za-z0-9/.]+"),
	"tls":                mustBounded(0, 14, "[a-z]+"),
	"aesni":              mustBounded(1, 1, "[yn]"),
	"autoupdate":         mustBounded(1, 1, "[yn]"),
	"confmgmt":           mustBounded(1, 15, "[a-zA-Z-]"),
	"dnslocation":        mustBounded(5, 100, "[a-z,]"),
	"dnsqname":           mustBounded(1, 1, "[yn]"),
	"dnssec":             mustBounded(1, 1, "[yn]"),
	"dnslocalrootzone":   mustBounded(1, 1, "[yn]"),
}}

// Default returns the process-wide CIISS v2 registry.
func Default() *Registry { return defaultRegistry }
