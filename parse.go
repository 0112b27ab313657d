package torcontactinfo

// VersionPolicy selects how the mandatory ciissversion field gates a parse.
// Sampled spec revisions disagree on whether the version value itself must
// validate, so the choice is a parse option rather than hard-coded.
type VersionPolicy int

const (
	// VersionPresence accepts a line as structured contact info whenever the
	// ciissversion field appears among its tokens, whatever its value. This is
	// the reference behavior and the default.
	VersionPresence VersionPolicy = iota
	// VersionValidated additionally requires the ciissversion value to pass
	// its own rule; otherwise the whole line is rejected with
	// ErrInvalidVersion.
	VersionValidated
)

// ParseOpt bundles parsing options.
type ParseOpt struct {
	// Strict aborts the whole parse with an Issues error on the first field
	// whose value violates its rule. The default records such fields as
	// declared-but-invalid instead.
	Strict bool
	// Version selects the gating policy for the ciissversion field.
	Version VersionPolicy
}

// Parser parses contact lines against a fixed Registry. For the
// package-default CIISS v2 table, the package-level Parse suffices.
type Parser struct {
	reg *Registry
}

// NewParser returns a Parser bound to reg; a nil reg means Default().
func NewParser(reg *Registry) *Parser {
	if reg == nil {
		reg = Default()
	}
	return &Parser{reg: reg}
}

// Parse parses one contact line using the package-default registry.
func Parse(line string, opts ...ParseOpt) (*Result, error) {
	return NewParser(nil).Parse(line, opts...)
}

// Parse tokenizes line and evaluates every token whose name the registry
// knows. Unknown field names are skipped. The first occurrence of a field
// wins; later ones are ignored entirely. A line whose tokens lack the
// ciissversion field is not structured contact info and yields
// ErrMissingVersion with no result.
//
// Parse is a pure function of its inputs plus the read-only registry, so
// concurrent calls need no coordination.
func (p *Parser) Parse(line string, opts ...ParseOpt) (*Result, error) {
	var opt ParseOpt
	if len(opts) > 0 {
		opt = opts[len(opts)-1]
	}

	toks := Tokenize(line)
	hasVersion := false
	for _, t := range toks {
		if t.Name == VersionField {
			hasVersion = true
			break
		}
	}
	if !hasVersion {
		return nil, ErrMissingVersion
	}

	res := newResult()
	for _, t := range toks {
		rule, known := p.reg.Lookup(t.Name)
		if !known {
			continue
		}
		if res.Has(t.Name) {
			continue
		}
		text, ok, err := evaluate(t.Name, t.Raw, rule, opt.Strict)
		if err != nil {
			return nil, err
		}
		res.set(t.Name, Value{Text: text, Valid: ok})
	}

	if opt.Version == VersionValidated {
		if _, ok := res.Text(VersionField); !ok {
			return nil, ErrInvalidVersion
		}
	}
	return res, nil
}
