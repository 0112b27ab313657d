package torcontactinfo

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// yamlRule is one per-field entry of a rule-override document.
type yamlRule struct {
	Kind  string `yaml:"kind"` // raw | bounded | email | drop
	Min   *int   `yaml:"min"`
	Max   *int   `yaml:"max"`
	Chars string `yaml:"chars"`
}

type yamlRules struct {
	Fields map[string]yamlRule `yaml:"fields"`
}

// RegistryFromYAML builds a Registry by applying a YAML override document on
// top of the default CIISS v2 table. It lets deployments pick up bounds
// changes or brand-new fields of a future spec revision without a parser
// release. Document shape:
//
//	fields:
//	  url:      {kind: bounded, min: 4, max: 512, chars: "[_%/:a-zA-Z0-9.-]+"}
//	  oniondns: {kind: raw}
//	  abuse:    {kind: email}
//	  twitter:  {kind: drop}
//
// chars defaults to the wildcard "*" when omitted. A "drop" entry removes the
// field from the table entirely.
func RegistryFromYAML(data []byte) (*Registry, error) {
	var doc yamlRules
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("torcontactinfo: rules: %w", err)
	}
	rules := Default().clone()
	for name, yr := range doc.Fields {
		switch yr.Kind {
		case "raw":
			rules[name] = Raw()
		case "email":
			rules[name] = EmailLike()
		case "bounded":
			if yr.Min == nil || yr.Max == nil {
				return nil, fmt.Errorf("torcontactinfo: rules: field %q: bounded rule requires min and max", name)
			}
			chars := yr.Chars
			if chars == "" {
				chars = WildcardChars
			}
			rule, err := Bounded(*yr.Min, *yr.Max, chars)
			if err != nil {
				return nil, fmt.Errorf("torcontactinfo: rules: field %q: %w", name, err)
			}
			rules[name] = rule
		case "drop":
			delete(rules, name)
		default:
			return nil, fmt.Errorf("torcontactinfo: rules: field %q: unknown kind %q", name, yr.Kind)
		}
	}
	return &Registry{rules: rules}, nil
}
