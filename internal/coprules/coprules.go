package coprules

import (
	"encoding"
	"fmt"
)

// Rule represents a codecop rule code (UXE-series).
type Rule int

const (
	ruleInvalid Rule = iota

	UXE0001EnumSuffix
	UXE0002NamespaceMatch
)

var ruleCodes = map[Rule]string{
	UXE0001EnumSuffix:     "UXE0001",
	UXE0002NamespaceMatch: "UXE0002",
}

// Rules returns every known rule in code order.
func Rules() []Rule {
	return []Rule{UXE0001EnumSuffix, UXE0002NamespaceMatch}
}

// String returns the stable external code of the rule.
// Example: "UXE0001"
func (r Rule) String() string {
	v, ok := ruleCodes[r]
	if !ok {
		return fmt.Sprintf("rule-unknown(%d)", r)
	}

	return v
}

// Title returns the short human-readable title of the rule.
func (r Rule) Title() string {
	switch r {
	case UXE0001EnumSuffix:
		return "Enum name must end with 'Enum'"
	case UXE0002NamespaceMatch:
		return "Namespace does not match project name"
	default:
		return fmt.Sprintf("unknown-rule(%d)", r)
	}
}

// Description returns the explanation of the rule.
func (r Rule) Description() string {
	switch r {
	case UXE0001EnumSuffix:
		return "Types used as enumerations (a named integer or string type with constants of it) must have a name ending with 'Enum'."
	case UXE0002NamespaceMatch:
		return "Package clauses must match the project root namespace configured with 'rootnamespace'."
	default:
		return fmt.Sprintf("unknown-rule(%d)", r)
	}
}

// FixTitle returns the title of the automated fix offered for the rule.
func (r Rule) FixTitle() string {
	switch r {
	case UXE0001EnumSuffix:
		return "Append 'Enum' to the enum name"
	case UXE0002NamespaceMatch:
		return "Set namespace to project name"
	default:
		return ""
	}
}

// Format renders the diagnostic message for the rule.
func (r Rule) Format(name, expected string) string {
	switch r {
	case UXE0001EnumSuffix:
		return fmt.Sprintf("Enum '%s' does not end with 'Enum'", name)
	case UXE0002NamespaceMatch:
		return fmt.Sprintf("Namespace '%s' does not match expected project namespace '%s'", name, expected)
	default:
		return r.Description()
	}
}

var (
	_ encoding.TextMarshaler   = Rule(0)
	_ encoding.TextUnmarshaler = (*Rule)(nil)
)

// MarshalText for writing rules into configs.
func (r Rule) MarshalText() ([]byte, error) {
	v, ok := ruleCodes[r]
	if !ok {
		return nil, fmt.Errorf("cannot marshal invalid Rule(%d)", r)
	}

	return []byte(v), nil
}

// UnmarshalText for setting rules with configs, CLI, etc.
func (r *Rule) UnmarshalText(rawtext []byte) error {
	text := string(rawtext)
	for k, v := range ruleCodes {
		if v == text {
			*r = k
			return nil
		}
	}

	return fmt.Errorf("unknown rule code %q", text)
}

// Canonical constructors, for stable call sites.

func EnumSuffix() Rule     { return UXE0001EnumSuffix }
func NamespaceMatch() Rule { return UXE0002NamespaceMatch }
