package model

// Rule identifies one strength criterion. The declaration order is the
// order in which messages are reported.
type Rule int

const (
	RuleLength Rule = iota
	RuleDigit
	RuleUpper
	RuleLower
	RuleSpecial
)

// Rules lists every rule in reporting order.
var Rules = [...]Rule{RuleLength, RuleDigit, RuleUpper, RuleLower, RuleSpecial}

func (r Rule) String() string {
	switch r {
	case RuleLength:
		return "length"
	case RuleDigit:
		return "digit"
	case RuleUpper:
		return "uppercase"
	case RuleLower:
		return "lowercase"
	case RuleSpecial:
		return "special"
	default:
		return "unknown"
	}
}

// Outcome holds the result of each rule for a single candidate.
// A true entry means the rule is satisfied.
type Outcome struct {
	Length  bool
	Digit   bool
	Upper   bool
	Lower   bool
	Special bool
}

// Passed reports whether rule r is satisfied.
func (o Outcome) Passed(r Rule) bool {
	switch r {
	case RuleLength:
		return o.Length
	case RuleDigit:
		return o.Digit
	case RuleUpper:
		return o.Upper
	case RuleLower:
		return o.Lower
	case RuleSpecial:
		return o.Special
	default:
		return false
	}
}

// Failed returns the unmet rules in reporting order.
func (o Outcome) Failed() []Rule {
	var failed []Rule
	for _, r := range Rules {
		if !o.Passed(r) {
			failed = append(failed, r)
		}
	}
	return failed
}

func (o Outcome) AllPassed() bool {
	return o.Length && o.Digit && o.Upper && o.Lower && o.Special
}

// Mode selects how an Outcome is turned into messages.
type Mode string

const (
	// ModeLegacy reports "strong" whenever the special-character rule
	// passes, independent of the other four rules.
	ModeLegacy Mode = "legacy"
	// ModeAggregate reports "strong" only when all five rules pass.
	ModeAggregate Mode = "aggregate"
)

func (m Mode) Valid() bool {
	return m == ModeLegacy || m == ModeAggregate
}
