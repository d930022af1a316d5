package rules

import (
	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/goccy/go-yaml"

	"github.com/ardnew/logfront/log"
	"github.com/ardnew/logfront/pkg"
)

// Rule overrides the minimum level of every logger whose name matches.
//
// Match is an expr-lang boolean expression evaluated against [Env], for
// example:
//
//	name startsWith "github.com/ardnew/logfront/cli"
//	name matches "^db\\." && level == "INFO"
type Rule struct {
	Match string    `json:"match" yaml:"match"`
	Level log.Level `json:"level" yaml:"level"`
}

// Env is the environment a [Rule] match expression is evaluated against.
type Env struct {
	// Name is the name of the requested logger.
	Name string `expr:"name"`
	// Level is the name of the requested level, such as "INFO".
	Level string `expr:"level"`
}

type compiled struct {
	program *vm.Program
	Rule
}

// Set is an ordered list of compiled rules. The zero value matches nothing.
type Set struct {
	rules []compiled
}

// Compile compiles each rule's match expression.
// The first invalid rule is reported as [pkg.ErrRuleEmpty],
// [pkg.ErrRuleLevel] or [pkg.ErrRuleCompile].
func Compile(rules ...Rule) (*Set, error) {
	set := &Set{rules: make([]compiled, 0, len(rules))}

	for i, rule := range rules {
		if rule.Match == "" {
			return nil, pkg.ErrRuleEmpty.Wrapf("rule %d", i)
		}

		if !rule.Level.Valid() {
			return nil, pkg.ErrRuleLevel.Wrap(log.ErrUnknownLevel).
				Wrapf("rule %d: level %d", i, int(rule.Level))
		}

		program, err := expr.Compile(rule.Match, expr.Env(Env{}), expr.AsBool())
		if err != nil {
			return nil, pkg.ErrRuleCompile.Wrapf("rule %d: %q", i, rule.Match).Wrap(err)
		}

		set.rules = append(set.rules, compiled{program: program, Rule: rule})
	}

	return set, nil
}

// Decode parses a YAML (or JSON) list of rules and compiles them.
func Decode(data []byte) (*Set, error) {
	var rules []Rule

	if err := yaml.Unmarshal(data, &rules); err != nil {
		return nil, pkg.ErrRuleDecode.Wrap(err)
	}

	return Compile(rules...)
}

// Len returns the number of rules in the set.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}

	return len(s.rules)
}

// Rules returns a copy of the rules in the set.
func (s *Set) Rules() []Rule {
	if s == nil {
		return nil
	}

	out := make([]Rule, len(s.rules))
	for i, c := range s.rules {
		out[i] = c.Rule
	}

	return out
}

// Resolve returns the level of the first rule matching name and level, or
// level itself if no rule matches.
//
// A rule whose expression fails at run time is skipped.
func (s *Set) Resolve(name string, level log.Level) log.Level {
	resolved, _ := s.Match(name, level)

	return resolved
}

// Match is like [Set.Resolve] but also returns the index of the matching
// rule, or -1 if none matched.
func (s *Set) Match(name string, level log.Level) (log.Level, int) {
	if s == nil {
		return level, -1
	}

	env := Env{Name: name, Level: level.String()}

	for i, c := range s.rules {
		out, err := expr.Run(c.program, env)
		if err != nil {
			continue
		}

		if ok, _ := out.(bool); ok {
			return c.Level, i
		}
	}

	return level, -1
}

// Factory is a [log.Factory] that applies a [Set] to the level of every
// logger created by the wrapped factory.
type Factory struct {
	log.Factory

	set *Set
}

// Wrap returns a [Factory] applying set to the loggers created by f.
func Wrap(f log.Factory, set *Set) *Factory {
	return &Factory{Factory: f, set: set}
}

// Logger implements [log.Factory].
func (f *Factory) Logger(name string, level log.Level, clock log.Clock) (log.Logger, error) {
	return f.Factory.Logger(name, f.set.Resolve(name, level), clock)
}
